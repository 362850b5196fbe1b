// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: warranty/v1/warranty.proto

package warrantypb

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type SyncWarrantiesRequest struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// Path to the workbook; empty means the configured sync path.
	SourcePath string `protobuf:"bytes,1,opt,name=source_path,json=sourcePath,proto3" json:"source_path,omitempty"`
	// Uploaded workbook bytes; takes precedence over source_path.
	Upload []byte `protobuf:"bytes,2,opt,name=upload,proto3" json:"upload,omitempty"`
	// Destructive full reset instead of an incremental sync.
	FullReset     bool `protobuf:"varint,3,opt,name=full_reset,json=fullReset,proto3" json:"full_reset,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SyncWarrantiesRequest) Reset() {
	*x = SyncWarrantiesRequest{}
	mi := &file_warranty_v1_warranty_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SyncWarrantiesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SyncWarrantiesRequest) ProtoMessage() {}

func (x *SyncWarrantiesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_warranty_v1_warranty_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SyncWarrantiesRequest.ProtoReflect.Descriptor instead.
func (*SyncWarrantiesRequest) Descriptor() ([]byte, []int) {
	return file_warranty_v1_warranty_proto_rawDescGZIP(), []int{0}
}

func (x *SyncWarrantiesRequest) GetSourcePath() string {
	if x != nil {
		return x.SourcePath
	}
	return ""
}

func (x *SyncWarrantiesRequest) GetUpload() []byte {
	if x != nil {
		return x.Upload
	}
	return nil
}

func (x *SyncWarrantiesRequest) GetFullReset() bool {
	if x != nil {
		return x.FullReset
	}
	return false
}

type ImportSpecialRmasRequest struct {
	state      protoimpl.MessageState `protogen:"open.v1"`
	SourcePath string                 `protobuf:"bytes,1,opt,name=source_path,json=sourcePath,proto3" json:"source_path,omitempty"`
	Upload     []byte                 `protobuf:"bytes,2,opt,name=upload,proto3" json:"upload,omitempty"`
	// Operator-confirmed field -> header mapping; persisted into the alias
	// set before resolution.
	ManualMap     map[string]string `protobuf:"bytes,3,rep,name=manual_map,json=manualMap,proto3" json:"manual_map,omitempty" protobuf_key:"bytes,1,opt,name=key" protobuf_val:"bytes,2,opt,name=value"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ImportSpecialRmasRequest) Reset() {
	*x = ImportSpecialRmasRequest{}
	mi := &file_warranty_v1_warranty_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ImportSpecialRmasRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ImportSpecialRmasRequest) ProtoMessage() {}

func (x *ImportSpecialRmasRequest) ProtoReflect() protoreflect.Message {
	mi := &file_warranty_v1_warranty_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ImportSpecialRmasRequest.ProtoReflect.Descriptor instead.
func (*ImportSpecialRmasRequest) Descriptor() ([]byte, []int) {
	return file_warranty_v1_warranty_proto_rawDescGZIP(), []int{1}
}

func (x *ImportSpecialRmasRequest) GetSourcePath() string {
	if x != nil {
		return x.SourcePath
	}
	return ""
}

func (x *ImportSpecialRmasRequest) GetUpload() []byte {
	if x != nil {
		return x.Upload
	}
	return nil
}

func (x *ImportSpecialRmasRequest) GetManualMap() map[string]string {
	if x != nil {
		return x.ManualMap
	}
	return nil
}

type ScanCatalogRequest struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// Scan root; empty means the configured catalog path.
	RootPath      string `protobuf:"bytes,1,opt,name=root_path,json=rootPath,proto3" json:"root_path,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ScanCatalogRequest) Reset() {
	*x = ScanCatalogRequest{}
	mi := &file_warranty_v1_warranty_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ScanCatalogRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ScanCatalogRequest) ProtoMessage() {}

func (x *ScanCatalogRequest) ProtoReflect() protoreflect.Message {
	mi := &file_warranty_v1_warranty_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ScanCatalogRequest.ProtoReflect.Descriptor instead.
func (*ScanCatalogRequest) Descriptor() ([]byte, []int) {
	return file_warranty_v1_warranty_proto_rawDescGZIP(), []int{2}
}

func (x *ScanCatalogRequest) GetRootPath() string {
	if x != nil {
		return x.RootPath
	}
	return ""
}

type SubmitJobResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	JobId         string                 `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SubmitJobResponse) Reset() {
	*x = SubmitJobResponse{}
	mi := &file_warranty_v1_warranty_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SubmitJobResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SubmitJobResponse) ProtoMessage() {}

func (x *SubmitJobResponse) ProtoReflect() protoreflect.Message {
	mi := &file_warranty_v1_warranty_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SubmitJobResponse.ProtoReflect.Descriptor instead.
func (*SubmitJobResponse) Descriptor() ([]byte, []int) {
	return file_warranty_v1_warranty_proto_rawDescGZIP(), []int{3}
}

func (x *SubmitJobResponse) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

type PollJobRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	JobId         string                 `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *PollJobRequest) Reset() {
	*x = PollJobRequest{}
	mi := &file_warranty_v1_warranty_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PollJobRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PollJobRequest) ProtoMessage() {}

func (x *PollJobRequest) ProtoReflect() protoreflect.Message {
	mi := &file_warranty_v1_warranty_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PollJobRequest.ProtoReflect.Descriptor instead.
func (*PollJobRequest) Descriptor() ([]byte, []int) {
	return file_warranty_v1_warranty_proto_rawDescGZIP(), []int{4}
}

func (x *PollJobRequest) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

type PollJobResponse struct {
	state   protoimpl.MessageState `protogen:"open.v1"`
	Status  string                 `protobuf:"bytes,1,opt,name=status,proto3" json:"status,omitempty"` // running | done | error | not_found
	Percent int32                  `protobuf:"varint,2,opt,name=percent,proto3" json:"percent,omitempty"`
	Message string                 `protobuf:"bytes,3,opt,name=message,proto3" json:"message,omitempty"`
	// JSON payload; shape depends on the job kind.
	ResultJson    string `protobuf:"bytes,4,opt,name=result_json,json=resultJson,proto3" json:"result_json,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *PollJobResponse) Reset() {
	*x = PollJobResponse{}
	mi := &file_warranty_v1_warranty_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PollJobResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PollJobResponse) ProtoMessage() {}

func (x *PollJobResponse) ProtoReflect() protoreflect.Message {
	mi := &file_warranty_v1_warranty_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PollJobResponse.ProtoReflect.Descriptor instead.
func (*PollJobResponse) Descriptor() ([]byte, []int) {
	return file_warranty_v1_warranty_proto_rawDescGZIP(), []int{5}
}

func (x *PollJobResponse) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *PollJobResponse) GetPercent() int32 {
	if x != nil {
		return x.Percent
	}
	return 0
}

func (x *PollJobResponse) GetMessage() string {
	if x != nil {
		return x.Message
	}
	return ""
}

func (x *PollJobResponse) GetResultJson() string {
	if x != nil {
		return x.ResultJson
	}
	return ""
}

type ResolveColumnsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Headers       []string               `protobuf:"bytes,1,rep,name=headers,proto3" json:"headers,omitempty"`
	AliasSet      string                 `protobuf:"bytes,2,opt,name=alias_set,json=aliasSet,proto3" json:"alias_set,omitempty"` // "warranty" | "special_rma"
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ResolveColumnsRequest) Reset() {
	*x = ResolveColumnsRequest{}
	mi := &file_warranty_v1_warranty_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ResolveColumnsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ResolveColumnsRequest) ProtoMessage() {}

func (x *ResolveColumnsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_warranty_v1_warranty_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ResolveColumnsRequest.ProtoReflect.Descriptor instead.
func (*ResolveColumnsRequest) Descriptor() ([]byte, []int) {
	return file_warranty_v1_warranty_proto_rawDescGZIP(), []int{6}
}

func (x *ResolveColumnsRequest) GetHeaders() []string {
	if x != nil {
		return x.Headers
	}
	return nil
}

func (x *ResolveColumnsRequest) GetAliasSet() string {
	if x != nil {
		return x.AliasSet
	}
	return ""
}

type ResolveColumnsResponse struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// Canonical field -> 0-based column index; unmatched fields are absent.
	Fields        map[string]int32 `protobuf:"bytes,1,rep,name=fields,proto3" json:"fields,omitempty" protobuf_key:"bytes,1,opt,name=key" protobuf_val:"varint,2,opt,name=value"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ResolveColumnsResponse) Reset() {
	*x = ResolveColumnsResponse{}
	mi := &file_warranty_v1_warranty_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ResolveColumnsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ResolveColumnsResponse) ProtoMessage() {}

func (x *ResolveColumnsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_warranty_v1_warranty_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ResolveColumnsResponse.ProtoReflect.Descriptor instead.
func (*ResolveColumnsResponse) Descriptor() ([]byte, []int) {
	return file_warranty_v1_warranty_proto_rawDescGZIP(), []int{7}
}

func (x *ResolveColumnsResponse) GetFields() map[string]int32 {
	if x != nil {
		return x.Fields
	}
	return nil
}

type RmaItem struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	RmaNumber     string                 `protobuf:"bytes,2,opt,name=rma_number,json=rmaNumber,proto3" json:"rma_number,omitempty"`
	Product       string                 `protobuf:"bytes,3,opt,name=product,proto3" json:"product,omitempty"`
	Serial        string                 `protobuf:"bytes,4,opt,name=serial,proto3" json:"serial,omitempty"`
	ClientName    string                 `protobuf:"bytes,5,opt,name=client_name,json=clientName,proto3" json:"client_name,omitempty"`
	ClientEmail   string                 `protobuf:"bytes,6,opt,name=client_email,json=clientEmail,proto3" json:"client_email,omitempty"`
	ClientPhone   string                 `protobuf:"bytes,7,opt,name=client_phone,json=clientPhone,proto3" json:"client_phone,omitempty"`
	DateReceived  string                 `protobuf:"bytes,8,opt,name=date_received,json=dateReceived,proto3" json:"date_received,omitempty"`
	DatePickup    string                 `protobuf:"bytes,9,opt,name=date_pickup,json=datePickup,proto3" json:"date_pickup,omitempty"`
	DateSent      string                 `protobuf:"bytes,10,opt,name=date_sent,json=dateSent,proto3" json:"date_sent,omitempty"`
	Averia        string                 `protobuf:"bytes,11,opt,name=averia,proto3" json:"averia,omitempty"`
	Observaciones string                 `protobuf:"bytes,12,opt,name=observaciones,proto3" json:"observaciones,omitempty"`
	Estado        string                 `protobuf:"bytes,13,opt,name=estado,proto3" json:"estado,omitempty"`
	Hidden        bool                   `protobuf:"varint,14,opt,name=hidden,proto3" json:"hidden,omitempty"`
	HiddenBy      string                 `protobuf:"bytes,15,opt,name=hidden_by,json=hiddenBy,proto3" json:"hidden_by,omitempty"`
	ExcelRow      int32                  `protobuf:"varint,16,opt,name=excel_row,json=excelRow,proto3" json:"excel_row,omitempty"`
	CreatedAt     string                 `protobuf:"bytes,17,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RmaItem) Reset() {
	*x = RmaItem{}
	mi := &file_warranty_v1_warranty_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RmaItem) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RmaItem) ProtoMessage() {}

func (x *RmaItem) ProtoReflect() protoreflect.Message {
	mi := &file_warranty_v1_warranty_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RmaItem.ProtoReflect.Descriptor instead.
func (*RmaItem) Descriptor() ([]byte, []int) {
	return file_warranty_v1_warranty_proto_rawDescGZIP(), []int{8}
}

func (x *RmaItem) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *RmaItem) GetRmaNumber() string {
	if x != nil {
		return x.RmaNumber
	}
	return ""
}

func (x *RmaItem) GetProduct() string {
	if x != nil {
		return x.Product
	}
	return ""
}

func (x *RmaItem) GetSerial() string {
	if x != nil {
		return x.Serial
	}
	return ""
}

func (x *RmaItem) GetClientName() string {
	if x != nil {
		return x.ClientName
	}
	return ""
}

func (x *RmaItem) GetClientEmail() string {
	if x != nil {
		return x.ClientEmail
	}
	return ""
}

func (x *RmaItem) GetClientPhone() string {
	if x != nil {
		return x.ClientPhone
	}
	return ""
}

func (x *RmaItem) GetDateReceived() string {
	if x != nil {
		return x.DateReceived
	}
	return ""
}

func (x *RmaItem) GetDatePickup() string {
	if x != nil {
		return x.DatePickup
	}
	return ""
}

func (x *RmaItem) GetDateSent() string {
	if x != nil {
		return x.DateSent
	}
	return ""
}

func (x *RmaItem) GetAveria() string {
	if x != nil {
		return x.Averia
	}
	return ""
}

func (x *RmaItem) GetObservaciones() string {
	if x != nil {
		return x.Observaciones
	}
	return ""
}

func (x *RmaItem) GetEstado() string {
	if x != nil {
		return x.Estado
	}
	return ""
}

func (x *RmaItem) GetHidden() bool {
	if x != nil {
		return x.Hidden
	}
	return false
}

func (x *RmaItem) GetHiddenBy() string {
	if x != nil {
		return x.HiddenBy
	}
	return ""
}

func (x *RmaItem) GetExcelRow() int32 {
	if x != nil {
		return x.ExcelRow
	}
	return 0
}

func (x *RmaItem) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

type ListWarrantiesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	IncludeHidden bool                   `protobuf:"varint,1,opt,name=include_hidden,json=includeHidden,proto3" json:"include_hidden,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListWarrantiesRequest) Reset() {
	*x = ListWarrantiesRequest{}
	mi := &file_warranty_v1_warranty_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListWarrantiesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListWarrantiesRequest) ProtoMessage() {}

func (x *ListWarrantiesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_warranty_v1_warranty_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListWarrantiesRequest.ProtoReflect.Descriptor instead.
func (*ListWarrantiesRequest) Descriptor() ([]byte, []int) {
	return file_warranty_v1_warranty_proto_rawDescGZIP(), []int{9}
}

func (x *ListWarrantiesRequest) GetIncludeHidden() bool {
	if x != nil {
		return x.IncludeHidden
	}
	return false
}

type ListWarrantiesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Items         []*RmaItem             `protobuf:"bytes,1,rep,name=items,proto3" json:"items,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListWarrantiesResponse) Reset() {
	*x = ListWarrantiesResponse{}
	mi := &file_warranty_v1_warranty_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListWarrantiesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListWarrantiesResponse) ProtoMessage() {}

func (x *ListWarrantiesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_warranty_v1_warranty_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListWarrantiesResponse.ProtoReflect.Descriptor instead.
func (*ListWarrantiesResponse) Descriptor() ([]byte, []int) {
	return file_warranty_v1_warranty_proto_rawDescGZIP(), []int{10}
}

func (x *ListWarrantiesResponse) GetItems() []*RmaItem {
	if x != nil {
		return x.Items
	}
	return nil
}

type UpdateEstadoRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	RmaNumbers    []string               `protobuf:"bytes,1,rep,name=rma_numbers,json=rmaNumbers,proto3" json:"rma_numbers,omitempty"`
	Estado        string                 `protobuf:"bytes,2,opt,name=estado,proto3" json:"estado,omitempty"` // "", "abonado", "reparado", "no_anomalias"
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpdateEstadoRequest) Reset() {
	*x = UpdateEstadoRequest{}
	mi := &file_warranty_v1_warranty_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateEstadoRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateEstadoRequest) ProtoMessage() {}

func (x *UpdateEstadoRequest) ProtoReflect() protoreflect.Message {
	mi := &file_warranty_v1_warranty_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateEstadoRequest.ProtoReflect.Descriptor instead.
func (*UpdateEstadoRequest) Descriptor() ([]byte, []int) {
	return file_warranty_v1_warranty_proto_rawDescGZIP(), []int{11}
}

func (x *UpdateEstadoRequest) GetRmaNumbers() []string {
	if x != nil {
		return x.RmaNumbers
	}
	return nil
}

func (x *UpdateEstadoRequest) GetEstado() string {
	if x != nil {
		return x.Estado
	}
	return ""
}

type UpdatePickupDateRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	RmaNumber     string                 `protobuf:"bytes,1,opt,name=rma_number,json=rmaNumber,proto3" json:"rma_number,omitempty"`
	Date          string                 `protobuf:"bytes,2,opt,name=date,proto3" json:"date,omitempty"` // YYYY-MM-DD or empty to clear
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpdatePickupDateRequest) Reset() {
	*x = UpdatePickupDateRequest{}
	mi := &file_warranty_v1_warranty_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdatePickupDateRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdatePickupDateRequest) ProtoMessage() {}

func (x *UpdatePickupDateRequest) ProtoReflect() protoreflect.Message {
	mi := &file_warranty_v1_warranty_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdatePickupDateRequest.ProtoReflect.Descriptor instead.
func (*UpdatePickupDateRequest) Descriptor() ([]byte, []int) {
	return file_warranty_v1_warranty_proto_rawDescGZIP(), []int{12}
}

func (x *UpdatePickupDateRequest) GetRmaNumber() string {
	if x != nil {
		return x.RmaNumber
	}
	return ""
}

func (x *UpdatePickupDateRequest) GetDate() string {
	if x != nil {
		return x.Date
	}
	return ""
}

type SetHiddenRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	RmaNumber     string                 `protobuf:"bytes,1,opt,name=rma_number,json=rmaNumber,proto3" json:"rma_number,omitempty"`
	Hidden        bool                   `protobuf:"varint,2,opt,name=hidden,proto3" json:"hidden,omitempty"`
	HiddenBy      string                 `protobuf:"bytes,3,opt,name=hidden_by,json=hiddenBy,proto3" json:"hidden_by,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SetHiddenRequest) Reset() {
	*x = SetHiddenRequest{}
	mi := &file_warranty_v1_warranty_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SetHiddenRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SetHiddenRequest) ProtoMessage() {}

func (x *SetHiddenRequest) ProtoReflect() protoreflect.Message {
	mi := &file_warranty_v1_warranty_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SetHiddenRequest.ProtoReflect.Descriptor instead.
func (*SetHiddenRequest) Descriptor() ([]byte, []int) {
	return file_warranty_v1_warranty_proto_rawDescGZIP(), []int{13}
}

func (x *SetHiddenRequest) GetRmaNumber() string {
	if x != nil {
		return x.RmaNumber
	}
	return ""
}

func (x *SetHiddenRequest) GetHidden() bool {
	if x != nil {
		return x.Hidden
	}
	return false
}

func (x *SetHiddenRequest) GetHiddenBy() string {
	if x != nil {
		return x.HiddenBy
	}
	return ""
}

type UpdateCountResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Updated       int32                  `protobuf:"varint,1,opt,name=updated,proto3" json:"updated,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpdateCountResponse) Reset() {
	*x = UpdateCountResponse{}
	mi := &file_warranty_v1_warranty_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateCountResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateCountResponse) ProtoMessage() {}

func (x *UpdateCountResponse) ProtoReflect() protoreflect.Message {
	mi := &file_warranty_v1_warranty_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateCountResponse.ProtoReflect.Descriptor instead.
func (*UpdateCountResponse) Descriptor() ([]byte, []int) {
	return file_warranty_v1_warranty_proto_rawDescGZIP(), []int{14}
}

func (x *UpdateCountResponse) GetUpdated() int32 {
	if x != nil {
		return x.Updated
	}
	return 0
}

type GetSettingsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetSettingsRequest) Reset() {
	*x = GetSettingsRequest{}
	mi := &file_warranty_v1_warranty_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetSettingsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetSettingsRequest) ProtoMessage() {}

func (x *GetSettingsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_warranty_v1_warranty_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetSettingsRequest.ProtoReflect.Descriptor instead.
func (*GetSettingsRequest) Descriptor() ([]byte, []int) {
	return file_warranty_v1_warranty_proto_rawDescGZIP(), []int{15}
}

type UpdateSettingsRequest struct {
	state                protoimpl.MessageState `protogen:"open.v1"`
	ExcelSyncPath        string                 `protobuf:"bytes,1,opt,name=excel_sync_path,json=excelSyncPath,proto3" json:"excel_sync_path,omitempty"`
	ProductosCatalogPath string                 `protobuf:"bytes,2,opt,name=productos_catalog_path,json=productosCatalogPath,proto3" json:"productos_catalog_path,omitempty"`
	unknownFields        protoimpl.UnknownFields
	sizeCache            protoimpl.SizeCache
}

func (x *UpdateSettingsRequest) Reset() {
	*x = UpdateSettingsRequest{}
	mi := &file_warranty_v1_warranty_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateSettingsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateSettingsRequest) ProtoMessage() {}

func (x *UpdateSettingsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_warranty_v1_warranty_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateSettingsRequest.ProtoReflect.Descriptor instead.
func (*UpdateSettingsRequest) Descriptor() ([]byte, []int) {
	return file_warranty_v1_warranty_proto_rawDescGZIP(), []int{16}
}

func (x *UpdateSettingsRequest) GetExcelSyncPath() string {
	if x != nil {
		return x.ExcelSyncPath
	}
	return ""
}

func (x *UpdateSettingsRequest) GetProductosCatalogPath() string {
	if x != nil {
		return x.ProductosCatalogPath
	}
	return ""
}

type SettingsResponse struct {
	state                protoimpl.MessageState `protogen:"open.v1"`
	ExcelSyncPath        string                 `protobuf:"bytes,1,opt,name=excel_sync_path,json=excelSyncPath,proto3" json:"excel_sync_path,omitempty"`
	ProductosCatalogPath string                 `protobuf:"bytes,2,opt,name=productos_catalog_path,json=productosCatalogPath,proto3" json:"productos_catalog_path,omitempty"`
	LastSyncStatus       string                 `protobuf:"bytes,3,opt,name=last_sync_status,json=lastSyncStatus,proto3" json:"last_sync_status,omitempty"`
	LastScanStatus       string                 `protobuf:"bytes,4,opt,name=last_scan_status,json=lastScanStatus,proto3" json:"last_scan_status,omitempty"`
	unknownFields        protoimpl.UnknownFields
	sizeCache            protoimpl.SizeCache
}

func (x *SettingsResponse) Reset() {
	*x = SettingsResponse{}
	mi := &file_warranty_v1_warranty_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SettingsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SettingsResponse) ProtoMessage() {}

func (x *SettingsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_warranty_v1_warranty_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SettingsResponse.ProtoReflect.Descriptor instead.
func (*SettingsResponse) Descriptor() ([]byte, []int) {
	return file_warranty_v1_warranty_proto_rawDescGZIP(), []int{17}
}

func (x *SettingsResponse) GetExcelSyncPath() string {
	if x != nil {
		return x.ExcelSyncPath
	}
	return ""
}

func (x *SettingsResponse) GetProductosCatalogPath() string {
	if x != nil {
		return x.ProductosCatalogPath
	}
	return ""
}

func (x *SettingsResponse) GetLastSyncStatus() string {
	if x != nil {
		return x.LastSyncStatus
	}
	return ""
}

func (x *SettingsResponse) GetLastScanStatus() string {
	if x != nil {
		return x.LastScanStatus
	}
	return ""
}

type ClientIdentity struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ClientName    string                 `protobuf:"bytes,1,opt,name=client_name,json=clientName,proto3" json:"client_name,omitempty"`
	ClientEmail   string                 `protobuf:"bytes,2,opt,name=client_email,json=clientEmail,proto3" json:"client_email,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ClientIdentity) Reset() {
	*x = ClientIdentity{}
	mi := &file_warranty_v1_warranty_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ClientIdentity) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ClientIdentity) ProtoMessage() {}

func (x *ClientIdentity) ProtoReflect() protoreflect.Message {
	mi := &file_warranty_v1_warranty_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ClientIdentity.ProtoReflect.Descriptor instead.
func (*ClientIdentity) Descriptor() ([]byte, []int) {
	return file_warranty_v1_warranty_proto_rawDescGZIP(), []int{18}
}

func (x *ClientIdentity) GetClientName() string {
	if x != nil {
		return x.ClientName
	}
	return ""
}

func (x *ClientIdentity) GetClientEmail() string {
	if x != nil {
		return x.ClientEmail
	}
	return ""
}

type ClientGroup struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	Id             int32                  `protobuf:"varint,1,opt,name=id,proto3" json:"id,omitempty"`
	CanonicalName  string                 `protobuf:"bytes,2,opt,name=canonical_name,json=canonicalName,proto3" json:"canonical_name,omitempty"`
	CanonicalEmail string                 `protobuf:"bytes,3,opt,name=canonical_email,json=canonicalEmail,proto3" json:"canonical_email,omitempty"`
	CanonicalPhone string                 `protobuf:"bytes,4,opt,name=canonical_phone,json=canonicalPhone,proto3" json:"canonical_phone,omitempty"`
	Members        []*ClientIdentity      `protobuf:"bytes,5,rep,name=members,proto3" json:"members,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *ClientGroup) Reset() {
	*x = ClientGroup{}
	mi := &file_warranty_v1_warranty_proto_msgTypes[19]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ClientGroup) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ClientGroup) ProtoMessage() {}

func (x *ClientGroup) ProtoReflect() protoreflect.Message {
	mi := &file_warranty_v1_warranty_proto_msgTypes[19]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ClientGroup.ProtoReflect.Descriptor instead.
func (*ClientGroup) Descriptor() ([]byte, []int) {
	return file_warranty_v1_warranty_proto_rawDescGZIP(), []int{19}
}

func (x *ClientGroup) GetId() int32 {
	if x != nil {
		return x.Id
	}
	return 0
}

func (x *ClientGroup) GetCanonicalName() string {
	if x != nil {
		return x.CanonicalName
	}
	return ""
}

func (x *ClientGroup) GetCanonicalEmail() string {
	if x != nil {
		return x.CanonicalEmail
	}
	return ""
}

func (x *ClientGroup) GetCanonicalPhone() string {
	if x != nil {
		return x.CanonicalPhone
	}
	return ""
}

func (x *ClientGroup) GetMembers() []*ClientIdentity {
	if x != nil {
		return x.Members
	}
	return nil
}

type ListClientGroupsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListClientGroupsRequest) Reset() {
	*x = ListClientGroupsRequest{}
	mi := &file_warranty_v1_warranty_proto_msgTypes[20]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListClientGroupsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListClientGroupsRequest) ProtoMessage() {}

func (x *ListClientGroupsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_warranty_v1_warranty_proto_msgTypes[20]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListClientGroupsRequest.ProtoReflect.Descriptor instead.
func (*ListClientGroupsRequest) Descriptor() ([]byte, []int) {
	return file_warranty_v1_warranty_proto_rawDescGZIP(), []int{20}
}

type ListClientGroupsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Groups        []*ClientGroup         `protobuf:"bytes,1,rep,name=groups,proto3" json:"groups,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListClientGroupsResponse) Reset() {
	*x = ListClientGroupsResponse{}
	mi := &file_warranty_v1_warranty_proto_msgTypes[21]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListClientGroupsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListClientGroupsResponse) ProtoMessage() {}

func (x *ListClientGroupsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_warranty_v1_warranty_proto_msgTypes[21]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListClientGroupsResponse.ProtoReflect.Descriptor instead.
func (*ListClientGroupsResponse) Descriptor() ([]byte, []int) {
	return file_warranty_v1_warranty_proto_rawDescGZIP(), []int{21}
}

func (x *ListClientGroupsResponse) GetGroups() []*ClientGroup {
	if x != nil {
		return x.Groups
	}
	return nil
}

type UnifyClientsRequest struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// Client names to merge; at least two resolved identities required.
	Names         []string `protobuf:"bytes,1,rep,name=names,proto3" json:"names,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UnifyClientsRequest) Reset() {
	*x = UnifyClientsRequest{}
	mi := &file_warranty_v1_warranty_proto_msgTypes[22]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UnifyClientsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UnifyClientsRequest) ProtoMessage() {}

func (x *UnifyClientsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_warranty_v1_warranty_proto_msgTypes[22]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UnifyClientsRequest.ProtoReflect.Descriptor instead.
func (*UnifyClientsRequest) Descriptor() ([]byte, []int) {
	return file_warranty_v1_warranty_proto_rawDescGZIP(), []int{22}
}

func (x *UnifyClientsRequest) GetNames() []string {
	if x != nil {
		return x.Names
	}
	return nil
}

type UnifyClientsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	GroupId       int32                  `protobuf:"varint,1,opt,name=group_id,json=groupId,proto3" json:"group_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UnifyClientsResponse) Reset() {
	*x = UnifyClientsResponse{}
	mi := &file_warranty_v1_warranty_proto_msgTypes[23]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UnifyClientsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UnifyClientsResponse) ProtoMessage() {}

func (x *UnifyClientsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_warranty_v1_warranty_proto_msgTypes[23]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UnifyClientsResponse.ProtoReflect.Descriptor instead.
func (*UnifyClientsResponse) Descriptor() ([]byte, []int) {
	return file_warranty_v1_warranty_proto_rawDescGZIP(), []int{23}
}

func (x *UnifyClientsResponse) GetGroupId() int32 {
	if x != nil {
		return x.GroupId
	}
	return 0
}

type RemoveGroupMemberRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	GroupId       int32                  `protobuf:"varint,1,opt,name=group_id,json=groupId,proto3" json:"group_id,omitempty"`
	ClientName    string                 `protobuf:"bytes,2,opt,name=client_name,json=clientName,proto3" json:"client_name,omitempty"`
	ClientEmail   string                 `protobuf:"bytes,3,opt,name=client_email,json=clientEmail,proto3" json:"client_email,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RemoveGroupMemberRequest) Reset() {
	*x = RemoveGroupMemberRequest{}
	mi := &file_warranty_v1_warranty_proto_msgTypes[24]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RemoveGroupMemberRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RemoveGroupMemberRequest) ProtoMessage() {}

func (x *RemoveGroupMemberRequest) ProtoReflect() protoreflect.Message {
	mi := &file_warranty_v1_warranty_proto_msgTypes[24]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RemoveGroupMemberRequest.ProtoReflect.Descriptor instead.
func (*RemoveGroupMemberRequest) Descriptor() ([]byte, []int) {
	return file_warranty_v1_warranty_proto_rawDescGZIP(), []int{24}
}

func (x *RemoveGroupMemberRequest) GetGroupId() int32 {
	if x != nil {
		return x.GroupId
	}
	return 0
}

func (x *RemoveGroupMemberRequest) GetClientName() string {
	if x != nil {
		return x.ClientName
	}
	return ""
}

func (x *RemoveGroupMemberRequest) GetClientEmail() string {
	if x != nil {
		return x.ClientEmail
	}
	return ""
}

type RemoveGroupMemberResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Removed       bool                   `protobuf:"varint,1,opt,name=removed,proto3" json:"removed,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RemoveGroupMemberResponse) Reset() {
	*x = RemoveGroupMemberResponse{}
	mi := &file_warranty_v1_warranty_proto_msgTypes[25]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RemoveGroupMemberResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RemoveGroupMemberResponse) ProtoMessage() {}

func (x *RemoveGroupMemberResponse) ProtoReflect() protoreflect.Message {
	mi := &file_warranty_v1_warranty_proto_msgTypes[25]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RemoveGroupMemberResponse.ProtoReflect.Descriptor instead.
func (*RemoveGroupMemberResponse) Descriptor() ([]byte, []int) {
	return file_warranty_v1_warranty_proto_rawDescGZIP(), []int{25}
}

func (x *RemoveGroupMemberResponse) GetRemoved() bool {
	if x != nil {
		return x.Removed
	}
	return false
}

type SerialSummary struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Serial        string                 `protobuf:"bytes,1,opt,name=serial,proto3" json:"serial,omitempty"`
	ProductName   string                 `protobuf:"bytes,2,opt,name=product_name,json=productName,proto3" json:"product_name,omitempty"`
	Count         int32                  `protobuf:"varint,3,opt,name=count,proto3" json:"count,omitempty"`
	FirstDate     string                 `protobuf:"bytes,4,opt,name=first_date,json=firstDate,proto3" json:"first_date,omitempty"`
	LastDate      string                 `protobuf:"bytes,5,opt,name=last_date,json=lastDate,proto3" json:"last_date,omitempty"`
	ClientsSample []string               `protobuf:"bytes,6,rep,name=clients_sample,json=clientsSample,proto3" json:"clients_sample,omitempty"`
	WarrantyValid bool                   `protobuf:"varint,7,opt,name=warranty_valid,json=warrantyValid,proto3" json:"warranty_valid,omitempty"`
	Items         []*RmaItem             `protobuf:"bytes,8,rep,name=items,proto3" json:"items,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SerialSummary) Reset() {
	*x = SerialSummary{}
	mi := &file_warranty_v1_warranty_proto_msgTypes[26]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SerialSummary) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SerialSummary) ProtoMessage() {}

func (x *SerialSummary) ProtoReflect() protoreflect.Message {
	mi := &file_warranty_v1_warranty_proto_msgTypes[26]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SerialSummary.ProtoReflect.Descriptor instead.
func (*SerialSummary) Descriptor() ([]byte, []int) {
	return file_warranty_v1_warranty_proto_rawDescGZIP(), []int{26}
}

func (x *SerialSummary) GetSerial() string {
	if x != nil {
		return x.Serial
	}
	return ""
}

func (x *SerialSummary) GetProductName() string {
	if x != nil {
		return x.ProductName
	}
	return ""
}

func (x *SerialSummary) GetCount() int32 {
	if x != nil {
		return x.Count
	}
	return 0
}

func (x *SerialSummary) GetFirstDate() string {
	if x != nil {
		return x.FirstDate
	}
	return ""
}

func (x *SerialSummary) GetLastDate() string {
	if x != nil {
		return x.LastDate
	}
	return ""
}

func (x *SerialSummary) GetClientsSample() []string {
	if x != nil {
		return x.ClientsSample
	}
	return nil
}

func (x *SerialSummary) GetWarrantyValid() bool {
	if x != nil {
		return x.WarrantyValid
	}
	return false
}

func (x *SerialSummary) GetItems() []*RmaItem {
	if x != nil {
		return x.Items
	}
	return nil
}

type ListSerialSummariesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListSerialSummariesRequest) Reset() {
	*x = ListSerialSummariesRequest{}
	mi := &file_warranty_v1_warranty_proto_msgTypes[27]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListSerialSummariesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListSerialSummariesRequest) ProtoMessage() {}

func (x *ListSerialSummariesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_warranty_v1_warranty_proto_msgTypes[27]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListSerialSummariesRequest.ProtoReflect.Descriptor instead.
func (*ListSerialSummariesRequest) Descriptor() ([]byte, []int) {
	return file_warranty_v1_warranty_proto_rawDescGZIP(), []int{27}
}

type ListSerialSummariesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Summaries     []*SerialSummary       `protobuf:"bytes,1,rep,name=summaries,proto3" json:"summaries,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListSerialSummariesResponse) Reset() {
	*x = ListSerialSummariesResponse{}
	mi := &file_warranty_v1_warranty_proto_msgTypes[28]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListSerialSummariesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListSerialSummariesResponse) ProtoMessage() {}

func (x *ListSerialSummariesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_warranty_v1_warranty_proto_msgTypes[28]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListSerialSummariesResponse.ProtoReflect.Descriptor instead.
func (*ListSerialSummariesResponse) Descriptor() ([]byte, []int) {
	return file_warranty_v1_warranty_proto_rawDescGZIP(), []int{28}
}

func (x *ListSerialSummariesResponse) GetSummaries() []*SerialSummary {
	if x != nil {
		return x.Summaries
	}
	return nil
}

type SetSerialWarrantyRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Serial        string                 `protobuf:"bytes,1,opt,name=serial,proto3" json:"serial,omitempty"`
	Valid         bool                   `protobuf:"varint,2,opt,name=valid,proto3" json:"valid,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SetSerialWarrantyRequest) Reset() {
	*x = SetSerialWarrantyRequest{}
	mi := &file_warranty_v1_warranty_proto_msgTypes[29]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SetSerialWarrantyRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SetSerialWarrantyRequest) ProtoMessage() {}

func (x *SetSerialWarrantyRequest) ProtoReflect() protoreflect.Message {
	mi := &file_warranty_v1_warranty_proto_msgTypes[29]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SetSerialWarrantyRequest.ProtoReflect.Descriptor instead.
func (*SetSerialWarrantyRequest) Descriptor() ([]byte, []int) {
	return file_warranty_v1_warranty_proto_rawDescGZIP(), []int{29}
}

func (x *SetSerialWarrantyRequest) GetSerial() string {
	if x != nil {
		return x.Serial
	}
	return ""
}

func (x *SetSerialWarrantyRequest) GetValid() bool {
	if x != nil {
		return x.Valid
	}
	return false
}

type SetSerialWarrantyResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SetSerialWarrantyResponse) Reset() {
	*x = SetSerialWarrantyResponse{}
	mi := &file_warranty_v1_warranty_proto_msgTypes[30]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SetSerialWarrantyResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SetSerialWarrantyResponse) ProtoMessage() {}

func (x *SetSerialWarrantyResponse) ProtoReflect() protoreflect.Message {
	mi := &file_warranty_v1_warranty_proto_msgTypes[30]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SetSerialWarrantyResponse.ProtoReflect.Descriptor instead.
func (*SetSerialWarrantyResponse) Descriptor() ([]byte, []int) {
	return file_warranty_v1_warranty_proto_rawDescGZIP(), []int{30}
}

var File_warranty_v1_warranty_proto protoreflect.FileDescriptor

const file_warranty_v1_warranty_proto_rawDesc = "" +
	"\n" +
	"\x1awarranty/v1/warranty.proto\x12\vwarranty.v1\"o\n" +
	"\x15SyncWarrantiesRequest\x12\x1f\n" +
	"\vsource_path\x18\x01 \x01(\tR\n" +
	"sourcePath\x12\x16\n" +
	"\x06upload\x18\x02 \x01(\fR\x06upload\x12\x1d\n" +
	"\n" +
	"full_reset\x18\x03 \x01(\bR\tfullReset\"\xe6\x01\n" +
	"\x18ImportSpecialRmasRequest\x12\x1f\n" +
	"\vsource_path\x18\x01 \x01(\tR\n" +
	"sourcePath\x12\x16\n" +
	"\x06upload\x18\x02 \x01(\fR\x06upload\x12S\n" +
	"\n" +
	"manual_map\x18\x03 \x03(\v24.warranty.v1.ImportSpecialRmasRequest.ManualMapEntryR\tmanualMap\x1a<\n" +
	"\x0eManualMapEntry\x12\x10\n" +
	"\x03key\x18\x01 \x01(\tR\x03key\x12\x14\n" +
	"\x05value\x18\x02 \x01(\tR\x05value:\x028\x01\"1\n" +
	"\x12ScanCatalogRequest\x12\x1b\n" +
	"\troot_path\x18\x01 \x01(\tR\brootPath\"*\n" +
	"\x11SubmitJobResponse\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\tR\x05jobId\"'\n" +
	"\x0ePollJobRequest\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\tR\x05jobId\"~\n" +
	"\x0fPollJobResponse\x12\x16\n" +
	"\x06status\x18\x01 \x01(\tR\x06status\x12\x18\n" +
	"\apercent\x18\x02 \x01(\x05R\apercent\x12\x18\n" +
	"\amessage\x18\x03 \x01(\tR\amessage\x12\x1f\n" +
	"\vresult_json\x18\x04 \x01(\tR\n" +
	"resultJson\"N\n" +
	"\x15ResolveColumnsRequest\x12\x18\n" +
	"\aheaders\x18\x01 \x03(\tR\aheaders\x12\x1b\n" +
	"\talias_set\x18\x02 \x01(\tR\baliasSet\"\x9c\x01\n" +
	"\x16ResolveColumnsResponse\x12G\n" +
	"\x06fields\x18\x01 \x03(\v2/.warranty.v1.ResolveColumnsResponse.FieldsEntryR\x06fields\x1a9\n" +
	"\vFieldsEntry\x12\x10\n" +
	"\x03key\x18\x01 \x01(\tR\x03key\x12\x14\n" +
	"\x05value\x18\x02 \x01(\x05R\x05value:\x028\x01\"\xfb\x03\n" +
	"\aRmaItem\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1d\n" +
	"\n" +
	"rma_number\x18\x02 \x01(\tR\trmaNumber\x12\x18\n" +
	"\aproduct\x18\x03 \x01(\tR\aproduct\x12\x16\n" +
	"\x06serial\x18\x04 \x01(\tR\x06serial\x12\x1f\n" +
	"\vclient_name\x18\x05 \x01(\tR\n" +
	"clientName\x12!\n" +
	"\fclient_email\x18\x06 \x01(\tR\vclientEmail\x12!\n" +
	"\fclient_phone\x18\a \x01(\tR\vclientPhone\x12#\n" +
	"\rdate_received\x18\b \x01(\tR\fdateReceived\x12\x1f\n" +
	"\vdate_pickup\x18\t \x01(\tR\n" +
	"datePickup\x12\x1b\n" +
	"\tdate_sent\x18\n" +
	" \x01(\tR\bdateSent\x12\x16\n" +
	"\x06averia\x18\v \x01(\tR\x06averia\x12$\n" +
	"\robservaciones\x18\f \x01(\tR\robservaciones\x12\x16\n" +
	"\x06estado\x18\r \x01(\tR\x06estado\x12\x16\n" +
	"\x06hidden\x18\x0e \x01(\bR\x06hidden\x12\x1b\n" +
	"\thidden_by\x18\x0f \x01(\tR\bhiddenBy\x12\x1b\n" +
	"\texcel_row\x18\x10 \x01(\x05R\bexcelRow\x12\x1d\n" +
	"\n" +
	"created_at\x18\x11 \x01(\tR\tcreatedAt\">\n" +
	"\x15ListWarrantiesRequest\x12%\n" +
	"\x0einclude_hidden\x18\x01 \x01(\bR\rincludeHidden\"D\n" +
	"\x16ListWarrantiesResponse\x12*\n" +
	"\x05items\x18\x01 \x03(\v2\x14.warranty.v1.RmaItemR\x05items\"N\n" +
	"\x13UpdateEstadoRequest\x12\x1f\n" +
	"\vrma_numbers\x18\x01 \x03(\tR\n" +
	"rmaNumbers\x12\x16\n" +
	"\x06estado\x18\x02 \x01(\tR\x06estado\"L\n" +
	"\x17UpdatePickupDateRequest\x12\x1d\n" +
	"\n" +
	"rma_number\x18\x01 \x01(\tR\trmaNumber\x12\x12\n" +
	"\x04date\x18\x02 \x01(\tR\x04date\"f\n" +
	"\x10SetHiddenRequest\x12\x1d\n" +
	"\n" +
	"rma_number\x18\x01 \x01(\tR\trmaNumber\x12\x16\n" +
	"\x06hidden\x18\x02 \x01(\bR\x06hidden\x12\x1b\n" +
	"\thidden_by\x18\x03 \x01(\tR\bhiddenBy\"/\n" +
	"\x13UpdateCountResponse\x12\x18\n" +
	"\aupdated\x18\x01 \x01(\x05R\aupdated\"\x14\n" +
	"\x12GetSettingsRequest\"u\n" +
	"\x15UpdateSettingsRequest\x12&\n" +
	"\x0fexcel_sync_path\x18\x01 \x01(\tR\rexcelSyncPath\x124\n" +
	"\x16productos_catalog_path\x18\x02 \x01(\tR\x14productosCatalogPath\"\xc4\x01\n" +
	"\x10SettingsResponse\x12&\n" +
	"\x0fexcel_sync_path\x18\x01 \x01(\tR\rexcelSyncPath\x124\n" +
	"\x16productos_catalog_path\x18\x02 \x01(\tR\x14productosCatalogPath\x12(\n" +
	"\x10last_sync_status\x18\x03 \x01(\tR\x0elastSyncStatus\x12(\n" +
	"\x10last_scan_status\x18\x04 \x01(\tR\x0elastScanStatus\"T\n" +
	"\x0eClientIdentity\x12\x1f\n" +
	"\vclient_name\x18\x01 \x01(\tR\n" +
	"clientName\x12!\n" +
	"\fclient_email\x18\x02 \x01(\tR\vclientEmail\"\xcd\x01\n" +
	"\vClientGroup\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\x05R\x02id\x12%\n" +
	"\x0ecanonical_name\x18\x02 \x01(\tR\rcanonicalName\x12'\n" +
	"\x0fcanonical_email\x18\x03 \x01(\tR\x0ecanonicalEmail\x12'\n" +
	"\x0fcanonical_phone\x18\x04 \x01(\tR\x0ecanonicalPhone\x125\n" +
	"\amembers\x18\x05 \x03(\v2\x1b.warranty.v1.ClientIdentityR\amembers\"\x19\n" +
	"\x17ListClientGroupsRequest\"L\n" +
	"\x18ListClientGroupsResponse\x120\n" +
	"\x06groups\x18\x01 \x03(\v2\x18.warranty.v1.ClientGroupR\x06groups\"+\n" +
	"\x13UnifyClientsRequest\x12\x14\n" +
	"\x05names\x18\x01 \x03(\tR\x05names\"1\n" +
	"\x14UnifyClientsResponse\x12\x19\n" +
	"\bgroup_id\x18\x01 \x01(\x05R\agroupId\"y\n" +
	"\x18RemoveGroupMemberRequest\x12\x19\n" +
	"\bgroup_id\x18\x01 \x01(\x05R\agroupId\x12\x1f\n" +
	"\vclient_name\x18\x02 \x01(\tR\n" +
	"clientName\x12!\n" +
	"\fclient_email\x18\x03 \x01(\tR\vclientEmail\"5\n" +
	"\x19RemoveGroupMemberResponse\x12\x18\n" +
	"\aremoved\x18\x01 \x01(\bR\aremoved\"\x96\x02\n" +
	"\rSerialSummary\x12\x16\n" +
	"\x06serial\x18\x01 \x01(\tR\x06serial\x12!\n" +
	"\fproduct_name\x18\x02 \x01(\tR\vproductName\x12\x14\n" +
	"\x05count\x18\x03 \x01(\x05R\x05count\x12\x1d\n" +
	"\n" +
	"first_date\x18\x04 \x01(\tR\tfirstDate\x12\x1b\n" +
	"\tlast_date\x18\x05 \x01(\tR\blastDate\x12%\n" +
	"\x0eclients_sample\x18\x06 \x03(\tR\rclientsSample\x12%\n" +
	"\x0ewarranty_valid\x18\a \x01(\bR\rwarrantyValid\x12*\n" +
	"\x05items\x18\b \x03(\v2\x14.warranty.v1.RmaItemR\x05items\"\x1c\n" +
	"\x1aListSerialSummariesRequest\"W\n" +
	"\x1bListSerialSummariesResponse\x128\n" +
	"\tsummaries\x18\x01 \x03(\v2\x1a.warranty.v1.SerialSummaryR\tsummaries\"H\n" +
	"\x18SetSerialWarrantyRequest\x12\x16\n" +
	"\x06serial\x18\x01 \x01(\tR\x06serial\x12\x14\n" +
	"\x05valid\x18\x02 \x01(\bR\x05valid\"\x1b\n" +
	"\x19SetSerialWarrantyResponse2\x99\v\n" +
	"\x0fWarrantyService\x12T\n" +
	"\x0eSyncWarranties\x12\".warranty.v1.SyncWarrantiesRequest\x1a\x1e.warranty.v1.SubmitJobResponse\x12Z\n" +
	"\x11ImportSpecialRmas\x12%.warranty.v1.ImportSpecialRmasRequest\x1a\x1e.warranty.v1.SubmitJobResponse\x12N\n" +
	"\vScanCatalog\x12\x1f.warranty.v1.ScanCatalogRequest\x1a\x1e.warranty.v1.SubmitJobResponse\x12D\n" +
	"\aPollJob\x12\x1b.warranty.v1.PollJobRequest\x1a\x1c.warranty.v1.PollJobResponse\x12Y\n" +
	"\x0eResolveColumns\x12\".warranty.v1.ResolveColumnsRequest\x1a#.warranty.v1.ResolveColumnsResponse\x12Y\n" +
	"\x0eListWarranties\x12\".warranty.v1.ListWarrantiesRequest\x1a#.warranty.v1.ListWarrantiesResponse\x12R\n" +
	"\fUpdateEstado\x12 .warranty.v1.UpdateEstadoRequest\x1a .warranty.v1.UpdateCountResponse\x12Z\n" +
	"\x10UpdatePickupDate\x12$.warranty.v1.UpdatePickupDateRequest\x1a .warranty.v1.UpdateCountResponse\x12L\n" +
	"\tSetHidden\x12\x1d.warranty.v1.SetHiddenRequest\x1a .warranty.v1.UpdateCountResponse\x12M\n" +
	"\vGetSettings\x12\x1f.warranty.v1.GetSettingsRequest\x1a\x1d.warranty.v1.SettingsResponse\x12S\n" +
	"\x0eUpdateSettings\x12\".warranty.v1.UpdateSettingsRequest\x1a\x1d.warranty.v1.SettingsResponse\x12_\n" +
	"\x10ListClientGroups\x12$.warranty.v1.ListClientGroupsRequest\x1a%.warranty.v1.ListClientGroupsResponse\x12S\n" +
	"\fUnifyClients\x12 .warranty.v1.UnifyClientsRequest\x1a!.warranty.v1.UnifyClientsResponse\x12b\n" +
	"\x11RemoveGroupMember\x12%.warranty.v1.RemoveGroupMemberRequest\x1a&.warranty.v1.RemoveGroupMemberResponse\x12h\n" +
	"\x13ListSerialSummaries\x12'.warranty.v1.ListSerialSummariesRequest\x1a(.warranty.v1.ListSerialSummariesResponse\x12b\n" +
	"\x11SetSerialWarranty\x12%.warranty.v1.SetSerialWarrantyRequest\x1a&.warranty.v1.SetSerialWarrantyResponseBJZHgithub.com/apx-soporte/warranty-tracker/gen/proto/warranty/v1;warrantypbb\x06proto3"

var (
	file_warranty_v1_warranty_proto_rawDescOnce sync.Once
	file_warranty_v1_warranty_proto_rawDescData []byte
)

func file_warranty_v1_warranty_proto_rawDescGZIP() []byte {
	file_warranty_v1_warranty_proto_rawDescOnce.Do(func() {
		file_warranty_v1_warranty_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_warranty_v1_warranty_proto_rawDesc), len(file_warranty_v1_warranty_proto_rawDesc)))
	})
	return file_warranty_v1_warranty_proto_rawDescData
}

var file_warranty_v1_warranty_proto_msgTypes = make([]protoimpl.MessageInfo, 33)
var file_warranty_v1_warranty_proto_goTypes = []any{
	(*SyncWarrantiesRequest)(nil),       // 0: warranty.v1.SyncWarrantiesRequest
	(*ImportSpecialRmasRequest)(nil),    // 1: warranty.v1.ImportSpecialRmasRequest
	(*ScanCatalogRequest)(nil),          // 2: warranty.v1.ScanCatalogRequest
	(*SubmitJobResponse)(nil),           // 3: warranty.v1.SubmitJobResponse
	(*PollJobRequest)(nil),              // 4: warranty.v1.PollJobRequest
	(*PollJobResponse)(nil),             // 5: warranty.v1.PollJobResponse
	(*ResolveColumnsRequest)(nil),       // 6: warranty.v1.ResolveColumnsRequest
	(*ResolveColumnsResponse)(nil),      // 7: warranty.v1.ResolveColumnsResponse
	(*RmaItem)(nil),                     // 8: warranty.v1.RmaItem
	(*ListWarrantiesRequest)(nil),       // 9: warranty.v1.ListWarrantiesRequest
	(*ListWarrantiesResponse)(nil),      // 10: warranty.v1.ListWarrantiesResponse
	(*UpdateEstadoRequest)(nil),         // 11: warranty.v1.UpdateEstadoRequest
	(*UpdatePickupDateRequest)(nil),     // 12: warranty.v1.UpdatePickupDateRequest
	(*SetHiddenRequest)(nil),            // 13: warranty.v1.SetHiddenRequest
	(*UpdateCountResponse)(nil),         // 14: warranty.v1.UpdateCountResponse
	(*GetSettingsRequest)(nil),          // 15: warranty.v1.GetSettingsRequest
	(*UpdateSettingsRequest)(nil),       // 16: warranty.v1.UpdateSettingsRequest
	(*SettingsResponse)(nil),            // 17: warranty.v1.SettingsResponse
	(*ClientIdentity)(nil),              // 18: warranty.v1.ClientIdentity
	(*ClientGroup)(nil),                 // 19: warranty.v1.ClientGroup
	(*ListClientGroupsRequest)(nil),     // 20: warranty.v1.ListClientGroupsRequest
	(*ListClientGroupsResponse)(nil),    // 21: warranty.v1.ListClientGroupsResponse
	(*UnifyClientsRequest)(nil),         // 22: warranty.v1.UnifyClientsRequest
	(*UnifyClientsResponse)(nil),        // 23: warranty.v1.UnifyClientsResponse
	(*RemoveGroupMemberRequest)(nil),    // 24: warranty.v1.RemoveGroupMemberRequest
	(*RemoveGroupMemberResponse)(nil),   // 25: warranty.v1.RemoveGroupMemberResponse
	(*SerialSummary)(nil),               // 26: warranty.v1.SerialSummary
	(*ListSerialSummariesRequest)(nil),  // 27: warranty.v1.ListSerialSummariesRequest
	(*ListSerialSummariesResponse)(nil), // 28: warranty.v1.ListSerialSummariesResponse
	(*SetSerialWarrantyRequest)(nil),    // 29: warranty.v1.SetSerialWarrantyRequest
	(*SetSerialWarrantyResponse)(nil),   // 30: warranty.v1.SetSerialWarrantyResponse
	nil,                                 // 31: warranty.v1.ImportSpecialRmasRequest.ManualMapEntry
	nil,                                 // 32: warranty.v1.ResolveColumnsResponse.FieldsEntry
}
var file_warranty_v1_warranty_proto_depIdxs = []int32{
	31, // 0: warranty.v1.ImportSpecialRmasRequest.manual_map:type_name -> warranty.v1.ImportSpecialRmasRequest.ManualMapEntry
	32, // 1: warranty.v1.ResolveColumnsResponse.fields:type_name -> warranty.v1.ResolveColumnsResponse.FieldsEntry
	8,  // 2: warranty.v1.ListWarrantiesResponse.items:type_name -> warranty.v1.RmaItem
	18, // 3: warranty.v1.ClientGroup.members:type_name -> warranty.v1.ClientIdentity
	19, // 4: warranty.v1.ListClientGroupsResponse.groups:type_name -> warranty.v1.ClientGroup
	8,  // 5: warranty.v1.SerialSummary.items:type_name -> warranty.v1.RmaItem
	26, // 6: warranty.v1.ListSerialSummariesResponse.summaries:type_name -> warranty.v1.SerialSummary
	0,  // 7: warranty.v1.WarrantyService.SyncWarranties:input_type -> warranty.v1.SyncWarrantiesRequest
	1,  // 8: warranty.v1.WarrantyService.ImportSpecialRmas:input_type -> warranty.v1.ImportSpecialRmasRequest
	2,  // 9: warranty.v1.WarrantyService.ScanCatalog:input_type -> warranty.v1.ScanCatalogRequest
	4,  // 10: warranty.v1.WarrantyService.PollJob:input_type -> warranty.v1.PollJobRequest
	6,  // 11: warranty.v1.WarrantyService.ResolveColumns:input_type -> warranty.v1.ResolveColumnsRequest
	9,  // 12: warranty.v1.WarrantyService.ListWarranties:input_type -> warranty.v1.ListWarrantiesRequest
	11, // 13: warranty.v1.WarrantyService.UpdateEstado:input_type -> warranty.v1.UpdateEstadoRequest
	12, // 14: warranty.v1.WarrantyService.UpdatePickupDate:input_type -> warranty.v1.UpdatePickupDateRequest
	13, // 15: warranty.v1.WarrantyService.SetHidden:input_type -> warranty.v1.SetHiddenRequest
	15, // 16: warranty.v1.WarrantyService.GetSettings:input_type -> warranty.v1.GetSettingsRequest
	16, // 17: warranty.v1.WarrantyService.UpdateSettings:input_type -> warranty.v1.UpdateSettingsRequest
	20, // 18: warranty.v1.WarrantyService.ListClientGroups:input_type -> warranty.v1.ListClientGroupsRequest
	22, // 19: warranty.v1.WarrantyService.UnifyClients:input_type -> warranty.v1.UnifyClientsRequest
	24, // 20: warranty.v1.WarrantyService.RemoveGroupMember:input_type -> warranty.v1.RemoveGroupMemberRequest
	27, // 21: warranty.v1.WarrantyService.ListSerialSummaries:input_type -> warranty.v1.ListSerialSummariesRequest
	29, // 22: warranty.v1.WarrantyService.SetSerialWarranty:input_type -> warranty.v1.SetSerialWarrantyRequest
	3,  // 23: warranty.v1.WarrantyService.SyncWarranties:output_type -> warranty.v1.SubmitJobResponse
	3,  // 24: warranty.v1.WarrantyService.ImportSpecialRmas:output_type -> warranty.v1.SubmitJobResponse
	3,  // 25: warranty.v1.WarrantyService.ScanCatalog:output_type -> warranty.v1.SubmitJobResponse
	5,  // 26: warranty.v1.WarrantyService.PollJob:output_type -> warranty.v1.PollJobResponse
	7,  // 27: warranty.v1.WarrantyService.ResolveColumns:output_type -> warranty.v1.ResolveColumnsResponse
	10, // 28: warranty.v1.WarrantyService.ListWarranties:output_type -> warranty.v1.ListWarrantiesResponse
	14, // 29: warranty.v1.WarrantyService.UpdateEstado:output_type -> warranty.v1.UpdateCountResponse
	14, // 30: warranty.v1.WarrantyService.UpdatePickupDate:output_type -> warranty.v1.UpdateCountResponse
	14, // 31: warranty.v1.WarrantyService.SetHidden:output_type -> warranty.v1.UpdateCountResponse
	17, // 32: warranty.v1.WarrantyService.GetSettings:output_type -> warranty.v1.SettingsResponse
	17, // 33: warranty.v1.WarrantyService.UpdateSettings:output_type -> warranty.v1.SettingsResponse
	21, // 34: warranty.v1.WarrantyService.ListClientGroups:output_type -> warranty.v1.ListClientGroupsResponse
	23, // 35: warranty.v1.WarrantyService.UnifyClients:output_type -> warranty.v1.UnifyClientsResponse
	25, // 36: warranty.v1.WarrantyService.RemoveGroupMember:output_type -> warranty.v1.RemoveGroupMemberResponse
	28, // 37: warranty.v1.WarrantyService.ListSerialSummaries:output_type -> warranty.v1.ListSerialSummariesResponse
	30, // 38: warranty.v1.WarrantyService.SetSerialWarranty:output_type -> warranty.v1.SetSerialWarrantyResponse
	23, // [23:39] is the sub-list for method output_type
	7,  // [7:23] is the sub-list for method input_type
	7,  // [7:7] is the sub-list for extension type_name
	7,  // [7:7] is the sub-list for extension extendee
	0,  // [0:7] is the sub-list for field type_name
}

func init() { file_warranty_v1_warranty_proto_init() }
func file_warranty_v1_warranty_proto_init() {
	if File_warranty_v1_warranty_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_warranty_v1_warranty_proto_rawDesc), len(file_warranty_v1_warranty_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   33,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_warranty_v1_warranty_proto_goTypes,
		DependencyIndexes: file_warranty_v1_warranty_proto_depIdxs,
		MessageInfos:      file_warranty_v1_warranty_proto_msgTypes,
	}.Build()
	File_warranty_v1_warranty_proto = out.File
	file_warranty_v1_warranty_proto_goTypes = nil
	file_warranty_v1_warranty_proto_depIdxs = nil
}
