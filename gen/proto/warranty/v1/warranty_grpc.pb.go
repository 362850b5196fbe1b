// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.5.1
// - protoc             (unknown)
// source: warranty/v1/warranty.proto

package warrantypb

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	WarrantyService_SyncWarranties_FullMethodName      = "/warranty.v1.WarrantyService/SyncWarranties"
	WarrantyService_ImportSpecialRmas_FullMethodName   = "/warranty.v1.WarrantyService/ImportSpecialRmas"
	WarrantyService_ScanCatalog_FullMethodName         = "/warranty.v1.WarrantyService/ScanCatalog"
	WarrantyService_PollJob_FullMethodName             = "/warranty.v1.WarrantyService/PollJob"
	WarrantyService_ResolveColumns_FullMethodName      = "/warranty.v1.WarrantyService/ResolveColumns"
	WarrantyService_ListWarranties_FullMethodName      = "/warranty.v1.WarrantyService/ListWarranties"
	WarrantyService_UpdateEstado_FullMethodName        = "/warranty.v1.WarrantyService/UpdateEstado"
	WarrantyService_UpdatePickupDate_FullMethodName    = "/warranty.v1.WarrantyService/UpdatePickupDate"
	WarrantyService_SetHidden_FullMethodName           = "/warranty.v1.WarrantyService/SetHidden"
	WarrantyService_GetSettings_FullMethodName         = "/warranty.v1.WarrantyService/GetSettings"
	WarrantyService_UpdateSettings_FullMethodName      = "/warranty.v1.WarrantyService/UpdateSettings"
	WarrantyService_ListClientGroups_FullMethodName    = "/warranty.v1.WarrantyService/ListClientGroups"
	WarrantyService_UnifyClients_FullMethodName        = "/warranty.v1.WarrantyService/UnifyClients"
	WarrantyService_RemoveGroupMember_FullMethodName   = "/warranty.v1.WarrantyService/RemoveGroupMember"
	WarrantyService_ListSerialSummaries_FullMethodName = "/warranty.v1.WarrantyService/ListSerialSummaries"
	WarrantyService_SetSerialWarranty_FullMethodName   = "/warranty.v1.WarrantyService/SetSerialWarranty"
)

// WarrantyServiceClient is the client API for WarrantyService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// WarrantyService is the thin operator-facing surface over the
// reconciliation and discovery engine. Long-running work is submitted and
// then polled; nothing here blocks on a job.
type WarrantyServiceClient interface {
	// SyncWarranties starts a warranty-sheet reconciliation job.
	SyncWarranties(ctx context.Context, in *SyncWarrantiesRequest, opts ...grpc.CallOption) (*SubmitJobResponse, error)
	// ImportSpecialRmas starts a special-RMA import job.
	ImportSpecialRmas(ctx context.Context, in *ImportSpecialRmasRequest, opts ...grpc.CallOption) (*SubmitJobResponse, error)
	// ScanCatalog starts a catalog scan job.
	ScanCatalog(ctx context.Context, in *ScanCatalogRequest, opts ...grpc.CallOption) (*SubmitJobResponse, error)
	// PollJob returns the current job snapshot; unknown ids come back with
	// status "not_found".
	PollJob(ctx context.Context, in *PollJobRequest, opts ...grpc.CallOption) (*PollJobResponse, error)
	// ResolveColumns runs a header resolution pass for pre-flight checks and
	// manual-mapping UIs.
	ResolveColumns(ctx context.Context, in *ResolveColumnsRequest, opts ...grpc.CallOption) (*ResolveColumnsResponse, error)
	ListWarranties(ctx context.Context, in *ListWarrantiesRequest, opts ...grpc.CallOption) (*ListWarrantiesResponse, error)
	UpdateEstado(ctx context.Context, in *UpdateEstadoRequest, opts ...grpc.CallOption) (*UpdateCountResponse, error)
	UpdatePickupDate(ctx context.Context, in *UpdatePickupDateRequest, opts ...grpc.CallOption) (*UpdateCountResponse, error)
	SetHidden(ctx context.Context, in *SetHiddenRequest, opts ...grpc.CallOption) (*UpdateCountResponse, error)
	GetSettings(ctx context.Context, in *GetSettingsRequest, opts ...grpc.CallOption) (*SettingsResponse, error)
	UpdateSettings(ctx context.Context, in *UpdateSettingsRequest, opts ...grpc.CallOption) (*SettingsResponse, error)
	// Client unification groups: several sheet identities shown under one
	// canonical client. Never rewrites warranty lines.
	ListClientGroups(ctx context.Context, in *ListClientGroupsRequest, opts ...grpc.CallOption) (*ListClientGroupsResponse, error)
	UnifyClients(ctx context.Context, in *UnifyClientsRequest, opts ...grpc.CallOption) (*UnifyClientsResponse, error)
	RemoveGroupMember(ctx context.Context, in *RemoveGroupMemberRequest, opts ...grpc.CallOption) (*RemoveGroupMemberResponse, error)
	// Per-serial aggregate with the warranty-in-force flag.
	ListSerialSummaries(ctx context.Context, in *ListSerialSummariesRequest, opts ...grpc.CallOption) (*ListSerialSummariesResponse, error)
	SetSerialWarranty(ctx context.Context, in *SetSerialWarrantyRequest, opts ...grpc.CallOption) (*SetSerialWarrantyResponse, error)
}

type warrantyServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewWarrantyServiceClient(cc grpc.ClientConnInterface) WarrantyServiceClient {
	return &warrantyServiceClient{cc}
}

func (c *warrantyServiceClient) SyncWarranties(ctx context.Context, in *SyncWarrantiesRequest, opts ...grpc.CallOption) (*SubmitJobResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(SubmitJobResponse)
	err := c.cc.Invoke(ctx, WarrantyService_SyncWarranties_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *warrantyServiceClient) ImportSpecialRmas(ctx context.Context, in *ImportSpecialRmasRequest, opts ...grpc.CallOption) (*SubmitJobResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(SubmitJobResponse)
	err := c.cc.Invoke(ctx, WarrantyService_ImportSpecialRmas_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *warrantyServiceClient) ScanCatalog(ctx context.Context, in *ScanCatalogRequest, opts ...grpc.CallOption) (*SubmitJobResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(SubmitJobResponse)
	err := c.cc.Invoke(ctx, WarrantyService_ScanCatalog_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *warrantyServiceClient) PollJob(ctx context.Context, in *PollJobRequest, opts ...grpc.CallOption) (*PollJobResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(PollJobResponse)
	err := c.cc.Invoke(ctx, WarrantyService_PollJob_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *warrantyServiceClient) ResolveColumns(ctx context.Context, in *ResolveColumnsRequest, opts ...grpc.CallOption) (*ResolveColumnsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ResolveColumnsResponse)
	err := c.cc.Invoke(ctx, WarrantyService_ResolveColumns_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *warrantyServiceClient) ListWarranties(ctx context.Context, in *ListWarrantiesRequest, opts ...grpc.CallOption) (*ListWarrantiesResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListWarrantiesResponse)
	err := c.cc.Invoke(ctx, WarrantyService_ListWarranties_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *warrantyServiceClient) UpdateEstado(ctx context.Context, in *UpdateEstadoRequest, opts ...grpc.CallOption) (*UpdateCountResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(UpdateCountResponse)
	err := c.cc.Invoke(ctx, WarrantyService_UpdateEstado_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *warrantyServiceClient) UpdatePickupDate(ctx context.Context, in *UpdatePickupDateRequest, opts ...grpc.CallOption) (*UpdateCountResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(UpdateCountResponse)
	err := c.cc.Invoke(ctx, WarrantyService_UpdatePickupDate_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *warrantyServiceClient) SetHidden(ctx context.Context, in *SetHiddenRequest, opts ...grpc.CallOption) (*UpdateCountResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(UpdateCountResponse)
	err := c.cc.Invoke(ctx, WarrantyService_SetHidden_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *warrantyServiceClient) GetSettings(ctx context.Context, in *GetSettingsRequest, opts ...grpc.CallOption) (*SettingsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(SettingsResponse)
	err := c.cc.Invoke(ctx, WarrantyService_GetSettings_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *warrantyServiceClient) UpdateSettings(ctx context.Context, in *UpdateSettingsRequest, opts ...grpc.CallOption) (*SettingsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(SettingsResponse)
	err := c.cc.Invoke(ctx, WarrantyService_UpdateSettings_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *warrantyServiceClient) ListClientGroups(ctx context.Context, in *ListClientGroupsRequest, opts ...grpc.CallOption) (*ListClientGroupsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListClientGroupsResponse)
	err := c.cc.Invoke(ctx, WarrantyService_ListClientGroups_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *warrantyServiceClient) UnifyClients(ctx context.Context, in *UnifyClientsRequest, opts ...grpc.CallOption) (*UnifyClientsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(UnifyClientsResponse)
	err := c.cc.Invoke(ctx, WarrantyService_UnifyClients_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *warrantyServiceClient) RemoveGroupMember(ctx context.Context, in *RemoveGroupMemberRequest, opts ...grpc.CallOption) (*RemoveGroupMemberResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(RemoveGroupMemberResponse)
	err := c.cc.Invoke(ctx, WarrantyService_RemoveGroupMember_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *warrantyServiceClient) ListSerialSummaries(ctx context.Context, in *ListSerialSummariesRequest, opts ...grpc.CallOption) (*ListSerialSummariesResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListSerialSummariesResponse)
	err := c.cc.Invoke(ctx, WarrantyService_ListSerialSummaries_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *warrantyServiceClient) SetSerialWarranty(ctx context.Context, in *SetSerialWarrantyRequest, opts ...grpc.CallOption) (*SetSerialWarrantyResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(SetSerialWarrantyResponse)
	err := c.cc.Invoke(ctx, WarrantyService_SetSerialWarranty_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// WarrantyServiceServer is the server API for WarrantyService service.
// All implementations must embed UnimplementedWarrantyServiceServer
// for forward compatibility.
//
// WarrantyService is the thin operator-facing surface over the
// reconciliation and discovery engine. Long-running work is submitted and
// then polled; nothing here blocks on a job.
type WarrantyServiceServer interface {
	// SyncWarranties starts a warranty-sheet reconciliation job.
	SyncWarranties(context.Context, *SyncWarrantiesRequest) (*SubmitJobResponse, error)
	// ImportSpecialRmas starts a special-RMA import job.
	ImportSpecialRmas(context.Context, *ImportSpecialRmasRequest) (*SubmitJobResponse, error)
	// ScanCatalog starts a catalog scan job.
	ScanCatalog(context.Context, *ScanCatalogRequest) (*SubmitJobResponse, error)
	// PollJob returns the current job snapshot; unknown ids come back with
	// status "not_found".
	PollJob(context.Context, *PollJobRequest) (*PollJobResponse, error)
	// ResolveColumns runs a header resolution pass for pre-flight checks and
	// manual-mapping UIs.
	ResolveColumns(context.Context, *ResolveColumnsRequest) (*ResolveColumnsResponse, error)
	ListWarranties(context.Context, *ListWarrantiesRequest) (*ListWarrantiesResponse, error)
	UpdateEstado(context.Context, *UpdateEstadoRequest) (*UpdateCountResponse, error)
	UpdatePickupDate(context.Context, *UpdatePickupDateRequest) (*UpdateCountResponse, error)
	SetHidden(context.Context, *SetHiddenRequest) (*UpdateCountResponse, error)
	GetSettings(context.Context, *GetSettingsRequest) (*SettingsResponse, error)
	UpdateSettings(context.Context, *UpdateSettingsRequest) (*SettingsResponse, error)
	// Client unification groups: several sheet identities shown under one
	// canonical client. Never rewrites warranty lines.
	ListClientGroups(context.Context, *ListClientGroupsRequest) (*ListClientGroupsResponse, error)
	UnifyClients(context.Context, *UnifyClientsRequest) (*UnifyClientsResponse, error)
	RemoveGroupMember(context.Context, *RemoveGroupMemberRequest) (*RemoveGroupMemberResponse, error)
	// Per-serial aggregate with the warranty-in-force flag.
	ListSerialSummaries(context.Context, *ListSerialSummariesRequest) (*ListSerialSummariesResponse, error)
	SetSerialWarranty(context.Context, *SetSerialWarrantyRequest) (*SetSerialWarrantyResponse, error)
	mustEmbedUnimplementedWarrantyServiceServer()
}

// UnimplementedWarrantyServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedWarrantyServiceServer struct{}

func (UnimplementedWarrantyServiceServer) SyncWarranties(context.Context, *SyncWarrantiesRequest) (*SubmitJobResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SyncWarranties not implemented")
}
func (UnimplementedWarrantyServiceServer) ImportSpecialRmas(context.Context, *ImportSpecialRmasRequest) (*SubmitJobResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ImportSpecialRmas not implemented")
}
func (UnimplementedWarrantyServiceServer) ScanCatalog(context.Context, *ScanCatalogRequest) (*SubmitJobResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ScanCatalog not implemented")
}
func (UnimplementedWarrantyServiceServer) PollJob(context.Context, *PollJobRequest) (*PollJobResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method PollJob not implemented")
}
func (UnimplementedWarrantyServiceServer) ResolveColumns(context.Context, *ResolveColumnsRequest) (*ResolveColumnsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ResolveColumns not implemented")
}
func (UnimplementedWarrantyServiceServer) ListWarranties(context.Context, *ListWarrantiesRequest) (*ListWarrantiesResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListWarranties not implemented")
}
func (UnimplementedWarrantyServiceServer) UpdateEstado(context.Context, *UpdateEstadoRequest) (*UpdateCountResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method UpdateEstado not implemented")
}
func (UnimplementedWarrantyServiceServer) UpdatePickupDate(context.Context, *UpdatePickupDateRequest) (*UpdateCountResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method UpdatePickupDate not implemented")
}
func (UnimplementedWarrantyServiceServer) SetHidden(context.Context, *SetHiddenRequest) (*UpdateCountResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SetHidden not implemented")
}
func (UnimplementedWarrantyServiceServer) GetSettings(context.Context, *GetSettingsRequest) (*SettingsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetSettings not implemented")
}
func (UnimplementedWarrantyServiceServer) UpdateSettings(context.Context, *UpdateSettingsRequest) (*SettingsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method UpdateSettings not implemented")
}
func (UnimplementedWarrantyServiceServer) ListClientGroups(context.Context, *ListClientGroupsRequest) (*ListClientGroupsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListClientGroups not implemented")
}
func (UnimplementedWarrantyServiceServer) UnifyClients(context.Context, *UnifyClientsRequest) (*UnifyClientsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method UnifyClients not implemented")
}
func (UnimplementedWarrantyServiceServer) RemoveGroupMember(context.Context, *RemoveGroupMemberRequest) (*RemoveGroupMemberResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RemoveGroupMember not implemented")
}
func (UnimplementedWarrantyServiceServer) ListSerialSummaries(context.Context, *ListSerialSummariesRequest) (*ListSerialSummariesResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListSerialSummaries not implemented")
}
func (UnimplementedWarrantyServiceServer) SetSerialWarranty(context.Context, *SetSerialWarrantyRequest) (*SetSerialWarrantyResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SetSerialWarranty not implemented")
}
func (UnimplementedWarrantyServiceServer) mustEmbedUnimplementedWarrantyServiceServer() {}
func (UnimplementedWarrantyServiceServer) testEmbeddedByValue()                         {}

// UnsafeWarrantyServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to WarrantyServiceServer will
// result in compilation errors.
type UnsafeWarrantyServiceServer interface {
	mustEmbedUnimplementedWarrantyServiceServer()
}

func RegisterWarrantyServiceServer(s grpc.ServiceRegistrar, srv WarrantyServiceServer) {
	// If the following call pancis, it indicates UnimplementedWarrantyServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&WarrantyService_ServiceDesc, srv)
}

func _WarrantyService_SyncWarranties_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SyncWarrantiesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(WarrantyServiceServer).SyncWarranties(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: WarrantyService_SyncWarranties_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(WarrantyServiceServer).SyncWarranties(ctx, req.(*SyncWarrantiesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _WarrantyService_ImportSpecialRmas_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ImportSpecialRmasRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(WarrantyServiceServer).ImportSpecialRmas(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: WarrantyService_ImportSpecialRmas_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(WarrantyServiceServer).ImportSpecialRmas(ctx, req.(*ImportSpecialRmasRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _WarrantyService_ScanCatalog_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ScanCatalogRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(WarrantyServiceServer).ScanCatalog(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: WarrantyService_ScanCatalog_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(WarrantyServiceServer).ScanCatalog(ctx, req.(*ScanCatalogRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _WarrantyService_PollJob_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(PollJobRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(WarrantyServiceServer).PollJob(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: WarrantyService_PollJob_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(WarrantyServiceServer).PollJob(ctx, req.(*PollJobRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _WarrantyService_ResolveColumns_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ResolveColumnsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(WarrantyServiceServer).ResolveColumns(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: WarrantyService_ResolveColumns_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(WarrantyServiceServer).ResolveColumns(ctx, req.(*ResolveColumnsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _WarrantyService_ListWarranties_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListWarrantiesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(WarrantyServiceServer).ListWarranties(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: WarrantyService_ListWarranties_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(WarrantyServiceServer).ListWarranties(ctx, req.(*ListWarrantiesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _WarrantyService_UpdateEstado_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(UpdateEstadoRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(WarrantyServiceServer).UpdateEstado(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: WarrantyService_UpdateEstado_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(WarrantyServiceServer).UpdateEstado(ctx, req.(*UpdateEstadoRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _WarrantyService_UpdatePickupDate_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(UpdatePickupDateRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(WarrantyServiceServer).UpdatePickupDate(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: WarrantyService_UpdatePickupDate_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(WarrantyServiceServer).UpdatePickupDate(ctx, req.(*UpdatePickupDateRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _WarrantyService_SetHidden_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SetHiddenRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(WarrantyServiceServer).SetHidden(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: WarrantyService_SetHidden_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(WarrantyServiceServer).SetHidden(ctx, req.(*SetHiddenRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _WarrantyService_GetSettings_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetSettingsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(WarrantyServiceServer).GetSettings(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: WarrantyService_GetSettings_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(WarrantyServiceServer).GetSettings(ctx, req.(*GetSettingsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _WarrantyService_UpdateSettings_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(UpdateSettingsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(WarrantyServiceServer).UpdateSettings(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: WarrantyService_UpdateSettings_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(WarrantyServiceServer).UpdateSettings(ctx, req.(*UpdateSettingsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _WarrantyService_ListClientGroups_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListClientGroupsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(WarrantyServiceServer).ListClientGroups(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: WarrantyService_ListClientGroups_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(WarrantyServiceServer).ListClientGroups(ctx, req.(*ListClientGroupsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _WarrantyService_UnifyClients_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(UnifyClientsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(WarrantyServiceServer).UnifyClients(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: WarrantyService_UnifyClients_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(WarrantyServiceServer).UnifyClients(ctx, req.(*UnifyClientsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _WarrantyService_RemoveGroupMember_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RemoveGroupMemberRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(WarrantyServiceServer).RemoveGroupMember(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: WarrantyService_RemoveGroupMember_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(WarrantyServiceServer).RemoveGroupMember(ctx, req.(*RemoveGroupMemberRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _WarrantyService_ListSerialSummaries_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListSerialSummariesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(WarrantyServiceServer).ListSerialSummaries(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: WarrantyService_ListSerialSummaries_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(WarrantyServiceServer).ListSerialSummaries(ctx, req.(*ListSerialSummariesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _WarrantyService_SetSerialWarranty_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SetSerialWarrantyRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(WarrantyServiceServer).SetSerialWarranty(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: WarrantyService_SetSerialWarranty_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(WarrantyServiceServer).SetSerialWarranty(ctx, req.(*SetSerialWarrantyRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// WarrantyService_ServiceDesc is the grpc.ServiceDesc for WarrantyService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var WarrantyService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "warranty.v1.WarrantyService",
	HandlerType: (*WarrantyServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "SyncWarranties",
			Handler:    _WarrantyService_SyncWarranties_Handler,
		},
		{
			MethodName: "ImportSpecialRmas",
			Handler:    _WarrantyService_ImportSpecialRmas_Handler,
		},
		{
			MethodName: "ScanCatalog",
			Handler:    _WarrantyService_ScanCatalog_Handler,
		},
		{
			MethodName: "PollJob",
			Handler:    _WarrantyService_PollJob_Handler,
		},
		{
			MethodName: "ResolveColumns",
			Handler:    _WarrantyService_ResolveColumns_Handler,
		},
		{
			MethodName: "ListWarranties",
			Handler:    _WarrantyService_ListWarranties_Handler,
		},
		{
			MethodName: "UpdateEstado",
			Handler:    _WarrantyService_UpdateEstado_Handler,
		},
		{
			MethodName: "UpdatePickupDate",
			Handler:    _WarrantyService_UpdatePickupDate_Handler,
		},
		{
			MethodName: "SetHidden",
			Handler:    _WarrantyService_SetHidden_Handler,
		},
		{
			MethodName: "GetSettings",
			Handler:    _WarrantyService_GetSettings_Handler,
		},
		{
			MethodName: "UpdateSettings",
			Handler:    _WarrantyService_UpdateSettings_Handler,
		},
		{
			MethodName: "ListClientGroups",
			Handler:    _WarrantyService_ListClientGroups_Handler,
		},
		{
			MethodName: "UnifyClients",
			Handler:    _WarrantyService_UnifyClients_Handler,
		},
		{
			MethodName: "RemoveGroupMember",
			Handler:    _WarrantyService_RemoveGroupMember_Handler,
		},
		{
			MethodName: "ListSerialSummaries",
			Handler:    _WarrantyService_ListSerialSummaries_Handler,
		},
		{
			MethodName: "SetSerialWarranty",
			Handler:    _WarrantyService_SetSerialWarranty_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "warranty/v1/warranty.proto",
}
