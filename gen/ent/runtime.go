// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/apx-soporte/warranty-tracker/db/ent/schema"
	"github.com/apx-soporte/warranty-tracker/gen/ent/clientgroup"
	"github.com/apx-soporte/warranty-tracker/gen/ent/clientgroupmember"
	"github.com/apx-soporte/warranty-tracker/gen/ent/rmaitem"
	"github.com/apx-soporte/warranty-tracker/gen/ent/serialwarranty"
	"github.com/apx-soporte/warranty-tracker/gen/ent/setting"
	"github.com/apx-soporte/warranty-tracker/gen/ent/specialrmaitem"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	clientgroupFields := schema.ClientGroup{}.Fields()
	_ = clientgroupFields
	// clientgroupDescCanonicalName is the schema descriptor for canonical_name field.
	clientgroupDescCanonicalName := clientgroupFields[0].Descriptor()
	// clientgroup.CanonicalNameValidator is a validator for the "canonical_name" field. It is called by the builders before save.
	clientgroup.CanonicalNameValidator = clientgroupDescCanonicalName.Validators[0].(func(string) error)
	// clientgroupDescCanonicalEmail is the schema descriptor for canonical_email field.
	clientgroupDescCanonicalEmail := clientgroupFields[1].Descriptor()
	// clientgroup.DefaultCanonicalEmail holds the default value on creation for the canonical_email field.
	clientgroup.DefaultCanonicalEmail = clientgroupDescCanonicalEmail.Default.(string)
	// clientgroupDescCanonicalPhone is the schema descriptor for canonical_phone field.
	clientgroupDescCanonicalPhone := clientgroupFields[2].Descriptor()
	// clientgroup.DefaultCanonicalPhone holds the default value on creation for the canonical_phone field.
	clientgroup.DefaultCanonicalPhone = clientgroupDescCanonicalPhone.Default.(string)
	clientgroupmemberFields := schema.ClientGroupMember{}.Fields()
	_ = clientgroupmemberFields
	// clientgroupmemberDescClientName is the schema descriptor for client_name field.
	clientgroupmemberDescClientName := clientgroupmemberFields[1].Descriptor()
	// clientgroupmember.ClientNameValidator is a validator for the "client_name" field. It is called by the builders before save.
	clientgroupmember.ClientNameValidator = clientgroupmemberDescClientName.Validators[0].(func(string) error)
	// clientgroupmemberDescClientEmail is the schema descriptor for client_email field.
	clientgroupmemberDescClientEmail := clientgroupmemberFields[2].Descriptor()
	// clientgroupmember.DefaultClientEmail holds the default value on creation for the client_email field.
	clientgroupmember.DefaultClientEmail = clientgroupmemberDescClientEmail.Default.(string)
	rmaitemFields := schema.RMAItem{}.Fields()
	_ = rmaitemFields
	// rmaitemDescRmaNumber is the schema descriptor for rma_number field.
	rmaitemDescRmaNumber := rmaitemFields[1].Descriptor()
	// rmaitem.RmaNumberValidator is a validator for the "rma_number" field. It is called by the builders before save.
	rmaitem.RmaNumberValidator = rmaitemDescRmaNumber.Validators[0].(func(string) error)
	// rmaitemDescSerial is the schema descriptor for serial field.
	rmaitemDescSerial := rmaitemFields[3].Descriptor()
	// rmaitem.DefaultSerial holds the default value on creation for the serial field.
	rmaitem.DefaultSerial = rmaitemDescSerial.Default.(string)
	// rmaitemDescEstado is the schema descriptor for estado field.
	rmaitemDescEstado := rmaitemFields[12].Descriptor()
	// rmaitem.DefaultEstado holds the default value on creation for the estado field.
	rmaitem.DefaultEstado = rmaitemDescEstado.Default.(string)
	// rmaitem.EstadoValidator is a validator for the "estado" field. It is called by the builders before save.
	rmaitem.EstadoValidator = rmaitemDescEstado.Validators[0].(func(string) error)
	// rmaitemDescHidden is the schema descriptor for hidden field.
	rmaitemDescHidden := rmaitemFields[13].Descriptor()
	// rmaitem.DefaultHidden holds the default value on creation for the hidden field.
	rmaitem.DefaultHidden = rmaitemDescHidden.Default.(bool)
	// rmaitemDescExcelRow is the schema descriptor for excel_row field.
	rmaitemDescExcelRow := rmaitemFields[16].Descriptor()
	// rmaitem.DefaultExcelRow holds the default value on creation for the excel_row field.
	rmaitem.DefaultExcelRow = rmaitemDescExcelRow.Default.(int)
	// rmaitemDescCreatedAt is the schema descriptor for created_at field.
	rmaitemDescCreatedAt := rmaitemFields[17].Descriptor()
	// rmaitem.DefaultCreatedAt holds the default value on creation for the created_at field.
	rmaitem.DefaultCreatedAt = rmaitemDescCreatedAt.Default.(func() time.Time)
	// rmaitemDescID is the schema descriptor for id field.
	rmaitemDescID := rmaitemFields[0].Descriptor()
	// rmaitem.DefaultID holds the default value on creation for the id field.
	rmaitem.DefaultID = rmaitemDescID.Default.(func() uuid.UUID)
	serialwarrantyFields := schema.SerialWarranty{}.Fields()
	_ = serialwarrantyFields
	// serialwarrantyDescSerial is the schema descriptor for serial field.
	serialwarrantyDescSerial := serialwarrantyFields[0].Descriptor()
	// serialwarranty.SerialValidator is a validator for the "serial" field. It is called by the builders before save.
	serialwarranty.SerialValidator = serialwarrantyDescSerial.Validators[0].(func(string) error)
	// serialwarrantyDescWarrantyValid is the schema descriptor for warranty_valid field.
	serialwarrantyDescWarrantyValid := serialwarrantyFields[1].Descriptor()
	// serialwarranty.DefaultWarrantyValid holds the default value on creation for the warranty_valid field.
	serialwarranty.DefaultWarrantyValid = serialwarrantyDescWarrantyValid.Default.(bool)
	settingFields := schema.Setting{}.Fields()
	_ = settingFields
	// settingDescKey is the schema descriptor for key field.
	settingDescKey := settingFields[0].Descriptor()
	// setting.KeyValidator is a validator for the "key" field. It is called by the builders before save.
	setting.KeyValidator = settingDescKey.Validators[0].(func(string) error)
	// settingDescValue is the schema descriptor for value field.
	settingDescValue := settingFields[1].Descriptor()
	// setting.DefaultValue holds the default value on creation for the value field.
	setting.DefaultValue = settingDescValue.Default.(string)
	specialrmaitemFields := schema.SpecialRMAItem{}.Fields()
	_ = specialrmaitemFields
	// specialrmaitemDescSerial is the schema descriptor for serial field.
	specialrmaitemDescSerial := specialrmaitemFields[1].Descriptor()
	// specialrmaitem.SerialValidator is a validator for the "serial" field. It is called by the builders before save.
	specialrmaitem.SerialValidator = specialrmaitemDescSerial.Validators[0].(func(string) error)
	// specialrmaitemDescFallo is the schema descriptor for fallo field.
	specialrmaitemDescFallo := specialrmaitemFields[2].Descriptor()
	// specialrmaitem.DefaultFallo holds the default value on creation for the fallo field.
	specialrmaitem.DefaultFallo = specialrmaitemDescFallo.Default.(string)
	// specialrmaitemDescResolucion is the schema descriptor for resolucion field.
	specialrmaitemDescResolucion := specialrmaitemFields[3].Descriptor()
	// specialrmaitem.DefaultResolucion holds the default value on creation for the resolucion field.
	specialrmaitem.DefaultResolucion = specialrmaitemDescResolucion.Default.(string)
	// specialrmaitemDescExcelRow is the schema descriptor for excel_row field.
	specialrmaitemDescExcelRow := specialrmaitemFields[4].Descriptor()
	// specialrmaitem.DefaultExcelRow holds the default value on creation for the excel_row field.
	specialrmaitem.DefaultExcelRow = specialrmaitemDescExcelRow.Default.(int)
	// specialrmaitemDescCreatedAt is the schema descriptor for created_at field.
	specialrmaitemDescCreatedAt := specialrmaitemFields[5].Descriptor()
	// specialrmaitem.DefaultCreatedAt holds the default value on creation for the created_at field.
	specialrmaitem.DefaultCreatedAt = specialrmaitemDescCreatedAt.Default.(func() time.Time)
	// specialrmaitemDescID is the schema descriptor for id field.
	specialrmaitemDescID := specialrmaitemFields[0].Descriptor()
	// specialrmaitem.DefaultID holds the default value on creation for the id field.
	specialrmaitem.DefaultID = specialrmaitemDescID.Default.(func() uuid.UUID)
}
