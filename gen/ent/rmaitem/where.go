// Code generated by ent, DO NOT EDIT.

package rmaitem

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/apx-soporte/warranty-tracker/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldLTE(FieldID, id))
}

// RmaNumber applies equality check predicate on the "rma_number" field. It's identical to RmaNumberEQ.
func RmaNumber(v string) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldEQ(FieldRmaNumber, v))
}

// Product applies equality check predicate on the "product" field. It's identical to ProductEQ.
func Product(v string) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldEQ(FieldProduct, v))
}

// Serial applies equality check predicate on the "serial" field. It's identical to SerialEQ.
func Serial(v string) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldEQ(FieldSerial, v))
}

// ClientName applies equality check predicate on the "client_name" field. It's identical to ClientNameEQ.
func ClientName(v string) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldEQ(FieldClientName, v))
}

// ClientEmail applies equality check predicate on the "client_email" field. It's identical to ClientEmailEQ.
func ClientEmail(v string) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldEQ(FieldClientEmail, v))
}

// ClientPhone applies equality check predicate on the "client_phone" field. It's identical to ClientPhoneEQ.
func ClientPhone(v string) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldEQ(FieldClientPhone, v))
}

// DateReceived applies equality check predicate on the "date_received" field. It's identical to DateReceivedEQ.
func DateReceived(v string) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldEQ(FieldDateReceived, v))
}

// DatePickup applies equality check predicate on the "date_pickup" field. It's identical to DatePickupEQ.
func DatePickup(v string) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldEQ(FieldDatePickup, v))
}

// DateSent applies equality check predicate on the "date_sent" field. It's identical to DateSentEQ.
func DateSent(v string) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldEQ(FieldDateSent, v))
}

// Averia applies equality check predicate on the "averia" field. It's identical to AveriaEQ.
func Averia(v string) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldEQ(FieldAveria, v))
}

// Observaciones applies equality check predicate on the "observaciones" field. It's identical to ObservacionesEQ.
func Observaciones(v string) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldEQ(FieldObservaciones, v))
}

// Estado applies equality check predicate on the "estado" field. It's identical to EstadoEQ.
func Estado(v string) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldEQ(FieldEstado, v))
}

// Hidden applies equality check predicate on the "hidden" field. It's identical to HiddenEQ.
func Hidden(v bool) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldEQ(FieldHidden, v))
}

// HiddenBy applies equality check predicate on the "hidden_by" field. It's identical to HiddenByEQ.
func HiddenBy(v string) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldEQ(FieldHiddenBy, v))
}

// HiddenAt applies equality check predicate on the "hidden_at" field. It's identical to HiddenAtEQ.
func HiddenAt(v time.Time) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldEQ(FieldHiddenAt, v))
}

// ExcelRow applies equality check predicate on the "excel_row" field. It's identical to ExcelRowEQ.
func ExcelRow(v int) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldEQ(FieldExcelRow, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldEQ(FieldCreatedAt, v))
}

// RmaNumberEQ applies the EQ predicate on the "rma_number" field.
func RmaNumberEQ(v string) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldEQ(FieldRmaNumber, v))
}

// RmaNumberNEQ applies the NEQ predicate on the "rma_number" field.
func RmaNumberNEQ(v string) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldNEQ(FieldRmaNumber, v))
}

// RmaNumberIn applies the In predicate on the "rma_number" field.
func RmaNumberIn(vs ...string) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldIn(FieldRmaNumber, vs...))
}

// RmaNumberNotIn applies the NotIn predicate on the "rma_number" field.
func RmaNumberNotIn(vs ...string) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldNotIn(FieldRmaNumber, vs...))
}

// RmaNumberGT applies the GT predicate on the "rma_number" field.
func RmaNumberGT(v string) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldGT(FieldRmaNumber, v))
}

// RmaNumberGTE applies the GTE predicate on the "rma_number" field.
func RmaNumberGTE(v string) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldGTE(FieldRmaNumber, v))
}

// RmaNumberLT applies the LT predicate on the "rma_number" field.
func RmaNumberLT(v string) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldLT(FieldRmaNumber, v))
}

// RmaNumberLTE applies the LTE predicate on the "rma_number" field.
func RmaNumberLTE(v string) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldLTE(FieldRmaNumber, v))
}

// RmaNumberContains applies the Contains predicate on the "rma_number" field.
func RmaNumberContains(v string) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldContains(FieldRmaNumber, v))
}

// RmaNumberHasPrefix applies the HasPrefix predicate on the "rma_number" field.
func RmaNumberHasPrefix(v string) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldHasPrefix(FieldRmaNumber, v))
}

// RmaNumberHasSuffix applies the HasSuffix predicate on the "rma_number" field.
func RmaNumberHasSuffix(v string) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldHasSuffix(FieldRmaNumber, v))
}

// RmaNumberEqualFold applies the EqualFold predicate on the "rma_number" field.
func RmaNumberEqualFold(v string) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldEqualFold(FieldRmaNumber, v))
}

// RmaNumberContainsFold applies the ContainsFold predicate on the "rma_number" field.
func RmaNumberContainsFold(v string) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldContainsFold(FieldRmaNumber, v))
}

// ProductEQ applies the EQ predicate on the "product" field.
func ProductEQ(v string) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldEQ(FieldProduct, v))
}

// ProductNEQ applies the NEQ predicate on the "product" field.
func ProductNEQ(v string) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldNEQ(FieldProduct, v))
}

// ProductIn applies the In predicate on the "product" field.
func ProductIn(vs ...string) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldIn(FieldProduct, vs...))
}

// ProductNotIn applies the NotIn predicate on the "product" field.
func ProductNotIn(vs ...string) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldNotIn(FieldProduct, vs...))
}

// ProductGT applies the GT predicate on the "product" field.
func ProductGT(v string) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldGT(FieldProduct, v))
}

// ProductGTE applies the GTE predicate on the "product" field.
func ProductGTE(v string) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldGTE(FieldProduct, v))
}

// ProductLT applies the LT predicate on the "product" field.
func ProductLT(v string) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldLT(FieldProduct, v))
}

// ProductLTE applies the LTE predicate on the "product" field.
func ProductLTE(v string) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldLTE(FieldProduct, v))
}

// ProductContains applies the Contains predicate on the "product" field.
func ProductContains(v string) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldContains(FieldProduct, v))
}

// ProductHasPrefix applies the HasPrefix predicate on the "product" field.
func ProductHasPrefix(v string) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldHasPrefix(FieldProduct, v))
}

// ProductHasSuffix applies the HasSuffix predicate on the "product" field.
func ProductHasSuffix(v string) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldHasSuffix(FieldProduct, v))
}

// ProductIsNil applies the IsNil predicate on the "product" field.
func ProductIsNil() predicate.RMAItem {
	return predicate.RMAItem(sql.FieldIsNull(FieldProduct))
}

// ProductNotNil applies the NotNil predicate on the "product" field.
func ProductNotNil() predicate.RMAItem {
	return predicate.RMAItem(sql.FieldNotNull(FieldProduct))
}

// ProductEqualFold applies the EqualFold predicate on the "product" field.
func ProductEqualFold(v string) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldEqualFold(FieldProduct, v))
}

// ProductContainsFold applies the ContainsFold predicate on the "product" field.
func ProductContainsFold(v string) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldContainsFold(FieldProduct, v))
}

// SerialEQ applies the EQ predicate on the "serial" field.
func SerialEQ(v string) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldEQ(FieldSerial, v))
}

// SerialNEQ applies the NEQ predicate on the "serial" field.
func SerialNEQ(v string) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldNEQ(FieldSerial, v))
}

// SerialIn applies the In predicate on the "serial" field.
func SerialIn(vs ...string) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldIn(FieldSerial, vs...))
}

// SerialNotIn applies the NotIn predicate on the "serial" field.
func SerialNotIn(vs ...string) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldNotIn(FieldSerial, vs...))
}

// SerialGT applies the GT predicate on the "serial" field.
func SerialGT(v string) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldGT(FieldSerial, v))
}

// SerialGTE applies the GTE predicate on the "serial" field.
func SerialGTE(v string) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldGTE(FieldSerial, v))
}

// SerialLT applies the LT predicate on the "serial" field.
func SerialLT(v string) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldLT(FieldSerial, v))
}

// SerialLTE applies the LTE predicate on the "serial" field.
func SerialLTE(v string) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldLTE(FieldSerial, v))
}

// SerialContains applies the Contains predicate on the "serial" field.
func SerialContains(v string) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldContains(FieldSerial, v))
}

// SerialHasPrefix applies the HasPrefix predicate on the "serial" field.
func SerialHasPrefix(v string) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldHasPrefix(FieldSerial, v))
}

// SerialHasSuffix applies the HasSuffix predicate on the "serial" field.
func SerialHasSuffix(v string) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldHasSuffix(FieldSerial, v))
}

// SerialEqualFold applies the EqualFold predicate on the "serial" field.
func SerialEqualFold(v string) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldEqualFold(FieldSerial, v))
}

// SerialContainsFold applies the ContainsFold predicate on the "serial" field.
func SerialContainsFold(v string) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldContainsFold(FieldSerial, v))
}

// ClientNameEQ applies the EQ predicate on the "client_name" field.
func ClientNameEQ(v string) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldEQ(FieldClientName, v))
}

// ClientNameNEQ applies the NEQ predicate on the "client_name" field.
func ClientNameNEQ(v string) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldNEQ(FieldClientName, v))
}

// ClientNameIn applies the In predicate on the "client_name" field.
func ClientNameIn(vs ...string) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldIn(FieldClientName, vs...))
}

// ClientNameNotIn applies the NotIn predicate on the "client_name" field.
func ClientNameNotIn(vs ...string) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldNotIn(FieldClientName, vs...))
}

// ClientNameGT applies the GT predicate on the "client_name" field.
func ClientNameGT(v string) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldGT(FieldClientName, v))
}

// ClientNameGTE applies the GTE predicate on the "client_name" field.
func ClientNameGTE(v string) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldGTE(FieldClientName, v))
}

// ClientNameLT applies the LT predicate on the "client_name" field.
func ClientNameLT(v string) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldLT(FieldClientName, v))
}

// ClientNameLTE applies the LTE predicate on the "client_name" field.
func ClientNameLTE(v string) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldLTE(FieldClientName, v))
}

// ClientNameContains applies the Contains predicate on the "client_name" field.
func ClientNameContains(v string) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldContains(FieldClientName, v))
}

// ClientNameHasPrefix applies the HasPrefix predicate on the "client_name" field.
func ClientNameHasPrefix(v string) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldHasPrefix(FieldClientName, v))
}

// ClientNameHasSuffix applies the HasSuffix predicate on the "client_name" field.
func ClientNameHasSuffix(v string) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldHasSuffix(FieldClientName, v))
}

// ClientNameIsNil applies the IsNil predicate on the "client_name" field.
func ClientNameIsNil() predicate.RMAItem {
	return predicate.RMAItem(sql.FieldIsNull(FieldClientName))
}

// ClientNameNotNil applies the NotNil predicate on the "client_name" field.
func ClientNameNotNil() predicate.RMAItem {
	return predicate.RMAItem(sql.FieldNotNull(FieldClientName))
}

// ClientNameEqualFold applies the EqualFold predicate on the "client_name" field.
func ClientNameEqualFold(v string) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldEqualFold(FieldClientName, v))
}

// ClientNameContainsFold applies the ContainsFold predicate on the "client_name" field.
func ClientNameContainsFold(v string) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldContainsFold(FieldClientName, v))
}

// ClientEmailEQ applies the EQ predicate on the "client_email" field.
func ClientEmailEQ(v string) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldEQ(FieldClientEmail, v))
}

// ClientEmailNEQ applies the NEQ predicate on the "client_email" field.
func ClientEmailNEQ(v string) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldNEQ(FieldClientEmail, v))
}

// ClientEmailIn applies the In predicate on the "client_email" field.
func ClientEmailIn(vs ...string) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldIn(FieldClientEmail, vs...))
}

// ClientEmailNotIn applies the NotIn predicate on the "client_email" field.
func ClientEmailNotIn(vs ...string) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldNotIn(FieldClientEmail, vs...))
}

// ClientEmailGT applies the GT predicate on the "client_email" field.
func ClientEmailGT(v string) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldGT(FieldClientEmail, v))
}

// ClientEmailGTE applies the GTE predicate on the "client_email" field.
func ClientEmailGTE(v string) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldGTE(FieldClientEmail, v))
}

// ClientEmailLT applies the LT predicate on the "client_email" field.
func ClientEmailLT(v string) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldLT(FieldClientEmail, v))
}

// ClientEmailLTE applies the LTE predicate on the "client_email" field.
func ClientEmailLTE(v string) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldLTE(FieldClientEmail, v))
}

// ClientEmailContains applies the Contains predicate on the "client_email" field.
func ClientEmailContains(v string) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldContains(FieldClientEmail, v))
}

// ClientEmailHasPrefix applies the HasPrefix predicate on the "client_email" field.
func ClientEmailHasPrefix(v string) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldHasPrefix(FieldClientEmail, v))
}

// ClientEmailHasSuffix applies the HasSuffix predicate on the "client_email" field.
func ClientEmailHasSuffix(v string) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldHasSuffix(FieldClientEmail, v))
}

// ClientEmailIsNil applies the IsNil predicate on the "client_email" field.
func ClientEmailIsNil() predicate.RMAItem {
	return predicate.RMAItem(sql.FieldIsNull(FieldClientEmail))
}

// ClientEmailNotNil applies the NotNil predicate on the "client_email" field.
func ClientEmailNotNil() predicate.RMAItem {
	return predicate.RMAItem(sql.FieldNotNull(FieldClientEmail))
}

// ClientEmailEqualFold applies the EqualFold predicate on the "client_email" field.
func ClientEmailEqualFold(v string) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldEqualFold(FieldClientEmail, v))
}

// ClientEmailContainsFold applies the ContainsFold predicate on the "client_email" field.
func ClientEmailContainsFold(v string) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldContainsFold(FieldClientEmail, v))
}

// ClientPhoneEQ applies the EQ predicate on the "client_phone" field.
func ClientPhoneEQ(v string) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldEQ(FieldClientPhone, v))
}

// ClientPhoneNEQ applies the NEQ predicate on the "client_phone" field.
func ClientPhoneNEQ(v string) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldNEQ(FieldClientPhone, v))
}

// ClientPhoneIn applies the In predicate on the "client_phone" field.
func ClientPhoneIn(vs ...string) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldIn(FieldClientPhone, vs...))
}

// ClientPhoneNotIn applies the NotIn predicate on the "client_phone" field.
func ClientPhoneNotIn(vs ...string) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldNotIn(FieldClientPhone, vs...))
}

// ClientPhoneGT applies the GT predicate on the "client_phone" field.
func ClientPhoneGT(v string) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldGT(FieldClientPhone, v))
}

// ClientPhoneGTE applies the GTE predicate on the "client_phone" field.
func ClientPhoneGTE(v string) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldGTE(FieldClientPhone, v))
}

// ClientPhoneLT applies the LT predicate on the "client_phone" field.
func ClientPhoneLT(v string) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldLT(FieldClientPhone, v))
}

// ClientPhoneLTE applies the LTE predicate on the "client_phone" field.
func ClientPhoneLTE(v string) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldLTE(FieldClientPhone, v))
}

// ClientPhoneContains applies the Contains predicate on the "client_phone" field.
func ClientPhoneContains(v string) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldContains(FieldClientPhone, v))
}

// ClientPhoneHasPrefix applies the HasPrefix predicate on the "client_phone" field.
func ClientPhoneHasPrefix(v string) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldHasPrefix(FieldClientPhone, v))
}

// ClientPhoneHasSuffix applies the HasSuffix predicate on the "client_phone" field.
func ClientPhoneHasSuffix(v string) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldHasSuffix(FieldClientPhone, v))
}

// ClientPhoneIsNil applies the IsNil predicate on the "client_phone" field.
func ClientPhoneIsNil() predicate.RMAItem {
	return predicate.RMAItem(sql.FieldIsNull(FieldClientPhone))
}

// ClientPhoneNotNil applies the NotNil predicate on the "client_phone" field.
func ClientPhoneNotNil() predicate.RMAItem {
	return predicate.RMAItem(sql.FieldNotNull(FieldClientPhone))
}

// ClientPhoneEqualFold applies the EqualFold predicate on the "client_phone" field.
func ClientPhoneEqualFold(v string) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldEqualFold(FieldClientPhone, v))
}

// ClientPhoneContainsFold applies the ContainsFold predicate on the "client_phone" field.
func ClientPhoneContainsFold(v string) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldContainsFold(FieldClientPhone, v))
}

// DateReceivedEQ applies the EQ predicate on the "date_received" field.
func DateReceivedEQ(v string) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldEQ(FieldDateReceived, v))
}

// DateReceivedNEQ applies the NEQ predicate on the "date_received" field.
func DateReceivedNEQ(v string) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldNEQ(FieldDateReceived, v))
}

// DateReceivedIn applies the In predicate on the "date_received" field.
func DateReceivedIn(vs ...string) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldIn(FieldDateReceived, vs...))
}

// DateReceivedNotIn applies the NotIn predicate on the "date_received" field.
func DateReceivedNotIn(vs ...string) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldNotIn(FieldDateReceived, vs...))
}

// DateReceivedGT applies the GT predicate on the "date_received" field.
func DateReceivedGT(v string) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldGT(FieldDateReceived, v))
}

// DateReceivedGTE applies the GTE predicate on the "date_received" field.
func DateReceivedGTE(v string) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldGTE(FieldDateReceived, v))
}

// DateReceivedLT applies the LT predicate on the "date_received" field.
func DateReceivedLT(v string) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldLT(FieldDateReceived, v))
}

// DateReceivedLTE applies the LTE predicate on the "date_received" field.
func DateReceivedLTE(v string) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldLTE(FieldDateReceived, v))
}

// DateReceivedContains applies the Contains predicate on the "date_received" field.
func DateReceivedContains(v string) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldContains(FieldDateReceived, v))
}

// DateReceivedHasPrefix applies the HasPrefix predicate on the "date_received" field.
func DateReceivedHasPrefix(v string) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldHasPrefix(FieldDateReceived, v))
}

// DateReceivedHasSuffix applies the HasSuffix predicate on the "date_received" field.
func DateReceivedHasSuffix(v string) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldHasSuffix(FieldDateReceived, v))
}

// DateReceivedIsNil applies the IsNil predicate on the "date_received" field.
func DateReceivedIsNil() predicate.RMAItem {
	return predicate.RMAItem(sql.FieldIsNull(FieldDateReceived))
}

// DateReceivedNotNil applies the NotNil predicate on the "date_received" field.
func DateReceivedNotNil() predicate.RMAItem {
	return predicate.RMAItem(sql.FieldNotNull(FieldDateReceived))
}

// DateReceivedEqualFold applies the EqualFold predicate on the "date_received" field.
func DateReceivedEqualFold(v string) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldEqualFold(FieldDateReceived, v))
}

// DateReceivedContainsFold applies the ContainsFold predicate on the "date_received" field.
func DateReceivedContainsFold(v string) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldContainsFold(FieldDateReceived, v))
}

// DatePickupEQ applies the EQ predicate on the "date_pickup" field.
func DatePickupEQ(v string) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldEQ(FieldDatePickup, v))
}

// DatePickupNEQ applies the NEQ predicate on the "date_pickup" field.
func DatePickupNEQ(v string) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldNEQ(FieldDatePickup, v))
}

// DatePickupIn applies the In predicate on the "date_pickup" field.
func DatePickupIn(vs ...string) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldIn(FieldDatePickup, vs...))
}

// DatePickupNotIn applies the NotIn predicate on the "date_pickup" field.
func DatePickupNotIn(vs ...string) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldNotIn(FieldDatePickup, vs...))
}

// DatePickupGT applies the GT predicate on the "date_pickup" field.
func DatePickupGT(v string) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldGT(FieldDatePickup, v))
}

// DatePickupGTE applies the GTE predicate on the "date_pickup" field.
func DatePickupGTE(v string) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldGTE(FieldDatePickup, v))
}

// DatePickupLT applies the LT predicate on the "date_pickup" field.
func DatePickupLT(v string) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldLT(FieldDatePickup, v))
}

// DatePickupLTE applies the LTE predicate on the "date_pickup" field.
func DatePickupLTE(v string) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldLTE(FieldDatePickup, v))
}

// DatePickupContains applies the Contains predicate on the "date_pickup" field.
func DatePickupContains(v string) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldContains(FieldDatePickup, v))
}

// DatePickupHasPrefix applies the HasPrefix predicate on the "date_pickup" field.
func DatePickupHasPrefix(v string) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldHasPrefix(FieldDatePickup, v))
}

// DatePickupHasSuffix applies the HasSuffix predicate on the "date_pickup" field.
func DatePickupHasSuffix(v string) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldHasSuffix(FieldDatePickup, v))
}

// DatePickupIsNil applies the IsNil predicate on the "date_pickup" field.
func DatePickupIsNil() predicate.RMAItem {
	return predicate.RMAItem(sql.FieldIsNull(FieldDatePickup))
}

// DatePickupNotNil applies the NotNil predicate on the "date_pickup" field.
func DatePickupNotNil() predicate.RMAItem {
	return predicate.RMAItem(sql.FieldNotNull(FieldDatePickup))
}

// DatePickupEqualFold applies the EqualFold predicate on the "date_pickup" field.
func DatePickupEqualFold(v string) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldEqualFold(FieldDatePickup, v))
}

// DatePickupContainsFold applies the ContainsFold predicate on the "date_pickup" field.
func DatePickupContainsFold(v string) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldContainsFold(FieldDatePickup, v))
}

// DateSentEQ applies the EQ predicate on the "date_sent" field.
func DateSentEQ(v string) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldEQ(FieldDateSent, v))
}

// DateSentNEQ applies the NEQ predicate on the "date_sent" field.
func DateSentNEQ(v string) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldNEQ(FieldDateSent, v))
}

// DateSentIn applies the In predicate on the "date_sent" field.
func DateSentIn(vs ...string) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldIn(FieldDateSent, vs...))
}

// DateSentNotIn applies the NotIn predicate on the "date_sent" field.
func DateSentNotIn(vs ...string) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldNotIn(FieldDateSent, vs...))
}

// DateSentGT applies the GT predicate on the "date_sent" field.
func DateSentGT(v string) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldGT(FieldDateSent, v))
}

// DateSentGTE applies the GTE predicate on the "date_sent" field.
func DateSentGTE(v string) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldGTE(FieldDateSent, v))
}

// DateSentLT applies the LT predicate on the "date_sent" field.
func DateSentLT(v string) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldLT(FieldDateSent, v))
}

// DateSentLTE applies the LTE predicate on the "date_sent" field.
func DateSentLTE(v string) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldLTE(FieldDateSent, v))
}

// DateSentContains applies the Contains predicate on the "date_sent" field.
func DateSentContains(v string) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldContains(FieldDateSent, v))
}

// DateSentHasPrefix applies the HasPrefix predicate on the "date_sent" field.
func DateSentHasPrefix(v string) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldHasPrefix(FieldDateSent, v))
}

// DateSentHasSuffix applies the HasSuffix predicate on the "date_sent" field.
func DateSentHasSuffix(v string) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldHasSuffix(FieldDateSent, v))
}

// DateSentIsNil applies the IsNil predicate on the "date_sent" field.
func DateSentIsNil() predicate.RMAItem {
	return predicate.RMAItem(sql.FieldIsNull(FieldDateSent))
}

// DateSentNotNil applies the NotNil predicate on the "date_sent" field.
func DateSentNotNil() predicate.RMAItem {
	return predicate.RMAItem(sql.FieldNotNull(FieldDateSent))
}

// DateSentEqualFold applies the EqualFold predicate on the "date_sent" field.
func DateSentEqualFold(v string) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldEqualFold(FieldDateSent, v))
}

// DateSentContainsFold applies the ContainsFold predicate on the "date_sent" field.
func DateSentContainsFold(v string) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldContainsFold(FieldDateSent, v))
}

// AveriaEQ applies the EQ predicate on the "averia" field.
func AveriaEQ(v string) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldEQ(FieldAveria, v))
}

// AveriaNEQ applies the NEQ predicate on the "averia" field.
func AveriaNEQ(v string) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldNEQ(FieldAveria, v))
}

// AveriaIn applies the In predicate on the "averia" field.
func AveriaIn(vs ...string) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldIn(FieldAveria, vs...))
}

// AveriaNotIn applies the NotIn predicate on the "averia" field.
func AveriaNotIn(vs ...string) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldNotIn(FieldAveria, vs...))
}

// AveriaGT applies the GT predicate on the "averia" field.
func AveriaGT(v string) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldGT(FieldAveria, v))
}

// AveriaGTE applies the GTE predicate on the "averia" field.
func AveriaGTE(v string) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldGTE(FieldAveria, v))
}

// AveriaLT applies the LT predicate on the "averia" field.
func AveriaLT(v string) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldLT(FieldAveria, v))
}

// AveriaLTE applies the LTE predicate on the "averia" field.
func AveriaLTE(v string) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldLTE(FieldAveria, v))
}

// AveriaContains applies the Contains predicate on the "averia" field.
func AveriaContains(v string) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldContains(FieldAveria, v))
}

// AveriaHasPrefix applies the HasPrefix predicate on the "averia" field.
func AveriaHasPrefix(v string) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldHasPrefix(FieldAveria, v))
}

// AveriaHasSuffix applies the HasSuffix predicate on the "averia" field.
func AveriaHasSuffix(v string) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldHasSuffix(FieldAveria, v))
}

// AveriaIsNil applies the IsNil predicate on the "averia" field.
func AveriaIsNil() predicate.RMAItem {
	return predicate.RMAItem(sql.FieldIsNull(FieldAveria))
}

// AveriaNotNil applies the NotNil predicate on the "averia" field.
func AveriaNotNil() predicate.RMAItem {
	return predicate.RMAItem(sql.FieldNotNull(FieldAveria))
}

// AveriaEqualFold applies the EqualFold predicate on the "averia" field.
func AveriaEqualFold(v string) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldEqualFold(FieldAveria, v))
}

// AveriaContainsFold applies the ContainsFold predicate on the "averia" field.
func AveriaContainsFold(v string) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldContainsFold(FieldAveria, v))
}

// ObservacionesEQ applies the EQ predicate on the "observaciones" field.
func ObservacionesEQ(v string) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldEQ(FieldObservaciones, v))
}

// ObservacionesNEQ applies the NEQ predicate on the "observaciones" field.
func ObservacionesNEQ(v string) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldNEQ(FieldObservaciones, v))
}

// ObservacionesIn applies the In predicate on the "observaciones" field.
func ObservacionesIn(vs ...string) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldIn(FieldObservaciones, vs...))
}

// ObservacionesNotIn applies the NotIn predicate on the "observaciones" field.
func ObservacionesNotIn(vs ...string) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldNotIn(FieldObservaciones, vs...))
}

// ObservacionesGT applies the GT predicate on the "observaciones" field.
func ObservacionesGT(v string) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldGT(FieldObservaciones, v))
}

// ObservacionesGTE applies the GTE predicate on the "observaciones" field.
func ObservacionesGTE(v string) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldGTE(FieldObservaciones, v))
}

// ObservacionesLT applies the LT predicate on the "observaciones" field.
func ObservacionesLT(v string) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldLT(FieldObservaciones, v))
}

// ObservacionesLTE applies the LTE predicate on the "observaciones" field.
func ObservacionesLTE(v string) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldLTE(FieldObservaciones, v))
}

// ObservacionesContains applies the Contains predicate on the "observaciones" field.
func ObservacionesContains(v string) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldContains(FieldObservaciones, v))
}

// ObservacionesHasPrefix applies the HasPrefix predicate on the "observaciones" field.
func ObservacionesHasPrefix(v string) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldHasPrefix(FieldObservaciones, v))
}

// ObservacionesHasSuffix applies the HasSuffix predicate on the "observaciones" field.
func ObservacionesHasSuffix(v string) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldHasSuffix(FieldObservaciones, v))
}

// ObservacionesIsNil applies the IsNil predicate on the "observaciones" field.
func ObservacionesIsNil() predicate.RMAItem {
	return predicate.RMAItem(sql.FieldIsNull(FieldObservaciones))
}

// ObservacionesNotNil applies the NotNil predicate on the "observaciones" field.
func ObservacionesNotNil() predicate.RMAItem {
	return predicate.RMAItem(sql.FieldNotNull(FieldObservaciones))
}

// ObservacionesEqualFold applies the EqualFold predicate on the "observaciones" field.
func ObservacionesEqualFold(v string) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldEqualFold(FieldObservaciones, v))
}

// ObservacionesContainsFold applies the ContainsFold predicate on the "observaciones" field.
func ObservacionesContainsFold(v string) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldContainsFold(FieldObservaciones, v))
}

// EstadoEQ applies the EQ predicate on the "estado" field.
func EstadoEQ(v string) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldEQ(FieldEstado, v))
}

// EstadoNEQ applies the NEQ predicate on the "estado" field.
func EstadoNEQ(v string) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldNEQ(FieldEstado, v))
}

// EstadoIn applies the In predicate on the "estado" field.
func EstadoIn(vs ...string) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldIn(FieldEstado, vs...))
}

// EstadoNotIn applies the NotIn predicate on the "estado" field.
func EstadoNotIn(vs ...string) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldNotIn(FieldEstado, vs...))
}

// EstadoGT applies the GT predicate on the "estado" field.
func EstadoGT(v string) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldGT(FieldEstado, v))
}

// EstadoGTE applies the GTE predicate on the "estado" field.
func EstadoGTE(v string) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldGTE(FieldEstado, v))
}

// EstadoLT applies the LT predicate on the "estado" field.
func EstadoLT(v string) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldLT(FieldEstado, v))
}

// EstadoLTE applies the LTE predicate on the "estado" field.
func EstadoLTE(v string) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldLTE(FieldEstado, v))
}

// EstadoContains applies the Contains predicate on the "estado" field.
func EstadoContains(v string) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldContains(FieldEstado, v))
}

// EstadoHasPrefix applies the HasPrefix predicate on the "estado" field.
func EstadoHasPrefix(v string) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldHasPrefix(FieldEstado, v))
}

// EstadoHasSuffix applies the HasSuffix predicate on the "estado" field.
func EstadoHasSuffix(v string) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldHasSuffix(FieldEstado, v))
}

// EstadoEqualFold applies the EqualFold predicate on the "estado" field.
func EstadoEqualFold(v string) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldEqualFold(FieldEstado, v))
}

// EstadoContainsFold applies the ContainsFold predicate on the "estado" field.
func EstadoContainsFold(v string) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldContainsFold(FieldEstado, v))
}

// HiddenEQ applies the EQ predicate on the "hidden" field.
func HiddenEQ(v bool) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldEQ(FieldHidden, v))
}

// HiddenNEQ applies the NEQ predicate on the "hidden" field.
func HiddenNEQ(v bool) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldNEQ(FieldHidden, v))
}

// HiddenByEQ applies the EQ predicate on the "hidden_by" field.
func HiddenByEQ(v string) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldEQ(FieldHiddenBy, v))
}

// HiddenByNEQ applies the NEQ predicate on the "hidden_by" field.
func HiddenByNEQ(v string) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldNEQ(FieldHiddenBy, v))
}

// HiddenByIn applies the In predicate on the "hidden_by" field.
func HiddenByIn(vs ...string) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldIn(FieldHiddenBy, vs...))
}

// HiddenByNotIn applies the NotIn predicate on the "hidden_by" field.
func HiddenByNotIn(vs ...string) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldNotIn(FieldHiddenBy, vs...))
}

// HiddenByGT applies the GT predicate on the "hidden_by" field.
func HiddenByGT(v string) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldGT(FieldHiddenBy, v))
}

// HiddenByGTE applies the GTE predicate on the "hidden_by" field.
func HiddenByGTE(v string) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldGTE(FieldHiddenBy, v))
}

// HiddenByLT applies the LT predicate on the "hidden_by" field.
func HiddenByLT(v string) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldLT(FieldHiddenBy, v))
}

// HiddenByLTE applies the LTE predicate on the "hidden_by" field.
func HiddenByLTE(v string) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldLTE(FieldHiddenBy, v))
}

// HiddenByContains applies the Contains predicate on the "hidden_by" field.
func HiddenByContains(v string) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldContains(FieldHiddenBy, v))
}

// HiddenByHasPrefix applies the HasPrefix predicate on the "hidden_by" field.
func HiddenByHasPrefix(v string) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldHasPrefix(FieldHiddenBy, v))
}

// HiddenByHasSuffix applies the HasSuffix predicate on the "hidden_by" field.
func HiddenByHasSuffix(v string) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldHasSuffix(FieldHiddenBy, v))
}

// HiddenByIsNil applies the IsNil predicate on the "hidden_by" field.
func HiddenByIsNil() predicate.RMAItem {
	return predicate.RMAItem(sql.FieldIsNull(FieldHiddenBy))
}

// HiddenByNotNil applies the NotNil predicate on the "hidden_by" field.
func HiddenByNotNil() predicate.RMAItem {
	return predicate.RMAItem(sql.FieldNotNull(FieldHiddenBy))
}

// HiddenByEqualFold applies the EqualFold predicate on the "hidden_by" field.
func HiddenByEqualFold(v string) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldEqualFold(FieldHiddenBy, v))
}

// HiddenByContainsFold applies the ContainsFold predicate on the "hidden_by" field.
func HiddenByContainsFold(v string) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldContainsFold(FieldHiddenBy, v))
}

// HiddenAtEQ applies the EQ predicate on the "hidden_at" field.
func HiddenAtEQ(v time.Time) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldEQ(FieldHiddenAt, v))
}

// HiddenAtNEQ applies the NEQ predicate on the "hidden_at" field.
func HiddenAtNEQ(v time.Time) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldNEQ(FieldHiddenAt, v))
}

// HiddenAtIn applies the In predicate on the "hidden_at" field.
func HiddenAtIn(vs ...time.Time) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldIn(FieldHiddenAt, vs...))
}

// HiddenAtNotIn applies the NotIn predicate on the "hidden_at" field.
func HiddenAtNotIn(vs ...time.Time) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldNotIn(FieldHiddenAt, vs...))
}

// HiddenAtGT applies the GT predicate on the "hidden_at" field.
func HiddenAtGT(v time.Time) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldGT(FieldHiddenAt, v))
}

// HiddenAtGTE applies the GTE predicate on the "hidden_at" field.
func HiddenAtGTE(v time.Time) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldGTE(FieldHiddenAt, v))
}

// HiddenAtLT applies the LT predicate on the "hidden_at" field.
func HiddenAtLT(v time.Time) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldLT(FieldHiddenAt, v))
}

// HiddenAtLTE applies the LTE predicate on the "hidden_at" field.
func HiddenAtLTE(v time.Time) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldLTE(FieldHiddenAt, v))
}

// HiddenAtIsNil applies the IsNil predicate on the "hidden_at" field.
func HiddenAtIsNil() predicate.RMAItem {
	return predicate.RMAItem(sql.FieldIsNull(FieldHiddenAt))
}

// HiddenAtNotNil applies the NotNil predicate on the "hidden_at" field.
func HiddenAtNotNil() predicate.RMAItem {
	return predicate.RMAItem(sql.FieldNotNull(FieldHiddenAt))
}

// ExcelRowEQ applies the EQ predicate on the "excel_row" field.
func ExcelRowEQ(v int) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldEQ(FieldExcelRow, v))
}

// ExcelRowNEQ applies the NEQ predicate on the "excel_row" field.
func ExcelRowNEQ(v int) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldNEQ(FieldExcelRow, v))
}

// ExcelRowIn applies the In predicate on the "excel_row" field.
func ExcelRowIn(vs ...int) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldIn(FieldExcelRow, vs...))
}

// ExcelRowNotIn applies the NotIn predicate on the "excel_row" field.
func ExcelRowNotIn(vs ...int) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldNotIn(FieldExcelRow, vs...))
}

// ExcelRowGT applies the GT predicate on the "excel_row" field.
func ExcelRowGT(v int) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldGT(FieldExcelRow, v))
}

// ExcelRowGTE applies the GTE predicate on the "excel_row" field.
func ExcelRowGTE(v int) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldGTE(FieldExcelRow, v))
}

// ExcelRowLT applies the LT predicate on the "excel_row" field.
func ExcelRowLT(v int) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldLT(FieldExcelRow, v))
}

// ExcelRowLTE applies the LTE predicate on the "excel_row" field.
func ExcelRowLTE(v int) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldLTE(FieldExcelRow, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.RMAItem {
	return predicate.RMAItem(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.RMAItem) predicate.RMAItem {
	return predicate.RMAItem(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.RMAItem) predicate.RMAItem {
	return predicate.RMAItem(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.RMAItem) predicate.RMAItem {
	return predicate.RMAItem(sql.NotPredicates(p))
}
