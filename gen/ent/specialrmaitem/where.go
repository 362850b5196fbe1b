// Code generated by ent, DO NOT EDIT.

package specialrmaitem

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/apx-soporte/warranty-tracker/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.SpecialRMAItem {
	return predicate.SpecialRMAItem(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.SpecialRMAItem {
	return predicate.SpecialRMAItem(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.SpecialRMAItem {
	return predicate.SpecialRMAItem(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.SpecialRMAItem {
	return predicate.SpecialRMAItem(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.SpecialRMAItem {
	return predicate.SpecialRMAItem(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.SpecialRMAItem {
	return predicate.SpecialRMAItem(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.SpecialRMAItem {
	return predicate.SpecialRMAItem(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.SpecialRMAItem {
	return predicate.SpecialRMAItem(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.SpecialRMAItem {
	return predicate.SpecialRMAItem(sql.FieldLTE(FieldID, id))
}

// Serial applies equality check predicate on the "serial" field. It's identical to SerialEQ.
func Serial(v string) predicate.SpecialRMAItem {
	return predicate.SpecialRMAItem(sql.FieldEQ(FieldSerial, v))
}

// Fallo applies equality check predicate on the "fallo" field. It's identical to FalloEQ.
func Fallo(v string) predicate.SpecialRMAItem {
	return predicate.SpecialRMAItem(sql.FieldEQ(FieldFallo, v))
}

// Resolucion applies equality check predicate on the "resolucion" field. It's identical to ResolucionEQ.
func Resolucion(v string) predicate.SpecialRMAItem {
	return predicate.SpecialRMAItem(sql.FieldEQ(FieldResolucion, v))
}

// ExcelRow applies equality check predicate on the "excel_row" field. It's identical to ExcelRowEQ.
func ExcelRow(v int) predicate.SpecialRMAItem {
	return predicate.SpecialRMAItem(sql.FieldEQ(FieldExcelRow, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.SpecialRMAItem {
	return predicate.SpecialRMAItem(sql.FieldEQ(FieldCreatedAt, v))
}

// SerialEQ applies the EQ predicate on the "serial" field.
func SerialEQ(v string) predicate.SpecialRMAItem {
	return predicate.SpecialRMAItem(sql.FieldEQ(FieldSerial, v))
}

// SerialNEQ applies the NEQ predicate on the "serial" field.
func SerialNEQ(v string) predicate.SpecialRMAItem {
	return predicate.SpecialRMAItem(sql.FieldNEQ(FieldSerial, v))
}

// SerialIn applies the In predicate on the "serial" field.
func SerialIn(vs ...string) predicate.SpecialRMAItem {
	return predicate.SpecialRMAItem(sql.FieldIn(FieldSerial, vs...))
}

// SerialNotIn applies the NotIn predicate on the "serial" field.
func SerialNotIn(vs ...string) predicate.SpecialRMAItem {
	return predicate.SpecialRMAItem(sql.FieldNotIn(FieldSerial, vs...))
}

// SerialGT applies the GT predicate on the "serial" field.
func SerialGT(v string) predicate.SpecialRMAItem {
	return predicate.SpecialRMAItem(sql.FieldGT(FieldSerial, v))
}

// SerialGTE applies the GTE predicate on the "serial" field.
func SerialGTE(v string) predicate.SpecialRMAItem {
	return predicate.SpecialRMAItem(sql.FieldGTE(FieldSerial, v))
}

// SerialLT applies the LT predicate on the "serial" field.
func SerialLT(v string) predicate.SpecialRMAItem {
	return predicate.SpecialRMAItem(sql.FieldLT(FieldSerial, v))
}

// SerialLTE applies the LTE predicate on the "serial" field.
func SerialLTE(v string) predicate.SpecialRMAItem {
	return predicate.SpecialRMAItem(sql.FieldLTE(FieldSerial, v))
}

// SerialContains applies the Contains predicate on the "serial" field.
func SerialContains(v string) predicate.SpecialRMAItem {
	return predicate.SpecialRMAItem(sql.FieldContains(FieldSerial, v))
}

// SerialHasPrefix applies the HasPrefix predicate on the "serial" field.
func SerialHasPrefix(v string) predicate.SpecialRMAItem {
	return predicate.SpecialRMAItem(sql.FieldHasPrefix(FieldSerial, v))
}

// SerialHasSuffix applies the HasSuffix predicate on the "serial" field.
func SerialHasSuffix(v string) predicate.SpecialRMAItem {
	return predicate.SpecialRMAItem(sql.FieldHasSuffix(FieldSerial, v))
}

// SerialEqualFold applies the EqualFold predicate on the "serial" field.
func SerialEqualFold(v string) predicate.SpecialRMAItem {
	return predicate.SpecialRMAItem(sql.FieldEqualFold(FieldSerial, v))
}

// SerialContainsFold applies the ContainsFold predicate on the "serial" field.
func SerialContainsFold(v string) predicate.SpecialRMAItem {
	return predicate.SpecialRMAItem(sql.FieldContainsFold(FieldSerial, v))
}

// FalloEQ applies the EQ predicate on the "fallo" field.
func FalloEQ(v string) predicate.SpecialRMAItem {
	return predicate.SpecialRMAItem(sql.FieldEQ(FieldFallo, v))
}

// FalloNEQ applies the NEQ predicate on the "fallo" field.
func FalloNEQ(v string) predicate.SpecialRMAItem {
	return predicate.SpecialRMAItem(sql.FieldNEQ(FieldFallo, v))
}

// FalloIn applies the In predicate on the "fallo" field.
func FalloIn(vs ...string) predicate.SpecialRMAItem {
	return predicate.SpecialRMAItem(sql.FieldIn(FieldFallo, vs...))
}

// FalloNotIn applies the NotIn predicate on the "fallo" field.
func FalloNotIn(vs ...string) predicate.SpecialRMAItem {
	return predicate.SpecialRMAItem(sql.FieldNotIn(FieldFallo, vs...))
}

// FalloGT applies the GT predicate on the "fallo" field.
func FalloGT(v string) predicate.SpecialRMAItem {
	return predicate.SpecialRMAItem(sql.FieldGT(FieldFallo, v))
}

// FalloGTE applies the GTE predicate on the "fallo" field.
func FalloGTE(v string) predicate.SpecialRMAItem {
	return predicate.SpecialRMAItem(sql.FieldGTE(FieldFallo, v))
}

// FalloLT applies the LT predicate on the "fallo" field.
func FalloLT(v string) predicate.SpecialRMAItem {
	return predicate.SpecialRMAItem(sql.FieldLT(FieldFallo, v))
}

// FalloLTE applies the LTE predicate on the "fallo" field.
func FalloLTE(v string) predicate.SpecialRMAItem {
	return predicate.SpecialRMAItem(sql.FieldLTE(FieldFallo, v))
}

// FalloContains applies the Contains predicate on the "fallo" field.
func FalloContains(v string) predicate.SpecialRMAItem {
	return predicate.SpecialRMAItem(sql.FieldContains(FieldFallo, v))
}

// FalloHasPrefix applies the HasPrefix predicate on the "fallo" field.
func FalloHasPrefix(v string) predicate.SpecialRMAItem {
	return predicate.SpecialRMAItem(sql.FieldHasPrefix(FieldFallo, v))
}

// FalloHasSuffix applies the HasSuffix predicate on the "fallo" field.
func FalloHasSuffix(v string) predicate.SpecialRMAItem {
	return predicate.SpecialRMAItem(sql.FieldHasSuffix(FieldFallo, v))
}

// FalloEqualFold applies the EqualFold predicate on the "fallo" field.
func FalloEqualFold(v string) predicate.SpecialRMAItem {
	return predicate.SpecialRMAItem(sql.FieldEqualFold(FieldFallo, v))
}

// FalloContainsFold applies the ContainsFold predicate on the "fallo" field.
func FalloContainsFold(v string) predicate.SpecialRMAItem {
	return predicate.SpecialRMAItem(sql.FieldContainsFold(FieldFallo, v))
}

// ResolucionEQ applies the EQ predicate on the "resolucion" field.
func ResolucionEQ(v string) predicate.SpecialRMAItem {
	return predicate.SpecialRMAItem(sql.FieldEQ(FieldResolucion, v))
}

// ResolucionNEQ applies the NEQ predicate on the "resolucion" field.
func ResolucionNEQ(v string) predicate.SpecialRMAItem {
	return predicate.SpecialRMAItem(sql.FieldNEQ(FieldResolucion, v))
}

// ResolucionIn applies the In predicate on the "resolucion" field.
func ResolucionIn(vs ...string) predicate.SpecialRMAItem {
	return predicate.SpecialRMAItem(sql.FieldIn(FieldResolucion, vs...))
}

// ResolucionNotIn applies the NotIn predicate on the "resolucion" field.
func ResolucionNotIn(vs ...string) predicate.SpecialRMAItem {
	return predicate.SpecialRMAItem(sql.FieldNotIn(FieldResolucion, vs...))
}

// ResolucionGT applies the GT predicate on the "resolucion" field.
func ResolucionGT(v string) predicate.SpecialRMAItem {
	return predicate.SpecialRMAItem(sql.FieldGT(FieldResolucion, v))
}

// ResolucionGTE applies the GTE predicate on the "resolucion" field.
func ResolucionGTE(v string) predicate.SpecialRMAItem {
	return predicate.SpecialRMAItem(sql.FieldGTE(FieldResolucion, v))
}

// ResolucionLT applies the LT predicate on the "resolucion" field.
func ResolucionLT(v string) predicate.SpecialRMAItem {
	return predicate.SpecialRMAItem(sql.FieldLT(FieldResolucion, v))
}

// ResolucionLTE applies the LTE predicate on the "resolucion" field.
func ResolucionLTE(v string) predicate.SpecialRMAItem {
	return predicate.SpecialRMAItem(sql.FieldLTE(FieldResolucion, v))
}

// ResolucionContains applies the Contains predicate on the "resolucion" field.
func ResolucionContains(v string) predicate.SpecialRMAItem {
	return predicate.SpecialRMAItem(sql.FieldContains(FieldResolucion, v))
}

// ResolucionHasPrefix applies the HasPrefix predicate on the "resolucion" field.
func ResolucionHasPrefix(v string) predicate.SpecialRMAItem {
	return predicate.SpecialRMAItem(sql.FieldHasPrefix(FieldResolucion, v))
}

// ResolucionHasSuffix applies the HasSuffix predicate on the "resolucion" field.
func ResolucionHasSuffix(v string) predicate.SpecialRMAItem {
	return predicate.SpecialRMAItem(sql.FieldHasSuffix(FieldResolucion, v))
}

// ResolucionEqualFold applies the EqualFold predicate on the "resolucion" field.
func ResolucionEqualFold(v string) predicate.SpecialRMAItem {
	return predicate.SpecialRMAItem(sql.FieldEqualFold(FieldResolucion, v))
}

// ResolucionContainsFold applies the ContainsFold predicate on the "resolucion" field.
func ResolucionContainsFold(v string) predicate.SpecialRMAItem {
	return predicate.SpecialRMAItem(sql.FieldContainsFold(FieldResolucion, v))
}

// ExcelRowEQ applies the EQ predicate on the "excel_row" field.
func ExcelRowEQ(v int) predicate.SpecialRMAItem {
	return predicate.SpecialRMAItem(sql.FieldEQ(FieldExcelRow, v))
}

// ExcelRowNEQ applies the NEQ predicate on the "excel_row" field.
func ExcelRowNEQ(v int) predicate.SpecialRMAItem {
	return predicate.SpecialRMAItem(sql.FieldNEQ(FieldExcelRow, v))
}

// ExcelRowIn applies the In predicate on the "excel_row" field.
func ExcelRowIn(vs ...int) predicate.SpecialRMAItem {
	return predicate.SpecialRMAItem(sql.FieldIn(FieldExcelRow, vs...))
}

// ExcelRowNotIn applies the NotIn predicate on the "excel_row" field.
func ExcelRowNotIn(vs ...int) predicate.SpecialRMAItem {
	return predicate.SpecialRMAItem(sql.FieldNotIn(FieldExcelRow, vs...))
}

// ExcelRowGT applies the GT predicate on the "excel_row" field.
func ExcelRowGT(v int) predicate.SpecialRMAItem {
	return predicate.SpecialRMAItem(sql.FieldGT(FieldExcelRow, v))
}

// ExcelRowGTE applies the GTE predicate on the "excel_row" field.
func ExcelRowGTE(v int) predicate.SpecialRMAItem {
	return predicate.SpecialRMAItem(sql.FieldGTE(FieldExcelRow, v))
}

// ExcelRowLT applies the LT predicate on the "excel_row" field.
func ExcelRowLT(v int) predicate.SpecialRMAItem {
	return predicate.SpecialRMAItem(sql.FieldLT(FieldExcelRow, v))
}

// ExcelRowLTE applies the LTE predicate on the "excel_row" field.
func ExcelRowLTE(v int) predicate.SpecialRMAItem {
	return predicate.SpecialRMAItem(sql.FieldLTE(FieldExcelRow, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.SpecialRMAItem {
	return predicate.SpecialRMAItem(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.SpecialRMAItem {
	return predicate.SpecialRMAItem(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.SpecialRMAItem {
	return predicate.SpecialRMAItem(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.SpecialRMAItem {
	return predicate.SpecialRMAItem(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.SpecialRMAItem {
	return predicate.SpecialRMAItem(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.SpecialRMAItem {
	return predicate.SpecialRMAItem(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.SpecialRMAItem {
	return predicate.SpecialRMAItem(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.SpecialRMAItem {
	return predicate.SpecialRMAItem(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SpecialRMAItem) predicate.SpecialRMAItem {
	return predicate.SpecialRMAItem(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SpecialRMAItem) predicate.SpecialRMAItem {
	return predicate.SpecialRMAItem(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SpecialRMAItem) predicate.SpecialRMAItem {
	return predicate.SpecialRMAItem(sql.NotPredicates(p))
}
