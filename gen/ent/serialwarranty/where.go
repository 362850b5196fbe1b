// Code generated by ent, DO NOT EDIT.

package serialwarranty

import (
	"entgo.io/ent/dialect/sql"
	"github.com/apx-soporte/warranty-tracker/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.SerialWarranty {
	return predicate.SerialWarranty(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.SerialWarranty {
	return predicate.SerialWarranty(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.SerialWarranty {
	return predicate.SerialWarranty(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.SerialWarranty {
	return predicate.SerialWarranty(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.SerialWarranty {
	return predicate.SerialWarranty(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.SerialWarranty {
	return predicate.SerialWarranty(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.SerialWarranty {
	return predicate.SerialWarranty(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.SerialWarranty {
	return predicate.SerialWarranty(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.SerialWarranty {
	return predicate.SerialWarranty(sql.FieldLTE(FieldID, id))
}

// Serial applies equality check predicate on the "serial" field. It's identical to SerialEQ.
func Serial(v string) predicate.SerialWarranty {
	return predicate.SerialWarranty(sql.FieldEQ(FieldSerial, v))
}

// WarrantyValid applies equality check predicate on the "warranty_valid" field. It's identical to WarrantyValidEQ.
func WarrantyValid(v bool) predicate.SerialWarranty {
	return predicate.SerialWarranty(sql.FieldEQ(FieldWarrantyValid, v))
}

// SerialEQ applies the EQ predicate on the "serial" field.
func SerialEQ(v string) predicate.SerialWarranty {
	return predicate.SerialWarranty(sql.FieldEQ(FieldSerial, v))
}

// SerialNEQ applies the NEQ predicate on the "serial" field.
func SerialNEQ(v string) predicate.SerialWarranty {
	return predicate.SerialWarranty(sql.FieldNEQ(FieldSerial, v))
}

// SerialIn applies the In predicate on the "serial" field.
func SerialIn(vs ...string) predicate.SerialWarranty {
	return predicate.SerialWarranty(sql.FieldIn(FieldSerial, vs...))
}

// SerialNotIn applies the NotIn predicate on the "serial" field.
func SerialNotIn(vs ...string) predicate.SerialWarranty {
	return predicate.SerialWarranty(sql.FieldNotIn(FieldSerial, vs...))
}

// SerialGT applies the GT predicate on the "serial" field.
func SerialGT(v string) predicate.SerialWarranty {
	return predicate.SerialWarranty(sql.FieldGT(FieldSerial, v))
}

// SerialGTE applies the GTE predicate on the "serial" field.
func SerialGTE(v string) predicate.SerialWarranty {
	return predicate.SerialWarranty(sql.FieldGTE(FieldSerial, v))
}

// SerialLT applies the LT predicate on the "serial" field.
func SerialLT(v string) predicate.SerialWarranty {
	return predicate.SerialWarranty(sql.FieldLT(FieldSerial, v))
}

// SerialLTE applies the LTE predicate on the "serial" field.
func SerialLTE(v string) predicate.SerialWarranty {
	return predicate.SerialWarranty(sql.FieldLTE(FieldSerial, v))
}

// SerialContains applies the Contains predicate on the "serial" field.
func SerialContains(v string) predicate.SerialWarranty {
	return predicate.SerialWarranty(sql.FieldContains(FieldSerial, v))
}

// SerialHasPrefix applies the HasPrefix predicate on the "serial" field.
func SerialHasPrefix(v string) predicate.SerialWarranty {
	return predicate.SerialWarranty(sql.FieldHasPrefix(FieldSerial, v))
}

// SerialHasSuffix applies the HasSuffix predicate on the "serial" field.
func SerialHasSuffix(v string) predicate.SerialWarranty {
	return predicate.SerialWarranty(sql.FieldHasSuffix(FieldSerial, v))
}

// SerialEqualFold applies the EqualFold predicate on the "serial" field.
func SerialEqualFold(v string) predicate.SerialWarranty {
	return predicate.SerialWarranty(sql.FieldEqualFold(FieldSerial, v))
}

// SerialContainsFold applies the ContainsFold predicate on the "serial" field.
func SerialContainsFold(v string) predicate.SerialWarranty {
	return predicate.SerialWarranty(sql.FieldContainsFold(FieldSerial, v))
}

// WarrantyValidEQ applies the EQ predicate on the "warranty_valid" field.
func WarrantyValidEQ(v bool) predicate.SerialWarranty {
	return predicate.SerialWarranty(sql.FieldEQ(FieldWarrantyValid, v))
}

// WarrantyValidNEQ applies the NEQ predicate on the "warranty_valid" field.
func WarrantyValidNEQ(v bool) predicate.SerialWarranty {
	return predicate.SerialWarranty(sql.FieldNEQ(FieldWarrantyValid, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SerialWarranty) predicate.SerialWarranty {
	return predicate.SerialWarranty(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SerialWarranty) predicate.SerialWarranty {
	return predicate.SerialWarranty(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SerialWarranty) predicate.SerialWarranty {
	return predicate.SerialWarranty(sql.NotPredicates(p))
}
