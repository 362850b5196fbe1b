// Code generated by ent, DO NOT EDIT.

package clientgroup

import (
	"entgo.io/ent/dialect/sql"
	"github.com/apx-soporte/warranty-tracker/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ClientGroup {
	return predicate.ClientGroup(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ClientGroup {
	return predicate.ClientGroup(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ClientGroup {
	return predicate.ClientGroup(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ClientGroup {
	return predicate.ClientGroup(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ClientGroup {
	return predicate.ClientGroup(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ClientGroup {
	return predicate.ClientGroup(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ClientGroup {
	return predicate.ClientGroup(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ClientGroup {
	return predicate.ClientGroup(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ClientGroup {
	return predicate.ClientGroup(sql.FieldLTE(FieldID, id))
}

// CanonicalName applies equality check predicate on the "canonical_name" field. It's identical to CanonicalNameEQ.
func CanonicalName(v string) predicate.ClientGroup {
	return predicate.ClientGroup(sql.FieldEQ(FieldCanonicalName, v))
}

// CanonicalEmail applies equality check predicate on the "canonical_email" field. It's identical to CanonicalEmailEQ.
func CanonicalEmail(v string) predicate.ClientGroup {
	return predicate.ClientGroup(sql.FieldEQ(FieldCanonicalEmail, v))
}

// CanonicalPhone applies equality check predicate on the "canonical_phone" field. It's identical to CanonicalPhoneEQ.
func CanonicalPhone(v string) predicate.ClientGroup {
	return predicate.ClientGroup(sql.FieldEQ(FieldCanonicalPhone, v))
}

// CanonicalNameEQ applies the EQ predicate on the "canonical_name" field.
func CanonicalNameEQ(v string) predicate.ClientGroup {
	return predicate.ClientGroup(sql.FieldEQ(FieldCanonicalName, v))
}

// CanonicalNameNEQ applies the NEQ predicate on the "canonical_name" field.
func CanonicalNameNEQ(v string) predicate.ClientGroup {
	return predicate.ClientGroup(sql.FieldNEQ(FieldCanonicalName, v))
}

// CanonicalNameIn applies the In predicate on the "canonical_name" field.
func CanonicalNameIn(vs ...string) predicate.ClientGroup {
	return predicate.ClientGroup(sql.FieldIn(FieldCanonicalName, vs...))
}

// CanonicalNameNotIn applies the NotIn predicate on the "canonical_name" field.
func CanonicalNameNotIn(vs ...string) predicate.ClientGroup {
	return predicate.ClientGroup(sql.FieldNotIn(FieldCanonicalName, vs...))
}

// CanonicalNameGT applies the GT predicate on the "canonical_name" field.
func CanonicalNameGT(v string) predicate.ClientGroup {
	return predicate.ClientGroup(sql.FieldGT(FieldCanonicalName, v))
}

// CanonicalNameGTE applies the GTE predicate on the "canonical_name" field.
func CanonicalNameGTE(v string) predicate.ClientGroup {
	return predicate.ClientGroup(sql.FieldGTE(FieldCanonicalName, v))
}

// CanonicalNameLT applies the LT predicate on the "canonical_name" field.
func CanonicalNameLT(v string) predicate.ClientGroup {
	return predicate.ClientGroup(sql.FieldLT(FieldCanonicalName, v))
}

// CanonicalNameLTE applies the LTE predicate on the "canonical_name" field.
func CanonicalNameLTE(v string) predicate.ClientGroup {
	return predicate.ClientGroup(sql.FieldLTE(FieldCanonicalName, v))
}

// CanonicalNameContains applies the Contains predicate on the "canonical_name" field.
func CanonicalNameContains(v string) predicate.ClientGroup {
	return predicate.ClientGroup(sql.FieldContains(FieldCanonicalName, v))
}

// CanonicalNameHasPrefix applies the HasPrefix predicate on the "canonical_name" field.
func CanonicalNameHasPrefix(v string) predicate.ClientGroup {
	return predicate.ClientGroup(sql.FieldHasPrefix(FieldCanonicalName, v))
}

// CanonicalNameHasSuffix applies the HasSuffix predicate on the "canonical_name" field.
func CanonicalNameHasSuffix(v string) predicate.ClientGroup {
	return predicate.ClientGroup(sql.FieldHasSuffix(FieldCanonicalName, v))
}

// CanonicalNameEqualFold applies the EqualFold predicate on the "canonical_name" field.
func CanonicalNameEqualFold(v string) predicate.ClientGroup {
	return predicate.ClientGroup(sql.FieldEqualFold(FieldCanonicalName, v))
}

// CanonicalNameContainsFold applies the ContainsFold predicate on the "canonical_name" field.
func CanonicalNameContainsFold(v string) predicate.ClientGroup {
	return predicate.ClientGroup(sql.FieldContainsFold(FieldCanonicalName, v))
}

// CanonicalEmailEQ applies the EQ predicate on the "canonical_email" field.
func CanonicalEmailEQ(v string) predicate.ClientGroup {
	return predicate.ClientGroup(sql.FieldEQ(FieldCanonicalEmail, v))
}

// CanonicalEmailNEQ applies the NEQ predicate on the "canonical_email" field.
func CanonicalEmailNEQ(v string) predicate.ClientGroup {
	return predicate.ClientGroup(sql.FieldNEQ(FieldCanonicalEmail, v))
}

// CanonicalEmailIn applies the In predicate on the "canonical_email" field.
func CanonicalEmailIn(vs ...string) predicate.ClientGroup {
	return predicate.ClientGroup(sql.FieldIn(FieldCanonicalEmail, vs...))
}

// CanonicalEmailNotIn applies the NotIn predicate on the "canonical_email" field.
func CanonicalEmailNotIn(vs ...string) predicate.ClientGroup {
	return predicate.ClientGroup(sql.FieldNotIn(FieldCanonicalEmail, vs...))
}

// CanonicalEmailGT applies the GT predicate on the "canonical_email" field.
func CanonicalEmailGT(v string) predicate.ClientGroup {
	return predicate.ClientGroup(sql.FieldGT(FieldCanonicalEmail, v))
}

// CanonicalEmailGTE applies the GTE predicate on the "canonical_email" field.
func CanonicalEmailGTE(v string) predicate.ClientGroup {
	return predicate.ClientGroup(sql.FieldGTE(FieldCanonicalEmail, v))
}

// CanonicalEmailLT applies the LT predicate on the "canonical_email" field.
func CanonicalEmailLT(v string) predicate.ClientGroup {
	return predicate.ClientGroup(sql.FieldLT(FieldCanonicalEmail, v))
}

// CanonicalEmailLTE applies the LTE predicate on the "canonical_email" field.
func CanonicalEmailLTE(v string) predicate.ClientGroup {
	return predicate.ClientGroup(sql.FieldLTE(FieldCanonicalEmail, v))
}

// CanonicalEmailContains applies the Contains predicate on the "canonical_email" field.
func CanonicalEmailContains(v string) predicate.ClientGroup {
	return predicate.ClientGroup(sql.FieldContains(FieldCanonicalEmail, v))
}

// CanonicalEmailHasPrefix applies the HasPrefix predicate on the "canonical_email" field.
func CanonicalEmailHasPrefix(v string) predicate.ClientGroup {
	return predicate.ClientGroup(sql.FieldHasPrefix(FieldCanonicalEmail, v))
}

// CanonicalEmailHasSuffix applies the HasSuffix predicate on the "canonical_email" field.
func CanonicalEmailHasSuffix(v string) predicate.ClientGroup {
	return predicate.ClientGroup(sql.FieldHasSuffix(FieldCanonicalEmail, v))
}

// CanonicalEmailEqualFold applies the EqualFold predicate on the "canonical_email" field.
func CanonicalEmailEqualFold(v string) predicate.ClientGroup {
	return predicate.ClientGroup(sql.FieldEqualFold(FieldCanonicalEmail, v))
}

// CanonicalEmailContainsFold applies the ContainsFold predicate on the "canonical_email" field.
func CanonicalEmailContainsFold(v string) predicate.ClientGroup {
	return predicate.ClientGroup(sql.FieldContainsFold(FieldCanonicalEmail, v))
}

// CanonicalPhoneEQ applies the EQ predicate on the "canonical_phone" field.
func CanonicalPhoneEQ(v string) predicate.ClientGroup {
	return predicate.ClientGroup(sql.FieldEQ(FieldCanonicalPhone, v))
}

// CanonicalPhoneNEQ applies the NEQ predicate on the "canonical_phone" field.
func CanonicalPhoneNEQ(v string) predicate.ClientGroup {
	return predicate.ClientGroup(sql.FieldNEQ(FieldCanonicalPhone, v))
}

// CanonicalPhoneIn applies the In predicate on the "canonical_phone" field.
func CanonicalPhoneIn(vs ...string) predicate.ClientGroup {
	return predicate.ClientGroup(sql.FieldIn(FieldCanonicalPhone, vs...))
}

// CanonicalPhoneNotIn applies the NotIn predicate on the "canonical_phone" field.
func CanonicalPhoneNotIn(vs ...string) predicate.ClientGroup {
	return predicate.ClientGroup(sql.FieldNotIn(FieldCanonicalPhone, vs...))
}

// CanonicalPhoneGT applies the GT predicate on the "canonical_phone" field.
func CanonicalPhoneGT(v string) predicate.ClientGroup {
	return predicate.ClientGroup(sql.FieldGT(FieldCanonicalPhone, v))
}

// CanonicalPhoneGTE applies the GTE predicate on the "canonical_phone" field.
func CanonicalPhoneGTE(v string) predicate.ClientGroup {
	return predicate.ClientGroup(sql.FieldGTE(FieldCanonicalPhone, v))
}

// CanonicalPhoneLT applies the LT predicate on the "canonical_phone" field.
func CanonicalPhoneLT(v string) predicate.ClientGroup {
	return predicate.ClientGroup(sql.FieldLT(FieldCanonicalPhone, v))
}

// CanonicalPhoneLTE applies the LTE predicate on the "canonical_phone" field.
func CanonicalPhoneLTE(v string) predicate.ClientGroup {
	return predicate.ClientGroup(sql.FieldLTE(FieldCanonicalPhone, v))
}

// CanonicalPhoneContains applies the Contains predicate on the "canonical_phone" field.
func CanonicalPhoneContains(v string) predicate.ClientGroup {
	return predicate.ClientGroup(sql.FieldContains(FieldCanonicalPhone, v))
}

// CanonicalPhoneHasPrefix applies the HasPrefix predicate on the "canonical_phone" field.
func CanonicalPhoneHasPrefix(v string) predicate.ClientGroup {
	return predicate.ClientGroup(sql.FieldHasPrefix(FieldCanonicalPhone, v))
}

// CanonicalPhoneHasSuffix applies the HasSuffix predicate on the "canonical_phone" field.
func CanonicalPhoneHasSuffix(v string) predicate.ClientGroup {
	return predicate.ClientGroup(sql.FieldHasSuffix(FieldCanonicalPhone, v))
}

// CanonicalPhoneEqualFold applies the EqualFold predicate on the "canonical_phone" field.
func CanonicalPhoneEqualFold(v string) predicate.ClientGroup {
	return predicate.ClientGroup(sql.FieldEqualFold(FieldCanonicalPhone, v))
}

// CanonicalPhoneContainsFold applies the ContainsFold predicate on the "canonical_phone" field.
func CanonicalPhoneContainsFold(v string) predicate.ClientGroup {
	return predicate.ClientGroup(sql.FieldContainsFold(FieldCanonicalPhone, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ClientGroup) predicate.ClientGroup {
	return predicate.ClientGroup(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ClientGroup) predicate.ClientGroup {
	return predicate.ClientGroup(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ClientGroup) predicate.ClientGroup {
	return predicate.ClientGroup(sql.NotPredicates(p))
}
