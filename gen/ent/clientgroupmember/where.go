// Code generated by ent, DO NOT EDIT.

package clientgroupmember

import (
	"entgo.io/ent/dialect/sql"
	"github.com/apx-soporte/warranty-tracker/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ClientGroupMember {
	return predicate.ClientGroupMember(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ClientGroupMember {
	return predicate.ClientGroupMember(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ClientGroupMember {
	return predicate.ClientGroupMember(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ClientGroupMember {
	return predicate.ClientGroupMember(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ClientGroupMember {
	return predicate.ClientGroupMember(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ClientGroupMember {
	return predicate.ClientGroupMember(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ClientGroupMember {
	return predicate.ClientGroupMember(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ClientGroupMember {
	return predicate.ClientGroupMember(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ClientGroupMember {
	return predicate.ClientGroupMember(sql.FieldLTE(FieldID, id))
}

// GroupID applies equality check predicate on the "group_id" field. It's identical to GroupIDEQ.
func GroupID(v int) predicate.ClientGroupMember {
	return predicate.ClientGroupMember(sql.FieldEQ(FieldGroupID, v))
}

// ClientName applies equality check predicate on the "client_name" field. It's identical to ClientNameEQ.
func ClientName(v string) predicate.ClientGroupMember {
	return predicate.ClientGroupMember(sql.FieldEQ(FieldClientName, v))
}

// ClientEmail applies equality check predicate on the "client_email" field. It's identical to ClientEmailEQ.
func ClientEmail(v string) predicate.ClientGroupMember {
	return predicate.ClientGroupMember(sql.FieldEQ(FieldClientEmail, v))
}

// GroupIDEQ applies the EQ predicate on the "group_id" field.
func GroupIDEQ(v int) predicate.ClientGroupMember {
	return predicate.ClientGroupMember(sql.FieldEQ(FieldGroupID, v))
}

// GroupIDNEQ applies the NEQ predicate on the "group_id" field.
func GroupIDNEQ(v int) predicate.ClientGroupMember {
	return predicate.ClientGroupMember(sql.FieldNEQ(FieldGroupID, v))
}

// GroupIDIn applies the In predicate on the "group_id" field.
func GroupIDIn(vs ...int) predicate.ClientGroupMember {
	return predicate.ClientGroupMember(sql.FieldIn(FieldGroupID, vs...))
}

// GroupIDNotIn applies the NotIn predicate on the "group_id" field.
func GroupIDNotIn(vs ...int) predicate.ClientGroupMember {
	return predicate.ClientGroupMember(sql.FieldNotIn(FieldGroupID, vs...))
}

// GroupIDGT applies the GT predicate on the "group_id" field.
func GroupIDGT(v int) predicate.ClientGroupMember {
	return predicate.ClientGroupMember(sql.FieldGT(FieldGroupID, v))
}

// GroupIDGTE applies the GTE predicate on the "group_id" field.
func GroupIDGTE(v int) predicate.ClientGroupMember {
	return predicate.ClientGroupMember(sql.FieldGTE(FieldGroupID, v))
}

// GroupIDLT applies the LT predicate on the "group_id" field.
func GroupIDLT(v int) predicate.ClientGroupMember {
	return predicate.ClientGroupMember(sql.FieldLT(FieldGroupID, v))
}

// GroupIDLTE applies the LTE predicate on the "group_id" field.
func GroupIDLTE(v int) predicate.ClientGroupMember {
	return predicate.ClientGroupMember(sql.FieldLTE(FieldGroupID, v))
}

// ClientNameEQ applies the EQ predicate on the "client_name" field.
func ClientNameEQ(v string) predicate.ClientGroupMember {
	return predicate.ClientGroupMember(sql.FieldEQ(FieldClientName, v))
}

// ClientNameNEQ applies the NEQ predicate on the "client_name" field.
func ClientNameNEQ(v string) predicate.ClientGroupMember {
	return predicate.ClientGroupMember(sql.FieldNEQ(FieldClientName, v))
}

// ClientNameIn applies the In predicate on the "client_name" field.
func ClientNameIn(vs ...string) predicate.ClientGroupMember {
	return predicate.ClientGroupMember(sql.FieldIn(FieldClientName, vs...))
}

// ClientNameNotIn applies the NotIn predicate on the "client_name" field.
func ClientNameNotIn(vs ...string) predicate.ClientGroupMember {
	return predicate.ClientGroupMember(sql.FieldNotIn(FieldClientName, vs...))
}

// ClientNameGT applies the GT predicate on the "client_name" field.
func ClientNameGT(v string) predicate.ClientGroupMember {
	return predicate.ClientGroupMember(sql.FieldGT(FieldClientName, v))
}

// ClientNameGTE applies the GTE predicate on the "client_name" field.
func ClientNameGTE(v string) predicate.ClientGroupMember {
	return predicate.ClientGroupMember(sql.FieldGTE(FieldClientName, v))
}

// ClientNameLT applies the LT predicate on the "client_name" field.
func ClientNameLT(v string) predicate.ClientGroupMember {
	return predicate.ClientGroupMember(sql.FieldLT(FieldClientName, v))
}

// ClientNameLTE applies the LTE predicate on the "client_name" field.
func ClientNameLTE(v string) predicate.ClientGroupMember {
	return predicate.ClientGroupMember(sql.FieldLTE(FieldClientName, v))
}

// ClientNameContains applies the Contains predicate on the "client_name" field.
func ClientNameContains(v string) predicate.ClientGroupMember {
	return predicate.ClientGroupMember(sql.FieldContains(FieldClientName, v))
}

// ClientNameHasPrefix applies the HasPrefix predicate on the "client_name" field.
func ClientNameHasPrefix(v string) predicate.ClientGroupMember {
	return predicate.ClientGroupMember(sql.FieldHasPrefix(FieldClientName, v))
}

// ClientNameHasSuffix applies the HasSuffix predicate on the "client_name" field.
func ClientNameHasSuffix(v string) predicate.ClientGroupMember {
	return predicate.ClientGroupMember(sql.FieldHasSuffix(FieldClientName, v))
}

// ClientNameEqualFold applies the EqualFold predicate on the "client_name" field.
func ClientNameEqualFold(v string) predicate.ClientGroupMember {
	return predicate.ClientGroupMember(sql.FieldEqualFold(FieldClientName, v))
}

// ClientNameContainsFold applies the ContainsFold predicate on the "client_name" field.
func ClientNameContainsFold(v string) predicate.ClientGroupMember {
	return predicate.ClientGroupMember(sql.FieldContainsFold(FieldClientName, v))
}

// ClientEmailEQ applies the EQ predicate on the "client_email" field.
func ClientEmailEQ(v string) predicate.ClientGroupMember {
	return predicate.ClientGroupMember(sql.FieldEQ(FieldClientEmail, v))
}

// ClientEmailNEQ applies the NEQ predicate on the "client_email" field.
func ClientEmailNEQ(v string) predicate.ClientGroupMember {
	return predicate.ClientGroupMember(sql.FieldNEQ(FieldClientEmail, v))
}

// ClientEmailIn applies the In predicate on the "client_email" field.
func ClientEmailIn(vs ...string) predicate.ClientGroupMember {
	return predicate.ClientGroupMember(sql.FieldIn(FieldClientEmail, vs...))
}

// ClientEmailNotIn applies the NotIn predicate on the "client_email" field.
func ClientEmailNotIn(vs ...string) predicate.ClientGroupMember {
	return predicate.ClientGroupMember(sql.FieldNotIn(FieldClientEmail, vs...))
}

// ClientEmailGT applies the GT predicate on the "client_email" field.
func ClientEmailGT(v string) predicate.ClientGroupMember {
	return predicate.ClientGroupMember(sql.FieldGT(FieldClientEmail, v))
}

// ClientEmailGTE applies the GTE predicate on the "client_email" field.
func ClientEmailGTE(v string) predicate.ClientGroupMember {
	return predicate.ClientGroupMember(sql.FieldGTE(FieldClientEmail, v))
}

// ClientEmailLT applies the LT predicate on the "client_email" field.
func ClientEmailLT(v string) predicate.ClientGroupMember {
	return predicate.ClientGroupMember(sql.FieldLT(FieldClientEmail, v))
}

// ClientEmailLTE applies the LTE predicate on the "client_email" field.
func ClientEmailLTE(v string) predicate.ClientGroupMember {
	return predicate.ClientGroupMember(sql.FieldLTE(FieldClientEmail, v))
}

// ClientEmailContains applies the Contains predicate on the "client_email" field.
func ClientEmailContains(v string) predicate.ClientGroupMember {
	return predicate.ClientGroupMember(sql.FieldContains(FieldClientEmail, v))
}

// ClientEmailHasPrefix applies the HasPrefix predicate on the "client_email" field.
func ClientEmailHasPrefix(v string) predicate.ClientGroupMember {
	return predicate.ClientGroupMember(sql.FieldHasPrefix(FieldClientEmail, v))
}

// ClientEmailHasSuffix applies the HasSuffix predicate on the "client_email" field.
func ClientEmailHasSuffix(v string) predicate.ClientGroupMember {
	return predicate.ClientGroupMember(sql.FieldHasSuffix(FieldClientEmail, v))
}

// ClientEmailEqualFold applies the EqualFold predicate on the "client_email" field.
func ClientEmailEqualFold(v string) predicate.ClientGroupMember {
	return predicate.ClientGroupMember(sql.FieldEqualFold(FieldClientEmail, v))
}

// ClientEmailContainsFold applies the ContainsFold predicate on the "client_email" field.
func ClientEmailContainsFold(v string) predicate.ClientGroupMember {
	return predicate.ClientGroupMember(sql.FieldContainsFold(FieldClientEmail, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ClientGroupMember) predicate.ClientGroupMember {
	return predicate.ClientGroupMember(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ClientGroupMember) predicate.ClientGroupMember {
	return predicate.ClientGroupMember(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ClientGroupMember) predicate.ClientGroupMember {
	return predicate.ClientGroupMember(sql.NotPredicates(p))
}
