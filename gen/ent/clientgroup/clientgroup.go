// Code generated by ent, DO NOT EDIT.

package clientgroup

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the clientgroup type in the database.
	Label = "client_group"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCanonicalName holds the string denoting the canonical_name field in the database.
	FieldCanonicalName = "canonical_name"
	// FieldCanonicalEmail holds the string denoting the canonical_email field in the database.
	FieldCanonicalEmail = "canonical_email"
	// FieldCanonicalPhone holds the string denoting the canonical_phone field in the database.
	FieldCanonicalPhone = "canonical_phone"
	// Table holds the table name of the clientgroup in the database.
	Table = "client_groups"
)

// Columns holds all SQL columns for clientgroup fields.
var Columns = []string{
	FieldID,
	FieldCanonicalName,
	FieldCanonicalEmail,
	FieldCanonicalPhone,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// CanonicalNameValidator is a validator for the "canonical_name" field. It is called by the builders before save.
	CanonicalNameValidator func(string) error
	// DefaultCanonicalEmail holds the default value on creation for the "canonical_email" field.
	DefaultCanonicalEmail string
	// DefaultCanonicalPhone holds the default value on creation for the "canonical_phone" field.
	DefaultCanonicalPhone string
)

// OrderOption defines the ordering options for the ClientGroup queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCanonicalName orders the results by the canonical_name field.
func ByCanonicalName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCanonicalName, opts...).ToFunc()
}

// ByCanonicalEmail orders the results by the canonical_email field.
func ByCanonicalEmail(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCanonicalEmail, opts...).ToFunc()
}

// ByCanonicalPhone orders the results by the canonical_phone field.
func ByCanonicalPhone(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCanonicalPhone, opts...).ToFunc()
}
