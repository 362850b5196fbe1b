// Code generated by ent, DO NOT EDIT.

package clientgroupmember

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the clientgroupmember type in the database.
	Label = "client_group_member"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldGroupID holds the string denoting the group_id field in the database.
	FieldGroupID = "group_id"
	// FieldClientName holds the string denoting the client_name field in the database.
	FieldClientName = "client_name"
	// FieldClientEmail holds the string denoting the client_email field in the database.
	FieldClientEmail = "client_email"
	// Table holds the table name of the clientgroupmember in the database.
	Table = "client_group_members"
)

// Columns holds all SQL columns for clientgroupmember fields.
var Columns = []string{
	FieldID,
	FieldGroupID,
	FieldClientName,
	FieldClientEmail,
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
	// ClientNameValidator is a validator for the "client_name" field. It is called by the builders before save.
	ClientNameValidator func(string) error
	// DefaultClientEmail holds the default value on creation for the "client_email" field.
	DefaultClientEmail string
)

// OrderOption defines the ordering options for the ClientGroupMember queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByGroupID orders the results by the group_id field.
func ByGroupID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGroupID, opts...).ToFunc()
}

// ByClientName orders the results by the client_name field.
func ByClientName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClientName, opts...).ToFunc()
}

// ByClientEmail orders the results by the client_email field.
func ByClientEmail(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClientEmail, opts...).ToFunc()
}
