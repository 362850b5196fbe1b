// Code generated by ent, DO NOT EDIT.

package serialwarranty

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the serialwarranty type in the database.
	Label = "serial_warranty"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSerial holds the string denoting the serial field in the database.
	FieldSerial = "serial"
	// FieldWarrantyValid holds the string denoting the warranty_valid field in the database.
	FieldWarrantyValid = "warranty_valid"
	// Table holds the table name of the serialwarranty in the database.
	Table = "serial_warranty"
)

// Columns holds all SQL columns for serialwarranty fields.
var Columns = []string{
	FieldID,
	FieldSerial,
	FieldWarrantyValid,
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
	// SerialValidator is a validator for the "serial" field. It is called by the builders before save.
	SerialValidator func(string) error
	// DefaultWarrantyValid holds the default value on creation for the "warranty_valid" field.
	DefaultWarrantyValid bool
)

// OrderOption defines the ordering options for the SerialWarranty queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySerial orders the results by the serial field.
func BySerial(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSerial, opts...).ToFunc()
}

// ByWarrantyValid orders the results by the warranty_valid field.
func ByWarrantyValid(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWarrantyValid, opts...).ToFunc()
}
