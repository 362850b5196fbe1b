// Code generated by ent, DO NOT EDIT.

package specialrmaitem

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the specialrmaitem type in the database.
	Label = "special_rma_item"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSerial holds the string denoting the serial field in the database.
	FieldSerial = "serial"
	// FieldFallo holds the string denoting the fallo field in the database.
	FieldFallo = "fallo"
	// FieldResolucion holds the string denoting the resolucion field in the database.
	FieldResolucion = "resolucion"
	// FieldExcelRow holds the string denoting the excel_row field in the database.
	FieldExcelRow = "excel_row"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the specialrmaitem in the database.
	Table = "special_rma_items"
)

// Columns holds all SQL columns for specialrmaitem fields.
var Columns = []string{
	FieldID,
	FieldSerial,
	FieldFallo,
	FieldResolucion,
	FieldExcelRow,
	FieldCreatedAt,
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
	// DefaultFallo holds the default value on creation for the "fallo" field.
	DefaultFallo string
	// DefaultResolucion holds the default value on creation for the "resolucion" field.
	DefaultResolucion string
	// DefaultExcelRow holds the default value on creation for the "excel_row" field.
	DefaultExcelRow int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the SpecialRMAItem queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySerial orders the results by the serial field.
func BySerial(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSerial, opts...).ToFunc()
}

// ByFallo orders the results by the fallo field.
func ByFallo(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFallo, opts...).ToFunc()
}

// ByResolucion orders the results by the resolucion field.
func ByResolucion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResolucion, opts...).ToFunc()
}

// ByExcelRow orders the results by the excel_row field.
func ByExcelRow(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExcelRow, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
