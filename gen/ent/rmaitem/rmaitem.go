// Code generated by ent, DO NOT EDIT.

package rmaitem

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the rmaitem type in the database.
	Label = "rma_item"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldRmaNumber holds the string denoting the rma_number field in the database.
	FieldRmaNumber = "rma_number"
	// FieldProduct holds the string denoting the product field in the database.
	FieldProduct = "product"
	// FieldSerial holds the string denoting the serial field in the database.
	FieldSerial = "serial"
	// FieldClientName holds the string denoting the client_name field in the database.
	FieldClientName = "client_name"
	// FieldClientEmail holds the string denoting the client_email field in the database.
	FieldClientEmail = "client_email"
	// FieldClientPhone holds the string denoting the client_phone field in the database.
	FieldClientPhone = "client_phone"
	// FieldDateReceived holds the string denoting the date_received field in the database.
	FieldDateReceived = "date_received"
	// FieldDatePickup holds the string denoting the date_pickup field in the database.
	FieldDatePickup = "date_pickup"
	// FieldDateSent holds the string denoting the date_sent field in the database.
	FieldDateSent = "date_sent"
	// FieldAveria holds the string denoting the averia field in the database.
	FieldAveria = "averia"
	// FieldObservaciones holds the string denoting the observaciones field in the database.
	FieldObservaciones = "observaciones"
	// FieldEstado holds the string denoting the estado field in the database.
	FieldEstado = "estado"
	// FieldHidden holds the string denoting the hidden field in the database.
	FieldHidden = "hidden"
	// FieldHiddenBy holds the string denoting the hidden_by field in the database.
	FieldHiddenBy = "hidden_by"
	// FieldHiddenAt holds the string denoting the hidden_at field in the database.
	FieldHiddenAt = "hidden_at"
	// FieldExcelRow holds the string denoting the excel_row field in the database.
	FieldExcelRow = "excel_row"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the rmaitem in the database.
	Table = "rma_items"
)

// Columns holds all SQL columns for rmaitem fields.
var Columns = []string{
	FieldID,
	FieldRmaNumber,
	FieldProduct,
	FieldSerial,
	FieldClientName,
	FieldClientEmail,
	FieldClientPhone,
	FieldDateReceived,
	FieldDatePickup,
	FieldDateSent,
	FieldAveria,
	FieldObservaciones,
	FieldEstado,
	FieldHidden,
	FieldHiddenBy,
	FieldHiddenAt,
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
	// RmaNumberValidator is a validator for the "rma_number" field. It is called by the builders before save.
	RmaNumberValidator func(string) error
	// DefaultSerial holds the default value on creation for the "serial" field.
	DefaultSerial string
	// DefaultEstado holds the default value on creation for the "estado" field.
	DefaultEstado string
	// EstadoValidator is a validator for the "estado" field. It is called by the builders before save.
	EstadoValidator func(string) error
	// DefaultHidden holds the default value on creation for the "hidden" field.
	DefaultHidden bool
	// DefaultExcelRow holds the default value on creation for the "excel_row" field.
	DefaultExcelRow int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the RMAItem queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByRmaNumber orders the results by the rma_number field.
func ByRmaNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRmaNumber, opts...).ToFunc()
}

// ByProduct orders the results by the product field.
func ByProduct(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProduct, opts...).ToFunc()
}

// BySerial orders the results by the serial field.
func BySerial(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSerial, opts...).ToFunc()
}

// ByClientName orders the results by the client_name field.
func ByClientName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClientName, opts...).ToFunc()
}

// ByClientEmail orders the results by the client_email field.
func ByClientEmail(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClientEmail, opts...).ToFunc()
}

// ByClientPhone orders the results by the client_phone field.
func ByClientPhone(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClientPhone, opts...).ToFunc()
}

// ByDateReceived orders the results by the date_received field.
func ByDateReceived(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDateReceived, opts...).ToFunc()
}

// ByDatePickup orders the results by the date_pickup field.
func ByDatePickup(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDatePickup, opts...).ToFunc()
}

// ByDateSent orders the results by the date_sent field.
func ByDateSent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDateSent, opts...).ToFunc()
}

// ByAveria orders the results by the averia field.
func ByAveria(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAveria, opts...).ToFunc()
}

// ByObservaciones orders the results by the observaciones field.
func ByObservaciones(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldObservaciones, opts...).ToFunc()
}

// ByEstado orders the results by the estado field.
func ByEstado(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEstado, opts...).ToFunc()
}

// ByHidden orders the results by the hidden field.
func ByHidden(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHidden, opts...).ToFunc()
}

// ByHiddenBy orders the results by the hidden_by field.
func ByHiddenBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHiddenBy, opts...).ToFunc()
}

// ByHiddenAt orders the results by the hidden_at field.
func ByHiddenAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHiddenAt, opts...).ToFunc()
}

// ByExcelRow orders the results by the excel_row field.
func ByExcelRow(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExcelRow, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
