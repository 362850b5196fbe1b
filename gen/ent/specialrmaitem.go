// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/apx-soporte/warranty-tracker/gen/ent/specialrmaitem"
	"github.com/google/uuid"
)

// SpecialRMAItem is the model entity for the SpecialRMAItem schema.
type SpecialRMAItem struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// Serial holds the value of the "serial" field.
	Serial string `json:"serial,omitempty"`
	// Fallo holds the value of the "fallo" field.
	Fallo string `json:"fallo,omitempty"`
	// Resolucion holds the value of the "resolucion" field.
	Resolucion string `json:"resolucion,omitempty"`
	// ExcelRow holds the value of the "excel_row" field.
	ExcelRow int `json:"excel_row,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SpecialRMAItem) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case specialrmaitem.FieldExcelRow:
			values[i] = new(sql.NullInt64)
		case specialrmaitem.FieldSerial, specialrmaitem.FieldFallo, specialrmaitem.FieldResolucion:
			values[i] = new(sql.NullString)
		case specialrmaitem.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case specialrmaitem.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SpecialRMAItem fields.
func (_m *SpecialRMAItem) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case specialrmaitem.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case specialrmaitem.FieldSerial:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field serial", values[i])
			} else if value.Valid {
				_m.Serial = value.String
			}
		case specialrmaitem.FieldFallo:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field fallo", values[i])
			} else if value.Valid {
				_m.Fallo = value.String
			}
		case specialrmaitem.FieldResolucion:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field resolucion", values[i])
			} else if value.Valid {
				_m.Resolucion = value.String
			}
		case specialrmaitem.FieldExcelRow:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field excel_row", values[i])
			} else if value.Valid {
				_m.ExcelRow = int(value.Int64)
			}
		case specialrmaitem.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SpecialRMAItem.
// This includes values selected through modifiers, order, etc.
func (_m *SpecialRMAItem) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this SpecialRMAItem.
// Note that you need to call SpecialRMAItem.Unwrap() before calling this method if this SpecialRMAItem
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SpecialRMAItem) Update() *SpecialRMAItemUpdateOne {
	return NewSpecialRMAItemClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SpecialRMAItem entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SpecialRMAItem) Unwrap() *SpecialRMAItem {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SpecialRMAItem is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SpecialRMAItem) String() string {
	var builder strings.Builder
	builder.WriteString("SpecialRMAItem(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("serial=")
	builder.WriteString(_m.Serial)
	builder.WriteString(", ")
	builder.WriteString("fallo=")
	builder.WriteString(_m.Fallo)
	builder.WriteString(", ")
	builder.WriteString("resolucion=")
	builder.WriteString(_m.Resolucion)
	builder.WriteString(", ")
	builder.WriteString("excel_row=")
	builder.WriteString(fmt.Sprintf("%v", _m.ExcelRow))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// SpecialRMAItems is a parsable slice of SpecialRMAItem.
type SpecialRMAItems []*SpecialRMAItem
