// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/apx-soporte/warranty-tracker/gen/ent/serialwarranty"
)

// SerialWarranty is the model entity for the SerialWarranty schema.
type SerialWarranty struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Serial holds the value of the "serial" field.
	Serial string `json:"serial,omitempty"`
	// WarrantyValid holds the value of the "warranty_valid" field.
	WarrantyValid bool `json:"warranty_valid,omitempty"`
	selectValues  sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SerialWarranty) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case serialwarranty.FieldWarrantyValid:
			values[i] = new(sql.NullBool)
		case serialwarranty.FieldID:
			values[i] = new(sql.NullInt64)
		case serialwarranty.FieldSerial:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SerialWarranty fields.
func (_m *SerialWarranty) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case serialwarranty.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case serialwarranty.FieldSerial:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field serial", values[i])
			} else if value.Valid {
				_m.Serial = value.String
			}
		case serialwarranty.FieldWarrantyValid:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field warranty_valid", values[i])
			} else if value.Valid {
				_m.WarrantyValid = value.Bool
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SerialWarranty.
// This includes values selected through modifiers, order, etc.
func (_m *SerialWarranty) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this SerialWarranty.
// Note that you need to call SerialWarranty.Unwrap() before calling this method if this SerialWarranty
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SerialWarranty) Update() *SerialWarrantyUpdateOne {
	return NewSerialWarrantyClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SerialWarranty entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SerialWarranty) Unwrap() *SerialWarranty {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SerialWarranty is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SerialWarranty) String() string {
	var builder strings.Builder
	builder.WriteString("SerialWarranty(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("serial=")
	builder.WriteString(_m.Serial)
	builder.WriteString(", ")
	builder.WriteString("warranty_valid=")
	builder.WriteString(fmt.Sprintf("%v", _m.WarrantyValid))
	builder.WriteByte(')')
	return builder.String()
}

// SerialWarranties is a parsable slice of SerialWarranty.
type SerialWarranties []*SerialWarranty
