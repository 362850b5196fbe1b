// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/apx-soporte/warranty-tracker/gen/ent/clientgroup"
)

// ClientGroup is the model entity for the ClientGroup schema.
type ClientGroup struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// CanonicalName holds the value of the "canonical_name" field.
	CanonicalName string `json:"canonical_name,omitempty"`
	// CanonicalEmail holds the value of the "canonical_email" field.
	CanonicalEmail string `json:"canonical_email,omitempty"`
	// CanonicalPhone holds the value of the "canonical_phone" field.
	CanonicalPhone string `json:"canonical_phone,omitempty"`
	selectValues   sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ClientGroup) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case clientgroup.FieldID:
			values[i] = new(sql.NullInt64)
		case clientgroup.FieldCanonicalName, clientgroup.FieldCanonicalEmail, clientgroup.FieldCanonicalPhone:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ClientGroup fields.
func (_m *ClientGroup) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case clientgroup.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case clientgroup.FieldCanonicalName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field canonical_name", values[i])
			} else if value.Valid {
				_m.CanonicalName = value.String
			}
		case clientgroup.FieldCanonicalEmail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field canonical_email", values[i])
			} else if value.Valid {
				_m.CanonicalEmail = value.String
			}
		case clientgroup.FieldCanonicalPhone:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field canonical_phone", values[i])
			} else if value.Valid {
				_m.CanonicalPhone = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ClientGroup.
// This includes values selected through modifiers, order, etc.
func (_m *ClientGroup) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ClientGroup.
// Note that you need to call ClientGroup.Unwrap() before calling this method if this ClientGroup
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ClientGroup) Update() *ClientGroupUpdateOne {
	return NewClientGroupClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ClientGroup entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ClientGroup) Unwrap() *ClientGroup {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ClientGroup is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ClientGroup) String() string {
	var builder strings.Builder
	builder.WriteString("ClientGroup(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("canonical_name=")
	builder.WriteString(_m.CanonicalName)
	builder.WriteString(", ")
	builder.WriteString("canonical_email=")
	builder.WriteString(_m.CanonicalEmail)
	builder.WriteString(", ")
	builder.WriteString("canonical_phone=")
	builder.WriteString(_m.CanonicalPhone)
	builder.WriteByte(')')
	return builder.String()
}

// ClientGroups is a parsable slice of ClientGroup.
type ClientGroups []*ClientGroup
