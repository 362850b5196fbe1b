// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/apx-soporte/warranty-tracker/gen/ent/clientgroupmember"
)

// ClientGroupMember is the model entity for the ClientGroupMember schema.
type ClientGroupMember struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// GroupID holds the value of the "group_id" field.
	GroupID int `json:"group_id,omitempty"`
	// ClientName holds the value of the "client_name" field.
	ClientName string `json:"client_name,omitempty"`
	// ClientEmail holds the value of the "client_email" field.
	ClientEmail  string `json:"client_email,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ClientGroupMember) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case clientgroupmember.FieldID, clientgroupmember.FieldGroupID:
			values[i] = new(sql.NullInt64)
		case clientgroupmember.FieldClientName, clientgroupmember.FieldClientEmail:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ClientGroupMember fields.
func (_m *ClientGroupMember) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case clientgroupmember.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case clientgroupmember.FieldGroupID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field group_id", values[i])
			} else if value.Valid {
				_m.GroupID = int(value.Int64)
			}
		case clientgroupmember.FieldClientName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field client_name", values[i])
			} else if value.Valid {
				_m.ClientName = value.String
			}
		case clientgroupmember.FieldClientEmail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field client_email", values[i])
			} else if value.Valid {
				_m.ClientEmail = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ClientGroupMember.
// This includes values selected through modifiers, order, etc.
func (_m *ClientGroupMember) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ClientGroupMember.
// Note that you need to call ClientGroupMember.Unwrap() before calling this method if this ClientGroupMember
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ClientGroupMember) Update() *ClientGroupMemberUpdateOne {
	return NewClientGroupMemberClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ClientGroupMember entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ClientGroupMember) Unwrap() *ClientGroupMember {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ClientGroupMember is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ClientGroupMember) String() string {
	var builder strings.Builder
	builder.WriteString("ClientGroupMember(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("group_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.GroupID))
	builder.WriteString(", ")
	builder.WriteString("client_name=")
	builder.WriteString(_m.ClientName)
	builder.WriteString(", ")
	builder.WriteString("client_email=")
	builder.WriteString(_m.ClientEmail)
	builder.WriteByte(')')
	return builder.String()
}

// ClientGroupMembers is a parsable slice of ClientGroupMember.
type ClientGroupMembers []*ClientGroupMember
