// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/apx-soporte/warranty-tracker/gen/ent/rmaitem"
	"github.com/google/uuid"
)

// RMAItem is the model entity for the RMAItem schema.
type RMAItem struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// RmaNumber holds the value of the "rma_number" field.
	RmaNumber string `json:"rma_number,omitempty"`
	// Product holds the value of the "product" field.
	Product *string `json:"product,omitempty"`
	// Serial holds the value of the "serial" field.
	Serial string `json:"serial,omitempty"`
	// ClientName holds the value of the "client_name" field.
	ClientName *string `json:"client_name,omitempty"`
	// ClientEmail holds the value of the "client_email" field.
	ClientEmail *string `json:"client_email,omitempty"`
	// ClientPhone holds the value of the "client_phone" field.
	ClientPhone *string `json:"client_phone,omitempty"`
	// DateReceived holds the value of the "date_received" field.
	DateReceived *string `json:"date_received,omitempty"`
	// DatePickup holds the value of the "date_pickup" field.
	DatePickup *string `json:"date_pickup,omitempty"`
	// DateSent holds the value of the "date_sent" field.
	DateSent *string `json:"date_sent,omitempty"`
	// Averia holds the value of the "averia" field.
	Averia *string `json:"averia,omitempty"`
	// Observaciones holds the value of the "observaciones" field.
	Observaciones *string `json:"observaciones,omitempty"`
	// Estado holds the value of the "estado" field.
	Estado string `json:"estado,omitempty"`
	// Hidden holds the value of the "hidden" field.
	Hidden bool `json:"hidden,omitempty"`
	// HiddenBy holds the value of the "hidden_by" field.
	HiddenBy *string `json:"hidden_by,omitempty"`
	// HiddenAt holds the value of the "hidden_at" field.
	HiddenAt *time.Time `json:"hidden_at,omitempty"`
	// ExcelRow holds the value of the "excel_row" field.
	ExcelRow int `json:"excel_row,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*RMAItem) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case rmaitem.FieldHidden:
			values[i] = new(sql.NullBool)
		case rmaitem.FieldExcelRow:
			values[i] = new(sql.NullInt64)
		case rmaitem.FieldRmaNumber, rmaitem.FieldProduct, rmaitem.FieldSerial, rmaitem.FieldClientName, rmaitem.FieldClientEmail, rmaitem.FieldClientPhone, rmaitem.FieldDateReceived, rmaitem.FieldDatePickup, rmaitem.FieldDateSent, rmaitem.FieldAveria, rmaitem.FieldObservaciones, rmaitem.FieldEstado, rmaitem.FieldHiddenBy:
			values[i] = new(sql.NullString)
		case rmaitem.FieldHiddenAt, rmaitem.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case rmaitem.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the RMAItem fields.
func (_m *RMAItem) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case rmaitem.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case rmaitem.FieldRmaNumber:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field rma_number", values[i])
			} else if value.Valid {
				_m.RmaNumber = value.String
			}
		case rmaitem.FieldProduct:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field product", values[i])
			} else if value.Valid {
				_m.Product = new(string)
				*_m.Product = value.String
			}
		case rmaitem.FieldSerial:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field serial", values[i])
			} else if value.Valid {
				_m.Serial = value.String
			}
		case rmaitem.FieldClientName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field client_name", values[i])
			} else if value.Valid {
				_m.ClientName = new(string)
				*_m.ClientName = value.String
			}
		case rmaitem.FieldClientEmail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field client_email", values[i])
			} else if value.Valid {
				_m.ClientEmail = new(string)
				*_m.ClientEmail = value.String
			}
		case rmaitem.FieldClientPhone:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field client_phone", values[i])
			} else if value.Valid {
				_m.ClientPhone = new(string)
				*_m.ClientPhone = value.String
			}
		case rmaitem.FieldDateReceived:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field date_received", values[i])
			} else if value.Valid {
				_m.DateReceived = new(string)
				*_m.DateReceived = value.String
			}
		case rmaitem.FieldDatePickup:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field date_pickup", values[i])
			} else if value.Valid {
				_m.DatePickup = new(string)
				*_m.DatePickup = value.String
			}
		case rmaitem.FieldDateSent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field date_sent", values[i])
			} else if value.Valid {
				_m.DateSent = new(string)
				*_m.DateSent = value.String
			}
		case rmaitem.FieldAveria:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field averia", values[i])
			} else if value.Valid {
				_m.Averia = new(string)
				*_m.Averia = value.String
			}
		case rmaitem.FieldObservaciones:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field observaciones", values[i])
			} else if value.Valid {
				_m.Observaciones = new(string)
				*_m.Observaciones = value.String
			}
		case rmaitem.FieldEstado:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field estado", values[i])
			} else if value.Valid {
				_m.Estado = value.String
			}
		case rmaitem.FieldHidden:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field hidden", values[i])
			} else if value.Valid {
				_m.Hidden = value.Bool
			}
		case rmaitem.FieldHiddenBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field hidden_by", values[i])
			} else if value.Valid {
				_m.HiddenBy = new(string)
				*_m.HiddenBy = value.String
			}
		case rmaitem.FieldHiddenAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field hidden_at", values[i])
			} else if value.Valid {
				_m.HiddenAt = new(time.Time)
				*_m.HiddenAt = value.Time
			}
		case rmaitem.FieldExcelRow:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field excel_row", values[i])
			} else if value.Valid {
				_m.ExcelRow = int(value.Int64)
			}
		case rmaitem.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the RMAItem.
// This includes values selected through modifiers, order, etc.
func (_m *RMAItem) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this RMAItem.
// Note that you need to call RMAItem.Unwrap() before calling this method if this RMAItem
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *RMAItem) Update() *RMAItemUpdateOne {
	return NewRMAItemClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the RMAItem entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *RMAItem) Unwrap() *RMAItem {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: RMAItem is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *RMAItem) String() string {
	var builder strings.Builder
	builder.WriteString("RMAItem(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("rma_number=")
	builder.WriteString(_m.RmaNumber)
	builder.WriteString(", ")
	if v := _m.Product; v != nil {
		builder.WriteString("product=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("serial=")
	builder.WriteString(_m.Serial)
	builder.WriteString(", ")
	if v := _m.ClientName; v != nil {
		builder.WriteString("client_name=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ClientEmail; v != nil {
		builder.WriteString("client_email=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ClientPhone; v != nil {
		builder.WriteString("client_phone=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.DateReceived; v != nil {
		builder.WriteString("date_received=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.DatePickup; v != nil {
		builder.WriteString("date_pickup=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.DateSent; v != nil {
		builder.WriteString("date_sent=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Averia; v != nil {
		builder.WriteString("averia=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Observaciones; v != nil {
		builder.WriteString("observaciones=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("estado=")
	builder.WriteString(_m.Estado)
	builder.WriteString(", ")
	builder.WriteString("hidden=")
	builder.WriteString(fmt.Sprintf("%v", _m.Hidden))
	builder.WriteString(", ")
	if v := _m.HiddenBy; v != nil {
		builder.WriteString("hidden_by=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.HiddenAt; v != nil {
		builder.WriteString("hidden_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("excel_row=")
	builder.WriteString(fmt.Sprintf("%v", _m.ExcelRow))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// RMAItems is a parsable slice of RMAItem.
type RMAItems []*RMAItem
