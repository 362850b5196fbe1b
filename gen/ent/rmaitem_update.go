// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/apx-soporte/warranty-tracker/gen/ent/predicate"
	"github.com/apx-soporte/warranty-tracker/gen/ent/rmaitem"
)

// RMAItemUpdate is the builder for updating RMAItem entities.
type RMAItemUpdate struct {
	config
	hooks    []Hook
	mutation *RMAItemMutation
}

// Where appends a list predicates to the RMAItemUpdate builder.
func (_u *RMAItemUpdate) Where(ps ...predicate.RMAItem) *RMAItemUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRmaNumber sets the "rma_number" field.
func (_u *RMAItemUpdate) SetRmaNumber(v string) *RMAItemUpdate {
	_u.mutation.SetRmaNumber(v)
	return _u
}

// SetNillableRmaNumber sets the "rma_number" field if the given value is not nil.
func (_u *RMAItemUpdate) SetNillableRmaNumber(v *string) *RMAItemUpdate {
	if v != nil {
		_u.SetRmaNumber(*v)
	}
	return _u
}

// SetProduct sets the "product" field.
func (_u *RMAItemUpdate) SetProduct(v string) *RMAItemUpdate {
	_u.mutation.SetProduct(v)
	return _u
}

// SetNillableProduct sets the "product" field if the given value is not nil.
func (_u *RMAItemUpdate) SetNillableProduct(v *string) *RMAItemUpdate {
	if v != nil {
		_u.SetProduct(*v)
	}
	return _u
}

// ClearProduct clears the value of the "product" field.
func (_u *RMAItemUpdate) ClearProduct() *RMAItemUpdate {
	_u.mutation.ClearProduct()
	return _u
}

// SetSerial sets the "serial" field.
func (_u *RMAItemUpdate) SetSerial(v string) *RMAItemUpdate {
	_u.mutation.SetSerial(v)
	return _u
}

// SetNillableSerial sets the "serial" field if the given value is not nil.
func (_u *RMAItemUpdate) SetNillableSerial(v *string) *RMAItemUpdate {
	if v != nil {
		_u.SetSerial(*v)
	}
	return _u
}

// SetClientName sets the "client_name" field.
func (_u *RMAItemUpdate) SetClientName(v string) *RMAItemUpdate {
	_u.mutation.SetClientName(v)
	return _u
}

// SetNillableClientName sets the "client_name" field if the given value is not nil.
func (_u *RMAItemUpdate) SetNillableClientName(v *string) *RMAItemUpdate {
	if v != nil {
		_u.SetClientName(*v)
	}
	return _u
}

// ClearClientName clears the value of the "client_name" field.
func (_u *RMAItemUpdate) ClearClientName() *RMAItemUpdate {
	_u.mutation.ClearClientName()
	return _u
}

// SetClientEmail sets the "client_email" field.
func (_u *RMAItemUpdate) SetClientEmail(v string) *RMAItemUpdate {
	_u.mutation.SetClientEmail(v)
	return _u
}

// SetNillableClientEmail sets the "client_email" field if the given value is not nil.
func (_u *RMAItemUpdate) SetNillableClientEmail(v *string) *RMAItemUpdate {
	if v != nil {
		_u.SetClientEmail(*v)
	}
	return _u
}

// ClearClientEmail clears the value of the "client_email" field.
func (_u *RMAItemUpdate) ClearClientEmail() *RMAItemUpdate {
	_u.mutation.ClearClientEmail()
	return _u
}

// SetClientPhone sets the "client_phone" field.
func (_u *RMAItemUpdate) SetClientPhone(v string) *RMAItemUpdate {
	_u.mutation.SetClientPhone(v)
	return _u
}

// SetNillableClientPhone sets the "client_phone" field if the given value is not nil.
func (_u *RMAItemUpdate) SetNillableClientPhone(v *string) *RMAItemUpdate {
	if v != nil {
		_u.SetClientPhone(*v)
	}
	return _u
}

// ClearClientPhone clears the value of the "client_phone" field.
func (_u *RMAItemUpdate) ClearClientPhone() *RMAItemUpdate {
	_u.mutation.ClearClientPhone()
	return _u
}

// SetDateReceived sets the "date_received" field.
func (_u *RMAItemUpdate) SetDateReceived(v string) *RMAItemUpdate {
	_u.mutation.SetDateReceived(v)
	return _u
}

// SetNillableDateReceived sets the "date_received" field if the given value is not nil.
func (_u *RMAItemUpdate) SetNillableDateReceived(v *string) *RMAItemUpdate {
	if v != nil {
		_u.SetDateReceived(*v)
	}
	return _u
}

// ClearDateReceived clears the value of the "date_received" field.
func (_u *RMAItemUpdate) ClearDateReceived() *RMAItemUpdate {
	_u.mutation.ClearDateReceived()
	return _u
}

// SetDatePickup sets the "date_pickup" field.
func (_u *RMAItemUpdate) SetDatePickup(v string) *RMAItemUpdate {
	_u.mutation.SetDatePickup(v)
	return _u
}

// SetNillableDatePickup sets the "date_pickup" field if the given value is not nil.
func (_u *RMAItemUpdate) SetNillableDatePickup(v *string) *RMAItemUpdate {
	if v != nil {
		_u.SetDatePickup(*v)
	}
	return _u
}

// ClearDatePickup clears the value of the "date_pickup" field.
func (_u *RMAItemUpdate) ClearDatePickup() *RMAItemUpdate {
	_u.mutation.ClearDatePickup()
	return _u
}

// SetDateSent sets the "date_sent" field.
func (_u *RMAItemUpdate) SetDateSent(v string) *RMAItemUpdate {
	_u.mutation.SetDateSent(v)
	return _u
}

// SetNillableDateSent sets the "date_sent" field if the given value is not nil.
func (_u *RMAItemUpdate) SetNillableDateSent(v *string) *RMAItemUpdate {
	if v != nil {
		_u.SetDateSent(*v)
	}
	return _u
}

// ClearDateSent clears the value of the "date_sent" field.
func (_u *RMAItemUpdate) ClearDateSent() *RMAItemUpdate {
	_u.mutation.ClearDateSent()
	return _u
}

// SetAveria sets the "averia" field.
func (_u *RMAItemUpdate) SetAveria(v string) *RMAItemUpdate {
	_u.mutation.SetAveria(v)
	return _u
}

// SetNillableAveria sets the "averia" field if the given value is not nil.
func (_u *RMAItemUpdate) SetNillableAveria(v *string) *RMAItemUpdate {
	if v != nil {
		_u.SetAveria(*v)
	}
	return _u
}

// ClearAveria clears the value of the "averia" field.
func (_u *RMAItemUpdate) ClearAveria() *RMAItemUpdate {
	_u.mutation.ClearAveria()
	return _u
}

// SetObservaciones sets the "observaciones" field.
func (_u *RMAItemUpdate) SetObservaciones(v string) *RMAItemUpdate {
	_u.mutation.SetObservaciones(v)
	return _u
}

// SetNillableObservaciones sets the "observaciones" field if the given value is not nil.
func (_u *RMAItemUpdate) SetNillableObservaciones(v *string) *RMAItemUpdate {
	if v != nil {
		_u.SetObservaciones(*v)
	}
	return _u
}

// ClearObservaciones clears the value of the "observaciones" field.
func (_u *RMAItemUpdate) ClearObservaciones() *RMAItemUpdate {
	_u.mutation.ClearObservaciones()
	return _u
}

// SetEstado sets the "estado" field.
func (_u *RMAItemUpdate) SetEstado(v string) *RMAItemUpdate {
	_u.mutation.SetEstado(v)
	return _u
}

// SetNillableEstado sets the "estado" field if the given value is not nil.
func (_u *RMAItemUpdate) SetNillableEstado(v *string) *RMAItemUpdate {
	if v != nil {
		_u.SetEstado(*v)
	}
	return _u
}

// SetHidden sets the "hidden" field.
func (_u *RMAItemUpdate) SetHidden(v bool) *RMAItemUpdate {
	_u.mutation.SetHidden(v)
	return _u
}

// SetNillableHidden sets the "hidden" field if the given value is not nil.
func (_u *RMAItemUpdate) SetNillableHidden(v *bool) *RMAItemUpdate {
	if v != nil {
		_u.SetHidden(*v)
	}
	return _u
}

// SetHiddenBy sets the "hidden_by" field.
func (_u *RMAItemUpdate) SetHiddenBy(v string) *RMAItemUpdate {
	_u.mutation.SetHiddenBy(v)
	return _u
}

// SetNillableHiddenBy sets the "hidden_by" field if the given value is not nil.
func (_u *RMAItemUpdate) SetNillableHiddenBy(v *string) *RMAItemUpdate {
	if v != nil {
		_u.SetHiddenBy(*v)
	}
	return _u
}

// ClearHiddenBy clears the value of the "hidden_by" field.
func (_u *RMAItemUpdate) ClearHiddenBy() *RMAItemUpdate {
	_u.mutation.ClearHiddenBy()
	return _u
}

// SetHiddenAt sets the "hidden_at" field.
func (_u *RMAItemUpdate) SetHiddenAt(v time.Time) *RMAItemUpdate {
	_u.mutation.SetHiddenAt(v)
	return _u
}

// SetNillableHiddenAt sets the "hidden_at" field if the given value is not nil.
func (_u *RMAItemUpdate) SetNillableHiddenAt(v *time.Time) *RMAItemUpdate {
	if v != nil {
		_u.SetHiddenAt(*v)
	}
	return _u
}

// ClearHiddenAt clears the value of the "hidden_at" field.
func (_u *RMAItemUpdate) ClearHiddenAt() *RMAItemUpdate {
	_u.mutation.ClearHiddenAt()
	return _u
}

// SetExcelRow sets the "excel_row" field.
func (_u *RMAItemUpdate) SetExcelRow(v int) *RMAItemUpdate {
	_u.mutation.ResetExcelRow()
	_u.mutation.SetExcelRow(v)
	return _u
}

// SetNillableExcelRow sets the "excel_row" field if the given value is not nil.
func (_u *RMAItemUpdate) SetNillableExcelRow(v *int) *RMAItemUpdate {
	if v != nil {
		_u.SetExcelRow(*v)
	}
	return _u
}

// AddExcelRow adds value to the "excel_row" field.
func (_u *RMAItemUpdate) AddExcelRow(v int) *RMAItemUpdate {
	_u.mutation.AddExcelRow(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *RMAItemUpdate) SetCreatedAt(v time.Time) *RMAItemUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *RMAItemUpdate) SetNillableCreatedAt(v *time.Time) *RMAItemUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// Mutation returns the RMAItemMutation object of the builder.
func (_u *RMAItemUpdate) Mutation() *RMAItemMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RMAItemUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RMAItemUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RMAItemUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RMAItemUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RMAItemUpdate) check() error {
	if v, ok := _u.mutation.RmaNumber(); ok {
		if err := rmaitem.RmaNumberValidator(v); err != nil {
			return &ValidationError{Name: "rma_number", err: fmt.Errorf(`ent: validator failed for field "RMAItem.rma_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Estado(); ok {
		if err := rmaitem.EstadoValidator(v); err != nil {
			return &ValidationError{Name: "estado", err: fmt.Errorf(`ent: validator failed for field "RMAItem.estado": %w`, err)}
		}
	}
	return nil
}

func (_u *RMAItemUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(rmaitem.Table, rmaitem.Columns, sqlgraph.NewFieldSpec(rmaitem.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RmaNumber(); ok {
		_spec.SetField(rmaitem.FieldRmaNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.Product(); ok {
		_spec.SetField(rmaitem.FieldProduct, field.TypeString, value)
	}
	if _u.mutation.ProductCleared() {
		_spec.ClearField(rmaitem.FieldProduct, field.TypeString)
	}
	if value, ok := _u.mutation.Serial(); ok {
		_spec.SetField(rmaitem.FieldSerial, field.TypeString, value)
	}
	if value, ok := _u.mutation.ClientName(); ok {
		_spec.SetField(rmaitem.FieldClientName, field.TypeString, value)
	}
	if _u.mutation.ClientNameCleared() {
		_spec.ClearField(rmaitem.FieldClientName, field.TypeString)
	}
	if value, ok := _u.mutation.ClientEmail(); ok {
		_spec.SetField(rmaitem.FieldClientEmail, field.TypeString, value)
	}
	if _u.mutation.ClientEmailCleared() {
		_spec.ClearField(rmaitem.FieldClientEmail, field.TypeString)
	}
	if value, ok := _u.mutation.ClientPhone(); ok {
		_spec.SetField(rmaitem.FieldClientPhone, field.TypeString, value)
	}
	if _u.mutation.ClientPhoneCleared() {
		_spec.ClearField(rmaitem.FieldClientPhone, field.TypeString)
	}
	if value, ok := _u.mutation.DateReceived(); ok {
		_spec.SetField(rmaitem.FieldDateReceived, field.TypeString, value)
	}
	if _u.mutation.DateReceivedCleared() {
		_spec.ClearField(rmaitem.FieldDateReceived, field.TypeString)
	}
	if value, ok := _u.mutation.DatePickup(); ok {
		_spec.SetField(rmaitem.FieldDatePickup, field.TypeString, value)
	}
	if _u.mutation.DatePickupCleared() {
		_spec.ClearField(rmaitem.FieldDatePickup, field.TypeString)
	}
	if value, ok := _u.mutation.DateSent(); ok {
		_spec.SetField(rmaitem.FieldDateSent, field.TypeString, value)
	}
	if _u.mutation.DateSentCleared() {
		_spec.ClearField(rmaitem.FieldDateSent, field.TypeString)
	}
	if value, ok := _u.mutation.Averia(); ok {
		_spec.SetField(rmaitem.FieldAveria, field.TypeString, value)
	}
	if _u.mutation.AveriaCleared() {
		_spec.ClearField(rmaitem.FieldAveria, field.TypeString)
	}
	if value, ok := _u.mutation.Observaciones(); ok {
		_spec.SetField(rmaitem.FieldObservaciones, field.TypeString, value)
	}
	if _u.mutation.ObservacionesCleared() {
		_spec.ClearField(rmaitem.FieldObservaciones, field.TypeString)
	}
	if value, ok := _u.mutation.Estado(); ok {
		_spec.SetField(rmaitem.FieldEstado, field.TypeString, value)
	}
	if value, ok := _u.mutation.Hidden(); ok {
		_spec.SetField(rmaitem.FieldHidden, field.TypeBool, value)
	}
	if value, ok := _u.mutation.HiddenBy(); ok {
		_spec.SetField(rmaitem.FieldHiddenBy, field.TypeString, value)
	}
	if _u.mutation.HiddenByCleared() {
		_spec.ClearField(rmaitem.FieldHiddenBy, field.TypeString)
	}
	if value, ok := _u.mutation.HiddenAt(); ok {
		_spec.SetField(rmaitem.FieldHiddenAt, field.TypeTime, value)
	}
	if _u.mutation.HiddenAtCleared() {
		_spec.ClearField(rmaitem.FieldHiddenAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ExcelRow(); ok {
		_spec.SetField(rmaitem.FieldExcelRow, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedExcelRow(); ok {
		_spec.AddField(rmaitem.FieldExcelRow, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(rmaitem.FieldCreatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{rmaitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RMAItemUpdateOne is the builder for updating a single RMAItem entity.
type RMAItemUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RMAItemMutation
}

// SetRmaNumber sets the "rma_number" field.
func (_u *RMAItemUpdateOne) SetRmaNumber(v string) *RMAItemUpdateOne {
	_u.mutation.SetRmaNumber(v)
	return _u
}

// SetNillableRmaNumber sets the "rma_number" field if the given value is not nil.
func (_u *RMAItemUpdateOne) SetNillableRmaNumber(v *string) *RMAItemUpdateOne {
	if v != nil {
		_u.SetRmaNumber(*v)
	}
	return _u
}

// SetProduct sets the "product" field.
func (_u *RMAItemUpdateOne) SetProduct(v string) *RMAItemUpdateOne {
	_u.mutation.SetProduct(v)
	return _u
}

// SetNillableProduct sets the "product" field if the given value is not nil.
func (_u *RMAItemUpdateOne) SetNillableProduct(v *string) *RMAItemUpdateOne {
	if v != nil {
		_u.SetProduct(*v)
	}
	return _u
}

// ClearProduct clears the value of the "product" field.
func (_u *RMAItemUpdateOne) ClearProduct() *RMAItemUpdateOne {
	_u.mutation.ClearProduct()
	return _u
}

// SetSerial sets the "serial" field.
func (_u *RMAItemUpdateOne) SetSerial(v string) *RMAItemUpdateOne {
	_u.mutation.SetSerial(v)
	return _u
}

// SetNillableSerial sets the "serial" field if the given value is not nil.
func (_u *RMAItemUpdateOne) SetNillableSerial(v *string) *RMAItemUpdateOne {
	if v != nil {
		_u.SetSerial(*v)
	}
	return _u
}

// SetClientName sets the "client_name" field.
func (_u *RMAItemUpdateOne) SetClientName(v string) *RMAItemUpdateOne {
	_u.mutation.SetClientName(v)
	return _u
}

// SetNillableClientName sets the "client_name" field if the given value is not nil.
func (_u *RMAItemUpdateOne) SetNillableClientName(v *string) *RMAItemUpdateOne {
	if v != nil {
		_u.SetClientName(*v)
	}
	return _u
}

// ClearClientName clears the value of the "client_name" field.
func (_u *RMAItemUpdateOne) ClearClientName() *RMAItemUpdateOne {
	_u.mutation.ClearClientName()
	return _u
}

// SetClientEmail sets the "client_email" field.
func (_u *RMAItemUpdateOne) SetClientEmail(v string) *RMAItemUpdateOne {
	_u.mutation.SetClientEmail(v)
	return _u
}

// SetNillableClientEmail sets the "client_email" field if the given value is not nil.
func (_u *RMAItemUpdateOne) SetNillableClientEmail(v *string) *RMAItemUpdateOne {
	if v != nil {
		_u.SetClientEmail(*v)
	}
	return _u
}

// ClearClientEmail clears the value of the "client_email" field.
func (_u *RMAItemUpdateOne) ClearClientEmail() *RMAItemUpdateOne {
	_u.mutation.ClearClientEmail()
	return _u
}

// SetClientPhone sets the "client_phone" field.
func (_u *RMAItemUpdateOne) SetClientPhone(v string) *RMAItemUpdateOne {
	_u.mutation.SetClientPhone(v)
	return _u
}

// SetNillableClientPhone sets the "client_phone" field if the given value is not nil.
func (_u *RMAItemUpdateOne) SetNillableClientPhone(v *string) *RMAItemUpdateOne {
	if v != nil {
		_u.SetClientPhone(*v)
	}
	return _u
}

// ClearClientPhone clears the value of the "client_phone" field.
func (_u *RMAItemUpdateOne) ClearClientPhone() *RMAItemUpdateOne {
	_u.mutation.ClearClientPhone()
	return _u
}

// SetDateReceived sets the "date_received" field.
func (_u *RMAItemUpdateOne) SetDateReceived(v string) *RMAItemUpdateOne {
	_u.mutation.SetDateReceived(v)
	return _u
}

// SetNillableDateReceived sets the "date_received" field if the given value is not nil.
func (_u *RMAItemUpdateOne) SetNillableDateReceived(v *string) *RMAItemUpdateOne {
	if v != nil {
		_u.SetDateReceived(*v)
	}
	return _u
}

// ClearDateReceived clears the value of the "date_received" field.
func (_u *RMAItemUpdateOne) ClearDateReceived() *RMAItemUpdateOne {
	_u.mutation.ClearDateReceived()
	return _u
}

// SetDatePickup sets the "date_pickup" field.
func (_u *RMAItemUpdateOne) SetDatePickup(v string) *RMAItemUpdateOne {
	_u.mutation.SetDatePickup(v)
	return _u
}

// SetNillableDatePickup sets the "date_pickup" field if the given value is not nil.
func (_u *RMAItemUpdateOne) SetNillableDatePickup(v *string) *RMAItemUpdateOne {
	if v != nil {
		_u.SetDatePickup(*v)
	}
	return _u
}

// ClearDatePickup clears the value of the "date_pickup" field.
func (_u *RMAItemUpdateOne) ClearDatePickup() *RMAItemUpdateOne {
	_u.mutation.ClearDatePickup()
	return _u
}

// SetDateSent sets the "date_sent" field.
func (_u *RMAItemUpdateOne) SetDateSent(v string) *RMAItemUpdateOne {
	_u.mutation.SetDateSent(v)
	return _u
}

// SetNillableDateSent sets the "date_sent" field if the given value is not nil.
func (_u *RMAItemUpdateOne) SetNillableDateSent(v *string) *RMAItemUpdateOne {
	if v != nil {
		_u.SetDateSent(*v)
	}
	return _u
}

// ClearDateSent clears the value of the "date_sent" field.
func (_u *RMAItemUpdateOne) ClearDateSent() *RMAItemUpdateOne {
	_u.mutation.ClearDateSent()
	return _u
}

// SetAveria sets the "averia" field.
func (_u *RMAItemUpdateOne) SetAveria(v string) *RMAItemUpdateOne {
	_u.mutation.SetAveria(v)
	return _u
}

// SetNillableAveria sets the "averia" field if the given value is not nil.
func (_u *RMAItemUpdateOne) SetNillableAveria(v *string) *RMAItemUpdateOne {
	if v != nil {
		_u.SetAveria(*v)
	}
	return _u
}

// ClearAveria clears the value of the "averia" field.
func (_u *RMAItemUpdateOne) ClearAveria() *RMAItemUpdateOne {
	_u.mutation.ClearAveria()
	return _u
}

// SetObservaciones sets the "observaciones" field.
func (_u *RMAItemUpdateOne) SetObservaciones(v string) *RMAItemUpdateOne {
	_u.mutation.SetObservaciones(v)
	return _u
}

// SetNillableObservaciones sets the "observaciones" field if the given value is not nil.
func (_u *RMAItemUpdateOne) SetNillableObservaciones(v *string) *RMAItemUpdateOne {
	if v != nil {
		_u.SetObservaciones(*v)
	}
	return _u
}

// ClearObservaciones clears the value of the "observaciones" field.
func (_u *RMAItemUpdateOne) ClearObservaciones() *RMAItemUpdateOne {
	_u.mutation.ClearObservaciones()
	return _u
}

// SetEstado sets the "estado" field.
func (_u *RMAItemUpdateOne) SetEstado(v string) *RMAItemUpdateOne {
	_u.mutation.SetEstado(v)
	return _u
}

// SetNillableEstado sets the "estado" field if the given value is not nil.
func (_u *RMAItemUpdateOne) SetNillableEstado(v *string) *RMAItemUpdateOne {
	if v != nil {
		_u.SetEstado(*v)
	}
	return _u
}

// SetHidden sets the "hidden" field.
func (_u *RMAItemUpdateOne) SetHidden(v bool) *RMAItemUpdateOne {
	_u.mutation.SetHidden(v)
	return _u
}

// SetNillableHidden sets the "hidden" field if the given value is not nil.
func (_u *RMAItemUpdateOne) SetNillableHidden(v *bool) *RMAItemUpdateOne {
	if v != nil {
		_u.SetHidden(*v)
	}
	return _u
}

// SetHiddenBy sets the "hidden_by" field.
func (_u *RMAItemUpdateOne) SetHiddenBy(v string) *RMAItemUpdateOne {
	_u.mutation.SetHiddenBy(v)
	return _u
}

// SetNillableHiddenBy sets the "hidden_by" field if the given value is not nil.
func (_u *RMAItemUpdateOne) SetNillableHiddenBy(v *string) *RMAItemUpdateOne {
	if v != nil {
		_u.SetHiddenBy(*v)
	}
	return _u
}

// ClearHiddenBy clears the value of the "hidden_by" field.
func (_u *RMAItemUpdateOne) ClearHiddenBy() *RMAItemUpdateOne {
	_u.mutation.ClearHiddenBy()
	return _u
}

// SetHiddenAt sets the "hidden_at" field.
func (_u *RMAItemUpdateOne) SetHiddenAt(v time.Time) *RMAItemUpdateOne {
	_u.mutation.SetHiddenAt(v)
	return _u
}

// SetNillableHiddenAt sets the "hidden_at" field if the given value is not nil.
func (_u *RMAItemUpdateOne) SetNillableHiddenAt(v *time.Time) *RMAItemUpdateOne {
	if v != nil {
		_u.SetHiddenAt(*v)
	}
	return _u
}

// ClearHiddenAt clears the value of the "hidden_at" field.
func (_u *RMAItemUpdateOne) ClearHiddenAt() *RMAItemUpdateOne {
	_u.mutation.ClearHiddenAt()
	return _u
}

// SetExcelRow sets the "excel_row" field.
func (_u *RMAItemUpdateOne) SetExcelRow(v int) *RMAItemUpdateOne {
	_u.mutation.ResetExcelRow()
	_u.mutation.SetExcelRow(v)
	return _u
}

// SetNillableExcelRow sets the "excel_row" field if the given value is not nil.
func (_u *RMAItemUpdateOne) SetNillableExcelRow(v *int) *RMAItemUpdateOne {
	if v != nil {
		_u.SetExcelRow(*v)
	}
	return _u
}

// AddExcelRow adds value to the "excel_row" field.
func (_u *RMAItemUpdateOne) AddExcelRow(v int) *RMAItemUpdateOne {
	_u.mutation.AddExcelRow(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *RMAItemUpdateOne) SetCreatedAt(v time.Time) *RMAItemUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *RMAItemUpdateOne) SetNillableCreatedAt(v *time.Time) *RMAItemUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// Mutation returns the RMAItemMutation object of the builder.
func (_u *RMAItemUpdateOne) Mutation() *RMAItemMutation {
	return _u.mutation
}

// Where appends a list predicates to the RMAItemUpdate builder.
func (_u *RMAItemUpdateOne) Where(ps ...predicate.RMAItem) *RMAItemUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RMAItemUpdateOne) Select(field string, fields ...string) *RMAItemUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated RMAItem entity.
func (_u *RMAItemUpdateOne) Save(ctx context.Context) (*RMAItem, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RMAItemUpdateOne) SaveX(ctx context.Context) *RMAItem {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RMAItemUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RMAItemUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RMAItemUpdateOne) check() error {
	if v, ok := _u.mutation.RmaNumber(); ok {
		if err := rmaitem.RmaNumberValidator(v); err != nil {
			return &ValidationError{Name: "rma_number", err: fmt.Errorf(`ent: validator failed for field "RMAItem.rma_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Estado(); ok {
		if err := rmaitem.EstadoValidator(v); err != nil {
			return &ValidationError{Name: "estado", err: fmt.Errorf(`ent: validator failed for field "RMAItem.estado": %w`, err)}
		}
	}
	return nil
}

func (_u *RMAItemUpdateOne) sqlSave(ctx context.Context) (_node *RMAItem, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(rmaitem.Table, rmaitem.Columns, sqlgraph.NewFieldSpec(rmaitem.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "RMAItem.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, rmaitem.FieldID)
		for _, f := range fields {
			if !rmaitem.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != rmaitem.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RmaNumber(); ok {
		_spec.SetField(rmaitem.FieldRmaNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.Product(); ok {
		_spec.SetField(rmaitem.FieldProduct, field.TypeString, value)
	}
	if _u.mutation.ProductCleared() {
		_spec.ClearField(rmaitem.FieldProduct, field.TypeString)
	}
	if value, ok := _u.mutation.Serial(); ok {
		_spec.SetField(rmaitem.FieldSerial, field.TypeString, value)
	}
	if value, ok := _u.mutation.ClientName(); ok {
		_spec.SetField(rmaitem.FieldClientName, field.TypeString, value)
	}
	if _u.mutation.ClientNameCleared() {
		_spec.ClearField(rmaitem.FieldClientName, field.TypeString)
	}
	if value, ok := _u.mutation.ClientEmail(); ok {
		_spec.SetField(rmaitem.FieldClientEmail, field.TypeString, value)
	}
	if _u.mutation.ClientEmailCleared() {
		_spec.ClearField(rmaitem.FieldClientEmail, field.TypeString)
	}
	if value, ok := _u.mutation.ClientPhone(); ok {
		_spec.SetField(rmaitem.FieldClientPhone, field.TypeString, value)
	}
	if _u.mutation.ClientPhoneCleared() {
		_spec.ClearField(rmaitem.FieldClientPhone, field.TypeString)
	}
	if value, ok := _u.mutation.DateReceived(); ok {
		_spec.SetField(rmaitem.FieldDateReceived, field.TypeString, value)
	}
	if _u.mutation.DateReceivedCleared() {
		_spec.ClearField(rmaitem.FieldDateReceived, field.TypeString)
	}
	if value, ok := _u.mutation.DatePickup(); ok {
		_spec.SetField(rmaitem.FieldDatePickup, field.TypeString, value)
	}
	if _u.mutation.DatePickupCleared() {
		_spec.ClearField(rmaitem.FieldDatePickup, field.TypeString)
	}
	if value, ok := _u.mutation.DateSent(); ok {
		_spec.SetField(rmaitem.FieldDateSent, field.TypeString, value)
	}
	if _u.mutation.DateSentCleared() {
		_spec.ClearField(rmaitem.FieldDateSent, field.TypeString)
	}
	if value, ok := _u.mutation.Averia(); ok {
		_spec.SetField(rmaitem.FieldAveria, field.TypeString, value)
	}
	if _u.mutation.AveriaCleared() {
		_spec.ClearField(rmaitem.FieldAveria, field.TypeString)
	}
	if value, ok := _u.mutation.Observaciones(); ok {
		_spec.SetField(rmaitem.FieldObservaciones, field.TypeString, value)
	}
	if _u.mutation.ObservacionesCleared() {
		_spec.ClearField(rmaitem.FieldObservaciones, field.TypeString)
	}
	if value, ok := _u.mutation.Estado(); ok {
		_spec.SetField(rmaitem.FieldEstado, field.TypeString, value)
	}
	if value, ok := _u.mutation.Hidden(); ok {
		_spec.SetField(rmaitem.FieldHidden, field.TypeBool, value)
	}
	if value, ok := _u.mutation.HiddenBy(); ok {
		_spec.SetField(rmaitem.FieldHiddenBy, field.TypeString, value)
	}
	if _u.mutation.HiddenByCleared() {
		_spec.ClearField(rmaitem.FieldHiddenBy, field.TypeString)
	}
	if value, ok := _u.mutation.HiddenAt(); ok {
		_spec.SetField(rmaitem.FieldHiddenAt, field.TypeTime, value)
	}
	if _u.mutation.HiddenAtCleared() {
		_spec.ClearField(rmaitem.FieldHiddenAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ExcelRow(); ok {
		_spec.SetField(rmaitem.FieldExcelRow, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedExcelRow(); ok {
		_spec.AddField(rmaitem.FieldExcelRow, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(rmaitem.FieldCreatedAt, field.TypeTime, value)
	}
	_node = &RMAItem{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{rmaitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
