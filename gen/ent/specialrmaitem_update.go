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
	"github.com/apx-soporte/warranty-tracker/gen/ent/specialrmaitem"
)

// SpecialRMAItemUpdate is the builder for updating SpecialRMAItem entities.
type SpecialRMAItemUpdate struct {
	config
	hooks    []Hook
	mutation *SpecialRMAItemMutation
}

// Where appends a list predicates to the SpecialRMAItemUpdate builder.
func (_u *SpecialRMAItemUpdate) Where(ps ...predicate.SpecialRMAItem) *SpecialRMAItemUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSerial sets the "serial" field.
func (_u *SpecialRMAItemUpdate) SetSerial(v string) *SpecialRMAItemUpdate {
	_u.mutation.SetSerial(v)
	return _u
}

// SetNillableSerial sets the "serial" field if the given value is not nil.
func (_u *SpecialRMAItemUpdate) SetNillableSerial(v *string) *SpecialRMAItemUpdate {
	if v != nil {
		_u.SetSerial(*v)
	}
	return _u
}

// SetFallo sets the "fallo" field.
func (_u *SpecialRMAItemUpdate) SetFallo(v string) *SpecialRMAItemUpdate {
	_u.mutation.SetFallo(v)
	return _u
}

// SetNillableFallo sets the "fallo" field if the given value is not nil.
func (_u *SpecialRMAItemUpdate) SetNillableFallo(v *string) *SpecialRMAItemUpdate {
	if v != nil {
		_u.SetFallo(*v)
	}
	return _u
}

// SetResolucion sets the "resolucion" field.
func (_u *SpecialRMAItemUpdate) SetResolucion(v string) *SpecialRMAItemUpdate {
	_u.mutation.SetResolucion(v)
	return _u
}

// SetNillableResolucion sets the "resolucion" field if the given value is not nil.
func (_u *SpecialRMAItemUpdate) SetNillableResolucion(v *string) *SpecialRMAItemUpdate {
	if v != nil {
		_u.SetResolucion(*v)
	}
	return _u
}

// SetExcelRow sets the "excel_row" field.
func (_u *SpecialRMAItemUpdate) SetExcelRow(v int) *SpecialRMAItemUpdate {
	_u.mutation.ResetExcelRow()
	_u.mutation.SetExcelRow(v)
	return _u
}

// SetNillableExcelRow sets the "excel_row" field if the given value is not nil.
func (_u *SpecialRMAItemUpdate) SetNillableExcelRow(v *int) *SpecialRMAItemUpdate {
	if v != nil {
		_u.SetExcelRow(*v)
	}
	return _u
}

// AddExcelRow adds value to the "excel_row" field.
func (_u *SpecialRMAItemUpdate) AddExcelRow(v int) *SpecialRMAItemUpdate {
	_u.mutation.AddExcelRow(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *SpecialRMAItemUpdate) SetCreatedAt(v time.Time) *SpecialRMAItemUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *SpecialRMAItemUpdate) SetNillableCreatedAt(v *time.Time) *SpecialRMAItemUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// Mutation returns the SpecialRMAItemMutation object of the builder.
func (_u *SpecialRMAItemUpdate) Mutation() *SpecialRMAItemMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SpecialRMAItemUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SpecialRMAItemUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SpecialRMAItemUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SpecialRMAItemUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SpecialRMAItemUpdate) check() error {
	if v, ok := _u.mutation.Serial(); ok {
		if err := specialrmaitem.SerialValidator(v); err != nil {
			return &ValidationError{Name: "serial", err: fmt.Errorf(`ent: validator failed for field "SpecialRMAItem.serial": %w`, err)}
		}
	}
	return nil
}

func (_u *SpecialRMAItemUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(specialrmaitem.Table, specialrmaitem.Columns, sqlgraph.NewFieldSpec(specialrmaitem.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Serial(); ok {
		_spec.SetField(specialrmaitem.FieldSerial, field.TypeString, value)
	}
	if value, ok := _u.mutation.Fallo(); ok {
		_spec.SetField(specialrmaitem.FieldFallo, field.TypeString, value)
	}
	if value, ok := _u.mutation.Resolucion(); ok {
		_spec.SetField(specialrmaitem.FieldResolucion, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExcelRow(); ok {
		_spec.SetField(specialrmaitem.FieldExcelRow, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedExcelRow(); ok {
		_spec.AddField(specialrmaitem.FieldExcelRow, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(specialrmaitem.FieldCreatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{specialrmaitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SpecialRMAItemUpdateOne is the builder for updating a single SpecialRMAItem entity.
type SpecialRMAItemUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SpecialRMAItemMutation
}

// SetSerial sets the "serial" field.
func (_u *SpecialRMAItemUpdateOne) SetSerial(v string) *SpecialRMAItemUpdateOne {
	_u.mutation.SetSerial(v)
	return _u
}

// SetNillableSerial sets the "serial" field if the given value is not nil.
func (_u *SpecialRMAItemUpdateOne) SetNillableSerial(v *string) *SpecialRMAItemUpdateOne {
	if v != nil {
		_u.SetSerial(*v)
	}
	return _u
}

// SetFallo sets the "fallo" field.
func (_u *SpecialRMAItemUpdateOne) SetFallo(v string) *SpecialRMAItemUpdateOne {
	_u.mutation.SetFallo(v)
	return _u
}

// SetNillableFallo sets the "fallo" field if the given value is not nil.
func (_u *SpecialRMAItemUpdateOne) SetNillableFallo(v *string) *SpecialRMAItemUpdateOne {
	if v != nil {
		_u.SetFallo(*v)
	}
	return _u
}

// SetResolucion sets the "resolucion" field.
func (_u *SpecialRMAItemUpdateOne) SetResolucion(v string) *SpecialRMAItemUpdateOne {
	_u.mutation.SetResolucion(v)
	return _u
}

// SetNillableResolucion sets the "resolucion" field if the given value is not nil.
func (_u *SpecialRMAItemUpdateOne) SetNillableResolucion(v *string) *SpecialRMAItemUpdateOne {
	if v != nil {
		_u.SetResolucion(*v)
	}
	return _u
}

// SetExcelRow sets the "excel_row" field.
func (_u *SpecialRMAItemUpdateOne) SetExcelRow(v int) *SpecialRMAItemUpdateOne {
	_u.mutation.ResetExcelRow()
	_u.mutation.SetExcelRow(v)
	return _u
}

// SetNillableExcelRow sets the "excel_row" field if the given value is not nil.
func (_u *SpecialRMAItemUpdateOne) SetNillableExcelRow(v *int) *SpecialRMAItemUpdateOne {
	if v != nil {
		_u.SetExcelRow(*v)
	}
	return _u
}

// AddExcelRow adds value to the "excel_row" field.
func (_u *SpecialRMAItemUpdateOne) AddExcelRow(v int) *SpecialRMAItemUpdateOne {
	_u.mutation.AddExcelRow(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *SpecialRMAItemUpdateOne) SetCreatedAt(v time.Time) *SpecialRMAItemUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *SpecialRMAItemUpdateOne) SetNillableCreatedAt(v *time.Time) *SpecialRMAItemUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// Mutation returns the SpecialRMAItemMutation object of the builder.
func (_u *SpecialRMAItemUpdateOne) Mutation() *SpecialRMAItemMutation {
	return _u.mutation
}

// Where appends a list predicates to the SpecialRMAItemUpdate builder.
func (_u *SpecialRMAItemUpdateOne) Where(ps ...predicate.SpecialRMAItem) *SpecialRMAItemUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SpecialRMAItemUpdateOne) Select(field string, fields ...string) *SpecialRMAItemUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SpecialRMAItem entity.
func (_u *SpecialRMAItemUpdateOne) Save(ctx context.Context) (*SpecialRMAItem, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SpecialRMAItemUpdateOne) SaveX(ctx context.Context) *SpecialRMAItem {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SpecialRMAItemUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SpecialRMAItemUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SpecialRMAItemUpdateOne) check() error {
	if v, ok := _u.mutation.Serial(); ok {
		if err := specialrmaitem.SerialValidator(v); err != nil {
			return &ValidationError{Name: "serial", err: fmt.Errorf(`ent: validator failed for field "SpecialRMAItem.serial": %w`, err)}
		}
	}
	return nil
}

func (_u *SpecialRMAItemUpdateOne) sqlSave(ctx context.Context) (_node *SpecialRMAItem, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(specialrmaitem.Table, specialrmaitem.Columns, sqlgraph.NewFieldSpec(specialrmaitem.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SpecialRMAItem.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, specialrmaitem.FieldID)
		for _, f := range fields {
			if !specialrmaitem.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != specialrmaitem.FieldID {
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
	if value, ok := _u.mutation.Serial(); ok {
		_spec.SetField(specialrmaitem.FieldSerial, field.TypeString, value)
	}
	if value, ok := _u.mutation.Fallo(); ok {
		_spec.SetField(specialrmaitem.FieldFallo, field.TypeString, value)
	}
	if value, ok := _u.mutation.Resolucion(); ok {
		_spec.SetField(specialrmaitem.FieldResolucion, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExcelRow(); ok {
		_spec.SetField(specialrmaitem.FieldExcelRow, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedExcelRow(); ok {
		_spec.AddField(specialrmaitem.FieldExcelRow, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(specialrmaitem.FieldCreatedAt, field.TypeTime, value)
	}
	_node = &SpecialRMAItem{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{specialrmaitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
