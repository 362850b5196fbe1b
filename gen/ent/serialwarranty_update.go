// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/apx-soporte/warranty-tracker/gen/ent/predicate"
	"github.com/apx-soporte/warranty-tracker/gen/ent/serialwarranty"
)

// SerialWarrantyUpdate is the builder for updating SerialWarranty entities.
type SerialWarrantyUpdate struct {
	config
	hooks    []Hook
	mutation *SerialWarrantyMutation
}

// Where appends a list predicates to the SerialWarrantyUpdate builder.
func (_u *SerialWarrantyUpdate) Where(ps ...predicate.SerialWarranty) *SerialWarrantyUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSerial sets the "serial" field.
func (_u *SerialWarrantyUpdate) SetSerial(v string) *SerialWarrantyUpdate {
	_u.mutation.SetSerial(v)
	return _u
}

// SetNillableSerial sets the "serial" field if the given value is not nil.
func (_u *SerialWarrantyUpdate) SetNillableSerial(v *string) *SerialWarrantyUpdate {
	if v != nil {
		_u.SetSerial(*v)
	}
	return _u
}

// SetWarrantyValid sets the "warranty_valid" field.
func (_u *SerialWarrantyUpdate) SetWarrantyValid(v bool) *SerialWarrantyUpdate {
	_u.mutation.SetWarrantyValid(v)
	return _u
}

// SetNillableWarrantyValid sets the "warranty_valid" field if the given value is not nil.
func (_u *SerialWarrantyUpdate) SetNillableWarrantyValid(v *bool) *SerialWarrantyUpdate {
	if v != nil {
		_u.SetWarrantyValid(*v)
	}
	return _u
}

// Mutation returns the SerialWarrantyMutation object of the builder.
func (_u *SerialWarrantyUpdate) Mutation() *SerialWarrantyMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SerialWarrantyUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SerialWarrantyUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SerialWarrantyUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SerialWarrantyUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SerialWarrantyUpdate) check() error {
	if v, ok := _u.mutation.Serial(); ok {
		if err := serialwarranty.SerialValidator(v); err != nil {
			return &ValidationError{Name: "serial", err: fmt.Errorf(`ent: validator failed for field "SerialWarranty.serial": %w`, err)}
		}
	}
	return nil
}

func (_u *SerialWarrantyUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(serialwarranty.Table, serialwarranty.Columns, sqlgraph.NewFieldSpec(serialwarranty.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Serial(); ok {
		_spec.SetField(serialwarranty.FieldSerial, field.TypeString, value)
	}
	if value, ok := _u.mutation.WarrantyValid(); ok {
		_spec.SetField(serialwarranty.FieldWarrantyValid, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{serialwarranty.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SerialWarrantyUpdateOne is the builder for updating a single SerialWarranty entity.
type SerialWarrantyUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SerialWarrantyMutation
}

// SetSerial sets the "serial" field.
func (_u *SerialWarrantyUpdateOne) SetSerial(v string) *SerialWarrantyUpdateOne {
	_u.mutation.SetSerial(v)
	return _u
}

// SetNillableSerial sets the "serial" field if the given value is not nil.
func (_u *SerialWarrantyUpdateOne) SetNillableSerial(v *string) *SerialWarrantyUpdateOne {
	if v != nil {
		_u.SetSerial(*v)
	}
	return _u
}

// SetWarrantyValid sets the "warranty_valid" field.
func (_u *SerialWarrantyUpdateOne) SetWarrantyValid(v bool) *SerialWarrantyUpdateOne {
	_u.mutation.SetWarrantyValid(v)
	return _u
}

// SetNillableWarrantyValid sets the "warranty_valid" field if the given value is not nil.
func (_u *SerialWarrantyUpdateOne) SetNillableWarrantyValid(v *bool) *SerialWarrantyUpdateOne {
	if v != nil {
		_u.SetWarrantyValid(*v)
	}
	return _u
}

// Mutation returns the SerialWarrantyMutation object of the builder.
func (_u *SerialWarrantyUpdateOne) Mutation() *SerialWarrantyMutation {
	return _u.mutation
}

// Where appends a list predicates to the SerialWarrantyUpdate builder.
func (_u *SerialWarrantyUpdateOne) Where(ps ...predicate.SerialWarranty) *SerialWarrantyUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SerialWarrantyUpdateOne) Select(field string, fields ...string) *SerialWarrantyUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SerialWarranty entity.
func (_u *SerialWarrantyUpdateOne) Save(ctx context.Context) (*SerialWarranty, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SerialWarrantyUpdateOne) SaveX(ctx context.Context) *SerialWarranty {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SerialWarrantyUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SerialWarrantyUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SerialWarrantyUpdateOne) check() error {
	if v, ok := _u.mutation.Serial(); ok {
		if err := serialwarranty.SerialValidator(v); err != nil {
			return &ValidationError{Name: "serial", err: fmt.Errorf(`ent: validator failed for field "SerialWarranty.serial": %w`, err)}
		}
	}
	return nil
}

func (_u *SerialWarrantyUpdateOne) sqlSave(ctx context.Context) (_node *SerialWarranty, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(serialwarranty.Table, serialwarranty.Columns, sqlgraph.NewFieldSpec(serialwarranty.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SerialWarranty.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, serialwarranty.FieldID)
		for _, f := range fields {
			if !serialwarranty.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != serialwarranty.FieldID {
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
		_spec.SetField(serialwarranty.FieldSerial, field.TypeString, value)
	}
	if value, ok := _u.mutation.WarrantyValid(); ok {
		_spec.SetField(serialwarranty.FieldWarrantyValid, field.TypeBool, value)
	}
	_node = &SerialWarranty{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{serialwarranty.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
