// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/apx-soporte/warranty-tracker/gen/ent/clientgroup"
	"github.com/apx-soporte/warranty-tracker/gen/ent/predicate"
)

// ClientGroupUpdate is the builder for updating ClientGroup entities.
type ClientGroupUpdate struct {
	config
	hooks    []Hook
	mutation *ClientGroupMutation
}

// Where appends a list predicates to the ClientGroupUpdate builder.
func (_u *ClientGroupUpdate) Where(ps ...predicate.ClientGroup) *ClientGroupUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCanonicalName sets the "canonical_name" field.
func (_u *ClientGroupUpdate) SetCanonicalName(v string) *ClientGroupUpdate {
	_u.mutation.SetCanonicalName(v)
	return _u
}

// SetNillableCanonicalName sets the "canonical_name" field if the given value is not nil.
func (_u *ClientGroupUpdate) SetNillableCanonicalName(v *string) *ClientGroupUpdate {
	if v != nil {
		_u.SetCanonicalName(*v)
	}
	return _u
}

// SetCanonicalEmail sets the "canonical_email" field.
func (_u *ClientGroupUpdate) SetCanonicalEmail(v string) *ClientGroupUpdate {
	_u.mutation.SetCanonicalEmail(v)
	return _u
}

// SetNillableCanonicalEmail sets the "canonical_email" field if the given value is not nil.
func (_u *ClientGroupUpdate) SetNillableCanonicalEmail(v *string) *ClientGroupUpdate {
	if v != nil {
		_u.SetCanonicalEmail(*v)
	}
	return _u
}

// SetCanonicalPhone sets the "canonical_phone" field.
func (_u *ClientGroupUpdate) SetCanonicalPhone(v string) *ClientGroupUpdate {
	_u.mutation.SetCanonicalPhone(v)
	return _u
}

// SetNillableCanonicalPhone sets the "canonical_phone" field if the given value is not nil.
func (_u *ClientGroupUpdate) SetNillableCanonicalPhone(v *string) *ClientGroupUpdate {
	if v != nil {
		_u.SetCanonicalPhone(*v)
	}
	return _u
}

// Mutation returns the ClientGroupMutation object of the builder.
func (_u *ClientGroupUpdate) Mutation() *ClientGroupMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ClientGroupUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ClientGroupUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ClientGroupUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ClientGroupUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ClientGroupUpdate) check() error {
	if v, ok := _u.mutation.CanonicalName(); ok {
		if err := clientgroup.CanonicalNameValidator(v); err != nil {
			return &ValidationError{Name: "canonical_name", err: fmt.Errorf(`ent: validator failed for field "ClientGroup.canonical_name": %w`, err)}
		}
	}
	return nil
}

func (_u *ClientGroupUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(clientgroup.Table, clientgroup.Columns, sqlgraph.NewFieldSpec(clientgroup.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CanonicalName(); ok {
		_spec.SetField(clientgroup.FieldCanonicalName, field.TypeString, value)
	}
	if value, ok := _u.mutation.CanonicalEmail(); ok {
		_spec.SetField(clientgroup.FieldCanonicalEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.CanonicalPhone(); ok {
		_spec.SetField(clientgroup.FieldCanonicalPhone, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{clientgroup.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ClientGroupUpdateOne is the builder for updating a single ClientGroup entity.
type ClientGroupUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ClientGroupMutation
}

// SetCanonicalName sets the "canonical_name" field.
func (_u *ClientGroupUpdateOne) SetCanonicalName(v string) *ClientGroupUpdateOne {
	_u.mutation.SetCanonicalName(v)
	return _u
}

// SetNillableCanonicalName sets the "canonical_name" field if the given value is not nil.
func (_u *ClientGroupUpdateOne) SetNillableCanonicalName(v *string) *ClientGroupUpdateOne {
	if v != nil {
		_u.SetCanonicalName(*v)
	}
	return _u
}

// SetCanonicalEmail sets the "canonical_email" field.
func (_u *ClientGroupUpdateOne) SetCanonicalEmail(v string) *ClientGroupUpdateOne {
	_u.mutation.SetCanonicalEmail(v)
	return _u
}

// SetNillableCanonicalEmail sets the "canonical_email" field if the given value is not nil.
func (_u *ClientGroupUpdateOne) SetNillableCanonicalEmail(v *string) *ClientGroupUpdateOne {
	if v != nil {
		_u.SetCanonicalEmail(*v)
	}
	return _u
}

// SetCanonicalPhone sets the "canonical_phone" field.
func (_u *ClientGroupUpdateOne) SetCanonicalPhone(v string) *ClientGroupUpdateOne {
	_u.mutation.SetCanonicalPhone(v)
	return _u
}

// SetNillableCanonicalPhone sets the "canonical_phone" field if the given value is not nil.
func (_u *ClientGroupUpdateOne) SetNillableCanonicalPhone(v *string) *ClientGroupUpdateOne {
	if v != nil {
		_u.SetCanonicalPhone(*v)
	}
	return _u
}

// Mutation returns the ClientGroupMutation object of the builder.
func (_u *ClientGroupUpdateOne) Mutation() *ClientGroupMutation {
	return _u.mutation
}

// Where appends a list predicates to the ClientGroupUpdate builder.
func (_u *ClientGroupUpdateOne) Where(ps ...predicate.ClientGroup) *ClientGroupUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ClientGroupUpdateOne) Select(field string, fields ...string) *ClientGroupUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ClientGroup entity.
func (_u *ClientGroupUpdateOne) Save(ctx context.Context) (*ClientGroup, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ClientGroupUpdateOne) SaveX(ctx context.Context) *ClientGroup {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ClientGroupUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ClientGroupUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ClientGroupUpdateOne) check() error {
	if v, ok := _u.mutation.CanonicalName(); ok {
		if err := clientgroup.CanonicalNameValidator(v); err != nil {
			return &ValidationError{Name: "canonical_name", err: fmt.Errorf(`ent: validator failed for field "ClientGroup.canonical_name": %w`, err)}
		}
	}
	return nil
}

func (_u *ClientGroupUpdateOne) sqlSave(ctx context.Context) (_node *ClientGroup, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(clientgroup.Table, clientgroup.Columns, sqlgraph.NewFieldSpec(clientgroup.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ClientGroup.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, clientgroup.FieldID)
		for _, f := range fields {
			if !clientgroup.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != clientgroup.FieldID {
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
	if value, ok := _u.mutation.CanonicalName(); ok {
		_spec.SetField(clientgroup.FieldCanonicalName, field.TypeString, value)
	}
	if value, ok := _u.mutation.CanonicalEmail(); ok {
		_spec.SetField(clientgroup.FieldCanonicalEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.CanonicalPhone(); ok {
		_spec.SetField(clientgroup.FieldCanonicalPhone, field.TypeString, value)
	}
	_node = &ClientGroup{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{clientgroup.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
