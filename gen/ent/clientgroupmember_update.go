// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/apx-soporte/warranty-tracker/gen/ent/clientgroupmember"
	"github.com/apx-soporte/warranty-tracker/gen/ent/predicate"
)

// ClientGroupMemberUpdate is the builder for updating ClientGroupMember entities.
type ClientGroupMemberUpdate struct {
	config
	hooks    []Hook
	mutation *ClientGroupMemberMutation
}

// Where appends a list predicates to the ClientGroupMemberUpdate builder.
func (_u *ClientGroupMemberUpdate) Where(ps ...predicate.ClientGroupMember) *ClientGroupMemberUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetGroupID sets the "group_id" field.
func (_u *ClientGroupMemberUpdate) SetGroupID(v int) *ClientGroupMemberUpdate {
	_u.mutation.ResetGroupID()
	_u.mutation.SetGroupID(v)
	return _u
}

// SetNillableGroupID sets the "group_id" field if the given value is not nil.
func (_u *ClientGroupMemberUpdate) SetNillableGroupID(v *int) *ClientGroupMemberUpdate {
	if v != nil {
		_u.SetGroupID(*v)
	}
	return _u
}

// AddGroupID adds value to the "group_id" field.
func (_u *ClientGroupMemberUpdate) AddGroupID(v int) *ClientGroupMemberUpdate {
	_u.mutation.AddGroupID(v)
	return _u
}

// SetClientName sets the "client_name" field.
func (_u *ClientGroupMemberUpdate) SetClientName(v string) *ClientGroupMemberUpdate {
	_u.mutation.SetClientName(v)
	return _u
}

// SetNillableClientName sets the "client_name" field if the given value is not nil.
func (_u *ClientGroupMemberUpdate) SetNillableClientName(v *string) *ClientGroupMemberUpdate {
	if v != nil {
		_u.SetClientName(*v)
	}
	return _u
}

// SetClientEmail sets the "client_email" field.
func (_u *ClientGroupMemberUpdate) SetClientEmail(v string) *ClientGroupMemberUpdate {
	_u.mutation.SetClientEmail(v)
	return _u
}

// SetNillableClientEmail sets the "client_email" field if the given value is not nil.
func (_u *ClientGroupMemberUpdate) SetNillableClientEmail(v *string) *ClientGroupMemberUpdate {
	if v != nil {
		_u.SetClientEmail(*v)
	}
	return _u
}

// Mutation returns the ClientGroupMemberMutation object of the builder.
func (_u *ClientGroupMemberUpdate) Mutation() *ClientGroupMemberMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ClientGroupMemberUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ClientGroupMemberUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ClientGroupMemberUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ClientGroupMemberUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ClientGroupMemberUpdate) check() error {
	if v, ok := _u.mutation.ClientName(); ok {
		if err := clientgroupmember.ClientNameValidator(v); err != nil {
			return &ValidationError{Name: "client_name", err: fmt.Errorf(`ent: validator failed for field "ClientGroupMember.client_name": %w`, err)}
		}
	}
	return nil
}

func (_u *ClientGroupMemberUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(clientgroupmember.Table, clientgroupmember.Columns, sqlgraph.NewFieldSpec(clientgroupmember.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.GroupID(); ok {
		_spec.SetField(clientgroupmember.FieldGroupID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedGroupID(); ok {
		_spec.AddField(clientgroupmember.FieldGroupID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ClientName(); ok {
		_spec.SetField(clientgroupmember.FieldClientName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ClientEmail(); ok {
		_spec.SetField(clientgroupmember.FieldClientEmail, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{clientgroupmember.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ClientGroupMemberUpdateOne is the builder for updating a single ClientGroupMember entity.
type ClientGroupMemberUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ClientGroupMemberMutation
}

// SetGroupID sets the "group_id" field.
func (_u *ClientGroupMemberUpdateOne) SetGroupID(v int) *ClientGroupMemberUpdateOne {
	_u.mutation.ResetGroupID()
	_u.mutation.SetGroupID(v)
	return _u
}

// SetNillableGroupID sets the "group_id" field if the given value is not nil.
func (_u *ClientGroupMemberUpdateOne) SetNillableGroupID(v *int) *ClientGroupMemberUpdateOne {
	if v != nil {
		_u.SetGroupID(*v)
	}
	return _u
}

// AddGroupID adds value to the "group_id" field.
func (_u *ClientGroupMemberUpdateOne) AddGroupID(v int) *ClientGroupMemberUpdateOne {
	_u.mutation.AddGroupID(v)
	return _u
}

// SetClientName sets the "client_name" field.
func (_u *ClientGroupMemberUpdateOne) SetClientName(v string) *ClientGroupMemberUpdateOne {
	_u.mutation.SetClientName(v)
	return _u
}

// SetNillableClientName sets the "client_name" field if the given value is not nil.
func (_u *ClientGroupMemberUpdateOne) SetNillableClientName(v *string) *ClientGroupMemberUpdateOne {
	if v != nil {
		_u.SetClientName(*v)
	}
	return _u
}

// SetClientEmail sets the "client_email" field.
func (_u *ClientGroupMemberUpdateOne) SetClientEmail(v string) *ClientGroupMemberUpdateOne {
	_u.mutation.SetClientEmail(v)
	return _u
}

// SetNillableClientEmail sets the "client_email" field if the given value is not nil.
func (_u *ClientGroupMemberUpdateOne) SetNillableClientEmail(v *string) *ClientGroupMemberUpdateOne {
	if v != nil {
		_u.SetClientEmail(*v)
	}
	return _u
}

// Mutation returns the ClientGroupMemberMutation object of the builder.
func (_u *ClientGroupMemberUpdateOne) Mutation() *ClientGroupMemberMutation {
	return _u.mutation
}

// Where appends a list predicates to the ClientGroupMemberUpdate builder.
func (_u *ClientGroupMemberUpdateOne) Where(ps ...predicate.ClientGroupMember) *ClientGroupMemberUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ClientGroupMemberUpdateOne) Select(field string, fields ...string) *ClientGroupMemberUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ClientGroupMember entity.
func (_u *ClientGroupMemberUpdateOne) Save(ctx context.Context) (*ClientGroupMember, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ClientGroupMemberUpdateOne) SaveX(ctx context.Context) *ClientGroupMember {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ClientGroupMemberUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ClientGroupMemberUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ClientGroupMemberUpdateOne) check() error {
	if v, ok := _u.mutation.ClientName(); ok {
		if err := clientgroupmember.ClientNameValidator(v); err != nil {
			return &ValidationError{Name: "client_name", err: fmt.Errorf(`ent: validator failed for field "ClientGroupMember.client_name": %w`, err)}
		}
	}
	return nil
}

func (_u *ClientGroupMemberUpdateOne) sqlSave(ctx context.Context) (_node *ClientGroupMember, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(clientgroupmember.Table, clientgroupmember.Columns, sqlgraph.NewFieldSpec(clientgroupmember.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ClientGroupMember.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, clientgroupmember.FieldID)
		for _, f := range fields {
			if !clientgroupmember.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != clientgroupmember.FieldID {
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
	if value, ok := _u.mutation.GroupID(); ok {
		_spec.SetField(clientgroupmember.FieldGroupID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedGroupID(); ok {
		_spec.AddField(clientgroupmember.FieldGroupID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ClientName(); ok {
		_spec.SetField(clientgroupmember.FieldClientName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ClientEmail(); ok {
		_spec.SetField(clientgroupmember.FieldClientEmail, field.TypeString, value)
	}
	_node = &ClientGroupMember{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{clientgroupmember.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
