// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/apx-soporte/warranty-tracker/gen/ent/clientgroupmember"
	"github.com/apx-soporte/warranty-tracker/gen/ent/predicate"
)

// ClientGroupMemberDelete is the builder for deleting a ClientGroupMember entity.
type ClientGroupMemberDelete struct {
	config
	hooks    []Hook
	mutation *ClientGroupMemberMutation
}

// Where appends a list predicates to the ClientGroupMemberDelete builder.
func (_d *ClientGroupMemberDelete) Where(ps ...predicate.ClientGroupMember) *ClientGroupMemberDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ClientGroupMemberDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ClientGroupMemberDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ClientGroupMemberDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(clientgroupmember.Table, sqlgraph.NewFieldSpec(clientgroupmember.FieldID, field.TypeInt))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// ClientGroupMemberDeleteOne is the builder for deleting a single ClientGroupMember entity.
type ClientGroupMemberDeleteOne struct {
	_d *ClientGroupMemberDelete
}

// Where appends a list predicates to the ClientGroupMemberDelete builder.
func (_d *ClientGroupMemberDeleteOne) Where(ps ...predicate.ClientGroupMember) *ClientGroupMemberDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ClientGroupMemberDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{clientgroupmember.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ClientGroupMemberDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
