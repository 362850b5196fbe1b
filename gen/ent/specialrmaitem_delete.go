// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/apx-soporte/warranty-tracker/gen/ent/predicate"
	"github.com/apx-soporte/warranty-tracker/gen/ent/specialrmaitem"
)

// SpecialRMAItemDelete is the builder for deleting a SpecialRMAItem entity.
type SpecialRMAItemDelete struct {
	config
	hooks    []Hook
	mutation *SpecialRMAItemMutation
}

// Where appends a list predicates to the SpecialRMAItemDelete builder.
func (_d *SpecialRMAItemDelete) Where(ps ...predicate.SpecialRMAItem) *SpecialRMAItemDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *SpecialRMAItemDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *SpecialRMAItemDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *SpecialRMAItemDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(specialrmaitem.Table, sqlgraph.NewFieldSpec(specialrmaitem.FieldID, field.TypeUUID))
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

// SpecialRMAItemDeleteOne is the builder for deleting a single SpecialRMAItem entity.
type SpecialRMAItemDeleteOne struct {
	_d *SpecialRMAItemDelete
}

// Where appends a list predicates to the SpecialRMAItemDelete builder.
func (_d *SpecialRMAItemDeleteOne) Where(ps ...predicate.SpecialRMAItem) *SpecialRMAItemDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *SpecialRMAItemDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{specialrmaitem.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *SpecialRMAItemDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
