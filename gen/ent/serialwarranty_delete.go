// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/apx-soporte/warranty-tracker/gen/ent/predicate"
	"github.com/apx-soporte/warranty-tracker/gen/ent/serialwarranty"
)

// SerialWarrantyDelete is the builder for deleting a SerialWarranty entity.
type SerialWarrantyDelete struct {
	config
	hooks    []Hook
	mutation *SerialWarrantyMutation
}

// Where appends a list predicates to the SerialWarrantyDelete builder.
func (_d *SerialWarrantyDelete) Where(ps ...predicate.SerialWarranty) *SerialWarrantyDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *SerialWarrantyDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *SerialWarrantyDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *SerialWarrantyDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(serialwarranty.Table, sqlgraph.NewFieldSpec(serialwarranty.FieldID, field.TypeInt))
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

// SerialWarrantyDeleteOne is the builder for deleting a single SerialWarranty entity.
type SerialWarrantyDeleteOne struct {
	_d *SerialWarrantyDelete
}

// Where appends a list predicates to the SerialWarrantyDelete builder.
func (_d *SerialWarrantyDeleteOne) Where(ps ...predicate.SerialWarranty) *SerialWarrantyDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *SerialWarrantyDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{serialwarranty.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *SerialWarrantyDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
