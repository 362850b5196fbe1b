// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/apx-soporte/warranty-tracker/gen/ent/specialrmaitem"
	"github.com/google/uuid"
)

// SpecialRMAItemCreate is the builder for creating a SpecialRMAItem entity.
type SpecialRMAItemCreate struct {
	config
	mutation *SpecialRMAItemMutation
	hooks    []Hook
}

// SetSerial sets the "serial" field.
func (_c *SpecialRMAItemCreate) SetSerial(v string) *SpecialRMAItemCreate {
	_c.mutation.SetSerial(v)
	return _c
}

// SetFallo sets the "fallo" field.
func (_c *SpecialRMAItemCreate) SetFallo(v string) *SpecialRMAItemCreate {
	_c.mutation.SetFallo(v)
	return _c
}

// SetNillableFallo sets the "fallo" field if the given value is not nil.
func (_c *SpecialRMAItemCreate) SetNillableFallo(v *string) *SpecialRMAItemCreate {
	if v != nil {
		_c.SetFallo(*v)
	}
	return _c
}

// SetResolucion sets the "resolucion" field.
func (_c *SpecialRMAItemCreate) SetResolucion(v string) *SpecialRMAItemCreate {
	_c.mutation.SetResolucion(v)
	return _c
}

// SetNillableResolucion sets the "resolucion" field if the given value is not nil.
func (_c *SpecialRMAItemCreate) SetNillableResolucion(v *string) *SpecialRMAItemCreate {
	if v != nil {
		_c.SetResolucion(*v)
	}
	return _c
}

// SetExcelRow sets the "excel_row" field.
func (_c *SpecialRMAItemCreate) SetExcelRow(v int) *SpecialRMAItemCreate {
	_c.mutation.SetExcelRow(v)
	return _c
}

// SetNillableExcelRow sets the "excel_row" field if the given value is not nil.
func (_c *SpecialRMAItemCreate) SetNillableExcelRow(v *int) *SpecialRMAItemCreate {
	if v != nil {
		_c.SetExcelRow(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SpecialRMAItemCreate) SetCreatedAt(v time.Time) *SpecialRMAItemCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SpecialRMAItemCreate) SetNillableCreatedAt(v *time.Time) *SpecialRMAItemCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SpecialRMAItemCreate) SetID(v uuid.UUID) *SpecialRMAItemCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *SpecialRMAItemCreate) SetNillableID(v *uuid.UUID) *SpecialRMAItemCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the SpecialRMAItemMutation object of the builder.
func (_c *SpecialRMAItemCreate) Mutation() *SpecialRMAItemMutation {
	return _c.mutation
}

// Save creates the SpecialRMAItem in the database.
func (_c *SpecialRMAItemCreate) Save(ctx context.Context) (*SpecialRMAItem, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SpecialRMAItemCreate) SaveX(ctx context.Context) *SpecialRMAItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SpecialRMAItemCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SpecialRMAItemCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SpecialRMAItemCreate) defaults() {
	if _, ok := _c.mutation.Fallo(); !ok {
		v := specialrmaitem.DefaultFallo
		_c.mutation.SetFallo(v)
	}
	if _, ok := _c.mutation.Resolucion(); !ok {
		v := specialrmaitem.DefaultResolucion
		_c.mutation.SetResolucion(v)
	}
	if _, ok := _c.mutation.ExcelRow(); !ok {
		v := specialrmaitem.DefaultExcelRow
		_c.mutation.SetExcelRow(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := specialrmaitem.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := specialrmaitem.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SpecialRMAItemCreate) check() error {
	if _, ok := _c.mutation.Serial(); !ok {
		return &ValidationError{Name: "serial", err: errors.New(`ent: missing required field "SpecialRMAItem.serial"`)}
	}
	if v, ok := _c.mutation.Serial(); ok {
		if err := specialrmaitem.SerialValidator(v); err != nil {
			return &ValidationError{Name: "serial", err: fmt.Errorf(`ent: validator failed for field "SpecialRMAItem.serial": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Fallo(); !ok {
		return &ValidationError{Name: "fallo", err: errors.New(`ent: missing required field "SpecialRMAItem.fallo"`)}
	}
	if _, ok := _c.mutation.Resolucion(); !ok {
		return &ValidationError{Name: "resolucion", err: errors.New(`ent: missing required field "SpecialRMAItem.resolucion"`)}
	}
	if _, ok := _c.mutation.ExcelRow(); !ok {
		return &ValidationError{Name: "excel_row", err: errors.New(`ent: missing required field "SpecialRMAItem.excel_row"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "SpecialRMAItem.created_at"`)}
	}
	return nil
}

func (_c *SpecialRMAItemCreate) sqlSave(ctx context.Context) (*SpecialRMAItem, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SpecialRMAItemCreate) createSpec() (*SpecialRMAItem, *sqlgraph.CreateSpec) {
	var (
		_node = &SpecialRMAItem{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(specialrmaitem.Table, sqlgraph.NewFieldSpec(specialrmaitem.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Serial(); ok {
		_spec.SetField(specialrmaitem.FieldSerial, field.TypeString, value)
		_node.Serial = value
	}
	if value, ok := _c.mutation.Fallo(); ok {
		_spec.SetField(specialrmaitem.FieldFallo, field.TypeString, value)
		_node.Fallo = value
	}
	if value, ok := _c.mutation.Resolucion(); ok {
		_spec.SetField(specialrmaitem.FieldResolucion, field.TypeString, value)
		_node.Resolucion = value
	}
	if value, ok := _c.mutation.ExcelRow(); ok {
		_spec.SetField(specialrmaitem.FieldExcelRow, field.TypeInt, value)
		_node.ExcelRow = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(specialrmaitem.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// SpecialRMAItemCreateBulk is the builder for creating many SpecialRMAItem entities in bulk.
type SpecialRMAItemCreateBulk struct {
	config
	err      error
	builders []*SpecialRMAItemCreate
}

// Save creates the SpecialRMAItem entities in the database.
func (_c *SpecialRMAItemCreateBulk) Save(ctx context.Context) ([]*SpecialRMAItem, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SpecialRMAItem, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SpecialRMAItemMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *SpecialRMAItemCreateBulk) SaveX(ctx context.Context) []*SpecialRMAItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SpecialRMAItemCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SpecialRMAItemCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
