// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/apx-soporte/warranty-tracker/gen/ent/serialwarranty"
)

// SerialWarrantyCreate is the builder for creating a SerialWarranty entity.
type SerialWarrantyCreate struct {
	config
	mutation *SerialWarrantyMutation
	hooks    []Hook
}

// SetSerial sets the "serial" field.
func (_c *SerialWarrantyCreate) SetSerial(v string) *SerialWarrantyCreate {
	_c.mutation.SetSerial(v)
	return _c
}

// SetWarrantyValid sets the "warranty_valid" field.
func (_c *SerialWarrantyCreate) SetWarrantyValid(v bool) *SerialWarrantyCreate {
	_c.mutation.SetWarrantyValid(v)
	return _c
}

// SetNillableWarrantyValid sets the "warranty_valid" field if the given value is not nil.
func (_c *SerialWarrantyCreate) SetNillableWarrantyValid(v *bool) *SerialWarrantyCreate {
	if v != nil {
		_c.SetWarrantyValid(*v)
	}
	return _c
}

// Mutation returns the SerialWarrantyMutation object of the builder.
func (_c *SerialWarrantyCreate) Mutation() *SerialWarrantyMutation {
	return _c.mutation
}

// Save creates the SerialWarranty in the database.
func (_c *SerialWarrantyCreate) Save(ctx context.Context) (*SerialWarranty, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SerialWarrantyCreate) SaveX(ctx context.Context) *SerialWarranty {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SerialWarrantyCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SerialWarrantyCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SerialWarrantyCreate) defaults() {
	if _, ok := _c.mutation.WarrantyValid(); !ok {
		v := serialwarranty.DefaultWarrantyValid
		_c.mutation.SetWarrantyValid(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SerialWarrantyCreate) check() error {
	if _, ok := _c.mutation.Serial(); !ok {
		return &ValidationError{Name: "serial", err: errors.New(`ent: missing required field "SerialWarranty.serial"`)}
	}
	if v, ok := _c.mutation.Serial(); ok {
		if err := serialwarranty.SerialValidator(v); err != nil {
			return &ValidationError{Name: "serial", err: fmt.Errorf(`ent: validator failed for field "SerialWarranty.serial": %w`, err)}
		}
	}
	if _, ok := _c.mutation.WarrantyValid(); !ok {
		return &ValidationError{Name: "warranty_valid", err: errors.New(`ent: missing required field "SerialWarranty.warranty_valid"`)}
	}
	return nil
}

func (_c *SerialWarrantyCreate) sqlSave(ctx context.Context) (*SerialWarranty, error) {
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
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SerialWarrantyCreate) createSpec() (*SerialWarranty, *sqlgraph.CreateSpec) {
	var (
		_node = &SerialWarranty{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(serialwarranty.Table, sqlgraph.NewFieldSpec(serialwarranty.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Serial(); ok {
		_spec.SetField(serialwarranty.FieldSerial, field.TypeString, value)
		_node.Serial = value
	}
	if value, ok := _c.mutation.WarrantyValid(); ok {
		_spec.SetField(serialwarranty.FieldWarrantyValid, field.TypeBool, value)
		_node.WarrantyValid = value
	}
	return _node, _spec
}

// SerialWarrantyCreateBulk is the builder for creating many SerialWarranty entities in bulk.
type SerialWarrantyCreateBulk struct {
	config
	err      error
	builders []*SerialWarrantyCreate
}

// Save creates the SerialWarranty entities in the database.
func (_c *SerialWarrantyCreateBulk) Save(ctx context.Context) ([]*SerialWarranty, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SerialWarranty, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SerialWarrantyMutation)
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
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
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
func (_c *SerialWarrantyCreateBulk) SaveX(ctx context.Context) []*SerialWarranty {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SerialWarrantyCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SerialWarrantyCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
