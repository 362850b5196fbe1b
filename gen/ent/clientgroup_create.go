// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/apx-soporte/warranty-tracker/gen/ent/clientgroup"
)

// ClientGroupCreate is the builder for creating a ClientGroup entity.
type ClientGroupCreate struct {
	config
	mutation *ClientGroupMutation
	hooks    []Hook
}

// SetCanonicalName sets the "canonical_name" field.
func (_c *ClientGroupCreate) SetCanonicalName(v string) *ClientGroupCreate {
	_c.mutation.SetCanonicalName(v)
	return _c
}

// SetCanonicalEmail sets the "canonical_email" field.
func (_c *ClientGroupCreate) SetCanonicalEmail(v string) *ClientGroupCreate {
	_c.mutation.SetCanonicalEmail(v)
	return _c
}

// SetNillableCanonicalEmail sets the "canonical_email" field if the given value is not nil.
func (_c *ClientGroupCreate) SetNillableCanonicalEmail(v *string) *ClientGroupCreate {
	if v != nil {
		_c.SetCanonicalEmail(*v)
	}
	return _c
}

// SetCanonicalPhone sets the "canonical_phone" field.
func (_c *ClientGroupCreate) SetCanonicalPhone(v string) *ClientGroupCreate {
	_c.mutation.SetCanonicalPhone(v)
	return _c
}

// SetNillableCanonicalPhone sets the "canonical_phone" field if the given value is not nil.
func (_c *ClientGroupCreate) SetNillableCanonicalPhone(v *string) *ClientGroupCreate {
	if v != nil {
		_c.SetCanonicalPhone(*v)
	}
	return _c
}

// Mutation returns the ClientGroupMutation object of the builder.
func (_c *ClientGroupCreate) Mutation() *ClientGroupMutation {
	return _c.mutation
}

// Save creates the ClientGroup in the database.
func (_c *ClientGroupCreate) Save(ctx context.Context) (*ClientGroup, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ClientGroupCreate) SaveX(ctx context.Context) *ClientGroup {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ClientGroupCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ClientGroupCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ClientGroupCreate) defaults() {
	if _, ok := _c.mutation.CanonicalEmail(); !ok {
		v := clientgroup.DefaultCanonicalEmail
		_c.mutation.SetCanonicalEmail(v)
	}
	if _, ok := _c.mutation.CanonicalPhone(); !ok {
		v := clientgroup.DefaultCanonicalPhone
		_c.mutation.SetCanonicalPhone(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ClientGroupCreate) check() error {
	if _, ok := _c.mutation.CanonicalName(); !ok {
		return &ValidationError{Name: "canonical_name", err: errors.New(`ent: missing required field "ClientGroup.canonical_name"`)}
	}
	if v, ok := _c.mutation.CanonicalName(); ok {
		if err := clientgroup.CanonicalNameValidator(v); err != nil {
			return &ValidationError{Name: "canonical_name", err: fmt.Errorf(`ent: validator failed for field "ClientGroup.canonical_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CanonicalEmail(); !ok {
		return &ValidationError{Name: "canonical_email", err: errors.New(`ent: missing required field "ClientGroup.canonical_email"`)}
	}
	if _, ok := _c.mutation.CanonicalPhone(); !ok {
		return &ValidationError{Name: "canonical_phone", err: errors.New(`ent: missing required field "ClientGroup.canonical_phone"`)}
	}
	return nil
}

func (_c *ClientGroupCreate) sqlSave(ctx context.Context) (*ClientGroup, error) {
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

func (_c *ClientGroupCreate) createSpec() (*ClientGroup, *sqlgraph.CreateSpec) {
	var (
		_node = &ClientGroup{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(clientgroup.Table, sqlgraph.NewFieldSpec(clientgroup.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.CanonicalName(); ok {
		_spec.SetField(clientgroup.FieldCanonicalName, field.TypeString, value)
		_node.CanonicalName = value
	}
	if value, ok := _c.mutation.CanonicalEmail(); ok {
		_spec.SetField(clientgroup.FieldCanonicalEmail, field.TypeString, value)
		_node.CanonicalEmail = value
	}
	if value, ok := _c.mutation.CanonicalPhone(); ok {
		_spec.SetField(clientgroup.FieldCanonicalPhone, field.TypeString, value)
		_node.CanonicalPhone = value
	}
	return _node, _spec
}

// ClientGroupCreateBulk is the builder for creating many ClientGroup entities in bulk.
type ClientGroupCreateBulk struct {
	config
	err      error
	builders []*ClientGroupCreate
}

// Save creates the ClientGroup entities in the database.
func (_c *ClientGroupCreateBulk) Save(ctx context.Context) ([]*ClientGroup, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ClientGroup, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ClientGroupMutation)
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
func (_c *ClientGroupCreateBulk) SaveX(ctx context.Context) []*ClientGroup {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ClientGroupCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ClientGroupCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
