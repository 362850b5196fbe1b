// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/apx-soporte/warranty-tracker/gen/ent/clientgroupmember"
)

// ClientGroupMemberCreate is the builder for creating a ClientGroupMember entity.
type ClientGroupMemberCreate struct {
	config
	mutation *ClientGroupMemberMutation
	hooks    []Hook
}

// SetGroupID sets the "group_id" field.
func (_c *ClientGroupMemberCreate) SetGroupID(v int) *ClientGroupMemberCreate {
	_c.mutation.SetGroupID(v)
	return _c
}

// SetClientName sets the "client_name" field.
func (_c *ClientGroupMemberCreate) SetClientName(v string) *ClientGroupMemberCreate {
	_c.mutation.SetClientName(v)
	return _c
}

// SetClientEmail sets the "client_email" field.
func (_c *ClientGroupMemberCreate) SetClientEmail(v string) *ClientGroupMemberCreate {
	_c.mutation.SetClientEmail(v)
	return _c
}

// SetNillableClientEmail sets the "client_email" field if the given value is not nil.
func (_c *ClientGroupMemberCreate) SetNillableClientEmail(v *string) *ClientGroupMemberCreate {
	if v != nil {
		_c.SetClientEmail(*v)
	}
	return _c
}

// Mutation returns the ClientGroupMemberMutation object of the builder.
func (_c *ClientGroupMemberCreate) Mutation() *ClientGroupMemberMutation {
	return _c.mutation
}

// Save creates the ClientGroupMember in the database.
func (_c *ClientGroupMemberCreate) Save(ctx context.Context) (*ClientGroupMember, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ClientGroupMemberCreate) SaveX(ctx context.Context) *ClientGroupMember {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ClientGroupMemberCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ClientGroupMemberCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ClientGroupMemberCreate) defaults() {
	if _, ok := _c.mutation.ClientEmail(); !ok {
		v := clientgroupmember.DefaultClientEmail
		_c.mutation.SetClientEmail(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ClientGroupMemberCreate) check() error {
	if _, ok := _c.mutation.GroupID(); !ok {
		return &ValidationError{Name: "group_id", err: errors.New(`ent: missing required field "ClientGroupMember.group_id"`)}
	}
	if _, ok := _c.mutation.ClientName(); !ok {
		return &ValidationError{Name: "client_name", err: errors.New(`ent: missing required field "ClientGroupMember.client_name"`)}
	}
	if v, ok := _c.mutation.ClientName(); ok {
		if err := clientgroupmember.ClientNameValidator(v); err != nil {
			return &ValidationError{Name: "client_name", err: fmt.Errorf(`ent: validator failed for field "ClientGroupMember.client_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ClientEmail(); !ok {
		return &ValidationError{Name: "client_email", err: errors.New(`ent: missing required field "ClientGroupMember.client_email"`)}
	}
	return nil
}

func (_c *ClientGroupMemberCreate) sqlSave(ctx context.Context) (*ClientGroupMember, error) {
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

func (_c *ClientGroupMemberCreate) createSpec() (*ClientGroupMember, *sqlgraph.CreateSpec) {
	var (
		_node = &ClientGroupMember{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(clientgroupmember.Table, sqlgraph.NewFieldSpec(clientgroupmember.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.GroupID(); ok {
		_spec.SetField(clientgroupmember.FieldGroupID, field.TypeInt, value)
		_node.GroupID = value
	}
	if value, ok := _c.mutation.ClientName(); ok {
		_spec.SetField(clientgroupmember.FieldClientName, field.TypeString, value)
		_node.ClientName = value
	}
	if value, ok := _c.mutation.ClientEmail(); ok {
		_spec.SetField(clientgroupmember.FieldClientEmail, field.TypeString, value)
		_node.ClientEmail = value
	}
	return _node, _spec
}

// ClientGroupMemberCreateBulk is the builder for creating many ClientGroupMember entities in bulk.
type ClientGroupMemberCreateBulk struct {
	config
	err      error
	builders []*ClientGroupMemberCreate
}

// Save creates the ClientGroupMember entities in the database.
func (_c *ClientGroupMemberCreateBulk) Save(ctx context.Context) ([]*ClientGroupMember, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ClientGroupMember, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ClientGroupMemberMutation)
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
func (_c *ClientGroupMemberCreateBulk) SaveX(ctx context.Context) []*ClientGroupMember {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ClientGroupMemberCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ClientGroupMemberCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
