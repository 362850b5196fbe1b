// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/apx-soporte/warranty-tracker/gen/ent/rmaitem"
	"github.com/google/uuid"
)

// RMAItemCreate is the builder for creating a RMAItem entity.
type RMAItemCreate struct {
	config
	mutation *RMAItemMutation
	hooks    []Hook
}

// SetRmaNumber sets the "rma_number" field.
func (_c *RMAItemCreate) SetRmaNumber(v string) *RMAItemCreate {
	_c.mutation.SetRmaNumber(v)
	return _c
}

// SetProduct sets the "product" field.
func (_c *RMAItemCreate) SetProduct(v string) *RMAItemCreate {
	_c.mutation.SetProduct(v)
	return _c
}

// SetNillableProduct sets the "product" field if the given value is not nil.
func (_c *RMAItemCreate) SetNillableProduct(v *string) *RMAItemCreate {
	if v != nil {
		_c.SetProduct(*v)
	}
	return _c
}

// SetSerial sets the "serial" field.
func (_c *RMAItemCreate) SetSerial(v string) *RMAItemCreate {
	_c.mutation.SetSerial(v)
	return _c
}

// SetNillableSerial sets the "serial" field if the given value is not nil.
func (_c *RMAItemCreate) SetNillableSerial(v *string) *RMAItemCreate {
	if v != nil {
		_c.SetSerial(*v)
	}
	return _c
}

// SetClientName sets the "client_name" field.
func (_c *RMAItemCreate) SetClientName(v string) *RMAItemCreate {
	_c.mutation.SetClientName(v)
	return _c
}

// SetNillableClientName sets the "client_name" field if the given value is not nil.
func (_c *RMAItemCreate) SetNillableClientName(v *string) *RMAItemCreate {
	if v != nil {
		_c.SetClientName(*v)
	}
	return _c
}

// SetClientEmail sets the "client_email" field.
func (_c *RMAItemCreate) SetClientEmail(v string) *RMAItemCreate {
	_c.mutation.SetClientEmail(v)
	return _c
}

// SetNillableClientEmail sets the "client_email" field if the given value is not nil.
func (_c *RMAItemCreate) SetNillableClientEmail(v *string) *RMAItemCreate {
	if v != nil {
		_c.SetClientEmail(*v)
	}
	return _c
}

// SetClientPhone sets the "client_phone" field.
func (_c *RMAItemCreate) SetClientPhone(v string) *RMAItemCreate {
	_c.mutation.SetClientPhone(v)
	return _c
}

// SetNillableClientPhone sets the "client_phone" field if the given value is not nil.
func (_c *RMAItemCreate) SetNillableClientPhone(v *string) *RMAItemCreate {
	if v != nil {
		_c.SetClientPhone(*v)
	}
	return _c
}

// SetDateReceived sets the "date_received" field.
func (_c *RMAItemCreate) SetDateReceived(v string) *RMAItemCreate {
	_c.mutation.SetDateReceived(v)
	return _c
}

// SetNillableDateReceived sets the "date_received" field if the given value is not nil.
func (_c *RMAItemCreate) SetNillableDateReceived(v *string) *RMAItemCreate {
	if v != nil {
		_c.SetDateReceived(*v)
	}
	return _c
}

// SetDatePickup sets the "date_pickup" field.
func (_c *RMAItemCreate) SetDatePickup(v string) *RMAItemCreate {
	_c.mutation.SetDatePickup(v)
	return _c
}

// SetNillableDatePickup sets the "date_pickup" field if the given value is not nil.
func (_c *RMAItemCreate) SetNillableDatePickup(v *string) *RMAItemCreate {
	if v != nil {
		_c.SetDatePickup(*v)
	}
	return _c
}

// SetDateSent sets the "date_sent" field.
func (_c *RMAItemCreate) SetDateSent(v string) *RMAItemCreate {
	_c.mutation.SetDateSent(v)
	return _c
}

// SetNillableDateSent sets the "date_sent" field if the given value is not nil.
func (_c *RMAItemCreate) SetNillableDateSent(v *string) *RMAItemCreate {
	if v != nil {
		_c.SetDateSent(*v)
	}
	return _c
}

// SetAveria sets the "averia" field.
func (_c *RMAItemCreate) SetAveria(v string) *RMAItemCreate {
	_c.mutation.SetAveria(v)
	return _c
}

// SetNillableAveria sets the "averia" field if the given value is not nil.
func (_c *RMAItemCreate) SetNillableAveria(v *string) *RMAItemCreate {
	if v != nil {
		_c.SetAveria(*v)
	}
	return _c
}

// SetObservaciones sets the "observaciones" field.
func (_c *RMAItemCreate) SetObservaciones(v string) *RMAItemCreate {
	_c.mutation.SetObservaciones(v)
	return _c
}

// SetNillableObservaciones sets the "observaciones" field if the given value is not nil.
func (_c *RMAItemCreate) SetNillableObservaciones(v *string) *RMAItemCreate {
	if v != nil {
		_c.SetObservaciones(*v)
	}
	return _c
}

// SetEstado sets the "estado" field.
func (_c *RMAItemCreate) SetEstado(v string) *RMAItemCreate {
	_c.mutation.SetEstado(v)
	return _c
}

// SetNillableEstado sets the "estado" field if the given value is not nil.
func (_c *RMAItemCreate) SetNillableEstado(v *string) *RMAItemCreate {
	if v != nil {
		_c.SetEstado(*v)
	}
	return _c
}

// SetHidden sets the "hidden" field.
func (_c *RMAItemCreate) SetHidden(v bool) *RMAItemCreate {
	_c.mutation.SetHidden(v)
	return _c
}

// SetNillableHidden sets the "hidden" field if the given value is not nil.
func (_c *RMAItemCreate) SetNillableHidden(v *bool) *RMAItemCreate {
	if v != nil {
		_c.SetHidden(*v)
	}
	return _c
}

// SetHiddenBy sets the "hidden_by" field.
func (_c *RMAItemCreate) SetHiddenBy(v string) *RMAItemCreate {
	_c.mutation.SetHiddenBy(v)
	return _c
}

// SetNillableHiddenBy sets the "hidden_by" field if the given value is not nil.
func (_c *RMAItemCreate) SetNillableHiddenBy(v *string) *RMAItemCreate {
	if v != nil {
		_c.SetHiddenBy(*v)
	}
	return _c
}

// SetHiddenAt sets the "hidden_at" field.
func (_c *RMAItemCreate) SetHiddenAt(v time.Time) *RMAItemCreate {
	_c.mutation.SetHiddenAt(v)
	return _c
}

// SetNillableHiddenAt sets the "hidden_at" field if the given value is not nil.
func (_c *RMAItemCreate) SetNillableHiddenAt(v *time.Time) *RMAItemCreate {
	if v != nil {
		_c.SetHiddenAt(*v)
	}
	return _c
}

// SetExcelRow sets the "excel_row" field.
func (_c *RMAItemCreate) SetExcelRow(v int) *RMAItemCreate {
	_c.mutation.SetExcelRow(v)
	return _c
}

// SetNillableExcelRow sets the "excel_row" field if the given value is not nil.
func (_c *RMAItemCreate) SetNillableExcelRow(v *int) *RMAItemCreate {
	if v != nil {
		_c.SetExcelRow(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *RMAItemCreate) SetCreatedAt(v time.Time) *RMAItemCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *RMAItemCreate) SetNillableCreatedAt(v *time.Time) *RMAItemCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *RMAItemCreate) SetID(v uuid.UUID) *RMAItemCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *RMAItemCreate) SetNillableID(v *uuid.UUID) *RMAItemCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the RMAItemMutation object of the builder.
func (_c *RMAItemCreate) Mutation() *RMAItemMutation {
	return _c.mutation
}

// Save creates the RMAItem in the database.
func (_c *RMAItemCreate) Save(ctx context.Context) (*RMAItem, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RMAItemCreate) SaveX(ctx context.Context) *RMAItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RMAItemCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RMAItemCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RMAItemCreate) defaults() {
	if _, ok := _c.mutation.Serial(); !ok {
		v := rmaitem.DefaultSerial
		_c.mutation.SetSerial(v)
	}
	if _, ok := _c.mutation.Estado(); !ok {
		v := rmaitem.DefaultEstado
		_c.mutation.SetEstado(v)
	}
	if _, ok := _c.mutation.Hidden(); !ok {
		v := rmaitem.DefaultHidden
		_c.mutation.SetHidden(v)
	}
	if _, ok := _c.mutation.ExcelRow(); !ok {
		v := rmaitem.DefaultExcelRow
		_c.mutation.SetExcelRow(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := rmaitem.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := rmaitem.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RMAItemCreate) check() error {
	if _, ok := _c.mutation.RmaNumber(); !ok {
		return &ValidationError{Name: "rma_number", err: errors.New(`ent: missing required field "RMAItem.rma_number"`)}
	}
	if v, ok := _c.mutation.RmaNumber(); ok {
		if err := rmaitem.RmaNumberValidator(v); err != nil {
			return &ValidationError{Name: "rma_number", err: fmt.Errorf(`ent: validator failed for field "RMAItem.rma_number": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Serial(); !ok {
		return &ValidationError{Name: "serial", err: errors.New(`ent: missing required field "RMAItem.serial"`)}
	}
	if _, ok := _c.mutation.Estado(); !ok {
		return &ValidationError{Name: "estado", err: errors.New(`ent: missing required field "RMAItem.estado"`)}
	}
	if v, ok := _c.mutation.Estado(); ok {
		if err := rmaitem.EstadoValidator(v); err != nil {
			return &ValidationError{Name: "estado", err: fmt.Errorf(`ent: validator failed for field "RMAItem.estado": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Hidden(); !ok {
		return &ValidationError{Name: "hidden", err: errors.New(`ent: missing required field "RMAItem.hidden"`)}
	}
	if _, ok := _c.mutation.ExcelRow(); !ok {
		return &ValidationError{Name: "excel_row", err: errors.New(`ent: missing required field "RMAItem.excel_row"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "RMAItem.created_at"`)}
	}
	return nil
}

func (_c *RMAItemCreate) sqlSave(ctx context.Context) (*RMAItem, error) {
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

func (_c *RMAItemCreate) createSpec() (*RMAItem, *sqlgraph.CreateSpec) {
	var (
		_node = &RMAItem{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(rmaitem.Table, sqlgraph.NewFieldSpec(rmaitem.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.RmaNumber(); ok {
		_spec.SetField(rmaitem.FieldRmaNumber, field.TypeString, value)
		_node.RmaNumber = value
	}
	if value, ok := _c.mutation.Product(); ok {
		_spec.SetField(rmaitem.FieldProduct, field.TypeString, value)
		_node.Product = &value
	}
	if value, ok := _c.mutation.Serial(); ok {
		_spec.SetField(rmaitem.FieldSerial, field.TypeString, value)
		_node.Serial = value
	}
	if value, ok := _c.mutation.ClientName(); ok {
		_spec.SetField(rmaitem.FieldClientName, field.TypeString, value)
		_node.ClientName = &value
	}
	if value, ok := _c.mutation.ClientEmail(); ok {
		_spec.SetField(rmaitem.FieldClientEmail, field.TypeString, value)
		_node.ClientEmail = &value
	}
	if value, ok := _c.mutation.ClientPhone(); ok {
		_spec.SetField(rmaitem.FieldClientPhone, field.TypeString, value)
		_node.ClientPhone = &value
	}
	if value, ok := _c.mutation.DateReceived(); ok {
		_spec.SetField(rmaitem.FieldDateReceived, field.TypeString, value)
		_node.DateReceived = &value
	}
	if value, ok := _c.mutation.DatePickup(); ok {
		_spec.SetField(rmaitem.FieldDatePickup, field.TypeString, value)
		_node.DatePickup = &value
	}
	if value, ok := _c.mutation.DateSent(); ok {
		_spec.SetField(rmaitem.FieldDateSent, field.TypeString, value)
		_node.DateSent = &value
	}
	if value, ok := _c.mutation.Averia(); ok {
		_spec.SetField(rmaitem.FieldAveria, field.TypeString, value)
		_node.Averia = &value
	}
	if value, ok := _c.mutation.Observaciones(); ok {
		_spec.SetField(rmaitem.FieldObservaciones, field.TypeString, value)
		_node.Observaciones = &value
	}
	if value, ok := _c.mutation.Estado(); ok {
		_spec.SetField(rmaitem.FieldEstado, field.TypeString, value)
		_node.Estado = value
	}
	if value, ok := _c.mutation.Hidden(); ok {
		_spec.SetField(rmaitem.FieldHidden, field.TypeBool, value)
		_node.Hidden = value
	}
	if value, ok := _c.mutation.HiddenBy(); ok {
		_spec.SetField(rmaitem.FieldHiddenBy, field.TypeString, value)
		_node.HiddenBy = &value
	}
	if value, ok := _c.mutation.HiddenAt(); ok {
		_spec.SetField(rmaitem.FieldHiddenAt, field.TypeTime, value)
		_node.HiddenAt = &value
	}
	if value, ok := _c.mutation.ExcelRow(); ok {
		_spec.SetField(rmaitem.FieldExcelRow, field.TypeInt, value)
		_node.ExcelRow = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(rmaitem.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// RMAItemCreateBulk is the builder for creating many RMAItem entities in bulk.
type RMAItemCreateBulk struct {
	config
	err      error
	builders []*RMAItemCreate
}

// Save creates the RMAItem entities in the database.
func (_c *RMAItemCreateBulk) Save(ctx context.Context) ([]*RMAItem, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*RMAItem, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RMAItemMutation)
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
func (_c *RMAItemCreateBulk) SaveX(ctx context.Context) []*RMAItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RMAItemCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RMAItemCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
