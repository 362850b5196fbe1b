// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/apx-soporte/warranty-tracker/gen/ent/clientgroup"
	"github.com/apx-soporte/warranty-tracker/gen/ent/clientgroupmember"
	"github.com/apx-soporte/warranty-tracker/gen/ent/predicate"
	"github.com/apx-soporte/warranty-tracker/gen/ent/rmaitem"
	"github.com/apx-soporte/warranty-tracker/gen/ent/serialwarranty"
	"github.com/apx-soporte/warranty-tracker/gen/ent/setting"
	"github.com/apx-soporte/warranty-tracker/gen/ent/specialrmaitem"
	"github.com/google/uuid"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeClientGroup       = "ClientGroup"
	TypeClientGroupMember = "ClientGroupMember"
	TypeRMAItem           = "RMAItem"
	TypeSerialWarranty    = "SerialWarranty"
	TypeSetting           = "Setting"
	TypeSpecialRMAItem    = "SpecialRMAItem"
)

// ClientGroupMutation represents an operation that mutates the ClientGroup nodes in the graph.
type ClientGroupMutation struct {
	config
	op              Op
	typ             string
	id              *int
	canonical_name  *string
	canonical_email *string
	canonical_phone *string
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*ClientGroup, error)
	predicates      []predicate.ClientGroup
}

var _ ent.Mutation = (*ClientGroupMutation)(nil)

// clientgroupOption allows management of the mutation configuration using functional options.
type clientgroupOption func(*ClientGroupMutation)

// newClientGroupMutation creates new mutation for the ClientGroup entity.
func newClientGroupMutation(c config, op Op, opts ...clientgroupOption) *ClientGroupMutation {
	m := &ClientGroupMutation{
		config:        c,
		op:            op,
		typ:           TypeClientGroup,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withClientGroupID sets the ID field of the mutation.
func withClientGroupID(id int) clientgroupOption {
	return func(m *ClientGroupMutation) {
		var (
			err   error
			once  sync.Once
			value *ClientGroup
		)
		m.oldValue = func(ctx context.Context) (*ClientGroup, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ClientGroup.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withClientGroup sets the old ClientGroup of the mutation.
func withClientGroup(node *ClientGroup) clientgroupOption {
	return func(m *ClientGroupMutation) {
		m.oldValue = func(context.Context) (*ClientGroup, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ClientGroupMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ClientGroupMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ClientGroupMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ClientGroupMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ClientGroup.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCanonicalName sets the "canonical_name" field.
func (m *ClientGroupMutation) SetCanonicalName(s string) {
	m.canonical_name = &s
}

// CanonicalName returns the value of the "canonical_name" field in the mutation.
func (m *ClientGroupMutation) CanonicalName() (r string, exists bool) {
	v := m.canonical_name
	if v == nil {
		return
	}
	return *v, true
}

// OldCanonicalName returns the old "canonical_name" field's value of the ClientGroup entity.
// If the ClientGroup object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClientGroupMutation) OldCanonicalName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCanonicalName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCanonicalName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCanonicalName: %w", err)
	}
	return oldValue.CanonicalName, nil
}

// ResetCanonicalName resets all changes to the "canonical_name" field.
func (m *ClientGroupMutation) ResetCanonicalName() {
	m.canonical_name = nil
}

// SetCanonicalEmail sets the "canonical_email" field.
func (m *ClientGroupMutation) SetCanonicalEmail(s string) {
	m.canonical_email = &s
}

// CanonicalEmail returns the value of the "canonical_email" field in the mutation.
func (m *ClientGroupMutation) CanonicalEmail() (r string, exists bool) {
	v := m.canonical_email
	if v == nil {
		return
	}
	return *v, true
}

// OldCanonicalEmail returns the old "canonical_email" field's value of the ClientGroup entity.
// If the ClientGroup object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClientGroupMutation) OldCanonicalEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCanonicalEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCanonicalEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCanonicalEmail: %w", err)
	}
	return oldValue.CanonicalEmail, nil
}

// ResetCanonicalEmail resets all changes to the "canonical_email" field.
func (m *ClientGroupMutation) ResetCanonicalEmail() {
	m.canonical_email = nil
}

// SetCanonicalPhone sets the "canonical_phone" field.
func (m *ClientGroupMutation) SetCanonicalPhone(s string) {
	m.canonical_phone = &s
}

// CanonicalPhone returns the value of the "canonical_phone" field in the mutation.
func (m *ClientGroupMutation) CanonicalPhone() (r string, exists bool) {
	v := m.canonical_phone
	if v == nil {
		return
	}
	return *v, true
}

// OldCanonicalPhone returns the old "canonical_phone" field's value of the ClientGroup entity.
// If the ClientGroup object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClientGroupMutation) OldCanonicalPhone(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCanonicalPhone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCanonicalPhone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCanonicalPhone: %w", err)
	}
	return oldValue.CanonicalPhone, nil
}

// ResetCanonicalPhone resets all changes to the "canonical_phone" field.
func (m *ClientGroupMutation) ResetCanonicalPhone() {
	m.canonical_phone = nil
}

// Where appends a list predicates to the ClientGroupMutation builder.
func (m *ClientGroupMutation) Where(ps ...predicate.ClientGroup) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ClientGroupMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ClientGroupMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ClientGroup, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ClientGroupMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ClientGroupMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ClientGroup).
func (m *ClientGroupMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ClientGroupMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.canonical_name != nil {
		fields = append(fields, clientgroup.FieldCanonicalName)
	}
	if m.canonical_email != nil {
		fields = append(fields, clientgroup.FieldCanonicalEmail)
	}
	if m.canonical_phone != nil {
		fields = append(fields, clientgroup.FieldCanonicalPhone)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ClientGroupMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case clientgroup.FieldCanonicalName:
		return m.CanonicalName()
	case clientgroup.FieldCanonicalEmail:
		return m.CanonicalEmail()
	case clientgroup.FieldCanonicalPhone:
		return m.CanonicalPhone()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ClientGroupMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case clientgroup.FieldCanonicalName:
		return m.OldCanonicalName(ctx)
	case clientgroup.FieldCanonicalEmail:
		return m.OldCanonicalEmail(ctx)
	case clientgroup.FieldCanonicalPhone:
		return m.OldCanonicalPhone(ctx)
	}
	return nil, fmt.Errorf("unknown ClientGroup field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ClientGroupMutation) SetField(name string, value ent.Value) error {
	switch name {
	case clientgroup.FieldCanonicalName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCanonicalName(v)
		return nil
	case clientgroup.FieldCanonicalEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCanonicalEmail(v)
		return nil
	case clientgroup.FieldCanonicalPhone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCanonicalPhone(v)
		return nil
	}
	return fmt.Errorf("unknown ClientGroup field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ClientGroupMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ClientGroupMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ClientGroupMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ClientGroup numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ClientGroupMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ClientGroupMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ClientGroupMutation) ClearField(name string) error {
	return fmt.Errorf("unknown ClientGroup nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ClientGroupMutation) ResetField(name string) error {
	switch name {
	case clientgroup.FieldCanonicalName:
		m.ResetCanonicalName()
		return nil
	case clientgroup.FieldCanonicalEmail:
		m.ResetCanonicalEmail()
		return nil
	case clientgroup.FieldCanonicalPhone:
		m.ResetCanonicalPhone()
		return nil
	}
	return fmt.Errorf("unknown ClientGroup field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ClientGroupMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ClientGroupMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ClientGroupMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ClientGroupMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ClientGroupMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ClientGroupMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ClientGroupMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ClientGroup unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ClientGroupMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ClientGroup edge %s", name)
}

// ClientGroupMemberMutation represents an operation that mutates the ClientGroupMember nodes in the graph.
type ClientGroupMemberMutation struct {
	config
	op            Op
	typ           string
	id            *int
	group_id      *int
	addgroup_id   *int
	client_name   *string
	client_email  *string
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*ClientGroupMember, error)
	predicates    []predicate.ClientGroupMember
}

var _ ent.Mutation = (*ClientGroupMemberMutation)(nil)

// clientgroupmemberOption allows management of the mutation configuration using functional options.
type clientgroupmemberOption func(*ClientGroupMemberMutation)

// newClientGroupMemberMutation creates new mutation for the ClientGroupMember entity.
func newClientGroupMemberMutation(c config, op Op, opts ...clientgroupmemberOption) *ClientGroupMemberMutation {
	m := &ClientGroupMemberMutation{
		config:        c,
		op:            op,
		typ:           TypeClientGroupMember,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withClientGroupMemberID sets the ID field of the mutation.
func withClientGroupMemberID(id int) clientgroupmemberOption {
	return func(m *ClientGroupMemberMutation) {
		var (
			err   error
			once  sync.Once
			value *ClientGroupMember
		)
		m.oldValue = func(ctx context.Context) (*ClientGroupMember, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ClientGroupMember.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withClientGroupMember sets the old ClientGroupMember of the mutation.
func withClientGroupMember(node *ClientGroupMember) clientgroupmemberOption {
	return func(m *ClientGroupMemberMutation) {
		m.oldValue = func(context.Context) (*ClientGroupMember, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ClientGroupMemberMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ClientGroupMemberMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ClientGroupMemberMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ClientGroupMemberMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ClientGroupMember.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetGroupID sets the "group_id" field.
func (m *ClientGroupMemberMutation) SetGroupID(i int) {
	m.group_id = &i
	m.addgroup_id = nil
}

// GroupID returns the value of the "group_id" field in the mutation.
func (m *ClientGroupMemberMutation) GroupID() (r int, exists bool) {
	v := m.group_id
	if v == nil {
		return
	}
	return *v, true
}

// OldGroupID returns the old "group_id" field's value of the ClientGroupMember entity.
// If the ClientGroupMember object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClientGroupMemberMutation) OldGroupID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGroupID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGroupID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGroupID: %w", err)
	}
	return oldValue.GroupID, nil
}

// AddGroupID adds i to the "group_id" field.
func (m *ClientGroupMemberMutation) AddGroupID(i int) {
	if m.addgroup_id != nil {
		*m.addgroup_id += i
	} else {
		m.addgroup_id = &i
	}
}

// AddedGroupID returns the value that was added to the "group_id" field in this mutation.
func (m *ClientGroupMemberMutation) AddedGroupID() (r int, exists bool) {
	v := m.addgroup_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetGroupID resets all changes to the "group_id" field.
func (m *ClientGroupMemberMutation) ResetGroupID() {
	m.group_id = nil
	m.addgroup_id = nil
}

// SetClientName sets the "client_name" field.
func (m *ClientGroupMemberMutation) SetClientName(s string) {
	m.client_name = &s
}

// ClientName returns the value of the "client_name" field in the mutation.
func (m *ClientGroupMemberMutation) ClientName() (r string, exists bool) {
	v := m.client_name
	if v == nil {
		return
	}
	return *v, true
}

// OldClientName returns the old "client_name" field's value of the ClientGroupMember entity.
// If the ClientGroupMember object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClientGroupMemberMutation) OldClientName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClientName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClientName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClientName: %w", err)
	}
	return oldValue.ClientName, nil
}

// ResetClientName resets all changes to the "client_name" field.
func (m *ClientGroupMemberMutation) ResetClientName() {
	m.client_name = nil
}

// SetClientEmail sets the "client_email" field.
func (m *ClientGroupMemberMutation) SetClientEmail(s string) {
	m.client_email = &s
}

// ClientEmail returns the value of the "client_email" field in the mutation.
func (m *ClientGroupMemberMutation) ClientEmail() (r string, exists bool) {
	v := m.client_email
	if v == nil {
		return
	}
	return *v, true
}

// OldClientEmail returns the old "client_email" field's value of the ClientGroupMember entity.
// If the ClientGroupMember object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClientGroupMemberMutation) OldClientEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClientEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClientEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClientEmail: %w", err)
	}
	return oldValue.ClientEmail, nil
}

// ResetClientEmail resets all changes to the "client_email" field.
func (m *ClientGroupMemberMutation) ResetClientEmail() {
	m.client_email = nil
}

// Where appends a list predicates to the ClientGroupMemberMutation builder.
func (m *ClientGroupMemberMutation) Where(ps ...predicate.ClientGroupMember) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ClientGroupMemberMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ClientGroupMemberMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ClientGroupMember, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ClientGroupMemberMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ClientGroupMemberMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ClientGroupMember).
func (m *ClientGroupMemberMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ClientGroupMemberMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.group_id != nil {
		fields = append(fields, clientgroupmember.FieldGroupID)
	}
	if m.client_name != nil {
		fields = append(fields, clientgroupmember.FieldClientName)
	}
	if m.client_email != nil {
		fields = append(fields, clientgroupmember.FieldClientEmail)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ClientGroupMemberMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case clientgroupmember.FieldGroupID:
		return m.GroupID()
	case clientgroupmember.FieldClientName:
		return m.ClientName()
	case clientgroupmember.FieldClientEmail:
		return m.ClientEmail()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ClientGroupMemberMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case clientgroupmember.FieldGroupID:
		return m.OldGroupID(ctx)
	case clientgroupmember.FieldClientName:
		return m.OldClientName(ctx)
	case clientgroupmember.FieldClientEmail:
		return m.OldClientEmail(ctx)
	}
	return nil, fmt.Errorf("unknown ClientGroupMember field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ClientGroupMemberMutation) SetField(name string, value ent.Value) error {
	switch name {
	case clientgroupmember.FieldGroupID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGroupID(v)
		return nil
	case clientgroupmember.FieldClientName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClientName(v)
		return nil
	case clientgroupmember.FieldClientEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClientEmail(v)
		return nil
	}
	return fmt.Errorf("unknown ClientGroupMember field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ClientGroupMemberMutation) AddedFields() []string {
	var fields []string
	if m.addgroup_id != nil {
		fields = append(fields, clientgroupmember.FieldGroupID)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ClientGroupMemberMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case clientgroupmember.FieldGroupID:
		return m.AddedGroupID()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ClientGroupMemberMutation) AddField(name string, value ent.Value) error {
	switch name {
	case clientgroupmember.FieldGroupID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddGroupID(v)
		return nil
	}
	return fmt.Errorf("unknown ClientGroupMember numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ClientGroupMemberMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ClientGroupMemberMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ClientGroupMemberMutation) ClearField(name string) error {
	return fmt.Errorf("unknown ClientGroupMember nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ClientGroupMemberMutation) ResetField(name string) error {
	switch name {
	case clientgroupmember.FieldGroupID:
		m.ResetGroupID()
		return nil
	case clientgroupmember.FieldClientName:
		m.ResetClientName()
		return nil
	case clientgroupmember.FieldClientEmail:
		m.ResetClientEmail()
		return nil
	}
	return fmt.Errorf("unknown ClientGroupMember field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ClientGroupMemberMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ClientGroupMemberMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ClientGroupMemberMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ClientGroupMemberMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ClientGroupMemberMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ClientGroupMemberMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ClientGroupMemberMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ClientGroupMember unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ClientGroupMemberMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ClientGroupMember edge %s", name)
}

// RMAItemMutation represents an operation that mutates the RMAItem nodes in the graph.
type RMAItemMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	rma_number    *string
	product       *string
	serial        *string
	client_name   *string
	client_email  *string
	client_phone  *string
	date_received *string
	date_pickup   *string
	date_sent     *string
	averia        *string
	observaciones *string
	estado        *string
	hidden        *bool
	hidden_by     *string
	hidden_at     *time.Time
	excel_row     *int
	addexcel_row  *int
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*RMAItem, error)
	predicates    []predicate.RMAItem
}

var _ ent.Mutation = (*RMAItemMutation)(nil)

// rmaitemOption allows management of the mutation configuration using functional options.
type rmaitemOption func(*RMAItemMutation)

// newRMAItemMutation creates new mutation for the RMAItem entity.
func newRMAItemMutation(c config, op Op, opts ...rmaitemOption) *RMAItemMutation {
	m := &RMAItemMutation{
		config:        c,
		op:            op,
		typ:           TypeRMAItem,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRMAItemID sets the ID field of the mutation.
func withRMAItemID(id uuid.UUID) rmaitemOption {
	return func(m *RMAItemMutation) {
		var (
			err   error
			once  sync.Once
			value *RMAItem
		)
		m.oldValue = func(ctx context.Context) (*RMAItem, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().RMAItem.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRMAItem sets the old RMAItem of the mutation.
func withRMAItem(node *RMAItem) rmaitemOption {
	return func(m *RMAItemMutation) {
		m.oldValue = func(context.Context) (*RMAItem, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RMAItemMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RMAItemMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of RMAItem entities.
func (m *RMAItemMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RMAItemMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RMAItemMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().RMAItem.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRmaNumber sets the "rma_number" field.
func (m *RMAItemMutation) SetRmaNumber(s string) {
	m.rma_number = &s
}

// RmaNumber returns the value of the "rma_number" field in the mutation.
func (m *RMAItemMutation) RmaNumber() (r string, exists bool) {
	v := m.rma_number
	if v == nil {
		return
	}
	return *v, true
}

// OldRmaNumber returns the old "rma_number" field's value of the RMAItem entity.
// If the RMAItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RMAItemMutation) OldRmaNumber(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRmaNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRmaNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRmaNumber: %w", err)
	}
	return oldValue.RmaNumber, nil
}

// ResetRmaNumber resets all changes to the "rma_number" field.
func (m *RMAItemMutation) ResetRmaNumber() {
	m.rma_number = nil
}

// SetProduct sets the "product" field.
func (m *RMAItemMutation) SetProduct(s string) {
	m.product = &s
}

// Product returns the value of the "product" field in the mutation.
func (m *RMAItemMutation) Product() (r string, exists bool) {
	v := m.product
	if v == nil {
		return
	}
	return *v, true
}

// OldProduct returns the old "product" field's value of the RMAItem entity.
// If the RMAItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RMAItemMutation) OldProduct(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProduct is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProduct requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProduct: %w", err)
	}
	return oldValue.Product, nil
}

// ClearProduct clears the value of the "product" field.
func (m *RMAItemMutation) ClearProduct() {
	m.product = nil
	m.clearedFields[rmaitem.FieldProduct] = struct{}{}
}

// ProductCleared returns if the "product" field was cleared in this mutation.
func (m *RMAItemMutation) ProductCleared() bool {
	_, ok := m.clearedFields[rmaitem.FieldProduct]
	return ok
}

// ResetProduct resets all changes to the "product" field.
func (m *RMAItemMutation) ResetProduct() {
	m.product = nil
	delete(m.clearedFields, rmaitem.FieldProduct)
}

// SetSerial sets the "serial" field.
func (m *RMAItemMutation) SetSerial(s string) {
	m.serial = &s
}

// Serial returns the value of the "serial" field in the mutation.
func (m *RMAItemMutation) Serial() (r string, exists bool) {
	v := m.serial
	if v == nil {
		return
	}
	return *v, true
}

// OldSerial returns the old "serial" field's value of the RMAItem entity.
// If the RMAItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RMAItemMutation) OldSerial(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSerial is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSerial requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSerial: %w", err)
	}
	return oldValue.Serial, nil
}

// ResetSerial resets all changes to the "serial" field.
func (m *RMAItemMutation) ResetSerial() {
	m.serial = nil
}

// SetClientName sets the "client_name" field.
func (m *RMAItemMutation) SetClientName(s string) {
	m.client_name = &s
}

// ClientName returns the value of the "client_name" field in the mutation.
func (m *RMAItemMutation) ClientName() (r string, exists bool) {
	v := m.client_name
	if v == nil {
		return
	}
	return *v, true
}

// OldClientName returns the old "client_name" field's value of the RMAItem entity.
// If the RMAItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RMAItemMutation) OldClientName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClientName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClientName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClientName: %w", err)
	}
	return oldValue.ClientName, nil
}

// ClearClientName clears the value of the "client_name" field.
func (m *RMAItemMutation) ClearClientName() {
	m.client_name = nil
	m.clearedFields[rmaitem.FieldClientName] = struct{}{}
}

// ClientNameCleared returns if the "client_name" field was cleared in this mutation.
func (m *RMAItemMutation) ClientNameCleared() bool {
	_, ok := m.clearedFields[rmaitem.FieldClientName]
	return ok
}

// ResetClientName resets all changes to the "client_name" field.
func (m *RMAItemMutation) ResetClientName() {
	m.client_name = nil
	delete(m.clearedFields, rmaitem.FieldClientName)
}

// SetClientEmail sets the "client_email" field.
func (m *RMAItemMutation) SetClientEmail(s string) {
	m.client_email = &s
}

// ClientEmail returns the value of the "client_email" field in the mutation.
func (m *RMAItemMutation) ClientEmail() (r string, exists bool) {
	v := m.client_email
	if v == nil {
		return
	}
	return *v, true
}

// OldClientEmail returns the old "client_email" field's value of the RMAItem entity.
// If the RMAItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RMAItemMutation) OldClientEmail(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClientEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClientEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClientEmail: %w", err)
	}
	return oldValue.ClientEmail, nil
}

// ClearClientEmail clears the value of the "client_email" field.
func (m *RMAItemMutation) ClearClientEmail() {
	m.client_email = nil
	m.clearedFields[rmaitem.FieldClientEmail] = struct{}{}
}

// ClientEmailCleared returns if the "client_email" field was cleared in this mutation.
func (m *RMAItemMutation) ClientEmailCleared() bool {
	_, ok := m.clearedFields[rmaitem.FieldClientEmail]
	return ok
}

// ResetClientEmail resets all changes to the "client_email" field.
func (m *RMAItemMutation) ResetClientEmail() {
	m.client_email = nil
	delete(m.clearedFields, rmaitem.FieldClientEmail)
}

// SetClientPhone sets the "client_phone" field.
func (m *RMAItemMutation) SetClientPhone(s string) {
	m.client_phone = &s
}

// ClientPhone returns the value of the "client_phone" field in the mutation.
func (m *RMAItemMutation) ClientPhone() (r string, exists bool) {
	v := m.client_phone
	if v == nil {
		return
	}
	return *v, true
}

// OldClientPhone returns the old "client_phone" field's value of the RMAItem entity.
// If the RMAItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RMAItemMutation) OldClientPhone(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClientPhone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClientPhone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClientPhone: %w", err)
	}
	return oldValue.ClientPhone, nil
}

// ClearClientPhone clears the value of the "client_phone" field.
func (m *RMAItemMutation) ClearClientPhone() {
	m.client_phone = nil
	m.clearedFields[rmaitem.FieldClientPhone] = struct{}{}
}

// ClientPhoneCleared returns if the "client_phone" field was cleared in this mutation.
func (m *RMAItemMutation) ClientPhoneCleared() bool {
	_, ok := m.clearedFields[rmaitem.FieldClientPhone]
	return ok
}

// ResetClientPhone resets all changes to the "client_phone" field.
func (m *RMAItemMutation) ResetClientPhone() {
	m.client_phone = nil
	delete(m.clearedFields, rmaitem.FieldClientPhone)
}

// SetDateReceived sets the "date_received" field.
func (m *RMAItemMutation) SetDateReceived(s string) {
	m.date_received = &s
}

// DateReceived returns the value of the "date_received" field in the mutation.
func (m *RMAItemMutation) DateReceived() (r string, exists bool) {
	v := m.date_received
	if v == nil {
		return
	}
	return *v, true
}

// OldDateReceived returns the old "date_received" field's value of the RMAItem entity.
// If the RMAItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RMAItemMutation) OldDateReceived(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDateReceived is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDateReceived requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDateReceived: %w", err)
	}
	return oldValue.DateReceived, nil
}

// ClearDateReceived clears the value of the "date_received" field.
func (m *RMAItemMutation) ClearDateReceived() {
	m.date_received = nil
	m.clearedFields[rmaitem.FieldDateReceived] = struct{}{}
}

// DateReceivedCleared returns if the "date_received" field was cleared in this mutation.
func (m *RMAItemMutation) DateReceivedCleared() bool {
	_, ok := m.clearedFields[rmaitem.FieldDateReceived]
	return ok
}

// ResetDateReceived resets all changes to the "date_received" field.
func (m *RMAItemMutation) ResetDateReceived() {
	m.date_received = nil
	delete(m.clearedFields, rmaitem.FieldDateReceived)
}

// SetDatePickup sets the "date_pickup" field.
func (m *RMAItemMutation) SetDatePickup(s string) {
	m.date_pickup = &s
}

// DatePickup returns the value of the "date_pickup" field in the mutation.
func (m *RMAItemMutation) DatePickup() (r string, exists bool) {
	v := m.date_pickup
	if v == nil {
		return
	}
	return *v, true
}

// OldDatePickup returns the old "date_pickup" field's value of the RMAItem entity.
// If the RMAItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RMAItemMutation) OldDatePickup(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDatePickup is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDatePickup requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDatePickup: %w", err)
	}
	return oldValue.DatePickup, nil
}

// ClearDatePickup clears the value of the "date_pickup" field.
func (m *RMAItemMutation) ClearDatePickup() {
	m.date_pickup = nil
	m.clearedFields[rmaitem.FieldDatePickup] = struct{}{}
}

// DatePickupCleared returns if the "date_pickup" field was cleared in this mutation.
func (m *RMAItemMutation) DatePickupCleared() bool {
	_, ok := m.clearedFields[rmaitem.FieldDatePickup]
	return ok
}

// ResetDatePickup resets all changes to the "date_pickup" field.
func (m *RMAItemMutation) ResetDatePickup() {
	m.date_pickup = nil
	delete(m.clearedFields, rmaitem.FieldDatePickup)
}

// SetDateSent sets the "date_sent" field.
func (m *RMAItemMutation) SetDateSent(s string) {
	m.date_sent = &s
}

// DateSent returns the value of the "date_sent" field in the mutation.
func (m *RMAItemMutation) DateSent() (r string, exists bool) {
	v := m.date_sent
	if v == nil {
		return
	}
	return *v, true
}

// OldDateSent returns the old "date_sent" field's value of the RMAItem entity.
// If the RMAItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RMAItemMutation) OldDateSent(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDateSent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDateSent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDateSent: %w", err)
	}
	return oldValue.DateSent, nil
}

// ClearDateSent clears the value of the "date_sent" field.
func (m *RMAItemMutation) ClearDateSent() {
	m.date_sent = nil
	m.clearedFields[rmaitem.FieldDateSent] = struct{}{}
}

// DateSentCleared returns if the "date_sent" field was cleared in this mutation.
func (m *RMAItemMutation) DateSentCleared() bool {
	_, ok := m.clearedFields[rmaitem.FieldDateSent]
	return ok
}

// ResetDateSent resets all changes to the "date_sent" field.
func (m *RMAItemMutation) ResetDateSent() {
	m.date_sent = nil
	delete(m.clearedFields, rmaitem.FieldDateSent)
}

// SetAveria sets the "averia" field.
func (m *RMAItemMutation) SetAveria(s string) {
	m.averia = &s
}

// Averia returns the value of the "averia" field in the mutation.
func (m *RMAItemMutation) Averia() (r string, exists bool) {
	v := m.averia
	if v == nil {
		return
	}
	return *v, true
}

// OldAveria returns the old "averia" field's value of the RMAItem entity.
// If the RMAItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RMAItemMutation) OldAveria(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAveria is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAveria requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAveria: %w", err)
	}
	return oldValue.Averia, nil
}

// ClearAveria clears the value of the "averia" field.
func (m *RMAItemMutation) ClearAveria() {
	m.averia = nil
	m.clearedFields[rmaitem.FieldAveria] = struct{}{}
}

// AveriaCleared returns if the "averia" field was cleared in this mutation.
func (m *RMAItemMutation) AveriaCleared() bool {
	_, ok := m.clearedFields[rmaitem.FieldAveria]
	return ok
}

// ResetAveria resets all changes to the "averia" field.
func (m *RMAItemMutation) ResetAveria() {
	m.averia = nil
	delete(m.clearedFields, rmaitem.FieldAveria)
}

// SetObservaciones sets the "observaciones" field.
func (m *RMAItemMutation) SetObservaciones(s string) {
	m.observaciones = &s
}

// Observaciones returns the value of the "observaciones" field in the mutation.
func (m *RMAItemMutation) Observaciones() (r string, exists bool) {
	v := m.observaciones
	if v == nil {
		return
	}
	return *v, true
}

// OldObservaciones returns the old "observaciones" field's value of the RMAItem entity.
// If the RMAItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RMAItemMutation) OldObservaciones(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldObservaciones is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldObservaciones requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldObservaciones: %w", err)
	}
	return oldValue.Observaciones, nil
}

// ClearObservaciones clears the value of the "observaciones" field.
func (m *RMAItemMutation) ClearObservaciones() {
	m.observaciones = nil
	m.clearedFields[rmaitem.FieldObservaciones] = struct{}{}
}

// ObservacionesCleared returns if the "observaciones" field was cleared in this mutation.
func (m *RMAItemMutation) ObservacionesCleared() bool {
	_, ok := m.clearedFields[rmaitem.FieldObservaciones]
	return ok
}

// ResetObservaciones resets all changes to the "observaciones" field.
func (m *RMAItemMutation) ResetObservaciones() {
	m.observaciones = nil
	delete(m.clearedFields, rmaitem.FieldObservaciones)
}

// SetEstado sets the "estado" field.
func (m *RMAItemMutation) SetEstado(s string) {
	m.estado = &s
}

// Estado returns the value of the "estado" field in the mutation.
func (m *RMAItemMutation) Estado() (r string, exists bool) {
	v := m.estado
	if v == nil {
		return
	}
	return *v, true
}

// OldEstado returns the old "estado" field's value of the RMAItem entity.
// If the RMAItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RMAItemMutation) OldEstado(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEstado is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEstado requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEstado: %w", err)
	}
	return oldValue.Estado, nil
}

// ResetEstado resets all changes to the "estado" field.
func (m *RMAItemMutation) ResetEstado() {
	m.estado = nil
}

// SetHidden sets the "hidden" field.
func (m *RMAItemMutation) SetHidden(b bool) {
	m.hidden = &b
}

// Hidden returns the value of the "hidden" field in the mutation.
func (m *RMAItemMutation) Hidden() (r bool, exists bool) {
	v := m.hidden
	if v == nil {
		return
	}
	return *v, true
}

// OldHidden returns the old "hidden" field's value of the RMAItem entity.
// If the RMAItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RMAItemMutation) OldHidden(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHidden is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHidden requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHidden: %w", err)
	}
	return oldValue.Hidden, nil
}

// ResetHidden resets all changes to the "hidden" field.
func (m *RMAItemMutation) ResetHidden() {
	m.hidden = nil
}

// SetHiddenBy sets the "hidden_by" field.
func (m *RMAItemMutation) SetHiddenBy(s string) {
	m.hidden_by = &s
}

// HiddenBy returns the value of the "hidden_by" field in the mutation.
func (m *RMAItemMutation) HiddenBy() (r string, exists bool) {
	v := m.hidden_by
	if v == nil {
		return
	}
	return *v, true
}

// OldHiddenBy returns the old "hidden_by" field's value of the RMAItem entity.
// If the RMAItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RMAItemMutation) OldHiddenBy(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHiddenBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHiddenBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHiddenBy: %w", err)
	}
	return oldValue.HiddenBy, nil
}

// ClearHiddenBy clears the value of the "hidden_by" field.
func (m *RMAItemMutation) ClearHiddenBy() {
	m.hidden_by = nil
	m.clearedFields[rmaitem.FieldHiddenBy] = struct{}{}
}

// HiddenByCleared returns if the "hidden_by" field was cleared in this mutation.
func (m *RMAItemMutation) HiddenByCleared() bool {
	_, ok := m.clearedFields[rmaitem.FieldHiddenBy]
	return ok
}

// ResetHiddenBy resets all changes to the "hidden_by" field.
func (m *RMAItemMutation) ResetHiddenBy() {
	m.hidden_by = nil
	delete(m.clearedFields, rmaitem.FieldHiddenBy)
}

// SetHiddenAt sets the "hidden_at" field.
func (m *RMAItemMutation) SetHiddenAt(t time.Time) {
	m.hidden_at = &t
}

// HiddenAt returns the value of the "hidden_at" field in the mutation.
func (m *RMAItemMutation) HiddenAt() (r time.Time, exists bool) {
	v := m.hidden_at
	if v == nil {
		return
	}
	return *v, true
}

// OldHiddenAt returns the old "hidden_at" field's value of the RMAItem entity.
// If the RMAItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RMAItemMutation) OldHiddenAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHiddenAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHiddenAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHiddenAt: %w", err)
	}
	return oldValue.HiddenAt, nil
}

// ClearHiddenAt clears the value of the "hidden_at" field.
func (m *RMAItemMutation) ClearHiddenAt() {
	m.hidden_at = nil
	m.clearedFields[rmaitem.FieldHiddenAt] = struct{}{}
}

// HiddenAtCleared returns if the "hidden_at" field was cleared in this mutation.
func (m *RMAItemMutation) HiddenAtCleared() bool {
	_, ok := m.clearedFields[rmaitem.FieldHiddenAt]
	return ok
}

// ResetHiddenAt resets all changes to the "hidden_at" field.
func (m *RMAItemMutation) ResetHiddenAt() {
	m.hidden_at = nil
	delete(m.clearedFields, rmaitem.FieldHiddenAt)
}

// SetExcelRow sets the "excel_row" field.
func (m *RMAItemMutation) SetExcelRow(i int) {
	m.excel_row = &i
	m.addexcel_row = nil
}

// ExcelRow returns the value of the "excel_row" field in the mutation.
func (m *RMAItemMutation) ExcelRow() (r int, exists bool) {
	v := m.excel_row
	if v == nil {
		return
	}
	return *v, true
}

// OldExcelRow returns the old "excel_row" field's value of the RMAItem entity.
// If the RMAItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RMAItemMutation) OldExcelRow(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExcelRow is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExcelRow requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExcelRow: %w", err)
	}
	return oldValue.ExcelRow, nil
}

// AddExcelRow adds i to the "excel_row" field.
func (m *RMAItemMutation) AddExcelRow(i int) {
	if m.addexcel_row != nil {
		*m.addexcel_row += i
	} else {
		m.addexcel_row = &i
	}
}

// AddedExcelRow returns the value that was added to the "excel_row" field in this mutation.
func (m *RMAItemMutation) AddedExcelRow() (r int, exists bool) {
	v := m.addexcel_row
	if v == nil {
		return
	}
	return *v, true
}

// ResetExcelRow resets all changes to the "excel_row" field.
func (m *RMAItemMutation) ResetExcelRow() {
	m.excel_row = nil
	m.addexcel_row = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *RMAItemMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *RMAItemMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the RMAItem entity.
// If the RMAItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RMAItemMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *RMAItemMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the RMAItemMutation builder.
func (m *RMAItemMutation) Where(ps ...predicate.RMAItem) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RMAItemMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RMAItemMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.RMAItem, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RMAItemMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RMAItemMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (RMAItem).
func (m *RMAItemMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RMAItemMutation) Fields() []string {
	fields := make([]string, 0, 17)
	if m.rma_number != nil {
		fields = append(fields, rmaitem.FieldRmaNumber)
	}
	if m.product != nil {
		fields = append(fields, rmaitem.FieldProduct)
	}
	if m.serial != nil {
		fields = append(fields, rmaitem.FieldSerial)
	}
	if m.client_name != nil {
		fields = append(fields, rmaitem.FieldClientName)
	}
	if m.client_email != nil {
		fields = append(fields, rmaitem.FieldClientEmail)
	}
	if m.client_phone != nil {
		fields = append(fields, rmaitem.FieldClientPhone)
	}
	if m.date_received != nil {
		fields = append(fields, rmaitem.FieldDateReceived)
	}
	if m.date_pickup != nil {
		fields = append(fields, rmaitem.FieldDatePickup)
	}
	if m.date_sent != nil {
		fields = append(fields, rmaitem.FieldDateSent)
	}
	if m.averia != nil {
		fields = append(fields, rmaitem.FieldAveria)
	}
	if m.observaciones != nil {
		fields = append(fields, rmaitem.FieldObservaciones)
	}
	if m.estado != nil {
		fields = append(fields, rmaitem.FieldEstado)
	}
	if m.hidden != nil {
		fields = append(fields, rmaitem.FieldHidden)
	}
	if m.hidden_by != nil {
		fields = append(fields, rmaitem.FieldHiddenBy)
	}
	if m.hidden_at != nil {
		fields = append(fields, rmaitem.FieldHiddenAt)
	}
	if m.excel_row != nil {
		fields = append(fields, rmaitem.FieldExcelRow)
	}
	if m.created_at != nil {
		fields = append(fields, rmaitem.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RMAItemMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case rmaitem.FieldRmaNumber:
		return m.RmaNumber()
	case rmaitem.FieldProduct:
		return m.Product()
	case rmaitem.FieldSerial:
		return m.Serial()
	case rmaitem.FieldClientName:
		return m.ClientName()
	case rmaitem.FieldClientEmail:
		return m.ClientEmail()
	case rmaitem.FieldClientPhone:
		return m.ClientPhone()
	case rmaitem.FieldDateReceived:
		return m.DateReceived()
	case rmaitem.FieldDatePickup:
		return m.DatePickup()
	case rmaitem.FieldDateSent:
		return m.DateSent()
	case rmaitem.FieldAveria:
		return m.Averia()
	case rmaitem.FieldObservaciones:
		return m.Observaciones()
	case rmaitem.FieldEstado:
		return m.Estado()
	case rmaitem.FieldHidden:
		return m.Hidden()
	case rmaitem.FieldHiddenBy:
		return m.HiddenBy()
	case rmaitem.FieldHiddenAt:
		return m.HiddenAt()
	case rmaitem.FieldExcelRow:
		return m.ExcelRow()
	case rmaitem.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RMAItemMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case rmaitem.FieldRmaNumber:
		return m.OldRmaNumber(ctx)
	case rmaitem.FieldProduct:
		return m.OldProduct(ctx)
	case rmaitem.FieldSerial:
		return m.OldSerial(ctx)
	case rmaitem.FieldClientName:
		return m.OldClientName(ctx)
	case rmaitem.FieldClientEmail:
		return m.OldClientEmail(ctx)
	case rmaitem.FieldClientPhone:
		return m.OldClientPhone(ctx)
	case rmaitem.FieldDateReceived:
		return m.OldDateReceived(ctx)
	case rmaitem.FieldDatePickup:
		return m.OldDatePickup(ctx)
	case rmaitem.FieldDateSent:
		return m.OldDateSent(ctx)
	case rmaitem.FieldAveria:
		return m.OldAveria(ctx)
	case rmaitem.FieldObservaciones:
		return m.OldObservaciones(ctx)
	case rmaitem.FieldEstado:
		return m.OldEstado(ctx)
	case rmaitem.FieldHidden:
		return m.OldHidden(ctx)
	case rmaitem.FieldHiddenBy:
		return m.OldHiddenBy(ctx)
	case rmaitem.FieldHiddenAt:
		return m.OldHiddenAt(ctx)
	case rmaitem.FieldExcelRow:
		return m.OldExcelRow(ctx)
	case rmaitem.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown RMAItem field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RMAItemMutation) SetField(name string, value ent.Value) error {
	switch name {
	case rmaitem.FieldRmaNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRmaNumber(v)
		return nil
	case rmaitem.FieldProduct:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProduct(v)
		return nil
	case rmaitem.FieldSerial:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSerial(v)
		return nil
	case rmaitem.FieldClientName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClientName(v)
		return nil
	case rmaitem.FieldClientEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClientEmail(v)
		return nil
	case rmaitem.FieldClientPhone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClientPhone(v)
		return nil
	case rmaitem.FieldDateReceived:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDateReceived(v)
		return nil
	case rmaitem.FieldDatePickup:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDatePickup(v)
		return nil
	case rmaitem.FieldDateSent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDateSent(v)
		return nil
	case rmaitem.FieldAveria:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAveria(v)
		return nil
	case rmaitem.FieldObservaciones:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetObservaciones(v)
		return nil
	case rmaitem.FieldEstado:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEstado(v)
		return nil
	case rmaitem.FieldHidden:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHidden(v)
		return nil
	case rmaitem.FieldHiddenBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHiddenBy(v)
		return nil
	case rmaitem.FieldHiddenAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHiddenAt(v)
		return nil
	case rmaitem.FieldExcelRow:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExcelRow(v)
		return nil
	case rmaitem.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown RMAItem field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RMAItemMutation) AddedFields() []string {
	var fields []string
	if m.addexcel_row != nil {
		fields = append(fields, rmaitem.FieldExcelRow)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RMAItemMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case rmaitem.FieldExcelRow:
		return m.AddedExcelRow()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RMAItemMutation) AddField(name string, value ent.Value) error {
	switch name {
	case rmaitem.FieldExcelRow:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddExcelRow(v)
		return nil
	}
	return fmt.Errorf("unknown RMAItem numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RMAItemMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(rmaitem.FieldProduct) {
		fields = append(fields, rmaitem.FieldProduct)
	}
	if m.FieldCleared(rmaitem.FieldClientName) {
		fields = append(fields, rmaitem.FieldClientName)
	}
	if m.FieldCleared(rmaitem.FieldClientEmail) {
		fields = append(fields, rmaitem.FieldClientEmail)
	}
	if m.FieldCleared(rmaitem.FieldClientPhone) {
		fields = append(fields, rmaitem.FieldClientPhone)
	}
	if m.FieldCleared(rmaitem.FieldDateReceived) {
		fields = append(fields, rmaitem.FieldDateReceived)
	}
	if m.FieldCleared(rmaitem.FieldDatePickup) {
		fields = append(fields, rmaitem.FieldDatePickup)
	}
	if m.FieldCleared(rmaitem.FieldDateSent) {
		fields = append(fields, rmaitem.FieldDateSent)
	}
	if m.FieldCleared(rmaitem.FieldAveria) {
		fields = append(fields, rmaitem.FieldAveria)
	}
	if m.FieldCleared(rmaitem.FieldObservaciones) {
		fields = append(fields, rmaitem.FieldObservaciones)
	}
	if m.FieldCleared(rmaitem.FieldHiddenBy) {
		fields = append(fields, rmaitem.FieldHiddenBy)
	}
	if m.FieldCleared(rmaitem.FieldHiddenAt) {
		fields = append(fields, rmaitem.FieldHiddenAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RMAItemMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RMAItemMutation) ClearField(name string) error {
	switch name {
	case rmaitem.FieldProduct:
		m.ClearProduct()
		return nil
	case rmaitem.FieldClientName:
		m.ClearClientName()
		return nil
	case rmaitem.FieldClientEmail:
		m.ClearClientEmail()
		return nil
	case rmaitem.FieldClientPhone:
		m.ClearClientPhone()
		return nil
	case rmaitem.FieldDateReceived:
		m.ClearDateReceived()
		return nil
	case rmaitem.FieldDatePickup:
		m.ClearDatePickup()
		return nil
	case rmaitem.FieldDateSent:
		m.ClearDateSent()
		return nil
	case rmaitem.FieldAveria:
		m.ClearAveria()
		return nil
	case rmaitem.FieldObservaciones:
		m.ClearObservaciones()
		return nil
	case rmaitem.FieldHiddenBy:
		m.ClearHiddenBy()
		return nil
	case rmaitem.FieldHiddenAt:
		m.ClearHiddenAt()
		return nil
	}
	return fmt.Errorf("unknown RMAItem nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RMAItemMutation) ResetField(name string) error {
	switch name {
	case rmaitem.FieldRmaNumber:
		m.ResetRmaNumber()
		return nil
	case rmaitem.FieldProduct:
		m.ResetProduct()
		return nil
	case rmaitem.FieldSerial:
		m.ResetSerial()
		return nil
	case rmaitem.FieldClientName:
		m.ResetClientName()
		return nil
	case rmaitem.FieldClientEmail:
		m.ResetClientEmail()
		return nil
	case rmaitem.FieldClientPhone:
		m.ResetClientPhone()
		return nil
	case rmaitem.FieldDateReceived:
		m.ResetDateReceived()
		return nil
	case rmaitem.FieldDatePickup:
		m.ResetDatePickup()
		return nil
	case rmaitem.FieldDateSent:
		m.ResetDateSent()
		return nil
	case rmaitem.FieldAveria:
		m.ResetAveria()
		return nil
	case rmaitem.FieldObservaciones:
		m.ResetObservaciones()
		return nil
	case rmaitem.FieldEstado:
		m.ResetEstado()
		return nil
	case rmaitem.FieldHidden:
		m.ResetHidden()
		return nil
	case rmaitem.FieldHiddenBy:
		m.ResetHiddenBy()
		return nil
	case rmaitem.FieldHiddenAt:
		m.ResetHiddenAt()
		return nil
	case rmaitem.FieldExcelRow:
		m.ResetExcelRow()
		return nil
	case rmaitem.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown RMAItem field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RMAItemMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RMAItemMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RMAItemMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RMAItemMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RMAItemMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RMAItemMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RMAItemMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown RMAItem unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RMAItemMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown RMAItem edge %s", name)
}

// SerialWarrantyMutation represents an operation that mutates the SerialWarranty nodes in the graph.
type SerialWarrantyMutation struct {
	config
	op             Op
	typ            string
	id             *int
	serial         *string
	warranty_valid *bool
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*SerialWarranty, error)
	predicates     []predicate.SerialWarranty
}

var _ ent.Mutation = (*SerialWarrantyMutation)(nil)

// serialwarrantyOption allows management of the mutation configuration using functional options.
type serialwarrantyOption func(*SerialWarrantyMutation)

// newSerialWarrantyMutation creates new mutation for the SerialWarranty entity.
func newSerialWarrantyMutation(c config, op Op, opts ...serialwarrantyOption) *SerialWarrantyMutation {
	m := &SerialWarrantyMutation{
		config:        c,
		op:            op,
		typ:           TypeSerialWarranty,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSerialWarrantyID sets the ID field of the mutation.
func withSerialWarrantyID(id int) serialwarrantyOption {
	return func(m *SerialWarrantyMutation) {
		var (
			err   error
			once  sync.Once
			value *SerialWarranty
		)
		m.oldValue = func(ctx context.Context) (*SerialWarranty, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SerialWarranty.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSerialWarranty sets the old SerialWarranty of the mutation.
func withSerialWarranty(node *SerialWarranty) serialwarrantyOption {
	return func(m *SerialWarrantyMutation) {
		m.oldValue = func(context.Context) (*SerialWarranty, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SerialWarrantyMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SerialWarrantyMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SerialWarrantyMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SerialWarrantyMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SerialWarranty.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSerial sets the "serial" field.
func (m *SerialWarrantyMutation) SetSerial(s string) {
	m.serial = &s
}

// Serial returns the value of the "serial" field in the mutation.
func (m *SerialWarrantyMutation) Serial() (r string, exists bool) {
	v := m.serial
	if v == nil {
		return
	}
	return *v, true
}

// OldSerial returns the old "serial" field's value of the SerialWarranty entity.
// If the SerialWarranty object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SerialWarrantyMutation) OldSerial(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSerial is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSerial requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSerial: %w", err)
	}
	return oldValue.Serial, nil
}

// ResetSerial resets all changes to the "serial" field.
func (m *SerialWarrantyMutation) ResetSerial() {
	m.serial = nil
}

// SetWarrantyValid sets the "warranty_valid" field.
func (m *SerialWarrantyMutation) SetWarrantyValid(b bool) {
	m.warranty_valid = &b
}

// WarrantyValid returns the value of the "warranty_valid" field in the mutation.
func (m *SerialWarrantyMutation) WarrantyValid() (r bool, exists bool) {
	v := m.warranty_valid
	if v == nil {
		return
	}
	return *v, true
}

// OldWarrantyValid returns the old "warranty_valid" field's value of the SerialWarranty entity.
// If the SerialWarranty object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SerialWarrantyMutation) OldWarrantyValid(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWarrantyValid is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWarrantyValid requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWarrantyValid: %w", err)
	}
	return oldValue.WarrantyValid, nil
}

// ResetWarrantyValid resets all changes to the "warranty_valid" field.
func (m *SerialWarrantyMutation) ResetWarrantyValid() {
	m.warranty_valid = nil
}

// Where appends a list predicates to the SerialWarrantyMutation builder.
func (m *SerialWarrantyMutation) Where(ps ...predicate.SerialWarranty) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SerialWarrantyMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SerialWarrantyMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SerialWarranty, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SerialWarrantyMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SerialWarrantyMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SerialWarranty).
func (m *SerialWarrantyMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SerialWarrantyMutation) Fields() []string {
	fields := make([]string, 0, 2)
	if m.serial != nil {
		fields = append(fields, serialwarranty.FieldSerial)
	}
	if m.warranty_valid != nil {
		fields = append(fields, serialwarranty.FieldWarrantyValid)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SerialWarrantyMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case serialwarranty.FieldSerial:
		return m.Serial()
	case serialwarranty.FieldWarrantyValid:
		return m.WarrantyValid()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SerialWarrantyMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case serialwarranty.FieldSerial:
		return m.OldSerial(ctx)
	case serialwarranty.FieldWarrantyValid:
		return m.OldWarrantyValid(ctx)
	}
	return nil, fmt.Errorf("unknown SerialWarranty field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SerialWarrantyMutation) SetField(name string, value ent.Value) error {
	switch name {
	case serialwarranty.FieldSerial:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSerial(v)
		return nil
	case serialwarranty.FieldWarrantyValid:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWarrantyValid(v)
		return nil
	}
	return fmt.Errorf("unknown SerialWarranty field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SerialWarrantyMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SerialWarrantyMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SerialWarrantyMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown SerialWarranty numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SerialWarrantyMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SerialWarrantyMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SerialWarrantyMutation) ClearField(name string) error {
	return fmt.Errorf("unknown SerialWarranty nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SerialWarrantyMutation) ResetField(name string) error {
	switch name {
	case serialwarranty.FieldSerial:
		m.ResetSerial()
		return nil
	case serialwarranty.FieldWarrantyValid:
		m.ResetWarrantyValid()
		return nil
	}
	return fmt.Errorf("unknown SerialWarranty field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SerialWarrantyMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SerialWarrantyMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SerialWarrantyMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SerialWarrantyMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SerialWarrantyMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SerialWarrantyMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SerialWarrantyMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown SerialWarranty unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SerialWarrantyMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown SerialWarranty edge %s", name)
}

// SettingMutation represents an operation that mutates the Setting nodes in the graph.
type SettingMutation struct {
	config
	op            Op
	typ           string
	id            *int
	key           *string
	value         *string
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Setting, error)
	predicates    []predicate.Setting
}

var _ ent.Mutation = (*SettingMutation)(nil)

// settingOption allows management of the mutation configuration using functional options.
type settingOption func(*SettingMutation)

// newSettingMutation creates new mutation for the Setting entity.
func newSettingMutation(c config, op Op, opts ...settingOption) *SettingMutation {
	m := &SettingMutation{
		config:        c,
		op:            op,
		typ:           TypeSetting,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSettingID sets the ID field of the mutation.
func withSettingID(id int) settingOption {
	return func(m *SettingMutation) {
		var (
			err   error
			once  sync.Once
			value *Setting
		)
		m.oldValue = func(ctx context.Context) (*Setting, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Setting.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSetting sets the old Setting of the mutation.
func withSetting(node *Setting) settingOption {
	return func(m *SettingMutation) {
		m.oldValue = func(context.Context) (*Setting, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SettingMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SettingMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SettingMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SettingMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Setting.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetKey sets the "key" field.
func (m *SettingMutation) SetKey(s string) {
	m.key = &s
}

// Key returns the value of the "key" field in the mutation.
func (m *SettingMutation) Key() (r string, exists bool) {
	v := m.key
	if v == nil {
		return
	}
	return *v, true
}

// OldKey returns the old "key" field's value of the Setting entity.
// If the Setting object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SettingMutation) OldKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKey: %w", err)
	}
	return oldValue.Key, nil
}

// ResetKey resets all changes to the "key" field.
func (m *SettingMutation) ResetKey() {
	m.key = nil
}

// SetValue sets the "value" field.
func (m *SettingMutation) SetValue(s string) {
	m.value = &s
}

// Value returns the value of the "value" field in the mutation.
func (m *SettingMutation) Value() (r string, exists bool) {
	v := m.value
	if v == nil {
		return
	}
	return *v, true
}

// OldValue returns the old "value" field's value of the Setting entity.
// If the Setting object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SettingMutation) OldValue(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValue: %w", err)
	}
	return oldValue.Value, nil
}

// ResetValue resets all changes to the "value" field.
func (m *SettingMutation) ResetValue() {
	m.value = nil
}

// Where appends a list predicates to the SettingMutation builder.
func (m *SettingMutation) Where(ps ...predicate.Setting) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SettingMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SettingMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Setting, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SettingMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SettingMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Setting).
func (m *SettingMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SettingMutation) Fields() []string {
	fields := make([]string, 0, 2)
	if m.key != nil {
		fields = append(fields, setting.FieldKey)
	}
	if m.value != nil {
		fields = append(fields, setting.FieldValue)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SettingMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case setting.FieldKey:
		return m.Key()
	case setting.FieldValue:
		return m.Value()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SettingMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case setting.FieldKey:
		return m.OldKey(ctx)
	case setting.FieldValue:
		return m.OldValue(ctx)
	}
	return nil, fmt.Errorf("unknown Setting field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SettingMutation) SetField(name string, value ent.Value) error {
	switch name {
	case setting.FieldKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKey(v)
		return nil
	case setting.FieldValue:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValue(v)
		return nil
	}
	return fmt.Errorf("unknown Setting field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SettingMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SettingMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SettingMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Setting numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SettingMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SettingMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SettingMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Setting nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SettingMutation) ResetField(name string) error {
	switch name {
	case setting.FieldKey:
		m.ResetKey()
		return nil
	case setting.FieldValue:
		m.ResetValue()
		return nil
	}
	return fmt.Errorf("unknown Setting field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SettingMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SettingMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SettingMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SettingMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SettingMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SettingMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SettingMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Setting unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SettingMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Setting edge %s", name)
}

// SpecialRMAItemMutation represents an operation that mutates the SpecialRMAItem nodes in the graph.
type SpecialRMAItemMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	serial        *string
	fallo         *string
	resolucion    *string
	excel_row     *int
	addexcel_row  *int
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*SpecialRMAItem, error)
	predicates    []predicate.SpecialRMAItem
}

var _ ent.Mutation = (*SpecialRMAItemMutation)(nil)

// specialrmaitemOption allows management of the mutation configuration using functional options.
type specialrmaitemOption func(*SpecialRMAItemMutation)

// newSpecialRMAItemMutation creates new mutation for the SpecialRMAItem entity.
func newSpecialRMAItemMutation(c config, op Op, opts ...specialrmaitemOption) *SpecialRMAItemMutation {
	m := &SpecialRMAItemMutation{
		config:        c,
		op:            op,
		typ:           TypeSpecialRMAItem,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSpecialRMAItemID sets the ID field of the mutation.
func withSpecialRMAItemID(id uuid.UUID) specialrmaitemOption {
	return func(m *SpecialRMAItemMutation) {
		var (
			err   error
			once  sync.Once
			value *SpecialRMAItem
		)
		m.oldValue = func(ctx context.Context) (*SpecialRMAItem, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SpecialRMAItem.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSpecialRMAItem sets the old SpecialRMAItem of the mutation.
func withSpecialRMAItem(node *SpecialRMAItem) specialrmaitemOption {
	return func(m *SpecialRMAItemMutation) {
		m.oldValue = func(context.Context) (*SpecialRMAItem, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SpecialRMAItemMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SpecialRMAItemMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of SpecialRMAItem entities.
func (m *SpecialRMAItemMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SpecialRMAItemMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SpecialRMAItemMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SpecialRMAItem.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSerial sets the "serial" field.
func (m *SpecialRMAItemMutation) SetSerial(s string) {
	m.serial = &s
}

// Serial returns the value of the "serial" field in the mutation.
func (m *SpecialRMAItemMutation) Serial() (r string, exists bool) {
	v := m.serial
	if v == nil {
		return
	}
	return *v, true
}

// OldSerial returns the old "serial" field's value of the SpecialRMAItem entity.
// If the SpecialRMAItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SpecialRMAItemMutation) OldSerial(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSerial is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSerial requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSerial: %w", err)
	}
	return oldValue.Serial, nil
}

// ResetSerial resets all changes to the "serial" field.
func (m *SpecialRMAItemMutation) ResetSerial() {
	m.serial = nil
}

// SetFallo sets the "fallo" field.
func (m *SpecialRMAItemMutation) SetFallo(s string) {
	m.fallo = &s
}

// Fallo returns the value of the "fallo" field in the mutation.
func (m *SpecialRMAItemMutation) Fallo() (r string, exists bool) {
	v := m.fallo
	if v == nil {
		return
	}
	return *v, true
}

// OldFallo returns the old "fallo" field's value of the SpecialRMAItem entity.
// If the SpecialRMAItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SpecialRMAItemMutation) OldFallo(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFallo is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFallo requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFallo: %w", err)
	}
	return oldValue.Fallo, nil
}

// ResetFallo resets all changes to the "fallo" field.
func (m *SpecialRMAItemMutation) ResetFallo() {
	m.fallo = nil
}

// SetResolucion sets the "resolucion" field.
func (m *SpecialRMAItemMutation) SetResolucion(s string) {
	m.resolucion = &s
}

// Resolucion returns the value of the "resolucion" field in the mutation.
func (m *SpecialRMAItemMutation) Resolucion() (r string, exists bool) {
	v := m.resolucion
	if v == nil {
		return
	}
	return *v, true
}

// OldResolucion returns the old "resolucion" field's value of the SpecialRMAItem entity.
// If the SpecialRMAItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SpecialRMAItemMutation) OldResolucion(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResolucion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResolucion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResolucion: %w", err)
	}
	return oldValue.Resolucion, nil
}

// ResetResolucion resets all changes to the "resolucion" field.
func (m *SpecialRMAItemMutation) ResetResolucion() {
	m.resolucion = nil
}

// SetExcelRow sets the "excel_row" field.
func (m *SpecialRMAItemMutation) SetExcelRow(i int) {
	m.excel_row = &i
	m.addexcel_row = nil
}

// ExcelRow returns the value of the "excel_row" field in the mutation.
func (m *SpecialRMAItemMutation) ExcelRow() (r int, exists bool) {
	v := m.excel_row
	if v == nil {
		return
	}
	return *v, true
}

// OldExcelRow returns the old "excel_row" field's value of the SpecialRMAItem entity.
// If the SpecialRMAItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SpecialRMAItemMutation) OldExcelRow(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExcelRow is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExcelRow requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExcelRow: %w", err)
	}
	return oldValue.ExcelRow, nil
}

// AddExcelRow adds i to the "excel_row" field.
func (m *SpecialRMAItemMutation) AddExcelRow(i int) {
	if m.addexcel_row != nil {
		*m.addexcel_row += i
	} else {
		m.addexcel_row = &i
	}
}

// AddedExcelRow returns the value that was added to the "excel_row" field in this mutation.
func (m *SpecialRMAItemMutation) AddedExcelRow() (r int, exists bool) {
	v := m.addexcel_row
	if v == nil {
		return
	}
	return *v, true
}

// ResetExcelRow resets all changes to the "excel_row" field.
func (m *SpecialRMAItemMutation) ResetExcelRow() {
	m.excel_row = nil
	m.addexcel_row = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *SpecialRMAItemMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SpecialRMAItemMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the SpecialRMAItem entity.
// If the SpecialRMAItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SpecialRMAItemMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SpecialRMAItemMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the SpecialRMAItemMutation builder.
func (m *SpecialRMAItemMutation) Where(ps ...predicate.SpecialRMAItem) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SpecialRMAItemMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SpecialRMAItemMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SpecialRMAItem, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SpecialRMAItemMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SpecialRMAItemMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SpecialRMAItem).
func (m *SpecialRMAItemMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SpecialRMAItemMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.serial != nil {
		fields = append(fields, specialrmaitem.FieldSerial)
	}
	if m.fallo != nil {
		fields = append(fields, specialrmaitem.FieldFallo)
	}
	if m.resolucion != nil {
		fields = append(fields, specialrmaitem.FieldResolucion)
	}
	if m.excel_row != nil {
		fields = append(fields, specialrmaitem.FieldExcelRow)
	}
	if m.created_at != nil {
		fields = append(fields, specialrmaitem.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SpecialRMAItemMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case specialrmaitem.FieldSerial:
		return m.Serial()
	case specialrmaitem.FieldFallo:
		return m.Fallo()
	case specialrmaitem.FieldResolucion:
		return m.Resolucion()
	case specialrmaitem.FieldExcelRow:
		return m.ExcelRow()
	case specialrmaitem.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SpecialRMAItemMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case specialrmaitem.FieldSerial:
		return m.OldSerial(ctx)
	case specialrmaitem.FieldFallo:
		return m.OldFallo(ctx)
	case specialrmaitem.FieldResolucion:
		return m.OldResolucion(ctx)
	case specialrmaitem.FieldExcelRow:
		return m.OldExcelRow(ctx)
	case specialrmaitem.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown SpecialRMAItem field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SpecialRMAItemMutation) SetField(name string, value ent.Value) error {
	switch name {
	case specialrmaitem.FieldSerial:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSerial(v)
		return nil
	case specialrmaitem.FieldFallo:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFallo(v)
		return nil
	case specialrmaitem.FieldResolucion:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResolucion(v)
		return nil
	case specialrmaitem.FieldExcelRow:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExcelRow(v)
		return nil
	case specialrmaitem.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown SpecialRMAItem field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SpecialRMAItemMutation) AddedFields() []string {
	var fields []string
	if m.addexcel_row != nil {
		fields = append(fields, specialrmaitem.FieldExcelRow)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SpecialRMAItemMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case specialrmaitem.FieldExcelRow:
		return m.AddedExcelRow()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SpecialRMAItemMutation) AddField(name string, value ent.Value) error {
	switch name {
	case specialrmaitem.FieldExcelRow:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddExcelRow(v)
		return nil
	}
	return fmt.Errorf("unknown SpecialRMAItem numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SpecialRMAItemMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SpecialRMAItemMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SpecialRMAItemMutation) ClearField(name string) error {
	return fmt.Errorf("unknown SpecialRMAItem nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SpecialRMAItemMutation) ResetField(name string) error {
	switch name {
	case specialrmaitem.FieldSerial:
		m.ResetSerial()
		return nil
	case specialrmaitem.FieldFallo:
		m.ResetFallo()
		return nil
	case specialrmaitem.FieldResolucion:
		m.ResetResolucion()
		return nil
	case specialrmaitem.FieldExcelRow:
		m.ResetExcelRow()
		return nil
	case specialrmaitem.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown SpecialRMAItem field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SpecialRMAItemMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SpecialRMAItemMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SpecialRMAItemMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SpecialRMAItemMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SpecialRMAItemMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SpecialRMAItemMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SpecialRMAItemMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown SpecialRMAItem unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SpecialRMAItemMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown SpecialRMAItem edge %s", name)
}
