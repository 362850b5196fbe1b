// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/apx-soporte/warranty-tracker/gen/ent/migrate"
	"github.com/google/uuid"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/apx-soporte/warranty-tracker/gen/ent/clientgroup"
	"github.com/apx-soporte/warranty-tracker/gen/ent/clientgroupmember"
	"github.com/apx-soporte/warranty-tracker/gen/ent/rmaitem"
	"github.com/apx-soporte/warranty-tracker/gen/ent/serialwarranty"
	"github.com/apx-soporte/warranty-tracker/gen/ent/setting"
	"github.com/apx-soporte/warranty-tracker/gen/ent/specialrmaitem"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// ClientGroup is the client for interacting with the ClientGroup builders.
	ClientGroup *ClientGroupClient
	// ClientGroupMember is the client for interacting with the ClientGroupMember builders.
	ClientGroupMember *ClientGroupMemberClient
	// RMAItem is the client for interacting with the RMAItem builders.
	RMAItem *RMAItemClient
	// SerialWarranty is the client for interacting with the SerialWarranty builders.
	SerialWarranty *SerialWarrantyClient
	// Setting is the client for interacting with the Setting builders.
	Setting *SettingClient
	// SpecialRMAItem is the client for interacting with the SpecialRMAItem builders.
	SpecialRMAItem *SpecialRMAItemClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.ClientGroup = NewClientGroupClient(c.config)
	c.ClientGroupMember = NewClientGroupMemberClient(c.config)
	c.RMAItem = NewRMAItemClient(c.config)
	c.SerialWarranty = NewSerialWarrantyClient(c.config)
	c.Setting = NewSettingClient(c.config)
	c.SpecialRMAItem = NewSpecialRMAItemClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:               ctx,
		config:            cfg,
		ClientGroup:       NewClientGroupClient(cfg),
		ClientGroupMember: NewClientGroupMemberClient(cfg),
		RMAItem:           NewRMAItemClient(cfg),
		SerialWarranty:    NewSerialWarrantyClient(cfg),
		Setting:           NewSettingClient(cfg),
		SpecialRMAItem:    NewSpecialRMAItemClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:               ctx,
		config:            cfg,
		ClientGroup:       NewClientGroupClient(cfg),
		ClientGroupMember: NewClientGroupMemberClient(cfg),
		RMAItem:           NewRMAItemClient(cfg),
		SerialWarranty:    NewSerialWarrantyClient(cfg),
		Setting:           NewSettingClient(cfg),
		SpecialRMAItem:    NewSpecialRMAItemClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		ClientGroup.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	for _, n := range []interface{ Use(...Hook) }{
		c.ClientGroup, c.ClientGroupMember, c.RMAItem, c.SerialWarranty, c.Setting,
		c.SpecialRMAItem,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.ClientGroup, c.ClientGroupMember, c.RMAItem, c.SerialWarranty, c.Setting,
		c.SpecialRMAItem,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *ClientGroupMutation:
		return c.ClientGroup.mutate(ctx, m)
	case *ClientGroupMemberMutation:
		return c.ClientGroupMember.mutate(ctx, m)
	case *RMAItemMutation:
		return c.RMAItem.mutate(ctx, m)
	case *SerialWarrantyMutation:
		return c.SerialWarranty.mutate(ctx, m)
	case *SettingMutation:
		return c.Setting.mutate(ctx, m)
	case *SpecialRMAItemMutation:
		return c.SpecialRMAItem.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// ClientGroupClient is a client for the ClientGroup schema.
type ClientGroupClient struct {
	config
}

// NewClientGroupClient returns a client for the ClientGroup from the given config.
func NewClientGroupClient(c config) *ClientGroupClient {
	return &ClientGroupClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `clientgroup.Hooks(f(g(h())))`.
func (c *ClientGroupClient) Use(hooks ...Hook) {
	c.hooks.ClientGroup = append(c.hooks.ClientGroup, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `clientgroup.Intercept(f(g(h())))`.
func (c *ClientGroupClient) Intercept(interceptors ...Interceptor) {
	c.inters.ClientGroup = append(c.inters.ClientGroup, interceptors...)
}

// Create returns a builder for creating a ClientGroup entity.
func (c *ClientGroupClient) Create() *ClientGroupCreate {
	mutation := newClientGroupMutation(c.config, OpCreate)
	return &ClientGroupCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ClientGroup entities.
func (c *ClientGroupClient) CreateBulk(builders ...*ClientGroupCreate) *ClientGroupCreateBulk {
	return &ClientGroupCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ClientGroupClient) MapCreateBulk(slice any, setFunc func(*ClientGroupCreate, int)) *ClientGroupCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ClientGroupCreateBulk{err: fmt.Errorf("calling to ClientGroupClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ClientGroupCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ClientGroupCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ClientGroup.
func (c *ClientGroupClient) Update() *ClientGroupUpdate {
	mutation := newClientGroupMutation(c.config, OpUpdate)
	return &ClientGroupUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ClientGroupClient) UpdateOne(_m *ClientGroup) *ClientGroupUpdateOne {
	mutation := newClientGroupMutation(c.config, OpUpdateOne, withClientGroup(_m))
	return &ClientGroupUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ClientGroupClient) UpdateOneID(id int) *ClientGroupUpdateOne {
	mutation := newClientGroupMutation(c.config, OpUpdateOne, withClientGroupID(id))
	return &ClientGroupUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ClientGroup.
func (c *ClientGroupClient) Delete() *ClientGroupDelete {
	mutation := newClientGroupMutation(c.config, OpDelete)
	return &ClientGroupDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ClientGroupClient) DeleteOne(_m *ClientGroup) *ClientGroupDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ClientGroupClient) DeleteOneID(id int) *ClientGroupDeleteOne {
	builder := c.Delete().Where(clientgroup.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ClientGroupDeleteOne{builder}
}

// Query returns a query builder for ClientGroup.
func (c *ClientGroupClient) Query() *ClientGroupQuery {
	return &ClientGroupQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeClientGroup},
		inters: c.Interceptors(),
	}
}

// Get returns a ClientGroup entity by its id.
func (c *ClientGroupClient) Get(ctx context.Context, id int) (*ClientGroup, error) {
	return c.Query().Where(clientgroup.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ClientGroupClient) GetX(ctx context.Context, id int) *ClientGroup {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ClientGroupClient) Hooks() []Hook {
	return c.hooks.ClientGroup
}

// Interceptors returns the client interceptors.
func (c *ClientGroupClient) Interceptors() []Interceptor {
	return c.inters.ClientGroup
}

func (c *ClientGroupClient) mutate(ctx context.Context, m *ClientGroupMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ClientGroupCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ClientGroupUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ClientGroupUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ClientGroupDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ClientGroup mutation op: %q", m.Op())
	}
}

// ClientGroupMemberClient is a client for the ClientGroupMember schema.
type ClientGroupMemberClient struct {
	config
}

// NewClientGroupMemberClient returns a client for the ClientGroupMember from the given config.
func NewClientGroupMemberClient(c config) *ClientGroupMemberClient {
	return &ClientGroupMemberClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `clientgroupmember.Hooks(f(g(h())))`.
func (c *ClientGroupMemberClient) Use(hooks ...Hook) {
	c.hooks.ClientGroupMember = append(c.hooks.ClientGroupMember, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `clientgroupmember.Intercept(f(g(h())))`.
func (c *ClientGroupMemberClient) Intercept(interceptors ...Interceptor) {
	c.inters.ClientGroupMember = append(c.inters.ClientGroupMember, interceptors...)
}

// Create returns a builder for creating a ClientGroupMember entity.
func (c *ClientGroupMemberClient) Create() *ClientGroupMemberCreate {
	mutation := newClientGroupMemberMutation(c.config, OpCreate)
	return &ClientGroupMemberCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ClientGroupMember entities.
func (c *ClientGroupMemberClient) CreateBulk(builders ...*ClientGroupMemberCreate) *ClientGroupMemberCreateBulk {
	return &ClientGroupMemberCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ClientGroupMemberClient) MapCreateBulk(slice any, setFunc func(*ClientGroupMemberCreate, int)) *ClientGroupMemberCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ClientGroupMemberCreateBulk{err: fmt.Errorf("calling to ClientGroupMemberClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ClientGroupMemberCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ClientGroupMemberCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ClientGroupMember.
func (c *ClientGroupMemberClient) Update() *ClientGroupMemberUpdate {
	mutation := newClientGroupMemberMutation(c.config, OpUpdate)
	return &ClientGroupMemberUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ClientGroupMemberClient) UpdateOne(_m *ClientGroupMember) *ClientGroupMemberUpdateOne {
	mutation := newClientGroupMemberMutation(c.config, OpUpdateOne, withClientGroupMember(_m))
	return &ClientGroupMemberUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ClientGroupMemberClient) UpdateOneID(id int) *ClientGroupMemberUpdateOne {
	mutation := newClientGroupMemberMutation(c.config, OpUpdateOne, withClientGroupMemberID(id))
	return &ClientGroupMemberUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ClientGroupMember.
func (c *ClientGroupMemberClient) Delete() *ClientGroupMemberDelete {
	mutation := newClientGroupMemberMutation(c.config, OpDelete)
	return &ClientGroupMemberDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ClientGroupMemberClient) DeleteOne(_m *ClientGroupMember) *ClientGroupMemberDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ClientGroupMemberClient) DeleteOneID(id int) *ClientGroupMemberDeleteOne {
	builder := c.Delete().Where(clientgroupmember.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ClientGroupMemberDeleteOne{builder}
}

// Query returns a query builder for ClientGroupMember.
func (c *ClientGroupMemberClient) Query() *ClientGroupMemberQuery {
	return &ClientGroupMemberQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeClientGroupMember},
		inters: c.Interceptors(),
	}
}

// Get returns a ClientGroupMember entity by its id.
func (c *ClientGroupMemberClient) Get(ctx context.Context, id int) (*ClientGroupMember, error) {
	return c.Query().Where(clientgroupmember.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ClientGroupMemberClient) GetX(ctx context.Context, id int) *ClientGroupMember {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ClientGroupMemberClient) Hooks() []Hook {
	return c.hooks.ClientGroupMember
}

// Interceptors returns the client interceptors.
func (c *ClientGroupMemberClient) Interceptors() []Interceptor {
	return c.inters.ClientGroupMember
}

func (c *ClientGroupMemberClient) mutate(ctx context.Context, m *ClientGroupMemberMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ClientGroupMemberCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ClientGroupMemberUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ClientGroupMemberUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ClientGroupMemberDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ClientGroupMember mutation op: %q", m.Op())
	}
}

// RMAItemClient is a client for the RMAItem schema.
type RMAItemClient struct {
	config
}

// NewRMAItemClient returns a client for the RMAItem from the given config.
func NewRMAItemClient(c config) *RMAItemClient {
	return &RMAItemClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `rmaitem.Hooks(f(g(h())))`.
func (c *RMAItemClient) Use(hooks ...Hook) {
	c.hooks.RMAItem = append(c.hooks.RMAItem, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `rmaitem.Intercept(f(g(h())))`.
func (c *RMAItemClient) Intercept(interceptors ...Interceptor) {
	c.inters.RMAItem = append(c.inters.RMAItem, interceptors...)
}

// Create returns a builder for creating a RMAItem entity.
func (c *RMAItemClient) Create() *RMAItemCreate {
	mutation := newRMAItemMutation(c.config, OpCreate)
	return &RMAItemCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of RMAItem entities.
func (c *RMAItemClient) CreateBulk(builders ...*RMAItemCreate) *RMAItemCreateBulk {
	return &RMAItemCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *RMAItemClient) MapCreateBulk(slice any, setFunc func(*RMAItemCreate, int)) *RMAItemCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &RMAItemCreateBulk{err: fmt.Errorf("calling to RMAItemClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*RMAItemCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &RMAItemCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for RMAItem.
func (c *RMAItemClient) Update() *RMAItemUpdate {
	mutation := newRMAItemMutation(c.config, OpUpdate)
	return &RMAItemUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *RMAItemClient) UpdateOne(_m *RMAItem) *RMAItemUpdateOne {
	mutation := newRMAItemMutation(c.config, OpUpdateOne, withRMAItem(_m))
	return &RMAItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *RMAItemClient) UpdateOneID(id uuid.UUID) *RMAItemUpdateOne {
	mutation := newRMAItemMutation(c.config, OpUpdateOne, withRMAItemID(id))
	return &RMAItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for RMAItem.
func (c *RMAItemClient) Delete() *RMAItemDelete {
	mutation := newRMAItemMutation(c.config, OpDelete)
	return &RMAItemDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *RMAItemClient) DeleteOne(_m *RMAItem) *RMAItemDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *RMAItemClient) DeleteOneID(id uuid.UUID) *RMAItemDeleteOne {
	builder := c.Delete().Where(rmaitem.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &RMAItemDeleteOne{builder}
}

// Query returns a query builder for RMAItem.
func (c *RMAItemClient) Query() *RMAItemQuery {
	return &RMAItemQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeRMAItem},
		inters: c.Interceptors(),
	}
}

// Get returns a RMAItem entity by its id.
func (c *RMAItemClient) Get(ctx context.Context, id uuid.UUID) (*RMAItem, error) {
	return c.Query().Where(rmaitem.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *RMAItemClient) GetX(ctx context.Context, id uuid.UUID) *RMAItem {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *RMAItemClient) Hooks() []Hook {
	return c.hooks.RMAItem
}

// Interceptors returns the client interceptors.
func (c *RMAItemClient) Interceptors() []Interceptor {
	return c.inters.RMAItem
}

func (c *RMAItemClient) mutate(ctx context.Context, m *RMAItemMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&RMAItemCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&RMAItemUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&RMAItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&RMAItemDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown RMAItem mutation op: %q", m.Op())
	}
}

// SerialWarrantyClient is a client for the SerialWarranty schema.
type SerialWarrantyClient struct {
	config
}

// NewSerialWarrantyClient returns a client for the SerialWarranty from the given config.
func NewSerialWarrantyClient(c config) *SerialWarrantyClient {
	return &SerialWarrantyClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `serialwarranty.Hooks(f(g(h())))`.
func (c *SerialWarrantyClient) Use(hooks ...Hook) {
	c.hooks.SerialWarranty = append(c.hooks.SerialWarranty, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `serialwarranty.Intercept(f(g(h())))`.
func (c *SerialWarrantyClient) Intercept(interceptors ...Interceptor) {
	c.inters.SerialWarranty = append(c.inters.SerialWarranty, interceptors...)
}

// Create returns a builder for creating a SerialWarranty entity.
func (c *SerialWarrantyClient) Create() *SerialWarrantyCreate {
	mutation := newSerialWarrantyMutation(c.config, OpCreate)
	return &SerialWarrantyCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SerialWarranty entities.
func (c *SerialWarrantyClient) CreateBulk(builders ...*SerialWarrantyCreate) *SerialWarrantyCreateBulk {
	return &SerialWarrantyCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SerialWarrantyClient) MapCreateBulk(slice any, setFunc func(*SerialWarrantyCreate, int)) *SerialWarrantyCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SerialWarrantyCreateBulk{err: fmt.Errorf("calling to SerialWarrantyClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SerialWarrantyCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SerialWarrantyCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SerialWarranty.
func (c *SerialWarrantyClient) Update() *SerialWarrantyUpdate {
	mutation := newSerialWarrantyMutation(c.config, OpUpdate)
	return &SerialWarrantyUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SerialWarrantyClient) UpdateOne(_m *SerialWarranty) *SerialWarrantyUpdateOne {
	mutation := newSerialWarrantyMutation(c.config, OpUpdateOne, withSerialWarranty(_m))
	return &SerialWarrantyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SerialWarrantyClient) UpdateOneID(id int) *SerialWarrantyUpdateOne {
	mutation := newSerialWarrantyMutation(c.config, OpUpdateOne, withSerialWarrantyID(id))
	return &SerialWarrantyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SerialWarranty.
func (c *SerialWarrantyClient) Delete() *SerialWarrantyDelete {
	mutation := newSerialWarrantyMutation(c.config, OpDelete)
	return &SerialWarrantyDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SerialWarrantyClient) DeleteOne(_m *SerialWarranty) *SerialWarrantyDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SerialWarrantyClient) DeleteOneID(id int) *SerialWarrantyDeleteOne {
	builder := c.Delete().Where(serialwarranty.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SerialWarrantyDeleteOne{builder}
}

// Query returns a query builder for SerialWarranty.
func (c *SerialWarrantyClient) Query() *SerialWarrantyQuery {
	return &SerialWarrantyQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSerialWarranty},
		inters: c.Interceptors(),
	}
}

// Get returns a SerialWarranty entity by its id.
func (c *SerialWarrantyClient) Get(ctx context.Context, id int) (*SerialWarranty, error) {
	return c.Query().Where(serialwarranty.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SerialWarrantyClient) GetX(ctx context.Context, id int) *SerialWarranty {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SerialWarrantyClient) Hooks() []Hook {
	return c.hooks.SerialWarranty
}

// Interceptors returns the client interceptors.
func (c *SerialWarrantyClient) Interceptors() []Interceptor {
	return c.inters.SerialWarranty
}

func (c *SerialWarrantyClient) mutate(ctx context.Context, m *SerialWarrantyMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SerialWarrantyCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SerialWarrantyUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SerialWarrantyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SerialWarrantyDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SerialWarranty mutation op: %q", m.Op())
	}
}

// SettingClient is a client for the Setting schema.
type SettingClient struct {
	config
}

// NewSettingClient returns a client for the Setting from the given config.
func NewSettingClient(c config) *SettingClient {
	return &SettingClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `setting.Hooks(f(g(h())))`.
func (c *SettingClient) Use(hooks ...Hook) {
	c.hooks.Setting = append(c.hooks.Setting, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `setting.Intercept(f(g(h())))`.
func (c *SettingClient) Intercept(interceptors ...Interceptor) {
	c.inters.Setting = append(c.inters.Setting, interceptors...)
}

// Create returns a builder for creating a Setting entity.
func (c *SettingClient) Create() *SettingCreate {
	mutation := newSettingMutation(c.config, OpCreate)
	return &SettingCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Setting entities.
func (c *SettingClient) CreateBulk(builders ...*SettingCreate) *SettingCreateBulk {
	return &SettingCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SettingClient) MapCreateBulk(slice any, setFunc func(*SettingCreate, int)) *SettingCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SettingCreateBulk{err: fmt.Errorf("calling to SettingClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SettingCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SettingCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Setting.
func (c *SettingClient) Update() *SettingUpdate {
	mutation := newSettingMutation(c.config, OpUpdate)
	return &SettingUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SettingClient) UpdateOne(_m *Setting) *SettingUpdateOne {
	mutation := newSettingMutation(c.config, OpUpdateOne, withSetting(_m))
	return &SettingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SettingClient) UpdateOneID(id int) *SettingUpdateOne {
	mutation := newSettingMutation(c.config, OpUpdateOne, withSettingID(id))
	return &SettingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Setting.
func (c *SettingClient) Delete() *SettingDelete {
	mutation := newSettingMutation(c.config, OpDelete)
	return &SettingDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SettingClient) DeleteOne(_m *Setting) *SettingDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SettingClient) DeleteOneID(id int) *SettingDeleteOne {
	builder := c.Delete().Where(setting.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SettingDeleteOne{builder}
}

// Query returns a query builder for Setting.
func (c *SettingClient) Query() *SettingQuery {
	return &SettingQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSetting},
		inters: c.Interceptors(),
	}
}

// Get returns a Setting entity by its id.
func (c *SettingClient) Get(ctx context.Context, id int) (*Setting, error) {
	return c.Query().Where(setting.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SettingClient) GetX(ctx context.Context, id int) *Setting {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SettingClient) Hooks() []Hook {
	return c.hooks.Setting
}

// Interceptors returns the client interceptors.
func (c *SettingClient) Interceptors() []Interceptor {
	return c.inters.Setting
}

func (c *SettingClient) mutate(ctx context.Context, m *SettingMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SettingCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SettingUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SettingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SettingDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Setting mutation op: %q", m.Op())
	}
}

// SpecialRMAItemClient is a client for the SpecialRMAItem schema.
type SpecialRMAItemClient struct {
	config
}

// NewSpecialRMAItemClient returns a client for the SpecialRMAItem from the given config.
func NewSpecialRMAItemClient(c config) *SpecialRMAItemClient {
	return &SpecialRMAItemClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `specialrmaitem.Hooks(f(g(h())))`.
func (c *SpecialRMAItemClient) Use(hooks ...Hook) {
	c.hooks.SpecialRMAItem = append(c.hooks.SpecialRMAItem, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `specialrmaitem.Intercept(f(g(h())))`.
func (c *SpecialRMAItemClient) Intercept(interceptors ...Interceptor) {
	c.inters.SpecialRMAItem = append(c.inters.SpecialRMAItem, interceptors...)
}

// Create returns a builder for creating a SpecialRMAItem entity.
func (c *SpecialRMAItemClient) Create() *SpecialRMAItemCreate {
	mutation := newSpecialRMAItemMutation(c.config, OpCreate)
	return &SpecialRMAItemCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SpecialRMAItem entities.
func (c *SpecialRMAItemClient) CreateBulk(builders ...*SpecialRMAItemCreate) *SpecialRMAItemCreateBulk {
	return &SpecialRMAItemCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SpecialRMAItemClient) MapCreateBulk(slice any, setFunc func(*SpecialRMAItemCreate, int)) *SpecialRMAItemCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SpecialRMAItemCreateBulk{err: fmt.Errorf("calling to SpecialRMAItemClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SpecialRMAItemCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SpecialRMAItemCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SpecialRMAItem.
func (c *SpecialRMAItemClient) Update() *SpecialRMAItemUpdate {
	mutation := newSpecialRMAItemMutation(c.config, OpUpdate)
	return &SpecialRMAItemUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SpecialRMAItemClient) UpdateOne(_m *SpecialRMAItem) *SpecialRMAItemUpdateOne {
	mutation := newSpecialRMAItemMutation(c.config, OpUpdateOne, withSpecialRMAItem(_m))
	return &SpecialRMAItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SpecialRMAItemClient) UpdateOneID(id uuid.UUID) *SpecialRMAItemUpdateOne {
	mutation := newSpecialRMAItemMutation(c.config, OpUpdateOne, withSpecialRMAItemID(id))
	return &SpecialRMAItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SpecialRMAItem.
func (c *SpecialRMAItemClient) Delete() *SpecialRMAItemDelete {
	mutation := newSpecialRMAItemMutation(c.config, OpDelete)
	return &SpecialRMAItemDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SpecialRMAItemClient) DeleteOne(_m *SpecialRMAItem) *SpecialRMAItemDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SpecialRMAItemClient) DeleteOneID(id uuid.UUID) *SpecialRMAItemDeleteOne {
	builder := c.Delete().Where(specialrmaitem.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SpecialRMAItemDeleteOne{builder}
}

// Query returns a query builder for SpecialRMAItem.
func (c *SpecialRMAItemClient) Query() *SpecialRMAItemQuery {
	return &SpecialRMAItemQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSpecialRMAItem},
		inters: c.Interceptors(),
	}
}

// Get returns a SpecialRMAItem entity by its id.
func (c *SpecialRMAItemClient) Get(ctx context.Context, id uuid.UUID) (*SpecialRMAItem, error) {
	return c.Query().Where(specialrmaitem.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SpecialRMAItemClient) GetX(ctx context.Context, id uuid.UUID) *SpecialRMAItem {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SpecialRMAItemClient) Hooks() []Hook {
	return c.hooks.SpecialRMAItem
}

// Interceptors returns the client interceptors.
func (c *SpecialRMAItemClient) Interceptors() []Interceptor {
	return c.inters.SpecialRMAItem
}

func (c *SpecialRMAItemClient) mutate(ctx context.Context, m *SpecialRMAItemMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SpecialRMAItemCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SpecialRMAItemUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SpecialRMAItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SpecialRMAItemDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SpecialRMAItem mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		ClientGroup, ClientGroupMember, RMAItem, SerialWarranty, Setting,
		SpecialRMAItem []ent.Hook
	}
	inters struct {
		ClientGroup, ClientGroupMember, RMAItem, SerialWarranty, Setting,
		SpecialRMAItem []ent.Interceptor
	}
)
