// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"cardvault/gen/ent/migrate"

	"cardvault/gen/ent/card"
	"cardvault/gen/ent/cardfield"
	"cardvault/gen/ent/scanjob"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Card is the client for interacting with the Card builders.
	Card *CardClient
	// CardField is the client for interacting with the CardField builders.
	CardField *CardFieldClient
	// ScanJob is the client for interacting with the ScanJob builders.
	ScanJob *ScanJobClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Card = NewCardClient(c.config)
	c.CardField = NewCardFieldClient(c.config)
	c.ScanJob = NewScanJobClient(c.config)
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
		ctx:       ctx,
		config:    cfg,
		Card:      NewCardClient(cfg),
		CardField: NewCardFieldClient(cfg),
		ScanJob:   NewScanJobClient(cfg),
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
		ctx:       ctx,
		config:    cfg,
		Card:      NewCardClient(cfg),
		CardField: NewCardFieldClient(cfg),
		ScanJob:   NewScanJobClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Card.
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
	c.Card.Use(hooks...)
	c.CardField.Use(hooks...)
	c.ScanJob.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.Card.Intercept(interceptors...)
	c.CardField.Intercept(interceptors...)
	c.ScanJob.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *CardMutation:
		return c.Card.mutate(ctx, m)
	case *CardFieldMutation:
		return c.CardField.mutate(ctx, m)
	case *ScanJobMutation:
		return c.ScanJob.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// CardClient is a client for the Card schema.
type CardClient struct {
	config
}

// NewCardClient returns a client for the Card from the given config.
func NewCardClient(c config) *CardClient {
	return &CardClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `card.Hooks(f(g(h())))`.
func (c *CardClient) Use(hooks ...Hook) {
	c.hooks.Card = append(c.hooks.Card, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `card.Intercept(f(g(h())))`.
func (c *CardClient) Intercept(interceptors ...Interceptor) {
	c.inters.Card = append(c.inters.Card, interceptors...)
}

// Create returns a builder for creating a Card entity.
func (c *CardClient) Create() *CardCreate {
	mutation := newCardMutation(c.config, OpCreate)
	return &CardCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Card entities.
func (c *CardClient) CreateBulk(builders ...*CardCreate) *CardCreateBulk {
	return &CardCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CardClient) MapCreateBulk(slice any, setFunc func(*CardCreate, int)) *CardCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CardCreateBulk{err: fmt.Errorf("calling to CardClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CardCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CardCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Card.
func (c *CardClient) Update() *CardUpdate {
	mutation := newCardMutation(c.config, OpUpdate)
	return &CardUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CardClient) UpdateOne(_m *Card) *CardUpdateOne {
	mutation := newCardMutation(c.config, OpUpdateOne, withCard(_m))
	return &CardUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CardClient) UpdateOneID(id uuid.UUID) *CardUpdateOne {
	mutation := newCardMutation(c.config, OpUpdateOne, withCardID(id))
	return &CardUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Card.
func (c *CardClient) Delete() *CardDelete {
	mutation := newCardMutation(c.config, OpDelete)
	return &CardDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CardClient) DeleteOne(_m *Card) *CardDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CardClient) DeleteOneID(id uuid.UUID) *CardDeleteOne {
	builder := c.Delete().Where(card.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CardDeleteOne{builder}
}

// Query returns a query builder for Card.
func (c *CardClient) Query() *CardQuery {
	return &CardQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCard},
		inters: c.Interceptors(),
	}
}

// Get returns a Card entity by its id.
func (c *CardClient) Get(ctx context.Context, id uuid.UUID) (*Card, error) {
	return c.Query().Where(card.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CardClient) GetX(ctx context.Context, id uuid.UUID) *Card {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryFields queries the fields edge of a Card.
func (c *CardClient) QueryFields(_m *Card) *CardFieldQuery {
	query := (&CardFieldClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(card.Table, card.FieldID, id),
			sqlgraph.To(cardfield.Table, cardfield.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, card.FieldsTable, card.FieldsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryJobs queries the jobs edge of a Card.
func (c *CardClient) QueryJobs(_m *Card) *ScanJobQuery {
	query := (&ScanJobClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(card.Table, card.FieldID, id),
			sqlgraph.To(scanjob.Table, scanjob.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, card.JobsTable, card.JobsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *CardClient) Hooks() []Hook {
	return c.hooks.Card
}

// Interceptors returns the client interceptors.
func (c *CardClient) Interceptors() []Interceptor {
	return c.inters.Card
}

func (c *CardClient) mutate(ctx context.Context, m *CardMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CardCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CardUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CardUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CardDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Card mutation op: %q", m.Op())
	}
}

// CardFieldClient is a client for the CardField schema.
type CardFieldClient struct {
	config
}

// NewCardFieldClient returns a client for the CardField from the given config.
func NewCardFieldClient(c config) *CardFieldClient {
	return &CardFieldClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `cardfield.Hooks(f(g(h())))`.
func (c *CardFieldClient) Use(hooks ...Hook) {
	c.hooks.CardField = append(c.hooks.CardField, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `cardfield.Intercept(f(g(h())))`.
func (c *CardFieldClient) Intercept(interceptors ...Interceptor) {
	c.inters.CardField = append(c.inters.CardField, interceptors...)
}

// Create returns a builder for creating a CardField entity.
func (c *CardFieldClient) Create() *CardFieldCreate {
	mutation := newCardFieldMutation(c.config, OpCreate)
	return &CardFieldCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CardField entities.
func (c *CardFieldClient) CreateBulk(builders ...*CardFieldCreate) *CardFieldCreateBulk {
	return &CardFieldCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CardFieldClient) MapCreateBulk(slice any, setFunc func(*CardFieldCreate, int)) *CardFieldCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CardFieldCreateBulk{err: fmt.Errorf("calling to CardFieldClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CardFieldCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CardFieldCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CardField.
func (c *CardFieldClient) Update() *CardFieldUpdate {
	mutation := newCardFieldMutation(c.config, OpUpdate)
	return &CardFieldUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CardFieldClient) UpdateOne(_m *CardField) *CardFieldUpdateOne {
	mutation := newCardFieldMutation(c.config, OpUpdateOne, withCardField(_m))
	return &CardFieldUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CardFieldClient) UpdateOneID(id uuid.UUID) *CardFieldUpdateOne {
	mutation := newCardFieldMutation(c.config, OpUpdateOne, withCardFieldID(id))
	return &CardFieldUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CardField.
func (c *CardFieldClient) Delete() *CardFieldDelete {
	mutation := newCardFieldMutation(c.config, OpDelete)
	return &CardFieldDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CardFieldClient) DeleteOne(_m *CardField) *CardFieldDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CardFieldClient) DeleteOneID(id uuid.UUID) *CardFieldDeleteOne {
	builder := c.Delete().Where(cardfield.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CardFieldDeleteOne{builder}
}

// Query returns a query builder for CardField.
func (c *CardFieldClient) Query() *CardFieldQuery {
	return &CardFieldQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCardField},
		inters: c.Interceptors(),
	}
}

// Get returns a CardField entity by its id.
func (c *CardFieldClient) Get(ctx context.Context, id uuid.UUID) (*CardField, error) {
	return c.Query().Where(cardfield.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CardFieldClient) GetX(ctx context.Context, id uuid.UUID) *CardField {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryCard queries the card edge of a CardField.
func (c *CardFieldClient) QueryCard(_m *CardField) *CardQuery {
	query := (&CardClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(cardfield.Table, cardfield.FieldID, id),
			sqlgraph.To(card.Table, card.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, cardfield.CardTable, cardfield.CardColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *CardFieldClient) Hooks() []Hook {
	return c.hooks.CardField
}

// Interceptors returns the client interceptors.
func (c *CardFieldClient) Interceptors() []Interceptor {
	return c.inters.CardField
}

func (c *CardFieldClient) mutate(ctx context.Context, m *CardFieldMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CardFieldCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CardFieldUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CardFieldUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CardFieldDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown CardField mutation op: %q", m.Op())
	}
}

// ScanJobClient is a client for the ScanJob schema.
type ScanJobClient struct {
	config
}

// NewScanJobClient returns a client for the ScanJob from the given config.
func NewScanJobClient(c config) *ScanJobClient {
	return &ScanJobClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `scanjob.Hooks(f(g(h())))`.
func (c *ScanJobClient) Use(hooks ...Hook) {
	c.hooks.ScanJob = append(c.hooks.ScanJob, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `scanjob.Intercept(f(g(h())))`.
func (c *ScanJobClient) Intercept(interceptors ...Interceptor) {
	c.inters.ScanJob = append(c.inters.ScanJob, interceptors...)
}

// Create returns a builder for creating a ScanJob entity.
func (c *ScanJobClient) Create() *ScanJobCreate {
	mutation := newScanJobMutation(c.config, OpCreate)
	return &ScanJobCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ScanJob entities.
func (c *ScanJobClient) CreateBulk(builders ...*ScanJobCreate) *ScanJobCreateBulk {
	return &ScanJobCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ScanJobClient) MapCreateBulk(slice any, setFunc func(*ScanJobCreate, int)) *ScanJobCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ScanJobCreateBulk{err: fmt.Errorf("calling to ScanJobClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ScanJobCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ScanJobCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ScanJob.
func (c *ScanJobClient) Update() *ScanJobUpdate {
	mutation := newScanJobMutation(c.config, OpUpdate)
	return &ScanJobUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ScanJobClient) UpdateOne(_m *ScanJob) *ScanJobUpdateOne {
	mutation := newScanJobMutation(c.config, OpUpdateOne, withScanJob(_m))
	return &ScanJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ScanJobClient) UpdateOneID(id uuid.UUID) *ScanJobUpdateOne {
	mutation := newScanJobMutation(c.config, OpUpdateOne, withScanJobID(id))
	return &ScanJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ScanJob.
func (c *ScanJobClient) Delete() *ScanJobDelete {
	mutation := newScanJobMutation(c.config, OpDelete)
	return &ScanJobDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ScanJobClient) DeleteOne(_m *ScanJob) *ScanJobDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ScanJobClient) DeleteOneID(id uuid.UUID) *ScanJobDeleteOne {
	builder := c.Delete().Where(scanjob.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ScanJobDeleteOne{builder}
}

// Query returns a query builder for ScanJob.
func (c *ScanJobClient) Query() *ScanJobQuery {
	return &ScanJobQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeScanJob},
		inters: c.Interceptors(),
	}
}

// Get returns a ScanJob entity by its id.
func (c *ScanJobClient) Get(ctx context.Context, id uuid.UUID) (*ScanJob, error) {
	return c.Query().Where(scanjob.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ScanJobClient) GetX(ctx context.Context, id uuid.UUID) *ScanJob {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryCard queries the card edge of a ScanJob.
func (c *ScanJobClient) QueryCard(_m *ScanJob) *CardQuery {
	query := (&CardClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(scanjob.Table, scanjob.FieldID, id),
			sqlgraph.To(card.Table, card.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, scanjob.CardTable, scanjob.CardColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ScanJobClient) Hooks() []Hook {
	return c.hooks.ScanJob
}

// Interceptors returns the client interceptors.
func (c *ScanJobClient) Interceptors() []Interceptor {
	return c.inters.ScanJob
}

func (c *ScanJobClient) mutate(ctx context.Context, m *ScanJobMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ScanJobCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ScanJobUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ScanJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ScanJobDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ScanJob mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Card, CardField, ScanJob []ent.Hook
	}
	inters struct {
		Card, CardField, ScanJob []ent.Interceptor
	}
)
