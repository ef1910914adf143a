// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/fachebot/forum-meet-bot/internal/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/fachebot/forum-meet-bot/internal/ent/forumsession"
	"github.com/fachebot/forum-meet-bot/internal/ent/meetingevent"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// ForumSession is the client for interacting with the ForumSession builders.
	ForumSession *ForumSessionClient
	// MeetingEvent is the client for interacting with the MeetingEvent builders.
	MeetingEvent *MeetingEventClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.ForumSession = NewForumSessionClient(c.config)
	c.MeetingEvent = NewMeetingEventClient(c.config)
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
		ctx:          ctx,
		config:       cfg,
		ForumSession: NewForumSessionClient(cfg),
		MeetingEvent: NewMeetingEventClient(cfg),
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
		ctx:          ctx,
		config:       cfg,
		ForumSession: NewForumSessionClient(cfg),
		MeetingEvent: NewMeetingEventClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		ForumSession.
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
	c.ForumSession.Use(hooks...)
	c.MeetingEvent.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.ForumSession.Intercept(interceptors...)
	c.MeetingEvent.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *ForumSessionMutation:
		return c.ForumSession.mutate(ctx, m)
	case *MeetingEventMutation:
		return c.MeetingEvent.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// ForumSessionClient is a client for the ForumSession schema.
type ForumSessionClient struct {
	config
}

// NewForumSessionClient returns a client for the ForumSession from the given config.
func NewForumSessionClient(c config) *ForumSessionClient {
	return &ForumSessionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `forumsession.Hooks(f(g(h())))`.
func (c *ForumSessionClient) Use(hooks ...Hook) {
	c.hooks.ForumSession = append(c.hooks.ForumSession, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `forumsession.Intercept(f(g(h())))`.
func (c *ForumSessionClient) Intercept(interceptors ...Interceptor) {
	c.inters.ForumSession = append(c.inters.ForumSession, interceptors...)
}

// Create returns a builder for creating a ForumSession entity.
func (c *ForumSessionClient) Create() *ForumSessionCreate {
	mutation := newForumSessionMutation(c.config, OpCreate)
	return &ForumSessionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ForumSession entities.
func (c *ForumSessionClient) CreateBulk(builders ...*ForumSessionCreate) *ForumSessionCreateBulk {
	return &ForumSessionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ForumSessionClient) MapCreateBulk(slice any, setFunc func(*ForumSessionCreate, int)) *ForumSessionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ForumSessionCreateBulk{err: fmt.Errorf("calling to ForumSessionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ForumSessionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ForumSessionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ForumSession.
func (c *ForumSessionClient) Update() *ForumSessionUpdate {
	mutation := newForumSessionMutation(c.config, OpUpdate)
	return &ForumSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ForumSessionClient) UpdateOne(fs *ForumSession) *ForumSessionUpdateOne {
	mutation := newForumSessionMutation(c.config, OpUpdateOne, withForumSession(fs))
	return &ForumSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ForumSessionClient) UpdateOneID(id int) *ForumSessionUpdateOne {
	mutation := newForumSessionMutation(c.config, OpUpdateOne, withForumSessionID(id))
	return &ForumSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ForumSession.
func (c *ForumSessionClient) Delete() *ForumSessionDelete {
	mutation := newForumSessionMutation(c.config, OpDelete)
	return &ForumSessionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ForumSessionClient) DeleteOne(fs *ForumSession) *ForumSessionDeleteOne {
	return c.DeleteOneID(fs.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ForumSessionClient) DeleteOneID(id int) *ForumSessionDeleteOne {
	builder := c.Delete().Where(forumsession.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ForumSessionDeleteOne{builder}
}

// Query returns a query builder for ForumSession.
func (c *ForumSessionClient) Query() *ForumSessionQuery {
	return &ForumSessionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeForumSession},
		inters: c.Interceptors(),
	}
}

// Get returns a ForumSession entity by its id.
func (c *ForumSessionClient) Get(ctx context.Context, id int) (*ForumSession, error) {
	return c.Query().Where(forumsession.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ForumSessionClient) GetX(ctx context.Context, id int) *ForumSession {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ForumSessionClient) Hooks() []Hook {
	return c.hooks.ForumSession
}

// Interceptors returns the client interceptors.
func (c *ForumSessionClient) Interceptors() []Interceptor {
	return c.inters.ForumSession
}

func (c *ForumSessionClient) mutate(ctx context.Context, m *ForumSessionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ForumSessionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ForumSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ForumSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ForumSessionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ForumSession mutation op: %q", m.Op())
	}
}

// MeetingEventClient is a client for the MeetingEvent schema.
type MeetingEventClient struct {
	config
}

// NewMeetingEventClient returns a client for the MeetingEvent from the given config.
func NewMeetingEventClient(c config) *MeetingEventClient {
	return &MeetingEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `meetingevent.Hooks(f(g(h())))`.
func (c *MeetingEventClient) Use(hooks ...Hook) {
	c.hooks.MeetingEvent = append(c.hooks.MeetingEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `meetingevent.Intercept(f(g(h())))`.
func (c *MeetingEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.MeetingEvent = append(c.inters.MeetingEvent, interceptors...)
}

// Create returns a builder for creating a MeetingEvent entity.
func (c *MeetingEventClient) Create() *MeetingEventCreate {
	mutation := newMeetingEventMutation(c.config, OpCreate)
	return &MeetingEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of MeetingEvent entities.
func (c *MeetingEventClient) CreateBulk(builders ...*MeetingEventCreate) *MeetingEventCreateBulk {
	return &MeetingEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MeetingEventClient) MapCreateBulk(slice any, setFunc func(*MeetingEventCreate, int)) *MeetingEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MeetingEventCreateBulk{err: fmt.Errorf("calling to MeetingEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MeetingEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MeetingEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for MeetingEvent.
func (c *MeetingEventClient) Update() *MeetingEventUpdate {
	mutation := newMeetingEventMutation(c.config, OpUpdate)
	return &MeetingEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MeetingEventClient) UpdateOne(me *MeetingEvent) *MeetingEventUpdateOne {
	mutation := newMeetingEventMutation(c.config, OpUpdateOne, withMeetingEvent(me))
	return &MeetingEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MeetingEventClient) UpdateOneID(id int) *MeetingEventUpdateOne {
	mutation := newMeetingEventMutation(c.config, OpUpdateOne, withMeetingEventID(id))
	return &MeetingEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for MeetingEvent.
func (c *MeetingEventClient) Delete() *MeetingEventDelete {
	mutation := newMeetingEventMutation(c.config, OpDelete)
	return &MeetingEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MeetingEventClient) DeleteOne(me *MeetingEvent) *MeetingEventDeleteOne {
	return c.DeleteOneID(me.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MeetingEventClient) DeleteOneID(id int) *MeetingEventDeleteOne {
	builder := c.Delete().Where(meetingevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MeetingEventDeleteOne{builder}
}

// Query returns a query builder for MeetingEvent.
func (c *MeetingEventClient) Query() *MeetingEventQuery {
	return &MeetingEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMeetingEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a MeetingEvent entity by its id.
func (c *MeetingEventClient) Get(ctx context.Context, id int) (*MeetingEvent, error) {
	return c.Query().Where(meetingevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MeetingEventClient) GetX(ctx context.Context, id int) *MeetingEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *MeetingEventClient) Hooks() []Hook {
	return c.hooks.MeetingEvent
}

// Interceptors returns the client interceptors.
func (c *MeetingEventClient) Interceptors() []Interceptor {
	return c.inters.MeetingEvent
}

func (c *MeetingEventClient) mutate(ctx context.Context, m *MeetingEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MeetingEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MeetingEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MeetingEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MeetingEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown MeetingEvent mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		ForumSession, MeetingEvent []ent.Hook
	}
	inters struct {
		ForumSession, MeetingEvent []ent.Interceptor
	}
)
