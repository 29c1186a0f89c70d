// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/communityhub/mobilecore/gen/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/communityhub/mobilecore/gen/ent/cachedgalleryimage"
	"github.com/communityhub/mobilecore/gen/ent/cachednewsitem"
	"github.com/communityhub/mobilecore/gen/ent/cachedtransaction"
	"github.com/communityhub/mobilecore/gen/ent/pinnedcategory"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// CachedGalleryImage is the client for interacting with the CachedGalleryImage builders.
	CachedGalleryImage *CachedGalleryImageClient
	// CachedNewsItem is the client for interacting with the CachedNewsItem builders.
	CachedNewsItem *CachedNewsItemClient
	// CachedTransaction is the client for interacting with the CachedTransaction builders.
	CachedTransaction *CachedTransactionClient
	// PinnedCategory is the client for interacting with the PinnedCategory builders.
	PinnedCategory *PinnedCategoryClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.CachedGalleryImage = NewCachedGalleryImageClient(c.config)
	c.CachedNewsItem = NewCachedNewsItemClient(c.config)
	c.CachedTransaction = NewCachedTransactionClient(c.config)
	c.PinnedCategory = NewPinnedCategoryClient(c.config)
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
		ctx:                ctx,
		config:             cfg,
		CachedGalleryImage: NewCachedGalleryImageClient(cfg),
		CachedNewsItem:     NewCachedNewsItemClient(cfg),
		CachedTransaction:  NewCachedTransactionClient(cfg),
		PinnedCategory:     NewPinnedCategoryClient(cfg),
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
		ctx:                ctx,
		config:             cfg,
		CachedGalleryImage: NewCachedGalleryImageClient(cfg),
		CachedNewsItem:     NewCachedNewsItemClient(cfg),
		CachedTransaction:  NewCachedTransactionClient(cfg),
		PinnedCategory:     NewPinnedCategoryClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		CachedGalleryImage.
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
	c.CachedGalleryImage.Use(hooks...)
	c.CachedNewsItem.Use(hooks...)
	c.CachedTransaction.Use(hooks...)
	c.PinnedCategory.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.CachedGalleryImage.Intercept(interceptors...)
	c.CachedNewsItem.Intercept(interceptors...)
	c.CachedTransaction.Intercept(interceptors...)
	c.PinnedCategory.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *CachedGalleryImageMutation:
		return c.CachedGalleryImage.mutate(ctx, m)
	case *CachedNewsItemMutation:
		return c.CachedNewsItem.mutate(ctx, m)
	case *CachedTransactionMutation:
		return c.CachedTransaction.mutate(ctx, m)
	case *PinnedCategoryMutation:
		return c.PinnedCategory.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// CachedGalleryImageClient is a client for the CachedGalleryImage schema.
type CachedGalleryImageClient struct {
	config
}

// NewCachedGalleryImageClient returns a client for the CachedGalleryImage from the given config.
func NewCachedGalleryImageClient(c config) *CachedGalleryImageClient {
	return &CachedGalleryImageClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `cachedgalleryimage.Hooks(f(g(h())))`.
func (c *CachedGalleryImageClient) Use(hooks ...Hook) {
	c.hooks.CachedGalleryImage = append(c.hooks.CachedGalleryImage, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `cachedgalleryimage.Intercept(f(g(h())))`.
func (c *CachedGalleryImageClient) Intercept(interceptors ...Interceptor) {
	c.inters.CachedGalleryImage = append(c.inters.CachedGalleryImage, interceptors...)
}

// Create returns a builder for creating a CachedGalleryImage entity.
func (c *CachedGalleryImageClient) Create() *CachedGalleryImageCreate {
	mutation := newCachedGalleryImageMutation(c.config, OpCreate)
	return &CachedGalleryImageCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CachedGalleryImage entities.
func (c *CachedGalleryImageClient) CreateBulk(builders ...*CachedGalleryImageCreate) *CachedGalleryImageCreateBulk {
	return &CachedGalleryImageCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CachedGalleryImageClient) MapCreateBulk(slice any, setFunc func(*CachedGalleryImageCreate, int)) *CachedGalleryImageCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CachedGalleryImageCreateBulk{err: fmt.Errorf("calling to CachedGalleryImageClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CachedGalleryImageCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CachedGalleryImageCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CachedGalleryImage.
func (c *CachedGalleryImageClient) Update() *CachedGalleryImageUpdate {
	mutation := newCachedGalleryImageMutation(c.config, OpUpdate)
	return &CachedGalleryImageUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CachedGalleryImageClient) UpdateOne(_m *CachedGalleryImage) *CachedGalleryImageUpdateOne {
	mutation := newCachedGalleryImageMutation(c.config, OpUpdateOne, withCachedGalleryImage(_m))
	return &CachedGalleryImageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CachedGalleryImageClient) UpdateOneID(id string) *CachedGalleryImageUpdateOne {
	mutation := newCachedGalleryImageMutation(c.config, OpUpdateOne, withCachedGalleryImageID(id))
	return &CachedGalleryImageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CachedGalleryImage.
func (c *CachedGalleryImageClient) Delete() *CachedGalleryImageDelete {
	mutation := newCachedGalleryImageMutation(c.config, OpDelete)
	return &CachedGalleryImageDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CachedGalleryImageClient) DeleteOne(_m *CachedGalleryImage) *CachedGalleryImageDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CachedGalleryImageClient) DeleteOneID(id string) *CachedGalleryImageDeleteOne {
	builder := c.Delete().Where(cachedgalleryimage.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CachedGalleryImageDeleteOne{builder}
}

// Query returns a query builder for CachedGalleryImage.
func (c *CachedGalleryImageClient) Query() *CachedGalleryImageQuery {
	return &CachedGalleryImageQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCachedGalleryImage},
		inters: c.Interceptors(),
	}
}

// Get returns a CachedGalleryImage entity by its id.
func (c *CachedGalleryImageClient) Get(ctx context.Context, id string) (*CachedGalleryImage, error) {
	return c.Query().Where(cachedgalleryimage.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CachedGalleryImageClient) GetX(ctx context.Context, id string) *CachedGalleryImage {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *CachedGalleryImageClient) Hooks() []Hook {
	return c.hooks.CachedGalleryImage
}

// Interceptors returns the client interceptors.
func (c *CachedGalleryImageClient) Interceptors() []Interceptor {
	return c.inters.CachedGalleryImage
}

func (c *CachedGalleryImageClient) mutate(ctx context.Context, m *CachedGalleryImageMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CachedGalleryImageCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CachedGalleryImageUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CachedGalleryImageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CachedGalleryImageDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown CachedGalleryImage mutation op: %q", m.Op())
	}
}

// CachedNewsItemClient is a client for the CachedNewsItem schema.
type CachedNewsItemClient struct {
	config
}

// NewCachedNewsItemClient returns a client for the CachedNewsItem from the given config.
func NewCachedNewsItemClient(c config) *CachedNewsItemClient {
	return &CachedNewsItemClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `cachednewsitem.Hooks(f(g(h())))`.
func (c *CachedNewsItemClient) Use(hooks ...Hook) {
	c.hooks.CachedNewsItem = append(c.hooks.CachedNewsItem, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `cachednewsitem.Intercept(f(g(h())))`.
func (c *CachedNewsItemClient) Intercept(interceptors ...Interceptor) {
	c.inters.CachedNewsItem = append(c.inters.CachedNewsItem, interceptors...)
}

// Create returns a builder for creating a CachedNewsItem entity.
func (c *CachedNewsItemClient) Create() *CachedNewsItemCreate {
	mutation := newCachedNewsItemMutation(c.config, OpCreate)
	return &CachedNewsItemCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CachedNewsItem entities.
func (c *CachedNewsItemClient) CreateBulk(builders ...*CachedNewsItemCreate) *CachedNewsItemCreateBulk {
	return &CachedNewsItemCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CachedNewsItemClient) MapCreateBulk(slice any, setFunc func(*CachedNewsItemCreate, int)) *CachedNewsItemCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CachedNewsItemCreateBulk{err: fmt.Errorf("calling to CachedNewsItemClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CachedNewsItemCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CachedNewsItemCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CachedNewsItem.
func (c *CachedNewsItemClient) Update() *CachedNewsItemUpdate {
	mutation := newCachedNewsItemMutation(c.config, OpUpdate)
	return &CachedNewsItemUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CachedNewsItemClient) UpdateOne(_m *CachedNewsItem) *CachedNewsItemUpdateOne {
	mutation := newCachedNewsItemMutation(c.config, OpUpdateOne, withCachedNewsItem(_m))
	return &CachedNewsItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CachedNewsItemClient) UpdateOneID(id string) *CachedNewsItemUpdateOne {
	mutation := newCachedNewsItemMutation(c.config, OpUpdateOne, withCachedNewsItemID(id))
	return &CachedNewsItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CachedNewsItem.
func (c *CachedNewsItemClient) Delete() *CachedNewsItemDelete {
	mutation := newCachedNewsItemMutation(c.config, OpDelete)
	return &CachedNewsItemDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CachedNewsItemClient) DeleteOne(_m *CachedNewsItem) *CachedNewsItemDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CachedNewsItemClient) DeleteOneID(id string) *CachedNewsItemDeleteOne {
	builder := c.Delete().Where(cachednewsitem.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CachedNewsItemDeleteOne{builder}
}

// Query returns a query builder for CachedNewsItem.
func (c *CachedNewsItemClient) Query() *CachedNewsItemQuery {
	return &CachedNewsItemQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCachedNewsItem},
		inters: c.Interceptors(),
	}
}

// Get returns a CachedNewsItem entity by its id.
func (c *CachedNewsItemClient) Get(ctx context.Context, id string) (*CachedNewsItem, error) {
	return c.Query().Where(cachednewsitem.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CachedNewsItemClient) GetX(ctx context.Context, id string) *CachedNewsItem {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *CachedNewsItemClient) Hooks() []Hook {
	return c.hooks.CachedNewsItem
}

// Interceptors returns the client interceptors.
func (c *CachedNewsItemClient) Interceptors() []Interceptor {
	return c.inters.CachedNewsItem
}

func (c *CachedNewsItemClient) mutate(ctx context.Context, m *CachedNewsItemMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CachedNewsItemCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CachedNewsItemUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CachedNewsItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CachedNewsItemDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown CachedNewsItem mutation op: %q", m.Op())
	}
}

// CachedTransactionClient is a client for the CachedTransaction schema.
type CachedTransactionClient struct {
	config
}

// NewCachedTransactionClient returns a client for the CachedTransaction from the given config.
func NewCachedTransactionClient(c config) *CachedTransactionClient {
	return &CachedTransactionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `cachedtransaction.Hooks(f(g(h())))`.
func (c *CachedTransactionClient) Use(hooks ...Hook) {
	c.hooks.CachedTransaction = append(c.hooks.CachedTransaction, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `cachedtransaction.Intercept(f(g(h())))`.
func (c *CachedTransactionClient) Intercept(interceptors ...Interceptor) {
	c.inters.CachedTransaction = append(c.inters.CachedTransaction, interceptors...)
}

// Create returns a builder for creating a CachedTransaction entity.
func (c *CachedTransactionClient) Create() *CachedTransactionCreate {
	mutation := newCachedTransactionMutation(c.config, OpCreate)
	return &CachedTransactionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CachedTransaction entities.
func (c *CachedTransactionClient) CreateBulk(builders ...*CachedTransactionCreate) *CachedTransactionCreateBulk {
	return &CachedTransactionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CachedTransactionClient) MapCreateBulk(slice any, setFunc func(*CachedTransactionCreate, int)) *CachedTransactionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CachedTransactionCreateBulk{err: fmt.Errorf("calling to CachedTransactionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CachedTransactionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CachedTransactionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CachedTransaction.
func (c *CachedTransactionClient) Update() *CachedTransactionUpdate {
	mutation := newCachedTransactionMutation(c.config, OpUpdate)
	return &CachedTransactionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CachedTransactionClient) UpdateOne(_m *CachedTransaction) *CachedTransactionUpdateOne {
	mutation := newCachedTransactionMutation(c.config, OpUpdateOne, withCachedTransaction(_m))
	return &CachedTransactionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CachedTransactionClient) UpdateOneID(id string) *CachedTransactionUpdateOne {
	mutation := newCachedTransactionMutation(c.config, OpUpdateOne, withCachedTransactionID(id))
	return &CachedTransactionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CachedTransaction.
func (c *CachedTransactionClient) Delete() *CachedTransactionDelete {
	mutation := newCachedTransactionMutation(c.config, OpDelete)
	return &CachedTransactionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CachedTransactionClient) DeleteOne(_m *CachedTransaction) *CachedTransactionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CachedTransactionClient) DeleteOneID(id string) *CachedTransactionDeleteOne {
	builder := c.Delete().Where(cachedtransaction.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CachedTransactionDeleteOne{builder}
}

// Query returns a query builder for CachedTransaction.
func (c *CachedTransactionClient) Query() *CachedTransactionQuery {
	return &CachedTransactionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCachedTransaction},
		inters: c.Interceptors(),
	}
}

// Get returns a CachedTransaction entity by its id.
func (c *CachedTransactionClient) Get(ctx context.Context, id string) (*CachedTransaction, error) {
	return c.Query().Where(cachedtransaction.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CachedTransactionClient) GetX(ctx context.Context, id string) *CachedTransaction {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *CachedTransactionClient) Hooks() []Hook {
	return c.hooks.CachedTransaction
}

// Interceptors returns the client interceptors.
func (c *CachedTransactionClient) Interceptors() []Interceptor {
	return c.inters.CachedTransaction
}

func (c *CachedTransactionClient) mutate(ctx context.Context, m *CachedTransactionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CachedTransactionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CachedTransactionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CachedTransactionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CachedTransactionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown CachedTransaction mutation op: %q", m.Op())
	}
}

// PinnedCategoryClient is a client for the PinnedCategory schema.
type PinnedCategoryClient struct {
	config
}

// NewPinnedCategoryClient returns a client for the PinnedCategory from the given config.
func NewPinnedCategoryClient(c config) *PinnedCategoryClient {
	return &PinnedCategoryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `pinnedcategory.Hooks(f(g(h())))`.
func (c *PinnedCategoryClient) Use(hooks ...Hook) {
	c.hooks.PinnedCategory = append(c.hooks.PinnedCategory, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `pinnedcategory.Intercept(f(g(h())))`.
func (c *PinnedCategoryClient) Intercept(interceptors ...Interceptor) {
	c.inters.PinnedCategory = append(c.inters.PinnedCategory, interceptors...)
}

// Create returns a builder for creating a PinnedCategory entity.
func (c *PinnedCategoryClient) Create() *PinnedCategoryCreate {
	mutation := newPinnedCategoryMutation(c.config, OpCreate)
	return &PinnedCategoryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PinnedCategory entities.
func (c *PinnedCategoryClient) CreateBulk(builders ...*PinnedCategoryCreate) *PinnedCategoryCreateBulk {
	return &PinnedCategoryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PinnedCategoryClient) MapCreateBulk(slice any, setFunc func(*PinnedCategoryCreate, int)) *PinnedCategoryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PinnedCategoryCreateBulk{err: fmt.Errorf("calling to PinnedCategoryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PinnedCategoryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PinnedCategoryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PinnedCategory.
func (c *PinnedCategoryClient) Update() *PinnedCategoryUpdate {
	mutation := newPinnedCategoryMutation(c.config, OpUpdate)
	return &PinnedCategoryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PinnedCategoryClient) UpdateOne(_m *PinnedCategory) *PinnedCategoryUpdateOne {
	mutation := newPinnedCategoryMutation(c.config, OpUpdateOne, withPinnedCategory(_m))
	return &PinnedCategoryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PinnedCategoryClient) UpdateOneID(id int) *PinnedCategoryUpdateOne {
	mutation := newPinnedCategoryMutation(c.config, OpUpdateOne, withPinnedCategoryID(id))
	return &PinnedCategoryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PinnedCategory.
func (c *PinnedCategoryClient) Delete() *PinnedCategoryDelete {
	mutation := newPinnedCategoryMutation(c.config, OpDelete)
	return &PinnedCategoryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PinnedCategoryClient) DeleteOne(_m *PinnedCategory) *PinnedCategoryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PinnedCategoryClient) DeleteOneID(id int) *PinnedCategoryDeleteOne {
	builder := c.Delete().Where(pinnedcategory.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PinnedCategoryDeleteOne{builder}
}

// Query returns a query builder for PinnedCategory.
func (c *PinnedCategoryClient) Query() *PinnedCategoryQuery {
	return &PinnedCategoryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePinnedCategory},
		inters: c.Interceptors(),
	}
}

// Get returns a PinnedCategory entity by its id.
func (c *PinnedCategoryClient) Get(ctx context.Context, id int) (*PinnedCategory, error) {
	return c.Query().Where(pinnedcategory.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PinnedCategoryClient) GetX(ctx context.Context, id int) *PinnedCategory {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *PinnedCategoryClient) Hooks() []Hook {
	return c.hooks.PinnedCategory
}

// Interceptors returns the client interceptors.
func (c *PinnedCategoryClient) Interceptors() []Interceptor {
	return c.inters.PinnedCategory
}

func (c *PinnedCategoryClient) mutate(ctx context.Context, m *PinnedCategoryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PinnedCategoryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PinnedCategoryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PinnedCategoryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PinnedCategoryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PinnedCategory mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		CachedGalleryImage, CachedNewsItem, CachedTransaction, PinnedCategory []ent.Hook
	}
	inters struct {
		CachedGalleryImage, CachedNewsItem, CachedTransaction,
		PinnedCategory []ent.Interceptor
	}
)
