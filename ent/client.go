// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/jfarleigh/certrun/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/jfarleigh/certrun/ent/answeroption"
	"github.com/jfarleigh/certrun/ent/exam"
	"github.com/jfarleigh/certrun/ent/practicesession"
	"github.com/jfarleigh/certrun/ent/question"
	"github.com/jfarleigh/certrun/ent/questionattempt"
	"github.com/jfarleigh/certrun/ent/questionstat"
	"github.com/jfarleigh/certrun/ent/topic"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// AnswerOption is the client for interacting with the AnswerOption builders.
	AnswerOption *AnswerOptionClient
	// Exam is the client for interacting with the Exam builders.
	Exam *ExamClient
	// PracticeSession is the client for interacting with the PracticeSession builders.
	PracticeSession *PracticeSessionClient
	// Question is the client for interacting with the Question builders.
	Question *QuestionClient
	// QuestionAttempt is the client for interacting with the QuestionAttempt builders.
	QuestionAttempt *QuestionAttemptClient
	// QuestionStat is the client for interacting with the QuestionStat builders.
	QuestionStat *QuestionStatClient
	// Topic is the client for interacting with the Topic builders.
	Topic *TopicClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.AnswerOption = NewAnswerOptionClient(c.config)
	c.Exam = NewExamClient(c.config)
	c.PracticeSession = NewPracticeSessionClient(c.config)
	c.Question = NewQuestionClient(c.config)
	c.QuestionAttempt = NewQuestionAttemptClient(c.config)
	c.QuestionStat = NewQuestionStatClient(c.config)
	c.Topic = NewTopicClient(c.config)
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
		ctx:             ctx,
		config:          cfg,
		AnswerOption:    NewAnswerOptionClient(cfg),
		Exam:            NewExamClient(cfg),
		PracticeSession: NewPracticeSessionClient(cfg),
		Question:        NewQuestionClient(cfg),
		QuestionAttempt: NewQuestionAttemptClient(cfg),
		QuestionStat:    NewQuestionStatClient(cfg),
		Topic:           NewTopicClient(cfg),
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
		ctx:             ctx,
		config:          cfg,
		AnswerOption:    NewAnswerOptionClient(cfg),
		Exam:            NewExamClient(cfg),
		PracticeSession: NewPracticeSessionClient(cfg),
		Question:        NewQuestionClient(cfg),
		QuestionAttempt: NewQuestionAttemptClient(cfg),
		QuestionStat:    NewQuestionStatClient(cfg),
		Topic:           NewTopicClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		AnswerOption.
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
		c.AnswerOption, c.Exam, c.PracticeSession, c.Question, c.QuestionAttempt,
		c.QuestionStat, c.Topic,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.AnswerOption, c.Exam, c.PracticeSession, c.Question, c.QuestionAttempt,
		c.QuestionStat, c.Topic,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AnswerOptionMutation:
		return c.AnswerOption.mutate(ctx, m)
	case *ExamMutation:
		return c.Exam.mutate(ctx, m)
	case *PracticeSessionMutation:
		return c.PracticeSession.mutate(ctx, m)
	case *QuestionMutation:
		return c.Question.mutate(ctx, m)
	case *QuestionAttemptMutation:
		return c.QuestionAttempt.mutate(ctx, m)
	case *QuestionStatMutation:
		return c.QuestionStat.mutate(ctx, m)
	case *TopicMutation:
		return c.Topic.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AnswerOptionClient is a client for the AnswerOption schema.
type AnswerOptionClient struct {
	config
}

// NewAnswerOptionClient returns a client for the AnswerOption from the given config.
func NewAnswerOptionClient(c config) *AnswerOptionClient {
	return &AnswerOptionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `answeroption.Hooks(f(g(h())))`.
func (c *AnswerOptionClient) Use(hooks ...Hook) {
	c.hooks.AnswerOption = append(c.hooks.AnswerOption, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `answeroption.Intercept(f(g(h())))`.
func (c *AnswerOptionClient) Intercept(interceptors ...Interceptor) {
	c.inters.AnswerOption = append(c.inters.AnswerOption, interceptors...)
}

// Create returns a builder for creating a AnswerOption entity.
func (c *AnswerOptionClient) Create() *AnswerOptionCreate {
	mutation := newAnswerOptionMutation(c.config, OpCreate)
	return &AnswerOptionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AnswerOption entities.
func (c *AnswerOptionClient) CreateBulk(builders ...*AnswerOptionCreate) *AnswerOptionCreateBulk {
	return &AnswerOptionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AnswerOptionClient) MapCreateBulk(slice any, setFunc func(*AnswerOptionCreate, int)) *AnswerOptionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AnswerOptionCreateBulk{err: fmt.Errorf("calling to AnswerOptionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AnswerOptionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AnswerOptionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AnswerOption.
func (c *AnswerOptionClient) Update() *AnswerOptionUpdate {
	mutation := newAnswerOptionMutation(c.config, OpUpdate)
	return &AnswerOptionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AnswerOptionClient) UpdateOne(ao *AnswerOption) *AnswerOptionUpdateOne {
	mutation := newAnswerOptionMutation(c.config, OpUpdateOne, withAnswerOption(ao))
	return &AnswerOptionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AnswerOptionClient) UpdateOneID(id string) *AnswerOptionUpdateOne {
	mutation := newAnswerOptionMutation(c.config, OpUpdateOne, withAnswerOptionID(id))
	return &AnswerOptionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AnswerOption.
func (c *AnswerOptionClient) Delete() *AnswerOptionDelete {
	mutation := newAnswerOptionMutation(c.config, OpDelete)
	return &AnswerOptionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AnswerOptionClient) DeleteOne(ao *AnswerOption) *AnswerOptionDeleteOne {
	return c.DeleteOneID(ao.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AnswerOptionClient) DeleteOneID(id string) *AnswerOptionDeleteOne {
	builder := c.Delete().Where(answeroption.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AnswerOptionDeleteOne{builder}
}

// Query returns a query builder for AnswerOption.
func (c *AnswerOptionClient) Query() *AnswerOptionQuery {
	return &AnswerOptionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAnswerOption},
		inters: c.Interceptors(),
	}
}

// Get returns a AnswerOption entity by its id.
func (c *AnswerOptionClient) Get(ctx context.Context, id string) (*AnswerOption, error) {
	return c.Query().Where(answeroption.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AnswerOptionClient) GetX(ctx context.Context, id string) *AnswerOption {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryQuestion queries the question edge of a AnswerOption.
func (c *AnswerOptionClient) QueryQuestion(ao *AnswerOption) *QuestionQuery {
	query := (&QuestionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := ao.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(answeroption.Table, answeroption.FieldID, id),
			sqlgraph.To(question.Table, question.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, answeroption.QuestionTable, answeroption.QuestionColumn),
		)
		fromV = sqlgraph.Neighbors(ao.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AnswerOptionClient) Hooks() []Hook {
	return c.hooks.AnswerOption
}

// Interceptors returns the client interceptors.
func (c *AnswerOptionClient) Interceptors() []Interceptor {
	return c.inters.AnswerOption
}

func (c *AnswerOptionClient) mutate(ctx context.Context, m *AnswerOptionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AnswerOptionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AnswerOptionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AnswerOptionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AnswerOptionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AnswerOption mutation op: %q", m.Op())
	}
}

// ExamClient is a client for the Exam schema.
type ExamClient struct {
	config
}

// NewExamClient returns a client for the Exam from the given config.
func NewExamClient(c config) *ExamClient {
	return &ExamClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `exam.Hooks(f(g(h())))`.
func (c *ExamClient) Use(hooks ...Hook) {
	c.hooks.Exam = append(c.hooks.Exam, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `exam.Intercept(f(g(h())))`.
func (c *ExamClient) Intercept(interceptors ...Interceptor) {
	c.inters.Exam = append(c.inters.Exam, interceptors...)
}

// Create returns a builder for creating a Exam entity.
func (c *ExamClient) Create() *ExamCreate {
	mutation := newExamMutation(c.config, OpCreate)
	return &ExamCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Exam entities.
func (c *ExamClient) CreateBulk(builders ...*ExamCreate) *ExamCreateBulk {
	return &ExamCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ExamClient) MapCreateBulk(slice any, setFunc func(*ExamCreate, int)) *ExamCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ExamCreateBulk{err: fmt.Errorf("calling to ExamClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ExamCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ExamCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Exam.
func (c *ExamClient) Update() *ExamUpdate {
	mutation := newExamMutation(c.config, OpUpdate)
	return &ExamUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ExamClient) UpdateOne(e *Exam) *ExamUpdateOne {
	mutation := newExamMutation(c.config, OpUpdateOne, withExam(e))
	return &ExamUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ExamClient) UpdateOneID(id string) *ExamUpdateOne {
	mutation := newExamMutation(c.config, OpUpdateOne, withExamID(id))
	return &ExamUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Exam.
func (c *ExamClient) Delete() *ExamDelete {
	mutation := newExamMutation(c.config, OpDelete)
	return &ExamDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ExamClient) DeleteOne(e *Exam) *ExamDeleteOne {
	return c.DeleteOneID(e.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ExamClient) DeleteOneID(id string) *ExamDeleteOne {
	builder := c.Delete().Where(exam.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ExamDeleteOne{builder}
}

// Query returns a query builder for Exam.
func (c *ExamClient) Query() *ExamQuery {
	return &ExamQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeExam},
		inters: c.Interceptors(),
	}
}

// Get returns a Exam entity by its id.
func (c *ExamClient) Get(ctx context.Context, id string) (*Exam, error) {
	return c.Query().Where(exam.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ExamClient) GetX(ctx context.Context, id string) *Exam {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ExamClient) Hooks() []Hook {
	return c.hooks.Exam
}

// Interceptors returns the client interceptors.
func (c *ExamClient) Interceptors() []Interceptor {
	return c.inters.Exam
}

func (c *ExamClient) mutate(ctx context.Context, m *ExamMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ExamCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ExamUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ExamUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ExamDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Exam mutation op: %q", m.Op())
	}
}

// PracticeSessionClient is a client for the PracticeSession schema.
type PracticeSessionClient struct {
	config
}

// NewPracticeSessionClient returns a client for the PracticeSession from the given config.
func NewPracticeSessionClient(c config) *PracticeSessionClient {
	return &PracticeSessionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `practicesession.Hooks(f(g(h())))`.
func (c *PracticeSessionClient) Use(hooks ...Hook) {
	c.hooks.PracticeSession = append(c.hooks.PracticeSession, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `practicesession.Intercept(f(g(h())))`.
func (c *PracticeSessionClient) Intercept(interceptors ...Interceptor) {
	c.inters.PracticeSession = append(c.inters.PracticeSession, interceptors...)
}

// Create returns a builder for creating a PracticeSession entity.
func (c *PracticeSessionClient) Create() *PracticeSessionCreate {
	mutation := newPracticeSessionMutation(c.config, OpCreate)
	return &PracticeSessionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PracticeSession entities.
func (c *PracticeSessionClient) CreateBulk(builders ...*PracticeSessionCreate) *PracticeSessionCreateBulk {
	return &PracticeSessionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PracticeSessionClient) MapCreateBulk(slice any, setFunc func(*PracticeSessionCreate, int)) *PracticeSessionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PracticeSessionCreateBulk{err: fmt.Errorf("calling to PracticeSessionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PracticeSessionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PracticeSessionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PracticeSession.
func (c *PracticeSessionClient) Update() *PracticeSessionUpdate {
	mutation := newPracticeSessionMutation(c.config, OpUpdate)
	return &PracticeSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PracticeSessionClient) UpdateOne(ps *PracticeSession) *PracticeSessionUpdateOne {
	mutation := newPracticeSessionMutation(c.config, OpUpdateOne, withPracticeSession(ps))
	return &PracticeSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PracticeSessionClient) UpdateOneID(id string) *PracticeSessionUpdateOne {
	mutation := newPracticeSessionMutation(c.config, OpUpdateOne, withPracticeSessionID(id))
	return &PracticeSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PracticeSession.
func (c *PracticeSessionClient) Delete() *PracticeSessionDelete {
	mutation := newPracticeSessionMutation(c.config, OpDelete)
	return &PracticeSessionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PracticeSessionClient) DeleteOne(ps *PracticeSession) *PracticeSessionDeleteOne {
	return c.DeleteOneID(ps.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PracticeSessionClient) DeleteOneID(id string) *PracticeSessionDeleteOne {
	builder := c.Delete().Where(practicesession.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PracticeSessionDeleteOne{builder}
}

// Query returns a query builder for PracticeSession.
func (c *PracticeSessionClient) Query() *PracticeSessionQuery {
	return &PracticeSessionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePracticeSession},
		inters: c.Interceptors(),
	}
}

// Get returns a PracticeSession entity by its id.
func (c *PracticeSessionClient) Get(ctx context.Context, id string) (*PracticeSession, error) {
	return c.Query().Where(practicesession.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PracticeSessionClient) GetX(ctx context.Context, id string) *PracticeSession {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *PracticeSessionClient) Hooks() []Hook {
	return c.hooks.PracticeSession
}

// Interceptors returns the client interceptors.
func (c *PracticeSessionClient) Interceptors() []Interceptor {
	return c.inters.PracticeSession
}

func (c *PracticeSessionClient) mutate(ctx context.Context, m *PracticeSessionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PracticeSessionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PracticeSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PracticeSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PracticeSessionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PracticeSession mutation op: %q", m.Op())
	}
}

// QuestionClient is a client for the Question schema.
type QuestionClient struct {
	config
}

// NewQuestionClient returns a client for the Question from the given config.
func NewQuestionClient(c config) *QuestionClient {
	return &QuestionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `question.Hooks(f(g(h())))`.
func (c *QuestionClient) Use(hooks ...Hook) {
	c.hooks.Question = append(c.hooks.Question, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `question.Intercept(f(g(h())))`.
func (c *QuestionClient) Intercept(interceptors ...Interceptor) {
	c.inters.Question = append(c.inters.Question, interceptors...)
}

// Create returns a builder for creating a Question entity.
func (c *QuestionClient) Create() *QuestionCreate {
	mutation := newQuestionMutation(c.config, OpCreate)
	return &QuestionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Question entities.
func (c *QuestionClient) CreateBulk(builders ...*QuestionCreate) *QuestionCreateBulk {
	return &QuestionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *QuestionClient) MapCreateBulk(slice any, setFunc func(*QuestionCreate, int)) *QuestionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &QuestionCreateBulk{err: fmt.Errorf("calling to QuestionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*QuestionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &QuestionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Question.
func (c *QuestionClient) Update() *QuestionUpdate {
	mutation := newQuestionMutation(c.config, OpUpdate)
	return &QuestionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *QuestionClient) UpdateOne(q *Question) *QuestionUpdateOne {
	mutation := newQuestionMutation(c.config, OpUpdateOne, withQuestion(q))
	return &QuestionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *QuestionClient) UpdateOneID(id string) *QuestionUpdateOne {
	mutation := newQuestionMutation(c.config, OpUpdateOne, withQuestionID(id))
	return &QuestionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Question.
func (c *QuestionClient) Delete() *QuestionDelete {
	mutation := newQuestionMutation(c.config, OpDelete)
	return &QuestionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *QuestionClient) DeleteOne(q *Question) *QuestionDeleteOne {
	return c.DeleteOneID(q.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *QuestionClient) DeleteOneID(id string) *QuestionDeleteOne {
	builder := c.Delete().Where(question.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &QuestionDeleteOne{builder}
}

// Query returns a query builder for Question.
func (c *QuestionClient) Query() *QuestionQuery {
	return &QuestionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeQuestion},
		inters: c.Interceptors(),
	}
}

// Get returns a Question entity by its id.
func (c *QuestionClient) Get(ctx context.Context, id string) (*Question, error) {
	return c.Query().Where(question.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *QuestionClient) GetX(ctx context.Context, id string) *Question {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryOptions queries the options edge of a Question.
func (c *QuestionClient) QueryOptions(q *Question) *AnswerOptionQuery {
	query := (&AnswerOptionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := q.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(question.Table, question.FieldID, id),
			sqlgraph.To(answeroption.Table, answeroption.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, question.OptionsTable, question.OptionsColumn),
		)
		fromV = sqlgraph.Neighbors(q.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryTopics queries the topics edge of a Question.
func (c *QuestionClient) QueryTopics(q *Question) *TopicQuery {
	query := (&TopicClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := q.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(question.Table, question.FieldID, id),
			sqlgraph.To(topic.Table, topic.FieldID),
			sqlgraph.Edge(sqlgraph.M2M, false, question.TopicsTable, question.TopicsPrimaryKey...),
		)
		fromV = sqlgraph.Neighbors(q.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *QuestionClient) Hooks() []Hook {
	return c.hooks.Question
}

// Interceptors returns the client interceptors.
func (c *QuestionClient) Interceptors() []Interceptor {
	return c.inters.Question
}

func (c *QuestionClient) mutate(ctx context.Context, m *QuestionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&QuestionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&QuestionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&QuestionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&QuestionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Question mutation op: %q", m.Op())
	}
}

// QuestionAttemptClient is a client for the QuestionAttempt schema.
type QuestionAttemptClient struct {
	config
}

// NewQuestionAttemptClient returns a client for the QuestionAttempt from the given config.
func NewQuestionAttemptClient(c config) *QuestionAttemptClient {
	return &QuestionAttemptClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `questionattempt.Hooks(f(g(h())))`.
func (c *QuestionAttemptClient) Use(hooks ...Hook) {
	c.hooks.QuestionAttempt = append(c.hooks.QuestionAttempt, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `questionattempt.Intercept(f(g(h())))`.
func (c *QuestionAttemptClient) Intercept(interceptors ...Interceptor) {
	c.inters.QuestionAttempt = append(c.inters.QuestionAttempt, interceptors...)
}

// Create returns a builder for creating a QuestionAttempt entity.
func (c *QuestionAttemptClient) Create() *QuestionAttemptCreate {
	mutation := newQuestionAttemptMutation(c.config, OpCreate)
	return &QuestionAttemptCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of QuestionAttempt entities.
func (c *QuestionAttemptClient) CreateBulk(builders ...*QuestionAttemptCreate) *QuestionAttemptCreateBulk {
	return &QuestionAttemptCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *QuestionAttemptClient) MapCreateBulk(slice any, setFunc func(*QuestionAttemptCreate, int)) *QuestionAttemptCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &QuestionAttemptCreateBulk{err: fmt.Errorf("calling to QuestionAttemptClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*QuestionAttemptCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &QuestionAttemptCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for QuestionAttempt.
func (c *QuestionAttemptClient) Update() *QuestionAttemptUpdate {
	mutation := newQuestionAttemptMutation(c.config, OpUpdate)
	return &QuestionAttemptUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *QuestionAttemptClient) UpdateOne(qa *QuestionAttempt) *QuestionAttemptUpdateOne {
	mutation := newQuestionAttemptMutation(c.config, OpUpdateOne, withQuestionAttempt(qa))
	return &QuestionAttemptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *QuestionAttemptClient) UpdateOneID(id string) *QuestionAttemptUpdateOne {
	mutation := newQuestionAttemptMutation(c.config, OpUpdateOne, withQuestionAttemptID(id))
	return &QuestionAttemptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for QuestionAttempt.
func (c *QuestionAttemptClient) Delete() *QuestionAttemptDelete {
	mutation := newQuestionAttemptMutation(c.config, OpDelete)
	return &QuestionAttemptDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *QuestionAttemptClient) DeleteOne(qa *QuestionAttempt) *QuestionAttemptDeleteOne {
	return c.DeleteOneID(qa.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *QuestionAttemptClient) DeleteOneID(id string) *QuestionAttemptDeleteOne {
	builder := c.Delete().Where(questionattempt.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &QuestionAttemptDeleteOne{builder}
}

// Query returns a query builder for QuestionAttempt.
func (c *QuestionAttemptClient) Query() *QuestionAttemptQuery {
	return &QuestionAttemptQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeQuestionAttempt},
		inters: c.Interceptors(),
	}
}

// Get returns a QuestionAttempt entity by its id.
func (c *QuestionAttemptClient) Get(ctx context.Context, id string) (*QuestionAttempt, error) {
	return c.Query().Where(questionattempt.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *QuestionAttemptClient) GetX(ctx context.Context, id string) *QuestionAttempt {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *QuestionAttemptClient) Hooks() []Hook {
	return c.hooks.QuestionAttempt
}

// Interceptors returns the client interceptors.
func (c *QuestionAttemptClient) Interceptors() []Interceptor {
	return c.inters.QuestionAttempt
}

func (c *QuestionAttemptClient) mutate(ctx context.Context, m *QuestionAttemptMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&QuestionAttemptCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&QuestionAttemptUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&QuestionAttemptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&QuestionAttemptDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown QuestionAttempt mutation op: %q", m.Op())
	}
}

// QuestionStatClient is a client for the QuestionStat schema.
type QuestionStatClient struct {
	config
}

// NewQuestionStatClient returns a client for the QuestionStat from the given config.
func NewQuestionStatClient(c config) *QuestionStatClient {
	return &QuestionStatClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `questionstat.Hooks(f(g(h())))`.
func (c *QuestionStatClient) Use(hooks ...Hook) {
	c.hooks.QuestionStat = append(c.hooks.QuestionStat, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `questionstat.Intercept(f(g(h())))`.
func (c *QuestionStatClient) Intercept(interceptors ...Interceptor) {
	c.inters.QuestionStat = append(c.inters.QuestionStat, interceptors...)
}

// Create returns a builder for creating a QuestionStat entity.
func (c *QuestionStatClient) Create() *QuestionStatCreate {
	mutation := newQuestionStatMutation(c.config, OpCreate)
	return &QuestionStatCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of QuestionStat entities.
func (c *QuestionStatClient) CreateBulk(builders ...*QuestionStatCreate) *QuestionStatCreateBulk {
	return &QuestionStatCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *QuestionStatClient) MapCreateBulk(slice any, setFunc func(*QuestionStatCreate, int)) *QuestionStatCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &QuestionStatCreateBulk{err: fmt.Errorf("calling to QuestionStatClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*QuestionStatCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &QuestionStatCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for QuestionStat.
func (c *QuestionStatClient) Update() *QuestionStatUpdate {
	mutation := newQuestionStatMutation(c.config, OpUpdate)
	return &QuestionStatUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *QuestionStatClient) UpdateOne(qs *QuestionStat) *QuestionStatUpdateOne {
	mutation := newQuestionStatMutation(c.config, OpUpdateOne, withQuestionStat(qs))
	return &QuestionStatUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *QuestionStatClient) UpdateOneID(id string) *QuestionStatUpdateOne {
	mutation := newQuestionStatMutation(c.config, OpUpdateOne, withQuestionStatID(id))
	return &QuestionStatUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for QuestionStat.
func (c *QuestionStatClient) Delete() *QuestionStatDelete {
	mutation := newQuestionStatMutation(c.config, OpDelete)
	return &QuestionStatDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *QuestionStatClient) DeleteOne(qs *QuestionStat) *QuestionStatDeleteOne {
	return c.DeleteOneID(qs.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *QuestionStatClient) DeleteOneID(id string) *QuestionStatDeleteOne {
	builder := c.Delete().Where(questionstat.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &QuestionStatDeleteOne{builder}
}

// Query returns a query builder for QuestionStat.
func (c *QuestionStatClient) Query() *QuestionStatQuery {
	return &QuestionStatQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeQuestionStat},
		inters: c.Interceptors(),
	}
}

// Get returns a QuestionStat entity by its id.
func (c *QuestionStatClient) Get(ctx context.Context, id string) (*QuestionStat, error) {
	return c.Query().Where(questionstat.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *QuestionStatClient) GetX(ctx context.Context, id string) *QuestionStat {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *QuestionStatClient) Hooks() []Hook {
	return c.hooks.QuestionStat
}

// Interceptors returns the client interceptors.
func (c *QuestionStatClient) Interceptors() []Interceptor {
	return c.inters.QuestionStat
}

func (c *QuestionStatClient) mutate(ctx context.Context, m *QuestionStatMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&QuestionStatCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&QuestionStatUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&QuestionStatUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&QuestionStatDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown QuestionStat mutation op: %q", m.Op())
	}
}

// TopicClient is a client for the Topic schema.
type TopicClient struct {
	config
}

// NewTopicClient returns a client for the Topic from the given config.
func NewTopicClient(c config) *TopicClient {
	return &TopicClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `topic.Hooks(f(g(h())))`.
func (c *TopicClient) Use(hooks ...Hook) {
	c.hooks.Topic = append(c.hooks.Topic, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `topic.Intercept(f(g(h())))`.
func (c *TopicClient) Intercept(interceptors ...Interceptor) {
	c.inters.Topic = append(c.inters.Topic, interceptors...)
}

// Create returns a builder for creating a Topic entity.
func (c *TopicClient) Create() *TopicCreate {
	mutation := newTopicMutation(c.config, OpCreate)
	return &TopicCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Topic entities.
func (c *TopicClient) CreateBulk(builders ...*TopicCreate) *TopicCreateBulk {
	return &TopicCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TopicClient) MapCreateBulk(slice any, setFunc func(*TopicCreate, int)) *TopicCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TopicCreateBulk{err: fmt.Errorf("calling to TopicClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TopicCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TopicCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Topic.
func (c *TopicClient) Update() *TopicUpdate {
	mutation := newTopicMutation(c.config, OpUpdate)
	return &TopicUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TopicClient) UpdateOne(t *Topic) *TopicUpdateOne {
	mutation := newTopicMutation(c.config, OpUpdateOne, withTopic(t))
	return &TopicUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TopicClient) UpdateOneID(id string) *TopicUpdateOne {
	mutation := newTopicMutation(c.config, OpUpdateOne, withTopicID(id))
	return &TopicUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Topic.
func (c *TopicClient) Delete() *TopicDelete {
	mutation := newTopicMutation(c.config, OpDelete)
	return &TopicDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TopicClient) DeleteOne(t *Topic) *TopicDeleteOne {
	return c.DeleteOneID(t.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TopicClient) DeleteOneID(id string) *TopicDeleteOne {
	builder := c.Delete().Where(topic.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TopicDeleteOne{builder}
}

// Query returns a query builder for Topic.
func (c *TopicClient) Query() *TopicQuery {
	return &TopicQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTopic},
		inters: c.Interceptors(),
	}
}

// Get returns a Topic entity by its id.
func (c *TopicClient) Get(ctx context.Context, id string) (*Topic, error) {
	return c.Query().Where(topic.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TopicClient) GetX(ctx context.Context, id string) *Topic {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryQuestions queries the questions edge of a Topic.
func (c *TopicClient) QueryQuestions(t *Topic) *QuestionQuery {
	query := (&QuestionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := t.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(topic.Table, topic.FieldID, id),
			sqlgraph.To(question.Table, question.FieldID),
			sqlgraph.Edge(sqlgraph.M2M, true, topic.QuestionsTable, topic.QuestionsPrimaryKey...),
		)
		fromV = sqlgraph.Neighbors(t.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *TopicClient) Hooks() []Hook {
	return c.hooks.Topic
}

// Interceptors returns the client interceptors.
func (c *TopicClient) Interceptors() []Interceptor {
	return c.inters.Topic
}

func (c *TopicClient) mutate(ctx context.Context, m *TopicMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TopicCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TopicUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TopicUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TopicDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Topic mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		AnswerOption, Exam, PracticeSession, Question, QuestionAttempt, QuestionStat,
		Topic []ent.Hook
	}
	inters struct {
		AnswerOption, Exam, PracticeSession, Question, QuestionAttempt, QuestionStat,
		Topic []ent.Interceptor
	}
)
