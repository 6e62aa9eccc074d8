// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/jfarleigh/certrun/ent/answeroption"
	"github.com/jfarleigh/certrun/ent/predicate"
	"github.com/jfarleigh/certrun/ent/question"
)

// AnswerOptionQuery is the builder for querying AnswerOption entities.
type AnswerOptionQuery struct {
	config
	ctx          *QueryContext
	order        []answeroption.OrderOption
	inters       []Interceptor
	predicates   []predicate.AnswerOption
	withQuestion *QuestionQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the AnswerOptionQuery builder.
func (aoq *AnswerOptionQuery) Where(ps ...predicate.AnswerOption) *AnswerOptionQuery {
	aoq.predicates = append(aoq.predicates, ps...)
	return aoq
}

// Limit the number of records to be returned by this query.
func (aoq *AnswerOptionQuery) Limit(limit int) *AnswerOptionQuery {
	aoq.ctx.Limit = &limit
	return aoq
}

// Offset to start from.
func (aoq *AnswerOptionQuery) Offset(offset int) *AnswerOptionQuery {
	aoq.ctx.Offset = &offset
	return aoq
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (aoq *AnswerOptionQuery) Unique(unique bool) *AnswerOptionQuery {
	aoq.ctx.Unique = &unique
	return aoq
}

// Order specifies how the records should be ordered.
func (aoq *AnswerOptionQuery) Order(o ...answeroption.OrderOption) *AnswerOptionQuery {
	aoq.order = append(aoq.order, o...)
	return aoq
}

// QueryQuestion chains the current query on the "question" edge.
func (aoq *AnswerOptionQuery) QueryQuestion() *QuestionQuery {
	query := (&QuestionClient{config: aoq.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := aoq.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := aoq.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(answeroption.Table, answeroption.FieldID, selector),
			sqlgraph.To(question.Table, question.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, answeroption.QuestionTable, answeroption.QuestionColumn),
		)
		fromU = sqlgraph.SetNeighbors(aoq.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first AnswerOption entity from the query.
// Returns a *NotFoundError when no AnswerOption was found.
func (aoq *AnswerOptionQuery) First(ctx context.Context) (*AnswerOption, error) {
	nodes, err := aoq.Limit(1).All(setContextOp(ctx, aoq.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{answeroption.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (aoq *AnswerOptionQuery) FirstX(ctx context.Context) *AnswerOption {
	node, err := aoq.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first AnswerOption ID from the query.
// Returns a *NotFoundError when no AnswerOption ID was found.
func (aoq *AnswerOptionQuery) FirstID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = aoq.Limit(1).IDs(setContextOp(ctx, aoq.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{answeroption.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (aoq *AnswerOptionQuery) FirstIDX(ctx context.Context) string {
	id, err := aoq.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single AnswerOption entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one AnswerOption entity is found.
// Returns a *NotFoundError when no AnswerOption entities are found.
func (aoq *AnswerOptionQuery) Only(ctx context.Context) (*AnswerOption, error) {
	nodes, err := aoq.Limit(2).All(setContextOp(ctx, aoq.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{answeroption.Label}
	default:
		return nil, &NotSingularError{answeroption.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (aoq *AnswerOptionQuery) OnlyX(ctx context.Context) *AnswerOption {
	node, err := aoq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only AnswerOption ID in the query.
// Returns a *NotSingularError when more than one AnswerOption ID is found.
// Returns a *NotFoundError when no entities are found.
func (aoq *AnswerOptionQuery) OnlyID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = aoq.Limit(2).IDs(setContextOp(ctx, aoq.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{answeroption.Label}
	default:
		err = &NotSingularError{answeroption.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (aoq *AnswerOptionQuery) OnlyIDX(ctx context.Context) string {
	id, err := aoq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of AnswerOptions.
func (aoq *AnswerOptionQuery) All(ctx context.Context) ([]*AnswerOption, error) {
	ctx = setContextOp(ctx, aoq.ctx, ent.OpQueryAll)
	if err := aoq.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*AnswerOption, *AnswerOptionQuery]()
	return withInterceptors[[]*AnswerOption](ctx, aoq, qr, aoq.inters)
}

// AllX is like All, but panics if an error occurs.
func (aoq *AnswerOptionQuery) AllX(ctx context.Context) []*AnswerOption {
	nodes, err := aoq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of AnswerOption IDs.
func (aoq *AnswerOptionQuery) IDs(ctx context.Context) (ids []string, err error) {
	if aoq.ctx.Unique == nil && aoq.path != nil {
		aoq.Unique(true)
	}
	ctx = setContextOp(ctx, aoq.ctx, ent.OpQueryIDs)
	if err = aoq.Select(answeroption.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (aoq *AnswerOptionQuery) IDsX(ctx context.Context) []string {
	ids, err := aoq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (aoq *AnswerOptionQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, aoq.ctx, ent.OpQueryCount)
	if err := aoq.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, aoq, querierCount[*AnswerOptionQuery](), aoq.inters)
}

// CountX is like Count, but panics if an error occurs.
func (aoq *AnswerOptionQuery) CountX(ctx context.Context) int {
	count, err := aoq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (aoq *AnswerOptionQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, aoq.ctx, ent.OpQueryExist)
	switch _, err := aoq.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (aoq *AnswerOptionQuery) ExistX(ctx context.Context) bool {
	exist, err := aoq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the AnswerOptionQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (aoq *AnswerOptionQuery) Clone() *AnswerOptionQuery {
	if aoq == nil {
		return nil
	}
	return &AnswerOptionQuery{
		config:       aoq.config,
		ctx:          aoq.ctx.Clone(),
		order:        append([]answeroption.OrderOption{}, aoq.order...),
		inters:       append([]Interceptor{}, aoq.inters...),
		predicates:   append([]predicate.AnswerOption{}, aoq.predicates...),
		withQuestion: aoq.withQuestion.Clone(),
		// clone intermediate query.
		sql:  aoq.sql.Clone(),
		path: aoq.path,
	}
}

// WithQuestion tells the query-builder to eager-load the nodes that are connected to
// the "question" edge. The optional arguments are used to configure the query builder of the edge.
func (aoq *AnswerOptionQuery) WithQuestion(opts ...func(*QuestionQuery)) *AnswerOptionQuery {
	query := (&QuestionClient{config: aoq.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	aoq.withQuestion = query
	return aoq
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		CreatedAt time.Time `json:"created_at,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.AnswerOption.Query().
//		GroupBy(answeroption.FieldCreatedAt).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (aoq *AnswerOptionQuery) GroupBy(field string, fields ...string) *AnswerOptionGroupBy {
	aoq.ctx.Fields = append([]string{field}, fields...)
	grbuild := &AnswerOptionGroupBy{build: aoq}
	grbuild.flds = &aoq.ctx.Fields
	grbuild.label = answeroption.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		CreatedAt time.Time `json:"created_at,omitempty"`
//	}
//
//	client.AnswerOption.Query().
//		Select(answeroption.FieldCreatedAt).
//		Scan(ctx, &v)
func (aoq *AnswerOptionQuery) Select(fields ...string) *AnswerOptionSelect {
	aoq.ctx.Fields = append(aoq.ctx.Fields, fields...)
	sbuild := &AnswerOptionSelect{AnswerOptionQuery: aoq}
	sbuild.label = answeroption.Label
	sbuild.flds, sbuild.scan = &aoq.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a AnswerOptionSelect configured with the given aggregations.
func (aoq *AnswerOptionQuery) Aggregate(fns ...AggregateFunc) *AnswerOptionSelect {
	return aoq.Select().Aggregate(fns...)
}

func (aoq *AnswerOptionQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range aoq.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, aoq); err != nil {
				return err
			}
		}
	}
	for _, f := range aoq.ctx.Fields {
		if !answeroption.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if aoq.path != nil {
		prev, err := aoq.path(ctx)
		if err != nil {
			return err
		}
		aoq.sql = prev
	}
	return nil
}

func (aoq *AnswerOptionQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*AnswerOption, error) {
	var (
		nodes       = []*AnswerOption{}
		_spec       = aoq.querySpec()
		loadedTypes = [1]bool{
			aoq.withQuestion != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*AnswerOption).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &AnswerOption{config: aoq.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, aoq.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := aoq.withQuestion; query != nil {
		if err := aoq.loadQuestion(ctx, query, nodes, nil,
			func(n *AnswerOption, e *Question) { n.Edges.Question = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (aoq *AnswerOptionQuery) loadQuestion(ctx context.Context, query *QuestionQuery, nodes []*AnswerOption, init func(*AnswerOption), assign func(*AnswerOption, *Question)) error {
	ids := make([]string, 0, len(nodes))
	nodeids := make(map[string][]*AnswerOption)
	for i := range nodes {
		fk := nodes[i].QuestionID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(question.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "question_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}

func (aoq *AnswerOptionQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := aoq.querySpec()
	_spec.Node.Columns = aoq.ctx.Fields
	if len(aoq.ctx.Fields) > 0 {
		_spec.Unique = aoq.ctx.Unique != nil && *aoq.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, aoq.driver, _spec)
}

func (aoq *AnswerOptionQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(answeroption.Table, answeroption.Columns, sqlgraph.NewFieldSpec(answeroption.FieldID, field.TypeString))
	_spec.From = aoq.sql
	if unique := aoq.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if aoq.path != nil {
		_spec.Unique = true
	}
	if fields := aoq.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, answeroption.FieldID)
		for i := range fields {
			if fields[i] != answeroption.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if aoq.withQuestion != nil {
			_spec.Node.AddColumnOnce(answeroption.FieldQuestionID)
		}
	}
	if ps := aoq.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := aoq.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := aoq.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := aoq.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (aoq *AnswerOptionQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(aoq.driver.Dialect())
	t1 := builder.Table(answeroption.Table)
	columns := aoq.ctx.Fields
	if len(columns) == 0 {
		columns = answeroption.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if aoq.sql != nil {
		selector = aoq.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if aoq.ctx.Unique != nil && *aoq.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range aoq.predicates {
		p(selector)
	}
	for _, p := range aoq.order {
		p(selector)
	}
	if offset := aoq.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := aoq.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// AnswerOptionGroupBy is the group-by builder for AnswerOption entities.
type AnswerOptionGroupBy struct {
	selector
	build *AnswerOptionQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (aogb *AnswerOptionGroupBy) Aggregate(fns ...AggregateFunc) *AnswerOptionGroupBy {
	aogb.fns = append(aogb.fns, fns...)
	return aogb
}

// Scan applies the selector query and scans the result into the given value.
func (aogb *AnswerOptionGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, aogb.build.ctx, ent.OpQueryGroupBy)
	if err := aogb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*AnswerOptionQuery, *AnswerOptionGroupBy](ctx, aogb.build, aogb, aogb.build.inters, v)
}

func (aogb *AnswerOptionGroupBy) sqlScan(ctx context.Context, root *AnswerOptionQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(aogb.fns))
	for _, fn := range aogb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*aogb.flds)+len(aogb.fns))
		for _, f := range *aogb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*aogb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := aogb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// AnswerOptionSelect is the builder for selecting fields of AnswerOption entities.
type AnswerOptionSelect struct {
	*AnswerOptionQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (aos *AnswerOptionSelect) Aggregate(fns ...AggregateFunc) *AnswerOptionSelect {
	aos.fns = append(aos.fns, fns...)
	return aos
}

// Scan applies the selector query and scans the result into the given value.
func (aos *AnswerOptionSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, aos.ctx, ent.OpQuerySelect)
	if err := aos.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*AnswerOptionQuery, *AnswerOptionSelect](ctx, aos.AnswerOptionQuery, aos, aos.inters, v)
}

func (aos *AnswerOptionSelect) sqlScan(ctx context.Context, root *AnswerOptionQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(aos.fns))
	for _, fn := range aos.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*aos.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := aos.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
