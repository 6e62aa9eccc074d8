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
	"github.com/jfarleigh/certrun/ent/predicate"
	"github.com/jfarleigh/certrun/ent/questionstat"
)

// QuestionStatQuery is the builder for querying QuestionStat entities.
type QuestionStatQuery struct {
	config
	ctx        *QueryContext
	order      []questionstat.OrderOption
	inters     []Interceptor
	predicates []predicate.QuestionStat
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the QuestionStatQuery builder.
func (qsq *QuestionStatQuery) Where(ps ...predicate.QuestionStat) *QuestionStatQuery {
	qsq.predicates = append(qsq.predicates, ps...)
	return qsq
}

// Limit the number of records to be returned by this query.
func (qsq *QuestionStatQuery) Limit(limit int) *QuestionStatQuery {
	qsq.ctx.Limit = &limit
	return qsq
}

// Offset to start from.
func (qsq *QuestionStatQuery) Offset(offset int) *QuestionStatQuery {
	qsq.ctx.Offset = &offset
	return qsq
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (qsq *QuestionStatQuery) Unique(unique bool) *QuestionStatQuery {
	qsq.ctx.Unique = &unique
	return qsq
}

// Order specifies how the records should be ordered.
func (qsq *QuestionStatQuery) Order(o ...questionstat.OrderOption) *QuestionStatQuery {
	qsq.order = append(qsq.order, o...)
	return qsq
}

// First returns the first QuestionStat entity from the query.
// Returns a *NotFoundError when no QuestionStat was found.
func (qsq *QuestionStatQuery) First(ctx context.Context) (*QuestionStat, error) {
	nodes, err := qsq.Limit(1).All(setContextOp(ctx, qsq.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{questionstat.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (qsq *QuestionStatQuery) FirstX(ctx context.Context) *QuestionStat {
	node, err := qsq.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first QuestionStat ID from the query.
// Returns a *NotFoundError when no QuestionStat ID was found.
func (qsq *QuestionStatQuery) FirstID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = qsq.Limit(1).IDs(setContextOp(ctx, qsq.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{questionstat.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (qsq *QuestionStatQuery) FirstIDX(ctx context.Context) string {
	id, err := qsq.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single QuestionStat entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one QuestionStat entity is found.
// Returns a *NotFoundError when no QuestionStat entities are found.
func (qsq *QuestionStatQuery) Only(ctx context.Context) (*QuestionStat, error) {
	nodes, err := qsq.Limit(2).All(setContextOp(ctx, qsq.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{questionstat.Label}
	default:
		return nil, &NotSingularError{questionstat.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (qsq *QuestionStatQuery) OnlyX(ctx context.Context) *QuestionStat {
	node, err := qsq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only QuestionStat ID in the query.
// Returns a *NotSingularError when more than one QuestionStat ID is found.
// Returns a *NotFoundError when no entities are found.
func (qsq *QuestionStatQuery) OnlyID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = qsq.Limit(2).IDs(setContextOp(ctx, qsq.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{questionstat.Label}
	default:
		err = &NotSingularError{questionstat.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (qsq *QuestionStatQuery) OnlyIDX(ctx context.Context) string {
	id, err := qsq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of QuestionStats.
func (qsq *QuestionStatQuery) All(ctx context.Context) ([]*QuestionStat, error) {
	ctx = setContextOp(ctx, qsq.ctx, ent.OpQueryAll)
	if err := qsq.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*QuestionStat, *QuestionStatQuery]()
	return withInterceptors[[]*QuestionStat](ctx, qsq, qr, qsq.inters)
}

// AllX is like All, but panics if an error occurs.
func (qsq *QuestionStatQuery) AllX(ctx context.Context) []*QuestionStat {
	nodes, err := qsq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of QuestionStat IDs.
func (qsq *QuestionStatQuery) IDs(ctx context.Context) (ids []string, err error) {
	if qsq.ctx.Unique == nil && qsq.path != nil {
		qsq.Unique(true)
	}
	ctx = setContextOp(ctx, qsq.ctx, ent.OpQueryIDs)
	if err = qsq.Select(questionstat.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (qsq *QuestionStatQuery) IDsX(ctx context.Context) []string {
	ids, err := qsq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (qsq *QuestionStatQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, qsq.ctx, ent.OpQueryCount)
	if err := qsq.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, qsq, querierCount[*QuestionStatQuery](), qsq.inters)
}

// CountX is like Count, but panics if an error occurs.
func (qsq *QuestionStatQuery) CountX(ctx context.Context) int {
	count, err := qsq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (qsq *QuestionStatQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, qsq.ctx, ent.OpQueryExist)
	switch _, err := qsq.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (qsq *QuestionStatQuery) ExistX(ctx context.Context) bool {
	exist, err := qsq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the QuestionStatQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (qsq *QuestionStatQuery) Clone() *QuestionStatQuery {
	if qsq == nil {
		return nil
	}
	return &QuestionStatQuery{
		config:     qsq.config,
		ctx:        qsq.ctx.Clone(),
		order:      append([]questionstat.OrderOption{}, qsq.order...),
		inters:     append([]Interceptor{}, qsq.inters...),
		predicates: append([]predicate.QuestionStat{}, qsq.predicates...),
		// clone intermediate query.
		sql:  qsq.sql.Clone(),
		path: qsq.path,
	}
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
//	client.QuestionStat.Query().
//		GroupBy(questionstat.FieldCreatedAt).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (qsq *QuestionStatQuery) GroupBy(field string, fields ...string) *QuestionStatGroupBy {
	qsq.ctx.Fields = append([]string{field}, fields...)
	grbuild := &QuestionStatGroupBy{build: qsq}
	grbuild.flds = &qsq.ctx.Fields
	grbuild.label = questionstat.Label
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
//	client.QuestionStat.Query().
//		Select(questionstat.FieldCreatedAt).
//		Scan(ctx, &v)
func (qsq *QuestionStatQuery) Select(fields ...string) *QuestionStatSelect {
	qsq.ctx.Fields = append(qsq.ctx.Fields, fields...)
	sbuild := &QuestionStatSelect{QuestionStatQuery: qsq}
	sbuild.label = questionstat.Label
	sbuild.flds, sbuild.scan = &qsq.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a QuestionStatSelect configured with the given aggregations.
func (qsq *QuestionStatQuery) Aggregate(fns ...AggregateFunc) *QuestionStatSelect {
	return qsq.Select().Aggregate(fns...)
}

func (qsq *QuestionStatQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range qsq.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, qsq); err != nil {
				return err
			}
		}
	}
	for _, f := range qsq.ctx.Fields {
		if !questionstat.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if qsq.path != nil {
		prev, err := qsq.path(ctx)
		if err != nil {
			return err
		}
		qsq.sql = prev
	}
	return nil
}

func (qsq *QuestionStatQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*QuestionStat, error) {
	var (
		nodes = []*QuestionStat{}
		_spec = qsq.querySpec()
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*QuestionStat).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &QuestionStat{config: qsq.config}
		nodes = append(nodes, node)
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, qsq.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	return nodes, nil
}

func (qsq *QuestionStatQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := qsq.querySpec()
	_spec.Node.Columns = qsq.ctx.Fields
	if len(qsq.ctx.Fields) > 0 {
		_spec.Unique = qsq.ctx.Unique != nil && *qsq.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, qsq.driver, _spec)
}

func (qsq *QuestionStatQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(questionstat.Table, questionstat.Columns, sqlgraph.NewFieldSpec(questionstat.FieldID, field.TypeString))
	_spec.From = qsq.sql
	if unique := qsq.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if qsq.path != nil {
		_spec.Unique = true
	}
	if fields := qsq.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, questionstat.FieldID)
		for i := range fields {
			if fields[i] != questionstat.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := qsq.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := qsq.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := qsq.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := qsq.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (qsq *QuestionStatQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(qsq.driver.Dialect())
	t1 := builder.Table(questionstat.Table)
	columns := qsq.ctx.Fields
	if len(columns) == 0 {
		columns = questionstat.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if qsq.sql != nil {
		selector = qsq.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if qsq.ctx.Unique != nil && *qsq.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range qsq.predicates {
		p(selector)
	}
	for _, p := range qsq.order {
		p(selector)
	}
	if offset := qsq.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := qsq.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// QuestionStatGroupBy is the group-by builder for QuestionStat entities.
type QuestionStatGroupBy struct {
	selector
	build *QuestionStatQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (qsgb *QuestionStatGroupBy) Aggregate(fns ...AggregateFunc) *QuestionStatGroupBy {
	qsgb.fns = append(qsgb.fns, fns...)
	return qsgb
}

// Scan applies the selector query and scans the result into the given value.
func (qsgb *QuestionStatGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, qsgb.build.ctx, ent.OpQueryGroupBy)
	if err := qsgb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*QuestionStatQuery, *QuestionStatGroupBy](ctx, qsgb.build, qsgb, qsgb.build.inters, v)
}

func (qsgb *QuestionStatGroupBy) sqlScan(ctx context.Context, root *QuestionStatQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(qsgb.fns))
	for _, fn := range qsgb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*qsgb.flds)+len(qsgb.fns))
		for _, f := range *qsgb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*qsgb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := qsgb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// QuestionStatSelect is the builder for selecting fields of QuestionStat entities.
type QuestionStatSelect struct {
	*QuestionStatQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (qss *QuestionStatSelect) Aggregate(fns ...AggregateFunc) *QuestionStatSelect {
	qss.fns = append(qss.fns, fns...)
	return qss
}

// Scan applies the selector query and scans the result into the given value.
func (qss *QuestionStatSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, qss.ctx, ent.OpQuerySelect)
	if err := qss.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*QuestionStatQuery, *QuestionStatSelect](ctx, qss.QuestionStatQuery, qss, qss.inters, v)
}

func (qss *QuestionStatSelect) sqlScan(ctx context.Context, root *QuestionStatQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(qss.fns))
	for _, fn := range qss.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*qss.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := qss.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
