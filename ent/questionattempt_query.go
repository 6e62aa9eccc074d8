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
	"github.com/jfarleigh/certrun/ent/questionattempt"
)

// QuestionAttemptQuery is the builder for querying QuestionAttempt entities.
type QuestionAttemptQuery struct {
	config
	ctx        *QueryContext
	order      []questionattempt.OrderOption
	inters     []Interceptor
	predicates []predicate.QuestionAttempt
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the QuestionAttemptQuery builder.
func (qaq *QuestionAttemptQuery) Where(ps ...predicate.QuestionAttempt) *QuestionAttemptQuery {
	qaq.predicates = append(qaq.predicates, ps...)
	return qaq
}

// Limit the number of records to be returned by this query.
func (qaq *QuestionAttemptQuery) Limit(limit int) *QuestionAttemptQuery {
	qaq.ctx.Limit = &limit
	return qaq
}

// Offset to start from.
func (qaq *QuestionAttemptQuery) Offset(offset int) *QuestionAttemptQuery {
	qaq.ctx.Offset = &offset
	return qaq
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (qaq *QuestionAttemptQuery) Unique(unique bool) *QuestionAttemptQuery {
	qaq.ctx.Unique = &unique
	return qaq
}

// Order specifies how the records should be ordered.
func (qaq *QuestionAttemptQuery) Order(o ...questionattempt.OrderOption) *QuestionAttemptQuery {
	qaq.order = append(qaq.order, o...)
	return qaq
}

// First returns the first QuestionAttempt entity from the query.
// Returns a *NotFoundError when no QuestionAttempt was found.
func (qaq *QuestionAttemptQuery) First(ctx context.Context) (*QuestionAttempt, error) {
	nodes, err := qaq.Limit(1).All(setContextOp(ctx, qaq.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{questionattempt.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (qaq *QuestionAttemptQuery) FirstX(ctx context.Context) *QuestionAttempt {
	node, err := qaq.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first QuestionAttempt ID from the query.
// Returns a *NotFoundError when no QuestionAttempt ID was found.
func (qaq *QuestionAttemptQuery) FirstID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = qaq.Limit(1).IDs(setContextOp(ctx, qaq.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{questionattempt.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (qaq *QuestionAttemptQuery) FirstIDX(ctx context.Context) string {
	id, err := qaq.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single QuestionAttempt entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one QuestionAttempt entity is found.
// Returns a *NotFoundError when no QuestionAttempt entities are found.
func (qaq *QuestionAttemptQuery) Only(ctx context.Context) (*QuestionAttempt, error) {
	nodes, err := qaq.Limit(2).All(setContextOp(ctx, qaq.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{questionattempt.Label}
	default:
		return nil, &NotSingularError{questionattempt.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (qaq *QuestionAttemptQuery) OnlyX(ctx context.Context) *QuestionAttempt {
	node, err := qaq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only QuestionAttempt ID in the query.
// Returns a *NotSingularError when more than one QuestionAttempt ID is found.
// Returns a *NotFoundError when no entities are found.
func (qaq *QuestionAttemptQuery) OnlyID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = qaq.Limit(2).IDs(setContextOp(ctx, qaq.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{questionattempt.Label}
	default:
		err = &NotSingularError{questionattempt.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (qaq *QuestionAttemptQuery) OnlyIDX(ctx context.Context) string {
	id, err := qaq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of QuestionAttempts.
func (qaq *QuestionAttemptQuery) All(ctx context.Context) ([]*QuestionAttempt, error) {
	ctx = setContextOp(ctx, qaq.ctx, ent.OpQueryAll)
	if err := qaq.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*QuestionAttempt, *QuestionAttemptQuery]()
	return withInterceptors[[]*QuestionAttempt](ctx, qaq, qr, qaq.inters)
}

// AllX is like All, but panics if an error occurs.
func (qaq *QuestionAttemptQuery) AllX(ctx context.Context) []*QuestionAttempt {
	nodes, err := qaq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of QuestionAttempt IDs.
func (qaq *QuestionAttemptQuery) IDs(ctx context.Context) (ids []string, err error) {
	if qaq.ctx.Unique == nil && qaq.path != nil {
		qaq.Unique(true)
	}
	ctx = setContextOp(ctx, qaq.ctx, ent.OpQueryIDs)
	if err = qaq.Select(questionattempt.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (qaq *QuestionAttemptQuery) IDsX(ctx context.Context) []string {
	ids, err := qaq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (qaq *QuestionAttemptQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, qaq.ctx, ent.OpQueryCount)
	if err := qaq.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, qaq, querierCount[*QuestionAttemptQuery](), qaq.inters)
}

// CountX is like Count, but panics if an error occurs.
func (qaq *QuestionAttemptQuery) CountX(ctx context.Context) int {
	count, err := qaq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (qaq *QuestionAttemptQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, qaq.ctx, ent.OpQueryExist)
	switch _, err := qaq.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (qaq *QuestionAttemptQuery) ExistX(ctx context.Context) bool {
	exist, err := qaq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the QuestionAttemptQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (qaq *QuestionAttemptQuery) Clone() *QuestionAttemptQuery {
	if qaq == nil {
		return nil
	}
	return &QuestionAttemptQuery{
		config:     qaq.config,
		ctx:        qaq.ctx.Clone(),
		order:      append([]questionattempt.OrderOption{}, qaq.order...),
		inters:     append([]Interceptor{}, qaq.inters...),
		predicates: append([]predicate.QuestionAttempt{}, qaq.predicates...),
		// clone intermediate query.
		sql:  qaq.sql.Clone(),
		path: qaq.path,
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
//	client.QuestionAttempt.Query().
//		GroupBy(questionattempt.FieldCreatedAt).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (qaq *QuestionAttemptQuery) GroupBy(field string, fields ...string) *QuestionAttemptGroupBy {
	qaq.ctx.Fields = append([]string{field}, fields...)
	grbuild := &QuestionAttemptGroupBy{build: qaq}
	grbuild.flds = &qaq.ctx.Fields
	grbuild.label = questionattempt.Label
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
//	client.QuestionAttempt.Query().
//		Select(questionattempt.FieldCreatedAt).
//		Scan(ctx, &v)
func (qaq *QuestionAttemptQuery) Select(fields ...string) *QuestionAttemptSelect {
	qaq.ctx.Fields = append(qaq.ctx.Fields, fields...)
	sbuild := &QuestionAttemptSelect{QuestionAttemptQuery: qaq}
	sbuild.label = questionattempt.Label
	sbuild.flds, sbuild.scan = &qaq.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a QuestionAttemptSelect configured with the given aggregations.
func (qaq *QuestionAttemptQuery) Aggregate(fns ...AggregateFunc) *QuestionAttemptSelect {
	return qaq.Select().Aggregate(fns...)
}

func (qaq *QuestionAttemptQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range qaq.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, qaq); err != nil {
				return err
			}
		}
	}
	for _, f := range qaq.ctx.Fields {
		if !questionattempt.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if qaq.path != nil {
		prev, err := qaq.path(ctx)
		if err != nil {
			return err
		}
		qaq.sql = prev
	}
	return nil
}

func (qaq *QuestionAttemptQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*QuestionAttempt, error) {
	var (
		nodes = []*QuestionAttempt{}
		_spec = qaq.querySpec()
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*QuestionAttempt).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &QuestionAttempt{config: qaq.config}
		nodes = append(nodes, node)
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, qaq.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	return nodes, nil
}

func (qaq *QuestionAttemptQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := qaq.querySpec()
	_spec.Node.Columns = qaq.ctx.Fields
	if len(qaq.ctx.Fields) > 0 {
		_spec.Unique = qaq.ctx.Unique != nil && *qaq.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, qaq.driver, _spec)
}

func (qaq *QuestionAttemptQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(questionattempt.Table, questionattempt.Columns, sqlgraph.NewFieldSpec(questionattempt.FieldID, field.TypeString))
	_spec.From = qaq.sql
	if unique := qaq.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if qaq.path != nil {
		_spec.Unique = true
	}
	if fields := qaq.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, questionattempt.FieldID)
		for i := range fields {
			if fields[i] != questionattempt.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := qaq.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := qaq.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := qaq.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := qaq.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (qaq *QuestionAttemptQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(qaq.driver.Dialect())
	t1 := builder.Table(questionattempt.Table)
	columns := qaq.ctx.Fields
	if len(columns) == 0 {
		columns = questionattempt.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if qaq.sql != nil {
		selector = qaq.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if qaq.ctx.Unique != nil && *qaq.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range qaq.predicates {
		p(selector)
	}
	for _, p := range qaq.order {
		p(selector)
	}
	if offset := qaq.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := qaq.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// QuestionAttemptGroupBy is the group-by builder for QuestionAttempt entities.
type QuestionAttemptGroupBy struct {
	selector
	build *QuestionAttemptQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (qagb *QuestionAttemptGroupBy) Aggregate(fns ...AggregateFunc) *QuestionAttemptGroupBy {
	qagb.fns = append(qagb.fns, fns...)
	return qagb
}

// Scan applies the selector query and scans the result into the given value.
func (qagb *QuestionAttemptGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, qagb.build.ctx, ent.OpQueryGroupBy)
	if err := qagb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*QuestionAttemptQuery, *QuestionAttemptGroupBy](ctx, qagb.build, qagb, qagb.build.inters, v)
}

func (qagb *QuestionAttemptGroupBy) sqlScan(ctx context.Context, root *QuestionAttemptQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(qagb.fns))
	for _, fn := range qagb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*qagb.flds)+len(qagb.fns))
		for _, f := range *qagb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*qagb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := qagb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// QuestionAttemptSelect is the builder for selecting fields of QuestionAttempt entities.
type QuestionAttemptSelect struct {
	*QuestionAttemptQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (qas *QuestionAttemptSelect) Aggregate(fns ...AggregateFunc) *QuestionAttemptSelect {
	qas.fns = append(qas.fns, fns...)
	return qas
}

// Scan applies the selector query and scans the result into the given value.
func (qas *QuestionAttemptSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, qas.ctx, ent.OpQuerySelect)
	if err := qas.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*QuestionAttemptQuery, *QuestionAttemptSelect](ctx, qas.QuestionAttemptQuery, qas, qas.inters, v)
}

func (qas *QuestionAttemptSelect) sqlScan(ctx context.Context, root *QuestionAttemptQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(qas.fns))
	for _, fn := range qas.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*qas.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := qas.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
