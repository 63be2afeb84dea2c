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
	"github.com/abhisek/idiomaster/ent/predicate"
	"github.com/abhisek/idiomaster/ent/quizresultevent"
)

// QuizResultEventQuery is the builder for querying QuizResultEvent entities.
type QuizResultEventQuery struct {
	config
	ctx        *QueryContext
	order      []quizresultevent.OrderOption
	inters     []Interceptor
	predicates []predicate.QuizResultEvent
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the QuizResultEventQuery builder.
func (qreq *QuizResultEventQuery) Where(ps ...predicate.QuizResultEvent) *QuizResultEventQuery {
	qreq.predicates = append(qreq.predicates, ps...)
	return qreq
}

// Limit the number of records to be returned by this query.
func (qreq *QuizResultEventQuery) Limit(limit int) *QuizResultEventQuery {
	qreq.ctx.Limit = &limit
	return qreq
}

// Offset to start from.
func (qreq *QuizResultEventQuery) Offset(offset int) *QuizResultEventQuery {
	qreq.ctx.Offset = &offset
	return qreq
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (qreq *QuizResultEventQuery) Unique(unique bool) *QuizResultEventQuery {
	qreq.ctx.Unique = &unique
	return qreq
}

// Order specifies how the records should be ordered.
func (qreq *QuizResultEventQuery) Order(o ...quizresultevent.OrderOption) *QuizResultEventQuery {
	qreq.order = append(qreq.order, o...)
	return qreq
}

// First returns the first QuizResultEvent entity from the query.
// Returns a *NotFoundError when no QuizResultEvent was found.
func (qreq *QuizResultEventQuery) First(ctx context.Context) (*QuizResultEvent, error) {
	nodes, err := qreq.Limit(1).All(setContextOp(ctx, qreq.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{quizresultevent.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (qreq *QuizResultEventQuery) FirstX(ctx context.Context) *QuizResultEvent {
	node, err := qreq.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first QuizResultEvent ID from the query.
// Returns a *NotFoundError when no QuizResultEvent ID was found.
func (qreq *QuizResultEventQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = qreq.Limit(1).IDs(setContextOp(ctx, qreq.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{quizresultevent.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (qreq *QuizResultEventQuery) FirstIDX(ctx context.Context) int {
	id, err := qreq.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single QuizResultEvent entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one QuizResultEvent entity is found.
// Returns a *NotFoundError when no QuizResultEvent entities are found.
func (qreq *QuizResultEventQuery) Only(ctx context.Context) (*QuizResultEvent, error) {
	nodes, err := qreq.Limit(2).All(setContextOp(ctx, qreq.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{quizresultevent.Label}
	default:
		return nil, &NotSingularError{quizresultevent.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (qreq *QuizResultEventQuery) OnlyX(ctx context.Context) *QuizResultEvent {
	node, err := qreq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only QuizResultEvent ID in the query.
// Returns a *NotSingularError when more than one QuizResultEvent ID is found.
// Returns a *NotFoundError when no entities are found.
func (qreq *QuizResultEventQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = qreq.Limit(2).IDs(setContextOp(ctx, qreq.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{quizresultevent.Label}
	default:
		err = &NotSingularError{quizresultevent.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (qreq *QuizResultEventQuery) OnlyIDX(ctx context.Context) int {
	id, err := qreq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of QuizResultEvents.
func (qreq *QuizResultEventQuery) All(ctx context.Context) ([]*QuizResultEvent, error) {
	ctx = setContextOp(ctx, qreq.ctx, ent.OpQueryAll)
	if err := qreq.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*QuizResultEvent, *QuizResultEventQuery]()
	return withInterceptors[[]*QuizResultEvent](ctx, qreq, qr, qreq.inters)
}

// AllX is like All, but panics if an error occurs.
func (qreq *QuizResultEventQuery) AllX(ctx context.Context) []*QuizResultEvent {
	nodes, err := qreq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of QuizResultEvent IDs.
func (qreq *QuizResultEventQuery) IDs(ctx context.Context) (ids []int, err error) {
	if qreq.ctx.Unique == nil && qreq.path != nil {
		qreq.Unique(true)
	}
	ctx = setContextOp(ctx, qreq.ctx, ent.OpQueryIDs)
	if err = qreq.Select(quizresultevent.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (qreq *QuizResultEventQuery) IDsX(ctx context.Context) []int {
	ids, err := qreq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (qreq *QuizResultEventQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, qreq.ctx, ent.OpQueryCount)
	if err := qreq.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, qreq, querierCount[*QuizResultEventQuery](), qreq.inters)
}

// CountX is like Count, but panics if an error occurs.
func (qreq *QuizResultEventQuery) CountX(ctx context.Context) int {
	count, err := qreq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (qreq *QuizResultEventQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, qreq.ctx, ent.OpQueryExist)
	switch _, err := qreq.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (qreq *QuizResultEventQuery) ExistX(ctx context.Context) bool {
	exist, err := qreq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the QuizResultEventQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (qreq *QuizResultEventQuery) Clone() *QuizResultEventQuery {
	if qreq == nil {
		return nil
	}
	return &QuizResultEventQuery{
		config:     qreq.config,
		ctx:        qreq.ctx.Clone(),
		order:      append([]quizresultevent.OrderOption{}, qreq.order...),
		inters:     append([]Interceptor{}, qreq.inters...),
		predicates: append([]predicate.QuizResultEvent{}, qreq.predicates...),
		// clone intermediate query.
		sql:  qreq.sql.Clone(),
		path: qreq.path,
	}
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		Sequence int64 `json:"sequence,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.QuizResultEvent.Query().
//		GroupBy(quizresultevent.FieldSequence).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (qreq *QuizResultEventQuery) GroupBy(field string, fields ...string) *QuizResultEventGroupBy {
	qreq.ctx.Fields = append([]string{field}, fields...)
	grbuild := &QuizResultEventGroupBy{build: qreq}
	grbuild.flds = &qreq.ctx.Fields
	grbuild.label = quizresultevent.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		Sequence int64 `json:"sequence,omitempty"`
//	}
//
//	client.QuizResultEvent.Query().
//		Select(quizresultevent.FieldSequence).
//		Scan(ctx, &v)
func (qreq *QuizResultEventQuery) Select(fields ...string) *QuizResultEventSelect {
	qreq.ctx.Fields = append(qreq.ctx.Fields, fields...)
	sbuild := &QuizResultEventSelect{QuizResultEventQuery: qreq}
	sbuild.label = quizresultevent.Label
	sbuild.flds, sbuild.scan = &qreq.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a QuizResultEventSelect configured with the given aggregations.
func (qreq *QuizResultEventQuery) Aggregate(fns ...AggregateFunc) *QuizResultEventSelect {
	return qreq.Select().Aggregate(fns...)
}

func (qreq *QuizResultEventQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range qreq.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, qreq); err != nil {
				return err
			}
		}
	}
	for _, f := range qreq.ctx.Fields {
		if !quizresultevent.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if qreq.path != nil {
		prev, err := qreq.path(ctx)
		if err != nil {
			return err
		}
		qreq.sql = prev
	}
	return nil
}

func (qreq *QuizResultEventQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*QuizResultEvent, error) {
	var (
		nodes = []*QuizResultEvent{}
		_spec = qreq.querySpec()
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*QuizResultEvent).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &QuizResultEvent{config: qreq.config}
		nodes = append(nodes, node)
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, qreq.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	return nodes, nil
}

func (qreq *QuizResultEventQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := qreq.querySpec()
	_spec.Node.Columns = qreq.ctx.Fields
	if len(qreq.ctx.Fields) > 0 {
		_spec.Unique = qreq.ctx.Unique != nil && *qreq.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, qreq.driver, _spec)
}

func (qreq *QuizResultEventQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(quizresultevent.Table, quizresultevent.Columns, sqlgraph.NewFieldSpec(quizresultevent.FieldID, field.TypeInt))
	_spec.From = qreq.sql
	if unique := qreq.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if qreq.path != nil {
		_spec.Unique = true
	}
	if fields := qreq.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, quizresultevent.FieldID)
		for i := range fields {
			if fields[i] != quizresultevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := qreq.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := qreq.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := qreq.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := qreq.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (qreq *QuizResultEventQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(qreq.driver.Dialect())
	t1 := builder.Table(quizresultevent.Table)
	columns := qreq.ctx.Fields
	if len(columns) == 0 {
		columns = quizresultevent.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if qreq.sql != nil {
		selector = qreq.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if qreq.ctx.Unique != nil && *qreq.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range qreq.predicates {
		p(selector)
	}
	for _, p := range qreq.order {
		p(selector)
	}
	if offset := qreq.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := qreq.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// QuizResultEventGroupBy is the group-by builder for QuizResultEvent entities.
type QuizResultEventGroupBy struct {
	selector
	build *QuizResultEventQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (qregb *QuizResultEventGroupBy) Aggregate(fns ...AggregateFunc) *QuizResultEventGroupBy {
	qregb.fns = append(qregb.fns, fns...)
	return qregb
}

// Scan applies the selector query and scans the result into the given value.
func (qregb *QuizResultEventGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, qregb.build.ctx, ent.OpQueryGroupBy)
	if err := qregb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*QuizResultEventQuery, *QuizResultEventGroupBy](ctx, qregb.build, qregb, qregb.build.inters, v)
}

func (qregb *QuizResultEventGroupBy) sqlScan(ctx context.Context, root *QuizResultEventQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(qregb.fns))
	for _, fn := range qregb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*qregb.flds)+len(qregb.fns))
		for _, f := range *qregb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*qregb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := qregb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// QuizResultEventSelect is the builder for selecting fields of QuizResultEvent entities.
type QuizResultEventSelect struct {
	*QuizResultEventQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (qres *QuizResultEventSelect) Aggregate(fns ...AggregateFunc) *QuizResultEventSelect {
	qres.fns = append(qres.fns, fns...)
	return qres
}

// Scan applies the selector query and scans the result into the given value.
func (qres *QuizResultEventSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, qres.ctx, ent.OpQuerySelect)
	if err := qres.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*QuizResultEventQuery, *QuizResultEventSelect](ctx, qres.QuizResultEventQuery, qres, qres.inters, v)
}

func (qres *QuizResultEventSelect) sqlScan(ctx context.Context, root *QuizResultEventQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(qres.fns))
	for _, fn := range qres.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*qres.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := qres.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
