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
	"github.com/fachebot/forum-meet-bot/internal/ent/meetingevent"
	"github.com/fachebot/forum-meet-bot/internal/ent/predicate"
)

// MeetingEventQuery is the builder for querying MeetingEvent entities.
type MeetingEventQuery struct {
	config
	ctx        *QueryContext
	order      []meetingevent.OrderOption
	inters     []Interceptor
	predicates []predicate.MeetingEvent
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the MeetingEventQuery builder.
func (meq *MeetingEventQuery) Where(ps ...predicate.MeetingEvent) *MeetingEventQuery {
	meq.predicates = append(meq.predicates, ps...)
	return meq
}

// Limit the number of records to be returned by this query.
func (meq *MeetingEventQuery) Limit(limit int) *MeetingEventQuery {
	meq.ctx.Limit = &limit
	return meq
}

// Offset to start from.
func (meq *MeetingEventQuery) Offset(offset int) *MeetingEventQuery {
	meq.ctx.Offset = &offset
	return meq
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (meq *MeetingEventQuery) Unique(unique bool) *MeetingEventQuery {
	meq.ctx.Unique = &unique
	return meq
}

// Order specifies how the records should be ordered.
func (meq *MeetingEventQuery) Order(o ...meetingevent.OrderOption) *MeetingEventQuery {
	meq.order = append(meq.order, o...)
	return meq
}

// First returns the first MeetingEvent entity from the query.
// Returns a *NotFoundError when no MeetingEvent was found.
func (meq *MeetingEventQuery) First(ctx context.Context) (*MeetingEvent, error) {
	nodes, err := meq.Limit(1).All(setContextOp(ctx, meq.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{meetingevent.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (meq *MeetingEventQuery) FirstX(ctx context.Context) *MeetingEvent {
	node, err := meq.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first MeetingEvent ID from the query.
// Returns a *NotFoundError when no MeetingEvent ID was found.
func (meq *MeetingEventQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = meq.Limit(1).IDs(setContextOp(ctx, meq.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{meetingevent.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (meq *MeetingEventQuery) FirstIDX(ctx context.Context) int {
	id, err := meq.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single MeetingEvent entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one MeetingEvent entity is found.
// Returns a *NotFoundError when no MeetingEvent entities are found.
func (meq *MeetingEventQuery) Only(ctx context.Context) (*MeetingEvent, error) {
	nodes, err := meq.Limit(2).All(setContextOp(ctx, meq.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{meetingevent.Label}
	default:
		return nil, &NotSingularError{meetingevent.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (meq *MeetingEventQuery) OnlyX(ctx context.Context) *MeetingEvent {
	node, err := meq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only MeetingEvent ID in the query.
// Returns a *NotSingularError when more than one MeetingEvent ID is found.
// Returns a *NotFoundError when no entities are found.
func (meq *MeetingEventQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = meq.Limit(2).IDs(setContextOp(ctx, meq.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{meetingevent.Label}
	default:
		err = &NotSingularError{meetingevent.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (meq *MeetingEventQuery) OnlyIDX(ctx context.Context) int {
	id, err := meq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of MeetingEvents.
func (meq *MeetingEventQuery) All(ctx context.Context) ([]*MeetingEvent, error) {
	ctx = setContextOp(ctx, meq.ctx, ent.OpQueryAll)
	if err := meq.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*MeetingEvent, *MeetingEventQuery]()
	return withInterceptors[[]*MeetingEvent](ctx, meq, qr, meq.inters)
}

// AllX is like All, but panics if an error occurs.
func (meq *MeetingEventQuery) AllX(ctx context.Context) []*MeetingEvent {
	nodes, err := meq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of MeetingEvent IDs.
func (meq *MeetingEventQuery) IDs(ctx context.Context) (ids []int, err error) {
	if meq.ctx.Unique == nil && meq.path != nil {
		meq.Unique(true)
	}
	ctx = setContextOp(ctx, meq.ctx, ent.OpQueryIDs)
	if err = meq.Select(meetingevent.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (meq *MeetingEventQuery) IDsX(ctx context.Context) []int {
	ids, err := meq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (meq *MeetingEventQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, meq.ctx, ent.OpQueryCount)
	if err := meq.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, meq, querierCount[*MeetingEventQuery](), meq.inters)
}

// CountX is like Count, but panics if an error occurs.
func (meq *MeetingEventQuery) CountX(ctx context.Context) int {
	count, err := meq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (meq *MeetingEventQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, meq.ctx, ent.OpQueryExist)
	switch _, err := meq.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (meq *MeetingEventQuery) ExistX(ctx context.Context) bool {
	exist, err := meq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the MeetingEventQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (meq *MeetingEventQuery) Clone() *MeetingEventQuery {
	if meq == nil {
		return nil
	}
	return &MeetingEventQuery{
		config:     meq.config,
		ctx:        meq.ctx.Clone(),
		order:      append([]meetingevent.OrderOption{}, meq.order...),
		inters:     append([]Interceptor{}, meq.inters...),
		predicates: append([]predicate.MeetingEvent{}, meq.predicates...),
		// clone intermediate query.
		sql:  meq.sql.Clone(),
		path: meq.path,
	}
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		CreateTime time.Time `json:"create_time,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.MeetingEvent.Query().
//		GroupBy(meetingevent.FieldCreateTime).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (meq *MeetingEventQuery) GroupBy(field string, fields ...string) *MeetingEventGroupBy {
	meq.ctx.Fields = append([]string{field}, fields...)
	grbuild := &MeetingEventGroupBy{build: meq}
	grbuild.flds = &meq.ctx.Fields
	grbuild.label = meetingevent.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		CreateTime time.Time `json:"create_time,omitempty"`
//	}
//
//	client.MeetingEvent.Query().
//		Select(meetingevent.FieldCreateTime).
//		Scan(ctx, &v)
func (meq *MeetingEventQuery) Select(fields ...string) *MeetingEventSelect {
	meq.ctx.Fields = append(meq.ctx.Fields, fields...)
	sbuild := &MeetingEventSelect{MeetingEventQuery: meq}
	sbuild.label = meetingevent.Label
	sbuild.flds, sbuild.scan = &meq.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a MeetingEventSelect configured with the given aggregations.
func (meq *MeetingEventQuery) Aggregate(fns ...AggregateFunc) *MeetingEventSelect {
	return meq.Select().Aggregate(fns...)
}

func (meq *MeetingEventQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range meq.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, meq); err != nil {
				return err
			}
		}
	}
	for _, f := range meq.ctx.Fields {
		if !meetingevent.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if meq.path != nil {
		prev, err := meq.path(ctx)
		if err != nil {
			return err
		}
		meq.sql = prev
	}
	return nil
}

func (meq *MeetingEventQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*MeetingEvent, error) {
	var (
		nodes = []*MeetingEvent{}
		_spec = meq.querySpec()
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*MeetingEvent).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &MeetingEvent{config: meq.config}
		nodes = append(nodes, node)
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, meq.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	return nodes, nil
}

func (meq *MeetingEventQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := meq.querySpec()
	_spec.Node.Columns = meq.ctx.Fields
	if len(meq.ctx.Fields) > 0 {
		_spec.Unique = meq.ctx.Unique != nil && *meq.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, meq.driver, _spec)
}

func (meq *MeetingEventQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(meetingevent.Table, meetingevent.Columns, sqlgraph.NewFieldSpec(meetingevent.FieldID, field.TypeInt))
	_spec.From = meq.sql
	if unique := meq.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if meq.path != nil {
		_spec.Unique = true
	}
	if fields := meq.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, meetingevent.FieldID)
		for i := range fields {
			if fields[i] != meetingevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := meq.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := meq.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := meq.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := meq.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (meq *MeetingEventQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(meq.driver.Dialect())
	t1 := builder.Table(meetingevent.Table)
	columns := meq.ctx.Fields
	if len(columns) == 0 {
		columns = meetingevent.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if meq.sql != nil {
		selector = meq.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if meq.ctx.Unique != nil && *meq.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range meq.predicates {
		p(selector)
	}
	for _, p := range meq.order {
		p(selector)
	}
	if offset := meq.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := meq.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// MeetingEventGroupBy is the group-by builder for MeetingEvent entities.
type MeetingEventGroupBy struct {
	selector
	build *MeetingEventQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (megb *MeetingEventGroupBy) Aggregate(fns ...AggregateFunc) *MeetingEventGroupBy {
	megb.fns = append(megb.fns, fns...)
	return megb
}

// Scan applies the selector query and scans the result into the given value.
func (megb *MeetingEventGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, megb.build.ctx, ent.OpQueryGroupBy)
	if err := megb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*MeetingEventQuery, *MeetingEventGroupBy](ctx, megb.build, megb, megb.build.inters, v)
}

func (megb *MeetingEventGroupBy) sqlScan(ctx context.Context, root *MeetingEventQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(megb.fns))
	for _, fn := range megb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*megb.flds)+len(megb.fns))
		for _, f := range *megb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*megb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := megb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// MeetingEventSelect is the builder for selecting fields of MeetingEvent entities.
type MeetingEventSelect struct {
	*MeetingEventQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (mes *MeetingEventSelect) Aggregate(fns ...AggregateFunc) *MeetingEventSelect {
	mes.fns = append(mes.fns, fns...)
	return mes
}

// Scan applies the selector query and scans the result into the given value.
func (mes *MeetingEventSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, mes.ctx, ent.OpQuerySelect)
	if err := mes.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*MeetingEventQuery, *MeetingEventSelect](ctx, mes.MeetingEventQuery, mes, mes.inters, v)
}

func (mes *MeetingEventSelect) sqlScan(ctx context.Context, root *MeetingEventQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(mes.fns))
	for _, fn := range mes.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*mes.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := mes.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
