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
	"github.com/fachebot/forum-meet-bot/internal/ent/forumsession"
	"github.com/fachebot/forum-meet-bot/internal/ent/predicate"
)

// ForumSessionQuery is the builder for querying ForumSession entities.
type ForumSessionQuery struct {
	config
	ctx        *QueryContext
	order      []forumsession.OrderOption
	inters     []Interceptor
	predicates []predicate.ForumSession
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the ForumSessionQuery builder.
func (fsq *ForumSessionQuery) Where(ps ...predicate.ForumSession) *ForumSessionQuery {
	fsq.predicates = append(fsq.predicates, ps...)
	return fsq
}

// Limit the number of records to be returned by this query.
func (fsq *ForumSessionQuery) Limit(limit int) *ForumSessionQuery {
	fsq.ctx.Limit = &limit
	return fsq
}

// Offset to start from.
func (fsq *ForumSessionQuery) Offset(offset int) *ForumSessionQuery {
	fsq.ctx.Offset = &offset
	return fsq
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (fsq *ForumSessionQuery) Unique(unique bool) *ForumSessionQuery {
	fsq.ctx.Unique = &unique
	return fsq
}

// Order specifies how the records should be ordered.
func (fsq *ForumSessionQuery) Order(o ...forumsession.OrderOption) *ForumSessionQuery {
	fsq.order = append(fsq.order, o...)
	return fsq
}

// First returns the first ForumSession entity from the query.
// Returns a *NotFoundError when no ForumSession was found.
func (fsq *ForumSessionQuery) First(ctx context.Context) (*ForumSession, error) {
	nodes, err := fsq.Limit(1).All(setContextOp(ctx, fsq.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{forumsession.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (fsq *ForumSessionQuery) FirstX(ctx context.Context) *ForumSession {
	node, err := fsq.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first ForumSession ID from the query.
// Returns a *NotFoundError when no ForumSession ID was found.
func (fsq *ForumSessionQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = fsq.Limit(1).IDs(setContextOp(ctx, fsq.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{forumsession.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (fsq *ForumSessionQuery) FirstIDX(ctx context.Context) int {
	id, err := fsq.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single ForumSession entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one ForumSession entity is found.
// Returns a *NotFoundError when no ForumSession entities are found.
func (fsq *ForumSessionQuery) Only(ctx context.Context) (*ForumSession, error) {
	nodes, err := fsq.Limit(2).All(setContextOp(ctx, fsq.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{forumsession.Label}
	default:
		return nil, &NotSingularError{forumsession.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (fsq *ForumSessionQuery) OnlyX(ctx context.Context) *ForumSession {
	node, err := fsq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only ForumSession ID in the query.
// Returns a *NotSingularError when more than one ForumSession ID is found.
// Returns a *NotFoundError when no entities are found.
func (fsq *ForumSessionQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = fsq.Limit(2).IDs(setContextOp(ctx, fsq.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{forumsession.Label}
	default:
		err = &NotSingularError{forumsession.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (fsq *ForumSessionQuery) OnlyIDX(ctx context.Context) int {
	id, err := fsq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of ForumSessions.
func (fsq *ForumSessionQuery) All(ctx context.Context) ([]*ForumSession, error) {
	ctx = setContextOp(ctx, fsq.ctx, ent.OpQueryAll)
	if err := fsq.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*ForumSession, *ForumSessionQuery]()
	return withInterceptors[[]*ForumSession](ctx, fsq, qr, fsq.inters)
}

// AllX is like All, but panics if an error occurs.
func (fsq *ForumSessionQuery) AllX(ctx context.Context) []*ForumSession {
	nodes, err := fsq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of ForumSession IDs.
func (fsq *ForumSessionQuery) IDs(ctx context.Context) (ids []int, err error) {
	if fsq.ctx.Unique == nil && fsq.path != nil {
		fsq.Unique(true)
	}
	ctx = setContextOp(ctx, fsq.ctx, ent.OpQueryIDs)
	if err = fsq.Select(forumsession.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (fsq *ForumSessionQuery) IDsX(ctx context.Context) []int {
	ids, err := fsq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (fsq *ForumSessionQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, fsq.ctx, ent.OpQueryCount)
	if err := fsq.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, fsq, querierCount[*ForumSessionQuery](), fsq.inters)
}

// CountX is like Count, but panics if an error occurs.
func (fsq *ForumSessionQuery) CountX(ctx context.Context) int {
	count, err := fsq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (fsq *ForumSessionQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, fsq.ctx, ent.OpQueryExist)
	switch _, err := fsq.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (fsq *ForumSessionQuery) ExistX(ctx context.Context) bool {
	exist, err := fsq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the ForumSessionQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (fsq *ForumSessionQuery) Clone() *ForumSessionQuery {
	if fsq == nil {
		return nil
	}
	return &ForumSessionQuery{
		config:     fsq.config,
		ctx:        fsq.ctx.Clone(),
		order:      append([]forumsession.OrderOption{}, fsq.order...),
		inters:     append([]Interceptor{}, fsq.inters...),
		predicates: append([]predicate.ForumSession{}, fsq.predicates...),
		// clone intermediate query.
		sql:  fsq.sql.Clone(),
		path: fsq.path,
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
//	client.ForumSession.Query().
//		GroupBy(forumsession.FieldCreateTime).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (fsq *ForumSessionQuery) GroupBy(field string, fields ...string) *ForumSessionGroupBy {
	fsq.ctx.Fields = append([]string{field}, fields...)
	grbuild := &ForumSessionGroupBy{build: fsq}
	grbuild.flds = &fsq.ctx.Fields
	grbuild.label = forumsession.Label
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
//	client.ForumSession.Query().
//		Select(forumsession.FieldCreateTime).
//		Scan(ctx, &v)
func (fsq *ForumSessionQuery) Select(fields ...string) *ForumSessionSelect {
	fsq.ctx.Fields = append(fsq.ctx.Fields, fields...)
	sbuild := &ForumSessionSelect{ForumSessionQuery: fsq}
	sbuild.label = forumsession.Label
	sbuild.flds, sbuild.scan = &fsq.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a ForumSessionSelect configured with the given aggregations.
func (fsq *ForumSessionQuery) Aggregate(fns ...AggregateFunc) *ForumSessionSelect {
	return fsq.Select().Aggregate(fns...)
}

func (fsq *ForumSessionQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range fsq.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, fsq); err != nil {
				return err
			}
		}
	}
	for _, f := range fsq.ctx.Fields {
		if !forumsession.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if fsq.path != nil {
		prev, err := fsq.path(ctx)
		if err != nil {
			return err
		}
		fsq.sql = prev
	}
	return nil
}

func (fsq *ForumSessionQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*ForumSession, error) {
	var (
		nodes = []*ForumSession{}
		_spec = fsq.querySpec()
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*ForumSession).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &ForumSession{config: fsq.config}
		nodes = append(nodes, node)
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, fsq.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	return nodes, nil
}

func (fsq *ForumSessionQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := fsq.querySpec()
	_spec.Node.Columns = fsq.ctx.Fields
	if len(fsq.ctx.Fields) > 0 {
		_spec.Unique = fsq.ctx.Unique != nil && *fsq.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, fsq.driver, _spec)
}

func (fsq *ForumSessionQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(forumsession.Table, forumsession.Columns, sqlgraph.NewFieldSpec(forumsession.FieldID, field.TypeInt))
	_spec.From = fsq.sql
	if unique := fsq.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if fsq.path != nil {
		_spec.Unique = true
	}
	if fields := fsq.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, forumsession.FieldID)
		for i := range fields {
			if fields[i] != forumsession.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := fsq.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := fsq.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := fsq.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := fsq.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (fsq *ForumSessionQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(fsq.driver.Dialect())
	t1 := builder.Table(forumsession.Table)
	columns := fsq.ctx.Fields
	if len(columns) == 0 {
		columns = forumsession.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if fsq.sql != nil {
		selector = fsq.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if fsq.ctx.Unique != nil && *fsq.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range fsq.predicates {
		p(selector)
	}
	for _, p := range fsq.order {
		p(selector)
	}
	if offset := fsq.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := fsq.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// ForumSessionGroupBy is the group-by builder for ForumSession entities.
type ForumSessionGroupBy struct {
	selector
	build *ForumSessionQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (fsgb *ForumSessionGroupBy) Aggregate(fns ...AggregateFunc) *ForumSessionGroupBy {
	fsgb.fns = append(fsgb.fns, fns...)
	return fsgb
}

// Scan applies the selector query and scans the result into the given value.
func (fsgb *ForumSessionGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, fsgb.build.ctx, ent.OpQueryGroupBy)
	if err := fsgb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ForumSessionQuery, *ForumSessionGroupBy](ctx, fsgb.build, fsgb, fsgb.build.inters, v)
}

func (fsgb *ForumSessionGroupBy) sqlScan(ctx context.Context, root *ForumSessionQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(fsgb.fns))
	for _, fn := range fsgb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*fsgb.flds)+len(fsgb.fns))
		for _, f := range *fsgb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*fsgb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := fsgb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// ForumSessionSelect is the builder for selecting fields of ForumSession entities.
type ForumSessionSelect struct {
	*ForumSessionQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (fss *ForumSessionSelect) Aggregate(fns ...AggregateFunc) *ForumSessionSelect {
	fss.fns = append(fss.fns, fns...)
	return fss
}

// Scan applies the selector query and scans the result into the given value.
func (fss *ForumSessionSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, fss.ctx, ent.OpQuerySelect)
	if err := fss.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ForumSessionQuery, *ForumSessionSelect](ctx, fss.ForumSessionQuery, fss, fss.inters, v)
}

func (fss *ForumSessionSelect) sqlScan(ctx context.Context, root *ForumSessionQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(fss.fns))
	for _, fn := range fss.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*fss.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := fss.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
