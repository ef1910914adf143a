// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/fachebot/forum-meet-bot/internal/ent/forumsession"
	"github.com/fachebot/forum-meet-bot/internal/ent/predicate"
)

// ForumSessionUpdate is the builder for updating ForumSession entities.
type ForumSessionUpdate struct {
	config
	hooks    []Hook
	mutation *ForumSessionMutation
}

// Where appends a list predicates to the ForumSessionUpdate builder.
func (fsu *ForumSessionUpdate) Where(ps ...predicate.ForumSession) *ForumSessionUpdate {
	fsu.mutation.Where(ps...)
	return fsu
}

// SetUpdateTime sets the "update_time" field.
func (fsu *ForumSessionUpdate) SetUpdateTime(t time.Time) *ForumSessionUpdate {
	fsu.mutation.SetUpdateTime(t)
	return fsu
}

// SetChatID sets the "chat_id" field.
func (fsu *ForumSessionUpdate) SetChatID(i int64) *ForumSessionUpdate {
	fsu.mutation.ResetChatID()
	fsu.mutation.SetChatID(i)
	return fsu
}

// SetNillableChatID sets the "chat_id" field if the given value is not nil.
func (fsu *ForumSessionUpdate) SetNillableChatID(i *int64) *ForumSessionUpdate {
	if i != nil {
		fsu.SetChatID(*i)
	}
	return fsu
}

// AddChatID adds i to the "chat_id" field.
func (fsu *ForumSessionUpdate) AddChatID(i int64) *ForumSessionUpdate {
	fsu.mutation.AddChatID(i)
	return fsu
}

// SetStartedAt sets the "started_at" field.
func (fsu *ForumSessionUpdate) SetStartedAt(t time.Time) *ForumSessionUpdate {
	fsu.mutation.SetStartedAt(t)
	return fsu
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (fsu *ForumSessionUpdate) SetNillableStartedAt(t *time.Time) *ForumSessionUpdate {
	if t != nil {
		fsu.SetStartedAt(*t)
	}
	return fsu
}

// SetClosedAt sets the "closed_at" field.
func (fsu *ForumSessionUpdate) SetClosedAt(t time.Time) *ForumSessionUpdate {
	fsu.mutation.SetClosedAt(t)
	return fsu
}

// SetNillableClosedAt sets the "closed_at" field if the given value is not nil.
func (fsu *ForumSessionUpdate) SetNillableClosedAt(t *time.Time) *ForumSessionUpdate {
	if t != nil {
		fsu.SetClosedAt(*t)
	}
	return fsu
}

// ClearClosedAt clears the value of the "closed_at" field.
func (fsu *ForumSessionUpdate) ClearClosedAt() *ForumSessionUpdate {
	fsu.mutation.ClearClosedAt()
	return fsu
}

// SetTopicCount sets the "topic_count" field.
func (fsu *ForumSessionUpdate) SetTopicCount(i int) *ForumSessionUpdate {
	fsu.mutation.ResetTopicCount()
	fsu.mutation.SetTopicCount(i)
	return fsu
}

// SetNillableTopicCount sets the "topic_count" field if the given value is not nil.
func (fsu *ForumSessionUpdate) SetNillableTopicCount(i *int) *ForumSessionUpdate {
	if i != nil {
		fsu.SetTopicCount(*i)
	}
	return fsu
}

// AddTopicCount adds i to the "topic_count" field.
func (fsu *ForumSessionUpdate) AddTopicCount(i int) *ForumSessionUpdate {
	fsu.mutation.AddTopicCount(i)
	return fsu
}

// SetEventCount sets the "event_count" field.
func (fsu *ForumSessionUpdate) SetEventCount(i int) *ForumSessionUpdate {
	fsu.mutation.ResetEventCount()
	fsu.mutation.SetEventCount(i)
	return fsu
}

// SetNillableEventCount sets the "event_count" field if the given value is not nil.
func (fsu *ForumSessionUpdate) SetNillableEventCount(i *int) *ForumSessionUpdate {
	if i != nil {
		fsu.SetEventCount(*i)
	}
	return fsu
}

// AddEventCount adds i to the "event_count" field.
func (fsu *ForumSessionUpdate) AddEventCount(i int) *ForumSessionUpdate {
	fsu.mutation.AddEventCount(i)
	return fsu
}

// SetStatus sets the "status" field.
func (fsu *ForumSessionUpdate) SetStatus(f forumsession.Status) *ForumSessionUpdate {
	fsu.mutation.SetStatus(f)
	return fsu
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (fsu *ForumSessionUpdate) SetNillableStatus(f *forumsession.Status) *ForumSessionUpdate {
	if f != nil {
		fsu.SetStatus(*f)
	}
	return fsu
}

// Mutation returns the ForumSessionMutation object of the builder.
func (fsu *ForumSessionUpdate) Mutation() *ForumSessionMutation {
	return fsu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (fsu *ForumSessionUpdate) Save(ctx context.Context) (int, error) {
	fsu.defaults()
	return withHooks(ctx, fsu.sqlSave, fsu.mutation, fsu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (fsu *ForumSessionUpdate) SaveX(ctx context.Context) int {
	affected, err := fsu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (fsu *ForumSessionUpdate) Exec(ctx context.Context) error {
	_, err := fsu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (fsu *ForumSessionUpdate) ExecX(ctx context.Context) {
	if err := fsu.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (fsu *ForumSessionUpdate) defaults() {
	if _, ok := fsu.mutation.UpdateTime(); !ok {
		v := forumsession.UpdateDefaultUpdateTime()
		fsu.mutation.SetUpdateTime(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (fsu *ForumSessionUpdate) check() error {
	if v, ok := fsu.mutation.Status(); ok {
		if err := forumsession.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ForumSession.status": %w`, err)}
		}
	}
	return nil
}

func (fsu *ForumSessionUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := fsu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(forumsession.Table, forumsession.Columns, sqlgraph.NewFieldSpec(forumsession.FieldID, field.TypeInt))
	if ps := fsu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := fsu.mutation.UpdateTime(); ok {
		_spec.SetField(forumsession.FieldUpdateTime, field.TypeTime, value)
	}
	if value, ok := fsu.mutation.ChatID(); ok {
		_spec.SetField(forumsession.FieldChatID, field.TypeInt64, value)
	}
	if value, ok := fsu.mutation.AddedChatID(); ok {
		_spec.AddField(forumsession.FieldChatID, field.TypeInt64, value)
	}
	if value, ok := fsu.mutation.StartedAt(); ok {
		_spec.SetField(forumsession.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := fsu.mutation.ClosedAt(); ok {
		_spec.SetField(forumsession.FieldClosedAt, field.TypeTime, value)
	}
	if fsu.mutation.ClosedAtCleared() {
		_spec.ClearField(forumsession.FieldClosedAt, field.TypeTime)
	}
	if value, ok := fsu.mutation.TopicCount(); ok {
		_spec.SetField(forumsession.FieldTopicCount, field.TypeInt, value)
	}
	if value, ok := fsu.mutation.AddedTopicCount(); ok {
		_spec.AddField(forumsession.FieldTopicCount, field.TypeInt, value)
	}
	if value, ok := fsu.mutation.EventCount(); ok {
		_spec.SetField(forumsession.FieldEventCount, field.TypeInt, value)
	}
	if value, ok := fsu.mutation.AddedEventCount(); ok {
		_spec.AddField(forumsession.FieldEventCount, field.TypeInt, value)
	}
	if value, ok := fsu.mutation.Status(); ok {
		_spec.SetField(forumsession.FieldStatus, field.TypeEnum, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, fsu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{forumsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	fsu.mutation.done = true
	return n, nil
}

// ForumSessionUpdateOne is the builder for updating a single ForumSession entity.
type ForumSessionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ForumSessionMutation
}

// SetUpdateTime sets the "update_time" field.
func (fsuo *ForumSessionUpdateOne) SetUpdateTime(t time.Time) *ForumSessionUpdateOne {
	fsuo.mutation.SetUpdateTime(t)
	return fsuo
}

// SetChatID sets the "chat_id" field.
func (fsuo *ForumSessionUpdateOne) SetChatID(i int64) *ForumSessionUpdateOne {
	fsuo.mutation.ResetChatID()
	fsuo.mutation.SetChatID(i)
	return fsuo
}

// SetNillableChatID sets the "chat_id" field if the given value is not nil.
func (fsuo *ForumSessionUpdateOne) SetNillableChatID(i *int64) *ForumSessionUpdateOne {
	if i != nil {
		fsuo.SetChatID(*i)
	}
	return fsuo
}

// AddChatID adds i to the "chat_id" field.
func (fsuo *ForumSessionUpdateOne) AddChatID(i int64) *ForumSessionUpdateOne {
	fsuo.mutation.AddChatID(i)
	return fsuo
}

// SetStartedAt sets the "started_at" field.
func (fsuo *ForumSessionUpdateOne) SetStartedAt(t time.Time) *ForumSessionUpdateOne {
	fsuo.mutation.SetStartedAt(t)
	return fsuo
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (fsuo *ForumSessionUpdateOne) SetNillableStartedAt(t *time.Time) *ForumSessionUpdateOne {
	if t != nil {
		fsuo.SetStartedAt(*t)
	}
	return fsuo
}

// SetClosedAt sets the "closed_at" field.
func (fsuo *ForumSessionUpdateOne) SetClosedAt(t time.Time) *ForumSessionUpdateOne {
	fsuo.mutation.SetClosedAt(t)
	return fsuo
}

// SetNillableClosedAt sets the "closed_at" field if the given value is not nil.
func (fsuo *ForumSessionUpdateOne) SetNillableClosedAt(t *time.Time) *ForumSessionUpdateOne {
	if t != nil {
		fsuo.SetClosedAt(*t)
	}
	return fsuo
}

// ClearClosedAt clears the value of the "closed_at" field.
func (fsuo *ForumSessionUpdateOne) ClearClosedAt() *ForumSessionUpdateOne {
	fsuo.mutation.ClearClosedAt()
	return fsuo
}

// SetTopicCount sets the "topic_count" field.
func (fsuo *ForumSessionUpdateOne) SetTopicCount(i int) *ForumSessionUpdateOne {
	fsuo.mutation.ResetTopicCount()
	fsuo.mutation.SetTopicCount(i)
	return fsuo
}

// SetNillableTopicCount sets the "topic_count" field if the given value is not nil.
func (fsuo *ForumSessionUpdateOne) SetNillableTopicCount(i *int) *ForumSessionUpdateOne {
	if i != nil {
		fsuo.SetTopicCount(*i)
	}
	return fsuo
}

// AddTopicCount adds i to the "topic_count" field.
func (fsuo *ForumSessionUpdateOne) AddTopicCount(i int) *ForumSessionUpdateOne {
	fsuo.mutation.AddTopicCount(i)
	return fsuo
}

// SetEventCount sets the "event_count" field.
func (fsuo *ForumSessionUpdateOne) SetEventCount(i int) *ForumSessionUpdateOne {
	fsuo.mutation.ResetEventCount()
	fsuo.mutation.SetEventCount(i)
	return fsuo
}

// SetNillableEventCount sets the "event_count" field if the given value is not nil.
func (fsuo *ForumSessionUpdateOne) SetNillableEventCount(i *int) *ForumSessionUpdateOne {
	if i != nil {
		fsuo.SetEventCount(*i)
	}
	return fsuo
}

// AddEventCount adds i to the "event_count" field.
func (fsuo *ForumSessionUpdateOne) AddEventCount(i int) *ForumSessionUpdateOne {
	fsuo.mutation.AddEventCount(i)
	return fsuo
}

// SetStatus sets the "status" field.
func (fsuo *ForumSessionUpdateOne) SetStatus(f forumsession.Status) *ForumSessionUpdateOne {
	fsuo.mutation.SetStatus(f)
	return fsuo
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (fsuo *ForumSessionUpdateOne) SetNillableStatus(f *forumsession.Status) *ForumSessionUpdateOne {
	if f != nil {
		fsuo.SetStatus(*f)
	}
	return fsuo
}

// Mutation returns the ForumSessionMutation object of the builder.
func (fsuo *ForumSessionUpdateOne) Mutation() *ForumSessionMutation {
	return fsuo.mutation
}

// Where appends a list predicates to the ForumSessionUpdate builder.
func (fsuo *ForumSessionUpdateOne) Where(ps ...predicate.ForumSession) *ForumSessionUpdateOne {
	fsuo.mutation.Where(ps...)
	return fsuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (fsuo *ForumSessionUpdateOne) Select(field string, fields ...string) *ForumSessionUpdateOne {
	fsuo.fields = append([]string{field}, fields...)
	return fsuo
}

// Save executes the query and returns the updated ForumSession entity.
func (fsuo *ForumSessionUpdateOne) Save(ctx context.Context) (*ForumSession, error) {
	fsuo.defaults()
	return withHooks(ctx, fsuo.sqlSave, fsuo.mutation, fsuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (fsuo *ForumSessionUpdateOne) SaveX(ctx context.Context) *ForumSession {
	node, err := fsuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (fsuo *ForumSessionUpdateOne) Exec(ctx context.Context) error {
	_, err := fsuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (fsuo *ForumSessionUpdateOne) ExecX(ctx context.Context) {
	if err := fsuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (fsuo *ForumSessionUpdateOne) defaults() {
	if _, ok := fsuo.mutation.UpdateTime(); !ok {
		v := forumsession.UpdateDefaultUpdateTime()
		fsuo.mutation.SetUpdateTime(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (fsuo *ForumSessionUpdateOne) check() error {
	if v, ok := fsuo.mutation.Status(); ok {
		if err := forumsession.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ForumSession.status": %w`, err)}
		}
	}
	return nil
}

func (fsuo *ForumSessionUpdateOne) sqlSave(ctx context.Context) (_node *ForumSession, err error) {
	if err := fsuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(forumsession.Table, forumsession.Columns, sqlgraph.NewFieldSpec(forumsession.FieldID, field.TypeInt))
	id, ok := fsuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ForumSession.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := fsuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, forumsession.FieldID)
		for _, f := range fields {
			if !forumsession.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != forumsession.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := fsuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := fsuo.mutation.UpdateTime(); ok {
		_spec.SetField(forumsession.FieldUpdateTime, field.TypeTime, value)
	}
	if value, ok := fsuo.mutation.ChatID(); ok {
		_spec.SetField(forumsession.FieldChatID, field.TypeInt64, value)
	}
	if value, ok := fsuo.mutation.AddedChatID(); ok {
		_spec.AddField(forumsession.FieldChatID, field.TypeInt64, value)
	}
	if value, ok := fsuo.mutation.StartedAt(); ok {
		_spec.SetField(forumsession.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := fsuo.mutation.ClosedAt(); ok {
		_spec.SetField(forumsession.FieldClosedAt, field.TypeTime, value)
	}
	if fsuo.mutation.ClosedAtCleared() {
		_spec.ClearField(forumsession.FieldClosedAt, field.TypeTime)
	}
	if value, ok := fsuo.mutation.TopicCount(); ok {
		_spec.SetField(forumsession.FieldTopicCount, field.TypeInt, value)
	}
	if value, ok := fsuo.mutation.AddedTopicCount(); ok {
		_spec.AddField(forumsession.FieldTopicCount, field.TypeInt, value)
	}
	if value, ok := fsuo.mutation.EventCount(); ok {
		_spec.SetField(forumsession.FieldEventCount, field.TypeInt, value)
	}
	if value, ok := fsuo.mutation.AddedEventCount(); ok {
		_spec.AddField(forumsession.FieldEventCount, field.TypeInt, value)
	}
	if value, ok := fsuo.mutation.Status(); ok {
		_spec.SetField(forumsession.FieldStatus, field.TypeEnum, value)
	}
	_node = &ForumSession{config: fsuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, fsuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{forumsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	fsuo.mutation.done = true
	return _node, nil
}
