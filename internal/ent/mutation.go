// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/fachebot/forum-meet-bot/internal/ent/forumsession"
	"github.com/fachebot/forum-meet-bot/internal/ent/meetingevent"
	"github.com/fachebot/forum-meet-bot/internal/ent/predicate"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeForumSession = "ForumSession"
	TypeMeetingEvent = "MeetingEvent"
)

// ForumSessionMutation represents an operation that mutates the ForumSession nodes in the graph.
type ForumSessionMutation struct {
	config
	op             Op
	typ            string
	id             *int
	create_time    *time.Time
	update_time    *time.Time
	chat_id        *int64
	addchat_id     *int64
	started_at     *time.Time
	closed_at      *time.Time
	topic_count    *int
	addtopic_count *int
	event_count    *int
	addevent_count *int
	status         *forumsession.Status
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*ForumSession, error)
	predicates     []predicate.ForumSession
}

var _ ent.Mutation = (*ForumSessionMutation)(nil)

// forumsessionOption allows management of the mutation configuration using functional options.
type forumsessionOption func(*ForumSessionMutation)

// newForumSessionMutation creates new mutation for the ForumSession entity.
func newForumSessionMutation(c config, op Op, opts ...forumsessionOption) *ForumSessionMutation {
	m := &ForumSessionMutation{
		config:        c,
		op:            op,
		typ:           TypeForumSession,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withForumSessionID sets the ID field of the mutation.
func withForumSessionID(id int) forumsessionOption {
	return func(m *ForumSessionMutation) {
		var (
			err   error
			once  sync.Once
			value *ForumSession
		)
		m.oldValue = func(ctx context.Context) (*ForumSession, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ForumSession.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withForumSession sets the old ForumSession of the mutation.
func withForumSession(node *ForumSession) forumsessionOption {
	return func(m *ForumSessionMutation) {
		m.oldValue = func(context.Context) (*ForumSession, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ForumSessionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ForumSessionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ForumSessionMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ForumSessionMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ForumSession.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreateTime sets the "create_time" field.
func (m *ForumSessionMutation) SetCreateTime(t time.Time) {
	m.create_time = &t
}

// CreateTime returns the value of the "create_time" field in the mutation.
func (m *ForumSessionMutation) CreateTime() (r time.Time, exists bool) {
	v := m.create_time
	if v == nil {
		return
	}
	return *v, true
}

// OldCreateTime returns the old "create_time" field's value of the ForumSession entity.
// If the ForumSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ForumSessionMutation) OldCreateTime(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreateTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreateTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreateTime: %w", err)
	}
	return oldValue.CreateTime, nil
}

// ResetCreateTime resets all changes to the "create_time" field.
func (m *ForumSessionMutation) ResetCreateTime() {
	m.create_time = nil
}

// SetUpdateTime sets the "update_time" field.
func (m *ForumSessionMutation) SetUpdateTime(t time.Time) {
	m.update_time = &t
}

// UpdateTime returns the value of the "update_time" field in the mutation.
func (m *ForumSessionMutation) UpdateTime() (r time.Time, exists bool) {
	v := m.update_time
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdateTime returns the old "update_time" field's value of the ForumSession entity.
// If the ForumSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ForumSessionMutation) OldUpdateTime(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdateTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdateTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdateTime: %w", err)
	}
	return oldValue.UpdateTime, nil
}

// ResetUpdateTime resets all changes to the "update_time" field.
func (m *ForumSessionMutation) ResetUpdateTime() {
	m.update_time = nil
}

// SetChatID sets the "chat_id" field.
func (m *ForumSessionMutation) SetChatID(i int64) {
	m.chat_id = &i
	m.addchat_id = nil
}

// ChatID returns the value of the "chat_id" field in the mutation.
func (m *ForumSessionMutation) ChatID() (r int64, exists bool) {
	v := m.chat_id
	if v == nil {
		return
	}
	return *v, true
}

// OldChatID returns the old "chat_id" field's value of the ForumSession entity.
// If the ForumSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ForumSessionMutation) OldChatID(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChatID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChatID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChatID: %w", err)
	}
	return oldValue.ChatID, nil
}

// AddChatID adds i to the "chat_id" field.
func (m *ForumSessionMutation) AddChatID(i int64) {
	if m.addchat_id != nil {
		*m.addchat_id += i
	} else {
		m.addchat_id = &i
	}
}

// AddedChatID returns the value that was added to the "chat_id" field in this mutation.
func (m *ForumSessionMutation) AddedChatID() (r int64, exists bool) {
	v := m.addchat_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetChatID resets all changes to the "chat_id" field.
func (m *ForumSessionMutation) ResetChatID() {
	m.chat_id = nil
	m.addchat_id = nil
}

// SetStartedAt sets the "started_at" field.
func (m *ForumSessionMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *ForumSessionMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the ForumSession entity.
// If the ForumSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ForumSessionMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *ForumSessionMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetClosedAt sets the "closed_at" field.
func (m *ForumSessionMutation) SetClosedAt(t time.Time) {
	m.closed_at = &t
}

// ClosedAt returns the value of the "closed_at" field in the mutation.
func (m *ForumSessionMutation) ClosedAt() (r time.Time, exists bool) {
	v := m.closed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldClosedAt returns the old "closed_at" field's value of the ForumSession entity.
// If the ForumSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ForumSessionMutation) OldClosedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClosedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClosedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClosedAt: %w", err)
	}
	return oldValue.ClosedAt, nil
}

// ClearClosedAt clears the value of the "closed_at" field.
func (m *ForumSessionMutation) ClearClosedAt() {
	m.closed_at = nil
	m.clearedFields[forumsession.FieldClosedAt] = struct{}{}
}

// ClosedAtCleared returns if the "closed_at" field was cleared in this mutation.
func (m *ForumSessionMutation) ClosedAtCleared() bool {
	_, ok := m.clearedFields[forumsession.FieldClosedAt]
	return ok
}

// ResetClosedAt resets all changes to the "closed_at" field.
func (m *ForumSessionMutation) ResetClosedAt() {
	m.closed_at = nil
	delete(m.clearedFields, forumsession.FieldClosedAt)
}

// SetTopicCount sets the "topic_count" field.
func (m *ForumSessionMutation) SetTopicCount(i int) {
	m.topic_count = &i
	m.addtopic_count = nil
}

// TopicCount returns the value of the "topic_count" field in the mutation.
func (m *ForumSessionMutation) TopicCount() (r int, exists bool) {
	v := m.topic_count
	if v == nil {
		return
	}
	return *v, true
}

// OldTopicCount returns the old "topic_count" field's value of the ForumSession entity.
// If the ForumSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ForumSessionMutation) OldTopicCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTopicCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTopicCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTopicCount: %w", err)
	}
	return oldValue.TopicCount, nil
}

// AddTopicCount adds i to the "topic_count" field.
func (m *ForumSessionMutation) AddTopicCount(i int) {
	if m.addtopic_count != nil {
		*m.addtopic_count += i
	} else {
		m.addtopic_count = &i
	}
}

// AddedTopicCount returns the value that was added to the "topic_count" field in this mutation.
func (m *ForumSessionMutation) AddedTopicCount() (r int, exists bool) {
	v := m.addtopic_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetTopicCount resets all changes to the "topic_count" field.
func (m *ForumSessionMutation) ResetTopicCount() {
	m.topic_count = nil
	m.addtopic_count = nil
}

// SetEventCount sets the "event_count" field.
func (m *ForumSessionMutation) SetEventCount(i int) {
	m.event_count = &i
	m.addevent_count = nil
}

// EventCount returns the value of the "event_count" field in the mutation.
func (m *ForumSessionMutation) EventCount() (r int, exists bool) {
	v := m.event_count
	if v == nil {
		return
	}
	return *v, true
}

// OldEventCount returns the old "event_count" field's value of the ForumSession entity.
// If the ForumSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ForumSessionMutation) OldEventCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventCount: %w", err)
	}
	return oldValue.EventCount, nil
}

// AddEventCount adds i to the "event_count" field.
func (m *ForumSessionMutation) AddEventCount(i int) {
	if m.addevent_count != nil {
		*m.addevent_count += i
	} else {
		m.addevent_count = &i
	}
}

// AddedEventCount returns the value that was added to the "event_count" field in this mutation.
func (m *ForumSessionMutation) AddedEventCount() (r int, exists bool) {
	v := m.addevent_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetEventCount resets all changes to the "event_count" field.
func (m *ForumSessionMutation) ResetEventCount() {
	m.event_count = nil
	m.addevent_count = nil
}

// SetStatus sets the "status" field.
func (m *ForumSessionMutation) SetStatus(f forumsession.Status) {
	m.status = &f
}

// Status returns the value of the "status" field in the mutation.
func (m *ForumSessionMutation) Status() (r forumsession.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ForumSession entity.
// If the ForumSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ForumSessionMutation) OldStatus(ctx context.Context) (v forumsession.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ForumSessionMutation) ResetStatus() {
	m.status = nil
}

// Where appends a list predicates to the ForumSessionMutation builder.
func (m *ForumSessionMutation) Where(ps ...predicate.ForumSession) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ForumSessionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ForumSessionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ForumSession, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ForumSessionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ForumSessionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ForumSession).
func (m *ForumSessionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ForumSessionMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.create_time != nil {
		fields = append(fields, forumsession.FieldCreateTime)
	}
	if m.update_time != nil {
		fields = append(fields, forumsession.FieldUpdateTime)
	}
	if m.chat_id != nil {
		fields = append(fields, forumsession.FieldChatID)
	}
	if m.started_at != nil {
		fields = append(fields, forumsession.FieldStartedAt)
	}
	if m.closed_at != nil {
		fields = append(fields, forumsession.FieldClosedAt)
	}
	if m.topic_count != nil {
		fields = append(fields, forumsession.FieldTopicCount)
	}
	if m.event_count != nil {
		fields = append(fields, forumsession.FieldEventCount)
	}
	if m.status != nil {
		fields = append(fields, forumsession.FieldStatus)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ForumSessionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case forumsession.FieldCreateTime:
		return m.CreateTime()
	case forumsession.FieldUpdateTime:
		return m.UpdateTime()
	case forumsession.FieldChatID:
		return m.ChatID()
	case forumsession.FieldStartedAt:
		return m.StartedAt()
	case forumsession.FieldClosedAt:
		return m.ClosedAt()
	case forumsession.FieldTopicCount:
		return m.TopicCount()
	case forumsession.FieldEventCount:
		return m.EventCount()
	case forumsession.FieldStatus:
		return m.Status()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ForumSessionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case forumsession.FieldCreateTime:
		return m.OldCreateTime(ctx)
	case forumsession.FieldUpdateTime:
		return m.OldUpdateTime(ctx)
	case forumsession.FieldChatID:
		return m.OldChatID(ctx)
	case forumsession.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case forumsession.FieldClosedAt:
		return m.OldClosedAt(ctx)
	case forumsession.FieldTopicCount:
		return m.OldTopicCount(ctx)
	case forumsession.FieldEventCount:
		return m.OldEventCount(ctx)
	case forumsession.FieldStatus:
		return m.OldStatus(ctx)
	}
	return nil, fmt.Errorf("unknown ForumSession field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ForumSessionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case forumsession.FieldCreateTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreateTime(v)
		return nil
	case forumsession.FieldUpdateTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdateTime(v)
		return nil
	case forumsession.FieldChatID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChatID(v)
		return nil
	case forumsession.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case forumsession.FieldClosedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClosedAt(v)
		return nil
	case forumsession.FieldTopicCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTopicCount(v)
		return nil
	case forumsession.FieldEventCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventCount(v)
		return nil
	case forumsession.FieldStatus:
		v, ok := value.(forumsession.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	}
	return fmt.Errorf("unknown ForumSession field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ForumSessionMutation) AddedFields() []string {
	var fields []string
	if m.addchat_id != nil {
		fields = append(fields, forumsession.FieldChatID)
	}
	if m.addtopic_count != nil {
		fields = append(fields, forumsession.FieldTopicCount)
	}
	if m.addevent_count != nil {
		fields = append(fields, forumsession.FieldEventCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ForumSessionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case forumsession.FieldChatID:
		return m.AddedChatID()
	case forumsession.FieldTopicCount:
		return m.AddedTopicCount()
	case forumsession.FieldEventCount:
		return m.AddedEventCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ForumSessionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case forumsession.FieldChatID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddChatID(v)
		return nil
	case forumsession.FieldTopicCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTopicCount(v)
		return nil
	case forumsession.FieldEventCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEventCount(v)
		return nil
	}
	return fmt.Errorf("unknown ForumSession numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ForumSessionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(forumsession.FieldClosedAt) {
		fields = append(fields, forumsession.FieldClosedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ForumSessionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ForumSessionMutation) ClearField(name string) error {
	switch name {
	case forumsession.FieldClosedAt:
		m.ClearClosedAt()
		return nil
	}
	return fmt.Errorf("unknown ForumSession nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ForumSessionMutation) ResetField(name string) error {
	switch name {
	case forumsession.FieldCreateTime:
		m.ResetCreateTime()
		return nil
	case forumsession.FieldUpdateTime:
		m.ResetUpdateTime()
		return nil
	case forumsession.FieldChatID:
		m.ResetChatID()
		return nil
	case forumsession.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case forumsession.FieldClosedAt:
		m.ResetClosedAt()
		return nil
	case forumsession.FieldTopicCount:
		m.ResetTopicCount()
		return nil
	case forumsession.FieldEventCount:
		m.ResetEventCount()
		return nil
	case forumsession.FieldStatus:
		m.ResetStatus()
		return nil
	}
	return fmt.Errorf("unknown ForumSession field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ForumSessionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ForumSessionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ForumSessionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ForumSessionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ForumSessionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ForumSessionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ForumSessionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ForumSession unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ForumSessionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ForumSession edge %s", name)
}

// MeetingEventMutation represents an operation that mutates the MeetingEvent nodes in the graph.
type MeetingEventMutation struct {
	config
	op            Op
	typ           string
	id            *int
	create_time   *time.Time
	update_time   *time.Time
	chat_id       *int64
	addchat_id    *int64
	topic_text    *string
	author_id     *int64
	addauthor_id  *int64
	votes         *int
	addvotes      *int
	start_time    *time.Time
	end_time      *time.Time
	event_id      *string
	web_link      *string
	attendees     *string
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*MeetingEvent, error)
	predicates    []predicate.MeetingEvent
}

var _ ent.Mutation = (*MeetingEventMutation)(nil)

// meetingeventOption allows management of the mutation configuration using functional options.
type meetingeventOption func(*MeetingEventMutation)

// newMeetingEventMutation creates new mutation for the MeetingEvent entity.
func newMeetingEventMutation(c config, op Op, opts ...meetingeventOption) *MeetingEventMutation {
	m := &MeetingEventMutation{
		config:        c,
		op:            op,
		typ:           TypeMeetingEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMeetingEventID sets the ID field of the mutation.
func withMeetingEventID(id int) meetingeventOption {
	return func(m *MeetingEventMutation) {
		var (
			err   error
			once  sync.Once
			value *MeetingEvent
		)
		m.oldValue = func(ctx context.Context) (*MeetingEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().MeetingEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMeetingEvent sets the old MeetingEvent of the mutation.
func withMeetingEvent(node *MeetingEvent) meetingeventOption {
	return func(m *MeetingEventMutation) {
		m.oldValue = func(context.Context) (*MeetingEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MeetingEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MeetingEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MeetingEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MeetingEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().MeetingEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreateTime sets the "create_time" field.
func (m *MeetingEventMutation) SetCreateTime(t time.Time) {
	m.create_time = &t
}

// CreateTime returns the value of the "create_time" field in the mutation.
func (m *MeetingEventMutation) CreateTime() (r time.Time, exists bool) {
	v := m.create_time
	if v == nil {
		return
	}
	return *v, true
}

// OldCreateTime returns the old "create_time" field's value of the MeetingEvent entity.
// If the MeetingEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MeetingEventMutation) OldCreateTime(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreateTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreateTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreateTime: %w", err)
	}
	return oldValue.CreateTime, nil
}

// ResetCreateTime resets all changes to the "create_time" field.
func (m *MeetingEventMutation) ResetCreateTime() {
	m.create_time = nil
}

// SetUpdateTime sets the "update_time" field.
func (m *MeetingEventMutation) SetUpdateTime(t time.Time) {
	m.update_time = &t
}

// UpdateTime returns the value of the "update_time" field in the mutation.
func (m *MeetingEventMutation) UpdateTime() (r time.Time, exists bool) {
	v := m.update_time
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdateTime returns the old "update_time" field's value of the MeetingEvent entity.
// If the MeetingEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MeetingEventMutation) OldUpdateTime(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdateTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdateTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdateTime: %w", err)
	}
	return oldValue.UpdateTime, nil
}

// ResetUpdateTime resets all changes to the "update_time" field.
func (m *MeetingEventMutation) ResetUpdateTime() {
	m.update_time = nil
}

// SetChatID sets the "chat_id" field.
func (m *MeetingEventMutation) SetChatID(i int64) {
	m.chat_id = &i
	m.addchat_id = nil
}

// ChatID returns the value of the "chat_id" field in the mutation.
func (m *MeetingEventMutation) ChatID() (r int64, exists bool) {
	v := m.chat_id
	if v == nil {
		return
	}
	return *v, true
}

// OldChatID returns the old "chat_id" field's value of the MeetingEvent entity.
// If the MeetingEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MeetingEventMutation) OldChatID(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChatID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChatID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChatID: %w", err)
	}
	return oldValue.ChatID, nil
}

// AddChatID adds i to the "chat_id" field.
func (m *MeetingEventMutation) AddChatID(i int64) {
	if m.addchat_id != nil {
		*m.addchat_id += i
	} else {
		m.addchat_id = &i
	}
}

// AddedChatID returns the value that was added to the "chat_id" field in this mutation.
func (m *MeetingEventMutation) AddedChatID() (r int64, exists bool) {
	v := m.addchat_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetChatID resets all changes to the "chat_id" field.
func (m *MeetingEventMutation) ResetChatID() {
	m.chat_id = nil
	m.addchat_id = nil
}

// SetTopicText sets the "topic_text" field.
func (m *MeetingEventMutation) SetTopicText(s string) {
	m.topic_text = &s
}

// TopicText returns the value of the "topic_text" field in the mutation.
func (m *MeetingEventMutation) TopicText() (r string, exists bool) {
	v := m.topic_text
	if v == nil {
		return
	}
	return *v, true
}

// OldTopicText returns the old "topic_text" field's value of the MeetingEvent entity.
// If the MeetingEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MeetingEventMutation) OldTopicText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTopicText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTopicText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTopicText: %w", err)
	}
	return oldValue.TopicText, nil
}

// ResetTopicText resets all changes to the "topic_text" field.
func (m *MeetingEventMutation) ResetTopicText() {
	m.topic_text = nil
}

// SetAuthorID sets the "author_id" field.
func (m *MeetingEventMutation) SetAuthorID(i int64) {
	m.author_id = &i
	m.addauthor_id = nil
}

// AuthorID returns the value of the "author_id" field in the mutation.
func (m *MeetingEventMutation) AuthorID() (r int64, exists bool) {
	v := m.author_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAuthorID returns the old "author_id" field's value of the MeetingEvent entity.
// If the MeetingEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MeetingEventMutation) OldAuthorID(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAuthorID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAuthorID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAuthorID: %w", err)
	}
	return oldValue.AuthorID, nil
}

// AddAuthorID adds i to the "author_id" field.
func (m *MeetingEventMutation) AddAuthorID(i int64) {
	if m.addauthor_id != nil {
		*m.addauthor_id += i
	} else {
		m.addauthor_id = &i
	}
}

// AddedAuthorID returns the value that was added to the "author_id" field in this mutation.
func (m *MeetingEventMutation) AddedAuthorID() (r int64, exists bool) {
	v := m.addauthor_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetAuthorID resets all changes to the "author_id" field.
func (m *MeetingEventMutation) ResetAuthorID() {
	m.author_id = nil
	m.addauthor_id = nil
}

// SetVotes sets the "votes" field.
func (m *MeetingEventMutation) SetVotes(i int) {
	m.votes = &i
	m.addvotes = nil
}

// Votes returns the value of the "votes" field in the mutation.
func (m *MeetingEventMutation) Votes() (r int, exists bool) {
	v := m.votes
	if v == nil {
		return
	}
	return *v, true
}

// OldVotes returns the old "votes" field's value of the MeetingEvent entity.
// If the MeetingEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MeetingEventMutation) OldVotes(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVotes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVotes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVotes: %w", err)
	}
	return oldValue.Votes, nil
}

// AddVotes adds i to the "votes" field.
func (m *MeetingEventMutation) AddVotes(i int) {
	if m.addvotes != nil {
		*m.addvotes += i
	} else {
		m.addvotes = &i
	}
}

// AddedVotes returns the value that was added to the "votes" field in this mutation.
func (m *MeetingEventMutation) AddedVotes() (r int, exists bool) {
	v := m.addvotes
	if v == nil {
		return
	}
	return *v, true
}

// ResetVotes resets all changes to the "votes" field.
func (m *MeetingEventMutation) ResetVotes() {
	m.votes = nil
	m.addvotes = nil
}

// SetStartTime sets the "start_time" field.
func (m *MeetingEventMutation) SetStartTime(t time.Time) {
	m.start_time = &t
}

// StartTime returns the value of the "start_time" field in the mutation.
func (m *MeetingEventMutation) StartTime() (r time.Time, exists bool) {
	v := m.start_time
	if v == nil {
		return
	}
	return *v, true
}

// OldStartTime returns the old "start_time" field's value of the MeetingEvent entity.
// If the MeetingEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MeetingEventMutation) OldStartTime(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartTime: %w", err)
	}
	return oldValue.StartTime, nil
}

// ResetStartTime resets all changes to the "start_time" field.
func (m *MeetingEventMutation) ResetStartTime() {
	m.start_time = nil
}

// SetEndTime sets the "end_time" field.
func (m *MeetingEventMutation) SetEndTime(t time.Time) {
	m.end_time = &t
}

// EndTime returns the value of the "end_time" field in the mutation.
func (m *MeetingEventMutation) EndTime() (r time.Time, exists bool) {
	v := m.end_time
	if v == nil {
		return
	}
	return *v, true
}

// OldEndTime returns the old "end_time" field's value of the MeetingEvent entity.
// If the MeetingEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MeetingEventMutation) OldEndTime(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndTime: %w", err)
	}
	return oldValue.EndTime, nil
}

// ResetEndTime resets all changes to the "end_time" field.
func (m *MeetingEventMutation) ResetEndTime() {
	m.end_time = nil
}

// SetEventID sets the "event_id" field.
func (m *MeetingEventMutation) SetEventID(s string) {
	m.event_id = &s
}

// EventID returns the value of the "event_id" field in the mutation.
func (m *MeetingEventMutation) EventID() (r string, exists bool) {
	v := m.event_id
	if v == nil {
		return
	}
	return *v, true
}

// OldEventID returns the old "event_id" field's value of the MeetingEvent entity.
// If the MeetingEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MeetingEventMutation) OldEventID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventID: %w", err)
	}
	return oldValue.EventID, nil
}

// ClearEventID clears the value of the "event_id" field.
func (m *MeetingEventMutation) ClearEventID() {
	m.event_id = nil
	m.clearedFields[meetingevent.FieldEventID] = struct{}{}
}

// EventIDCleared returns if the "event_id" field was cleared in this mutation.
func (m *MeetingEventMutation) EventIDCleared() bool {
	_, ok := m.clearedFields[meetingevent.FieldEventID]
	return ok
}

// ResetEventID resets all changes to the "event_id" field.
func (m *MeetingEventMutation) ResetEventID() {
	m.event_id = nil
	delete(m.clearedFields, meetingevent.FieldEventID)
}

// SetWebLink sets the "web_link" field.
func (m *MeetingEventMutation) SetWebLink(s string) {
	m.web_link = &s
}

// WebLink returns the value of the "web_link" field in the mutation.
func (m *MeetingEventMutation) WebLink() (r string, exists bool) {
	v := m.web_link
	if v == nil {
		return
	}
	return *v, true
}

// OldWebLink returns the old "web_link" field's value of the MeetingEvent entity.
// If the MeetingEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MeetingEventMutation) OldWebLink(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWebLink is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWebLink requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWebLink: %w", err)
	}
	return oldValue.WebLink, nil
}

// ClearWebLink clears the value of the "web_link" field.
func (m *MeetingEventMutation) ClearWebLink() {
	m.web_link = nil
	m.clearedFields[meetingevent.FieldWebLink] = struct{}{}
}

// WebLinkCleared returns if the "web_link" field was cleared in this mutation.
func (m *MeetingEventMutation) WebLinkCleared() bool {
	_, ok := m.clearedFields[meetingevent.FieldWebLink]
	return ok
}

// ResetWebLink resets all changes to the "web_link" field.
func (m *MeetingEventMutation) ResetWebLink() {
	m.web_link = nil
	delete(m.clearedFields, meetingevent.FieldWebLink)
}

// SetAttendees sets the "attendees" field.
func (m *MeetingEventMutation) SetAttendees(s string) {
	m.attendees = &s
}

// Attendees returns the value of the "attendees" field in the mutation.
func (m *MeetingEventMutation) Attendees() (r string, exists bool) {
	v := m.attendees
	if v == nil {
		return
	}
	return *v, true
}

// OldAttendees returns the old "attendees" field's value of the MeetingEvent entity.
// If the MeetingEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MeetingEventMutation) OldAttendees(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttendees is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttendees requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttendees: %w", err)
	}
	return oldValue.Attendees, nil
}

// ClearAttendees clears the value of the "attendees" field.
func (m *MeetingEventMutation) ClearAttendees() {
	m.attendees = nil
	m.clearedFields[meetingevent.FieldAttendees] = struct{}{}
}

// AttendeesCleared returns if the "attendees" field was cleared in this mutation.
func (m *MeetingEventMutation) AttendeesCleared() bool {
	_, ok := m.clearedFields[meetingevent.FieldAttendees]
	return ok
}

// ResetAttendees resets all changes to the "attendees" field.
func (m *MeetingEventMutation) ResetAttendees() {
	m.attendees = nil
	delete(m.clearedFields, meetingevent.FieldAttendees)
}

// Where appends a list predicates to the MeetingEventMutation builder.
func (m *MeetingEventMutation) Where(ps ...predicate.MeetingEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MeetingEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MeetingEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.MeetingEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MeetingEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MeetingEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (MeetingEvent).
func (m *MeetingEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MeetingEventMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.create_time != nil {
		fields = append(fields, meetingevent.FieldCreateTime)
	}
	if m.update_time != nil {
		fields = append(fields, meetingevent.FieldUpdateTime)
	}
	if m.chat_id != nil {
		fields = append(fields, meetingevent.FieldChatID)
	}
	if m.topic_text != nil {
		fields = append(fields, meetingevent.FieldTopicText)
	}
	if m.author_id != nil {
		fields = append(fields, meetingevent.FieldAuthorID)
	}
	if m.votes != nil {
		fields = append(fields, meetingevent.FieldVotes)
	}
	if m.start_time != nil {
		fields = append(fields, meetingevent.FieldStartTime)
	}
	if m.end_time != nil {
		fields = append(fields, meetingevent.FieldEndTime)
	}
	if m.event_id != nil {
		fields = append(fields, meetingevent.FieldEventID)
	}
	if m.web_link != nil {
		fields = append(fields, meetingevent.FieldWebLink)
	}
	if m.attendees != nil {
		fields = append(fields, meetingevent.FieldAttendees)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MeetingEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case meetingevent.FieldCreateTime:
		return m.CreateTime()
	case meetingevent.FieldUpdateTime:
		return m.UpdateTime()
	case meetingevent.FieldChatID:
		return m.ChatID()
	case meetingevent.FieldTopicText:
		return m.TopicText()
	case meetingevent.FieldAuthorID:
		return m.AuthorID()
	case meetingevent.FieldVotes:
		return m.Votes()
	case meetingevent.FieldStartTime:
		return m.StartTime()
	case meetingevent.FieldEndTime:
		return m.EndTime()
	case meetingevent.FieldEventID:
		return m.EventID()
	case meetingevent.FieldWebLink:
		return m.WebLink()
	case meetingevent.FieldAttendees:
		return m.Attendees()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MeetingEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case meetingevent.FieldCreateTime:
		return m.OldCreateTime(ctx)
	case meetingevent.FieldUpdateTime:
		return m.OldUpdateTime(ctx)
	case meetingevent.FieldChatID:
		return m.OldChatID(ctx)
	case meetingevent.FieldTopicText:
		return m.OldTopicText(ctx)
	case meetingevent.FieldAuthorID:
		return m.OldAuthorID(ctx)
	case meetingevent.FieldVotes:
		return m.OldVotes(ctx)
	case meetingevent.FieldStartTime:
		return m.OldStartTime(ctx)
	case meetingevent.FieldEndTime:
		return m.OldEndTime(ctx)
	case meetingevent.FieldEventID:
		return m.OldEventID(ctx)
	case meetingevent.FieldWebLink:
		return m.OldWebLink(ctx)
	case meetingevent.FieldAttendees:
		return m.OldAttendees(ctx)
	}
	return nil, fmt.Errorf("unknown MeetingEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MeetingEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case meetingevent.FieldCreateTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreateTime(v)
		return nil
	case meetingevent.FieldUpdateTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdateTime(v)
		return nil
	case meetingevent.FieldChatID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChatID(v)
		return nil
	case meetingevent.FieldTopicText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTopicText(v)
		return nil
	case meetingevent.FieldAuthorID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAuthorID(v)
		return nil
	case meetingevent.FieldVotes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVotes(v)
		return nil
	case meetingevent.FieldStartTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartTime(v)
		return nil
	case meetingevent.FieldEndTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndTime(v)
		return nil
	case meetingevent.FieldEventID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventID(v)
		return nil
	case meetingevent.FieldWebLink:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWebLink(v)
		return nil
	case meetingevent.FieldAttendees:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttendees(v)
		return nil
	}
	return fmt.Errorf("unknown MeetingEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MeetingEventMutation) AddedFields() []string {
	var fields []string
	if m.addchat_id != nil {
		fields = append(fields, meetingevent.FieldChatID)
	}
	if m.addauthor_id != nil {
		fields = append(fields, meetingevent.FieldAuthorID)
	}
	if m.addvotes != nil {
		fields = append(fields, meetingevent.FieldVotes)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MeetingEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case meetingevent.FieldChatID:
		return m.AddedChatID()
	case meetingevent.FieldAuthorID:
		return m.AddedAuthorID()
	case meetingevent.FieldVotes:
		return m.AddedVotes()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MeetingEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case meetingevent.FieldChatID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddChatID(v)
		return nil
	case meetingevent.FieldAuthorID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAuthorID(v)
		return nil
	case meetingevent.FieldVotes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVotes(v)
		return nil
	}
	return fmt.Errorf("unknown MeetingEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MeetingEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(meetingevent.FieldEventID) {
		fields = append(fields, meetingevent.FieldEventID)
	}
	if m.FieldCleared(meetingevent.FieldWebLink) {
		fields = append(fields, meetingevent.FieldWebLink)
	}
	if m.FieldCleared(meetingevent.FieldAttendees) {
		fields = append(fields, meetingevent.FieldAttendees)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MeetingEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MeetingEventMutation) ClearField(name string) error {
	switch name {
	case meetingevent.FieldEventID:
		m.ClearEventID()
		return nil
	case meetingevent.FieldWebLink:
		m.ClearWebLink()
		return nil
	case meetingevent.FieldAttendees:
		m.ClearAttendees()
		return nil
	}
	return fmt.Errorf("unknown MeetingEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MeetingEventMutation) ResetField(name string) error {
	switch name {
	case meetingevent.FieldCreateTime:
		m.ResetCreateTime()
		return nil
	case meetingevent.FieldUpdateTime:
		m.ResetUpdateTime()
		return nil
	case meetingevent.FieldChatID:
		m.ResetChatID()
		return nil
	case meetingevent.FieldTopicText:
		m.ResetTopicText()
		return nil
	case meetingevent.FieldAuthorID:
		m.ResetAuthorID()
		return nil
	case meetingevent.FieldVotes:
		m.ResetVotes()
		return nil
	case meetingevent.FieldStartTime:
		m.ResetStartTime()
		return nil
	case meetingevent.FieldEndTime:
		m.ResetEndTime()
		return nil
	case meetingevent.FieldEventID:
		m.ResetEventID()
		return nil
	case meetingevent.FieldWebLink:
		m.ResetWebLink()
		return nil
	case meetingevent.FieldAttendees:
		m.ResetAttendees()
		return nil
	}
	return fmt.Errorf("unknown MeetingEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MeetingEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MeetingEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MeetingEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MeetingEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MeetingEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MeetingEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MeetingEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown MeetingEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MeetingEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown MeetingEvent edge %s", name)
}
