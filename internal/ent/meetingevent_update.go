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
	"github.com/fachebot/forum-meet-bot/internal/ent/meetingevent"
	"github.com/fachebot/forum-meet-bot/internal/ent/predicate"
)

// MeetingEventUpdate is the builder for updating MeetingEvent entities.
type MeetingEventUpdate struct {
	config
	hooks    []Hook
	mutation *MeetingEventMutation
}

// Where appends a list predicates to the MeetingEventUpdate builder.
func (meu *MeetingEventUpdate) Where(ps ...predicate.MeetingEvent) *MeetingEventUpdate {
	meu.mutation.Where(ps...)
	return meu
}

// SetUpdateTime sets the "update_time" field.
func (meu *MeetingEventUpdate) SetUpdateTime(t time.Time) *MeetingEventUpdate {
	meu.mutation.SetUpdateTime(t)
	return meu
}

// SetChatID sets the "chat_id" field.
func (meu *MeetingEventUpdate) SetChatID(i int64) *MeetingEventUpdate {
	meu.mutation.ResetChatID()
	meu.mutation.SetChatID(i)
	return meu
}

// SetNillableChatID sets the "chat_id" field if the given value is not nil.
func (meu *MeetingEventUpdate) SetNillableChatID(i *int64) *MeetingEventUpdate {
	if i != nil {
		meu.SetChatID(*i)
	}
	return meu
}

// AddChatID adds i to the "chat_id" field.
func (meu *MeetingEventUpdate) AddChatID(i int64) *MeetingEventUpdate {
	meu.mutation.AddChatID(i)
	return meu
}

// SetTopicText sets the "topic_text" field.
func (meu *MeetingEventUpdate) SetTopicText(s string) *MeetingEventUpdate {
	meu.mutation.SetTopicText(s)
	return meu
}

// SetNillableTopicText sets the "topic_text" field if the given value is not nil.
func (meu *MeetingEventUpdate) SetNillableTopicText(s *string) *MeetingEventUpdate {
	if s != nil {
		meu.SetTopicText(*s)
	}
	return meu
}

// SetAuthorID sets the "author_id" field.
func (meu *MeetingEventUpdate) SetAuthorID(i int64) *MeetingEventUpdate {
	meu.mutation.ResetAuthorID()
	meu.mutation.SetAuthorID(i)
	return meu
}

// SetNillableAuthorID sets the "author_id" field if the given value is not nil.
func (meu *MeetingEventUpdate) SetNillableAuthorID(i *int64) *MeetingEventUpdate {
	if i != nil {
		meu.SetAuthorID(*i)
	}
	return meu
}

// AddAuthorID adds i to the "author_id" field.
func (meu *MeetingEventUpdate) AddAuthorID(i int64) *MeetingEventUpdate {
	meu.mutation.AddAuthorID(i)
	return meu
}

// SetVotes sets the "votes" field.
func (meu *MeetingEventUpdate) SetVotes(i int) *MeetingEventUpdate {
	meu.mutation.ResetVotes()
	meu.mutation.SetVotes(i)
	return meu
}

// SetNillableVotes sets the "votes" field if the given value is not nil.
func (meu *MeetingEventUpdate) SetNillableVotes(i *int) *MeetingEventUpdate {
	if i != nil {
		meu.SetVotes(*i)
	}
	return meu
}

// AddVotes adds i to the "votes" field.
func (meu *MeetingEventUpdate) AddVotes(i int) *MeetingEventUpdate {
	meu.mutation.AddVotes(i)
	return meu
}

// SetStartTime sets the "start_time" field.
func (meu *MeetingEventUpdate) SetStartTime(t time.Time) *MeetingEventUpdate {
	meu.mutation.SetStartTime(t)
	return meu
}

// SetNillableStartTime sets the "start_time" field if the given value is not nil.
func (meu *MeetingEventUpdate) SetNillableStartTime(t *time.Time) *MeetingEventUpdate {
	if t != nil {
		meu.SetStartTime(*t)
	}
	return meu
}

// SetEndTime sets the "end_time" field.
func (meu *MeetingEventUpdate) SetEndTime(t time.Time) *MeetingEventUpdate {
	meu.mutation.SetEndTime(t)
	return meu
}

// SetNillableEndTime sets the "end_time" field if the given value is not nil.
func (meu *MeetingEventUpdate) SetNillableEndTime(t *time.Time) *MeetingEventUpdate {
	if t != nil {
		meu.SetEndTime(*t)
	}
	return meu
}

// SetEventID sets the "event_id" field.
func (meu *MeetingEventUpdate) SetEventID(s string) *MeetingEventUpdate {
	meu.mutation.SetEventID(s)
	return meu
}

// SetNillableEventID sets the "event_id" field if the given value is not nil.
func (meu *MeetingEventUpdate) SetNillableEventID(s *string) *MeetingEventUpdate {
	if s != nil {
		meu.SetEventID(*s)
	}
	return meu
}

// ClearEventID clears the value of the "event_id" field.
func (meu *MeetingEventUpdate) ClearEventID() *MeetingEventUpdate {
	meu.mutation.ClearEventID()
	return meu
}

// SetWebLink sets the "web_link" field.
func (meu *MeetingEventUpdate) SetWebLink(s string) *MeetingEventUpdate {
	meu.mutation.SetWebLink(s)
	return meu
}

// SetNillableWebLink sets the "web_link" field if the given value is not nil.
func (meu *MeetingEventUpdate) SetNillableWebLink(s *string) *MeetingEventUpdate {
	if s != nil {
		meu.SetWebLink(*s)
	}
	return meu
}

// ClearWebLink clears the value of the "web_link" field.
func (meu *MeetingEventUpdate) ClearWebLink() *MeetingEventUpdate {
	meu.mutation.ClearWebLink()
	return meu
}

// SetAttendees sets the "attendees" field.
func (meu *MeetingEventUpdate) SetAttendees(s string) *MeetingEventUpdate {
	meu.mutation.SetAttendees(s)
	return meu
}

// SetNillableAttendees sets the "attendees" field if the given value is not nil.
func (meu *MeetingEventUpdate) SetNillableAttendees(s *string) *MeetingEventUpdate {
	if s != nil {
		meu.SetAttendees(*s)
	}
	return meu
}

// ClearAttendees clears the value of the "attendees" field.
func (meu *MeetingEventUpdate) ClearAttendees() *MeetingEventUpdate {
	meu.mutation.ClearAttendees()
	return meu
}

// Mutation returns the MeetingEventMutation object of the builder.
func (meu *MeetingEventUpdate) Mutation() *MeetingEventMutation {
	return meu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (meu *MeetingEventUpdate) Save(ctx context.Context) (int, error) {
	meu.defaults()
	return withHooks(ctx, meu.sqlSave, meu.mutation, meu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (meu *MeetingEventUpdate) SaveX(ctx context.Context) int {
	affected, err := meu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (meu *MeetingEventUpdate) Exec(ctx context.Context) error {
	_, err := meu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (meu *MeetingEventUpdate) ExecX(ctx context.Context) {
	if err := meu.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (meu *MeetingEventUpdate) defaults() {
	if _, ok := meu.mutation.UpdateTime(); !ok {
		v := meetingevent.UpdateDefaultUpdateTime()
		meu.mutation.SetUpdateTime(v)
	}
}

func (meu *MeetingEventUpdate) sqlSave(ctx context.Context) (n int, err error) {
	_spec := sqlgraph.NewUpdateSpec(meetingevent.Table, meetingevent.Columns, sqlgraph.NewFieldSpec(meetingevent.FieldID, field.TypeInt))
	if ps := meu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := meu.mutation.UpdateTime(); ok {
		_spec.SetField(meetingevent.FieldUpdateTime, field.TypeTime, value)
	}
	if value, ok := meu.mutation.ChatID(); ok {
		_spec.SetField(meetingevent.FieldChatID, field.TypeInt64, value)
	}
	if value, ok := meu.mutation.AddedChatID(); ok {
		_spec.AddField(meetingevent.FieldChatID, field.TypeInt64, value)
	}
	if value, ok := meu.mutation.TopicText(); ok {
		_spec.SetField(meetingevent.FieldTopicText, field.TypeString, value)
	}
	if value, ok := meu.mutation.AuthorID(); ok {
		_spec.SetField(meetingevent.FieldAuthorID, field.TypeInt64, value)
	}
	if value, ok := meu.mutation.AddedAuthorID(); ok {
		_spec.AddField(meetingevent.FieldAuthorID, field.TypeInt64, value)
	}
	if value, ok := meu.mutation.Votes(); ok {
		_spec.SetField(meetingevent.FieldVotes, field.TypeInt, value)
	}
	if value, ok := meu.mutation.AddedVotes(); ok {
		_spec.AddField(meetingevent.FieldVotes, field.TypeInt, value)
	}
	if value, ok := meu.mutation.StartTime(); ok {
		_spec.SetField(meetingevent.FieldStartTime, field.TypeTime, value)
	}
	if value, ok := meu.mutation.EndTime(); ok {
		_spec.SetField(meetingevent.FieldEndTime, field.TypeTime, value)
	}
	if value, ok := meu.mutation.EventID(); ok {
		_spec.SetField(meetingevent.FieldEventID, field.TypeString, value)
	}
	if meu.mutation.EventIDCleared() {
		_spec.ClearField(meetingevent.FieldEventID, field.TypeString)
	}
	if value, ok := meu.mutation.WebLink(); ok {
		_spec.SetField(meetingevent.FieldWebLink, field.TypeString, value)
	}
	if meu.mutation.WebLinkCleared() {
		_spec.ClearField(meetingevent.FieldWebLink, field.TypeString)
	}
	if value, ok := meu.mutation.Attendees(); ok {
		_spec.SetField(meetingevent.FieldAttendees, field.TypeString, value)
	}
	if meu.mutation.AttendeesCleared() {
		_spec.ClearField(meetingevent.FieldAttendees, field.TypeString)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, meu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{meetingevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	meu.mutation.done = true
	return n, nil
}

// MeetingEventUpdateOne is the builder for updating a single MeetingEvent entity.
type MeetingEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MeetingEventMutation
}

// SetUpdateTime sets the "update_time" field.
func (meuo *MeetingEventUpdateOne) SetUpdateTime(t time.Time) *MeetingEventUpdateOne {
	meuo.mutation.SetUpdateTime(t)
	return meuo
}

// SetChatID sets the "chat_id" field.
func (meuo *MeetingEventUpdateOne) SetChatID(i int64) *MeetingEventUpdateOne {
	meuo.mutation.ResetChatID()
	meuo.mutation.SetChatID(i)
	return meuo
}

// SetNillableChatID sets the "chat_id" field if the given value is not nil.
func (meuo *MeetingEventUpdateOne) SetNillableChatID(i *int64) *MeetingEventUpdateOne {
	if i != nil {
		meuo.SetChatID(*i)
	}
	return meuo
}

// AddChatID adds i to the "chat_id" field.
func (meuo *MeetingEventUpdateOne) AddChatID(i int64) *MeetingEventUpdateOne {
	meuo.mutation.AddChatID(i)
	return meuo
}

// SetTopicText sets the "topic_text" field.
func (meuo *MeetingEventUpdateOne) SetTopicText(s string) *MeetingEventUpdateOne {
	meuo.mutation.SetTopicText(s)
	return meuo
}

// SetNillableTopicText sets the "topic_text" field if the given value is not nil.
func (meuo *MeetingEventUpdateOne) SetNillableTopicText(s *string) *MeetingEventUpdateOne {
	if s != nil {
		meuo.SetTopicText(*s)
	}
	return meuo
}

// SetAuthorID sets the "author_id" field.
func (meuo *MeetingEventUpdateOne) SetAuthorID(i int64) *MeetingEventUpdateOne {
	meuo.mutation.ResetAuthorID()
	meuo.mutation.SetAuthorID(i)
	return meuo
}

// SetNillableAuthorID sets the "author_id" field if the given value is not nil.
func (meuo *MeetingEventUpdateOne) SetNillableAuthorID(i *int64) *MeetingEventUpdateOne {
	if i != nil {
		meuo.SetAuthorID(*i)
	}
	return meuo
}

// AddAuthorID adds i to the "author_id" field.
func (meuo *MeetingEventUpdateOne) AddAuthorID(i int64) *MeetingEventUpdateOne {
	meuo.mutation.AddAuthorID(i)
	return meuo
}

// SetVotes sets the "votes" field.
func (meuo *MeetingEventUpdateOne) SetVotes(i int) *MeetingEventUpdateOne {
	meuo.mutation.ResetVotes()
	meuo.mutation.SetVotes(i)
	return meuo
}

// SetNillableVotes sets the "votes" field if the given value is not nil.
func (meuo *MeetingEventUpdateOne) SetNillableVotes(i *int) *MeetingEventUpdateOne {
	if i != nil {
		meuo.SetVotes(*i)
	}
	return meuo
}

// AddVotes adds i to the "votes" field.
func (meuo *MeetingEventUpdateOne) AddVotes(i int) *MeetingEventUpdateOne {
	meuo.mutation.AddVotes(i)
	return meuo
}

// SetStartTime sets the "start_time" field.
func (meuo *MeetingEventUpdateOne) SetStartTime(t time.Time) *MeetingEventUpdateOne {
	meuo.mutation.SetStartTime(t)
	return meuo
}

// SetNillableStartTime sets the "start_time" field if the given value is not nil.
func (meuo *MeetingEventUpdateOne) SetNillableStartTime(t *time.Time) *MeetingEventUpdateOne {
	if t != nil {
		meuo.SetStartTime(*t)
	}
	return meuo
}

// SetEndTime sets the "end_time" field.
func (meuo *MeetingEventUpdateOne) SetEndTime(t time.Time) *MeetingEventUpdateOne {
	meuo.mutation.SetEndTime(t)
	return meuo
}

// SetNillableEndTime sets the "end_time" field if the given value is not nil.
func (meuo *MeetingEventUpdateOne) SetNillableEndTime(t *time.Time) *MeetingEventUpdateOne {
	if t != nil {
		meuo.SetEndTime(*t)
	}
	return meuo
}

// SetEventID sets the "event_id" field.
func (meuo *MeetingEventUpdateOne) SetEventID(s string) *MeetingEventUpdateOne {
	meuo.mutation.SetEventID(s)
	return meuo
}

// SetNillableEventID sets the "event_id" field if the given value is not nil.
func (meuo *MeetingEventUpdateOne) SetNillableEventID(s *string) *MeetingEventUpdateOne {
	if s != nil {
		meuo.SetEventID(*s)
	}
	return meuo
}

// ClearEventID clears the value of the "event_id" field.
func (meuo *MeetingEventUpdateOne) ClearEventID() *MeetingEventUpdateOne {
	meuo.mutation.ClearEventID()
	return meuo
}

// SetWebLink sets the "web_link" field.
func (meuo *MeetingEventUpdateOne) SetWebLink(s string) *MeetingEventUpdateOne {
	meuo.mutation.SetWebLink(s)
	return meuo
}

// SetNillableWebLink sets the "web_link" field if the given value is not nil.
func (meuo *MeetingEventUpdateOne) SetNillableWebLink(s *string) *MeetingEventUpdateOne {
	if s != nil {
		meuo.SetWebLink(*s)
	}
	return meuo
}

// ClearWebLink clears the value of the "web_link" field.
func (meuo *MeetingEventUpdateOne) ClearWebLink() *MeetingEventUpdateOne {
	meuo.mutation.ClearWebLink()
	return meuo
}

// SetAttendees sets the "attendees" field.
func (meuo *MeetingEventUpdateOne) SetAttendees(s string) *MeetingEventUpdateOne {
	meuo.mutation.SetAttendees(s)
	return meuo
}

// SetNillableAttendees sets the "attendees" field if the given value is not nil.
func (meuo *MeetingEventUpdateOne) SetNillableAttendees(s *string) *MeetingEventUpdateOne {
	if s != nil {
		meuo.SetAttendees(*s)
	}
	return meuo
}

// ClearAttendees clears the value of the "attendees" field.
func (meuo *MeetingEventUpdateOne) ClearAttendees() *MeetingEventUpdateOne {
	meuo.mutation.ClearAttendees()
	return meuo
}

// Mutation returns the MeetingEventMutation object of the builder.
func (meuo *MeetingEventUpdateOne) Mutation() *MeetingEventMutation {
	return meuo.mutation
}

// Where appends a list predicates to the MeetingEventUpdate builder.
func (meuo *MeetingEventUpdateOne) Where(ps ...predicate.MeetingEvent) *MeetingEventUpdateOne {
	meuo.mutation.Where(ps...)
	return meuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (meuo *MeetingEventUpdateOne) Select(field string, fields ...string) *MeetingEventUpdateOne {
	meuo.fields = append([]string{field}, fields...)
	return meuo
}

// Save executes the query and returns the updated MeetingEvent entity.
func (meuo *MeetingEventUpdateOne) Save(ctx context.Context) (*MeetingEvent, error) {
	meuo.defaults()
	return withHooks(ctx, meuo.sqlSave, meuo.mutation, meuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (meuo *MeetingEventUpdateOne) SaveX(ctx context.Context) *MeetingEvent {
	node, err := meuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (meuo *MeetingEventUpdateOne) Exec(ctx context.Context) error {
	_, err := meuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (meuo *MeetingEventUpdateOne) ExecX(ctx context.Context) {
	if err := meuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (meuo *MeetingEventUpdateOne) defaults() {
	if _, ok := meuo.mutation.UpdateTime(); !ok {
		v := meetingevent.UpdateDefaultUpdateTime()
		meuo.mutation.SetUpdateTime(v)
	}
}

func (meuo *MeetingEventUpdateOne) sqlSave(ctx context.Context) (_node *MeetingEvent, err error) {
	_spec := sqlgraph.NewUpdateSpec(meetingevent.Table, meetingevent.Columns, sqlgraph.NewFieldSpec(meetingevent.FieldID, field.TypeInt))
	id, ok := meuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "MeetingEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := meuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, meetingevent.FieldID)
		for _, f := range fields {
			if !meetingevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != meetingevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := meuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := meuo.mutation.UpdateTime(); ok {
		_spec.SetField(meetingevent.FieldUpdateTime, field.TypeTime, value)
	}
	if value, ok := meuo.mutation.ChatID(); ok {
		_spec.SetField(meetingevent.FieldChatID, field.TypeInt64, value)
	}
	if value, ok := meuo.mutation.AddedChatID(); ok {
		_spec.AddField(meetingevent.FieldChatID, field.TypeInt64, value)
	}
	if value, ok := meuo.mutation.TopicText(); ok {
		_spec.SetField(meetingevent.FieldTopicText, field.TypeString, value)
	}
	if value, ok := meuo.mutation.AuthorID(); ok {
		_spec.SetField(meetingevent.FieldAuthorID, field.TypeInt64, value)
	}
	if value, ok := meuo.mutation.AddedAuthorID(); ok {
		_spec.AddField(meetingevent.FieldAuthorID, field.TypeInt64, value)
	}
	if value, ok := meuo.mutation.Votes(); ok {
		_spec.SetField(meetingevent.FieldVotes, field.TypeInt, value)
	}
	if value, ok := meuo.mutation.AddedVotes(); ok {
		_spec.AddField(meetingevent.FieldVotes, field.TypeInt, value)
	}
	if value, ok := meuo.mutation.StartTime(); ok {
		_spec.SetField(meetingevent.FieldStartTime, field.TypeTime, value)
	}
	if value, ok := meuo.mutation.EndTime(); ok {
		_spec.SetField(meetingevent.FieldEndTime, field.TypeTime, value)
	}
	if value, ok := meuo.mutation.EventID(); ok {
		_spec.SetField(meetingevent.FieldEventID, field.TypeString, value)
	}
	if meuo.mutation.EventIDCleared() {
		_spec.ClearField(meetingevent.FieldEventID, field.TypeString)
	}
	if value, ok := meuo.mutation.WebLink(); ok {
		_spec.SetField(meetingevent.FieldWebLink, field.TypeString, value)
	}
	if meuo.mutation.WebLinkCleared() {
		_spec.ClearField(meetingevent.FieldWebLink, field.TypeString)
	}
	if value, ok := meuo.mutation.Attendees(); ok {
		_spec.SetField(meetingevent.FieldAttendees, field.TypeString, value)
	}
	if meuo.mutation.AttendeesCleared() {
		_spec.ClearField(meetingevent.FieldAttendees, field.TypeString)
	}
	_node = &MeetingEvent{config: meuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, meuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{meetingevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	meuo.mutation.done = true
	return _node, nil
}
