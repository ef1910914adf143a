// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/fachebot/forum-meet-bot/internal/ent/meetingevent"
)

// MeetingEventCreate is the builder for creating a MeetingEvent entity.
type MeetingEventCreate struct {
	config
	mutation *MeetingEventMutation
	hooks    []Hook
}

// SetCreateTime sets the "create_time" field.
func (mec *MeetingEventCreate) SetCreateTime(t time.Time) *MeetingEventCreate {
	mec.mutation.SetCreateTime(t)
	return mec
}

// SetNillableCreateTime sets the "create_time" field if the given value is not nil.
func (mec *MeetingEventCreate) SetNillableCreateTime(t *time.Time) *MeetingEventCreate {
	if t != nil {
		mec.SetCreateTime(*t)
	}
	return mec
}

// SetUpdateTime sets the "update_time" field.
func (mec *MeetingEventCreate) SetUpdateTime(t time.Time) *MeetingEventCreate {
	mec.mutation.SetUpdateTime(t)
	return mec
}

// SetNillableUpdateTime sets the "update_time" field if the given value is not nil.
func (mec *MeetingEventCreate) SetNillableUpdateTime(t *time.Time) *MeetingEventCreate {
	if t != nil {
		mec.SetUpdateTime(*t)
	}
	return mec
}

// SetChatID sets the "chat_id" field.
func (mec *MeetingEventCreate) SetChatID(i int64) *MeetingEventCreate {
	mec.mutation.SetChatID(i)
	return mec
}

// SetTopicText sets the "topic_text" field.
func (mec *MeetingEventCreate) SetTopicText(s string) *MeetingEventCreate {
	mec.mutation.SetTopicText(s)
	return mec
}

// SetAuthorID sets the "author_id" field.
func (mec *MeetingEventCreate) SetAuthorID(i int64) *MeetingEventCreate {
	mec.mutation.SetAuthorID(i)
	return mec
}

// SetVotes sets the "votes" field.
func (mec *MeetingEventCreate) SetVotes(i int) *MeetingEventCreate {
	mec.mutation.SetVotes(i)
	return mec
}

// SetNillableVotes sets the "votes" field if the given value is not nil.
func (mec *MeetingEventCreate) SetNillableVotes(i *int) *MeetingEventCreate {
	if i != nil {
		mec.SetVotes(*i)
	}
	return mec
}

// SetStartTime sets the "start_time" field.
func (mec *MeetingEventCreate) SetStartTime(t time.Time) *MeetingEventCreate {
	mec.mutation.SetStartTime(t)
	return mec
}

// SetEndTime sets the "end_time" field.
func (mec *MeetingEventCreate) SetEndTime(t time.Time) *MeetingEventCreate {
	mec.mutation.SetEndTime(t)
	return mec
}

// SetEventID sets the "event_id" field.
func (mec *MeetingEventCreate) SetEventID(s string) *MeetingEventCreate {
	mec.mutation.SetEventID(s)
	return mec
}

// SetNillableEventID sets the "event_id" field if the given value is not nil.
func (mec *MeetingEventCreate) SetNillableEventID(s *string) *MeetingEventCreate {
	if s != nil {
		mec.SetEventID(*s)
	}
	return mec
}

// SetWebLink sets the "web_link" field.
func (mec *MeetingEventCreate) SetWebLink(s string) *MeetingEventCreate {
	mec.mutation.SetWebLink(s)
	return mec
}

// SetNillableWebLink sets the "web_link" field if the given value is not nil.
func (mec *MeetingEventCreate) SetNillableWebLink(s *string) *MeetingEventCreate {
	if s != nil {
		mec.SetWebLink(*s)
	}
	return mec
}

// SetAttendees sets the "attendees" field.
func (mec *MeetingEventCreate) SetAttendees(s string) *MeetingEventCreate {
	mec.mutation.SetAttendees(s)
	return mec
}

// SetNillableAttendees sets the "attendees" field if the given value is not nil.
func (mec *MeetingEventCreate) SetNillableAttendees(s *string) *MeetingEventCreate {
	if s != nil {
		mec.SetAttendees(*s)
	}
	return mec
}

// Mutation returns the MeetingEventMutation object of the builder.
func (mec *MeetingEventCreate) Mutation() *MeetingEventMutation {
	return mec.mutation
}

// Save creates the MeetingEvent in the database.
func (mec *MeetingEventCreate) Save(ctx context.Context) (*MeetingEvent, error) {
	mec.defaults()
	return withHooks(ctx, mec.sqlSave, mec.mutation, mec.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (mec *MeetingEventCreate) SaveX(ctx context.Context) *MeetingEvent {
	v, err := mec.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (mec *MeetingEventCreate) Exec(ctx context.Context) error {
	_, err := mec.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (mec *MeetingEventCreate) ExecX(ctx context.Context) {
	if err := mec.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (mec *MeetingEventCreate) defaults() {
	if _, ok := mec.mutation.CreateTime(); !ok {
		v := meetingevent.DefaultCreateTime()
		mec.mutation.SetCreateTime(v)
	}
	if _, ok := mec.mutation.UpdateTime(); !ok {
		v := meetingevent.DefaultUpdateTime()
		mec.mutation.SetUpdateTime(v)
	}
	if _, ok := mec.mutation.Votes(); !ok {
		v := meetingevent.DefaultVotes
		mec.mutation.SetVotes(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (mec *MeetingEventCreate) check() error {
	if _, ok := mec.mutation.CreateTime(); !ok {
		return &ValidationError{Name: "create_time", err: errors.New(`ent: missing required field "MeetingEvent.create_time"`)}
	}
	if _, ok := mec.mutation.UpdateTime(); !ok {
		return &ValidationError{Name: "update_time", err: errors.New(`ent: missing required field "MeetingEvent.update_time"`)}
	}
	if _, ok := mec.mutation.ChatID(); !ok {
		return &ValidationError{Name: "chat_id", err: errors.New(`ent: missing required field "MeetingEvent.chat_id"`)}
	}
	if _, ok := mec.mutation.TopicText(); !ok {
		return &ValidationError{Name: "topic_text", err: errors.New(`ent: missing required field "MeetingEvent.topic_text"`)}
	}
	if _, ok := mec.mutation.AuthorID(); !ok {
		return &ValidationError{Name: "author_id", err: errors.New(`ent: missing required field "MeetingEvent.author_id"`)}
	}
	if _, ok := mec.mutation.Votes(); !ok {
		return &ValidationError{Name: "votes", err: errors.New(`ent: missing required field "MeetingEvent.votes"`)}
	}
	if _, ok := mec.mutation.StartTime(); !ok {
		return &ValidationError{Name: "start_time", err: errors.New(`ent: missing required field "MeetingEvent.start_time"`)}
	}
	if _, ok := mec.mutation.EndTime(); !ok {
		return &ValidationError{Name: "end_time", err: errors.New(`ent: missing required field "MeetingEvent.end_time"`)}
	}
	return nil
}

func (mec *MeetingEventCreate) sqlSave(ctx context.Context) (*MeetingEvent, error) {
	if err := mec.check(); err != nil {
		return nil, err
	}
	_node, _spec := mec.createSpec()
	if err := sqlgraph.CreateNode(ctx, mec.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	mec.mutation.id = &_node.ID
	mec.mutation.done = true
	return _node, nil
}

func (mec *MeetingEventCreate) createSpec() (*MeetingEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &MeetingEvent{config: mec.config}
		_spec = sqlgraph.NewCreateSpec(meetingevent.Table, sqlgraph.NewFieldSpec(meetingevent.FieldID, field.TypeInt))
	)
	if value, ok := mec.mutation.CreateTime(); ok {
		_spec.SetField(meetingevent.FieldCreateTime, field.TypeTime, value)
		_node.CreateTime = value
	}
	if value, ok := mec.mutation.UpdateTime(); ok {
		_spec.SetField(meetingevent.FieldUpdateTime, field.TypeTime, value)
		_node.UpdateTime = value
	}
	if value, ok := mec.mutation.ChatID(); ok {
		_spec.SetField(meetingevent.FieldChatID, field.TypeInt64, value)
		_node.ChatID = value
	}
	if value, ok := mec.mutation.TopicText(); ok {
		_spec.SetField(meetingevent.FieldTopicText, field.TypeString, value)
		_node.TopicText = value
	}
	if value, ok := mec.mutation.AuthorID(); ok {
		_spec.SetField(meetingevent.FieldAuthorID, field.TypeInt64, value)
		_node.AuthorID = value
	}
	if value, ok := mec.mutation.Votes(); ok {
		_spec.SetField(meetingevent.FieldVotes, field.TypeInt, value)
		_node.Votes = value
	}
	if value, ok := mec.mutation.StartTime(); ok {
		_spec.SetField(meetingevent.FieldStartTime, field.TypeTime, value)
		_node.StartTime = value
	}
	if value, ok := mec.mutation.EndTime(); ok {
		_spec.SetField(meetingevent.FieldEndTime, field.TypeTime, value)
		_node.EndTime = value
	}
	if value, ok := mec.mutation.EventID(); ok {
		_spec.SetField(meetingevent.FieldEventID, field.TypeString, value)
		_node.EventID = value
	}
	if value, ok := mec.mutation.WebLink(); ok {
		_spec.SetField(meetingevent.FieldWebLink, field.TypeString, value)
		_node.WebLink = value
	}
	if value, ok := mec.mutation.Attendees(); ok {
		_spec.SetField(meetingevent.FieldAttendees, field.TypeString, value)
		_node.Attendees = value
	}
	return _node, _spec
}

// MeetingEventCreateBulk is the builder for creating many MeetingEvent entities in bulk.
type MeetingEventCreateBulk struct {
	config
	err      error
	builders []*MeetingEventCreate
}

// Save creates the MeetingEvent entities in the database.
func (mecb *MeetingEventCreateBulk) Save(ctx context.Context) ([]*MeetingEvent, error) {
	if mecb.err != nil {
		return nil, mecb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(mecb.builders))
	nodes := make([]*MeetingEvent, len(mecb.builders))
	mutators := make([]Mutator, len(mecb.builders))
	for i := range mecb.builders {
		func(i int, root context.Context) {
			builder := mecb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MeetingEventMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, mecb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, mecb.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, mecb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (mecb *MeetingEventCreateBulk) SaveX(ctx context.Context) []*MeetingEvent {
	v, err := mecb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (mecb *MeetingEventCreateBulk) Exec(ctx context.Context) error {
	_, err := mecb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (mecb *MeetingEventCreateBulk) ExecX(ctx context.Context) {
	if err := mecb.Exec(ctx); err != nil {
		panic(err)
	}
}
