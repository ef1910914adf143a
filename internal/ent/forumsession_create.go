// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/fachebot/forum-meet-bot/internal/ent/forumsession"
)

// ForumSessionCreate is the builder for creating a ForumSession entity.
type ForumSessionCreate struct {
	config
	mutation *ForumSessionMutation
	hooks    []Hook
}

// SetCreateTime sets the "create_time" field.
func (fsc *ForumSessionCreate) SetCreateTime(t time.Time) *ForumSessionCreate {
	fsc.mutation.SetCreateTime(t)
	return fsc
}

// SetNillableCreateTime sets the "create_time" field if the given value is not nil.
func (fsc *ForumSessionCreate) SetNillableCreateTime(t *time.Time) *ForumSessionCreate {
	if t != nil {
		fsc.SetCreateTime(*t)
	}
	return fsc
}

// SetUpdateTime sets the "update_time" field.
func (fsc *ForumSessionCreate) SetUpdateTime(t time.Time) *ForumSessionCreate {
	fsc.mutation.SetUpdateTime(t)
	return fsc
}

// SetNillableUpdateTime sets the "update_time" field if the given value is not nil.
func (fsc *ForumSessionCreate) SetNillableUpdateTime(t *time.Time) *ForumSessionCreate {
	if t != nil {
		fsc.SetUpdateTime(*t)
	}
	return fsc
}

// SetChatID sets the "chat_id" field.
func (fsc *ForumSessionCreate) SetChatID(i int64) *ForumSessionCreate {
	fsc.mutation.SetChatID(i)
	return fsc
}

// SetStartedAt sets the "started_at" field.
func (fsc *ForumSessionCreate) SetStartedAt(t time.Time) *ForumSessionCreate {
	fsc.mutation.SetStartedAt(t)
	return fsc
}

// SetClosedAt sets the "closed_at" field.
func (fsc *ForumSessionCreate) SetClosedAt(t time.Time) *ForumSessionCreate {
	fsc.mutation.SetClosedAt(t)
	return fsc
}

// SetNillableClosedAt sets the "closed_at" field if the given value is not nil.
func (fsc *ForumSessionCreate) SetNillableClosedAt(t *time.Time) *ForumSessionCreate {
	if t != nil {
		fsc.SetClosedAt(*t)
	}
	return fsc
}

// SetTopicCount sets the "topic_count" field.
func (fsc *ForumSessionCreate) SetTopicCount(i int) *ForumSessionCreate {
	fsc.mutation.SetTopicCount(i)
	return fsc
}

// SetNillableTopicCount sets the "topic_count" field if the given value is not nil.
func (fsc *ForumSessionCreate) SetNillableTopicCount(i *int) *ForumSessionCreate {
	if i != nil {
		fsc.SetTopicCount(*i)
	}
	return fsc
}

// SetEventCount sets the "event_count" field.
func (fsc *ForumSessionCreate) SetEventCount(i int) *ForumSessionCreate {
	fsc.mutation.SetEventCount(i)
	return fsc
}

// SetNillableEventCount sets the "event_count" field if the given value is not nil.
func (fsc *ForumSessionCreate) SetNillableEventCount(i *int) *ForumSessionCreate {
	if i != nil {
		fsc.SetEventCount(*i)
	}
	return fsc
}

// SetStatus sets the "status" field.
func (fsc *ForumSessionCreate) SetStatus(f forumsession.Status) *ForumSessionCreate {
	fsc.mutation.SetStatus(f)
	return fsc
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (fsc *ForumSessionCreate) SetNillableStatus(f *forumsession.Status) *ForumSessionCreate {
	if f != nil {
		fsc.SetStatus(*f)
	}
	return fsc
}

// Mutation returns the ForumSessionMutation object of the builder.
func (fsc *ForumSessionCreate) Mutation() *ForumSessionMutation {
	return fsc.mutation
}

// Save creates the ForumSession in the database.
func (fsc *ForumSessionCreate) Save(ctx context.Context) (*ForumSession, error) {
	fsc.defaults()
	return withHooks(ctx, fsc.sqlSave, fsc.mutation, fsc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (fsc *ForumSessionCreate) SaveX(ctx context.Context) *ForumSession {
	v, err := fsc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (fsc *ForumSessionCreate) Exec(ctx context.Context) error {
	_, err := fsc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (fsc *ForumSessionCreate) ExecX(ctx context.Context) {
	if err := fsc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (fsc *ForumSessionCreate) defaults() {
	if _, ok := fsc.mutation.CreateTime(); !ok {
		v := forumsession.DefaultCreateTime()
		fsc.mutation.SetCreateTime(v)
	}
	if _, ok := fsc.mutation.UpdateTime(); !ok {
		v := forumsession.DefaultUpdateTime()
		fsc.mutation.SetUpdateTime(v)
	}
	if _, ok := fsc.mutation.TopicCount(); !ok {
		v := forumsession.DefaultTopicCount
		fsc.mutation.SetTopicCount(v)
	}
	if _, ok := fsc.mutation.EventCount(); !ok {
		v := forumsession.DefaultEventCount
		fsc.mutation.SetEventCount(v)
	}
	if _, ok := fsc.mutation.Status(); !ok {
		v := forumsession.DefaultStatus
		fsc.mutation.SetStatus(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (fsc *ForumSessionCreate) check() error {
	if _, ok := fsc.mutation.CreateTime(); !ok {
		return &ValidationError{Name: "create_time", err: errors.New(`ent: missing required field "ForumSession.create_time"`)}
	}
	if _, ok := fsc.mutation.UpdateTime(); !ok {
		return &ValidationError{Name: "update_time", err: errors.New(`ent: missing required field "ForumSession.update_time"`)}
	}
	if _, ok := fsc.mutation.ChatID(); !ok {
		return &ValidationError{Name: "chat_id", err: errors.New(`ent: missing required field "ForumSession.chat_id"`)}
	}
	if _, ok := fsc.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "ForumSession.started_at"`)}
	}
	if _, ok := fsc.mutation.TopicCount(); !ok {
		return &ValidationError{Name: "topic_count", err: errors.New(`ent: missing required field "ForumSession.topic_count"`)}
	}
	if _, ok := fsc.mutation.EventCount(); !ok {
		return &ValidationError{Name: "event_count", err: errors.New(`ent: missing required field "ForumSession.event_count"`)}
	}
	if _, ok := fsc.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ForumSession.status"`)}
	}
	if v, ok := fsc.mutation.Status(); ok {
		if err := forumsession.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ForumSession.status": %w`, err)}
		}
	}
	return nil
}

func (fsc *ForumSessionCreate) sqlSave(ctx context.Context) (*ForumSession, error) {
	if err := fsc.check(); err != nil {
		return nil, err
	}
	_node, _spec := fsc.createSpec()
	if err := sqlgraph.CreateNode(ctx, fsc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	fsc.mutation.id = &_node.ID
	fsc.mutation.done = true
	return _node, nil
}

func (fsc *ForumSessionCreate) createSpec() (*ForumSession, *sqlgraph.CreateSpec) {
	var (
		_node = &ForumSession{config: fsc.config}
		_spec = sqlgraph.NewCreateSpec(forumsession.Table, sqlgraph.NewFieldSpec(forumsession.FieldID, field.TypeInt))
	)
	if value, ok := fsc.mutation.CreateTime(); ok {
		_spec.SetField(forumsession.FieldCreateTime, field.TypeTime, value)
		_node.CreateTime = value
	}
	if value, ok := fsc.mutation.UpdateTime(); ok {
		_spec.SetField(forumsession.FieldUpdateTime, field.TypeTime, value)
		_node.UpdateTime = value
	}
	if value, ok := fsc.mutation.ChatID(); ok {
		_spec.SetField(forumsession.FieldChatID, field.TypeInt64, value)
		_node.ChatID = value
	}
	if value, ok := fsc.mutation.StartedAt(); ok {
		_spec.SetField(forumsession.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := fsc.mutation.ClosedAt(); ok {
		_spec.SetField(forumsession.FieldClosedAt, field.TypeTime, value)
		_node.ClosedAt = value
	}
	if value, ok := fsc.mutation.TopicCount(); ok {
		_spec.SetField(forumsession.FieldTopicCount, field.TypeInt, value)
		_node.TopicCount = value
	}
	if value, ok := fsc.mutation.EventCount(); ok {
		_spec.SetField(forumsession.FieldEventCount, field.TypeInt, value)
		_node.EventCount = value
	}
	if value, ok := fsc.mutation.Status(); ok {
		_spec.SetField(forumsession.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	return _node, _spec
}

// ForumSessionCreateBulk is the builder for creating many ForumSession entities in bulk.
type ForumSessionCreateBulk struct {
	config
	err      error
	builders []*ForumSessionCreate
}

// Save creates the ForumSession entities in the database.
func (fscb *ForumSessionCreateBulk) Save(ctx context.Context) ([]*ForumSession, error) {
	if fscb.err != nil {
		return nil, fscb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(fscb.builders))
	nodes := make([]*ForumSession, len(fscb.builders))
	mutators := make([]Mutator, len(fscb.builders))
	for i := range fscb.builders {
		func(i int, root context.Context) {
			builder := fscb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ForumSessionMutation)
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
					_, err = mutators[i+1].Mutate(root, fscb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, fscb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, fscb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (fscb *ForumSessionCreateBulk) SaveX(ctx context.Context) []*ForumSession {
	v, err := fscb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (fscb *ForumSessionCreateBulk) Exec(ctx context.Context) error {
	_, err := fscb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (fscb *ForumSessionCreateBulk) ExecX(ctx context.Context) {
	if err := fscb.Exec(ctx); err != nil {
		panic(err)
	}
}
