// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/fachebot/forum-meet-bot/internal/ent/meetingevent"
	"github.com/fachebot/forum-meet-bot/internal/ent/predicate"
)

// MeetingEventDelete is the builder for deleting a MeetingEvent entity.
type MeetingEventDelete struct {
	config
	hooks    []Hook
	mutation *MeetingEventMutation
}

// Where appends a list predicates to the MeetingEventDelete builder.
func (med *MeetingEventDelete) Where(ps ...predicate.MeetingEvent) *MeetingEventDelete {
	med.mutation.Where(ps...)
	return med
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (med *MeetingEventDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, med.sqlExec, med.mutation, med.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (med *MeetingEventDelete) ExecX(ctx context.Context) int {
	n, err := med.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (med *MeetingEventDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(meetingevent.Table, sqlgraph.NewFieldSpec(meetingevent.FieldID, field.TypeInt))
	if ps := med.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, med.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	med.mutation.done = true
	return affected, err
}

// MeetingEventDeleteOne is the builder for deleting a single MeetingEvent entity.
type MeetingEventDeleteOne struct {
	med *MeetingEventDelete
}

// Where appends a list predicates to the MeetingEventDelete builder.
func (medo *MeetingEventDeleteOne) Where(ps ...predicate.MeetingEvent) *MeetingEventDeleteOne {
	medo.med.mutation.Where(ps...)
	return medo
}

// Exec executes the deletion query.
func (medo *MeetingEventDeleteOne) Exec(ctx context.Context) error {
	n, err := medo.med.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{meetingevent.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (medo *MeetingEventDeleteOne) ExecX(ctx context.Context) {
	if err := medo.Exec(ctx); err != nil {
		panic(err)
	}
}
