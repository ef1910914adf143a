// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/fachebot/forum-meet-bot/internal/ent/forumsession"
	"github.com/fachebot/forum-meet-bot/internal/ent/predicate"
)

// ForumSessionDelete is the builder for deleting a ForumSession entity.
type ForumSessionDelete struct {
	config
	hooks    []Hook
	mutation *ForumSessionMutation
}

// Where appends a list predicates to the ForumSessionDelete builder.
func (fsd *ForumSessionDelete) Where(ps ...predicate.ForumSession) *ForumSessionDelete {
	fsd.mutation.Where(ps...)
	return fsd
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (fsd *ForumSessionDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, fsd.sqlExec, fsd.mutation, fsd.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (fsd *ForumSessionDelete) ExecX(ctx context.Context) int {
	n, err := fsd.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (fsd *ForumSessionDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(forumsession.Table, sqlgraph.NewFieldSpec(forumsession.FieldID, field.TypeInt))
	if ps := fsd.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, fsd.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	fsd.mutation.done = true
	return affected, err
}

// ForumSessionDeleteOne is the builder for deleting a single ForumSession entity.
type ForumSessionDeleteOne struct {
	fsd *ForumSessionDelete
}

// Where appends a list predicates to the ForumSessionDelete builder.
func (fsdo *ForumSessionDeleteOne) Where(ps ...predicate.ForumSession) *ForumSessionDeleteOne {
	fsdo.fsd.mutation.Where(ps...)
	return fsdo
}

// Exec executes the deletion query.
func (fsdo *ForumSessionDeleteOne) Exec(ctx context.Context) error {
	n, err := fsdo.fsd.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{forumsession.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (fsdo *ForumSessionDeleteOne) ExecX(ctx context.Context) {
	if err := fsdo.Exec(ctx); err != nil {
		panic(err)
	}
}
