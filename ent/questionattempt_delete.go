// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/jfarleigh/certrun/ent/predicate"
	"github.com/jfarleigh/certrun/ent/questionattempt"
)

// QuestionAttemptDelete is the builder for deleting a QuestionAttempt entity.
type QuestionAttemptDelete struct {
	config
	hooks    []Hook
	mutation *QuestionAttemptMutation
}

// Where appends a list predicates to the QuestionAttemptDelete builder.
func (qad *QuestionAttemptDelete) Where(ps ...predicate.QuestionAttempt) *QuestionAttemptDelete {
	qad.mutation.Where(ps...)
	return qad
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (qad *QuestionAttemptDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, qad.sqlExec, qad.mutation, qad.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (qad *QuestionAttemptDelete) ExecX(ctx context.Context) int {
	n, err := qad.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (qad *QuestionAttemptDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(questionattempt.Table, sqlgraph.NewFieldSpec(questionattempt.FieldID, field.TypeString))
	if ps := qad.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, qad.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	qad.mutation.done = true
	return affected, err
}

// QuestionAttemptDeleteOne is the builder for deleting a single QuestionAttempt entity.
type QuestionAttemptDeleteOne struct {
	qad *QuestionAttemptDelete
}

// Where appends a list predicates to the QuestionAttemptDelete builder.
func (qado *QuestionAttemptDeleteOne) Where(ps ...predicate.QuestionAttempt) *QuestionAttemptDeleteOne {
	qado.qad.mutation.Where(ps...)
	return qado
}

// Exec executes the deletion query.
func (qado *QuestionAttemptDeleteOne) Exec(ctx context.Context) error {
	n, err := qado.qad.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{questionattempt.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (qado *QuestionAttemptDeleteOne) ExecX(ctx context.Context) {
	if err := qado.Exec(ctx); err != nil {
		panic(err)
	}
}
