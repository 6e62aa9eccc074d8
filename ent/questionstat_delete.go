// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/jfarleigh/certrun/ent/predicate"
	"github.com/jfarleigh/certrun/ent/questionstat"
)

// QuestionStatDelete is the builder for deleting a QuestionStat entity.
type QuestionStatDelete struct {
	config
	hooks    []Hook
	mutation *QuestionStatMutation
}

// Where appends a list predicates to the QuestionStatDelete builder.
func (qsd *QuestionStatDelete) Where(ps ...predicate.QuestionStat) *QuestionStatDelete {
	qsd.mutation.Where(ps...)
	return qsd
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (qsd *QuestionStatDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, qsd.sqlExec, qsd.mutation, qsd.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (qsd *QuestionStatDelete) ExecX(ctx context.Context) int {
	n, err := qsd.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (qsd *QuestionStatDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(questionstat.Table, sqlgraph.NewFieldSpec(questionstat.FieldID, field.TypeString))
	if ps := qsd.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, qsd.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	qsd.mutation.done = true
	return affected, err
}

// QuestionStatDeleteOne is the builder for deleting a single QuestionStat entity.
type QuestionStatDeleteOne struct {
	qsd *QuestionStatDelete
}

// Where appends a list predicates to the QuestionStatDelete builder.
func (qsdo *QuestionStatDeleteOne) Where(ps ...predicate.QuestionStat) *QuestionStatDeleteOne {
	qsdo.qsd.mutation.Where(ps...)
	return qsdo
}

// Exec executes the deletion query.
func (qsdo *QuestionStatDeleteOne) Exec(ctx context.Context) error {
	n, err := qsdo.qsd.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{questionstat.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (qsdo *QuestionStatDeleteOne) ExecX(ctx context.Context) {
	if err := qsdo.Exec(ctx); err != nil {
		panic(err)
	}
}
