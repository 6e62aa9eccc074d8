// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/jfarleigh/certrun/ent/answeroption"
	"github.com/jfarleigh/certrun/ent/predicate"
)

// AnswerOptionDelete is the builder for deleting a AnswerOption entity.
type AnswerOptionDelete struct {
	config
	hooks    []Hook
	mutation *AnswerOptionMutation
}

// Where appends a list predicates to the AnswerOptionDelete builder.
func (aod *AnswerOptionDelete) Where(ps ...predicate.AnswerOption) *AnswerOptionDelete {
	aod.mutation.Where(ps...)
	return aod
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (aod *AnswerOptionDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, aod.sqlExec, aod.mutation, aod.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (aod *AnswerOptionDelete) ExecX(ctx context.Context) int {
	n, err := aod.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (aod *AnswerOptionDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(answeroption.Table, sqlgraph.NewFieldSpec(answeroption.FieldID, field.TypeString))
	if ps := aod.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, aod.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	aod.mutation.done = true
	return affected, err
}

// AnswerOptionDeleteOne is the builder for deleting a single AnswerOption entity.
type AnswerOptionDeleteOne struct {
	aod *AnswerOptionDelete
}

// Where appends a list predicates to the AnswerOptionDelete builder.
func (aodo *AnswerOptionDeleteOne) Where(ps ...predicate.AnswerOption) *AnswerOptionDeleteOne {
	aodo.aod.mutation.Where(ps...)
	return aodo
}

// Exec executes the deletion query.
func (aodo *AnswerOptionDeleteOne) Exec(ctx context.Context) error {
	n, err := aodo.aod.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{answeroption.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (aodo *AnswerOptionDeleteOne) ExecX(ctx context.Context) {
	if err := aodo.Exec(ctx); err != nil {
		panic(err)
	}
}
