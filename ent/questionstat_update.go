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
	"github.com/jfarleigh/certrun/ent/predicate"
	"github.com/jfarleigh/certrun/ent/questionstat"
)

// QuestionStatUpdate is the builder for updating QuestionStat entities.
type QuestionStatUpdate struct {
	config
	hooks    []Hook
	mutation *QuestionStatMutation
}

// Where appends a list predicates to the QuestionStatUpdate builder.
func (qsu *QuestionStatUpdate) Where(ps ...predicate.QuestionStat) *QuestionStatUpdate {
	qsu.mutation.Where(ps...)
	return qsu
}

// SetQuestionID sets the "question_id" field.
func (qsu *QuestionStatUpdate) SetQuestionID(s string) *QuestionStatUpdate {
	qsu.mutation.SetQuestionID(s)
	return qsu
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (qsu *QuestionStatUpdate) SetNillableQuestionID(s *string) *QuestionStatUpdate {
	if s != nil {
		qsu.SetQuestionID(*s)
	}
	return qsu
}

// SetAttemptCount sets the "attempt_count" field.
func (qsu *QuestionStatUpdate) SetAttemptCount(i int) *QuestionStatUpdate {
	qsu.mutation.ResetAttemptCount()
	qsu.mutation.SetAttemptCount(i)
	return qsu
}

// SetNillableAttemptCount sets the "attempt_count" field if the given value is not nil.
func (qsu *QuestionStatUpdate) SetNillableAttemptCount(i *int) *QuestionStatUpdate {
	if i != nil {
		qsu.SetAttemptCount(*i)
	}
	return qsu
}

// AddAttemptCount adds i to the "attempt_count" field.
func (qsu *QuestionStatUpdate) AddAttemptCount(i int) *QuestionStatUpdate {
	qsu.mutation.AddAttemptCount(i)
	return qsu
}

// SetCorrectCount sets the "correct_count" field.
func (qsu *QuestionStatUpdate) SetCorrectCount(i int) *QuestionStatUpdate {
	qsu.mutation.ResetCorrectCount()
	qsu.mutation.SetCorrectCount(i)
	return qsu
}

// SetNillableCorrectCount sets the "correct_count" field if the given value is not nil.
func (qsu *QuestionStatUpdate) SetNillableCorrectCount(i *int) *QuestionStatUpdate {
	if i != nil {
		qsu.SetCorrectCount(*i)
	}
	return qsu
}

// AddCorrectCount adds i to the "correct_count" field.
func (qsu *QuestionStatUpdate) AddCorrectCount(i int) *QuestionStatUpdate {
	qsu.mutation.AddCorrectCount(i)
	return qsu
}

// SetTotalElapsedSeconds sets the "total_elapsed_seconds" field.
func (qsu *QuestionStatUpdate) SetTotalElapsedSeconds(f float64) *QuestionStatUpdate {
	qsu.mutation.ResetTotalElapsedSeconds()
	qsu.mutation.SetTotalElapsedSeconds(f)
	return qsu
}

// SetNillableTotalElapsedSeconds sets the "total_elapsed_seconds" field if the given value is not nil.
func (qsu *QuestionStatUpdate) SetNillableTotalElapsedSeconds(f *float64) *QuestionStatUpdate {
	if f != nil {
		qsu.SetTotalElapsedSeconds(*f)
	}
	return qsu
}

// AddTotalElapsedSeconds adds f to the "total_elapsed_seconds" field.
func (qsu *QuestionStatUpdate) AddTotalElapsedSeconds(f float64) *QuestionStatUpdate {
	qsu.mutation.AddTotalElapsedSeconds(f)
	return qsu
}

// SetLastAttemptedAt sets the "last_attempted_at" field.
func (qsu *QuestionStatUpdate) SetLastAttemptedAt(t time.Time) *QuestionStatUpdate {
	qsu.mutation.SetLastAttemptedAt(t)
	return qsu
}

// SetNillableLastAttemptedAt sets the "last_attempted_at" field if the given value is not nil.
func (qsu *QuestionStatUpdate) SetNillableLastAttemptedAt(t *time.Time) *QuestionStatUpdate {
	if t != nil {
		qsu.SetLastAttemptedAt(*t)
	}
	return qsu
}

// ClearLastAttemptedAt clears the value of the "last_attempted_at" field.
func (qsu *QuestionStatUpdate) ClearLastAttemptedAt() *QuestionStatUpdate {
	qsu.mutation.ClearLastAttemptedAt()
	return qsu
}

// Mutation returns the QuestionStatMutation object of the builder.
func (qsu *QuestionStatUpdate) Mutation() *QuestionStatMutation {
	return qsu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (qsu *QuestionStatUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, qsu.sqlSave, qsu.mutation, qsu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (qsu *QuestionStatUpdate) SaveX(ctx context.Context) int {
	affected, err := qsu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (qsu *QuestionStatUpdate) Exec(ctx context.Context) error {
	_, err := qsu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (qsu *QuestionStatUpdate) ExecX(ctx context.Context) {
	if err := qsu.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (qsu *QuestionStatUpdate) check() error {
	if v, ok := qsu.mutation.QuestionID(); ok {
		if err := questionstat.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "QuestionStat.question_id": %w`, err)}
		}
	}
	if v, ok := qsu.mutation.AttemptCount(); ok {
		if err := questionstat.AttemptCountValidator(v); err != nil {
			return &ValidationError{Name: "attempt_count", err: fmt.Errorf(`ent: validator failed for field "QuestionStat.attempt_count": %w`, err)}
		}
	}
	if v, ok := qsu.mutation.CorrectCount(); ok {
		if err := questionstat.CorrectCountValidator(v); err != nil {
			return &ValidationError{Name: "correct_count", err: fmt.Errorf(`ent: validator failed for field "QuestionStat.correct_count": %w`, err)}
		}
	}
	return nil
}

func (qsu *QuestionStatUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := qsu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(questionstat.Table, questionstat.Columns, sqlgraph.NewFieldSpec(questionstat.FieldID, field.TypeString))
	if ps := qsu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := qsu.mutation.QuestionID(); ok {
		_spec.SetField(questionstat.FieldQuestionID, field.TypeString, value)
	}
	if value, ok := qsu.mutation.AttemptCount(); ok {
		_spec.SetField(questionstat.FieldAttemptCount, field.TypeInt, value)
	}
	if value, ok := qsu.mutation.AddedAttemptCount(); ok {
		_spec.AddField(questionstat.FieldAttemptCount, field.TypeInt, value)
	}
	if value, ok := qsu.mutation.CorrectCount(); ok {
		_spec.SetField(questionstat.FieldCorrectCount, field.TypeInt, value)
	}
	if value, ok := qsu.mutation.AddedCorrectCount(); ok {
		_spec.AddField(questionstat.FieldCorrectCount, field.TypeInt, value)
	}
	if value, ok := qsu.mutation.TotalElapsedSeconds(); ok {
		_spec.SetField(questionstat.FieldTotalElapsedSeconds, field.TypeFloat64, value)
	}
	if value, ok := qsu.mutation.AddedTotalElapsedSeconds(); ok {
		_spec.AddField(questionstat.FieldTotalElapsedSeconds, field.TypeFloat64, value)
	}
	if value, ok := qsu.mutation.LastAttemptedAt(); ok {
		_spec.SetField(questionstat.FieldLastAttemptedAt, field.TypeTime, value)
	}
	if qsu.mutation.LastAttemptedAtCleared() {
		_spec.ClearField(questionstat.FieldLastAttemptedAt, field.TypeTime)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, qsu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{questionstat.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	qsu.mutation.done = true
	return n, nil
}

// QuestionStatUpdateOne is the builder for updating a single QuestionStat entity.
type QuestionStatUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *QuestionStatMutation
}

// SetQuestionID sets the "question_id" field.
func (qsuo *QuestionStatUpdateOne) SetQuestionID(s string) *QuestionStatUpdateOne {
	qsuo.mutation.SetQuestionID(s)
	return qsuo
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (qsuo *QuestionStatUpdateOne) SetNillableQuestionID(s *string) *QuestionStatUpdateOne {
	if s != nil {
		qsuo.SetQuestionID(*s)
	}
	return qsuo
}

// SetAttemptCount sets the "attempt_count" field.
func (qsuo *QuestionStatUpdateOne) SetAttemptCount(i int) *QuestionStatUpdateOne {
	qsuo.mutation.ResetAttemptCount()
	qsuo.mutation.SetAttemptCount(i)
	return qsuo
}

// SetNillableAttemptCount sets the "attempt_count" field if the given value is not nil.
func (qsuo *QuestionStatUpdateOne) SetNillableAttemptCount(i *int) *QuestionStatUpdateOne {
	if i != nil {
		qsuo.SetAttemptCount(*i)
	}
	return qsuo
}

// AddAttemptCount adds i to the "attempt_count" field.
func (qsuo *QuestionStatUpdateOne) AddAttemptCount(i int) *QuestionStatUpdateOne {
	qsuo.mutation.AddAttemptCount(i)
	return qsuo
}

// SetCorrectCount sets the "correct_count" field.
func (qsuo *QuestionStatUpdateOne) SetCorrectCount(i int) *QuestionStatUpdateOne {
	qsuo.mutation.ResetCorrectCount()
	qsuo.mutation.SetCorrectCount(i)
	return qsuo
}

// SetNillableCorrectCount sets the "correct_count" field if the given value is not nil.
func (qsuo *QuestionStatUpdateOne) SetNillableCorrectCount(i *int) *QuestionStatUpdateOne {
	if i != nil {
		qsuo.SetCorrectCount(*i)
	}
	return qsuo
}

// AddCorrectCount adds i to the "correct_count" field.
func (qsuo *QuestionStatUpdateOne) AddCorrectCount(i int) *QuestionStatUpdateOne {
	qsuo.mutation.AddCorrectCount(i)
	return qsuo
}

// SetTotalElapsedSeconds sets the "total_elapsed_seconds" field.
func (qsuo *QuestionStatUpdateOne) SetTotalElapsedSeconds(f float64) *QuestionStatUpdateOne {
	qsuo.mutation.ResetTotalElapsedSeconds()
	qsuo.mutation.SetTotalElapsedSeconds(f)
	return qsuo
}

// SetNillableTotalElapsedSeconds sets the "total_elapsed_seconds" field if the given value is not nil.
func (qsuo *QuestionStatUpdateOne) SetNillableTotalElapsedSeconds(f *float64) *QuestionStatUpdateOne {
	if f != nil {
		qsuo.SetTotalElapsedSeconds(*f)
	}
	return qsuo
}

// AddTotalElapsedSeconds adds f to the "total_elapsed_seconds" field.
func (qsuo *QuestionStatUpdateOne) AddTotalElapsedSeconds(f float64) *QuestionStatUpdateOne {
	qsuo.mutation.AddTotalElapsedSeconds(f)
	return qsuo
}

// SetLastAttemptedAt sets the "last_attempted_at" field.
func (qsuo *QuestionStatUpdateOne) SetLastAttemptedAt(t time.Time) *QuestionStatUpdateOne {
	qsuo.mutation.SetLastAttemptedAt(t)
	return qsuo
}

// SetNillableLastAttemptedAt sets the "last_attempted_at" field if the given value is not nil.
func (qsuo *QuestionStatUpdateOne) SetNillableLastAttemptedAt(t *time.Time) *QuestionStatUpdateOne {
	if t != nil {
		qsuo.SetLastAttemptedAt(*t)
	}
	return qsuo
}

// ClearLastAttemptedAt clears the value of the "last_attempted_at" field.
func (qsuo *QuestionStatUpdateOne) ClearLastAttemptedAt() *QuestionStatUpdateOne {
	qsuo.mutation.ClearLastAttemptedAt()
	return qsuo
}

// Mutation returns the QuestionStatMutation object of the builder.
func (qsuo *QuestionStatUpdateOne) Mutation() *QuestionStatMutation {
	return qsuo.mutation
}

// Where appends a list predicates to the QuestionStatUpdate builder.
func (qsuo *QuestionStatUpdateOne) Where(ps ...predicate.QuestionStat) *QuestionStatUpdateOne {
	qsuo.mutation.Where(ps...)
	return qsuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (qsuo *QuestionStatUpdateOne) Select(field string, fields ...string) *QuestionStatUpdateOne {
	qsuo.fields = append([]string{field}, fields...)
	return qsuo
}

// Save executes the query and returns the updated QuestionStat entity.
func (qsuo *QuestionStatUpdateOne) Save(ctx context.Context) (*QuestionStat, error) {
	return withHooks(ctx, qsuo.sqlSave, qsuo.mutation, qsuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (qsuo *QuestionStatUpdateOne) SaveX(ctx context.Context) *QuestionStat {
	node, err := qsuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (qsuo *QuestionStatUpdateOne) Exec(ctx context.Context) error {
	_, err := qsuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (qsuo *QuestionStatUpdateOne) ExecX(ctx context.Context) {
	if err := qsuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (qsuo *QuestionStatUpdateOne) check() error {
	if v, ok := qsuo.mutation.QuestionID(); ok {
		if err := questionstat.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "QuestionStat.question_id": %w`, err)}
		}
	}
	if v, ok := qsuo.mutation.AttemptCount(); ok {
		if err := questionstat.AttemptCountValidator(v); err != nil {
			return &ValidationError{Name: "attempt_count", err: fmt.Errorf(`ent: validator failed for field "QuestionStat.attempt_count": %w`, err)}
		}
	}
	if v, ok := qsuo.mutation.CorrectCount(); ok {
		if err := questionstat.CorrectCountValidator(v); err != nil {
			return &ValidationError{Name: "correct_count", err: fmt.Errorf(`ent: validator failed for field "QuestionStat.correct_count": %w`, err)}
		}
	}
	return nil
}

func (qsuo *QuestionStatUpdateOne) sqlSave(ctx context.Context) (_node *QuestionStat, err error) {
	if err := qsuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(questionstat.Table, questionstat.Columns, sqlgraph.NewFieldSpec(questionstat.FieldID, field.TypeString))
	id, ok := qsuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "QuestionStat.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := qsuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, questionstat.FieldID)
		for _, f := range fields {
			if !questionstat.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != questionstat.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := qsuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := qsuo.mutation.QuestionID(); ok {
		_spec.SetField(questionstat.FieldQuestionID, field.TypeString, value)
	}
	if value, ok := qsuo.mutation.AttemptCount(); ok {
		_spec.SetField(questionstat.FieldAttemptCount, field.TypeInt, value)
	}
	if value, ok := qsuo.mutation.AddedAttemptCount(); ok {
		_spec.AddField(questionstat.FieldAttemptCount, field.TypeInt, value)
	}
	if value, ok := qsuo.mutation.CorrectCount(); ok {
		_spec.SetField(questionstat.FieldCorrectCount, field.TypeInt, value)
	}
	if value, ok := qsuo.mutation.AddedCorrectCount(); ok {
		_spec.AddField(questionstat.FieldCorrectCount, field.TypeInt, value)
	}
	if value, ok := qsuo.mutation.TotalElapsedSeconds(); ok {
		_spec.SetField(questionstat.FieldTotalElapsedSeconds, field.TypeFloat64, value)
	}
	if value, ok := qsuo.mutation.AddedTotalElapsedSeconds(); ok {
		_spec.AddField(questionstat.FieldTotalElapsedSeconds, field.TypeFloat64, value)
	}
	if value, ok := qsuo.mutation.LastAttemptedAt(); ok {
		_spec.SetField(questionstat.FieldLastAttemptedAt, field.TypeTime, value)
	}
	if qsuo.mutation.LastAttemptedAtCleared() {
		_spec.ClearField(questionstat.FieldLastAttemptedAt, field.TypeTime)
	}
	_node = &QuestionStat{config: qsuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, qsuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{questionstat.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	qsuo.mutation.done = true
	return _node, nil
}
