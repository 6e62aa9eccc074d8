// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/jfarleigh/certrun/ent/predicate"
	"github.com/jfarleigh/certrun/ent/questionattempt"
)

// QuestionAttemptUpdate is the builder for updating QuestionAttempt entities.
type QuestionAttemptUpdate struct {
	config
	hooks    []Hook
	mutation *QuestionAttemptMutation
}

// Where appends a list predicates to the QuestionAttemptUpdate builder.
func (qau *QuestionAttemptUpdate) Where(ps ...predicate.QuestionAttempt) *QuestionAttemptUpdate {
	qau.mutation.Where(ps...)
	return qau
}

// SetSessionID sets the "session_id" field.
func (qau *QuestionAttemptUpdate) SetSessionID(s string) *QuestionAttemptUpdate {
	qau.mutation.SetSessionID(s)
	return qau
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (qau *QuestionAttemptUpdate) SetNillableSessionID(s *string) *QuestionAttemptUpdate {
	if s != nil {
		qau.SetSessionID(*s)
	}
	return qau
}

// SetQuestionID sets the "question_id" field.
func (qau *QuestionAttemptUpdate) SetQuestionID(s string) *QuestionAttemptUpdate {
	qau.mutation.SetQuestionID(s)
	return qau
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (qau *QuestionAttemptUpdate) SetNillableQuestionID(s *string) *QuestionAttemptUpdate {
	if s != nil {
		qau.SetQuestionID(*s)
	}
	return qau
}

// SetIsCorrect sets the "is_correct" field.
func (qau *QuestionAttemptUpdate) SetIsCorrect(b bool) *QuestionAttemptUpdate {
	qau.mutation.SetIsCorrect(b)
	return qau
}

// SetNillableIsCorrect sets the "is_correct" field if the given value is not nil.
func (qau *QuestionAttemptUpdate) SetNillableIsCorrect(b *bool) *QuestionAttemptUpdate {
	if b != nil {
		qau.SetIsCorrect(*b)
	}
	return qau
}

// SetElapsedSeconds sets the "elapsed_seconds" field.
func (qau *QuestionAttemptUpdate) SetElapsedSeconds(f float64) *QuestionAttemptUpdate {
	qau.mutation.ResetElapsedSeconds()
	qau.mutation.SetElapsedSeconds(f)
	return qau
}

// SetNillableElapsedSeconds sets the "elapsed_seconds" field if the given value is not nil.
func (qau *QuestionAttemptUpdate) SetNillableElapsedSeconds(f *float64) *QuestionAttemptUpdate {
	if f != nil {
		qau.SetElapsedSeconds(*f)
	}
	return qau
}

// AddElapsedSeconds adds f to the "elapsed_seconds" field.
func (qau *QuestionAttemptUpdate) AddElapsedSeconds(f float64) *QuestionAttemptUpdate {
	qau.mutation.AddElapsedSeconds(f)
	return qau
}

// SetSubmittedOptions sets the "submitted_options" field.
func (qau *QuestionAttemptUpdate) SetSubmittedOptions(s []string) *QuestionAttemptUpdate {
	qau.mutation.SetSubmittedOptions(s)
	return qau
}

// AppendSubmittedOptions appends s to the "submitted_options" field.
func (qau *QuestionAttemptUpdate) AppendSubmittedOptions(s []string) *QuestionAttemptUpdate {
	qau.mutation.AppendSubmittedOptions(s)
	return qau
}

// ClearSubmittedOptions clears the value of the "submitted_options" field.
func (qau *QuestionAttemptUpdate) ClearSubmittedOptions() *QuestionAttemptUpdate {
	qau.mutation.ClearSubmittedOptions()
	return qau
}

// Mutation returns the QuestionAttemptMutation object of the builder.
func (qau *QuestionAttemptUpdate) Mutation() *QuestionAttemptMutation {
	return qau.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (qau *QuestionAttemptUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, qau.sqlSave, qau.mutation, qau.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (qau *QuestionAttemptUpdate) SaveX(ctx context.Context) int {
	affected, err := qau.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (qau *QuestionAttemptUpdate) Exec(ctx context.Context) error {
	_, err := qau.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (qau *QuestionAttemptUpdate) ExecX(ctx context.Context) {
	if err := qau.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (qau *QuestionAttemptUpdate) check() error {
	if v, ok := qau.mutation.SessionID(); ok {
		if err := questionattempt.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "QuestionAttempt.session_id": %w`, err)}
		}
	}
	if v, ok := qau.mutation.QuestionID(); ok {
		if err := questionattempt.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "QuestionAttempt.question_id": %w`, err)}
		}
	}
	if v, ok := qau.mutation.ElapsedSeconds(); ok {
		if err := questionattempt.ElapsedSecondsValidator(v); err != nil {
			return &ValidationError{Name: "elapsed_seconds", err: fmt.Errorf(`ent: validator failed for field "QuestionAttempt.elapsed_seconds": %w`, err)}
		}
	}
	return nil
}

func (qau *QuestionAttemptUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := qau.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(questionattempt.Table, questionattempt.Columns, sqlgraph.NewFieldSpec(questionattempt.FieldID, field.TypeString))
	if ps := qau.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := qau.mutation.SessionID(); ok {
		_spec.SetField(questionattempt.FieldSessionID, field.TypeString, value)
	}
	if value, ok := qau.mutation.QuestionID(); ok {
		_spec.SetField(questionattempt.FieldQuestionID, field.TypeString, value)
	}
	if value, ok := qau.mutation.IsCorrect(); ok {
		_spec.SetField(questionattempt.FieldIsCorrect, field.TypeBool, value)
	}
	if value, ok := qau.mutation.ElapsedSeconds(); ok {
		_spec.SetField(questionattempt.FieldElapsedSeconds, field.TypeFloat64, value)
	}
	if value, ok := qau.mutation.AddedElapsedSeconds(); ok {
		_spec.AddField(questionattempt.FieldElapsedSeconds, field.TypeFloat64, value)
	}
	if value, ok := qau.mutation.SubmittedOptions(); ok {
		_spec.SetField(questionattempt.FieldSubmittedOptions, field.TypeJSON, value)
	}
	if value, ok := qau.mutation.AppendedSubmittedOptions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, questionattempt.FieldSubmittedOptions, value)
		})
	}
	if qau.mutation.SubmittedOptionsCleared() {
		_spec.ClearField(questionattempt.FieldSubmittedOptions, field.TypeJSON)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, qau.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{questionattempt.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	qau.mutation.done = true
	return n, nil
}

// QuestionAttemptUpdateOne is the builder for updating a single QuestionAttempt entity.
type QuestionAttemptUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *QuestionAttemptMutation
}

// SetSessionID sets the "session_id" field.
func (qauo *QuestionAttemptUpdateOne) SetSessionID(s string) *QuestionAttemptUpdateOne {
	qauo.mutation.SetSessionID(s)
	return qauo
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (qauo *QuestionAttemptUpdateOne) SetNillableSessionID(s *string) *QuestionAttemptUpdateOne {
	if s != nil {
		qauo.SetSessionID(*s)
	}
	return qauo
}

// SetQuestionID sets the "question_id" field.
func (qauo *QuestionAttemptUpdateOne) SetQuestionID(s string) *QuestionAttemptUpdateOne {
	qauo.mutation.SetQuestionID(s)
	return qauo
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (qauo *QuestionAttemptUpdateOne) SetNillableQuestionID(s *string) *QuestionAttemptUpdateOne {
	if s != nil {
		qauo.SetQuestionID(*s)
	}
	return qauo
}

// SetIsCorrect sets the "is_correct" field.
func (qauo *QuestionAttemptUpdateOne) SetIsCorrect(b bool) *QuestionAttemptUpdateOne {
	qauo.mutation.SetIsCorrect(b)
	return qauo
}

// SetNillableIsCorrect sets the "is_correct" field if the given value is not nil.
func (qauo *QuestionAttemptUpdateOne) SetNillableIsCorrect(b *bool) *QuestionAttemptUpdateOne {
	if b != nil {
		qauo.SetIsCorrect(*b)
	}
	return qauo
}

// SetElapsedSeconds sets the "elapsed_seconds" field.
func (qauo *QuestionAttemptUpdateOne) SetElapsedSeconds(f float64) *QuestionAttemptUpdateOne {
	qauo.mutation.ResetElapsedSeconds()
	qauo.mutation.SetElapsedSeconds(f)
	return qauo
}

// SetNillableElapsedSeconds sets the "elapsed_seconds" field if the given value is not nil.
func (qauo *QuestionAttemptUpdateOne) SetNillableElapsedSeconds(f *float64) *QuestionAttemptUpdateOne {
	if f != nil {
		qauo.SetElapsedSeconds(*f)
	}
	return qauo
}

// AddElapsedSeconds adds f to the "elapsed_seconds" field.
func (qauo *QuestionAttemptUpdateOne) AddElapsedSeconds(f float64) *QuestionAttemptUpdateOne {
	qauo.mutation.AddElapsedSeconds(f)
	return qauo
}

// SetSubmittedOptions sets the "submitted_options" field.
func (qauo *QuestionAttemptUpdateOne) SetSubmittedOptions(s []string) *QuestionAttemptUpdateOne {
	qauo.mutation.SetSubmittedOptions(s)
	return qauo
}

// AppendSubmittedOptions appends s to the "submitted_options" field.
func (qauo *QuestionAttemptUpdateOne) AppendSubmittedOptions(s []string) *QuestionAttemptUpdateOne {
	qauo.mutation.AppendSubmittedOptions(s)
	return qauo
}

// ClearSubmittedOptions clears the value of the "submitted_options" field.
func (qauo *QuestionAttemptUpdateOne) ClearSubmittedOptions() *QuestionAttemptUpdateOne {
	qauo.mutation.ClearSubmittedOptions()
	return qauo
}

// Mutation returns the QuestionAttemptMutation object of the builder.
func (qauo *QuestionAttemptUpdateOne) Mutation() *QuestionAttemptMutation {
	return qauo.mutation
}

// Where appends a list predicates to the QuestionAttemptUpdate builder.
func (qauo *QuestionAttemptUpdateOne) Where(ps ...predicate.QuestionAttempt) *QuestionAttemptUpdateOne {
	qauo.mutation.Where(ps...)
	return qauo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (qauo *QuestionAttemptUpdateOne) Select(field string, fields ...string) *QuestionAttemptUpdateOne {
	qauo.fields = append([]string{field}, fields...)
	return qauo
}

// Save executes the query and returns the updated QuestionAttempt entity.
func (qauo *QuestionAttemptUpdateOne) Save(ctx context.Context) (*QuestionAttempt, error) {
	return withHooks(ctx, qauo.sqlSave, qauo.mutation, qauo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (qauo *QuestionAttemptUpdateOne) SaveX(ctx context.Context) *QuestionAttempt {
	node, err := qauo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (qauo *QuestionAttemptUpdateOne) Exec(ctx context.Context) error {
	_, err := qauo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (qauo *QuestionAttemptUpdateOne) ExecX(ctx context.Context) {
	if err := qauo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (qauo *QuestionAttemptUpdateOne) check() error {
	if v, ok := qauo.mutation.SessionID(); ok {
		if err := questionattempt.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "QuestionAttempt.session_id": %w`, err)}
		}
	}
	if v, ok := qauo.mutation.QuestionID(); ok {
		if err := questionattempt.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "QuestionAttempt.question_id": %w`, err)}
		}
	}
	if v, ok := qauo.mutation.ElapsedSeconds(); ok {
		if err := questionattempt.ElapsedSecondsValidator(v); err != nil {
			return &ValidationError{Name: "elapsed_seconds", err: fmt.Errorf(`ent: validator failed for field "QuestionAttempt.elapsed_seconds": %w`, err)}
		}
	}
	return nil
}

func (qauo *QuestionAttemptUpdateOne) sqlSave(ctx context.Context) (_node *QuestionAttempt, err error) {
	if err := qauo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(questionattempt.Table, questionattempt.Columns, sqlgraph.NewFieldSpec(questionattempt.FieldID, field.TypeString))
	id, ok := qauo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "QuestionAttempt.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := qauo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, questionattempt.FieldID)
		for _, f := range fields {
			if !questionattempt.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != questionattempt.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := qauo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := qauo.mutation.SessionID(); ok {
		_spec.SetField(questionattempt.FieldSessionID, field.TypeString, value)
	}
	if value, ok := qauo.mutation.QuestionID(); ok {
		_spec.SetField(questionattempt.FieldQuestionID, field.TypeString, value)
	}
	if value, ok := qauo.mutation.IsCorrect(); ok {
		_spec.SetField(questionattempt.FieldIsCorrect, field.TypeBool, value)
	}
	if value, ok := qauo.mutation.ElapsedSeconds(); ok {
		_spec.SetField(questionattempt.FieldElapsedSeconds, field.TypeFloat64, value)
	}
	if value, ok := qauo.mutation.AddedElapsedSeconds(); ok {
		_spec.AddField(questionattempt.FieldElapsedSeconds, field.TypeFloat64, value)
	}
	if value, ok := qauo.mutation.SubmittedOptions(); ok {
		_spec.SetField(questionattempt.FieldSubmittedOptions, field.TypeJSON, value)
	}
	if value, ok := qauo.mutation.AppendedSubmittedOptions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, questionattempt.FieldSubmittedOptions, value)
		})
	}
	if qauo.mutation.SubmittedOptionsCleared() {
		_spec.ClearField(questionattempt.FieldSubmittedOptions, field.TypeJSON)
	}
	_node = &QuestionAttempt{config: qauo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, qauo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{questionattempt.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	qauo.mutation.done = true
	return _node, nil
}
