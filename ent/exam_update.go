// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/jfarleigh/certrun/ent/exam"
	"github.com/jfarleigh/certrun/ent/predicate"
)

// ExamUpdate is the builder for updating Exam entities.
type ExamUpdate struct {
	config
	hooks    []Hook
	mutation *ExamMutation
}

// Where appends a list predicates to the ExamUpdate builder.
func (eu *ExamUpdate) Where(ps ...predicate.Exam) *ExamUpdate {
	eu.mutation.Where(ps...)
	return eu
}

// SetName sets the "name" field.
func (eu *ExamUpdate) SetName(s string) *ExamUpdate {
	eu.mutation.SetName(s)
	return eu
}

// SetNillableName sets the "name" field if the given value is not nil.
func (eu *ExamUpdate) SetNillableName(s *string) *ExamUpdate {
	if s != nil {
		eu.SetName(*s)
	}
	return eu
}

// SetVendor sets the "vendor" field.
func (eu *ExamUpdate) SetVendor(s string) *ExamUpdate {
	eu.mutation.SetVendor(s)
	return eu
}

// SetNillableVendor sets the "vendor" field if the given value is not nil.
func (eu *ExamUpdate) SetNillableVendor(s *string) *ExamUpdate {
	if s != nil {
		eu.SetVendor(*s)
	}
	return eu
}

// SetExamCode sets the "exam_code" field.
func (eu *ExamUpdate) SetExamCode(s string) *ExamUpdate {
	eu.mutation.SetExamCode(s)
	return eu
}

// SetNillableExamCode sets the "exam_code" field if the given value is not nil.
func (eu *ExamUpdate) SetNillableExamCode(s *string) *ExamUpdate {
	if s != nil {
		eu.SetExamCode(*s)
	}
	return eu
}

// SetDescription sets the "description" field.
func (eu *ExamUpdate) SetDescription(s string) *ExamUpdate {
	eu.mutation.SetDescription(s)
	return eu
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (eu *ExamUpdate) SetNillableDescription(s *string) *ExamUpdate {
	if s != nil {
		eu.SetDescription(*s)
	}
	return eu
}

// SetPassingScore sets the "passing_score" field.
func (eu *ExamUpdate) SetPassingScore(i int) *ExamUpdate {
	eu.mutation.ResetPassingScore()
	eu.mutation.SetPassingScore(i)
	return eu
}

// SetNillablePassingScore sets the "passing_score" field if the given value is not nil.
func (eu *ExamUpdate) SetNillablePassingScore(i *int) *ExamUpdate {
	if i != nil {
		eu.SetPassingScore(*i)
	}
	return eu
}

// AddPassingScore adds i to the "passing_score" field.
func (eu *ExamUpdate) AddPassingScore(i int) *ExamUpdate {
	eu.mutation.AddPassingScore(i)
	return eu
}

// SetTimeLimitMinutes sets the "time_limit_minutes" field.
func (eu *ExamUpdate) SetTimeLimitMinutes(i int) *ExamUpdate {
	eu.mutation.ResetTimeLimitMinutes()
	eu.mutation.SetTimeLimitMinutes(i)
	return eu
}

// SetNillableTimeLimitMinutes sets the "time_limit_minutes" field if the given value is not nil.
func (eu *ExamUpdate) SetNillableTimeLimitMinutes(i *int) *ExamUpdate {
	if i != nil {
		eu.SetTimeLimitMinutes(*i)
	}
	return eu
}

// AddTimeLimitMinutes adds i to the "time_limit_minutes" field.
func (eu *ExamUpdate) AddTimeLimitMinutes(i int) *ExamUpdate {
	eu.mutation.AddTimeLimitMinutes(i)
	return eu
}

// Mutation returns the ExamMutation object of the builder.
func (eu *ExamUpdate) Mutation() *ExamMutation {
	return eu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (eu *ExamUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, eu.sqlSave, eu.mutation, eu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (eu *ExamUpdate) SaveX(ctx context.Context) int {
	affected, err := eu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (eu *ExamUpdate) Exec(ctx context.Context) error {
	_, err := eu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (eu *ExamUpdate) ExecX(ctx context.Context) {
	if err := eu.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (eu *ExamUpdate) check() error {
	if v, ok := eu.mutation.Name(); ok {
		if err := exam.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Exam.name": %w`, err)}
		}
	}
	if v, ok := eu.mutation.PassingScore(); ok {
		if err := exam.PassingScoreValidator(v); err != nil {
			return &ValidationError{Name: "passing_score", err: fmt.Errorf(`ent: validator failed for field "Exam.passing_score": %w`, err)}
		}
	}
	if v, ok := eu.mutation.TimeLimitMinutes(); ok {
		if err := exam.TimeLimitMinutesValidator(v); err != nil {
			return &ValidationError{Name: "time_limit_minutes", err: fmt.Errorf(`ent: validator failed for field "Exam.time_limit_minutes": %w`, err)}
		}
	}
	return nil
}

func (eu *ExamUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := eu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(exam.Table, exam.Columns, sqlgraph.NewFieldSpec(exam.FieldID, field.TypeString))
	if ps := eu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := eu.mutation.Name(); ok {
		_spec.SetField(exam.FieldName, field.TypeString, value)
	}
	if value, ok := eu.mutation.Vendor(); ok {
		_spec.SetField(exam.FieldVendor, field.TypeString, value)
	}
	if value, ok := eu.mutation.ExamCode(); ok {
		_spec.SetField(exam.FieldExamCode, field.TypeString, value)
	}
	if value, ok := eu.mutation.Description(); ok {
		_spec.SetField(exam.FieldDescription, field.TypeString, value)
	}
	if value, ok := eu.mutation.PassingScore(); ok {
		_spec.SetField(exam.FieldPassingScore, field.TypeInt, value)
	}
	if value, ok := eu.mutation.AddedPassingScore(); ok {
		_spec.AddField(exam.FieldPassingScore, field.TypeInt, value)
	}
	if value, ok := eu.mutation.TimeLimitMinutes(); ok {
		_spec.SetField(exam.FieldTimeLimitMinutes, field.TypeInt, value)
	}
	if value, ok := eu.mutation.AddedTimeLimitMinutes(); ok {
		_spec.AddField(exam.FieldTimeLimitMinutes, field.TypeInt, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, eu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{exam.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	eu.mutation.done = true
	return n, nil
}

// ExamUpdateOne is the builder for updating a single Exam entity.
type ExamUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ExamMutation
}

// SetName sets the "name" field.
func (euo *ExamUpdateOne) SetName(s string) *ExamUpdateOne {
	euo.mutation.SetName(s)
	return euo
}

// SetNillableName sets the "name" field if the given value is not nil.
func (euo *ExamUpdateOne) SetNillableName(s *string) *ExamUpdateOne {
	if s != nil {
		euo.SetName(*s)
	}
	return euo
}

// SetVendor sets the "vendor" field.
func (euo *ExamUpdateOne) SetVendor(s string) *ExamUpdateOne {
	euo.mutation.SetVendor(s)
	return euo
}

// SetNillableVendor sets the "vendor" field if the given value is not nil.
func (euo *ExamUpdateOne) SetNillableVendor(s *string) *ExamUpdateOne {
	if s != nil {
		euo.SetVendor(*s)
	}
	return euo
}

// SetExamCode sets the "exam_code" field.
func (euo *ExamUpdateOne) SetExamCode(s string) *ExamUpdateOne {
	euo.mutation.SetExamCode(s)
	return euo
}

// SetNillableExamCode sets the "exam_code" field if the given value is not nil.
func (euo *ExamUpdateOne) SetNillableExamCode(s *string) *ExamUpdateOne {
	if s != nil {
		euo.SetExamCode(*s)
	}
	return euo
}

// SetDescription sets the "description" field.
func (euo *ExamUpdateOne) SetDescription(s string) *ExamUpdateOne {
	euo.mutation.SetDescription(s)
	return euo
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (euo *ExamUpdateOne) SetNillableDescription(s *string) *ExamUpdateOne {
	if s != nil {
		euo.SetDescription(*s)
	}
	return euo
}

// SetPassingScore sets the "passing_score" field.
func (euo *ExamUpdateOne) SetPassingScore(i int) *ExamUpdateOne {
	euo.mutation.ResetPassingScore()
	euo.mutation.SetPassingScore(i)
	return euo
}

// SetNillablePassingScore sets the "passing_score" field if the given value is not nil.
func (euo *ExamUpdateOne) SetNillablePassingScore(i *int) *ExamUpdateOne {
	if i != nil {
		euo.SetPassingScore(*i)
	}
	return euo
}

// AddPassingScore adds i to the "passing_score" field.
func (euo *ExamUpdateOne) AddPassingScore(i int) *ExamUpdateOne {
	euo.mutation.AddPassingScore(i)
	return euo
}

// SetTimeLimitMinutes sets the "time_limit_minutes" field.
func (euo *ExamUpdateOne) SetTimeLimitMinutes(i int) *ExamUpdateOne {
	euo.mutation.ResetTimeLimitMinutes()
	euo.mutation.SetTimeLimitMinutes(i)
	return euo
}

// SetNillableTimeLimitMinutes sets the "time_limit_minutes" field if the given value is not nil.
func (euo *ExamUpdateOne) SetNillableTimeLimitMinutes(i *int) *ExamUpdateOne {
	if i != nil {
		euo.SetTimeLimitMinutes(*i)
	}
	return euo
}

// AddTimeLimitMinutes adds i to the "time_limit_minutes" field.
func (euo *ExamUpdateOne) AddTimeLimitMinutes(i int) *ExamUpdateOne {
	euo.mutation.AddTimeLimitMinutes(i)
	return euo
}

// Mutation returns the ExamMutation object of the builder.
func (euo *ExamUpdateOne) Mutation() *ExamMutation {
	return euo.mutation
}

// Where appends a list predicates to the ExamUpdate builder.
func (euo *ExamUpdateOne) Where(ps ...predicate.Exam) *ExamUpdateOne {
	euo.mutation.Where(ps...)
	return euo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (euo *ExamUpdateOne) Select(field string, fields ...string) *ExamUpdateOne {
	euo.fields = append([]string{field}, fields...)
	return euo
}

// Save executes the query and returns the updated Exam entity.
func (euo *ExamUpdateOne) Save(ctx context.Context) (*Exam, error) {
	return withHooks(ctx, euo.sqlSave, euo.mutation, euo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (euo *ExamUpdateOne) SaveX(ctx context.Context) *Exam {
	node, err := euo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (euo *ExamUpdateOne) Exec(ctx context.Context) error {
	_, err := euo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (euo *ExamUpdateOne) ExecX(ctx context.Context) {
	if err := euo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (euo *ExamUpdateOne) check() error {
	if v, ok := euo.mutation.Name(); ok {
		if err := exam.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Exam.name": %w`, err)}
		}
	}
	if v, ok := euo.mutation.PassingScore(); ok {
		if err := exam.PassingScoreValidator(v); err != nil {
			return &ValidationError{Name: "passing_score", err: fmt.Errorf(`ent: validator failed for field "Exam.passing_score": %w`, err)}
		}
	}
	if v, ok := euo.mutation.TimeLimitMinutes(); ok {
		if err := exam.TimeLimitMinutesValidator(v); err != nil {
			return &ValidationError{Name: "time_limit_minutes", err: fmt.Errorf(`ent: validator failed for field "Exam.time_limit_minutes": %w`, err)}
		}
	}
	return nil
}

func (euo *ExamUpdateOne) sqlSave(ctx context.Context) (_node *Exam, err error) {
	if err := euo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(exam.Table, exam.Columns, sqlgraph.NewFieldSpec(exam.FieldID, field.TypeString))
	id, ok := euo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Exam.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := euo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, exam.FieldID)
		for _, f := range fields {
			if !exam.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != exam.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := euo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := euo.mutation.Name(); ok {
		_spec.SetField(exam.FieldName, field.TypeString, value)
	}
	if value, ok := euo.mutation.Vendor(); ok {
		_spec.SetField(exam.FieldVendor, field.TypeString, value)
	}
	if value, ok := euo.mutation.ExamCode(); ok {
		_spec.SetField(exam.FieldExamCode, field.TypeString, value)
	}
	if value, ok := euo.mutation.Description(); ok {
		_spec.SetField(exam.FieldDescription, field.TypeString, value)
	}
	if value, ok := euo.mutation.PassingScore(); ok {
		_spec.SetField(exam.FieldPassingScore, field.TypeInt, value)
	}
	if value, ok := euo.mutation.AddedPassingScore(); ok {
		_spec.AddField(exam.FieldPassingScore, field.TypeInt, value)
	}
	if value, ok := euo.mutation.TimeLimitMinutes(); ok {
		_spec.SetField(exam.FieldTimeLimitMinutes, field.TypeInt, value)
	}
	if value, ok := euo.mutation.AddedTimeLimitMinutes(); ok {
		_spec.AddField(exam.FieldTimeLimitMinutes, field.TypeInt, value)
	}
	_node = &Exam{config: euo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, euo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{exam.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	euo.mutation.done = true
	return _node, nil
}
