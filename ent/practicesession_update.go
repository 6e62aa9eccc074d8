// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/jfarleigh/certrun/ent/practicesession"
	"github.com/jfarleigh/certrun/ent/predicate"
)

// PracticeSessionUpdate is the builder for updating PracticeSession entities.
type PracticeSessionUpdate struct {
	config
	hooks    []Hook
	mutation *PracticeSessionMutation
}

// Where appends a list predicates to the PracticeSessionUpdate builder.
func (psu *PracticeSessionUpdate) Where(ps ...predicate.PracticeSession) *PracticeSessionUpdate {
	psu.mutation.Where(ps...)
	return psu
}

// SetExamID sets the "exam_id" field.
func (psu *PracticeSessionUpdate) SetExamID(s string) *PracticeSessionUpdate {
	psu.mutation.SetExamID(s)
	return psu
}

// SetNillableExamID sets the "exam_id" field if the given value is not nil.
func (psu *PracticeSessionUpdate) SetNillableExamID(s *string) *PracticeSessionUpdate {
	if s != nil {
		psu.SetExamID(*s)
	}
	return psu
}

// SetTopicID sets the "topic_id" field.
func (psu *PracticeSessionUpdate) SetTopicID(s string) *PracticeSessionUpdate {
	psu.mutation.SetTopicID(s)
	return psu
}

// SetNillableTopicID sets the "topic_id" field if the given value is not nil.
func (psu *PracticeSessionUpdate) SetNillableTopicID(s *string) *PracticeSessionUpdate {
	if s != nil {
		psu.SetTopicID(*s)
	}
	return psu
}

// SetMode sets the "mode" field.
func (psu *PracticeSessionUpdate) SetMode(s string) *PracticeSessionUpdate {
	psu.mutation.SetMode(s)
	return psu
}

// SetNillableMode sets the "mode" field if the given value is not nil.
func (psu *PracticeSessionUpdate) SetNillableMode(s *string) *PracticeSessionUpdate {
	if s != nil {
		psu.SetMode(*s)
	}
	return psu
}

// SetQuestions sets the "questions" field.
func (psu *PracticeSessionUpdate) SetQuestions(s []string) *PracticeSessionUpdate {
	psu.mutation.SetQuestions(s)
	return psu
}

// AppendQuestions appends s to the "questions" field.
func (psu *PracticeSessionUpdate) AppendQuestions(s []string) *PracticeSessionUpdate {
	psu.mutation.AppendQuestions(s)
	return psu
}

// SetSelectionSeed sets the "selection_seed" field.
func (psu *PracticeSessionUpdate) SetSelectionSeed(i int64) *PracticeSessionUpdate {
	psu.mutation.ResetSelectionSeed()
	psu.mutation.SetSelectionSeed(i)
	return psu
}

// SetNillableSelectionSeed sets the "selection_seed" field if the given value is not nil.
func (psu *PracticeSessionUpdate) SetNillableSelectionSeed(i *int64) *PracticeSessionUpdate {
	if i != nil {
		psu.SetSelectionSeed(*i)
	}
	return psu
}

// AddSelectionSeed adds i to the "selection_seed" field.
func (psu *PracticeSessionUpdate) AddSelectionSeed(i int64) *PracticeSessionUpdate {
	psu.mutation.AddSelectionSeed(i)
	return psu
}

// SetStatus sets the "status" field.
func (psu *PracticeSessionUpdate) SetStatus(s string) *PracticeSessionUpdate {
	psu.mutation.SetStatus(s)
	return psu
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (psu *PracticeSessionUpdate) SetNillableStatus(s *string) *PracticeSessionUpdate {
	if s != nil {
		psu.SetStatus(*s)
	}
	return psu
}

// SetEndedAt sets the "ended_at" field.
func (psu *PracticeSessionUpdate) SetEndedAt(t time.Time) *PracticeSessionUpdate {
	psu.mutation.SetEndedAt(t)
	return psu
}

// SetNillableEndedAt sets the "ended_at" field if the given value is not nil.
func (psu *PracticeSessionUpdate) SetNillableEndedAt(t *time.Time) *PracticeSessionUpdate {
	if t != nil {
		psu.SetEndedAt(*t)
	}
	return psu
}

// ClearEndedAt clears the value of the "ended_at" field.
func (psu *PracticeSessionUpdate) ClearEndedAt() *PracticeSessionUpdate {
	psu.mutation.ClearEndedAt()
	return psu
}

// Mutation returns the PracticeSessionMutation object of the builder.
func (psu *PracticeSessionUpdate) Mutation() *PracticeSessionMutation {
	return psu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (psu *PracticeSessionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, psu.sqlSave, psu.mutation, psu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (psu *PracticeSessionUpdate) SaveX(ctx context.Context) int {
	affected, err := psu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (psu *PracticeSessionUpdate) Exec(ctx context.Context) error {
	_, err := psu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (psu *PracticeSessionUpdate) ExecX(ctx context.Context) {
	if err := psu.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (psu *PracticeSessionUpdate) check() error {
	if v, ok := psu.mutation.ExamID(); ok {
		if err := practicesession.ExamIDValidator(v); err != nil {
			return &ValidationError{Name: "exam_id", err: fmt.Errorf(`ent: validator failed for field "PracticeSession.exam_id": %w`, err)}
		}
	}
	if v, ok := psu.mutation.Mode(); ok {
		if err := practicesession.ModeValidator(v); err != nil {
			return &ValidationError{Name: "mode", err: fmt.Errorf(`ent: validator failed for field "PracticeSession.mode": %w`, err)}
		}
	}
	return nil
}

func (psu *PracticeSessionUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := psu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(practicesession.Table, practicesession.Columns, sqlgraph.NewFieldSpec(practicesession.FieldID, field.TypeString))
	if ps := psu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := psu.mutation.ExamID(); ok {
		_spec.SetField(practicesession.FieldExamID, field.TypeString, value)
	}
	if value, ok := psu.mutation.TopicID(); ok {
		_spec.SetField(practicesession.FieldTopicID, field.TypeString, value)
	}
	if value, ok := psu.mutation.Mode(); ok {
		_spec.SetField(practicesession.FieldMode, field.TypeString, value)
	}
	if value, ok := psu.mutation.Questions(); ok {
		_spec.SetField(practicesession.FieldQuestions, field.TypeJSON, value)
	}
	if value, ok := psu.mutation.AppendedQuestions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, practicesession.FieldQuestions, value)
		})
	}
	if value, ok := psu.mutation.SelectionSeed(); ok {
		_spec.SetField(practicesession.FieldSelectionSeed, field.TypeInt64, value)
	}
	if value, ok := psu.mutation.AddedSelectionSeed(); ok {
		_spec.AddField(practicesession.FieldSelectionSeed, field.TypeInt64, value)
	}
	if value, ok := psu.mutation.Status(); ok {
		_spec.SetField(practicesession.FieldStatus, field.TypeString, value)
	}
	if value, ok := psu.mutation.EndedAt(); ok {
		_spec.SetField(practicesession.FieldEndedAt, field.TypeTime, value)
	}
	if psu.mutation.EndedAtCleared() {
		_spec.ClearField(practicesession.FieldEndedAt, field.TypeTime)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, psu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{practicesession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	psu.mutation.done = true
	return n, nil
}

// PracticeSessionUpdateOne is the builder for updating a single PracticeSession entity.
type PracticeSessionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PracticeSessionMutation
}

// SetExamID sets the "exam_id" field.
func (psuo *PracticeSessionUpdateOne) SetExamID(s string) *PracticeSessionUpdateOne {
	psuo.mutation.SetExamID(s)
	return psuo
}

// SetNillableExamID sets the "exam_id" field if the given value is not nil.
func (psuo *PracticeSessionUpdateOne) SetNillableExamID(s *string) *PracticeSessionUpdateOne {
	if s != nil {
		psuo.SetExamID(*s)
	}
	return psuo
}

// SetTopicID sets the "topic_id" field.
func (psuo *PracticeSessionUpdateOne) SetTopicID(s string) *PracticeSessionUpdateOne {
	psuo.mutation.SetTopicID(s)
	return psuo
}

// SetNillableTopicID sets the "topic_id" field if the given value is not nil.
func (psuo *PracticeSessionUpdateOne) SetNillableTopicID(s *string) *PracticeSessionUpdateOne {
	if s != nil {
		psuo.SetTopicID(*s)
	}
	return psuo
}

// SetMode sets the "mode" field.
func (psuo *PracticeSessionUpdateOne) SetMode(s string) *PracticeSessionUpdateOne {
	psuo.mutation.SetMode(s)
	return psuo
}

// SetNillableMode sets the "mode" field if the given value is not nil.
func (psuo *PracticeSessionUpdateOne) SetNillableMode(s *string) *PracticeSessionUpdateOne {
	if s != nil {
		psuo.SetMode(*s)
	}
	return psuo
}

// SetQuestions sets the "questions" field.
func (psuo *PracticeSessionUpdateOne) SetQuestions(s []string) *PracticeSessionUpdateOne {
	psuo.mutation.SetQuestions(s)
	return psuo
}

// AppendQuestions appends s to the "questions" field.
func (psuo *PracticeSessionUpdateOne) AppendQuestions(s []string) *PracticeSessionUpdateOne {
	psuo.mutation.AppendQuestions(s)
	return psuo
}

// SetSelectionSeed sets the "selection_seed" field.
func (psuo *PracticeSessionUpdateOne) SetSelectionSeed(i int64) *PracticeSessionUpdateOne {
	psuo.mutation.ResetSelectionSeed()
	psuo.mutation.SetSelectionSeed(i)
	return psuo
}

// SetNillableSelectionSeed sets the "selection_seed" field if the given value is not nil.
func (psuo *PracticeSessionUpdateOne) SetNillableSelectionSeed(i *int64) *PracticeSessionUpdateOne {
	if i != nil {
		psuo.SetSelectionSeed(*i)
	}
	return psuo
}

// AddSelectionSeed adds i to the "selection_seed" field.
func (psuo *PracticeSessionUpdateOne) AddSelectionSeed(i int64) *PracticeSessionUpdateOne {
	psuo.mutation.AddSelectionSeed(i)
	return psuo
}

// SetStatus sets the "status" field.
func (psuo *PracticeSessionUpdateOne) SetStatus(s string) *PracticeSessionUpdateOne {
	psuo.mutation.SetStatus(s)
	return psuo
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (psuo *PracticeSessionUpdateOne) SetNillableStatus(s *string) *PracticeSessionUpdateOne {
	if s != nil {
		psuo.SetStatus(*s)
	}
	return psuo
}

// SetEndedAt sets the "ended_at" field.
func (psuo *PracticeSessionUpdateOne) SetEndedAt(t time.Time) *PracticeSessionUpdateOne {
	psuo.mutation.SetEndedAt(t)
	return psuo
}

// SetNillableEndedAt sets the "ended_at" field if the given value is not nil.
func (psuo *PracticeSessionUpdateOne) SetNillableEndedAt(t *time.Time) *PracticeSessionUpdateOne {
	if t != nil {
		psuo.SetEndedAt(*t)
	}
	return psuo
}

// ClearEndedAt clears the value of the "ended_at" field.
func (psuo *PracticeSessionUpdateOne) ClearEndedAt() *PracticeSessionUpdateOne {
	psuo.mutation.ClearEndedAt()
	return psuo
}

// Mutation returns the PracticeSessionMutation object of the builder.
func (psuo *PracticeSessionUpdateOne) Mutation() *PracticeSessionMutation {
	return psuo.mutation
}

// Where appends a list predicates to the PracticeSessionUpdate builder.
func (psuo *PracticeSessionUpdateOne) Where(ps ...predicate.PracticeSession) *PracticeSessionUpdateOne {
	psuo.mutation.Where(ps...)
	return psuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (psuo *PracticeSessionUpdateOne) Select(field string, fields ...string) *PracticeSessionUpdateOne {
	psuo.fields = append([]string{field}, fields...)
	return psuo
}

// Save executes the query and returns the updated PracticeSession entity.
func (psuo *PracticeSessionUpdateOne) Save(ctx context.Context) (*PracticeSession, error) {
	return withHooks(ctx, psuo.sqlSave, psuo.mutation, psuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (psuo *PracticeSessionUpdateOne) SaveX(ctx context.Context) *PracticeSession {
	node, err := psuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (psuo *PracticeSessionUpdateOne) Exec(ctx context.Context) error {
	_, err := psuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (psuo *PracticeSessionUpdateOne) ExecX(ctx context.Context) {
	if err := psuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (psuo *PracticeSessionUpdateOne) check() error {
	if v, ok := psuo.mutation.ExamID(); ok {
		if err := practicesession.ExamIDValidator(v); err != nil {
			return &ValidationError{Name: "exam_id", err: fmt.Errorf(`ent: validator failed for field "PracticeSession.exam_id": %w`, err)}
		}
	}
	if v, ok := psuo.mutation.Mode(); ok {
		if err := practicesession.ModeValidator(v); err != nil {
			return &ValidationError{Name: "mode", err: fmt.Errorf(`ent: validator failed for field "PracticeSession.mode": %w`, err)}
		}
	}
	return nil
}

func (psuo *PracticeSessionUpdateOne) sqlSave(ctx context.Context) (_node *PracticeSession, err error) {
	if err := psuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(practicesession.Table, practicesession.Columns, sqlgraph.NewFieldSpec(practicesession.FieldID, field.TypeString))
	id, ok := psuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PracticeSession.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := psuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, practicesession.FieldID)
		for _, f := range fields {
			if !practicesession.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != practicesession.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := psuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := psuo.mutation.ExamID(); ok {
		_spec.SetField(practicesession.FieldExamID, field.TypeString, value)
	}
	if value, ok := psuo.mutation.TopicID(); ok {
		_spec.SetField(practicesession.FieldTopicID, field.TypeString, value)
	}
	if value, ok := psuo.mutation.Mode(); ok {
		_spec.SetField(practicesession.FieldMode, field.TypeString, value)
	}
	if value, ok := psuo.mutation.Questions(); ok {
		_spec.SetField(practicesession.FieldQuestions, field.TypeJSON, value)
	}
	if value, ok := psuo.mutation.AppendedQuestions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, practicesession.FieldQuestions, value)
		})
	}
	if value, ok := psuo.mutation.SelectionSeed(); ok {
		_spec.SetField(practicesession.FieldSelectionSeed, field.TypeInt64, value)
	}
	if value, ok := psuo.mutation.AddedSelectionSeed(); ok {
		_spec.AddField(practicesession.FieldSelectionSeed, field.TypeInt64, value)
	}
	if value, ok := psuo.mutation.Status(); ok {
		_spec.SetField(practicesession.FieldStatus, field.TypeString, value)
	}
	if value, ok := psuo.mutation.EndedAt(); ok {
		_spec.SetField(practicesession.FieldEndedAt, field.TypeTime, value)
	}
	if psuo.mutation.EndedAtCleared() {
		_spec.ClearField(practicesession.FieldEndedAt, field.TypeTime)
	}
	_node = &PracticeSession{config: psuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, psuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{practicesession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	psuo.mutation.done = true
	return _node, nil
}
