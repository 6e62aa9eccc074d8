// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/jfarleigh/certrun/ent/answeroption"
	"github.com/jfarleigh/certrun/ent/predicate"
	"github.com/jfarleigh/certrun/ent/question"
)

// AnswerOptionUpdate is the builder for updating AnswerOption entities.
type AnswerOptionUpdate struct {
	config
	hooks    []Hook
	mutation *AnswerOptionMutation
}

// Where appends a list predicates to the AnswerOptionUpdate builder.
func (aou *AnswerOptionUpdate) Where(ps ...predicate.AnswerOption) *AnswerOptionUpdate {
	aou.mutation.Where(ps...)
	return aou
}

// SetQuestionID sets the "question_id" field.
func (aou *AnswerOptionUpdate) SetQuestionID(s string) *AnswerOptionUpdate {
	aou.mutation.SetQuestionID(s)
	return aou
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (aou *AnswerOptionUpdate) SetNillableQuestionID(s *string) *AnswerOptionUpdate {
	if s != nil {
		aou.SetQuestionID(*s)
	}
	return aou
}

// SetText sets the "text" field.
func (aou *AnswerOptionUpdate) SetText(s string) *AnswerOptionUpdate {
	aou.mutation.SetText(s)
	return aou
}

// SetNillableText sets the "text" field if the given value is not nil.
func (aou *AnswerOptionUpdate) SetNillableText(s *string) *AnswerOptionUpdate {
	if s != nil {
		aou.SetText(*s)
	}
	return aou
}

// SetIsCorrect sets the "is_correct" field.
func (aou *AnswerOptionUpdate) SetIsCorrect(b bool) *AnswerOptionUpdate {
	aou.mutation.SetIsCorrect(b)
	return aou
}

// SetNillableIsCorrect sets the "is_correct" field if the given value is not nil.
func (aou *AnswerOptionUpdate) SetNillableIsCorrect(b *bool) *AnswerOptionUpdate {
	if b != nil {
		aou.SetIsCorrect(*b)
	}
	return aou
}

// SetDistractorReason sets the "distractor_reason" field.
func (aou *AnswerOptionUpdate) SetDistractorReason(s string) *AnswerOptionUpdate {
	aou.mutation.SetDistractorReason(s)
	return aou
}

// SetNillableDistractorReason sets the "distractor_reason" field if the given value is not nil.
func (aou *AnswerOptionUpdate) SetNillableDistractorReason(s *string) *AnswerOptionUpdate {
	if s != nil {
		aou.SetDistractorReason(*s)
	}
	return aou
}

// SetPosition sets the "position" field.
func (aou *AnswerOptionUpdate) SetPosition(i int) *AnswerOptionUpdate {
	aou.mutation.ResetPosition()
	aou.mutation.SetPosition(i)
	return aou
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (aou *AnswerOptionUpdate) SetNillablePosition(i *int) *AnswerOptionUpdate {
	if i != nil {
		aou.SetPosition(*i)
	}
	return aou
}

// AddPosition adds i to the "position" field.
func (aou *AnswerOptionUpdate) AddPosition(i int) *AnswerOptionUpdate {
	aou.mutation.AddPosition(i)
	return aou
}

// SetQuestion sets the "question" edge to the Question entity.
func (aou *AnswerOptionUpdate) SetQuestion(q *Question) *AnswerOptionUpdate {
	return aou.SetQuestionID(q.ID)
}

// Mutation returns the AnswerOptionMutation object of the builder.
func (aou *AnswerOptionUpdate) Mutation() *AnswerOptionMutation {
	return aou.mutation
}

// ClearQuestion clears the "question" edge to the Question entity.
func (aou *AnswerOptionUpdate) ClearQuestion() *AnswerOptionUpdate {
	aou.mutation.ClearQuestion()
	return aou
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (aou *AnswerOptionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, aou.sqlSave, aou.mutation, aou.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (aou *AnswerOptionUpdate) SaveX(ctx context.Context) int {
	affected, err := aou.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (aou *AnswerOptionUpdate) Exec(ctx context.Context) error {
	_, err := aou.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (aou *AnswerOptionUpdate) ExecX(ctx context.Context) {
	if err := aou.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (aou *AnswerOptionUpdate) check() error {
	if v, ok := aou.mutation.QuestionID(); ok {
		if err := answeroption.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "AnswerOption.question_id": %w`, err)}
		}
	}
	if v, ok := aou.mutation.Text(); ok {
		if err := answeroption.TextValidator(v); err != nil {
			return &ValidationError{Name: "text", err: fmt.Errorf(`ent: validator failed for field "AnswerOption.text": %w`, err)}
		}
	}
	if aou.mutation.QuestionCleared() && len(aou.mutation.QuestionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AnswerOption.question"`)
	}
	return nil
}

func (aou *AnswerOptionUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := aou.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(answeroption.Table, answeroption.Columns, sqlgraph.NewFieldSpec(answeroption.FieldID, field.TypeString))
	if ps := aou.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := aou.mutation.Text(); ok {
		_spec.SetField(answeroption.FieldText, field.TypeString, value)
	}
	if value, ok := aou.mutation.IsCorrect(); ok {
		_spec.SetField(answeroption.FieldIsCorrect, field.TypeBool, value)
	}
	if value, ok := aou.mutation.DistractorReason(); ok {
		_spec.SetField(answeroption.FieldDistractorReason, field.TypeString, value)
	}
	if value, ok := aou.mutation.Position(); ok {
		_spec.SetField(answeroption.FieldPosition, field.TypeInt, value)
	}
	if value, ok := aou.mutation.AddedPosition(); ok {
		_spec.AddField(answeroption.FieldPosition, field.TypeInt, value)
	}
	if aou.mutation.QuestionCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   answeroption.QuestionTable,
			Columns: []string{answeroption.QuestionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(question.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := aou.mutation.QuestionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   answeroption.QuestionTable,
			Columns: []string{answeroption.QuestionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(question.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, aou.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{answeroption.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	aou.mutation.done = true
	return n, nil
}

// AnswerOptionUpdateOne is the builder for updating a single AnswerOption entity.
type AnswerOptionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AnswerOptionMutation
}

// SetQuestionID sets the "question_id" field.
func (aouo *AnswerOptionUpdateOne) SetQuestionID(s string) *AnswerOptionUpdateOne {
	aouo.mutation.SetQuestionID(s)
	return aouo
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (aouo *AnswerOptionUpdateOne) SetNillableQuestionID(s *string) *AnswerOptionUpdateOne {
	if s != nil {
		aouo.SetQuestionID(*s)
	}
	return aouo
}

// SetText sets the "text" field.
func (aouo *AnswerOptionUpdateOne) SetText(s string) *AnswerOptionUpdateOne {
	aouo.mutation.SetText(s)
	return aouo
}

// SetNillableText sets the "text" field if the given value is not nil.
func (aouo *AnswerOptionUpdateOne) SetNillableText(s *string) *AnswerOptionUpdateOne {
	if s != nil {
		aouo.SetText(*s)
	}
	return aouo
}

// SetIsCorrect sets the "is_correct" field.
func (aouo *AnswerOptionUpdateOne) SetIsCorrect(b bool) *AnswerOptionUpdateOne {
	aouo.mutation.SetIsCorrect(b)
	return aouo
}

// SetNillableIsCorrect sets the "is_correct" field if the given value is not nil.
func (aouo *AnswerOptionUpdateOne) SetNillableIsCorrect(b *bool) *AnswerOptionUpdateOne {
	if b != nil {
		aouo.SetIsCorrect(*b)
	}
	return aouo
}

// SetDistractorReason sets the "distractor_reason" field.
func (aouo *AnswerOptionUpdateOne) SetDistractorReason(s string) *AnswerOptionUpdateOne {
	aouo.mutation.SetDistractorReason(s)
	return aouo
}

// SetNillableDistractorReason sets the "distractor_reason" field if the given value is not nil.
func (aouo *AnswerOptionUpdateOne) SetNillableDistractorReason(s *string) *AnswerOptionUpdateOne {
	if s != nil {
		aouo.SetDistractorReason(*s)
	}
	return aouo
}

// SetPosition sets the "position" field.
func (aouo *AnswerOptionUpdateOne) SetPosition(i int) *AnswerOptionUpdateOne {
	aouo.mutation.ResetPosition()
	aouo.mutation.SetPosition(i)
	return aouo
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (aouo *AnswerOptionUpdateOne) SetNillablePosition(i *int) *AnswerOptionUpdateOne {
	if i != nil {
		aouo.SetPosition(*i)
	}
	return aouo
}

// AddPosition adds i to the "position" field.
func (aouo *AnswerOptionUpdateOne) AddPosition(i int) *AnswerOptionUpdateOne {
	aouo.mutation.AddPosition(i)
	return aouo
}

// SetQuestion sets the "question" edge to the Question entity.
func (aouo *AnswerOptionUpdateOne) SetQuestion(q *Question) *AnswerOptionUpdateOne {
	return aouo.SetQuestionID(q.ID)
}

// Mutation returns the AnswerOptionMutation object of the builder.
func (aouo *AnswerOptionUpdateOne) Mutation() *AnswerOptionMutation {
	return aouo.mutation
}

// ClearQuestion clears the "question" edge to the Question entity.
func (aouo *AnswerOptionUpdateOne) ClearQuestion() *AnswerOptionUpdateOne {
	aouo.mutation.ClearQuestion()
	return aouo
}

// Where appends a list predicates to the AnswerOptionUpdate builder.
func (aouo *AnswerOptionUpdateOne) Where(ps ...predicate.AnswerOption) *AnswerOptionUpdateOne {
	aouo.mutation.Where(ps...)
	return aouo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (aouo *AnswerOptionUpdateOne) Select(field string, fields ...string) *AnswerOptionUpdateOne {
	aouo.fields = append([]string{field}, fields...)
	return aouo
}

// Save executes the query and returns the updated AnswerOption entity.
func (aouo *AnswerOptionUpdateOne) Save(ctx context.Context) (*AnswerOption, error) {
	return withHooks(ctx, aouo.sqlSave, aouo.mutation, aouo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (aouo *AnswerOptionUpdateOne) SaveX(ctx context.Context) *AnswerOption {
	node, err := aouo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (aouo *AnswerOptionUpdateOne) Exec(ctx context.Context) error {
	_, err := aouo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (aouo *AnswerOptionUpdateOne) ExecX(ctx context.Context) {
	if err := aouo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (aouo *AnswerOptionUpdateOne) check() error {
	if v, ok := aouo.mutation.QuestionID(); ok {
		if err := answeroption.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "AnswerOption.question_id": %w`, err)}
		}
	}
	if v, ok := aouo.mutation.Text(); ok {
		if err := answeroption.TextValidator(v); err != nil {
			return &ValidationError{Name: "text", err: fmt.Errorf(`ent: validator failed for field "AnswerOption.text": %w`, err)}
		}
	}
	if aouo.mutation.QuestionCleared() && len(aouo.mutation.QuestionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AnswerOption.question"`)
	}
	return nil
}

func (aouo *AnswerOptionUpdateOne) sqlSave(ctx context.Context) (_node *AnswerOption, err error) {
	if err := aouo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(answeroption.Table, answeroption.Columns, sqlgraph.NewFieldSpec(answeroption.FieldID, field.TypeString))
	id, ok := aouo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AnswerOption.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := aouo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, answeroption.FieldID)
		for _, f := range fields {
			if !answeroption.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != answeroption.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := aouo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := aouo.mutation.Text(); ok {
		_spec.SetField(answeroption.FieldText, field.TypeString, value)
	}
	if value, ok := aouo.mutation.IsCorrect(); ok {
		_spec.SetField(answeroption.FieldIsCorrect, field.TypeBool, value)
	}
	if value, ok := aouo.mutation.DistractorReason(); ok {
		_spec.SetField(answeroption.FieldDistractorReason, field.TypeString, value)
	}
	if value, ok := aouo.mutation.Position(); ok {
		_spec.SetField(answeroption.FieldPosition, field.TypeInt, value)
	}
	if value, ok := aouo.mutation.AddedPosition(); ok {
		_spec.AddField(answeroption.FieldPosition, field.TypeInt, value)
	}
	if aouo.mutation.QuestionCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   answeroption.QuestionTable,
			Columns: []string{answeroption.QuestionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(question.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := aouo.mutation.QuestionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   answeroption.QuestionTable,
			Columns: []string{answeroption.QuestionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(question.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &AnswerOption{config: aouo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, aouo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{answeroption.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	aouo.mutation.done = true
	return _node, nil
}
