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
	"github.com/jfarleigh/certrun/ent/answeroption"
	"github.com/jfarleigh/certrun/ent/predicate"
	"github.com/jfarleigh/certrun/ent/question"
	"github.com/jfarleigh/certrun/ent/topic"
)

// QuestionUpdate is the builder for updating Question entities.
type QuestionUpdate struct {
	config
	hooks    []Hook
	mutation *QuestionMutation
}

// Where appends a list predicates to the QuestionUpdate builder.
func (qu *QuestionUpdate) Where(ps ...predicate.Question) *QuestionUpdate {
	qu.mutation.Where(ps...)
	return qu
}

// SetExamID sets the "exam_id" field.
func (qu *QuestionUpdate) SetExamID(s string) *QuestionUpdate {
	qu.mutation.SetExamID(s)
	return qu
}

// SetNillableExamID sets the "exam_id" field if the given value is not nil.
func (qu *QuestionUpdate) SetNillableExamID(s *string) *QuestionUpdate {
	if s != nil {
		qu.SetExamID(*s)
	}
	return qu
}

// SetText sets the "text" field.
func (qu *QuestionUpdate) SetText(s string) *QuestionUpdate {
	qu.mutation.SetText(s)
	return qu
}

// SetNillableText sets the "text" field if the given value is not nil.
func (qu *QuestionUpdate) SetNillableText(s *string) *QuestionUpdate {
	if s != nil {
		qu.SetText(*s)
	}
	return qu
}

// SetQuestionType sets the "question_type" field.
func (qu *QuestionUpdate) SetQuestionType(s string) *QuestionUpdate {
	qu.mutation.SetQuestionType(s)
	return qu
}

// SetNillableQuestionType sets the "question_type" field if the given value is not nil.
func (qu *QuestionUpdate) SetNillableQuestionType(s *string) *QuestionUpdate {
	if s != nil {
		qu.SetQuestionType(*s)
	}
	return qu
}

// SetChooseCount sets the "choose_count" field.
func (qu *QuestionUpdate) SetChooseCount(i int) *QuestionUpdate {
	qu.mutation.ResetChooseCount()
	qu.mutation.SetChooseCount(i)
	return qu
}

// SetNillableChooseCount sets the "choose_count" field if the given value is not nil.
func (qu *QuestionUpdate) SetNillableChooseCount(i *int) *QuestionUpdate {
	if i != nil {
		qu.SetChooseCount(*i)
	}
	return qu
}

// AddChooseCount adds i to the "choose_count" field.
func (qu *QuestionUpdate) AddChooseCount(i int) *QuestionUpdate {
	qu.mutation.AddChooseCount(i)
	return qu
}

// SetDifficulty sets the "difficulty" field.
func (qu *QuestionUpdate) SetDifficulty(s string) *QuestionUpdate {
	qu.mutation.SetDifficulty(s)
	return qu
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (qu *QuestionUpdate) SetNillableDifficulty(s *string) *QuestionUpdate {
	if s != nil {
		qu.SetDifficulty(*s)
	}
	return qu
}

// SetExplanation sets the "explanation" field.
func (qu *QuestionUpdate) SetExplanation(s string) *QuestionUpdate {
	qu.mutation.SetExplanation(s)
	return qu
}

// SetNillableExplanation sets the "explanation" field if the given value is not nil.
func (qu *QuestionUpdate) SetNillableExplanation(s *string) *QuestionUpdate {
	if s != nil {
		qu.SetExplanation(*s)
	}
	return qu
}

// SetSource sets the "source" field.
func (qu *QuestionUpdate) SetSource(s string) *QuestionUpdate {
	qu.mutation.SetSource(s)
	return qu
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (qu *QuestionUpdate) SetNillableSource(s *string) *QuestionUpdate {
	if s != nil {
		qu.SetSource(*s)
	}
	return qu
}

// SetPatternTags sets the "pattern_tags" field.
func (qu *QuestionUpdate) SetPatternTags(s []string) *QuestionUpdate {
	qu.mutation.SetPatternTags(s)
	return qu
}

// AppendPatternTags appends s to the "pattern_tags" field.
func (qu *QuestionUpdate) AppendPatternTags(s []string) *QuestionUpdate {
	qu.mutation.AppendPatternTags(s)
	return qu
}

// ClearPatternTags clears the value of the "pattern_tags" field.
func (qu *QuestionUpdate) ClearPatternTags() *QuestionUpdate {
	qu.mutation.ClearPatternTags()
	return qu
}

// AddOptionIDs adds the "options" edge to the AnswerOption entity by IDs.
func (qu *QuestionUpdate) AddOptionIDs(ids ...string) *QuestionUpdate {
	qu.mutation.AddOptionIDs(ids...)
	return qu
}

// AddOptions adds the "options" edges to the AnswerOption entity.
func (qu *QuestionUpdate) AddOptions(a ...*AnswerOption) *QuestionUpdate {
	ids := make([]string, len(a))
	for i := range a {
		ids[i] = a[i].ID
	}
	return qu.AddOptionIDs(ids...)
}

// AddTopicIDs adds the "topics" edge to the Topic entity by IDs.
func (qu *QuestionUpdate) AddTopicIDs(ids ...string) *QuestionUpdate {
	qu.mutation.AddTopicIDs(ids...)
	return qu
}

// AddTopics adds the "topics" edges to the Topic entity.
func (qu *QuestionUpdate) AddTopics(t ...*Topic) *QuestionUpdate {
	ids := make([]string, len(t))
	for i := range t {
		ids[i] = t[i].ID
	}
	return qu.AddTopicIDs(ids...)
}

// Mutation returns the QuestionMutation object of the builder.
func (qu *QuestionUpdate) Mutation() *QuestionMutation {
	return qu.mutation
}

// ClearOptions clears all "options" edges to the AnswerOption entity.
func (qu *QuestionUpdate) ClearOptions() *QuestionUpdate {
	qu.mutation.ClearOptions()
	return qu
}

// RemoveOptionIDs removes the "options" edge to AnswerOption entities by IDs.
func (qu *QuestionUpdate) RemoveOptionIDs(ids ...string) *QuestionUpdate {
	qu.mutation.RemoveOptionIDs(ids...)
	return qu
}

// RemoveOptions removes "options" edges to AnswerOption entities.
func (qu *QuestionUpdate) RemoveOptions(a ...*AnswerOption) *QuestionUpdate {
	ids := make([]string, len(a))
	for i := range a {
		ids[i] = a[i].ID
	}
	return qu.RemoveOptionIDs(ids...)
}

// ClearTopics clears all "topics" edges to the Topic entity.
func (qu *QuestionUpdate) ClearTopics() *QuestionUpdate {
	qu.mutation.ClearTopics()
	return qu
}

// RemoveTopicIDs removes the "topics" edge to Topic entities by IDs.
func (qu *QuestionUpdate) RemoveTopicIDs(ids ...string) *QuestionUpdate {
	qu.mutation.RemoveTopicIDs(ids...)
	return qu
}

// RemoveTopics removes "topics" edges to Topic entities.
func (qu *QuestionUpdate) RemoveTopics(t ...*Topic) *QuestionUpdate {
	ids := make([]string, len(t))
	for i := range t {
		ids[i] = t[i].ID
	}
	return qu.RemoveTopicIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (qu *QuestionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, qu.sqlSave, qu.mutation, qu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (qu *QuestionUpdate) SaveX(ctx context.Context) int {
	affected, err := qu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (qu *QuestionUpdate) Exec(ctx context.Context) error {
	_, err := qu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (qu *QuestionUpdate) ExecX(ctx context.Context) {
	if err := qu.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (qu *QuestionUpdate) check() error {
	if v, ok := qu.mutation.ExamID(); ok {
		if err := question.ExamIDValidator(v); err != nil {
			return &ValidationError{Name: "exam_id", err: fmt.Errorf(`ent: validator failed for field "Question.exam_id": %w`, err)}
		}
	}
	if v, ok := qu.mutation.Text(); ok {
		if err := question.TextValidator(v); err != nil {
			return &ValidationError{Name: "text", err: fmt.Errorf(`ent: validator failed for field "Question.text": %w`, err)}
		}
	}
	if v, ok := qu.mutation.QuestionType(); ok {
		if err := question.QuestionTypeValidator(v); err != nil {
			return &ValidationError{Name: "question_type", err: fmt.Errorf(`ent: validator failed for field "Question.question_type": %w`, err)}
		}
	}
	if v, ok := qu.mutation.ChooseCount(); ok {
		if err := question.ChooseCountValidator(v); err != nil {
			return &ValidationError{Name: "choose_count", err: fmt.Errorf(`ent: validator failed for field "Question.choose_count": %w`, err)}
		}
	}
	return nil
}

func (qu *QuestionUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := qu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(question.Table, question.Columns, sqlgraph.NewFieldSpec(question.FieldID, field.TypeString))
	if ps := qu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := qu.mutation.ExamID(); ok {
		_spec.SetField(question.FieldExamID, field.TypeString, value)
	}
	if value, ok := qu.mutation.Text(); ok {
		_spec.SetField(question.FieldText, field.TypeString, value)
	}
	if value, ok := qu.mutation.QuestionType(); ok {
		_spec.SetField(question.FieldQuestionType, field.TypeString, value)
	}
	if value, ok := qu.mutation.ChooseCount(); ok {
		_spec.SetField(question.FieldChooseCount, field.TypeInt, value)
	}
	if value, ok := qu.mutation.AddedChooseCount(); ok {
		_spec.AddField(question.FieldChooseCount, field.TypeInt, value)
	}
	if value, ok := qu.mutation.Difficulty(); ok {
		_spec.SetField(question.FieldDifficulty, field.TypeString, value)
	}
	if value, ok := qu.mutation.Explanation(); ok {
		_spec.SetField(question.FieldExplanation, field.TypeString, value)
	}
	if value, ok := qu.mutation.Source(); ok {
		_spec.SetField(question.FieldSource, field.TypeString, value)
	}
	if value, ok := qu.mutation.PatternTags(); ok {
		_spec.SetField(question.FieldPatternTags, field.TypeJSON, value)
	}
	if value, ok := qu.mutation.AppendedPatternTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, question.FieldPatternTags, value)
		})
	}
	if qu.mutation.PatternTagsCleared() {
		_spec.ClearField(question.FieldPatternTags, field.TypeJSON)
	}
	if qu.mutation.OptionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   question.OptionsTable,
			Columns: []string{question.OptionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(answeroption.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := qu.mutation.RemovedOptionsIDs(); len(nodes) > 0 && !qu.mutation.OptionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   question.OptionsTable,
			Columns: []string{question.OptionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(answeroption.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := qu.mutation.OptionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   question.OptionsTable,
			Columns: []string{question.OptionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(answeroption.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if qu.mutation.TopicsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   question.TopicsTable,
			Columns: question.TopicsPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(topic.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := qu.mutation.RemovedTopicsIDs(); len(nodes) > 0 && !qu.mutation.TopicsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   question.TopicsTable,
			Columns: question.TopicsPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(topic.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := qu.mutation.TopicsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   question.TopicsTable,
			Columns: question.TopicsPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(topic.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, qu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{question.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	qu.mutation.done = true
	return n, nil
}

// QuestionUpdateOne is the builder for updating a single Question entity.
type QuestionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *QuestionMutation
}

// SetExamID sets the "exam_id" field.
func (quo *QuestionUpdateOne) SetExamID(s string) *QuestionUpdateOne {
	quo.mutation.SetExamID(s)
	return quo
}

// SetNillableExamID sets the "exam_id" field if the given value is not nil.
func (quo *QuestionUpdateOne) SetNillableExamID(s *string) *QuestionUpdateOne {
	if s != nil {
		quo.SetExamID(*s)
	}
	return quo
}

// SetText sets the "text" field.
func (quo *QuestionUpdateOne) SetText(s string) *QuestionUpdateOne {
	quo.mutation.SetText(s)
	return quo
}

// SetNillableText sets the "text" field if the given value is not nil.
func (quo *QuestionUpdateOne) SetNillableText(s *string) *QuestionUpdateOne {
	if s != nil {
		quo.SetText(*s)
	}
	return quo
}

// SetQuestionType sets the "question_type" field.
func (quo *QuestionUpdateOne) SetQuestionType(s string) *QuestionUpdateOne {
	quo.mutation.SetQuestionType(s)
	return quo
}

// SetNillableQuestionType sets the "question_type" field if the given value is not nil.
func (quo *QuestionUpdateOne) SetNillableQuestionType(s *string) *QuestionUpdateOne {
	if s != nil {
		quo.SetQuestionType(*s)
	}
	return quo
}

// SetChooseCount sets the "choose_count" field.
func (quo *QuestionUpdateOne) SetChooseCount(i int) *QuestionUpdateOne {
	quo.mutation.ResetChooseCount()
	quo.mutation.SetChooseCount(i)
	return quo
}

// SetNillableChooseCount sets the "choose_count" field if the given value is not nil.
func (quo *QuestionUpdateOne) SetNillableChooseCount(i *int) *QuestionUpdateOne {
	if i != nil {
		quo.SetChooseCount(*i)
	}
	return quo
}

// AddChooseCount adds i to the "choose_count" field.
func (quo *QuestionUpdateOne) AddChooseCount(i int) *QuestionUpdateOne {
	quo.mutation.AddChooseCount(i)
	return quo
}

// SetDifficulty sets the "difficulty" field.
func (quo *QuestionUpdateOne) SetDifficulty(s string) *QuestionUpdateOne {
	quo.mutation.SetDifficulty(s)
	return quo
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (quo *QuestionUpdateOne) SetNillableDifficulty(s *string) *QuestionUpdateOne {
	if s != nil {
		quo.SetDifficulty(*s)
	}
	return quo
}

// SetExplanation sets the "explanation" field.
func (quo *QuestionUpdateOne) SetExplanation(s string) *QuestionUpdateOne {
	quo.mutation.SetExplanation(s)
	return quo
}

// SetNillableExplanation sets the "explanation" field if the given value is not nil.
func (quo *QuestionUpdateOne) SetNillableExplanation(s *string) *QuestionUpdateOne {
	if s != nil {
		quo.SetExplanation(*s)
	}
	return quo
}

// SetSource sets the "source" field.
func (quo *QuestionUpdateOne) SetSource(s string) *QuestionUpdateOne {
	quo.mutation.SetSource(s)
	return quo
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (quo *QuestionUpdateOne) SetNillableSource(s *string) *QuestionUpdateOne {
	if s != nil {
		quo.SetSource(*s)
	}
	return quo
}

// SetPatternTags sets the "pattern_tags" field.
func (quo *QuestionUpdateOne) SetPatternTags(s []string) *QuestionUpdateOne {
	quo.mutation.SetPatternTags(s)
	return quo
}

// AppendPatternTags appends s to the "pattern_tags" field.
func (quo *QuestionUpdateOne) AppendPatternTags(s []string) *QuestionUpdateOne {
	quo.mutation.AppendPatternTags(s)
	return quo
}

// ClearPatternTags clears the value of the "pattern_tags" field.
func (quo *QuestionUpdateOne) ClearPatternTags() *QuestionUpdateOne {
	quo.mutation.ClearPatternTags()
	return quo
}

// AddOptionIDs adds the "options" edge to the AnswerOption entity by IDs.
func (quo *QuestionUpdateOne) AddOptionIDs(ids ...string) *QuestionUpdateOne {
	quo.mutation.AddOptionIDs(ids...)
	return quo
}

// AddOptions adds the "options" edges to the AnswerOption entity.
func (quo *QuestionUpdateOne) AddOptions(a ...*AnswerOption) *QuestionUpdateOne {
	ids := make([]string, len(a))
	for i := range a {
		ids[i] = a[i].ID
	}
	return quo.AddOptionIDs(ids...)
}

// AddTopicIDs adds the "topics" edge to the Topic entity by IDs.
func (quo *QuestionUpdateOne) AddTopicIDs(ids ...string) *QuestionUpdateOne {
	quo.mutation.AddTopicIDs(ids...)
	return quo
}

// AddTopics adds the "topics" edges to the Topic entity.
func (quo *QuestionUpdateOne) AddTopics(t ...*Topic) *QuestionUpdateOne {
	ids := make([]string, len(t))
	for i := range t {
		ids[i] = t[i].ID
	}
	return quo.AddTopicIDs(ids...)
}

// Mutation returns the QuestionMutation object of the builder.
func (quo *QuestionUpdateOne) Mutation() *QuestionMutation {
	return quo.mutation
}

// ClearOptions clears all "options" edges to the AnswerOption entity.
func (quo *QuestionUpdateOne) ClearOptions() *QuestionUpdateOne {
	quo.mutation.ClearOptions()
	return quo
}

// RemoveOptionIDs removes the "options" edge to AnswerOption entities by IDs.
func (quo *QuestionUpdateOne) RemoveOptionIDs(ids ...string) *QuestionUpdateOne {
	quo.mutation.RemoveOptionIDs(ids...)
	return quo
}

// RemoveOptions removes "options" edges to AnswerOption entities.
func (quo *QuestionUpdateOne) RemoveOptions(a ...*AnswerOption) *QuestionUpdateOne {
	ids := make([]string, len(a))
	for i := range a {
		ids[i] = a[i].ID
	}
	return quo.RemoveOptionIDs(ids...)
}

// ClearTopics clears all "topics" edges to the Topic entity.
func (quo *QuestionUpdateOne) ClearTopics() *QuestionUpdateOne {
	quo.mutation.ClearTopics()
	return quo
}

// RemoveTopicIDs removes the "topics" edge to Topic entities by IDs.
func (quo *QuestionUpdateOne) RemoveTopicIDs(ids ...string) *QuestionUpdateOne {
	quo.mutation.RemoveTopicIDs(ids...)
	return quo
}

// RemoveTopics removes "topics" edges to Topic entities.
func (quo *QuestionUpdateOne) RemoveTopics(t ...*Topic) *QuestionUpdateOne {
	ids := make([]string, len(t))
	for i := range t {
		ids[i] = t[i].ID
	}
	return quo.RemoveTopicIDs(ids...)
}

// Where appends a list predicates to the QuestionUpdate builder.
func (quo *QuestionUpdateOne) Where(ps ...predicate.Question) *QuestionUpdateOne {
	quo.mutation.Where(ps...)
	return quo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (quo *QuestionUpdateOne) Select(field string, fields ...string) *QuestionUpdateOne {
	quo.fields = append([]string{field}, fields...)
	return quo
}

// Save executes the query and returns the updated Question entity.
func (quo *QuestionUpdateOne) Save(ctx context.Context) (*Question, error) {
	return withHooks(ctx, quo.sqlSave, quo.mutation, quo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (quo *QuestionUpdateOne) SaveX(ctx context.Context) *Question {
	node, err := quo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (quo *QuestionUpdateOne) Exec(ctx context.Context) error {
	_, err := quo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (quo *QuestionUpdateOne) ExecX(ctx context.Context) {
	if err := quo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (quo *QuestionUpdateOne) check() error {
	if v, ok := quo.mutation.ExamID(); ok {
		if err := question.ExamIDValidator(v); err != nil {
			return &ValidationError{Name: "exam_id", err: fmt.Errorf(`ent: validator failed for field "Question.exam_id": %w`, err)}
		}
	}
	if v, ok := quo.mutation.Text(); ok {
		if err := question.TextValidator(v); err != nil {
			return &ValidationError{Name: "text", err: fmt.Errorf(`ent: validator failed for field "Question.text": %w`, err)}
		}
	}
	if v, ok := quo.mutation.QuestionType(); ok {
		if err := question.QuestionTypeValidator(v); err != nil {
			return &ValidationError{Name: "question_type", err: fmt.Errorf(`ent: validator failed for field "Question.question_type": %w`, err)}
		}
	}
	if v, ok := quo.mutation.ChooseCount(); ok {
		if err := question.ChooseCountValidator(v); err != nil {
			return &ValidationError{Name: "choose_count", err: fmt.Errorf(`ent: validator failed for field "Question.choose_count": %w`, err)}
		}
	}
	return nil
}

func (quo *QuestionUpdateOne) sqlSave(ctx context.Context) (_node *Question, err error) {
	if err := quo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(question.Table, question.Columns, sqlgraph.NewFieldSpec(question.FieldID, field.TypeString))
	id, ok := quo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Question.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := quo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, question.FieldID)
		for _, f := range fields {
			if !question.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != question.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := quo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := quo.mutation.ExamID(); ok {
		_spec.SetField(question.FieldExamID, field.TypeString, value)
	}
	if value, ok := quo.mutation.Text(); ok {
		_spec.SetField(question.FieldText, field.TypeString, value)
	}
	if value, ok := quo.mutation.QuestionType(); ok {
		_spec.SetField(question.FieldQuestionType, field.TypeString, value)
	}
	if value, ok := quo.mutation.ChooseCount(); ok {
		_spec.SetField(question.FieldChooseCount, field.TypeInt, value)
	}
	if value, ok := quo.mutation.AddedChooseCount(); ok {
		_spec.AddField(question.FieldChooseCount, field.TypeInt, value)
	}
	if value, ok := quo.mutation.Difficulty(); ok {
		_spec.SetField(question.FieldDifficulty, field.TypeString, value)
	}
	if value, ok := quo.mutation.Explanation(); ok {
		_spec.SetField(question.FieldExplanation, field.TypeString, value)
	}
	if value, ok := quo.mutation.Source(); ok {
		_spec.SetField(question.FieldSource, field.TypeString, value)
	}
	if value, ok := quo.mutation.PatternTags(); ok {
		_spec.SetField(question.FieldPatternTags, field.TypeJSON, value)
	}
	if value, ok := quo.mutation.AppendedPatternTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, question.FieldPatternTags, value)
		})
	}
	if quo.mutation.PatternTagsCleared() {
		_spec.ClearField(question.FieldPatternTags, field.TypeJSON)
	}
	if quo.mutation.OptionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   question.OptionsTable,
			Columns: []string{question.OptionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(answeroption.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := quo.mutation.RemovedOptionsIDs(); len(nodes) > 0 && !quo.mutation.OptionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   question.OptionsTable,
			Columns: []string{question.OptionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(answeroption.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := quo.mutation.OptionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   question.OptionsTable,
			Columns: []string{question.OptionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(answeroption.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if quo.mutation.TopicsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   question.TopicsTable,
			Columns: question.TopicsPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(topic.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := quo.mutation.RemovedTopicsIDs(); len(nodes) > 0 && !quo.mutation.TopicsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   question.TopicsTable,
			Columns: question.TopicsPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(topic.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := quo.mutation.TopicsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   question.TopicsTable,
			Columns: question.TopicsPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(topic.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Question{config: quo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, quo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{question.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	quo.mutation.done = true
	return _node, nil
}
