// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/jfarleigh/certrun/ent/answeroption"
	"github.com/jfarleigh/certrun/ent/question"
	"github.com/jfarleigh/certrun/ent/topic"
)

// QuestionCreate is the builder for creating a Question entity.
type QuestionCreate struct {
	config
	mutation *QuestionMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (qc *QuestionCreate) SetCreatedAt(t time.Time) *QuestionCreate {
	qc.mutation.SetCreatedAt(t)
	return qc
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (qc *QuestionCreate) SetNillableCreatedAt(t *time.Time) *QuestionCreate {
	if t != nil {
		qc.SetCreatedAt(*t)
	}
	return qc
}

// SetExamID sets the "exam_id" field.
func (qc *QuestionCreate) SetExamID(s string) *QuestionCreate {
	qc.mutation.SetExamID(s)
	return qc
}

// SetText sets the "text" field.
func (qc *QuestionCreate) SetText(s string) *QuestionCreate {
	qc.mutation.SetText(s)
	return qc
}

// SetQuestionType sets the "question_type" field.
func (qc *QuestionCreate) SetQuestionType(s string) *QuestionCreate {
	qc.mutation.SetQuestionType(s)
	return qc
}

// SetChooseCount sets the "choose_count" field.
func (qc *QuestionCreate) SetChooseCount(i int) *QuestionCreate {
	qc.mutation.SetChooseCount(i)
	return qc
}

// SetNillableChooseCount sets the "choose_count" field if the given value is not nil.
func (qc *QuestionCreate) SetNillableChooseCount(i *int) *QuestionCreate {
	if i != nil {
		qc.SetChooseCount(*i)
	}
	return qc
}

// SetDifficulty sets the "difficulty" field.
func (qc *QuestionCreate) SetDifficulty(s string) *QuestionCreate {
	qc.mutation.SetDifficulty(s)
	return qc
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (qc *QuestionCreate) SetNillableDifficulty(s *string) *QuestionCreate {
	if s != nil {
		qc.SetDifficulty(*s)
	}
	return qc
}

// SetExplanation sets the "explanation" field.
func (qc *QuestionCreate) SetExplanation(s string) *QuestionCreate {
	qc.mutation.SetExplanation(s)
	return qc
}

// SetNillableExplanation sets the "explanation" field if the given value is not nil.
func (qc *QuestionCreate) SetNillableExplanation(s *string) *QuestionCreate {
	if s != nil {
		qc.SetExplanation(*s)
	}
	return qc
}

// SetSource sets the "source" field.
func (qc *QuestionCreate) SetSource(s string) *QuestionCreate {
	qc.mutation.SetSource(s)
	return qc
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (qc *QuestionCreate) SetNillableSource(s *string) *QuestionCreate {
	if s != nil {
		qc.SetSource(*s)
	}
	return qc
}

// SetPatternTags sets the "pattern_tags" field.
func (qc *QuestionCreate) SetPatternTags(s []string) *QuestionCreate {
	qc.mutation.SetPatternTags(s)
	return qc
}

// SetID sets the "id" field.
func (qc *QuestionCreate) SetID(s string) *QuestionCreate {
	qc.mutation.SetID(s)
	return qc
}

// SetNillableID sets the "id" field if the given value is not nil.
func (qc *QuestionCreate) SetNillableID(s *string) *QuestionCreate {
	if s != nil {
		qc.SetID(*s)
	}
	return qc
}

// AddOptionIDs adds the "options" edge to the AnswerOption entity by IDs.
func (qc *QuestionCreate) AddOptionIDs(ids ...string) *QuestionCreate {
	qc.mutation.AddOptionIDs(ids...)
	return qc
}

// AddOptions adds the "options" edges to the AnswerOption entity.
func (qc *QuestionCreate) AddOptions(a ...*AnswerOption) *QuestionCreate {
	ids := make([]string, len(a))
	for i := range a {
		ids[i] = a[i].ID
	}
	return qc.AddOptionIDs(ids...)
}

// AddTopicIDs adds the "topics" edge to the Topic entity by IDs.
func (qc *QuestionCreate) AddTopicIDs(ids ...string) *QuestionCreate {
	qc.mutation.AddTopicIDs(ids...)
	return qc
}

// AddTopics adds the "topics" edges to the Topic entity.
func (qc *QuestionCreate) AddTopics(t ...*Topic) *QuestionCreate {
	ids := make([]string, len(t))
	for i := range t {
		ids[i] = t[i].ID
	}
	return qc.AddTopicIDs(ids...)
}

// Mutation returns the QuestionMutation object of the builder.
func (qc *QuestionCreate) Mutation() *QuestionMutation {
	return qc.mutation
}

// Save creates the Question in the database.
func (qc *QuestionCreate) Save(ctx context.Context) (*Question, error) {
	qc.defaults()
	return withHooks(ctx, qc.sqlSave, qc.mutation, qc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (qc *QuestionCreate) SaveX(ctx context.Context) *Question {
	v, err := qc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (qc *QuestionCreate) Exec(ctx context.Context) error {
	_, err := qc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (qc *QuestionCreate) ExecX(ctx context.Context) {
	if err := qc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (qc *QuestionCreate) defaults() {
	if _, ok := qc.mutation.CreatedAt(); !ok {
		v := question.DefaultCreatedAt()
		qc.mutation.SetCreatedAt(v)
	}
	if _, ok := qc.mutation.ChooseCount(); !ok {
		v := question.DefaultChooseCount
		qc.mutation.SetChooseCount(v)
	}
	if _, ok := qc.mutation.Difficulty(); !ok {
		v := question.DefaultDifficulty
		qc.mutation.SetDifficulty(v)
	}
	if _, ok := qc.mutation.Explanation(); !ok {
		v := question.DefaultExplanation
		qc.mutation.SetExplanation(v)
	}
	if _, ok := qc.mutation.Source(); !ok {
		v := question.DefaultSource
		qc.mutation.SetSource(v)
	}
	if _, ok := qc.mutation.ID(); !ok {
		v := question.DefaultID()
		qc.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (qc *QuestionCreate) check() error {
	if _, ok := qc.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Question.created_at"`)}
	}
	if _, ok := qc.mutation.ExamID(); !ok {
		return &ValidationError{Name: "exam_id", err: errors.New(`ent: missing required field "Question.exam_id"`)}
	}
	if v, ok := qc.mutation.ExamID(); ok {
		if err := question.ExamIDValidator(v); err != nil {
			return &ValidationError{Name: "exam_id", err: fmt.Errorf(`ent: validator failed for field "Question.exam_id": %w`, err)}
		}
	}
	if _, ok := qc.mutation.Text(); !ok {
		return &ValidationError{Name: "text", err: errors.New(`ent: missing required field "Question.text"`)}
	}
	if v, ok := qc.mutation.Text(); ok {
		if err := question.TextValidator(v); err != nil {
			return &ValidationError{Name: "text", err: fmt.Errorf(`ent: validator failed for field "Question.text": %w`, err)}
		}
	}
	if _, ok := qc.mutation.QuestionType(); !ok {
		return &ValidationError{Name: "question_type", err: errors.New(`ent: missing required field "Question.question_type"`)}
	}
	if v, ok := qc.mutation.QuestionType(); ok {
		if err := question.QuestionTypeValidator(v); err != nil {
			return &ValidationError{Name: "question_type", err: fmt.Errorf(`ent: validator failed for field "Question.question_type": %w`, err)}
		}
	}
	if _, ok := qc.mutation.ChooseCount(); !ok {
		return &ValidationError{Name: "choose_count", err: errors.New(`ent: missing required field "Question.choose_count"`)}
	}
	if v, ok := qc.mutation.ChooseCount(); ok {
		if err := question.ChooseCountValidator(v); err != nil {
			return &ValidationError{Name: "choose_count", err: fmt.Errorf(`ent: validator failed for field "Question.choose_count": %w`, err)}
		}
	}
	if _, ok := qc.mutation.Difficulty(); !ok {
		return &ValidationError{Name: "difficulty", err: errors.New(`ent: missing required field "Question.difficulty"`)}
	}
	if _, ok := qc.mutation.Explanation(); !ok {
		return &ValidationError{Name: "explanation", err: errors.New(`ent: missing required field "Question.explanation"`)}
	}
	if _, ok := qc.mutation.Source(); !ok {
		return &ValidationError{Name: "source", err: errors.New(`ent: missing required field "Question.source"`)}
	}
	return nil
}

func (qc *QuestionCreate) sqlSave(ctx context.Context) (*Question, error) {
	if err := qc.check(); err != nil {
		return nil, err
	}
	_node, _spec := qc.createSpec()
	if err := sqlgraph.CreateNode(ctx, qc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Question.ID type: %T", _spec.ID.Value)
		}
	}
	qc.mutation.id = &_node.ID
	qc.mutation.done = true
	return _node, nil
}

func (qc *QuestionCreate) createSpec() (*Question, *sqlgraph.CreateSpec) {
	var (
		_node = &Question{config: qc.config}
		_spec = sqlgraph.NewCreateSpec(question.Table, sqlgraph.NewFieldSpec(question.FieldID, field.TypeString))
	)
	if id, ok := qc.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := qc.mutation.CreatedAt(); ok {
		_spec.SetField(question.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := qc.mutation.ExamID(); ok {
		_spec.SetField(question.FieldExamID, field.TypeString, value)
		_node.ExamID = value
	}
	if value, ok := qc.mutation.Text(); ok {
		_spec.SetField(question.FieldText, field.TypeString, value)
		_node.Text = value
	}
	if value, ok := qc.mutation.QuestionType(); ok {
		_spec.SetField(question.FieldQuestionType, field.TypeString, value)
		_node.QuestionType = value
	}
	if value, ok := qc.mutation.ChooseCount(); ok {
		_spec.SetField(question.FieldChooseCount, field.TypeInt, value)
		_node.ChooseCount = value
	}
	if value, ok := qc.mutation.Difficulty(); ok {
		_spec.SetField(question.FieldDifficulty, field.TypeString, value)
		_node.Difficulty = value
	}
	if value, ok := qc.mutation.Explanation(); ok {
		_spec.SetField(question.FieldExplanation, field.TypeString, value)
		_node.Explanation = value
	}
	if value, ok := qc.mutation.Source(); ok {
		_spec.SetField(question.FieldSource, field.TypeString, value)
		_node.Source = value
	}
	if value, ok := qc.mutation.PatternTags(); ok {
		_spec.SetField(question.FieldPatternTags, field.TypeJSON, value)
		_node.PatternTags = value
	}
	if nodes := qc.mutation.OptionsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := qc.mutation.TopicsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// QuestionCreateBulk is the builder for creating many Question entities in bulk.
type QuestionCreateBulk struct {
	config
	err      error
	builders []*QuestionCreate
}

// Save creates the Question entities in the database.
func (qcb *QuestionCreateBulk) Save(ctx context.Context) ([]*Question, error) {
	if qcb.err != nil {
		return nil, qcb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(qcb.builders))
	nodes := make([]*Question, len(qcb.builders))
	mutators := make([]Mutator, len(qcb.builders))
	for i := range qcb.builders {
		func(i int, root context.Context) {
			builder := qcb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*QuestionMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, qcb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, qcb.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, qcb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (qcb *QuestionCreateBulk) SaveX(ctx context.Context) []*Question {
	v, err := qcb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (qcb *QuestionCreateBulk) Exec(ctx context.Context) error {
	_, err := qcb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (qcb *QuestionCreateBulk) ExecX(ctx context.Context) {
	if err := qcb.Exec(ctx); err != nil {
		panic(err)
	}
}
