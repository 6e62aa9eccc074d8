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
)

// AnswerOptionCreate is the builder for creating a AnswerOption entity.
type AnswerOptionCreate struct {
	config
	mutation *AnswerOptionMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (aoc *AnswerOptionCreate) SetCreatedAt(t time.Time) *AnswerOptionCreate {
	aoc.mutation.SetCreatedAt(t)
	return aoc
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (aoc *AnswerOptionCreate) SetNillableCreatedAt(t *time.Time) *AnswerOptionCreate {
	if t != nil {
		aoc.SetCreatedAt(*t)
	}
	return aoc
}

// SetQuestionID sets the "question_id" field.
func (aoc *AnswerOptionCreate) SetQuestionID(s string) *AnswerOptionCreate {
	aoc.mutation.SetQuestionID(s)
	return aoc
}

// SetText sets the "text" field.
func (aoc *AnswerOptionCreate) SetText(s string) *AnswerOptionCreate {
	aoc.mutation.SetText(s)
	return aoc
}

// SetIsCorrect sets the "is_correct" field.
func (aoc *AnswerOptionCreate) SetIsCorrect(b bool) *AnswerOptionCreate {
	aoc.mutation.SetIsCorrect(b)
	return aoc
}

// SetNillableIsCorrect sets the "is_correct" field if the given value is not nil.
func (aoc *AnswerOptionCreate) SetNillableIsCorrect(b *bool) *AnswerOptionCreate {
	if b != nil {
		aoc.SetIsCorrect(*b)
	}
	return aoc
}

// SetDistractorReason sets the "distractor_reason" field.
func (aoc *AnswerOptionCreate) SetDistractorReason(s string) *AnswerOptionCreate {
	aoc.mutation.SetDistractorReason(s)
	return aoc
}

// SetNillableDistractorReason sets the "distractor_reason" field if the given value is not nil.
func (aoc *AnswerOptionCreate) SetNillableDistractorReason(s *string) *AnswerOptionCreate {
	if s != nil {
		aoc.SetDistractorReason(*s)
	}
	return aoc
}

// SetPosition sets the "position" field.
func (aoc *AnswerOptionCreate) SetPosition(i int) *AnswerOptionCreate {
	aoc.mutation.SetPosition(i)
	return aoc
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (aoc *AnswerOptionCreate) SetNillablePosition(i *int) *AnswerOptionCreate {
	if i != nil {
		aoc.SetPosition(*i)
	}
	return aoc
}

// SetID sets the "id" field.
func (aoc *AnswerOptionCreate) SetID(s string) *AnswerOptionCreate {
	aoc.mutation.SetID(s)
	return aoc
}

// SetNillableID sets the "id" field if the given value is not nil.
func (aoc *AnswerOptionCreate) SetNillableID(s *string) *AnswerOptionCreate {
	if s != nil {
		aoc.SetID(*s)
	}
	return aoc
}

// SetQuestion sets the "question" edge to the Question entity.
func (aoc *AnswerOptionCreate) SetQuestion(q *Question) *AnswerOptionCreate {
	return aoc.SetQuestionID(q.ID)
}

// Mutation returns the AnswerOptionMutation object of the builder.
func (aoc *AnswerOptionCreate) Mutation() *AnswerOptionMutation {
	return aoc.mutation
}

// Save creates the AnswerOption in the database.
func (aoc *AnswerOptionCreate) Save(ctx context.Context) (*AnswerOption, error) {
	aoc.defaults()
	return withHooks(ctx, aoc.sqlSave, aoc.mutation, aoc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (aoc *AnswerOptionCreate) SaveX(ctx context.Context) *AnswerOption {
	v, err := aoc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (aoc *AnswerOptionCreate) Exec(ctx context.Context) error {
	_, err := aoc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (aoc *AnswerOptionCreate) ExecX(ctx context.Context) {
	if err := aoc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (aoc *AnswerOptionCreate) defaults() {
	if _, ok := aoc.mutation.CreatedAt(); !ok {
		v := answeroption.DefaultCreatedAt()
		aoc.mutation.SetCreatedAt(v)
	}
	if _, ok := aoc.mutation.IsCorrect(); !ok {
		v := answeroption.DefaultIsCorrect
		aoc.mutation.SetIsCorrect(v)
	}
	if _, ok := aoc.mutation.DistractorReason(); !ok {
		v := answeroption.DefaultDistractorReason
		aoc.mutation.SetDistractorReason(v)
	}
	if _, ok := aoc.mutation.Position(); !ok {
		v := answeroption.DefaultPosition
		aoc.mutation.SetPosition(v)
	}
	if _, ok := aoc.mutation.ID(); !ok {
		v := answeroption.DefaultID()
		aoc.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (aoc *AnswerOptionCreate) check() error {
	if _, ok := aoc.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "AnswerOption.created_at"`)}
	}
	if _, ok := aoc.mutation.QuestionID(); !ok {
		return &ValidationError{Name: "question_id", err: errors.New(`ent: missing required field "AnswerOption.question_id"`)}
	}
	if v, ok := aoc.mutation.QuestionID(); ok {
		if err := answeroption.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "AnswerOption.question_id": %w`, err)}
		}
	}
	if _, ok := aoc.mutation.Text(); !ok {
		return &ValidationError{Name: "text", err: errors.New(`ent: missing required field "AnswerOption.text"`)}
	}
	if v, ok := aoc.mutation.Text(); ok {
		if err := answeroption.TextValidator(v); err != nil {
			return &ValidationError{Name: "text", err: fmt.Errorf(`ent: validator failed for field "AnswerOption.text": %w`, err)}
		}
	}
	if _, ok := aoc.mutation.IsCorrect(); !ok {
		return &ValidationError{Name: "is_correct", err: errors.New(`ent: missing required field "AnswerOption.is_correct"`)}
	}
	if _, ok := aoc.mutation.DistractorReason(); !ok {
		return &ValidationError{Name: "distractor_reason", err: errors.New(`ent: missing required field "AnswerOption.distractor_reason"`)}
	}
	if _, ok := aoc.mutation.Position(); !ok {
		return &ValidationError{Name: "position", err: errors.New(`ent: missing required field "AnswerOption.position"`)}
	}
	if len(aoc.mutation.QuestionIDs()) == 0 {
		return &ValidationError{Name: "question", err: errors.New(`ent: missing required edge "AnswerOption.question"`)}
	}
	return nil
}

func (aoc *AnswerOptionCreate) sqlSave(ctx context.Context) (*AnswerOption, error) {
	if err := aoc.check(); err != nil {
		return nil, err
	}
	_node, _spec := aoc.createSpec()
	if err := sqlgraph.CreateNode(ctx, aoc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected AnswerOption.ID type: %T", _spec.ID.Value)
		}
	}
	aoc.mutation.id = &_node.ID
	aoc.mutation.done = true
	return _node, nil
}

func (aoc *AnswerOptionCreate) createSpec() (*AnswerOption, *sqlgraph.CreateSpec) {
	var (
		_node = &AnswerOption{config: aoc.config}
		_spec = sqlgraph.NewCreateSpec(answeroption.Table, sqlgraph.NewFieldSpec(answeroption.FieldID, field.TypeString))
	)
	if id, ok := aoc.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := aoc.mutation.CreatedAt(); ok {
		_spec.SetField(answeroption.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := aoc.mutation.Text(); ok {
		_spec.SetField(answeroption.FieldText, field.TypeString, value)
		_node.Text = value
	}
	if value, ok := aoc.mutation.IsCorrect(); ok {
		_spec.SetField(answeroption.FieldIsCorrect, field.TypeBool, value)
		_node.IsCorrect = value
	}
	if value, ok := aoc.mutation.DistractorReason(); ok {
		_spec.SetField(answeroption.FieldDistractorReason, field.TypeString, value)
		_node.DistractorReason = value
	}
	if value, ok := aoc.mutation.Position(); ok {
		_spec.SetField(answeroption.FieldPosition, field.TypeInt, value)
		_node.Position = value
	}
	if nodes := aoc.mutation.QuestionIDs(); len(nodes) > 0 {
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
		_node.QuestionID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// AnswerOptionCreateBulk is the builder for creating many AnswerOption entities in bulk.
type AnswerOptionCreateBulk struct {
	config
	err      error
	builders []*AnswerOptionCreate
}

// Save creates the AnswerOption entities in the database.
func (aocb *AnswerOptionCreateBulk) Save(ctx context.Context) ([]*AnswerOption, error) {
	if aocb.err != nil {
		return nil, aocb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(aocb.builders))
	nodes := make([]*AnswerOption, len(aocb.builders))
	mutators := make([]Mutator, len(aocb.builders))
	for i := range aocb.builders {
		func(i int, root context.Context) {
			builder := aocb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AnswerOptionMutation)
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
					_, err = mutators[i+1].Mutate(root, aocb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, aocb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, aocb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (aocb *AnswerOptionCreateBulk) SaveX(ctx context.Context) []*AnswerOption {
	v, err := aocb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (aocb *AnswerOptionCreateBulk) Exec(ctx context.Context) error {
	_, err := aocb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (aocb *AnswerOptionCreateBulk) ExecX(ctx context.Context) {
	if err := aocb.Exec(ctx); err != nil {
		panic(err)
	}
}
