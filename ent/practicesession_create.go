// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/jfarleigh/certrun/ent/practicesession"
)

// PracticeSessionCreate is the builder for creating a PracticeSession entity.
type PracticeSessionCreate struct {
	config
	mutation *PracticeSessionMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (psc *PracticeSessionCreate) SetCreatedAt(t time.Time) *PracticeSessionCreate {
	psc.mutation.SetCreatedAt(t)
	return psc
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (psc *PracticeSessionCreate) SetNillableCreatedAt(t *time.Time) *PracticeSessionCreate {
	if t != nil {
		psc.SetCreatedAt(*t)
	}
	return psc
}

// SetExamID sets the "exam_id" field.
func (psc *PracticeSessionCreate) SetExamID(s string) *PracticeSessionCreate {
	psc.mutation.SetExamID(s)
	return psc
}

// SetTopicID sets the "topic_id" field.
func (psc *PracticeSessionCreate) SetTopicID(s string) *PracticeSessionCreate {
	psc.mutation.SetTopicID(s)
	return psc
}

// SetNillableTopicID sets the "topic_id" field if the given value is not nil.
func (psc *PracticeSessionCreate) SetNillableTopicID(s *string) *PracticeSessionCreate {
	if s != nil {
		psc.SetTopicID(*s)
	}
	return psc
}

// SetMode sets the "mode" field.
func (psc *PracticeSessionCreate) SetMode(s string) *PracticeSessionCreate {
	psc.mutation.SetMode(s)
	return psc
}

// SetQuestions sets the "questions" field.
func (psc *PracticeSessionCreate) SetQuestions(s []string) *PracticeSessionCreate {
	psc.mutation.SetQuestions(s)
	return psc
}

// SetSelectionSeed sets the "selection_seed" field.
func (psc *PracticeSessionCreate) SetSelectionSeed(i int64) *PracticeSessionCreate {
	psc.mutation.SetSelectionSeed(i)
	return psc
}

// SetNillableSelectionSeed sets the "selection_seed" field if the given value is not nil.
func (psc *PracticeSessionCreate) SetNillableSelectionSeed(i *int64) *PracticeSessionCreate {
	if i != nil {
		psc.SetSelectionSeed(*i)
	}
	return psc
}

// SetStatus sets the "status" field.
func (psc *PracticeSessionCreate) SetStatus(s string) *PracticeSessionCreate {
	psc.mutation.SetStatus(s)
	return psc
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (psc *PracticeSessionCreate) SetNillableStatus(s *string) *PracticeSessionCreate {
	if s != nil {
		psc.SetStatus(*s)
	}
	return psc
}

// SetEndedAt sets the "ended_at" field.
func (psc *PracticeSessionCreate) SetEndedAt(t time.Time) *PracticeSessionCreate {
	psc.mutation.SetEndedAt(t)
	return psc
}

// SetNillableEndedAt sets the "ended_at" field if the given value is not nil.
func (psc *PracticeSessionCreate) SetNillableEndedAt(t *time.Time) *PracticeSessionCreate {
	if t != nil {
		psc.SetEndedAt(*t)
	}
	return psc
}

// SetID sets the "id" field.
func (psc *PracticeSessionCreate) SetID(s string) *PracticeSessionCreate {
	psc.mutation.SetID(s)
	return psc
}

// SetNillableID sets the "id" field if the given value is not nil.
func (psc *PracticeSessionCreate) SetNillableID(s *string) *PracticeSessionCreate {
	if s != nil {
		psc.SetID(*s)
	}
	return psc
}

// Mutation returns the PracticeSessionMutation object of the builder.
func (psc *PracticeSessionCreate) Mutation() *PracticeSessionMutation {
	return psc.mutation
}

// Save creates the PracticeSession in the database.
func (psc *PracticeSessionCreate) Save(ctx context.Context) (*PracticeSession, error) {
	psc.defaults()
	return withHooks(ctx, psc.sqlSave, psc.mutation, psc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (psc *PracticeSessionCreate) SaveX(ctx context.Context) *PracticeSession {
	v, err := psc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (psc *PracticeSessionCreate) Exec(ctx context.Context) error {
	_, err := psc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (psc *PracticeSessionCreate) ExecX(ctx context.Context) {
	if err := psc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (psc *PracticeSessionCreate) defaults() {
	if _, ok := psc.mutation.CreatedAt(); !ok {
		v := practicesession.DefaultCreatedAt()
		psc.mutation.SetCreatedAt(v)
	}
	if _, ok := psc.mutation.TopicID(); !ok {
		v := practicesession.DefaultTopicID
		psc.mutation.SetTopicID(v)
	}
	if _, ok := psc.mutation.SelectionSeed(); !ok {
		v := practicesession.DefaultSelectionSeed
		psc.mutation.SetSelectionSeed(v)
	}
	if _, ok := psc.mutation.Status(); !ok {
		v := practicesession.DefaultStatus
		psc.mutation.SetStatus(v)
	}
	if _, ok := psc.mutation.ID(); !ok {
		v := practicesession.DefaultID()
		psc.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (psc *PracticeSessionCreate) check() error {
	if _, ok := psc.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "PracticeSession.created_at"`)}
	}
	if _, ok := psc.mutation.ExamID(); !ok {
		return &ValidationError{Name: "exam_id", err: errors.New(`ent: missing required field "PracticeSession.exam_id"`)}
	}
	if v, ok := psc.mutation.ExamID(); ok {
		if err := practicesession.ExamIDValidator(v); err != nil {
			return &ValidationError{Name: "exam_id", err: fmt.Errorf(`ent: validator failed for field "PracticeSession.exam_id": %w`, err)}
		}
	}
	if _, ok := psc.mutation.TopicID(); !ok {
		return &ValidationError{Name: "topic_id", err: errors.New(`ent: missing required field "PracticeSession.topic_id"`)}
	}
	if _, ok := psc.mutation.Mode(); !ok {
		return &ValidationError{Name: "mode", err: errors.New(`ent: missing required field "PracticeSession.mode"`)}
	}
	if v, ok := psc.mutation.Mode(); ok {
		if err := practicesession.ModeValidator(v); err != nil {
			return &ValidationError{Name: "mode", err: fmt.Errorf(`ent: validator failed for field "PracticeSession.mode": %w`, err)}
		}
	}
	if _, ok := psc.mutation.Questions(); !ok {
		return &ValidationError{Name: "questions", err: errors.New(`ent: missing required field "PracticeSession.questions"`)}
	}
	if _, ok := psc.mutation.SelectionSeed(); !ok {
		return &ValidationError{Name: "selection_seed", err: errors.New(`ent: missing required field "PracticeSession.selection_seed"`)}
	}
	if _, ok := psc.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "PracticeSession.status"`)}
	}
	return nil
}

func (psc *PracticeSessionCreate) sqlSave(ctx context.Context) (*PracticeSession, error) {
	if err := psc.check(); err != nil {
		return nil, err
	}
	_node, _spec := psc.createSpec()
	if err := sqlgraph.CreateNode(ctx, psc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected PracticeSession.ID type: %T", _spec.ID.Value)
		}
	}
	psc.mutation.id = &_node.ID
	psc.mutation.done = true
	return _node, nil
}

func (psc *PracticeSessionCreate) createSpec() (*PracticeSession, *sqlgraph.CreateSpec) {
	var (
		_node = &PracticeSession{config: psc.config}
		_spec = sqlgraph.NewCreateSpec(practicesession.Table, sqlgraph.NewFieldSpec(practicesession.FieldID, field.TypeString))
	)
	if id, ok := psc.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := psc.mutation.CreatedAt(); ok {
		_spec.SetField(practicesession.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := psc.mutation.ExamID(); ok {
		_spec.SetField(practicesession.FieldExamID, field.TypeString, value)
		_node.ExamID = value
	}
	if value, ok := psc.mutation.TopicID(); ok {
		_spec.SetField(practicesession.FieldTopicID, field.TypeString, value)
		_node.TopicID = value
	}
	if value, ok := psc.mutation.Mode(); ok {
		_spec.SetField(practicesession.FieldMode, field.TypeString, value)
		_node.Mode = value
	}
	if value, ok := psc.mutation.Questions(); ok {
		_spec.SetField(practicesession.FieldQuestions, field.TypeJSON, value)
		_node.Questions = value
	}
	if value, ok := psc.mutation.SelectionSeed(); ok {
		_spec.SetField(practicesession.FieldSelectionSeed, field.TypeInt64, value)
		_node.SelectionSeed = value
	}
	if value, ok := psc.mutation.Status(); ok {
		_spec.SetField(practicesession.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := psc.mutation.EndedAt(); ok {
		_spec.SetField(practicesession.FieldEndedAt, field.TypeTime, value)
		_node.EndedAt = &value
	}
	return _node, _spec
}

// PracticeSessionCreateBulk is the builder for creating many PracticeSession entities in bulk.
type PracticeSessionCreateBulk struct {
	config
	err      error
	builders []*PracticeSessionCreate
}

// Save creates the PracticeSession entities in the database.
func (pscb *PracticeSessionCreateBulk) Save(ctx context.Context) ([]*PracticeSession, error) {
	if pscb.err != nil {
		return nil, pscb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(pscb.builders))
	nodes := make([]*PracticeSession, len(pscb.builders))
	mutators := make([]Mutator, len(pscb.builders))
	for i := range pscb.builders {
		func(i int, root context.Context) {
			builder := pscb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PracticeSessionMutation)
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
					_, err = mutators[i+1].Mutate(root, pscb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, pscb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, pscb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (pscb *PracticeSessionCreateBulk) SaveX(ctx context.Context) []*PracticeSession {
	v, err := pscb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (pscb *PracticeSessionCreateBulk) Exec(ctx context.Context) error {
	_, err := pscb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (pscb *PracticeSessionCreateBulk) ExecX(ctx context.Context) {
	if err := pscb.Exec(ctx); err != nil {
		panic(err)
	}
}
