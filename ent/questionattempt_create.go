// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/jfarleigh/certrun/ent/questionattempt"
)

// QuestionAttemptCreate is the builder for creating a QuestionAttempt entity.
type QuestionAttemptCreate struct {
	config
	mutation *QuestionAttemptMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (qac *QuestionAttemptCreate) SetCreatedAt(t time.Time) *QuestionAttemptCreate {
	qac.mutation.SetCreatedAt(t)
	return qac
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (qac *QuestionAttemptCreate) SetNillableCreatedAt(t *time.Time) *QuestionAttemptCreate {
	if t != nil {
		qac.SetCreatedAt(*t)
	}
	return qac
}

// SetSessionID sets the "session_id" field.
func (qac *QuestionAttemptCreate) SetSessionID(s string) *QuestionAttemptCreate {
	qac.mutation.SetSessionID(s)
	return qac
}

// SetQuestionID sets the "question_id" field.
func (qac *QuestionAttemptCreate) SetQuestionID(s string) *QuestionAttemptCreate {
	qac.mutation.SetQuestionID(s)
	return qac
}

// SetIsCorrect sets the "is_correct" field.
func (qac *QuestionAttemptCreate) SetIsCorrect(b bool) *QuestionAttemptCreate {
	qac.mutation.SetIsCorrect(b)
	return qac
}

// SetElapsedSeconds sets the "elapsed_seconds" field.
func (qac *QuestionAttemptCreate) SetElapsedSeconds(f float64) *QuestionAttemptCreate {
	qac.mutation.SetElapsedSeconds(f)
	return qac
}

// SetNillableElapsedSeconds sets the "elapsed_seconds" field if the given value is not nil.
func (qac *QuestionAttemptCreate) SetNillableElapsedSeconds(f *float64) *QuestionAttemptCreate {
	if f != nil {
		qac.SetElapsedSeconds(*f)
	}
	return qac
}

// SetSubmittedOptions sets the "submitted_options" field.
func (qac *QuestionAttemptCreate) SetSubmittedOptions(s []string) *QuestionAttemptCreate {
	qac.mutation.SetSubmittedOptions(s)
	return qac
}

// SetID sets the "id" field.
func (qac *QuestionAttemptCreate) SetID(s string) *QuestionAttemptCreate {
	qac.mutation.SetID(s)
	return qac
}

// SetNillableID sets the "id" field if the given value is not nil.
func (qac *QuestionAttemptCreate) SetNillableID(s *string) *QuestionAttemptCreate {
	if s != nil {
		qac.SetID(*s)
	}
	return qac
}

// Mutation returns the QuestionAttemptMutation object of the builder.
func (qac *QuestionAttemptCreate) Mutation() *QuestionAttemptMutation {
	return qac.mutation
}

// Save creates the QuestionAttempt in the database.
func (qac *QuestionAttemptCreate) Save(ctx context.Context) (*QuestionAttempt, error) {
	qac.defaults()
	return withHooks(ctx, qac.sqlSave, qac.mutation, qac.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (qac *QuestionAttemptCreate) SaveX(ctx context.Context) *QuestionAttempt {
	v, err := qac.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (qac *QuestionAttemptCreate) Exec(ctx context.Context) error {
	_, err := qac.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (qac *QuestionAttemptCreate) ExecX(ctx context.Context) {
	if err := qac.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (qac *QuestionAttemptCreate) defaults() {
	if _, ok := qac.mutation.CreatedAt(); !ok {
		v := questionattempt.DefaultCreatedAt()
		qac.mutation.SetCreatedAt(v)
	}
	if _, ok := qac.mutation.ElapsedSeconds(); !ok {
		v := questionattempt.DefaultElapsedSeconds
		qac.mutation.SetElapsedSeconds(v)
	}
	if _, ok := qac.mutation.ID(); !ok {
		v := questionattempt.DefaultID()
		qac.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (qac *QuestionAttemptCreate) check() error {
	if _, ok := qac.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "QuestionAttempt.created_at"`)}
	}
	if _, ok := qac.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "QuestionAttempt.session_id"`)}
	}
	if v, ok := qac.mutation.SessionID(); ok {
		if err := questionattempt.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "QuestionAttempt.session_id": %w`, err)}
		}
	}
	if _, ok := qac.mutation.QuestionID(); !ok {
		return &ValidationError{Name: "question_id", err: errors.New(`ent: missing required field "QuestionAttempt.question_id"`)}
	}
	if v, ok := qac.mutation.QuestionID(); ok {
		if err := questionattempt.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "QuestionAttempt.question_id": %w`, err)}
		}
	}
	if _, ok := qac.mutation.IsCorrect(); !ok {
		return &ValidationError{Name: "is_correct", err: errors.New(`ent: missing required field "QuestionAttempt.is_correct"`)}
	}
	if _, ok := qac.mutation.ElapsedSeconds(); !ok {
		return &ValidationError{Name: "elapsed_seconds", err: errors.New(`ent: missing required field "QuestionAttempt.elapsed_seconds"`)}
	}
	if v, ok := qac.mutation.ElapsedSeconds(); ok {
		if err := questionattempt.ElapsedSecondsValidator(v); err != nil {
			return &ValidationError{Name: "elapsed_seconds", err: fmt.Errorf(`ent: validator failed for field "QuestionAttempt.elapsed_seconds": %w`, err)}
		}
	}
	return nil
}

func (qac *QuestionAttemptCreate) sqlSave(ctx context.Context) (*QuestionAttempt, error) {
	if err := qac.check(); err != nil {
		return nil, err
	}
	_node, _spec := qac.createSpec()
	if err := sqlgraph.CreateNode(ctx, qac.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected QuestionAttempt.ID type: %T", _spec.ID.Value)
		}
	}
	qac.mutation.id = &_node.ID
	qac.mutation.done = true
	return _node, nil
}

func (qac *QuestionAttemptCreate) createSpec() (*QuestionAttempt, *sqlgraph.CreateSpec) {
	var (
		_node = &QuestionAttempt{config: qac.config}
		_spec = sqlgraph.NewCreateSpec(questionattempt.Table, sqlgraph.NewFieldSpec(questionattempt.FieldID, field.TypeString))
	)
	if id, ok := qac.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := qac.mutation.CreatedAt(); ok {
		_spec.SetField(questionattempt.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := qac.mutation.SessionID(); ok {
		_spec.SetField(questionattempt.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := qac.mutation.QuestionID(); ok {
		_spec.SetField(questionattempt.FieldQuestionID, field.TypeString, value)
		_node.QuestionID = value
	}
	if value, ok := qac.mutation.IsCorrect(); ok {
		_spec.SetField(questionattempt.FieldIsCorrect, field.TypeBool, value)
		_node.IsCorrect = value
	}
	if value, ok := qac.mutation.ElapsedSeconds(); ok {
		_spec.SetField(questionattempt.FieldElapsedSeconds, field.TypeFloat64, value)
		_node.ElapsedSeconds = value
	}
	if value, ok := qac.mutation.SubmittedOptions(); ok {
		_spec.SetField(questionattempt.FieldSubmittedOptions, field.TypeJSON, value)
		_node.SubmittedOptions = value
	}
	return _node, _spec
}

// QuestionAttemptCreateBulk is the builder for creating many QuestionAttempt entities in bulk.
type QuestionAttemptCreateBulk struct {
	config
	err      error
	builders []*QuestionAttemptCreate
}

// Save creates the QuestionAttempt entities in the database.
func (qacb *QuestionAttemptCreateBulk) Save(ctx context.Context) ([]*QuestionAttempt, error) {
	if qacb.err != nil {
		return nil, qacb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(qacb.builders))
	nodes := make([]*QuestionAttempt, len(qacb.builders))
	mutators := make([]Mutator, len(qacb.builders))
	for i := range qacb.builders {
		func(i int, root context.Context) {
			builder := qacb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*QuestionAttemptMutation)
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
					_, err = mutators[i+1].Mutate(root, qacb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, qacb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, qacb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (qacb *QuestionAttemptCreateBulk) SaveX(ctx context.Context) []*QuestionAttempt {
	v, err := qacb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (qacb *QuestionAttemptCreateBulk) Exec(ctx context.Context) error {
	_, err := qacb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (qacb *QuestionAttemptCreateBulk) ExecX(ctx context.Context) {
	if err := qacb.Exec(ctx); err != nil {
		panic(err)
	}
}
