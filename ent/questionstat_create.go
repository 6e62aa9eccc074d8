// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/jfarleigh/certrun/ent/questionstat"
)

// QuestionStatCreate is the builder for creating a QuestionStat entity.
type QuestionStatCreate struct {
	config
	mutation *QuestionStatMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (qsc *QuestionStatCreate) SetCreatedAt(t time.Time) *QuestionStatCreate {
	qsc.mutation.SetCreatedAt(t)
	return qsc
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (qsc *QuestionStatCreate) SetNillableCreatedAt(t *time.Time) *QuestionStatCreate {
	if t != nil {
		qsc.SetCreatedAt(*t)
	}
	return qsc
}

// SetQuestionID sets the "question_id" field.
func (qsc *QuestionStatCreate) SetQuestionID(s string) *QuestionStatCreate {
	qsc.mutation.SetQuestionID(s)
	return qsc
}

// SetAttemptCount sets the "attempt_count" field.
func (qsc *QuestionStatCreate) SetAttemptCount(i int) *QuestionStatCreate {
	qsc.mutation.SetAttemptCount(i)
	return qsc
}

// SetNillableAttemptCount sets the "attempt_count" field if the given value is not nil.
func (qsc *QuestionStatCreate) SetNillableAttemptCount(i *int) *QuestionStatCreate {
	if i != nil {
		qsc.SetAttemptCount(*i)
	}
	return qsc
}

// SetCorrectCount sets the "correct_count" field.
func (qsc *QuestionStatCreate) SetCorrectCount(i int) *QuestionStatCreate {
	qsc.mutation.SetCorrectCount(i)
	return qsc
}

// SetNillableCorrectCount sets the "correct_count" field if the given value is not nil.
func (qsc *QuestionStatCreate) SetNillableCorrectCount(i *int) *QuestionStatCreate {
	if i != nil {
		qsc.SetCorrectCount(*i)
	}
	return qsc
}

// SetTotalElapsedSeconds sets the "total_elapsed_seconds" field.
func (qsc *QuestionStatCreate) SetTotalElapsedSeconds(f float64) *QuestionStatCreate {
	qsc.mutation.SetTotalElapsedSeconds(f)
	return qsc
}

// SetNillableTotalElapsedSeconds sets the "total_elapsed_seconds" field if the given value is not nil.
func (qsc *QuestionStatCreate) SetNillableTotalElapsedSeconds(f *float64) *QuestionStatCreate {
	if f != nil {
		qsc.SetTotalElapsedSeconds(*f)
	}
	return qsc
}

// SetLastAttemptedAt sets the "last_attempted_at" field.
func (qsc *QuestionStatCreate) SetLastAttemptedAt(t time.Time) *QuestionStatCreate {
	qsc.mutation.SetLastAttemptedAt(t)
	return qsc
}

// SetNillableLastAttemptedAt sets the "last_attempted_at" field if the given value is not nil.
func (qsc *QuestionStatCreate) SetNillableLastAttemptedAt(t *time.Time) *QuestionStatCreate {
	if t != nil {
		qsc.SetLastAttemptedAt(*t)
	}
	return qsc
}

// SetID sets the "id" field.
func (qsc *QuestionStatCreate) SetID(s string) *QuestionStatCreate {
	qsc.mutation.SetID(s)
	return qsc
}

// SetNillableID sets the "id" field if the given value is not nil.
func (qsc *QuestionStatCreate) SetNillableID(s *string) *QuestionStatCreate {
	if s != nil {
		qsc.SetID(*s)
	}
	return qsc
}

// Mutation returns the QuestionStatMutation object of the builder.
func (qsc *QuestionStatCreate) Mutation() *QuestionStatMutation {
	return qsc.mutation
}

// Save creates the QuestionStat in the database.
func (qsc *QuestionStatCreate) Save(ctx context.Context) (*QuestionStat, error) {
	qsc.defaults()
	return withHooks(ctx, qsc.sqlSave, qsc.mutation, qsc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (qsc *QuestionStatCreate) SaveX(ctx context.Context) *QuestionStat {
	v, err := qsc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (qsc *QuestionStatCreate) Exec(ctx context.Context) error {
	_, err := qsc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (qsc *QuestionStatCreate) ExecX(ctx context.Context) {
	if err := qsc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (qsc *QuestionStatCreate) defaults() {
	if _, ok := qsc.mutation.CreatedAt(); !ok {
		v := questionstat.DefaultCreatedAt()
		qsc.mutation.SetCreatedAt(v)
	}
	if _, ok := qsc.mutation.AttemptCount(); !ok {
		v := questionstat.DefaultAttemptCount
		qsc.mutation.SetAttemptCount(v)
	}
	if _, ok := qsc.mutation.CorrectCount(); !ok {
		v := questionstat.DefaultCorrectCount
		qsc.mutation.SetCorrectCount(v)
	}
	if _, ok := qsc.mutation.TotalElapsedSeconds(); !ok {
		v := questionstat.DefaultTotalElapsedSeconds
		qsc.mutation.SetTotalElapsedSeconds(v)
	}
	if _, ok := qsc.mutation.ID(); !ok {
		v := questionstat.DefaultID()
		qsc.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (qsc *QuestionStatCreate) check() error {
	if _, ok := qsc.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "QuestionStat.created_at"`)}
	}
	if _, ok := qsc.mutation.QuestionID(); !ok {
		return &ValidationError{Name: "question_id", err: errors.New(`ent: missing required field "QuestionStat.question_id"`)}
	}
	if v, ok := qsc.mutation.QuestionID(); ok {
		if err := questionstat.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "QuestionStat.question_id": %w`, err)}
		}
	}
	if _, ok := qsc.mutation.AttemptCount(); !ok {
		return &ValidationError{Name: "attempt_count", err: errors.New(`ent: missing required field "QuestionStat.attempt_count"`)}
	}
	if v, ok := qsc.mutation.AttemptCount(); ok {
		if err := questionstat.AttemptCountValidator(v); err != nil {
			return &ValidationError{Name: "attempt_count", err: fmt.Errorf(`ent: validator failed for field "QuestionStat.attempt_count": %w`, err)}
		}
	}
	if _, ok := qsc.mutation.CorrectCount(); !ok {
		return &ValidationError{Name: "correct_count", err: errors.New(`ent: missing required field "QuestionStat.correct_count"`)}
	}
	if v, ok := qsc.mutation.CorrectCount(); ok {
		if err := questionstat.CorrectCountValidator(v); err != nil {
			return &ValidationError{Name: "correct_count", err: fmt.Errorf(`ent: validator failed for field "QuestionStat.correct_count": %w`, err)}
		}
	}
	if _, ok := qsc.mutation.TotalElapsedSeconds(); !ok {
		return &ValidationError{Name: "total_elapsed_seconds", err: errors.New(`ent: missing required field "QuestionStat.total_elapsed_seconds"`)}
	}
	return nil
}

func (qsc *QuestionStatCreate) sqlSave(ctx context.Context) (*QuestionStat, error) {
	if err := qsc.check(); err != nil {
		return nil, err
	}
	_node, _spec := qsc.createSpec()
	if err := sqlgraph.CreateNode(ctx, qsc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected QuestionStat.ID type: %T", _spec.ID.Value)
		}
	}
	qsc.mutation.id = &_node.ID
	qsc.mutation.done = true
	return _node, nil
}

func (qsc *QuestionStatCreate) createSpec() (*QuestionStat, *sqlgraph.CreateSpec) {
	var (
		_node = &QuestionStat{config: qsc.config}
		_spec = sqlgraph.NewCreateSpec(questionstat.Table, sqlgraph.NewFieldSpec(questionstat.FieldID, field.TypeString))
	)
	if id, ok := qsc.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := qsc.mutation.CreatedAt(); ok {
		_spec.SetField(questionstat.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := qsc.mutation.QuestionID(); ok {
		_spec.SetField(questionstat.FieldQuestionID, field.TypeString, value)
		_node.QuestionID = value
	}
	if value, ok := qsc.mutation.AttemptCount(); ok {
		_spec.SetField(questionstat.FieldAttemptCount, field.TypeInt, value)
		_node.AttemptCount = value
	}
	if value, ok := qsc.mutation.CorrectCount(); ok {
		_spec.SetField(questionstat.FieldCorrectCount, field.TypeInt, value)
		_node.CorrectCount = value
	}
	if value, ok := qsc.mutation.TotalElapsedSeconds(); ok {
		_spec.SetField(questionstat.FieldTotalElapsedSeconds, field.TypeFloat64, value)
		_node.TotalElapsedSeconds = value
	}
	if value, ok := qsc.mutation.LastAttemptedAt(); ok {
		_spec.SetField(questionstat.FieldLastAttemptedAt, field.TypeTime, value)
		_node.LastAttemptedAt = &value
	}
	return _node, _spec
}

// QuestionStatCreateBulk is the builder for creating many QuestionStat entities in bulk.
type QuestionStatCreateBulk struct {
	config
	err      error
	builders []*QuestionStatCreate
}

// Save creates the QuestionStat entities in the database.
func (qscb *QuestionStatCreateBulk) Save(ctx context.Context) ([]*QuestionStat, error) {
	if qscb.err != nil {
		return nil, qscb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(qscb.builders))
	nodes := make([]*QuestionStat, len(qscb.builders))
	mutators := make([]Mutator, len(qscb.builders))
	for i := range qscb.builders {
		func(i int, root context.Context) {
			builder := qscb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*QuestionStatMutation)
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
					_, err = mutators[i+1].Mutate(root, qscb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, qscb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, qscb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (qscb *QuestionStatCreateBulk) SaveX(ctx context.Context) []*QuestionStat {
	v, err := qscb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (qscb *QuestionStatCreateBulk) Exec(ctx context.Context) error {
	_, err := qscb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (qscb *QuestionStatCreateBulk) ExecX(ctx context.Context) {
	if err := qscb.Exec(ctx); err != nil {
		panic(err)
	}
}
