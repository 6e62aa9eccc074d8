// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/jfarleigh/certrun/ent/exam"
)

// ExamCreate is the builder for creating a Exam entity.
type ExamCreate struct {
	config
	mutation *ExamMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (ec *ExamCreate) SetCreatedAt(t time.Time) *ExamCreate {
	ec.mutation.SetCreatedAt(t)
	return ec
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (ec *ExamCreate) SetNillableCreatedAt(t *time.Time) *ExamCreate {
	if t != nil {
		ec.SetCreatedAt(*t)
	}
	return ec
}

// SetName sets the "name" field.
func (ec *ExamCreate) SetName(s string) *ExamCreate {
	ec.mutation.SetName(s)
	return ec
}

// SetVendor sets the "vendor" field.
func (ec *ExamCreate) SetVendor(s string) *ExamCreate {
	ec.mutation.SetVendor(s)
	return ec
}

// SetNillableVendor sets the "vendor" field if the given value is not nil.
func (ec *ExamCreate) SetNillableVendor(s *string) *ExamCreate {
	if s != nil {
		ec.SetVendor(*s)
	}
	return ec
}

// SetExamCode sets the "exam_code" field.
func (ec *ExamCreate) SetExamCode(s string) *ExamCreate {
	ec.mutation.SetExamCode(s)
	return ec
}

// SetNillableExamCode sets the "exam_code" field if the given value is not nil.
func (ec *ExamCreate) SetNillableExamCode(s *string) *ExamCreate {
	if s != nil {
		ec.SetExamCode(*s)
	}
	return ec
}

// SetDescription sets the "description" field.
func (ec *ExamCreate) SetDescription(s string) *ExamCreate {
	ec.mutation.SetDescription(s)
	return ec
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (ec *ExamCreate) SetNillableDescription(s *string) *ExamCreate {
	if s != nil {
		ec.SetDescription(*s)
	}
	return ec
}

// SetPassingScore sets the "passing_score" field.
func (ec *ExamCreate) SetPassingScore(i int) *ExamCreate {
	ec.mutation.SetPassingScore(i)
	return ec
}

// SetNillablePassingScore sets the "passing_score" field if the given value is not nil.
func (ec *ExamCreate) SetNillablePassingScore(i *int) *ExamCreate {
	if i != nil {
		ec.SetPassingScore(*i)
	}
	return ec
}

// SetTimeLimitMinutes sets the "time_limit_minutes" field.
func (ec *ExamCreate) SetTimeLimitMinutes(i int) *ExamCreate {
	ec.mutation.SetTimeLimitMinutes(i)
	return ec
}

// SetNillableTimeLimitMinutes sets the "time_limit_minutes" field if the given value is not nil.
func (ec *ExamCreate) SetNillableTimeLimitMinutes(i *int) *ExamCreate {
	if i != nil {
		ec.SetTimeLimitMinutes(*i)
	}
	return ec
}

// SetID sets the "id" field.
func (ec *ExamCreate) SetID(s string) *ExamCreate {
	ec.mutation.SetID(s)
	return ec
}

// SetNillableID sets the "id" field if the given value is not nil.
func (ec *ExamCreate) SetNillableID(s *string) *ExamCreate {
	if s != nil {
		ec.SetID(*s)
	}
	return ec
}

// Mutation returns the ExamMutation object of the builder.
func (ec *ExamCreate) Mutation() *ExamMutation {
	return ec.mutation
}

// Save creates the Exam in the database.
func (ec *ExamCreate) Save(ctx context.Context) (*Exam, error) {
	ec.defaults()
	return withHooks(ctx, ec.sqlSave, ec.mutation, ec.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (ec *ExamCreate) SaveX(ctx context.Context) *Exam {
	v, err := ec.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (ec *ExamCreate) Exec(ctx context.Context) error {
	_, err := ec.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ec *ExamCreate) ExecX(ctx context.Context) {
	if err := ec.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (ec *ExamCreate) defaults() {
	if _, ok := ec.mutation.CreatedAt(); !ok {
		v := exam.DefaultCreatedAt()
		ec.mutation.SetCreatedAt(v)
	}
	if _, ok := ec.mutation.Vendor(); !ok {
		v := exam.DefaultVendor
		ec.mutation.SetVendor(v)
	}
	if _, ok := ec.mutation.ExamCode(); !ok {
		v := exam.DefaultExamCode
		ec.mutation.SetExamCode(v)
	}
	if _, ok := ec.mutation.Description(); !ok {
		v := exam.DefaultDescription
		ec.mutation.SetDescription(v)
	}
	if _, ok := ec.mutation.PassingScore(); !ok {
		v := exam.DefaultPassingScore
		ec.mutation.SetPassingScore(v)
	}
	if _, ok := ec.mutation.TimeLimitMinutes(); !ok {
		v := exam.DefaultTimeLimitMinutes
		ec.mutation.SetTimeLimitMinutes(v)
	}
	if _, ok := ec.mutation.ID(); !ok {
		v := exam.DefaultID()
		ec.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (ec *ExamCreate) check() error {
	if _, ok := ec.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Exam.created_at"`)}
	}
	if _, ok := ec.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Exam.name"`)}
	}
	if v, ok := ec.mutation.Name(); ok {
		if err := exam.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Exam.name": %w`, err)}
		}
	}
	if _, ok := ec.mutation.Vendor(); !ok {
		return &ValidationError{Name: "vendor", err: errors.New(`ent: missing required field "Exam.vendor"`)}
	}
	if _, ok := ec.mutation.ExamCode(); !ok {
		return &ValidationError{Name: "exam_code", err: errors.New(`ent: missing required field "Exam.exam_code"`)}
	}
	if _, ok := ec.mutation.Description(); !ok {
		return &ValidationError{Name: "description", err: errors.New(`ent: missing required field "Exam.description"`)}
	}
	if _, ok := ec.mutation.PassingScore(); !ok {
		return &ValidationError{Name: "passing_score", err: errors.New(`ent: missing required field "Exam.passing_score"`)}
	}
	if v, ok := ec.mutation.PassingScore(); ok {
		if err := exam.PassingScoreValidator(v); err != nil {
			return &ValidationError{Name: "passing_score", err: fmt.Errorf(`ent: validator failed for field "Exam.passing_score": %w`, err)}
		}
	}
	if _, ok := ec.mutation.TimeLimitMinutes(); !ok {
		return &ValidationError{Name: "time_limit_minutes", err: errors.New(`ent: missing required field "Exam.time_limit_minutes"`)}
	}
	if v, ok := ec.mutation.TimeLimitMinutes(); ok {
		if err := exam.TimeLimitMinutesValidator(v); err != nil {
			return &ValidationError{Name: "time_limit_minutes", err: fmt.Errorf(`ent: validator failed for field "Exam.time_limit_minutes": %w`, err)}
		}
	}
	return nil
}

func (ec *ExamCreate) sqlSave(ctx context.Context) (*Exam, error) {
	if err := ec.check(); err != nil {
		return nil, err
	}
	_node, _spec := ec.createSpec()
	if err := sqlgraph.CreateNode(ctx, ec.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Exam.ID type: %T", _spec.ID.Value)
		}
	}
	ec.mutation.id = &_node.ID
	ec.mutation.done = true
	return _node, nil
}

func (ec *ExamCreate) createSpec() (*Exam, *sqlgraph.CreateSpec) {
	var (
		_node = &Exam{config: ec.config}
		_spec = sqlgraph.NewCreateSpec(exam.Table, sqlgraph.NewFieldSpec(exam.FieldID, field.TypeString))
	)
	if id, ok := ec.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := ec.mutation.CreatedAt(); ok {
		_spec.SetField(exam.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := ec.mutation.Name(); ok {
		_spec.SetField(exam.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := ec.mutation.Vendor(); ok {
		_spec.SetField(exam.FieldVendor, field.TypeString, value)
		_node.Vendor = value
	}
	if value, ok := ec.mutation.ExamCode(); ok {
		_spec.SetField(exam.FieldExamCode, field.TypeString, value)
		_node.ExamCode = value
	}
	if value, ok := ec.mutation.Description(); ok {
		_spec.SetField(exam.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := ec.mutation.PassingScore(); ok {
		_spec.SetField(exam.FieldPassingScore, field.TypeInt, value)
		_node.PassingScore = value
	}
	if value, ok := ec.mutation.TimeLimitMinutes(); ok {
		_spec.SetField(exam.FieldTimeLimitMinutes, field.TypeInt, value)
		_node.TimeLimitMinutes = value
	}
	return _node, _spec
}

// ExamCreateBulk is the builder for creating many Exam entities in bulk.
type ExamCreateBulk struct {
	config
	err      error
	builders []*ExamCreate
}

// Save creates the Exam entities in the database.
func (ecb *ExamCreateBulk) Save(ctx context.Context) ([]*Exam, error) {
	if ecb.err != nil {
		return nil, ecb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(ecb.builders))
	nodes := make([]*Exam, len(ecb.builders))
	mutators := make([]Mutator, len(ecb.builders))
	for i := range ecb.builders {
		func(i int, root context.Context) {
			builder := ecb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ExamMutation)
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
					_, err = mutators[i+1].Mutate(root, ecb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, ecb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, ecb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (ecb *ExamCreateBulk) SaveX(ctx context.Context) []*Exam {
	v, err := ecb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (ecb *ExamCreateBulk) Exec(ctx context.Context) error {
	_, err := ecb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ecb *ExamCreateBulk) ExecX(ctx context.Context) {
	if err := ecb.Exec(ctx); err != nil {
		panic(err)
	}
}
