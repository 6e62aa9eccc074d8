// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/jfarleigh/certrun/ent/predicate"
	"github.com/jfarleigh/certrun/ent/question"
	"github.com/jfarleigh/certrun/ent/topic"
)

// TopicUpdate is the builder for updating Topic entities.
type TopicUpdate struct {
	config
	hooks    []Hook
	mutation *TopicMutation
}

// Where appends a list predicates to the TopicUpdate builder.
func (tu *TopicUpdate) Where(ps ...predicate.Topic) *TopicUpdate {
	tu.mutation.Where(ps...)
	return tu
}

// SetExamID sets the "exam_id" field.
func (tu *TopicUpdate) SetExamID(s string) *TopicUpdate {
	tu.mutation.SetExamID(s)
	return tu
}

// SetNillableExamID sets the "exam_id" field if the given value is not nil.
func (tu *TopicUpdate) SetNillableExamID(s *string) *TopicUpdate {
	if s != nil {
		tu.SetExamID(*s)
	}
	return tu
}

// SetName sets the "name" field.
func (tu *TopicUpdate) SetName(s string) *TopicUpdate {
	tu.mutation.SetName(s)
	return tu
}

// SetNillableName sets the "name" field if the given value is not nil.
func (tu *TopicUpdate) SetNillableName(s *string) *TopicUpdate {
	if s != nil {
		tu.SetName(*s)
	}
	return tu
}

// SetDescription sets the "description" field.
func (tu *TopicUpdate) SetDescription(s string) *TopicUpdate {
	tu.mutation.SetDescription(s)
	return tu
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (tu *TopicUpdate) SetNillableDescription(s *string) *TopicUpdate {
	if s != nil {
		tu.SetDescription(*s)
	}
	return tu
}

// SetWeightPercent sets the "weight_percent" field.
func (tu *TopicUpdate) SetWeightPercent(i int) *TopicUpdate {
	tu.mutation.ResetWeightPercent()
	tu.mutation.SetWeightPercent(i)
	return tu
}

// SetNillableWeightPercent sets the "weight_percent" field if the given value is not nil.
func (tu *TopicUpdate) SetNillableWeightPercent(i *int) *TopicUpdate {
	if i != nil {
		tu.SetWeightPercent(*i)
	}
	return tu
}

// AddWeightPercent adds i to the "weight_percent" field.
func (tu *TopicUpdate) AddWeightPercent(i int) *TopicUpdate {
	tu.mutation.AddWeightPercent(i)
	return tu
}

// AddQuestionIDs adds the "questions" edge to the Question entity by IDs.
func (tu *TopicUpdate) AddQuestionIDs(ids ...string) *TopicUpdate {
	tu.mutation.AddQuestionIDs(ids...)
	return tu
}

// AddQuestions adds the "questions" edges to the Question entity.
func (tu *TopicUpdate) AddQuestions(q ...*Question) *TopicUpdate {
	ids := make([]string, len(q))
	for i := range q {
		ids[i] = q[i].ID
	}
	return tu.AddQuestionIDs(ids...)
}

// Mutation returns the TopicMutation object of the builder.
func (tu *TopicUpdate) Mutation() *TopicMutation {
	return tu.mutation
}

// ClearQuestions clears all "questions" edges to the Question entity.
func (tu *TopicUpdate) ClearQuestions() *TopicUpdate {
	tu.mutation.ClearQuestions()
	return tu
}

// RemoveQuestionIDs removes the "questions" edge to Question entities by IDs.
func (tu *TopicUpdate) RemoveQuestionIDs(ids ...string) *TopicUpdate {
	tu.mutation.RemoveQuestionIDs(ids...)
	return tu
}

// RemoveQuestions removes "questions" edges to Question entities.
func (tu *TopicUpdate) RemoveQuestions(q ...*Question) *TopicUpdate {
	ids := make([]string, len(q))
	for i := range q {
		ids[i] = q[i].ID
	}
	return tu.RemoveQuestionIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (tu *TopicUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, tu.sqlSave, tu.mutation, tu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (tu *TopicUpdate) SaveX(ctx context.Context) int {
	affected, err := tu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (tu *TopicUpdate) Exec(ctx context.Context) error {
	_, err := tu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (tu *TopicUpdate) ExecX(ctx context.Context) {
	if err := tu.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (tu *TopicUpdate) check() error {
	if v, ok := tu.mutation.ExamID(); ok {
		if err := topic.ExamIDValidator(v); err != nil {
			return &ValidationError{Name: "exam_id", err: fmt.Errorf(`ent: validator failed for field "Topic.exam_id": %w`, err)}
		}
	}
	if v, ok := tu.mutation.Name(); ok {
		if err := topic.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Topic.name": %w`, err)}
		}
	}
	if v, ok := tu.mutation.WeightPercent(); ok {
		if err := topic.WeightPercentValidator(v); err != nil {
			return &ValidationError{Name: "weight_percent", err: fmt.Errorf(`ent: validator failed for field "Topic.weight_percent": %w`, err)}
		}
	}
	return nil
}

func (tu *TopicUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := tu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(topic.Table, topic.Columns, sqlgraph.NewFieldSpec(topic.FieldID, field.TypeString))
	if ps := tu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := tu.mutation.ExamID(); ok {
		_spec.SetField(topic.FieldExamID, field.TypeString, value)
	}
	if value, ok := tu.mutation.Name(); ok {
		_spec.SetField(topic.FieldName, field.TypeString, value)
	}
	if value, ok := tu.mutation.Description(); ok {
		_spec.SetField(topic.FieldDescription, field.TypeString, value)
	}
	if value, ok := tu.mutation.WeightPercent(); ok {
		_spec.SetField(topic.FieldWeightPercent, field.TypeInt, value)
	}
	if value, ok := tu.mutation.AddedWeightPercent(); ok {
		_spec.AddField(topic.FieldWeightPercent, field.TypeInt, value)
	}
	if tu.mutation.QuestionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: true,
			Table:   topic.QuestionsTable,
			Columns: topic.QuestionsPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(question.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := tu.mutation.RemovedQuestionsIDs(); len(nodes) > 0 && !tu.mutation.QuestionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: true,
			Table:   topic.QuestionsTable,
			Columns: topic.QuestionsPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(question.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := tu.mutation.QuestionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: true,
			Table:   topic.QuestionsTable,
			Columns: topic.QuestionsPrimaryKey,
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
	if n, err = sqlgraph.UpdateNodes(ctx, tu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{topic.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	tu.mutation.done = true
	return n, nil
}

// TopicUpdateOne is the builder for updating a single Topic entity.
type TopicUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TopicMutation
}

// SetExamID sets the "exam_id" field.
func (tuo *TopicUpdateOne) SetExamID(s string) *TopicUpdateOne {
	tuo.mutation.SetExamID(s)
	return tuo
}

// SetNillableExamID sets the "exam_id" field if the given value is not nil.
func (tuo *TopicUpdateOne) SetNillableExamID(s *string) *TopicUpdateOne {
	if s != nil {
		tuo.SetExamID(*s)
	}
	return tuo
}

// SetName sets the "name" field.
func (tuo *TopicUpdateOne) SetName(s string) *TopicUpdateOne {
	tuo.mutation.SetName(s)
	return tuo
}

// SetNillableName sets the "name" field if the given value is not nil.
func (tuo *TopicUpdateOne) SetNillableName(s *string) *TopicUpdateOne {
	if s != nil {
		tuo.SetName(*s)
	}
	return tuo
}

// SetDescription sets the "description" field.
func (tuo *TopicUpdateOne) SetDescription(s string) *TopicUpdateOne {
	tuo.mutation.SetDescription(s)
	return tuo
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (tuo *TopicUpdateOne) SetNillableDescription(s *string) *TopicUpdateOne {
	if s != nil {
		tuo.SetDescription(*s)
	}
	return tuo
}

// SetWeightPercent sets the "weight_percent" field.
func (tuo *TopicUpdateOne) SetWeightPercent(i int) *TopicUpdateOne {
	tuo.mutation.ResetWeightPercent()
	tuo.mutation.SetWeightPercent(i)
	return tuo
}

// SetNillableWeightPercent sets the "weight_percent" field if the given value is not nil.
func (tuo *TopicUpdateOne) SetNillableWeightPercent(i *int) *TopicUpdateOne {
	if i != nil {
		tuo.SetWeightPercent(*i)
	}
	return tuo
}

// AddWeightPercent adds i to the "weight_percent" field.
func (tuo *TopicUpdateOne) AddWeightPercent(i int) *TopicUpdateOne {
	tuo.mutation.AddWeightPercent(i)
	return tuo
}

// AddQuestionIDs adds the "questions" edge to the Question entity by IDs.
func (tuo *TopicUpdateOne) AddQuestionIDs(ids ...string) *TopicUpdateOne {
	tuo.mutation.AddQuestionIDs(ids...)
	return tuo
}

// AddQuestions adds the "questions" edges to the Question entity.
func (tuo *TopicUpdateOne) AddQuestions(q ...*Question) *TopicUpdateOne {
	ids := make([]string, len(q))
	for i := range q {
		ids[i] = q[i].ID
	}
	return tuo.AddQuestionIDs(ids...)
}

// Mutation returns the TopicMutation object of the builder.
func (tuo *TopicUpdateOne) Mutation() *TopicMutation {
	return tuo.mutation
}

// ClearQuestions clears all "questions" edges to the Question entity.
func (tuo *TopicUpdateOne) ClearQuestions() *TopicUpdateOne {
	tuo.mutation.ClearQuestions()
	return tuo
}

// RemoveQuestionIDs removes the "questions" edge to Question entities by IDs.
func (tuo *TopicUpdateOne) RemoveQuestionIDs(ids ...string) *TopicUpdateOne {
	tuo.mutation.RemoveQuestionIDs(ids...)
	return tuo
}

// RemoveQuestions removes "questions" edges to Question entities.
func (tuo *TopicUpdateOne) RemoveQuestions(q ...*Question) *TopicUpdateOne {
	ids := make([]string, len(q))
	for i := range q {
		ids[i] = q[i].ID
	}
	return tuo.RemoveQuestionIDs(ids...)
}

// Where appends a list predicates to the TopicUpdate builder.
func (tuo *TopicUpdateOne) Where(ps ...predicate.Topic) *TopicUpdateOne {
	tuo.mutation.Where(ps...)
	return tuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (tuo *TopicUpdateOne) Select(field string, fields ...string) *TopicUpdateOne {
	tuo.fields = append([]string{field}, fields...)
	return tuo
}

// Save executes the query and returns the updated Topic entity.
func (tuo *TopicUpdateOne) Save(ctx context.Context) (*Topic, error) {
	return withHooks(ctx, tuo.sqlSave, tuo.mutation, tuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (tuo *TopicUpdateOne) SaveX(ctx context.Context) *Topic {
	node, err := tuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (tuo *TopicUpdateOne) Exec(ctx context.Context) error {
	_, err := tuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (tuo *TopicUpdateOne) ExecX(ctx context.Context) {
	if err := tuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (tuo *TopicUpdateOne) check() error {
	if v, ok := tuo.mutation.ExamID(); ok {
		if err := topic.ExamIDValidator(v); err != nil {
			return &ValidationError{Name: "exam_id", err: fmt.Errorf(`ent: validator failed for field "Topic.exam_id": %w`, err)}
		}
	}
	if v, ok := tuo.mutation.Name(); ok {
		if err := topic.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Topic.name": %w`, err)}
		}
	}
	if v, ok := tuo.mutation.WeightPercent(); ok {
		if err := topic.WeightPercentValidator(v); err != nil {
			return &ValidationError{Name: "weight_percent", err: fmt.Errorf(`ent: validator failed for field "Topic.weight_percent": %w`, err)}
		}
	}
	return nil
}

func (tuo *TopicUpdateOne) sqlSave(ctx context.Context) (_node *Topic, err error) {
	if err := tuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(topic.Table, topic.Columns, sqlgraph.NewFieldSpec(topic.FieldID, field.TypeString))
	id, ok := tuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Topic.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := tuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, topic.FieldID)
		for _, f := range fields {
			if !topic.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != topic.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := tuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := tuo.mutation.ExamID(); ok {
		_spec.SetField(topic.FieldExamID, field.TypeString, value)
	}
	if value, ok := tuo.mutation.Name(); ok {
		_spec.SetField(topic.FieldName, field.TypeString, value)
	}
	if value, ok := tuo.mutation.Description(); ok {
		_spec.SetField(topic.FieldDescription, field.TypeString, value)
	}
	if value, ok := tuo.mutation.WeightPercent(); ok {
		_spec.SetField(topic.FieldWeightPercent, field.TypeInt, value)
	}
	if value, ok := tuo.mutation.AddedWeightPercent(); ok {
		_spec.AddField(topic.FieldWeightPercent, field.TypeInt, value)
	}
	if tuo.mutation.QuestionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: true,
			Table:   topic.QuestionsTable,
			Columns: topic.QuestionsPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(question.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := tuo.mutation.RemovedQuestionsIDs(); len(nodes) > 0 && !tuo.mutation.QuestionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: true,
			Table:   topic.QuestionsTable,
			Columns: topic.QuestionsPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(question.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := tuo.mutation.QuestionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: true,
			Table:   topic.QuestionsTable,
			Columns: topic.QuestionsPrimaryKey,
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
	_node = &Topic{config: tuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, tuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{topic.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	tuo.mutation.done = true
	return _node, nil
}
