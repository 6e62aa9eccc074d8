// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/jfarleigh/certrun/ent/answeroption"
	"github.com/jfarleigh/certrun/ent/exam"
	"github.com/jfarleigh/certrun/ent/practicesession"
	"github.com/jfarleigh/certrun/ent/predicate"
	"github.com/jfarleigh/certrun/ent/question"
	"github.com/jfarleigh/certrun/ent/questionattempt"
	"github.com/jfarleigh/certrun/ent/questionstat"
	"github.com/jfarleigh/certrun/ent/topic"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAnswerOption    = "AnswerOption"
	TypeExam            = "Exam"
	TypePracticeSession = "PracticeSession"
	TypeQuestion        = "Question"
	TypeQuestionAttempt = "QuestionAttempt"
	TypeQuestionStat    = "QuestionStat"
	TypeTopic           = "Topic"
)

// AnswerOptionMutation represents an operation that mutates the AnswerOption nodes in the graph.
type AnswerOptionMutation struct {
	config
	op                Op
	typ               string
	id                *string
	created_at        *time.Time
	text              *string
	is_correct        *bool
	distractor_reason *string
	position          *int
	addposition       *int
	clearedFields     map[string]struct{}
	question          *string
	clearedquestion   bool
	done              bool
	oldValue          func(context.Context) (*AnswerOption, error)
	predicates        []predicate.AnswerOption
}

var _ ent.Mutation = (*AnswerOptionMutation)(nil)

// answeroptionOption allows management of the mutation configuration using functional options.
type answeroptionOption func(*AnswerOptionMutation)

// newAnswerOptionMutation creates new mutation for the AnswerOption entity.
func newAnswerOptionMutation(c config, op Op, opts ...answeroptionOption) *AnswerOptionMutation {
	m := &AnswerOptionMutation{
		config:        c,
		op:            op,
		typ:           TypeAnswerOption,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAnswerOptionID sets the ID field of the mutation.
func withAnswerOptionID(id string) answeroptionOption {
	return func(m *AnswerOptionMutation) {
		var (
			err   error
			once  sync.Once
			value *AnswerOption
		)
		m.oldValue = func(ctx context.Context) (*AnswerOption, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AnswerOption.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAnswerOption sets the old AnswerOption of the mutation.
func withAnswerOption(node *AnswerOption) answeroptionOption {
	return func(m *AnswerOptionMutation) {
		m.oldValue = func(context.Context) (*AnswerOption, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AnswerOptionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AnswerOptionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AnswerOption entities.
func (m *AnswerOptionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AnswerOptionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AnswerOptionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AnswerOption.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *AnswerOptionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AnswerOptionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AnswerOption entity.
// If the AnswerOption object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerOptionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AnswerOptionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetQuestionID sets the "question_id" field.
func (m *AnswerOptionMutation) SetQuestionID(s string) {
	m.question = &s
}

// QuestionID returns the value of the "question_id" field in the mutation.
func (m *AnswerOptionMutation) QuestionID() (r string, exists bool) {
	v := m.question
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestionID returns the old "question_id" field's value of the AnswerOption entity.
// If the AnswerOption object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerOptionMutation) OldQuestionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestionID: %w", err)
	}
	return oldValue.QuestionID, nil
}

// ResetQuestionID resets all changes to the "question_id" field.
func (m *AnswerOptionMutation) ResetQuestionID() {
	m.question = nil
}

// SetText sets the "text" field.
func (m *AnswerOptionMutation) SetText(s string) {
	m.text = &s
}

// Text returns the value of the "text" field in the mutation.
func (m *AnswerOptionMutation) Text() (r string, exists bool) {
	v := m.text
	if v == nil {
		return
	}
	return *v, true
}

// OldText returns the old "text" field's value of the AnswerOption entity.
// If the AnswerOption object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerOptionMutation) OldText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldText: %w", err)
	}
	return oldValue.Text, nil
}

// ResetText resets all changes to the "text" field.
func (m *AnswerOptionMutation) ResetText() {
	m.text = nil
}

// SetIsCorrect sets the "is_correct" field.
func (m *AnswerOptionMutation) SetIsCorrect(b bool) {
	m.is_correct = &b
}

// IsCorrect returns the value of the "is_correct" field in the mutation.
func (m *AnswerOptionMutation) IsCorrect() (r bool, exists bool) {
	v := m.is_correct
	if v == nil {
		return
	}
	return *v, true
}

// OldIsCorrect returns the old "is_correct" field's value of the AnswerOption entity.
// If the AnswerOption object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerOptionMutation) OldIsCorrect(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsCorrect is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsCorrect requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsCorrect: %w", err)
	}
	return oldValue.IsCorrect, nil
}

// ResetIsCorrect resets all changes to the "is_correct" field.
func (m *AnswerOptionMutation) ResetIsCorrect() {
	m.is_correct = nil
}

// SetDistractorReason sets the "distractor_reason" field.
func (m *AnswerOptionMutation) SetDistractorReason(s string) {
	m.distractor_reason = &s
}

// DistractorReason returns the value of the "distractor_reason" field in the mutation.
func (m *AnswerOptionMutation) DistractorReason() (r string, exists bool) {
	v := m.distractor_reason
	if v == nil {
		return
	}
	return *v, true
}

// OldDistractorReason returns the old "distractor_reason" field's value of the AnswerOption entity.
// If the AnswerOption object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerOptionMutation) OldDistractorReason(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDistractorReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDistractorReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDistractorReason: %w", err)
	}
	return oldValue.DistractorReason, nil
}

// ResetDistractorReason resets all changes to the "distractor_reason" field.
func (m *AnswerOptionMutation) ResetDistractorReason() {
	m.distractor_reason = nil
}

// SetPosition sets the "position" field.
func (m *AnswerOptionMutation) SetPosition(i int) {
	m.position = &i
	m.addposition = nil
}

// Position returns the value of the "position" field in the mutation.
func (m *AnswerOptionMutation) Position() (r int, exists bool) {
	v := m.position
	if v == nil {
		return
	}
	return *v, true
}

// OldPosition returns the old "position" field's value of the AnswerOption entity.
// If the AnswerOption object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerOptionMutation) OldPosition(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPosition is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPosition requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPosition: %w", err)
	}
	return oldValue.Position, nil
}

// AddPosition adds i to the "position" field.
func (m *AnswerOptionMutation) AddPosition(i int) {
	if m.addposition != nil {
		*m.addposition += i
	} else {
		m.addposition = &i
	}
}

// AddedPosition returns the value that was added to the "position" field in this mutation.
func (m *AnswerOptionMutation) AddedPosition() (r int, exists bool) {
	v := m.addposition
	if v == nil {
		return
	}
	return *v, true
}

// ResetPosition resets all changes to the "position" field.
func (m *AnswerOptionMutation) ResetPosition() {
	m.position = nil
	m.addposition = nil
}

// ClearQuestion clears the "question" edge to the Question entity.
func (m *AnswerOptionMutation) ClearQuestion() {
	m.clearedquestion = true
	m.clearedFields[answeroption.FieldQuestionID] = struct{}{}
}

// QuestionCleared reports if the "question" edge to the Question entity was cleared.
func (m *AnswerOptionMutation) QuestionCleared() bool {
	return m.clearedquestion
}

// QuestionIDs returns the "question" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// QuestionID instead. It exists only for internal usage by the builders.
func (m *AnswerOptionMutation) QuestionIDs() (ids []string) {
	if id := m.question; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetQuestion resets all changes to the "question" edge.
func (m *AnswerOptionMutation) ResetQuestion() {
	m.question = nil
	m.clearedquestion = false
}

// Where appends a list predicates to the AnswerOptionMutation builder.
func (m *AnswerOptionMutation) Where(ps ...predicate.AnswerOption) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AnswerOptionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AnswerOptionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AnswerOption, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AnswerOptionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AnswerOptionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AnswerOption).
func (m *AnswerOptionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AnswerOptionMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.created_at != nil {
		fields = append(fields, answeroption.FieldCreatedAt)
	}
	if m.question != nil {
		fields = append(fields, answeroption.FieldQuestionID)
	}
	if m.text != nil {
		fields = append(fields, answeroption.FieldText)
	}
	if m.is_correct != nil {
		fields = append(fields, answeroption.FieldIsCorrect)
	}
	if m.distractor_reason != nil {
		fields = append(fields, answeroption.FieldDistractorReason)
	}
	if m.position != nil {
		fields = append(fields, answeroption.FieldPosition)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AnswerOptionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case answeroption.FieldCreatedAt:
		return m.CreatedAt()
	case answeroption.FieldQuestionID:
		return m.QuestionID()
	case answeroption.FieldText:
		return m.Text()
	case answeroption.FieldIsCorrect:
		return m.IsCorrect()
	case answeroption.FieldDistractorReason:
		return m.DistractorReason()
	case answeroption.FieldPosition:
		return m.Position()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AnswerOptionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case answeroption.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case answeroption.FieldQuestionID:
		return m.OldQuestionID(ctx)
	case answeroption.FieldText:
		return m.OldText(ctx)
	case answeroption.FieldIsCorrect:
		return m.OldIsCorrect(ctx)
	case answeroption.FieldDistractorReason:
		return m.OldDistractorReason(ctx)
	case answeroption.FieldPosition:
		return m.OldPosition(ctx)
	}
	return nil, fmt.Errorf("unknown AnswerOption field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AnswerOptionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case answeroption.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case answeroption.FieldQuestionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestionID(v)
		return nil
	case answeroption.FieldText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetText(v)
		return nil
	case answeroption.FieldIsCorrect:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsCorrect(v)
		return nil
	case answeroption.FieldDistractorReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDistractorReason(v)
		return nil
	case answeroption.FieldPosition:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPosition(v)
		return nil
	}
	return fmt.Errorf("unknown AnswerOption field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AnswerOptionMutation) AddedFields() []string {
	var fields []string
	if m.addposition != nil {
		fields = append(fields, answeroption.FieldPosition)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AnswerOptionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case answeroption.FieldPosition:
		return m.AddedPosition()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AnswerOptionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case answeroption.FieldPosition:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPosition(v)
		return nil
	}
	return fmt.Errorf("unknown AnswerOption numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AnswerOptionMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AnswerOptionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AnswerOptionMutation) ClearField(name string) error {
	return fmt.Errorf("unknown AnswerOption nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AnswerOptionMutation) ResetField(name string) error {
	switch name {
	case answeroption.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case answeroption.FieldQuestionID:
		m.ResetQuestionID()
		return nil
	case answeroption.FieldText:
		m.ResetText()
		return nil
	case answeroption.FieldIsCorrect:
		m.ResetIsCorrect()
		return nil
	case answeroption.FieldDistractorReason:
		m.ResetDistractorReason()
		return nil
	case answeroption.FieldPosition:
		m.ResetPosition()
		return nil
	}
	return fmt.Errorf("unknown AnswerOption field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AnswerOptionMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.question != nil {
		edges = append(edges, answeroption.EdgeQuestion)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AnswerOptionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case answeroption.EdgeQuestion:
		if id := m.question; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AnswerOptionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AnswerOptionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AnswerOptionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedquestion {
		edges = append(edges, answeroption.EdgeQuestion)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AnswerOptionMutation) EdgeCleared(name string) bool {
	switch name {
	case answeroption.EdgeQuestion:
		return m.clearedquestion
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AnswerOptionMutation) ClearEdge(name string) error {
	switch name {
	case answeroption.EdgeQuestion:
		m.ClearQuestion()
		return nil
	}
	return fmt.Errorf("unknown AnswerOption unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AnswerOptionMutation) ResetEdge(name string) error {
	switch name {
	case answeroption.EdgeQuestion:
		m.ResetQuestion()
		return nil
	}
	return fmt.Errorf("unknown AnswerOption edge %s", name)
}

// ExamMutation represents an operation that mutates the Exam nodes in the graph.
type ExamMutation struct {
	config
	op                    Op
	typ                   string
	id                    *string
	created_at            *time.Time
	name                  *string
	vendor                *string
	exam_code             *string
	description           *string
	passing_score         *int
	addpassing_score      *int
	time_limit_minutes    *int
	addtime_limit_minutes *int
	clearedFields         map[string]struct{}
	done                  bool
	oldValue              func(context.Context) (*Exam, error)
	predicates            []predicate.Exam
}

var _ ent.Mutation = (*ExamMutation)(nil)

// examOption allows management of the mutation configuration using functional options.
type examOption func(*ExamMutation)

// newExamMutation creates new mutation for the Exam entity.
func newExamMutation(c config, op Op, opts ...examOption) *ExamMutation {
	m := &ExamMutation{
		config:        c,
		op:            op,
		typ:           TypeExam,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withExamID sets the ID field of the mutation.
func withExamID(id string) examOption {
	return func(m *ExamMutation) {
		var (
			err   error
			once  sync.Once
			value *Exam
		)
		m.oldValue = func(ctx context.Context) (*Exam, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Exam.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withExam sets the old Exam of the mutation.
func withExam(node *Exam) examOption {
	return func(m *ExamMutation) {
		m.oldValue = func(context.Context) (*Exam, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ExamMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ExamMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Exam entities.
func (m *ExamMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ExamMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ExamMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Exam.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *ExamMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ExamMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Exam entity.
// If the Exam object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExamMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ExamMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetName sets the "name" field.
func (m *ExamMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *ExamMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Exam entity.
// If the Exam object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExamMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *ExamMutation) ResetName() {
	m.name = nil
}

// SetVendor sets the "vendor" field.
func (m *ExamMutation) SetVendor(s string) {
	m.vendor = &s
}

// Vendor returns the value of the "vendor" field in the mutation.
func (m *ExamMutation) Vendor() (r string, exists bool) {
	v := m.vendor
	if v == nil {
		return
	}
	return *v, true
}

// OldVendor returns the old "vendor" field's value of the Exam entity.
// If the Exam object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExamMutation) OldVendor(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVendor is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVendor requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVendor: %w", err)
	}
	return oldValue.Vendor, nil
}

// ResetVendor resets all changes to the "vendor" field.
func (m *ExamMutation) ResetVendor() {
	m.vendor = nil
}

// SetExamCode sets the "exam_code" field.
func (m *ExamMutation) SetExamCode(s string) {
	m.exam_code = &s
}

// ExamCode returns the value of the "exam_code" field in the mutation.
func (m *ExamMutation) ExamCode() (r string, exists bool) {
	v := m.exam_code
	if v == nil {
		return
	}
	return *v, true
}

// OldExamCode returns the old "exam_code" field's value of the Exam entity.
// If the Exam object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExamMutation) OldExamCode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExamCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExamCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExamCode: %w", err)
	}
	return oldValue.ExamCode, nil
}

// ResetExamCode resets all changes to the "exam_code" field.
func (m *ExamMutation) ResetExamCode() {
	m.exam_code = nil
}

// SetDescription sets the "description" field.
func (m *ExamMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *ExamMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Exam entity.
// If the Exam object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExamMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ResetDescription resets all changes to the "description" field.
func (m *ExamMutation) ResetDescription() {
	m.description = nil
}

// SetPassingScore sets the "passing_score" field.
func (m *ExamMutation) SetPassingScore(i int) {
	m.passing_score = &i
	m.addpassing_score = nil
}

// PassingScore returns the value of the "passing_score" field in the mutation.
func (m *ExamMutation) PassingScore() (r int, exists bool) {
	v := m.passing_score
	if v == nil {
		return
	}
	return *v, true
}

// OldPassingScore returns the old "passing_score" field's value of the Exam entity.
// If the Exam object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExamMutation) OldPassingScore(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPassingScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPassingScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPassingScore: %w", err)
	}
	return oldValue.PassingScore, nil
}

// AddPassingScore adds i to the "passing_score" field.
func (m *ExamMutation) AddPassingScore(i int) {
	if m.addpassing_score != nil {
		*m.addpassing_score += i
	} else {
		m.addpassing_score = &i
	}
}

// AddedPassingScore returns the value that was added to the "passing_score" field in this mutation.
func (m *ExamMutation) AddedPassingScore() (r int, exists bool) {
	v := m.addpassing_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetPassingScore resets all changes to the "passing_score" field.
func (m *ExamMutation) ResetPassingScore() {
	m.passing_score = nil
	m.addpassing_score = nil
}

// SetTimeLimitMinutes sets the "time_limit_minutes" field.
func (m *ExamMutation) SetTimeLimitMinutes(i int) {
	m.time_limit_minutes = &i
	m.addtime_limit_minutes = nil
}

// TimeLimitMinutes returns the value of the "time_limit_minutes" field in the mutation.
func (m *ExamMutation) TimeLimitMinutes() (r int, exists bool) {
	v := m.time_limit_minutes
	if v == nil {
		return
	}
	return *v, true
}

// OldTimeLimitMinutes returns the old "time_limit_minutes" field's value of the Exam entity.
// If the Exam object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExamMutation) OldTimeLimitMinutes(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimeLimitMinutes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimeLimitMinutes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimeLimitMinutes: %w", err)
	}
	return oldValue.TimeLimitMinutes, nil
}

// AddTimeLimitMinutes adds i to the "time_limit_minutes" field.
func (m *ExamMutation) AddTimeLimitMinutes(i int) {
	if m.addtime_limit_minutes != nil {
		*m.addtime_limit_minutes += i
	} else {
		m.addtime_limit_minutes = &i
	}
}

// AddedTimeLimitMinutes returns the value that was added to the "time_limit_minutes" field in this mutation.
func (m *ExamMutation) AddedTimeLimitMinutes() (r int, exists bool) {
	v := m.addtime_limit_minutes
	if v == nil {
		return
	}
	return *v, true
}

// ResetTimeLimitMinutes resets all changes to the "time_limit_minutes" field.
func (m *ExamMutation) ResetTimeLimitMinutes() {
	m.time_limit_minutes = nil
	m.addtime_limit_minutes = nil
}

// Where appends a list predicates to the ExamMutation builder.
func (m *ExamMutation) Where(ps ...predicate.Exam) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ExamMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ExamMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Exam, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ExamMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ExamMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Exam).
func (m *ExamMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ExamMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.created_at != nil {
		fields = append(fields, exam.FieldCreatedAt)
	}
	if m.name != nil {
		fields = append(fields, exam.FieldName)
	}
	if m.vendor != nil {
		fields = append(fields, exam.FieldVendor)
	}
	if m.exam_code != nil {
		fields = append(fields, exam.FieldExamCode)
	}
	if m.description != nil {
		fields = append(fields, exam.FieldDescription)
	}
	if m.passing_score != nil {
		fields = append(fields, exam.FieldPassingScore)
	}
	if m.time_limit_minutes != nil {
		fields = append(fields, exam.FieldTimeLimitMinutes)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ExamMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case exam.FieldCreatedAt:
		return m.CreatedAt()
	case exam.FieldName:
		return m.Name()
	case exam.FieldVendor:
		return m.Vendor()
	case exam.FieldExamCode:
		return m.ExamCode()
	case exam.FieldDescription:
		return m.Description()
	case exam.FieldPassingScore:
		return m.PassingScore()
	case exam.FieldTimeLimitMinutes:
		return m.TimeLimitMinutes()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ExamMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case exam.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case exam.FieldName:
		return m.OldName(ctx)
	case exam.FieldVendor:
		return m.OldVendor(ctx)
	case exam.FieldExamCode:
		return m.OldExamCode(ctx)
	case exam.FieldDescription:
		return m.OldDescription(ctx)
	case exam.FieldPassingScore:
		return m.OldPassingScore(ctx)
	case exam.FieldTimeLimitMinutes:
		return m.OldTimeLimitMinutes(ctx)
	}
	return nil, fmt.Errorf("unknown Exam field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExamMutation) SetField(name string, value ent.Value) error {
	switch name {
	case exam.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case exam.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case exam.FieldVendor:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVendor(v)
		return nil
	case exam.FieldExamCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExamCode(v)
		return nil
	case exam.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case exam.FieldPassingScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPassingScore(v)
		return nil
	case exam.FieldTimeLimitMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimeLimitMinutes(v)
		return nil
	}
	return fmt.Errorf("unknown Exam field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ExamMutation) AddedFields() []string {
	var fields []string
	if m.addpassing_score != nil {
		fields = append(fields, exam.FieldPassingScore)
	}
	if m.addtime_limit_minutes != nil {
		fields = append(fields, exam.FieldTimeLimitMinutes)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ExamMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case exam.FieldPassingScore:
		return m.AddedPassingScore()
	case exam.FieldTimeLimitMinutes:
		return m.AddedTimeLimitMinutes()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExamMutation) AddField(name string, value ent.Value) error {
	switch name {
	case exam.FieldPassingScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPassingScore(v)
		return nil
	case exam.FieldTimeLimitMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTimeLimitMinutes(v)
		return nil
	}
	return fmt.Errorf("unknown Exam numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ExamMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ExamMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ExamMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Exam nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ExamMutation) ResetField(name string) error {
	switch name {
	case exam.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case exam.FieldName:
		m.ResetName()
		return nil
	case exam.FieldVendor:
		m.ResetVendor()
		return nil
	case exam.FieldExamCode:
		m.ResetExamCode()
		return nil
	case exam.FieldDescription:
		m.ResetDescription()
		return nil
	case exam.FieldPassingScore:
		m.ResetPassingScore()
		return nil
	case exam.FieldTimeLimitMinutes:
		m.ResetTimeLimitMinutes()
		return nil
	}
	return fmt.Errorf("unknown Exam field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ExamMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ExamMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ExamMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ExamMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ExamMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ExamMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ExamMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Exam unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ExamMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Exam edge %s", name)
}

// PracticeSessionMutation represents an operation that mutates the PracticeSession nodes in the graph.
type PracticeSessionMutation struct {
	config
	op                Op
	typ               string
	id                *string
	created_at        *time.Time
	exam_id           *string
	topic_id          *string
	mode              *string
	questions         *[]string
	appendquestions   []string
	selection_seed    *int64
	addselection_seed *int64
	status            *string
	ended_at          *time.Time
	clearedFields     map[string]struct{}
	done              bool
	oldValue          func(context.Context) (*PracticeSession, error)
	predicates        []predicate.PracticeSession
}

var _ ent.Mutation = (*PracticeSessionMutation)(nil)

// practicesessionOption allows management of the mutation configuration using functional options.
type practicesessionOption func(*PracticeSessionMutation)

// newPracticeSessionMutation creates new mutation for the PracticeSession entity.
func newPracticeSessionMutation(c config, op Op, opts ...practicesessionOption) *PracticeSessionMutation {
	m := &PracticeSessionMutation{
		config:        c,
		op:            op,
		typ:           TypePracticeSession,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPracticeSessionID sets the ID field of the mutation.
func withPracticeSessionID(id string) practicesessionOption {
	return func(m *PracticeSessionMutation) {
		var (
			err   error
			once  sync.Once
			value *PracticeSession
		)
		m.oldValue = func(ctx context.Context) (*PracticeSession, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PracticeSession.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPracticeSession sets the old PracticeSession of the mutation.
func withPracticeSession(node *PracticeSession) practicesessionOption {
	return func(m *PracticeSessionMutation) {
		m.oldValue = func(context.Context) (*PracticeSession, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PracticeSessionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PracticeSessionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of PracticeSession entities.
func (m *PracticeSessionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PracticeSessionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PracticeSessionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PracticeSession.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *PracticeSessionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PracticeSessionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the PracticeSession entity.
// If the PracticeSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PracticeSessionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PracticeSessionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetExamID sets the "exam_id" field.
func (m *PracticeSessionMutation) SetExamID(s string) {
	m.exam_id = &s
}

// ExamID returns the value of the "exam_id" field in the mutation.
func (m *PracticeSessionMutation) ExamID() (r string, exists bool) {
	v := m.exam_id
	if v == nil {
		return
	}
	return *v, true
}

// OldExamID returns the old "exam_id" field's value of the PracticeSession entity.
// If the PracticeSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PracticeSessionMutation) OldExamID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExamID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExamID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExamID: %w", err)
	}
	return oldValue.ExamID, nil
}

// ResetExamID resets all changes to the "exam_id" field.
func (m *PracticeSessionMutation) ResetExamID() {
	m.exam_id = nil
}

// SetTopicID sets the "topic_id" field.
func (m *PracticeSessionMutation) SetTopicID(s string) {
	m.topic_id = &s
}

// TopicID returns the value of the "topic_id" field in the mutation.
func (m *PracticeSessionMutation) TopicID() (r string, exists bool) {
	v := m.topic_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTopicID returns the old "topic_id" field's value of the PracticeSession entity.
// If the PracticeSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PracticeSessionMutation) OldTopicID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTopicID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTopicID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTopicID: %w", err)
	}
	return oldValue.TopicID, nil
}

// ResetTopicID resets all changes to the "topic_id" field.
func (m *PracticeSessionMutation) ResetTopicID() {
	m.topic_id = nil
}

// SetMode sets the "mode" field.
func (m *PracticeSessionMutation) SetMode(s string) {
	m.mode = &s
}

// Mode returns the value of the "mode" field in the mutation.
func (m *PracticeSessionMutation) Mode() (r string, exists bool) {
	v := m.mode
	if v == nil {
		return
	}
	return *v, true
}

// OldMode returns the old "mode" field's value of the PracticeSession entity.
// If the PracticeSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PracticeSessionMutation) OldMode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMode: %w", err)
	}
	return oldValue.Mode, nil
}

// ResetMode resets all changes to the "mode" field.
func (m *PracticeSessionMutation) ResetMode() {
	m.mode = nil
}

// SetQuestions sets the "questions" field.
func (m *PracticeSessionMutation) SetQuestions(s []string) {
	m.questions = &s
	m.appendquestions = nil
}

// Questions returns the value of the "questions" field in the mutation.
func (m *PracticeSessionMutation) Questions() (r []string, exists bool) {
	v := m.questions
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestions returns the old "questions" field's value of the PracticeSession entity.
// If the PracticeSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PracticeSessionMutation) OldQuestions(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestions: %w", err)
	}
	return oldValue.Questions, nil
}

// AppendQuestions adds s to the "questions" field.
func (m *PracticeSessionMutation) AppendQuestions(s []string) {
	m.appendquestions = append(m.appendquestions, s...)
}

// AppendedQuestions returns the list of values that were appended to the "questions" field in this mutation.
func (m *PracticeSessionMutation) AppendedQuestions() ([]string, bool) {
	if len(m.appendquestions) == 0 {
		return nil, false
	}
	return m.appendquestions, true
}

// ResetQuestions resets all changes to the "questions" field.
func (m *PracticeSessionMutation) ResetQuestions() {
	m.questions = nil
	m.appendquestions = nil
}

// SetSelectionSeed sets the "selection_seed" field.
func (m *PracticeSessionMutation) SetSelectionSeed(i int64) {
	m.selection_seed = &i
	m.addselection_seed = nil
}

// SelectionSeed returns the value of the "selection_seed" field in the mutation.
func (m *PracticeSessionMutation) SelectionSeed() (r int64, exists bool) {
	v := m.selection_seed
	if v == nil {
		return
	}
	return *v, true
}

// OldSelectionSeed returns the old "selection_seed" field's value of the PracticeSession entity.
// If the PracticeSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PracticeSessionMutation) OldSelectionSeed(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSelectionSeed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSelectionSeed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSelectionSeed: %w", err)
	}
	return oldValue.SelectionSeed, nil
}

// AddSelectionSeed adds i to the "selection_seed" field.
func (m *PracticeSessionMutation) AddSelectionSeed(i int64) {
	if m.addselection_seed != nil {
		*m.addselection_seed += i
	} else {
		m.addselection_seed = &i
	}
}

// AddedSelectionSeed returns the value that was added to the "selection_seed" field in this mutation.
func (m *PracticeSessionMutation) AddedSelectionSeed() (r int64, exists bool) {
	v := m.addselection_seed
	if v == nil {
		return
	}
	return *v, true
}

// ResetSelectionSeed resets all changes to the "selection_seed" field.
func (m *PracticeSessionMutation) ResetSelectionSeed() {
	m.selection_seed = nil
	m.addselection_seed = nil
}

// SetStatus sets the "status" field.
func (m *PracticeSessionMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *PracticeSessionMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the PracticeSession entity.
// If the PracticeSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PracticeSessionMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *PracticeSessionMutation) ResetStatus() {
	m.status = nil
}

// SetEndedAt sets the "ended_at" field.
func (m *PracticeSessionMutation) SetEndedAt(t time.Time) {
	m.ended_at = &t
}

// EndedAt returns the value of the "ended_at" field in the mutation.
func (m *PracticeSessionMutation) EndedAt() (r time.Time, exists bool) {
	v := m.ended_at
	if v == nil {
		return
	}
	return *v, true
}

// OldEndedAt returns the old "ended_at" field's value of the PracticeSession entity.
// If the PracticeSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PracticeSessionMutation) OldEndedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndedAt: %w", err)
	}
	return oldValue.EndedAt, nil
}

// ClearEndedAt clears the value of the "ended_at" field.
func (m *PracticeSessionMutation) ClearEndedAt() {
	m.ended_at = nil
	m.clearedFields[practicesession.FieldEndedAt] = struct{}{}
}

// EndedAtCleared returns if the "ended_at" field was cleared in this mutation.
func (m *PracticeSessionMutation) EndedAtCleared() bool {
	_, ok := m.clearedFields[practicesession.FieldEndedAt]
	return ok
}

// ResetEndedAt resets all changes to the "ended_at" field.
func (m *PracticeSessionMutation) ResetEndedAt() {
	m.ended_at = nil
	delete(m.clearedFields, practicesession.FieldEndedAt)
}

// Where appends a list predicates to the PracticeSessionMutation builder.
func (m *PracticeSessionMutation) Where(ps ...predicate.PracticeSession) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PracticeSessionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PracticeSessionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PracticeSession, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PracticeSessionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PracticeSessionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PracticeSession).
func (m *PracticeSessionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PracticeSessionMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.created_at != nil {
		fields = append(fields, practicesession.FieldCreatedAt)
	}
	if m.exam_id != nil {
		fields = append(fields, practicesession.FieldExamID)
	}
	if m.topic_id != nil {
		fields = append(fields, practicesession.FieldTopicID)
	}
	if m.mode != nil {
		fields = append(fields, practicesession.FieldMode)
	}
	if m.questions != nil {
		fields = append(fields, practicesession.FieldQuestions)
	}
	if m.selection_seed != nil {
		fields = append(fields, practicesession.FieldSelectionSeed)
	}
	if m.status != nil {
		fields = append(fields, practicesession.FieldStatus)
	}
	if m.ended_at != nil {
		fields = append(fields, practicesession.FieldEndedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PracticeSessionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case practicesession.FieldCreatedAt:
		return m.CreatedAt()
	case practicesession.FieldExamID:
		return m.ExamID()
	case practicesession.FieldTopicID:
		return m.TopicID()
	case practicesession.FieldMode:
		return m.Mode()
	case practicesession.FieldQuestions:
		return m.Questions()
	case practicesession.FieldSelectionSeed:
		return m.SelectionSeed()
	case practicesession.FieldStatus:
		return m.Status()
	case practicesession.FieldEndedAt:
		return m.EndedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PracticeSessionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case practicesession.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case practicesession.FieldExamID:
		return m.OldExamID(ctx)
	case practicesession.FieldTopicID:
		return m.OldTopicID(ctx)
	case practicesession.FieldMode:
		return m.OldMode(ctx)
	case practicesession.FieldQuestions:
		return m.OldQuestions(ctx)
	case practicesession.FieldSelectionSeed:
		return m.OldSelectionSeed(ctx)
	case practicesession.FieldStatus:
		return m.OldStatus(ctx)
	case practicesession.FieldEndedAt:
		return m.OldEndedAt(ctx)
	}
	return nil, fmt.Errorf("unknown PracticeSession field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PracticeSessionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case practicesession.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case practicesession.FieldExamID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExamID(v)
		return nil
	case practicesession.FieldTopicID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTopicID(v)
		return nil
	case practicesession.FieldMode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMode(v)
		return nil
	case practicesession.FieldQuestions:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestions(v)
		return nil
	case practicesession.FieldSelectionSeed:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSelectionSeed(v)
		return nil
	case practicesession.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case practicesession.FieldEndedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndedAt(v)
		return nil
	}
	return fmt.Errorf("unknown PracticeSession field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PracticeSessionMutation) AddedFields() []string {
	var fields []string
	if m.addselection_seed != nil {
		fields = append(fields, practicesession.FieldSelectionSeed)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PracticeSessionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case practicesession.FieldSelectionSeed:
		return m.AddedSelectionSeed()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PracticeSessionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case practicesession.FieldSelectionSeed:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSelectionSeed(v)
		return nil
	}
	return fmt.Errorf("unknown PracticeSession numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PracticeSessionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(practicesession.FieldEndedAt) {
		fields = append(fields, practicesession.FieldEndedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PracticeSessionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PracticeSessionMutation) ClearField(name string) error {
	switch name {
	case practicesession.FieldEndedAt:
		m.ClearEndedAt()
		return nil
	}
	return fmt.Errorf("unknown PracticeSession nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PracticeSessionMutation) ResetField(name string) error {
	switch name {
	case practicesession.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case practicesession.FieldExamID:
		m.ResetExamID()
		return nil
	case practicesession.FieldTopicID:
		m.ResetTopicID()
		return nil
	case practicesession.FieldMode:
		m.ResetMode()
		return nil
	case practicesession.FieldQuestions:
		m.ResetQuestions()
		return nil
	case practicesession.FieldSelectionSeed:
		m.ResetSelectionSeed()
		return nil
	case practicesession.FieldStatus:
		m.ResetStatus()
		return nil
	case practicesession.FieldEndedAt:
		m.ResetEndedAt()
		return nil
	}
	return fmt.Errorf("unknown PracticeSession field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PracticeSessionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PracticeSessionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PracticeSessionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PracticeSessionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PracticeSessionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PracticeSessionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PracticeSessionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown PracticeSession unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PracticeSessionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown PracticeSession edge %s", name)
}

// QuestionMutation represents an operation that mutates the Question nodes in the graph.
type QuestionMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	created_at         *time.Time
	exam_id            *string
	text               *string
	question_type      *string
	choose_count       *int
	addchoose_count    *int
	difficulty         *string
	explanation        *string
	source             *string
	pattern_tags       *[]string
	appendpattern_tags []string
	clearedFields      map[string]struct{}
	options            map[string]struct{}
	removedoptions     map[string]struct{}
	clearedoptions     bool
	topics             map[string]struct{}
	removedtopics      map[string]struct{}
	clearedtopics      bool
	done               bool
	oldValue           func(context.Context) (*Question, error)
	predicates         []predicate.Question
}

var _ ent.Mutation = (*QuestionMutation)(nil)

// questionOption allows management of the mutation configuration using functional options.
type questionOption func(*QuestionMutation)

// newQuestionMutation creates new mutation for the Question entity.
func newQuestionMutation(c config, op Op, opts ...questionOption) *QuestionMutation {
	m := &QuestionMutation{
		config:        c,
		op:            op,
		typ:           TypeQuestion,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withQuestionID sets the ID field of the mutation.
func withQuestionID(id string) questionOption {
	return func(m *QuestionMutation) {
		var (
			err   error
			once  sync.Once
			value *Question
		)
		m.oldValue = func(ctx context.Context) (*Question, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Question.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withQuestion sets the old Question of the mutation.
func withQuestion(node *Question) questionOption {
	return func(m *QuestionMutation) {
		m.oldValue = func(context.Context) (*Question, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m QuestionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m QuestionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Question entities.
func (m *QuestionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *QuestionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *QuestionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Question.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *QuestionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *QuestionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *QuestionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetExamID sets the "exam_id" field.
func (m *QuestionMutation) SetExamID(s string) {
	m.exam_id = &s
}

// ExamID returns the value of the "exam_id" field in the mutation.
func (m *QuestionMutation) ExamID() (r string, exists bool) {
	v := m.exam_id
	if v == nil {
		return
	}
	return *v, true
}

// OldExamID returns the old "exam_id" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldExamID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExamID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExamID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExamID: %w", err)
	}
	return oldValue.ExamID, nil
}

// ResetExamID resets all changes to the "exam_id" field.
func (m *QuestionMutation) ResetExamID() {
	m.exam_id = nil
}

// SetText sets the "text" field.
func (m *QuestionMutation) SetText(s string) {
	m.text = &s
}

// Text returns the value of the "text" field in the mutation.
func (m *QuestionMutation) Text() (r string, exists bool) {
	v := m.text
	if v == nil {
		return
	}
	return *v, true
}

// OldText returns the old "text" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldText: %w", err)
	}
	return oldValue.Text, nil
}

// ResetText resets all changes to the "text" field.
func (m *QuestionMutation) ResetText() {
	m.text = nil
}

// SetQuestionType sets the "question_type" field.
func (m *QuestionMutation) SetQuestionType(s string) {
	m.question_type = &s
}

// QuestionType returns the value of the "question_type" field in the mutation.
func (m *QuestionMutation) QuestionType() (r string, exists bool) {
	v := m.question_type
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestionType returns the old "question_type" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldQuestionType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestionType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestionType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestionType: %w", err)
	}
	return oldValue.QuestionType, nil
}

// ResetQuestionType resets all changes to the "question_type" field.
func (m *QuestionMutation) ResetQuestionType() {
	m.question_type = nil
}

// SetChooseCount sets the "choose_count" field.
func (m *QuestionMutation) SetChooseCount(i int) {
	m.choose_count = &i
	m.addchoose_count = nil
}

// ChooseCount returns the value of the "choose_count" field in the mutation.
func (m *QuestionMutation) ChooseCount() (r int, exists bool) {
	v := m.choose_count
	if v == nil {
		return
	}
	return *v, true
}

// OldChooseCount returns the old "choose_count" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldChooseCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChooseCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChooseCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChooseCount: %w", err)
	}
	return oldValue.ChooseCount, nil
}

// AddChooseCount adds i to the "choose_count" field.
func (m *QuestionMutation) AddChooseCount(i int) {
	if m.addchoose_count != nil {
		*m.addchoose_count += i
	} else {
		m.addchoose_count = &i
	}
}

// AddedChooseCount returns the value that was added to the "choose_count" field in this mutation.
func (m *QuestionMutation) AddedChooseCount() (r int, exists bool) {
	v := m.addchoose_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetChooseCount resets all changes to the "choose_count" field.
func (m *QuestionMutation) ResetChooseCount() {
	m.choose_count = nil
	m.addchoose_count = nil
}

// SetDifficulty sets the "difficulty" field.
func (m *QuestionMutation) SetDifficulty(s string) {
	m.difficulty = &s
}

// Difficulty returns the value of the "difficulty" field in the mutation.
func (m *QuestionMutation) Difficulty() (r string, exists bool) {
	v := m.difficulty
	if v == nil {
		return
	}
	return *v, true
}

// OldDifficulty returns the old "difficulty" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldDifficulty(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDifficulty is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDifficulty requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDifficulty: %w", err)
	}
	return oldValue.Difficulty, nil
}

// ResetDifficulty resets all changes to the "difficulty" field.
func (m *QuestionMutation) ResetDifficulty() {
	m.difficulty = nil
}

// SetExplanation sets the "explanation" field.
func (m *QuestionMutation) SetExplanation(s string) {
	m.explanation = &s
}

// Explanation returns the value of the "explanation" field in the mutation.
func (m *QuestionMutation) Explanation() (r string, exists bool) {
	v := m.explanation
	if v == nil {
		return
	}
	return *v, true
}

// OldExplanation returns the old "explanation" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldExplanation(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExplanation is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExplanation requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExplanation: %w", err)
	}
	return oldValue.Explanation, nil
}

// ResetExplanation resets all changes to the "explanation" field.
func (m *QuestionMutation) ResetExplanation() {
	m.explanation = nil
}

// SetSource sets the "source" field.
func (m *QuestionMutation) SetSource(s string) {
	m.source = &s
}

// Source returns the value of the "source" field in the mutation.
func (m *QuestionMutation) Source() (r string, exists bool) {
	v := m.source
	if v == nil {
		return
	}
	return *v, true
}

// OldSource returns the old "source" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldSource(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSource: %w", err)
	}
	return oldValue.Source, nil
}

// ResetSource resets all changes to the "source" field.
func (m *QuestionMutation) ResetSource() {
	m.source = nil
}

// SetPatternTags sets the "pattern_tags" field.
func (m *QuestionMutation) SetPatternTags(s []string) {
	m.pattern_tags = &s
	m.appendpattern_tags = nil
}

// PatternTags returns the value of the "pattern_tags" field in the mutation.
func (m *QuestionMutation) PatternTags() (r []string, exists bool) {
	v := m.pattern_tags
	if v == nil {
		return
	}
	return *v, true
}

// OldPatternTags returns the old "pattern_tags" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldPatternTags(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPatternTags is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPatternTags requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPatternTags: %w", err)
	}
	return oldValue.PatternTags, nil
}

// AppendPatternTags adds s to the "pattern_tags" field.
func (m *QuestionMutation) AppendPatternTags(s []string) {
	m.appendpattern_tags = append(m.appendpattern_tags, s...)
}

// AppendedPatternTags returns the list of values that were appended to the "pattern_tags" field in this mutation.
func (m *QuestionMutation) AppendedPatternTags() ([]string, bool) {
	if len(m.appendpattern_tags) == 0 {
		return nil, false
	}
	return m.appendpattern_tags, true
}

// ClearPatternTags clears the value of the "pattern_tags" field.
func (m *QuestionMutation) ClearPatternTags() {
	m.pattern_tags = nil
	m.appendpattern_tags = nil
	m.clearedFields[question.FieldPatternTags] = struct{}{}
}

// PatternTagsCleared returns if the "pattern_tags" field was cleared in this mutation.
func (m *QuestionMutation) PatternTagsCleared() bool {
	_, ok := m.clearedFields[question.FieldPatternTags]
	return ok
}

// ResetPatternTags resets all changes to the "pattern_tags" field.
func (m *QuestionMutation) ResetPatternTags() {
	m.pattern_tags = nil
	m.appendpattern_tags = nil
	delete(m.clearedFields, question.FieldPatternTags)
}

// AddOptionIDs adds the "options" edge to the AnswerOption entity by ids.
func (m *QuestionMutation) AddOptionIDs(ids ...string) {
	if m.options == nil {
		m.options = make(map[string]struct{})
	}
	for i := range ids {
		m.options[ids[i]] = struct{}{}
	}
}

// ClearOptions clears the "options" edge to the AnswerOption entity.
func (m *QuestionMutation) ClearOptions() {
	m.clearedoptions = true
}

// OptionsCleared reports if the "options" edge to the AnswerOption entity was cleared.
func (m *QuestionMutation) OptionsCleared() bool {
	return m.clearedoptions
}

// RemoveOptionIDs removes the "options" edge to the AnswerOption entity by IDs.
func (m *QuestionMutation) RemoveOptionIDs(ids ...string) {
	if m.removedoptions == nil {
		m.removedoptions = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.options, ids[i])
		m.removedoptions[ids[i]] = struct{}{}
	}
}

// RemovedOptions returns the removed IDs of the "options" edge to the AnswerOption entity.
func (m *QuestionMutation) RemovedOptionsIDs() (ids []string) {
	for id := range m.removedoptions {
		ids = append(ids, id)
	}
	return
}

// OptionsIDs returns the "options" edge IDs in the mutation.
func (m *QuestionMutation) OptionsIDs() (ids []string) {
	for id := range m.options {
		ids = append(ids, id)
	}
	return
}

// ResetOptions resets all changes to the "options" edge.
func (m *QuestionMutation) ResetOptions() {
	m.options = nil
	m.clearedoptions = false
	m.removedoptions = nil
}

// AddTopicIDs adds the "topics" edge to the Topic entity by ids.
func (m *QuestionMutation) AddTopicIDs(ids ...string) {
	if m.topics == nil {
		m.topics = make(map[string]struct{})
	}
	for i := range ids {
		m.topics[ids[i]] = struct{}{}
	}
}

// ClearTopics clears the "topics" edge to the Topic entity.
func (m *QuestionMutation) ClearTopics() {
	m.clearedtopics = true
}

// TopicsCleared reports if the "topics" edge to the Topic entity was cleared.
func (m *QuestionMutation) TopicsCleared() bool {
	return m.clearedtopics
}

// RemoveTopicIDs removes the "topics" edge to the Topic entity by IDs.
func (m *QuestionMutation) RemoveTopicIDs(ids ...string) {
	if m.removedtopics == nil {
		m.removedtopics = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.topics, ids[i])
		m.removedtopics[ids[i]] = struct{}{}
	}
}

// RemovedTopics returns the removed IDs of the "topics" edge to the Topic entity.
func (m *QuestionMutation) RemovedTopicsIDs() (ids []string) {
	for id := range m.removedtopics {
		ids = append(ids, id)
	}
	return
}

// TopicsIDs returns the "topics" edge IDs in the mutation.
func (m *QuestionMutation) TopicsIDs() (ids []string) {
	for id := range m.topics {
		ids = append(ids, id)
	}
	return
}

// ResetTopics resets all changes to the "topics" edge.
func (m *QuestionMutation) ResetTopics() {
	m.topics = nil
	m.clearedtopics = false
	m.removedtopics = nil
}

// Where appends a list predicates to the QuestionMutation builder.
func (m *QuestionMutation) Where(ps ...predicate.Question) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the QuestionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *QuestionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Question, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *QuestionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *QuestionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Question).
func (m *QuestionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *QuestionMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.created_at != nil {
		fields = append(fields, question.FieldCreatedAt)
	}
	if m.exam_id != nil {
		fields = append(fields, question.FieldExamID)
	}
	if m.text != nil {
		fields = append(fields, question.FieldText)
	}
	if m.question_type != nil {
		fields = append(fields, question.FieldQuestionType)
	}
	if m.choose_count != nil {
		fields = append(fields, question.FieldChooseCount)
	}
	if m.difficulty != nil {
		fields = append(fields, question.FieldDifficulty)
	}
	if m.explanation != nil {
		fields = append(fields, question.FieldExplanation)
	}
	if m.source != nil {
		fields = append(fields, question.FieldSource)
	}
	if m.pattern_tags != nil {
		fields = append(fields, question.FieldPatternTags)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *QuestionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case question.FieldCreatedAt:
		return m.CreatedAt()
	case question.FieldExamID:
		return m.ExamID()
	case question.FieldText:
		return m.Text()
	case question.FieldQuestionType:
		return m.QuestionType()
	case question.FieldChooseCount:
		return m.ChooseCount()
	case question.FieldDifficulty:
		return m.Difficulty()
	case question.FieldExplanation:
		return m.Explanation()
	case question.FieldSource:
		return m.Source()
	case question.FieldPatternTags:
		return m.PatternTags()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *QuestionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case question.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case question.FieldExamID:
		return m.OldExamID(ctx)
	case question.FieldText:
		return m.OldText(ctx)
	case question.FieldQuestionType:
		return m.OldQuestionType(ctx)
	case question.FieldChooseCount:
		return m.OldChooseCount(ctx)
	case question.FieldDifficulty:
		return m.OldDifficulty(ctx)
	case question.FieldExplanation:
		return m.OldExplanation(ctx)
	case question.FieldSource:
		return m.OldSource(ctx)
	case question.FieldPatternTags:
		return m.OldPatternTags(ctx)
	}
	return nil, fmt.Errorf("unknown Question field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QuestionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case question.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case question.FieldExamID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExamID(v)
		return nil
	case question.FieldText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetText(v)
		return nil
	case question.FieldQuestionType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestionType(v)
		return nil
	case question.FieldChooseCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChooseCount(v)
		return nil
	case question.FieldDifficulty:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDifficulty(v)
		return nil
	case question.FieldExplanation:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExplanation(v)
		return nil
	case question.FieldSource:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSource(v)
		return nil
	case question.FieldPatternTags:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPatternTags(v)
		return nil
	}
	return fmt.Errorf("unknown Question field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *QuestionMutation) AddedFields() []string {
	var fields []string
	if m.addchoose_count != nil {
		fields = append(fields, question.FieldChooseCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *QuestionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case question.FieldChooseCount:
		return m.AddedChooseCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QuestionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case question.FieldChooseCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddChooseCount(v)
		return nil
	}
	return fmt.Errorf("unknown Question numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *QuestionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(question.FieldPatternTags) {
		fields = append(fields, question.FieldPatternTags)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *QuestionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *QuestionMutation) ClearField(name string) error {
	switch name {
	case question.FieldPatternTags:
		m.ClearPatternTags()
		return nil
	}
	return fmt.Errorf("unknown Question nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *QuestionMutation) ResetField(name string) error {
	switch name {
	case question.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case question.FieldExamID:
		m.ResetExamID()
		return nil
	case question.FieldText:
		m.ResetText()
		return nil
	case question.FieldQuestionType:
		m.ResetQuestionType()
		return nil
	case question.FieldChooseCount:
		m.ResetChooseCount()
		return nil
	case question.FieldDifficulty:
		m.ResetDifficulty()
		return nil
	case question.FieldExplanation:
		m.ResetExplanation()
		return nil
	case question.FieldSource:
		m.ResetSource()
		return nil
	case question.FieldPatternTags:
		m.ResetPatternTags()
		return nil
	}
	return fmt.Errorf("unknown Question field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *QuestionMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.options != nil {
		edges = append(edges, question.EdgeOptions)
	}
	if m.topics != nil {
		edges = append(edges, question.EdgeTopics)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *QuestionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case question.EdgeOptions:
		ids := make([]ent.Value, 0, len(m.options))
		for id := range m.options {
			ids = append(ids, id)
		}
		return ids
	case question.EdgeTopics:
		ids := make([]ent.Value, 0, len(m.topics))
		for id := range m.topics {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *QuestionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedoptions != nil {
		edges = append(edges, question.EdgeOptions)
	}
	if m.removedtopics != nil {
		edges = append(edges, question.EdgeTopics)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *QuestionMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case question.EdgeOptions:
		ids := make([]ent.Value, 0, len(m.removedoptions))
		for id := range m.removedoptions {
			ids = append(ids, id)
		}
		return ids
	case question.EdgeTopics:
		ids := make([]ent.Value, 0, len(m.removedtopics))
		for id := range m.removedtopics {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *QuestionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedoptions {
		edges = append(edges, question.EdgeOptions)
	}
	if m.clearedtopics {
		edges = append(edges, question.EdgeTopics)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *QuestionMutation) EdgeCleared(name string) bool {
	switch name {
	case question.EdgeOptions:
		return m.clearedoptions
	case question.EdgeTopics:
		return m.clearedtopics
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *QuestionMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Question unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *QuestionMutation) ResetEdge(name string) error {
	switch name {
	case question.EdgeOptions:
		m.ResetOptions()
		return nil
	case question.EdgeTopics:
		m.ResetTopics()
		return nil
	}
	return fmt.Errorf("unknown Question edge %s", name)
}

// QuestionAttemptMutation represents an operation that mutates the QuestionAttempt nodes in the graph.
type QuestionAttemptMutation struct {
	config
	op                      Op
	typ                     string
	id                      *string
	created_at              *time.Time
	session_id              *string
	question_id             *string
	is_correct              *bool
	elapsed_seconds         *float64
	addelapsed_seconds      *float64
	submitted_options       *[]string
	appendsubmitted_options []string
	clearedFields           map[string]struct{}
	done                    bool
	oldValue                func(context.Context) (*QuestionAttempt, error)
	predicates              []predicate.QuestionAttempt
}

var _ ent.Mutation = (*QuestionAttemptMutation)(nil)

// questionattemptOption allows management of the mutation configuration using functional options.
type questionattemptOption func(*QuestionAttemptMutation)

// newQuestionAttemptMutation creates new mutation for the QuestionAttempt entity.
func newQuestionAttemptMutation(c config, op Op, opts ...questionattemptOption) *QuestionAttemptMutation {
	m := &QuestionAttemptMutation{
		config:        c,
		op:            op,
		typ:           TypeQuestionAttempt,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withQuestionAttemptID sets the ID field of the mutation.
func withQuestionAttemptID(id string) questionattemptOption {
	return func(m *QuestionAttemptMutation) {
		var (
			err   error
			once  sync.Once
			value *QuestionAttempt
		)
		m.oldValue = func(ctx context.Context) (*QuestionAttempt, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().QuestionAttempt.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withQuestionAttempt sets the old QuestionAttempt of the mutation.
func withQuestionAttempt(node *QuestionAttempt) questionattemptOption {
	return func(m *QuestionAttemptMutation) {
		m.oldValue = func(context.Context) (*QuestionAttempt, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m QuestionAttemptMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m QuestionAttemptMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of QuestionAttempt entities.
func (m *QuestionAttemptMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *QuestionAttemptMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *QuestionAttemptMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().QuestionAttempt.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *QuestionAttemptMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *QuestionAttemptMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the QuestionAttempt entity.
// If the QuestionAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionAttemptMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *QuestionAttemptMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetSessionID sets the "session_id" field.
func (m *QuestionAttemptMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *QuestionAttemptMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the QuestionAttempt entity.
// If the QuestionAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionAttemptMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *QuestionAttemptMutation) ResetSessionID() {
	m.session_id = nil
}

// SetQuestionID sets the "question_id" field.
func (m *QuestionAttemptMutation) SetQuestionID(s string) {
	m.question_id = &s
}

// QuestionID returns the value of the "question_id" field in the mutation.
func (m *QuestionAttemptMutation) QuestionID() (r string, exists bool) {
	v := m.question_id
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestionID returns the old "question_id" field's value of the QuestionAttempt entity.
// If the QuestionAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionAttemptMutation) OldQuestionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestionID: %w", err)
	}
	return oldValue.QuestionID, nil
}

// ResetQuestionID resets all changes to the "question_id" field.
func (m *QuestionAttemptMutation) ResetQuestionID() {
	m.question_id = nil
}

// SetIsCorrect sets the "is_correct" field.
func (m *QuestionAttemptMutation) SetIsCorrect(b bool) {
	m.is_correct = &b
}

// IsCorrect returns the value of the "is_correct" field in the mutation.
func (m *QuestionAttemptMutation) IsCorrect() (r bool, exists bool) {
	v := m.is_correct
	if v == nil {
		return
	}
	return *v, true
}

// OldIsCorrect returns the old "is_correct" field's value of the QuestionAttempt entity.
// If the QuestionAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionAttemptMutation) OldIsCorrect(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsCorrect is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsCorrect requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsCorrect: %w", err)
	}
	return oldValue.IsCorrect, nil
}

// ResetIsCorrect resets all changes to the "is_correct" field.
func (m *QuestionAttemptMutation) ResetIsCorrect() {
	m.is_correct = nil
}

// SetElapsedSeconds sets the "elapsed_seconds" field.
func (m *QuestionAttemptMutation) SetElapsedSeconds(f float64) {
	m.elapsed_seconds = &f
	m.addelapsed_seconds = nil
}

// ElapsedSeconds returns the value of the "elapsed_seconds" field in the mutation.
func (m *QuestionAttemptMutation) ElapsedSeconds() (r float64, exists bool) {
	v := m.elapsed_seconds
	if v == nil {
		return
	}
	return *v, true
}

// OldElapsedSeconds returns the old "elapsed_seconds" field's value of the QuestionAttempt entity.
// If the QuestionAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionAttemptMutation) OldElapsedSeconds(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldElapsedSeconds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldElapsedSeconds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldElapsedSeconds: %w", err)
	}
	return oldValue.ElapsedSeconds, nil
}

// AddElapsedSeconds adds f to the "elapsed_seconds" field.
func (m *QuestionAttemptMutation) AddElapsedSeconds(f float64) {
	if m.addelapsed_seconds != nil {
		*m.addelapsed_seconds += f
	} else {
		m.addelapsed_seconds = &f
	}
}

// AddedElapsedSeconds returns the value that was added to the "elapsed_seconds" field in this mutation.
func (m *QuestionAttemptMutation) AddedElapsedSeconds() (r float64, exists bool) {
	v := m.addelapsed_seconds
	if v == nil {
		return
	}
	return *v, true
}

// ResetElapsedSeconds resets all changes to the "elapsed_seconds" field.
func (m *QuestionAttemptMutation) ResetElapsedSeconds() {
	m.elapsed_seconds = nil
	m.addelapsed_seconds = nil
}

// SetSubmittedOptions sets the "submitted_options" field.
func (m *QuestionAttemptMutation) SetSubmittedOptions(s []string) {
	m.submitted_options = &s
	m.appendsubmitted_options = nil
}

// SubmittedOptions returns the value of the "submitted_options" field in the mutation.
func (m *QuestionAttemptMutation) SubmittedOptions() (r []string, exists bool) {
	v := m.submitted_options
	if v == nil {
		return
	}
	return *v, true
}

// OldSubmittedOptions returns the old "submitted_options" field's value of the QuestionAttempt entity.
// If the QuestionAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionAttemptMutation) OldSubmittedOptions(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubmittedOptions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubmittedOptions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubmittedOptions: %w", err)
	}
	return oldValue.SubmittedOptions, nil
}

// AppendSubmittedOptions adds s to the "submitted_options" field.
func (m *QuestionAttemptMutation) AppendSubmittedOptions(s []string) {
	m.appendsubmitted_options = append(m.appendsubmitted_options, s...)
}

// AppendedSubmittedOptions returns the list of values that were appended to the "submitted_options" field in this mutation.
func (m *QuestionAttemptMutation) AppendedSubmittedOptions() ([]string, bool) {
	if len(m.appendsubmitted_options) == 0 {
		return nil, false
	}
	return m.appendsubmitted_options, true
}

// ClearSubmittedOptions clears the value of the "submitted_options" field.
func (m *QuestionAttemptMutation) ClearSubmittedOptions() {
	m.submitted_options = nil
	m.appendsubmitted_options = nil
	m.clearedFields[questionattempt.FieldSubmittedOptions] = struct{}{}
}

// SubmittedOptionsCleared returns if the "submitted_options" field was cleared in this mutation.
func (m *QuestionAttemptMutation) SubmittedOptionsCleared() bool {
	_, ok := m.clearedFields[questionattempt.FieldSubmittedOptions]
	return ok
}

// ResetSubmittedOptions resets all changes to the "submitted_options" field.
func (m *QuestionAttemptMutation) ResetSubmittedOptions() {
	m.submitted_options = nil
	m.appendsubmitted_options = nil
	delete(m.clearedFields, questionattempt.FieldSubmittedOptions)
}

// Where appends a list predicates to the QuestionAttemptMutation builder.
func (m *QuestionAttemptMutation) Where(ps ...predicate.QuestionAttempt) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the QuestionAttemptMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *QuestionAttemptMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.QuestionAttempt, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *QuestionAttemptMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *QuestionAttemptMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (QuestionAttempt).
func (m *QuestionAttemptMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *QuestionAttemptMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.created_at != nil {
		fields = append(fields, questionattempt.FieldCreatedAt)
	}
	if m.session_id != nil {
		fields = append(fields, questionattempt.FieldSessionID)
	}
	if m.question_id != nil {
		fields = append(fields, questionattempt.FieldQuestionID)
	}
	if m.is_correct != nil {
		fields = append(fields, questionattempt.FieldIsCorrect)
	}
	if m.elapsed_seconds != nil {
		fields = append(fields, questionattempt.FieldElapsedSeconds)
	}
	if m.submitted_options != nil {
		fields = append(fields, questionattempt.FieldSubmittedOptions)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *QuestionAttemptMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case questionattempt.FieldCreatedAt:
		return m.CreatedAt()
	case questionattempt.FieldSessionID:
		return m.SessionID()
	case questionattempt.FieldQuestionID:
		return m.QuestionID()
	case questionattempt.FieldIsCorrect:
		return m.IsCorrect()
	case questionattempt.FieldElapsedSeconds:
		return m.ElapsedSeconds()
	case questionattempt.FieldSubmittedOptions:
		return m.SubmittedOptions()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *QuestionAttemptMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case questionattempt.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case questionattempt.FieldSessionID:
		return m.OldSessionID(ctx)
	case questionattempt.FieldQuestionID:
		return m.OldQuestionID(ctx)
	case questionattempt.FieldIsCorrect:
		return m.OldIsCorrect(ctx)
	case questionattempt.FieldElapsedSeconds:
		return m.OldElapsedSeconds(ctx)
	case questionattempt.FieldSubmittedOptions:
		return m.OldSubmittedOptions(ctx)
	}
	return nil, fmt.Errorf("unknown QuestionAttempt field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QuestionAttemptMutation) SetField(name string, value ent.Value) error {
	switch name {
	case questionattempt.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case questionattempt.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case questionattempt.FieldQuestionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestionID(v)
		return nil
	case questionattempt.FieldIsCorrect:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsCorrect(v)
		return nil
	case questionattempt.FieldElapsedSeconds:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetElapsedSeconds(v)
		return nil
	case questionattempt.FieldSubmittedOptions:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubmittedOptions(v)
		return nil
	}
	return fmt.Errorf("unknown QuestionAttempt field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *QuestionAttemptMutation) AddedFields() []string {
	var fields []string
	if m.addelapsed_seconds != nil {
		fields = append(fields, questionattempt.FieldElapsedSeconds)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *QuestionAttemptMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case questionattempt.FieldElapsedSeconds:
		return m.AddedElapsedSeconds()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QuestionAttemptMutation) AddField(name string, value ent.Value) error {
	switch name {
	case questionattempt.FieldElapsedSeconds:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddElapsedSeconds(v)
		return nil
	}
	return fmt.Errorf("unknown QuestionAttempt numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *QuestionAttemptMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(questionattempt.FieldSubmittedOptions) {
		fields = append(fields, questionattempt.FieldSubmittedOptions)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *QuestionAttemptMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *QuestionAttemptMutation) ClearField(name string) error {
	switch name {
	case questionattempt.FieldSubmittedOptions:
		m.ClearSubmittedOptions()
		return nil
	}
	return fmt.Errorf("unknown QuestionAttempt nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *QuestionAttemptMutation) ResetField(name string) error {
	switch name {
	case questionattempt.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case questionattempt.FieldSessionID:
		m.ResetSessionID()
		return nil
	case questionattempt.FieldQuestionID:
		m.ResetQuestionID()
		return nil
	case questionattempt.FieldIsCorrect:
		m.ResetIsCorrect()
		return nil
	case questionattempt.FieldElapsedSeconds:
		m.ResetElapsedSeconds()
		return nil
	case questionattempt.FieldSubmittedOptions:
		m.ResetSubmittedOptions()
		return nil
	}
	return fmt.Errorf("unknown QuestionAttempt field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *QuestionAttemptMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *QuestionAttemptMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *QuestionAttemptMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *QuestionAttemptMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *QuestionAttemptMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *QuestionAttemptMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *QuestionAttemptMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown QuestionAttempt unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *QuestionAttemptMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown QuestionAttempt edge %s", name)
}

// QuestionStatMutation represents an operation that mutates the QuestionStat nodes in the graph.
type QuestionStatMutation struct {
	config
	op                       Op
	typ                      string
	id                       *string
	created_at               *time.Time
	question_id              *string
	attempt_count            *int
	addattempt_count         *int
	correct_count            *int
	addcorrect_count         *int
	total_elapsed_seconds    *float64
	addtotal_elapsed_seconds *float64
	last_attempted_at        *time.Time
	clearedFields            map[string]struct{}
	done                     bool
	oldValue                 func(context.Context) (*QuestionStat, error)
	predicates               []predicate.QuestionStat
}

var _ ent.Mutation = (*QuestionStatMutation)(nil)

// questionstatOption allows management of the mutation configuration using functional options.
type questionstatOption func(*QuestionStatMutation)

// newQuestionStatMutation creates new mutation for the QuestionStat entity.
func newQuestionStatMutation(c config, op Op, opts ...questionstatOption) *QuestionStatMutation {
	m := &QuestionStatMutation{
		config:        c,
		op:            op,
		typ:           TypeQuestionStat,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withQuestionStatID sets the ID field of the mutation.
func withQuestionStatID(id string) questionstatOption {
	return func(m *QuestionStatMutation) {
		var (
			err   error
			once  sync.Once
			value *QuestionStat
		)
		m.oldValue = func(ctx context.Context) (*QuestionStat, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().QuestionStat.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withQuestionStat sets the old QuestionStat of the mutation.
func withQuestionStat(node *QuestionStat) questionstatOption {
	return func(m *QuestionStatMutation) {
		m.oldValue = func(context.Context) (*QuestionStat, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m QuestionStatMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m QuestionStatMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of QuestionStat entities.
func (m *QuestionStatMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *QuestionStatMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *QuestionStatMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().QuestionStat.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *QuestionStatMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *QuestionStatMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the QuestionStat entity.
// If the QuestionStat object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionStatMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *QuestionStatMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetQuestionID sets the "question_id" field.
func (m *QuestionStatMutation) SetQuestionID(s string) {
	m.question_id = &s
}

// QuestionID returns the value of the "question_id" field in the mutation.
func (m *QuestionStatMutation) QuestionID() (r string, exists bool) {
	v := m.question_id
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestionID returns the old "question_id" field's value of the QuestionStat entity.
// If the QuestionStat object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionStatMutation) OldQuestionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestionID: %w", err)
	}
	return oldValue.QuestionID, nil
}

// ResetQuestionID resets all changes to the "question_id" field.
func (m *QuestionStatMutation) ResetQuestionID() {
	m.question_id = nil
}

// SetAttemptCount sets the "attempt_count" field.
func (m *QuestionStatMutation) SetAttemptCount(i int) {
	m.attempt_count = &i
	m.addattempt_count = nil
}

// AttemptCount returns the value of the "attempt_count" field in the mutation.
func (m *QuestionStatMutation) AttemptCount() (r int, exists bool) {
	v := m.attempt_count
	if v == nil {
		return
	}
	return *v, true
}

// OldAttemptCount returns the old "attempt_count" field's value of the QuestionStat entity.
// If the QuestionStat object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionStatMutation) OldAttemptCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttemptCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttemptCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttemptCount: %w", err)
	}
	return oldValue.AttemptCount, nil
}

// AddAttemptCount adds i to the "attempt_count" field.
func (m *QuestionStatMutation) AddAttemptCount(i int) {
	if m.addattempt_count != nil {
		*m.addattempt_count += i
	} else {
		m.addattempt_count = &i
	}
}

// AddedAttemptCount returns the value that was added to the "attempt_count" field in this mutation.
func (m *QuestionStatMutation) AddedAttemptCount() (r int, exists bool) {
	v := m.addattempt_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetAttemptCount resets all changes to the "attempt_count" field.
func (m *QuestionStatMutation) ResetAttemptCount() {
	m.attempt_count = nil
	m.addattempt_count = nil
}

// SetCorrectCount sets the "correct_count" field.
func (m *QuestionStatMutation) SetCorrectCount(i int) {
	m.correct_count = &i
	m.addcorrect_count = nil
}

// CorrectCount returns the value of the "correct_count" field in the mutation.
func (m *QuestionStatMutation) CorrectCount() (r int, exists bool) {
	v := m.correct_count
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrectCount returns the old "correct_count" field's value of the QuestionStat entity.
// If the QuestionStat object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionStatMutation) OldCorrectCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrectCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrectCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrectCount: %w", err)
	}
	return oldValue.CorrectCount, nil
}

// AddCorrectCount adds i to the "correct_count" field.
func (m *QuestionStatMutation) AddCorrectCount(i int) {
	if m.addcorrect_count != nil {
		*m.addcorrect_count += i
	} else {
		m.addcorrect_count = &i
	}
}

// AddedCorrectCount returns the value that was added to the "correct_count" field in this mutation.
func (m *QuestionStatMutation) AddedCorrectCount() (r int, exists bool) {
	v := m.addcorrect_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetCorrectCount resets all changes to the "correct_count" field.
func (m *QuestionStatMutation) ResetCorrectCount() {
	m.correct_count = nil
	m.addcorrect_count = nil
}

// SetTotalElapsedSeconds sets the "total_elapsed_seconds" field.
func (m *QuestionStatMutation) SetTotalElapsedSeconds(f float64) {
	m.total_elapsed_seconds = &f
	m.addtotal_elapsed_seconds = nil
}

// TotalElapsedSeconds returns the value of the "total_elapsed_seconds" field in the mutation.
func (m *QuestionStatMutation) TotalElapsedSeconds() (r float64, exists bool) {
	v := m.total_elapsed_seconds
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalElapsedSeconds returns the old "total_elapsed_seconds" field's value of the QuestionStat entity.
// If the QuestionStat object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionStatMutation) OldTotalElapsedSeconds(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalElapsedSeconds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalElapsedSeconds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalElapsedSeconds: %w", err)
	}
	return oldValue.TotalElapsedSeconds, nil
}

// AddTotalElapsedSeconds adds f to the "total_elapsed_seconds" field.
func (m *QuestionStatMutation) AddTotalElapsedSeconds(f float64) {
	if m.addtotal_elapsed_seconds != nil {
		*m.addtotal_elapsed_seconds += f
	} else {
		m.addtotal_elapsed_seconds = &f
	}
}

// AddedTotalElapsedSeconds returns the value that was added to the "total_elapsed_seconds" field in this mutation.
func (m *QuestionStatMutation) AddedTotalElapsedSeconds() (r float64, exists bool) {
	v := m.addtotal_elapsed_seconds
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalElapsedSeconds resets all changes to the "total_elapsed_seconds" field.
func (m *QuestionStatMutation) ResetTotalElapsedSeconds() {
	m.total_elapsed_seconds = nil
	m.addtotal_elapsed_seconds = nil
}

// SetLastAttemptedAt sets the "last_attempted_at" field.
func (m *QuestionStatMutation) SetLastAttemptedAt(t time.Time) {
	m.last_attempted_at = &t
}

// LastAttemptedAt returns the value of the "last_attempted_at" field in the mutation.
func (m *QuestionStatMutation) LastAttemptedAt() (r time.Time, exists bool) {
	v := m.last_attempted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastAttemptedAt returns the old "last_attempted_at" field's value of the QuestionStat entity.
// If the QuestionStat object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionStatMutation) OldLastAttemptedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastAttemptedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastAttemptedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastAttemptedAt: %w", err)
	}
	return oldValue.LastAttemptedAt, nil
}

// ClearLastAttemptedAt clears the value of the "last_attempted_at" field.
func (m *QuestionStatMutation) ClearLastAttemptedAt() {
	m.last_attempted_at = nil
	m.clearedFields[questionstat.FieldLastAttemptedAt] = struct{}{}
}

// LastAttemptedAtCleared returns if the "last_attempted_at" field was cleared in this mutation.
func (m *QuestionStatMutation) LastAttemptedAtCleared() bool {
	_, ok := m.clearedFields[questionstat.FieldLastAttemptedAt]
	return ok
}

// ResetLastAttemptedAt resets all changes to the "last_attempted_at" field.
func (m *QuestionStatMutation) ResetLastAttemptedAt() {
	m.last_attempted_at = nil
	delete(m.clearedFields, questionstat.FieldLastAttemptedAt)
}

// Where appends a list predicates to the QuestionStatMutation builder.
func (m *QuestionStatMutation) Where(ps ...predicate.QuestionStat) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the QuestionStatMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *QuestionStatMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.QuestionStat, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *QuestionStatMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *QuestionStatMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (QuestionStat).
func (m *QuestionStatMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *QuestionStatMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.created_at != nil {
		fields = append(fields, questionstat.FieldCreatedAt)
	}
	if m.question_id != nil {
		fields = append(fields, questionstat.FieldQuestionID)
	}
	if m.attempt_count != nil {
		fields = append(fields, questionstat.FieldAttemptCount)
	}
	if m.correct_count != nil {
		fields = append(fields, questionstat.FieldCorrectCount)
	}
	if m.total_elapsed_seconds != nil {
		fields = append(fields, questionstat.FieldTotalElapsedSeconds)
	}
	if m.last_attempted_at != nil {
		fields = append(fields, questionstat.FieldLastAttemptedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *QuestionStatMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case questionstat.FieldCreatedAt:
		return m.CreatedAt()
	case questionstat.FieldQuestionID:
		return m.QuestionID()
	case questionstat.FieldAttemptCount:
		return m.AttemptCount()
	case questionstat.FieldCorrectCount:
		return m.CorrectCount()
	case questionstat.FieldTotalElapsedSeconds:
		return m.TotalElapsedSeconds()
	case questionstat.FieldLastAttemptedAt:
		return m.LastAttemptedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *QuestionStatMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case questionstat.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case questionstat.FieldQuestionID:
		return m.OldQuestionID(ctx)
	case questionstat.FieldAttemptCount:
		return m.OldAttemptCount(ctx)
	case questionstat.FieldCorrectCount:
		return m.OldCorrectCount(ctx)
	case questionstat.FieldTotalElapsedSeconds:
		return m.OldTotalElapsedSeconds(ctx)
	case questionstat.FieldLastAttemptedAt:
		return m.OldLastAttemptedAt(ctx)
	}
	return nil, fmt.Errorf("unknown QuestionStat field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QuestionStatMutation) SetField(name string, value ent.Value) error {
	switch name {
	case questionstat.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case questionstat.FieldQuestionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestionID(v)
		return nil
	case questionstat.FieldAttemptCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttemptCount(v)
		return nil
	case questionstat.FieldCorrectCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrectCount(v)
		return nil
	case questionstat.FieldTotalElapsedSeconds:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalElapsedSeconds(v)
		return nil
	case questionstat.FieldLastAttemptedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastAttemptedAt(v)
		return nil
	}
	return fmt.Errorf("unknown QuestionStat field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *QuestionStatMutation) AddedFields() []string {
	var fields []string
	if m.addattempt_count != nil {
		fields = append(fields, questionstat.FieldAttemptCount)
	}
	if m.addcorrect_count != nil {
		fields = append(fields, questionstat.FieldCorrectCount)
	}
	if m.addtotal_elapsed_seconds != nil {
		fields = append(fields, questionstat.FieldTotalElapsedSeconds)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *QuestionStatMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case questionstat.FieldAttemptCount:
		return m.AddedAttemptCount()
	case questionstat.FieldCorrectCount:
		return m.AddedCorrectCount()
	case questionstat.FieldTotalElapsedSeconds:
		return m.AddedTotalElapsedSeconds()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QuestionStatMutation) AddField(name string, value ent.Value) error {
	switch name {
	case questionstat.FieldAttemptCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttemptCount(v)
		return nil
	case questionstat.FieldCorrectCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCorrectCount(v)
		return nil
	case questionstat.FieldTotalElapsedSeconds:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalElapsedSeconds(v)
		return nil
	}
	return fmt.Errorf("unknown QuestionStat numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *QuestionStatMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(questionstat.FieldLastAttemptedAt) {
		fields = append(fields, questionstat.FieldLastAttemptedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *QuestionStatMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *QuestionStatMutation) ClearField(name string) error {
	switch name {
	case questionstat.FieldLastAttemptedAt:
		m.ClearLastAttemptedAt()
		return nil
	}
	return fmt.Errorf("unknown QuestionStat nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *QuestionStatMutation) ResetField(name string) error {
	switch name {
	case questionstat.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case questionstat.FieldQuestionID:
		m.ResetQuestionID()
		return nil
	case questionstat.FieldAttemptCount:
		m.ResetAttemptCount()
		return nil
	case questionstat.FieldCorrectCount:
		m.ResetCorrectCount()
		return nil
	case questionstat.FieldTotalElapsedSeconds:
		m.ResetTotalElapsedSeconds()
		return nil
	case questionstat.FieldLastAttemptedAt:
		m.ResetLastAttemptedAt()
		return nil
	}
	return fmt.Errorf("unknown QuestionStat field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *QuestionStatMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *QuestionStatMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *QuestionStatMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *QuestionStatMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *QuestionStatMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *QuestionStatMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *QuestionStatMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown QuestionStat unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *QuestionStatMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown QuestionStat edge %s", name)
}

// TopicMutation represents an operation that mutates the Topic nodes in the graph.
type TopicMutation struct {
	config
	op                Op
	typ               string
	id                *string
	created_at        *time.Time
	exam_id           *string
	name              *string
	description       *string
	weight_percent    *int
	addweight_percent *int
	clearedFields     map[string]struct{}
	questions         map[string]struct{}
	removedquestions  map[string]struct{}
	clearedquestions  bool
	done              bool
	oldValue          func(context.Context) (*Topic, error)
	predicates        []predicate.Topic
}

var _ ent.Mutation = (*TopicMutation)(nil)

// topicOption allows management of the mutation configuration using functional options.
type topicOption func(*TopicMutation)

// newTopicMutation creates new mutation for the Topic entity.
func newTopicMutation(c config, op Op, opts ...topicOption) *TopicMutation {
	m := &TopicMutation{
		config:        c,
		op:            op,
		typ:           TypeTopic,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTopicID sets the ID field of the mutation.
func withTopicID(id string) topicOption {
	return func(m *TopicMutation) {
		var (
			err   error
			once  sync.Once
			value *Topic
		)
		m.oldValue = func(ctx context.Context) (*Topic, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Topic.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTopic sets the old Topic of the mutation.
func withTopic(node *Topic) topicOption {
	return func(m *TopicMutation) {
		m.oldValue = func(context.Context) (*Topic, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TopicMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TopicMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Topic entities.
func (m *TopicMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TopicMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TopicMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Topic.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *TopicMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TopicMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Topic entity.
// If the Topic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TopicMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetExamID sets the "exam_id" field.
func (m *TopicMutation) SetExamID(s string) {
	m.exam_id = &s
}

// ExamID returns the value of the "exam_id" field in the mutation.
func (m *TopicMutation) ExamID() (r string, exists bool) {
	v := m.exam_id
	if v == nil {
		return
	}
	return *v, true
}

// OldExamID returns the old "exam_id" field's value of the Topic entity.
// If the Topic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicMutation) OldExamID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExamID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExamID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExamID: %w", err)
	}
	return oldValue.ExamID, nil
}

// ResetExamID resets all changes to the "exam_id" field.
func (m *TopicMutation) ResetExamID() {
	m.exam_id = nil
}

// SetName sets the "name" field.
func (m *TopicMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *TopicMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Topic entity.
// If the Topic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *TopicMutation) ResetName() {
	m.name = nil
}

// SetDescription sets the "description" field.
func (m *TopicMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *TopicMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Topic entity.
// If the Topic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ResetDescription resets all changes to the "description" field.
func (m *TopicMutation) ResetDescription() {
	m.description = nil
}

// SetWeightPercent sets the "weight_percent" field.
func (m *TopicMutation) SetWeightPercent(i int) {
	m.weight_percent = &i
	m.addweight_percent = nil
}

// WeightPercent returns the value of the "weight_percent" field in the mutation.
func (m *TopicMutation) WeightPercent() (r int, exists bool) {
	v := m.weight_percent
	if v == nil {
		return
	}
	return *v, true
}

// OldWeightPercent returns the old "weight_percent" field's value of the Topic entity.
// If the Topic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicMutation) OldWeightPercent(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWeightPercent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWeightPercent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWeightPercent: %w", err)
	}
	return oldValue.WeightPercent, nil
}

// AddWeightPercent adds i to the "weight_percent" field.
func (m *TopicMutation) AddWeightPercent(i int) {
	if m.addweight_percent != nil {
		*m.addweight_percent += i
	} else {
		m.addweight_percent = &i
	}
}

// AddedWeightPercent returns the value that was added to the "weight_percent" field in this mutation.
func (m *TopicMutation) AddedWeightPercent() (r int, exists bool) {
	v := m.addweight_percent
	if v == nil {
		return
	}
	return *v, true
}

// ResetWeightPercent resets all changes to the "weight_percent" field.
func (m *TopicMutation) ResetWeightPercent() {
	m.weight_percent = nil
	m.addweight_percent = nil
}

// AddQuestionIDs adds the "questions" edge to the Question entity by ids.
func (m *TopicMutation) AddQuestionIDs(ids ...string) {
	if m.questions == nil {
		m.questions = make(map[string]struct{})
	}
	for i := range ids {
		m.questions[ids[i]] = struct{}{}
	}
}

// ClearQuestions clears the "questions" edge to the Question entity.
func (m *TopicMutation) ClearQuestions() {
	m.clearedquestions = true
}

// QuestionsCleared reports if the "questions" edge to the Question entity was cleared.
func (m *TopicMutation) QuestionsCleared() bool {
	return m.clearedquestions
}

// RemoveQuestionIDs removes the "questions" edge to the Question entity by IDs.
func (m *TopicMutation) RemoveQuestionIDs(ids ...string) {
	if m.removedquestions == nil {
		m.removedquestions = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.questions, ids[i])
		m.removedquestions[ids[i]] = struct{}{}
	}
}

// RemovedQuestions returns the removed IDs of the "questions" edge to the Question entity.
func (m *TopicMutation) RemovedQuestionsIDs() (ids []string) {
	for id := range m.removedquestions {
		ids = append(ids, id)
	}
	return
}

// QuestionsIDs returns the "questions" edge IDs in the mutation.
func (m *TopicMutation) QuestionsIDs() (ids []string) {
	for id := range m.questions {
		ids = append(ids, id)
	}
	return
}

// ResetQuestions resets all changes to the "questions" edge.
func (m *TopicMutation) ResetQuestions() {
	m.questions = nil
	m.clearedquestions = false
	m.removedquestions = nil
}

// Where appends a list predicates to the TopicMutation builder.
func (m *TopicMutation) Where(ps ...predicate.Topic) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TopicMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TopicMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Topic, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TopicMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TopicMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Topic).
func (m *TopicMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TopicMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.created_at != nil {
		fields = append(fields, topic.FieldCreatedAt)
	}
	if m.exam_id != nil {
		fields = append(fields, topic.FieldExamID)
	}
	if m.name != nil {
		fields = append(fields, topic.FieldName)
	}
	if m.description != nil {
		fields = append(fields, topic.FieldDescription)
	}
	if m.weight_percent != nil {
		fields = append(fields, topic.FieldWeightPercent)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TopicMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case topic.FieldCreatedAt:
		return m.CreatedAt()
	case topic.FieldExamID:
		return m.ExamID()
	case topic.FieldName:
		return m.Name()
	case topic.FieldDescription:
		return m.Description()
	case topic.FieldWeightPercent:
		return m.WeightPercent()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TopicMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case topic.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case topic.FieldExamID:
		return m.OldExamID(ctx)
	case topic.FieldName:
		return m.OldName(ctx)
	case topic.FieldDescription:
		return m.OldDescription(ctx)
	case topic.FieldWeightPercent:
		return m.OldWeightPercent(ctx)
	}
	return nil, fmt.Errorf("unknown Topic field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TopicMutation) SetField(name string, value ent.Value) error {
	switch name {
	case topic.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case topic.FieldExamID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExamID(v)
		return nil
	case topic.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case topic.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case topic.FieldWeightPercent:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWeightPercent(v)
		return nil
	}
	return fmt.Errorf("unknown Topic field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TopicMutation) AddedFields() []string {
	var fields []string
	if m.addweight_percent != nil {
		fields = append(fields, topic.FieldWeightPercent)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TopicMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case topic.FieldWeightPercent:
		return m.AddedWeightPercent()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TopicMutation) AddField(name string, value ent.Value) error {
	switch name {
	case topic.FieldWeightPercent:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddWeightPercent(v)
		return nil
	}
	return fmt.Errorf("unknown Topic numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TopicMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TopicMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TopicMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Topic nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TopicMutation) ResetField(name string) error {
	switch name {
	case topic.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case topic.FieldExamID:
		m.ResetExamID()
		return nil
	case topic.FieldName:
		m.ResetName()
		return nil
	case topic.FieldDescription:
		m.ResetDescription()
		return nil
	case topic.FieldWeightPercent:
		m.ResetWeightPercent()
		return nil
	}
	return fmt.Errorf("unknown Topic field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TopicMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.questions != nil {
		edges = append(edges, topic.EdgeQuestions)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TopicMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case topic.EdgeQuestions:
		ids := make([]ent.Value, 0, len(m.questions))
		for id := range m.questions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TopicMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedquestions != nil {
		edges = append(edges, topic.EdgeQuestions)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TopicMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case topic.EdgeQuestions:
		ids := make([]ent.Value, 0, len(m.removedquestions))
		for id := range m.removedquestions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TopicMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedquestions {
		edges = append(edges, topic.EdgeQuestions)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TopicMutation) EdgeCleared(name string) bool {
	switch name {
	case topic.EdgeQuestions:
		return m.clearedquestions
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TopicMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Topic unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TopicMutation) ResetEdge(name string) error {
	switch name {
	case topic.EdgeQuestions:
		m.ResetQuestions()
		return nil
	}
	return fmt.Errorf("unknown Topic edge %s", name)
}
