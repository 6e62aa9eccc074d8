// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/jfarleigh/certrun/ent/answeroption"
	"github.com/jfarleigh/certrun/ent/question"
)

// AnswerOption is the model entity for the AnswerOption schema.
type AnswerOption struct {
	config `json:"-"`
	// ID of the ent.
	// UUID primary key
	ID string `json:"id,omitempty"`
	// UTC creation time
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Owning question UUID
	QuestionID string `json:"question_id,omitempty"`
	// Text holds the value of the "text" field.
	Text string `json:"text,omitempty"`
	// IsCorrect holds the value of the "is_correct" field.
	IsCorrect bool `json:"is_correct,omitempty"`
	// Why this wrong answer is plausible, empty for correct options
	DistractorReason string `json:"distractor_reason,omitempty"`
	// Authoring order, stable across reads
	Position int `json:"position,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the AnswerOptionQuery when eager-loading is set.
	Edges        AnswerOptionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// AnswerOptionEdges holds the relations/edges for other nodes in the graph.
type AnswerOptionEdges struct {
	// Question holds the value of the question edge.
	Question *Question `json:"question,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// QuestionOrErr returns the Question value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AnswerOptionEdges) QuestionOrErr() (*Question, error) {
	if e.Question != nil {
		return e.Question, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: question.Label}
	}
	return nil, &NotLoadedError{edge: "question"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AnswerOption) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case answeroption.FieldIsCorrect:
			values[i] = new(sql.NullBool)
		case answeroption.FieldPosition:
			values[i] = new(sql.NullInt64)
		case answeroption.FieldID, answeroption.FieldQuestionID, answeroption.FieldText, answeroption.FieldDistractorReason:
			values[i] = new(sql.NullString)
		case answeroption.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AnswerOption fields.
func (ao *AnswerOption) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case answeroption.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				ao.ID = value.String
			}
		case answeroption.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				ao.CreatedAt = value.Time
			}
		case answeroption.FieldQuestionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field question_id", values[i])
			} else if value.Valid {
				ao.QuestionID = value.String
			}
		case answeroption.FieldText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field text", values[i])
			} else if value.Valid {
				ao.Text = value.String
			}
		case answeroption.FieldIsCorrect:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_correct", values[i])
			} else if value.Valid {
				ao.IsCorrect = value.Bool
			}
		case answeroption.FieldDistractorReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field distractor_reason", values[i])
			} else if value.Valid {
				ao.DistractorReason = value.String
			}
		case answeroption.FieldPosition:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field position", values[i])
			} else if value.Valid {
				ao.Position = int(value.Int64)
			}
		default:
			ao.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AnswerOption.
// This includes values selected through modifiers, order, etc.
func (ao *AnswerOption) Value(name string) (ent.Value, error) {
	return ao.selectValues.Get(name)
}

// QueryQuestion queries the "question" edge of the AnswerOption entity.
func (ao *AnswerOption) QueryQuestion() *QuestionQuery {
	return NewAnswerOptionClient(ao.config).QueryQuestion(ao)
}

// Update returns a builder for updating this AnswerOption.
// Note that you need to call AnswerOption.Unwrap() before calling this method if this AnswerOption
// was returned from a transaction, and the transaction was committed or rolled back.
func (ao *AnswerOption) Update() *AnswerOptionUpdateOne {
	return NewAnswerOptionClient(ao.config).UpdateOne(ao)
}

// Unwrap unwraps the AnswerOption entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (ao *AnswerOption) Unwrap() *AnswerOption {
	_tx, ok := ao.config.driver.(*txDriver)
	if !ok {
		panic("ent: AnswerOption is not a transactional entity")
	}
	ao.config.driver = _tx.drv
	return ao
}

// String implements the fmt.Stringer.
func (ao *AnswerOption) String() string {
	var builder strings.Builder
	builder.WriteString("AnswerOption(")
	builder.WriteString(fmt.Sprintf("id=%v, ", ao.ID))
	builder.WriteString("created_at=")
	builder.WriteString(ao.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("question_id=")
	builder.WriteString(ao.QuestionID)
	builder.WriteString(", ")
	builder.WriteString("text=")
	builder.WriteString(ao.Text)
	builder.WriteString(", ")
	builder.WriteString("is_correct=")
	builder.WriteString(fmt.Sprintf("%v", ao.IsCorrect))
	builder.WriteString(", ")
	builder.WriteString("distractor_reason=")
	builder.WriteString(ao.DistractorReason)
	builder.WriteString(", ")
	builder.WriteString("position=")
	builder.WriteString(fmt.Sprintf("%v", ao.Position))
	builder.WriteByte(')')
	return builder.String()
}

// AnswerOptions is a parsable slice of AnswerOption.
type AnswerOptions []*AnswerOption
