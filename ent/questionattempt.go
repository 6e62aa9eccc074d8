// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/jfarleigh/certrun/ent/questionattempt"
)

// QuestionAttempt is the model entity for the QuestionAttempt schema.
type QuestionAttempt struct {
	config `json:"-"`
	// ID of the ent.
	// UUID primary key
	ID string `json:"id,omitempty"`
	// UTC creation time
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Owning session UUID
	SessionID string `json:"session_id,omitempty"`
	// QuestionID holds the value of the "question_id" field.
	QuestionID string `json:"question_id,omitempty"`
	// IsCorrect holds the value of the "is_correct" field.
	IsCorrect bool `json:"is_correct,omitempty"`
	// ElapsedSeconds holds the value of the "elapsed_seconds" field.
	ElapsedSeconds float64 `json:"elapsed_seconds,omitempty"`
	// Option UUIDs the learner picked
	SubmittedOptions []string `json:"submitted_options,omitempty"`
	selectValues     sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*QuestionAttempt) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case questionattempt.FieldSubmittedOptions:
			values[i] = new([]byte)
		case questionattempt.FieldIsCorrect:
			values[i] = new(sql.NullBool)
		case questionattempt.FieldElapsedSeconds:
			values[i] = new(sql.NullFloat64)
		case questionattempt.FieldID, questionattempt.FieldSessionID, questionattempt.FieldQuestionID:
			values[i] = new(sql.NullString)
		case questionattempt.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the QuestionAttempt fields.
func (qa *QuestionAttempt) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case questionattempt.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				qa.ID = value.String
			}
		case questionattempt.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				qa.CreatedAt = value.Time
			}
		case questionattempt.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				qa.SessionID = value.String
			}
		case questionattempt.FieldQuestionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field question_id", values[i])
			} else if value.Valid {
				qa.QuestionID = value.String
			}
		case questionattempt.FieldIsCorrect:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_correct", values[i])
			} else if value.Valid {
				qa.IsCorrect = value.Bool
			}
		case questionattempt.FieldElapsedSeconds:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field elapsed_seconds", values[i])
			} else if value.Valid {
				qa.ElapsedSeconds = value.Float64
			}
		case questionattempt.FieldSubmittedOptions:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field submitted_options", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &qa.SubmittedOptions); err != nil {
					return fmt.Errorf("unmarshal field submitted_options: %w", err)
				}
			}
		default:
			qa.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the QuestionAttempt.
// This includes values selected through modifiers, order, etc.
func (qa *QuestionAttempt) Value(name string) (ent.Value, error) {
	return qa.selectValues.Get(name)
}

// Update returns a builder for updating this QuestionAttempt.
// Note that you need to call QuestionAttempt.Unwrap() before calling this method if this QuestionAttempt
// was returned from a transaction, and the transaction was committed or rolled back.
func (qa *QuestionAttempt) Update() *QuestionAttemptUpdateOne {
	return NewQuestionAttemptClient(qa.config).UpdateOne(qa)
}

// Unwrap unwraps the QuestionAttempt entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (qa *QuestionAttempt) Unwrap() *QuestionAttempt {
	_tx, ok := qa.config.driver.(*txDriver)
	if !ok {
		panic("ent: QuestionAttempt is not a transactional entity")
	}
	qa.config.driver = _tx.drv
	return qa
}

// String implements the fmt.Stringer.
func (qa *QuestionAttempt) String() string {
	var builder strings.Builder
	builder.WriteString("QuestionAttempt(")
	builder.WriteString(fmt.Sprintf("id=%v, ", qa.ID))
	builder.WriteString("created_at=")
	builder.WriteString(qa.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("session_id=")
	builder.WriteString(qa.SessionID)
	builder.WriteString(", ")
	builder.WriteString("question_id=")
	builder.WriteString(qa.QuestionID)
	builder.WriteString(", ")
	builder.WriteString("is_correct=")
	builder.WriteString(fmt.Sprintf("%v", qa.IsCorrect))
	builder.WriteString(", ")
	builder.WriteString("elapsed_seconds=")
	builder.WriteString(fmt.Sprintf("%v", qa.ElapsedSeconds))
	builder.WriteString(", ")
	builder.WriteString("submitted_options=")
	builder.WriteString(fmt.Sprintf("%v", qa.SubmittedOptions))
	builder.WriteByte(')')
	return builder.String()
}

// QuestionAttempts is a parsable slice of QuestionAttempt.
type QuestionAttempts []*QuestionAttempt
