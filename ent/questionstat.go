// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/jfarleigh/certrun/ent/questionstat"
)

// QuestionStat is the model entity for the QuestionStat schema.
type QuestionStat struct {
	config `json:"-"`
	// ID of the ent.
	// UUID primary key
	ID string `json:"id,omitempty"`
	// UTC creation time
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Question UUID, one stat row per question
	QuestionID string `json:"question_id,omitempty"`
	// AttemptCount holds the value of the "attempt_count" field.
	AttemptCount int `json:"attempt_count,omitempty"`
	// CorrectCount holds the value of the "correct_count" field.
	CorrectCount int `json:"correct_count,omitempty"`
	// Sum of answer times, for average-time reporting
	TotalElapsedSeconds float64 `json:"total_elapsed_seconds,omitempty"`
	// Nil until the first attempt
	LastAttemptedAt *time.Time `json:"last_attempted_at,omitempty"`
	selectValues    sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*QuestionStat) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case questionstat.FieldTotalElapsedSeconds:
			values[i] = new(sql.NullFloat64)
		case questionstat.FieldAttemptCount, questionstat.FieldCorrectCount:
			values[i] = new(sql.NullInt64)
		case questionstat.FieldID, questionstat.FieldQuestionID:
			values[i] = new(sql.NullString)
		case questionstat.FieldCreatedAt, questionstat.FieldLastAttemptedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the QuestionStat fields.
func (qs *QuestionStat) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case questionstat.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				qs.ID = value.String
			}
		case questionstat.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				qs.CreatedAt = value.Time
			}
		case questionstat.FieldQuestionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field question_id", values[i])
			} else if value.Valid {
				qs.QuestionID = value.String
			}
		case questionstat.FieldAttemptCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field attempt_count", values[i])
			} else if value.Valid {
				qs.AttemptCount = int(value.Int64)
			}
		case questionstat.FieldCorrectCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field correct_count", values[i])
			} else if value.Valid {
				qs.CorrectCount = int(value.Int64)
			}
		case questionstat.FieldTotalElapsedSeconds:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field total_elapsed_seconds", values[i])
			} else if value.Valid {
				qs.TotalElapsedSeconds = value.Float64
			}
		case questionstat.FieldLastAttemptedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_attempted_at", values[i])
			} else if value.Valid {
				qs.LastAttemptedAt = new(time.Time)
				*qs.LastAttemptedAt = value.Time
			}
		default:
			qs.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the QuestionStat.
// This includes values selected through modifiers, order, etc.
func (qs *QuestionStat) Value(name string) (ent.Value, error) {
	return qs.selectValues.Get(name)
}

// Update returns a builder for updating this QuestionStat.
// Note that you need to call QuestionStat.Unwrap() before calling this method if this QuestionStat
// was returned from a transaction, and the transaction was committed or rolled back.
func (qs *QuestionStat) Update() *QuestionStatUpdateOne {
	return NewQuestionStatClient(qs.config).UpdateOne(qs)
}

// Unwrap unwraps the QuestionStat entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (qs *QuestionStat) Unwrap() *QuestionStat {
	_tx, ok := qs.config.driver.(*txDriver)
	if !ok {
		panic("ent: QuestionStat is not a transactional entity")
	}
	qs.config.driver = _tx.drv
	return qs
}

// String implements the fmt.Stringer.
func (qs *QuestionStat) String() string {
	var builder strings.Builder
	builder.WriteString("QuestionStat(")
	builder.WriteString(fmt.Sprintf("id=%v, ", qs.ID))
	builder.WriteString("created_at=")
	builder.WriteString(qs.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("question_id=")
	builder.WriteString(qs.QuestionID)
	builder.WriteString(", ")
	builder.WriteString("attempt_count=")
	builder.WriteString(fmt.Sprintf("%v", qs.AttemptCount))
	builder.WriteString(", ")
	builder.WriteString("correct_count=")
	builder.WriteString(fmt.Sprintf("%v", qs.CorrectCount))
	builder.WriteString(", ")
	builder.WriteString("total_elapsed_seconds=")
	builder.WriteString(fmt.Sprintf("%v", qs.TotalElapsedSeconds))
	builder.WriteString(", ")
	if v := qs.LastAttemptedAt; v != nil {
		builder.WriteString("last_attempted_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// QuestionStats is a parsable slice of QuestionStat.
type QuestionStats []*QuestionStat
