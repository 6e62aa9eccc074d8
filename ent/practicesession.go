// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/jfarleigh/certrun/ent/practicesession"
)

// PracticeSession is the model entity for the PracticeSession schema.
type PracticeSession struct {
	config `json:"-"`
	// ID of the ent.
	// UUID primary key
	ID string `json:"id,omitempty"`
	// UTC creation time
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Owning exam UUID
	ExamID string `json:"exam_id,omitempty"`
	// Topic filter used at creation, empty for whole exam
	TopicID string `json:"topic_id,omitempty"`
	// practice or speedrun
	Mode string `json:"mode,omitempty"`
	// Frozen ordered question UUIDs, immutable after insert
	Questions []string `json:"questions,omitempty"`
	// RNG seed used to freeze the list, logged for replay
	SelectionSeed int64 `json:"selection_seed,omitempty"`
	// active, completed or abandoned
	Status string `json:"status,omitempty"`
	// Set once on transition to a terminal status
	EndedAt      *time.Time `json:"ended_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PracticeSession) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case practicesession.FieldQuestions:
			values[i] = new([]byte)
		case practicesession.FieldSelectionSeed:
			values[i] = new(sql.NullInt64)
		case practicesession.FieldID, practicesession.FieldExamID, practicesession.FieldTopicID, practicesession.FieldMode, practicesession.FieldStatus:
			values[i] = new(sql.NullString)
		case practicesession.FieldCreatedAt, practicesession.FieldEndedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PracticeSession fields.
func (ps *PracticeSession) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case practicesession.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				ps.ID = value.String
			}
		case practicesession.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				ps.CreatedAt = value.Time
			}
		case practicesession.FieldExamID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field exam_id", values[i])
			} else if value.Valid {
				ps.ExamID = value.String
			}
		case practicesession.FieldTopicID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field topic_id", values[i])
			} else if value.Valid {
				ps.TopicID = value.String
			}
		case practicesession.FieldMode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field mode", values[i])
			} else if value.Valid {
				ps.Mode = value.String
			}
		case practicesession.FieldQuestions:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field questions", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &ps.Questions); err != nil {
					return fmt.Errorf("unmarshal field questions: %w", err)
				}
			}
		case practicesession.FieldSelectionSeed:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field selection_seed", values[i])
			} else if value.Valid {
				ps.SelectionSeed = value.Int64
			}
		case practicesession.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				ps.Status = value.String
			}
		case practicesession.FieldEndedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field ended_at", values[i])
			} else if value.Valid {
				ps.EndedAt = new(time.Time)
				*ps.EndedAt = value.Time
			}
		default:
			ps.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PracticeSession.
// This includes values selected through modifiers, order, etc.
func (ps *PracticeSession) Value(name string) (ent.Value, error) {
	return ps.selectValues.Get(name)
}

// Update returns a builder for updating this PracticeSession.
// Note that you need to call PracticeSession.Unwrap() before calling this method if this PracticeSession
// was returned from a transaction, and the transaction was committed or rolled back.
func (ps *PracticeSession) Update() *PracticeSessionUpdateOne {
	return NewPracticeSessionClient(ps.config).UpdateOne(ps)
}

// Unwrap unwraps the PracticeSession entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (ps *PracticeSession) Unwrap() *PracticeSession {
	_tx, ok := ps.config.driver.(*txDriver)
	if !ok {
		panic("ent: PracticeSession is not a transactional entity")
	}
	ps.config.driver = _tx.drv
	return ps
}

// String implements the fmt.Stringer.
func (ps *PracticeSession) String() string {
	var builder strings.Builder
	builder.WriteString("PracticeSession(")
	builder.WriteString(fmt.Sprintf("id=%v, ", ps.ID))
	builder.WriteString("created_at=")
	builder.WriteString(ps.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("exam_id=")
	builder.WriteString(ps.ExamID)
	builder.WriteString(", ")
	builder.WriteString("topic_id=")
	builder.WriteString(ps.TopicID)
	builder.WriteString(", ")
	builder.WriteString("mode=")
	builder.WriteString(ps.Mode)
	builder.WriteString(", ")
	builder.WriteString("questions=")
	builder.WriteString(fmt.Sprintf("%v", ps.Questions))
	builder.WriteString(", ")
	builder.WriteString("selection_seed=")
	builder.WriteString(fmt.Sprintf("%v", ps.SelectionSeed))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(ps.Status)
	builder.WriteString(", ")
	if v := ps.EndedAt; v != nil {
		builder.WriteString("ended_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// PracticeSessions is a parsable slice of PracticeSession.
type PracticeSessions []*PracticeSession
