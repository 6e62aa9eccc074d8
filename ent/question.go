// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/jfarleigh/certrun/ent/question"
)

// Question is the model entity for the Question schema.
type Question struct {
	config `json:"-"`
	// ID of the ent.
	// UUID primary key
	ID string `json:"id,omitempty"`
	// UTC creation time
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Owning exam UUID
	ExamID string `json:"exam_id,omitempty"`
	// Question prompt
	Text string `json:"text,omitempty"`
	// single, choose_n or select_all
	QuestionType string `json:"question_type,omitempty"`
	// Required correct picks for choose_n, 0 otherwise
	ChooseCount int `json:"choose_count,omitempty"`
	// easy, medium or hard
	Difficulty string `json:"difficulty,omitempty"`
	// Explanation holds the value of the "explanation" field.
	Explanation string `json:"explanation,omitempty"`
	// Where the question came from, free text
	Source string `json:"source,omitempty"`
	// Question-pattern labels, e.g. scenario or definition
	PatternTags []string `json:"pattern_tags,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the QuestionQuery when eager-loading is set.
	Edges        QuestionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// QuestionEdges holds the relations/edges for other nodes in the graph.
type QuestionEdges struct {
	// Options holds the value of the options edge.
	Options []*AnswerOption `json:"options,omitempty"`
	// Topics holds the value of the topics edge.
	Topics []*Topic `json:"topics,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// OptionsOrErr returns the Options value or an error if the edge
// was not loaded in eager-loading.
func (e QuestionEdges) OptionsOrErr() ([]*AnswerOption, error) {
	if e.loadedTypes[0] {
		return e.Options, nil
	}
	return nil, &NotLoadedError{edge: "options"}
}

// TopicsOrErr returns the Topics value or an error if the edge
// was not loaded in eager-loading.
func (e QuestionEdges) TopicsOrErr() ([]*Topic, error) {
	if e.loadedTypes[1] {
		return e.Topics, nil
	}
	return nil, &NotLoadedError{edge: "topics"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Question) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case question.FieldPatternTags:
			values[i] = new([]byte)
		case question.FieldChooseCount:
			values[i] = new(sql.NullInt64)
		case question.FieldID, question.FieldExamID, question.FieldText, question.FieldQuestionType, question.FieldDifficulty, question.FieldExplanation, question.FieldSource:
			values[i] = new(sql.NullString)
		case question.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Question fields.
func (q *Question) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case question.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				q.ID = value.String
			}
		case question.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				q.CreatedAt = value.Time
			}
		case question.FieldExamID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field exam_id", values[i])
			} else if value.Valid {
				q.ExamID = value.String
			}
		case question.FieldText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field text", values[i])
			} else if value.Valid {
				q.Text = value.String
			}
		case question.FieldQuestionType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field question_type", values[i])
			} else if value.Valid {
				q.QuestionType = value.String
			}
		case question.FieldChooseCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field choose_count", values[i])
			} else if value.Valid {
				q.ChooseCount = int(value.Int64)
			}
		case question.FieldDifficulty:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field difficulty", values[i])
			} else if value.Valid {
				q.Difficulty = value.String
			}
		case question.FieldExplanation:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field explanation", values[i])
			} else if value.Valid {
				q.Explanation = value.String
			}
		case question.FieldSource:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source", values[i])
			} else if value.Valid {
				q.Source = value.String
			}
		case question.FieldPatternTags:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field pattern_tags", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &q.PatternTags); err != nil {
					return fmt.Errorf("unmarshal field pattern_tags: %w", err)
				}
			}
		default:
			q.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Question.
// This includes values selected through modifiers, order, etc.
func (q *Question) Value(name string) (ent.Value, error) {
	return q.selectValues.Get(name)
}

// QueryOptions queries the "options" edge of the Question entity.
func (q *Question) QueryOptions() *AnswerOptionQuery {
	return NewQuestionClient(q.config).QueryOptions(q)
}

// QueryTopics queries the "topics" edge of the Question entity.
func (q *Question) QueryTopics() *TopicQuery {
	return NewQuestionClient(q.config).QueryTopics(q)
}

// Update returns a builder for updating this Question.
// Note that you need to call Question.Unwrap() before calling this method if this Question
// was returned from a transaction, and the transaction was committed or rolled back.
func (q *Question) Update() *QuestionUpdateOne {
	return NewQuestionClient(q.config).UpdateOne(q)
}

// Unwrap unwraps the Question entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (q *Question) Unwrap() *Question {
	_tx, ok := q.config.driver.(*txDriver)
	if !ok {
		panic("ent: Question is not a transactional entity")
	}
	q.config.driver = _tx.drv
	return q
}

// String implements the fmt.Stringer.
func (q *Question) String() string {
	var builder strings.Builder
	builder.WriteString("Question(")
	builder.WriteString(fmt.Sprintf("id=%v, ", q.ID))
	builder.WriteString("created_at=")
	builder.WriteString(q.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("exam_id=")
	builder.WriteString(q.ExamID)
	builder.WriteString(", ")
	builder.WriteString("text=")
	builder.WriteString(q.Text)
	builder.WriteString(", ")
	builder.WriteString("question_type=")
	builder.WriteString(q.QuestionType)
	builder.WriteString(", ")
	builder.WriteString("choose_count=")
	builder.WriteString(fmt.Sprintf("%v", q.ChooseCount))
	builder.WriteString(", ")
	builder.WriteString("difficulty=")
	builder.WriteString(q.Difficulty)
	builder.WriteString(", ")
	builder.WriteString("explanation=")
	builder.WriteString(q.Explanation)
	builder.WriteString(", ")
	builder.WriteString("source=")
	builder.WriteString(q.Source)
	builder.WriteString(", ")
	builder.WriteString("pattern_tags=")
	builder.WriteString(fmt.Sprintf("%v", q.PatternTags))
	builder.WriteByte(')')
	return builder.String()
}

// Questions is a parsable slice of Question.
type Questions []*Question
