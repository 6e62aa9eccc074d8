// Code generated by ent, DO NOT EDIT.

package questionattempt

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the questionattempt type in the database.
	Label = "question_attempt"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldQuestionID holds the string denoting the question_id field in the database.
	FieldQuestionID = "question_id"
	// FieldIsCorrect holds the string denoting the is_correct field in the database.
	FieldIsCorrect = "is_correct"
	// FieldElapsedSeconds holds the string denoting the elapsed_seconds field in the database.
	FieldElapsedSeconds = "elapsed_seconds"
	// FieldSubmittedOptions holds the string denoting the submitted_options field in the database.
	FieldSubmittedOptions = "submitted_options"
	// Table holds the table name of the questionattempt in the database.
	Table = "question_attempts"
)

// Columns holds all SQL columns for questionattempt fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldSessionID,
	FieldQuestionID,
	FieldIsCorrect,
	FieldElapsedSeconds,
	FieldSubmittedOptions,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	SessionIDValidator func(string) error
	// QuestionIDValidator is a validator for the "question_id" field. It is called by the builders before save.
	QuestionIDValidator func(string) error
	// DefaultElapsedSeconds holds the default value on creation for the "elapsed_seconds" field.
	DefaultElapsedSeconds float64
	// ElapsedSecondsValidator is a validator for the "elapsed_seconds" field. It is called by the builders before save.
	ElapsedSecondsValidator func(float64) error
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() string
)

// OrderOption defines the ordering options for the QuestionAttempt queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByQuestionID orders the results by the question_id field.
func ByQuestionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestionID, opts...).ToFunc()
}

// ByIsCorrect orders the results by the is_correct field.
func ByIsCorrect(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsCorrect, opts...).ToFunc()
}

// ByElapsedSeconds orders the results by the elapsed_seconds field.
func ByElapsedSeconds(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldElapsedSeconds, opts...).ToFunc()
}
