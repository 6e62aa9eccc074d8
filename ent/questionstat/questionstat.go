// Code generated by ent, DO NOT EDIT.

package questionstat

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the questionstat type in the database.
	Label = "question_stat"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldQuestionID holds the string denoting the question_id field in the database.
	FieldQuestionID = "question_id"
	// FieldAttemptCount holds the string denoting the attempt_count field in the database.
	FieldAttemptCount = "attempt_count"
	// FieldCorrectCount holds the string denoting the correct_count field in the database.
	FieldCorrectCount = "correct_count"
	// FieldTotalElapsedSeconds holds the string denoting the total_elapsed_seconds field in the database.
	FieldTotalElapsedSeconds = "total_elapsed_seconds"
	// FieldLastAttemptedAt holds the string denoting the last_attempted_at field in the database.
	FieldLastAttemptedAt = "last_attempted_at"
	// Table holds the table name of the questionstat in the database.
	Table = "question_stats"
)

// Columns holds all SQL columns for questionstat fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldQuestionID,
	FieldAttemptCount,
	FieldCorrectCount,
	FieldTotalElapsedSeconds,
	FieldLastAttemptedAt,
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
	// QuestionIDValidator is a validator for the "question_id" field. It is called by the builders before save.
	QuestionIDValidator func(string) error
	// DefaultAttemptCount holds the default value on creation for the "attempt_count" field.
	DefaultAttemptCount int
	// AttemptCountValidator is a validator for the "attempt_count" field. It is called by the builders before save.
	AttemptCountValidator func(int) error
	// DefaultCorrectCount holds the default value on creation for the "correct_count" field.
	DefaultCorrectCount int
	// CorrectCountValidator is a validator for the "correct_count" field. It is called by the builders before save.
	CorrectCountValidator func(int) error
	// DefaultTotalElapsedSeconds holds the default value on creation for the "total_elapsed_seconds" field.
	DefaultTotalElapsedSeconds float64
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() string
)

// OrderOption defines the ordering options for the QuestionStat queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByQuestionID orders the results by the question_id field.
func ByQuestionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestionID, opts...).ToFunc()
}

// ByAttemptCount orders the results by the attempt_count field.
func ByAttemptCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAttemptCount, opts...).ToFunc()
}

// ByCorrectCount orders the results by the correct_count field.
func ByCorrectCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrectCount, opts...).ToFunc()
}

// ByTotalElapsedSeconds orders the results by the total_elapsed_seconds field.
func ByTotalElapsedSeconds(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalElapsedSeconds, opts...).ToFunc()
}

// ByLastAttemptedAt orders the results by the last_attempted_at field.
func ByLastAttemptedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastAttemptedAt, opts...).ToFunc()
}
