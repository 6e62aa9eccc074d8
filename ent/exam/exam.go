// Code generated by ent, DO NOT EDIT.

package exam

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the exam type in the database.
	Label = "exam"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldVendor holds the string denoting the vendor field in the database.
	FieldVendor = "vendor"
	// FieldExamCode holds the string denoting the exam_code field in the database.
	FieldExamCode = "exam_code"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldPassingScore holds the string denoting the passing_score field in the database.
	FieldPassingScore = "passing_score"
	// FieldTimeLimitMinutes holds the string denoting the time_limit_minutes field in the database.
	FieldTimeLimitMinutes = "time_limit_minutes"
	// Table holds the table name of the exam in the database.
	Table = "exams"
)

// Columns holds all SQL columns for exam fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldName,
	FieldVendor,
	FieldExamCode,
	FieldDescription,
	FieldPassingScore,
	FieldTimeLimitMinutes,
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
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// DefaultVendor holds the default value on creation for the "vendor" field.
	DefaultVendor string
	// DefaultExamCode holds the default value on creation for the "exam_code" field.
	DefaultExamCode string
	// DefaultDescription holds the default value on creation for the "description" field.
	DefaultDescription string
	// DefaultPassingScore holds the default value on creation for the "passing_score" field.
	DefaultPassingScore int
	// PassingScoreValidator is a validator for the "passing_score" field. It is called by the builders before save.
	PassingScoreValidator func(int) error
	// DefaultTimeLimitMinutes holds the default value on creation for the "time_limit_minutes" field.
	DefaultTimeLimitMinutes int
	// TimeLimitMinutesValidator is a validator for the "time_limit_minutes" field. It is called by the builders before save.
	TimeLimitMinutesValidator func(int) error
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() string
)

// OrderOption defines the ordering options for the Exam queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByVendor orders the results by the vendor field.
func ByVendor(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVendor, opts...).ToFunc()
}

// ByExamCode orders the results by the exam_code field.
func ByExamCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExamCode, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByPassingScore orders the results by the passing_score field.
func ByPassingScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPassingScore, opts...).ToFunc()
}

// ByTimeLimitMinutes orders the results by the time_limit_minutes field.
func ByTimeLimitMinutes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimeLimitMinutes, opts...).ToFunc()
}
