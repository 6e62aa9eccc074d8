// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AnswerOption is the predicate function for answeroption builders.
type AnswerOption func(*sql.Selector)

// Exam is the predicate function for exam builders.
type Exam func(*sql.Selector)

// PracticeSession is the predicate function for practicesession builders.
type PracticeSession func(*sql.Selector)

// Question is the predicate function for question builders.
type Question func(*sql.Selector)

// QuestionAttempt is the predicate function for questionattempt builders.
type QuestionAttempt func(*sql.Selector)

// QuestionStat is the predicate function for questionstat builders.
type QuestionStat func(*sql.Selector)

// Topic is the predicate function for topic builders.
type Topic func(*sql.Selector)
