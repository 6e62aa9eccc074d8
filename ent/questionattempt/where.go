// Code generated by ent, DO NOT EDIT.

package questionattempt

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/jfarleigh/certrun/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.QuestionAttempt {
	return predicate.QuestionAttempt(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.QuestionAttempt {
	return predicate.QuestionAttempt(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.QuestionAttempt {
	return predicate.QuestionAttempt(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.QuestionAttempt {
	return predicate.QuestionAttempt(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.QuestionAttempt {
	return predicate.QuestionAttempt(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.QuestionAttempt {
	return predicate.QuestionAttempt(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.QuestionAttempt {
	return predicate.QuestionAttempt(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.QuestionAttempt {
	return predicate.QuestionAttempt(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.QuestionAttempt {
	return predicate.QuestionAttempt(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.QuestionAttempt {
	return predicate.QuestionAttempt(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.QuestionAttempt {
	return predicate.QuestionAttempt(sql.FieldContainsFold(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.QuestionAttempt {
	return predicate.QuestionAttempt(sql.FieldEQ(FieldCreatedAt, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.QuestionAttempt {
	return predicate.QuestionAttempt(sql.FieldEQ(FieldSessionID, v))
}

// QuestionID applies equality check predicate on the "question_id" field. It's identical to QuestionIDEQ.
func QuestionID(v string) predicate.QuestionAttempt {
	return predicate.QuestionAttempt(sql.FieldEQ(FieldQuestionID, v))
}

// IsCorrect applies equality check predicate on the "is_correct" field. It's identical to IsCorrectEQ.
func IsCorrect(v bool) predicate.QuestionAttempt {
	return predicate.QuestionAttempt(sql.FieldEQ(FieldIsCorrect, v))
}

// ElapsedSeconds applies equality check predicate on the "elapsed_seconds" field. It's identical to ElapsedSecondsEQ.
func ElapsedSeconds(v float64) predicate.QuestionAttempt {
	return predicate.QuestionAttempt(sql.FieldEQ(FieldElapsedSeconds, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.QuestionAttempt {
	return predicate.QuestionAttempt(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.QuestionAttempt {
	return predicate.QuestionAttempt(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.QuestionAttempt {
	return predicate.QuestionAttempt(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.QuestionAttempt {
	return predicate.QuestionAttempt(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.QuestionAttempt {
	return predicate.QuestionAttempt(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.QuestionAttempt {
	return predicate.QuestionAttempt(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.QuestionAttempt {
	return predicate.QuestionAttempt(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.QuestionAttempt {
	return predicate.QuestionAttempt(sql.FieldLTE(FieldCreatedAt, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.QuestionAttempt {
	return predicate.QuestionAttempt(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.QuestionAttempt {
	return predicate.QuestionAttempt(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.QuestionAttempt {
	return predicate.QuestionAttempt(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.QuestionAttempt {
	return predicate.QuestionAttempt(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.QuestionAttempt {
	return predicate.QuestionAttempt(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.QuestionAttempt {
	return predicate.QuestionAttempt(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.QuestionAttempt {
	return predicate.QuestionAttempt(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.QuestionAttempt {
	return predicate.QuestionAttempt(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.QuestionAttempt {
	return predicate.QuestionAttempt(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.QuestionAttempt {
	return predicate.QuestionAttempt(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.QuestionAttempt {
	return predicate.QuestionAttempt(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.QuestionAttempt {
	return predicate.QuestionAttempt(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.QuestionAttempt {
	return predicate.QuestionAttempt(sql.FieldContainsFold(FieldSessionID, v))
}

// QuestionIDEQ applies the EQ predicate on the "question_id" field.
func QuestionIDEQ(v string) predicate.QuestionAttempt {
	return predicate.QuestionAttempt(sql.FieldEQ(FieldQuestionID, v))
}

// QuestionIDNEQ applies the NEQ predicate on the "question_id" field.
func QuestionIDNEQ(v string) predicate.QuestionAttempt {
	return predicate.QuestionAttempt(sql.FieldNEQ(FieldQuestionID, v))
}

// QuestionIDIn applies the In predicate on the "question_id" field.
func QuestionIDIn(vs ...string) predicate.QuestionAttempt {
	return predicate.QuestionAttempt(sql.FieldIn(FieldQuestionID, vs...))
}

// QuestionIDNotIn applies the NotIn predicate on the "question_id" field.
func QuestionIDNotIn(vs ...string) predicate.QuestionAttempt {
	return predicate.QuestionAttempt(sql.FieldNotIn(FieldQuestionID, vs...))
}

// QuestionIDGT applies the GT predicate on the "question_id" field.
func QuestionIDGT(v string) predicate.QuestionAttempt {
	return predicate.QuestionAttempt(sql.FieldGT(FieldQuestionID, v))
}

// QuestionIDGTE applies the GTE predicate on the "question_id" field.
func QuestionIDGTE(v string) predicate.QuestionAttempt {
	return predicate.QuestionAttempt(sql.FieldGTE(FieldQuestionID, v))
}

// QuestionIDLT applies the LT predicate on the "question_id" field.
func QuestionIDLT(v string) predicate.QuestionAttempt {
	return predicate.QuestionAttempt(sql.FieldLT(FieldQuestionID, v))
}

// QuestionIDLTE applies the LTE predicate on the "question_id" field.
func QuestionIDLTE(v string) predicate.QuestionAttempt {
	return predicate.QuestionAttempt(sql.FieldLTE(FieldQuestionID, v))
}

// QuestionIDContains applies the Contains predicate on the "question_id" field.
func QuestionIDContains(v string) predicate.QuestionAttempt {
	return predicate.QuestionAttempt(sql.FieldContains(FieldQuestionID, v))
}

// QuestionIDHasPrefix applies the HasPrefix predicate on the "question_id" field.
func QuestionIDHasPrefix(v string) predicate.QuestionAttempt {
	return predicate.QuestionAttempt(sql.FieldHasPrefix(FieldQuestionID, v))
}

// QuestionIDHasSuffix applies the HasSuffix predicate on the "question_id" field.
func QuestionIDHasSuffix(v string) predicate.QuestionAttempt {
	return predicate.QuestionAttempt(sql.FieldHasSuffix(FieldQuestionID, v))
}

// QuestionIDEqualFold applies the EqualFold predicate on the "question_id" field.
func QuestionIDEqualFold(v string) predicate.QuestionAttempt {
	return predicate.QuestionAttempt(sql.FieldEqualFold(FieldQuestionID, v))
}

// QuestionIDContainsFold applies the ContainsFold predicate on the "question_id" field.
func QuestionIDContainsFold(v string) predicate.QuestionAttempt {
	return predicate.QuestionAttempt(sql.FieldContainsFold(FieldQuestionID, v))
}

// IsCorrectEQ applies the EQ predicate on the "is_correct" field.
func IsCorrectEQ(v bool) predicate.QuestionAttempt {
	return predicate.QuestionAttempt(sql.FieldEQ(FieldIsCorrect, v))
}

// IsCorrectNEQ applies the NEQ predicate on the "is_correct" field.
func IsCorrectNEQ(v bool) predicate.QuestionAttempt {
	return predicate.QuestionAttempt(sql.FieldNEQ(FieldIsCorrect, v))
}

// ElapsedSecondsEQ applies the EQ predicate on the "elapsed_seconds" field.
func ElapsedSecondsEQ(v float64) predicate.QuestionAttempt {
	return predicate.QuestionAttempt(sql.FieldEQ(FieldElapsedSeconds, v))
}

// ElapsedSecondsNEQ applies the NEQ predicate on the "elapsed_seconds" field.
func ElapsedSecondsNEQ(v float64) predicate.QuestionAttempt {
	return predicate.QuestionAttempt(sql.FieldNEQ(FieldElapsedSeconds, v))
}

// ElapsedSecondsIn applies the In predicate on the "elapsed_seconds" field.
func ElapsedSecondsIn(vs ...float64) predicate.QuestionAttempt {
	return predicate.QuestionAttempt(sql.FieldIn(FieldElapsedSeconds, vs...))
}

// ElapsedSecondsNotIn applies the NotIn predicate on the "elapsed_seconds" field.
func ElapsedSecondsNotIn(vs ...float64) predicate.QuestionAttempt {
	return predicate.QuestionAttempt(sql.FieldNotIn(FieldElapsedSeconds, vs...))
}

// ElapsedSecondsGT applies the GT predicate on the "elapsed_seconds" field.
func ElapsedSecondsGT(v float64) predicate.QuestionAttempt {
	return predicate.QuestionAttempt(sql.FieldGT(FieldElapsedSeconds, v))
}

// ElapsedSecondsGTE applies the GTE predicate on the "elapsed_seconds" field.
func ElapsedSecondsGTE(v float64) predicate.QuestionAttempt {
	return predicate.QuestionAttempt(sql.FieldGTE(FieldElapsedSeconds, v))
}

// ElapsedSecondsLT applies the LT predicate on the "elapsed_seconds" field.
func ElapsedSecondsLT(v float64) predicate.QuestionAttempt {
	return predicate.QuestionAttempt(sql.FieldLT(FieldElapsedSeconds, v))
}

// ElapsedSecondsLTE applies the LTE predicate on the "elapsed_seconds" field.
func ElapsedSecondsLTE(v float64) predicate.QuestionAttempt {
	return predicate.QuestionAttempt(sql.FieldLTE(FieldElapsedSeconds, v))
}

// SubmittedOptionsIsNil applies the IsNil predicate on the "submitted_options" field.
func SubmittedOptionsIsNil() predicate.QuestionAttempt {
	return predicate.QuestionAttempt(sql.FieldIsNull(FieldSubmittedOptions))
}

// SubmittedOptionsNotNil applies the NotNil predicate on the "submitted_options" field.
func SubmittedOptionsNotNil() predicate.QuestionAttempt {
	return predicate.QuestionAttempt(sql.FieldNotNull(FieldSubmittedOptions))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.QuestionAttempt) predicate.QuestionAttempt {
	return predicate.QuestionAttempt(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.QuestionAttempt) predicate.QuestionAttempt {
	return predicate.QuestionAttempt(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.QuestionAttempt) predicate.QuestionAttempt {
	return predicate.QuestionAttempt(sql.NotPredicates(p))
}
