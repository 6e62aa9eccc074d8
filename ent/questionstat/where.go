// Code generated by ent, DO NOT EDIT.

package questionstat

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/jfarleigh/certrun/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.QuestionStat {
	return predicate.QuestionStat(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.QuestionStat {
	return predicate.QuestionStat(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.QuestionStat {
	return predicate.QuestionStat(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.QuestionStat {
	return predicate.QuestionStat(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.QuestionStat {
	return predicate.QuestionStat(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.QuestionStat {
	return predicate.QuestionStat(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.QuestionStat {
	return predicate.QuestionStat(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.QuestionStat {
	return predicate.QuestionStat(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.QuestionStat {
	return predicate.QuestionStat(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.QuestionStat {
	return predicate.QuestionStat(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.QuestionStat {
	return predicate.QuestionStat(sql.FieldContainsFold(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.QuestionStat {
	return predicate.QuestionStat(sql.FieldEQ(FieldCreatedAt, v))
}

// QuestionID applies equality check predicate on the "question_id" field. It's identical to QuestionIDEQ.
func QuestionID(v string) predicate.QuestionStat {
	return predicate.QuestionStat(sql.FieldEQ(FieldQuestionID, v))
}

// AttemptCount applies equality check predicate on the "attempt_count" field. It's identical to AttemptCountEQ.
func AttemptCount(v int) predicate.QuestionStat {
	return predicate.QuestionStat(sql.FieldEQ(FieldAttemptCount, v))
}

// CorrectCount applies equality check predicate on the "correct_count" field. It's identical to CorrectCountEQ.
func CorrectCount(v int) predicate.QuestionStat {
	return predicate.QuestionStat(sql.FieldEQ(FieldCorrectCount, v))
}

// TotalElapsedSeconds applies equality check predicate on the "total_elapsed_seconds" field. It's identical to TotalElapsedSecondsEQ.
func TotalElapsedSeconds(v float64) predicate.QuestionStat {
	return predicate.QuestionStat(sql.FieldEQ(FieldTotalElapsedSeconds, v))
}

// LastAttemptedAt applies equality check predicate on the "last_attempted_at" field. It's identical to LastAttemptedAtEQ.
func LastAttemptedAt(v time.Time) predicate.QuestionStat {
	return predicate.QuestionStat(sql.FieldEQ(FieldLastAttemptedAt, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.QuestionStat {
	return predicate.QuestionStat(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.QuestionStat {
	return predicate.QuestionStat(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.QuestionStat {
	return predicate.QuestionStat(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.QuestionStat {
	return predicate.QuestionStat(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.QuestionStat {
	return predicate.QuestionStat(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.QuestionStat {
	return predicate.QuestionStat(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.QuestionStat {
	return predicate.QuestionStat(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.QuestionStat {
	return predicate.QuestionStat(sql.FieldLTE(FieldCreatedAt, v))
}

// QuestionIDEQ applies the EQ predicate on the "question_id" field.
func QuestionIDEQ(v string) predicate.QuestionStat {
	return predicate.QuestionStat(sql.FieldEQ(FieldQuestionID, v))
}

// QuestionIDNEQ applies the NEQ predicate on the "question_id" field.
func QuestionIDNEQ(v string) predicate.QuestionStat {
	return predicate.QuestionStat(sql.FieldNEQ(FieldQuestionID, v))
}

// QuestionIDIn applies the In predicate on the "question_id" field.
func QuestionIDIn(vs ...string) predicate.QuestionStat {
	return predicate.QuestionStat(sql.FieldIn(FieldQuestionID, vs...))
}

// QuestionIDNotIn applies the NotIn predicate on the "question_id" field.
func QuestionIDNotIn(vs ...string) predicate.QuestionStat {
	return predicate.QuestionStat(sql.FieldNotIn(FieldQuestionID, vs...))
}

// QuestionIDGT applies the GT predicate on the "question_id" field.
func QuestionIDGT(v string) predicate.QuestionStat {
	return predicate.QuestionStat(sql.FieldGT(FieldQuestionID, v))
}

// QuestionIDGTE applies the GTE predicate on the "question_id" field.
func QuestionIDGTE(v string) predicate.QuestionStat {
	return predicate.QuestionStat(sql.FieldGTE(FieldQuestionID, v))
}

// QuestionIDLT applies the LT predicate on the "question_id" field.
func QuestionIDLT(v string) predicate.QuestionStat {
	return predicate.QuestionStat(sql.FieldLT(FieldQuestionID, v))
}

// QuestionIDLTE applies the LTE predicate on the "question_id" field.
func QuestionIDLTE(v string) predicate.QuestionStat {
	return predicate.QuestionStat(sql.FieldLTE(FieldQuestionID, v))
}

// QuestionIDContains applies the Contains predicate on the "question_id" field.
func QuestionIDContains(v string) predicate.QuestionStat {
	return predicate.QuestionStat(sql.FieldContains(FieldQuestionID, v))
}

// QuestionIDHasPrefix applies the HasPrefix predicate on the "question_id" field.
func QuestionIDHasPrefix(v string) predicate.QuestionStat {
	return predicate.QuestionStat(sql.FieldHasPrefix(FieldQuestionID, v))
}

// QuestionIDHasSuffix applies the HasSuffix predicate on the "question_id" field.
func QuestionIDHasSuffix(v string) predicate.QuestionStat {
	return predicate.QuestionStat(sql.FieldHasSuffix(FieldQuestionID, v))
}

// QuestionIDEqualFold applies the EqualFold predicate on the "question_id" field.
func QuestionIDEqualFold(v string) predicate.QuestionStat {
	return predicate.QuestionStat(sql.FieldEqualFold(FieldQuestionID, v))
}

// QuestionIDContainsFold applies the ContainsFold predicate on the "question_id" field.
func QuestionIDContainsFold(v string) predicate.QuestionStat {
	return predicate.QuestionStat(sql.FieldContainsFold(FieldQuestionID, v))
}

// AttemptCountEQ applies the EQ predicate on the "attempt_count" field.
func AttemptCountEQ(v int) predicate.QuestionStat {
	return predicate.QuestionStat(sql.FieldEQ(FieldAttemptCount, v))
}

// AttemptCountNEQ applies the NEQ predicate on the "attempt_count" field.
func AttemptCountNEQ(v int) predicate.QuestionStat {
	return predicate.QuestionStat(sql.FieldNEQ(FieldAttemptCount, v))
}

// AttemptCountIn applies the In predicate on the "attempt_count" field.
func AttemptCountIn(vs ...int) predicate.QuestionStat {
	return predicate.QuestionStat(sql.FieldIn(FieldAttemptCount, vs...))
}

// AttemptCountNotIn applies the NotIn predicate on the "attempt_count" field.
func AttemptCountNotIn(vs ...int) predicate.QuestionStat {
	return predicate.QuestionStat(sql.FieldNotIn(FieldAttemptCount, vs...))
}

// AttemptCountGT applies the GT predicate on the "attempt_count" field.
func AttemptCountGT(v int) predicate.QuestionStat {
	return predicate.QuestionStat(sql.FieldGT(FieldAttemptCount, v))
}

// AttemptCountGTE applies the GTE predicate on the "attempt_count" field.
func AttemptCountGTE(v int) predicate.QuestionStat {
	return predicate.QuestionStat(sql.FieldGTE(FieldAttemptCount, v))
}

// AttemptCountLT applies the LT predicate on the "attempt_count" field.
func AttemptCountLT(v int) predicate.QuestionStat {
	return predicate.QuestionStat(sql.FieldLT(FieldAttemptCount, v))
}

// AttemptCountLTE applies the LTE predicate on the "attempt_count" field.
func AttemptCountLTE(v int) predicate.QuestionStat {
	return predicate.QuestionStat(sql.FieldLTE(FieldAttemptCount, v))
}

// CorrectCountEQ applies the EQ predicate on the "correct_count" field.
func CorrectCountEQ(v int) predicate.QuestionStat {
	return predicate.QuestionStat(sql.FieldEQ(FieldCorrectCount, v))
}

// CorrectCountNEQ applies the NEQ predicate on the "correct_count" field.
func CorrectCountNEQ(v int) predicate.QuestionStat {
	return predicate.QuestionStat(sql.FieldNEQ(FieldCorrectCount, v))
}

// CorrectCountIn applies the In predicate on the "correct_count" field.
func CorrectCountIn(vs ...int) predicate.QuestionStat {
	return predicate.QuestionStat(sql.FieldIn(FieldCorrectCount, vs...))
}

// CorrectCountNotIn applies the NotIn predicate on the "correct_count" field.
func CorrectCountNotIn(vs ...int) predicate.QuestionStat {
	return predicate.QuestionStat(sql.FieldNotIn(FieldCorrectCount, vs...))
}

// CorrectCountGT applies the GT predicate on the "correct_count" field.
func CorrectCountGT(v int) predicate.QuestionStat {
	return predicate.QuestionStat(sql.FieldGT(FieldCorrectCount, v))
}

// CorrectCountGTE applies the GTE predicate on the "correct_count" field.
func CorrectCountGTE(v int) predicate.QuestionStat {
	return predicate.QuestionStat(sql.FieldGTE(FieldCorrectCount, v))
}

// CorrectCountLT applies the LT predicate on the "correct_count" field.
func CorrectCountLT(v int) predicate.QuestionStat {
	return predicate.QuestionStat(sql.FieldLT(FieldCorrectCount, v))
}

// CorrectCountLTE applies the LTE predicate on the "correct_count" field.
func CorrectCountLTE(v int) predicate.QuestionStat {
	return predicate.QuestionStat(sql.FieldLTE(FieldCorrectCount, v))
}

// TotalElapsedSecondsEQ applies the EQ predicate on the "total_elapsed_seconds" field.
func TotalElapsedSecondsEQ(v float64) predicate.QuestionStat {
	return predicate.QuestionStat(sql.FieldEQ(FieldTotalElapsedSeconds, v))
}

// TotalElapsedSecondsNEQ applies the NEQ predicate on the "total_elapsed_seconds" field.
func TotalElapsedSecondsNEQ(v float64) predicate.QuestionStat {
	return predicate.QuestionStat(sql.FieldNEQ(FieldTotalElapsedSeconds, v))
}

// TotalElapsedSecondsIn applies the In predicate on the "total_elapsed_seconds" field.
func TotalElapsedSecondsIn(vs ...float64) predicate.QuestionStat {
	return predicate.QuestionStat(sql.FieldIn(FieldTotalElapsedSeconds, vs...))
}

// TotalElapsedSecondsNotIn applies the NotIn predicate on the "total_elapsed_seconds" field.
func TotalElapsedSecondsNotIn(vs ...float64) predicate.QuestionStat {
	return predicate.QuestionStat(sql.FieldNotIn(FieldTotalElapsedSeconds, vs...))
}

// TotalElapsedSecondsGT applies the GT predicate on the "total_elapsed_seconds" field.
func TotalElapsedSecondsGT(v float64) predicate.QuestionStat {
	return predicate.QuestionStat(sql.FieldGT(FieldTotalElapsedSeconds, v))
}

// TotalElapsedSecondsGTE applies the GTE predicate on the "total_elapsed_seconds" field.
func TotalElapsedSecondsGTE(v float64) predicate.QuestionStat {
	return predicate.QuestionStat(sql.FieldGTE(FieldTotalElapsedSeconds, v))
}

// TotalElapsedSecondsLT applies the LT predicate on the "total_elapsed_seconds" field.
func TotalElapsedSecondsLT(v float64) predicate.QuestionStat {
	return predicate.QuestionStat(sql.FieldLT(FieldTotalElapsedSeconds, v))
}

// TotalElapsedSecondsLTE applies the LTE predicate on the "total_elapsed_seconds" field.
func TotalElapsedSecondsLTE(v float64) predicate.QuestionStat {
	return predicate.QuestionStat(sql.FieldLTE(FieldTotalElapsedSeconds, v))
}

// LastAttemptedAtEQ applies the EQ predicate on the "last_attempted_at" field.
func LastAttemptedAtEQ(v time.Time) predicate.QuestionStat {
	return predicate.QuestionStat(sql.FieldEQ(FieldLastAttemptedAt, v))
}

// LastAttemptedAtNEQ applies the NEQ predicate on the "last_attempted_at" field.
func LastAttemptedAtNEQ(v time.Time) predicate.QuestionStat {
	return predicate.QuestionStat(sql.FieldNEQ(FieldLastAttemptedAt, v))
}

// LastAttemptedAtIn applies the In predicate on the "last_attempted_at" field.
func LastAttemptedAtIn(vs ...time.Time) predicate.QuestionStat {
	return predicate.QuestionStat(sql.FieldIn(FieldLastAttemptedAt, vs...))
}

// LastAttemptedAtNotIn applies the NotIn predicate on the "last_attempted_at" field.
func LastAttemptedAtNotIn(vs ...time.Time) predicate.QuestionStat {
	return predicate.QuestionStat(sql.FieldNotIn(FieldLastAttemptedAt, vs...))
}

// LastAttemptedAtGT applies the GT predicate on the "last_attempted_at" field.
func LastAttemptedAtGT(v time.Time) predicate.QuestionStat {
	return predicate.QuestionStat(sql.FieldGT(FieldLastAttemptedAt, v))
}

// LastAttemptedAtGTE applies the GTE predicate on the "last_attempted_at" field.
func LastAttemptedAtGTE(v time.Time) predicate.QuestionStat {
	return predicate.QuestionStat(sql.FieldGTE(FieldLastAttemptedAt, v))
}

// LastAttemptedAtLT applies the LT predicate on the "last_attempted_at" field.
func LastAttemptedAtLT(v time.Time) predicate.QuestionStat {
	return predicate.QuestionStat(sql.FieldLT(FieldLastAttemptedAt, v))
}

// LastAttemptedAtLTE applies the LTE predicate on the "last_attempted_at" field.
func LastAttemptedAtLTE(v time.Time) predicate.QuestionStat {
	return predicate.QuestionStat(sql.FieldLTE(FieldLastAttemptedAt, v))
}

// LastAttemptedAtIsNil applies the IsNil predicate on the "last_attempted_at" field.
func LastAttemptedAtIsNil() predicate.QuestionStat {
	return predicate.QuestionStat(sql.FieldIsNull(FieldLastAttemptedAt))
}

// LastAttemptedAtNotNil applies the NotNil predicate on the "last_attempted_at" field.
func LastAttemptedAtNotNil() predicate.QuestionStat {
	return predicate.QuestionStat(sql.FieldNotNull(FieldLastAttemptedAt))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.QuestionStat) predicate.QuestionStat {
	return predicate.QuestionStat(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.QuestionStat) predicate.QuestionStat {
	return predicate.QuestionStat(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.QuestionStat) predicate.QuestionStat {
	return predicate.QuestionStat(sql.NotPredicates(p))
}
