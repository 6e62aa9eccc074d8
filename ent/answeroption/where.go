// Code generated by ent, DO NOT EDIT.

package answeroption

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/jfarleigh/certrun/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.AnswerOption {
	return predicate.AnswerOption(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.AnswerOption {
	return predicate.AnswerOption(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.AnswerOption {
	return predicate.AnswerOption(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.AnswerOption {
	return predicate.AnswerOption(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.AnswerOption {
	return predicate.AnswerOption(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.AnswerOption {
	return predicate.AnswerOption(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.AnswerOption {
	return predicate.AnswerOption(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.AnswerOption {
	return predicate.AnswerOption(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.AnswerOption {
	return predicate.AnswerOption(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.AnswerOption {
	return predicate.AnswerOption(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.AnswerOption {
	return predicate.AnswerOption(sql.FieldContainsFold(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.AnswerOption {
	return predicate.AnswerOption(sql.FieldEQ(FieldCreatedAt, v))
}

// QuestionID applies equality check predicate on the "question_id" field. It's identical to QuestionIDEQ.
func QuestionID(v string) predicate.AnswerOption {
	return predicate.AnswerOption(sql.FieldEQ(FieldQuestionID, v))
}

// Text applies equality check predicate on the "text" field. It's identical to TextEQ.
func Text(v string) predicate.AnswerOption {
	return predicate.AnswerOption(sql.FieldEQ(FieldText, v))
}

// IsCorrect applies equality check predicate on the "is_correct" field. It's identical to IsCorrectEQ.
func IsCorrect(v bool) predicate.AnswerOption {
	return predicate.AnswerOption(sql.FieldEQ(FieldIsCorrect, v))
}

// DistractorReason applies equality check predicate on the "distractor_reason" field. It's identical to DistractorReasonEQ.
func DistractorReason(v string) predicate.AnswerOption {
	return predicate.AnswerOption(sql.FieldEQ(FieldDistractorReason, v))
}

// Position applies equality check predicate on the "position" field. It's identical to PositionEQ.
func Position(v int) predicate.AnswerOption {
	return predicate.AnswerOption(sql.FieldEQ(FieldPosition, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.AnswerOption {
	return predicate.AnswerOption(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.AnswerOption {
	return predicate.AnswerOption(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.AnswerOption {
	return predicate.AnswerOption(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.AnswerOption {
	return predicate.AnswerOption(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.AnswerOption {
	return predicate.AnswerOption(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.AnswerOption {
	return predicate.AnswerOption(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.AnswerOption {
	return predicate.AnswerOption(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.AnswerOption {
	return predicate.AnswerOption(sql.FieldLTE(FieldCreatedAt, v))
}

// QuestionIDEQ applies the EQ predicate on the "question_id" field.
func QuestionIDEQ(v string) predicate.AnswerOption {
	return predicate.AnswerOption(sql.FieldEQ(FieldQuestionID, v))
}

// QuestionIDNEQ applies the NEQ predicate on the "question_id" field.
func QuestionIDNEQ(v string) predicate.AnswerOption {
	return predicate.AnswerOption(sql.FieldNEQ(FieldQuestionID, v))
}

// QuestionIDIn applies the In predicate on the "question_id" field.
func QuestionIDIn(vs ...string) predicate.AnswerOption {
	return predicate.AnswerOption(sql.FieldIn(FieldQuestionID, vs...))
}

// QuestionIDNotIn applies the NotIn predicate on the "question_id" field.
func QuestionIDNotIn(vs ...string) predicate.AnswerOption {
	return predicate.AnswerOption(sql.FieldNotIn(FieldQuestionID, vs...))
}

// QuestionIDGT applies the GT predicate on the "question_id" field.
func QuestionIDGT(v string) predicate.AnswerOption {
	return predicate.AnswerOption(sql.FieldGT(FieldQuestionID, v))
}

// QuestionIDGTE applies the GTE predicate on the "question_id" field.
func QuestionIDGTE(v string) predicate.AnswerOption {
	return predicate.AnswerOption(sql.FieldGTE(FieldQuestionID, v))
}

// QuestionIDLT applies the LT predicate on the "question_id" field.
func QuestionIDLT(v string) predicate.AnswerOption {
	return predicate.AnswerOption(sql.FieldLT(FieldQuestionID, v))
}

// QuestionIDLTE applies the LTE predicate on the "question_id" field.
func QuestionIDLTE(v string) predicate.AnswerOption {
	return predicate.AnswerOption(sql.FieldLTE(FieldQuestionID, v))
}

// QuestionIDContains applies the Contains predicate on the "question_id" field.
func QuestionIDContains(v string) predicate.AnswerOption {
	return predicate.AnswerOption(sql.FieldContains(FieldQuestionID, v))
}

// QuestionIDHasPrefix applies the HasPrefix predicate on the "question_id" field.
func QuestionIDHasPrefix(v string) predicate.AnswerOption {
	return predicate.AnswerOption(sql.FieldHasPrefix(FieldQuestionID, v))
}

// QuestionIDHasSuffix applies the HasSuffix predicate on the "question_id" field.
func QuestionIDHasSuffix(v string) predicate.AnswerOption {
	return predicate.AnswerOption(sql.FieldHasSuffix(FieldQuestionID, v))
}

// QuestionIDEqualFold applies the EqualFold predicate on the "question_id" field.
func QuestionIDEqualFold(v string) predicate.AnswerOption {
	return predicate.AnswerOption(sql.FieldEqualFold(FieldQuestionID, v))
}

// QuestionIDContainsFold applies the ContainsFold predicate on the "question_id" field.
func QuestionIDContainsFold(v string) predicate.AnswerOption {
	return predicate.AnswerOption(sql.FieldContainsFold(FieldQuestionID, v))
}

// TextEQ applies the EQ predicate on the "text" field.
func TextEQ(v string) predicate.AnswerOption {
	return predicate.AnswerOption(sql.FieldEQ(FieldText, v))
}

// TextNEQ applies the NEQ predicate on the "text" field.
func TextNEQ(v string) predicate.AnswerOption {
	return predicate.AnswerOption(sql.FieldNEQ(FieldText, v))
}

// TextIn applies the In predicate on the "text" field.
func TextIn(vs ...string) predicate.AnswerOption {
	return predicate.AnswerOption(sql.FieldIn(FieldText, vs...))
}

// TextNotIn applies the NotIn predicate on the "text" field.
func TextNotIn(vs ...string) predicate.AnswerOption {
	return predicate.AnswerOption(sql.FieldNotIn(FieldText, vs...))
}

// TextGT applies the GT predicate on the "text" field.
func TextGT(v string) predicate.AnswerOption {
	return predicate.AnswerOption(sql.FieldGT(FieldText, v))
}

// TextGTE applies the GTE predicate on the "text" field.
func TextGTE(v string) predicate.AnswerOption {
	return predicate.AnswerOption(sql.FieldGTE(FieldText, v))
}

// TextLT applies the LT predicate on the "text" field.
func TextLT(v string) predicate.AnswerOption {
	return predicate.AnswerOption(sql.FieldLT(FieldText, v))
}

// TextLTE applies the LTE predicate on the "text" field.
func TextLTE(v string) predicate.AnswerOption {
	return predicate.AnswerOption(sql.FieldLTE(FieldText, v))
}

// TextContains applies the Contains predicate on the "text" field.
func TextContains(v string) predicate.AnswerOption {
	return predicate.AnswerOption(sql.FieldContains(FieldText, v))
}

// TextHasPrefix applies the HasPrefix predicate on the "text" field.
func TextHasPrefix(v string) predicate.AnswerOption {
	return predicate.AnswerOption(sql.FieldHasPrefix(FieldText, v))
}

// TextHasSuffix applies the HasSuffix predicate on the "text" field.
func TextHasSuffix(v string) predicate.AnswerOption {
	return predicate.AnswerOption(sql.FieldHasSuffix(FieldText, v))
}

// TextEqualFold applies the EqualFold predicate on the "text" field.
func TextEqualFold(v string) predicate.AnswerOption {
	return predicate.AnswerOption(sql.FieldEqualFold(FieldText, v))
}

// TextContainsFold applies the ContainsFold predicate on the "text" field.
func TextContainsFold(v string) predicate.AnswerOption {
	return predicate.AnswerOption(sql.FieldContainsFold(FieldText, v))
}

// IsCorrectEQ applies the EQ predicate on the "is_correct" field.
func IsCorrectEQ(v bool) predicate.AnswerOption {
	return predicate.AnswerOption(sql.FieldEQ(FieldIsCorrect, v))
}

// IsCorrectNEQ applies the NEQ predicate on the "is_correct" field.
func IsCorrectNEQ(v bool) predicate.AnswerOption {
	return predicate.AnswerOption(sql.FieldNEQ(FieldIsCorrect, v))
}

// DistractorReasonEQ applies the EQ predicate on the "distractor_reason" field.
func DistractorReasonEQ(v string) predicate.AnswerOption {
	return predicate.AnswerOption(sql.FieldEQ(FieldDistractorReason, v))
}

// DistractorReasonNEQ applies the NEQ predicate on the "distractor_reason" field.
func DistractorReasonNEQ(v string) predicate.AnswerOption {
	return predicate.AnswerOption(sql.FieldNEQ(FieldDistractorReason, v))
}

// DistractorReasonIn applies the In predicate on the "distractor_reason" field.
func DistractorReasonIn(vs ...string) predicate.AnswerOption {
	return predicate.AnswerOption(sql.FieldIn(FieldDistractorReason, vs...))
}

// DistractorReasonNotIn applies the NotIn predicate on the "distractor_reason" field.
func DistractorReasonNotIn(vs ...string) predicate.AnswerOption {
	return predicate.AnswerOption(sql.FieldNotIn(FieldDistractorReason, vs...))
}

// DistractorReasonGT applies the GT predicate on the "distractor_reason" field.
func DistractorReasonGT(v string) predicate.AnswerOption {
	return predicate.AnswerOption(sql.FieldGT(FieldDistractorReason, v))
}

// DistractorReasonGTE applies the GTE predicate on the "distractor_reason" field.
func DistractorReasonGTE(v string) predicate.AnswerOption {
	return predicate.AnswerOption(sql.FieldGTE(FieldDistractorReason, v))
}

// DistractorReasonLT applies the LT predicate on the "distractor_reason" field.
func DistractorReasonLT(v string) predicate.AnswerOption {
	return predicate.AnswerOption(sql.FieldLT(FieldDistractorReason, v))
}

// DistractorReasonLTE applies the LTE predicate on the "distractor_reason" field.
func DistractorReasonLTE(v string) predicate.AnswerOption {
	return predicate.AnswerOption(sql.FieldLTE(FieldDistractorReason, v))
}

// DistractorReasonContains applies the Contains predicate on the "distractor_reason" field.
func DistractorReasonContains(v string) predicate.AnswerOption {
	return predicate.AnswerOption(sql.FieldContains(FieldDistractorReason, v))
}

// DistractorReasonHasPrefix applies the HasPrefix predicate on the "distractor_reason" field.
func DistractorReasonHasPrefix(v string) predicate.AnswerOption {
	return predicate.AnswerOption(sql.FieldHasPrefix(FieldDistractorReason, v))
}

// DistractorReasonHasSuffix applies the HasSuffix predicate on the "distractor_reason" field.
func DistractorReasonHasSuffix(v string) predicate.AnswerOption {
	return predicate.AnswerOption(sql.FieldHasSuffix(FieldDistractorReason, v))
}

// DistractorReasonEqualFold applies the EqualFold predicate on the "distractor_reason" field.
func DistractorReasonEqualFold(v string) predicate.AnswerOption {
	return predicate.AnswerOption(sql.FieldEqualFold(FieldDistractorReason, v))
}

// DistractorReasonContainsFold applies the ContainsFold predicate on the "distractor_reason" field.
func DistractorReasonContainsFold(v string) predicate.AnswerOption {
	return predicate.AnswerOption(sql.FieldContainsFold(FieldDistractorReason, v))
}

// PositionEQ applies the EQ predicate on the "position" field.
func PositionEQ(v int) predicate.AnswerOption {
	return predicate.AnswerOption(sql.FieldEQ(FieldPosition, v))
}

// PositionNEQ applies the NEQ predicate on the "position" field.
func PositionNEQ(v int) predicate.AnswerOption {
	return predicate.AnswerOption(sql.FieldNEQ(FieldPosition, v))
}

// PositionIn applies the In predicate on the "position" field.
func PositionIn(vs ...int) predicate.AnswerOption {
	return predicate.AnswerOption(sql.FieldIn(FieldPosition, vs...))
}

// PositionNotIn applies the NotIn predicate on the "position" field.
func PositionNotIn(vs ...int) predicate.AnswerOption {
	return predicate.AnswerOption(sql.FieldNotIn(FieldPosition, vs...))
}

// PositionGT applies the GT predicate on the "position" field.
func PositionGT(v int) predicate.AnswerOption {
	return predicate.AnswerOption(sql.FieldGT(FieldPosition, v))
}

// PositionGTE applies the GTE predicate on the "position" field.
func PositionGTE(v int) predicate.AnswerOption {
	return predicate.AnswerOption(sql.FieldGTE(FieldPosition, v))
}

// PositionLT applies the LT predicate on the "position" field.
func PositionLT(v int) predicate.AnswerOption {
	return predicate.AnswerOption(sql.FieldLT(FieldPosition, v))
}

// PositionLTE applies the LTE predicate on the "position" field.
func PositionLTE(v int) predicate.AnswerOption {
	return predicate.AnswerOption(sql.FieldLTE(FieldPosition, v))
}

// HasQuestion applies the HasEdge predicate on the "question" edge.
func HasQuestion() predicate.AnswerOption {
	return predicate.AnswerOption(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, QuestionTable, QuestionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasQuestionWith applies the HasEdge predicate on the "question" edge with a given conditions (other predicates).
func HasQuestionWith(preds ...predicate.Question) predicate.AnswerOption {
	return predicate.AnswerOption(func(s *sql.Selector) {
		step := newQuestionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AnswerOption) predicate.AnswerOption {
	return predicate.AnswerOption(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AnswerOption) predicate.AnswerOption {
	return predicate.AnswerOption(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AnswerOption) predicate.AnswerOption {
	return predicate.AnswerOption(sql.NotPredicates(p))
}
