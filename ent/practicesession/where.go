// Code generated by ent, DO NOT EDIT.

package practicesession

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/jfarleigh/certrun/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldContainsFold(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEQ(FieldCreatedAt, v))
}

// ExamID applies equality check predicate on the "exam_id" field. It's identical to ExamIDEQ.
func ExamID(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEQ(FieldExamID, v))
}

// TopicID applies equality check predicate on the "topic_id" field. It's identical to TopicIDEQ.
func TopicID(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEQ(FieldTopicID, v))
}

// Mode applies equality check predicate on the "mode" field. It's identical to ModeEQ.
func Mode(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEQ(FieldMode, v))
}

// SelectionSeed applies equality check predicate on the "selection_seed" field. It's identical to SelectionSeedEQ.
func SelectionSeed(v int64) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEQ(FieldSelectionSeed, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEQ(FieldStatus, v))
}

// EndedAt applies equality check predicate on the "ended_at" field. It's identical to EndedAtEQ.
func EndedAt(v time.Time) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEQ(FieldEndedAt, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldLTE(FieldCreatedAt, v))
}

// ExamIDEQ applies the EQ predicate on the "exam_id" field.
func ExamIDEQ(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEQ(FieldExamID, v))
}

// ExamIDNEQ applies the NEQ predicate on the "exam_id" field.
func ExamIDNEQ(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNEQ(FieldExamID, v))
}

// ExamIDIn applies the In predicate on the "exam_id" field.
func ExamIDIn(vs ...string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldIn(FieldExamID, vs...))
}

// ExamIDNotIn applies the NotIn predicate on the "exam_id" field.
func ExamIDNotIn(vs ...string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNotIn(FieldExamID, vs...))
}

// ExamIDGT applies the GT predicate on the "exam_id" field.
func ExamIDGT(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldGT(FieldExamID, v))
}

// ExamIDGTE applies the GTE predicate on the "exam_id" field.
func ExamIDGTE(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldGTE(FieldExamID, v))
}

// ExamIDLT applies the LT predicate on the "exam_id" field.
func ExamIDLT(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldLT(FieldExamID, v))
}

// ExamIDLTE applies the LTE predicate on the "exam_id" field.
func ExamIDLTE(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldLTE(FieldExamID, v))
}

// ExamIDContains applies the Contains predicate on the "exam_id" field.
func ExamIDContains(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldContains(FieldExamID, v))
}

// ExamIDHasPrefix applies the HasPrefix predicate on the "exam_id" field.
func ExamIDHasPrefix(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldHasPrefix(FieldExamID, v))
}

// ExamIDHasSuffix applies the HasSuffix predicate on the "exam_id" field.
func ExamIDHasSuffix(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldHasSuffix(FieldExamID, v))
}

// ExamIDEqualFold applies the EqualFold predicate on the "exam_id" field.
func ExamIDEqualFold(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEqualFold(FieldExamID, v))
}

// ExamIDContainsFold applies the ContainsFold predicate on the "exam_id" field.
func ExamIDContainsFold(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldContainsFold(FieldExamID, v))
}

// TopicIDEQ applies the EQ predicate on the "topic_id" field.
func TopicIDEQ(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEQ(FieldTopicID, v))
}

// TopicIDNEQ applies the NEQ predicate on the "topic_id" field.
func TopicIDNEQ(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNEQ(FieldTopicID, v))
}

// TopicIDIn applies the In predicate on the "topic_id" field.
func TopicIDIn(vs ...string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldIn(FieldTopicID, vs...))
}

// TopicIDNotIn applies the NotIn predicate on the "topic_id" field.
func TopicIDNotIn(vs ...string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNotIn(FieldTopicID, vs...))
}

// TopicIDGT applies the GT predicate on the "topic_id" field.
func TopicIDGT(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldGT(FieldTopicID, v))
}

// TopicIDGTE applies the GTE predicate on the "topic_id" field.
func TopicIDGTE(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldGTE(FieldTopicID, v))
}

// TopicIDLT applies the LT predicate on the "topic_id" field.
func TopicIDLT(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldLT(FieldTopicID, v))
}

// TopicIDLTE applies the LTE predicate on the "topic_id" field.
func TopicIDLTE(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldLTE(FieldTopicID, v))
}

// TopicIDContains applies the Contains predicate on the "topic_id" field.
func TopicIDContains(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldContains(FieldTopicID, v))
}

// TopicIDHasPrefix applies the HasPrefix predicate on the "topic_id" field.
func TopicIDHasPrefix(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldHasPrefix(FieldTopicID, v))
}

// TopicIDHasSuffix applies the HasSuffix predicate on the "topic_id" field.
func TopicIDHasSuffix(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldHasSuffix(FieldTopicID, v))
}

// TopicIDEqualFold applies the EqualFold predicate on the "topic_id" field.
func TopicIDEqualFold(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEqualFold(FieldTopicID, v))
}

// TopicIDContainsFold applies the ContainsFold predicate on the "topic_id" field.
func TopicIDContainsFold(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldContainsFold(FieldTopicID, v))
}

// ModeEQ applies the EQ predicate on the "mode" field.
func ModeEQ(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEQ(FieldMode, v))
}

// ModeNEQ applies the NEQ predicate on the "mode" field.
func ModeNEQ(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNEQ(FieldMode, v))
}

// ModeIn applies the In predicate on the "mode" field.
func ModeIn(vs ...string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldIn(FieldMode, vs...))
}

// ModeNotIn applies the NotIn predicate on the "mode" field.
func ModeNotIn(vs ...string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNotIn(FieldMode, vs...))
}

// ModeGT applies the GT predicate on the "mode" field.
func ModeGT(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldGT(FieldMode, v))
}

// ModeGTE applies the GTE predicate on the "mode" field.
func ModeGTE(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldGTE(FieldMode, v))
}

// ModeLT applies the LT predicate on the "mode" field.
func ModeLT(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldLT(FieldMode, v))
}

// ModeLTE applies the LTE predicate on the "mode" field.
func ModeLTE(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldLTE(FieldMode, v))
}

// ModeContains applies the Contains predicate on the "mode" field.
func ModeContains(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldContains(FieldMode, v))
}

// ModeHasPrefix applies the HasPrefix predicate on the "mode" field.
func ModeHasPrefix(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldHasPrefix(FieldMode, v))
}

// ModeHasSuffix applies the HasSuffix predicate on the "mode" field.
func ModeHasSuffix(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldHasSuffix(FieldMode, v))
}

// ModeEqualFold applies the EqualFold predicate on the "mode" field.
func ModeEqualFold(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEqualFold(FieldMode, v))
}

// ModeContainsFold applies the ContainsFold predicate on the "mode" field.
func ModeContainsFold(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldContainsFold(FieldMode, v))
}

// SelectionSeedEQ applies the EQ predicate on the "selection_seed" field.
func SelectionSeedEQ(v int64) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEQ(FieldSelectionSeed, v))
}

// SelectionSeedNEQ applies the NEQ predicate on the "selection_seed" field.
func SelectionSeedNEQ(v int64) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNEQ(FieldSelectionSeed, v))
}

// SelectionSeedIn applies the In predicate on the "selection_seed" field.
func SelectionSeedIn(vs ...int64) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldIn(FieldSelectionSeed, vs...))
}

// SelectionSeedNotIn applies the NotIn predicate on the "selection_seed" field.
func SelectionSeedNotIn(vs ...int64) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNotIn(FieldSelectionSeed, vs...))
}

// SelectionSeedGT applies the GT predicate on the "selection_seed" field.
func SelectionSeedGT(v int64) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldGT(FieldSelectionSeed, v))
}

// SelectionSeedGTE applies the GTE predicate on the "selection_seed" field.
func SelectionSeedGTE(v int64) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldGTE(FieldSelectionSeed, v))
}

// SelectionSeedLT applies the LT predicate on the "selection_seed" field.
func SelectionSeedLT(v int64) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldLT(FieldSelectionSeed, v))
}

// SelectionSeedLTE applies the LTE predicate on the "selection_seed" field.
func SelectionSeedLTE(v int64) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldLTE(FieldSelectionSeed, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldContainsFold(FieldStatus, v))
}

// EndedAtEQ applies the EQ predicate on the "ended_at" field.
func EndedAtEQ(v time.Time) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEQ(FieldEndedAt, v))
}

// EndedAtNEQ applies the NEQ predicate on the "ended_at" field.
func EndedAtNEQ(v time.Time) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNEQ(FieldEndedAt, v))
}

// EndedAtIn applies the In predicate on the "ended_at" field.
func EndedAtIn(vs ...time.Time) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldIn(FieldEndedAt, vs...))
}

// EndedAtNotIn applies the NotIn predicate on the "ended_at" field.
func EndedAtNotIn(vs ...time.Time) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNotIn(FieldEndedAt, vs...))
}

// EndedAtGT applies the GT predicate on the "ended_at" field.
func EndedAtGT(v time.Time) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldGT(FieldEndedAt, v))
}

// EndedAtGTE applies the GTE predicate on the "ended_at" field.
func EndedAtGTE(v time.Time) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldGTE(FieldEndedAt, v))
}

// EndedAtLT applies the LT predicate on the "ended_at" field.
func EndedAtLT(v time.Time) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldLT(FieldEndedAt, v))
}

// EndedAtLTE applies the LTE predicate on the "ended_at" field.
func EndedAtLTE(v time.Time) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldLTE(FieldEndedAt, v))
}

// EndedAtIsNil applies the IsNil predicate on the "ended_at" field.
func EndedAtIsNil() predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldIsNull(FieldEndedAt))
}

// EndedAtNotNil applies the NotNil predicate on the "ended_at" field.
func EndedAtNotNil() predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNotNull(FieldEndedAt))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PracticeSession) predicate.PracticeSession {
	return predicate.PracticeSession(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PracticeSession) predicate.PracticeSession {
	return predicate.PracticeSession(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PracticeSession) predicate.PracticeSession {
	return predicate.PracticeSession(sql.NotPredicates(p))
}
