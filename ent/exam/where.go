// Code generated by ent, DO NOT EDIT.

package exam

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/jfarleigh/certrun/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Exam {
	return predicate.Exam(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Exam {
	return predicate.Exam(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Exam {
	return predicate.Exam(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Exam {
	return predicate.Exam(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Exam {
	return predicate.Exam(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Exam {
	return predicate.Exam(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Exam {
	return predicate.Exam(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Exam {
	return predicate.Exam(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Exam {
	return predicate.Exam(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Exam {
	return predicate.Exam(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Exam {
	return predicate.Exam(sql.FieldContainsFold(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Exam {
	return predicate.Exam(sql.FieldEQ(FieldCreatedAt, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Exam {
	return predicate.Exam(sql.FieldEQ(FieldName, v))
}

// Vendor applies equality check predicate on the "vendor" field. It's identical to VendorEQ.
func Vendor(v string) predicate.Exam {
	return predicate.Exam(sql.FieldEQ(FieldVendor, v))
}

// ExamCode applies equality check predicate on the "exam_code" field. It's identical to ExamCodeEQ.
func ExamCode(v string) predicate.Exam {
	return predicate.Exam(sql.FieldEQ(FieldExamCode, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.Exam {
	return predicate.Exam(sql.FieldEQ(FieldDescription, v))
}

// PassingScore applies equality check predicate on the "passing_score" field. It's identical to PassingScoreEQ.
func PassingScore(v int) predicate.Exam {
	return predicate.Exam(sql.FieldEQ(FieldPassingScore, v))
}

// TimeLimitMinutes applies equality check predicate on the "time_limit_minutes" field. It's identical to TimeLimitMinutesEQ.
func TimeLimitMinutes(v int) predicate.Exam {
	return predicate.Exam(sql.FieldEQ(FieldTimeLimitMinutes, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Exam {
	return predicate.Exam(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Exam {
	return predicate.Exam(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Exam {
	return predicate.Exam(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Exam {
	return predicate.Exam(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Exam {
	return predicate.Exam(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Exam {
	return predicate.Exam(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Exam {
	return predicate.Exam(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Exam {
	return predicate.Exam(sql.FieldLTE(FieldCreatedAt, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Exam {
	return predicate.Exam(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Exam {
	return predicate.Exam(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Exam {
	return predicate.Exam(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Exam {
	return predicate.Exam(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Exam {
	return predicate.Exam(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Exam {
	return predicate.Exam(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Exam {
	return predicate.Exam(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Exam {
	return predicate.Exam(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Exam {
	return predicate.Exam(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Exam {
	return predicate.Exam(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Exam {
	return predicate.Exam(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Exam {
	return predicate.Exam(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Exam {
	return predicate.Exam(sql.FieldContainsFold(FieldName, v))
}

// VendorEQ applies the EQ predicate on the "vendor" field.
func VendorEQ(v string) predicate.Exam {
	return predicate.Exam(sql.FieldEQ(FieldVendor, v))
}

// VendorNEQ applies the NEQ predicate on the "vendor" field.
func VendorNEQ(v string) predicate.Exam {
	return predicate.Exam(sql.FieldNEQ(FieldVendor, v))
}

// VendorIn applies the In predicate on the "vendor" field.
func VendorIn(vs ...string) predicate.Exam {
	return predicate.Exam(sql.FieldIn(FieldVendor, vs...))
}

// VendorNotIn applies the NotIn predicate on the "vendor" field.
func VendorNotIn(vs ...string) predicate.Exam {
	return predicate.Exam(sql.FieldNotIn(FieldVendor, vs...))
}

// VendorGT applies the GT predicate on the "vendor" field.
func VendorGT(v string) predicate.Exam {
	return predicate.Exam(sql.FieldGT(FieldVendor, v))
}

// VendorGTE applies the GTE predicate on the "vendor" field.
func VendorGTE(v string) predicate.Exam {
	return predicate.Exam(sql.FieldGTE(FieldVendor, v))
}

// VendorLT applies the LT predicate on the "vendor" field.
func VendorLT(v string) predicate.Exam {
	return predicate.Exam(sql.FieldLT(FieldVendor, v))
}

// VendorLTE applies the LTE predicate on the "vendor" field.
func VendorLTE(v string) predicate.Exam {
	return predicate.Exam(sql.FieldLTE(FieldVendor, v))
}

// VendorContains applies the Contains predicate on the "vendor" field.
func VendorContains(v string) predicate.Exam {
	return predicate.Exam(sql.FieldContains(FieldVendor, v))
}

// VendorHasPrefix applies the HasPrefix predicate on the "vendor" field.
func VendorHasPrefix(v string) predicate.Exam {
	return predicate.Exam(sql.FieldHasPrefix(FieldVendor, v))
}

// VendorHasSuffix applies the HasSuffix predicate on the "vendor" field.
func VendorHasSuffix(v string) predicate.Exam {
	return predicate.Exam(sql.FieldHasSuffix(FieldVendor, v))
}

// VendorEqualFold applies the EqualFold predicate on the "vendor" field.
func VendorEqualFold(v string) predicate.Exam {
	return predicate.Exam(sql.FieldEqualFold(FieldVendor, v))
}

// VendorContainsFold applies the ContainsFold predicate on the "vendor" field.
func VendorContainsFold(v string) predicate.Exam {
	return predicate.Exam(sql.FieldContainsFold(FieldVendor, v))
}

// ExamCodeEQ applies the EQ predicate on the "exam_code" field.
func ExamCodeEQ(v string) predicate.Exam {
	return predicate.Exam(sql.FieldEQ(FieldExamCode, v))
}

// ExamCodeNEQ applies the NEQ predicate on the "exam_code" field.
func ExamCodeNEQ(v string) predicate.Exam {
	return predicate.Exam(sql.FieldNEQ(FieldExamCode, v))
}

// ExamCodeIn applies the In predicate on the "exam_code" field.
func ExamCodeIn(vs ...string) predicate.Exam {
	return predicate.Exam(sql.FieldIn(FieldExamCode, vs...))
}

// ExamCodeNotIn applies the NotIn predicate on the "exam_code" field.
func ExamCodeNotIn(vs ...string) predicate.Exam {
	return predicate.Exam(sql.FieldNotIn(FieldExamCode, vs...))
}

// ExamCodeGT applies the GT predicate on the "exam_code" field.
func ExamCodeGT(v string) predicate.Exam {
	return predicate.Exam(sql.FieldGT(FieldExamCode, v))
}

// ExamCodeGTE applies the GTE predicate on the "exam_code" field.
func ExamCodeGTE(v string) predicate.Exam {
	return predicate.Exam(sql.FieldGTE(FieldExamCode, v))
}

// ExamCodeLT applies the LT predicate on the "exam_code" field.
func ExamCodeLT(v string) predicate.Exam {
	return predicate.Exam(sql.FieldLT(FieldExamCode, v))
}

// ExamCodeLTE applies the LTE predicate on the "exam_code" field.
func ExamCodeLTE(v string) predicate.Exam {
	return predicate.Exam(sql.FieldLTE(FieldExamCode, v))
}

// ExamCodeContains applies the Contains predicate on the "exam_code" field.
func ExamCodeContains(v string) predicate.Exam {
	return predicate.Exam(sql.FieldContains(FieldExamCode, v))
}

// ExamCodeHasPrefix applies the HasPrefix predicate on the "exam_code" field.
func ExamCodeHasPrefix(v string) predicate.Exam {
	return predicate.Exam(sql.FieldHasPrefix(FieldExamCode, v))
}

// ExamCodeHasSuffix applies the HasSuffix predicate on the "exam_code" field.
func ExamCodeHasSuffix(v string) predicate.Exam {
	return predicate.Exam(sql.FieldHasSuffix(FieldExamCode, v))
}

// ExamCodeEqualFold applies the EqualFold predicate on the "exam_code" field.
func ExamCodeEqualFold(v string) predicate.Exam {
	return predicate.Exam(sql.FieldEqualFold(FieldExamCode, v))
}

// ExamCodeContainsFold applies the ContainsFold predicate on the "exam_code" field.
func ExamCodeContainsFold(v string) predicate.Exam {
	return predicate.Exam(sql.FieldContainsFold(FieldExamCode, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.Exam {
	return predicate.Exam(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.Exam {
	return predicate.Exam(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.Exam {
	return predicate.Exam(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.Exam {
	return predicate.Exam(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.Exam {
	return predicate.Exam(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.Exam {
	return predicate.Exam(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.Exam {
	return predicate.Exam(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.Exam {
	return predicate.Exam(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.Exam {
	return predicate.Exam(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.Exam {
	return predicate.Exam(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.Exam {
	return predicate.Exam(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.Exam {
	return predicate.Exam(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.Exam {
	return predicate.Exam(sql.FieldContainsFold(FieldDescription, v))
}

// PassingScoreEQ applies the EQ predicate on the "passing_score" field.
func PassingScoreEQ(v int) predicate.Exam {
	return predicate.Exam(sql.FieldEQ(FieldPassingScore, v))
}

// PassingScoreNEQ applies the NEQ predicate on the "passing_score" field.
func PassingScoreNEQ(v int) predicate.Exam {
	return predicate.Exam(sql.FieldNEQ(FieldPassingScore, v))
}

// PassingScoreIn applies the In predicate on the "passing_score" field.
func PassingScoreIn(vs ...int) predicate.Exam {
	return predicate.Exam(sql.FieldIn(FieldPassingScore, vs...))
}

// PassingScoreNotIn applies the NotIn predicate on the "passing_score" field.
func PassingScoreNotIn(vs ...int) predicate.Exam {
	return predicate.Exam(sql.FieldNotIn(FieldPassingScore, vs...))
}

// PassingScoreGT applies the GT predicate on the "passing_score" field.
func PassingScoreGT(v int) predicate.Exam {
	return predicate.Exam(sql.FieldGT(FieldPassingScore, v))
}

// PassingScoreGTE applies the GTE predicate on the "passing_score" field.
func PassingScoreGTE(v int) predicate.Exam {
	return predicate.Exam(sql.FieldGTE(FieldPassingScore, v))
}

// PassingScoreLT applies the LT predicate on the "passing_score" field.
func PassingScoreLT(v int) predicate.Exam {
	return predicate.Exam(sql.FieldLT(FieldPassingScore, v))
}

// PassingScoreLTE applies the LTE predicate on the "passing_score" field.
func PassingScoreLTE(v int) predicate.Exam {
	return predicate.Exam(sql.FieldLTE(FieldPassingScore, v))
}

// TimeLimitMinutesEQ applies the EQ predicate on the "time_limit_minutes" field.
func TimeLimitMinutesEQ(v int) predicate.Exam {
	return predicate.Exam(sql.FieldEQ(FieldTimeLimitMinutes, v))
}

// TimeLimitMinutesNEQ applies the NEQ predicate on the "time_limit_minutes" field.
func TimeLimitMinutesNEQ(v int) predicate.Exam {
	return predicate.Exam(sql.FieldNEQ(FieldTimeLimitMinutes, v))
}

// TimeLimitMinutesIn applies the In predicate on the "time_limit_minutes" field.
func TimeLimitMinutesIn(vs ...int) predicate.Exam {
	return predicate.Exam(sql.FieldIn(FieldTimeLimitMinutes, vs...))
}

// TimeLimitMinutesNotIn applies the NotIn predicate on the "time_limit_minutes" field.
func TimeLimitMinutesNotIn(vs ...int) predicate.Exam {
	return predicate.Exam(sql.FieldNotIn(FieldTimeLimitMinutes, vs...))
}

// TimeLimitMinutesGT applies the GT predicate on the "time_limit_minutes" field.
func TimeLimitMinutesGT(v int) predicate.Exam {
	return predicate.Exam(sql.FieldGT(FieldTimeLimitMinutes, v))
}

// TimeLimitMinutesGTE applies the GTE predicate on the "time_limit_minutes" field.
func TimeLimitMinutesGTE(v int) predicate.Exam {
	return predicate.Exam(sql.FieldGTE(FieldTimeLimitMinutes, v))
}

// TimeLimitMinutesLT applies the LT predicate on the "time_limit_minutes" field.
func TimeLimitMinutesLT(v int) predicate.Exam {
	return predicate.Exam(sql.FieldLT(FieldTimeLimitMinutes, v))
}

// TimeLimitMinutesLTE applies the LTE predicate on the "time_limit_minutes" field.
func TimeLimitMinutesLTE(v int) predicate.Exam {
	return predicate.Exam(sql.FieldLTE(FieldTimeLimitMinutes, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Exam) predicate.Exam {
	return predicate.Exam(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Exam) predicate.Exam {
	return predicate.Exam(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Exam) predicate.Exam {
	return predicate.Exam(sql.NotPredicates(p))
}
