// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/jfarleigh/certrun/ent/answeroption"
	"github.com/jfarleigh/certrun/ent/exam"
	"github.com/jfarleigh/certrun/ent/practicesession"
	"github.com/jfarleigh/certrun/ent/question"
	"github.com/jfarleigh/certrun/ent/questionattempt"
	"github.com/jfarleigh/certrun/ent/questionstat"
	"github.com/jfarleigh/certrun/ent/schema"
	"github.com/jfarleigh/certrun/ent/topic"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	answeroptionMixin := schema.AnswerOption{}.Mixin()
	answeroptionMixinFields0 := answeroptionMixin[0].Fields()
	_ = answeroptionMixinFields0
	answeroptionFields := schema.AnswerOption{}.Fields()
	_ = answeroptionFields
	// answeroptionDescCreatedAt is the schema descriptor for created_at field.
	answeroptionDescCreatedAt := answeroptionMixinFields0[1].Descriptor()
	// answeroption.DefaultCreatedAt holds the default value on creation for the created_at field.
	answeroption.DefaultCreatedAt = answeroptionDescCreatedAt.Default.(func() time.Time)
	// answeroptionDescQuestionID is the schema descriptor for question_id field.
	answeroptionDescQuestionID := answeroptionFields[0].Descriptor()
	// answeroption.QuestionIDValidator is a validator for the "question_id" field. It is called by the builders before save.
	answeroption.QuestionIDValidator = answeroptionDescQuestionID.Validators[0].(func(string) error)
	// answeroptionDescText is the schema descriptor for text field.
	answeroptionDescText := answeroptionFields[1].Descriptor()
	// answeroption.TextValidator is a validator for the "text" field. It is called by the builders before save.
	answeroption.TextValidator = answeroptionDescText.Validators[0].(func(string) error)
	// answeroptionDescIsCorrect is the schema descriptor for is_correct field.
	answeroptionDescIsCorrect := answeroptionFields[2].Descriptor()
	// answeroption.DefaultIsCorrect holds the default value on creation for the is_correct field.
	answeroption.DefaultIsCorrect = answeroptionDescIsCorrect.Default.(bool)
	// answeroptionDescDistractorReason is the schema descriptor for distractor_reason field.
	answeroptionDescDistractorReason := answeroptionFields[3].Descriptor()
	// answeroption.DefaultDistractorReason holds the default value on creation for the distractor_reason field.
	answeroption.DefaultDistractorReason = answeroptionDescDistractorReason.Default.(string)
	// answeroptionDescPosition is the schema descriptor for position field.
	answeroptionDescPosition := answeroptionFields[4].Descriptor()
	// answeroption.DefaultPosition holds the default value on creation for the position field.
	answeroption.DefaultPosition = answeroptionDescPosition.Default.(int)
	// answeroptionDescID is the schema descriptor for id field.
	answeroptionDescID := answeroptionMixinFields0[0].Descriptor()
	// answeroption.DefaultID holds the default value on creation for the id field.
	answeroption.DefaultID = answeroptionDescID.Default.(func() string)
	examMixin := schema.Exam{}.Mixin()
	examMixinFields0 := examMixin[0].Fields()
	_ = examMixinFields0
	examFields := schema.Exam{}.Fields()
	_ = examFields
	// examDescCreatedAt is the schema descriptor for created_at field.
	examDescCreatedAt := examMixinFields0[1].Descriptor()
	// exam.DefaultCreatedAt holds the default value on creation for the created_at field.
	exam.DefaultCreatedAt = examDescCreatedAt.Default.(func() time.Time)
	// examDescName is the schema descriptor for name field.
	examDescName := examFields[0].Descriptor()
	// exam.NameValidator is a validator for the "name" field. It is called by the builders before save.
	exam.NameValidator = examDescName.Validators[0].(func(string) error)
	// examDescVendor is the schema descriptor for vendor field.
	examDescVendor := examFields[1].Descriptor()
	// exam.DefaultVendor holds the default value on creation for the vendor field.
	exam.DefaultVendor = examDescVendor.Default.(string)
	// examDescExamCode is the schema descriptor for exam_code field.
	examDescExamCode := examFields[2].Descriptor()
	// exam.DefaultExamCode holds the default value on creation for the exam_code field.
	exam.DefaultExamCode = examDescExamCode.Default.(string)
	// examDescDescription is the schema descriptor for description field.
	examDescDescription := examFields[3].Descriptor()
	// exam.DefaultDescription holds the default value on creation for the description field.
	exam.DefaultDescription = examDescDescription.Default.(string)
	// examDescPassingScore is the schema descriptor for passing_score field.
	examDescPassingScore := examFields[4].Descriptor()
	// exam.DefaultPassingScore holds the default value on creation for the passing_score field.
	exam.DefaultPassingScore = examDescPassingScore.Default.(int)
	// exam.PassingScoreValidator is a validator for the "passing_score" field. It is called by the builders before save.
	exam.PassingScoreValidator = func() func(int) error {
		validators := examDescPassingScore.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(passing_score int) error {
			for _, fn := range fns {
				if err := fn(passing_score); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// examDescTimeLimitMinutes is the schema descriptor for time_limit_minutes field.
	examDescTimeLimitMinutes := examFields[5].Descriptor()
	// exam.DefaultTimeLimitMinutes holds the default value on creation for the time_limit_minutes field.
	exam.DefaultTimeLimitMinutes = examDescTimeLimitMinutes.Default.(int)
	// exam.TimeLimitMinutesValidator is a validator for the "time_limit_minutes" field. It is called by the builders before save.
	exam.TimeLimitMinutesValidator = examDescTimeLimitMinutes.Validators[0].(func(int) error)
	// examDescID is the schema descriptor for id field.
	examDescID := examMixinFields0[0].Descriptor()
	// exam.DefaultID holds the default value on creation for the id field.
	exam.DefaultID = examDescID.Default.(func() string)
	practicesessionMixin := schema.PracticeSession{}.Mixin()
	practicesessionMixinFields0 := practicesessionMixin[0].Fields()
	_ = practicesessionMixinFields0
	practicesessionFields := schema.PracticeSession{}.Fields()
	_ = practicesessionFields
	// practicesessionDescCreatedAt is the schema descriptor for created_at field.
	practicesessionDescCreatedAt := practicesessionMixinFields0[1].Descriptor()
	// practicesession.DefaultCreatedAt holds the default value on creation for the created_at field.
	practicesession.DefaultCreatedAt = practicesessionDescCreatedAt.Default.(func() time.Time)
	// practicesessionDescExamID is the schema descriptor for exam_id field.
	practicesessionDescExamID := practicesessionFields[0].Descriptor()
	// practicesession.ExamIDValidator is a validator for the "exam_id" field. It is called by the builders before save.
	practicesession.ExamIDValidator = practicesessionDescExamID.Validators[0].(func(string) error)
	// practicesessionDescTopicID is the schema descriptor for topic_id field.
	practicesessionDescTopicID := practicesessionFields[1].Descriptor()
	// practicesession.DefaultTopicID holds the default value on creation for the topic_id field.
	practicesession.DefaultTopicID = practicesessionDescTopicID.Default.(string)
	// practicesessionDescMode is the schema descriptor for mode field.
	practicesessionDescMode := practicesessionFields[2].Descriptor()
	// practicesession.ModeValidator is a validator for the "mode" field. It is called by the builders before save.
	practicesession.ModeValidator = practicesessionDescMode.Validators[0].(func(string) error)
	// practicesessionDescSelectionSeed is the schema descriptor for selection_seed field.
	practicesessionDescSelectionSeed := practicesessionFields[4].Descriptor()
	// practicesession.DefaultSelectionSeed holds the default value on creation for the selection_seed field.
	practicesession.DefaultSelectionSeed = practicesessionDescSelectionSeed.Default.(int64)
	// practicesessionDescStatus is the schema descriptor for status field.
	practicesessionDescStatus := practicesessionFields[5].Descriptor()
	// practicesession.DefaultStatus holds the default value on creation for the status field.
	practicesession.DefaultStatus = practicesessionDescStatus.Default.(string)
	// practicesessionDescID is the schema descriptor for id field.
	practicesessionDescID := practicesessionMixinFields0[0].Descriptor()
	// practicesession.DefaultID holds the default value on creation for the id field.
	practicesession.DefaultID = practicesessionDescID.Default.(func() string)
	questionMixin := schema.Question{}.Mixin()
	questionMixinFields0 := questionMixin[0].Fields()
	_ = questionMixinFields0
	questionFields := schema.Question{}.Fields()
	_ = questionFields
	// questionDescCreatedAt is the schema descriptor for created_at field.
	questionDescCreatedAt := questionMixinFields0[1].Descriptor()
	// question.DefaultCreatedAt holds the default value on creation for the created_at field.
	question.DefaultCreatedAt = questionDescCreatedAt.Default.(func() time.Time)
	// questionDescExamID is the schema descriptor for exam_id field.
	questionDescExamID := questionFields[0].Descriptor()
	// question.ExamIDValidator is a validator for the "exam_id" field. It is called by the builders before save.
	question.ExamIDValidator = questionDescExamID.Validators[0].(func(string) error)
	// questionDescText is the schema descriptor for text field.
	questionDescText := questionFields[1].Descriptor()
	// question.TextValidator is a validator for the "text" field. It is called by the builders before save.
	question.TextValidator = questionDescText.Validators[0].(func(string) error)
	// questionDescQuestionType is the schema descriptor for question_type field.
	questionDescQuestionType := questionFields[2].Descriptor()
	// question.QuestionTypeValidator is a validator for the "question_type" field. It is called by the builders before save.
	question.QuestionTypeValidator = questionDescQuestionType.Validators[0].(func(string) error)
	// questionDescChooseCount is the schema descriptor for choose_count field.
	questionDescChooseCount := questionFields[3].Descriptor()
	// question.DefaultChooseCount holds the default value on creation for the choose_count field.
	question.DefaultChooseCount = questionDescChooseCount.Default.(int)
	// question.ChooseCountValidator is a validator for the "choose_count" field. It is called by the builders before save.
	question.ChooseCountValidator = questionDescChooseCount.Validators[0].(func(int) error)
	// questionDescDifficulty is the schema descriptor for difficulty field.
	questionDescDifficulty := questionFields[4].Descriptor()
	// question.DefaultDifficulty holds the default value on creation for the difficulty field.
	question.DefaultDifficulty = questionDescDifficulty.Default.(string)
	// questionDescExplanation is the schema descriptor for explanation field.
	questionDescExplanation := questionFields[5].Descriptor()
	// question.DefaultExplanation holds the default value on creation for the explanation field.
	question.DefaultExplanation = questionDescExplanation.Default.(string)
	// questionDescSource is the schema descriptor for source field.
	questionDescSource := questionFields[6].Descriptor()
	// question.DefaultSource holds the default value on creation for the source field.
	question.DefaultSource = questionDescSource.Default.(string)
	// questionDescID is the schema descriptor for id field.
	questionDescID := questionMixinFields0[0].Descriptor()
	// question.DefaultID holds the default value on creation for the id field.
	question.DefaultID = questionDescID.Default.(func() string)
	questionattemptMixin := schema.QuestionAttempt{}.Mixin()
	questionattemptMixinFields0 := questionattemptMixin[0].Fields()
	_ = questionattemptMixinFields0
	questionattemptFields := schema.QuestionAttempt{}.Fields()
	_ = questionattemptFields
	// questionattemptDescCreatedAt is the schema descriptor for created_at field.
	questionattemptDescCreatedAt := questionattemptMixinFields0[1].Descriptor()
	// questionattempt.DefaultCreatedAt holds the default value on creation for the created_at field.
	questionattempt.DefaultCreatedAt = questionattemptDescCreatedAt.Default.(func() time.Time)
	// questionattemptDescSessionID is the schema descriptor for session_id field.
	questionattemptDescSessionID := questionattemptFields[0].Descriptor()
	// questionattempt.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	questionattempt.SessionIDValidator = questionattemptDescSessionID.Validators[0].(func(string) error)
	// questionattemptDescQuestionID is the schema descriptor for question_id field.
	questionattemptDescQuestionID := questionattemptFields[1].Descriptor()
	// questionattempt.QuestionIDValidator is a validator for the "question_id" field. It is called by the builders before save.
	questionattempt.QuestionIDValidator = questionattemptDescQuestionID.Validators[0].(func(string) error)
	// questionattemptDescElapsedSeconds is the schema descriptor for elapsed_seconds field.
	questionattemptDescElapsedSeconds := questionattemptFields[3].Descriptor()
	// questionattempt.DefaultElapsedSeconds holds the default value on creation for the elapsed_seconds field.
	questionattempt.DefaultElapsedSeconds = questionattemptDescElapsedSeconds.Default.(float64)
	// questionattempt.ElapsedSecondsValidator is a validator for the "elapsed_seconds" field. It is called by the builders before save.
	questionattempt.ElapsedSecondsValidator = questionattemptDescElapsedSeconds.Validators[0].(func(float64) error)
	// questionattemptDescID is the schema descriptor for id field.
	questionattemptDescID := questionattemptMixinFields0[0].Descriptor()
	// questionattempt.DefaultID holds the default value on creation for the id field.
	questionattempt.DefaultID = questionattemptDescID.Default.(func() string)
	questionstatMixin := schema.QuestionStat{}.Mixin()
	questionstatMixinFields0 := questionstatMixin[0].Fields()
	_ = questionstatMixinFields0
	questionstatFields := schema.QuestionStat{}.Fields()
	_ = questionstatFields
	// questionstatDescCreatedAt is the schema descriptor for created_at field.
	questionstatDescCreatedAt := questionstatMixinFields0[1].Descriptor()
	// questionstat.DefaultCreatedAt holds the default value on creation for the created_at field.
	questionstat.DefaultCreatedAt = questionstatDescCreatedAt.Default.(func() time.Time)
	// questionstatDescQuestionID is the schema descriptor for question_id field.
	questionstatDescQuestionID := questionstatFields[0].Descriptor()
	// questionstat.QuestionIDValidator is a validator for the "question_id" field. It is called by the builders before save.
	questionstat.QuestionIDValidator = questionstatDescQuestionID.Validators[0].(func(string) error)
	// questionstatDescAttemptCount is the schema descriptor for attempt_count field.
	questionstatDescAttemptCount := questionstatFields[1].Descriptor()
	// questionstat.DefaultAttemptCount holds the default value on creation for the attempt_count field.
	questionstat.DefaultAttemptCount = questionstatDescAttemptCount.Default.(int)
	// questionstat.AttemptCountValidator is a validator for the "attempt_count" field. It is called by the builders before save.
	questionstat.AttemptCountValidator = questionstatDescAttemptCount.Validators[0].(func(int) error)
	// questionstatDescCorrectCount is the schema descriptor for correct_count field.
	questionstatDescCorrectCount := questionstatFields[2].Descriptor()
	// questionstat.DefaultCorrectCount holds the default value on creation for the correct_count field.
	questionstat.DefaultCorrectCount = questionstatDescCorrectCount.Default.(int)
	// questionstat.CorrectCountValidator is a validator for the "correct_count" field. It is called by the builders before save.
	questionstat.CorrectCountValidator = questionstatDescCorrectCount.Validators[0].(func(int) error)
	// questionstatDescTotalElapsedSeconds is the schema descriptor for total_elapsed_seconds field.
	questionstatDescTotalElapsedSeconds := questionstatFields[3].Descriptor()
	// questionstat.DefaultTotalElapsedSeconds holds the default value on creation for the total_elapsed_seconds field.
	questionstat.DefaultTotalElapsedSeconds = questionstatDescTotalElapsedSeconds.Default.(float64)
	// questionstatDescID is the schema descriptor for id field.
	questionstatDescID := questionstatMixinFields0[0].Descriptor()
	// questionstat.DefaultID holds the default value on creation for the id field.
	questionstat.DefaultID = questionstatDescID.Default.(func() string)
	topicMixin := schema.Topic{}.Mixin()
	topicMixinFields0 := topicMixin[0].Fields()
	_ = topicMixinFields0
	topicFields := schema.Topic{}.Fields()
	_ = topicFields
	// topicDescCreatedAt is the schema descriptor for created_at field.
	topicDescCreatedAt := topicMixinFields0[1].Descriptor()
	// topic.DefaultCreatedAt holds the default value on creation for the created_at field.
	topic.DefaultCreatedAt = topicDescCreatedAt.Default.(func() time.Time)
	// topicDescExamID is the schema descriptor for exam_id field.
	topicDescExamID := topicFields[0].Descriptor()
	// topic.ExamIDValidator is a validator for the "exam_id" field. It is called by the builders before save.
	topic.ExamIDValidator = topicDescExamID.Validators[0].(func(string) error)
	// topicDescName is the schema descriptor for name field.
	topicDescName := topicFields[1].Descriptor()
	// topic.NameValidator is a validator for the "name" field. It is called by the builders before save.
	topic.NameValidator = topicDescName.Validators[0].(func(string) error)
	// topicDescDescription is the schema descriptor for description field.
	topicDescDescription := topicFields[2].Descriptor()
	// topic.DefaultDescription holds the default value on creation for the description field.
	topic.DefaultDescription = topicDescDescription.Default.(string)
	// topicDescWeightPercent is the schema descriptor for weight_percent field.
	topicDescWeightPercent := topicFields[3].Descriptor()
	// topic.DefaultWeightPercent holds the default value on creation for the weight_percent field.
	topic.DefaultWeightPercent = topicDescWeightPercent.Default.(int)
	// topic.WeightPercentValidator is a validator for the "weight_percent" field. It is called by the builders before save.
	topic.WeightPercentValidator = func() func(int) error {
		validators := topicDescWeightPercent.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(weight_percent int) error {
			for _, fn := range fns {
				if err := fn(weight_percent); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// topicDescID is the schema descriptor for id field.
	topicDescID := topicMixinFields0[0].Descriptor()
	// topic.DefaultID holds the default value on creation for the id field.
	topic.DefaultID = topicDescID.Default.(func() string)
}
