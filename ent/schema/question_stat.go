package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// QuestionStat aggregates a question's attempt history. It is a
// derived cache over the QuestionAttempt log, updated in the same
// transaction as each attempt insert, and can always be rebuilt by
// folding the log.
type QuestionStat struct {
	ent.Schema
}

func (QuestionStat) Mixin() []ent.Mixin {
	return []ent.Mixin{UUIDMixin{}}
}

func (QuestionStat) Fields() []ent.Field {
	return []ent.Field{
		field.String("question_id").
			NotEmpty().
			Unique().
			Comment("Question UUID, one stat row per question"),
		field.Int("attempt_count").
			Default(0).
			Min(0),
		field.Int("correct_count").
			Default(0).
			Min(0),
		field.Float("total_elapsed_seconds").
			Default(0).
			Comment("Sum of answer times, for average-time reporting"),
		field.Time("last_attempted_at").
			Optional().
			Nillable().
			Comment("Nil until the first attempt"),
	}
}

func (QuestionStat) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("question_id"),
	}
}
