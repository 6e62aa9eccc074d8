package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// QuestionAttempt is one answered question within a session. Rows are
// append-only and never mutated; the attempt log is the ground truth
// all stats derive from. The (session_id, question_id) pair is unique
// because a session serves each frozen id exactly once.
type QuestionAttempt struct {
	ent.Schema
}

func (QuestionAttempt) Mixin() []ent.Mixin {
	return []ent.Mixin{UUIDMixin{}}
}

func (QuestionAttempt) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("Owning session UUID"),
		field.String("question_id").
			NotEmpty(),
		field.Bool("is_correct"),
		field.Float("elapsed_seconds").
			Default(0).
			Min(0),
		field.JSON("submitted_options", []string{}).
			Optional().
			Comment("Option UUIDs the learner picked"),
	}
}

func (QuestionAttempt) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("question_id"),
		index.Fields("session_id", "question_id").
			Unique(),
	}
}
