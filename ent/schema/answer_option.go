package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnswerOption is one choice attached to a question. Correctness is
// a flag here; grading compares submitted option-id sets against the
// correct set, never display order.
type AnswerOption struct {
	ent.Schema
}

func (AnswerOption) Mixin() []ent.Mixin {
	return []ent.Mixin{UUIDMixin{}}
}

func (AnswerOption) Fields() []ent.Field {
	return []ent.Field{
		field.String("question_id").
			NotEmpty().
			Comment("Owning question UUID"),
		field.Text("text").
			NotEmpty(),
		field.Bool("is_correct").
			Default(false),
		field.Text("distractor_reason").
			Default("").
			Comment("Why this wrong answer is plausible, empty for correct options"),
		field.Int("position").
			Default(0).
			Comment("Authoring order, stable across reads"),
	}
}

func (AnswerOption) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("question", Question.Type).
			Ref("options").
			Field("question_id").
			Unique().
			Required(),
	}
}

func (AnswerOption) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("question_id"),
	}
}
