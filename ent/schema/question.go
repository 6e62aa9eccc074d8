package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Question is a multiple-choice item in the bank. Its answer options
// live in AnswerOption rows and cascade away with the question.
type Question struct {
	ent.Schema
}

func (Question) Mixin() []ent.Mixin {
	return []ent.Mixin{UUIDMixin{}}
}

func (Question) Fields() []ent.Field {
	return []ent.Field{
		field.String("exam_id").
			NotEmpty().
			Comment("Owning exam UUID"),
		field.Text("text").
			NotEmpty().
			Comment("Question prompt"),
		field.String("question_type").
			NotEmpty().
			Comment("single, choose_n or select_all"),
		field.Int("choose_count").
			Default(0).
			Min(0).
			Comment("Required correct picks for choose_n, 0 otherwise"),
		field.String("difficulty").
			Default("medium").
			Comment("easy, medium or hard"),
		field.Text("explanation").
			Default(""),
		field.String("source").
			Default("").
			Comment("Where the question came from, free text"),
		field.JSON("pattern_tags", []string{}).
			Optional().
			Comment("Question-pattern labels, e.g. scenario or definition"),
	}
}

func (Question) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("options", AnswerOption.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("topics", Topic.Type).
			StorageKey(edge.Table("question_topics"), edge.Columns("question_id", "topic_id")),
	}
}

func (Question) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("exam_id"),
		index.Fields("created_at"),
	}
}
