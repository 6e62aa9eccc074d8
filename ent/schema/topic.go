package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Topic is a blueprint domain within an exam, e.g. "Networking".
// Questions attach to one or more topics.
type Topic struct {
	ent.Schema
}

func (Topic) Mixin() []ent.Mixin {
	return []ent.Mixin{UUIDMixin{}}
}

func (Topic) Fields() []ent.Field {
	return []ent.Field{
		field.String("exam_id").
			NotEmpty().
			Comment("Owning exam UUID"),
		field.String("name").
			NotEmpty(),
		field.String("description").
			Default(""),
		field.Int("weight_percent").
			Default(0).
			Min(0).
			Max(100).
			Comment("Share of the exam blueprint, 0 when unknown"),
	}
}

func (Topic) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("questions", Question.Type).
			Ref("topics"),
	}
}

func (Topic) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("exam_id"),
		index.Fields("exam_id", "name").
			Unique(),
	}
}
