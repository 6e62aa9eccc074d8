package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Exam is a certification exam the learner is preparing for,
// e.g. "AWS Solutions Architect Associate".
type Exam struct {
	ent.Schema
}

func (Exam) Mixin() []ent.Mixin {
	return []ent.Mixin{UUIDMixin{}}
}

func (Exam) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			NotEmpty().
			Unique().
			Comment("Exam name, unique across the bank"),
		field.String("vendor").
			Default("").
			Comment("Certifying vendor, e.g. AWS or Cisco"),
		field.String("exam_code").
			Default("").
			Comment("Official exam code, e.g. SAA-C03"),
		field.String("description").
			Default(""),
		field.Int("passing_score").
			Default(0).
			Min(0).
			Max(100).
			Comment("Passing score percent, 0 when unknown"),
		field.Int("time_limit_minutes").
			Default(0).
			Min(0),
	}
}

func (Exam) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("name"),
	}
}
