package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PracticeSession is one practice run. The questions list is frozen at
// creation and is the durable anchor for resume: progress is always
// derivable from this list plus the attempt log, never from memory.
type PracticeSession struct {
	ent.Schema
}

func (PracticeSession) Mixin() []ent.Mixin {
	return []ent.Mixin{UUIDMixin{}}
}

func (PracticeSession) Fields() []ent.Field {
	return []ent.Field{
		field.String("exam_id").
			NotEmpty().
			Comment("Owning exam UUID"),
		field.String("topic_id").
			Default("").
			Comment("Topic filter used at creation, empty for whole exam"),
		field.String("mode").
			NotEmpty().
			Comment("practice or speedrun"),
		field.JSON("questions", []string{}).
			Comment("Frozen ordered question UUIDs, immutable after insert"),
		field.Int64("selection_seed").
			Default(0).
			Comment("RNG seed used to freeze the list, logged for replay"),
		field.String("status").
			Default("active").
			Comment("active, completed or abandoned"),
		field.Time("ended_at").
			Optional().
			Nillable().
			Comment("Set once on transition to a terminal status"),
	}
}

func (PracticeSession) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("exam_id"),
		index.Fields("status"),
	}
}
