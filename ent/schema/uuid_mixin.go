package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/mixin"
	"github.com/google/uuid"
)

// UUIDMixin provides the identity and creation timestamp shared by all
// bank and session entities. The UUID is assigned at insert time so
// callers never pick identifiers themselves.
type UUIDMixin struct {
	mixin.Schema
}

func (UUIDMixin) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			DefaultFunc(uuid.NewString).
			Comment("UUID primary key"),
		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("UTC creation time"),
	}
}
