package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
)

// PinnedCategory records a locally pinned donation category. Existence is the
// whole state: created on pin, deleted on unpin.
type PinnedCategory struct{ ent.Schema }

func (PinnedCategory) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "pinned_categories"},
	}
}

func (PinnedCategory) Fields() []ent.Field {
	return []ent.Field{
		field.String("category_id").NotEmpty().Unique(),
		field.Time("pinned_at").Default(time.Now),
	}
}
