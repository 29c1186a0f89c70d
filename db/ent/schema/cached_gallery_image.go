package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
)

// CachedGalleryImage is one row of the gallery offline snapshot.
type CachedGalleryImage struct{ ent.Schema }

func (CachedGalleryImage) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "cached_gallery_images"},
	}
}

func (CachedGalleryImage) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").NotEmpty().Immutable().StorageKey("id"),
		field.String("title").Optional(),
		field.String("url").NotEmpty(),
		field.String("thumbnail_url").Optional(),
		field.String("status").Optional(),
		field.String("uploaded_by").Optional(),
		field.Time("uploaded_at"),
		field.Int("position"),
		field.Time("stored_at").Default(time.Now),
	}
}
