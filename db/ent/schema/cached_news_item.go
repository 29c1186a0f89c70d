package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
)

// CachedNewsItem is one row of the news offline snapshot: the last known good
// page 1, replaced wholesale on every successful fetch. The position field
// preserves server order across the round trip.
type CachedNewsItem struct{ ent.Schema }

func (CachedNewsItem) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "cached_news_items"},
	}
}

func (CachedNewsItem) Fields() []ent.Field {
	return []ent.Field{
		// Remote identifier; the snapshot carries no local identity.
		field.String("id").NotEmpty().Immutable().StorageKey("id"),
		field.String("title").NotEmpty(),
		field.String("summary").Optional(),
		field.String("image_url").Optional(),
		field.String("author").Optional(),
		field.Int("like_count").Default(0),
		field.Int("comment_count").Default(0),
		field.Time("published_at"),
		field.Int("position"),
		field.Time("stored_at").Default(time.Now),
	}
}
