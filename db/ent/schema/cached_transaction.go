package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
)

// CachedTransaction is one row of the donation/expense offline snapshot.
type CachedTransaction struct{ ent.Schema }

func (CachedTransaction) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "cached_transactions"},
	}
}

func (CachedTransaction) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").NotEmpty().Immutable().StorageKey("id"),
		field.String("kind").NotEmpty(),
		field.String("subcategory_id").Optional(),
		field.String("title").Optional(),
		field.Float("amount"),
		field.String("currency_code").Optional(),
		field.Time("tx_date"),
		field.String("recorded_by").Optional(),
		field.String("note").Optional(),
		field.Int("position"),
		field.Time("stored_at").Default(time.Now),
	}
}
