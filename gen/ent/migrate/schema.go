// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// CachedGalleryImagesColumns holds the columns for the "cached_gallery_images" table.
	CachedGalleryImagesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "title", Type: field.TypeString, Nullable: true},
		{Name: "url", Type: field.TypeString},
		{Name: "thumbnail_url", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeString, Nullable: true},
		{Name: "uploaded_by", Type: field.TypeString, Nullable: true},
		{Name: "uploaded_at", Type: field.TypeTime},
		{Name: "position", Type: field.TypeInt},
		{Name: "stored_at", Type: field.TypeTime},
	}
	// CachedGalleryImagesTable holds the schema information for the "cached_gallery_images" table.
	CachedGalleryImagesTable = &schema.Table{
		Name:       "cached_gallery_images",
		Columns:    CachedGalleryImagesColumns,
		PrimaryKey: []*schema.Column{CachedGalleryImagesColumns[0]},
	}
	// CachedNewsItemsColumns holds the columns for the "cached_news_items" table.
	CachedNewsItemsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "title", Type: field.TypeString},
		{Name: "summary", Type: field.TypeString, Nullable: true},
		{Name: "image_url", Type: field.TypeString, Nullable: true},
		{Name: "author", Type: field.TypeString, Nullable: true},
		{Name: "like_count", Type: field.TypeInt, Default: 0},
		{Name: "comment_count", Type: field.TypeInt, Default: 0},
		{Name: "published_at", Type: field.TypeTime},
		{Name: "position", Type: field.TypeInt},
		{Name: "stored_at", Type: field.TypeTime},
	}
	// CachedNewsItemsTable holds the schema information for the "cached_news_items" table.
	CachedNewsItemsTable = &schema.Table{
		Name:       "cached_news_items",
		Columns:    CachedNewsItemsColumns,
		PrimaryKey: []*schema.Column{CachedNewsItemsColumns[0]},
	}
	// CachedTransactionsColumns holds the columns for the "cached_transactions" table.
	CachedTransactionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "kind", Type: field.TypeString},
		{Name: "subcategory_id", Type: field.TypeString, Nullable: true},
		{Name: "title", Type: field.TypeString, Nullable: true},
		{Name: "amount", Type: field.TypeFloat64},
		{Name: "currency_code", Type: field.TypeString, Nullable: true},
		{Name: "tx_date", Type: field.TypeTime},
		{Name: "recorded_by", Type: field.TypeString, Nullable: true},
		{Name: "note", Type: field.TypeString, Nullable: true},
		{Name: "position", Type: field.TypeInt},
		{Name: "stored_at", Type: field.TypeTime},
	}
	// CachedTransactionsTable holds the schema information for the "cached_transactions" table.
	CachedTransactionsTable = &schema.Table{
		Name:       "cached_transactions",
		Columns:    CachedTransactionsColumns,
		PrimaryKey: []*schema.Column{CachedTransactionsColumns[0]},
	}
	// PinnedCategoriesColumns holds the columns for the "pinned_categories" table.
	PinnedCategoriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "category_id", Type: field.TypeString, Unique: true},
		{Name: "pinned_at", Type: field.TypeTime},
	}
	// PinnedCategoriesTable holds the schema information for the "pinned_categories" table.
	PinnedCategoriesTable = &schema.Table{
		Name:       "pinned_categories",
		Columns:    PinnedCategoriesColumns,
		PrimaryKey: []*schema.Column{PinnedCategoriesColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		CachedGalleryImagesTable,
		CachedNewsItemsTable,
		CachedTransactionsTable,
		PinnedCategoriesTable,
	}
)

func init() {
	CachedGalleryImagesTable.Annotation = &entsql.Annotation{
		Table: "cached_gallery_images",
	}
	CachedNewsItemsTable.Annotation = &entsql.Annotation{
		Table: "cached_news_items",
	}
	CachedTransactionsTable.Annotation = &entsql.Annotation{
		Table: "cached_transactions",
	}
	PinnedCategoriesTable.Annotation = &entsql.Annotation{
		Table: "pinned_categories",
	}
}
