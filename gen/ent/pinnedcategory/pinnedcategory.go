// Code generated by ent, DO NOT EDIT.

package pinnedcategory

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the pinnedcategory type in the database.
	Label = "pinned_category"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCategoryID holds the string denoting the category_id field in the database.
	FieldCategoryID = "category_id"
	// FieldPinnedAt holds the string denoting the pinned_at field in the database.
	FieldPinnedAt = "pinned_at"
	// Table holds the table name of the pinnedcategory in the database.
	Table = "pinned_categories"
)

// Columns holds all SQL columns for pinnedcategory fields.
var Columns = []string{
	FieldID,
	FieldCategoryID,
	FieldPinnedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// CategoryIDValidator is a validator for the "category_id" field. It is called by the builders before save.
	CategoryIDValidator func(string) error
	// DefaultPinnedAt holds the default value on creation for the "pinned_at" field.
	DefaultPinnedAt func() time.Time
)

// OrderOption defines the ordering options for the PinnedCategory queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCategoryID orders the results by the category_id field.
func ByCategoryID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCategoryID, opts...).ToFunc()
}

// ByPinnedAt orders the results by the pinned_at field.
func ByPinnedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPinnedAt, opts...).ToFunc()
}
