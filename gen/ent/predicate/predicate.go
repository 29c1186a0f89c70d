// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// CachedGalleryImage is the predicate function for cachedgalleryimage builders.
type CachedGalleryImage func(*sql.Selector)

// CachedNewsItem is the predicate function for cachednewsitem builders.
type CachedNewsItem func(*sql.Selector)

// CachedTransaction is the predicate function for cachedtransaction builders.
type CachedTransaction func(*sql.Selector)

// PinnedCategory is the predicate function for pinnedcategory builders.
type PinnedCategory func(*sql.Selector)
