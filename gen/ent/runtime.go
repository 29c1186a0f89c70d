// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/communityhub/mobilecore/db/ent/schema"
	"github.com/communityhub/mobilecore/gen/ent/cachedgalleryimage"
	"github.com/communityhub/mobilecore/gen/ent/cachednewsitem"
	"github.com/communityhub/mobilecore/gen/ent/cachedtransaction"
	"github.com/communityhub/mobilecore/gen/ent/pinnedcategory"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	cachedgalleryimageFields := schema.CachedGalleryImage{}.Fields()
	_ = cachedgalleryimageFields
	// cachedgalleryimageDescURL is the schema descriptor for url field.
	cachedgalleryimageDescURL := cachedgalleryimageFields[2].Descriptor()
	// cachedgalleryimage.URLValidator is a validator for the "url" field. It is called by the builders before save.
	cachedgalleryimage.URLValidator = cachedgalleryimageDescURL.Validators[0].(func(string) error)
	// cachedgalleryimageDescStoredAt is the schema descriptor for stored_at field.
	cachedgalleryimageDescStoredAt := cachedgalleryimageFields[8].Descriptor()
	// cachedgalleryimage.DefaultStoredAt holds the default value on creation for the stored_at field.
	cachedgalleryimage.DefaultStoredAt = cachedgalleryimageDescStoredAt.Default.(func() time.Time)
	// cachedgalleryimageDescID is the schema descriptor for id field.
	cachedgalleryimageDescID := cachedgalleryimageFields[0].Descriptor()
	// cachedgalleryimage.IDValidator is a validator for the "id" field. It is called by the builders before save.
	cachedgalleryimage.IDValidator = cachedgalleryimageDescID.Validators[0].(func(string) error)
	cachednewsitemFields := schema.CachedNewsItem{}.Fields()
	_ = cachednewsitemFields
	// cachednewsitemDescTitle is the schema descriptor for title field.
	cachednewsitemDescTitle := cachednewsitemFields[1].Descriptor()
	// cachednewsitem.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	cachednewsitem.TitleValidator = cachednewsitemDescTitle.Validators[0].(func(string) error)
	// cachednewsitemDescLikeCount is the schema descriptor for like_count field.
	cachednewsitemDescLikeCount := cachednewsitemFields[5].Descriptor()
	// cachednewsitem.DefaultLikeCount holds the default value on creation for the like_count field.
	cachednewsitem.DefaultLikeCount = cachednewsitemDescLikeCount.Default.(int)
	// cachednewsitemDescCommentCount is the schema descriptor for comment_count field.
	cachednewsitemDescCommentCount := cachednewsitemFields[6].Descriptor()
	// cachednewsitem.DefaultCommentCount holds the default value on creation for the comment_count field.
	cachednewsitem.DefaultCommentCount = cachednewsitemDescCommentCount.Default.(int)
	// cachednewsitemDescStoredAt is the schema descriptor for stored_at field.
	cachednewsitemDescStoredAt := cachednewsitemFields[9].Descriptor()
	// cachednewsitem.DefaultStoredAt holds the default value on creation for the stored_at field.
	cachednewsitem.DefaultStoredAt = cachednewsitemDescStoredAt.Default.(func() time.Time)
	// cachednewsitemDescID is the schema descriptor for id field.
	cachednewsitemDescID := cachednewsitemFields[0].Descriptor()
	// cachednewsitem.IDValidator is a validator for the "id" field. It is called by the builders before save.
	cachednewsitem.IDValidator = cachednewsitemDescID.Validators[0].(func(string) error)
	cachedtransactionFields := schema.CachedTransaction{}.Fields()
	_ = cachedtransactionFields
	// cachedtransactionDescKind is the schema descriptor for kind field.
	cachedtransactionDescKind := cachedtransactionFields[1].Descriptor()
	// cachedtransaction.KindValidator is a validator for the "kind" field. It is called by the builders before save.
	cachedtransaction.KindValidator = cachedtransactionDescKind.Validators[0].(func(string) error)
	// cachedtransactionDescStoredAt is the schema descriptor for stored_at field.
	cachedtransactionDescStoredAt := cachedtransactionFields[10].Descriptor()
	// cachedtransaction.DefaultStoredAt holds the default value on creation for the stored_at field.
	cachedtransaction.DefaultStoredAt = cachedtransactionDescStoredAt.Default.(func() time.Time)
	// cachedtransactionDescID is the schema descriptor for id field.
	cachedtransactionDescID := cachedtransactionFields[0].Descriptor()
	// cachedtransaction.IDValidator is a validator for the "id" field. It is called by the builders before save.
	cachedtransaction.IDValidator = cachedtransactionDescID.Validators[0].(func(string) error)
	pinnedcategoryFields := schema.PinnedCategory{}.Fields()
	_ = pinnedcategoryFields
	// pinnedcategoryDescCategoryID is the schema descriptor for category_id field.
	pinnedcategoryDescCategoryID := pinnedcategoryFields[0].Descriptor()
	// pinnedcategory.CategoryIDValidator is a validator for the "category_id" field. It is called by the builders before save.
	pinnedcategory.CategoryIDValidator = pinnedcategoryDescCategoryID.Validators[0].(func(string) error)
	// pinnedcategoryDescPinnedAt is the schema descriptor for pinned_at field.
	pinnedcategoryDescPinnedAt := pinnedcategoryFields[1].Descriptor()
	// pinnedcategory.DefaultPinnedAt holds the default value on creation for the pinned_at field.
	pinnedcategory.DefaultPinnedAt = pinnedcategoryDescPinnedAt.Default.(func() time.Time)
}
