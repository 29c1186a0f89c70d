// Code generated by ent, DO NOT EDIT.

package cachednewsitem

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/communityhub/mobilecore/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.CachedNewsItem {
	return predicate.CachedNewsItem(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.CachedNewsItem {
	return predicate.CachedNewsItem(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.CachedNewsItem {
	return predicate.CachedNewsItem(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.CachedNewsItem {
	return predicate.CachedNewsItem(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.CachedNewsItem {
	return predicate.CachedNewsItem(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.CachedNewsItem {
	return predicate.CachedNewsItem(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.CachedNewsItem {
	return predicate.CachedNewsItem(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.CachedNewsItem {
	return predicate.CachedNewsItem(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.CachedNewsItem {
	return predicate.CachedNewsItem(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.CachedNewsItem {
	return predicate.CachedNewsItem(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.CachedNewsItem {
	return predicate.CachedNewsItem(sql.FieldContainsFold(FieldID, id))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.CachedNewsItem {
	return predicate.CachedNewsItem(sql.FieldEQ(FieldTitle, v))
}

// Summary applies equality check predicate on the "summary" field. It's identical to SummaryEQ.
func Summary(v string) predicate.CachedNewsItem {
	return predicate.CachedNewsItem(sql.FieldEQ(FieldSummary, v))
}

// ImageURL applies equality check predicate on the "image_url" field. It's identical to ImageURLEQ.
func ImageURL(v string) predicate.CachedNewsItem {
	return predicate.CachedNewsItem(sql.FieldEQ(FieldImageURL, v))
}

// Author applies equality check predicate on the "author" field. It's identical to AuthorEQ.
func Author(v string) predicate.CachedNewsItem {
	return predicate.CachedNewsItem(sql.FieldEQ(FieldAuthor, v))
}

// LikeCount applies equality check predicate on the "like_count" field. It's identical to LikeCountEQ.
func LikeCount(v int) predicate.CachedNewsItem {
	return predicate.CachedNewsItem(sql.FieldEQ(FieldLikeCount, v))
}

// CommentCount applies equality check predicate on the "comment_count" field. It's identical to CommentCountEQ.
func CommentCount(v int) predicate.CachedNewsItem {
	return predicate.CachedNewsItem(sql.FieldEQ(FieldCommentCount, v))
}

// PublishedAt applies equality check predicate on the "published_at" field. It's identical to PublishedAtEQ.
func PublishedAt(v time.Time) predicate.CachedNewsItem {
	return predicate.CachedNewsItem(sql.FieldEQ(FieldPublishedAt, v))
}

// Position applies equality check predicate on the "position" field. It's identical to PositionEQ.
func Position(v int) predicate.CachedNewsItem {
	return predicate.CachedNewsItem(sql.FieldEQ(FieldPosition, v))
}

// StoredAt applies equality check predicate on the "stored_at" field. It's identical to StoredAtEQ.
func StoredAt(v time.Time) predicate.CachedNewsItem {
	return predicate.CachedNewsItem(sql.FieldEQ(FieldStoredAt, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.CachedNewsItem {
	return predicate.CachedNewsItem(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.CachedNewsItem {
	return predicate.CachedNewsItem(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.CachedNewsItem {
	return predicate.CachedNewsItem(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.CachedNewsItem {
	return predicate.CachedNewsItem(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.CachedNewsItem {
	return predicate.CachedNewsItem(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.CachedNewsItem {
	return predicate.CachedNewsItem(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.CachedNewsItem {
	return predicate.CachedNewsItem(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.CachedNewsItem {
	return predicate.CachedNewsItem(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.CachedNewsItem {
	return predicate.CachedNewsItem(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.CachedNewsItem {
	return predicate.CachedNewsItem(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.CachedNewsItem {
	return predicate.CachedNewsItem(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.CachedNewsItem {
	return predicate.CachedNewsItem(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.CachedNewsItem {
	return predicate.CachedNewsItem(sql.FieldContainsFold(FieldTitle, v))
}

// SummaryEQ applies the EQ predicate on the "summary" field.
func SummaryEQ(v string) predicate.CachedNewsItem {
	return predicate.CachedNewsItem(sql.FieldEQ(FieldSummary, v))
}

// SummaryNEQ applies the NEQ predicate on the "summary" field.
func SummaryNEQ(v string) predicate.CachedNewsItem {
	return predicate.CachedNewsItem(sql.FieldNEQ(FieldSummary, v))
}

// SummaryIn applies the In predicate on the "summary" field.
func SummaryIn(vs ...string) predicate.CachedNewsItem {
	return predicate.CachedNewsItem(sql.FieldIn(FieldSummary, vs...))
}

// SummaryNotIn applies the NotIn predicate on the "summary" field.
func SummaryNotIn(vs ...string) predicate.CachedNewsItem {
	return predicate.CachedNewsItem(sql.FieldNotIn(FieldSummary, vs...))
}

// SummaryGT applies the GT predicate on the "summary" field.
func SummaryGT(v string) predicate.CachedNewsItem {
	return predicate.CachedNewsItem(sql.FieldGT(FieldSummary, v))
}

// SummaryGTE applies the GTE predicate on the "summary" field.
func SummaryGTE(v string) predicate.CachedNewsItem {
	return predicate.CachedNewsItem(sql.FieldGTE(FieldSummary, v))
}

// SummaryLT applies the LT predicate on the "summary" field.
func SummaryLT(v string) predicate.CachedNewsItem {
	return predicate.CachedNewsItem(sql.FieldLT(FieldSummary, v))
}

// SummaryLTE applies the LTE predicate on the "summary" field.
func SummaryLTE(v string) predicate.CachedNewsItem {
	return predicate.CachedNewsItem(sql.FieldLTE(FieldSummary, v))
}

// SummaryContains applies the Contains predicate on the "summary" field.
func SummaryContains(v string) predicate.CachedNewsItem {
	return predicate.CachedNewsItem(sql.FieldContains(FieldSummary, v))
}

// SummaryHasPrefix applies the HasPrefix predicate on the "summary" field.
func SummaryHasPrefix(v string) predicate.CachedNewsItem {
	return predicate.CachedNewsItem(sql.FieldHasPrefix(FieldSummary, v))
}

// SummaryHasSuffix applies the HasSuffix predicate on the "summary" field.
func SummaryHasSuffix(v string) predicate.CachedNewsItem {
	return predicate.CachedNewsItem(sql.FieldHasSuffix(FieldSummary, v))
}

// SummaryIsNil applies the IsNil predicate on the "summary" field.
func SummaryIsNil() predicate.CachedNewsItem {
	return predicate.CachedNewsItem(sql.FieldIsNull(FieldSummary))
}

// SummaryNotNil applies the NotNil predicate on the "summary" field.
func SummaryNotNil() predicate.CachedNewsItem {
	return predicate.CachedNewsItem(sql.FieldNotNull(FieldSummary))
}

// SummaryEqualFold applies the EqualFold predicate on the "summary" field.
func SummaryEqualFold(v string) predicate.CachedNewsItem {
	return predicate.CachedNewsItem(sql.FieldEqualFold(FieldSummary, v))
}

// SummaryContainsFold applies the ContainsFold predicate on the "summary" field.
func SummaryContainsFold(v string) predicate.CachedNewsItem {
	return predicate.CachedNewsItem(sql.FieldContainsFold(FieldSummary, v))
}

// ImageURLEQ applies the EQ predicate on the "image_url" field.
func ImageURLEQ(v string) predicate.CachedNewsItem {
	return predicate.CachedNewsItem(sql.FieldEQ(FieldImageURL, v))
}

// ImageURLNEQ applies the NEQ predicate on the "image_url" field.
func ImageURLNEQ(v string) predicate.CachedNewsItem {
	return predicate.CachedNewsItem(sql.FieldNEQ(FieldImageURL, v))
}

// ImageURLIn applies the In predicate on the "image_url" field.
func ImageURLIn(vs ...string) predicate.CachedNewsItem {
	return predicate.CachedNewsItem(sql.FieldIn(FieldImageURL, vs...))
}

// ImageURLNotIn applies the NotIn predicate on the "image_url" field.
func ImageURLNotIn(vs ...string) predicate.CachedNewsItem {
	return predicate.CachedNewsItem(sql.FieldNotIn(FieldImageURL, vs...))
}

// ImageURLGT applies the GT predicate on the "image_url" field.
func ImageURLGT(v string) predicate.CachedNewsItem {
	return predicate.CachedNewsItem(sql.FieldGT(FieldImageURL, v))
}

// ImageURLGTE applies the GTE predicate on the "image_url" field.
func ImageURLGTE(v string) predicate.CachedNewsItem {
	return predicate.CachedNewsItem(sql.FieldGTE(FieldImageURL, v))
}

// ImageURLLT applies the LT predicate on the "image_url" field.
func ImageURLLT(v string) predicate.CachedNewsItem {
	return predicate.CachedNewsItem(sql.FieldLT(FieldImageURL, v))
}

// ImageURLLTE applies the LTE predicate on the "image_url" field.
func ImageURLLTE(v string) predicate.CachedNewsItem {
	return predicate.CachedNewsItem(sql.FieldLTE(FieldImageURL, v))
}

// ImageURLContains applies the Contains predicate on the "image_url" field.
func ImageURLContains(v string) predicate.CachedNewsItem {
	return predicate.CachedNewsItem(sql.FieldContains(FieldImageURL, v))
}

// ImageURLHasPrefix applies the HasPrefix predicate on the "image_url" field.
func ImageURLHasPrefix(v string) predicate.CachedNewsItem {
	return predicate.CachedNewsItem(sql.FieldHasPrefix(FieldImageURL, v))
}

// ImageURLHasSuffix applies the HasSuffix predicate on the "image_url" field.
func ImageURLHasSuffix(v string) predicate.CachedNewsItem {
	return predicate.CachedNewsItem(sql.FieldHasSuffix(FieldImageURL, v))
}

// ImageURLIsNil applies the IsNil predicate on the "image_url" field.
func ImageURLIsNil() predicate.CachedNewsItem {
	return predicate.CachedNewsItem(sql.FieldIsNull(FieldImageURL))
}

// ImageURLNotNil applies the NotNil predicate on the "image_url" field.
func ImageURLNotNil() predicate.CachedNewsItem {
	return predicate.CachedNewsItem(sql.FieldNotNull(FieldImageURL))
}

// ImageURLEqualFold applies the EqualFold predicate on the "image_url" field.
func ImageURLEqualFold(v string) predicate.CachedNewsItem {
	return predicate.CachedNewsItem(sql.FieldEqualFold(FieldImageURL, v))
}

// ImageURLContainsFold applies the ContainsFold predicate on the "image_url" field.
func ImageURLContainsFold(v string) predicate.CachedNewsItem {
	return predicate.CachedNewsItem(sql.FieldContainsFold(FieldImageURL, v))
}

// AuthorEQ applies the EQ predicate on the "author" field.
func AuthorEQ(v string) predicate.CachedNewsItem {
	return predicate.CachedNewsItem(sql.FieldEQ(FieldAuthor, v))
}

// AuthorNEQ applies the NEQ predicate on the "author" field.
func AuthorNEQ(v string) predicate.CachedNewsItem {
	return predicate.CachedNewsItem(sql.FieldNEQ(FieldAuthor, v))
}

// AuthorIn applies the In predicate on the "author" field.
func AuthorIn(vs ...string) predicate.CachedNewsItem {
	return predicate.CachedNewsItem(sql.FieldIn(FieldAuthor, vs...))
}

// AuthorNotIn applies the NotIn predicate on the "author" field.
func AuthorNotIn(vs ...string) predicate.CachedNewsItem {
	return predicate.CachedNewsItem(sql.FieldNotIn(FieldAuthor, vs...))
}

// AuthorGT applies the GT predicate on the "author" field.
func AuthorGT(v string) predicate.CachedNewsItem {
	return predicate.CachedNewsItem(sql.FieldGT(FieldAuthor, v))
}

// AuthorGTE applies the GTE predicate on the "author" field.
func AuthorGTE(v string) predicate.CachedNewsItem {
	return predicate.CachedNewsItem(sql.FieldGTE(FieldAuthor, v))
}

// AuthorLT applies the LT predicate on the "author" field.
func AuthorLT(v string) predicate.CachedNewsItem {
	return predicate.CachedNewsItem(sql.FieldLT(FieldAuthor, v))
}

// AuthorLTE applies the LTE predicate on the "author" field.
func AuthorLTE(v string) predicate.CachedNewsItem {
	return predicate.CachedNewsItem(sql.FieldLTE(FieldAuthor, v))
}

// AuthorContains applies the Contains predicate on the "author" field.
func AuthorContains(v string) predicate.CachedNewsItem {
	return predicate.CachedNewsItem(sql.FieldContains(FieldAuthor, v))
}

// AuthorHasPrefix applies the HasPrefix predicate on the "author" field.
func AuthorHasPrefix(v string) predicate.CachedNewsItem {
	return predicate.CachedNewsItem(sql.FieldHasPrefix(FieldAuthor, v))
}

// AuthorHasSuffix applies the HasSuffix predicate on the "author" field.
func AuthorHasSuffix(v string) predicate.CachedNewsItem {
	return predicate.CachedNewsItem(sql.FieldHasSuffix(FieldAuthor, v))
}

// AuthorIsNil applies the IsNil predicate on the "author" field.
func AuthorIsNil() predicate.CachedNewsItem {
	return predicate.CachedNewsItem(sql.FieldIsNull(FieldAuthor))
}

// AuthorNotNil applies the NotNil predicate on the "author" field.
func AuthorNotNil() predicate.CachedNewsItem {
	return predicate.CachedNewsItem(sql.FieldNotNull(FieldAuthor))
}

// AuthorEqualFold applies the EqualFold predicate on the "author" field.
func AuthorEqualFold(v string) predicate.CachedNewsItem {
	return predicate.CachedNewsItem(sql.FieldEqualFold(FieldAuthor, v))
}

// AuthorContainsFold applies the ContainsFold predicate on the "author" field.
func AuthorContainsFold(v string) predicate.CachedNewsItem {
	return predicate.CachedNewsItem(sql.FieldContainsFold(FieldAuthor, v))
}

// LikeCountEQ applies the EQ predicate on the "like_count" field.
func LikeCountEQ(v int) predicate.CachedNewsItem {
	return predicate.CachedNewsItem(sql.FieldEQ(FieldLikeCount, v))
}

// LikeCountNEQ applies the NEQ predicate on the "like_count" field.
func LikeCountNEQ(v int) predicate.CachedNewsItem {
	return predicate.CachedNewsItem(sql.FieldNEQ(FieldLikeCount, v))
}

// LikeCountIn applies the In predicate on the "like_count" field.
func LikeCountIn(vs ...int) predicate.CachedNewsItem {
	return predicate.CachedNewsItem(sql.FieldIn(FieldLikeCount, vs...))
}

// LikeCountNotIn applies the NotIn predicate on the "like_count" field.
func LikeCountNotIn(vs ...int) predicate.CachedNewsItem {
	return predicate.CachedNewsItem(sql.FieldNotIn(FieldLikeCount, vs...))
}

// LikeCountGT applies the GT predicate on the "like_count" field.
func LikeCountGT(v int) predicate.CachedNewsItem {
	return predicate.CachedNewsItem(sql.FieldGT(FieldLikeCount, v))
}

// LikeCountGTE applies the GTE predicate on the "like_count" field.
func LikeCountGTE(v int) predicate.CachedNewsItem {
	return predicate.CachedNewsItem(sql.FieldGTE(FieldLikeCount, v))
}

// LikeCountLT applies the LT predicate on the "like_count" field.
func LikeCountLT(v int) predicate.CachedNewsItem {
	return predicate.CachedNewsItem(sql.FieldLT(FieldLikeCount, v))
}

// LikeCountLTE applies the LTE predicate on the "like_count" field.
func LikeCountLTE(v int) predicate.CachedNewsItem {
	return predicate.CachedNewsItem(sql.FieldLTE(FieldLikeCount, v))
}

// CommentCountEQ applies the EQ predicate on the "comment_count" field.
func CommentCountEQ(v int) predicate.CachedNewsItem {
	return predicate.CachedNewsItem(sql.FieldEQ(FieldCommentCount, v))
}

// CommentCountNEQ applies the NEQ predicate on the "comment_count" field.
func CommentCountNEQ(v int) predicate.CachedNewsItem {
	return predicate.CachedNewsItem(sql.FieldNEQ(FieldCommentCount, v))
}

// CommentCountIn applies the In predicate on the "comment_count" field.
func CommentCountIn(vs ...int) predicate.CachedNewsItem {
	return predicate.CachedNewsItem(sql.FieldIn(FieldCommentCount, vs...))
}

// CommentCountNotIn applies the NotIn predicate on the "comment_count" field.
func CommentCountNotIn(vs ...int) predicate.CachedNewsItem {
	return predicate.CachedNewsItem(sql.FieldNotIn(FieldCommentCount, vs...))
}

// CommentCountGT applies the GT predicate on the "comment_count" field.
func CommentCountGT(v int) predicate.CachedNewsItem {
	return predicate.CachedNewsItem(sql.FieldGT(FieldCommentCount, v))
}

// CommentCountGTE applies the GTE predicate on the "comment_count" field.
func CommentCountGTE(v int) predicate.CachedNewsItem {
	return predicate.CachedNewsItem(sql.FieldGTE(FieldCommentCount, v))
}

// CommentCountLT applies the LT predicate on the "comment_count" field.
func CommentCountLT(v int) predicate.CachedNewsItem {
	return predicate.CachedNewsItem(sql.FieldLT(FieldCommentCount, v))
}

// CommentCountLTE applies the LTE predicate on the "comment_count" field.
func CommentCountLTE(v int) predicate.CachedNewsItem {
	return predicate.CachedNewsItem(sql.FieldLTE(FieldCommentCount, v))
}

// PublishedAtEQ applies the EQ predicate on the "published_at" field.
func PublishedAtEQ(v time.Time) predicate.CachedNewsItem {
	return predicate.CachedNewsItem(sql.FieldEQ(FieldPublishedAt, v))
}

// PublishedAtNEQ applies the NEQ predicate on the "published_at" field.
func PublishedAtNEQ(v time.Time) predicate.CachedNewsItem {
	return predicate.CachedNewsItem(sql.FieldNEQ(FieldPublishedAt, v))
}

// PublishedAtIn applies the In predicate on the "published_at" field.
func PublishedAtIn(vs ...time.Time) predicate.CachedNewsItem {
	return predicate.CachedNewsItem(sql.FieldIn(FieldPublishedAt, vs...))
}

// PublishedAtNotIn applies the NotIn predicate on the "published_at" field.
func PublishedAtNotIn(vs ...time.Time) predicate.CachedNewsItem {
	return predicate.CachedNewsItem(sql.FieldNotIn(FieldPublishedAt, vs...))
}

// PublishedAtGT applies the GT predicate on the "published_at" field.
func PublishedAtGT(v time.Time) predicate.CachedNewsItem {
	return predicate.CachedNewsItem(sql.FieldGT(FieldPublishedAt, v))
}

// PublishedAtGTE applies the GTE predicate on the "published_at" field.
func PublishedAtGTE(v time.Time) predicate.CachedNewsItem {
	return predicate.CachedNewsItem(sql.FieldGTE(FieldPublishedAt, v))
}

// PublishedAtLT applies the LT predicate on the "published_at" field.
func PublishedAtLT(v time.Time) predicate.CachedNewsItem {
	return predicate.CachedNewsItem(sql.FieldLT(FieldPublishedAt, v))
}

// PublishedAtLTE applies the LTE predicate on the "published_at" field.
func PublishedAtLTE(v time.Time) predicate.CachedNewsItem {
	return predicate.CachedNewsItem(sql.FieldLTE(FieldPublishedAt, v))
}

// PositionEQ applies the EQ predicate on the "position" field.
func PositionEQ(v int) predicate.CachedNewsItem {
	return predicate.CachedNewsItem(sql.FieldEQ(FieldPosition, v))
}

// PositionNEQ applies the NEQ predicate on the "position" field.
func PositionNEQ(v int) predicate.CachedNewsItem {
	return predicate.CachedNewsItem(sql.FieldNEQ(FieldPosition, v))
}

// PositionIn applies the In predicate on the "position" field.
func PositionIn(vs ...int) predicate.CachedNewsItem {
	return predicate.CachedNewsItem(sql.FieldIn(FieldPosition, vs...))
}

// PositionNotIn applies the NotIn predicate on the "position" field.
func PositionNotIn(vs ...int) predicate.CachedNewsItem {
	return predicate.CachedNewsItem(sql.FieldNotIn(FieldPosition, vs...))
}

// PositionGT applies the GT predicate on the "position" field.
func PositionGT(v int) predicate.CachedNewsItem {
	return predicate.CachedNewsItem(sql.FieldGT(FieldPosition, v))
}

// PositionGTE applies the GTE predicate on the "position" field.
func PositionGTE(v int) predicate.CachedNewsItem {
	return predicate.CachedNewsItem(sql.FieldGTE(FieldPosition, v))
}

// PositionLT applies the LT predicate on the "position" field.
func PositionLT(v int) predicate.CachedNewsItem {
	return predicate.CachedNewsItem(sql.FieldLT(FieldPosition, v))
}

// PositionLTE applies the LTE predicate on the "position" field.
func PositionLTE(v int) predicate.CachedNewsItem {
	return predicate.CachedNewsItem(sql.FieldLTE(FieldPosition, v))
}

// StoredAtEQ applies the EQ predicate on the "stored_at" field.
func StoredAtEQ(v time.Time) predicate.CachedNewsItem {
	return predicate.CachedNewsItem(sql.FieldEQ(FieldStoredAt, v))
}

// StoredAtNEQ applies the NEQ predicate on the "stored_at" field.
func StoredAtNEQ(v time.Time) predicate.CachedNewsItem {
	return predicate.CachedNewsItem(sql.FieldNEQ(FieldStoredAt, v))
}

// StoredAtIn applies the In predicate on the "stored_at" field.
func StoredAtIn(vs ...time.Time) predicate.CachedNewsItem {
	return predicate.CachedNewsItem(sql.FieldIn(FieldStoredAt, vs...))
}

// StoredAtNotIn applies the NotIn predicate on the "stored_at" field.
func StoredAtNotIn(vs ...time.Time) predicate.CachedNewsItem {
	return predicate.CachedNewsItem(sql.FieldNotIn(FieldStoredAt, vs...))
}

// StoredAtGT applies the GT predicate on the "stored_at" field.
func StoredAtGT(v time.Time) predicate.CachedNewsItem {
	return predicate.CachedNewsItem(sql.FieldGT(FieldStoredAt, v))
}

// StoredAtGTE applies the GTE predicate on the "stored_at" field.
func StoredAtGTE(v time.Time) predicate.CachedNewsItem {
	return predicate.CachedNewsItem(sql.FieldGTE(FieldStoredAt, v))
}

// StoredAtLT applies the LT predicate on the "stored_at" field.
func StoredAtLT(v time.Time) predicate.CachedNewsItem {
	return predicate.CachedNewsItem(sql.FieldLT(FieldStoredAt, v))
}

// StoredAtLTE applies the LTE predicate on the "stored_at" field.
func StoredAtLTE(v time.Time) predicate.CachedNewsItem {
	return predicate.CachedNewsItem(sql.FieldLTE(FieldStoredAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CachedNewsItem) predicate.CachedNewsItem {
	return predicate.CachedNewsItem(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CachedNewsItem) predicate.CachedNewsItem {
	return predicate.CachedNewsItem(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CachedNewsItem) predicate.CachedNewsItem {
	return predicate.CachedNewsItem(sql.NotPredicates(p))
}
