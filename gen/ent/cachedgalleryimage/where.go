// Code generated by ent, DO NOT EDIT.

package cachedgalleryimage

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/communityhub/mobilecore/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.CachedGalleryImage {
	return predicate.CachedGalleryImage(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.CachedGalleryImage {
	return predicate.CachedGalleryImage(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.CachedGalleryImage {
	return predicate.CachedGalleryImage(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.CachedGalleryImage {
	return predicate.CachedGalleryImage(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.CachedGalleryImage {
	return predicate.CachedGalleryImage(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.CachedGalleryImage {
	return predicate.CachedGalleryImage(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.CachedGalleryImage {
	return predicate.CachedGalleryImage(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.CachedGalleryImage {
	return predicate.CachedGalleryImage(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.CachedGalleryImage {
	return predicate.CachedGalleryImage(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.CachedGalleryImage {
	return predicate.CachedGalleryImage(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.CachedGalleryImage {
	return predicate.CachedGalleryImage(sql.FieldContainsFold(FieldID, id))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.CachedGalleryImage {
	return predicate.CachedGalleryImage(sql.FieldEQ(FieldTitle, v))
}

// URL applies equality check predicate on the "url" field. It's identical to URLEQ.
func URL(v string) predicate.CachedGalleryImage {
	return predicate.CachedGalleryImage(sql.FieldEQ(FieldURL, v))
}

// ThumbnailURL applies equality check predicate on the "thumbnail_url" field. It's identical to ThumbnailURLEQ.
func ThumbnailURL(v string) predicate.CachedGalleryImage {
	return predicate.CachedGalleryImage(sql.FieldEQ(FieldThumbnailURL, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.CachedGalleryImage {
	return predicate.CachedGalleryImage(sql.FieldEQ(FieldStatus, v))
}

// UploadedBy applies equality check predicate on the "uploaded_by" field. It's identical to UploadedByEQ.
func UploadedBy(v string) predicate.CachedGalleryImage {
	return predicate.CachedGalleryImage(sql.FieldEQ(FieldUploadedBy, v))
}

// UploadedAt applies equality check predicate on the "uploaded_at" field. It's identical to UploadedAtEQ.
func UploadedAt(v time.Time) predicate.CachedGalleryImage {
	return predicate.CachedGalleryImage(sql.FieldEQ(FieldUploadedAt, v))
}

// Position applies equality check predicate on the "position" field. It's identical to PositionEQ.
func Position(v int) predicate.CachedGalleryImage {
	return predicate.CachedGalleryImage(sql.FieldEQ(FieldPosition, v))
}

// StoredAt applies equality check predicate on the "stored_at" field. It's identical to StoredAtEQ.
func StoredAt(v time.Time) predicate.CachedGalleryImage {
	return predicate.CachedGalleryImage(sql.FieldEQ(FieldStoredAt, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.CachedGalleryImage {
	return predicate.CachedGalleryImage(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.CachedGalleryImage {
	return predicate.CachedGalleryImage(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.CachedGalleryImage {
	return predicate.CachedGalleryImage(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.CachedGalleryImage {
	return predicate.CachedGalleryImage(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.CachedGalleryImage {
	return predicate.CachedGalleryImage(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.CachedGalleryImage {
	return predicate.CachedGalleryImage(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.CachedGalleryImage {
	return predicate.CachedGalleryImage(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.CachedGalleryImage {
	return predicate.CachedGalleryImage(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.CachedGalleryImage {
	return predicate.CachedGalleryImage(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.CachedGalleryImage {
	return predicate.CachedGalleryImage(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.CachedGalleryImage {
	return predicate.CachedGalleryImage(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleIsNil applies the IsNil predicate on the "title" field.
func TitleIsNil() predicate.CachedGalleryImage {
	return predicate.CachedGalleryImage(sql.FieldIsNull(FieldTitle))
}

// TitleNotNil applies the NotNil predicate on the "title" field.
func TitleNotNil() predicate.CachedGalleryImage {
	return predicate.CachedGalleryImage(sql.FieldNotNull(FieldTitle))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.CachedGalleryImage {
	return predicate.CachedGalleryImage(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.CachedGalleryImage {
	return predicate.CachedGalleryImage(sql.FieldContainsFold(FieldTitle, v))
}

// URLEQ applies the EQ predicate on the "url" field.
func URLEQ(v string) predicate.CachedGalleryImage {
	return predicate.CachedGalleryImage(sql.FieldEQ(FieldURL, v))
}

// URLNEQ applies the NEQ predicate on the "url" field.
func URLNEQ(v string) predicate.CachedGalleryImage {
	return predicate.CachedGalleryImage(sql.FieldNEQ(FieldURL, v))
}

// URLIn applies the In predicate on the "url" field.
func URLIn(vs ...string) predicate.CachedGalleryImage {
	return predicate.CachedGalleryImage(sql.FieldIn(FieldURL, vs...))
}

// URLNotIn applies the NotIn predicate on the "url" field.
func URLNotIn(vs ...string) predicate.CachedGalleryImage {
	return predicate.CachedGalleryImage(sql.FieldNotIn(FieldURL, vs...))
}

// URLGT applies the GT predicate on the "url" field.
func URLGT(v string) predicate.CachedGalleryImage {
	return predicate.CachedGalleryImage(sql.FieldGT(FieldURL, v))
}

// URLGTE applies the GTE predicate on the "url" field.
func URLGTE(v string) predicate.CachedGalleryImage {
	return predicate.CachedGalleryImage(sql.FieldGTE(FieldURL, v))
}

// URLLT applies the LT predicate on the "url" field.
func URLLT(v string) predicate.CachedGalleryImage {
	return predicate.CachedGalleryImage(sql.FieldLT(FieldURL, v))
}

// URLLTE applies the LTE predicate on the "url" field.
func URLLTE(v string) predicate.CachedGalleryImage {
	return predicate.CachedGalleryImage(sql.FieldLTE(FieldURL, v))
}

// URLContains applies the Contains predicate on the "url" field.
func URLContains(v string) predicate.CachedGalleryImage {
	return predicate.CachedGalleryImage(sql.FieldContains(FieldURL, v))
}

// URLHasPrefix applies the HasPrefix predicate on the "url" field.
func URLHasPrefix(v string) predicate.CachedGalleryImage {
	return predicate.CachedGalleryImage(sql.FieldHasPrefix(FieldURL, v))
}

// URLHasSuffix applies the HasSuffix predicate on the "url" field.
func URLHasSuffix(v string) predicate.CachedGalleryImage {
	return predicate.CachedGalleryImage(sql.FieldHasSuffix(FieldURL, v))
}

// URLEqualFold applies the EqualFold predicate on the "url" field.
func URLEqualFold(v string) predicate.CachedGalleryImage {
	return predicate.CachedGalleryImage(sql.FieldEqualFold(FieldURL, v))
}

// URLContainsFold applies the ContainsFold predicate on the "url" field.
func URLContainsFold(v string) predicate.CachedGalleryImage {
	return predicate.CachedGalleryImage(sql.FieldContainsFold(FieldURL, v))
}

// ThumbnailURLEQ applies the EQ predicate on the "thumbnail_url" field.
func ThumbnailURLEQ(v string) predicate.CachedGalleryImage {
	return predicate.CachedGalleryImage(sql.FieldEQ(FieldThumbnailURL, v))
}

// ThumbnailURLNEQ applies the NEQ predicate on the "thumbnail_url" field.
func ThumbnailURLNEQ(v string) predicate.CachedGalleryImage {
	return predicate.CachedGalleryImage(sql.FieldNEQ(FieldThumbnailURL, v))
}

// ThumbnailURLIn applies the In predicate on the "thumbnail_url" field.
func ThumbnailURLIn(vs ...string) predicate.CachedGalleryImage {
	return predicate.CachedGalleryImage(sql.FieldIn(FieldThumbnailURL, vs...))
}

// ThumbnailURLNotIn applies the NotIn predicate on the "thumbnail_url" field.
func ThumbnailURLNotIn(vs ...string) predicate.CachedGalleryImage {
	return predicate.CachedGalleryImage(sql.FieldNotIn(FieldThumbnailURL, vs...))
}

// ThumbnailURLGT applies the GT predicate on the "thumbnail_url" field.
func ThumbnailURLGT(v string) predicate.CachedGalleryImage {
	return predicate.CachedGalleryImage(sql.FieldGT(FieldThumbnailURL, v))
}

// ThumbnailURLGTE applies the GTE predicate on the "thumbnail_url" field.
func ThumbnailURLGTE(v string) predicate.CachedGalleryImage {
	return predicate.CachedGalleryImage(sql.FieldGTE(FieldThumbnailURL, v))
}

// ThumbnailURLLT applies the LT predicate on the "thumbnail_url" field.
func ThumbnailURLLT(v string) predicate.CachedGalleryImage {
	return predicate.CachedGalleryImage(sql.FieldLT(FieldThumbnailURL, v))
}

// ThumbnailURLLTE applies the LTE predicate on the "thumbnail_url" field.
func ThumbnailURLLTE(v string) predicate.CachedGalleryImage {
	return predicate.CachedGalleryImage(sql.FieldLTE(FieldThumbnailURL, v))
}

// ThumbnailURLContains applies the Contains predicate on the "thumbnail_url" field.
func ThumbnailURLContains(v string) predicate.CachedGalleryImage {
	return predicate.CachedGalleryImage(sql.FieldContains(FieldThumbnailURL, v))
}

// ThumbnailURLHasPrefix applies the HasPrefix predicate on the "thumbnail_url" field.
func ThumbnailURLHasPrefix(v string) predicate.CachedGalleryImage {
	return predicate.CachedGalleryImage(sql.FieldHasPrefix(FieldThumbnailURL, v))
}

// ThumbnailURLHasSuffix applies the HasSuffix predicate on the "thumbnail_url" field.
func ThumbnailURLHasSuffix(v string) predicate.CachedGalleryImage {
	return predicate.CachedGalleryImage(sql.FieldHasSuffix(FieldThumbnailURL, v))
}

// ThumbnailURLIsNil applies the IsNil predicate on the "thumbnail_url" field.
func ThumbnailURLIsNil() predicate.CachedGalleryImage {
	return predicate.CachedGalleryImage(sql.FieldIsNull(FieldThumbnailURL))
}

// ThumbnailURLNotNil applies the NotNil predicate on the "thumbnail_url" field.
func ThumbnailURLNotNil() predicate.CachedGalleryImage {
	return predicate.CachedGalleryImage(sql.FieldNotNull(FieldThumbnailURL))
}

// ThumbnailURLEqualFold applies the EqualFold predicate on the "thumbnail_url" field.
func ThumbnailURLEqualFold(v string) predicate.CachedGalleryImage {
	return predicate.CachedGalleryImage(sql.FieldEqualFold(FieldThumbnailURL, v))
}

// ThumbnailURLContainsFold applies the ContainsFold predicate on the "thumbnail_url" field.
func ThumbnailURLContainsFold(v string) predicate.CachedGalleryImage {
	return predicate.CachedGalleryImage(sql.FieldContainsFold(FieldThumbnailURL, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.CachedGalleryImage {
	return predicate.CachedGalleryImage(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.CachedGalleryImage {
	return predicate.CachedGalleryImage(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.CachedGalleryImage {
	return predicate.CachedGalleryImage(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.CachedGalleryImage {
	return predicate.CachedGalleryImage(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.CachedGalleryImage {
	return predicate.CachedGalleryImage(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.CachedGalleryImage {
	return predicate.CachedGalleryImage(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.CachedGalleryImage {
	return predicate.CachedGalleryImage(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.CachedGalleryImage {
	return predicate.CachedGalleryImage(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.CachedGalleryImage {
	return predicate.CachedGalleryImage(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.CachedGalleryImage {
	return predicate.CachedGalleryImage(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.CachedGalleryImage {
	return predicate.CachedGalleryImage(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusIsNil applies the IsNil predicate on the "status" field.
func StatusIsNil() predicate.CachedGalleryImage {
	return predicate.CachedGalleryImage(sql.FieldIsNull(FieldStatus))
}

// StatusNotNil applies the NotNil predicate on the "status" field.
func StatusNotNil() predicate.CachedGalleryImage {
	return predicate.CachedGalleryImage(sql.FieldNotNull(FieldStatus))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.CachedGalleryImage {
	return predicate.CachedGalleryImage(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.CachedGalleryImage {
	return predicate.CachedGalleryImage(sql.FieldContainsFold(FieldStatus, v))
}

// UploadedByEQ applies the EQ predicate on the "uploaded_by" field.
func UploadedByEQ(v string) predicate.CachedGalleryImage {
	return predicate.CachedGalleryImage(sql.FieldEQ(FieldUploadedBy, v))
}

// UploadedByNEQ applies the NEQ predicate on the "uploaded_by" field.
func UploadedByNEQ(v string) predicate.CachedGalleryImage {
	return predicate.CachedGalleryImage(sql.FieldNEQ(FieldUploadedBy, v))
}

// UploadedByIn applies the In predicate on the "uploaded_by" field.
func UploadedByIn(vs ...string) predicate.CachedGalleryImage {
	return predicate.CachedGalleryImage(sql.FieldIn(FieldUploadedBy, vs...))
}

// UploadedByNotIn applies the NotIn predicate on the "uploaded_by" field.
func UploadedByNotIn(vs ...string) predicate.CachedGalleryImage {
	return predicate.CachedGalleryImage(sql.FieldNotIn(FieldUploadedBy, vs...))
}

// UploadedByGT applies the GT predicate on the "uploaded_by" field.
func UploadedByGT(v string) predicate.CachedGalleryImage {
	return predicate.CachedGalleryImage(sql.FieldGT(FieldUploadedBy, v))
}

// UploadedByGTE applies the GTE predicate on the "uploaded_by" field.
func UploadedByGTE(v string) predicate.CachedGalleryImage {
	return predicate.CachedGalleryImage(sql.FieldGTE(FieldUploadedBy, v))
}

// UploadedByLT applies the LT predicate on the "uploaded_by" field.
func UploadedByLT(v string) predicate.CachedGalleryImage {
	return predicate.CachedGalleryImage(sql.FieldLT(FieldUploadedBy, v))
}

// UploadedByLTE applies the LTE predicate on the "uploaded_by" field.
func UploadedByLTE(v string) predicate.CachedGalleryImage {
	return predicate.CachedGalleryImage(sql.FieldLTE(FieldUploadedBy, v))
}

// UploadedByContains applies the Contains predicate on the "uploaded_by" field.
func UploadedByContains(v string) predicate.CachedGalleryImage {
	return predicate.CachedGalleryImage(sql.FieldContains(FieldUploadedBy, v))
}

// UploadedByHasPrefix applies the HasPrefix predicate on the "uploaded_by" field.
func UploadedByHasPrefix(v string) predicate.CachedGalleryImage {
	return predicate.CachedGalleryImage(sql.FieldHasPrefix(FieldUploadedBy, v))
}

// UploadedByHasSuffix applies the HasSuffix predicate on the "uploaded_by" field.
func UploadedByHasSuffix(v string) predicate.CachedGalleryImage {
	return predicate.CachedGalleryImage(sql.FieldHasSuffix(FieldUploadedBy, v))
}

// UploadedByIsNil applies the IsNil predicate on the "uploaded_by" field.
func UploadedByIsNil() predicate.CachedGalleryImage {
	return predicate.CachedGalleryImage(sql.FieldIsNull(FieldUploadedBy))
}

// UploadedByNotNil applies the NotNil predicate on the "uploaded_by" field.
func UploadedByNotNil() predicate.CachedGalleryImage {
	return predicate.CachedGalleryImage(sql.FieldNotNull(FieldUploadedBy))
}

// UploadedByEqualFold applies the EqualFold predicate on the "uploaded_by" field.
func UploadedByEqualFold(v string) predicate.CachedGalleryImage {
	return predicate.CachedGalleryImage(sql.FieldEqualFold(FieldUploadedBy, v))
}

// UploadedByContainsFold applies the ContainsFold predicate on the "uploaded_by" field.
func UploadedByContainsFold(v string) predicate.CachedGalleryImage {
	return predicate.CachedGalleryImage(sql.FieldContainsFold(FieldUploadedBy, v))
}

// UploadedAtEQ applies the EQ predicate on the "uploaded_at" field.
func UploadedAtEQ(v time.Time) predicate.CachedGalleryImage {
	return predicate.CachedGalleryImage(sql.FieldEQ(FieldUploadedAt, v))
}

// UploadedAtNEQ applies the NEQ predicate on the "uploaded_at" field.
func UploadedAtNEQ(v time.Time) predicate.CachedGalleryImage {
	return predicate.CachedGalleryImage(sql.FieldNEQ(FieldUploadedAt, v))
}

// UploadedAtIn applies the In predicate on the "uploaded_at" field.
func UploadedAtIn(vs ...time.Time) predicate.CachedGalleryImage {
	return predicate.CachedGalleryImage(sql.FieldIn(FieldUploadedAt, vs...))
}

// UploadedAtNotIn applies the NotIn predicate on the "uploaded_at" field.
func UploadedAtNotIn(vs ...time.Time) predicate.CachedGalleryImage {
	return predicate.CachedGalleryImage(sql.FieldNotIn(FieldUploadedAt, vs...))
}

// UploadedAtGT applies the GT predicate on the "uploaded_at" field.
func UploadedAtGT(v time.Time) predicate.CachedGalleryImage {
	return predicate.CachedGalleryImage(sql.FieldGT(FieldUploadedAt, v))
}

// UploadedAtGTE applies the GTE predicate on the "uploaded_at" field.
func UploadedAtGTE(v time.Time) predicate.CachedGalleryImage {
	return predicate.CachedGalleryImage(sql.FieldGTE(FieldUploadedAt, v))
}

// UploadedAtLT applies the LT predicate on the "uploaded_at" field.
func UploadedAtLT(v time.Time) predicate.CachedGalleryImage {
	return predicate.CachedGalleryImage(sql.FieldLT(FieldUploadedAt, v))
}

// UploadedAtLTE applies the LTE predicate on the "uploaded_at" field.
func UploadedAtLTE(v time.Time) predicate.CachedGalleryImage {
	return predicate.CachedGalleryImage(sql.FieldLTE(FieldUploadedAt, v))
}

// PositionEQ applies the EQ predicate on the "position" field.
func PositionEQ(v int) predicate.CachedGalleryImage {
	return predicate.CachedGalleryImage(sql.FieldEQ(FieldPosition, v))
}

// PositionNEQ applies the NEQ predicate on the "position" field.
func PositionNEQ(v int) predicate.CachedGalleryImage {
	return predicate.CachedGalleryImage(sql.FieldNEQ(FieldPosition, v))
}

// PositionIn applies the In predicate on the "position" field.
func PositionIn(vs ...int) predicate.CachedGalleryImage {
	return predicate.CachedGalleryImage(sql.FieldIn(FieldPosition, vs...))
}

// PositionNotIn applies the NotIn predicate on the "position" field.
func PositionNotIn(vs ...int) predicate.CachedGalleryImage {
	return predicate.CachedGalleryImage(sql.FieldNotIn(FieldPosition, vs...))
}

// PositionGT applies the GT predicate on the "position" field.
func PositionGT(v int) predicate.CachedGalleryImage {
	return predicate.CachedGalleryImage(sql.FieldGT(FieldPosition, v))
}

// PositionGTE applies the GTE predicate on the "position" field.
func PositionGTE(v int) predicate.CachedGalleryImage {
	return predicate.CachedGalleryImage(sql.FieldGTE(FieldPosition, v))
}

// PositionLT applies the LT predicate on the "position" field.
func PositionLT(v int) predicate.CachedGalleryImage {
	return predicate.CachedGalleryImage(sql.FieldLT(FieldPosition, v))
}

// PositionLTE applies the LTE predicate on the "position" field.
func PositionLTE(v int) predicate.CachedGalleryImage {
	return predicate.CachedGalleryImage(sql.FieldLTE(FieldPosition, v))
}

// StoredAtEQ applies the EQ predicate on the "stored_at" field.
func StoredAtEQ(v time.Time) predicate.CachedGalleryImage {
	return predicate.CachedGalleryImage(sql.FieldEQ(FieldStoredAt, v))
}

// StoredAtNEQ applies the NEQ predicate on the "stored_at" field.
func StoredAtNEQ(v time.Time) predicate.CachedGalleryImage {
	return predicate.CachedGalleryImage(sql.FieldNEQ(FieldStoredAt, v))
}

// StoredAtIn applies the In predicate on the "stored_at" field.
func StoredAtIn(vs ...time.Time) predicate.CachedGalleryImage {
	return predicate.CachedGalleryImage(sql.FieldIn(FieldStoredAt, vs...))
}

// StoredAtNotIn applies the NotIn predicate on the "stored_at" field.
func StoredAtNotIn(vs ...time.Time) predicate.CachedGalleryImage {
	return predicate.CachedGalleryImage(sql.FieldNotIn(FieldStoredAt, vs...))
}

// StoredAtGT applies the GT predicate on the "stored_at" field.
func StoredAtGT(v time.Time) predicate.CachedGalleryImage {
	return predicate.CachedGalleryImage(sql.FieldGT(FieldStoredAt, v))
}

// StoredAtGTE applies the GTE predicate on the "stored_at" field.
func StoredAtGTE(v time.Time) predicate.CachedGalleryImage {
	return predicate.CachedGalleryImage(sql.FieldGTE(FieldStoredAt, v))
}

// StoredAtLT applies the LT predicate on the "stored_at" field.
func StoredAtLT(v time.Time) predicate.CachedGalleryImage {
	return predicate.CachedGalleryImage(sql.FieldLT(FieldStoredAt, v))
}

// StoredAtLTE applies the LTE predicate on the "stored_at" field.
func StoredAtLTE(v time.Time) predicate.CachedGalleryImage {
	return predicate.CachedGalleryImage(sql.FieldLTE(FieldStoredAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CachedGalleryImage) predicate.CachedGalleryImage {
	return predicate.CachedGalleryImage(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CachedGalleryImage) predicate.CachedGalleryImage {
	return predicate.CachedGalleryImage(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CachedGalleryImage) predicate.CachedGalleryImage {
	return predicate.CachedGalleryImage(sql.NotPredicates(p))
}
