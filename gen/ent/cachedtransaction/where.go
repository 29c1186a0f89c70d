// Code generated by ent, DO NOT EDIT.

package cachedtransaction

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/communityhub/mobilecore/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.CachedTransaction {
	return predicate.CachedTransaction(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.CachedTransaction {
	return predicate.CachedTransaction(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.CachedTransaction {
	return predicate.CachedTransaction(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.CachedTransaction {
	return predicate.CachedTransaction(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.CachedTransaction {
	return predicate.CachedTransaction(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.CachedTransaction {
	return predicate.CachedTransaction(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.CachedTransaction {
	return predicate.CachedTransaction(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.CachedTransaction {
	return predicate.CachedTransaction(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.CachedTransaction {
	return predicate.CachedTransaction(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.CachedTransaction {
	return predicate.CachedTransaction(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.CachedTransaction {
	return predicate.CachedTransaction(sql.FieldContainsFold(FieldID, id))
}

// Kind applies equality check predicate on the "kind" field. It's identical to KindEQ.
func Kind(v string) predicate.CachedTransaction {
	return predicate.CachedTransaction(sql.FieldEQ(FieldKind, v))
}

// SubcategoryID applies equality check predicate on the "subcategory_id" field. It's identical to SubcategoryIDEQ.
func SubcategoryID(v string) predicate.CachedTransaction {
	return predicate.CachedTransaction(sql.FieldEQ(FieldSubcategoryID, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.CachedTransaction {
	return predicate.CachedTransaction(sql.FieldEQ(FieldTitle, v))
}

// Amount applies equality check predicate on the "amount" field. It's identical to AmountEQ.
func Amount(v float64) predicate.CachedTransaction {
	return predicate.CachedTransaction(sql.FieldEQ(FieldAmount, v))
}

// CurrencyCode applies equality check predicate on the "currency_code" field. It's identical to CurrencyCodeEQ.
func CurrencyCode(v string) predicate.CachedTransaction {
	return predicate.CachedTransaction(sql.FieldEQ(FieldCurrencyCode, v))
}

// TxDate applies equality check predicate on the "tx_date" field. It's identical to TxDateEQ.
func TxDate(v time.Time) predicate.CachedTransaction {
	return predicate.CachedTransaction(sql.FieldEQ(FieldTxDate, v))
}

// RecordedBy applies equality check predicate on the "recorded_by" field. It's identical to RecordedByEQ.
func RecordedBy(v string) predicate.CachedTransaction {
	return predicate.CachedTransaction(sql.FieldEQ(FieldRecordedBy, v))
}

// Note applies equality check predicate on the "note" field. It's identical to NoteEQ.
func Note(v string) predicate.CachedTransaction {
	return predicate.CachedTransaction(sql.FieldEQ(FieldNote, v))
}

// Position applies equality check predicate on the "position" field. It's identical to PositionEQ.
func Position(v int) predicate.CachedTransaction {
	return predicate.CachedTransaction(sql.FieldEQ(FieldPosition, v))
}

// StoredAt applies equality check predicate on the "stored_at" field. It's identical to StoredAtEQ.
func StoredAt(v time.Time) predicate.CachedTransaction {
	return predicate.CachedTransaction(sql.FieldEQ(FieldStoredAt, v))
}

// KindEQ applies the EQ predicate on the "kind" field.
func KindEQ(v string) predicate.CachedTransaction {
	return predicate.CachedTransaction(sql.FieldEQ(FieldKind, v))
}

// KindNEQ applies the NEQ predicate on the "kind" field.
func KindNEQ(v string) predicate.CachedTransaction {
	return predicate.CachedTransaction(sql.FieldNEQ(FieldKind, v))
}

// KindIn applies the In predicate on the "kind" field.
func KindIn(vs ...string) predicate.CachedTransaction {
	return predicate.CachedTransaction(sql.FieldIn(FieldKind, vs...))
}

// KindNotIn applies the NotIn predicate on the "kind" field.
func KindNotIn(vs ...string) predicate.CachedTransaction {
	return predicate.CachedTransaction(sql.FieldNotIn(FieldKind, vs...))
}

// KindGT applies the GT predicate on the "kind" field.
func KindGT(v string) predicate.CachedTransaction {
	return predicate.CachedTransaction(sql.FieldGT(FieldKind, v))
}

// KindGTE applies the GTE predicate on the "kind" field.
func KindGTE(v string) predicate.CachedTransaction {
	return predicate.CachedTransaction(sql.FieldGTE(FieldKind, v))
}

// KindLT applies the LT predicate on the "kind" field.
func KindLT(v string) predicate.CachedTransaction {
	return predicate.CachedTransaction(sql.FieldLT(FieldKind, v))
}

// KindLTE applies the LTE predicate on the "kind" field.
func KindLTE(v string) predicate.CachedTransaction {
	return predicate.CachedTransaction(sql.FieldLTE(FieldKind, v))
}

// KindContains applies the Contains predicate on the "kind" field.
func KindContains(v string) predicate.CachedTransaction {
	return predicate.CachedTransaction(sql.FieldContains(FieldKind, v))
}

// KindHasPrefix applies the HasPrefix predicate on the "kind" field.
func KindHasPrefix(v string) predicate.CachedTransaction {
	return predicate.CachedTransaction(sql.FieldHasPrefix(FieldKind, v))
}

// KindHasSuffix applies the HasSuffix predicate on the "kind" field.
func KindHasSuffix(v string) predicate.CachedTransaction {
	return predicate.CachedTransaction(sql.FieldHasSuffix(FieldKind, v))
}

// KindEqualFold applies the EqualFold predicate on the "kind" field.
func KindEqualFold(v string) predicate.CachedTransaction {
	return predicate.CachedTransaction(sql.FieldEqualFold(FieldKind, v))
}

// KindContainsFold applies the ContainsFold predicate on the "kind" field.
func KindContainsFold(v string) predicate.CachedTransaction {
	return predicate.CachedTransaction(sql.FieldContainsFold(FieldKind, v))
}

// SubcategoryIDEQ applies the EQ predicate on the "subcategory_id" field.
func SubcategoryIDEQ(v string) predicate.CachedTransaction {
	return predicate.CachedTransaction(sql.FieldEQ(FieldSubcategoryID, v))
}

// SubcategoryIDNEQ applies the NEQ predicate on the "subcategory_id" field.
func SubcategoryIDNEQ(v string) predicate.CachedTransaction {
	return predicate.CachedTransaction(sql.FieldNEQ(FieldSubcategoryID, v))
}

// SubcategoryIDIn applies the In predicate on the "subcategory_id" field.
func SubcategoryIDIn(vs ...string) predicate.CachedTransaction {
	return predicate.CachedTransaction(sql.FieldIn(FieldSubcategoryID, vs...))
}

// SubcategoryIDNotIn applies the NotIn predicate on the "subcategory_id" field.
func SubcategoryIDNotIn(vs ...string) predicate.CachedTransaction {
	return predicate.CachedTransaction(sql.FieldNotIn(FieldSubcategoryID, vs...))
}

// SubcategoryIDGT applies the GT predicate on the "subcategory_id" field.
func SubcategoryIDGT(v string) predicate.CachedTransaction {
	return predicate.CachedTransaction(sql.FieldGT(FieldSubcategoryID, v))
}

// SubcategoryIDGTE applies the GTE predicate on the "subcategory_id" field.
func SubcategoryIDGTE(v string) predicate.CachedTransaction {
	return predicate.CachedTransaction(sql.FieldGTE(FieldSubcategoryID, v))
}

// SubcategoryIDLT applies the LT predicate on the "subcategory_id" field.
func SubcategoryIDLT(v string) predicate.CachedTransaction {
	return predicate.CachedTransaction(sql.FieldLT(FieldSubcategoryID, v))
}

// SubcategoryIDLTE applies the LTE predicate on the "subcategory_id" field.
func SubcategoryIDLTE(v string) predicate.CachedTransaction {
	return predicate.CachedTransaction(sql.FieldLTE(FieldSubcategoryID, v))
}

// SubcategoryIDContains applies the Contains predicate on the "subcategory_id" field.
func SubcategoryIDContains(v string) predicate.CachedTransaction {
	return predicate.CachedTransaction(sql.FieldContains(FieldSubcategoryID, v))
}

// SubcategoryIDHasPrefix applies the HasPrefix predicate on the "subcategory_id" field.
func SubcategoryIDHasPrefix(v string) predicate.CachedTransaction {
	return predicate.CachedTransaction(sql.FieldHasPrefix(FieldSubcategoryID, v))
}

// SubcategoryIDHasSuffix applies the HasSuffix predicate on the "subcategory_id" field.
func SubcategoryIDHasSuffix(v string) predicate.CachedTransaction {
	return predicate.CachedTransaction(sql.FieldHasSuffix(FieldSubcategoryID, v))
}

// SubcategoryIDIsNil applies the IsNil predicate on the "subcategory_id" field.
func SubcategoryIDIsNil() predicate.CachedTransaction {
	return predicate.CachedTransaction(sql.FieldIsNull(FieldSubcategoryID))
}

// SubcategoryIDNotNil applies the NotNil predicate on the "subcategory_id" field.
func SubcategoryIDNotNil() predicate.CachedTransaction {
	return predicate.CachedTransaction(sql.FieldNotNull(FieldSubcategoryID))
}

// SubcategoryIDEqualFold applies the EqualFold predicate on the "subcategory_id" field.
func SubcategoryIDEqualFold(v string) predicate.CachedTransaction {
	return predicate.CachedTransaction(sql.FieldEqualFold(FieldSubcategoryID, v))
}

// SubcategoryIDContainsFold applies the ContainsFold predicate on the "subcategory_id" field.
func SubcategoryIDContainsFold(v string) predicate.CachedTransaction {
	return predicate.CachedTransaction(sql.FieldContainsFold(FieldSubcategoryID, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.CachedTransaction {
	return predicate.CachedTransaction(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.CachedTransaction {
	return predicate.CachedTransaction(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.CachedTransaction {
	return predicate.CachedTransaction(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.CachedTransaction {
	return predicate.CachedTransaction(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.CachedTransaction {
	return predicate.CachedTransaction(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.CachedTransaction {
	return predicate.CachedTransaction(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.CachedTransaction {
	return predicate.CachedTransaction(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.CachedTransaction {
	return predicate.CachedTransaction(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.CachedTransaction {
	return predicate.CachedTransaction(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.CachedTransaction {
	return predicate.CachedTransaction(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.CachedTransaction {
	return predicate.CachedTransaction(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleIsNil applies the IsNil predicate on the "title" field.
func TitleIsNil() predicate.CachedTransaction {
	return predicate.CachedTransaction(sql.FieldIsNull(FieldTitle))
}

// TitleNotNil applies the NotNil predicate on the "title" field.
func TitleNotNil() predicate.CachedTransaction {
	return predicate.CachedTransaction(sql.FieldNotNull(FieldTitle))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.CachedTransaction {
	return predicate.CachedTransaction(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.CachedTransaction {
	return predicate.CachedTransaction(sql.FieldContainsFold(FieldTitle, v))
}

// AmountEQ applies the EQ predicate on the "amount" field.
func AmountEQ(v float64) predicate.CachedTransaction {
	return predicate.CachedTransaction(sql.FieldEQ(FieldAmount, v))
}

// AmountNEQ applies the NEQ predicate on the "amount" field.
func AmountNEQ(v float64) predicate.CachedTransaction {
	return predicate.CachedTransaction(sql.FieldNEQ(FieldAmount, v))
}

// AmountIn applies the In predicate on the "amount" field.
func AmountIn(vs ...float64) predicate.CachedTransaction {
	return predicate.CachedTransaction(sql.FieldIn(FieldAmount, vs...))
}

// AmountNotIn applies the NotIn predicate on the "amount" field.
func AmountNotIn(vs ...float64) predicate.CachedTransaction {
	return predicate.CachedTransaction(sql.FieldNotIn(FieldAmount, vs...))
}

// AmountGT applies the GT predicate on the "amount" field.
func AmountGT(v float64) predicate.CachedTransaction {
	return predicate.CachedTransaction(sql.FieldGT(FieldAmount, v))
}

// AmountGTE applies the GTE predicate on the "amount" field.
func AmountGTE(v float64) predicate.CachedTransaction {
	return predicate.CachedTransaction(sql.FieldGTE(FieldAmount, v))
}

// AmountLT applies the LT predicate on the "amount" field.
func AmountLT(v float64) predicate.CachedTransaction {
	return predicate.CachedTransaction(sql.FieldLT(FieldAmount, v))
}

// AmountLTE applies the LTE predicate on the "amount" field.
func AmountLTE(v float64) predicate.CachedTransaction {
	return predicate.CachedTransaction(sql.FieldLTE(FieldAmount, v))
}

// CurrencyCodeEQ applies the EQ predicate on the "currency_code" field.
func CurrencyCodeEQ(v string) predicate.CachedTransaction {
	return predicate.CachedTransaction(sql.FieldEQ(FieldCurrencyCode, v))
}

// CurrencyCodeNEQ applies the NEQ predicate on the "currency_code" field.
func CurrencyCodeNEQ(v string) predicate.CachedTransaction {
	return predicate.CachedTransaction(sql.FieldNEQ(FieldCurrencyCode, v))
}

// CurrencyCodeIn applies the In predicate on the "currency_code" field.
func CurrencyCodeIn(vs ...string) predicate.CachedTransaction {
	return predicate.CachedTransaction(sql.FieldIn(FieldCurrencyCode, vs...))
}

// CurrencyCodeNotIn applies the NotIn predicate on the "currency_code" field.
func CurrencyCodeNotIn(vs ...string) predicate.CachedTransaction {
	return predicate.CachedTransaction(sql.FieldNotIn(FieldCurrencyCode, vs...))
}

// CurrencyCodeGT applies the GT predicate on the "currency_code" field.
func CurrencyCodeGT(v string) predicate.CachedTransaction {
	return predicate.CachedTransaction(sql.FieldGT(FieldCurrencyCode, v))
}

// CurrencyCodeGTE applies the GTE predicate on the "currency_code" field.
func CurrencyCodeGTE(v string) predicate.CachedTransaction {
	return predicate.CachedTransaction(sql.FieldGTE(FieldCurrencyCode, v))
}

// CurrencyCodeLT applies the LT predicate on the "currency_code" field.
func CurrencyCodeLT(v string) predicate.CachedTransaction {
	return predicate.CachedTransaction(sql.FieldLT(FieldCurrencyCode, v))
}

// CurrencyCodeLTE applies the LTE predicate on the "currency_code" field.
func CurrencyCodeLTE(v string) predicate.CachedTransaction {
	return predicate.CachedTransaction(sql.FieldLTE(FieldCurrencyCode, v))
}

// CurrencyCodeContains applies the Contains predicate on the "currency_code" field.
func CurrencyCodeContains(v string) predicate.CachedTransaction {
	return predicate.CachedTransaction(sql.FieldContains(FieldCurrencyCode, v))
}

// CurrencyCodeHasPrefix applies the HasPrefix predicate on the "currency_code" field.
func CurrencyCodeHasPrefix(v string) predicate.CachedTransaction {
	return predicate.CachedTransaction(sql.FieldHasPrefix(FieldCurrencyCode, v))
}

// CurrencyCodeHasSuffix applies the HasSuffix predicate on the "currency_code" field.
func CurrencyCodeHasSuffix(v string) predicate.CachedTransaction {
	return predicate.CachedTransaction(sql.FieldHasSuffix(FieldCurrencyCode, v))
}

// CurrencyCodeIsNil applies the IsNil predicate on the "currency_code" field.
func CurrencyCodeIsNil() predicate.CachedTransaction {
	return predicate.CachedTransaction(sql.FieldIsNull(FieldCurrencyCode))
}

// CurrencyCodeNotNil applies the NotNil predicate on the "currency_code" field.
func CurrencyCodeNotNil() predicate.CachedTransaction {
	return predicate.CachedTransaction(sql.FieldNotNull(FieldCurrencyCode))
}

// CurrencyCodeEqualFold applies the EqualFold predicate on the "currency_code" field.
func CurrencyCodeEqualFold(v string) predicate.CachedTransaction {
	return predicate.CachedTransaction(sql.FieldEqualFold(FieldCurrencyCode, v))
}

// CurrencyCodeContainsFold applies the ContainsFold predicate on the "currency_code" field.
func CurrencyCodeContainsFold(v string) predicate.CachedTransaction {
	return predicate.CachedTransaction(sql.FieldContainsFold(FieldCurrencyCode, v))
}

// TxDateEQ applies the EQ predicate on the "tx_date" field.
func TxDateEQ(v time.Time) predicate.CachedTransaction {
	return predicate.CachedTransaction(sql.FieldEQ(FieldTxDate, v))
}

// TxDateNEQ applies the NEQ predicate on the "tx_date" field.
func TxDateNEQ(v time.Time) predicate.CachedTransaction {
	return predicate.CachedTransaction(sql.FieldNEQ(FieldTxDate, v))
}

// TxDateIn applies the In predicate on the "tx_date" field.
func TxDateIn(vs ...time.Time) predicate.CachedTransaction {
	return predicate.CachedTransaction(sql.FieldIn(FieldTxDate, vs...))
}

// TxDateNotIn applies the NotIn predicate on the "tx_date" field.
func TxDateNotIn(vs ...time.Time) predicate.CachedTransaction {
	return predicate.CachedTransaction(sql.FieldNotIn(FieldTxDate, vs...))
}

// TxDateGT applies the GT predicate on the "tx_date" field.
func TxDateGT(v time.Time) predicate.CachedTransaction {
	return predicate.CachedTransaction(sql.FieldGT(FieldTxDate, v))
}

// TxDateGTE applies the GTE predicate on the "tx_date" field.
func TxDateGTE(v time.Time) predicate.CachedTransaction {
	return predicate.CachedTransaction(sql.FieldGTE(FieldTxDate, v))
}

// TxDateLT applies the LT predicate on the "tx_date" field.
func TxDateLT(v time.Time) predicate.CachedTransaction {
	return predicate.CachedTransaction(sql.FieldLT(FieldTxDate, v))
}

// TxDateLTE applies the LTE predicate on the "tx_date" field.
func TxDateLTE(v time.Time) predicate.CachedTransaction {
	return predicate.CachedTransaction(sql.FieldLTE(FieldTxDate, v))
}

// RecordedByEQ applies the EQ predicate on the "recorded_by" field.
func RecordedByEQ(v string) predicate.CachedTransaction {
	return predicate.CachedTransaction(sql.FieldEQ(FieldRecordedBy, v))
}

// RecordedByNEQ applies the NEQ predicate on the "recorded_by" field.
func RecordedByNEQ(v string) predicate.CachedTransaction {
	return predicate.CachedTransaction(sql.FieldNEQ(FieldRecordedBy, v))
}

// RecordedByIn applies the In predicate on the "recorded_by" field.
func RecordedByIn(vs ...string) predicate.CachedTransaction {
	return predicate.CachedTransaction(sql.FieldIn(FieldRecordedBy, vs...))
}

// RecordedByNotIn applies the NotIn predicate on the "recorded_by" field.
func RecordedByNotIn(vs ...string) predicate.CachedTransaction {
	return predicate.CachedTransaction(sql.FieldNotIn(FieldRecordedBy, vs...))
}

// RecordedByGT applies the GT predicate on the "recorded_by" field.
func RecordedByGT(v string) predicate.CachedTransaction {
	return predicate.CachedTransaction(sql.FieldGT(FieldRecordedBy, v))
}

// RecordedByGTE applies the GTE predicate on the "recorded_by" field.
func RecordedByGTE(v string) predicate.CachedTransaction {
	return predicate.CachedTransaction(sql.FieldGTE(FieldRecordedBy, v))
}

// RecordedByLT applies the LT predicate on the "recorded_by" field.
func RecordedByLT(v string) predicate.CachedTransaction {
	return predicate.CachedTransaction(sql.FieldLT(FieldRecordedBy, v))
}

// RecordedByLTE applies the LTE predicate on the "recorded_by" field.
func RecordedByLTE(v string) predicate.CachedTransaction {
	return predicate.CachedTransaction(sql.FieldLTE(FieldRecordedBy, v))
}

// RecordedByContains applies the Contains predicate on the "recorded_by" field.
func RecordedByContains(v string) predicate.CachedTransaction {
	return predicate.CachedTransaction(sql.FieldContains(FieldRecordedBy, v))
}

// RecordedByHasPrefix applies the HasPrefix predicate on the "recorded_by" field.
func RecordedByHasPrefix(v string) predicate.CachedTransaction {
	return predicate.CachedTransaction(sql.FieldHasPrefix(FieldRecordedBy, v))
}

// RecordedByHasSuffix applies the HasSuffix predicate on the "recorded_by" field.
func RecordedByHasSuffix(v string) predicate.CachedTransaction {
	return predicate.CachedTransaction(sql.FieldHasSuffix(FieldRecordedBy, v))
}

// RecordedByIsNil applies the IsNil predicate on the "recorded_by" field.
func RecordedByIsNil() predicate.CachedTransaction {
	return predicate.CachedTransaction(sql.FieldIsNull(FieldRecordedBy))
}

// RecordedByNotNil applies the NotNil predicate on the "recorded_by" field.
func RecordedByNotNil() predicate.CachedTransaction {
	return predicate.CachedTransaction(sql.FieldNotNull(FieldRecordedBy))
}

// RecordedByEqualFold applies the EqualFold predicate on the "recorded_by" field.
func RecordedByEqualFold(v string) predicate.CachedTransaction {
	return predicate.CachedTransaction(sql.FieldEqualFold(FieldRecordedBy, v))
}

// RecordedByContainsFold applies the ContainsFold predicate on the "recorded_by" field.
func RecordedByContainsFold(v string) predicate.CachedTransaction {
	return predicate.CachedTransaction(sql.FieldContainsFold(FieldRecordedBy, v))
}

// NoteEQ applies the EQ predicate on the "note" field.
func NoteEQ(v string) predicate.CachedTransaction {
	return predicate.CachedTransaction(sql.FieldEQ(FieldNote, v))
}

// NoteNEQ applies the NEQ predicate on the "note" field.
func NoteNEQ(v string) predicate.CachedTransaction {
	return predicate.CachedTransaction(sql.FieldNEQ(FieldNote, v))
}

// NoteIn applies the In predicate on the "note" field.
func NoteIn(vs ...string) predicate.CachedTransaction {
	return predicate.CachedTransaction(sql.FieldIn(FieldNote, vs...))
}

// NoteNotIn applies the NotIn predicate on the "note" field.
func NoteNotIn(vs ...string) predicate.CachedTransaction {
	return predicate.CachedTransaction(sql.FieldNotIn(FieldNote, vs...))
}

// NoteGT applies the GT predicate on the "note" field.
func NoteGT(v string) predicate.CachedTransaction {
	return predicate.CachedTransaction(sql.FieldGT(FieldNote, v))
}

// NoteGTE applies the GTE predicate on the "note" field.
func NoteGTE(v string) predicate.CachedTransaction {
	return predicate.CachedTransaction(sql.FieldGTE(FieldNote, v))
}

// NoteLT applies the LT predicate on the "note" field.
func NoteLT(v string) predicate.CachedTransaction {
	return predicate.CachedTransaction(sql.FieldLT(FieldNote, v))
}

// NoteLTE applies the LTE predicate on the "note" field.
func NoteLTE(v string) predicate.CachedTransaction {
	return predicate.CachedTransaction(sql.FieldLTE(FieldNote, v))
}

// NoteContains applies the Contains predicate on the "note" field.
func NoteContains(v string) predicate.CachedTransaction {
	return predicate.CachedTransaction(sql.FieldContains(FieldNote, v))
}

// NoteHasPrefix applies the HasPrefix predicate on the "note" field.
func NoteHasPrefix(v string) predicate.CachedTransaction {
	return predicate.CachedTransaction(sql.FieldHasPrefix(FieldNote, v))
}

// NoteHasSuffix applies the HasSuffix predicate on the "note" field.
func NoteHasSuffix(v string) predicate.CachedTransaction {
	return predicate.CachedTransaction(sql.FieldHasSuffix(FieldNote, v))
}

// NoteIsNil applies the IsNil predicate on the "note" field.
func NoteIsNil() predicate.CachedTransaction {
	return predicate.CachedTransaction(sql.FieldIsNull(FieldNote))
}

// NoteNotNil applies the NotNil predicate on the "note" field.
func NoteNotNil() predicate.CachedTransaction {
	return predicate.CachedTransaction(sql.FieldNotNull(FieldNote))
}

// NoteEqualFold applies the EqualFold predicate on the "note" field.
func NoteEqualFold(v string) predicate.CachedTransaction {
	return predicate.CachedTransaction(sql.FieldEqualFold(FieldNote, v))
}

// NoteContainsFold applies the ContainsFold predicate on the "note" field.
func NoteContainsFold(v string) predicate.CachedTransaction {
	return predicate.CachedTransaction(sql.FieldContainsFold(FieldNote, v))
}

// PositionEQ applies the EQ predicate on the "position" field.
func PositionEQ(v int) predicate.CachedTransaction {
	return predicate.CachedTransaction(sql.FieldEQ(FieldPosition, v))
}

// PositionNEQ applies the NEQ predicate on the "position" field.
func PositionNEQ(v int) predicate.CachedTransaction {
	return predicate.CachedTransaction(sql.FieldNEQ(FieldPosition, v))
}

// PositionIn applies the In predicate on the "position" field.
func PositionIn(vs ...int) predicate.CachedTransaction {
	return predicate.CachedTransaction(sql.FieldIn(FieldPosition, vs...))
}

// PositionNotIn applies the NotIn predicate on the "position" field.
func PositionNotIn(vs ...int) predicate.CachedTransaction {
	return predicate.CachedTransaction(sql.FieldNotIn(FieldPosition, vs...))
}

// PositionGT applies the GT predicate on the "position" field.
func PositionGT(v int) predicate.CachedTransaction {
	return predicate.CachedTransaction(sql.FieldGT(FieldPosition, v))
}

// PositionGTE applies the GTE predicate on the "position" field.
func PositionGTE(v int) predicate.CachedTransaction {
	return predicate.CachedTransaction(sql.FieldGTE(FieldPosition, v))
}

// PositionLT applies the LT predicate on the "position" field.
func PositionLT(v int) predicate.CachedTransaction {
	return predicate.CachedTransaction(sql.FieldLT(FieldPosition, v))
}

// PositionLTE applies the LTE predicate on the "position" field.
func PositionLTE(v int) predicate.CachedTransaction {
	return predicate.CachedTransaction(sql.FieldLTE(FieldPosition, v))
}

// StoredAtEQ applies the EQ predicate on the "stored_at" field.
func StoredAtEQ(v time.Time) predicate.CachedTransaction {
	return predicate.CachedTransaction(sql.FieldEQ(FieldStoredAt, v))
}

// StoredAtNEQ applies the NEQ predicate on the "stored_at" field.
func StoredAtNEQ(v time.Time) predicate.CachedTransaction {
	return predicate.CachedTransaction(sql.FieldNEQ(FieldStoredAt, v))
}

// StoredAtIn applies the In predicate on the "stored_at" field.
func StoredAtIn(vs ...time.Time) predicate.CachedTransaction {
	return predicate.CachedTransaction(sql.FieldIn(FieldStoredAt, vs...))
}

// StoredAtNotIn applies the NotIn predicate on the "stored_at" field.
func StoredAtNotIn(vs ...time.Time) predicate.CachedTransaction {
	return predicate.CachedTransaction(sql.FieldNotIn(FieldStoredAt, vs...))
}

// StoredAtGT applies the GT predicate on the "stored_at" field.
func StoredAtGT(v time.Time) predicate.CachedTransaction {
	return predicate.CachedTransaction(sql.FieldGT(FieldStoredAt, v))
}

// StoredAtGTE applies the GTE predicate on the "stored_at" field.
func StoredAtGTE(v time.Time) predicate.CachedTransaction {
	return predicate.CachedTransaction(sql.FieldGTE(FieldStoredAt, v))
}

// StoredAtLT applies the LT predicate on the "stored_at" field.
func StoredAtLT(v time.Time) predicate.CachedTransaction {
	return predicate.CachedTransaction(sql.FieldLT(FieldStoredAt, v))
}

// StoredAtLTE applies the LTE predicate on the "stored_at" field.
func StoredAtLTE(v time.Time) predicate.CachedTransaction {
	return predicate.CachedTransaction(sql.FieldLTE(FieldStoredAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CachedTransaction) predicate.CachedTransaction {
	return predicate.CachedTransaction(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CachedTransaction) predicate.CachedTransaction {
	return predicate.CachedTransaction(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CachedTransaction) predicate.CachedTransaction {
	return predicate.CachedTransaction(sql.NotPredicates(p))
}
