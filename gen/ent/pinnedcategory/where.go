// Code generated by ent, DO NOT EDIT.

package pinnedcategory

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/communityhub/mobilecore/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.PinnedCategory {
	return predicate.PinnedCategory(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.PinnedCategory {
	return predicate.PinnedCategory(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.PinnedCategory {
	return predicate.PinnedCategory(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.PinnedCategory {
	return predicate.PinnedCategory(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.PinnedCategory {
	return predicate.PinnedCategory(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.PinnedCategory {
	return predicate.PinnedCategory(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.PinnedCategory {
	return predicate.PinnedCategory(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.PinnedCategory {
	return predicate.PinnedCategory(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.PinnedCategory {
	return predicate.PinnedCategory(sql.FieldLTE(FieldID, id))
}

// CategoryID applies equality check predicate on the "category_id" field. It's identical to CategoryIDEQ.
func CategoryID(v string) predicate.PinnedCategory {
	return predicate.PinnedCategory(sql.FieldEQ(FieldCategoryID, v))
}

// PinnedAt applies equality check predicate on the "pinned_at" field. It's identical to PinnedAtEQ.
func PinnedAt(v time.Time) predicate.PinnedCategory {
	return predicate.PinnedCategory(sql.FieldEQ(FieldPinnedAt, v))
}

// CategoryIDEQ applies the EQ predicate on the "category_id" field.
func CategoryIDEQ(v string) predicate.PinnedCategory {
	return predicate.PinnedCategory(sql.FieldEQ(FieldCategoryID, v))
}

// CategoryIDNEQ applies the NEQ predicate on the "category_id" field.
func CategoryIDNEQ(v string) predicate.PinnedCategory {
	return predicate.PinnedCategory(sql.FieldNEQ(FieldCategoryID, v))
}

// CategoryIDIn applies the In predicate on the "category_id" field.
func CategoryIDIn(vs ...string) predicate.PinnedCategory {
	return predicate.PinnedCategory(sql.FieldIn(FieldCategoryID, vs...))
}

// CategoryIDNotIn applies the NotIn predicate on the "category_id" field.
func CategoryIDNotIn(vs ...string) predicate.PinnedCategory {
	return predicate.PinnedCategory(sql.FieldNotIn(FieldCategoryID, vs...))
}

// CategoryIDGT applies the GT predicate on the "category_id" field.
func CategoryIDGT(v string) predicate.PinnedCategory {
	return predicate.PinnedCategory(sql.FieldGT(FieldCategoryID, v))
}

// CategoryIDGTE applies the GTE predicate on the "category_id" field.
func CategoryIDGTE(v string) predicate.PinnedCategory {
	return predicate.PinnedCategory(sql.FieldGTE(FieldCategoryID, v))
}

// CategoryIDLT applies the LT predicate on the "category_id" field.
func CategoryIDLT(v string) predicate.PinnedCategory {
	return predicate.PinnedCategory(sql.FieldLT(FieldCategoryID, v))
}

// CategoryIDLTE applies the LTE predicate on the "category_id" field.
func CategoryIDLTE(v string) predicate.PinnedCategory {
	return predicate.PinnedCategory(sql.FieldLTE(FieldCategoryID, v))
}

// CategoryIDContains applies the Contains predicate on the "category_id" field.
func CategoryIDContains(v string) predicate.PinnedCategory {
	return predicate.PinnedCategory(sql.FieldContains(FieldCategoryID, v))
}

// CategoryIDHasPrefix applies the HasPrefix predicate on the "category_id" field.
func CategoryIDHasPrefix(v string) predicate.PinnedCategory {
	return predicate.PinnedCategory(sql.FieldHasPrefix(FieldCategoryID, v))
}

// CategoryIDHasSuffix applies the HasSuffix predicate on the "category_id" field.
func CategoryIDHasSuffix(v string) predicate.PinnedCategory {
	return predicate.PinnedCategory(sql.FieldHasSuffix(FieldCategoryID, v))
}

// CategoryIDEqualFold applies the EqualFold predicate on the "category_id" field.
func CategoryIDEqualFold(v string) predicate.PinnedCategory {
	return predicate.PinnedCategory(sql.FieldEqualFold(FieldCategoryID, v))
}

// CategoryIDContainsFold applies the ContainsFold predicate on the "category_id" field.
func CategoryIDContainsFold(v string) predicate.PinnedCategory {
	return predicate.PinnedCategory(sql.FieldContainsFold(FieldCategoryID, v))
}

// PinnedAtEQ applies the EQ predicate on the "pinned_at" field.
func PinnedAtEQ(v time.Time) predicate.PinnedCategory {
	return predicate.PinnedCategory(sql.FieldEQ(FieldPinnedAt, v))
}

// PinnedAtNEQ applies the NEQ predicate on the "pinned_at" field.
func PinnedAtNEQ(v time.Time) predicate.PinnedCategory {
	return predicate.PinnedCategory(sql.FieldNEQ(FieldPinnedAt, v))
}

// PinnedAtIn applies the In predicate on the "pinned_at" field.
func PinnedAtIn(vs ...time.Time) predicate.PinnedCategory {
	return predicate.PinnedCategory(sql.FieldIn(FieldPinnedAt, vs...))
}

// PinnedAtNotIn applies the NotIn predicate on the "pinned_at" field.
func PinnedAtNotIn(vs ...time.Time) predicate.PinnedCategory {
	return predicate.PinnedCategory(sql.FieldNotIn(FieldPinnedAt, vs...))
}

// PinnedAtGT applies the GT predicate on the "pinned_at" field.
func PinnedAtGT(v time.Time) predicate.PinnedCategory {
	return predicate.PinnedCategory(sql.FieldGT(FieldPinnedAt, v))
}

// PinnedAtGTE applies the GTE predicate on the "pinned_at" field.
func PinnedAtGTE(v time.Time) predicate.PinnedCategory {
	return predicate.PinnedCategory(sql.FieldGTE(FieldPinnedAt, v))
}

// PinnedAtLT applies the LT predicate on the "pinned_at" field.
func PinnedAtLT(v time.Time) predicate.PinnedCategory {
	return predicate.PinnedCategory(sql.FieldLT(FieldPinnedAt, v))
}

// PinnedAtLTE applies the LTE predicate on the "pinned_at" field.
func PinnedAtLTE(v time.Time) predicate.PinnedCategory {
	return predicate.PinnedCategory(sql.FieldLTE(FieldPinnedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PinnedCategory) predicate.PinnedCategory {
	return predicate.PinnedCategory(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PinnedCategory) predicate.PinnedCategory {
	return predicate.PinnedCategory(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PinnedCategory) predicate.PinnedCategory {
	return predicate.PinnedCategory(sql.NotPredicates(p))
}
