// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/communityhub/mobilecore/gen/ent/pinnedcategory"
)

// PinnedCategory is the model entity for the PinnedCategory schema.
type PinnedCategory struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// CategoryID holds the value of the "category_id" field.
	CategoryID string `json:"category_id,omitempty"`
	// PinnedAt holds the value of the "pinned_at" field.
	PinnedAt     time.Time `json:"pinned_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PinnedCategory) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case pinnedcategory.FieldID:
			values[i] = new(sql.NullInt64)
		case pinnedcategory.FieldCategoryID:
			values[i] = new(sql.NullString)
		case pinnedcategory.FieldPinnedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PinnedCategory fields.
func (_m *PinnedCategory) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case pinnedcategory.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case pinnedcategory.FieldCategoryID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field category_id", values[i])
			} else if value.Valid {
				_m.CategoryID = value.String
			}
		case pinnedcategory.FieldPinnedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field pinned_at", values[i])
			} else if value.Valid {
				_m.PinnedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PinnedCategory.
// This includes values selected through modifiers, order, etc.
func (_m *PinnedCategory) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this PinnedCategory.
// Note that you need to call PinnedCategory.Unwrap() before calling this method if this PinnedCategory
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PinnedCategory) Update() *PinnedCategoryUpdateOne {
	return NewPinnedCategoryClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PinnedCategory entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PinnedCategory) Unwrap() *PinnedCategory {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PinnedCategory is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PinnedCategory) String() string {
	var builder strings.Builder
	builder.WriteString("PinnedCategory(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("category_id=")
	builder.WriteString(_m.CategoryID)
	builder.WriteString(", ")
	builder.WriteString("pinned_at=")
	builder.WriteString(_m.PinnedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// PinnedCategories is a parsable slice of PinnedCategory.
type PinnedCategories []*PinnedCategory
