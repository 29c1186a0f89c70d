// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/communityhub/mobilecore/gen/ent/cachedgalleryimage"
)

// CachedGalleryImage is the model entity for the CachedGalleryImage schema.
type CachedGalleryImage struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// URL holds the value of the "url" field.
	URL string `json:"url,omitempty"`
	// ThumbnailURL holds the value of the "thumbnail_url" field.
	ThumbnailURL string `json:"thumbnail_url,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// UploadedBy holds the value of the "uploaded_by" field.
	UploadedBy string `json:"uploaded_by,omitempty"`
	// UploadedAt holds the value of the "uploaded_at" field.
	UploadedAt time.Time `json:"uploaded_at,omitempty"`
	// Position holds the value of the "position" field.
	Position int `json:"position,omitempty"`
	// StoredAt holds the value of the "stored_at" field.
	StoredAt     time.Time `json:"stored_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CachedGalleryImage) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case cachedgalleryimage.FieldPosition:
			values[i] = new(sql.NullInt64)
		case cachedgalleryimage.FieldID, cachedgalleryimage.FieldTitle, cachedgalleryimage.FieldURL, cachedgalleryimage.FieldThumbnailURL, cachedgalleryimage.FieldStatus, cachedgalleryimage.FieldUploadedBy:
			values[i] = new(sql.NullString)
		case cachedgalleryimage.FieldUploadedAt, cachedgalleryimage.FieldStoredAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CachedGalleryImage fields.
func (_m *CachedGalleryImage) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case cachedgalleryimage.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case cachedgalleryimage.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case cachedgalleryimage.FieldURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field url", values[i])
			} else if value.Valid {
				_m.URL = value.String
			}
		case cachedgalleryimage.FieldThumbnailURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field thumbnail_url", values[i])
			} else if value.Valid {
				_m.ThumbnailURL = value.String
			}
		case cachedgalleryimage.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case cachedgalleryimage.FieldUploadedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field uploaded_by", values[i])
			} else if value.Valid {
				_m.UploadedBy = value.String
			}
		case cachedgalleryimage.FieldUploadedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field uploaded_at", values[i])
			} else if value.Valid {
				_m.UploadedAt = value.Time
			}
		case cachedgalleryimage.FieldPosition:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field position", values[i])
			} else if value.Valid {
				_m.Position = int(value.Int64)
			}
		case cachedgalleryimage.FieldStoredAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field stored_at", values[i])
			} else if value.Valid {
				_m.StoredAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the CachedGalleryImage.
// This includes values selected through modifiers, order, etc.
func (_m *CachedGalleryImage) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this CachedGalleryImage.
// Note that you need to call CachedGalleryImage.Unwrap() before calling this method if this CachedGalleryImage
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CachedGalleryImage) Update() *CachedGalleryImageUpdateOne {
	return NewCachedGalleryImageClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CachedGalleryImage entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CachedGalleryImage) Unwrap() *CachedGalleryImage {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: CachedGalleryImage is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CachedGalleryImage) String() string {
	var builder strings.Builder
	builder.WriteString("CachedGalleryImage(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("url=")
	builder.WriteString(_m.URL)
	builder.WriteString(", ")
	builder.WriteString("thumbnail_url=")
	builder.WriteString(_m.ThumbnailURL)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	builder.WriteString("uploaded_by=")
	builder.WriteString(_m.UploadedBy)
	builder.WriteString(", ")
	builder.WriteString("uploaded_at=")
	builder.WriteString(_m.UploadedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("position=")
	builder.WriteString(fmt.Sprintf("%v", _m.Position))
	builder.WriteString(", ")
	builder.WriteString("stored_at=")
	builder.WriteString(_m.StoredAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// CachedGalleryImages is a parsable slice of CachedGalleryImage.
type CachedGalleryImages []*CachedGalleryImage
