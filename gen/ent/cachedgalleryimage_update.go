// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/communityhub/mobilecore/gen/ent/cachedgalleryimage"
	"github.com/communityhub/mobilecore/gen/ent/predicate"
)

// CachedGalleryImageUpdate is the builder for updating CachedGalleryImage entities.
type CachedGalleryImageUpdate struct {
	config
	hooks    []Hook
	mutation *CachedGalleryImageMutation
}

// Where appends a list predicates to the CachedGalleryImageUpdate builder.
func (_u *CachedGalleryImageUpdate) Where(ps ...predicate.CachedGalleryImage) *CachedGalleryImageUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTitle sets the "title" field.
func (_u *CachedGalleryImageUpdate) SetTitle(v string) *CachedGalleryImageUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *CachedGalleryImageUpdate) SetNillableTitle(v *string) *CachedGalleryImageUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// ClearTitle clears the value of the "title" field.
func (_u *CachedGalleryImageUpdate) ClearTitle() *CachedGalleryImageUpdate {
	_u.mutation.ClearTitle()
	return _u
}

// SetURL sets the "url" field.
func (_u *CachedGalleryImageUpdate) SetURL(v string) *CachedGalleryImageUpdate {
	_u.mutation.SetURL(v)
	return _u
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (_u *CachedGalleryImageUpdate) SetNillableURL(v *string) *CachedGalleryImageUpdate {
	if v != nil {
		_u.SetURL(*v)
	}
	return _u
}

// SetThumbnailURL sets the "thumbnail_url" field.
func (_u *CachedGalleryImageUpdate) SetThumbnailURL(v string) *CachedGalleryImageUpdate {
	_u.mutation.SetThumbnailURL(v)
	return _u
}

// SetNillableThumbnailURL sets the "thumbnail_url" field if the given value is not nil.
func (_u *CachedGalleryImageUpdate) SetNillableThumbnailURL(v *string) *CachedGalleryImageUpdate {
	if v != nil {
		_u.SetThumbnailURL(*v)
	}
	return _u
}

// ClearThumbnailURL clears the value of the "thumbnail_url" field.
func (_u *CachedGalleryImageUpdate) ClearThumbnailURL() *CachedGalleryImageUpdate {
	_u.mutation.ClearThumbnailURL()
	return _u
}

// SetStatus sets the "status" field.
func (_u *CachedGalleryImageUpdate) SetStatus(v string) *CachedGalleryImageUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *CachedGalleryImageUpdate) SetNillableStatus(v *string) *CachedGalleryImageUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// ClearStatus clears the value of the "status" field.
func (_u *CachedGalleryImageUpdate) ClearStatus() *CachedGalleryImageUpdate {
	_u.mutation.ClearStatus()
	return _u
}

// SetUploadedBy sets the "uploaded_by" field.
func (_u *CachedGalleryImageUpdate) SetUploadedBy(v string) *CachedGalleryImageUpdate {
	_u.mutation.SetUploadedBy(v)
	return _u
}

// SetNillableUploadedBy sets the "uploaded_by" field if the given value is not nil.
func (_u *CachedGalleryImageUpdate) SetNillableUploadedBy(v *string) *CachedGalleryImageUpdate {
	if v != nil {
		_u.SetUploadedBy(*v)
	}
	return _u
}

// ClearUploadedBy clears the value of the "uploaded_by" field.
func (_u *CachedGalleryImageUpdate) ClearUploadedBy() *CachedGalleryImageUpdate {
	_u.mutation.ClearUploadedBy()
	return _u
}

// SetUploadedAt sets the "uploaded_at" field.
func (_u *CachedGalleryImageUpdate) SetUploadedAt(v time.Time) *CachedGalleryImageUpdate {
	_u.mutation.SetUploadedAt(v)
	return _u
}

// SetNillableUploadedAt sets the "uploaded_at" field if the given value is not nil.
func (_u *CachedGalleryImageUpdate) SetNillableUploadedAt(v *time.Time) *CachedGalleryImageUpdate {
	if v != nil {
		_u.SetUploadedAt(*v)
	}
	return _u
}

// SetPosition sets the "position" field.
func (_u *CachedGalleryImageUpdate) SetPosition(v int) *CachedGalleryImageUpdate {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *CachedGalleryImageUpdate) SetNillablePosition(v *int) *CachedGalleryImageUpdate {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *CachedGalleryImageUpdate) AddPosition(v int) *CachedGalleryImageUpdate {
	_u.mutation.AddPosition(v)
	return _u
}

// SetStoredAt sets the "stored_at" field.
func (_u *CachedGalleryImageUpdate) SetStoredAt(v time.Time) *CachedGalleryImageUpdate {
	_u.mutation.SetStoredAt(v)
	return _u
}

// SetNillableStoredAt sets the "stored_at" field if the given value is not nil.
func (_u *CachedGalleryImageUpdate) SetNillableStoredAt(v *time.Time) *CachedGalleryImageUpdate {
	if v != nil {
		_u.SetStoredAt(*v)
	}
	return _u
}

// Mutation returns the CachedGalleryImageMutation object of the builder.
func (_u *CachedGalleryImageUpdate) Mutation() *CachedGalleryImageMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CachedGalleryImageUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CachedGalleryImageUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CachedGalleryImageUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CachedGalleryImageUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CachedGalleryImageUpdate) check() error {
	if v, ok := _u.mutation.URL(); ok {
		if err := cachedgalleryimage.URLValidator(v); err != nil {
			return &ValidationError{Name: "url", err: fmt.Errorf(`ent: validator failed for field "CachedGalleryImage.url": %w`, err)}
		}
	}
	return nil
}

func (_u *CachedGalleryImageUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(cachedgalleryimage.Table, cachedgalleryimage.Columns, sqlgraph.NewFieldSpec(cachedgalleryimage.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(cachedgalleryimage.FieldTitle, field.TypeString, value)
	}
	if _u.mutation.TitleCleared() {
		_spec.ClearField(cachedgalleryimage.FieldTitle, field.TypeString)
	}
	if value, ok := _u.mutation.URL(); ok {
		_spec.SetField(cachedgalleryimage.FieldURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.ThumbnailURL(); ok {
		_spec.SetField(cachedgalleryimage.FieldThumbnailURL, field.TypeString, value)
	}
	if _u.mutation.ThumbnailURLCleared() {
		_spec.ClearField(cachedgalleryimage.FieldThumbnailURL, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(cachedgalleryimage.FieldStatus, field.TypeString, value)
	}
	if _u.mutation.StatusCleared() {
		_spec.ClearField(cachedgalleryimage.FieldStatus, field.TypeString)
	}
	if value, ok := _u.mutation.UploadedBy(); ok {
		_spec.SetField(cachedgalleryimage.FieldUploadedBy, field.TypeString, value)
	}
	if _u.mutation.UploadedByCleared() {
		_spec.ClearField(cachedgalleryimage.FieldUploadedBy, field.TypeString)
	}
	if value, ok := _u.mutation.UploadedAt(); ok {
		_spec.SetField(cachedgalleryimage.FieldUploadedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(cachedgalleryimage.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(cachedgalleryimage.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StoredAt(); ok {
		_spec.SetField(cachedgalleryimage.FieldStoredAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{cachedgalleryimage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CachedGalleryImageUpdateOne is the builder for updating a single CachedGalleryImage entity.
type CachedGalleryImageUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CachedGalleryImageMutation
}

// SetTitle sets the "title" field.
func (_u *CachedGalleryImageUpdateOne) SetTitle(v string) *CachedGalleryImageUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *CachedGalleryImageUpdateOne) SetNillableTitle(v *string) *CachedGalleryImageUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// ClearTitle clears the value of the "title" field.
func (_u *CachedGalleryImageUpdateOne) ClearTitle() *CachedGalleryImageUpdateOne {
	_u.mutation.ClearTitle()
	return _u
}

// SetURL sets the "url" field.
func (_u *CachedGalleryImageUpdateOne) SetURL(v string) *CachedGalleryImageUpdateOne {
	_u.mutation.SetURL(v)
	return _u
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (_u *CachedGalleryImageUpdateOne) SetNillableURL(v *string) *CachedGalleryImageUpdateOne {
	if v != nil {
		_u.SetURL(*v)
	}
	return _u
}

// SetThumbnailURL sets the "thumbnail_url" field.
func (_u *CachedGalleryImageUpdateOne) SetThumbnailURL(v string) *CachedGalleryImageUpdateOne {
	_u.mutation.SetThumbnailURL(v)
	return _u
}

// SetNillableThumbnailURL sets the "thumbnail_url" field if the given value is not nil.
func (_u *CachedGalleryImageUpdateOne) SetNillableThumbnailURL(v *string) *CachedGalleryImageUpdateOne {
	if v != nil {
		_u.SetThumbnailURL(*v)
	}
	return _u
}

// ClearThumbnailURL clears the value of the "thumbnail_url" field.
func (_u *CachedGalleryImageUpdateOne) ClearThumbnailURL() *CachedGalleryImageUpdateOne {
	_u.mutation.ClearThumbnailURL()
	return _u
}

// SetStatus sets the "status" field.
func (_u *CachedGalleryImageUpdateOne) SetStatus(v string) *CachedGalleryImageUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *CachedGalleryImageUpdateOne) SetNillableStatus(v *string) *CachedGalleryImageUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// ClearStatus clears the value of the "status" field.
func (_u *CachedGalleryImageUpdateOne) ClearStatus() *CachedGalleryImageUpdateOne {
	_u.mutation.ClearStatus()
	return _u
}

// SetUploadedBy sets the "uploaded_by" field.
func (_u *CachedGalleryImageUpdateOne) SetUploadedBy(v string) *CachedGalleryImageUpdateOne {
	_u.mutation.SetUploadedBy(v)
	return _u
}

// SetNillableUploadedBy sets the "uploaded_by" field if the given value is not nil.
func (_u *CachedGalleryImageUpdateOne) SetNillableUploadedBy(v *string) *CachedGalleryImageUpdateOne {
	if v != nil {
		_u.SetUploadedBy(*v)
	}
	return _u
}

// ClearUploadedBy clears the value of the "uploaded_by" field.
func (_u *CachedGalleryImageUpdateOne) ClearUploadedBy() *CachedGalleryImageUpdateOne {
	_u.mutation.ClearUploadedBy()
	return _u
}

// SetUploadedAt sets the "uploaded_at" field.
func (_u *CachedGalleryImageUpdateOne) SetUploadedAt(v time.Time) *CachedGalleryImageUpdateOne {
	_u.mutation.SetUploadedAt(v)
	return _u
}

// SetNillableUploadedAt sets the "uploaded_at" field if the given value is not nil.
func (_u *CachedGalleryImageUpdateOne) SetNillableUploadedAt(v *time.Time) *CachedGalleryImageUpdateOne {
	if v != nil {
		_u.SetUploadedAt(*v)
	}
	return _u
}

// SetPosition sets the "position" field.
func (_u *CachedGalleryImageUpdateOne) SetPosition(v int) *CachedGalleryImageUpdateOne {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *CachedGalleryImageUpdateOne) SetNillablePosition(v *int) *CachedGalleryImageUpdateOne {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *CachedGalleryImageUpdateOne) AddPosition(v int) *CachedGalleryImageUpdateOne {
	_u.mutation.AddPosition(v)
	return _u
}

// SetStoredAt sets the "stored_at" field.
func (_u *CachedGalleryImageUpdateOne) SetStoredAt(v time.Time) *CachedGalleryImageUpdateOne {
	_u.mutation.SetStoredAt(v)
	return _u
}

// SetNillableStoredAt sets the "stored_at" field if the given value is not nil.
func (_u *CachedGalleryImageUpdateOne) SetNillableStoredAt(v *time.Time) *CachedGalleryImageUpdateOne {
	if v != nil {
		_u.SetStoredAt(*v)
	}
	return _u
}

// Mutation returns the CachedGalleryImageMutation object of the builder.
func (_u *CachedGalleryImageUpdateOne) Mutation() *CachedGalleryImageMutation {
	return _u.mutation
}

// Where appends a list predicates to the CachedGalleryImageUpdate builder.
func (_u *CachedGalleryImageUpdateOne) Where(ps ...predicate.CachedGalleryImage) *CachedGalleryImageUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CachedGalleryImageUpdateOne) Select(field string, fields ...string) *CachedGalleryImageUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CachedGalleryImage entity.
func (_u *CachedGalleryImageUpdateOne) Save(ctx context.Context) (*CachedGalleryImage, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CachedGalleryImageUpdateOne) SaveX(ctx context.Context) *CachedGalleryImage {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CachedGalleryImageUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CachedGalleryImageUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CachedGalleryImageUpdateOne) check() error {
	if v, ok := _u.mutation.URL(); ok {
		if err := cachedgalleryimage.URLValidator(v); err != nil {
			return &ValidationError{Name: "url", err: fmt.Errorf(`ent: validator failed for field "CachedGalleryImage.url": %w`, err)}
		}
	}
	return nil
}

func (_u *CachedGalleryImageUpdateOne) sqlSave(ctx context.Context) (_node *CachedGalleryImage, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(cachedgalleryimage.Table, cachedgalleryimage.Columns, sqlgraph.NewFieldSpec(cachedgalleryimage.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CachedGalleryImage.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, cachedgalleryimage.FieldID)
		for _, f := range fields {
			if !cachedgalleryimage.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != cachedgalleryimage.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(cachedgalleryimage.FieldTitle, field.TypeString, value)
	}
	if _u.mutation.TitleCleared() {
		_spec.ClearField(cachedgalleryimage.FieldTitle, field.TypeString)
	}
	if value, ok := _u.mutation.URL(); ok {
		_spec.SetField(cachedgalleryimage.FieldURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.ThumbnailURL(); ok {
		_spec.SetField(cachedgalleryimage.FieldThumbnailURL, field.TypeString, value)
	}
	if _u.mutation.ThumbnailURLCleared() {
		_spec.ClearField(cachedgalleryimage.FieldThumbnailURL, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(cachedgalleryimage.FieldStatus, field.TypeString, value)
	}
	if _u.mutation.StatusCleared() {
		_spec.ClearField(cachedgalleryimage.FieldStatus, field.TypeString)
	}
	if value, ok := _u.mutation.UploadedBy(); ok {
		_spec.SetField(cachedgalleryimage.FieldUploadedBy, field.TypeString, value)
	}
	if _u.mutation.UploadedByCleared() {
		_spec.ClearField(cachedgalleryimage.FieldUploadedBy, field.TypeString)
	}
	if value, ok := _u.mutation.UploadedAt(); ok {
		_spec.SetField(cachedgalleryimage.FieldUploadedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(cachedgalleryimage.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(cachedgalleryimage.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StoredAt(); ok {
		_spec.SetField(cachedgalleryimage.FieldStoredAt, field.TypeTime, value)
	}
	_node = &CachedGalleryImage{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{cachedgalleryimage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
