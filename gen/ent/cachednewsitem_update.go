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
	"github.com/communityhub/mobilecore/gen/ent/cachednewsitem"
	"github.com/communityhub/mobilecore/gen/ent/predicate"
)

// CachedNewsItemUpdate is the builder for updating CachedNewsItem entities.
type CachedNewsItemUpdate struct {
	config
	hooks    []Hook
	mutation *CachedNewsItemMutation
}

// Where appends a list predicates to the CachedNewsItemUpdate builder.
func (_u *CachedNewsItemUpdate) Where(ps ...predicate.CachedNewsItem) *CachedNewsItemUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTitle sets the "title" field.
func (_u *CachedNewsItemUpdate) SetTitle(v string) *CachedNewsItemUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *CachedNewsItemUpdate) SetNillableTitle(v *string) *CachedNewsItemUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetSummary sets the "summary" field.
func (_u *CachedNewsItemUpdate) SetSummary(v string) *CachedNewsItemUpdate {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *CachedNewsItemUpdate) SetNillableSummary(v *string) *CachedNewsItemUpdate {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// ClearSummary clears the value of the "summary" field.
func (_u *CachedNewsItemUpdate) ClearSummary() *CachedNewsItemUpdate {
	_u.mutation.ClearSummary()
	return _u
}

// SetImageURL sets the "image_url" field.
func (_u *CachedNewsItemUpdate) SetImageURL(v string) *CachedNewsItemUpdate {
	_u.mutation.SetImageURL(v)
	return _u
}

// SetNillableImageURL sets the "image_url" field if the given value is not nil.
func (_u *CachedNewsItemUpdate) SetNillableImageURL(v *string) *CachedNewsItemUpdate {
	if v != nil {
		_u.SetImageURL(*v)
	}
	return _u
}

// ClearImageURL clears the value of the "image_url" field.
func (_u *CachedNewsItemUpdate) ClearImageURL() *CachedNewsItemUpdate {
	_u.mutation.ClearImageURL()
	return _u
}

// SetAuthor sets the "author" field.
func (_u *CachedNewsItemUpdate) SetAuthor(v string) *CachedNewsItemUpdate {
	_u.mutation.SetAuthor(v)
	return _u
}

// SetNillableAuthor sets the "author" field if the given value is not nil.
func (_u *CachedNewsItemUpdate) SetNillableAuthor(v *string) *CachedNewsItemUpdate {
	if v != nil {
		_u.SetAuthor(*v)
	}
	return _u
}

// ClearAuthor clears the value of the "author" field.
func (_u *CachedNewsItemUpdate) ClearAuthor() *CachedNewsItemUpdate {
	_u.mutation.ClearAuthor()
	return _u
}

// SetLikeCount sets the "like_count" field.
func (_u *CachedNewsItemUpdate) SetLikeCount(v int) *CachedNewsItemUpdate {
	_u.mutation.ResetLikeCount()
	_u.mutation.SetLikeCount(v)
	return _u
}

// SetNillableLikeCount sets the "like_count" field if the given value is not nil.
func (_u *CachedNewsItemUpdate) SetNillableLikeCount(v *int) *CachedNewsItemUpdate {
	if v != nil {
		_u.SetLikeCount(*v)
	}
	return _u
}

// AddLikeCount adds value to the "like_count" field.
func (_u *CachedNewsItemUpdate) AddLikeCount(v int) *CachedNewsItemUpdate {
	_u.mutation.AddLikeCount(v)
	return _u
}

// SetCommentCount sets the "comment_count" field.
func (_u *CachedNewsItemUpdate) SetCommentCount(v int) *CachedNewsItemUpdate {
	_u.mutation.ResetCommentCount()
	_u.mutation.SetCommentCount(v)
	return _u
}

// SetNillableCommentCount sets the "comment_count" field if the given value is not nil.
func (_u *CachedNewsItemUpdate) SetNillableCommentCount(v *int) *CachedNewsItemUpdate {
	if v != nil {
		_u.SetCommentCount(*v)
	}
	return _u
}

// AddCommentCount adds value to the "comment_count" field.
func (_u *CachedNewsItemUpdate) AddCommentCount(v int) *CachedNewsItemUpdate {
	_u.mutation.AddCommentCount(v)
	return _u
}

// SetPublishedAt sets the "published_at" field.
func (_u *CachedNewsItemUpdate) SetPublishedAt(v time.Time) *CachedNewsItemUpdate {
	_u.mutation.SetPublishedAt(v)
	return _u
}

// SetNillablePublishedAt sets the "published_at" field if the given value is not nil.
func (_u *CachedNewsItemUpdate) SetNillablePublishedAt(v *time.Time) *CachedNewsItemUpdate {
	if v != nil {
		_u.SetPublishedAt(*v)
	}
	return _u
}

// SetPosition sets the "position" field.
func (_u *CachedNewsItemUpdate) SetPosition(v int) *CachedNewsItemUpdate {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *CachedNewsItemUpdate) SetNillablePosition(v *int) *CachedNewsItemUpdate {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *CachedNewsItemUpdate) AddPosition(v int) *CachedNewsItemUpdate {
	_u.mutation.AddPosition(v)
	return _u
}

// SetStoredAt sets the "stored_at" field.
func (_u *CachedNewsItemUpdate) SetStoredAt(v time.Time) *CachedNewsItemUpdate {
	_u.mutation.SetStoredAt(v)
	return _u
}

// SetNillableStoredAt sets the "stored_at" field if the given value is not nil.
func (_u *CachedNewsItemUpdate) SetNillableStoredAt(v *time.Time) *CachedNewsItemUpdate {
	if v != nil {
		_u.SetStoredAt(*v)
	}
	return _u
}

// Mutation returns the CachedNewsItemMutation object of the builder.
func (_u *CachedNewsItemUpdate) Mutation() *CachedNewsItemMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CachedNewsItemUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CachedNewsItemUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CachedNewsItemUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CachedNewsItemUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CachedNewsItemUpdate) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := cachednewsitem.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "CachedNewsItem.title": %w`, err)}
		}
	}
	return nil
}

func (_u *CachedNewsItemUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(cachednewsitem.Table, cachednewsitem.Columns, sqlgraph.NewFieldSpec(cachednewsitem.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(cachednewsitem.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(cachednewsitem.FieldSummary, field.TypeString, value)
	}
	if _u.mutation.SummaryCleared() {
		_spec.ClearField(cachednewsitem.FieldSummary, field.TypeString)
	}
	if value, ok := _u.mutation.ImageURL(); ok {
		_spec.SetField(cachednewsitem.FieldImageURL, field.TypeString, value)
	}
	if _u.mutation.ImageURLCleared() {
		_spec.ClearField(cachednewsitem.FieldImageURL, field.TypeString)
	}
	if value, ok := _u.mutation.Author(); ok {
		_spec.SetField(cachednewsitem.FieldAuthor, field.TypeString, value)
	}
	if _u.mutation.AuthorCleared() {
		_spec.ClearField(cachednewsitem.FieldAuthor, field.TypeString)
	}
	if value, ok := _u.mutation.LikeCount(); ok {
		_spec.SetField(cachednewsitem.FieldLikeCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLikeCount(); ok {
		_spec.AddField(cachednewsitem.FieldLikeCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CommentCount(); ok {
		_spec.SetField(cachednewsitem.FieldCommentCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCommentCount(); ok {
		_spec.AddField(cachednewsitem.FieldCommentCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PublishedAt(); ok {
		_spec.SetField(cachednewsitem.FieldPublishedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(cachednewsitem.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(cachednewsitem.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StoredAt(); ok {
		_spec.SetField(cachednewsitem.FieldStoredAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{cachednewsitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CachedNewsItemUpdateOne is the builder for updating a single CachedNewsItem entity.
type CachedNewsItemUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CachedNewsItemMutation
}

// SetTitle sets the "title" field.
func (_u *CachedNewsItemUpdateOne) SetTitle(v string) *CachedNewsItemUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *CachedNewsItemUpdateOne) SetNillableTitle(v *string) *CachedNewsItemUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetSummary sets the "summary" field.
func (_u *CachedNewsItemUpdateOne) SetSummary(v string) *CachedNewsItemUpdateOne {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *CachedNewsItemUpdateOne) SetNillableSummary(v *string) *CachedNewsItemUpdateOne {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// ClearSummary clears the value of the "summary" field.
func (_u *CachedNewsItemUpdateOne) ClearSummary() *CachedNewsItemUpdateOne {
	_u.mutation.ClearSummary()
	return _u
}

// SetImageURL sets the "image_url" field.
func (_u *CachedNewsItemUpdateOne) SetImageURL(v string) *CachedNewsItemUpdateOne {
	_u.mutation.SetImageURL(v)
	return _u
}

// SetNillableImageURL sets the "image_url" field if the given value is not nil.
func (_u *CachedNewsItemUpdateOne) SetNillableImageURL(v *string) *CachedNewsItemUpdateOne {
	if v != nil {
		_u.SetImageURL(*v)
	}
	return _u
}

// ClearImageURL clears the value of the "image_url" field.
func (_u *CachedNewsItemUpdateOne) ClearImageURL() *CachedNewsItemUpdateOne {
	_u.mutation.ClearImageURL()
	return _u
}

// SetAuthor sets the "author" field.
func (_u *CachedNewsItemUpdateOne) SetAuthor(v string) *CachedNewsItemUpdateOne {
	_u.mutation.SetAuthor(v)
	return _u
}

// SetNillableAuthor sets the "author" field if the given value is not nil.
func (_u *CachedNewsItemUpdateOne) SetNillableAuthor(v *string) *CachedNewsItemUpdateOne {
	if v != nil {
		_u.SetAuthor(*v)
	}
	return _u
}

// ClearAuthor clears the value of the "author" field.
func (_u *CachedNewsItemUpdateOne) ClearAuthor() *CachedNewsItemUpdateOne {
	_u.mutation.ClearAuthor()
	return _u
}

// SetLikeCount sets the "like_count" field.
func (_u *CachedNewsItemUpdateOne) SetLikeCount(v int) *CachedNewsItemUpdateOne {
	_u.mutation.ResetLikeCount()
	_u.mutation.SetLikeCount(v)
	return _u
}

// SetNillableLikeCount sets the "like_count" field if the given value is not nil.
func (_u *CachedNewsItemUpdateOne) SetNillableLikeCount(v *int) *CachedNewsItemUpdateOne {
	if v != nil {
		_u.SetLikeCount(*v)
	}
	return _u
}

// AddLikeCount adds value to the "like_count" field.
func (_u *CachedNewsItemUpdateOne) AddLikeCount(v int) *CachedNewsItemUpdateOne {
	_u.mutation.AddLikeCount(v)
	return _u
}

// SetCommentCount sets the "comment_count" field.
func (_u *CachedNewsItemUpdateOne) SetCommentCount(v int) *CachedNewsItemUpdateOne {
	_u.mutation.ResetCommentCount()
	_u.mutation.SetCommentCount(v)
	return _u
}

// SetNillableCommentCount sets the "comment_count" field if the given value is not nil.
func (_u *CachedNewsItemUpdateOne) SetNillableCommentCount(v *int) *CachedNewsItemUpdateOne {
	if v != nil {
		_u.SetCommentCount(*v)
	}
	return _u
}

// AddCommentCount adds value to the "comment_count" field.
func (_u *CachedNewsItemUpdateOne) AddCommentCount(v int) *CachedNewsItemUpdateOne {
	_u.mutation.AddCommentCount(v)
	return _u
}

// SetPublishedAt sets the "published_at" field.
func (_u *CachedNewsItemUpdateOne) SetPublishedAt(v time.Time) *CachedNewsItemUpdateOne {
	_u.mutation.SetPublishedAt(v)
	return _u
}

// SetNillablePublishedAt sets the "published_at" field if the given value is not nil.
func (_u *CachedNewsItemUpdateOne) SetNillablePublishedAt(v *time.Time) *CachedNewsItemUpdateOne {
	if v != nil {
		_u.SetPublishedAt(*v)
	}
	return _u
}

// SetPosition sets the "position" field.
func (_u *CachedNewsItemUpdateOne) SetPosition(v int) *CachedNewsItemUpdateOne {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *CachedNewsItemUpdateOne) SetNillablePosition(v *int) *CachedNewsItemUpdateOne {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *CachedNewsItemUpdateOne) AddPosition(v int) *CachedNewsItemUpdateOne {
	_u.mutation.AddPosition(v)
	return _u
}

// SetStoredAt sets the "stored_at" field.
func (_u *CachedNewsItemUpdateOne) SetStoredAt(v time.Time) *CachedNewsItemUpdateOne {
	_u.mutation.SetStoredAt(v)
	return _u
}

// SetNillableStoredAt sets the "stored_at" field if the given value is not nil.
func (_u *CachedNewsItemUpdateOne) SetNillableStoredAt(v *time.Time) *CachedNewsItemUpdateOne {
	if v != nil {
		_u.SetStoredAt(*v)
	}
	return _u
}

// Mutation returns the CachedNewsItemMutation object of the builder.
func (_u *CachedNewsItemUpdateOne) Mutation() *CachedNewsItemMutation {
	return _u.mutation
}

// Where appends a list predicates to the CachedNewsItemUpdate builder.
func (_u *CachedNewsItemUpdateOne) Where(ps ...predicate.CachedNewsItem) *CachedNewsItemUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CachedNewsItemUpdateOne) Select(field string, fields ...string) *CachedNewsItemUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CachedNewsItem entity.
func (_u *CachedNewsItemUpdateOne) Save(ctx context.Context) (*CachedNewsItem, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CachedNewsItemUpdateOne) SaveX(ctx context.Context) *CachedNewsItem {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CachedNewsItemUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CachedNewsItemUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CachedNewsItemUpdateOne) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := cachednewsitem.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "CachedNewsItem.title": %w`, err)}
		}
	}
	return nil
}

func (_u *CachedNewsItemUpdateOne) sqlSave(ctx context.Context) (_node *CachedNewsItem, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(cachednewsitem.Table, cachednewsitem.Columns, sqlgraph.NewFieldSpec(cachednewsitem.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CachedNewsItem.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, cachednewsitem.FieldID)
		for _, f := range fields {
			if !cachednewsitem.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != cachednewsitem.FieldID {
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
		_spec.SetField(cachednewsitem.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(cachednewsitem.FieldSummary, field.TypeString, value)
	}
	if _u.mutation.SummaryCleared() {
		_spec.ClearField(cachednewsitem.FieldSummary, field.TypeString)
	}
	if value, ok := _u.mutation.ImageURL(); ok {
		_spec.SetField(cachednewsitem.FieldImageURL, field.TypeString, value)
	}
	if _u.mutation.ImageURLCleared() {
		_spec.ClearField(cachednewsitem.FieldImageURL, field.TypeString)
	}
	if value, ok := _u.mutation.Author(); ok {
		_spec.SetField(cachednewsitem.FieldAuthor, field.TypeString, value)
	}
	if _u.mutation.AuthorCleared() {
		_spec.ClearField(cachednewsitem.FieldAuthor, field.TypeString)
	}
	if value, ok := _u.mutation.LikeCount(); ok {
		_spec.SetField(cachednewsitem.FieldLikeCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLikeCount(); ok {
		_spec.AddField(cachednewsitem.FieldLikeCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CommentCount(); ok {
		_spec.SetField(cachednewsitem.FieldCommentCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCommentCount(); ok {
		_spec.AddField(cachednewsitem.FieldCommentCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PublishedAt(); ok {
		_spec.SetField(cachednewsitem.FieldPublishedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(cachednewsitem.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(cachednewsitem.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StoredAt(); ok {
		_spec.SetField(cachednewsitem.FieldStoredAt, field.TypeTime, value)
	}
	_node = &CachedNewsItem{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{cachednewsitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
