// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/communityhub/mobilecore/gen/ent/cachednewsitem"
)

// CachedNewsItemCreate is the builder for creating a CachedNewsItem entity.
type CachedNewsItemCreate struct {
	config
	mutation *CachedNewsItemMutation
	hooks    []Hook
}

// SetTitle sets the "title" field.
func (_c *CachedNewsItemCreate) SetTitle(v string) *CachedNewsItemCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetSummary sets the "summary" field.
func (_c *CachedNewsItemCreate) SetSummary(v string) *CachedNewsItemCreate {
	_c.mutation.SetSummary(v)
	return _c
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_c *CachedNewsItemCreate) SetNillableSummary(v *string) *CachedNewsItemCreate {
	if v != nil {
		_c.SetSummary(*v)
	}
	return _c
}

// SetImageURL sets the "image_url" field.
func (_c *CachedNewsItemCreate) SetImageURL(v string) *CachedNewsItemCreate {
	_c.mutation.SetImageURL(v)
	return _c
}

// SetNillableImageURL sets the "image_url" field if the given value is not nil.
func (_c *CachedNewsItemCreate) SetNillableImageURL(v *string) *CachedNewsItemCreate {
	if v != nil {
		_c.SetImageURL(*v)
	}
	return _c
}

// SetAuthor sets the "author" field.
func (_c *CachedNewsItemCreate) SetAuthor(v string) *CachedNewsItemCreate {
	_c.mutation.SetAuthor(v)
	return _c
}

// SetNillableAuthor sets the "author" field if the given value is not nil.
func (_c *CachedNewsItemCreate) SetNillableAuthor(v *string) *CachedNewsItemCreate {
	if v != nil {
		_c.SetAuthor(*v)
	}
	return _c
}

// SetLikeCount sets the "like_count" field.
func (_c *CachedNewsItemCreate) SetLikeCount(v int) *CachedNewsItemCreate {
	_c.mutation.SetLikeCount(v)
	return _c
}

// SetNillableLikeCount sets the "like_count" field if the given value is not nil.
func (_c *CachedNewsItemCreate) SetNillableLikeCount(v *int) *CachedNewsItemCreate {
	if v != nil {
		_c.SetLikeCount(*v)
	}
	return _c
}

// SetCommentCount sets the "comment_count" field.
func (_c *CachedNewsItemCreate) SetCommentCount(v int) *CachedNewsItemCreate {
	_c.mutation.SetCommentCount(v)
	return _c
}

// SetNillableCommentCount sets the "comment_count" field if the given value is not nil.
func (_c *CachedNewsItemCreate) SetNillableCommentCount(v *int) *CachedNewsItemCreate {
	if v != nil {
		_c.SetCommentCount(*v)
	}
	return _c
}

// SetPublishedAt sets the "published_at" field.
func (_c *CachedNewsItemCreate) SetPublishedAt(v time.Time) *CachedNewsItemCreate {
	_c.mutation.SetPublishedAt(v)
	return _c
}

// SetPosition sets the "position" field.
func (_c *CachedNewsItemCreate) SetPosition(v int) *CachedNewsItemCreate {
	_c.mutation.SetPosition(v)
	return _c
}

// SetStoredAt sets the "stored_at" field.
func (_c *CachedNewsItemCreate) SetStoredAt(v time.Time) *CachedNewsItemCreate {
	_c.mutation.SetStoredAt(v)
	return _c
}

// SetNillableStoredAt sets the "stored_at" field if the given value is not nil.
func (_c *CachedNewsItemCreate) SetNillableStoredAt(v *time.Time) *CachedNewsItemCreate {
	if v != nil {
		_c.SetStoredAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CachedNewsItemCreate) SetID(v string) *CachedNewsItemCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the CachedNewsItemMutation object of the builder.
func (_c *CachedNewsItemCreate) Mutation() *CachedNewsItemMutation {
	return _c.mutation
}

// Save creates the CachedNewsItem in the database.
func (_c *CachedNewsItemCreate) Save(ctx context.Context) (*CachedNewsItem, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CachedNewsItemCreate) SaveX(ctx context.Context) *CachedNewsItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CachedNewsItemCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CachedNewsItemCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CachedNewsItemCreate) defaults() {
	if _, ok := _c.mutation.LikeCount(); !ok {
		v := cachednewsitem.DefaultLikeCount
		_c.mutation.SetLikeCount(v)
	}
	if _, ok := _c.mutation.CommentCount(); !ok {
		v := cachednewsitem.DefaultCommentCount
		_c.mutation.SetCommentCount(v)
	}
	if _, ok := _c.mutation.StoredAt(); !ok {
		v := cachednewsitem.DefaultStoredAt()
		_c.mutation.SetStoredAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CachedNewsItemCreate) check() error {
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "CachedNewsItem.title"`)}
	}
	if v, ok := _c.mutation.Title(); ok {
		if err := cachednewsitem.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "CachedNewsItem.title": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LikeCount(); !ok {
		return &ValidationError{Name: "like_count", err: errors.New(`ent: missing required field "CachedNewsItem.like_count"`)}
	}
	if _, ok := _c.mutation.CommentCount(); !ok {
		return &ValidationError{Name: "comment_count", err: errors.New(`ent: missing required field "CachedNewsItem.comment_count"`)}
	}
	if _, ok := _c.mutation.PublishedAt(); !ok {
		return &ValidationError{Name: "published_at", err: errors.New(`ent: missing required field "CachedNewsItem.published_at"`)}
	}
	if _, ok := _c.mutation.Position(); !ok {
		return &ValidationError{Name: "position", err: errors.New(`ent: missing required field "CachedNewsItem.position"`)}
	}
	if _, ok := _c.mutation.StoredAt(); !ok {
		return &ValidationError{Name: "stored_at", err: errors.New(`ent: missing required field "CachedNewsItem.stored_at"`)}
	}
	if v, ok := _c.mutation.ID(); ok {
		if err := cachednewsitem.IDValidator(v); err != nil {
			return &ValidationError{Name: "id", err: fmt.Errorf(`ent: validator failed for field "CachedNewsItem.id": %w`, err)}
		}
	}
	return nil
}

func (_c *CachedNewsItemCreate) sqlSave(ctx context.Context) (*CachedNewsItem, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected CachedNewsItem.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CachedNewsItemCreate) createSpec() (*CachedNewsItem, *sqlgraph.CreateSpec) {
	var (
		_node = &CachedNewsItem{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(cachednewsitem.Table, sqlgraph.NewFieldSpec(cachednewsitem.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(cachednewsitem.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Summary(); ok {
		_spec.SetField(cachednewsitem.FieldSummary, field.TypeString, value)
		_node.Summary = value
	}
	if value, ok := _c.mutation.ImageURL(); ok {
		_spec.SetField(cachednewsitem.FieldImageURL, field.TypeString, value)
		_node.ImageURL = value
	}
	if value, ok := _c.mutation.Author(); ok {
		_spec.SetField(cachednewsitem.FieldAuthor, field.TypeString, value)
		_node.Author = value
	}
	if value, ok := _c.mutation.LikeCount(); ok {
		_spec.SetField(cachednewsitem.FieldLikeCount, field.TypeInt, value)
		_node.LikeCount = value
	}
	if value, ok := _c.mutation.CommentCount(); ok {
		_spec.SetField(cachednewsitem.FieldCommentCount, field.TypeInt, value)
		_node.CommentCount = value
	}
	if value, ok := _c.mutation.PublishedAt(); ok {
		_spec.SetField(cachednewsitem.FieldPublishedAt, field.TypeTime, value)
		_node.PublishedAt = value
	}
	if value, ok := _c.mutation.Position(); ok {
		_spec.SetField(cachednewsitem.FieldPosition, field.TypeInt, value)
		_node.Position = value
	}
	if value, ok := _c.mutation.StoredAt(); ok {
		_spec.SetField(cachednewsitem.FieldStoredAt, field.TypeTime, value)
		_node.StoredAt = value
	}
	return _node, _spec
}

// CachedNewsItemCreateBulk is the builder for creating many CachedNewsItem entities in bulk.
type CachedNewsItemCreateBulk struct {
	config
	err      error
	builders []*CachedNewsItemCreate
}

// Save creates the CachedNewsItem entities in the database.
func (_c *CachedNewsItemCreateBulk) Save(ctx context.Context) ([]*CachedNewsItem, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CachedNewsItem, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CachedNewsItemMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *CachedNewsItemCreateBulk) SaveX(ctx context.Context) []*CachedNewsItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CachedNewsItemCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CachedNewsItemCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
