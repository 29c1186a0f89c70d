// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/communityhub/mobilecore/gen/ent/cachedgalleryimage"
)

// CachedGalleryImageCreate is the builder for creating a CachedGalleryImage entity.
type CachedGalleryImageCreate struct {
	config
	mutation *CachedGalleryImageMutation
	hooks    []Hook
}

// SetTitle sets the "title" field.
func (_c *CachedGalleryImageCreate) SetTitle(v string) *CachedGalleryImageCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_c *CachedGalleryImageCreate) SetNillableTitle(v *string) *CachedGalleryImageCreate {
	if v != nil {
		_c.SetTitle(*v)
	}
	return _c
}

// SetURL sets the "url" field.
func (_c *CachedGalleryImageCreate) SetURL(v string) *CachedGalleryImageCreate {
	_c.mutation.SetURL(v)
	return _c
}

// SetThumbnailURL sets the "thumbnail_url" field.
func (_c *CachedGalleryImageCreate) SetThumbnailURL(v string) *CachedGalleryImageCreate {
	_c.mutation.SetThumbnailURL(v)
	return _c
}

// SetNillableThumbnailURL sets the "thumbnail_url" field if the given value is not nil.
func (_c *CachedGalleryImageCreate) SetNillableThumbnailURL(v *string) *CachedGalleryImageCreate {
	if v != nil {
		_c.SetThumbnailURL(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *CachedGalleryImageCreate) SetStatus(v string) *CachedGalleryImageCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *CachedGalleryImageCreate) SetNillableStatus(v *string) *CachedGalleryImageCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetUploadedBy sets the "uploaded_by" field.
func (_c *CachedGalleryImageCreate) SetUploadedBy(v string) *CachedGalleryImageCreate {
	_c.mutation.SetUploadedBy(v)
	return _c
}

// SetNillableUploadedBy sets the "uploaded_by" field if the given value is not nil.
func (_c *CachedGalleryImageCreate) SetNillableUploadedBy(v *string) *CachedGalleryImageCreate {
	if v != nil {
		_c.SetUploadedBy(*v)
	}
	return _c
}

// SetUploadedAt sets the "uploaded_at" field.
func (_c *CachedGalleryImageCreate) SetUploadedAt(v time.Time) *CachedGalleryImageCreate {
	_c.mutation.SetUploadedAt(v)
	return _c
}

// SetPosition sets the "position" field.
func (_c *CachedGalleryImageCreate) SetPosition(v int) *CachedGalleryImageCreate {
	_c.mutation.SetPosition(v)
	return _c
}

// SetStoredAt sets the "stored_at" field.
func (_c *CachedGalleryImageCreate) SetStoredAt(v time.Time) *CachedGalleryImageCreate {
	_c.mutation.SetStoredAt(v)
	return _c
}

// SetNillableStoredAt sets the "stored_at" field if the given value is not nil.
func (_c *CachedGalleryImageCreate) SetNillableStoredAt(v *time.Time) *CachedGalleryImageCreate {
	if v != nil {
		_c.SetStoredAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CachedGalleryImageCreate) SetID(v string) *CachedGalleryImageCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the CachedGalleryImageMutation object of the builder.
func (_c *CachedGalleryImageCreate) Mutation() *CachedGalleryImageMutation {
	return _c.mutation
}

// Save creates the CachedGalleryImage in the database.
func (_c *CachedGalleryImageCreate) Save(ctx context.Context) (*CachedGalleryImage, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CachedGalleryImageCreate) SaveX(ctx context.Context) *CachedGalleryImage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CachedGalleryImageCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CachedGalleryImageCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CachedGalleryImageCreate) defaults() {
	if _, ok := _c.mutation.StoredAt(); !ok {
		v := cachedgalleryimage.DefaultStoredAt()
		_c.mutation.SetStoredAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CachedGalleryImageCreate) check() error {
	if _, ok := _c.mutation.URL(); !ok {
		return &ValidationError{Name: "url", err: errors.New(`ent: missing required field "CachedGalleryImage.url"`)}
	}
	if v, ok := _c.mutation.URL(); ok {
		if err := cachedgalleryimage.URLValidator(v); err != nil {
			return &ValidationError{Name: "url", err: fmt.Errorf(`ent: validator failed for field "CachedGalleryImage.url": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UploadedAt(); !ok {
		return &ValidationError{Name: "uploaded_at", err: errors.New(`ent: missing required field "CachedGalleryImage.uploaded_at"`)}
	}
	if _, ok := _c.mutation.Position(); !ok {
		return &ValidationError{Name: "position", err: errors.New(`ent: missing required field "CachedGalleryImage.position"`)}
	}
	if _, ok := _c.mutation.StoredAt(); !ok {
		return &ValidationError{Name: "stored_at", err: errors.New(`ent: missing required field "CachedGalleryImage.stored_at"`)}
	}
	if v, ok := _c.mutation.ID(); ok {
		if err := cachedgalleryimage.IDValidator(v); err != nil {
			return &ValidationError{Name: "id", err: fmt.Errorf(`ent: validator failed for field "CachedGalleryImage.id": %w`, err)}
		}
	}
	return nil
}

func (_c *CachedGalleryImageCreate) sqlSave(ctx context.Context) (*CachedGalleryImage, error) {
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
			return nil, fmt.Errorf("unexpected CachedGalleryImage.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CachedGalleryImageCreate) createSpec() (*CachedGalleryImage, *sqlgraph.CreateSpec) {
	var (
		_node = &CachedGalleryImage{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(cachedgalleryimage.Table, sqlgraph.NewFieldSpec(cachedgalleryimage.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(cachedgalleryimage.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.URL(); ok {
		_spec.SetField(cachedgalleryimage.FieldURL, field.TypeString, value)
		_node.URL = value
	}
	if value, ok := _c.mutation.ThumbnailURL(); ok {
		_spec.SetField(cachedgalleryimage.FieldThumbnailURL, field.TypeString, value)
		_node.ThumbnailURL = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(cachedgalleryimage.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.UploadedBy(); ok {
		_spec.SetField(cachedgalleryimage.FieldUploadedBy, field.TypeString, value)
		_node.UploadedBy = value
	}
	if value, ok := _c.mutation.UploadedAt(); ok {
		_spec.SetField(cachedgalleryimage.FieldUploadedAt, field.TypeTime, value)
		_node.UploadedAt = value
	}
	if value, ok := _c.mutation.Position(); ok {
		_spec.SetField(cachedgalleryimage.FieldPosition, field.TypeInt, value)
		_node.Position = value
	}
	if value, ok := _c.mutation.StoredAt(); ok {
		_spec.SetField(cachedgalleryimage.FieldStoredAt, field.TypeTime, value)
		_node.StoredAt = value
	}
	return _node, _spec
}

// CachedGalleryImageCreateBulk is the builder for creating many CachedGalleryImage entities in bulk.
type CachedGalleryImageCreateBulk struct {
	config
	err      error
	builders []*CachedGalleryImageCreate
}

// Save creates the CachedGalleryImage entities in the database.
func (_c *CachedGalleryImageCreateBulk) Save(ctx context.Context) ([]*CachedGalleryImage, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CachedGalleryImage, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CachedGalleryImageMutation)
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
func (_c *CachedGalleryImageCreateBulk) SaveX(ctx context.Context) []*CachedGalleryImage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CachedGalleryImageCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CachedGalleryImageCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
