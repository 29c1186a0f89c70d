// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/communityhub/mobilecore/gen/ent/cachedgalleryimage"
	"github.com/communityhub/mobilecore/gen/ent/predicate"
)

// CachedGalleryImageDelete is the builder for deleting a CachedGalleryImage entity.
type CachedGalleryImageDelete struct {
	config
	hooks    []Hook
	mutation *CachedGalleryImageMutation
}

// Where appends a list predicates to the CachedGalleryImageDelete builder.
func (_d *CachedGalleryImageDelete) Where(ps ...predicate.CachedGalleryImage) *CachedGalleryImageDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *CachedGalleryImageDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *CachedGalleryImageDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *CachedGalleryImageDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(cachedgalleryimage.Table, sqlgraph.NewFieldSpec(cachedgalleryimage.FieldID, field.TypeString))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// CachedGalleryImageDeleteOne is the builder for deleting a single CachedGalleryImage entity.
type CachedGalleryImageDeleteOne struct {
	_d *CachedGalleryImageDelete
}

// Where appends a list predicates to the CachedGalleryImageDelete builder.
func (_d *CachedGalleryImageDeleteOne) Where(ps ...predicate.CachedGalleryImage) *CachedGalleryImageDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *CachedGalleryImageDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{cachedgalleryimage.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *CachedGalleryImageDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
