// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/communityhub/mobilecore/gen/ent/cachednewsitem"
	"github.com/communityhub/mobilecore/gen/ent/predicate"
)

// CachedNewsItemDelete is the builder for deleting a CachedNewsItem entity.
type CachedNewsItemDelete struct {
	config
	hooks    []Hook
	mutation *CachedNewsItemMutation
}

// Where appends a list predicates to the CachedNewsItemDelete builder.
func (_d *CachedNewsItemDelete) Where(ps ...predicate.CachedNewsItem) *CachedNewsItemDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *CachedNewsItemDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *CachedNewsItemDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *CachedNewsItemDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(cachednewsitem.Table, sqlgraph.NewFieldSpec(cachednewsitem.FieldID, field.TypeString))
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

// CachedNewsItemDeleteOne is the builder for deleting a single CachedNewsItem entity.
type CachedNewsItemDeleteOne struct {
	_d *CachedNewsItemDelete
}

// Where appends a list predicates to the CachedNewsItemDelete builder.
func (_d *CachedNewsItemDeleteOne) Where(ps ...predicate.CachedNewsItem) *CachedNewsItemDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *CachedNewsItemDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{cachednewsitem.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *CachedNewsItemDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
