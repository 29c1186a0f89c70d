// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/communityhub/mobilecore/gen/ent/pinnedcategory"
	"github.com/communityhub/mobilecore/gen/ent/predicate"
)

// PinnedCategoryDelete is the builder for deleting a PinnedCategory entity.
type PinnedCategoryDelete struct {
	config
	hooks    []Hook
	mutation *PinnedCategoryMutation
}

// Where appends a list predicates to the PinnedCategoryDelete builder.
func (_d *PinnedCategoryDelete) Where(ps ...predicate.PinnedCategory) *PinnedCategoryDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *PinnedCategoryDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *PinnedCategoryDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *PinnedCategoryDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(pinnedcategory.Table, sqlgraph.NewFieldSpec(pinnedcategory.FieldID, field.TypeInt))
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

// PinnedCategoryDeleteOne is the builder for deleting a single PinnedCategory entity.
type PinnedCategoryDeleteOne struct {
	_d *PinnedCategoryDelete
}

// Where appends a list predicates to the PinnedCategoryDelete builder.
func (_d *PinnedCategoryDeleteOne) Where(ps ...predicate.PinnedCategory) *PinnedCategoryDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *PinnedCategoryDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{pinnedcategory.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *PinnedCategoryDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
