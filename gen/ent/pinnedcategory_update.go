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
	"github.com/communityhub/mobilecore/gen/ent/pinnedcategory"
	"github.com/communityhub/mobilecore/gen/ent/predicate"
)

// PinnedCategoryUpdate is the builder for updating PinnedCategory entities.
type PinnedCategoryUpdate struct {
	config
	hooks    []Hook
	mutation *PinnedCategoryMutation
}

// Where appends a list predicates to the PinnedCategoryUpdate builder.
func (_u *PinnedCategoryUpdate) Where(ps ...predicate.PinnedCategory) *PinnedCategoryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCategoryID sets the "category_id" field.
func (_u *PinnedCategoryUpdate) SetCategoryID(v string) *PinnedCategoryUpdate {
	_u.mutation.SetCategoryID(v)
	return _u
}

// SetNillableCategoryID sets the "category_id" field if the given value is not nil.
func (_u *PinnedCategoryUpdate) SetNillableCategoryID(v *string) *PinnedCategoryUpdate {
	if v != nil {
		_u.SetCategoryID(*v)
	}
	return _u
}

// SetPinnedAt sets the "pinned_at" field.
func (_u *PinnedCategoryUpdate) SetPinnedAt(v time.Time) *PinnedCategoryUpdate {
	_u.mutation.SetPinnedAt(v)
	return _u
}

// SetNillablePinnedAt sets the "pinned_at" field if the given value is not nil.
func (_u *PinnedCategoryUpdate) SetNillablePinnedAt(v *time.Time) *PinnedCategoryUpdate {
	if v != nil {
		_u.SetPinnedAt(*v)
	}
	return _u
}

// Mutation returns the PinnedCategoryMutation object of the builder.
func (_u *PinnedCategoryUpdate) Mutation() *PinnedCategoryMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PinnedCategoryUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PinnedCategoryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PinnedCategoryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PinnedCategoryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PinnedCategoryUpdate) check() error {
	if v, ok := _u.mutation.CategoryID(); ok {
		if err := pinnedcategory.CategoryIDValidator(v); err != nil {
			return &ValidationError{Name: "category_id", err: fmt.Errorf(`ent: validator failed for field "PinnedCategory.category_id": %w`, err)}
		}
	}
	return nil
}

func (_u *PinnedCategoryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(pinnedcategory.Table, pinnedcategory.Columns, sqlgraph.NewFieldSpec(pinnedcategory.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CategoryID(); ok {
		_spec.SetField(pinnedcategory.FieldCategoryID, field.TypeString, value)
	}
	if value, ok := _u.mutation.PinnedAt(); ok {
		_spec.SetField(pinnedcategory.FieldPinnedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pinnedcategory.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PinnedCategoryUpdateOne is the builder for updating a single PinnedCategory entity.
type PinnedCategoryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PinnedCategoryMutation
}

// SetCategoryID sets the "category_id" field.
func (_u *PinnedCategoryUpdateOne) SetCategoryID(v string) *PinnedCategoryUpdateOne {
	_u.mutation.SetCategoryID(v)
	return _u
}

// SetNillableCategoryID sets the "category_id" field if the given value is not nil.
func (_u *PinnedCategoryUpdateOne) SetNillableCategoryID(v *string) *PinnedCategoryUpdateOne {
	if v != nil {
		_u.SetCategoryID(*v)
	}
	return _u
}

// SetPinnedAt sets the "pinned_at" field.
func (_u *PinnedCategoryUpdateOne) SetPinnedAt(v time.Time) *PinnedCategoryUpdateOne {
	_u.mutation.SetPinnedAt(v)
	return _u
}

// SetNillablePinnedAt sets the "pinned_at" field if the given value is not nil.
func (_u *PinnedCategoryUpdateOne) SetNillablePinnedAt(v *time.Time) *PinnedCategoryUpdateOne {
	if v != nil {
		_u.SetPinnedAt(*v)
	}
	return _u
}

// Mutation returns the PinnedCategoryMutation object of the builder.
func (_u *PinnedCategoryUpdateOne) Mutation() *PinnedCategoryMutation {
	return _u.mutation
}

// Where appends a list predicates to the PinnedCategoryUpdate builder.
func (_u *PinnedCategoryUpdateOne) Where(ps ...predicate.PinnedCategory) *PinnedCategoryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PinnedCategoryUpdateOne) Select(field string, fields ...string) *PinnedCategoryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PinnedCategory entity.
func (_u *PinnedCategoryUpdateOne) Save(ctx context.Context) (*PinnedCategory, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PinnedCategoryUpdateOne) SaveX(ctx context.Context) *PinnedCategory {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PinnedCategoryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PinnedCategoryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PinnedCategoryUpdateOne) check() error {
	if v, ok := _u.mutation.CategoryID(); ok {
		if err := pinnedcategory.CategoryIDValidator(v); err != nil {
			return &ValidationError{Name: "category_id", err: fmt.Errorf(`ent: validator failed for field "PinnedCategory.category_id": %w`, err)}
		}
	}
	return nil
}

func (_u *PinnedCategoryUpdateOne) sqlSave(ctx context.Context) (_node *PinnedCategory, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(pinnedcategory.Table, pinnedcategory.Columns, sqlgraph.NewFieldSpec(pinnedcategory.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PinnedCategory.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, pinnedcategory.FieldID)
		for _, f := range fields {
			if !pinnedcategory.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != pinnedcategory.FieldID {
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
	if value, ok := _u.mutation.CategoryID(); ok {
		_spec.SetField(pinnedcategory.FieldCategoryID, field.TypeString, value)
	}
	if value, ok := _u.mutation.PinnedAt(); ok {
		_spec.SetField(pinnedcategory.FieldPinnedAt, field.TypeTime, value)
	}
	_node = &PinnedCategory{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pinnedcategory.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
