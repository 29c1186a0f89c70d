// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/communityhub/mobilecore/gen/ent/pinnedcategory"
)

// PinnedCategoryCreate is the builder for creating a PinnedCategory entity.
type PinnedCategoryCreate struct {
	config
	mutation *PinnedCategoryMutation
	hooks    []Hook
}

// SetCategoryID sets the "category_id" field.
func (_c *PinnedCategoryCreate) SetCategoryID(v string) *PinnedCategoryCreate {
	_c.mutation.SetCategoryID(v)
	return _c
}

// SetPinnedAt sets the "pinned_at" field.
func (_c *PinnedCategoryCreate) SetPinnedAt(v time.Time) *PinnedCategoryCreate {
	_c.mutation.SetPinnedAt(v)
	return _c
}

// SetNillablePinnedAt sets the "pinned_at" field if the given value is not nil.
func (_c *PinnedCategoryCreate) SetNillablePinnedAt(v *time.Time) *PinnedCategoryCreate {
	if v != nil {
		_c.SetPinnedAt(*v)
	}
	return _c
}

// Mutation returns the PinnedCategoryMutation object of the builder.
func (_c *PinnedCategoryCreate) Mutation() *PinnedCategoryMutation {
	return _c.mutation
}

// Save creates the PinnedCategory in the database.
func (_c *PinnedCategoryCreate) Save(ctx context.Context) (*PinnedCategory, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PinnedCategoryCreate) SaveX(ctx context.Context) *PinnedCategory {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PinnedCategoryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PinnedCategoryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PinnedCategoryCreate) defaults() {
	if _, ok := _c.mutation.PinnedAt(); !ok {
		v := pinnedcategory.DefaultPinnedAt()
		_c.mutation.SetPinnedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PinnedCategoryCreate) check() error {
	if _, ok := _c.mutation.CategoryID(); !ok {
		return &ValidationError{Name: "category_id", err: errors.New(`ent: missing required field "PinnedCategory.category_id"`)}
	}
	if v, ok := _c.mutation.CategoryID(); ok {
		if err := pinnedcategory.CategoryIDValidator(v); err != nil {
			return &ValidationError{Name: "category_id", err: fmt.Errorf(`ent: validator failed for field "PinnedCategory.category_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PinnedAt(); !ok {
		return &ValidationError{Name: "pinned_at", err: errors.New(`ent: missing required field "PinnedCategory.pinned_at"`)}
	}
	return nil
}

func (_c *PinnedCategoryCreate) sqlSave(ctx context.Context) (*PinnedCategory, error) {
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
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PinnedCategoryCreate) createSpec() (*PinnedCategory, *sqlgraph.CreateSpec) {
	var (
		_node = &PinnedCategory{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(pinnedcategory.Table, sqlgraph.NewFieldSpec(pinnedcategory.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.CategoryID(); ok {
		_spec.SetField(pinnedcategory.FieldCategoryID, field.TypeString, value)
		_node.CategoryID = value
	}
	if value, ok := _c.mutation.PinnedAt(); ok {
		_spec.SetField(pinnedcategory.FieldPinnedAt, field.TypeTime, value)
		_node.PinnedAt = value
	}
	return _node, _spec
}

// PinnedCategoryCreateBulk is the builder for creating many PinnedCategory entities in bulk.
type PinnedCategoryCreateBulk struct {
	config
	err      error
	builders []*PinnedCategoryCreate
}

// Save creates the PinnedCategory entities in the database.
func (_c *PinnedCategoryCreateBulk) Save(ctx context.Context) ([]*PinnedCategory, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PinnedCategory, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PinnedCategoryMutation)
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
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
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
func (_c *PinnedCategoryCreateBulk) SaveX(ctx context.Context) []*PinnedCategory {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PinnedCategoryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PinnedCategoryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
