// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/communityhub/mobilecore/gen/ent/cachedtransaction"
)

// CachedTransactionCreate is the builder for creating a CachedTransaction entity.
type CachedTransactionCreate struct {
	config
	mutation *CachedTransactionMutation
	hooks    []Hook
}

// SetKind sets the "kind" field.
func (_c *CachedTransactionCreate) SetKind(v string) *CachedTransactionCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetSubcategoryID sets the "subcategory_id" field.
func (_c *CachedTransactionCreate) SetSubcategoryID(v string) *CachedTransactionCreate {
	_c.mutation.SetSubcategoryID(v)
	return _c
}

// SetNillableSubcategoryID sets the "subcategory_id" field if the given value is not nil.
func (_c *CachedTransactionCreate) SetNillableSubcategoryID(v *string) *CachedTransactionCreate {
	if v != nil {
		_c.SetSubcategoryID(*v)
	}
	return _c
}

// SetTitle sets the "title" field.
func (_c *CachedTransactionCreate) SetTitle(v string) *CachedTransactionCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_c *CachedTransactionCreate) SetNillableTitle(v *string) *CachedTransactionCreate {
	if v != nil {
		_c.SetTitle(*v)
	}
	return _c
}

// SetAmount sets the "amount" field.
func (_c *CachedTransactionCreate) SetAmount(v float64) *CachedTransactionCreate {
	_c.mutation.SetAmount(v)
	return _c
}

// SetCurrencyCode sets the "currency_code" field.
func (_c *CachedTransactionCreate) SetCurrencyCode(v string) *CachedTransactionCreate {
	_c.mutation.SetCurrencyCode(v)
	return _c
}

// SetNillableCurrencyCode sets the "currency_code" field if the given value is not nil.
func (_c *CachedTransactionCreate) SetNillableCurrencyCode(v *string) *CachedTransactionCreate {
	if v != nil {
		_c.SetCurrencyCode(*v)
	}
	return _c
}

// SetTxDate sets the "tx_date" field.
func (_c *CachedTransactionCreate) SetTxDate(v time.Time) *CachedTransactionCreate {
	_c.mutation.SetTxDate(v)
	return _c
}

// SetRecordedBy sets the "recorded_by" field.
func (_c *CachedTransactionCreate) SetRecordedBy(v string) *CachedTransactionCreate {
	_c.mutation.SetRecordedBy(v)
	return _c
}

// SetNillableRecordedBy sets the "recorded_by" field if the given value is not nil.
func (_c *CachedTransactionCreate) SetNillableRecordedBy(v *string) *CachedTransactionCreate {
	if v != nil {
		_c.SetRecordedBy(*v)
	}
	return _c
}

// SetNote sets the "note" field.
func (_c *CachedTransactionCreate) SetNote(v string) *CachedTransactionCreate {
	_c.mutation.SetNote(v)
	return _c
}

// SetNillableNote sets the "note" field if the given value is not nil.
func (_c *CachedTransactionCreate) SetNillableNote(v *string) *CachedTransactionCreate {
	if v != nil {
		_c.SetNote(*v)
	}
	return _c
}

// SetPosition sets the "position" field.
func (_c *CachedTransactionCreate) SetPosition(v int) *CachedTransactionCreate {
	_c.mutation.SetPosition(v)
	return _c
}

// SetStoredAt sets the "stored_at" field.
func (_c *CachedTransactionCreate) SetStoredAt(v time.Time) *CachedTransactionCreate {
	_c.mutation.SetStoredAt(v)
	return _c
}

// SetNillableStoredAt sets the "stored_at" field if the given value is not nil.
func (_c *CachedTransactionCreate) SetNillableStoredAt(v *time.Time) *CachedTransactionCreate {
	if v != nil {
		_c.SetStoredAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CachedTransactionCreate) SetID(v string) *CachedTransactionCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the CachedTransactionMutation object of the builder.
func (_c *CachedTransactionCreate) Mutation() *CachedTransactionMutation {
	return _c.mutation
}

// Save creates the CachedTransaction in the database.
func (_c *CachedTransactionCreate) Save(ctx context.Context) (*CachedTransaction, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CachedTransactionCreate) SaveX(ctx context.Context) *CachedTransaction {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CachedTransactionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CachedTransactionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CachedTransactionCreate) defaults() {
	if _, ok := _c.mutation.StoredAt(); !ok {
		v := cachedtransaction.DefaultStoredAt()
		_c.mutation.SetStoredAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CachedTransactionCreate) check() error {
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "CachedTransaction.kind"`)}
	}
	if v, ok := _c.mutation.Kind(); ok {
		if err := cachedtransaction.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "CachedTransaction.kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Amount(); !ok {
		return &ValidationError{Name: "amount", err: errors.New(`ent: missing required field "CachedTransaction.amount"`)}
	}
	if _, ok := _c.mutation.TxDate(); !ok {
		return &ValidationError{Name: "tx_date", err: errors.New(`ent: missing required field "CachedTransaction.tx_date"`)}
	}
	if _, ok := _c.mutation.Position(); !ok {
		return &ValidationError{Name: "position", err: errors.New(`ent: missing required field "CachedTransaction.position"`)}
	}
	if _, ok := _c.mutation.StoredAt(); !ok {
		return &ValidationError{Name: "stored_at", err: errors.New(`ent: missing required field "CachedTransaction.stored_at"`)}
	}
	if v, ok := _c.mutation.ID(); ok {
		if err := cachedtransaction.IDValidator(v); err != nil {
			return &ValidationError{Name: "id", err: fmt.Errorf(`ent: validator failed for field "CachedTransaction.id": %w`, err)}
		}
	}
	return nil
}

func (_c *CachedTransactionCreate) sqlSave(ctx context.Context) (*CachedTransaction, error) {
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
			return nil, fmt.Errorf("unexpected CachedTransaction.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CachedTransactionCreate) createSpec() (*CachedTransaction, *sqlgraph.CreateSpec) {
	var (
		_node = &CachedTransaction{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(cachedtransaction.Table, sqlgraph.NewFieldSpec(cachedtransaction.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(cachedtransaction.FieldKind, field.TypeString, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.SubcategoryID(); ok {
		_spec.SetField(cachedtransaction.FieldSubcategoryID, field.TypeString, value)
		_node.SubcategoryID = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(cachedtransaction.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Amount(); ok {
		_spec.SetField(cachedtransaction.FieldAmount, field.TypeFloat64, value)
		_node.Amount = value
	}
	if value, ok := _c.mutation.CurrencyCode(); ok {
		_spec.SetField(cachedtransaction.FieldCurrencyCode, field.TypeString, value)
		_node.CurrencyCode = value
	}
	if value, ok := _c.mutation.TxDate(); ok {
		_spec.SetField(cachedtransaction.FieldTxDate, field.TypeTime, value)
		_node.TxDate = value
	}
	if value, ok := _c.mutation.RecordedBy(); ok {
		_spec.SetField(cachedtransaction.FieldRecordedBy, field.TypeString, value)
		_node.RecordedBy = value
	}
	if value, ok := _c.mutation.Note(); ok {
		_spec.SetField(cachedtransaction.FieldNote, field.TypeString, value)
		_node.Note = value
	}
	if value, ok := _c.mutation.Position(); ok {
		_spec.SetField(cachedtransaction.FieldPosition, field.TypeInt, value)
		_node.Position = value
	}
	if value, ok := _c.mutation.StoredAt(); ok {
		_spec.SetField(cachedtransaction.FieldStoredAt, field.TypeTime, value)
		_node.StoredAt = value
	}
	return _node, _spec
}

// CachedTransactionCreateBulk is the builder for creating many CachedTransaction entities in bulk.
type CachedTransactionCreateBulk struct {
	config
	err      error
	builders []*CachedTransactionCreate
}

// Save creates the CachedTransaction entities in the database.
func (_c *CachedTransactionCreateBulk) Save(ctx context.Context) ([]*CachedTransaction, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CachedTransaction, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CachedTransactionMutation)
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
func (_c *CachedTransactionCreateBulk) SaveX(ctx context.Context) []*CachedTransaction {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CachedTransactionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CachedTransactionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
