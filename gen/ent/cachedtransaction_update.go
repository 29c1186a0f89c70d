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
	"github.com/communityhub/mobilecore/gen/ent/cachedtransaction"
	"github.com/communityhub/mobilecore/gen/ent/predicate"
)

// CachedTransactionUpdate is the builder for updating CachedTransaction entities.
type CachedTransactionUpdate struct {
	config
	hooks    []Hook
	mutation *CachedTransactionMutation
}

// Where appends a list predicates to the CachedTransactionUpdate builder.
func (_u *CachedTransactionUpdate) Where(ps ...predicate.CachedTransaction) *CachedTransactionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetKind sets the "kind" field.
func (_u *CachedTransactionUpdate) SetKind(v string) *CachedTransactionUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *CachedTransactionUpdate) SetNillableKind(v *string) *CachedTransactionUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetSubcategoryID sets the "subcategory_id" field.
func (_u *CachedTransactionUpdate) SetSubcategoryID(v string) *CachedTransactionUpdate {
	_u.mutation.SetSubcategoryID(v)
	return _u
}

// SetNillableSubcategoryID sets the "subcategory_id" field if the given value is not nil.
func (_u *CachedTransactionUpdate) SetNillableSubcategoryID(v *string) *CachedTransactionUpdate {
	if v != nil {
		_u.SetSubcategoryID(*v)
	}
	return _u
}

// ClearSubcategoryID clears the value of the "subcategory_id" field.
func (_u *CachedTransactionUpdate) ClearSubcategoryID() *CachedTransactionUpdate {
	_u.mutation.ClearSubcategoryID()
	return _u
}

// SetTitle sets the "title" field.
func (_u *CachedTransactionUpdate) SetTitle(v string) *CachedTransactionUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *CachedTransactionUpdate) SetNillableTitle(v *string) *CachedTransactionUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// ClearTitle clears the value of the "title" field.
func (_u *CachedTransactionUpdate) ClearTitle() *CachedTransactionUpdate {
	_u.mutation.ClearTitle()
	return _u
}

// SetAmount sets the "amount" field.
func (_u *CachedTransactionUpdate) SetAmount(v float64) *CachedTransactionUpdate {
	_u.mutation.ResetAmount()
	_u.mutation.SetAmount(v)
	return _u
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_u *CachedTransactionUpdate) SetNillableAmount(v *float64) *CachedTransactionUpdate {
	if v != nil {
		_u.SetAmount(*v)
	}
	return _u
}

// AddAmount adds value to the "amount" field.
func (_u *CachedTransactionUpdate) AddAmount(v float64) *CachedTransactionUpdate {
	_u.mutation.AddAmount(v)
	return _u
}

// SetCurrencyCode sets the "currency_code" field.
func (_u *CachedTransactionUpdate) SetCurrencyCode(v string) *CachedTransactionUpdate {
	_u.mutation.SetCurrencyCode(v)
	return _u
}

// SetNillableCurrencyCode sets the "currency_code" field if the given value is not nil.
func (_u *CachedTransactionUpdate) SetNillableCurrencyCode(v *string) *CachedTransactionUpdate {
	if v != nil {
		_u.SetCurrencyCode(*v)
	}
	return _u
}

// ClearCurrencyCode clears the value of the "currency_code" field.
func (_u *CachedTransactionUpdate) ClearCurrencyCode() *CachedTransactionUpdate {
	_u.mutation.ClearCurrencyCode()
	return _u
}

// SetTxDate sets the "tx_date" field.
func (_u *CachedTransactionUpdate) SetTxDate(v time.Time) *CachedTransactionUpdate {
	_u.mutation.SetTxDate(v)
	return _u
}

// SetNillableTxDate sets the "tx_date" field if the given value is not nil.
func (_u *CachedTransactionUpdate) SetNillableTxDate(v *time.Time) *CachedTransactionUpdate {
	if v != nil {
		_u.SetTxDate(*v)
	}
	return _u
}

// SetRecordedBy sets the "recorded_by" field.
func (_u *CachedTransactionUpdate) SetRecordedBy(v string) *CachedTransactionUpdate {
	_u.mutation.SetRecordedBy(v)
	return _u
}

// SetNillableRecordedBy sets the "recorded_by" field if the given value is not nil.
func (_u *CachedTransactionUpdate) SetNillableRecordedBy(v *string) *CachedTransactionUpdate {
	if v != nil {
		_u.SetRecordedBy(*v)
	}
	return _u
}

// ClearRecordedBy clears the value of the "recorded_by" field.
func (_u *CachedTransactionUpdate) ClearRecordedBy() *CachedTransactionUpdate {
	_u.mutation.ClearRecordedBy()
	return _u
}

// SetNote sets the "note" field.
func (_u *CachedTransactionUpdate) SetNote(v string) *CachedTransactionUpdate {
	_u.mutation.SetNote(v)
	return _u
}

// SetNillableNote sets the "note" field if the given value is not nil.
func (_u *CachedTransactionUpdate) SetNillableNote(v *string) *CachedTransactionUpdate {
	if v != nil {
		_u.SetNote(*v)
	}
	return _u
}

// ClearNote clears the value of the "note" field.
func (_u *CachedTransactionUpdate) ClearNote() *CachedTransactionUpdate {
	_u.mutation.ClearNote()
	return _u
}

// SetPosition sets the "position" field.
func (_u *CachedTransactionUpdate) SetPosition(v int) *CachedTransactionUpdate {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *CachedTransactionUpdate) SetNillablePosition(v *int) *CachedTransactionUpdate {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *CachedTransactionUpdate) AddPosition(v int) *CachedTransactionUpdate {
	_u.mutation.AddPosition(v)
	return _u
}

// SetStoredAt sets the "stored_at" field.
func (_u *CachedTransactionUpdate) SetStoredAt(v time.Time) *CachedTransactionUpdate {
	_u.mutation.SetStoredAt(v)
	return _u
}

// SetNillableStoredAt sets the "stored_at" field if the given value is not nil.
func (_u *CachedTransactionUpdate) SetNillableStoredAt(v *time.Time) *CachedTransactionUpdate {
	if v != nil {
		_u.SetStoredAt(*v)
	}
	return _u
}

// Mutation returns the CachedTransactionMutation object of the builder.
func (_u *CachedTransactionUpdate) Mutation() *CachedTransactionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CachedTransactionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CachedTransactionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CachedTransactionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CachedTransactionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CachedTransactionUpdate) check() error {
	if v, ok := _u.mutation.Kind(); ok {
		if err := cachedtransaction.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "CachedTransaction.kind": %w`, err)}
		}
	}
	return nil
}

func (_u *CachedTransactionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(cachedtransaction.Table, cachedtransaction.Columns, sqlgraph.NewFieldSpec(cachedtransaction.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(cachedtransaction.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.SubcategoryID(); ok {
		_spec.SetField(cachedtransaction.FieldSubcategoryID, field.TypeString, value)
	}
	if _u.mutation.SubcategoryIDCleared() {
		_spec.ClearField(cachedtransaction.FieldSubcategoryID, field.TypeString)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(cachedtransaction.FieldTitle, field.TypeString, value)
	}
	if _u.mutation.TitleCleared() {
		_spec.ClearField(cachedtransaction.FieldTitle, field.TypeString)
	}
	if value, ok := _u.mutation.Amount(); ok {
		_spec.SetField(cachedtransaction.FieldAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAmount(); ok {
		_spec.AddField(cachedtransaction.FieldAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CurrencyCode(); ok {
		_spec.SetField(cachedtransaction.FieldCurrencyCode, field.TypeString, value)
	}
	if _u.mutation.CurrencyCodeCleared() {
		_spec.ClearField(cachedtransaction.FieldCurrencyCode, field.TypeString)
	}
	if value, ok := _u.mutation.TxDate(); ok {
		_spec.SetField(cachedtransaction.FieldTxDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.RecordedBy(); ok {
		_spec.SetField(cachedtransaction.FieldRecordedBy, field.TypeString, value)
	}
	if _u.mutation.RecordedByCleared() {
		_spec.ClearField(cachedtransaction.FieldRecordedBy, field.TypeString)
	}
	if value, ok := _u.mutation.Note(); ok {
		_spec.SetField(cachedtransaction.FieldNote, field.TypeString, value)
	}
	if _u.mutation.NoteCleared() {
		_spec.ClearField(cachedtransaction.FieldNote, field.TypeString)
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(cachedtransaction.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(cachedtransaction.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StoredAt(); ok {
		_spec.SetField(cachedtransaction.FieldStoredAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{cachedtransaction.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CachedTransactionUpdateOne is the builder for updating a single CachedTransaction entity.
type CachedTransactionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CachedTransactionMutation
}

// SetKind sets the "kind" field.
func (_u *CachedTransactionUpdateOne) SetKind(v string) *CachedTransactionUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *CachedTransactionUpdateOne) SetNillableKind(v *string) *CachedTransactionUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetSubcategoryID sets the "subcategory_id" field.
func (_u *CachedTransactionUpdateOne) SetSubcategoryID(v string) *CachedTransactionUpdateOne {
	_u.mutation.SetSubcategoryID(v)
	return _u
}

// SetNillableSubcategoryID sets the "subcategory_id" field if the given value is not nil.
func (_u *CachedTransactionUpdateOne) SetNillableSubcategoryID(v *string) *CachedTransactionUpdateOne {
	if v != nil {
		_u.SetSubcategoryID(*v)
	}
	return _u
}

// ClearSubcategoryID clears the value of the "subcategory_id" field.
func (_u *CachedTransactionUpdateOne) ClearSubcategoryID() *CachedTransactionUpdateOne {
	_u.mutation.ClearSubcategoryID()
	return _u
}

// SetTitle sets the "title" field.
func (_u *CachedTransactionUpdateOne) SetTitle(v string) *CachedTransactionUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *CachedTransactionUpdateOne) SetNillableTitle(v *string) *CachedTransactionUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// ClearTitle clears the value of the "title" field.
func (_u *CachedTransactionUpdateOne) ClearTitle() *CachedTransactionUpdateOne {
	_u.mutation.ClearTitle()
	return _u
}

// SetAmount sets the "amount" field.
func (_u *CachedTransactionUpdateOne) SetAmount(v float64) *CachedTransactionUpdateOne {
	_u.mutation.ResetAmount()
	_u.mutation.SetAmount(v)
	return _u
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_u *CachedTransactionUpdateOne) SetNillableAmount(v *float64) *CachedTransactionUpdateOne {
	if v != nil {
		_u.SetAmount(*v)
	}
	return _u
}

// AddAmount adds value to the "amount" field.
func (_u *CachedTransactionUpdateOne) AddAmount(v float64) *CachedTransactionUpdateOne {
	_u.mutation.AddAmount(v)
	return _u
}

// SetCurrencyCode sets the "currency_code" field.
func (_u *CachedTransactionUpdateOne) SetCurrencyCode(v string) *CachedTransactionUpdateOne {
	_u.mutation.SetCurrencyCode(v)
	return _u
}

// SetNillableCurrencyCode sets the "currency_code" field if the given value is not nil.
func (_u *CachedTransactionUpdateOne) SetNillableCurrencyCode(v *string) *CachedTransactionUpdateOne {
	if v != nil {
		_u.SetCurrencyCode(*v)
	}
	return _u
}

// ClearCurrencyCode clears the value of the "currency_code" field.
func (_u *CachedTransactionUpdateOne) ClearCurrencyCode() *CachedTransactionUpdateOne {
	_u.mutation.ClearCurrencyCode()
	return _u
}

// SetTxDate sets the "tx_date" field.
func (_u *CachedTransactionUpdateOne) SetTxDate(v time.Time) *CachedTransactionUpdateOne {
	_u.mutation.SetTxDate(v)
	return _u
}

// SetNillableTxDate sets the "tx_date" field if the given value is not nil.
func (_u *CachedTransactionUpdateOne) SetNillableTxDate(v *time.Time) *CachedTransactionUpdateOne {
	if v != nil {
		_u.SetTxDate(*v)
	}
	return _u
}

// SetRecordedBy sets the "recorded_by" field.
func (_u *CachedTransactionUpdateOne) SetRecordedBy(v string) *CachedTransactionUpdateOne {
	_u.mutation.SetRecordedBy(v)
	return _u
}

// SetNillableRecordedBy sets the "recorded_by" field if the given value is not nil.
func (_u *CachedTransactionUpdateOne) SetNillableRecordedBy(v *string) *CachedTransactionUpdateOne {
	if v != nil {
		_u.SetRecordedBy(*v)
	}
	return _u
}

// ClearRecordedBy clears the value of the "recorded_by" field.
func (_u *CachedTransactionUpdateOne) ClearRecordedBy() *CachedTransactionUpdateOne {
	_u.mutation.ClearRecordedBy()
	return _u
}

// SetNote sets the "note" field.
func (_u *CachedTransactionUpdateOne) SetNote(v string) *CachedTransactionUpdateOne {
	_u.mutation.SetNote(v)
	return _u
}

// SetNillableNote sets the "note" field if the given value is not nil.
func (_u *CachedTransactionUpdateOne) SetNillableNote(v *string) *CachedTransactionUpdateOne {
	if v != nil {
		_u.SetNote(*v)
	}
	return _u
}

// ClearNote clears the value of the "note" field.
func (_u *CachedTransactionUpdateOne) ClearNote() *CachedTransactionUpdateOne {
	_u.mutation.ClearNote()
	return _u
}

// SetPosition sets the "position" field.
func (_u *CachedTransactionUpdateOne) SetPosition(v int) *CachedTransactionUpdateOne {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *CachedTransactionUpdateOne) SetNillablePosition(v *int) *CachedTransactionUpdateOne {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *CachedTransactionUpdateOne) AddPosition(v int) *CachedTransactionUpdateOne {
	_u.mutation.AddPosition(v)
	return _u
}

// SetStoredAt sets the "stored_at" field.
func (_u *CachedTransactionUpdateOne) SetStoredAt(v time.Time) *CachedTransactionUpdateOne {
	_u.mutation.SetStoredAt(v)
	return _u
}

// SetNillableStoredAt sets the "stored_at" field if the given value is not nil.
func (_u *CachedTransactionUpdateOne) SetNillableStoredAt(v *time.Time) *CachedTransactionUpdateOne {
	if v != nil {
		_u.SetStoredAt(*v)
	}
	return _u
}

// Mutation returns the CachedTransactionMutation object of the builder.
func (_u *CachedTransactionUpdateOne) Mutation() *CachedTransactionMutation {
	return _u.mutation
}

// Where appends a list predicates to the CachedTransactionUpdate builder.
func (_u *CachedTransactionUpdateOne) Where(ps ...predicate.CachedTransaction) *CachedTransactionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CachedTransactionUpdateOne) Select(field string, fields ...string) *CachedTransactionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CachedTransaction entity.
func (_u *CachedTransactionUpdateOne) Save(ctx context.Context) (*CachedTransaction, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CachedTransactionUpdateOne) SaveX(ctx context.Context) *CachedTransaction {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CachedTransactionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CachedTransactionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CachedTransactionUpdateOne) check() error {
	if v, ok := _u.mutation.Kind(); ok {
		if err := cachedtransaction.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "CachedTransaction.kind": %w`, err)}
		}
	}
	return nil
}

func (_u *CachedTransactionUpdateOne) sqlSave(ctx context.Context) (_node *CachedTransaction, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(cachedtransaction.Table, cachedtransaction.Columns, sqlgraph.NewFieldSpec(cachedtransaction.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CachedTransaction.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, cachedtransaction.FieldID)
		for _, f := range fields {
			if !cachedtransaction.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != cachedtransaction.FieldID {
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
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(cachedtransaction.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.SubcategoryID(); ok {
		_spec.SetField(cachedtransaction.FieldSubcategoryID, field.TypeString, value)
	}
	if _u.mutation.SubcategoryIDCleared() {
		_spec.ClearField(cachedtransaction.FieldSubcategoryID, field.TypeString)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(cachedtransaction.FieldTitle, field.TypeString, value)
	}
	if _u.mutation.TitleCleared() {
		_spec.ClearField(cachedtransaction.FieldTitle, field.TypeString)
	}
	if value, ok := _u.mutation.Amount(); ok {
		_spec.SetField(cachedtransaction.FieldAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAmount(); ok {
		_spec.AddField(cachedtransaction.FieldAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CurrencyCode(); ok {
		_spec.SetField(cachedtransaction.FieldCurrencyCode, field.TypeString, value)
	}
	if _u.mutation.CurrencyCodeCleared() {
		_spec.ClearField(cachedtransaction.FieldCurrencyCode, field.TypeString)
	}
	if value, ok := _u.mutation.TxDate(); ok {
		_spec.SetField(cachedtransaction.FieldTxDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.RecordedBy(); ok {
		_spec.SetField(cachedtransaction.FieldRecordedBy, field.TypeString, value)
	}
	if _u.mutation.RecordedByCleared() {
		_spec.ClearField(cachedtransaction.FieldRecordedBy, field.TypeString)
	}
	if value, ok := _u.mutation.Note(); ok {
		_spec.SetField(cachedtransaction.FieldNote, field.TypeString, value)
	}
	if _u.mutation.NoteCleared() {
		_spec.ClearField(cachedtransaction.FieldNote, field.TypeString)
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(cachedtransaction.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(cachedtransaction.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StoredAt(); ok {
		_spec.SetField(cachedtransaction.FieldStoredAt, field.TypeTime, value)
	}
	_node = &CachedTransaction{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{cachedtransaction.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
