// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/communityhub/mobilecore/gen/ent/cachedgalleryimage"
	"github.com/communityhub/mobilecore/gen/ent/cachednewsitem"
	"github.com/communityhub/mobilecore/gen/ent/cachedtransaction"
	"github.com/communityhub/mobilecore/gen/ent/pinnedcategory"
	"github.com/communityhub/mobilecore/gen/ent/predicate"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeCachedGalleryImage = "CachedGalleryImage"
	TypeCachedNewsItem     = "CachedNewsItem"
	TypeCachedTransaction  = "CachedTransaction"
	TypePinnedCategory     = "PinnedCategory"
)

// CachedGalleryImageMutation represents an operation that mutates the CachedGalleryImage nodes in the graph.
type CachedGalleryImageMutation struct {
	config
	op            Op
	typ           string
	id            *string
	title         *string
	url           *string
	thumbnail_url *string
	status        *string
	uploaded_by   *string
	uploaded_at   *time.Time
	position      *int
	addposition   *int
	stored_at     *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*CachedGalleryImage, error)
	predicates    []predicate.CachedGalleryImage
}

var _ ent.Mutation = (*CachedGalleryImageMutation)(nil)

// cachedgalleryimageOption allows management of the mutation configuration using functional options.
type cachedgalleryimageOption func(*CachedGalleryImageMutation)

// newCachedGalleryImageMutation creates new mutation for the CachedGalleryImage entity.
func newCachedGalleryImageMutation(c config, op Op, opts ...cachedgalleryimageOption) *CachedGalleryImageMutation {
	m := &CachedGalleryImageMutation{
		config:        c,
		op:            op,
		typ:           TypeCachedGalleryImage,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCachedGalleryImageID sets the ID field of the mutation.
func withCachedGalleryImageID(id string) cachedgalleryimageOption {
	return func(m *CachedGalleryImageMutation) {
		var (
			err   error
			once  sync.Once
			value *CachedGalleryImage
		)
		m.oldValue = func(ctx context.Context) (*CachedGalleryImage, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CachedGalleryImage.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCachedGalleryImage sets the old CachedGalleryImage of the mutation.
func withCachedGalleryImage(node *CachedGalleryImage) cachedgalleryimageOption {
	return func(m *CachedGalleryImageMutation) {
		m.oldValue = func(context.Context) (*CachedGalleryImage, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CachedGalleryImageMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CachedGalleryImageMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of CachedGalleryImage entities.
func (m *CachedGalleryImageMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CachedGalleryImageMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CachedGalleryImageMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CachedGalleryImage.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTitle sets the "title" field.
func (m *CachedGalleryImageMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *CachedGalleryImageMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the CachedGalleryImage entity.
// If the CachedGalleryImage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CachedGalleryImageMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ClearTitle clears the value of the "title" field.
func (m *CachedGalleryImageMutation) ClearTitle() {
	m.title = nil
	m.clearedFields[cachedgalleryimage.FieldTitle] = struct{}{}
}

// TitleCleared returns if the "title" field was cleared in this mutation.
func (m *CachedGalleryImageMutation) TitleCleared() bool {
	_, ok := m.clearedFields[cachedgalleryimage.FieldTitle]
	return ok
}

// ResetTitle resets all changes to the "title" field.
func (m *CachedGalleryImageMutation) ResetTitle() {
	m.title = nil
	delete(m.clearedFields, cachedgalleryimage.FieldTitle)
}

// SetURL sets the "url" field.
func (m *CachedGalleryImageMutation) SetURL(s string) {
	m.url = &s
}

// URL returns the value of the "url" field in the mutation.
func (m *CachedGalleryImageMutation) URL() (r string, exists bool) {
	v := m.url
	if v == nil {
		return
	}
	return *v, true
}

// OldURL returns the old "url" field's value of the CachedGalleryImage entity.
// If the CachedGalleryImage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CachedGalleryImageMutation) OldURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldURL: %w", err)
	}
	return oldValue.URL, nil
}

// ResetURL resets all changes to the "url" field.
func (m *CachedGalleryImageMutation) ResetURL() {
	m.url = nil
}

// SetThumbnailURL sets the "thumbnail_url" field.
func (m *CachedGalleryImageMutation) SetThumbnailURL(s string) {
	m.thumbnail_url = &s
}

// ThumbnailURL returns the value of the "thumbnail_url" field in the mutation.
func (m *CachedGalleryImageMutation) ThumbnailURL() (r string, exists bool) {
	v := m.thumbnail_url
	if v == nil {
		return
	}
	return *v, true
}

// OldThumbnailURL returns the old "thumbnail_url" field's value of the CachedGalleryImage entity.
// If the CachedGalleryImage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CachedGalleryImageMutation) OldThumbnailURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldThumbnailURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldThumbnailURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldThumbnailURL: %w", err)
	}
	return oldValue.ThumbnailURL, nil
}

// ClearThumbnailURL clears the value of the "thumbnail_url" field.
func (m *CachedGalleryImageMutation) ClearThumbnailURL() {
	m.thumbnail_url = nil
	m.clearedFields[cachedgalleryimage.FieldThumbnailURL] = struct{}{}
}

// ThumbnailURLCleared returns if the "thumbnail_url" field was cleared in this mutation.
func (m *CachedGalleryImageMutation) ThumbnailURLCleared() bool {
	_, ok := m.clearedFields[cachedgalleryimage.FieldThumbnailURL]
	return ok
}

// ResetThumbnailURL resets all changes to the "thumbnail_url" field.
func (m *CachedGalleryImageMutation) ResetThumbnailURL() {
	m.thumbnail_url = nil
	delete(m.clearedFields, cachedgalleryimage.FieldThumbnailURL)
}

// SetStatus sets the "status" field.
func (m *CachedGalleryImageMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *CachedGalleryImageMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the CachedGalleryImage entity.
// If the CachedGalleryImage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CachedGalleryImageMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ClearStatus clears the value of the "status" field.
func (m *CachedGalleryImageMutation) ClearStatus() {
	m.status = nil
	m.clearedFields[cachedgalleryimage.FieldStatus] = struct{}{}
}

// StatusCleared returns if the "status" field was cleared in this mutation.
func (m *CachedGalleryImageMutation) StatusCleared() bool {
	_, ok := m.clearedFields[cachedgalleryimage.FieldStatus]
	return ok
}

// ResetStatus resets all changes to the "status" field.
func (m *CachedGalleryImageMutation) ResetStatus() {
	m.status = nil
	delete(m.clearedFields, cachedgalleryimage.FieldStatus)
}

// SetUploadedBy sets the "uploaded_by" field.
func (m *CachedGalleryImageMutation) SetUploadedBy(s string) {
	m.uploaded_by = &s
}

// UploadedBy returns the value of the "uploaded_by" field in the mutation.
func (m *CachedGalleryImageMutation) UploadedBy() (r string, exists bool) {
	v := m.uploaded_by
	if v == nil {
		return
	}
	return *v, true
}

// OldUploadedBy returns the old "uploaded_by" field's value of the CachedGalleryImage entity.
// If the CachedGalleryImage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CachedGalleryImageMutation) OldUploadedBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUploadedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUploadedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUploadedBy: %w", err)
	}
	return oldValue.UploadedBy, nil
}

// ClearUploadedBy clears the value of the "uploaded_by" field.
func (m *CachedGalleryImageMutation) ClearUploadedBy() {
	m.uploaded_by = nil
	m.clearedFields[cachedgalleryimage.FieldUploadedBy] = struct{}{}
}

// UploadedByCleared returns if the "uploaded_by" field was cleared in this mutation.
func (m *CachedGalleryImageMutation) UploadedByCleared() bool {
	_, ok := m.clearedFields[cachedgalleryimage.FieldUploadedBy]
	return ok
}

// ResetUploadedBy resets all changes to the "uploaded_by" field.
func (m *CachedGalleryImageMutation) ResetUploadedBy() {
	m.uploaded_by = nil
	delete(m.clearedFields, cachedgalleryimage.FieldUploadedBy)
}

// SetUploadedAt sets the "uploaded_at" field.
func (m *CachedGalleryImageMutation) SetUploadedAt(t time.Time) {
	m.uploaded_at = &t
}

// UploadedAt returns the value of the "uploaded_at" field in the mutation.
func (m *CachedGalleryImageMutation) UploadedAt() (r time.Time, exists bool) {
	v := m.uploaded_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUploadedAt returns the old "uploaded_at" field's value of the CachedGalleryImage entity.
// If the CachedGalleryImage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CachedGalleryImageMutation) OldUploadedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUploadedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUploadedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUploadedAt: %w", err)
	}
	return oldValue.UploadedAt, nil
}

// ResetUploadedAt resets all changes to the "uploaded_at" field.
func (m *CachedGalleryImageMutation) ResetUploadedAt() {
	m.uploaded_at = nil
}

// SetPosition sets the "position" field.
func (m *CachedGalleryImageMutation) SetPosition(i int) {
	m.position = &i
	m.addposition = nil
}

// Position returns the value of the "position" field in the mutation.
func (m *CachedGalleryImageMutation) Position() (r int, exists bool) {
	v := m.position
	if v == nil {
		return
	}
	return *v, true
}

// OldPosition returns the old "position" field's value of the CachedGalleryImage entity.
// If the CachedGalleryImage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CachedGalleryImageMutation) OldPosition(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPosition is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPosition requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPosition: %w", err)
	}
	return oldValue.Position, nil
}

// AddPosition adds i to the "position" field.
func (m *CachedGalleryImageMutation) AddPosition(i int) {
	if m.addposition != nil {
		*m.addposition += i
	} else {
		m.addposition = &i
	}
}

// AddedPosition returns the value that was added to the "position" field in this mutation.
func (m *CachedGalleryImageMutation) AddedPosition() (r int, exists bool) {
	v := m.addposition
	if v == nil {
		return
	}
	return *v, true
}

// ResetPosition resets all changes to the "position" field.
func (m *CachedGalleryImageMutation) ResetPosition() {
	m.position = nil
	m.addposition = nil
}

// SetStoredAt sets the "stored_at" field.
func (m *CachedGalleryImageMutation) SetStoredAt(t time.Time) {
	m.stored_at = &t
}

// StoredAt returns the value of the "stored_at" field in the mutation.
func (m *CachedGalleryImageMutation) StoredAt() (r time.Time, exists bool) {
	v := m.stored_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStoredAt returns the old "stored_at" field's value of the CachedGalleryImage entity.
// If the CachedGalleryImage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CachedGalleryImageMutation) OldStoredAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStoredAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStoredAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStoredAt: %w", err)
	}
	return oldValue.StoredAt, nil
}

// ResetStoredAt resets all changes to the "stored_at" field.
func (m *CachedGalleryImageMutation) ResetStoredAt() {
	m.stored_at = nil
}

// Where appends a list predicates to the CachedGalleryImageMutation builder.
func (m *CachedGalleryImageMutation) Where(ps ...predicate.CachedGalleryImage) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CachedGalleryImageMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CachedGalleryImageMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CachedGalleryImage, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CachedGalleryImageMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CachedGalleryImageMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CachedGalleryImage).
func (m *CachedGalleryImageMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CachedGalleryImageMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.title != nil {
		fields = append(fields, cachedgalleryimage.FieldTitle)
	}
	if m.url != nil {
		fields = append(fields, cachedgalleryimage.FieldURL)
	}
	if m.thumbnail_url != nil {
		fields = append(fields, cachedgalleryimage.FieldThumbnailURL)
	}
	if m.status != nil {
		fields = append(fields, cachedgalleryimage.FieldStatus)
	}
	if m.uploaded_by != nil {
		fields = append(fields, cachedgalleryimage.FieldUploadedBy)
	}
	if m.uploaded_at != nil {
		fields = append(fields, cachedgalleryimage.FieldUploadedAt)
	}
	if m.position != nil {
		fields = append(fields, cachedgalleryimage.FieldPosition)
	}
	if m.stored_at != nil {
		fields = append(fields, cachedgalleryimage.FieldStoredAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CachedGalleryImageMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case cachedgalleryimage.FieldTitle:
		return m.Title()
	case cachedgalleryimage.FieldURL:
		return m.URL()
	case cachedgalleryimage.FieldThumbnailURL:
		return m.ThumbnailURL()
	case cachedgalleryimage.FieldStatus:
		return m.Status()
	case cachedgalleryimage.FieldUploadedBy:
		return m.UploadedBy()
	case cachedgalleryimage.FieldUploadedAt:
		return m.UploadedAt()
	case cachedgalleryimage.FieldPosition:
		return m.Position()
	case cachedgalleryimage.FieldStoredAt:
		return m.StoredAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CachedGalleryImageMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case cachedgalleryimage.FieldTitle:
		return m.OldTitle(ctx)
	case cachedgalleryimage.FieldURL:
		return m.OldURL(ctx)
	case cachedgalleryimage.FieldThumbnailURL:
		return m.OldThumbnailURL(ctx)
	case cachedgalleryimage.FieldStatus:
		return m.OldStatus(ctx)
	case cachedgalleryimage.FieldUploadedBy:
		return m.OldUploadedBy(ctx)
	case cachedgalleryimage.FieldUploadedAt:
		return m.OldUploadedAt(ctx)
	case cachedgalleryimage.FieldPosition:
		return m.OldPosition(ctx)
	case cachedgalleryimage.FieldStoredAt:
		return m.OldStoredAt(ctx)
	}
	return nil, fmt.Errorf("unknown CachedGalleryImage field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CachedGalleryImageMutation) SetField(name string, value ent.Value) error {
	switch name {
	case cachedgalleryimage.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case cachedgalleryimage.FieldURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetURL(v)
		return nil
	case cachedgalleryimage.FieldThumbnailURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetThumbnailURL(v)
		return nil
	case cachedgalleryimage.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case cachedgalleryimage.FieldUploadedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUploadedBy(v)
		return nil
	case cachedgalleryimage.FieldUploadedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUploadedAt(v)
		return nil
	case cachedgalleryimage.FieldPosition:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPosition(v)
		return nil
	case cachedgalleryimage.FieldStoredAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStoredAt(v)
		return nil
	}
	return fmt.Errorf("unknown CachedGalleryImage field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CachedGalleryImageMutation) AddedFields() []string {
	var fields []string
	if m.addposition != nil {
		fields = append(fields, cachedgalleryimage.FieldPosition)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CachedGalleryImageMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case cachedgalleryimage.FieldPosition:
		return m.AddedPosition()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CachedGalleryImageMutation) AddField(name string, value ent.Value) error {
	switch name {
	case cachedgalleryimage.FieldPosition:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPosition(v)
		return nil
	}
	return fmt.Errorf("unknown CachedGalleryImage numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CachedGalleryImageMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(cachedgalleryimage.FieldTitle) {
		fields = append(fields, cachedgalleryimage.FieldTitle)
	}
	if m.FieldCleared(cachedgalleryimage.FieldThumbnailURL) {
		fields = append(fields, cachedgalleryimage.FieldThumbnailURL)
	}
	if m.FieldCleared(cachedgalleryimage.FieldStatus) {
		fields = append(fields, cachedgalleryimage.FieldStatus)
	}
	if m.FieldCleared(cachedgalleryimage.FieldUploadedBy) {
		fields = append(fields, cachedgalleryimage.FieldUploadedBy)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CachedGalleryImageMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CachedGalleryImageMutation) ClearField(name string) error {
	switch name {
	case cachedgalleryimage.FieldTitle:
		m.ClearTitle()
		return nil
	case cachedgalleryimage.FieldThumbnailURL:
		m.ClearThumbnailURL()
		return nil
	case cachedgalleryimage.FieldStatus:
		m.ClearStatus()
		return nil
	case cachedgalleryimage.FieldUploadedBy:
		m.ClearUploadedBy()
		return nil
	}
	return fmt.Errorf("unknown CachedGalleryImage nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CachedGalleryImageMutation) ResetField(name string) error {
	switch name {
	case cachedgalleryimage.FieldTitle:
		m.ResetTitle()
		return nil
	case cachedgalleryimage.FieldURL:
		m.ResetURL()
		return nil
	case cachedgalleryimage.FieldThumbnailURL:
		m.ResetThumbnailURL()
		return nil
	case cachedgalleryimage.FieldStatus:
		m.ResetStatus()
		return nil
	case cachedgalleryimage.FieldUploadedBy:
		m.ResetUploadedBy()
		return nil
	case cachedgalleryimage.FieldUploadedAt:
		m.ResetUploadedAt()
		return nil
	case cachedgalleryimage.FieldPosition:
		m.ResetPosition()
		return nil
	case cachedgalleryimage.FieldStoredAt:
		m.ResetStoredAt()
		return nil
	}
	return fmt.Errorf("unknown CachedGalleryImage field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CachedGalleryImageMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CachedGalleryImageMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CachedGalleryImageMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CachedGalleryImageMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CachedGalleryImageMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CachedGalleryImageMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CachedGalleryImageMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown CachedGalleryImage unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CachedGalleryImageMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown CachedGalleryImage edge %s", name)
}

// CachedNewsItemMutation represents an operation that mutates the CachedNewsItem nodes in the graph.
type CachedNewsItemMutation struct {
	config
	op               Op
	typ              string
	id               *string
	title            *string
	summary          *string
	image_url        *string
	author           *string
	like_count       *int
	addlike_count    *int
	comment_count    *int
	addcomment_count *int
	published_at     *time.Time
	position         *int
	addposition      *int
	stored_at        *time.Time
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*CachedNewsItem, error)
	predicates       []predicate.CachedNewsItem
}

var _ ent.Mutation = (*CachedNewsItemMutation)(nil)

// cachednewsitemOption allows management of the mutation configuration using functional options.
type cachednewsitemOption func(*CachedNewsItemMutation)

// newCachedNewsItemMutation creates new mutation for the CachedNewsItem entity.
func newCachedNewsItemMutation(c config, op Op, opts ...cachednewsitemOption) *CachedNewsItemMutation {
	m := &CachedNewsItemMutation{
		config:        c,
		op:            op,
		typ:           TypeCachedNewsItem,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCachedNewsItemID sets the ID field of the mutation.
func withCachedNewsItemID(id string) cachednewsitemOption {
	return func(m *CachedNewsItemMutation) {
		var (
			err   error
			once  sync.Once
			value *CachedNewsItem
		)
		m.oldValue = func(ctx context.Context) (*CachedNewsItem, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CachedNewsItem.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCachedNewsItem sets the old CachedNewsItem of the mutation.
func withCachedNewsItem(node *CachedNewsItem) cachednewsitemOption {
	return func(m *CachedNewsItemMutation) {
		m.oldValue = func(context.Context) (*CachedNewsItem, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CachedNewsItemMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CachedNewsItemMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of CachedNewsItem entities.
func (m *CachedNewsItemMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CachedNewsItemMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CachedNewsItemMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CachedNewsItem.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTitle sets the "title" field.
func (m *CachedNewsItemMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *CachedNewsItemMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the CachedNewsItem entity.
// If the CachedNewsItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CachedNewsItemMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *CachedNewsItemMutation) ResetTitle() {
	m.title = nil
}

// SetSummary sets the "summary" field.
func (m *CachedNewsItemMutation) SetSummary(s string) {
	m.summary = &s
}

// Summary returns the value of the "summary" field in the mutation.
func (m *CachedNewsItemMutation) Summary() (r string, exists bool) {
	v := m.summary
	if v == nil {
		return
	}
	return *v, true
}

// OldSummary returns the old "summary" field's value of the CachedNewsItem entity.
// If the CachedNewsItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CachedNewsItemMutation) OldSummary(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSummary: %w", err)
	}
	return oldValue.Summary, nil
}

// ClearSummary clears the value of the "summary" field.
func (m *CachedNewsItemMutation) ClearSummary() {
	m.summary = nil
	m.clearedFields[cachednewsitem.FieldSummary] = struct{}{}
}

// SummaryCleared returns if the "summary" field was cleared in this mutation.
func (m *CachedNewsItemMutation) SummaryCleared() bool {
	_, ok := m.clearedFields[cachednewsitem.FieldSummary]
	return ok
}

// ResetSummary resets all changes to the "summary" field.
func (m *CachedNewsItemMutation) ResetSummary() {
	m.summary = nil
	delete(m.clearedFields, cachednewsitem.FieldSummary)
}

// SetImageURL sets the "image_url" field.
func (m *CachedNewsItemMutation) SetImageURL(s string) {
	m.image_url = &s
}

// ImageURL returns the value of the "image_url" field in the mutation.
func (m *CachedNewsItemMutation) ImageURL() (r string, exists bool) {
	v := m.image_url
	if v == nil {
		return
	}
	return *v, true
}

// OldImageURL returns the old "image_url" field's value of the CachedNewsItem entity.
// If the CachedNewsItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CachedNewsItemMutation) OldImageURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldImageURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldImageURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldImageURL: %w", err)
	}
	return oldValue.ImageURL, nil
}

// ClearImageURL clears the value of the "image_url" field.
func (m *CachedNewsItemMutation) ClearImageURL() {
	m.image_url = nil
	m.clearedFields[cachednewsitem.FieldImageURL] = struct{}{}
}

// ImageURLCleared returns if the "image_url" field was cleared in this mutation.
func (m *CachedNewsItemMutation) ImageURLCleared() bool {
	_, ok := m.clearedFields[cachednewsitem.FieldImageURL]
	return ok
}

// ResetImageURL resets all changes to the "image_url" field.
func (m *CachedNewsItemMutation) ResetImageURL() {
	m.image_url = nil
	delete(m.clearedFields, cachednewsitem.FieldImageURL)
}

// SetAuthor sets the "author" field.
func (m *CachedNewsItemMutation) SetAuthor(s string) {
	m.author = &s
}

// Author returns the value of the "author" field in the mutation.
func (m *CachedNewsItemMutation) Author() (r string, exists bool) {
	v := m.author
	if v == nil {
		return
	}
	return *v, true
}

// OldAuthor returns the old "author" field's value of the CachedNewsItem entity.
// If the CachedNewsItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CachedNewsItemMutation) OldAuthor(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAuthor is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAuthor requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAuthor: %w", err)
	}
	return oldValue.Author, nil
}

// ClearAuthor clears the value of the "author" field.
func (m *CachedNewsItemMutation) ClearAuthor() {
	m.author = nil
	m.clearedFields[cachednewsitem.FieldAuthor] = struct{}{}
}

// AuthorCleared returns if the "author" field was cleared in this mutation.
func (m *CachedNewsItemMutation) AuthorCleared() bool {
	_, ok := m.clearedFields[cachednewsitem.FieldAuthor]
	return ok
}

// ResetAuthor resets all changes to the "author" field.
func (m *CachedNewsItemMutation) ResetAuthor() {
	m.author = nil
	delete(m.clearedFields, cachednewsitem.FieldAuthor)
}

// SetLikeCount sets the "like_count" field.
func (m *CachedNewsItemMutation) SetLikeCount(i int) {
	m.like_count = &i
	m.addlike_count = nil
}

// LikeCount returns the value of the "like_count" field in the mutation.
func (m *CachedNewsItemMutation) LikeCount() (r int, exists bool) {
	v := m.like_count
	if v == nil {
		return
	}
	return *v, true
}

// OldLikeCount returns the old "like_count" field's value of the CachedNewsItem entity.
// If the CachedNewsItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CachedNewsItemMutation) OldLikeCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLikeCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLikeCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLikeCount: %w", err)
	}
	return oldValue.LikeCount, nil
}

// AddLikeCount adds i to the "like_count" field.
func (m *CachedNewsItemMutation) AddLikeCount(i int) {
	if m.addlike_count != nil {
		*m.addlike_count += i
	} else {
		m.addlike_count = &i
	}
}

// AddedLikeCount returns the value that was added to the "like_count" field in this mutation.
func (m *CachedNewsItemMutation) AddedLikeCount() (r int, exists bool) {
	v := m.addlike_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetLikeCount resets all changes to the "like_count" field.
func (m *CachedNewsItemMutation) ResetLikeCount() {
	m.like_count = nil
	m.addlike_count = nil
}

// SetCommentCount sets the "comment_count" field.
func (m *CachedNewsItemMutation) SetCommentCount(i int) {
	m.comment_count = &i
	m.addcomment_count = nil
}

// CommentCount returns the value of the "comment_count" field in the mutation.
func (m *CachedNewsItemMutation) CommentCount() (r int, exists bool) {
	v := m.comment_count
	if v == nil {
		return
	}
	return *v, true
}

// OldCommentCount returns the old "comment_count" field's value of the CachedNewsItem entity.
// If the CachedNewsItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CachedNewsItemMutation) OldCommentCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCommentCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCommentCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCommentCount: %w", err)
	}
	return oldValue.CommentCount, nil
}

// AddCommentCount adds i to the "comment_count" field.
func (m *CachedNewsItemMutation) AddCommentCount(i int) {
	if m.addcomment_count != nil {
		*m.addcomment_count += i
	} else {
		m.addcomment_count = &i
	}
}

// AddedCommentCount returns the value that was added to the "comment_count" field in this mutation.
func (m *CachedNewsItemMutation) AddedCommentCount() (r int, exists bool) {
	v := m.addcomment_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetCommentCount resets all changes to the "comment_count" field.
func (m *CachedNewsItemMutation) ResetCommentCount() {
	m.comment_count = nil
	m.addcomment_count = nil
}

// SetPublishedAt sets the "published_at" field.
func (m *CachedNewsItemMutation) SetPublishedAt(t time.Time) {
	m.published_at = &t
}

// PublishedAt returns the value of the "published_at" field in the mutation.
func (m *CachedNewsItemMutation) PublishedAt() (r time.Time, exists bool) {
	v := m.published_at
	if v == nil {
		return
	}
	return *v, true
}

// OldPublishedAt returns the old "published_at" field's value of the CachedNewsItem entity.
// If the CachedNewsItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CachedNewsItemMutation) OldPublishedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPublishedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPublishedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPublishedAt: %w", err)
	}
	return oldValue.PublishedAt, nil
}

// ResetPublishedAt resets all changes to the "published_at" field.
func (m *CachedNewsItemMutation) ResetPublishedAt() {
	m.published_at = nil
}

// SetPosition sets the "position" field.
func (m *CachedNewsItemMutation) SetPosition(i int) {
	m.position = &i
	m.addposition = nil
}

// Position returns the value of the "position" field in the mutation.
func (m *CachedNewsItemMutation) Position() (r int, exists bool) {
	v := m.position
	if v == nil {
		return
	}
	return *v, true
}

// OldPosition returns the old "position" field's value of the CachedNewsItem entity.
// If the CachedNewsItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CachedNewsItemMutation) OldPosition(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPosition is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPosition requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPosition: %w", err)
	}
	return oldValue.Position, nil
}

// AddPosition adds i to the "position" field.
func (m *CachedNewsItemMutation) AddPosition(i int) {
	if m.addposition != nil {
		*m.addposition += i
	} else {
		m.addposition = &i
	}
}

// AddedPosition returns the value that was added to the "position" field in this mutation.
func (m *CachedNewsItemMutation) AddedPosition() (r int, exists bool) {
	v := m.addposition
	if v == nil {
		return
	}
	return *v, true
}

// ResetPosition resets all changes to the "position" field.
func (m *CachedNewsItemMutation) ResetPosition() {
	m.position = nil
	m.addposition = nil
}

// SetStoredAt sets the "stored_at" field.
func (m *CachedNewsItemMutation) SetStoredAt(t time.Time) {
	m.stored_at = &t
}

// StoredAt returns the value of the "stored_at" field in the mutation.
func (m *CachedNewsItemMutation) StoredAt() (r time.Time, exists bool) {
	v := m.stored_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStoredAt returns the old "stored_at" field's value of the CachedNewsItem entity.
// If the CachedNewsItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CachedNewsItemMutation) OldStoredAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStoredAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStoredAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStoredAt: %w", err)
	}
	return oldValue.StoredAt, nil
}

// ResetStoredAt resets all changes to the "stored_at" field.
func (m *CachedNewsItemMutation) ResetStoredAt() {
	m.stored_at = nil
}

// Where appends a list predicates to the CachedNewsItemMutation builder.
func (m *CachedNewsItemMutation) Where(ps ...predicate.CachedNewsItem) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CachedNewsItemMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CachedNewsItemMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CachedNewsItem, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CachedNewsItemMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CachedNewsItemMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CachedNewsItem).
func (m *CachedNewsItemMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CachedNewsItemMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.title != nil {
		fields = append(fields, cachednewsitem.FieldTitle)
	}
	if m.summary != nil {
		fields = append(fields, cachednewsitem.FieldSummary)
	}
	if m.image_url != nil {
		fields = append(fields, cachednewsitem.FieldImageURL)
	}
	if m.author != nil {
		fields = append(fields, cachednewsitem.FieldAuthor)
	}
	if m.like_count != nil {
		fields = append(fields, cachednewsitem.FieldLikeCount)
	}
	if m.comment_count != nil {
		fields = append(fields, cachednewsitem.FieldCommentCount)
	}
	if m.published_at != nil {
		fields = append(fields, cachednewsitem.FieldPublishedAt)
	}
	if m.position != nil {
		fields = append(fields, cachednewsitem.FieldPosition)
	}
	if m.stored_at != nil {
		fields = append(fields, cachednewsitem.FieldStoredAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CachedNewsItemMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case cachednewsitem.FieldTitle:
		return m.Title()
	case cachednewsitem.FieldSummary:
		return m.Summary()
	case cachednewsitem.FieldImageURL:
		return m.ImageURL()
	case cachednewsitem.FieldAuthor:
		return m.Author()
	case cachednewsitem.FieldLikeCount:
		return m.LikeCount()
	case cachednewsitem.FieldCommentCount:
		return m.CommentCount()
	case cachednewsitem.FieldPublishedAt:
		return m.PublishedAt()
	case cachednewsitem.FieldPosition:
		return m.Position()
	case cachednewsitem.FieldStoredAt:
		return m.StoredAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CachedNewsItemMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case cachednewsitem.FieldTitle:
		return m.OldTitle(ctx)
	case cachednewsitem.FieldSummary:
		return m.OldSummary(ctx)
	case cachednewsitem.FieldImageURL:
		return m.OldImageURL(ctx)
	case cachednewsitem.FieldAuthor:
		return m.OldAuthor(ctx)
	case cachednewsitem.FieldLikeCount:
		return m.OldLikeCount(ctx)
	case cachednewsitem.FieldCommentCount:
		return m.OldCommentCount(ctx)
	case cachednewsitem.FieldPublishedAt:
		return m.OldPublishedAt(ctx)
	case cachednewsitem.FieldPosition:
		return m.OldPosition(ctx)
	case cachednewsitem.FieldStoredAt:
		return m.OldStoredAt(ctx)
	}
	return nil, fmt.Errorf("unknown CachedNewsItem field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CachedNewsItemMutation) SetField(name string, value ent.Value) error {
	switch name {
	case cachednewsitem.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case cachednewsitem.FieldSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSummary(v)
		return nil
	case cachednewsitem.FieldImageURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetImageURL(v)
		return nil
	case cachednewsitem.FieldAuthor:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAuthor(v)
		return nil
	case cachednewsitem.FieldLikeCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLikeCount(v)
		return nil
	case cachednewsitem.FieldCommentCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCommentCount(v)
		return nil
	case cachednewsitem.FieldPublishedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPublishedAt(v)
		return nil
	case cachednewsitem.FieldPosition:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPosition(v)
		return nil
	case cachednewsitem.FieldStoredAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStoredAt(v)
		return nil
	}
	return fmt.Errorf("unknown CachedNewsItem field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CachedNewsItemMutation) AddedFields() []string {
	var fields []string
	if m.addlike_count != nil {
		fields = append(fields, cachednewsitem.FieldLikeCount)
	}
	if m.addcomment_count != nil {
		fields = append(fields, cachednewsitem.FieldCommentCount)
	}
	if m.addposition != nil {
		fields = append(fields, cachednewsitem.FieldPosition)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CachedNewsItemMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case cachednewsitem.FieldLikeCount:
		return m.AddedLikeCount()
	case cachednewsitem.FieldCommentCount:
		return m.AddedCommentCount()
	case cachednewsitem.FieldPosition:
		return m.AddedPosition()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CachedNewsItemMutation) AddField(name string, value ent.Value) error {
	switch name {
	case cachednewsitem.FieldLikeCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLikeCount(v)
		return nil
	case cachednewsitem.FieldCommentCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCommentCount(v)
		return nil
	case cachednewsitem.FieldPosition:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPosition(v)
		return nil
	}
	return fmt.Errorf("unknown CachedNewsItem numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CachedNewsItemMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(cachednewsitem.FieldSummary) {
		fields = append(fields, cachednewsitem.FieldSummary)
	}
	if m.FieldCleared(cachednewsitem.FieldImageURL) {
		fields = append(fields, cachednewsitem.FieldImageURL)
	}
	if m.FieldCleared(cachednewsitem.FieldAuthor) {
		fields = append(fields, cachednewsitem.FieldAuthor)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CachedNewsItemMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CachedNewsItemMutation) ClearField(name string) error {
	switch name {
	case cachednewsitem.FieldSummary:
		m.ClearSummary()
		return nil
	case cachednewsitem.FieldImageURL:
		m.ClearImageURL()
		return nil
	case cachednewsitem.FieldAuthor:
		m.ClearAuthor()
		return nil
	}
	return fmt.Errorf("unknown CachedNewsItem nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CachedNewsItemMutation) ResetField(name string) error {
	switch name {
	case cachednewsitem.FieldTitle:
		m.ResetTitle()
		return nil
	case cachednewsitem.FieldSummary:
		m.ResetSummary()
		return nil
	case cachednewsitem.FieldImageURL:
		m.ResetImageURL()
		return nil
	case cachednewsitem.FieldAuthor:
		m.ResetAuthor()
		return nil
	case cachednewsitem.FieldLikeCount:
		m.ResetLikeCount()
		return nil
	case cachednewsitem.FieldCommentCount:
		m.ResetCommentCount()
		return nil
	case cachednewsitem.FieldPublishedAt:
		m.ResetPublishedAt()
		return nil
	case cachednewsitem.FieldPosition:
		m.ResetPosition()
		return nil
	case cachednewsitem.FieldStoredAt:
		m.ResetStoredAt()
		return nil
	}
	return fmt.Errorf("unknown CachedNewsItem field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CachedNewsItemMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CachedNewsItemMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CachedNewsItemMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CachedNewsItemMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CachedNewsItemMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CachedNewsItemMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CachedNewsItemMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown CachedNewsItem unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CachedNewsItemMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown CachedNewsItem edge %s", name)
}

// CachedTransactionMutation represents an operation that mutates the CachedTransaction nodes in the graph.
type CachedTransactionMutation struct {
	config
	op             Op
	typ            string
	id             *string
	kind           *string
	subcategory_id *string
	title          *string
	amount         *float64
	addamount      *float64
	currency_code  *string
	tx_date        *time.Time
	recorded_by    *string
	note           *string
	position       *int
	addposition    *int
	stored_at      *time.Time
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*CachedTransaction, error)
	predicates     []predicate.CachedTransaction
}

var _ ent.Mutation = (*CachedTransactionMutation)(nil)

// cachedtransactionOption allows management of the mutation configuration using functional options.
type cachedtransactionOption func(*CachedTransactionMutation)

// newCachedTransactionMutation creates new mutation for the CachedTransaction entity.
func newCachedTransactionMutation(c config, op Op, opts ...cachedtransactionOption) *CachedTransactionMutation {
	m := &CachedTransactionMutation{
		config:        c,
		op:            op,
		typ:           TypeCachedTransaction,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCachedTransactionID sets the ID field of the mutation.
func withCachedTransactionID(id string) cachedtransactionOption {
	return func(m *CachedTransactionMutation) {
		var (
			err   error
			once  sync.Once
			value *CachedTransaction
		)
		m.oldValue = func(ctx context.Context) (*CachedTransaction, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CachedTransaction.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCachedTransaction sets the old CachedTransaction of the mutation.
func withCachedTransaction(node *CachedTransaction) cachedtransactionOption {
	return func(m *CachedTransactionMutation) {
		m.oldValue = func(context.Context) (*CachedTransaction, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CachedTransactionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CachedTransactionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of CachedTransaction entities.
func (m *CachedTransactionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CachedTransactionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CachedTransactionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CachedTransaction.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetKind sets the "kind" field.
func (m *CachedTransactionMutation) SetKind(s string) {
	m.kind = &s
}

// Kind returns the value of the "kind" field in the mutation.
func (m *CachedTransactionMutation) Kind() (r string, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the CachedTransaction entity.
// If the CachedTransaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CachedTransactionMutation) OldKind(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKind: %w", err)
	}
	return oldValue.Kind, nil
}

// ResetKind resets all changes to the "kind" field.
func (m *CachedTransactionMutation) ResetKind() {
	m.kind = nil
}

// SetSubcategoryID sets the "subcategory_id" field.
func (m *CachedTransactionMutation) SetSubcategoryID(s string) {
	m.subcategory_id = &s
}

// SubcategoryID returns the value of the "subcategory_id" field in the mutation.
func (m *CachedTransactionMutation) SubcategoryID() (r string, exists bool) {
	v := m.subcategory_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSubcategoryID returns the old "subcategory_id" field's value of the CachedTransaction entity.
// If the CachedTransaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CachedTransactionMutation) OldSubcategoryID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubcategoryID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubcategoryID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubcategoryID: %w", err)
	}
	return oldValue.SubcategoryID, nil
}

// ClearSubcategoryID clears the value of the "subcategory_id" field.
func (m *CachedTransactionMutation) ClearSubcategoryID() {
	m.subcategory_id = nil
	m.clearedFields[cachedtransaction.FieldSubcategoryID] = struct{}{}
}

// SubcategoryIDCleared returns if the "subcategory_id" field was cleared in this mutation.
func (m *CachedTransactionMutation) SubcategoryIDCleared() bool {
	_, ok := m.clearedFields[cachedtransaction.FieldSubcategoryID]
	return ok
}

// ResetSubcategoryID resets all changes to the "subcategory_id" field.
func (m *CachedTransactionMutation) ResetSubcategoryID() {
	m.subcategory_id = nil
	delete(m.clearedFields, cachedtransaction.FieldSubcategoryID)
}

// SetTitle sets the "title" field.
func (m *CachedTransactionMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *CachedTransactionMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the CachedTransaction entity.
// If the CachedTransaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CachedTransactionMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ClearTitle clears the value of the "title" field.
func (m *CachedTransactionMutation) ClearTitle() {
	m.title = nil
	m.clearedFields[cachedtransaction.FieldTitle] = struct{}{}
}

// TitleCleared returns if the "title" field was cleared in this mutation.
func (m *CachedTransactionMutation) TitleCleared() bool {
	_, ok := m.clearedFields[cachedtransaction.FieldTitle]
	return ok
}

// ResetTitle resets all changes to the "title" field.
func (m *CachedTransactionMutation) ResetTitle() {
	m.title = nil
	delete(m.clearedFields, cachedtransaction.FieldTitle)
}

// SetAmount sets the "amount" field.
func (m *CachedTransactionMutation) SetAmount(f float64) {
	m.amount = &f
	m.addamount = nil
}

// Amount returns the value of the "amount" field in the mutation.
func (m *CachedTransactionMutation) Amount() (r float64, exists bool) {
	v := m.amount
	if v == nil {
		return
	}
	return *v, true
}

// OldAmount returns the old "amount" field's value of the CachedTransaction entity.
// If the CachedTransaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CachedTransactionMutation) OldAmount(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAmount: %w", err)
	}
	return oldValue.Amount, nil
}

// AddAmount adds f to the "amount" field.
func (m *CachedTransactionMutation) AddAmount(f float64) {
	if m.addamount != nil {
		*m.addamount += f
	} else {
		m.addamount = &f
	}
}

// AddedAmount returns the value that was added to the "amount" field in this mutation.
func (m *CachedTransactionMutation) AddedAmount() (r float64, exists bool) {
	v := m.addamount
	if v == nil {
		return
	}
	return *v, true
}

// ResetAmount resets all changes to the "amount" field.
func (m *CachedTransactionMutation) ResetAmount() {
	m.amount = nil
	m.addamount = nil
}

// SetCurrencyCode sets the "currency_code" field.
func (m *CachedTransactionMutation) SetCurrencyCode(s string) {
	m.currency_code = &s
}

// CurrencyCode returns the value of the "currency_code" field in the mutation.
func (m *CachedTransactionMutation) CurrencyCode() (r string, exists bool) {
	v := m.currency_code
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrencyCode returns the old "currency_code" field's value of the CachedTransaction entity.
// If the CachedTransaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CachedTransactionMutation) OldCurrencyCode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrencyCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrencyCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrencyCode: %w", err)
	}
	return oldValue.CurrencyCode, nil
}

// ClearCurrencyCode clears the value of the "currency_code" field.
func (m *CachedTransactionMutation) ClearCurrencyCode() {
	m.currency_code = nil
	m.clearedFields[cachedtransaction.FieldCurrencyCode] = struct{}{}
}

// CurrencyCodeCleared returns if the "currency_code" field was cleared in this mutation.
func (m *CachedTransactionMutation) CurrencyCodeCleared() bool {
	_, ok := m.clearedFields[cachedtransaction.FieldCurrencyCode]
	return ok
}

// ResetCurrencyCode resets all changes to the "currency_code" field.
func (m *CachedTransactionMutation) ResetCurrencyCode() {
	m.currency_code = nil
	delete(m.clearedFields, cachedtransaction.FieldCurrencyCode)
}

// SetTxDate sets the "tx_date" field.
func (m *CachedTransactionMutation) SetTxDate(t time.Time) {
	m.tx_date = &t
}

// TxDate returns the value of the "tx_date" field in the mutation.
func (m *CachedTransactionMutation) TxDate() (r time.Time, exists bool) {
	v := m.tx_date
	if v == nil {
		return
	}
	return *v, true
}

// OldTxDate returns the old "tx_date" field's value of the CachedTransaction entity.
// If the CachedTransaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CachedTransactionMutation) OldTxDate(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTxDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTxDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTxDate: %w", err)
	}
	return oldValue.TxDate, nil
}

// ResetTxDate resets all changes to the "tx_date" field.
func (m *CachedTransactionMutation) ResetTxDate() {
	m.tx_date = nil
}

// SetRecordedBy sets the "recorded_by" field.
func (m *CachedTransactionMutation) SetRecordedBy(s string) {
	m.recorded_by = &s
}

// RecordedBy returns the value of the "recorded_by" field in the mutation.
func (m *CachedTransactionMutation) RecordedBy() (r string, exists bool) {
	v := m.recorded_by
	if v == nil {
		return
	}
	return *v, true
}

// OldRecordedBy returns the old "recorded_by" field's value of the CachedTransaction entity.
// If the CachedTransaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CachedTransactionMutation) OldRecordedBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecordedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecordedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecordedBy: %w", err)
	}
	return oldValue.RecordedBy, nil
}

// ClearRecordedBy clears the value of the "recorded_by" field.
func (m *CachedTransactionMutation) ClearRecordedBy() {
	m.recorded_by = nil
	m.clearedFields[cachedtransaction.FieldRecordedBy] = struct{}{}
}

// RecordedByCleared returns if the "recorded_by" field was cleared in this mutation.
func (m *CachedTransactionMutation) RecordedByCleared() bool {
	_, ok := m.clearedFields[cachedtransaction.FieldRecordedBy]
	return ok
}

// ResetRecordedBy resets all changes to the "recorded_by" field.
func (m *CachedTransactionMutation) ResetRecordedBy() {
	m.recorded_by = nil
	delete(m.clearedFields, cachedtransaction.FieldRecordedBy)
}

// SetNote sets the "note" field.
func (m *CachedTransactionMutation) SetNote(s string) {
	m.note = &s
}

// Note returns the value of the "note" field in the mutation.
func (m *CachedTransactionMutation) Note() (r string, exists bool) {
	v := m.note
	if v == nil {
		return
	}
	return *v, true
}

// OldNote returns the old "note" field's value of the CachedTransaction entity.
// If the CachedTransaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CachedTransactionMutation) OldNote(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNote is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNote requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNote: %w", err)
	}
	return oldValue.Note, nil
}

// ClearNote clears the value of the "note" field.
func (m *CachedTransactionMutation) ClearNote() {
	m.note = nil
	m.clearedFields[cachedtransaction.FieldNote] = struct{}{}
}

// NoteCleared returns if the "note" field was cleared in this mutation.
func (m *CachedTransactionMutation) NoteCleared() bool {
	_, ok := m.clearedFields[cachedtransaction.FieldNote]
	return ok
}

// ResetNote resets all changes to the "note" field.
func (m *CachedTransactionMutation) ResetNote() {
	m.note = nil
	delete(m.clearedFields, cachedtransaction.FieldNote)
}

// SetPosition sets the "position" field.
func (m *CachedTransactionMutation) SetPosition(i int) {
	m.position = &i
	m.addposition = nil
}

// Position returns the value of the "position" field in the mutation.
func (m *CachedTransactionMutation) Position() (r int, exists bool) {
	v := m.position
	if v == nil {
		return
	}
	return *v, true
}

// OldPosition returns the old "position" field's value of the CachedTransaction entity.
// If the CachedTransaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CachedTransactionMutation) OldPosition(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPosition is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPosition requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPosition: %w", err)
	}
	return oldValue.Position, nil
}

// AddPosition adds i to the "position" field.
func (m *CachedTransactionMutation) AddPosition(i int) {
	if m.addposition != nil {
		*m.addposition += i
	} else {
		m.addposition = &i
	}
}

// AddedPosition returns the value that was added to the "position" field in this mutation.
func (m *CachedTransactionMutation) AddedPosition() (r int, exists bool) {
	v := m.addposition
	if v == nil {
		return
	}
	return *v, true
}

// ResetPosition resets all changes to the "position" field.
func (m *CachedTransactionMutation) ResetPosition() {
	m.position = nil
	m.addposition = nil
}

// SetStoredAt sets the "stored_at" field.
func (m *CachedTransactionMutation) SetStoredAt(t time.Time) {
	m.stored_at = &t
}

// StoredAt returns the value of the "stored_at" field in the mutation.
func (m *CachedTransactionMutation) StoredAt() (r time.Time, exists bool) {
	v := m.stored_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStoredAt returns the old "stored_at" field's value of the CachedTransaction entity.
// If the CachedTransaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CachedTransactionMutation) OldStoredAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStoredAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStoredAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStoredAt: %w", err)
	}
	return oldValue.StoredAt, nil
}

// ResetStoredAt resets all changes to the "stored_at" field.
func (m *CachedTransactionMutation) ResetStoredAt() {
	m.stored_at = nil
}

// Where appends a list predicates to the CachedTransactionMutation builder.
func (m *CachedTransactionMutation) Where(ps ...predicate.CachedTransaction) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CachedTransactionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CachedTransactionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CachedTransaction, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CachedTransactionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CachedTransactionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CachedTransaction).
func (m *CachedTransactionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CachedTransactionMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.kind != nil {
		fields = append(fields, cachedtransaction.FieldKind)
	}
	if m.subcategory_id != nil {
		fields = append(fields, cachedtransaction.FieldSubcategoryID)
	}
	if m.title != nil {
		fields = append(fields, cachedtransaction.FieldTitle)
	}
	if m.amount != nil {
		fields = append(fields, cachedtransaction.FieldAmount)
	}
	if m.currency_code != nil {
		fields = append(fields, cachedtransaction.FieldCurrencyCode)
	}
	if m.tx_date != nil {
		fields = append(fields, cachedtransaction.FieldTxDate)
	}
	if m.recorded_by != nil {
		fields = append(fields, cachedtransaction.FieldRecordedBy)
	}
	if m.note != nil {
		fields = append(fields, cachedtransaction.FieldNote)
	}
	if m.position != nil {
		fields = append(fields, cachedtransaction.FieldPosition)
	}
	if m.stored_at != nil {
		fields = append(fields, cachedtransaction.FieldStoredAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CachedTransactionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case cachedtransaction.FieldKind:
		return m.Kind()
	case cachedtransaction.FieldSubcategoryID:
		return m.SubcategoryID()
	case cachedtransaction.FieldTitle:
		return m.Title()
	case cachedtransaction.FieldAmount:
		return m.Amount()
	case cachedtransaction.FieldCurrencyCode:
		return m.CurrencyCode()
	case cachedtransaction.FieldTxDate:
		return m.TxDate()
	case cachedtransaction.FieldRecordedBy:
		return m.RecordedBy()
	case cachedtransaction.FieldNote:
		return m.Note()
	case cachedtransaction.FieldPosition:
		return m.Position()
	case cachedtransaction.FieldStoredAt:
		return m.StoredAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CachedTransactionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case cachedtransaction.FieldKind:
		return m.OldKind(ctx)
	case cachedtransaction.FieldSubcategoryID:
		return m.OldSubcategoryID(ctx)
	case cachedtransaction.FieldTitle:
		return m.OldTitle(ctx)
	case cachedtransaction.FieldAmount:
		return m.OldAmount(ctx)
	case cachedtransaction.FieldCurrencyCode:
		return m.OldCurrencyCode(ctx)
	case cachedtransaction.FieldTxDate:
		return m.OldTxDate(ctx)
	case cachedtransaction.FieldRecordedBy:
		return m.OldRecordedBy(ctx)
	case cachedtransaction.FieldNote:
		return m.OldNote(ctx)
	case cachedtransaction.FieldPosition:
		return m.OldPosition(ctx)
	case cachedtransaction.FieldStoredAt:
		return m.OldStoredAt(ctx)
	}
	return nil, fmt.Errorf("unknown CachedTransaction field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CachedTransactionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case cachedtransaction.FieldKind:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case cachedtransaction.FieldSubcategoryID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubcategoryID(v)
		return nil
	case cachedtransaction.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case cachedtransaction.FieldAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAmount(v)
		return nil
	case cachedtransaction.FieldCurrencyCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrencyCode(v)
		return nil
	case cachedtransaction.FieldTxDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTxDate(v)
		return nil
	case cachedtransaction.FieldRecordedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecordedBy(v)
		return nil
	case cachedtransaction.FieldNote:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNote(v)
		return nil
	case cachedtransaction.FieldPosition:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPosition(v)
		return nil
	case cachedtransaction.FieldStoredAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStoredAt(v)
		return nil
	}
	return fmt.Errorf("unknown CachedTransaction field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CachedTransactionMutation) AddedFields() []string {
	var fields []string
	if m.addamount != nil {
		fields = append(fields, cachedtransaction.FieldAmount)
	}
	if m.addposition != nil {
		fields = append(fields, cachedtransaction.FieldPosition)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CachedTransactionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case cachedtransaction.FieldAmount:
		return m.AddedAmount()
	case cachedtransaction.FieldPosition:
		return m.AddedPosition()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CachedTransactionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case cachedtransaction.FieldAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAmount(v)
		return nil
	case cachedtransaction.FieldPosition:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPosition(v)
		return nil
	}
	return fmt.Errorf("unknown CachedTransaction numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CachedTransactionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(cachedtransaction.FieldSubcategoryID) {
		fields = append(fields, cachedtransaction.FieldSubcategoryID)
	}
	if m.FieldCleared(cachedtransaction.FieldTitle) {
		fields = append(fields, cachedtransaction.FieldTitle)
	}
	if m.FieldCleared(cachedtransaction.FieldCurrencyCode) {
		fields = append(fields, cachedtransaction.FieldCurrencyCode)
	}
	if m.FieldCleared(cachedtransaction.FieldRecordedBy) {
		fields = append(fields, cachedtransaction.FieldRecordedBy)
	}
	if m.FieldCleared(cachedtransaction.FieldNote) {
		fields = append(fields, cachedtransaction.FieldNote)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CachedTransactionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CachedTransactionMutation) ClearField(name string) error {
	switch name {
	case cachedtransaction.FieldSubcategoryID:
		m.ClearSubcategoryID()
		return nil
	case cachedtransaction.FieldTitle:
		m.ClearTitle()
		return nil
	case cachedtransaction.FieldCurrencyCode:
		m.ClearCurrencyCode()
		return nil
	case cachedtransaction.FieldRecordedBy:
		m.ClearRecordedBy()
		return nil
	case cachedtransaction.FieldNote:
		m.ClearNote()
		return nil
	}
	return fmt.Errorf("unknown CachedTransaction nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CachedTransactionMutation) ResetField(name string) error {
	switch name {
	case cachedtransaction.FieldKind:
		m.ResetKind()
		return nil
	case cachedtransaction.FieldSubcategoryID:
		m.ResetSubcategoryID()
		return nil
	case cachedtransaction.FieldTitle:
		m.ResetTitle()
		return nil
	case cachedtransaction.FieldAmount:
		m.ResetAmount()
		return nil
	case cachedtransaction.FieldCurrencyCode:
		m.ResetCurrencyCode()
		return nil
	case cachedtransaction.FieldTxDate:
		m.ResetTxDate()
		return nil
	case cachedtransaction.FieldRecordedBy:
		m.ResetRecordedBy()
		return nil
	case cachedtransaction.FieldNote:
		m.ResetNote()
		return nil
	case cachedtransaction.FieldPosition:
		m.ResetPosition()
		return nil
	case cachedtransaction.FieldStoredAt:
		m.ResetStoredAt()
		return nil
	}
	return fmt.Errorf("unknown CachedTransaction field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CachedTransactionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CachedTransactionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CachedTransactionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CachedTransactionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CachedTransactionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CachedTransactionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CachedTransactionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown CachedTransaction unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CachedTransactionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown CachedTransaction edge %s", name)
}

// PinnedCategoryMutation represents an operation that mutates the PinnedCategory nodes in the graph.
type PinnedCategoryMutation struct {
	config
	op            Op
	typ           string
	id            *int
	category_id   *string
	pinned_at     *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*PinnedCategory, error)
	predicates    []predicate.PinnedCategory
}

var _ ent.Mutation = (*PinnedCategoryMutation)(nil)

// pinnedcategoryOption allows management of the mutation configuration using functional options.
type pinnedcategoryOption func(*PinnedCategoryMutation)

// newPinnedCategoryMutation creates new mutation for the PinnedCategory entity.
func newPinnedCategoryMutation(c config, op Op, opts ...pinnedcategoryOption) *PinnedCategoryMutation {
	m := &PinnedCategoryMutation{
		config:        c,
		op:            op,
		typ:           TypePinnedCategory,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPinnedCategoryID sets the ID field of the mutation.
func withPinnedCategoryID(id int) pinnedcategoryOption {
	return func(m *PinnedCategoryMutation) {
		var (
			err   error
			once  sync.Once
			value *PinnedCategory
		)
		m.oldValue = func(ctx context.Context) (*PinnedCategory, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PinnedCategory.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPinnedCategory sets the old PinnedCategory of the mutation.
func withPinnedCategory(node *PinnedCategory) pinnedcategoryOption {
	return func(m *PinnedCategoryMutation) {
		m.oldValue = func(context.Context) (*PinnedCategory, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PinnedCategoryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PinnedCategoryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PinnedCategoryMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PinnedCategoryMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PinnedCategory.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCategoryID sets the "category_id" field.
func (m *PinnedCategoryMutation) SetCategoryID(s string) {
	m.category_id = &s
}

// CategoryID returns the value of the "category_id" field in the mutation.
func (m *PinnedCategoryMutation) CategoryID() (r string, exists bool) {
	v := m.category_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCategoryID returns the old "category_id" field's value of the PinnedCategory entity.
// If the PinnedCategory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PinnedCategoryMutation) OldCategoryID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategoryID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategoryID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategoryID: %w", err)
	}
	return oldValue.CategoryID, nil
}

// ResetCategoryID resets all changes to the "category_id" field.
func (m *PinnedCategoryMutation) ResetCategoryID() {
	m.category_id = nil
}

// SetPinnedAt sets the "pinned_at" field.
func (m *PinnedCategoryMutation) SetPinnedAt(t time.Time) {
	m.pinned_at = &t
}

// PinnedAt returns the value of the "pinned_at" field in the mutation.
func (m *PinnedCategoryMutation) PinnedAt() (r time.Time, exists bool) {
	v := m.pinned_at
	if v == nil {
		return
	}
	return *v, true
}

// OldPinnedAt returns the old "pinned_at" field's value of the PinnedCategory entity.
// If the PinnedCategory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PinnedCategoryMutation) OldPinnedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPinnedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPinnedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPinnedAt: %w", err)
	}
	return oldValue.PinnedAt, nil
}

// ResetPinnedAt resets all changes to the "pinned_at" field.
func (m *PinnedCategoryMutation) ResetPinnedAt() {
	m.pinned_at = nil
}

// Where appends a list predicates to the PinnedCategoryMutation builder.
func (m *PinnedCategoryMutation) Where(ps ...predicate.PinnedCategory) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PinnedCategoryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PinnedCategoryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PinnedCategory, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PinnedCategoryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PinnedCategoryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PinnedCategory).
func (m *PinnedCategoryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PinnedCategoryMutation) Fields() []string {
	fields := make([]string, 0, 2)
	if m.category_id != nil {
		fields = append(fields, pinnedcategory.FieldCategoryID)
	}
	if m.pinned_at != nil {
		fields = append(fields, pinnedcategory.FieldPinnedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PinnedCategoryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case pinnedcategory.FieldCategoryID:
		return m.CategoryID()
	case pinnedcategory.FieldPinnedAt:
		return m.PinnedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PinnedCategoryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case pinnedcategory.FieldCategoryID:
		return m.OldCategoryID(ctx)
	case pinnedcategory.FieldPinnedAt:
		return m.OldPinnedAt(ctx)
	}
	return nil, fmt.Errorf("unknown PinnedCategory field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PinnedCategoryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case pinnedcategory.FieldCategoryID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategoryID(v)
		return nil
	case pinnedcategory.FieldPinnedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPinnedAt(v)
		return nil
	}
	return fmt.Errorf("unknown PinnedCategory field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PinnedCategoryMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PinnedCategoryMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PinnedCategoryMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown PinnedCategory numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PinnedCategoryMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PinnedCategoryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PinnedCategoryMutation) ClearField(name string) error {
	return fmt.Errorf("unknown PinnedCategory nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PinnedCategoryMutation) ResetField(name string) error {
	switch name {
	case pinnedcategory.FieldCategoryID:
		m.ResetCategoryID()
		return nil
	case pinnedcategory.FieldPinnedAt:
		m.ResetPinnedAt()
		return nil
	}
	return fmt.Errorf("unknown PinnedCategory field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PinnedCategoryMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PinnedCategoryMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PinnedCategoryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PinnedCategoryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PinnedCategoryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PinnedCategoryMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PinnedCategoryMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown PinnedCategory unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PinnedCategoryMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown PinnedCategory edge %s", name)
}
