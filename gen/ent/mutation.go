// Code generated by ent, DO NOT EDIT.

package ent

import (
	"cardvault/gen/ent/card"
	"cardvault/gen/ent/cardfield"
	"cardvault/gen/ent/predicate"
	"cardvault/gen/ent/scanjob"
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeCard      = "Card"
	TypeCardField = "CardField"
	TypeScanJob   = "ScanJob"
)

// CardMutation represents an operation that mutates the Card nodes in the graph.
type CardMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	display_name  *string
	image         *[]byte
	image_ext     *string
	created_at    *time.Time
	updated_at    *time.Time
	clearedFields map[string]struct{}
	fields        map[uuid.UUID]struct{}
	removedfields map[uuid.UUID]struct{}
	clearedfields bool
	jobs          map[uuid.UUID]struct{}
	removedjobs   map[uuid.UUID]struct{}
	clearedjobs   bool
	done          bool
	oldValue      func(context.Context) (*Card, error)
	predicates    []predicate.Card
}

var _ ent.Mutation = (*CardMutation)(nil)

// cardOption allows management of the mutation configuration using functional options.
type cardOption func(*CardMutation)

// newCardMutation creates new mutation for the Card entity.
func newCardMutation(c config, op Op, opts ...cardOption) *CardMutation {
	m := &CardMutation{
		config:        c,
		op:            op,
		typ:           TypeCard,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCardID sets the ID field of the mutation.
func withCardID(id uuid.UUID) cardOption {
	return func(m *CardMutation) {
		var (
			err   error
			once  sync.Once
			value *Card
		)
		m.oldValue = func(ctx context.Context) (*Card, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Card.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCard sets the old Card of the mutation.
func withCard(node *Card) cardOption {
	return func(m *CardMutation) {
		m.oldValue = func(context.Context) (*Card, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CardMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CardMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Card entities.
func (m *CardMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CardMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CardMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Card.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDisplayName sets the "display_name" field.
func (m *CardMutation) SetDisplayName(s string) {
	m.display_name = &s
}

// DisplayName returns the value of the "display_name" field in the mutation.
func (m *CardMutation) DisplayName() (r string, exists bool) {
	v := m.display_name
	if v == nil {
		return
	}
	return *v, true
}

// OldDisplayName returns the old "display_name" field's value of the Card entity.
// If the Card object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CardMutation) OldDisplayName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDisplayName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDisplayName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDisplayName: %w", err)
	}
	return oldValue.DisplayName, nil
}

// ResetDisplayName resets all changes to the "display_name" field.
func (m *CardMutation) ResetDisplayName() {
	m.display_name = nil
}

// SetImage sets the "image" field.
func (m *CardMutation) SetImage(b []byte) {
	m.image = &b
}

// Image returns the value of the "image" field in the mutation.
func (m *CardMutation) Image() (r []byte, exists bool) {
	v := m.image
	if v == nil {
		return
	}
	return *v, true
}

// OldImage returns the old "image" field's value of the Card entity.
// If the Card object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CardMutation) OldImage(ctx context.Context) (v []byte, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldImage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldImage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldImage: %w", err)
	}
	return oldValue.Image, nil
}

// ResetImage resets all changes to the "image" field.
func (m *CardMutation) ResetImage() {
	m.image = nil
}

// SetImageExt sets the "image_ext" field.
func (m *CardMutation) SetImageExt(s string) {
	m.image_ext = &s
}

// ImageExt returns the value of the "image_ext" field in the mutation.
func (m *CardMutation) ImageExt() (r string, exists bool) {
	v := m.image_ext
	if v == nil {
		return
	}
	return *v, true
}

// OldImageExt returns the old "image_ext" field's value of the Card entity.
// If the Card object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CardMutation) OldImageExt(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldImageExt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldImageExt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldImageExt: %w", err)
	}
	return oldValue.ImageExt, nil
}

// ResetImageExt resets all changes to the "image_ext" field.
func (m *CardMutation) ResetImageExt() {
	m.image_ext = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *CardMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CardMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Card entity.
// If the Card object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CardMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CardMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *CardMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *CardMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Card entity.
// If the Card object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CardMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *CardMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddFieldIDs adds the "fields" edge to the CardField entity by ids.
func (m *CardMutation) AddFieldIDs(ids ...uuid.UUID) {
	if m.fields == nil {
		m.fields = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.fields[ids[i]] = struct{}{}
	}
}

// ClearFields clears the "fields" edge to the CardField entity.
func (m *CardMutation) ClearFields() {
	m.clearedfields = true
}

// FieldsCleared reports if the "fields" edge to the CardField entity was cleared.
func (m *CardMutation) FieldsCleared() bool {
	return m.clearedfields
}

// RemoveFieldIDs removes the "fields" edge to the CardField entity by IDs.
func (m *CardMutation) RemoveFieldIDs(ids ...uuid.UUID) {
	if m.removedfields == nil {
		m.removedfields = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.fields, ids[i])
		m.removedfields[ids[i]] = struct{}{}
	}
}

// RemovedFields returns the removed IDs of the "fields" edge to the CardField entity.
func (m *CardMutation) RemovedFieldsIDs() (ids []uuid.UUID) {
	for id := range m.removedfields {
		ids = append(ids, id)
	}
	return
}

// FieldsIDs returns the "fields" edge IDs in the mutation.
func (m *CardMutation) FieldsIDs() (ids []uuid.UUID) {
	for id := range m.fields {
		ids = append(ids, id)
	}
	return
}

// ResetFields resets all changes to the "fields" edge.
func (m *CardMutation) ResetFields() {
	m.fields = nil
	m.clearedfields = false
	m.removedfields = nil
}

// AddJobIDs adds the "jobs" edge to the ScanJob entity by ids.
func (m *CardMutation) AddJobIDs(ids ...uuid.UUID) {
	if m.jobs == nil {
		m.jobs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.jobs[ids[i]] = struct{}{}
	}
}

// ClearJobs clears the "jobs" edge to the ScanJob entity.
func (m *CardMutation) ClearJobs() {
	m.clearedjobs = true
}

// JobsCleared reports if the "jobs" edge to the ScanJob entity was cleared.
func (m *CardMutation) JobsCleared() bool {
	return m.clearedjobs
}

// RemoveJobIDs removes the "jobs" edge to the ScanJob entity by IDs.
func (m *CardMutation) RemoveJobIDs(ids ...uuid.UUID) {
	if m.removedjobs == nil {
		m.removedjobs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.jobs, ids[i])
		m.removedjobs[ids[i]] = struct{}{}
	}
}

// RemovedJobs returns the removed IDs of the "jobs" edge to the ScanJob entity.
func (m *CardMutation) RemovedJobsIDs() (ids []uuid.UUID) {
	for id := range m.removedjobs {
		ids = append(ids, id)
	}
	return
}

// JobsIDs returns the "jobs" edge IDs in the mutation.
func (m *CardMutation) JobsIDs() (ids []uuid.UUID) {
	for id := range m.jobs {
		ids = append(ids, id)
	}
	return
}

// ResetJobs resets all changes to the "jobs" edge.
func (m *CardMutation) ResetJobs() {
	m.jobs = nil
	m.clearedjobs = false
	m.removedjobs = nil
}

// Where appends a list predicates to the CardMutation builder.
func (m *CardMutation) Where(ps ...predicate.Card) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CardMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CardMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Card, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CardMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CardMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Card).
func (m *CardMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CardMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.display_name != nil {
		fields = append(fields, card.FieldDisplayName)
	}
	if m.image != nil {
		fields = append(fields, card.FieldImage)
	}
	if m.image_ext != nil {
		fields = append(fields, card.FieldImageExt)
	}
	if m.created_at != nil {
		fields = append(fields, card.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, card.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CardMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case card.FieldDisplayName:
		return m.DisplayName()
	case card.FieldImage:
		return m.Image()
	case card.FieldImageExt:
		return m.ImageExt()
	case card.FieldCreatedAt:
		return m.CreatedAt()
	case card.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CardMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case card.FieldDisplayName:
		return m.OldDisplayName(ctx)
	case card.FieldImage:
		return m.OldImage(ctx)
	case card.FieldImageExt:
		return m.OldImageExt(ctx)
	case card.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case card.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Card field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CardMutation) SetField(name string, value ent.Value) error {
	switch name {
	case card.FieldDisplayName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDisplayName(v)
		return nil
	case card.FieldImage:
		v, ok := value.([]byte)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetImage(v)
		return nil
	case card.FieldImageExt:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetImageExt(v)
		return nil
	case card.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case card.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Card field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CardMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CardMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CardMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Card numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CardMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CardMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CardMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Card nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CardMutation) ResetField(name string) error {
	switch name {
	case card.FieldDisplayName:
		m.ResetDisplayName()
		return nil
	case card.FieldImage:
		m.ResetImage()
		return nil
	case card.FieldImageExt:
		m.ResetImageExt()
		return nil
	case card.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case card.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Card field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CardMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.fields != nil {
		edges = append(edges, card.EdgeFields)
	}
	if m.jobs != nil {
		edges = append(edges, card.EdgeJobs)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CardMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case card.EdgeFields:
		ids := make([]ent.Value, 0, len(m.fields))
		for id := range m.fields {
			ids = append(ids, id)
		}
		return ids
	case card.EdgeJobs:
		ids := make([]ent.Value, 0, len(m.jobs))
		for id := range m.jobs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CardMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedfields != nil {
		edges = append(edges, card.EdgeFields)
	}
	if m.removedjobs != nil {
		edges = append(edges, card.EdgeJobs)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CardMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case card.EdgeFields:
		ids := make([]ent.Value, 0, len(m.removedfields))
		for id := range m.removedfields {
			ids = append(ids, id)
		}
		return ids
	case card.EdgeJobs:
		ids := make([]ent.Value, 0, len(m.removedjobs))
		for id := range m.removedjobs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CardMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedfields {
		edges = append(edges, card.EdgeFields)
	}
	if m.clearedjobs {
		edges = append(edges, card.EdgeJobs)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CardMutation) EdgeCleared(name string) bool {
	switch name {
	case card.EdgeFields:
		return m.clearedfields
	case card.EdgeJobs:
		return m.clearedjobs
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CardMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Card unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CardMutation) ResetEdge(name string) error {
	switch name {
	case card.EdgeFields:
		m.ResetFields()
		return nil
	case card.EdgeJobs:
		m.ResetJobs()
		return nil
	}
	return fmt.Errorf("unknown Card edge %s", name)
}

// CardFieldMutation represents an operation that mutates the CardField nodes in the graph.
type CardFieldMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	category      *string
	raw_text      *string
	value         *string
	span_start    *int
	addspan_start *int
	span_end      *int
	addspan_end   *int
	created_at    *time.Time
	clearedFields map[string]struct{}
	card          *uuid.UUID
	clearedcard   bool
	done          bool
	oldValue      func(context.Context) (*CardField, error)
	predicates    []predicate.CardField
}

var _ ent.Mutation = (*CardFieldMutation)(nil)

// cardfieldOption allows management of the mutation configuration using functional options.
type cardfieldOption func(*CardFieldMutation)

// newCardFieldMutation creates new mutation for the CardField entity.
func newCardFieldMutation(c config, op Op, opts ...cardfieldOption) *CardFieldMutation {
	m := &CardFieldMutation{
		config:        c,
		op:            op,
		typ:           TypeCardField,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCardFieldID sets the ID field of the mutation.
func withCardFieldID(id uuid.UUID) cardfieldOption {
	return func(m *CardFieldMutation) {
		var (
			err   error
			once  sync.Once
			value *CardField
		)
		m.oldValue = func(ctx context.Context) (*CardField, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CardField.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCardField sets the old CardField of the mutation.
func withCardField(node *CardField) cardfieldOption {
	return func(m *CardFieldMutation) {
		m.oldValue = func(context.Context) (*CardField, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CardFieldMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CardFieldMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of CardField entities.
func (m *CardFieldMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CardFieldMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CardFieldMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CardField.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCardID sets the "card_id" field.
func (m *CardFieldMutation) SetCardID(u uuid.UUID) {
	m.card = &u
}

// CardID returns the value of the "card_id" field in the mutation.
func (m *CardFieldMutation) CardID() (r uuid.UUID, exists bool) {
	v := m.card
	if v == nil {
		return
	}
	return *v, true
}

// OldCardID returns the old "card_id" field's value of the CardField entity.
// If the CardField object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CardFieldMutation) OldCardID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCardID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCardID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCardID: %w", err)
	}
	return oldValue.CardID, nil
}

// ResetCardID resets all changes to the "card_id" field.
func (m *CardFieldMutation) ResetCardID() {
	m.card = nil
}

// SetCategory sets the "category" field.
func (m *CardFieldMutation) SetCategory(s string) {
	m.category = &s
}

// Category returns the value of the "category" field in the mutation.
func (m *CardFieldMutation) Category() (r string, exists bool) {
	v := m.category
	if v == nil {
		return
	}
	return *v, true
}

// OldCategory returns the old "category" field's value of the CardField entity.
// If the CardField object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CardFieldMutation) OldCategory(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategory: %w", err)
	}
	return oldValue.Category, nil
}

// ResetCategory resets all changes to the "category" field.
func (m *CardFieldMutation) ResetCategory() {
	m.category = nil
}

// SetRawText sets the "raw_text" field.
func (m *CardFieldMutation) SetRawText(s string) {
	m.raw_text = &s
}

// RawText returns the value of the "raw_text" field in the mutation.
func (m *CardFieldMutation) RawText() (r string, exists bool) {
	v := m.raw_text
	if v == nil {
		return
	}
	return *v, true
}

// OldRawText returns the old "raw_text" field's value of the CardField entity.
// If the CardField object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CardFieldMutation) OldRawText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRawText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRawText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRawText: %w", err)
	}
	return oldValue.RawText, nil
}

// ResetRawText resets all changes to the "raw_text" field.
func (m *CardFieldMutation) ResetRawText() {
	m.raw_text = nil
}

// SetValue sets the "value" field.
func (m *CardFieldMutation) SetValue(s string) {
	m.value = &s
}

// Value returns the value of the "value" field in the mutation.
func (m *CardFieldMutation) Value() (r string, exists bool) {
	v := m.value
	if v == nil {
		return
	}
	return *v, true
}

// OldValue returns the old "value" field's value of the CardField entity.
// If the CardField object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CardFieldMutation) OldValue(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValue: %w", err)
	}
	return oldValue.Value, nil
}

// ResetValue resets all changes to the "value" field.
func (m *CardFieldMutation) ResetValue() {
	m.value = nil
}

// SetSpanStart sets the "span_start" field.
func (m *CardFieldMutation) SetSpanStart(i int) {
	m.span_start = &i
	m.addspan_start = nil
}

// SpanStart returns the value of the "span_start" field in the mutation.
func (m *CardFieldMutation) SpanStart() (r int, exists bool) {
	v := m.span_start
	if v == nil {
		return
	}
	return *v, true
}

// OldSpanStart returns the old "span_start" field's value of the CardField entity.
// If the CardField object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CardFieldMutation) OldSpanStart(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSpanStart is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSpanStart requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSpanStart: %w", err)
	}
	return oldValue.SpanStart, nil
}

// AddSpanStart adds i to the "span_start" field.
func (m *CardFieldMutation) AddSpanStart(i int) {
	if m.addspan_start != nil {
		*m.addspan_start += i
	} else {
		m.addspan_start = &i
	}
}

// AddedSpanStart returns the value that was added to the "span_start" field in this mutation.
func (m *CardFieldMutation) AddedSpanStart() (r int, exists bool) {
	v := m.addspan_start
	if v == nil {
		return
	}
	return *v, true
}

// ResetSpanStart resets all changes to the "span_start" field.
func (m *CardFieldMutation) ResetSpanStart() {
	m.span_start = nil
	m.addspan_start = nil
}

// SetSpanEnd sets the "span_end" field.
func (m *CardFieldMutation) SetSpanEnd(i int) {
	m.span_end = &i
	m.addspan_end = nil
}

// SpanEnd returns the value of the "span_end" field in the mutation.
func (m *CardFieldMutation) SpanEnd() (r int, exists bool) {
	v := m.span_end
	if v == nil {
		return
	}
	return *v, true
}

// OldSpanEnd returns the old "span_end" field's value of the CardField entity.
// If the CardField object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CardFieldMutation) OldSpanEnd(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSpanEnd is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSpanEnd requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSpanEnd: %w", err)
	}
	return oldValue.SpanEnd, nil
}

// AddSpanEnd adds i to the "span_end" field.
func (m *CardFieldMutation) AddSpanEnd(i int) {
	if m.addspan_end != nil {
		*m.addspan_end += i
	} else {
		m.addspan_end = &i
	}
}

// AddedSpanEnd returns the value that was added to the "span_end" field in this mutation.
func (m *CardFieldMutation) AddedSpanEnd() (r int, exists bool) {
	v := m.addspan_end
	if v == nil {
		return
	}
	return *v, true
}

// ResetSpanEnd resets all changes to the "span_end" field.
func (m *CardFieldMutation) ResetSpanEnd() {
	m.span_end = nil
	m.addspan_end = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *CardFieldMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CardFieldMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the CardField entity.
// If the CardField object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CardFieldMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CardFieldMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearCard clears the "card" edge to the Card entity.
func (m *CardFieldMutation) ClearCard() {
	m.clearedcard = true
	m.clearedFields[cardfield.FieldCardID] = struct{}{}
}

// CardCleared reports if the "card" edge to the Card entity was cleared.
func (m *CardFieldMutation) CardCleared() bool {
	return m.clearedcard
}

// CardIDs returns the "card" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// CardID instead. It exists only for internal usage by the builders.
func (m *CardFieldMutation) CardIDs() (ids []uuid.UUID) {
	if id := m.card; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetCard resets all changes to the "card" edge.
func (m *CardFieldMutation) ResetCard() {
	m.card = nil
	m.clearedcard = false
}

// Where appends a list predicates to the CardFieldMutation builder.
func (m *CardFieldMutation) Where(ps ...predicate.CardField) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CardFieldMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CardFieldMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CardField, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CardFieldMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CardFieldMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CardField).
func (m *CardFieldMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CardFieldMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.card != nil {
		fields = append(fields, cardfield.FieldCardID)
	}
	if m.category != nil {
		fields = append(fields, cardfield.FieldCategory)
	}
	if m.raw_text != nil {
		fields = append(fields, cardfield.FieldRawText)
	}
	if m.value != nil {
		fields = append(fields, cardfield.FieldValue)
	}
	if m.span_start != nil {
		fields = append(fields, cardfield.FieldSpanStart)
	}
	if m.span_end != nil {
		fields = append(fields, cardfield.FieldSpanEnd)
	}
	if m.created_at != nil {
		fields = append(fields, cardfield.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CardFieldMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case cardfield.FieldCardID:
		return m.CardID()
	case cardfield.FieldCategory:
		return m.Category()
	case cardfield.FieldRawText:
		return m.RawText()
	case cardfield.FieldValue:
		return m.Value()
	case cardfield.FieldSpanStart:
		return m.SpanStart()
	case cardfield.FieldSpanEnd:
		return m.SpanEnd()
	case cardfield.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CardFieldMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case cardfield.FieldCardID:
		return m.OldCardID(ctx)
	case cardfield.FieldCategory:
		return m.OldCategory(ctx)
	case cardfield.FieldRawText:
		return m.OldRawText(ctx)
	case cardfield.FieldValue:
		return m.OldValue(ctx)
	case cardfield.FieldSpanStart:
		return m.OldSpanStart(ctx)
	case cardfield.FieldSpanEnd:
		return m.OldSpanEnd(ctx)
	case cardfield.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown CardField field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CardFieldMutation) SetField(name string, value ent.Value) error {
	switch name {
	case cardfield.FieldCardID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCardID(v)
		return nil
	case cardfield.FieldCategory:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategory(v)
		return nil
	case cardfield.FieldRawText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRawText(v)
		return nil
	case cardfield.FieldValue:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValue(v)
		return nil
	case cardfield.FieldSpanStart:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSpanStart(v)
		return nil
	case cardfield.FieldSpanEnd:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSpanEnd(v)
		return nil
	case cardfield.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown CardField field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CardFieldMutation) AddedFields() []string {
	var fields []string
	if m.addspan_start != nil {
		fields = append(fields, cardfield.FieldSpanStart)
	}
	if m.addspan_end != nil {
		fields = append(fields, cardfield.FieldSpanEnd)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CardFieldMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case cardfield.FieldSpanStart:
		return m.AddedSpanStart()
	case cardfield.FieldSpanEnd:
		return m.AddedSpanEnd()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CardFieldMutation) AddField(name string, value ent.Value) error {
	switch name {
	case cardfield.FieldSpanStart:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSpanStart(v)
		return nil
	case cardfield.FieldSpanEnd:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSpanEnd(v)
		return nil
	}
	return fmt.Errorf("unknown CardField numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CardFieldMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CardFieldMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CardFieldMutation) ClearField(name string) error {
	return fmt.Errorf("unknown CardField nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CardFieldMutation) ResetField(name string) error {
	switch name {
	case cardfield.FieldCardID:
		m.ResetCardID()
		return nil
	case cardfield.FieldCategory:
		m.ResetCategory()
		return nil
	case cardfield.FieldRawText:
		m.ResetRawText()
		return nil
	case cardfield.FieldValue:
		m.ResetValue()
		return nil
	case cardfield.FieldSpanStart:
		m.ResetSpanStart()
		return nil
	case cardfield.FieldSpanEnd:
		m.ResetSpanEnd()
		return nil
	case cardfield.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown CardField field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CardFieldMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.card != nil {
		edges = append(edges, cardfield.EdgeCard)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CardFieldMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case cardfield.EdgeCard:
		if id := m.card; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CardFieldMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CardFieldMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CardFieldMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedcard {
		edges = append(edges, cardfield.EdgeCard)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CardFieldMutation) EdgeCleared(name string) bool {
	switch name {
	case cardfield.EdgeCard:
		return m.clearedcard
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CardFieldMutation) ClearEdge(name string) error {
	switch name {
	case cardfield.EdgeCard:
		m.ClearCard()
		return nil
	}
	return fmt.Errorf("unknown CardField unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CardFieldMutation) ResetEdge(name string) error {
	switch name {
	case cardfield.EdgeCard:
		m.ResetCard()
		return nil
	}
	return fmt.Errorf("unknown CardField edge %s", name)
}

// ScanJobMutation represents an operation that mutates the ScanJob nodes in the graph.
type ScanJobMutation struct {
	config
	op             Op
	typ            string
	id             *uuid.UUID
	status         *string
	started_at     *time.Time
	finished_at    *time.Time
	error_message  *string
	needs_review   *bool
	ocr_text       *string
	field_count    *int
	addfield_count *int
	clearedFields  map[string]struct{}
	card           *uuid.UUID
	clearedcard    bool
	done           bool
	oldValue       func(context.Context) (*ScanJob, error)
	predicates     []predicate.ScanJob
}

var _ ent.Mutation = (*ScanJobMutation)(nil)

// scanjobOption allows management of the mutation configuration using functional options.
type scanjobOption func(*ScanJobMutation)

// newScanJobMutation creates new mutation for the ScanJob entity.
func newScanJobMutation(c config, op Op, opts ...scanjobOption) *ScanJobMutation {
	m := &ScanJobMutation{
		config:        c,
		op:            op,
		typ:           TypeScanJob,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withScanJobID sets the ID field of the mutation.
func withScanJobID(id uuid.UUID) scanjobOption {
	return func(m *ScanJobMutation) {
		var (
			err   error
			once  sync.Once
			value *ScanJob
		)
		m.oldValue = func(ctx context.Context) (*ScanJob, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ScanJob.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withScanJob sets the old ScanJob of the mutation.
func withScanJob(node *ScanJob) scanjobOption {
	return func(m *ScanJobMutation) {
		m.oldValue = func(context.Context) (*ScanJob, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ScanJobMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ScanJobMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ScanJob entities.
func (m *ScanJobMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ScanJobMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ScanJobMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ScanJob.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCardID sets the "card_id" field.
func (m *ScanJobMutation) SetCardID(u uuid.UUID) {
	m.card = &u
}

// CardID returns the value of the "card_id" field in the mutation.
func (m *ScanJobMutation) CardID() (r uuid.UUID, exists bool) {
	v := m.card
	if v == nil {
		return
	}
	return *v, true
}

// OldCardID returns the old "card_id" field's value of the ScanJob entity.
// If the ScanJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScanJobMutation) OldCardID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCardID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCardID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCardID: %w", err)
	}
	return oldValue.CardID, nil
}

// ResetCardID resets all changes to the "card_id" field.
func (m *ScanJobMutation) ResetCardID() {
	m.card = nil
}

// SetStatus sets the "status" field.
func (m *ScanJobMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *ScanJobMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ScanJob entity.
// If the ScanJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScanJobMutation) OldStatus(ctx context.Context) (v string, err error) {
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

// ResetStatus resets all changes to the "status" field.
func (m *ScanJobMutation) ResetStatus() {
	m.status = nil
}

// SetStartedAt sets the "started_at" field.
func (m *ScanJobMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *ScanJobMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the ScanJob entity.
// If the ScanJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScanJobMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *ScanJobMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetFinishedAt sets the "finished_at" field.
func (m *ScanJobMutation) SetFinishedAt(t time.Time) {
	m.finished_at = &t
}

// FinishedAt returns the value of the "finished_at" field in the mutation.
func (m *ScanJobMutation) FinishedAt() (r time.Time, exists bool) {
	v := m.finished_at
	if v == nil {
		return
	}
	return *v, true
}

// OldFinishedAt returns the old "finished_at" field's value of the ScanJob entity.
// If the ScanJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScanJobMutation) OldFinishedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinishedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinishedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinishedAt: %w", err)
	}
	return oldValue.FinishedAt, nil
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (m *ScanJobMutation) ClearFinishedAt() {
	m.finished_at = nil
	m.clearedFields[scanjob.FieldFinishedAt] = struct{}{}
}

// FinishedAtCleared returns if the "finished_at" field was cleared in this mutation.
func (m *ScanJobMutation) FinishedAtCleared() bool {
	_, ok := m.clearedFields[scanjob.FieldFinishedAt]
	return ok
}

// ResetFinishedAt resets all changes to the "finished_at" field.
func (m *ScanJobMutation) ResetFinishedAt() {
	m.finished_at = nil
	delete(m.clearedFields, scanjob.FieldFinishedAt)
}

// SetErrorMessage sets the "error_message" field.
func (m *ScanJobMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *ScanJobMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the ScanJob entity.
// If the ScanJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScanJobMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *ScanJobMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[scanjob.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *ScanJobMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[scanjob.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *ScanJobMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, scanjob.FieldErrorMessage)
}

// SetNeedsReview sets the "needs_review" field.
func (m *ScanJobMutation) SetNeedsReview(b bool) {
	m.needs_review = &b
}

// NeedsReview returns the value of the "needs_review" field in the mutation.
func (m *ScanJobMutation) NeedsReview() (r bool, exists bool) {
	v := m.needs_review
	if v == nil {
		return
	}
	return *v, true
}

// OldNeedsReview returns the old "needs_review" field's value of the ScanJob entity.
// If the ScanJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScanJobMutation) OldNeedsReview(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNeedsReview is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNeedsReview requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNeedsReview: %w", err)
	}
	return oldValue.NeedsReview, nil
}

// ResetNeedsReview resets all changes to the "needs_review" field.
func (m *ScanJobMutation) ResetNeedsReview() {
	m.needs_review = nil
}

// SetOcrText sets the "ocr_text" field.
func (m *ScanJobMutation) SetOcrText(s string) {
	m.ocr_text = &s
}

// OcrText returns the value of the "ocr_text" field in the mutation.
func (m *ScanJobMutation) OcrText() (r string, exists bool) {
	v := m.ocr_text
	if v == nil {
		return
	}
	return *v, true
}

// OldOcrText returns the old "ocr_text" field's value of the ScanJob entity.
// If the ScanJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScanJobMutation) OldOcrText(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOcrText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOcrText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOcrText: %w", err)
	}
	return oldValue.OcrText, nil
}

// ClearOcrText clears the value of the "ocr_text" field.
func (m *ScanJobMutation) ClearOcrText() {
	m.ocr_text = nil
	m.clearedFields[scanjob.FieldOcrText] = struct{}{}
}

// OcrTextCleared returns if the "ocr_text" field was cleared in this mutation.
func (m *ScanJobMutation) OcrTextCleared() bool {
	_, ok := m.clearedFields[scanjob.FieldOcrText]
	return ok
}

// ResetOcrText resets all changes to the "ocr_text" field.
func (m *ScanJobMutation) ResetOcrText() {
	m.ocr_text = nil
	delete(m.clearedFields, scanjob.FieldOcrText)
}

// SetFieldCount sets the "field_count" field.
func (m *ScanJobMutation) SetFieldCount(i int) {
	m.field_count = &i
	m.addfield_count = nil
}

// FieldCount returns the value of the "field_count" field in the mutation.
func (m *ScanJobMutation) FieldCount() (r int, exists bool) {
	v := m.field_count
	if v == nil {
		return
	}
	return *v, true
}

// OldFieldCount returns the old "field_count" field's value of the ScanJob entity.
// If the ScanJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScanJobMutation) OldFieldCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFieldCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFieldCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFieldCount: %w", err)
	}
	return oldValue.FieldCount, nil
}

// AddFieldCount adds i to the "field_count" field.
func (m *ScanJobMutation) AddFieldCount(i int) {
	if m.addfield_count != nil {
		*m.addfield_count += i
	} else {
		m.addfield_count = &i
	}
}

// AddedFieldCount returns the value that was added to the "field_count" field in this mutation.
func (m *ScanJobMutation) AddedFieldCount() (r int, exists bool) {
	v := m.addfield_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetFieldCount resets all changes to the "field_count" field.
func (m *ScanJobMutation) ResetFieldCount() {
	m.field_count = nil
	m.addfield_count = nil
}

// ClearCard clears the "card" edge to the Card entity.
func (m *ScanJobMutation) ClearCard() {
	m.clearedcard = true
	m.clearedFields[scanjob.FieldCardID] = struct{}{}
}

// CardCleared reports if the "card" edge to the Card entity was cleared.
func (m *ScanJobMutation) CardCleared() bool {
	return m.clearedcard
}

// CardIDs returns the "card" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// CardID instead. It exists only for internal usage by the builders.
func (m *ScanJobMutation) CardIDs() (ids []uuid.UUID) {
	if id := m.card; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetCard resets all changes to the "card" edge.
func (m *ScanJobMutation) ResetCard() {
	m.card = nil
	m.clearedcard = false
}

// Where appends a list predicates to the ScanJobMutation builder.
func (m *ScanJobMutation) Where(ps ...predicate.ScanJob) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ScanJobMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ScanJobMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ScanJob, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ScanJobMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ScanJobMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ScanJob).
func (m *ScanJobMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ScanJobMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.card != nil {
		fields = append(fields, scanjob.FieldCardID)
	}
	if m.status != nil {
		fields = append(fields, scanjob.FieldStatus)
	}
	if m.started_at != nil {
		fields = append(fields, scanjob.FieldStartedAt)
	}
	if m.finished_at != nil {
		fields = append(fields, scanjob.FieldFinishedAt)
	}
	if m.error_message != nil {
		fields = append(fields, scanjob.FieldErrorMessage)
	}
	if m.needs_review != nil {
		fields = append(fields, scanjob.FieldNeedsReview)
	}
	if m.ocr_text != nil {
		fields = append(fields, scanjob.FieldOcrText)
	}
	if m.field_count != nil {
		fields = append(fields, scanjob.FieldFieldCount)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ScanJobMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case scanjob.FieldCardID:
		return m.CardID()
	case scanjob.FieldStatus:
		return m.Status()
	case scanjob.FieldStartedAt:
		return m.StartedAt()
	case scanjob.FieldFinishedAt:
		return m.FinishedAt()
	case scanjob.FieldErrorMessage:
		return m.ErrorMessage()
	case scanjob.FieldNeedsReview:
		return m.NeedsReview()
	case scanjob.FieldOcrText:
		return m.OcrText()
	case scanjob.FieldFieldCount:
		return m.FieldCount()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ScanJobMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case scanjob.FieldCardID:
		return m.OldCardID(ctx)
	case scanjob.FieldStatus:
		return m.OldStatus(ctx)
	case scanjob.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case scanjob.FieldFinishedAt:
		return m.OldFinishedAt(ctx)
	case scanjob.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case scanjob.FieldNeedsReview:
		return m.OldNeedsReview(ctx)
	case scanjob.FieldOcrText:
		return m.OldOcrText(ctx)
	case scanjob.FieldFieldCount:
		return m.OldFieldCount(ctx)
	}
	return nil, fmt.Errorf("unknown ScanJob field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ScanJobMutation) SetField(name string, value ent.Value) error {
	switch name {
	case scanjob.FieldCardID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCardID(v)
		return nil
	case scanjob.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case scanjob.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case scanjob.FieldFinishedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinishedAt(v)
		return nil
	case scanjob.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case scanjob.FieldNeedsReview:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNeedsReview(v)
		return nil
	case scanjob.FieldOcrText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOcrText(v)
		return nil
	case scanjob.FieldFieldCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFieldCount(v)
		return nil
	}
	return fmt.Errorf("unknown ScanJob field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ScanJobMutation) AddedFields() []string {
	var fields []string
	if m.addfield_count != nil {
		fields = append(fields, scanjob.FieldFieldCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ScanJobMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case scanjob.FieldFieldCount:
		return m.AddedFieldCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ScanJobMutation) AddField(name string, value ent.Value) error {
	switch name {
	case scanjob.FieldFieldCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFieldCount(v)
		return nil
	}
	return fmt.Errorf("unknown ScanJob numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ScanJobMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(scanjob.FieldFinishedAt) {
		fields = append(fields, scanjob.FieldFinishedAt)
	}
	if m.FieldCleared(scanjob.FieldErrorMessage) {
		fields = append(fields, scanjob.FieldErrorMessage)
	}
	if m.FieldCleared(scanjob.FieldOcrText) {
		fields = append(fields, scanjob.FieldOcrText)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ScanJobMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ScanJobMutation) ClearField(name string) error {
	switch name {
	case scanjob.FieldFinishedAt:
		m.ClearFinishedAt()
		return nil
	case scanjob.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case scanjob.FieldOcrText:
		m.ClearOcrText()
		return nil
	}
	return fmt.Errorf("unknown ScanJob nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ScanJobMutation) ResetField(name string) error {
	switch name {
	case scanjob.FieldCardID:
		m.ResetCardID()
		return nil
	case scanjob.FieldStatus:
		m.ResetStatus()
		return nil
	case scanjob.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case scanjob.FieldFinishedAt:
		m.ResetFinishedAt()
		return nil
	case scanjob.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case scanjob.FieldNeedsReview:
		m.ResetNeedsReview()
		return nil
	case scanjob.FieldOcrText:
		m.ResetOcrText()
		return nil
	case scanjob.FieldFieldCount:
		m.ResetFieldCount()
		return nil
	}
	return fmt.Errorf("unknown ScanJob field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ScanJobMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.card != nil {
		edges = append(edges, scanjob.EdgeCard)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ScanJobMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case scanjob.EdgeCard:
		if id := m.card; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ScanJobMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ScanJobMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ScanJobMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedcard {
		edges = append(edges, scanjob.EdgeCard)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ScanJobMutation) EdgeCleared(name string) bool {
	switch name {
	case scanjob.EdgeCard:
		return m.clearedcard
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ScanJobMutation) ClearEdge(name string) error {
	switch name {
	case scanjob.EdgeCard:
		m.ClearCard()
		return nil
	}
	return fmt.Errorf("unknown ScanJob unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ScanJobMutation) ResetEdge(name string) error {
	switch name {
	case scanjob.EdgeCard:
		m.ResetCard()
		return nil
	}
	return fmt.Errorf("unknown ScanJob edge %s", name)
}
