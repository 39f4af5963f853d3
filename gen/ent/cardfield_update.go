// Code generated by ent, DO NOT EDIT.

package ent

import (
	"cardvault/gen/ent/card"
	"cardvault/gen/ent/cardfield"
	"cardvault/gen/ent/predicate"
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// CardFieldUpdate is the builder for updating CardField entities.
type CardFieldUpdate struct {
	config
	hooks    []Hook
	mutation *CardFieldMutation
}

// Where appends a list predicates to the CardFieldUpdate builder.
func (_u *CardFieldUpdate) Where(ps ...predicate.CardField) *CardFieldUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCardID sets the "card_id" field.
func (_u *CardFieldUpdate) SetCardID(v uuid.UUID) *CardFieldUpdate {
	_u.mutation.SetCardID(v)
	return _u
}

// SetNillableCardID sets the "card_id" field if the given value is not nil.
func (_u *CardFieldUpdate) SetNillableCardID(v *uuid.UUID) *CardFieldUpdate {
	if v != nil {
		_u.SetCardID(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *CardFieldUpdate) SetCategory(v string) *CardFieldUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *CardFieldUpdate) SetNillableCategory(v *string) *CardFieldUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetRawText sets the "raw_text" field.
func (_u *CardFieldUpdate) SetRawText(v string) *CardFieldUpdate {
	_u.mutation.SetRawText(v)
	return _u
}

// SetNillableRawText sets the "raw_text" field if the given value is not nil.
func (_u *CardFieldUpdate) SetNillableRawText(v *string) *CardFieldUpdate {
	if v != nil {
		_u.SetRawText(*v)
	}
	return _u
}

// SetValue sets the "value" field.
func (_u *CardFieldUpdate) SetValue(v string) *CardFieldUpdate {
	_u.mutation.SetValue(v)
	return _u
}

// SetNillableValue sets the "value" field if the given value is not nil.
func (_u *CardFieldUpdate) SetNillableValue(v *string) *CardFieldUpdate {
	if v != nil {
		_u.SetValue(*v)
	}
	return _u
}

// SetSpanStart sets the "span_start" field.
func (_u *CardFieldUpdate) SetSpanStart(v int) *CardFieldUpdate {
	_u.mutation.ResetSpanStart()
	_u.mutation.SetSpanStart(v)
	return _u
}

// SetNillableSpanStart sets the "span_start" field if the given value is not nil.
func (_u *CardFieldUpdate) SetNillableSpanStart(v *int) *CardFieldUpdate {
	if v != nil {
		_u.SetSpanStart(*v)
	}
	return _u
}

// AddSpanStart adds value to the "span_start" field.
func (_u *CardFieldUpdate) AddSpanStart(v int) *CardFieldUpdate {
	_u.mutation.AddSpanStart(v)
	return _u
}

// SetSpanEnd sets the "span_end" field.
func (_u *CardFieldUpdate) SetSpanEnd(v int) *CardFieldUpdate {
	_u.mutation.ResetSpanEnd()
	_u.mutation.SetSpanEnd(v)
	return _u
}

// SetNillableSpanEnd sets the "span_end" field if the given value is not nil.
func (_u *CardFieldUpdate) SetNillableSpanEnd(v *int) *CardFieldUpdate {
	if v != nil {
		_u.SetSpanEnd(*v)
	}
	return _u
}

// AddSpanEnd adds value to the "span_end" field.
func (_u *CardFieldUpdate) AddSpanEnd(v int) *CardFieldUpdate {
	_u.mutation.AddSpanEnd(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *CardFieldUpdate) SetCreatedAt(v time.Time) *CardFieldUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *CardFieldUpdate) SetNillableCreatedAt(v *time.Time) *CardFieldUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetCard sets the "card" edge to the Card entity.
func (_u *CardFieldUpdate) SetCard(v *Card) *CardFieldUpdate {
	return _u.SetCardID(v.ID)
}

// Mutation returns the CardFieldMutation object of the builder.
func (_u *CardFieldUpdate) Mutation() *CardFieldMutation {
	return _u.mutation
}

// ClearCard clears the "card" edge to the Card entity.
func (_u *CardFieldUpdate) ClearCard() *CardFieldUpdate {
	_u.mutation.ClearCard()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CardFieldUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CardFieldUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CardFieldUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CardFieldUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CardFieldUpdate) check() error {
	if v, ok := _u.mutation.Category(); ok {
		if err := cardfield.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "CardField.category": %w`, err)}
		}
	}
	if _u.mutation.CardCleared() && len(_u.mutation.CardIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CardField.card"`)
	}
	return nil
}

func (_u *CardFieldUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(cardfield.Table, cardfield.Columns, sqlgraph.NewFieldSpec(cardfield.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(cardfield.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.RawText(); ok {
		_spec.SetField(cardfield.FieldRawText, field.TypeString, value)
	}
	if value, ok := _u.mutation.Value(); ok {
		_spec.SetField(cardfield.FieldValue, field.TypeString, value)
	}
	if value, ok := _u.mutation.SpanStart(); ok {
		_spec.SetField(cardfield.FieldSpanStart, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSpanStart(); ok {
		_spec.AddField(cardfield.FieldSpanStart, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SpanEnd(); ok {
		_spec.SetField(cardfield.FieldSpanEnd, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSpanEnd(); ok {
		_spec.AddField(cardfield.FieldSpanEnd, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(cardfield.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.CardCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   cardfield.CardTable,
			Columns: []string{cardfield.CardColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(card.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CardIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   cardfield.CardTable,
			Columns: []string{cardfield.CardColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(card.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{cardfield.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CardFieldUpdateOne is the builder for updating a single CardField entity.
type CardFieldUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CardFieldMutation
}

// SetCardID sets the "card_id" field.
func (_u *CardFieldUpdateOne) SetCardID(v uuid.UUID) *CardFieldUpdateOne {
	_u.mutation.SetCardID(v)
	return _u
}

// SetNillableCardID sets the "card_id" field if the given value is not nil.
func (_u *CardFieldUpdateOne) SetNillableCardID(v *uuid.UUID) *CardFieldUpdateOne {
	if v != nil {
		_u.SetCardID(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *CardFieldUpdateOne) SetCategory(v string) *CardFieldUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *CardFieldUpdateOne) SetNillableCategory(v *string) *CardFieldUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetRawText sets the "raw_text" field.
func (_u *CardFieldUpdateOne) SetRawText(v string) *CardFieldUpdateOne {
	_u.mutation.SetRawText(v)
	return _u
}

// SetNillableRawText sets the "raw_text" field if the given value is not nil.
func (_u *CardFieldUpdateOne) SetNillableRawText(v *string) *CardFieldUpdateOne {
	if v != nil {
		_u.SetRawText(*v)
	}
	return _u
}

// SetValue sets the "value" field.
func (_u *CardFieldUpdateOne) SetValue(v string) *CardFieldUpdateOne {
	_u.mutation.SetValue(v)
	return _u
}

// SetNillableValue sets the "value" field if the given value is not nil.
func (_u *CardFieldUpdateOne) SetNillableValue(v *string) *CardFieldUpdateOne {
	if v != nil {
		_u.SetValue(*v)
	}
	return _u
}

// SetSpanStart sets the "span_start" field.
func (_u *CardFieldUpdateOne) SetSpanStart(v int) *CardFieldUpdateOne {
	_u.mutation.ResetSpanStart()
	_u.mutation.SetSpanStart(v)
	return _u
}

// SetNillableSpanStart sets the "span_start" field if the given value is not nil.
func (_u *CardFieldUpdateOne) SetNillableSpanStart(v *int) *CardFieldUpdateOne {
	if v != nil {
		_u.SetSpanStart(*v)
	}
	return _u
}

// AddSpanStart adds value to the "span_start" field.
func (_u *CardFieldUpdateOne) AddSpanStart(v int) *CardFieldUpdateOne {
	_u.mutation.AddSpanStart(v)
	return _u
}

// SetSpanEnd sets the "span_end" field.
func (_u *CardFieldUpdateOne) SetSpanEnd(v int) *CardFieldUpdateOne {
	_u.mutation.ResetSpanEnd()
	_u.mutation.SetSpanEnd(v)
	return _u
}

// SetNillableSpanEnd sets the "span_end" field if the given value is not nil.
func (_u *CardFieldUpdateOne) SetNillableSpanEnd(v *int) *CardFieldUpdateOne {
	if v != nil {
		_u.SetSpanEnd(*v)
	}
	return _u
}

// AddSpanEnd adds value to the "span_end" field.
func (_u *CardFieldUpdateOne) AddSpanEnd(v int) *CardFieldUpdateOne {
	_u.mutation.AddSpanEnd(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *CardFieldUpdateOne) SetCreatedAt(v time.Time) *CardFieldUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *CardFieldUpdateOne) SetNillableCreatedAt(v *time.Time) *CardFieldUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetCard sets the "card" edge to the Card entity.
func (_u *CardFieldUpdateOne) SetCard(v *Card) *CardFieldUpdateOne {
	return _u.SetCardID(v.ID)
}

// Mutation returns the CardFieldMutation object of the builder.
func (_u *CardFieldUpdateOne) Mutation() *CardFieldMutation {
	return _u.mutation
}

// ClearCard clears the "card" edge to the Card entity.
func (_u *CardFieldUpdateOne) ClearCard() *CardFieldUpdateOne {
	_u.mutation.ClearCard()
	return _u
}

// Where appends a list predicates to the CardFieldUpdate builder.
func (_u *CardFieldUpdateOne) Where(ps ...predicate.CardField) *CardFieldUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CardFieldUpdateOne) Select(field string, fields ...string) *CardFieldUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CardField entity.
func (_u *CardFieldUpdateOne) Save(ctx context.Context) (*CardField, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CardFieldUpdateOne) SaveX(ctx context.Context) *CardField {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CardFieldUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CardFieldUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CardFieldUpdateOne) check() error {
	if v, ok := _u.mutation.Category(); ok {
		if err := cardfield.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "CardField.category": %w`, err)}
		}
	}
	if _u.mutation.CardCleared() && len(_u.mutation.CardIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CardField.card"`)
	}
	return nil
}

func (_u *CardFieldUpdateOne) sqlSave(ctx context.Context) (_node *CardField, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(cardfield.Table, cardfield.Columns, sqlgraph.NewFieldSpec(cardfield.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CardField.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, cardfield.FieldID)
		for _, f := range fields {
			if !cardfield.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != cardfield.FieldID {
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
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(cardfield.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.RawText(); ok {
		_spec.SetField(cardfield.FieldRawText, field.TypeString, value)
	}
	if value, ok := _u.mutation.Value(); ok {
		_spec.SetField(cardfield.FieldValue, field.TypeString, value)
	}
	if value, ok := _u.mutation.SpanStart(); ok {
		_spec.SetField(cardfield.FieldSpanStart, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSpanStart(); ok {
		_spec.AddField(cardfield.FieldSpanStart, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SpanEnd(); ok {
		_spec.SetField(cardfield.FieldSpanEnd, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSpanEnd(); ok {
		_spec.AddField(cardfield.FieldSpanEnd, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(cardfield.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.CardCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   cardfield.CardTable,
			Columns: []string{cardfield.CardColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(card.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CardIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   cardfield.CardTable,
			Columns: []string{cardfield.CardColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(card.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &CardField{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{cardfield.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
