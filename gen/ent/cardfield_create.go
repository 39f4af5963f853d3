// Code generated by ent, DO NOT EDIT.

package ent

import (
	"cardvault/gen/ent/card"
	"cardvault/gen/ent/cardfield"
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// CardFieldCreate is the builder for creating a CardField entity.
type CardFieldCreate struct {
	config
	mutation *CardFieldMutation
	hooks    []Hook
}

// SetCardID sets the "card_id" field.
func (_c *CardFieldCreate) SetCardID(v uuid.UUID) *CardFieldCreate {
	_c.mutation.SetCardID(v)
	return _c
}

// SetCategory sets the "category" field.
func (_c *CardFieldCreate) SetCategory(v string) *CardFieldCreate {
	_c.mutation.SetCategory(v)
	return _c
}

// SetRawText sets the "raw_text" field.
func (_c *CardFieldCreate) SetRawText(v string) *CardFieldCreate {
	_c.mutation.SetRawText(v)
	return _c
}

// SetNillableRawText sets the "raw_text" field if the given value is not nil.
func (_c *CardFieldCreate) SetNillableRawText(v *string) *CardFieldCreate {
	if v != nil {
		_c.SetRawText(*v)
	}
	return _c
}

// SetValue sets the "value" field.
func (_c *CardFieldCreate) SetValue(v string) *CardFieldCreate {
	_c.mutation.SetValue(v)
	return _c
}

// SetNillableValue sets the "value" field if the given value is not nil.
func (_c *CardFieldCreate) SetNillableValue(v *string) *CardFieldCreate {
	if v != nil {
		_c.SetValue(*v)
	}
	return _c
}

// SetSpanStart sets the "span_start" field.
func (_c *CardFieldCreate) SetSpanStart(v int) *CardFieldCreate {
	_c.mutation.SetSpanStart(v)
	return _c
}

// SetNillableSpanStart sets the "span_start" field if the given value is not nil.
func (_c *CardFieldCreate) SetNillableSpanStart(v *int) *CardFieldCreate {
	if v != nil {
		_c.SetSpanStart(*v)
	}
	return _c
}

// SetSpanEnd sets the "span_end" field.
func (_c *CardFieldCreate) SetSpanEnd(v int) *CardFieldCreate {
	_c.mutation.SetSpanEnd(v)
	return _c
}

// SetNillableSpanEnd sets the "span_end" field if the given value is not nil.
func (_c *CardFieldCreate) SetNillableSpanEnd(v *int) *CardFieldCreate {
	if v != nil {
		_c.SetSpanEnd(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *CardFieldCreate) SetCreatedAt(v time.Time) *CardFieldCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CardFieldCreate) SetNillableCreatedAt(v *time.Time) *CardFieldCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CardFieldCreate) SetID(v uuid.UUID) *CardFieldCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *CardFieldCreate) SetNillableID(v *uuid.UUID) *CardFieldCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetCard sets the "card" edge to the Card entity.
func (_c *CardFieldCreate) SetCard(v *Card) *CardFieldCreate {
	return _c.SetCardID(v.ID)
}

// Mutation returns the CardFieldMutation object of the builder.
func (_c *CardFieldCreate) Mutation() *CardFieldMutation {
	return _c.mutation
}

// Save creates the CardField in the database.
func (_c *CardFieldCreate) Save(ctx context.Context) (*CardField, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CardFieldCreate) SaveX(ctx context.Context) *CardField {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CardFieldCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CardFieldCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CardFieldCreate) defaults() {
	if _, ok := _c.mutation.RawText(); !ok {
		v := cardfield.DefaultRawText
		_c.mutation.SetRawText(v)
	}
	if _, ok := _c.mutation.Value(); !ok {
		v := cardfield.DefaultValue
		_c.mutation.SetValue(v)
	}
	if _, ok := _c.mutation.SpanStart(); !ok {
		v := cardfield.DefaultSpanStart
		_c.mutation.SetSpanStart(v)
	}
	if _, ok := _c.mutation.SpanEnd(); !ok {
		v := cardfield.DefaultSpanEnd
		_c.mutation.SetSpanEnd(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := cardfield.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := cardfield.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CardFieldCreate) check() error {
	if _, ok := _c.mutation.CardID(); !ok {
		return &ValidationError{Name: "card_id", err: errors.New(`ent: missing required field "CardField.card_id"`)}
	}
	if _, ok := _c.mutation.Category(); !ok {
		return &ValidationError{Name: "category", err: errors.New(`ent: missing required field "CardField.category"`)}
	}
	if v, ok := _c.mutation.Category(); ok {
		if err := cardfield.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "CardField.category": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RawText(); !ok {
		return &ValidationError{Name: "raw_text", err: errors.New(`ent: missing required field "CardField.raw_text"`)}
	}
	if _, ok := _c.mutation.Value(); !ok {
		return &ValidationError{Name: "value", err: errors.New(`ent: missing required field "CardField.value"`)}
	}
	if _, ok := _c.mutation.SpanStart(); !ok {
		return &ValidationError{Name: "span_start", err: errors.New(`ent: missing required field "CardField.span_start"`)}
	}
	if _, ok := _c.mutation.SpanEnd(); !ok {
		return &ValidationError{Name: "span_end", err: errors.New(`ent: missing required field "CardField.span_end"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "CardField.created_at"`)}
	}
	if len(_c.mutation.CardIDs()) == 0 {
		return &ValidationError{Name: "card", err: errors.New(`ent: missing required edge "CardField.card"`)}
	}
	return nil
}

func (_c *CardFieldCreate) sqlSave(ctx context.Context) (*CardField, error) {
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
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CardFieldCreate) createSpec() (*CardField, *sqlgraph.CreateSpec) {
	var (
		_node = &CardField{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(cardfield.Table, sqlgraph.NewFieldSpec(cardfield.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Category(); ok {
		_spec.SetField(cardfield.FieldCategory, field.TypeString, value)
		_node.Category = value
	}
	if value, ok := _c.mutation.RawText(); ok {
		_spec.SetField(cardfield.FieldRawText, field.TypeString, value)
		_node.RawText = value
	}
	if value, ok := _c.mutation.Value(); ok {
		_spec.SetField(cardfield.FieldValue, field.TypeString, value)
		_node.Value = value
	}
	if value, ok := _c.mutation.SpanStart(); ok {
		_spec.SetField(cardfield.FieldSpanStart, field.TypeInt, value)
		_node.SpanStart = value
	}
	if value, ok := _c.mutation.SpanEnd(); ok {
		_spec.SetField(cardfield.FieldSpanEnd, field.TypeInt, value)
		_node.SpanEnd = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(cardfield.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.CardIDs(); len(nodes) > 0 {
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
		_node.CardID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// CardFieldCreateBulk is the builder for creating many CardField entities in bulk.
type CardFieldCreateBulk struct {
	config
	err      error
	builders []*CardFieldCreate
}

// Save creates the CardField entities in the database.
func (_c *CardFieldCreateBulk) Save(ctx context.Context) ([]*CardField, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CardField, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CardFieldMutation)
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
func (_c *CardFieldCreateBulk) SaveX(ctx context.Context) []*CardField {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CardFieldCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CardFieldCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
