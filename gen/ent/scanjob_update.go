// Code generated by ent, DO NOT EDIT.

package ent

import (
	"cardvault/gen/ent/card"
	"cardvault/gen/ent/predicate"
	"cardvault/gen/ent/scanjob"
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// ScanJobUpdate is the builder for updating ScanJob entities.
type ScanJobUpdate struct {
	config
	hooks    []Hook
	mutation *ScanJobMutation
}

// Where appends a list predicates to the ScanJobUpdate builder.
func (_u *ScanJobUpdate) Where(ps ...predicate.ScanJob) *ScanJobUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCardID sets the "card_id" field.
func (_u *ScanJobUpdate) SetCardID(v uuid.UUID) *ScanJobUpdate {
	_u.mutation.SetCardID(v)
	return _u
}

// SetNillableCardID sets the "card_id" field if the given value is not nil.
func (_u *ScanJobUpdate) SetNillableCardID(v *uuid.UUID) *ScanJobUpdate {
	if v != nil {
		_u.SetCardID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ScanJobUpdate) SetStatus(v string) *ScanJobUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ScanJobUpdate) SetNillableStatus(v *string) *ScanJobUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *ScanJobUpdate) SetStartedAt(v time.Time) *ScanJobUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *ScanJobUpdate) SetNillableStartedAt(v *time.Time) *ScanJobUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *ScanJobUpdate) SetFinishedAt(v time.Time) *ScanJobUpdate {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *ScanJobUpdate) SetNillableFinishedAt(v *time.Time) *ScanJobUpdate {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *ScanJobUpdate) ClearFinishedAt() *ScanJobUpdate {
	_u.mutation.ClearFinishedAt()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ScanJobUpdate) SetErrorMessage(v string) *ScanJobUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ScanJobUpdate) SetNillableErrorMessage(v *string) *ScanJobUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ScanJobUpdate) ClearErrorMessage() *ScanJobUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetNeedsReview sets the "needs_review" field.
func (_u *ScanJobUpdate) SetNeedsReview(v bool) *ScanJobUpdate {
	_u.mutation.SetNeedsReview(v)
	return _u
}

// SetNillableNeedsReview sets the "needs_review" field if the given value is not nil.
func (_u *ScanJobUpdate) SetNillableNeedsReview(v *bool) *ScanJobUpdate {
	if v != nil {
		_u.SetNeedsReview(*v)
	}
	return _u
}

// SetOcrText sets the "ocr_text" field.
func (_u *ScanJobUpdate) SetOcrText(v string) *ScanJobUpdate {
	_u.mutation.SetOcrText(v)
	return _u
}

// SetNillableOcrText sets the "ocr_text" field if the given value is not nil.
func (_u *ScanJobUpdate) SetNillableOcrText(v *string) *ScanJobUpdate {
	if v != nil {
		_u.SetOcrText(*v)
	}
	return _u
}

// ClearOcrText clears the value of the "ocr_text" field.
func (_u *ScanJobUpdate) ClearOcrText() *ScanJobUpdate {
	_u.mutation.ClearOcrText()
	return _u
}

// SetFieldCount sets the "field_count" field.
func (_u *ScanJobUpdate) SetFieldCount(v int) *ScanJobUpdate {
	_u.mutation.ResetFieldCount()
	_u.mutation.SetFieldCount(v)
	return _u
}

// SetNillableFieldCount sets the "field_count" field if the given value is not nil.
func (_u *ScanJobUpdate) SetNillableFieldCount(v *int) *ScanJobUpdate {
	if v != nil {
		_u.SetFieldCount(*v)
	}
	return _u
}

// AddFieldCount adds value to the "field_count" field.
func (_u *ScanJobUpdate) AddFieldCount(v int) *ScanJobUpdate {
	_u.mutation.AddFieldCount(v)
	return _u
}

// SetCard sets the "card" edge to the Card entity.
func (_u *ScanJobUpdate) SetCard(v *Card) *ScanJobUpdate {
	return _u.SetCardID(v.ID)
}

// Mutation returns the ScanJobMutation object of the builder.
func (_u *ScanJobUpdate) Mutation() *ScanJobMutation {
	return _u.mutation
}

// ClearCard clears the "card" edge to the Card entity.
func (_u *ScanJobUpdate) ClearCard() *ScanJobUpdate {
	_u.mutation.ClearCard()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ScanJobUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ScanJobUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ScanJobUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ScanJobUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ScanJobUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := scanjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ScanJob.status": %w`, err)}
		}
	}
	if _u.mutation.CardCleared() && len(_u.mutation.CardIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ScanJob.card"`)
	}
	return nil
}

func (_u *ScanJobUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(scanjob.Table, scanjob.Columns, sqlgraph.NewFieldSpec(scanjob.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(scanjob.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(scanjob.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(scanjob.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(scanjob.FieldFinishedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(scanjob.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(scanjob.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.NeedsReview(); ok {
		_spec.SetField(scanjob.FieldNeedsReview, field.TypeBool, value)
	}
	if value, ok := _u.mutation.OcrText(); ok {
		_spec.SetField(scanjob.FieldOcrText, field.TypeString, value)
	}
	if _u.mutation.OcrTextCleared() {
		_spec.ClearField(scanjob.FieldOcrText, field.TypeString)
	}
	if value, ok := _u.mutation.FieldCount(); ok {
		_spec.SetField(scanjob.FieldFieldCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFieldCount(); ok {
		_spec.AddField(scanjob.FieldFieldCount, field.TypeInt, value)
	}
	if _u.mutation.CardCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   scanjob.CardTable,
			Columns: []string{scanjob.CardColumn},
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
			Table:   scanjob.CardTable,
			Columns: []string{scanjob.CardColumn},
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
			err = &NotFoundError{scanjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ScanJobUpdateOne is the builder for updating a single ScanJob entity.
type ScanJobUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ScanJobMutation
}

// SetCardID sets the "card_id" field.
func (_u *ScanJobUpdateOne) SetCardID(v uuid.UUID) *ScanJobUpdateOne {
	_u.mutation.SetCardID(v)
	return _u
}

// SetNillableCardID sets the "card_id" field if the given value is not nil.
func (_u *ScanJobUpdateOne) SetNillableCardID(v *uuid.UUID) *ScanJobUpdateOne {
	if v != nil {
		_u.SetCardID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ScanJobUpdateOne) SetStatus(v string) *ScanJobUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ScanJobUpdateOne) SetNillableStatus(v *string) *ScanJobUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *ScanJobUpdateOne) SetStartedAt(v time.Time) *ScanJobUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *ScanJobUpdateOne) SetNillableStartedAt(v *time.Time) *ScanJobUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *ScanJobUpdateOne) SetFinishedAt(v time.Time) *ScanJobUpdateOne {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *ScanJobUpdateOne) SetNillableFinishedAt(v *time.Time) *ScanJobUpdateOne {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *ScanJobUpdateOne) ClearFinishedAt() *ScanJobUpdateOne {
	_u.mutation.ClearFinishedAt()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ScanJobUpdateOne) SetErrorMessage(v string) *ScanJobUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ScanJobUpdateOne) SetNillableErrorMessage(v *string) *ScanJobUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ScanJobUpdateOne) ClearErrorMessage() *ScanJobUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetNeedsReview sets the "needs_review" field.
func (_u *ScanJobUpdateOne) SetNeedsReview(v bool) *ScanJobUpdateOne {
	_u.mutation.SetNeedsReview(v)
	return _u
}

// SetNillableNeedsReview sets the "needs_review" field if the given value is not nil.
func (_u *ScanJobUpdateOne) SetNillableNeedsReview(v *bool) *ScanJobUpdateOne {
	if v != nil {
		_u.SetNeedsReview(*v)
	}
	return _u
}

// SetOcrText sets the "ocr_text" field.
func (_u *ScanJobUpdateOne) SetOcrText(v string) *ScanJobUpdateOne {
	_u.mutation.SetOcrText(v)
	return _u
}

// SetNillableOcrText sets the "ocr_text" field if the given value is not nil.
func (_u *ScanJobUpdateOne) SetNillableOcrText(v *string) *ScanJobUpdateOne {
	if v != nil {
		_u.SetOcrText(*v)
	}
	return _u
}

// ClearOcrText clears the value of the "ocr_text" field.
func (_u *ScanJobUpdateOne) ClearOcrText() *ScanJobUpdateOne {
	_u.mutation.ClearOcrText()
	return _u
}

// SetFieldCount sets the "field_count" field.
func (_u *ScanJobUpdateOne) SetFieldCount(v int) *ScanJobUpdateOne {
	_u.mutation.ResetFieldCount()
	_u.mutation.SetFieldCount(v)
	return _u
}

// SetNillableFieldCount sets the "field_count" field if the given value is not nil.
func (_u *ScanJobUpdateOne) SetNillableFieldCount(v *int) *ScanJobUpdateOne {
	if v != nil {
		_u.SetFieldCount(*v)
	}
	return _u
}

// AddFieldCount adds value to the "field_count" field.
func (_u *ScanJobUpdateOne) AddFieldCount(v int) *ScanJobUpdateOne {
	_u.mutation.AddFieldCount(v)
	return _u
}

// SetCard sets the "card" edge to the Card entity.
func (_u *ScanJobUpdateOne) SetCard(v *Card) *ScanJobUpdateOne {
	return _u.SetCardID(v.ID)
}

// Mutation returns the ScanJobMutation object of the builder.
func (_u *ScanJobUpdateOne) Mutation() *ScanJobMutation {
	return _u.mutation
}

// ClearCard clears the "card" edge to the Card entity.
func (_u *ScanJobUpdateOne) ClearCard() *ScanJobUpdateOne {
	_u.mutation.ClearCard()
	return _u
}

// Where appends a list predicates to the ScanJobUpdate builder.
func (_u *ScanJobUpdateOne) Where(ps ...predicate.ScanJob) *ScanJobUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ScanJobUpdateOne) Select(field string, fields ...string) *ScanJobUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ScanJob entity.
func (_u *ScanJobUpdateOne) Save(ctx context.Context) (*ScanJob, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ScanJobUpdateOne) SaveX(ctx context.Context) *ScanJob {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ScanJobUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ScanJobUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ScanJobUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := scanjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ScanJob.status": %w`, err)}
		}
	}
	if _u.mutation.CardCleared() && len(_u.mutation.CardIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ScanJob.card"`)
	}
	return nil
}

func (_u *ScanJobUpdateOne) sqlSave(ctx context.Context) (_node *ScanJob, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(scanjob.Table, scanjob.Columns, sqlgraph.NewFieldSpec(scanjob.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ScanJob.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, scanjob.FieldID)
		for _, f := range fields {
			if !scanjob.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != scanjob.FieldID {
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
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(scanjob.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(scanjob.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(scanjob.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(scanjob.FieldFinishedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(scanjob.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(scanjob.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.NeedsReview(); ok {
		_spec.SetField(scanjob.FieldNeedsReview, field.TypeBool, value)
	}
	if value, ok := _u.mutation.OcrText(); ok {
		_spec.SetField(scanjob.FieldOcrText, field.TypeString, value)
	}
	if _u.mutation.OcrTextCleared() {
		_spec.ClearField(scanjob.FieldOcrText, field.TypeString)
	}
	if value, ok := _u.mutation.FieldCount(); ok {
		_spec.SetField(scanjob.FieldFieldCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFieldCount(); ok {
		_spec.AddField(scanjob.FieldFieldCount, field.TypeInt, value)
	}
	if _u.mutation.CardCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   scanjob.CardTable,
			Columns: []string{scanjob.CardColumn},
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
			Table:   scanjob.CardTable,
			Columns: []string{scanjob.CardColumn},
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
	_node = &ScanJob{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{scanjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
