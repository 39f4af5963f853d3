// Code generated by ent, DO NOT EDIT.

package cardfield

import (
	"cardvault/gen/ent/predicate"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.CardField {
	return predicate.CardField(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.CardField {
	return predicate.CardField(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.CardField {
	return predicate.CardField(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.CardField {
	return predicate.CardField(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.CardField {
	return predicate.CardField(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.CardField {
	return predicate.CardField(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.CardField {
	return predicate.CardField(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.CardField {
	return predicate.CardField(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.CardField {
	return predicate.CardField(sql.FieldLTE(FieldID, id))
}

// CardID applies equality check predicate on the "card_id" field. It's identical to CardIDEQ.
func CardID(v uuid.UUID) predicate.CardField {
	return predicate.CardField(sql.FieldEQ(FieldCardID, v))
}

// Category applies equality check predicate on the "category" field. It's identical to CategoryEQ.
func Category(v string) predicate.CardField {
	return predicate.CardField(sql.FieldEQ(FieldCategory, v))
}

// RawText applies equality check predicate on the "raw_text" field. It's identical to RawTextEQ.
func RawText(v string) predicate.CardField {
	return predicate.CardField(sql.FieldEQ(FieldRawText, v))
}

// Value applies equality check predicate on the "value" field. It's identical to ValueEQ.
func Value(v string) predicate.CardField {
	return predicate.CardField(sql.FieldEQ(FieldValue, v))
}

// SpanStart applies equality check predicate on the "span_start" field. It's identical to SpanStartEQ.
func SpanStart(v int) predicate.CardField {
	return predicate.CardField(sql.FieldEQ(FieldSpanStart, v))
}

// SpanEnd applies equality check predicate on the "span_end" field. It's identical to SpanEndEQ.
func SpanEnd(v int) predicate.CardField {
	return predicate.CardField(sql.FieldEQ(FieldSpanEnd, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.CardField {
	return predicate.CardField(sql.FieldEQ(FieldCreatedAt, v))
}

// CardIDEQ applies the EQ predicate on the "card_id" field.
func CardIDEQ(v uuid.UUID) predicate.CardField {
	return predicate.CardField(sql.FieldEQ(FieldCardID, v))
}

// CardIDNEQ applies the NEQ predicate on the "card_id" field.
func CardIDNEQ(v uuid.UUID) predicate.CardField {
	return predicate.CardField(sql.FieldNEQ(FieldCardID, v))
}

// CardIDIn applies the In predicate on the "card_id" field.
func CardIDIn(vs ...uuid.UUID) predicate.CardField {
	return predicate.CardField(sql.FieldIn(FieldCardID, vs...))
}

// CardIDNotIn applies the NotIn predicate on the "card_id" field.
func CardIDNotIn(vs ...uuid.UUID) predicate.CardField {
	return predicate.CardField(sql.FieldNotIn(FieldCardID, vs...))
}

// CategoryEQ applies the EQ predicate on the "category" field.
func CategoryEQ(v string) predicate.CardField {
	return predicate.CardField(sql.FieldEQ(FieldCategory, v))
}

// CategoryNEQ applies the NEQ predicate on the "category" field.
func CategoryNEQ(v string) predicate.CardField {
	return predicate.CardField(sql.FieldNEQ(FieldCategory, v))
}

// CategoryIn applies the In predicate on the "category" field.
func CategoryIn(vs ...string) predicate.CardField {
	return predicate.CardField(sql.FieldIn(FieldCategory, vs...))
}

// CategoryNotIn applies the NotIn predicate on the "category" field.
func CategoryNotIn(vs ...string) predicate.CardField {
	return predicate.CardField(sql.FieldNotIn(FieldCategory, vs...))
}

// CategoryGT applies the GT predicate on the "category" field.
func CategoryGT(v string) predicate.CardField {
	return predicate.CardField(sql.FieldGT(FieldCategory, v))
}

// CategoryGTE applies the GTE predicate on the "category" field.
func CategoryGTE(v string) predicate.CardField {
	return predicate.CardField(sql.FieldGTE(FieldCategory, v))
}

// CategoryLT applies the LT predicate on the "category" field.
func CategoryLT(v string) predicate.CardField {
	return predicate.CardField(sql.FieldLT(FieldCategory, v))
}

// CategoryLTE applies the LTE predicate on the "category" field.
func CategoryLTE(v string) predicate.CardField {
	return predicate.CardField(sql.FieldLTE(FieldCategory, v))
}

// CategoryContains applies the Contains predicate on the "category" field.
func CategoryContains(v string) predicate.CardField {
	return predicate.CardField(sql.FieldContains(FieldCategory, v))
}

// CategoryHasPrefix applies the HasPrefix predicate on the "category" field.
func CategoryHasPrefix(v string) predicate.CardField {
	return predicate.CardField(sql.FieldHasPrefix(FieldCategory, v))
}

// CategoryHasSuffix applies the HasSuffix predicate on the "category" field.
func CategoryHasSuffix(v string) predicate.CardField {
	return predicate.CardField(sql.FieldHasSuffix(FieldCategory, v))
}

// CategoryEqualFold applies the EqualFold predicate on the "category" field.
func CategoryEqualFold(v string) predicate.CardField {
	return predicate.CardField(sql.FieldEqualFold(FieldCategory, v))
}

// CategoryContainsFold applies the ContainsFold predicate on the "category" field.
func CategoryContainsFold(v string) predicate.CardField {
	return predicate.CardField(sql.FieldContainsFold(FieldCategory, v))
}

// RawTextEQ applies the EQ predicate on the "raw_text" field.
func RawTextEQ(v string) predicate.CardField {
	return predicate.CardField(sql.FieldEQ(FieldRawText, v))
}

// RawTextNEQ applies the NEQ predicate on the "raw_text" field.
func RawTextNEQ(v string) predicate.CardField {
	return predicate.CardField(sql.FieldNEQ(FieldRawText, v))
}

// RawTextIn applies the In predicate on the "raw_text" field.
func RawTextIn(vs ...string) predicate.CardField {
	return predicate.CardField(sql.FieldIn(FieldRawText, vs...))
}

// RawTextNotIn applies the NotIn predicate on the "raw_text" field.
func RawTextNotIn(vs ...string) predicate.CardField {
	return predicate.CardField(sql.FieldNotIn(FieldRawText, vs...))
}

// RawTextGT applies the GT predicate on the "raw_text" field.
func RawTextGT(v string) predicate.CardField {
	return predicate.CardField(sql.FieldGT(FieldRawText, v))
}

// RawTextGTE applies the GTE predicate on the "raw_text" field.
func RawTextGTE(v string) predicate.CardField {
	return predicate.CardField(sql.FieldGTE(FieldRawText, v))
}

// RawTextLT applies the LT predicate on the "raw_text" field.
func RawTextLT(v string) predicate.CardField {
	return predicate.CardField(sql.FieldLT(FieldRawText, v))
}

// RawTextLTE applies the LTE predicate on the "raw_text" field.
func RawTextLTE(v string) predicate.CardField {
	return predicate.CardField(sql.FieldLTE(FieldRawText, v))
}

// RawTextContains applies the Contains predicate on the "raw_text" field.
func RawTextContains(v string) predicate.CardField {
	return predicate.CardField(sql.FieldContains(FieldRawText, v))
}

// RawTextHasPrefix applies the HasPrefix predicate on the "raw_text" field.
func RawTextHasPrefix(v string) predicate.CardField {
	return predicate.CardField(sql.FieldHasPrefix(FieldRawText, v))
}

// RawTextHasSuffix applies the HasSuffix predicate on the "raw_text" field.
func RawTextHasSuffix(v string) predicate.CardField {
	return predicate.CardField(sql.FieldHasSuffix(FieldRawText, v))
}

// RawTextEqualFold applies the EqualFold predicate on the "raw_text" field.
func RawTextEqualFold(v string) predicate.CardField {
	return predicate.CardField(sql.FieldEqualFold(FieldRawText, v))
}

// RawTextContainsFold applies the ContainsFold predicate on the "raw_text" field.
func RawTextContainsFold(v string) predicate.CardField {
	return predicate.CardField(sql.FieldContainsFold(FieldRawText, v))
}

// ValueEQ applies the EQ predicate on the "value" field.
func ValueEQ(v string) predicate.CardField {
	return predicate.CardField(sql.FieldEQ(FieldValue, v))
}

// ValueNEQ applies the NEQ predicate on the "value" field.
func ValueNEQ(v string) predicate.CardField {
	return predicate.CardField(sql.FieldNEQ(FieldValue, v))
}

// ValueIn applies the In predicate on the "value" field.
func ValueIn(vs ...string) predicate.CardField {
	return predicate.CardField(sql.FieldIn(FieldValue, vs...))
}

// ValueNotIn applies the NotIn predicate on the "value" field.
func ValueNotIn(vs ...string) predicate.CardField {
	return predicate.CardField(sql.FieldNotIn(FieldValue, vs...))
}

// ValueGT applies the GT predicate on the "value" field.
func ValueGT(v string) predicate.CardField {
	return predicate.CardField(sql.FieldGT(FieldValue, v))
}

// ValueGTE applies the GTE predicate on the "value" field.
func ValueGTE(v string) predicate.CardField {
	return predicate.CardField(sql.FieldGTE(FieldValue, v))
}

// ValueLT applies the LT predicate on the "value" field.
func ValueLT(v string) predicate.CardField {
	return predicate.CardField(sql.FieldLT(FieldValue, v))
}

// ValueLTE applies the LTE predicate on the "value" field.
func ValueLTE(v string) predicate.CardField {
	return predicate.CardField(sql.FieldLTE(FieldValue, v))
}

// ValueContains applies the Contains predicate on the "value" field.
func ValueContains(v string) predicate.CardField {
	return predicate.CardField(sql.FieldContains(FieldValue, v))
}

// ValueHasPrefix applies the HasPrefix predicate on the "value" field.
func ValueHasPrefix(v string) predicate.CardField {
	return predicate.CardField(sql.FieldHasPrefix(FieldValue, v))
}

// ValueHasSuffix applies the HasSuffix predicate on the "value" field.
func ValueHasSuffix(v string) predicate.CardField {
	return predicate.CardField(sql.FieldHasSuffix(FieldValue, v))
}

// ValueEqualFold applies the EqualFold predicate on the "value" field.
func ValueEqualFold(v string) predicate.CardField {
	return predicate.CardField(sql.FieldEqualFold(FieldValue, v))
}

// ValueContainsFold applies the ContainsFold predicate on the "value" field.
func ValueContainsFold(v string) predicate.CardField {
	return predicate.CardField(sql.FieldContainsFold(FieldValue, v))
}

// SpanStartEQ applies the EQ predicate on the "span_start" field.
func SpanStartEQ(v int) predicate.CardField {
	return predicate.CardField(sql.FieldEQ(FieldSpanStart, v))
}

// SpanStartNEQ applies the NEQ predicate on the "span_start" field.
func SpanStartNEQ(v int) predicate.CardField {
	return predicate.CardField(sql.FieldNEQ(FieldSpanStart, v))
}

// SpanStartIn applies the In predicate on the "span_start" field.
func SpanStartIn(vs ...int) predicate.CardField {
	return predicate.CardField(sql.FieldIn(FieldSpanStart, vs...))
}

// SpanStartNotIn applies the NotIn predicate on the "span_start" field.
func SpanStartNotIn(vs ...int) predicate.CardField {
	return predicate.CardField(sql.FieldNotIn(FieldSpanStart, vs...))
}

// SpanStartGT applies the GT predicate on the "span_start" field.
func SpanStartGT(v int) predicate.CardField {
	return predicate.CardField(sql.FieldGT(FieldSpanStart, v))
}

// SpanStartGTE applies the GTE predicate on the "span_start" field.
func SpanStartGTE(v int) predicate.CardField {
	return predicate.CardField(sql.FieldGTE(FieldSpanStart, v))
}

// SpanStartLT applies the LT predicate on the "span_start" field.
func SpanStartLT(v int) predicate.CardField {
	return predicate.CardField(sql.FieldLT(FieldSpanStart, v))
}

// SpanStartLTE applies the LTE predicate on the "span_start" field.
func SpanStartLTE(v int) predicate.CardField {
	return predicate.CardField(sql.FieldLTE(FieldSpanStart, v))
}

// SpanEndEQ applies the EQ predicate on the "span_end" field.
func SpanEndEQ(v int) predicate.CardField {
	return predicate.CardField(sql.FieldEQ(FieldSpanEnd, v))
}

// SpanEndNEQ applies the NEQ predicate on the "span_end" field.
func SpanEndNEQ(v int) predicate.CardField {
	return predicate.CardField(sql.FieldNEQ(FieldSpanEnd, v))
}

// SpanEndIn applies the In predicate on the "span_end" field.
func SpanEndIn(vs ...int) predicate.CardField {
	return predicate.CardField(sql.FieldIn(FieldSpanEnd, vs...))
}

// SpanEndNotIn applies the NotIn predicate on the "span_end" field.
func SpanEndNotIn(vs ...int) predicate.CardField {
	return predicate.CardField(sql.FieldNotIn(FieldSpanEnd, vs...))
}

// SpanEndGT applies the GT predicate on the "span_end" field.
func SpanEndGT(v int) predicate.CardField {
	return predicate.CardField(sql.FieldGT(FieldSpanEnd, v))
}

// SpanEndGTE applies the GTE predicate on the "span_end" field.
func SpanEndGTE(v int) predicate.CardField {
	return predicate.CardField(sql.FieldGTE(FieldSpanEnd, v))
}

// SpanEndLT applies the LT predicate on the "span_end" field.
func SpanEndLT(v int) predicate.CardField {
	return predicate.CardField(sql.FieldLT(FieldSpanEnd, v))
}

// SpanEndLTE applies the LTE predicate on the "span_end" field.
func SpanEndLTE(v int) predicate.CardField {
	return predicate.CardField(sql.FieldLTE(FieldSpanEnd, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.CardField {
	return predicate.CardField(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.CardField {
	return predicate.CardField(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.CardField {
	return predicate.CardField(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.CardField {
	return predicate.CardField(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.CardField {
	return predicate.CardField(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.CardField {
	return predicate.CardField(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.CardField {
	return predicate.CardField(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.CardField {
	return predicate.CardField(sql.FieldLTE(FieldCreatedAt, v))
}

// HasCard applies the HasEdge predicate on the "card" edge.
func HasCard() predicate.CardField {
	return predicate.CardField(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, CardTable, CardColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCardWith applies the HasEdge predicate on the "card" edge with a given conditions (other predicates).
func HasCardWith(preds ...predicate.Card) predicate.CardField {
	return predicate.CardField(func(s *sql.Selector) {
		step := newCardStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CardField) predicate.CardField {
	return predicate.CardField(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CardField) predicate.CardField {
	return predicate.CardField(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CardField) predicate.CardField {
	return predicate.CardField(sql.NotPredicates(p))
}
