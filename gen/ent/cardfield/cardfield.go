// Code generated by ent, DO NOT EDIT.

package cardfield

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the cardfield type in the database.
	Label = "card_field"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCardID holds the string denoting the card_id field in the database.
	FieldCardID = "card_id"
	// FieldCategory holds the string denoting the category field in the database.
	FieldCategory = "category"
	// FieldRawText holds the string denoting the raw_text field in the database.
	FieldRawText = "raw_text"
	// FieldValue holds the string denoting the value field in the database.
	FieldValue = "value"
	// FieldSpanStart holds the string denoting the span_start field in the database.
	FieldSpanStart = "span_start"
	// FieldSpanEnd holds the string denoting the span_end field in the database.
	FieldSpanEnd = "span_end"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeCard holds the string denoting the card edge name in mutations.
	EdgeCard = "card"
	// Table holds the table name of the cardfield in the database.
	Table = "card_fields"
	// CardTable is the table that holds the card relation/edge.
	CardTable = "card_fields"
	// CardInverseTable is the table name for the Card entity.
	// It exists in this package in order to avoid circular dependency with the "card" package.
	CardInverseTable = "cards"
	// CardColumn is the table column denoting the card relation/edge.
	CardColumn = "card_id"
)

// Columns holds all SQL columns for cardfield fields.
var Columns = []string{
	FieldID,
	FieldCardID,
	FieldCategory,
	FieldRawText,
	FieldValue,
	FieldSpanStart,
	FieldSpanEnd,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// CategoryValidator is a validator for the "category" field. It is called by the builders before save.
	CategoryValidator func(string) error
	// DefaultRawText holds the default value on creation for the "raw_text" field.
	DefaultRawText string
	// DefaultValue holds the default value on creation for the "value" field.
	DefaultValue string
	// DefaultSpanStart holds the default value on creation for the "span_start" field.
	DefaultSpanStart int
	// DefaultSpanEnd holds the default value on creation for the "span_end" field.
	DefaultSpanEnd int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the CardField queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCardID orders the results by the card_id field.
func ByCardID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCardID, opts...).ToFunc()
}

// ByCategory orders the results by the category field.
func ByCategory(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCategory, opts...).ToFunc()
}

// ByRawText orders the results by the raw_text field.
func ByRawText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRawText, opts...).ToFunc()
}

// ByValue orders the results by the value field.
func ByValue(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldValue, opts...).ToFunc()
}

// BySpanStart orders the results by the span_start field.
func BySpanStart(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSpanStart, opts...).ToFunc()
}

// BySpanEnd orders the results by the span_end field.
func BySpanEnd(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSpanEnd, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByCardField orders the results by card field.
func ByCardField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newCardStep(), sql.OrderByField(field, opts...))
	}
}
func newCardStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(CardInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, CardTable, CardColumn),
	)
}
