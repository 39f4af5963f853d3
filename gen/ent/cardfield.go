// Code generated by ent, DO NOT EDIT.

package ent

import (
	"cardvault/gen/ent/card"
	"cardvault/gen/ent/cardfield"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

// CardField is the model entity for the CardField schema.
type CardField struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CardID holds the value of the "card_id" field.
	CardID uuid.UUID `json:"card_id,omitempty"`
	// Category holds the value of the "category" field.
	Category string `json:"category,omitempty"`
	// RawText holds the value of the "raw_text" field.
	RawText string `json:"raw_text,omitempty"`
	// Value holds the value of the "value" field.
	Value string `json:"value,omitempty"`
	// SpanStart holds the value of the "span_start" field.
	SpanStart int `json:"span_start,omitempty"`
	// SpanEnd holds the value of the "span_end" field.
	SpanEnd int `json:"span_end,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the CardFieldQuery when eager-loading is set.
	Edges        CardFieldEdges `json:"edges"`
	selectValues sql.SelectValues
}

// CardFieldEdges holds the relations/edges for other nodes in the graph.
type CardFieldEdges struct {
	// Card holds the value of the card edge.
	Card *Card `json:"card,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// CardOrErr returns the Card value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e CardFieldEdges) CardOrErr() (*Card, error) {
	if e.Card != nil {
		return e.Card, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: card.Label}
	}
	return nil, &NotLoadedError{edge: "card"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CardField) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case cardfield.FieldSpanStart, cardfield.FieldSpanEnd:
			values[i] = new(sql.NullInt64)
		case cardfield.FieldCategory, cardfield.FieldRawText, cardfield.FieldValue:
			values[i] = new(sql.NullString)
		case cardfield.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case cardfield.FieldID, cardfield.FieldCardID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CardField fields.
func (_m *CardField) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case cardfield.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case cardfield.FieldCardID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field card_id", values[i])
			} else if value != nil {
				_m.CardID = *value
			}
		case cardfield.FieldCategory:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field category", values[i])
			} else if value.Valid {
				_m.Category = value.String
			}
		case cardfield.FieldRawText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field raw_text", values[i])
			} else if value.Valid {
				_m.RawText = value.String
			}
		case cardfield.FieldValue:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field value", values[i])
			} else if value.Valid {
				_m.Value = value.String
			}
		case cardfield.FieldSpanStart:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field span_start", values[i])
			} else if value.Valid {
				_m.SpanStart = int(value.Int64)
			}
		case cardfield.FieldSpanEnd:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field span_end", values[i])
			} else if value.Valid {
				_m.SpanEnd = int(value.Int64)
			}
		case cardfield.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// GetValue returns the ent.Value that was dynamically selected and assigned to the CardField.
// This includes values selected through modifiers, order, etc.
func (_m *CardField) GetValue(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryCard queries the "card" edge of the CardField entity.
func (_m *CardField) QueryCard() *CardQuery {
	return NewCardFieldClient(_m.config).QueryCard(_m)
}

// Update returns a builder for updating this CardField.
// Note that you need to call CardField.Unwrap() before calling this method if this CardField
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CardField) Update() *CardFieldUpdateOne {
	return NewCardFieldClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CardField entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CardField) Unwrap() *CardField {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: CardField is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CardField) String() string {
	var builder strings.Builder
	builder.WriteString("CardField(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("card_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.CardID))
	builder.WriteString(", ")
	builder.WriteString("category=")
	builder.WriteString(_m.Category)
	builder.WriteString(", ")
	builder.WriteString("raw_text=")
	builder.WriteString(_m.RawText)
	builder.WriteString(", ")
	builder.WriteString("value=")
	builder.WriteString(_m.Value)
	builder.WriteString(", ")
	builder.WriteString("span_start=")
	builder.WriteString(fmt.Sprintf("%v", _m.SpanStart))
	builder.WriteString(", ")
	builder.WriteString("span_end=")
	builder.WriteString(fmt.Sprintf("%v", _m.SpanEnd))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// CardFields is a parsable slice of CardField.
type CardFields []*CardField
