package entity

import (
	"time"

	"github.com/google/uuid"
)

// Field is one extracted contact entity on a card: a category, the raw text
// the annotators matched, and the normalized value when one was produced.
type Field struct {
	ID        uuid.UUID `json:"id"`
	CardID    uuid.UUID `json:"card_id"`
	Category  string    `json:"category"`
	RawText   string    `json:"raw_text"`
	Value     string    `json:"value,omitempty"`
	SpanStart int       `json:"span_start"`
	SpanEnd   int       `json:"span_end"`
	CreatedAt time.Time `json:"created_at"`
}
