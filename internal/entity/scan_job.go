package entity

import (
	"time"

	"github.com/google/uuid"
)

// ScanJob represents one scan pipeline invocation for a card.
type ScanJob struct {
	ID           uuid.UUID  `json:"id"`
	CardID       uuid.UUID  `json:"card_id"`
	Status       string     `json:"status"`
	StartedAt    time.Time  `json:"started_at"`
	FinishedAt   *time.Time `json:"finished_at,omitempty"`
	ErrorMessage *string    `json:"error_message,omitempty"`
	NeedsReview  bool       `json:"needs_review"`
	OCRText      *string    `json:"ocr_text,omitempty"`
	FieldCount   int        `json:"field_count"`
}
