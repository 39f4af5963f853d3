package entity

import (
	"time"

	"github.com/google/uuid"
)

// Card represents a captured business card for data transfer between layers.
type Card struct {
	ID          uuid.UUID `json:"id"`
	DisplayName string    `json:"display_name"`
	Image       []byte    `json:"-"`
	ImageExt    string    `json:"image_ext"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
