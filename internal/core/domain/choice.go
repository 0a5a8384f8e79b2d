package domain

import (
	"time"

	"github.com/google/uuid"
)

type Choice struct {
	ID        uuid.UUID  `json:"id"`
	PollID    uuid.UUID  `json:"poll_id"`
	Text      string     `json:"text,omitempty"`
	Image     string     `json:"image,omitempty"`
	CreatedBy uuid.UUID  `json:"created_by"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}
