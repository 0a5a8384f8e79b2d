package domain

import (
	"time"

	"github.com/google/uuid"
)

type Vote struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	ChoiceID  uuid.UUID `json:"choice_id"`
	CreatedAt time.Time `json:"created_at"`
}
