package domain

import (
	"time"

	"github.com/google/uuid"
)

// Ban blocks UserID from voting on any poll owned by PollOwnerID.
type Ban struct {
	ID          uuid.UUID `json:"id"`
	PollOwnerID uuid.UUID `json:"poll_owner_id"`
	BannedBy    uuid.UUID `json:"banned_by"`
	UserID      uuid.UUID `json:"user_id"`
	CreatedAt   time.Time `json:"created_at"`
}
