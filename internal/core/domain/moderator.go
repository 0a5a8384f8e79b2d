package domain

import (
	"time"

	"github.com/google/uuid"
)

// Moderator grants ModUser moderation capability for the ModFor scope.
// Holding any grant is what authorizes ban issuance; CreatedBy is the
// granter and the only identity allowed to change or revoke the grant.
type Moderator struct {
	ID        uuid.UUID  `json:"id"`
	ModFor    string     `json:"mod_for"`
	ModUser   uuid.UUID  `json:"mod_user"`
	CreatedBy uuid.UUID  `json:"created_by"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}
