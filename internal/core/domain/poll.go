package domain

import (
	"time"

	"github.com/google/uuid"
)

type PollType string

const (
	PollTypeText  PollType = "text"
	PollTypeImage PollType = "image"
)

func (t PollType) Valid() bool {
	return t == PollTypeText || t == PollTypeImage
}

type Poll struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Type        PollType   `json:"poll_type"`
	CreatedBy   uuid.UUID  `json:"created_by"`
	ChoicesOpen bool       `json:"choices_open"`
	VotingOpen  bool       `json:"voting_open"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}
