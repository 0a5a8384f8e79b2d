package ports

import (
	"context"

	"github.com/google/uuid"
	"github.com/pollboard/api/internal/core/domain"
)

type PollRepository interface {
	Create(ctx context.Context, poll *domain.Poll) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Poll, error)
	GetAll(ctx context.Context) ([]*domain.Poll, error)
	Update(ctx context.Context, poll *domain.Poll) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type CreatePollInput struct {
	Title       string
	Type        domain.PollType
	ChoicesOpen bool
	VotingOpen  bool
}

type PollService interface {
	Create(ctx context.Context, owner *domain.User, input CreatePollInput) (*domain.Poll, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Poll, error)
	List(ctx context.Context) ([]*domain.Poll, error)
	Update(ctx context.Context, requester *domain.User, id uuid.UUID, input CreatePollInput) (*domain.Poll, error)
	Delete(ctx context.Context, requester *domain.User, id uuid.UUID) error
}
