package ports

import (
	"context"

	"github.com/google/uuid"
	"github.com/pollboard/api/internal/core/domain"
)

type ChoiceRepository interface {
	Create(ctx context.Context, choice *domain.Choice) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Choice, error)
	GetAll(ctx context.Context) ([]*domain.Choice, error)
	Update(ctx context.Context, choice *domain.Choice) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type CreateChoiceInput struct {
	PollID uuid.UUID
	Text   string
	Image  string
}

type UpdateChoiceInput struct {
	Text  string
	Image string
}

type ChoiceService interface {
	Create(ctx context.Context, creator *domain.User, input CreateChoiceInput) (*domain.Choice, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Choice, error)
	List(ctx context.Context) ([]*domain.Choice, error)
	Update(ctx context.Context, requester *domain.User, id uuid.UUID, input UpdateChoiceInput) (*domain.Choice, error)
	Delete(ctx context.Context, requester *domain.User, id uuid.UUID) error
}
