package ports

import (
	"context"

	"github.com/google/uuid"
	"github.com/pollboard/api/internal/core/domain"
)

type ModeratorRepository interface {
	Create(ctx context.Context, mod *domain.Moderator) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Moderator, error)
	GetAll(ctx context.Context) ([]*domain.Moderator, error)
	Update(ctx context.Context, mod *domain.Moderator) error
	Delete(ctx context.Context, id uuid.UUID) error
	// HasGrant reports whether any moderator row exists for the user.
	HasGrant(ctx context.Context, userID uuid.UUID) (bool, error)
}

type BanRepository interface {
	Create(ctx context.Context, ban *domain.Ban) error
	GetAll(ctx context.Context) ([]*domain.Ban, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Ban, error)
	// DeleteByUserID removes every ban row held against the user and
	// returns the number of rows removed.
	DeleteByUserID(ctx context.Context, userID uuid.UUID) (int64, error)
}

type GrantModeratorInput struct {
	ModFor      string
	ModUsername string
}

type UpdateModeratorInput struct {
	ModFor      string
	ModUsername string
}

type BanInput struct {
	PollOwnerID uuid.UUID
	UserID      uuid.UUID
}

type ModerationService interface {
	Grant(ctx context.Context, granter *domain.User, input GrantModeratorInput) (*domain.Moderator, error)
	GetModerator(ctx context.Context, id uuid.UUID) (*domain.Moderator, error)
	ListModerators(ctx context.Context) ([]*domain.Moderator, error)
	UpdateModerator(ctx context.Context, requester *domain.User, id uuid.UUID, input UpdateModeratorInput) (*domain.Moderator, error)
	Revoke(ctx context.Context, requester *domain.User, id uuid.UUID) error

	Ban(ctx context.Context, requester *domain.User, input BanInput) (*domain.Ban, error)
	Unban(ctx context.Context, requester *domain.User, userID uuid.UUID) error
	ListBans(ctx context.Context, requester *domain.User) ([]*domain.Ban, error)
	GetBanForUser(ctx context.Context, requester *domain.User, userID uuid.UUID) (*domain.Ban, error)
}
