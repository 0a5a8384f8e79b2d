package ports

import (
	"context"

	"github.com/google/uuid"
	"github.com/pollboard/api/internal/core/domain"
)

// VoteTx is a transaction-scoped view used by the vote admission sequence.
// All reads observe the same snapshot as the final insert.
type VoteTx interface {
	ChoiceByID(ctx context.Context, id uuid.UUID) (*domain.Choice, error)
	PollByID(ctx context.Context, id uuid.UUID) (*domain.Poll, error)
	BanExists(ctx context.Context, pollOwnerID, userID uuid.UUID) (bool, error)
	HasVotedInPoll(ctx context.Context, userID, pollID uuid.UUID) (bool, error)
	InsertVote(ctx context.Context, vote *domain.Vote) error
}

type VoteRepository interface {
	// CastAtomic runs fn inside a single serializable transaction; the
	// transaction commits only when fn returns nil.
	CastAtomic(ctx context.Context, fn func(tx VoteTx) error) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Vote, error)
	GetAll(ctx context.Context) ([]*domain.Vote, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type VoteService interface {
	Cast(ctx context.Context, voter *domain.User, choiceID uuid.UUID) (*domain.Vote, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Vote, error)
	List(ctx context.Context) ([]*domain.Vote, error)
	Delete(ctx context.Context, requester *domain.User, id uuid.UUID) error
}
