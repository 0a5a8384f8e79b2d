package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pollboard/api/internal/core/domain"
	"github.com/pollboard/api/internal/core/ports"
)

type voteService struct {
	repo ports.VoteRepository
}

func NewVoteService(repo ports.VoteRepository) ports.VoteService {
	return &voteService{repo: repo}
}

// Cast runs the full admission sequence inside one transaction: choice
// exists, parent poll exists, voting gate open, voter not banned by the
// poll owner, no prior vote anywhere in the same poll. The duplicate
// check is by poll membership, so voting for a different choice of a
// poll already voted on is still rejected.
func (s *voteService) Cast(ctx context.Context, voter *domain.User, choiceID uuid.UUID) (*domain.Vote, error) {
	var vote *domain.Vote

	err := s.repo.CastAtomic(ctx, func(tx ports.VoteTx) error {
		choice, err := tx.ChoiceByID(ctx, choiceID)
		if err != nil {
			return err
		}

		poll, err := tx.PollByID(ctx, choice.PollID)
		if err != nil {
			return err
		}

		if !poll.VotingOpen {
			return domain.ErrVotingClosed
		}

		banned, err := tx.BanExists(ctx, poll.CreatedBy, voter.ID)
		if err != nil {
			return err
		}
		if banned {
			return domain.ErrBanned
		}

		voted, err := tx.HasVotedInPoll(ctx, voter.ID, poll.ID)
		if err != nil {
			return err
		}
		if voted {
			return domain.ErrAlreadyVoted
		}

		vote = &domain.Vote{
			ID:        uuid.New(),
			UserID:    voter.ID,
			ChoiceID:  choice.ID,
			CreatedAt: time.Now(),
		}
		return tx.InsertVote(ctx, vote)
	})
	if err != nil {
		return nil, err
	}
	return vote, nil
}

func (s *voteService) Get(ctx context.Context, id uuid.UUID) (*domain.Vote, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *voteService) List(ctx context.Context) ([]*domain.Vote, error) {
	return s.repo.GetAll(ctx)
}

// Delete allows only the voter to retract their own vote; there is no
// moderator override here.
func (s *voteService) Delete(ctx context.Context, requester *domain.User, id uuid.UUID) error {
	vote, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if vote.UserID != requester.ID {
		return domain.ErrForbidden
	}
	return s.repo.Delete(ctx, vote.ID)
}
