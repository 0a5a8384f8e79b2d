package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pollboard/api/internal/core/domain"
	"github.com/pollboard/api/internal/core/ports"
)

type pollService struct {
	repo ports.PollRepository
}

func NewPollService(repo ports.PollRepository) ports.PollService {
	return &pollService{repo: repo}
}

func (s *pollService) Create(ctx context.Context, owner *domain.User, input ports.CreatePollInput) (*domain.Poll, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrInvalidInput)
	}
	if !input.Type.Valid() {
		return nil, fmt.Errorf("%w: poll_type must be %q or %q", domain.ErrInvalidInput, domain.PollTypeText, domain.PollTypeImage)
	}

	poll := &domain.Poll{
		ID:          uuid.New(),
		Title:       input.Title,
		Type:        input.Type,
		CreatedBy:   owner.ID,
		ChoicesOpen: input.ChoicesOpen,
		VotingOpen:  input.VotingOpen,
		CreatedAt:   time.Now(),
	}
	if err := s.repo.Create(ctx, poll); err != nil {
		return nil, err
	}
	return poll, nil
}

func (s *pollService) Get(ctx context.Context, id uuid.UUID) (*domain.Poll, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *pollService) List(ctx context.Context) ([]*domain.Poll, error) {
	return s.repo.GetAll(ctx)
}

func (s *pollService) Update(ctx context.Context, requester *domain.User, id uuid.UUID, input ports.CreatePollInput) (*domain.Poll, error) {
	poll, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if poll.CreatedBy != requester.ID {
		return nil, domain.ErrForbidden
	}

	if strings.TrimSpace(input.Title) != "" {
		poll.Title = input.Title
	}
	if input.Type != "" {
		if !input.Type.Valid() {
			return nil, fmt.Errorf("%w: invalid poll_type", domain.ErrInvalidInput)
		}
		poll.Type = input.Type
	}
	poll.ChoicesOpen = input.ChoicesOpen
	poll.VotingOpen = input.VotingOpen

	now := time.Now()
	poll.UpdatedAt = &now

	if err := s.repo.Update(ctx, poll); err != nil {
		return nil, err
	}
	return poll, nil
}

func (s *pollService) Delete(ctx context.Context, requester *domain.User, id uuid.UUID) error {
	poll, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if poll.CreatedBy != requester.ID {
		return domain.ErrForbidden
	}
	// Choices and their votes go with the poll via the store's cascade.
	return s.repo.Delete(ctx, poll.ID)
}
