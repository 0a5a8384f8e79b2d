package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pollboard/api/internal/core/domain"
	"github.com/pollboard/api/internal/core/ports"
)

type choiceService struct {
	repo     ports.ChoiceRepository
	pollRepo ports.PollRepository
}

func NewChoiceService(repo ports.ChoiceRepository, pollRepo ports.PollRepository) ports.ChoiceService {
	return &choiceService{repo: repo, pollRepo: pollRepo}
}

func (s *choiceService) Create(ctx context.Context, creator *domain.User, input ports.CreateChoiceInput) (*domain.Choice, error) {
	if input.Text == "" && input.Image == "" {
		return nil, fmt.Errorf("%w: a choice needs a text or image payload", domain.ErrInvalidInput)
	}

	poll, err := s.pollRepo.GetByID(ctx, input.PollID)
	if err != nil {
		return nil, err
	}
	if !poll.ChoicesOpen {
		return nil, domain.ErrChoicesClosed
	}

	choice := &domain.Choice{
		ID:        uuid.New(),
		PollID:    poll.ID,
		Text:      input.Text,
		Image:     input.Image,
		CreatedBy: creator.ID,
		CreatedAt: time.Now(),
	}
	if err := s.repo.Create(ctx, choice); err != nil {
		return nil, err
	}
	return choice, nil
}

func (s *choiceService) Get(ctx context.Context, id uuid.UUID) (*domain.Choice, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *choiceService) List(ctx context.Context) ([]*domain.Choice, error) {
	return s.repo.GetAll(ctx)
}

func (s *choiceService) Update(ctx context.Context, requester *domain.User, id uuid.UUID, input ports.UpdateChoiceInput) (*domain.Choice, error) {
	choice, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if choice.CreatedBy != requester.ID {
		return nil, domain.ErrForbidden
	}

	if input.Text != "" {
		choice.Text = input.Text
	}
	if input.Image != "" {
		choice.Image = input.Image
	}

	now := time.Now()
	choice.UpdatedAt = &now

	if err := s.repo.Update(ctx, choice); err != nil {
		return nil, err
	}
	return choice, nil
}

func (s *choiceService) Delete(ctx context.Context, requester *domain.User, id uuid.UUID) error {
	choice, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if choice.CreatedBy != requester.ID {
		return domain.ErrForbidden
	}
	// Votes on the choice go with it via the store's cascade.
	return s.repo.Delete(ctx, choice.ID)
}
