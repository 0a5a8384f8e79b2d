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

type moderationService struct {
	modRepo  ports.ModeratorRepository
	banRepo  ports.BanRepository
	userRepo ports.UserRepository
}

func NewModerationService(modRepo ports.ModeratorRepository, banRepo ports.BanRepository, userRepo ports.UserRepository) ports.ModerationService {
	return &moderationService{
		modRepo:  modRepo,
		banRepo:  banRepo,
		userRepo: userRepo,
	}
}

// Grant records a moderator grant for the named user. Any authenticated
// user may grant; restricting granters is an open product decision and
// the permissive behavior is kept on purpose.
func (s *moderationService) Grant(ctx context.Context, granter *domain.User, input ports.GrantModeratorInput) (*domain.Moderator, error) {
	if strings.TrimSpace(input.ModFor) == "" || strings.TrimSpace(input.ModUsername) == "" {
		return nil, fmt.Errorf("%w: mod_for and mod_user are required", domain.ErrInvalidInput)
	}

	target, err := s.userRepo.GetByUsername(ctx, input.ModUsername)
	if err != nil {
		return nil, err
	}

	mod := &domain.Moderator{
		ID:        uuid.New(),
		ModFor:    input.ModFor,
		ModUser:   target.ID,
		CreatedBy: granter.ID,
		CreatedAt: time.Now(),
	}
	if err := s.modRepo.Create(ctx, mod); err != nil {
		return nil, err
	}
	return mod, nil
}

func (s *moderationService) GetModerator(ctx context.Context, id uuid.UUID) (*domain.Moderator, error) {
	return s.modRepo.GetByID(ctx, id)
}

func (s *moderationService) ListModerators(ctx context.Context) ([]*domain.Moderator, error) {
	return s.modRepo.GetAll(ctx)
}

// UpdateModerator is restricted to the granter, not the grant's subject.
func (s *moderationService) UpdateModerator(ctx context.Context, requester *domain.User, id uuid.UUID, input ports.UpdateModeratorInput) (*domain.Moderator, error) {
	mod, err := s.modRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if mod.CreatedBy != requester.ID {
		return nil, domain.ErrForbidden
	}

	if strings.TrimSpace(input.ModFor) != "" {
		mod.ModFor = input.ModFor
	}
	if strings.TrimSpace(input.ModUsername) != "" {
		target, err := s.userRepo.GetByUsername(ctx, input.ModUsername)
		if err != nil {
			return nil, err
		}
		mod.ModUser = target.ID
	}

	now := time.Now()
	mod.UpdatedAt = &now

	if err := s.modRepo.Update(ctx, mod); err != nil {
		return nil, err
	}
	return mod, nil
}

func (s *moderationService) Revoke(ctx context.Context, requester *domain.User, id uuid.UUID) error {
	mod, err := s.modRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if mod.CreatedBy != requester.ID {
		return domain.ErrForbidden
	}
	return s.modRepo.Delete(ctx, mod.ID)
}

// Ban blocks a user from voting on the given poll owner's polls. Both the
// target and the poll owner must exist before the moderator check runs.
// Duplicate bans for the same pair are allowed to accumulate; Unban
// removes them all at once.
func (s *moderationService) Ban(ctx context.Context, requester *domain.User, input ports.BanInput) (*domain.Ban, error) {
	if _, err := s.userRepo.GetByID(ctx, input.UserID); err != nil {
		return nil, err
	}
	if _, err := s.userRepo.GetByID(ctx, input.PollOwnerID); err != nil {
		return nil, err
	}

	if err := s.requireModerator(ctx, requester); err != nil {
		return nil, err
	}

	ban := &domain.Ban{
		ID:          uuid.New(),
		PollOwnerID: input.PollOwnerID,
		BannedBy:    requester.ID,
		UserID:      input.UserID,
		CreatedAt:   time.Now(),
	}
	if err := s.banRepo.Create(ctx, ban); err != nil {
		return nil, err
	}
	return ban, nil
}

// Unban lifts every ban row held against the user so accumulated
// duplicates do not require repeated calls.
func (s *moderationService) Unban(ctx context.Context, requester *domain.User, userID uuid.UUID) error {
	if _, err := s.banRepo.GetByUserID(ctx, userID); err != nil {
		return err
	}
	if err := s.requireModerator(ctx, requester); err != nil {
		return err
	}

	n, err := s.banRepo.DeleteByUserID(ctx, userID)
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrBanNotFound
	}
	return nil
}

func (s *moderationService) ListBans(ctx context.Context, requester *domain.User) ([]*domain.Ban, error) {
	if err := s.requireModerator(ctx, requester); err != nil {
		return nil, err
	}
	return s.banRepo.GetAll(ctx)
}

func (s *moderationService) GetBanForUser(ctx context.Context, requester *domain.User, userID uuid.UUID) (*domain.Ban, error) {
	if err := s.requireModerator(ctx, requester); err != nil {
		return nil, err
	}
	return s.banRepo.GetByUserID(ctx, userID)
}

func (s *moderationService) requireModerator(ctx context.Context, user *domain.User) error {
	ok, err := s.modRepo.HasGrant(ctx, user.ID)
	if err != nil {
		return fmt.Errorf("failed to check moderator grant: %w", err)
	}
	if !ok {
		return domain.ErrForbidden
	}
	return nil
}
