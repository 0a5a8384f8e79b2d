package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pollboard/api/internal/core/domain"
	"github.com/pollboard/api/internal/core/ports"
	"golang.org/x/crypto/bcrypt"
)

type userService struct {
	repo ports.UserRepository
}

func NewUserService(repo ports.UserRepository) ports.UserService {
	return &userService{repo: repo}
}

func (s *userService) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *userService) List(ctx context.Context) ([]*domain.User, error) {
	return s.repo.GetAll(ctx)
}

// Update lets a user modify only their own record. Existence is checked
// before ownership so unauthenticated callers never learn more than
// authenticated ones.
func (s *userService) Update(ctx context.Context, requester *domain.User, id uuid.UUID, input ports.UpdateUserInput) (*domain.User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user.ID != requester.ID {
		return nil, domain.ErrForbidden
	}

	if username := strings.TrimSpace(input.Username); username != "" {
		user.Username = username
	}
	if email := strings.TrimSpace(input.Email); email != "" {
		user.Email = email
	}
	if input.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.Password = string(hash)
	}

	now := time.Now()
	user.UpdatedAt = &now

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) Delete(ctx context.Context, requester *domain.User, id uuid.UUID) error {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if user.ID != requester.ID {
		return domain.ErrForbidden
	}
	return s.repo.Delete(ctx, user.ID)
}
