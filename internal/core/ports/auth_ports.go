package ports

import (
	"context"

	"github.com/google/uuid"
	"github.com/pollboard/api/internal/core/domain"
)

// TokenClaims is the identity a verified bearer token carries.
type TokenClaims struct {
	UserID   uuid.UUID
	Username string
}

type RegisterInput struct {
	Username string
	Email    string
	Password string
}

type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	// Login verifies username and password and returns a signed access token.
	Login(ctx context.Context, username, password string) (string, error)
	// VerifyToken validates signature, structure and expiry. It does not
	// check that the user still exists; callers resolving an identity must
	// follow up with a user lookup.
	VerifyToken(token string) (*TokenClaims, error)
}
