package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/pollboard/api/internal/core/domain"
	"github.com/pollboard/api/internal/core/ports"
)

type contextKey string

const userKey contextKey = "current_user"

// Authenticator resolves a request's bearer token into a user identity
// once, at the boundary. A valid signature over a deleted user does not
// authorize anything: the lookup below must succeed.
type Authenticator struct {
	auth     ports.AuthService
	userRepo ports.UserRepository
}

func NewAuthenticator(auth ports.AuthService, userRepo ports.UserRepository) *Authenticator {
	return &Authenticator{auth: auth, userRepo: userRepo}
}

func (a *Authenticator) RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r)
		if token == "" {
			respondError(w, domain.ErrInvalidToken)
			return
		}

		claims, err := a.auth.VerifyToken(token)
		if err != nil {
			respondError(w, domain.ErrInvalidToken)
			return
		}

		user, err := a.userRepo.GetByID(r.Context(), claims.UserID)
		if err != nil {
			respondError(w, domain.ErrInvalidToken)
			return
		}

		ctx := context.WithValue(r.Context(), userKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// bearerToken reads the Authorization header, falling back to the
// access_token cookie set by the basic-auth login variant.
func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	if cookie, err := r.Cookie("access_token"); err == nil {
		return cookie.Value
	}
	return ""
}

func userFrom(r *http.Request) (*domain.User, bool) {
	user, ok := r.Context().Value(userKey).(*domain.User)
	return user, ok
}
