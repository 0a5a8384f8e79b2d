package http

import (
	"encoding/json"
	"net/http"

	"github.com/pollboard/api/internal/core/domain"
	"github.com/pollboard/api/internal/core/ports"
)

type AuthHandler struct {
	service      ports.AuthService
	redirectURL  string
	cookieDomain string
	tokenMaxAge  int
}

func NewAuthHandler(service ports.AuthService, redirectURL, cookieDomain string, tokenMaxAge int) *AuthHandler {
	return &AuthHandler{
		service:      service,
		redirectURL:  redirectURL,
		cookieDomain: cookieDomain,
		tokenMaxAge:  tokenMaxAge,
	}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type accessTokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	token, err := h.service.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, accessTokenResponse{AccessToken: token, TokenType: "bearer"})
}

// BasicLogin performs the same password verification as Login but hands
// the token back as a cookie and redirects, for browser clients.
func (h *AuthHandler) BasicLogin(w http.ResponseWriter, r *http.Request) {
	username, password, ok := r.BasicAuth()
	if !ok {
		w.Header().Set("WWW-Authenticate", `Basic realm="pollboard"`)
		respondError(w, domain.ErrUnauthenticated)
		return
	}

	token, err := h.service.Login(r.Context(), username, password)
	if err != nil {
		respondError(w, err)
		return
	}

	h.setAccessTokenCookie(w, token)
	http.Redirect(w, r, h.redirectURL, http.StatusSeeOther)
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:   "access_token",
		Value:  "",
		Path:   "/",
		Domain: h.cookieDomain,
		MaxAge: -1,
	})
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *AuthHandler) setAccessTokenCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     "access_token",
		Value:    token,
		Path:     "/",
		Domain:   h.cookieDomain,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   h.tokenMaxAge,
	})
}
