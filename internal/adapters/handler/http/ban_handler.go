package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/pollboard/api/internal/core/ports"
)

type BanHandler struct {
	service ports.ModerationService
}

func NewBanHandler(service ports.ModerationService) *BanHandler {
	return &BanHandler{service: service}
}

type banRequest struct {
	PollOwnerID uuid.UUID `json:"poll_owner_id"`
}

// Create bans the user named in the path from voting on the body's poll
// owner's polls.
func (h *BanHandler) Create(w http.ResponseWriter, r *http.Request) {
	requester, ok := userFrom(r)
	if !ok {
		respondJSON(w, http.StatusUnauthorized, errorResponse{Error: "missing identity"})
		return
	}

	userID, err := uuid.Parse(chi.URLParam(r, "user_id"))
	if err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid user id"})
		return
	}

	var req banRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	ban, err := h.service.Ban(r.Context(), requester, ports.BanInput{
		PollOwnerID: req.PollOwnerID,
		UserID:      userID,
	})
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, ban)
}

func (h *BanHandler) List(w http.ResponseWriter, r *http.Request) {
	requester, ok := userFrom(r)
	if !ok {
		respondJSON(w, http.StatusUnauthorized, errorResponse{Error: "missing identity"})
		return
	}

	bans, err := h.service.ListBans(r.Context(), requester)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, bans)
}

func (h *BanHandler) Get(w http.ResponseWriter, r *http.Request) {
	requester, ok := userFrom(r)
	if !ok {
		respondJSON(w, http.StatusUnauthorized, errorResponse{Error: "missing identity"})
		return
	}

	userID, err := uuid.Parse(chi.URLParam(r, "user_id"))
	if err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid user id"})
		return
	}

	ban, err := h.service.GetBanForUser(r.Context(), requester, userID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, ban)
}

func (h *BanHandler) Delete(w http.ResponseWriter, r *http.Request) {
	requester, ok := userFrom(r)
	if !ok {
		respondJSON(w, http.StatusUnauthorized, errorResponse{Error: "missing identity"})
		return
	}

	userID, err := uuid.Parse(chi.URLParam(r, "user_id"))
	if err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid user id"})
		return
	}

	if err := h.service.Unban(r.Context(), requester, userID); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, nil)
}
