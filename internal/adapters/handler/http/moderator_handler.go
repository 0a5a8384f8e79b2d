package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/pollboard/api/internal/core/ports"
)

type ModeratorHandler struct {
	service ports.ModerationService
}

func NewModeratorHandler(service ports.ModerationService) *ModeratorHandler {
	return &ModeratorHandler{service: service}
}

type moderatorRequest struct {
	ModFor  string `json:"mod_for"`
	ModUser string `json:"mod_user"`
}

func (h *ModeratorHandler) Create(w http.ResponseWriter, r *http.Request) {
	granter, ok := userFrom(r)
	if !ok {
		respondJSON(w, http.StatusUnauthorized, errorResponse{Error: "missing identity"})
		return
	}

	var req moderatorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	mod, err := h.service.Grant(r.Context(), granter, ports.GrantModeratorInput{
		ModFor:      req.ModFor,
		ModUsername: req.ModUser,
	})
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, mod)
}

func (h *ModeratorHandler) List(w http.ResponseWriter, r *http.Request) {
	mods, err := h.service.ListModerators(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, mods)
}

func (h *ModeratorHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid moderator id"})
		return
	}

	mod, err := h.service.GetModerator(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, mod)
}

func (h *ModeratorHandler) Update(w http.ResponseWriter, r *http.Request) {
	requester, ok := userFrom(r)
	if !ok {
		respondJSON(w, http.StatusUnauthorized, errorResponse{Error: "missing identity"})
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid moderator id"})
		return
	}

	var req moderatorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	mod, err := h.service.UpdateModerator(r.Context(), requester, id, ports.UpdateModeratorInput{
		ModFor:      req.ModFor,
		ModUsername: req.ModUser,
	})
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, mod)
}

func (h *ModeratorHandler) Delete(w http.ResponseWriter, r *http.Request) {
	requester, ok := userFrom(r)
	if !ok {
		respondJSON(w, http.StatusUnauthorized, errorResponse{Error: "missing identity"})
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid moderator id"})
		return
	}

	if err := h.service.Revoke(r.Context(), requester, id); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, nil)
}
