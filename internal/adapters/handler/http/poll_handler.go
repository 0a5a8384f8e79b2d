package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/pollboard/api/internal/core/domain"
	"github.com/pollboard/api/internal/core/ports"
)

type PollHandler struct {
	service ports.PollService
}

func NewPollHandler(service ports.PollService) *PollHandler {
	return &PollHandler{service: service}
}

type pollRequest struct {
	Title       string `json:"title"`
	Type        string `json:"poll_type"`
	ChoicesOpen bool   `json:"choices_open"`
	VotingOpen  bool   `json:"voting_open"`
}

func (h *PollHandler) Create(w http.ResponseWriter, r *http.Request) {
	owner, ok := userFrom(r)
	if !ok {
		respondJSON(w, http.StatusUnauthorized, errorResponse{Error: "missing identity"})
		return
	}

	var req pollRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	poll, err := h.service.Create(r.Context(), owner, ports.CreatePollInput{
		Title:       req.Title,
		Type:        domain.PollType(req.Type),
		ChoicesOpen: req.ChoicesOpen,
		VotingOpen:  req.VotingOpen,
	})
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, poll)
}

func (h *PollHandler) List(w http.ResponseWriter, r *http.Request) {
	polls, err := h.service.List(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, polls)
}

func (h *PollHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid poll id"})
		return
	}

	poll, err := h.service.Get(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, poll)
}

func (h *PollHandler) Update(w http.ResponseWriter, r *http.Request) {
	requester, ok := userFrom(r)
	if !ok {
		respondJSON(w, http.StatusUnauthorized, errorResponse{Error: "missing identity"})
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid poll id"})
		return
	}

	var req pollRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	poll, err := h.service.Update(r.Context(), requester, id, ports.CreatePollInput{
		Title:       req.Title,
		Type:        domain.PollType(req.Type),
		ChoicesOpen: req.ChoicesOpen,
		VotingOpen:  req.VotingOpen,
	})
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, poll)
}

func (h *PollHandler) Delete(w http.ResponseWriter, r *http.Request) {
	requester, ok := userFrom(r)
	if !ok {
		respondJSON(w, http.StatusUnauthorized, errorResponse{Error: "missing identity"})
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid poll id"})
		return
	}

	if err := h.service.Delete(r.Context(), requester, id); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, nil)
}
