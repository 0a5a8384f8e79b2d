package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/pollboard/api/internal/core/ports"
)

type ChoiceHandler struct {
	service ports.ChoiceService
}

func NewChoiceHandler(service ports.ChoiceService) *ChoiceHandler {
	return &ChoiceHandler{service: service}
}

type choiceRequest struct {
	PollID uuid.UUID `json:"poll_id"`
	Text   string    `json:"text"`
	Image  string    `json:"image"`
}

func (h *ChoiceHandler) Create(w http.ResponseWriter, r *http.Request) {
	creator, ok := userFrom(r)
	if !ok {
		respondJSON(w, http.StatusUnauthorized, errorResponse{Error: "missing identity"})
		return
	}

	var req choiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	choice, err := h.service.Create(r.Context(), creator, ports.CreateChoiceInput{
		PollID: req.PollID,
		Text:   req.Text,
		Image:  req.Image,
	})
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, choice)
}

func (h *ChoiceHandler) List(w http.ResponseWriter, r *http.Request) {
	choices, err := h.service.List(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, choices)
}

func (h *ChoiceHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid choice id"})
		return
	}

	choice, err := h.service.Get(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, choice)
}

func (h *ChoiceHandler) Update(w http.ResponseWriter, r *http.Request) {
	requester, ok := userFrom(r)
	if !ok {
		respondJSON(w, http.StatusUnauthorized, errorResponse{Error: "missing identity"})
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid choice id"})
		return
	}

	var req choiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	choice, err := h.service.Update(r.Context(), requester, id, ports.UpdateChoiceInput{
		Text:  req.Text,
		Image: req.Image,
	})
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, choice)
}

func (h *ChoiceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	requester, ok := userFrom(r)
	if !ok {
		respondJSON(w, http.StatusUnauthorized, errorResponse{Error: "missing identity"})
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid choice id"})
		return
	}

	if err := h.service.Delete(r.Context(), requester, id); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, nil)
}
