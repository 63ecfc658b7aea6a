package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/classvote/urna/internal/core/domain"
	"github.com/classvote/urna/internal/core/ports"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type CandidateHandler struct {
	service ports.CandidateService
}

func NewCandidateHandler(service ports.CandidateService) *CandidateHandler {
	return &CandidateHandler{
		service: service,
	}
}

type addCandidateRequest struct {
	Number   string `json:"number"`
	Name     string `json:"name"`
	Party    string `json:"party"`
	Position string `json:"position"`
}

// AddCandidate godoc
// @Summary      Registers a candidate
// @Description  Admin only. The ballot number must have exactly two digits.
// @Tags         candidates
// @Accept       json
// @Produce      json
// @Success      201
// @Failure      400
// @Failure      403
// @Router       /candidates [post]
func (h *CandidateHandler) AddCandidate(w http.ResponseWriter, r *http.Request) {
	var req addCandidateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	input := ports.AddCandidateInput{
		Number:   req.Number,
		Name:     req.Name,
		Party:    req.Party,
		Position: req.Position,
	}

	candidate, err := h.service.Add(r.Context(), input)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidBallotNumber) ||
			errors.Is(err, domain.ErrInvalidCandidateName) ||
			errors.Is(err, domain.ErrInvalidPosition) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(candidate); err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
	}
}

// DeleteCandidate godoc
// @Summary      Removes a candidate
// @Description  Admin only. Votes already cast for the candidate are kept.
// @Tags         candidates
// @Success      204
// @Failure      404
// @Router       /candidates/{id} [delete]
func (h *CandidateHandler) DeleteCandidate(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid candidate id", http.StatusBadRequest)
		return
	}

	if err := h.service.Remove(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrCandidateNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListCandidates godoc
// @Summary      Lists candidates
// @Description  Optionally filtered by the position query parameter, which populates the ballot for that office.
// @Tags         candidates
// @Produce      json
// @Success      200
// @Failure      400
// @Router       /candidates [get]
func (h *CandidateHandler) ListCandidates(w http.ResponseWriter, r *http.Request) {
	var candidates []*domain.Candidate
	var err error

	if position := r.URL.Query().Get("position"); position != "" {
		candidates, err = h.service.ListByPosition(r.Context(), position)
	} else {
		candidates, err = h.service.List(r.Context())
	}
	if err != nil {
		if errors.Is(err, domain.ErrInvalidPosition) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if candidates == nil {
		candidates = []*domain.Candidate{}
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(candidates); err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
	}
}
