package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/classvote/urna/internal/core/domain"
	"github.com/classvote/urna/internal/core/ports"
	"github.com/go-chi/chi/v5"
)

type VoterHandler struct {
	service ports.VoterService
}

func NewVoterHandler(service ports.VoterService) *VoterHandler {
	return &VoterHandler{
		service: service,
	}
}

type registerVoterRequest struct {
	RegistrationNumber string `json:"registration_number"`
	Name               string `json:"name"`
	GroupLabel         string `json:"group_label"`
}

// RegisterVoter godoc
// @Summary      Registers a voter
// @Description  Creates a voter with the given registration number. Fails when the number is already registered.
// @Tags         voters
// @Accept       json
// @Produce      json
// @Success      201
// @Failure      400
// @Failure      409
// @Router       /voters [post]
func (h *VoterHandler) RegisterVoter(w http.ResponseWriter, r *http.Request) {
	var req registerVoterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	input := ports.RegisterVoterInput{
		RegistrationNumber: req.RegistrationNumber,
		Name:               req.Name,
		GroupLabel:         req.GroupLabel,
	}

	voter, err := h.service.Register(r.Context(), input)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateRegistration) {
			http.Error(w, err.Error(), http.StatusConflict)
			return
		}
		if errors.Is(err, domain.ErrMissingRegistrationNumber) || errors.Is(err, domain.ErrMissingVoterName) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(voter); err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
	}
}

// GetVoter godoc
// @Summary      Finds a voter by registration number
// @Tags         voters
// @Produce      json
// @Success      200
// @Failure      404
// @Router       /voters/{number} [get]
func (h *VoterHandler) GetVoter(w http.ResponseWriter, r *http.Request) {
	number := chi.URLParam(r, "number")
	if number == "" {
		http.Error(w, "missing registration number", http.StatusBadRequest)
		return
	}

	voter, err := h.service.FindByNumber(r.Context(), number)
	if err != nil {
		if errors.Is(err, domain.ErrVoterNotRegistered) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(voter); err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
	}
}

// ListVoters godoc
// @Summary      Lists all registered voters
// @Tags         voters
// @Produce      json
// @Success      200
// @Router       /voters [get]
func (h *VoterHandler) ListVoters(w http.ResponseWriter, r *http.Request) {
	voters, err := h.service.ListVoters(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if voters == nil {
		voters = []*domain.Voter{}
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(voters); err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
	}
}
