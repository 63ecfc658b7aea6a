package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/classvote/urna/internal/core/domain"
	"github.com/classvote/urna/internal/core/ports"
)

type BallotHandler struct {
	service ports.BallotService
}

func NewBallotHandler(service ports.BallotService) *BallotHandler {
	return &BallotHandler{
		service: service,
	}
}

type castBallotRequest struct {
	RegistrationNumber string `json:"registration_number"`
	Position           string `json:"position"`
	CandidateRef       string `json:"candidate_ref"`
}

// CastBallot godoc
// @Summary      Casts a vote
// @Description  Records one vote for the voter identified by registration number. candidate_ref is a candidate id, "blank" or "null". A voter can vote once per election.
// @Tags         ballots
// @Accept       json
// @Produce      json
// @Success      201
// @Failure      400
// @Failure      404
// @Failure      409
// @Router       /ballots [post]
func (h *BallotHandler) CastBallot(w http.ResponseWriter, r *http.Request) {
	var req castBallotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	input := ports.CastBallotInput{
		RegistrationNumber: req.RegistrationNumber,
		Position:           req.Position,
		CandidateRef:       req.CandidateRef,
	}

	vote, err := h.service.CastBallot(r.Context(), input)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidPosition) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if errors.Is(err, domain.ErrVoterNotRegistered) || errors.Is(err, domain.ErrCandidateNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		if errors.Is(err, domain.ErrAlreadyVoted) {
			http.Error(w, err.Error(), http.StatusConflict)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(vote); err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
	}
}
