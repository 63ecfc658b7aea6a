package http

import (
	"encoding/json"
	"net/http"

	"github.com/classvote/urna/internal/core/ports"
	"github.com/google/uuid"
)

type ResultHandler struct {
	service ports.ResultService
}

func NewResultHandler(service ports.ResultService) *ResultHandler {
	return &ResultHandler{
		service: service,
	}
}

// GetResults godoc
// @Summary      Returns the current tally
// @Description  One row per candidate plus the blank and null rows, with vote counts and percentages.
// @Tags         results
// @Produce      json
// @Success      200
// @Router       /results [get]
func (h *ResultHandler) GetResults(w http.ResponseWriter, r *http.Request) {
	rows, err := h.service.Results(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(rows); err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
	}
}

// ExportResults godoc
// @Summary      Exports the tally as CSV
// @Tags         results
// @Produce      text/csv
// @Success      200
// @Router       /results/export [get]
func (h *ResultHandler) ExportResults(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="resultados-eleicao.csv"`)

	if err := h.service.WriteCSV(r.Context(), w); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// GetSummary godoc
// @Summary      Returns dashboard counters
// @Description  Registered voters, voters who already voted, candidates and cast votes.
// @Tags         results
// @Produce      json
// @Success      200
// @Router       /results/summary [get]
func (h *ResultHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.service.Summary(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(summary); err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
	}
}

// ResetElection godoc
// @Summary      Resets the election
// @Description  Admin only. Removes every vote, clears every voter flag and records an audit event.
// @Tags         results
// @Success      204
// @Failure      403
// @Router       /election/reset [post]
func (h *ResultHandler) ResetElection(w http.ResponseWriter, r *http.Request) {
	actorID, ok := r.Context().Value(UserIDKey).(uuid.UUID)
	if !ok {
		http.Error(w, "Unauthorized: missing user context", http.StatusUnauthorized)
		return
	}

	if err := h.service.Reset(r.Context(), actorID); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
