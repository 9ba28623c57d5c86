package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"mindpulse/internal/service"
)

// StatsHandler serves aggregate counters over completed check-ins
type StatsHandler struct {
	checkInSvc *service.CheckInService
}

// NewStatsHandler creates a new stats handler
func NewStatsHandler(checkInSvc *service.CheckInService) *StatsHandler {
	return &StatsHandler{checkInSvc: checkInSvc}
}

// Summary handles GET /v1/stats
func (h *StatsHandler) Summary(w http.ResponseWriter, r *http.Request) {
	stats, err := h.checkInSvc.Stats(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, stats)
}

// Question handles GET /v1/stats/questions/{questionId}
func (h *StatsHandler) Question(w http.ResponseWriter, r *http.Request) {
	stats, err := h.checkInSvc.QuestionStats(r.Context(), mux.Vars(r)["questionId"])
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, stats)
}
