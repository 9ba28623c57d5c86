package handler

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"mindpulse/internal/service"
)

// UserHandler handles per-user history endpoints
type UserHandler struct {
	checkInSvc *service.CheckInService
}

// NewUserHandler creates a new user handler
func NewUserHandler(checkInSvc *service.CheckInService) *UserHandler {
	return &UserHandler{checkInSvc: checkInSvc}
}

// History handles GET /v1/users/{userId}/checkins
func (h *UserHandler) History(w http.ResponseWriter, r *http.Request) {
	limit, ok := parseLimit(w, r)
	if !ok {
		return
	}

	checkIns, err := h.checkInSvc.History(r.Context(), mux.Vars(r)["userId"], int64(limit))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"checkIns": checkIns,
	})
}

// Trend handles GET /v1/users/{userId}/trend
func (h *UserHandler) Trend(w http.ResponseWriter, r *http.Request) {
	limit, ok := parseLimit(w, r)
	if !ok {
		return
	}

	points, err := h.checkInSvc.Trend(r.Context(), mux.Vars(r)["userId"], limit)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"points": points,
	})
}

// parseLimit reads ?limit=; zero means the service default
func parseLimit(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return 0, true
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 0 {
		writeError(w, http.StatusBadRequest, "limit must be a non-negative integer")
		return 0, false
	}
	return limit, true
}
