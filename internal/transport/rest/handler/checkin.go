package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"mindpulse/internal/assessment"
	"mindpulse/internal/service"
	"mindpulse/internal/transport/rest/middleware"
)

// CheckInHandler handles check-in endpoints
type CheckInHandler struct {
	checkInSvc *service.CheckInService
}

// NewCheckInHandler creates a new check-in handler
func NewCheckInHandler(checkInSvc *service.CheckInService) *CheckInHandler {
	return &CheckInHandler{checkInSvc: checkInSvc}
}

// AnswerRequest is the request body for answering the current question
type AnswerRequest struct {
	OptionID string `json:"optionId"`
}

// Start handles POST /v1/checkins
func (h *CheckInHandler) Start(w http.ResponseWriter, r *http.Request) {
	// Empty for a first-time caller, who gets a guest identity
	userID := middleware.GetUserID(r.Context())

	resp, err := h.checkInSvc.Start(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}

// Get handles GET /v1/checkins/{id}
func (h *CheckInHandler) Get(w http.ResponseWriter, r *http.Request) {
	view, err := h.checkInSvc.Current(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, view)
}

// Answer handles POST /v1/checkins/{id}/answers
func (h *CheckInHandler) Answer(w http.ResponseWriter, r *http.Request) {
	var req AnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.OptionID == "" {
		writeError(w, http.StatusBadRequest, "optionId is required")
		return
	}

	view, err := h.checkInSvc.Answer(r.Context(), mux.Vars(r)["id"], req.OptionID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, view)
}

// Restart handles POST /v1/checkins/{id}/restart
func (h *CheckInHandler) Restart(w http.ResponseWriter, r *http.Request) {
	view, err := h.checkInSvc.Restart(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, view)
}

// Result handles GET /v1/checkins/{id}/result
func (h *CheckInHandler) Result(w http.ResponseWriter, r *http.Request) {
	checkIn, err := h.checkInSvc.Result(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, checkIn)
}

// Helper functions
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrCheckInNotFound), errors.Is(err, service.ErrQuestionNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, assessment.ErrUnknownOption):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, assessment.ErrInvalidState):
		writeError(w, http.StatusConflict, err.Error())
	default:
		log.Printf("Request failed: %v", err)
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}
