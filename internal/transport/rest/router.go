package rest

import (
	"net/http"
	"os"

	"github.com/gorilla/mux"

	"mindpulse/internal/service"
	"mindpulse/internal/transport/rest/handler"
	"mindpulse/internal/transport/rest/middleware"
	"mindpulse/internal/transport/ws"
)

// Container holds all dependencies for the router
type Container struct {
	AuthService    *service.AuthService
	CheckInService *service.CheckInService
	WSHub          *ws.Hub
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	// Initialize handlers
	checkInHandler := handler.NewCheckInHandler(c.CheckInService)
	userHandler := handler.NewUserHandler(c.CheckInService)
	statsHandler := handler.NewStatsHandler(c.CheckInService)
	wsHandler := ws.NewHandler(c.WSHub, c.AuthService, c.CheckInService)

	// Initialize middleware
	authMW := middleware.NewAuthMiddleware(c.AuthService)

	// CORS middleware (apply first)
	r.Use(corsMiddleware)

	// API v1 routes
	v1 := r.PathPrefix("/v1").Subrouter()

	// WebSocket routes (public with token in query param)
	v1.HandleFunc("/ws/checkins/{id}", wsHandler.CheckInWS).Methods("GET")

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// Public routes; a token, when sent, ties the new check-in to its user
	publicRoutes := v1.NewRoute().Subrouter()
	publicRoutes.Use(authMW.OptionalCheckIn)

	publicRoutes.HandleFunc("/checkins", checkInHandler.Start).Methods("POST", "OPTIONS")

	// Aggregate stats carry no per-user data
	v1.HandleFunc("/stats", statsHandler.Summary).Methods("GET", "OPTIONS")
	v1.HandleFunc("/stats/questions/{questionId}", statsHandler.Question).Methods("GET", "OPTIONS")

	// Check-in routes (require a token scoped to {id} or {userId})
	checkInRoutes := v1.NewRoute().Subrouter()
	checkInRoutes.Use(authMW.RequireCheckIn)

	checkInRoutes.HandleFunc("/checkins/{id}", checkInHandler.Get).Methods("GET", "OPTIONS")
	checkInRoutes.HandleFunc("/checkins/{id}/answers", checkInHandler.Answer).Methods("POST", "OPTIONS")
	checkInRoutes.HandleFunc("/checkins/{id}/restart", checkInHandler.Restart).Methods("POST", "OPTIONS")
	checkInRoutes.HandleFunc("/checkins/{id}/result", checkInHandler.Result).Methods("GET", "OPTIONS")
	checkInRoutes.HandleFunc("/users/{userId}/checkins", userHandler.History).Methods("GET", "OPTIONS")
	checkInRoutes.HandleFunc("/users/{userId}/trend", userHandler.Trend).Methods("GET", "OPTIONS")

	return r
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowedOrigins := os.Getenv("CORS_ALLOWED_ORIGINS")
		if allowedOrigins == "" {
			allowedOrigins = "*"
		}

		allowedMethods := os.Getenv("CORS_ALLOWED_METHODS")
		if allowedMethods == "" {
			allowedMethods = "GET, POST, OPTIONS"
		}

		allowedHeaders := os.Getenv("CORS_ALLOWED_HEADERS")
		if allowedHeaders == "" {
			allowedHeaders = "Content-Type, Authorization"
		}

		w.Header().Set("Access-Control-Allow-Origin", allowedOrigins)
		w.Header().Set("Access-Control-Allow-Methods", allowedMethods)
		w.Header().Set("Access-Control-Allow-Headers", allowedHeaders)

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
