package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"mindpulse/internal/service"
)

type contextKey string

const (
	CheckInIDKey contextKey = "checkInId"
	UserIDKey    contextKey = "userId"
)

// AuthMiddleware provides JWT authentication middleware
type AuthMiddleware struct {
	authSvc *service.AuthService
}

// NewAuthMiddleware creates a new auth middleware
func NewAuthMiddleware(authSvc *service.AuthService) *AuthMiddleware {
	return &AuthMiddleware{authSvc: authSvc}
}

// RequireCheckIn validates a check-in JWT from the Authorization header.
// Routes with an {id} var must match the token's check-in and routes with
// a {userId} var must match its user.
func (m *AuthMiddleware) RequireCheckIn(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := extractBearerToken(r)
		if token == "" {
			http.Error(w, `{"error":"missing authorization header"}`, http.StatusUnauthorized)
			return
		}

		claims, err := m.authSvc.ValidateCheckInToken(token)
		if err != nil {
			http.Error(w, `{"error":"invalid or expired token"}`, http.StatusUnauthorized)
			return
		}

		vars := mux.Vars(r)
		if id, ok := vars["id"]; ok && id != claims.CheckInID {
			http.Error(w, `{"error":"token not valid for this check-in"}`, http.StatusForbidden)
			return
		}
		if userID, ok := vars["userId"]; ok && userID != claims.UserID {
			http.Error(w, `{"error":"token not valid for this user"}`, http.StatusForbidden)
			return
		}

		ctx := r.Context()
		ctx = context.WithValue(ctx, CheckInIDKey, claims.CheckInID)
		ctx = context.WithValue(ctx, UserIDKey, claims.UserID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// OptionalCheckIn is RequireCheckIn for public routes: no token passes
// through anonymously, a bad one is still rejected.
func (m *AuthMiddleware) OptionalCheckIn(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := extractBearerToken(r)
		if token == "" {
			next.ServeHTTP(w, r)
			return
		}

		claims, err := m.authSvc.ValidateCheckInToken(token)
		if err != nil {
			http.Error(w, `{"error":"invalid or expired token"}`, http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), UserIDKey, claims.UserID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetCheckInID extracts check-in ID from context
func GetCheckInID(ctx context.Context) string {
	if v := ctx.Value(CheckInIDKey); v != nil {
		return v.(string)
	}
	return ""
}

// GetUserID extracts user ID from context
func GetUserID(ctx context.Context) string {
	if v := ctx.Value(UserIDKey); v != nil {
		return v.(string)
	}
	return ""
}

func extractBearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if auth == "" {
		return ""
	}
	parts := strings.SplitN(auth, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return parts[1]
}
