package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"mindpulse/internal/model"
)

var ErrInvalidToken = errors.New("invalid or expired token")

// AuthService issues and validates check-in scoped tokens
type AuthService struct {
	jwtSecret []byte
	tokenTTL  time.Duration
}

// NewAuthService creates a new auth service
func NewAuthService(secret string, tokenTTL time.Duration) *AuthService {
	return &AuthService{
		jwtSecret: []byte(secret),
		tokenTTL:  tokenTTL,
	}
}

// NewGuestUserID returns an ID for a caller that did not name a user
func (s *AuthService) NewGuestUserID() string {
	return "u_" + uuid.New().String()[:8]
}

// GenerateCheckInToken creates a token that grants access to one check-in
// and to its owner's history
func (s *AuthService) GenerateCheckInToken(checkInID, userID string) (string, error) {
	now := time.Now()
	claims := &model.CheckInClaims{
		CheckInID: checkInID,
		UserID:    userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

// ValidateCheckInToken validates a check-in JWT and returns claims
func (s *AuthService) ValidateCheckInToken(tokenString string) (*model.CheckInClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &model.CheckInClaims{}, func(token *jwt.Token) (interface{}, error) {
		return s.jwtSecret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*model.CheckInClaims)
	if !ok || !token.Valid || claims.CheckInID == "" {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
