package model

import "github.com/golang-jwt/jwt/v5"

// CheckInClaims are JWT claims for a check-in scoped token
type CheckInClaims struct {
	CheckInID string `json:"checkInId"`
	UserID    string `json:"userId"`
	jwt.RegisteredClaims
}
