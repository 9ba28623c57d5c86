package model

import "time"

// CheckIn is a completed assessment as persisted for a user
type CheckIn struct {
	ID              string            `json:"id" bson:"_id"`
	UserID          string            `json:"userId" bson:"userId"`
	Branch          Branch            `json:"branch" bson:"branch"`
	State           EmotionalState    `json:"state" bson:"state"`
	Answers         map[string]string `json:"answers" bson:"answers"`
	Recommendations []Recommendation  `json:"recommendations" bson:"recommendations"`
	ProfileLabel    string            `json:"profileLabel" bson:"profileLabel"`
	Crisis          bool              `json:"crisis" bson:"crisis"`
	StartedAt       time.Time         `json:"startedAt" bson:"startedAt"`
	CompletedAt     time.Time         `json:"completedAt" bson:"completedAt"`
}

// ActiveCheckIn is an in-flight check-in parked in the cache between requests
type ActiveCheckIn struct {
	ID        string          `json:"id"`
	UserID    string          `json:"userId"`
	StartedAt time.Time       `json:"startedAt"`
	Session   SessionSnapshot `json:"session"`
}

// TrendPoint is one entry of a user's recent mood trend
type TrendPoint struct {
	CheckInID    string         `json:"checkInId"`
	State        EmotionalState `json:"state"`
	ProfileLabel string         `json:"profileLabel"`
	Crisis       bool           `json:"crisis"`
	At           time.Time      `json:"at"`
}

// CheckInView is what clients see of a check-in at any point in its lifecycle
type CheckInView struct {
	CheckInID       string           `json:"checkInId"`
	Phase           Phase            `json:"phase"`
	Question        *Question        `json:"question,omitempty"`
	Progress        float64          `json:"progress"`
	Done            bool             `json:"done"`
	State           *EmotionalState  `json:"state,omitempty"`
	ProfileLabel    string           `json:"profileLabel,omitempty"`
	Axes            []WellnessAxis   `json:"axes,omitempty"`
	Recommendations []Recommendation `json:"recommendations,omitempty"`
	Crisis          bool             `json:"crisis,omitempty"`
}

// StartCheckInResponse is returned when a user starts a check-in
type StartCheckInResponse struct {
	CheckInID string       `json:"checkInId"`
	UserID    string       `json:"userId"`
	Token     string       `json:"token"`
	View      *CheckInView `json:"view"`
}
