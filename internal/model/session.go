package model

// Phase is the lifecycle state of an assessment session
type Phase string

const (
	PhaseNotStarted Phase = "not_started"
	PhaseBase       Phase = "base"
	PhaseDeepDive   Phase = "deep_dive"
	PhaseCompleted  Phase = "completed"
)

// SessionSnapshot is the serializable form of an assessment session.
// The active flow is derived from Phase and Branch on restore.
type SessionSnapshot struct {
	Phase           Phase             `json:"phase"`
	Branch          Branch            `json:"branch,omitempty"`
	Pointer         int               `json:"pointer"`
	State           EmotionalState    `json:"state"`
	Answers         map[string]string `json:"answers"` // questionId -> optionId
	Recommendations []Recommendation  `json:"recommendations,omitempty"`
}
