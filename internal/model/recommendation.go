package model

// RecommendationKind classifies a recommendation
type RecommendationKind string

const (
	KindAction   RecommendationKind = "action"
	KindResource RecommendationKind = "resource"
	KindCrisis   RecommendationKind = "crisis" // Host must escalate immediately
)

// Priority ranks a recommendation for display
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Recommendation is a suggested next step derived from a finished assessment
type Recommendation struct {
	ID          string             `json:"id" bson:"id"`
	Title       string             `json:"title" bson:"title"`
	Description string             `json:"description" bson:"description"`
	Kind        RecommendationKind `json:"kind" bson:"kind"`
	Priority    Priority           `json:"priority" bson:"priority"`
	Route       string             `json:"route" bson:"route"` // Opaque destination for the UI router
	Color       string             `json:"color,omitempty" bson:"color,omitempty"`
}

// HasCrisis reports whether any recommendation is crisis-kind
func HasCrisis(recs []Recommendation) bool {
	for _, r := range recs {
		if r.Kind == KindCrisis {
			return true
		}
	}
	return false
}
