package service

// Event types pushed to check-in subscribers
const (
	EventProgress  = "progress"
	EventRestarted = "restarted"
	EventCompleted = "completed"
	EventCrisis    = "crisis"
)

// Broadcaster interface for WebSocket broadcasting (avoids import cycle)
type Broadcaster interface {
	BroadcastToCheckIn(checkInID string, msgType string, payload interface{})
}
