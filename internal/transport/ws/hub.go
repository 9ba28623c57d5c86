package ws

import (
	"encoding/json"
	"log"
	"sync"

	"mindpulse/internal/service"
)

// MessageType defines the type of WebSocket message
type MessageType string

// Check-in message types
const (
	MsgSnapshot  MessageType = "snapshot"
	MsgProgress  MessageType = service.EventProgress
	MsgRestarted MessageType = service.EventRestarted
	MsgCompleted MessageType = service.EventCompleted
	MsgCrisis    MessageType = service.EventCrisis
	MsgError     MessageType = "error"
)

// Message is the WebSocket envelope format
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// Hub fans check-in events out to every connection watching that check-in
type Hub struct {
	// checkInID -> connections
	conns map[string]map[*Connection]struct{}

	mu sync.RWMutex

	// Channels for coordination
	register   chan *Connection
	unregister chan *Connection
	broadcast  chan *BroadcastMessage
}

// Connection represents a WebSocket connection
type Connection struct {
	CheckInID string
	UserID    string
	Send      chan []byte
	Hub       *Hub
}

// BroadcastMessage is a message to broadcast
type BroadcastMessage struct {
	CheckInID string
	Message   *Message
}

// NewHub creates a new WebSocket hub
func NewHub() *Hub {
	h := &Hub{
		conns:      make(map[string]map[*Connection]struct{}),
		register:   make(chan *Connection),
		unregister: make(chan *Connection),
		broadcast:  make(chan *BroadcastMessage, 256),
	}
	go h.run()
	return h
}

func (h *Hub) run() {
	for {
		select {
		case conn := <-h.register:
			h.mu.Lock()
			if h.conns[conn.CheckInID] == nil {
				h.conns[conn.CheckInID] = make(map[*Connection]struct{})
			}
			h.conns[conn.CheckInID][conn] = struct{}{}
			h.mu.Unlock()
			log.Printf("User %s watching check-in %s", conn.UserID, conn.CheckInID)

		case conn := <-h.unregister:
			h.mu.Lock()
			if watchers, ok := h.conns[conn.CheckInID]; ok {
				if _, ok := watchers[conn]; ok {
					delete(watchers, conn)
					close(conn.Send)
					if len(watchers) == 0 {
						delete(h.conns, conn.CheckInID)
					}
					log.Printf("User %s stopped watching check-in %s", conn.UserID, conn.CheckInID)
				}
			}
			h.mu.Unlock()

		case msg := <-h.broadcast:
			data, err := json.Marshal(msg.Message)
			if err != nil {
				log.Printf("Failed to encode %s message: %v", msg.Message.Type, err)
				continue
			}
			h.mu.RLock()
			for conn := range h.conns[msg.CheckInID] {
				select {
				case conn.Send <- data:
				default:
					// Drop message if buffer full
				}
			}
			h.mu.RUnlock()
		}
	}
}

// Register adds a connection
func (h *Hub) Register(conn *Connection) {
	h.register <- conn
}

// Unregister removes a connection
func (h *Hub) Unregister(conn *Connection) {
	h.unregister <- conn
}

// Watchers returns how many connections follow a check-in
func (h *Hub) Watchers(checkInID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.conns[checkInID])
}

// BroadcastToCheckIn sends a message to everyone watching a check-in (implements service.Broadcaster)
func (h *Hub) BroadcastToCheckIn(checkInID string, msgType string, payload interface{}) {
	data, err := json.Marshal(payload)
	if err != nil {
		log.Printf("Failed to encode %s payload: %v", msgType, err)
		return
	}
	h.broadcast <- &BroadcastMessage{
		CheckInID: checkInID,
		Message: &Message{
			Type:    MessageType(msgType),
			Payload: data,
		},
	}
}

// Encode builds a single envelope for sending outside of a broadcast
func Encode(msgType MessageType, payload interface{}) ([]byte, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return json.Marshal(&Message{Type: msgType, Payload: data})
}
