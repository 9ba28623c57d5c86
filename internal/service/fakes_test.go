package service

import (
	"errors"
	"sync"
)

var errStoreDown = errors.New("store unavailable")

type event struct {
	checkInID string
	msgType   string
}

type fakeBroadcaster struct {
	mu     sync.Mutex
	events []event
}

func (b *fakeBroadcaster) BroadcastToCheckIn(checkInID string, msgType string, _ interface{}) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, event{checkInID: checkInID, msgType: msgType})
}

func (b *fakeBroadcaster) types() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]string, len(b.events))
	for i, e := range b.events {
		out[i] = e.msgType
	}
	return out
}
