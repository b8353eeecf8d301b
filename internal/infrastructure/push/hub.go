package push

import (
	"context"
	"log"
	"sync"

	"trustify_claims/internal/domain/entities"
	"trustify_claims/internal/usecase/interfaces"
)

// Hub is the per-user live delivery registry. Each open WebSocket session
// subscribes under its user id and drains its own buffered channel; Publish
// fans out to every session of the addressed user and is a no-op when none
// are connected.
//
// Delivery is best effort: a subscriber whose buffer is full misses the
// notification (it is already persisted).

type Hub struct {
	mu          sync.RWMutex
	subscribers map[string]map[*Subscription]struct{}
}

type Subscription struct {
	UserID string
	C      chan entities.Notification
}

var _ interfaces.IPushChannel = (*Hub)(nil)

func NewHub() *Hub {
	return &Hub{subscribers: make(map[string]map[*Subscription]struct{})}
}

func (h *Hub) Subscribe(userID string, buffer int) *Subscription {
	sub := &Subscription{UserID: userID, C: make(chan entities.Notification, buffer)}

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.subscribers[userID] == nil {
		h.subscribers[userID] = make(map[*Subscription]struct{})
	}
	h.subscribers[userID][sub] = struct{}{}
	return sub
}

func (h *Hub) Unsubscribe(sub *Subscription) {
	h.mu.Lock()
	defer h.mu.Unlock()

	subs, ok := h.subscribers[sub.UserID]
	if !ok {
		return
	}
	if _, ok := subs[sub]; !ok {
		return
	}
	delete(subs, sub)
	if len(subs) == 0 {
		delete(h.subscribers, sub.UserID)
	}
	close(sub.C)
}

func (h *Hub) Publish(ctx context.Context, userID string, n entities.Notification) error {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for sub := range h.subscribers[userID] {
		select {
		case sub.C <- n:
		default:
			log.Printf("[push] subscriber buffer full, dropping user=%s notification=%s", userID, n.ID)
		}
	}
	return nil
}

// ConnectionCount reports active sessions for a user.
func (h *Hub) ConnectionCount(userID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subscribers[userID])
}
