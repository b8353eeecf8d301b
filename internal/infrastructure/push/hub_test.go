package push

import (
	"context"
	"testing"

	"trustify_claims/internal/domain/entities"
)

func notif(id string) entities.Notification {
	return entities.Notification{ID: id, UserID: "user-1", Status: entities.NotificationStatusUnread}
}

func TestHub_PublishWithoutSubscribers(t *testing.T) {
	h := NewHub()
	if err := h.Publish(context.Background(), "user-1", notif("n1")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestHub_FanOutToAllSessions(t *testing.T) {
	h := NewHub()
	a := h.Subscribe("user-1", 4)
	b := h.Subscribe("user-1", 4)
	other := h.Subscribe("user-2", 4)

	if err := h.Publish(context.Background(), "user-1", notif("n1")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, sub := range []*Subscription{a, b} {
		select {
		case n := <-sub.C:
			if n.ID != "n1" {
				t.Fatalf("unexpected notification %q", n.ID)
			}
		default:
			t.Fatalf("expected delivery to every session of the user")
		}
	}

	select {
	case <-other.C:
		t.Fatalf("notification leaked to another user")
	default:
	}
}

func TestHub_DropsWhenBufferFull(t *testing.T) {
	h := NewHub()
	sub := h.Subscribe("user-1", 1)

	if err := h.Publish(context.Background(), "user-1", notif("n1")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Second publish hits a full buffer and must not block.
	if err := h.Publish(context.Background(), "user-1", notif("n2")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if n := <-sub.C; n.ID != "n1" {
		t.Fatalf("expected first notification, got %q", n.ID)
	}
	select {
	case n := <-sub.C:
		t.Fatalf("expected drop, got %q", n.ID)
	default:
	}
}

func TestHub_Unsubscribe(t *testing.T) {
	h := NewHub()
	sub := h.Subscribe("user-1", 1)

	if got := h.ConnectionCount("user-1"); got != 1 {
		t.Fatalf("expected 1 connection, got %d", got)
	}

	h.Unsubscribe(sub)
	if got := h.ConnectionCount("user-1"); got != 0 {
		t.Fatalf("expected 0 connections, got %d", got)
	}
	if _, open := <-sub.C; open {
		t.Fatalf("expected closed channel")
	}

	// Idempotent.
	h.Unsubscribe(sub)

	if err := h.Publish(context.Background(), "user-1", notif("n1")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
