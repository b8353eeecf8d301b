package messaging

import (
	"testing"
	"time"

	"trustify_claims/internal/domain/entities"

	"github.com/redis/go-redis/v9"
)

func TestDecodeEvent(t *testing.T) {
	t.Run("valid payload", func(t *testing.T) {
		msg := redis.XMessage{
			ID: "1-0",
			Values: map[string]interface{}{
				"claim_number": "CLM-12345678-ABCDEF01",
				"payload":      `{"claim_number":"CLM-12345678-ABCDEF01","old_status":"UNDER_REVIEW","new_status":"APPROVED","user_id":"user-1","user_email":"user@example.com","changed_by":"admin-1","timestamp":"2025-06-01T12:00:00Z"}`,
			},
		}

		event, err := decodeEvent(msg)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if event.ClaimNumber != "CLM-12345678-ABCDEF01" {
			t.Fatalf("unexpected claim number %q", event.ClaimNumber)
		}
		if event.OldStatus != entities.ClaimStatusUnderReview || event.NewStatus != entities.ClaimStatusApproved {
			t.Fatalf("unexpected statuses: %+v", event)
		}
		if !event.Timestamp.Equal(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)) {
			t.Fatalf("unexpected timestamp %v", event.Timestamp)
		}
	})

	t.Run("missing payload field", func(t *testing.T) {
		msg := redis.XMessage{ID: "1-0", Values: map[string]interface{}{"claim_number": "CLM-1"}}
		if _, err := decodeEvent(msg); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("payload not a string", func(t *testing.T) {
		msg := redis.XMessage{ID: "1-0", Values: map[string]interface{}{"payload": 42}}
		if _, err := decodeEvent(msg); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("malformed json", func(t *testing.T) {
		msg := redis.XMessage{ID: "1-0", Values: map[string]interface{}{"payload": "{"}}
		if _, err := decodeEvent(msg); err == nil {
			t.Fatalf("expected error")
		}
	})
}
