package events

import (
	"time"

	"trustify_claims/internal/domain/entities"
)

// ClaimStatusChangedEvent is published on the status-change channel once per
// notification-worthy transition and consumed by the notifications pipeline.
// ClaimNumber doubles as the channel partition key, so ordering is guaranteed
// per claim only.
//
// The event is transient: it is not persisted beyond channel retention.

type ClaimStatusChangedEvent struct {
	ClaimNumber string               `json:"claim_number"`
	OldStatus   entities.ClaimStatus `json:"old_status"`
	NewStatus   entities.ClaimStatus `json:"new_status"`
	UserID      string               `json:"user_id"`
	UserEmail   string               `json:"user_email,omitempty"`
	ChangedBy   string               `json:"changed_by,omitempty"`
	Reason      string               `json:"reason,omitempty"`
	Timestamp   time.Time            `json:"timestamp"`
}

// NotificationWorthy reports whether a transition to the given status should
// reach the notifications pipeline at all.
func NotificationWorthy(status entities.ClaimStatus) bool {
	switch status {
	case entities.ClaimStatusApproved, entities.ClaimStatusRejected,
		entities.ClaimStatusUnderReview, entities.ClaimStatusSettled:
		return true
	}
	return false
}
