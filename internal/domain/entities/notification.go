package entities

import "time"

// NotificationType classifies what a notification is about. Claim status
// changes map to the CLAIM_* types; anything unrecognized falls back to
// SYSTEM_NOTIFICATION.

type NotificationType string

const (
	NotificationTypeClaimApproved    NotificationType = "CLAIM_APPROVED"
	NotificationTypeClaimRejected    NotificationType = "CLAIM_REJECTED"
	NotificationTypeClaimUnderReview NotificationType = "CLAIM_UNDER_REVIEW"
	NotificationTypeClaimSettled     NotificationType = "CLAIM_SETTLED"
	NotificationTypeSystem           NotificationType = "SYSTEM_NOTIFICATION"
)

type NotificationStatus string

const (
	NotificationStatusUnread NotificationStatus = "UNREAD"
	NotificationStatusRead   NotificationStatus = "READ"
)

// Notification is the persisted inbox entry for a user.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (user_id-index): user_id HASH, created_at RANGE
//
// ReadAt is set exactly when Status becomes READ and is never cleared.

type Notification struct {
	ID          string             `json:"id"`
	UserID      string             `json:"user_id"`
	ClaimNumber string             `json:"claim_number"`
	Message     string             `json:"message"`
	Type        NotificationType   `json:"type"`
	Status      NotificationStatus `json:"status"`
	CreatedAt   time.Time          `json:"created_at"`
	ReadAt      *time.Time         `json:"read_at,omitempty"`
}
