package response

import (
	"time"

	"trustify_claims/internal/domain/entities"
)

type NotificationResponse struct {
	ID          string     `json:"id"`
	ClaimNumber string     `json:"claim_number"`
	Message     string     `json:"message"`
	Type        string     `json:"type"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	ReadAt      *time.Time `json:"read_at,omitempty"`
}

func FromNotification(n entities.Notification) NotificationResponse {
	return NotificationResponse{
		ID:          n.ID,
		ClaimNumber: n.ClaimNumber,
		Message:     n.Message,
		Type:        string(n.Type),
		Status:      string(n.Status),
		CreatedAt:   n.CreatedAt,
		ReadAt:      n.ReadAt,
	}
}

func FromNotifications(notifications []entities.Notification) []NotificationResponse {
	out := make([]NotificationResponse, 0, len(notifications))
	for _, n := range notifications {
		out = append(out, FromNotification(n))
	}
	return out
}

type UnreadCountResponse struct {
	UnreadCount int64 `json:"unreadCount"`
}

type MarkAllReadResponse struct {
	MarkedRead int `json:"markedRead"`
}
