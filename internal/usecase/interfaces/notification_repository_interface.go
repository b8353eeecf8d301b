package interfaces

import (
	"context"
	"time"

	"trustify_claims/internal/domain/entities"
)

// INotificationRepository abstracts DynamoDB persistence for Notification.
//
// ListByUser returns newest first. Reads return the zero-value Notification
// when nothing matches. MarkRead is conditional on the row still being
// UNREAD, which keeps READ monotonic under concurrent marks.

type INotificationRepository interface {
	Create(ctx context.Context, n entities.Notification) (entities.Notification, error)
	GetByID(ctx context.Context, id string) (entities.Notification, error)
	ListByUser(ctx context.Context, userID string) ([]entities.Notification, error)
	ListUnreadByUser(ctx context.Context, userID string) ([]entities.Notification, error)
	CountUnreadByUser(ctx context.Context, userID string) (int64, error)
	MarkRead(ctx context.Context, id string, readAt time.Time) (entities.Notification, error)
}
