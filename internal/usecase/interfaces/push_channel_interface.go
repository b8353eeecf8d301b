package interfaces

import (
	"context"

	"trustify_claims/internal/domain/entities"
)

// IPushChannel is the best-effort live delivery surface. Publishing to a user
// with no active connection is a no-op; with several open sessions, all of
// them receive the notification.

type IPushChannel interface {
	Publish(ctx context.Context, userID string, n entities.Notification) error
}
