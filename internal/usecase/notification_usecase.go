package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"trustify_claims/internal/domain/entities"
	"trustify_claims/internal/usecase/interfaces"
)

var (
	ErrNotificationNotFound  = errors.New("notification not found")
	ErrNotificationForbidden = errors.New("you don't have permission to access this notification")
	ErrInvalidNotificationID = errors.New("invalid notification id")
)

// INotificationUseCase exposes the per-user inbox operations. All of them are
// scoped to the caller; there is no cross-user access.

type INotificationUseCase interface {
	ListForUser(ctx context.Context, caller entities.Identity) ([]entities.Notification, error)
	ListUnread(ctx context.Context, caller entities.Identity) ([]entities.Notification, error)
	UnreadCount(ctx context.Context, caller entities.Identity) (int64, error)
	MarkAsRead(ctx context.Context, caller entities.Identity, notificationID string) (entities.Notification, error)
	MarkAllAsRead(ctx context.Context, caller entities.Identity) (int, error)
}

type NotificationUseCase struct {
	repo interfaces.INotificationRepository
}

var _ INotificationUseCase = (*NotificationUseCase)(nil)

func NewNotificationUseCase(repo interfaces.INotificationRepository) *NotificationUseCase {
	return &NotificationUseCase{repo: repo}
}

func (u *NotificationUseCase) ListForUser(ctx context.Context, caller entities.Identity) ([]entities.Notification, error) {
	return u.repo.ListByUser(ctx, caller.SubjectID)
}

func (u *NotificationUseCase) ListUnread(ctx context.Context, caller entities.Identity) ([]entities.Notification, error) {
	return u.repo.ListUnreadByUser(ctx, caller.SubjectID)
}

func (u *NotificationUseCase) UnreadCount(ctx context.Context, caller entities.Identity) (int64, error) {
	return u.repo.CountUnreadByUser(ctx, caller.SubjectID)
}

func (u *NotificationUseCase) MarkAsRead(ctx context.Context, caller entities.Identity, notificationID string) (entities.Notification, error) {
	notificationID = strings.TrimSpace(notificationID)
	if notificationID == "" {
		return entities.Notification{}, ErrInvalidNotificationID
	}

	n, err := u.repo.GetByID(ctx, notificationID)
	if err != nil {
		return entities.Notification{}, err
	}
	if n.ID == "" {
		return entities.Notification{}, ErrNotificationNotFound
	}
	if n.UserID != caller.SubjectID {
		return entities.Notification{}, ErrNotificationForbidden
	}
	if n.Status == entities.NotificationStatusRead {
		return n, nil
	}

	updated, err := u.repo.MarkRead(ctx, notificationID, time.Now().UTC())
	if err != nil {
		return entities.Notification{}, err
	}
	if updated.ID == "" {
		// Lost a race with another mark; the row is READ either way.
		return u.repo.GetByID(ctx, notificationID)
	}
	return updated, nil
}

// MarkAllAsRead marks the caller's current unread set and returns how many
// rows it touched. Notifications created while it runs stay unread.
func (u *NotificationUseCase) MarkAllAsRead(ctx context.Context, caller entities.Identity) (int, error) {
	unread, err := u.repo.ListUnreadByUser(ctx, caller.SubjectID)
	if err != nil {
		return 0, err
	}

	now := time.Now().UTC()
	marked := 0
	for _, n := range unread {
		if _, err := u.repo.MarkRead(ctx, n.ID, now); err != nil {
			return marked, err
		}
		marked++
	}

	log.Printf("[notifications] marked %d notifications as read user=%s", marked, caller.SubjectID)
	return marked, nil
}
