package usecase

import (
	"context"
	"fmt"
	"log"
	"time"

	"trustify_claims/internal/domain/entities"
	"trustify_claims/internal/domain/events"
	"trustify_claims/internal/usecase/interfaces"

	"github.com/google/uuid"
)

const pushTimeout = 5 * time.Second

// ClaimEventPipeline turns consumed status-change events into persisted
// notifications and attempts live delivery.
//
// The contract is persistence-first: the notification is durably stored before
// any push attempt, and a failed or impossible push is logged and swallowed.
// The user sees the notification on the next inbox fetch regardless.

type ClaimEventPipeline struct {
	notifications interfaces.INotificationRepository
	push          interfaces.IPushChannel
}

func NewClaimEventPipeline(notifications interfaces.INotificationRepository, push interfaces.IPushChannel) *ClaimEventPipeline {
	return &ClaimEventPipeline{notifications: notifications, push: push}
}

// HandleClaimStatusChanged processes one event. A non-nil error means the
// notification was not persisted and the event should be redelivered.
func (p *ClaimEventPipeline) HandleClaimStatusChanged(ctx context.Context, event events.ClaimStatusChangedEvent) error {
	log.Printf("[notifications] received status change event claim=%s old=%s new=%s",
		event.ClaimNumber, event.OldStatus, event.NewStatus)

	n := entities.Notification{
		ID:          uuid.NewString(),
		UserID:      event.UserID,
		ClaimNumber: event.ClaimNumber,
		Message:     buildNotificationMessage(event),
		Type:        notificationTypeForStatus(event.NewStatus),
		Status:      entities.NotificationStatusUnread,
		CreatedAt:   time.Now().UTC(),
	}

	saved, err := p.notifications.Create(ctx, n)
	if err != nil {
		log.Printf("[notifications] failed to persist notification claim=%s user=%s err=%v",
			event.ClaimNumber, event.UserID, err)
		return err
	}

	if p.push != nil {
		// Detached from the consumption path: push latency or failure must
		// not hold up the next event.
		go p.pushToUser(saved)
	}

	return nil
}

func (p *ClaimEventPipeline) pushToUser(n entities.Notification) {
	ctx, cancel := context.WithTimeout(context.Background(), pushTimeout)
	defer cancel()

	if err := p.push.Publish(ctx, n.UserID, n); err != nil {
		log.Printf("[notifications] live push failed user=%s notification=%s err=%v", n.UserID, n.ID, err)
	}
}

func buildNotificationMessage(event events.ClaimStatusChangedEvent) string {
	switch event.NewStatus {
	case entities.ClaimStatusApproved:
		return fmt.Sprintf("Good news! Your claim %s has been approved and is ready for settlement.", event.ClaimNumber)
	case entities.ClaimStatusRejected:
		reason := event.Reason
		if reason == "" {
			reason = "Please contact support for details."
		}
		return fmt.Sprintf("Your claim %s has been rejected. Reason: %s", event.ClaimNumber, reason)
	case entities.ClaimStatusUnderReview:
		return fmt.Sprintf("Your claim %s is now under review by our team.", event.ClaimNumber)
	case entities.ClaimStatusSettled:
		return fmt.Sprintf("Your claim %s has been settled. Payment processing initiated.", event.ClaimNumber)
	default:
		return fmt.Sprintf("Status update for your claim %s: %s", event.ClaimNumber, event.NewStatus)
	}
}

func notificationTypeForStatus(status entities.ClaimStatus) entities.NotificationType {
	switch status {
	case entities.ClaimStatusApproved:
		return entities.NotificationTypeClaimApproved
	case entities.ClaimStatusRejected:
		return entities.NotificationTypeClaimRejected
	case entities.ClaimStatusUnderReview:
		return entities.NotificationTypeClaimUnderReview
	case entities.ClaimStatusSettled:
		return entities.NotificationTypeClaimSettled
	default:
		return entities.NotificationTypeSystem
	}
}
