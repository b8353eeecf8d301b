package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"trustify_claims/internal/domain/entities"
	"trustify_claims/internal/domain/events"
	mock_interfaces "trustify_claims/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func statusChangedEvent(newStatus entities.ClaimStatus, reason string) events.ClaimStatusChangedEvent {
	return events.ClaimStatusChangedEvent{
		ClaimNumber: "CLM-12345678-ABCDEF01",
		OldStatus:   entities.ClaimStatusUnderReview,
		NewStatus:   newStatus,
		UserID:      testUser.SubjectID,
		UserEmail:   testUser.Email,
		ChangedBy:   testAdmin.SubjectID,
		Reason:      reason,
		Timestamp:   time.Now().UTC(),
	}
}

func TestClaimEventPipeline_HandleClaimStatusChanged(t *testing.T) {
	t.Run("persists then pushes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockINotificationRepository(ctrl)
		push := mock_interfaces.NewMockIPushChannel(ctrl)
		p := NewClaimEventPipeline(repo, push)

		pushed := make(chan entities.Notification, 1)

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Notification{})).DoAndReturn(
			func(_ context.Context, n entities.Notification) (entities.Notification, error) {
				if n.ID == "" {
					t.Fatalf("expected generated id")
				}
				if n.UserID != testUser.SubjectID || n.ClaimNumber != "CLM-12345678-ABCDEF01" {
					t.Fatalf("unexpected notification: %+v", n)
				}
				if n.Status != entities.NotificationStatusUnread {
					t.Fatalf("expected UNREAD, got %s", n.Status)
				}
				if n.Type != entities.NotificationTypeClaimApproved {
					t.Fatalf("expected CLAIM_APPROVED, got %s", n.Type)
				}
				return n, nil
			},
		)
		push.EXPECT().Publish(gomock.Any(), testUser.SubjectID, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, n entities.Notification) error {
				pushed <- n
				return nil
			},
		)

		err := p.HandleClaimStatusChanged(context.Background(), statusChangedEvent(entities.ClaimStatusApproved, ""))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		select {
		case n := <-pushed:
			if n.Message != "Good news! Your claim CLM-12345678-ABCDEF01 has been approved and is ready for settlement." {
				t.Fatalf("unexpected message %q", n.Message)
			}
		case <-time.After(2 * time.Second):
			t.Fatalf("expected live push")
		}
	})

	t.Run("persist failure propagates for redelivery", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockINotificationRepository(ctrl)
		p := NewClaimEventPipeline(repo, nil)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Notification{}, errors.New("dynamo down"))

		err := p.HandleClaimStatusChanged(context.Background(), statusChangedEvent(entities.ClaimStatusApproved, ""))
		if err == nil || err.Error() != "dynamo down" {
			t.Fatalf("expected persistence error, got %v", err)
		}
	})

	t.Run("nil push channel persists only", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockINotificationRepository(ctrl)
		p := NewClaimEventPipeline(repo, nil)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, n entities.Notification) (entities.Notification, error) { return n, nil },
		)

		if err := p.HandleClaimStatusChanged(context.Background(), statusChangedEvent(entities.ClaimStatusSettled, "")); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestBuildNotificationMessage(t *testing.T) {
	cases := []struct {
		name   string
		status entities.ClaimStatus
		reason string
		want   string
	}{
		{"approved", entities.ClaimStatusApproved, "", "Good news! Your claim CLM-12345678-ABCDEF01 has been approved and is ready for settlement."},
		{"rejected with reason", entities.ClaimStatusRejected, "insufficient documentation", "Your claim CLM-12345678-ABCDEF01 has been rejected. Reason: insufficient documentation"},
		{"rejected without reason", entities.ClaimStatusRejected, "", "Your claim CLM-12345678-ABCDEF01 has been rejected. Reason: Please contact support for details."},
		{"under review", entities.ClaimStatusUnderReview, "", "Your claim CLM-12345678-ABCDEF01 is now under review by our team."},
		{"settled", entities.ClaimStatusSettled, "", "Your claim CLM-12345678-ABCDEF01 has been settled. Payment processing initiated."},
		{"fallback", entities.ClaimStatusCancelled, "", "Status update for your claim CLM-12345678-ABCDEF01: CANCELLED"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := buildNotificationMessage(statusChangedEvent(tc.status, tc.reason))
			if got != tc.want {
				t.Fatalf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestNotificationTypeForStatus(t *testing.T) {
	cases := map[entities.ClaimStatus]entities.NotificationType{
		entities.ClaimStatusApproved:    entities.NotificationTypeClaimApproved,
		entities.ClaimStatusRejected:    entities.NotificationTypeClaimRejected,
		entities.ClaimStatusUnderReview: entities.NotificationTypeClaimUnderReview,
		entities.ClaimStatusSettled:     entities.NotificationTypeClaimSettled,
		entities.ClaimStatusCancelled:   entities.NotificationTypeSystem,
	}

	for status, want := range cases {
		if got := notificationTypeForStatus(status); got != want {
			t.Fatalf("status %s: got %s, want %s", status, got, want)
		}
	}
}
