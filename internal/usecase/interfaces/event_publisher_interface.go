package interfaces

import (
	"context"

	"trustify_claims/internal/domain/events"
)

// IClaimEventPublisher pushes status-change events onto the asynchronous
// channel between the claims service and the notifications pipeline. Publish
// happens only after the state mutation is durably committed; a publish
// failure is logged by the caller and never rolls the mutation back.

type IClaimEventPublisher interface {
	PublishClaimStatusChanged(ctx context.Context, event events.ClaimStatusChangedEvent) error
}
