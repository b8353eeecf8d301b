package messaging

import (
	"context"
	"encoding/json"
	"log"

	"trustify_claims/internal/domain/events"
	"trustify_claims/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

const defaultClaimEventsStream = "claims.status-changed"

// ClaimEventPublisher writes status-change events onto a Redis stream. Each
// entry carries the claim number alongside the JSON payload; the single
// stream keeps events for one claim in publication order.

type ClaimEventPublisher struct {
	rdb    *redis.Client
	stream string
}

var _ interfaces.IClaimEventPublisher = (*ClaimEventPublisher)(nil)

func NewClaimEventPublisher(rdb *redis.Client) *ClaimEventPublisher {
	return &ClaimEventPublisher{
		rdb:    rdb,
		stream: getenvDefault("CLAIM_EVENTS_STREAM", defaultClaimEventsStream),
	}
}

func (p *ClaimEventPublisher) PublishClaimStatusChanged(ctx context.Context, event events.ClaimStatusChangedEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	id, err := p.rdb.XAdd(ctx, &redis.XAddArgs{
		Stream: p.stream,
		Values: map[string]any{
			"claim_number": event.ClaimNumber,
			"payload":      payload,
		},
	}).Result()
	if err != nil {
		return err
	}

	log.Printf("[messaging] published status change claim=%s new_status=%s entry=%s",
		event.ClaimNumber, event.NewStatus, id)
	return nil
}
