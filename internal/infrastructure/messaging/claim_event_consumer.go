package messaging

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"strings"
	"time"

	"trustify_claims/internal/domain/events"

	"github.com/redis/go-redis/v9"
)

const (
	defaultConsumerGroup = "notifications-service"
	readBlock            = 5 * time.Second
	readBatch            = 10
)

// ClaimEventHandler processes one consumed event. A non-nil error leaves the
// stream entry un-acked so it is redelivered.
type ClaimEventHandler interface {
	HandleClaimStatusChanged(ctx context.Context, event events.ClaimStatusChangedEvent) error
}

// ClaimEventConsumer reads the status-change stream through a consumer group,
// which is what makes delivery at-least-once: entries are acknowledged only
// after the handler persisted its notification.

type ClaimEventConsumer struct {
	rdb      *redis.Client
	stream   string
	group    string
	consumer string
	handler  ClaimEventHandler
}

func NewClaimEventConsumer(rdb *redis.Client, handler ClaimEventHandler) *ClaimEventConsumer {
	return &ClaimEventConsumer{
		rdb:      rdb,
		stream:   getenvDefault("CLAIM_EVENTS_STREAM", defaultClaimEventsStream),
		group:    getenvDefault("CLAIM_EVENTS_GROUP", defaultConsumerGroup),
		consumer: getenvDefault("CLAIM_EVENTS_CONSUMER", "consumer-1"),
		handler:  handler,
	}
}

// Run blocks consuming events until ctx is cancelled.
func (c *ClaimEventConsumer) Run(ctx context.Context) error {
	if err := c.ensureGroup(ctx); err != nil {
		return err
	}

	log.Printf("[messaging] consuming stream=%s group=%s consumer=%s", c.stream, c.group, c.consumer)

	for {
		streams, err := c.rdb.XReadGroup(ctx, &redis.XReadGroupArgs{
			Group:    c.group,
			Consumer: c.consumer,
			Streams:  []string{c.stream, ">"},
			Count:    readBatch,
			Block:    readBlock,
		}).Result()
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(ctx.Err(), context.Canceled) {
				return ctx.Err()
			}
			if errors.Is(err, redis.Nil) {
				continue
			}
			log.Printf("[messaging] read failed err=%v", err)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(time.Second):
			}
			continue
		}

		for _, stream := range streams {
			for _, msg := range stream.Messages {
				c.process(ctx, msg)
			}
		}
	}
}

func (c *ClaimEventConsumer) ensureGroup(ctx context.Context) error {
	err := c.rdb.XGroupCreateMkStream(ctx, c.stream, c.group, "0").Err()
	if err != nil && !strings.Contains(err.Error(), "BUSYGROUP") {
		return err
	}
	return nil
}

func (c *ClaimEventConsumer) process(ctx context.Context, msg redis.XMessage) {
	event, err := decodeEvent(msg)
	if err != nil {
		// Malformed entries can never succeed; ack so they don't loop.
		log.Printf("[messaging] dropping malformed entry id=%s err=%v", msg.ID, err)
		c.ack(ctx, msg.ID)
		return
	}

	if err := c.handler.HandleClaimStatusChanged(ctx, event); err != nil {
		log.Printf("[messaging] handler failed entry=%s claim=%s err=%v", msg.ID, event.ClaimNumber, err)
		return
	}

	c.ack(ctx, msg.ID)
}

func (c *ClaimEventConsumer) ack(ctx context.Context, id string) {
	if err := c.rdb.XAck(ctx, c.stream, c.group, id).Err(); err != nil {
		log.Printf("[messaging] ack failed entry=%s err=%v", id, err)
	}
}

func decodeEvent(msg redis.XMessage) (events.ClaimStatusChangedEvent, error) {
	var event events.ClaimStatusChangedEvent

	raw, ok := msg.Values["payload"]
	if !ok {
		return event, errors.New("entry has no payload field")
	}
	payload, ok := raw.(string)
	if !ok {
		return event, errors.New("payload is not a string")
	}
	if err := json.Unmarshal([]byte(payload), &event); err != nil {
		return event, err
	}
	return event, nil
}
