package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"multisig-vault/internal/core/domain"

	goredis "github.com/redis/go-redis/v9"
)

// EventStream implements ports.EventPublisher on a Redis Stream. Each vault
// gets its own stream key so observers can tail a single vault's history in
// order. Streams are capped to keep memory bounded; observers needing full
// history should consume promptly or read the proposal table directly.
type EventStream struct {
	client *goredis.Client
	prefix string
	maxLen int64
}

// NewEventStream creates a Redis Streams event publisher.
func NewEventStream(client *goredis.Client) *EventStream {
	return &EventStream{
		client: client,
		prefix: "vault-events:",
		maxLen: 10000,
	}
}

// StreamKey returns the stream name for a vault, exposed for observers.
func (s *EventStream) StreamKey(vaultID string) string {
	return s.prefix + vaultID
}

// Publish appends one event to the vault's stream.
func (s *EventStream) Publish(ctx context.Context, event domain.VaultEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal vault event: %w", err)
	}

	err = s.client.XAdd(ctx, &goredis.XAddArgs{
		Stream: s.StreamKey(event.VaultID.String()),
		MaxLen: s.maxLen,
		Approx: true,
		Values: map[string]any{
			"type":     string(event.Type),
			"event":    payload,
			"event_id": event.ID.String(),
		},
	}).Err()
	if err != nil {
		return fmt.Errorf("redis xadd vault event: %w", err)
	}
	return nil
}

// Recent returns up to count most recent events of a vault, newest first.
func (s *EventStream) Recent(ctx context.Context, vaultID string, count int64) ([]domain.VaultEvent, error) {
	msgs, err := s.client.XRevRangeN(ctx, s.StreamKey(vaultID), "+", "-", count).Result()
	if err != nil {
		return nil, fmt.Errorf("redis xrevrange vault events: %w", err)
	}

	events := make([]domain.VaultEvent, 0, len(msgs))
	for _, msg := range msgs {
		raw, ok := msg.Values["event"].(string)
		if !ok {
			continue
		}
		var event domain.VaultEvent
		if err := json.Unmarshal([]byte(raw), &event); err != nil {
			continue
		}
		events = append(events, event)
	}
	return events, nil
}
