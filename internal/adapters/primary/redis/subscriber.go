package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/lucasdotdev/waveline/internal/domain"
	"github.com/lucasdotdev/waveline/internal/infrastructure/redis"
)

// LocalRelay delivers a chat message to the room members connected to this
// instance.
type LocalRelay interface {
	Origin() string
	Deliver(ctx context.Context, message domain.ChatMessage) error
}

// Subscriber feeds chat messages published by other instances into the
// local relay. Messages this instance published are skipped; it already
// delivered them before publishing.
type Subscriber struct {
	redisClient *redis.Client
	localRelay  LocalRelay
}

func NewSubscriber(redisClient *redis.Client, localRelay LocalRelay) *Subscriber {
	return &Subscriber{
		redisClient: redisClient,
		localRelay:  localRelay,
	}
}

func (s *Subscriber) Subscribe(ctx context.Context, channel string) error {
	if err := s.redisClient.Subscribe(ctx, channel, func(msg redis.Message) error {
		return s.handle(ctx, []byte(msg.Payload))
	}); err != nil {
		slog.ErrorContext(ctx, "error subscribing to redis", "error", err)
		return fmt.Errorf("redisClient.Subscribe: %w", err)
	}

	return nil
}

// handle delivers one published message to the local room members, dropping
// this instance's own publications.
func (s *Subscriber) handle(ctx context.Context, payload []byte) error {
	var m domain.RelayedMessage
	if err := json.Unmarshal(payload, &m); err != nil {
		return fmt.Errorf("json.Unmarshal: %w", err)
	}

	if m.Origin == s.localRelay.Origin() {
		return nil
	}

	if err := s.localRelay.Deliver(ctx, m.Message); err != nil {
		return fmt.Errorf("localRelay.Deliver: %w", err)
	}

	return nil
}
