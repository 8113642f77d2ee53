package broadcaster

import (
	"context"

	"github.com/lucasdotdev/waveline/internal/domain"
	"github.com/lucasdotdev/waveline/internal/infrastructure/redis"
)

// Broadcaster publishes chat messages on a redis channel so other instances
// can deliver them to their local room members. Targeted signaling events
// are never published: connection handles only mean something on the
// instance that issued them.
type Broadcaster struct {
	redisClient *redis.Client
}

func NewBroadcaster(redisClient *redis.Client) *Broadcaster {
	return &Broadcaster{redisClient: redisClient}
}

func (b *Broadcaster) Broadcast(ctx context.Context, channel string, message domain.RelayedMessage) error {
	return b.redisClient.Publish(ctx, channel, message)
}
