package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"
)

// Client is the pub/sub transport of the cross-instance chat fanout. Relay
// instances publish chat messages on a shared channel and subscribe to pick
// up what the other instances published.
type Client struct {
	*redis.Client
}

func NewClient(addr string) *Client {
	return &Client{Client: redis.NewClient(&redis.Options{Addr: addr})}
}

type Message = redis.Message

var ErrSubscriptionClosed = errors.New("subscription closed")

// Subscribe consumes the channel until ctx is cancelled, invoking handler
// for every published message. A handler error stops the subscription.
func (c *Client) Subscribe(ctx context.Context, channel string, handler func(Message) error) error {
	pubsub := c.Client.Subscribe(ctx, channel)
	defer pubsub.Close()

	messages := pubsub.Channel()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, ok := <-messages:
			if !ok {
				return ErrSubscriptionClosed
			}

			if err := handler(*msg); err != nil {
				return fmt.Errorf("handler: %w", err)
			}
		}
	}
}

// Publish marshals the message to JSON and publishes it on the channel.
func (c *Client) Publish(ctx context.Context, channel string, message any) error {
	msgBytes, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("json.Marshal: %w", err)
	}

	if err := c.Client.Publish(ctx, channel, msgBytes).Err(); err != nil {
		return fmt.Errorf("client.Publish: %w", err)
	}

	return nil
}
