package redis

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/lucasdotdev/waveline/internal/domain"
	"github.com/stretchr/testify/require"
)

type fakeLocalRelay struct {
	origin     string
	delivered  []domain.ChatMessage
	deliverErr error
}

func (f *fakeLocalRelay) Origin() string {
	return f.origin
}

func (f *fakeLocalRelay) Deliver(ctx context.Context, message domain.ChatMessage) error {
	if f.deliverErr != nil {
		return f.deliverErr
	}

	f.delivered = append(f.delivered, message)
	return nil
}

func relayedPayload(t *testing.T, origin string, message domain.ChatMessage) []byte {
	t.Helper()

	payload, err := json.Marshal(domain.RelayedMessage{Origin: origin, Message: message})
	require.NoError(t, err)

	return payload
}

func TestSubscriber_Handle(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("it should deliver a message published by another instance", func(t *testing.T) {
		localRelay := &fakeLocalRelay{origin: "instance-a"}
		subscriber := NewSubscriber(nil, localRelay)

		message := domain.ChatMessage{ID: uuid.New(), RoomID: "u1_u2", Sender: "u1", Body: "hello"}

		require.NoError(t, subscriber.handle(ctx, relayedPayload(t, "instance-b", message)))
		require.Len(t, localRelay.delivered, 1)
		require.Equal(t, message.ID, localRelay.delivered[0].ID)
		require.Equal(t, "hello", localRelay.delivered[0].Body)
	})

	t.Run("it should skip a message this instance published", func(t *testing.T) {
		localRelay := &fakeLocalRelay{origin: "instance-a"}
		subscriber := NewSubscriber(nil, localRelay)

		message := domain.ChatMessage{ID: uuid.New(), RoomID: "u1_u2", Sender: "u1", Body: "hello"}

		require.NoError(t, subscriber.handle(ctx, relayedPayload(t, "instance-a", message)))
		require.Empty(t, localRelay.delivered)
	})

	t.Run("it should fail on a malformed payload", func(t *testing.T) {
		localRelay := &fakeLocalRelay{origin: "instance-a"}
		subscriber := NewSubscriber(nil, localRelay)

		err := subscriber.handle(ctx, []byte("not json"))
		require.Error(t, err)
		require.Empty(t, localRelay.delivered)
	})

	t.Run("it should propagate a delivery failure", func(t *testing.T) {
		localRelay := &fakeLocalRelay{origin: "instance-a", deliverErr: errors.New("relay down")}
		subscriber := NewSubscriber(nil, localRelay)

		message := domain.ChatMessage{ID: uuid.New(), RoomID: "u1_u2", Sender: "u1"}

		err := subscriber.handle(ctx, relayedPayload(t, "instance-b", message))
		require.ErrorContains(t, err, "relay down")
	})
}
