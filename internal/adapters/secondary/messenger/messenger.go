package messenger

import (
	"context"
	"fmt"

	"github.com/lucasdotdev/waveline/internal/domain"
)

// Envelope is the wire frame for every server-to-client event.
type Envelope struct {
	Event string `json:"event"`
	Data  any    `json:"data,omitempty"`
}

// Messenger queues domain events for one connection. Pushing never blocks
// the relay: the connection's write pump drains the outbox at its own pace.
type Messenger struct {
	outbox *Outbox
}

func NewMessenger(outbox *Outbox) *Messenger {
	return &Messenger{outbox: outbox}
}

func (m *Messenger) Send(ctx context.Context, event domain.Event) error {
	envelope := Envelope{Event: string(event.Type), Data: event.Payload}

	if err := m.outbox.Push(envelope, event.Droppable()); err != nil {
		return fmt.Errorf("outbox.Push: %w", err)
	}

	return nil
}
