package domain

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var ErrUnknownPeer = errors.New("unknown peer")

type RoomStore interface {
	Connect(ctx context.Context, peer Peer) error
	Disconnect(ctx context.Context, handle uuid.UUID) ([]string, error)
	Join(ctx context.Context, handle uuid.UUID, roomID string) (bool, error)
	Leave(ctx context.Context, handle uuid.UUID, roomID string) (bool, error)
	Peer(ctx context.Context, handle uuid.UUID) (Peer, error)
	RoomMembers(ctx context.Context, roomID string) ([]Peer, error)
	Peers(ctx context.Context) ([]Peer, error)
}

type Messenger interface {
	Send(ctx context.Context, event Event) error
}

type Broadcaster interface {
	Broadcast(ctx context.Context, channel string, message RelayedMessage) error
}

type MessageStore interface {
	CreateMessage(ctx context.Context, message ChatMessage) (ChatMessage, error)
	ListMessages(ctx context.Context, roomID string) ([]ChatMessage, error)
}
