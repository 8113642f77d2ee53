package domain

import "github.com/google/uuid"

// Peer is one connected client. The handle is assigned by the server when the
// connection is established and is unrelated to the application user id
// carried inside chat payloads.
type Peer struct {
	Handle    uuid.UUID
	Messenger Messenger
}
