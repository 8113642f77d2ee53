package domain

import (
	"time"

	"github.com/google/uuid"
)

// ChatMessage is the payload relayed to room members and handed to the
// message store. The relay does not interpret it: text, file url and audio
// url are opaque and any of them may be empty.
type ChatMessage struct {
	ID       uuid.UUID `json:"id,omitempty"`
	RoomID   string    `json:"roomId"`
	Sender   string    `json:"sender"`
	Body     string    `json:"message"`
	FileURL  string    `json:"fileurl,omitempty"`
	AudioURL string    `json:"audioUrl,omitempty"`
	SentAt   time.Time `json:"timestamp"`
}

// RelayedMessage wraps a chat message published on the fanout channel.
// Origin identifies the publishing instance so subscribers can skip messages
// they already delivered locally.
type RelayedMessage struct {
	Origin  string      `json:"origin"`
	Message ChatMessage `json:"message"`
}
