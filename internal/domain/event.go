package domain

import "encoding/json"

type EventType string

// Events pushed from the server to connected clients.
const (
	EventUserJoined        EventType = "user-joined"
	EventUserLeft          EventType = "user-left"
	EventRoomInfo          EventType = "room-info"
	EventReceiveMessage    EventType = "receiveMessage"
	EventIncomingCall      EventType = "incoming-call"
	EventCallAnswered      EventType = "call-answered"
	EventCallRejected      EventType = "call-rejected"
	EventCallEnded         EventType = "call-ended"
	EventIceCandidate      EventType = "ice-candidate"
	EventTargetUnavailable EventType = "target-unavailable"
	EventServerClosing     EventType = "server-closing"
	EventError             EventType = "error"
)

type Event struct {
	Type    EventType
	Payload any
}

// Droppable reports whether the event may be evicted from a congested
// outbound queue. Only chat traffic is droppable: a recipient can recover it
// from the message store, while a lost signaling or membership event stalls
// the client state machine.
func (e Event) Droppable() bool {
	return e.Type == EventReceiveMessage
}

type UserJoined struct {
	UserID string `json:"userId"`
}

type UserLeft struct {
	UserID string `json:"userId"`
}

type RoomInfo struct {
	RoomID       string   `json:"roomId"`
	Participants []string `json:"participants"`
}

type IncomingCall struct {
	From  string          `json:"from"`
	Name  string          `json:"name,omitempty"`
	Offer json.RawMessage `json:"offer"`
}

type CallAnswered struct {
	Answer json.RawMessage `json:"answer"`
}

type IceCandidate struct {
	From      string          `json:"from"`
	Candidate json.RawMessage `json:"candidate"`
}

type TargetUnavailable struct {
	To string `json:"to"`
}

type ServerClosing struct {
	Reason string `json:"reason"`
}

type ErrorInfo struct {
	Message string `json:"message"`
}
