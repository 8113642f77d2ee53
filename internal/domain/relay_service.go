package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// ChatChannel is the fanout channel chat messages are published on so that
// other instances can deliver them to their own room members.
const ChatChannel = "chat-events"

// RelayService routes chat and call-signaling events between connected
// peers. It never interprets payloads: chat messages are fanned out to room
// members, signaling events are forwarded to one explicit target handle.
type RelayService struct {
	origin      string
	rooms       RoomStore
	broadcaster Broadcaster
	messages    MessageStore
}

func NewRelayService(rooms RoomStore, broadcaster Broadcaster, messages MessageStore) *RelayService {
	return &RelayService{
		origin:      uuid.NewString(),
		rooms:       rooms,
		broadcaster: broadcaster,
		messages:    messages,
	}
}

// Origin identifies this instance on the fanout channel.
func (s *RelayService) Origin() string {
	return s.origin
}

// Register tracks a freshly established connection. The peer is not in any
// room until it joins one.
func (s *RelayService) Register(ctx context.Context, peer Peer) error {
	if err := s.rooms.Connect(ctx, peer); err != nil {
		return fmt.Errorf("rooms.Connect: %w", err)
	}

	slog.DebugContext(ctx, "peer registered", "handle", peer.Handle)
	return nil
}

// JoinRoom adds the peer to the room, announces it to the current members
// and sends the joiner a snapshot of who is already there. Joining a room
// twice is a no-op.
func (s *RelayService) JoinRoom(ctx context.Context, handle uuid.UUID, roomID string) error {
	peer, err := s.rooms.Peer(ctx, handle)
	if err != nil {
		return fmt.Errorf("rooms.Peer: %w", err)
	}

	joined, err := s.rooms.Join(ctx, handle, roomID)
	if err != nil {
		return fmt.Errorf("rooms.Join: %w", err)
	}

	if !joined {
		return nil
	}

	members, err := s.rooms.RoomMembers(ctx, roomID)
	if err != nil {
		return fmt.Errorf("rooms.RoomMembers: %w", err)
	}

	participants := make([]string, 0, len(members))
	for _, m := range members {
		if m.Handle == handle {
			continue
		}

		participants = append(participants, m.Handle.String())

		if err := m.Messenger.Send(ctx, Event{
			Type:    EventUserJoined,
			Payload: UserJoined{UserID: handle.String()},
		}); err != nil {
			slog.ErrorContext(ctx, "error notifying member", "error", err, "room_id", roomID, "member", m.Handle)
		}
	}

	if err := peer.Messenger.Send(ctx, Event{
		Type:    EventRoomInfo,
		Payload: RoomInfo{RoomID: roomID, Participants: participants},
	}); err != nil {
		return fmt.Errorf("messenger.Send: %w", err)
	}

	return nil
}

// LeaveRoom removes the peer from the room and tells the remaining members.
func (s *RelayService) LeaveRoom(ctx context.Context, handle uuid.UUID, roomID string) error {
	left, err := s.rooms.Leave(ctx, handle, roomID)
	if err != nil {
		return fmt.Errorf("rooms.Leave: %w", err)
	}

	if !left {
		return nil
	}

	s.notifyLeft(ctx, handle, roomID)
	return nil
}

// SendMessage relays a chat message to every current member of the room,
// sender included; clients de-duplicate their own messages by sender id.
// The message is persisted and published to the fanout channel after local
// delivery; neither path blocks or fails the live relay.
func (s *RelayService) SendMessage(ctx context.Context, message ChatMessage) error {
	if message.ID == uuid.Nil {
		message.ID = uuid.New()
	}

	if message.SentAt.IsZero() {
		message.SentAt = time.Now().UTC()
	}

	if err := s.Deliver(ctx, message); err != nil {
		return fmt.Errorf("deliver: %w", err)
	}

	go s.persist(context.WithoutCancel(ctx), message)

	if err := s.broadcaster.Broadcast(ctx, ChatChannel, RelayedMessage{Origin: s.origin, Message: message}); err != nil {
		slog.ErrorContext(ctx, "error broadcasting message", "error", err, "room_id", message.RoomID)
	}

	return nil
}

// Deliver fans a chat message out to the local members of its room. A room
// with no connected members is not an error: the recipient picks the message
// up from the store on next open.
func (s *RelayService) Deliver(ctx context.Context, message ChatMessage) error {
	members, err := s.rooms.RoomMembers(ctx, message.RoomID)
	if err != nil {
		return fmt.Errorf("rooms.RoomMembers: %w", err)
	}

	for _, m := range members {
		if err := m.Messenger.Send(ctx, Event{Type: EventReceiveMessage, Payload: message}); err != nil {
			slog.ErrorContext(ctx, "error delivering message", "error", err, "room_id", message.RoomID, "member", m.Handle)
		}
	}

	return nil
}

// History returns the persisted messages of a room, oldest first.
func (s *RelayService) History(ctx context.Context, roomID string) ([]ChatMessage, error) {
	messages, err := s.messages.ListMessages(ctx, roomID)
	if err != nil {
		return nil, fmt.Errorf("messages.ListMessages: %w", err)
	}

	return messages, nil
}

// Record persists a chat message without relaying it. It backs the REST
// surface the surrounding system uses to store messages directly.
func (s *RelayService) Record(ctx context.Context, message ChatMessage) (ChatMessage, error) {
	if message.ID == uuid.Nil {
		message.ID = uuid.New()
	}

	if message.SentAt.IsZero() {
		message.SentAt = time.Now().UTC()
	}

	stored, err := s.messages.CreateMessage(ctx, message)
	if err != nil {
		return ChatMessage{}, fmt.Errorf("messages.CreateMessage: %w", err)
	}

	return stored, nil
}

// CallUser forwards a call offer to the target handle.
func (s *RelayService) CallUser(ctx context.Context, from, to uuid.UUID, name string, offer []byte) error {
	return s.signal(ctx, from, to, Event{
		Type:    EventIncomingCall,
		Payload: IncomingCall{From: from.String(), Name: name, Offer: offer},
	})
}

// AnswerCall forwards a call acceptance to the target handle.
func (s *RelayService) AnswerCall(ctx context.Context, from, to uuid.UUID, answer []byte) error {
	return s.signal(ctx, from, to, Event{
		Type:    EventCallAnswered,
		Payload: CallAnswered{Answer: answer},
	})
}

// RejectCall tells the target its call offer was declined.
func (s *RelayService) RejectCall(ctx context.Context, from, to uuid.UUID) error {
	return s.signal(ctx, from, to, Event{Type: EventCallRejected})
}

// EndCall tells the target the established call was hung up.
func (s *RelayService) EndCall(ctx context.Context, from, to uuid.UUID) error {
	return s.signal(ctx, from, to, Event{Type: EventCallEnded})
}

// RelayCandidate forwards an ICE candidate to the target handle.
func (s *RelayService) RelayCandidate(ctx context.Context, from, to uuid.UUID, candidate []byte) error {
	return s.signal(ctx, from, to, Event{
		Type:    EventIceCandidate,
		Payload: IceCandidate{From: from.String(), Candidate: candidate},
	})
}

// signal forwards a targeted event to exactly one handle. If the target is
// gone the sender gets a target-unavailable notice so its client can abandon
// the attempt without waiting for a timeout.
func (s *RelayService) signal(ctx context.Context, from, to uuid.UUID, event Event) error {
	target, err := s.rooms.Peer(ctx, to)
	if errors.Is(err, ErrUnknownPeer) {
		slog.DebugContext(ctx, "signal target gone", "event", event.Type, "to", to)

		sender, err := s.rooms.Peer(ctx, from)
		if err != nil {
			return fmt.Errorf("rooms.Peer: %w", err)
		}

		if err := sender.Messenger.Send(ctx, Event{
			Type:    EventTargetUnavailable,
			Payload: TargetUnavailable{To: to.String()},
		}); err != nil {
			return fmt.Errorf("messenger.Send: %w", err)
		}

		return nil
	}

	if err != nil {
		return fmt.Errorf("rooms.Peer: %w", err)
	}

	if err := target.Messenger.Send(ctx, event); err != nil {
		return fmt.Errorf("messenger.Send: %w", err)
	}

	return nil
}

// Disconnect drops the peer from every room it joined and announces the
// departure to each room's remaining members.
func (s *RelayService) Disconnect(ctx context.Context, handle uuid.UUID) error {
	roomIDs, err := s.rooms.Disconnect(ctx, handle)
	if err != nil {
		return fmt.Errorf("rooms.Disconnect: %w", err)
	}

	for _, roomID := range roomIDs {
		s.notifyLeft(ctx, handle, roomID)
	}

	slog.DebugContext(ctx, "peer disconnected", "handle", handle, "rooms", len(roomIDs))
	return nil
}

// Close notifies every connected peer that the server is going away.
func (s *RelayService) Close(ctx context.Context) error {
	peers, err := s.rooms.Peers(ctx)
	if err != nil {
		return fmt.Errorf("rooms.Peers: %w", err)
	}

	for _, p := range peers {
		if err := p.Messenger.Send(ctx, Event{
			Type:    EventServerClosing,
			Payload: ServerClosing{Reason: "server is closing"},
		}); err != nil {
			slog.ErrorContext(ctx, "error notifying peer of shutdown", "error", err, "handle", p.Handle)
		}
	}

	return nil
}

func (s *RelayService) notifyLeft(ctx context.Context, handle uuid.UUID, roomID string) {
	members, err := s.rooms.RoomMembers(ctx, roomID)
	if err != nil {
		slog.ErrorContext(ctx, "error listing room members", "error", err, "room_id", roomID)
		return
	}

	for _, m := range members {
		if err := m.Messenger.Send(ctx, Event{
			Type:    EventUserLeft,
			Payload: UserLeft{UserID: handle.String()},
		}); err != nil {
			slog.ErrorContext(ctx, "error notifying member", "error", err, "room_id", roomID, "member", m.Handle)
		}
	}
}

func (s *RelayService) persist(ctx context.Context, message ChatMessage) {
	if _, err := s.messages.CreateMessage(ctx, message); err != nil {
		slog.ErrorContext(ctx, "error persisting message", "error", err, "room_id", message.RoomID)
	}
}
