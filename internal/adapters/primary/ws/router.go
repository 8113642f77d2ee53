package ws

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/lucasdotdev/waveline/internal/domain"
)

// RelayService is the part of the relay the websocket boundary drives.
type RelayService interface {
	Register(ctx context.Context, peer domain.Peer) error
	JoinRoom(ctx context.Context, handle uuid.UUID, roomID string) error
	LeaveRoom(ctx context.Context, handle uuid.UUID, roomID string) error
	SendMessage(ctx context.Context, message domain.ChatMessage) error
	CallUser(ctx context.Context, from, to uuid.UUID, name string, offer []byte) error
	AnswerCall(ctx context.Context, from, to uuid.UUID, answer []byte) error
	RejectCall(ctx context.Context, from, to uuid.UUID) error
	EndCall(ctx context.Context, from, to uuid.UUID) error
	RelayCandidate(ctx context.Context, from, to uuid.UUID, candidate []byte) error
	Disconnect(ctx context.Context, handle uuid.UUID) error
}

var errInvalidPayload = errors.New("invalid payload")

type envelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

type joinRoomPayload struct {
	RoomID string `json:"roomId" validate:"required"`
}

type sendMessagePayload struct {
	RoomID   string `json:"roomId" validate:"required"`
	Sender   string `json:"sender" validate:"required"`
	Message  string `json:"message"`
	FileURL  string `json:"fileurl"`
	AudioURL string `json:"audioUrl"`
}

type callUserPayload struct {
	To    string          `json:"to" validate:"required,uuid"`
	Name  string          `json:"name"`
	Offer json.RawMessage `json:"offer" validate:"required"`
}

type answerCallPayload struct {
	To     string          `json:"to" validate:"required,uuid"`
	Answer json.RawMessage `json:"answer" validate:"required"`
}

type callControlPayload struct {
	To string `json:"to" validate:"required,uuid"`
}

type iceCandidatePayload struct {
	To        string          `json:"to" validate:"required,uuid"`
	Candidate json.RawMessage `json:"candidate" validate:"required"`
}

type handlerFunc func(ctx context.Context, c *Client, data json.RawMessage) error

// Router decodes inbound envelopes, validates their payloads and invokes the
// relay. The handler table is the closed set of events a client may send.
type Router struct {
	relay    RelayService
	validate *validator.Validate
	handlers map[string]handlerFunc
}

func NewRouter(relay RelayService) *Router {
	r := &Router{
		relay:    relay,
		validate: validator.New(),
	}

	r.handlers = map[string]handlerFunc{
		"joinRoom":    r.handleJoinRoom,
		"leaveRoom":   r.handleLeaveRoom,
		"sendMessage": r.handleSendMessage,
		"call-user":   r.handleCallUser,
		"answer-call": r.handleAnswerCall,
		"reject-call": r.handleRejectCall,
		"end-call":    r.handleEndCall,
		// The frontend has emitted the candidate relay under both names
		// across revisions; accept both.
		"relay-ice-candidate": r.handleIceCandidate,
		"ice-candidate":       r.handleIceCandidate,
	}

	return r
}

// Dispatch routes one inbound frame. Malformed or unknown frames are logged
// and dropped; they never take the read loop down.
func (r *Router) Dispatch(ctx context.Context, c *Client, data []byte) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		slog.ErrorContext(ctx, "malformed frame", "error", err, "handle", c.handle)
		r.sendError(ctx, c, "malformed frame")
		return
	}

	handler, ok := r.handlers[env.Event]
	if !ok {
		slog.DebugContext(ctx, "unknown event", "event", env.Event, "handle", c.handle)
		return
	}

	if err := handler(ctx, c, env.Data); err != nil {
		slog.ErrorContext(ctx, "error handling event", "error", err, "event", env.Event, "handle", c.handle)

		if errors.Is(err, errInvalidPayload) {
			r.sendError(ctx, c, fmt.Sprintf("invalid payload for %s", env.Event))
		}
	}
}

func (r *Router) handleJoinRoom(ctx context.Context, c *Client, data json.RawMessage) error {
	roomID, err := r.decodeRoomID(data)
	if err != nil {
		return err
	}

	if err := r.relay.JoinRoom(ctx, c.handle, roomID); err != nil {
		return fmt.Errorf("relay.JoinRoom: %w", err)
	}

	return nil
}

func (r *Router) handleLeaveRoom(ctx context.Context, c *Client, data json.RawMessage) error {
	roomID, err := r.decodeRoomID(data)
	if err != nil {
		return err
	}

	if err := r.relay.LeaveRoom(ctx, c.handle, roomID); err != nil {
		return fmt.Errorf("relay.LeaveRoom: %w", err)
	}

	return nil
}

func (r *Router) handleSendMessage(ctx context.Context, c *Client, data json.RawMessage) error {
	var p sendMessagePayload
	if err := r.decode(data, &p); err != nil {
		return err
	}

	message := domain.ChatMessage{
		RoomID:   p.RoomID,
		Sender:   p.Sender,
		Body:     p.Message,
		FileURL:  p.FileURL,
		AudioURL: p.AudioURL,
	}

	if err := r.relay.SendMessage(ctx, message); err != nil {
		return fmt.Errorf("relay.SendMessage: %w", err)
	}

	return nil
}

func (r *Router) handleCallUser(ctx context.Context, c *Client, data json.RawMessage) error {
	var p callUserPayload
	if err := r.decode(data, &p); err != nil {
		return err
	}

	if err := r.relay.CallUser(ctx, c.handle, uuid.MustParse(p.To), p.Name, p.Offer); err != nil {
		return fmt.Errorf("relay.CallUser: %w", err)
	}

	return nil
}

func (r *Router) handleAnswerCall(ctx context.Context, c *Client, data json.RawMessage) error {
	var p answerCallPayload
	if err := r.decode(data, &p); err != nil {
		return err
	}

	if err := r.relay.AnswerCall(ctx, c.handle, uuid.MustParse(p.To), p.Answer); err != nil {
		return fmt.Errorf("relay.AnswerCall: %w", err)
	}

	return nil
}

func (r *Router) handleRejectCall(ctx context.Context, c *Client, data json.RawMessage) error {
	var p callControlPayload
	if err := r.decode(data, &p); err != nil {
		return err
	}

	if err := r.relay.RejectCall(ctx, c.handle, uuid.MustParse(p.To)); err != nil {
		return fmt.Errorf("relay.RejectCall: %w", err)
	}

	return nil
}

func (r *Router) handleEndCall(ctx context.Context, c *Client, data json.RawMessage) error {
	var p callControlPayload
	if err := r.decode(data, &p); err != nil {
		return err
	}

	if err := r.relay.EndCall(ctx, c.handle, uuid.MustParse(p.To)); err != nil {
		return fmt.Errorf("relay.EndCall: %w", err)
	}

	return nil
}

func (r *Router) handleIceCandidate(ctx context.Context, c *Client, data json.RawMessage) error {
	var p iceCandidatePayload
	if err := r.decode(data, &p); err != nil {
		return err
	}

	if err := r.relay.RelayCandidate(ctx, c.handle, uuid.MustParse(p.To), p.Candidate); err != nil {
		return fmt.Errorf("relay.RelayCandidate: %w", err)
	}

	return nil
}

// decodeRoomID accepts both the bare-string form the frontend emits for
// joinRoom and the object form used by leaveRoom.
func (r *Router) decodeRoomID(data json.RawMessage) (string, error) {
	var roomID string
	if err := json.Unmarshal(data, &roomID); err == nil {
		if roomID == "" {
			return "", fmt.Errorf("%w: empty room id", errInvalidPayload)
		}

		return roomID, nil
	}

	var p joinRoomPayload
	if err := r.decode(data, &p); err != nil {
		return "", err
	}

	return p.RoomID, nil
}

func (r *Router) decode(data json.RawMessage, v any) error {
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%w: %w", errInvalidPayload, err)
	}

	if err := r.validate.Struct(v); err != nil {
		return fmt.Errorf("%w: %w", errInvalidPayload, err)
	}

	return nil
}

func (r *Router) sendError(ctx context.Context, c *Client, message string) {
	if err := c.messenger.Send(ctx, domain.Event{
		Type:    domain.EventError,
		Payload: domain.ErrorInfo{Message: message},
	}); err != nil {
		slog.DebugContext(ctx, "error sending error event", "error", err, "handle", c.handle)
	}
}
