package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/lucasdotdev/waveline/internal/domain"
)

// MessageService is the slice of the relay the REST surface drives: reading
// a room's history to hydrate a freshly opened chat, and storing a message
// without relaying it.
type MessageService interface {
	History(ctx context.Context, roomID string) ([]domain.ChatMessage, error)
	Record(ctx context.Context, message domain.ChatMessage) (domain.ChatMessage, error)
}

type createMessageRequest struct {
	RoomID   string `json:"roomId" validate:"required"`
	Sender   string `json:"sender" validate:"required"`
	Message  string `json:"message"`
	FileURL  string `json:"fileurl"`
	AudioURL string `json:"audioUrl"`
}

type Handler struct {
	messages MessageService
	validate *validator.Validate
}

func NewHandler(messages MessageService) *Handler {
	return &Handler{
		messages: messages,
		validate: validator.New(),
	}
}

// Register mounts the message history endpoints on the mux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/messages/{roomId}", h.listMessages)
	mux.HandleFunc("POST /api/messages", h.createMessage)
}

func (h *Handler) listMessages(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	messages, err := h.messages.History(ctx, r.PathValue("roomId"))
	if err != nil {
		slog.ErrorContext(ctx, "error listing messages", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to list messages"})
		return
	}

	if messages == nil {
		messages = []domain.ChatMessage{}
	}

	writeJSON(w, http.StatusOK, messages)
}

func (h *Handler) createMessage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req createMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid body"})
		return
	}

	if err := h.validate.Struct(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	message, err := h.messages.Record(ctx, domain.ChatMessage{
		RoomID:   req.RoomID,
		Sender:   req.Sender,
		Body:     req.Message,
		FileURL:  req.FileURL,
		AudioURL: req.AudioURL,
	})
	if err != nil {
		slog.ErrorContext(ctx, "error recording message", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to record message"})
		return
	}

	writeJSON(w, http.StatusCreated, message)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
