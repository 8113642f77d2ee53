package rest_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/lucasdotdev/waveline/internal/adapters/primary/rest"
	"github.com/lucasdotdev/waveline/internal/domain"
	"github.com/stretchr/testify/require"
)

type fakeMessageService struct {
	history    []domain.ChatMessage
	historyErr error
	recorded   []domain.ChatMessage
	recordErr  error
}

func (f *fakeMessageService) History(ctx context.Context, roomID string) ([]domain.ChatMessage, error) {
	return f.history, f.historyErr
}

func (f *fakeMessageService) Record(ctx context.Context, message domain.ChatMessage) (domain.ChatMessage, error) {
	if f.recordErr != nil {
		return domain.ChatMessage{}, f.recordErr
	}

	message.ID = uuid.New()
	message.SentAt = time.Now().UTC()
	f.recorded = append(f.recorded, message)

	return message, nil
}

func newTestMux(messages rest.MessageService) *http.ServeMux {
	mux := http.NewServeMux()
	rest.NewHandler(messages).Register(mux)

	return mux
}

func TestHandler_ListMessages(t *testing.T) {
	t.Parallel()

	t.Run("it should list the messages of a room", func(t *testing.T) {
		messages := &fakeMessageService{history: []domain.ChatMessage{
			{ID: uuid.New(), RoomID: "u1_u2", Sender: "u1", Body: "hello"},
			{ID: uuid.New(), RoomID: "u1_u2", Sender: "u2", Body: "hi"},
		}}
		mux := newTestMux(messages)

		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/messages/u1_u2", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "application/json", rec.Header().Get("Content-Type"))

		var got []domain.ChatMessage
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		require.Len(t, got, 2)
		require.Equal(t, "hello", got[0].Body)
	})

	t.Run("it should return an empty array for a room with no history", func(t *testing.T) {
		mux := newTestMux(&fakeMessageService{})

		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/messages/u1_u2", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		require.JSONEq(t, `[]`, rec.Body.String())
	})

	t.Run("it should return a 500 when the store fails", func(t *testing.T) {
		mux := newTestMux(&fakeMessageService{historyErr: errors.New("store down")})

		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/messages/u1_u2", nil))

		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestHandler_CreateMessage(t *testing.T) {
	t.Parallel()

	t.Run("it should record a message", func(t *testing.T) {
		messages := &fakeMessageService{}
		mux := newTestMux(messages)

		body := `{"roomId":"u1_u2","sender":"u1","message":"hello","audioUrl":"a"}`
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/messages", strings.NewReader(body)))

		require.Equal(t, http.StatusCreated, rec.Code)
		require.Len(t, messages.recorded, 1)
		require.Equal(t, "u1_u2", messages.recorded[0].RoomID)
		require.Equal(t, "a", messages.recorded[0].AudioURL)

		var got domain.ChatMessage
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		require.NotEqual(t, uuid.Nil, got.ID)
		require.Equal(t, "hello", got.Body)
	})

	t.Run("it should reject an invalid body", func(t *testing.T) {
		messages := &fakeMessageService{}
		mux := newTestMux(messages)

		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/messages", strings.NewReader("not json")))

		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Empty(t, messages.recorded)
	})

	t.Run("it should reject a message without a sender", func(t *testing.T) {
		messages := &fakeMessageService{}
		mux := newTestMux(messages)

		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/messages", strings.NewReader(`{"roomId":"u1_u2"}`)))

		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Empty(t, messages.recorded)
	})

	t.Run("it should return a 500 when the store fails", func(t *testing.T) {
		mux := newTestMux(&fakeMessageService{recordErr: errors.New("store down")})

		body := `{"roomId":"u1_u2","sender":"u1","message":"hello"}`
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/messages", strings.NewReader(body)))

		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
