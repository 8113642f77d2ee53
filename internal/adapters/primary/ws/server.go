package ws

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/lucasdotdev/waveline/internal/adapters/secondary/messenger"
	"github.com/lucasdotdev/waveline/internal/domain"
)

// Server upgrades HTTP requests to websocket connections and binds each one
// to the relay for the lifetime of the socket.
type Server struct {
	router   *Router
	upgrader websocket.Upgrader
}

// NewServer builds the websocket endpoint. With an empty origin list any
// origin is accepted; room ids are not a security boundary either way.
func NewServer(router *Router, allowedOrigins []string) *Server {
	return &Server{
		router: router,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  maxMessageSize,
			WriteBufferSize: maxMessageSize,
			CheckOrigin: func(r *http.Request) bool {
				if len(allowedOrigins) == 0 {
					return true
				}

				origin := r.Header.Get("Origin")
				for _, allowed := range allowedOrigins {
					if origin == allowed {
						return true
					}
				}

				return false
			},
		},
	}
}

func (s *Server) ServeWs(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.ErrorContext(r.Context(), "error upgrading connection", "error", err)
		return
	}

	// The request context dies with the handler; the connection outlives it.
	ctx := context.WithoutCancel(r.Context())

	outbox := messenger.NewOutbox(messenger.DefaultOutboxSize)
	client := &Client{
		handle:    uuid.New(),
		conn:      conn,
		outbox:    outbox,
		messenger: messenger.NewMessenger(outbox),
		router:    s.router,
	}

	if err := s.router.relay.Register(ctx, domain.Peer{Handle: client.handle, Messenger: client.messenger}); err != nil {
		slog.ErrorContext(ctx, "error registering peer", "error", err)
		conn.Close()
		return
	}

	slog.DebugContext(ctx, "client connected", "handle", client.handle, "remote_addr", conn.RemoteAddr())

	go client.WritePump(ctx)
	go client.ReadPump(ctx)
}
