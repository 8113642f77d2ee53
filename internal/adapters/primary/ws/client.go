package ws

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/lucasdotdev/waveline/internal/adapters/secondary/messenger"
	"github.com/lucasdotdev/waveline/internal/domain"
)

const (
	// Time allowed to write a frame to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	// Maximum inbound frame size; SDP offers fit comfortably.
	maxMessageSize = 64 * 1024
)

// Client wraps one websocket connection. The handle is the server-assigned
// identity other peers use to target signaling events at this connection.
type Client struct {
	handle    uuid.UUID
	conn      *websocket.Conn
	outbox    *messenger.Outbox
	messenger domain.Messenger
	router    *Router
}

// ReadPump reads frames from the connection and hands them to the router.
// It is the only reader of the connection; inbound events from one client
// are therefore processed strictly in arrival order. On exit the peer is
// unregistered from every room it joined.
func (c *Client) ReadPump(ctx context.Context) {
	defer func() {
		if err := c.router.relay.Disconnect(ctx, c.handle); err != nil {
			slog.ErrorContext(ctx, "error disconnecting peer", "error", err, "handle", c.handle)
		}

		c.outbox.Close()
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure, websocket.CloseAbnormalClosure) {
				slog.ErrorContext(ctx, "error reading frame", "error", err, "handle", c.handle)
			}
			return
		}

		c.router.Dispatch(ctx, c, data)
	}
}

// WritePump drains the outbox into the connection and keeps the connection
// alive with pings. It is the only writer of the connection.
func (c *Client) WritePump(ctx context.Context) {
	ticker := time.NewTicker(pingPeriod)

	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case <-c.outbox.Wake():
			for {
				envelope, ok := c.outbox.Pop()
				if !ok {
					break
				}

				_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
				if err := c.conn.WriteJSON(envelope); err != nil {
					slog.DebugContext(ctx, "error writing frame", "error", err, "handle", c.handle)
					return
				}
			}

			if c.outbox.Closed() {
				_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
