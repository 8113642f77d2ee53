package history

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lucasdotdev/waveline/internal/domain"
	_ "github.com/mattn/go-sqlite3"
)

// sentAtLayout keeps the fractional seconds fixed-width so that the TEXT
// column sorts lexicographically in timestamp order. RFC3339Nano trims
// trailing zeros, which breaks ORDER BY for messages within the same second.
const sentAtLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Store is the sqlite-backed message history. It is the durable side of the
// relay: live delivery never waits on it, and a recipient that was offline
// reads missed messages from here on next room open.
type Store struct {
	conn *sql.DB
}

func New(path string) (*Store, error) {
	conn, err := sql.Open("sqlite3", path+"?_foreign_keys=1&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("sql.Open: %w", err)
	}

	store := &Store{conn: conn}
	if err := store.init(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("store.init: %w", err)
	}

	return store, nil
}

func (s *Store) Close() error {
	return s.conn.Close()
}

func (s *Store) init() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS messages (
			id TEXT PRIMARY KEY,
			room_id TEXT NOT NULL,
			sender TEXT NOT NULL,
			body TEXT NOT NULL DEFAULT '',
			file_url TEXT NOT NULL DEFAULT '',
			audio_url TEXT NOT NULL DEFAULT '',
			sent_at TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_messages_room ON messages(room_id, sent_at)`,
	}

	for _, query := range queries {
		if _, err := s.conn.Exec(query); err != nil {
			return fmt.Errorf("conn.Exec: %w", err)
		}
	}

	return nil
}

func (s *Store) CreateMessage(ctx context.Context, message domain.ChatMessage) (domain.ChatMessage, error) {
	if message.ID == uuid.Nil {
		message.ID = uuid.New()
	}

	if message.SentAt.IsZero() {
		message.SentAt = time.Now().UTC()
	}

	if _, err := s.conn.ExecContext(ctx,
		`INSERT INTO messages (id, room_id, sender, body, file_url, audio_url, sent_at) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		message.ID.String(), message.RoomID, message.Sender, message.Body,
		message.FileURL, message.AudioURL, message.SentAt.UTC().Format(sentAtLayout),
	); err != nil {
		return domain.ChatMessage{}, fmt.Errorf("conn.ExecContext: %w", err)
	}

	return message, nil
}

// ListMessages returns the room's messages ascending by timestamp. This is
// the authoritative replay order for a client opening the room.
func (s *Store) ListMessages(ctx context.Context, roomID string) ([]domain.ChatMessage, error) {
	rows, err := s.conn.QueryContext(ctx,
		`SELECT id, room_id, sender, body, file_url, audio_url, sent_at FROM messages WHERE room_id = ? ORDER BY sent_at ASC`,
		roomID,
	)
	if err != nil {
		return nil, fmt.Errorf("conn.QueryContext: %w", err)
	}
	defer rows.Close()

	var messages []domain.ChatMessage
	for rows.Next() {
		var (
			id     string
			sentAt string
			m      domain.ChatMessage
		)

		if err := rows.Scan(&id, &m.RoomID, &m.Sender, &m.Body, &m.FileURL, &m.AudioURL, &sentAt); err != nil {
			return nil, fmt.Errorf("rows.Scan: %w", err)
		}

		if m.ID, err = uuid.Parse(id); err != nil {
			return nil, fmt.Errorf("uuid.Parse: %w", err)
		}

		if m.SentAt, err = time.Parse(sentAtLayout, sentAt); err != nil {
			return nil, fmt.Errorf("time.Parse: %w", err)
		}

		messages = append(messages, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows.Err: %w", err)
	}

	return messages, nil
}
