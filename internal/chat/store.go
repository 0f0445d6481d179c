package chat

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// TranscriptStore persists chat sessions and their turns in SQLite. Only the
// conversation itself is stored; intake submissions and reports are not.
type TranscriptStore struct {
	db *sqlx.DB
}

const transcriptSchema = `
CREATE TABLE IF NOT EXISTS sessions (
	session_id  TEXT PRIMARY KEY,
	artist_name TEXT NOT NULL DEFAULT '',
	created_at  TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS turns (
	session_id TEXT NOT NULL,
	position   INTEGER NOT NULL,
	role       TEXT NOT NULL,
	content    TEXT NOT NULL,
	created_at TEXT NOT NULL,
	PRIMARY KEY (session_id, position)
);
`

func NewTranscriptStore(dbPath string) (*TranscriptStore, error) {
	db, err := sqlx.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(transcriptSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &TranscriptStore{db: db}, nil
}

func (s *TranscriptStore) Close() error {
	return s.db.Close()
}

// CreateSession opens a new transcript and returns its id.
func (s *TranscriptStore) CreateSession(artistName string) (string, error) {
	id := uuid.NewString()
	_, err := s.db.Exec(
		"INSERT INTO sessions (session_id, artist_name, created_at) VALUES (?, ?, ?)",
		id, artistName, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return "", fmt.Errorf("create session: %w", err)
	}
	return id, nil
}

// SessionExists reports whether a session id is known.
func (s *TranscriptStore) SessionExists(sessionID string) (bool, error) {
	var n int
	if err := s.db.Get(&n, "SELECT COUNT(*) FROM sessions WHERE session_id = ?", sessionID); err != nil {
		return false, fmt.Errorf("lookup session: %w", err)
	}
	return n > 0, nil
}

// AppendTurn stores one conversation turn at the end of a session.
func (s *TranscriptStore) AppendTurn(sessionID, role, content string) error {
	_, err := s.db.Exec(`
		INSERT INTO turns (session_id, position, role, content, created_at)
		SELECT ?, COALESCE(MAX(position), -1) + 1, ?, ?, ?
		FROM turns WHERE session_id = ?`,
		sessionID, role, content, time.Now().UTC().Format(time.RFC3339), sessionID)
	if err != nil {
		return fmt.Errorf("append turn: %w", err)
	}
	return nil
}

// History returns a session's turns in order.
func (s *TranscriptStore) History(sessionID string) ([]Message, error) {
	var msgs []Message
	err := s.db.Select(&msgs,
		"SELECT role, content FROM turns WHERE session_id = ? ORDER BY position", sessionID)
	if err != nil {
		return nil, fmt.Errorf("load history: %w", err)
	}
	return msgs, nil
}
