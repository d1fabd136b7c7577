package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/lucasferrer/persona-agent/internal/domain"
)

const schema = `
CREATE TABLE IF NOT EXISTS qa_pairs (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	session_id TEXT NOT NULL,
	question   TEXT,
	answer     TEXT,
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_qa_pairs_session ON qa_pairs(session_id);

CREATE TABLE IF NOT EXISTS profiles (
	id           INTEGER PRIMARY KEY AUTOINCREMENT,
	session_id   TEXT NOT NULL,
	profile_data TEXT NOT NULL,
	created_at   TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_profiles_session ON profiles(session_id);
`

// Store archives Q&A pairs and finalized profiles in a local SQLite file.
type Store struct {
	db *sql.DB
}

func NewStore(path string) (*Store, error) {
	if path == "" {
		return nil, fmt.Errorf("path is required for SQLite store")
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite db: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating sqlite schema: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) AppendExchange(ctx context.Context, id domain.SessionID, question, answer string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO qa_pairs (session_id, question, answer) VALUES (?, ?, ?)`,
		string(id), question, answer,
	)
	if err != nil {
		return fmt.Errorf("sqlite AppendExchange: %w", err)
	}
	return nil
}

func (s *Store) SaveProfile(ctx context.Context, id domain.SessionID, profile domain.Profile) error {
	data, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("sqlite SaveProfile encode: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO profiles (session_id, profile_data) VALUES (?, ?)`,
		string(id), string(data),
	)
	if err != nil {
		return fmt.Errorf("sqlite SaveProfile: %w", err)
	}
	return nil
}
