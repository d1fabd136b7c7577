package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/lucasferrer/persona-agent/internal/domain"
)

func TestArchiveRoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "persona.db")

	store, err := NewStore(path)
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}
	defer store.Close()

	id := domain.SessionID("session-1")

	if err := store.AppendExchange(ctx, id, "What drives you?", "curiosity"); err != nil {
		t.Fatalf("AppendExchange failed: %v", err)
	}
	if err := store.AppendExchange(ctx, id, "And what blocks you?", "doubt"); err != nil {
		t.Fatalf("AppendExchange failed: %v", err)
	}

	profile := domain.Profile{"archetype": "pathfinder"}
	if err := store.SaveProfile(ctx, id, profile); err != nil {
		t.Fatalf("SaveProfile failed: %v", err)
	}

	// Inspect the file through a second connection.
	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("reopening db: %v", err)
	}
	defer db.Close()

	var count int
	if err := db.QueryRow(
		`SELECT COUNT(*) FROM qa_pairs WHERE session_id = ?`, string(id),
	).Scan(&count); err != nil {
		t.Fatalf("counting qa_pairs: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected 2 qa_pairs, got %d", count)
	}

	var data string
	if err := db.QueryRow(
		`SELECT profile_data FROM profiles WHERE session_id = ?`, string(id),
	).Scan(&data); err != nil {
		t.Fatalf("reading profile: %v", err)
	}

	var got map[string]any
	if err := json.Unmarshal([]byte(data), &got); err != nil {
		t.Fatalf("decoding stored profile: %v", err)
	}
	if got["archetype"] != "pathfinder" {
		t.Fatalf("unexpected stored profile: %v", got)
	}
}
