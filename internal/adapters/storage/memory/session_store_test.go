package memory

import (
	"errors"
	"testing"

	"github.com/lucasferrer/persona-agent/internal/domain"
)

func TestSessionStoreLifecycle(t *testing.T) {
	store := NewSessionStore()

	id := store.Create("seed prompt")
	if id == "" {
		t.Fatalf("expected a session id")
	}

	sess, err := store.Get(id)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if sess.Turn != 0 {
		t.Fatalf("expected turn 0, got %d", sess.Turn)
	}
	if len(sess.History) != 1 || sess.History[0].Role != domain.RoleSystem {
		t.Fatalf("expected history seeded with one system turn, got %+v", sess.History)
	}
	if sess.History[0].Text != "seed prompt" {
		t.Fatalf("unexpected seed text %q", sess.History[0].Text)
	}

	if err := store.Append(id, domain.RoleUser, "hello"); err != nil {
		t.Fatalf("Append failed: %v", err)
	}
	if err := store.IncrementTurn(id); err != nil {
		t.Fatalf("IncrementTurn failed: %v", err)
	}

	sess, _ = store.Get(id)
	if sess.Turn != 1 || len(sess.History) != 2 {
		t.Fatalf("expected turn 1 and 2 turns of history, got %d / %d", sess.Turn, len(sess.History))
	}
}

func TestSessionStoreUniqueIDs(t *testing.T) {
	store := NewSessionStore()

	seen := make(map[domain.SessionID]bool)
	for i := 0; i < 100; i++ {
		id := store.Create("seed")
		if seen[id] {
			t.Fatalf("session id %q reused", id)
		}
		seen[id] = true
	}
}

func TestSessionStoreNotFound(t *testing.T) {
	store := NewSessionStore()

	if _, err := store.Get("missing"); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
	if err := store.Append("missing", domain.RoleUser, "x"); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
	if err := store.IncrementTurn("missing"); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestGetReturnsSnapshot(t *testing.T) {
	store := NewSessionStore()
	id := store.Create("seed")

	sess, _ := store.Get(id)
	sess.History[0].Text = "mutated"

	fresh, _ := store.Get(id)
	if fresh.History[0].Text != "seed" {
		t.Fatalf("snapshot mutation leaked into the store")
	}
}

func TestLockUnlockBalanced(t *testing.T) {
	store := NewSessionStore()

	// Locking an unknown id must still pair with its Unlock.
	store.Lock("whatever")
	store.Unlock("whatever")

	id := store.Create("seed")
	store.Lock(id)
	store.Unlock(id)
	store.Lock(id)
	store.Unlock(id)
}
