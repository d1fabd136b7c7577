package domain

import "context"

// Responder defines how the engine talks to an LLM service: given the ordered
// conversation and a sampling temperature, return assistant text.
type Responder interface {
	Generate(ctx context.Context, history []Turn, temperature float32) (string, error)
}

// SessionStore owns all in-flight interview state. Sessions live for the
// process lifetime; there is no eviction, so abandoned sessions accumulate.
type SessionStore interface {
	// Create initializes a session with turn=0 and history=[system seed]
	// and returns its fresh identifier. Identifiers are never reused.
	Create(systemSeed string) SessionID
	// Get returns a snapshot of the session's current state.
	Get(id SessionID) (*Session, error)
	Append(id SessionID, role Role, text string) error
	IncrementTurn(id SessionID) error
	// Lock serializes work on one session. Callers must Unlock when done.
	Lock(id SessionID)
	Unlock(id SessionID)
}

// ArchiveStore is the durable side-channel: every completed exchange and every
// finalized profile is written to it, keyed by session. The engine never reads
// it back.
type ArchiveStore interface {
	AppendExchange(ctx context.Context, id SessionID, question, answer string) error
	SaveProfile(ctx context.Context, id SessionID, profile Profile) error
}
