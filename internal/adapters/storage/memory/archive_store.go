package memory

import (
	"context"
	"sync"

	"github.com/lucasferrer/persona-agent/internal/domain"
)

// Exchange is one archived question/answer pair.
type Exchange struct {
	Question string
	Answer   string
}

// ArchiveStore is the in-memory stand-in for the durable Q&A/profile log.
// It is NOT persistent and is only suitable for development / local mode.
type ArchiveStore struct {
	mu        sync.RWMutex
	exchanges map[domain.SessionID][]Exchange
	profiles  map[domain.SessionID]domain.Profile
}

func NewArchiveStore() *ArchiveStore {
	return &ArchiveStore{
		exchanges: make(map[domain.SessionID][]Exchange),
		profiles:  make(map[domain.SessionID]domain.Profile),
	}
}

func (s *ArchiveStore) AppendExchange(ctx context.Context, id domain.SessionID, question, answer string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.exchanges[id] = append(s.exchanges[id], Exchange{Question: question, Answer: answer})
	return nil
}

func (s *ArchiveStore) SaveProfile(ctx context.Context, id domain.SessionID, profile domain.Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// At most one profile per session; first write wins.
	if _, exists := s.profiles[id]; exists {
		return nil
	}
	s.profiles[id] = profile
	return nil
}

// Exchanges returns the archived pairs for a session, in insertion order.
func (s *ArchiveStore) Exchanges(id domain.SessionID) []Exchange {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Exchange, len(s.exchanges[id]))
	copy(out, s.exchanges[id])
	return out
}

// Profile returns the archived profile for a session, or nil.
func (s *ArchiveStore) Profile(id domain.SessionID) domain.Profile {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.profiles[id]
}
