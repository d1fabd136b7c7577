package memory

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/lucasferrer/persona-agent/internal/domain"
)

// SessionStore holds all in-flight interviews in a mutex-guarded map. State
// lives for the process lifetime only; there is no eviction, so abandoned
// sessions accumulate until restart.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[domain.SessionID]*domain.Session

	lockMu sync.Mutex
	locks  map[domain.SessionID]*sync.Mutex

	now func() time.Time
}

func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[domain.SessionID]*domain.Session),
		locks:    make(map[domain.SessionID]*sync.Mutex),
		now:      time.Now,
	}
}

func (s *SessionStore) Create(systemSeed string) domain.SessionID {
	id := domain.SessionID(uuid.NewString())
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[id] = &domain.Session{
		ID:        id,
		History:   []domain.Turn{{Role: domain.RoleSystem, Text: systemSeed}},
		Turn:      0,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return id
}

// Get returns a snapshot: the history slice is copied so callers never alias
// the store's backing array.
func (s *SessionStore) Get(id domain.SessionID) (*domain.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[id]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}

	out := *sess
	out.History = make([]domain.Turn, len(sess.History))
	copy(out.History, sess.History)
	return &out, nil
}

func (s *SessionStore) Append(id domain.SessionID, role domain.Role, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return domain.ErrSessionNotFound
	}

	sess.History = append(sess.History, domain.Turn{Role: role, Text: text})
	sess.UpdatedAt = s.now()
	return nil
}

func (s *SessionStore) IncrementTurn(id domain.SessionID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return domain.ErrSessionNotFound
	}

	sess.Turn++
	sess.UpdatedAt = s.now()
	return nil
}

// Lock serializes work on one session id. Unknown ids get a mutex too, so a
// Lock/Unlock pair is always balanced regardless of session existence.
func (s *SessionStore) Lock(id domain.SessionID) {
	s.sessionMutex(id).Lock()
}

func (s *SessionStore) Unlock(id domain.SessionID) {
	s.sessionMutex(id).Unlock()
}

func (s *SessionStore) sessionMutex(id domain.SessionID) *sync.Mutex {
	s.lockMu.Lock()
	defer s.lockMu.Unlock()

	m, ok := s.locks[id]
	if !ok {
		m = &sync.Mutex{}
		s.locks[id] = m
	}
	return m
}
