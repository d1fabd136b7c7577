package interview

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/lucasferrer/persona-agent/internal/domain"
	"github.com/lucasferrer/persona-agent/internal/observability"
)

// Sampling temperatures: follow-up questions should vary between sessions,
// the finalization call should not.
const (
	creativeTemperature      float32 = 0.7
	deterministicTemperature float32 = 0.0
)

// Service is the turn engine: it decides, per inbound answer, whether the
// interview continues with another question or finishes with a profile.
type Service struct {
	llm      domain.Responder
	sessions domain.SessionStore
	archive  domain.ArchiveStore
	maxTurns int
}

func NewService(
	llm domain.Responder,
	sessions domain.SessionStore,
	archive domain.ArchiveStore,
	maxTurns int,
) *Service {
	return &Service{
		llm:      llm,
		sessions: sessions,
		archive:  archive,
		maxTurns: maxTurns,
	}
}

type StartOutput struct {
	SessionID domain.SessionID
	Reply     string
	Done      bool
}

// Start creates a session and asks the model for its opening question. The
// seed instruction is sent to the model but never stored, so a fresh session's
// history is exactly [system, assistant].
func (s *Service) Start(ctx context.Context) (*StartOutput, error) {
	id := s.sessions.Create(systemPrompt)

	log := observability.LoggerFromContext(ctx).With("session_id", id)
	log.Info("starting interview")

	s.sessions.Lock(id)
	defer s.sessions.Unlock(id)

	sess, err := s.sessions.Get(id)
	if err != nil {
		return nil, err
	}

	prompt := append(sess.History, domain.Turn{Role: domain.RoleUser, Text: seedInstruction})
	reply, err := s.llm.Generate(ctx, prompt, creativeTemperature)
	if err != nil {
		log.Error("responder failed on start", "error", err)
		return nil, fmt.Errorf("%w: %v", domain.ErrBackendUnavailable, err)
	}

	if err := s.sessions.Append(id, domain.RoleAssistant, reply); err != nil {
		return nil, err
	}

	log.Info("interview started")

	return &StartOutput{SessionID: id, Reply: reply, Done: false}, nil
}

type AdvanceInput struct {
	SessionID domain.SessionID
	UserText  string
}

type AdvanceOutput struct {
	Reply   string
	Done    bool
	Profile domain.Profile
}

// Advance records the user's answer and produces the next engine reply:
// another question while the turn count is below the maximum, otherwise the
// finalization exchange. The user turn is appended before the model call and
// is never rolled back, so a retry after a backend failure duplicates it.
func (s *Service) Advance(ctx context.Context, in AdvanceInput) (*AdvanceOutput, error) {
	s.sessions.Lock(in.SessionID)
	defer s.sessions.Unlock(in.SessionID)

	sess, err := s.sessions.Get(in.SessionID)
	if err != nil {
		return nil, err
	}

	log := observability.LoggerFromContext(ctx).With(
		"session_id", sess.ID,
		"turn", sess.Turn,
	)
	log.Info("advancing interview")

	answer := strings.TrimSpace(in.UserText)
	question := lastAssistantText(sess.History)

	if err := s.sessions.Append(sess.ID, domain.RoleUser, answer); err != nil {
		return nil, err
	}
	if err := s.sessions.IncrementTurn(sess.ID); err != nil {
		return nil, err
	}

	sess, err = s.sessions.Get(sess.ID)
	if err != nil {
		return nil, err
	}

	if sess.Turn < s.maxTurns {
		reply, err := s.llm.Generate(ctx, sess.History, creativeTemperature)
		if err != nil {
			log.Error("responder failed", "error", err)
			return nil, fmt.Errorf("%w: %v", domain.ErrBackendUnavailable, err)
		}

		if err := s.sessions.Append(sess.ID, domain.RoleAssistant, reply); err != nil {
			return nil, err
		}

		s.archiveExchange(sess.ID, question, answer)

		log.Info("interview continued")
		return &AdvanceOutput{Reply: reply, Done: false, Profile: nil}, nil
	}

	// Final exchange: the synthetic instruction is sent, not stored.
	prompt := append(sess.History, domain.Turn{Role: domain.RoleUser, Text: finalizeInstruction})
	raw, err := s.llm.Generate(ctx, prompt, deterministicTemperature)
	if err != nil {
		log.Error("responder failed on finalization", "error", err)
		return nil, fmt.Errorf("%w: %v", domain.ErrBackendUnavailable, err)
	}

	profile, done := ExtractProfile(raw)

	if err := s.sessions.Append(sess.ID, domain.RoleAssistant, raw); err != nil {
		return nil, err
	}

	s.archiveExchange(sess.ID, question, answer)
	if done {
		s.archiveProfile(sess.ID, profile)
	}

	log.Info("interview finalized", "profile_extracted", done)
	return &AdvanceOutput{Reply: raw, Done: done, Profile: profile}, nil
}

// History returns the session's full ordered turn sequence.
func (s *Service) History(ctx context.Context, id domain.SessionID) ([]domain.Turn, error) {
	sess, err := s.sessions.Get(id)
	if err != nil {
		return nil, err
	}
	return sess.History, nil
}

// archiveExchange writes one question/answer pair to the durable log,
// fire-and-forget relative to the response.
func (s *Service) archiveExchange(id domain.SessionID, question, answer string) {
	if s.archive == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := s.archive.AppendExchange(ctx, id, question, answer); err != nil {
			observability.Logger().Error("archive exchange failed",
				"session_id", id, "error", err)
		}
	}()
}

func (s *Service) archiveProfile(id domain.SessionID, profile domain.Profile) {
	if s.archive == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := s.archive.SaveProfile(ctx, id, profile); err != nil {
			observability.Logger().Error("archive profile failed",
				"session_id", id, "error", err)
		}
	}()
}

func lastAssistantText(history []domain.Turn) string {
	for i := len(history) - 1; i >= 0; i-- {
		if history[i].Role == domain.RoleAssistant {
			return history[i].Text
		}
	}
	return ""
}
