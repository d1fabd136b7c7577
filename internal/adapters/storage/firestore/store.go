package firestore

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/lucasferrer/persona-agent/internal/domain"
)

// Store archives Q&A pairs and finalized profiles in Firestore. Session state
// itself is memory-only; only this log is durable.
type Store struct {
	client *firestore.Client
}

// NewStore creates a Firestore store for the given project
// (PERSONA_GCP_PROJECT).
func NewStore(ctx context.Context, projectID string) (*Store, error) {
	if projectID == "" {
		return nil, fmt.Errorf("projectID is required for Firestore store")
	}

	client, err := firestore.NewClient(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("creating firestore client: %w", err)
	}

	return &Store{client: client}, nil
}

func (s *Store) Close() error {
	return s.client.Close()
}

// ─────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────

func (s *Store) interviewDoc(id domain.SessionID) *firestore.DocumentRef {
	return s.client.Collection("interviews").Doc(string(id))
}

func (s *Store) exchangesCol(id domain.SessionID) *firestore.CollectionRef {
	return s.interviewDoc(id).Collection("exchanges")
}

func (s *Store) profileDoc(id domain.SessionID) *firestore.DocumentRef {
	return s.client.Collection("profiles").Doc(string(id))
}

// ─────────────────────────────────────────
// Firestore Types
// ─────────────────────────────────────────

type exchangeDoc struct {
	SessionID string    `firestore:"session_id"`
	Question  string    `firestore:"question"`
	Answer    string    `firestore:"answer"`
	CreatedAt time.Time `firestore:"created_at"`
}

type profileDoc struct {
	SessionID   string         `firestore:"session_id"`
	ProfileData map[string]any `firestore:"profile_data"`
	CreatedAt   time.Time      `firestore:"created_at"`
}

// ─────────────────────────────────────────
// ArchiveStore implementation
// ─────────────────────────────────────────

func (s *Store) AppendExchange(ctx context.Context, id domain.SessionID, question, answer string) error {
	doc := exchangeDoc{
		SessionID: string(id),
		Question:  question,
		Answer:    answer,
		CreatedAt: time.Now(),
	}

	_, _, err := s.exchangesCol(id).Add(ctx, doc)
	if err != nil {
		return fmt.Errorf("firestore AppendExchange: %w", err)
	}
	return nil
}

func (s *Store) SaveProfile(ctx context.Context, id domain.SessionID, profile domain.Profile) error {
	doc := profileDoc{
		SessionID:   string(id),
		ProfileData: map[string]any(profile),
		CreatedAt:   time.Now(),
	}

	// A session produces at most one profile; Create keeps the first write.
	_, err := s.profileDoc(id).Create(ctx, doc)
	if err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return nil
		}
		return fmt.Errorf("firestore SaveProfile: %w", err)
	}
	return nil
}
