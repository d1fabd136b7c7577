package llm

import (
	"context"
	"fmt"

	"github.com/lucasferrer/persona-agent/internal/domain"
)

// MockResponder stands in for the model during development and tests. The
// engine only uses temperature zero on the finalization call, so a zero
// temperature is the cue to emit a profile instead of a question.
type MockResponder struct{}

func NewMockResponder() *MockResponder {
	return &MockResponder{}
}

func (m *MockResponder) Generate(ctx context.Context, history []domain.Turn, temperature float32) (string, error) {
	if temperature == 0 {
		return `{"axes":{"openness":"high","resilience":"steady","drive":"exploratory"},"archetype":{"id":"pathfinder","name":"The Pathfinder","summary":"Curious and self-directed."}}`, nil
	}
	return fmt.Sprintf("Question %d: what matters most to you right now, and why?", len(history)/2+1), nil
}
