package interview

import (
	"encoding/json"
	"strings"

	"github.com/lucasferrer/persona-agent/internal/domain"
)

// ExtractProfile attempts a strict parse of raw model output as a JSON object.
// Anything else — prose, a bare array, JSON with surrounding text — means the
// model asked another question instead of finishing, and the caller should
// continue the conversation. No lenient or partial parsing.
func ExtractProfile(raw string) (domain.Profile, bool) {
	var p domain.Profile
	if err := json.Unmarshal([]byte(strings.TrimSpace(raw)), &p); err != nil {
		return nil, false
	}
	// "null" unmarshals into a nil map without error.
	if p == nil {
		return nil, false
	}
	return p, true
}
