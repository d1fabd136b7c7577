package domain

import "time"

type SessionID string

type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Profile is the structured terminal output of an interview. Its shape is
// whatever the model emits; the engine only requires a JSON object.
type Profile map[string]any

type Timestamp = time.Time
