package domain

import "errors"

var (
	// ErrSessionNotFound marks an unknown session identifier. Sessions are
	// not durable, so this also covers any session lost to a restart.
	ErrSessionNotFound = errors.New("session not found")

	// ErrBackendUnavailable marks a failed model call (network, rate limit,
	// empty response). Never retried automatically.
	ErrBackendUnavailable = errors.New("llm backend unavailable")
)
