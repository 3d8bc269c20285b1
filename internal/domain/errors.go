package domain

import "errors"

var (
	// ErrLLMUnavailable signals a completion-service transport failure
	// (I/O error, non-2xx status, or timeout).
	ErrLLMUnavailable = errors.New("llm unavailable")
	// ErrNotFound signals a missing resource.
	ErrNotFound = errors.New("not found")
)
