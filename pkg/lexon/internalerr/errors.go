package internalerr

import "errors"

// Sentinel errors for common cases
var (
	ErrNotFound         = errors.New("not found")
	ErrInvalidInput     = errors.New("invalid input")
	ErrTooLarge         = errors.New("document too large")
	ErrNoText           = errors.New("no text extracted")
	ErrStoreUnavailable = errors.New("store unavailable")
	ErrLLMUnavailable   = errors.New("llm extraction unavailable")
	ErrInvalidConfig    = errors.New("invalid configuration")
)
