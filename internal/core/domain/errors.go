package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnknownSource indicates a source name outside the fixed vocabulary.
	ErrUnknownSource = errors.New("unknown source")

	// ErrRateLimited indicates an upstream API rate limit was exceeded.
	ErrRateLimited = errors.New("rate limited")
)

// ProviderError reports a failed call to one external record provider.
// It is scoped to a single source: the orchestrator captures it inline
// in the aggregate report and never lets it fail sibling sources.
type ProviderError struct {
	// Source is the provider's display name (e.g. "Chronicling America").
	Source string

	// StatusCode is the upstream HTTP status, or 0 when the failure
	// happened before a response was received.
	StatusCode int

	// Err is the underlying transport error, if any.
	Err error
}

// Error implements the error interface.
func (e *ProviderError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s API error: %d", e.Source, e.StatusCode)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s API error: %v", e.Source, e.Err)
	}
	return fmt.Sprintf("%s API error", e.Source)
}

// Unwrap exposes the underlying error for errors.Is/As.
func (e *ProviderError) Unwrap() error {
	return e.Err
}
