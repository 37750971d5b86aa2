package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for the fare search system.
var (
	// ErrInvalidRequest indicates a request failed validation.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrNoProviders indicates a search was attempted with no registered
	// fare providers.
	ErrNoProviders = errors.New("no fare providers registered")

	// ErrProfileNotFound indicates the agent has no stored profile.
	ErrProfileNotFound = errors.New("agent profile not found")

	// ErrProxyRejected indicates the ticket proxy answered with a
	// non-success status. The proxy does not distinguish failure reasons.
	ErrProxyRejected = errors.New("ticket proxy rejected request")
)

// ProviderError wraps a failure from a single fare provider. Provider
// failures are never fatal to a search: the orchestrator logs them and
// surfaces them only as the absence of that provider's fares.
type ProviderError struct {
	// Provider is the name of the provider that failed.
	Provider string

	// Err is the underlying error.
	Err error

	// Retryable indicates whether the operation may succeed on retry
	// (transport failures are, malformed payloads are not).
	Retryable bool
}

// Error implements the error interface.
func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider %s: %v", e.Provider, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As.
func (e *ProviderError) Unwrap() error {
	return e.Err
}

// NewProviderError creates a non-retryable provider error.
func NewProviderError(provider string, err error) *ProviderError {
	return &ProviderError{Provider: provider, Err: err}
}

// NewRetryableProviderError creates a retryable provider error.
func NewRetryableProviderError(provider string, err error) *ProviderError {
	return &ProviderError{Provider: provider, Err: err, Retryable: true}
}

// IsRetryable reports whether err is a retryable provider error.
func IsRetryable(err error) bool {
	var pe *ProviderError
	return errors.As(err, &pe) && pe.Retryable
}
