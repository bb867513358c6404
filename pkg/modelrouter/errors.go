package modelrouter

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedModel indicates the model identifier is not in the registry
	ErrUnsupportedModel = errors.New("unsupported model")

	// ErrProviderNotConfigured indicates the model is known but its provider
	// family has no credentials in this deployment
	ErrProviderNotConfigured = errors.New("provider not configured")

	// ErrTimeout indicates the provider did not respond within its bound
	ErrTimeout = errors.New("provider timeout")

	// ErrProtocol indicates a non-success transport status or a reply missing
	// required fields
	ErrProtocol = errors.New("provider protocol error")
)

// ProviderError wraps provider-specific errors with the family name.
type ProviderError struct {
	Provider string
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider %s: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}
