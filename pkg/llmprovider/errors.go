package llmprovider

import (
	"errors"
	"fmt"
)

var (
	// ErrGenerationFailed is the generic condition callers surface to users.
	ErrGenerationFailed = errors.New("failed to get response from AI assistant")

	// ErrAllProvidersFailed indicates all providers failed to generate content
	ErrAllProvidersFailed = errors.New("all providers failed")

	// ErrNoProvidersConfigured indicates no providers are enabled
	ErrNoProvidersConfigured = errors.New("no providers configured")

	// ErrInvalidRequest indicates the request is malformed
	ErrInvalidRequest = errors.New("invalid request")

	// ErrEmptyResponse indicates the provider answered without any text
	ErrEmptyResponse = errors.New("provider returned empty content")
)

// ProviderError wraps provider-specific errors
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
