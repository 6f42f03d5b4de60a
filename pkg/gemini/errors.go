package gemini

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingAPIKey is returned before any network call when no key is configured.
	ErrMissingAPIKey = errors.New("gemini: API key is not set, configure GEMINI_API_KEY or llm.providers[].api_key")

	// ErrInvalidResponse is returned when the API answers 200 without a usable candidate.
	ErrInvalidResponse = errors.New("gemini: invalid response format")
)

// APIError is a non-2xx answer from the Gemini API.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("gemini: API error %d: %s", e.StatusCode, e.Message)
}
