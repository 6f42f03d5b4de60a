package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// HTTPError is an error that knows which status code and client-facing
// message it should be rendered with.
type HTTPError struct {
	StatusCode int
	Code       int
	Message    string
}

// NewHTTPError creates an HTTPError. Code defaults to the status code.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{StatusCode: statusCode, Code: statusCode, Message: message}
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("http %d: %s", e.StatusCode, e.Message)
}

var (
	ErrBadRequest          = NewHTTPError(http.StatusBadRequest, "bad request")
	ErrNotFound            = NewHTTPError(http.StatusNotFound, "not found")
	ErrConflict            = NewHTTPError(http.StatusConflict, "conflict")
	ErrTooManyRequests     = NewHTTPError(http.StatusTooManyRequests, "too many requests")
	ErrInternalServerError = NewHTTPError(http.StatusInternalServerError, "internal server error")
)

// AsHTTPError unwraps err into an *HTTPError when possible.
func AsHTTPError(err error) (*HTTPError, bool) {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr, true
	}
	return nil, false
}
