package api

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrAuthRequired marks a 401 from the fleet API. Callers must drop any
	// cached token and re-authenticate rather than surface a generic error.
	ErrAuthRequired = errors.New("authentication required")

	// ErrMalformedResponse marks an HTTP success whose body does not match
	// the expected response envelope.
	ErrMalformedResponse = errors.New("malformed response envelope")
)

// Error is a non-2xx response from the fleet API. Message carries the
// response body text when one was readable.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("fleet api: %d %s", e.StatusCode, http.StatusText(e.StatusCode))
	}
	return fmt.Sprintf("fleet api: %d %s: %s", e.StatusCode, http.StatusText(e.StatusCode), e.Message)
}

// Unwrap lets errors.Is(err, ErrAuthRequired) recognize 401 responses.
func (e *Error) Unwrap() error {
	if e.StatusCode == http.StatusUnauthorized {
		return ErrAuthRequired
	}
	return nil
}
