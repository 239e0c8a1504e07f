package directory

import (
	"errors"
	"fmt"
)

var (
	// ErrNotConfigured is returned when the service credential is absent.
	ErrNotConfigured = errors.New("directory API key not configured")
	// ErrNotFound is returned when the directory answered but had no matching user.
	ErrNotFound = errors.New("user not found")
)

// UpstreamError is a non-success HTTP status from the directory.
type UpstreamError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("directory returned %d: %s", e.StatusCode, e.Body)
}

// NetworkError wraps a transport or decoding failure.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("directory unavailable: %v", e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }
