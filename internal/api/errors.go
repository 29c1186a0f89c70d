package api

import (
	"errors"
	"fmt"
)

// ErrNetworkUnavailable marks transport-level failures: DNS, dial, TLS and
// timeout errors where no HTTP response was received. Callers use it to pick
// the offline-cache fallback path.
var ErrNetworkUnavailable = errors.New("network unavailable")

// ServerError is a non-2xx response or an envelope with success=false. It
// carries the server-provided message when one was present.
type ServerError struct {
	Status  int
	Message string
}

func (e *ServerError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("server error (status %d): %s", e.Status, e.Message)
	}
	return fmt.Sprintf("server error (status %d)", e.Status)
}

// ParseError is a malformed response: invalid JSON or an envelope that does
// not match the response schema.
type ParseError struct {
	Cause error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("malformed response: %v", e.Cause)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}

// IsNetworkError reports whether err should route to the offline fallback.
func IsNetworkError(err error) bool {
	return errors.Is(err, ErrNetworkUnavailable)
}
