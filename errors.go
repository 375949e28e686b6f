package jukeaudio

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the Juke Audio client.
var (
	// ErrEmptyHost is returned by NewClient when no device address is given.
	ErrEmptyHost = errors.New("jukeaudio: host cannot be empty")

	// ErrAuthentication matches every *AuthenticationError via errors.Is.
	ErrAuthentication = errors.New("jukeaudio: authentication failed")

	// ErrUnexpected matches every *UnexpectedError via errors.Is.
	ErrUnexpected = errors.New("jukeaudio: unexpected error")
)

// AuthenticationError is returned when the device answers with any status
// other than 200. The device uses non-200 responses for bad credentials as
// well as malformed requests, unknown ids and internal failures, so no finer
// distinction is made.
type AuthenticationError struct {
	Method     string
	Path       string
	StatusCode int
	Body       string
}

// Error implements the error interface.
func (e *AuthenticationError) Error() string {
	return fmt.Sprintf("jukeaudio: authentication failed: %s %s returned status %d", e.Method, e.Path, e.StatusCode)
}

// Is reports whether target is ErrAuthentication.
func (e *AuthenticationError) Is(target error) bool {
	return target == ErrAuthentication
}

// UnexpectedError is returned when the exchange itself fails: the device
// cannot be reached, the connection drops, the context ends or the response
// cannot be read or decoded. Err holds the cause.
type UnexpectedError struct {
	Op  string
	Err error
}

// Error implements the error interface.
func (e *UnexpectedError) Error() string {
	if e.Op == "" {
		return fmt.Sprintf("jukeaudio: unexpected error: %v", e.Err)
	}
	return fmt.Sprintf("jukeaudio: unexpected error in %s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying cause.
func (e *UnexpectedError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrUnexpected.
func (e *UnexpectedError) Is(target error) bool {
	return target == ErrUnexpected
}

// IsAuthentication returns true if the device rejected the request.
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsUnexpected returns true if the request failed below the HTTP status level.
func IsUnexpected(err error) bool {
	var unexpectedErr *UnexpectedError
	return errors.As(err, &unexpectedErr)
}

// StatusCode returns the HTTP status carried by an *AuthenticationError, or 0.
func StatusCode(err error) int {
	var authErr *AuthenticationError
	if errors.As(err, &authErr) {
		return authErr.StatusCode
	}
	return 0
}

// IsTimeout returns true if the error indicates a timeout.
func IsTimeout(err error) bool {
	var netErr interface{ Timeout() bool }
	return errors.As(err, &netErr) && netErr.Timeout()
}
