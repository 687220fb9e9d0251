// ABOUTME: Tagged error kinds for API client failures
// ABOUTME: Lets callers branch on failure class instead of sniffing error shapes

package client

import "fmt"

// Kind classifies an API client failure.
type Kind int

const (
	// KindNetwork means no response was received (connection refused,
	// timeout, cancellation).
	KindNetwork Kind = iota
	// KindServerRejected means the backend answered with a non-2xx status.
	KindServerRejected
	// KindUnexpected covers everything else (malformed response bodies,
	// programming errors).
	KindUnexpected
)

// String returns the string representation of a Kind
func (k Kind) String() string {
	switch k {
	case KindNetwork:
		return "network"
	case KindServerRejected:
		return "server_rejected"
	case KindUnexpected:
		return "unexpected"
	default:
		return "unknown"
	}
}

// Error is the error type returned by all Client methods.
type Error struct {
	Kind    Kind
	Message string // human-readable; for KindServerRejected the server's own message when present
	Status  int    // HTTP status for KindServerRejected, zero otherwise
	Err     error  // underlying cause, may be nil
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying cause
func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the Kind of err, or KindUnexpected when err is not a
// client Error.
func KindOf(err error) Kind {
	if ce, ok := err.(*Error); ok {
		return ce.Kind
	}
	return KindUnexpected
}

// ServerMessage returns the backend-provided message for a rejected
// request, or the empty string when there is none.
func ServerMessage(err error) string {
	if ce, ok := err.(*Error); ok && ce.Kind == KindServerRejected {
		return ce.Message
	}
	return ""
}
