package randomorg

import (
	"context"
	"errors"
	"fmt"
	"net"
)

// The client distinguishes four failure classes. All of them are returned
// synchronously, none are retried, and none ever include the API key.
//
//   - *ValidationError: a parameter failed the local pre-checks; no
//     network call was made.
//   - *TransportError: the HTTP round trip itself failed (unreachable
//     host, reset connection, timeout).
//   - *ProtocolError: the service answered, but not with a response the
//     client understands.
//   - *RemoteError: the service returned an explicit JSON-RPC error
//     object; code and message are carried unchanged.

// ValidationError reports a parameter that violates the documented bounds
// of the Basic API. It is returned before any request is sent.
type ValidationError struct {
	Param  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("randomorg: invalid %s: %s", e.Param, e.Reason)
}

// TransportError wraps a failure of the HTTP round trip.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("randomorg: transport: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// Timeout reports whether the transport failure was a timeout, either from
// the HTTP client deadline or a context deadline.
func (e *TransportError) Timeout() bool {
	if errors.Is(e.Err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(e.Err, &ne) && ne.Timeout()
}

// ProtocolError reports a response that could not be interpreted: a non-2xx
// HTTP status, an unparseable body, a mismatched correlation ID, or a
// missing result field.
type ProtocolError struct {
	Reason string
}

func (e *ProtocolError) Error() string {
	return "randomorg: protocol: " + e.Reason
}

// RemoteError is an error reported by the service itself (invalid API key,
// parameter out of range, quota exhausted, rate limited, internal error).
// Code and Message are exactly what the service sent.
type RemoteError struct {
	Code    int
	Message string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("randomorg: remote error %d: %s", e.Code, e.Message)
}
