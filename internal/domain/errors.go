package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by lookup sources when no entry exists for a key,
// including the default entry. Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned when form input fails a business rule
// (e.g. missing destination, end date before start date, trip too long).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrTransport is returned when the remote planning endpoint could not be
// reached or answered with a non-2xx status.
// Handlers should map this to HTTP 502 Bad Gateway.
var ErrTransport = errors.New("transport error")

// Messages shown to the user when the planning endpoint fails without
// supplying its own detail.
const (
	MsgConnectFailed = "Failed to connect to server. Please check your connection and try again."
	MsgPlanFailed    = "Unable to create travel plan. Please try another destination."
)

// TransportError describes a failed call to the planning endpoint.
// StatusCode is zero when no HTTP response was received.
// Detail carries the endpoint's own "detail" message when it sent one.
type TransportError struct {
	StatusCode int
	Detail     string
	Err        error
}

func (e *TransportError) Error() string {
	switch {
	case e.StatusCode == 0 && e.Err != nil:
		return fmt.Sprintf("transport error: %v", e.Err)
	case e.Detail != "":
		return fmt.Sprintf("transport error: status %d: %s", e.StatusCode, e.Detail)
	case e.Err != nil:
		return fmt.Sprintf("transport error: status %d: %v", e.StatusCode, e.Err)
	default:
		return fmt.Sprintf("transport error: status %d", e.StatusCode)
	}
}

func (e *TransportError) Unwrap() error { return e.Err }

// Is reports ErrTransport as a match so callers can use errors.Is.
func (e *TransportError) Is(target error) bool { return target == ErrTransport }

// UserMessage returns the text to show the traveller for this failure.
// A success status with an unreadable body is reported like a failed
// connection, since no usable answer arrived.
func (e *TransportError) UserMessage() string {
	if e.Detail != "" {
		return e.Detail
	}
	if e.StatusCode == 0 || e.StatusCode/100 == 2 {
		return MsgConnectFailed
	}
	return MsgPlanFailed
}
