package septa

import (
	"errors"
	"fmt"
)

var (
	// ErrTitleKeyCount means the Arrivals payload did not have exactly one top-level key.
	ErrTitleKeyCount = errors.New("arrivals payload must have exactly one title key")
	// ErrElementShape means an element under the title was neither an empty array nor a direction object.
	ErrElementShape = errors.New("unrecognized element shape")
	// ErrDuplicateDirection means two elements supplied the same direction.
	ErrDuplicateDirection = errors.New("duplicate direction")
)

// EnvelopeError reports an Arrivals envelope that could not be normalized.
// Match the kind with errors.Is against the Err* sentinels.
type EnvelopeError struct {
	Kind   error
	Detail string
	Err    error
}

func (e *EnvelopeError) Error() string {
	msg := "arrivals envelope: " + e.Kind.Error()
	if e.Detail != "" {
		msg += " (" + e.Detail + ")"
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *EnvelopeError) Is(target error) bool {
	return target == e.Kind
}

func (e *EnvelopeError) Unwrap() error {
	return e.Err
}

// APIError is an application-level error returned by the SEPTA API in its
// error envelope. Message is the upstream text verbatim.
type APIError struct {
	Message string
}

func (e *APIError) Error() string {
	return "API returned an error response: " + e.Message
}

// TransportError is a failure to obtain a response body at all.
type TransportError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("request to %s failed: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("request to %s returned status %d", e.URL, e.StatusCode)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
