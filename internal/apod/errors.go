package apod

import (
	"errors"
	"fmt"
)

// FailKind classifies why a fetch produced no entry. The CLI collapses all
// kinds into one generic user-facing message; the kind is kept for logging
// and for callers that want to tell "service is down" from "no such date".
type FailKind string

const (
	// FailTransport covers network-level failures: DNS, connect, timeout,
	// context cancellation.
	FailTransport FailKind = "transport"
	// FailStatus covers non-200 responses from the service.
	FailStatus FailKind = "status"
	// FailMalformed covers bodies that don't decode or decode without a
	// date field. Out-of-range dates land here: the service answers them
	// with an error payload that has no date key.
	FailMalformed FailKind = "malformed"
)

// FetchError is the single error type Fetch returns.
type FetchError struct {
	Kind       FailKind
	Date       string
	StatusCode int
	Err        error
	Detail     string
}

func (e *FetchError) Error() string {
	switch {
	case e.Err != nil:
		return fmt.Sprintf("fetching apod for %s: %s", e.Date, e.Err)
	case e.Detail != "":
		return fmt.Sprintf("fetching apod for %s: %s", e.Date, e.Detail)
	case e.StatusCode != 0:
		return fmt.Sprintf("fetching apod for %s: status %d", e.Date, e.StatusCode)
	default:
		return fmt.Sprintf("fetching apod for %s: %s failure", e.Date, e.Kind)
	}
}

func (e *FetchError) Unwrap() error { return e.Err }

// KindOf returns the failure kind carried by err, or "" if err is not a
// FetchError.
func KindOf(err error) FailKind {
	var fe *FetchError
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return ""
}
