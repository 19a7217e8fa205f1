package api

import (
	"errors"
	"fmt"
)

// The Gateway collapses every failure into three caller-visible kinds so that
// "server reachable but erroring" stays distinguishable from "server
// unreachable or slow" and from "session invalid".
var (
	// ErrTimeout means the request exceeded its cancellation bound.
	ErrTimeout = errors.New("request timed out")

	// ErrAuthRequired means the backend answered 401; the persisted token
	// has already been evicted by the time a caller sees this.
	ErrAuthRequired = errors.New("authentication required")
)

// RequestError is any other non-2xx response, carrying the server-provided
// detail when the body was parseable.
type RequestError struct {
	Status int
	Detail string
}

func (e *RequestError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return fmt.Sprintf("HTTP error %d", e.Status)
}
