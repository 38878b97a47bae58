package usecase

import (
	"errors"
	"fmt"
)

var (
	// ErrUpstreamUnavailable is returned when the marketplace request fails
	// at the transport level or with a non-2xx status.
	ErrUpstreamUnavailable = errors.New("marketplace unavailable")

	// ErrUpstreamShape is returned when the response is missing the
	// data/axies container.
	ErrUpstreamShape = errors.New("invalid data structure returned")

	// ErrNoData is returned when the results list is absent or empty.
	ErrNoData = errors.New("no axies found")
)

// MissingFieldError is returned when a listing in the upstream batch lacks a
// required field. One malformed listing aborts the whole sync.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing field %q in response data", e.Field)
}
