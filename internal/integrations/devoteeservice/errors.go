package devoteeservice

import "errors"

var (
	// ErrDevoteeNotFound is returned when the devotee is not registered
	ErrDevoteeNotFound = errors.New("devoteeservice client: devotee not found")

	// ErrInternal is returned on client-side failures
	ErrInternal = errors.New("devoteeservice client: internal error")

	// ErrInvalidResponse is returned when the service replies with an
	// unexpected payload or status code
	ErrInvalidResponse = errors.New("devoteeservice client: invalid response")
)
