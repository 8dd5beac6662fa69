package festivals

import "errors"

var (
	// ErrFestivalNotFound is returned when the festival event does not exist
	ErrFestivalNotFound = errors.New("festival event not found")

	// ErrDevoteeNotFound is returned when the devotee is not registered
	ErrDevoteeNotFound = errors.New("devotee not found")

	// ErrAccessDenied is returned when the devotee is not a temple admin
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidInput is returned on malformed request data
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on internal service failures
	ErrInternal = errors.New("service: internal error")
)
