package bookings

import "errors"

var (
	// ErrBookingNotFound is returned when the booking does not exist
	ErrBookingNotFound = errors.New("booking not found")

	// ErrDevoteeNotFound is returned when the devotee is not registered
	ErrDevoteeNotFound = errors.New("devotee not found")

	// ErrAccessDenied is returned when the devotee has no access to the booking
	ErrAccessDenied = errors.New("access denied")

	// ErrCannotCancel is returned when the booking is not in a cancellable state
	ErrCannotCancel = errors.New("booking cannot be cancelled")

	// ErrInvalidInput is returned on malformed request data
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on internal service failures
	ErrInternal = errors.New("service: internal error")
)
