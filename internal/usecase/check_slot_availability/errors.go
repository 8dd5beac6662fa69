package check_slot_availability

import "errors"

var (
	// ErrOfferingNotFound is returned when the offering does not exist
	ErrOfferingNotFound = errors.New("check_slot_availability: offering not found")

	// ErrInvalidInput is returned on malformed request data
	ErrInvalidInput = errors.New("check_slot_availability: invalid input data")

	// ErrInternal is returned on internal usecase failures
	ErrInternal = errors.New("check_slot_availability: internal error")
)
