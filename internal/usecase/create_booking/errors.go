package create_booking

import (
	"errors"

	"github.com/rajaput123/SevaBookingService/internal/domain"
)

var (
	// ErrOfferingNotFound is returned when the offering does not exist
	ErrOfferingNotFound = errors.New("create_booking: offering not found")

	// ErrDevoteeNotFound is returned when the devotee is not registered
	ErrDevoteeNotFound = errors.New("create_booking: devotee not found")

	// ErrOfferingNotActive is returned when the offering is not accepting bookings
	ErrOfferingNotActive = errors.New("create_booking: offering is not active")

	// ErrNotAvailableOnDay is returned when the offering does not apply
	// on the requested weekday
	ErrNotAvailableOnDay = errors.New("create_booking: offering not available on this day")

	// ErrPastDate is returned for booking dates in the past
	ErrPastDate = errors.New("create_booking: cannot book past dates")

	// ErrTempleClosed is returned when a festival closes the date
	ErrTempleClosed = errors.New("create_booking: temple closed on this date")

	// ErrNoTimeWindow is returned when the offering has no schedule
	ErrNoTimeWindow = errors.New("create_booking: offering has no time window defined")

	// ErrOutsideWindow is returned when the slot start lies outside the
	// offering's daily window
	ErrOutsideWindow = errors.New("create_booking: slot time is outside offering time window")

	// ErrSlotFull is returned when the slot has no available spots
	ErrSlotFull = errors.New("create_booking: slot is full or unavailable")

	// ErrInvalidInput is returned on malformed request data
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal is returned on internal usecase failures
	ErrInternal = errors.New("create_booking: internal error")
)

// eligibilityError maps a guard chain reason to its sentinel error so
// handlers can switch on errors.Is
func eligibilityError(reason string) error {
	switch reason {
	case domain.ReasonOfferingNotActive:
		return ErrOfferingNotActive
	case domain.ReasonNotAvailableOnDay:
		return ErrNotAvailableOnDay
	case domain.ReasonPastDate:
		return ErrPastDate
	case domain.ReasonTempleClosed:
		return ErrTempleClosed
	case domain.ReasonNoTimeWindow:
		return ErrNoTimeWindow
	case domain.ReasonOutsideWindow:
		return ErrOutsideWindow
	case domain.ReasonSlotFull:
		return ErrSlotFull
	default:
		return ErrSlotFull
	}
}
