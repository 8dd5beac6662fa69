package domain

import (
	"time"

	"github.com/rajaput123/SevaBookingService/pkg/types"
)

// BookingStatus represents the status of a seva booking
type BookingStatus string

const (
	StatusConfirmed BookingStatus = "confirmed"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
)

// BookingChannel records how the booking was placed. Walk-ins are
// ordinary bookings for capacity purposes.
type BookingChannel string

const (
	ChannelOnline BookingChannel = "online"
	ChannelWalkIn BookingChannel = "walk_in"
)

// SevaBooking represents a devotee's reservation of one offering slot
type SevaBooking struct {
	ID            int64
	Reference     string // human-shareable booking reference (uuid)
	DevoteeID     int64
	OfferingID    int64
	Date          time.Time
	SlotStartTime types.TimeString
	Status        BookingStatus
	Channel       BookingChannel

	// Denormalized data for history
	OfferingName   string
	OfferingAmount float64
	DevoteeName    *string
	DevoteePhone   *string
	Notes          *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// CountsAgainstCapacity returns true if the booking occupies a spot in
// its slot. Only cancelled bookings are excluded.
func (b *SevaBooking) CountsAgainstCapacity() bool {
	return b.Status != StatusCancelled
}

// IsCancelled returns true if the booking has been cancelled
func (b *SevaBooking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// CanBeCancelled returns true if the booking can still be cancelled
func (b *SevaBooking) CanBeCancelled() bool {
	return b.Status == StatusConfirmed
}

// OfferingBookingsFilter filters bookings of one offering for the admin
// listing endpoints
type OfferingBookingsFilter struct {
	OfferingID      int64
	StartDate       *time.Time     // start of period, nil = unbounded
	EndDate         *time.Time     // end of period, nil = unbounded
	Status          *BookingStatus // nil = any status
	IncludeInactive bool           // include cancelled bookings
}
