package domain

// Slot configuration
const (
	// SlotDurationMinutes is the fixed length of every bookable slot.
	// The grid is tiled from the offering's start time in steps of this size.
	SlotDurationMinutes = 30

	// DefaultSlotCapacity is used when an offering has no explicit
	// per-slot capacity configured
	DefaultSlotCapacity = 999
)

// Business validation constants for offering schedules
const (
	MinSlotCapacity             = 1
	MaxSlotCapacity             = 999
	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// ApplicableDayAll marks an offering bookable on every weekday
const ApplicableDayAll = "all"

// InactiveStatuses bookings in these states do not count against slot
// capacity. Completed bookings still count: they occupied the slot.
var InactiveStatuses = []BookingStatus{
	StatusCancelled,
}

// ActiveStatuses bookings in these states count against slot capacity
var ActiveStatuses = []BookingStatus{
	StatusConfirmed,
	StatusCompleted,
}
