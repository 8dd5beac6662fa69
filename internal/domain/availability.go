package domain

import (
	"time"

	"github.com/rajaput123/SevaBookingService/pkg/types"
)

// Booking eligibility reasons surfaced verbatim to devotees
const (
	ReasonOfferingNotActive = "Offering is not active"
	ReasonNotAvailableOnDay = "Offering not available on this day"
	ReasonPastDate          = "Cannot book past dates"
	ReasonTempleClosed      = "Temple closed on this date (Festival)"
	ReasonNoTimeWindow      = "Offering has no time window defined"
	ReasonOutsideWindow     = "Slot time is outside offering time window"
	ReasonSlotFull          = "Slot is full or unavailable"
)

// CalculateSlots tiles the offering's daily window into fixed 30-minute
// slots for the given date and tallies existing bookings per slot.
//
// Returns an empty grid when the offering has no time window or does not
// apply on the date's weekday. A trailing slot that would not fit
// entirely within the window is never emitted.
//
// Pure: the result is a projection of the arguments, nothing is cached
// or mutated.
func CalculateSlots(offering *Offering, date time.Time, bookings []*SevaBooking, festivals []*FestivalEvent) []Slot {
	if !offering.HasTimeWindow() {
		return []Slot{}
	}

	if !offering.AppliesOn(date) {
		return []Slot{}
	}

	festivalDay := IsFestivalDay(date, festivals)
	closed := festivalDay || !offering.IsActive()
	capacity := offering.SlotCapacity()

	slots := make([]Slot, 0)
	current := *offering.StartTime
	end := *offering.EndTime

	for current.IsBefore(end) {
		slotEnd, err := current.AddMinutes(SlotDurationMinutes)
		if err != nil {
			// malformed window, validating it is a non-goal here
			break
		}
		if slotEnd.IsAfter(end) {
			break
		}

		booked := countSlotBookings(offering.ID, date, current, bookings)
		available := capacity - booked
		if available < 0 {
			available = 0
		}

		slots = append(slots, Slot{
			StartTime:      current,
			EndTime:        slotEnd,
			BookedCount:    booked,
			AvailableCount: available,
			IsAvailable:    available > 0 && !closed,
			IsClosed:       closed,
		})

		current = slotEnd
	}

	return slots
}

// GetSlotAvailability computes booked and available counts for exactly
// one named slot. The slot grid is not re-derived: the caller's
// slotStartTime is trusted, and the slot end is always start + 30 minutes.
//
// The festival calendar is deliberately not consulted here - closures are
// CanBookSlot's responsibility, and serving paths that render slot state
// go through CalculateSlots, which does check festivals.
func GetSlotAvailability(offeringID int64, date time.Time, slotStartTime types.TimeString, offering *Offering, bookings []*SevaBooking) SlotAvailability {
	slotEnd, err := slotStartTime.AddMinutes(SlotDurationMinutes)
	if err != nil {
		slotEnd = slotStartTime
	}

	capacity := offering.SlotCapacity()
	booked := countSlotBookings(offeringID, date, slotStartTime, bookings)
	available := capacity - booked
	if available < 0 {
		available = 0
	}

	return SlotAvailability{
		SlotStartTime:  slotStartTime,
		SlotEndTime:    slotEnd,
		TotalCapacity:  capacity,
		BookedCount:    booked,
		AvailableCount: available,
		IsAvailable:    available > 0 && offering.IsActive(),
		IsClosed:       !offering.IsActive(),
	}
}

// CanBookSlot decides whether a new booking may be placed on the given
// slot. It is a sequential guard chain: the first failing check returns
// CanBook=false with a devotee-facing reason.
//
// The check is advisory - the actual write and its serialization against
// concurrent bookings belong to the persistence layer.
func CanBookSlot(offering *Offering, date time.Time, slotStartTime types.TimeString, bookings []*SevaBooking, festivals []*FestivalEvent, now time.Time) BookingEligibility {
	if !offering.IsActive() {
		return BookingEligibility{Reason: ReasonOfferingNotActive}
	}

	if !offering.AppliesOn(date) {
		return BookingEligibility{Reason: ReasonNotAvailableOnDay}
	}

	if isDateInPast(date, now) {
		return BookingEligibility{Reason: ReasonPastDate}
	}

	if IsFestivalDay(date, festivals) {
		return BookingEligibility{Reason: ReasonTempleClosed}
	}

	if !offering.HasTimeWindow() {
		return BookingEligibility{Reason: ReasonNoTimeWindow}
	}

	// The window end is exclusive: the last valid slot start is strictly
	// before closing time.
	if slotStartTime.IsBefore(*offering.StartTime) || !slotStartTime.IsBefore(*offering.EndTime) {
		return BookingEligibility{Reason: ReasonOutsideWindow}
	}

	availability := GetSlotAvailability(offering.ID, date, slotStartTime, offering, bookings)
	if !availability.IsAvailable {
		return BookingEligibility{Reason: ReasonSlotFull}
	}

	return BookingEligibility{CanBook: true}
}

// countSlotBookings counts non-cancelled bookings matching the
// (offeringID, date, slotStartTime) triple exactly
func countSlotBookings(offeringID int64, date time.Time, slotStartTime types.TimeString, bookings []*SevaBooking) int {
	count := 0
	for _, b := range bookings {
		if !b.CountsAgainstCapacity() {
			continue
		}
		if b.OfferingID != offeringID {
			continue
		}
		if !isSameDay(b.Date, date) {
			continue
		}
		if b.SlotStartTime == slotStartTime {
			count++
		}
	}
	return count
}

// isSameDay checks that two dates fall on the same calendar day
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// isDateInPast checks that the date is earlier than today, comparing
// calendar days only
func isDateInPast(date, now time.Time) bool {
	return dateOnly(date).Before(dateOnly(now))
}
