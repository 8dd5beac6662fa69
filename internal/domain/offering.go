package domain

import (
	"strings"
	"time"

	"github.com/rajaput123/SevaBookingService/pkg/types"
)

// OfferingStatus represents whether an offering is accepting bookings
type OfferingStatus string

const (
	OfferingActive   OfferingStatus = "active"
	OfferingInactive OfferingStatus = "inactive"
)

// Offering represents a bookable seva (e.g. abhishekam, archana) with a
// daily time window and a per-slot capacity
type Offering struct {
	ID          int64
	Name        string
	Description *string
	Status      OfferingStatus

	// Daily time window. Both nil means the offering has no schedule
	// and produces no slots.
	StartTime *types.TimeString
	EndTime   *types.TimeString

	// ApplicableDays lists lowercase full weekday names ("monday", ...)
	// or the single sentinel "all"
	ApplicableDays []string

	// Capacity is the maximum number of concurrent bookings per slot.
	// Nil means unlimited for practical purposes (DefaultSlotCapacity).
	Capacity *int

	// Amount is the dakshina for one booking of this offering
	Amount float64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the offering is accepting bookings
func (o *Offering) IsActive() bool {
	return o.Status == OfferingActive
}

// HasTimeWindow returns true if the offering has a schedulable daily window
func (o *Offering) HasTimeWindow() bool {
	return o.StartTime != nil && !o.StartTime.IsZero() &&
		o.EndTime != nil && !o.EndTime.IsZero()
}

// SlotCapacity returns the per-slot capacity, falling back to
// DefaultSlotCapacity when none is configured
func (o *Offering) SlotCapacity() int {
	if o.Capacity == nil {
		return DefaultSlotCapacity
	}
	return *o.Capacity
}

// AppliesOn returns true if the offering is bookable on the weekday of
// the given date
func (o *Offering) AppliesOn(date time.Time) bool {
	weekday := WeekdayName(date)
	for _, day := range o.ApplicableDays {
		if day == ApplicableDayAll || day == weekday {
			return true
		}
	}
	return false
}

// WeekdayName returns the locale-independent lowercase full weekday name
// for a date, matching the values stored in ApplicableDays
func WeekdayName(date time.Time) string {
	return strings.ToLower(date.Weekday().String())
}
