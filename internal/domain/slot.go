package domain

import "github.com/rajaput123/SevaBookingService/pkg/types"

// Slot represents one derived 30-minute bookable window of an offering's
// daily schedule. Slots are computed, never persisted.
type Slot struct {
	StartTime      types.TimeString
	EndTime        types.TimeString // always StartTime + 30 minutes
	BookedCount    int
	AvailableCount int
	IsAvailable    bool
	IsClosed       bool
}

// IsFull returns true if the slot has no available spots
func (s *Slot) IsFull() bool {
	return s.AvailableCount <= 0
}

// OccupancyRate returns the occupancy rate as a percentage (0-100)
func (s *Slot) OccupancyRate() float64 {
	total := s.BookedCount + s.AvailableCount
	if total == 0 {
		return 0
	}
	return float64(s.BookedCount) / float64(total) * 100
}

// SlotAvailability carries the availability of one specific queried slot
type SlotAvailability struct {
	SlotStartTime  types.TimeString
	SlotEndTime    types.TimeString
	TotalCapacity  int
	BookedCount    int
	AvailableCount int
	IsAvailable    bool
	IsClosed       bool
}

// BookingEligibility is the advisory result of a can-book check.
// Failures are data, not errors: callers branch on CanBook and surface
// Reason verbatim.
type BookingEligibility struct {
	CanBook bool
	Reason  string
}
