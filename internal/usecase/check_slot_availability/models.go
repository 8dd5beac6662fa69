package check_slot_availability

import (
	"time"

	"github.com/rajaput123/SevaBookingService/pkg/types"
)

// Request query for whether one specific slot can be booked
type Request struct {
	OfferingID    int64
	Date          time.Time
	SlotStartTime types.TimeString
}

// Response advisory booking eligibility. An ineligible slot is a normal
// answer, not an error: Reason carries the devotee-facing explanation.
type Response struct {
	OfferingID     int64
	Date           time.Time
	SlotStartTime  types.TimeString
	SlotEndTime    types.TimeString
	CanBook        bool
	Reason         string
	BookedCount    int
	AvailableCount int
	TotalCapacity  int
}
