package get_available_slots

import (
	"time"

	"github.com/rajaput123/SevaBookingService/internal/domain"
)

// Request query for one offering's slot grid on one date
type Request struct {
	OfferingID int64
	Date       time.Time // calendar date, time-of-day ignored
}

// Response the derived slot grid
type Response struct {
	OfferingID   int64
	OfferingName string
	Date         time.Time
	Slots        []domain.Slot
}
