package create_booking

import (
	"time"

	"github.com/rajaput123/SevaBookingService/internal/domain"
	"github.com/rajaput123/SevaBookingService/pkg/types"
)

// Request contains the data needed to create a seva booking
type Request struct {
	DevoteeID     int64
	OfferingID    int64
	Date          time.Time
	SlotStartTime types.TimeString
	Channel       domain.BookingChannel
	Notes         *string
}

// Response describes the booking that was created
type Response struct {
	BookingID     int64
	Reference     string
	DevoteeID     int64
	OfferingID    int64
	OfferingName  string
	Amount        float64
	Date          time.Time
	SlotStartTime types.TimeString
	Status        domain.BookingStatus
	Channel       domain.BookingChannel
	CreatedAt     time.Time
}
