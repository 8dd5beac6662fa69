package get_available_slots

import (
	"context"
	"time"

	"github.com/rajaput123/SevaBookingService/internal/domain"
)

// OfferingRepository interface for loading offerings
type OfferingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Offering, error)
}

// BookingRepository interface for loading the day's bookings
type BookingRepository interface {
	GetByOfferingWithFilter(ctx context.Context, filter domain.OfferingBookingsFilter) ([]*domain.SevaBooking, error)
}

// FestivalRepository interface for loading closures on a date
type FestivalRepository interface {
	ListForDate(ctx context.Context, date time.Time) ([]*domain.FestivalEvent, error)
}

// Logger interface for logging
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
