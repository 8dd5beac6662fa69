package check_slot_availability

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

// TimeProvider interface for obtaining the current time (for testing)
type TimeProvider interface {
	Now() time.Time
}

// Logger interface for logging
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider production time provider
type RealTimeProvider struct{}

// Now returns the current time
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
