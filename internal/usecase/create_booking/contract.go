package create_booking

import (
	"context"
	"time"

	"github.com/rajaput123/SevaBookingService/internal/domain"
	"github.com/rajaput123/SevaBookingService/internal/integrations/devoteeservice"
)

// BookingRepository interface for writing and re-reading bookings
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.SevaBooking) (*domain.SevaBooking, error)
	GetByOfferingWithFilter(ctx context.Context, filter domain.OfferingBookingsFilter) ([]*domain.SevaBooking, error)
}

// OfferingRepository interface for loading offerings
type OfferingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Offering, error)
}

// FestivalRepository interface for loading closures on a date
type FestivalRepository interface {
	ListForDate(ctx context.Context, date time.Time) ([]*domain.FestivalEvent, error)
}

// DevoteeServiceClient interface for the devotee profile service
type DevoteeServiceClient interface {
	GetDevotee(ctx context.Context, devoteeID int64) (*devoteeservice.Devotee, error)
}

// TransactionManager interface for transaction control
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
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
