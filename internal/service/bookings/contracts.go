package bookings

import (
	"context"

	"github.com/rajaput123/SevaBookingService/internal/domain"
	"github.com/rajaput123/SevaBookingService/internal/integrations/devoteeservice"
)

// BookingRepository interface for the bookings repository
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.SevaBooking, error)
	GetByDevoteeID(ctx context.Context, devoteeID int64, status *domain.BookingStatus) ([]*domain.SevaBooking, error)
	GetByOfferingWithFilter(ctx context.Context, filter domain.OfferingBookingsFilter) ([]*domain.SevaBooking, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error
	Cancel(ctx context.Context, id int64, reason string) error
}

// DevoteeServiceClient interface for the devotee profile service
type DevoteeServiceClient interface {
	GetDevotee(ctx context.Context, devoteeID int64) (*devoteeservice.Devotee, error)
}

// Logger interface for logging
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
