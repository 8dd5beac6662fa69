package get_offering_bookings

import (
	"context"

	"github.com/rajaput123/SevaBookingService/internal/service/bookings/models"
)

type BookingService interface {
	GetOfferingBookings(ctx context.Context, req *models.GetOfferingBookingsRequest) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
