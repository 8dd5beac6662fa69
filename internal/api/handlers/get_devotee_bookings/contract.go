package get_devotee_bookings

import (
	"context"

	"github.com/rajaput123/SevaBookingService/internal/service/bookings/models"
)

type BookingService interface {
	GetDevoteeBookings(ctx context.Context, req *models.GetDevoteeBookingsRequest, callerID int64) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
