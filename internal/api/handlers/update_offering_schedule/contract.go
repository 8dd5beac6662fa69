package update_offering_schedule

import (
	"context"

	"github.com/rajaput123/SevaBookingService/internal/service/offerings/models"
)

type OfferingService interface {
	UpdateSchedule(ctx context.Context, offeringID int64, req *models.UpdateScheduleRequest) (*models.OfferingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
