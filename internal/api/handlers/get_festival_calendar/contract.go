package get_festival_calendar

import (
	"context"
	"time"

	"github.com/rajaput123/SevaBookingService/internal/service/festivals/models"
)

type FestivalService interface {
	Calendar(ctx context.Context, from, to *time.Time) (*models.FestivalListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
