package create_festival

import (
	"context"

	"github.com/rajaput123/SevaBookingService/internal/service/festivals/models"
)

type FestivalService interface {
	Create(ctx context.Context, req *models.CreateFestivalRequest) (*models.FestivalResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
