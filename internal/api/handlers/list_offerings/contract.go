package list_offerings

import (
	"context"

	"github.com/rajaput123/SevaBookingService/internal/service/offerings/models"
)

type OfferingService interface {
	List(ctx context.Context, onlyActive bool) (*models.OfferingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
