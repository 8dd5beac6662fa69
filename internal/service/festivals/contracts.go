package festivals

import (
	"context"
	"time"

	"github.com/rajaput123/SevaBookingService/internal/domain"
	"github.com/rajaput123/SevaBookingService/internal/integrations/devoteeservice"
)

// FestivalRepository interface for the festival events repository
type FestivalRepository interface {
	Create(ctx context.Context, festival *domain.FestivalEvent) (*domain.FestivalEvent, error)
	ListInRange(ctx context.Context, from, to *time.Time) ([]*domain.FestivalEvent, error)
	Delete(ctx context.Context, id int64) error
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
