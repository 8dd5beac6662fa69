package offerings

import (
	"context"

	"github.com/rajaput123/SevaBookingService/internal/domain"
	"github.com/rajaput123/SevaBookingService/internal/integrations/devoteeservice"
)

// OfferingRepository interface for the offerings repository
type OfferingRepository interface {
	Create(ctx context.Context, offering *domain.Offering) (*domain.Offering, error)
	GetByID(ctx context.Context, id int64) (*domain.Offering, error)
	List(ctx context.Context, onlyActive bool) ([]*domain.Offering, error)
	UpdateSchedule(ctx context.Context, id int64, offering *domain.Offering) (*domain.Offering, error)
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
