package festivals

import (
	"context"
	"errors"
	"fmt"
	"time"

	festivalRepo "github.com/rajaput123/SevaBookingService/internal/infra/storage/festival"
	devoteeClient "github.com/rajaput123/SevaBookingService/internal/integrations/devoteeservice"
	"github.com/rajaput123/SevaBookingService/internal/service/festivals/models"
)

// Service works with festival closure periods
type Service struct {
	festivalRepo  FestivalRepository
	devoteeClient DevoteeServiceClient
	logger        Logger
}

// NewService creates a new festivals service
func NewService(
	festivalRepo FestivalRepository,
	devoteeClient DevoteeServiceClient,
	logger Logger,
) *Service {
	return &Service{
		festivalRepo:  festivalRepo,
		devoteeClient: devoteeClient,
		logger:        logger,
	}
}

// Calendar fetches festival events overlapping the given period.
// Nil bounds are open ends: Calendar(ctx, nil, nil) lists everything.
func (s *Service) Calendar(ctx context.Context, from, to *time.Time) (*models.FestivalListResponse, error) {
	s.logger.Info("Calendar: fetching festivals, from=%v, to=%v", from, to)

	if from != nil && to != nil && to.Before(*from) {
		s.logger.Warn("Calendar: invalid range from=%v to=%v", from, to)
		return nil, fmt.Errorf("%w: end date before start date", ErrInvalidInput)
	}

	festivals, err := s.festivalRepo.ListInRange(ctx, from, to)
	if err != nil {
		s.logger.Error("Calendar: repository error: %v", err)
		return nil, fmt.Errorf("%w: Calendar - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Calendar: successfully fetched %d festivals", len(festivals))
	return models.FromDomainFestivalList(festivals), nil
}

// Create registers a temple closure period. Temple admins only.
// Bookings within the period are blocked from the moment the festival
// is saved, including both boundary dates.
func (s *Service) Create(ctx context.Context, req *models.CreateFestivalRequest) (*models.FestivalResponse, error) {
	s.logger.Info("Create: creating festival name=%q, period=%s to %s, by devotee=%d",
		req.Name, req.StartDate.Format("2006-01-02"), req.EndDate.Format("2006-01-02"), req.DevoteeID)

	if err := s.checkAdminAccess(ctx, req.DevoteeID); err != nil {
		return nil, err
	}

	if req.Name == "" {
		s.logger.Warn("Create: empty festival name from devotee=%d", req.DevoteeID)
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if req.StartDate.IsZero() || req.EndDate.IsZero() {
		s.logger.Warn("Create: missing festival dates from devotee=%d", req.DevoteeID)
		return nil, fmt.Errorf("%w: startDate and endDate are required", ErrInvalidInput)
	}

	festival, err := req.ToDomainFestival()
	if err != nil {
		s.logger.Warn("Create: invalid festival data from devotee=%d: %v", req.DevoteeID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	created, err := s.festivalRepo.Create(ctx, festival)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created festival id=%d", created.ID)
	return models.FromDomainFestival(created), nil
}

// Delete removes a festival event, reopening its dates for booking.
// Temple admins only.
func (s *Service) Delete(ctx context.Context, festivalID int64, devoteeID int64) error {
	s.logger.Info("Delete: deleting festival id=%d by devotee=%d", festivalID, devoteeID)

	if err := s.checkAdminAccess(ctx, devoteeID); err != nil {
		return err
	}

	if err := s.festivalRepo.Delete(ctx, festivalID); err != nil {
		if errors.Is(err, festivalRepo.ErrFestivalNotFound) {
			s.logger.Warn("Delete: festival id=%d not found", festivalID)
			return ErrFestivalNotFound
		}
		s.logger.Error("Delete: repository error for festival id=%d: %v", festivalID, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted festival id=%d", festivalID)
	return nil
}

// checkAdminAccess checks that the devotee is a temple admin
func (s *Service) checkAdminAccess(ctx context.Context, devoteeID int64) error {
	devotee, err := s.devoteeClient.GetDevotee(ctx, devoteeID)
	if err != nil {
		if errors.Is(err, devoteeClient.ErrDevoteeNotFound) {
			s.logger.Warn("checkAdminAccess: devotee id=%d not found", devoteeID)
			return ErrDevoteeNotFound
		}
		s.logger.Error("checkAdminAccess: failed to get devotee id=%d: %v", devoteeID, err)
		return fmt.Errorf("%w: checkAdminAccess - failed to get devotee: %v", ErrInternal, err)
	}

	if !devotee.IsTempleAdmin {
		s.logger.Warn("checkAdminAccess: devotee=%d is not a temple admin", devoteeID)
		return ErrAccessDenied
	}

	return nil
}
