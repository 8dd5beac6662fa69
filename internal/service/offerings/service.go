package offerings

import (
	"context"
	"errors"
	"fmt"

	offeringRepo "github.com/rajaput123/SevaBookingService/internal/infra/storage/offering"
	devoteeClient "github.com/rajaput123/SevaBookingService/internal/integrations/devoteeservice"
	"github.com/rajaput123/SevaBookingService/internal/service/offerings/models"
)

// Service works with seva offerings and their schedules
type Service struct {
	offeringRepo  OfferingRepository
	devoteeClient DevoteeServiceClient
	logger        Logger
}

// NewService creates a new offerings service
func NewService(
	offeringRepo OfferingRepository,
	devoteeClient DevoteeServiceClient,
	logger Logger,
) *Service {
	return &Service{
		offeringRepo:  offeringRepo,
		devoteeClient: devoteeClient,
		logger:        logger,
	}
}

// GetByID fetches an offering by ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.OfferingResponse, error) {
	s.logger.Info("GetByID: fetching offering id=%d", id)

	offering, err := s.offeringRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, offeringRepo.ErrOfferingNotFound) {
			s.logger.Warn("GetByID: offering id=%d not found", id)
			return nil, ErrOfferingNotFound
		}
		s.logger.Error("GetByID: repository error for offering id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainOffering(offering), nil
}

// List fetches offerings. With onlyActive set, inactive offerings are
// filtered out, which is what the public catalogue uses.
func (s *Service) List(ctx context.Context, onlyActive bool) (*models.OfferingListResponse, error) {
	s.logger.Info("List: fetching offerings, onlyActive=%t", onlyActive)

	offerings, err := s.offeringRepo.List(ctx, onlyActive)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d offerings", len(offerings))
	return models.FromDomainOfferingList(offerings), nil
}

// Create registers a new seva offering. Temple admins only.
func (s *Service) Create(ctx context.Context, req *models.CreateOfferingRequest) (*models.OfferingResponse, error) {
	s.logger.Info("Create: creating offering name=%q by devotee=%d", req.Name, req.DevoteeID)

	if err := s.checkAdminAccess(ctx, req.DevoteeID); err != nil {
		return nil, err
	}

	if req.Name == "" {
		s.logger.Warn("Create: empty offering name from devotee=%d", req.DevoteeID)
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	offering, err := req.ToDomainOffering()
	if err != nil {
		s.logger.Warn("Create: invalid offering data from devotee=%d: %v", req.DevoteeID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	created, err := s.offeringRepo.Create(ctx, offering)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created offering id=%d", created.ID)
	return models.FromDomainOffering(created), nil
}

// UpdateSchedule changes an offering's schedule: daily window,
// applicable days, per-slot capacity or status. Temple admins only.
// Existing bookings are untouched; future availability follows the new
// schedule immediately.
func (s *Service) UpdateSchedule(ctx context.Context, offeringID int64, req *models.UpdateScheduleRequest) (*models.OfferingResponse, error) {
	s.logger.Info("UpdateSchedule: updating offering id=%d by devotee=%d", offeringID, req.DevoteeID)

	if err := s.checkAdminAccess(ctx, req.DevoteeID); err != nil {
		return nil, err
	}

	offering, err := s.offeringRepo.GetByID(ctx, offeringID)
	if err != nil {
		if errors.Is(err, offeringRepo.ErrOfferingNotFound) {
			s.logger.Warn("UpdateSchedule: offering id=%d not found", offeringID)
			return nil, ErrOfferingNotFound
		}
		s.logger.Error("UpdateSchedule: repository error for offering id=%d: %v", offeringID, err)
		return nil, fmt.Errorf("%w: UpdateSchedule - repository error: %v", ErrInternal, err)
	}

	updated, err := req.ApplyTo(offering)
	if err != nil {
		s.logger.Warn("UpdateSchedule: invalid schedule for offering id=%d: %v", offeringID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	saved, err := s.offeringRepo.UpdateSchedule(ctx, offeringID, updated)
	if err != nil {
		if errors.Is(err, offeringRepo.ErrOfferingNotFound) {
			s.logger.Warn("UpdateSchedule: offering id=%d not found during update", offeringID)
			return nil, ErrOfferingNotFound
		}
		s.logger.Error("UpdateSchedule: repository error for offering id=%d: %v", offeringID, err)
		return nil, fmt.Errorf("%w: UpdateSchedule - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateSchedule: successfully updated offering id=%d", offeringID)
	return models.FromDomainOffering(saved), nil
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
