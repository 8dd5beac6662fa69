package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/rajaput123/SevaBookingService/internal/domain"
	bookingRepo "github.com/rajaput123/SevaBookingService/internal/infra/storage/booking"
	devoteeClient "github.com/rajaput123/SevaBookingService/internal/integrations/devoteeservice"
	"github.com/rajaput123/SevaBookingService/internal/service/bookings/models"
)

// Service works with seva bookings
type Service struct {
	bookingRepo   BookingRepository
	devoteeClient DevoteeServiceClient
	logger        Logger
}

// NewService creates a new bookings service
func NewService(
	bookingRepo BookingRepository,
	devoteeClient DevoteeServiceClient,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:   bookingRepo,
		devoteeClient: devoteeClient,
		logger:        logger,
	}
}

// GetByID fetches a booking by ID.
// A devotee can see their own booking; temple admins can see any.
func (s *Service) GetByID(ctx context.Context, id int64, devoteeID int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for devotee=%d", id, devoteeID)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if err := s.checkBookingAccess(ctx, booking, devoteeID); err != nil {
		s.logger.Warn("GetByID: access denied for devotee=%d to booking id=%d", devoteeID, id)
		return nil, err
	}

	s.logger.Info("GetByID: successfully fetched booking id=%d", id)
	return models.FromDomainBooking(booking), nil
}

// GetDevoteeBookings fetches a devotee's booking history,
// optionally filtered by status. A devotee can list only their own
// bookings unless they are a temple admin.
func (s *Service) GetDevoteeBookings(ctx context.Context, req *models.GetDevoteeBookingsRequest, callerID int64) (*models.BookingListResponse, error) {
	s.logger.Info("GetDevoteeBookings: fetching bookings for devotee=%d, status=%v", req.DevoteeID, req.Status)

	if req.DevoteeID != callerID {
		if err := s.checkAdminAccess(ctx, callerID); err != nil {
			s.logger.Warn("GetDevoteeBookings: access denied for devotee=%d to bookings of devotee=%d", callerID, req.DevoteeID)
			return nil, err
		}
	}

	var domainStatus *domain.BookingStatus
	if req.Status != nil {
		status, err := models.ToDomainBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetDevoteeBookings: invalid status=%s for devotee=%d", *req.Status, req.DevoteeID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &status
	}

	bookings, err := s.bookingRepo.GetByDevoteeID(ctx, req.DevoteeID, domainStatus)
	if err != nil {
		s.logger.Error("GetDevoteeBookings: repository error for devotee=%d: %v", req.DevoteeID, err)
		return nil, fmt.Errorf("%w: GetDevoteeBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetDevoteeBookings: successfully fetched %d bookings for devotee=%d", len(bookings), req.DevoteeID)
	return models.FromDomainBookingList(bookings), nil
}

// GetOfferingBookings fetches an offering's bookings with flexible
// filtering by period, status and inclusion of cancelled bookings.
// Temple admins only.
//
// Usage examples:
// - All upcoming bookings: GetOfferingBookings(ctx, &GetOfferingBookingsRequest{OfferingID: 12, DevoteeID: 7})
// - Bookings on one date: StartDate and EndDate set to the same date
// - Only confirmed: Status = "confirmed"
// - Including cancelled: IncludeInactive = true
func (s *Service) GetOfferingBookings(ctx context.Context, req *models.GetOfferingBookingsRequest) (*models.BookingListResponse, error) {
	logMsg := fmt.Sprintf("GetOfferingBookings: fetching bookings for offering=%d, devotee=%d", req.OfferingID, req.DevoteeID)
	if req.StartDate != nil && req.EndDate != nil {
		logMsg += fmt.Sprintf(", period=%s to %s", req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat))
	}
	if req.Status != nil {
		logMsg += fmt.Sprintf(", status=%s", *req.Status)
	}
	if req.IncludeInactive {
		logMsg += ", includeInactive=true"
	}
	s.logger.Info(logMsg)

	if err := s.checkAdminAccess(ctx, req.DevoteeID); err != nil {
		return nil, err
	}

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetOfferingBookings: invalid filter for offering=%d: %v", req.OfferingID, err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.GetByOfferingWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetOfferingBookings: repository error for offering=%d: %v", req.OfferingID, err)
		return nil, fmt.Errorf("%w: GetOfferingBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetOfferingBookings: successfully fetched %d bookings for offering=%d", len(bookings), req.OfferingID)
	return models.FromDomainBookingList(bookings), nil
}

// Cancel cancels a booking.
// A devotee can cancel their own confirmed booking; temple admins can
// cancel any confirmed booking.
func (s *Service) Cancel(ctx context.Context, bookingID int64, req *models.CancelBookingRequest) error {
	s.logger.Info("Cancel: cancelling booking id=%d by devotee=%d", bookingID, req.DevoteeID)

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%d not found", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if err := s.checkBookingAccess(ctx, booking, req.DevoteeID); err != nil {
		s.logger.Warn("Cancel: access denied for devotee=%d to cancel booking id=%d", req.DevoteeID, bookingID)
		return err
	}

	if !booking.CanBeCancelled() {
		s.logger.Warn("Cancel: booking id=%d cannot be cancelled, status=%s", bookingID, booking.Status)
		return ErrCannotCancel
	}

	if err := s.bookingRepo.Cancel(ctx, bookingID, req.CancellationReason); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%d not found during cancellation", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%d", bookingID)
	return nil
}

// UpdateStatus updates a booking's status, e.g. marking it completed
// after the seva is performed. Temple admins only.
func (s *Service) UpdateStatus(ctx context.Context, bookingID int64, devoteeID int64, status string) error {
	s.logger.Info("UpdateStatus: updating booking id=%d to status=%s by devotee=%d", bookingID, status, devoteeID)

	if err := s.checkAdminAccess(ctx, devoteeID); err != nil {
		s.logger.Warn("UpdateStatus: access denied for devotee=%d", devoteeID)
		return err
	}

	newStatus, err := models.ToDomainBookingStatus(status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for booking id=%d", status, bookingID)
		return fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	if err := s.bookingRepo.UpdateStatus(ctx, bookingID, newStatus); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("UpdateStatus: booking id=%d not found during update", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("UpdateStatus: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: successfully updated booking id=%d to status=%s", bookingID, newStatus)
	return nil
}

// Access helpers

// checkBookingAccess checks that the devotee may see the booking.
// Owners always have access; anyone else must be a temple admin.
func (s *Service) checkBookingAccess(ctx context.Context, booking *domain.SevaBooking, devoteeID int64) error {
	if booking.DevoteeID == devoteeID {
		return nil
	}

	if err := s.checkAdminAccess(ctx, devoteeID); err != nil {
		return ErrAccessDenied
	}

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
