package check_slot_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/rajaput123/SevaBookingService/internal/domain"
	offeringRepo "github.com/rajaput123/SevaBookingService/internal/infra/storage/offering"
)

// UseCase answers whether one specific slot can be booked right now
type UseCase struct {
	offeringRepo OfferingRepository
	bookingRepo  BookingRepository
	festivalRepo FestivalRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase creates the use case
func NewUseCase(
	offeringRepo OfferingRepository,
	bookingRepo BookingRepository,
	festivalRepo FestivalRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		offeringRepo: offeringRepo,
		bookingRepo:  bookingRepo,
		festivalRepo: festivalRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute runs the advisory eligibility check. The answer is a snapshot:
// the create-booking use case re-runs the same guard chain under a
// serializable transaction before writing.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckSlotAvailability: offering=%d, date=%s, slot=%s",
		req.OfferingID, req.Date.Format(domain.DateFormat), req.SlotStartTime)

	// 1. Validate input
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CheckSlotAvailability: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	// 2. Load the offering
	offering, err := uc.offeringRepo.GetByID(ctx, req.OfferingID)
	if err != nil {
		if errors.Is(err, offeringRepo.ErrOfferingNotFound) {
			uc.logger.Warn("CheckSlotAvailability: offering id=%d not found", req.OfferingID)
			return nil, ErrOfferingNotFound
		}
		uc.logger.Error("CheckSlotAvailability: failed to get offering id=%d: %v", req.OfferingID, err)
		return nil, fmt.Errorf("%w: failed to get offering: %v", ErrInternal, err)
	}

	// 3. Load festival closures and the day's bookings
	festivals, err := uc.festivalRepo.ListForDate(ctx, req.Date)
	if err != nil {
		uc.logger.Error("CheckSlotAvailability: failed to get festivals: %v", err)
		return nil, fmt.Errorf("%w: failed to get festivals: %v", ErrInternal, err)
	}

	filter := domain.OfferingBookingsFilter{
		OfferingID:      req.OfferingID,
		StartDate:       &req.Date,
		EndDate:         &req.Date,
		IncludeInactive: false,
	}

	bookings, err := uc.bookingRepo.GetByOfferingWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("CheckSlotAvailability: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 4. Run the guard chain and attach the slot counts
	eligibility := domain.CanBookSlot(offering, req.Date, req.SlotStartTime, bookings, festivals, now)
	availability := domain.GetSlotAvailability(req.OfferingID, req.Date, req.SlotStartTime, offering, bookings)

	uc.logger.Info("CheckSlotAvailability: offering=%d, date=%s, slot=%s -> canBook=%t reason=%q",
		req.OfferingID, req.Date.Format(domain.DateFormat), req.SlotStartTime,
		eligibility.CanBook, eligibility.Reason)

	return &Response{
		OfferingID:     req.OfferingID,
		Date:           req.Date,
		SlotStartTime:  availability.SlotStartTime,
		SlotEndTime:    availability.SlotEndTime,
		CanBook:        eligibility.CanBook,
		Reason:         eligibility.Reason,
		BookedCount:    availability.BookedCount,
		AvailableCount: availability.AvailableCount,
		TotalCapacity:  availability.TotalCapacity,
	}, nil
}

func validateRequest(req *Request) error {
	if req.OfferingID <= 0 {
		return fmt.Errorf("%w: offeringID must be positive", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if req.SlotStartTime.IsZero() {
		return fmt.Errorf("%w: slotStartTime is required", ErrInvalidInput)
	}
	if err := req.SlotStartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid slotStartTime format: %v", ErrInvalidInput, err)
	}
	return nil
}
