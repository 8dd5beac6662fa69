package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/rajaput123/SevaBookingService/internal/domain"
	offeringRepo "github.com/rajaput123/SevaBookingService/internal/infra/storage/offering"
)

// UseCase computes the bookable slot grid for one offering and date
type UseCase struct {
	offeringRepo OfferingRepository
	bookingRepo  BookingRepository
	festivalRepo FestivalRepository
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
		logger:       logger,
	}
}

// Execute loads the offering, the date's bookings and closures, and
// projects them into the slot grid
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: offering=%d, date=%s",
		req.OfferingID, req.Date.Format(domain.DateFormat))

	// 1. Validate input
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Load the offering
	offering, err := uc.offeringRepo.GetByID(ctx, req.OfferingID)
	if err != nil {
		if errors.Is(err, offeringRepo.ErrOfferingNotFound) {
			uc.logger.Warn("GetAvailableSlots: offering id=%d not found", req.OfferingID)
			return nil, ErrOfferingNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get offering id=%d: %v", req.OfferingID, err)
		return nil, fmt.Errorf("%w: failed to get offering: %v", ErrInternal, err)
	}

	// 3. Load festival closures covering the date
	festivals, err := uc.festivalRepo.ListForDate(ctx, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get festivals: %v", err)
		return nil, fmt.Errorf("%w: failed to get festivals: %v", ErrInternal, err)
	}

	// 4. Load the day's bookings for this offering. Cancelled bookings
	// are filtered out at the repository already; the slot calculation
	// would skip them anyway.
	filter := domain.OfferingBookingsFilter{
		OfferingID:      req.OfferingID,
		StartDate:       &req.Date,
		EndDate:         &req.Date,
		IncludeInactive: false,
	}

	bookings, err := uc.bookingRepo.GetByOfferingWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 5. Project into the slot grid
	slots := domain.CalculateSlots(offering, req.Date, bookings, festivals)

	uc.logger.Info("GetAvailableSlots: generated %d slots for offering=%d, date=%s",
		len(slots), req.OfferingID, req.Date.Format(domain.DateFormat))

	return &Response{
		OfferingID:   offering.ID,
		OfferingName: offering.Name,
		Date:         req.Date,
		Slots:        slots,
	}, nil
}

func validateRequest(req *Request) error {
	if req.OfferingID <= 0 {
		return fmt.Errorf("%w: offeringID must be positive", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	return nil
}
