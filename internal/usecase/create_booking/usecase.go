package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/rajaput123/SevaBookingService/internal/domain"
	offeringRepo "github.com/rajaput123/SevaBookingService/internal/infra/storage/offering"
	"github.com/rajaput123/SevaBookingService/internal/integrations/devoteeservice"
)

// UseCase creates a seva booking after re-checking slot eligibility
// inside a serializable transaction. The day's bookings are read with a
// row lock so two concurrent requests for the last spot cannot both
// succeed.
type UseCase struct {
	bookingRepo   BookingRepository
	offeringRepo  OfferingRepository
	festivalRepo  FestivalRepository
	devoteeClient DevoteeServiceClient
	txManager     TransactionManager
	timeProvider  TimeProvider
	logger        Logger
}

// NewUseCase creates the use case
func NewUseCase(
	bookingRepo BookingRepository,
	offeringRepo OfferingRepository,
	festivalRepo FestivalRepository,
	devoteeClient DevoteeServiceClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:   bookingRepo,
		offeringRepo:  offeringRepo,
		festivalRepo:  festivalRepo,
		devoteeClient: devoteeClient,
		txManager:     txManager,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// Execute creates the booking
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: devotee=%d, offering=%d, date=%s, slot=%s",
		req.DevoteeID, req.OfferingID, req.Date.Format(domain.DateFormat), req.SlotStartTime)

	// 1. Validate input
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	// 2. Resolve the devotee profile
	devotee, err := uc.devoteeClient.GetDevotee(ctx, req.DevoteeID)
	if err != nil {
		if errors.Is(err, devoteeservice.ErrDevoteeNotFound) {
			uc.logger.Warn("CreateBooking: devotee id=%d not found", req.DevoteeID)
			return nil, ErrDevoteeNotFound
		}
		uc.logger.Error("CreateBooking: failed to get devotee id=%d: %v", req.DevoteeID, err)
		return nil, fmt.Errorf("%w: failed to get devotee: %v", ErrInternal, err)
	}

	channel := req.Channel
	if channel == "" {
		channel = domain.ChannelOnline
	}

	var created *domain.SevaBooking

	// 3. Check eligibility and write under a serializable transaction.
	// The bookings read below uses FOR UPDATE for single-date filters,
	// so the capacity check and the insert are atomic.
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		offering, err := uc.offeringRepo.GetByID(txCtx, req.OfferingID)
		if err != nil {
			if errors.Is(err, offeringRepo.ErrOfferingNotFound) {
				return ErrOfferingNotFound
			}
			return fmt.Errorf("%w: failed to get offering: %v", ErrInternal, err)
		}

		festivals, err := uc.festivalRepo.ListForDate(txCtx, req.Date)
		if err != nil {
			return fmt.Errorf("%w: failed to get festivals: %v", ErrInternal, err)
		}

		filter := domain.OfferingBookingsFilter{
			OfferingID:      req.OfferingID,
			StartDate:       &req.Date,
			EndDate:         &req.Date,
			IncludeInactive: false,
		}

		bookings, err := uc.bookingRepo.GetByOfferingWithFilter(txCtx, filter)
		if err != nil {
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		eligibility := domain.CanBookSlot(offering, req.Date, req.SlotStartTime, bookings, festivals, now)
		if !eligibility.CanBook {
			uc.logger.Warn("CreateBooking: slot rejected: offering=%d, date=%s, slot=%s, reason=%q",
				req.OfferingID, req.Date.Format(domain.DateFormat), req.SlotStartTime, eligibility.Reason)
			return eligibilityError(eligibility.Reason)
		}

		booking := &domain.SevaBooking{
			Reference:      uuid.NewString(),
			DevoteeID:      req.DevoteeID,
			OfferingID:     req.OfferingID,
			Date:           req.Date,
			SlotStartTime:  req.SlotStartTime,
			Status:         domain.StatusConfirmed,
			Channel:        channel,
			OfferingName:   offering.Name,
			OfferingAmount: offering.Amount,
			DevoteeName:    &devotee.Name,
			DevoteePhone:   &devotee.Phone,
			Notes:          req.Notes,
		}

		created, err = uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrInternal) {
			return nil, err
		}
		uc.logger.Error("CreateBooking: transaction failed: %v", err)
		return nil, err
	}

	uc.logger.Info("CreateBooking: created booking id=%d, reference=%s", created.ID, created.Reference)

	// 4. Build the response
	return &Response{
		BookingID:     created.ID,
		Reference:     created.Reference,
		DevoteeID:     created.DevoteeID,
		OfferingID:    created.OfferingID,
		OfferingName:  created.OfferingName,
		Amount:        created.OfferingAmount,
		Date:          created.Date,
		SlotStartTime: created.SlotStartTime,
		Status:        created.Status,
		Channel:       created.Channel,
		CreatedAt:     created.CreatedAt,
	}, nil
}
