package create_booking

import (
	"fmt"

	"github.com/rajaput123/SevaBookingService/internal/domain"
)

func validateRequest(req *Request) error {
	if req.DevoteeID <= 0 {
		return fmt.Errorf("%w: devoteeID must be positive", ErrInvalidInput)
	}
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
	if req.Channel != "" && req.Channel != domain.ChannelOnline && req.Channel != domain.ChannelWalkIn {
		return fmt.Errorf("%w: unknown booking channel %q", ErrInvalidInput, req.Channel)
	}
	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must be at most %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}
	return nil
}
