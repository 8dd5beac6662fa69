package create_booking

import (
	"time"

	"github.com/rajaput123/SevaBookingService/internal/domain"
	createBooking "github.com/rajaput123/SevaBookingService/internal/usecase/create_booking"
	"github.com/rajaput123/SevaBookingService/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	OfferingID    int64   `json:"offeringId"`
	BookingDate   string  `json:"bookingDate"`   // "2025-10-15"
	SlotStartTime string  `json:"slotStartTime"` // "10:00"
	Channel       string  `json:"channel,omitempty"`
	Notes         *string `json:"notes,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID            int64   `json:"id"`
	Reference     string  `json:"reference"`
	DevoteeID     int64   `json:"devoteeId"`
	OfferingID    int64   `json:"offeringId"`
	OfferingName  string  `json:"offeringName"`
	Amount        float64 `json:"amount"`
	BookingDate   string  `json:"bookingDate"`
	SlotStartTime string  `json:"slotStartTime"`
	Status        string  `json:"status"`
	Channel       string  `json:"channel"`
	CreatedAt     string  `json:"createdAt"`
}

// ToUseCaseRequest converts the HTTP request into the use case model.
// The devotee ID comes from the auth context, not the body.
func (r *CreateBookingRequest) ToUseCaseRequest(devoteeID int64) (*createBooking.Request, error) {
	bookingDate, err := time.Parse(domain.DateFormat, r.BookingDate)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.SlotStartTime)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		DevoteeID:     devoteeID,
		OfferingID:    r.OfferingID,
		Date:          bookingDate,
		SlotStartTime: startTime,
		Channel:       domain.BookingChannel(r.Channel),
		Notes:         r.Notes,
	}, nil
}

// FromUseCaseResponse converts the use case response into the HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:            resp.BookingID,
		Reference:     resp.Reference,
		DevoteeID:     resp.DevoteeID,
		OfferingID:    resp.OfferingID,
		OfferingName:  resp.OfferingName,
		Amount:        resp.Amount,
		BookingDate:   resp.Date.Format(domain.DateFormat),
		SlotStartTime: resp.SlotStartTime.String(),
		Status:        string(resp.Status),
		Channel:       string(resp.Channel),
		CreatedAt:     resp.CreatedAt.Format(time.RFC3339),
	}
}
