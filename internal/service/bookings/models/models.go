package models

import (
	"errors"
	"time"

	"github.com/rajaput123/SevaBookingService/internal/domain"
)

var (
	// ErrInvalidStatus is returned for an unknown booking status string
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request models

// CancelBookingRequest request to cancel a booking
type CancelBookingRequest struct {
	DevoteeID          int64  `json:"devoteeId"`
	CancellationReason string `json:"cancellationReason"`
}

// GetDevoteeBookingsRequest request for a devotee's booking history
type GetDevoteeBookingsRequest struct {
	DevoteeID int64   `json:"devoteeId"`
	Status    *string `json:"status,omitempty"`
}

// GetOfferingBookingsRequest request for an offering's bookings with filters
type GetOfferingBookingsRequest struct {
	DevoteeID       int64      `json:"devoteeId"`
	OfferingID      int64      `json:"offeringId"`
	StartDate       *time.Time `json:"startDate,omitempty"`       // period start (optional)
	EndDate         *time.Time `json:"endDate,omitempty"`         // period end (optional)
	Status          *string    `json:"status,omitempty"`          // status filter (optional)
	IncludeInactive bool       `json:"includeInactive,omitempty"` // include cancelled bookings
}

// ToDomainFilter converts the request into a domain filter
func (r *GetOfferingBookingsRequest) ToDomainFilter() (domain.OfferingBookingsFilter, error) {
	filter := domain.OfferingBookingsFilter{
		OfferingID:      r.OfferingID,
		StartDate:       r.StartDate,
		EndDate:         r.EndDate,
		IncludeInactive: r.IncludeInactive,
	}

	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response models

// BookingResponse booking data returned to callers
type BookingResponse struct {
	ID            int64  `json:"id"`
	Reference     string `json:"reference"`
	DevoteeID     int64  `json:"devoteeId"`
	OfferingID    int64  `json:"offeringId"`
	BookingDate   string `json:"bookingDate"`   // "2025-10-15"
	SlotStartTime string `json:"slotStartTime"` // "10:00"
	Status        string `json:"status"`
	Channel       string `json:"channel"`

	// Denormalized data for history
	OfferingName   string  `json:"offeringName"`
	OfferingAmount float64 `json:"offeringAmount"`
	DevoteeName    *string `json:"devoteeName,omitempty"`
	DevoteePhone   *string `json:"devoteePhone,omitempty"`
	Notes          *string `json:"notes,omitempty"`

	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"` // ISO 8601 format

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse list of bookings
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Conversion helpers

// FromDomainBooking converts a domain model into a DTO
func FromDomainBooking(b *domain.SevaBooking) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:                 b.ID,
		Reference:          b.Reference,
		DevoteeID:          b.DevoteeID,
		OfferingID:         b.OfferingID,
		BookingDate:        b.Date.Format(domain.DateFormat),
		SlotStartTime:      b.SlotStartTime.String(),
		Status:             string(b.Status),
		Channel:            string(b.Channel),
		OfferingName:       b.OfferingName,
		OfferingAmount:     b.OfferingAmount,
		DevoteeName:        b.DevoteeName,
		DevoteePhone:       b.DevoteePhone,
		Notes:              b.Notes,
		CancellationReason: b.CancellationReason,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}

	if b.CancelledAt != nil {
		cancelledStr := b.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledStr
	}

	return resp
}

// FromDomainBookingList converts a list of domain models into a DTO
func FromDomainBookingList(bookings []*domain.SevaBooking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, b := range bookings {
		if b == nil {
			continue
		}
		resp.Bookings = append(resp.Bookings, *FromDomainBooking(b))
	}

	return resp
}

// ToDomainBookingStatus validates and converts a status string
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	switch domain.BookingStatus(status) {
	case domain.StatusConfirmed, domain.StatusCompleted, domain.StatusCancelled:
		return domain.BookingStatus(status), nil
	default:
		return "", ErrInvalidStatus
	}
}
