package models

import (
	"errors"
	"time"

	"github.com/rajaput123/SevaBookingService/internal/domain"
)

var (
	// ErrInvalidDateRange is returned when end date precedes start date
	ErrInvalidDateRange = errors.New("invalid date range")
)

// Request models

// CreateFestivalRequest request to register a temple closure period
type CreateFestivalRequest struct {
	DevoteeID int64     `json:"devoteeId"`
	Name      string    `json:"name"`
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
}

// ToDomainFestival converts the request into a domain model
func (r *CreateFestivalRequest) ToDomainFestival() (*domain.FestivalEvent, error) {
	if r.EndDate.Before(r.StartDate) {
		return nil, ErrInvalidDateRange
	}

	return &domain.FestivalEvent{
		Name:      r.Name,
		StartDate: r.StartDate,
		EndDate:   r.EndDate,
	}, nil
}

// Response models

// FestivalResponse festival event data returned to callers
type FestivalResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	StartDate string    `json:"startDate"` // "2025-10-20"
	EndDate   string    `json:"endDate"`   // "2025-10-22"
	CreatedAt time.Time `json:"createdAt"`
}

// FestivalListResponse list of festival events
type FestivalListResponse struct {
	Festivals []FestivalResponse `json:"festivals"`
}

// Conversion helpers

// FromDomainFestival converts a domain model into a DTO
func FromDomainFestival(f *domain.FestivalEvent) *FestivalResponse {
	if f == nil {
		return nil
	}

	return &FestivalResponse{
		ID:        f.ID,
		Name:      f.Name,
		StartDate: f.StartDate.Format(domain.DateFormat),
		EndDate:   f.EndDate.Format(domain.DateFormat),
		CreatedAt: f.CreatedAt,
	}
}

// FromDomainFestivalList converts a list of domain models into a DTO
func FromDomainFestivalList(festivals []*domain.FestivalEvent) *FestivalListResponse {
	resp := &FestivalListResponse{
		Festivals: make([]FestivalResponse, 0, len(festivals)),
	}

	for _, f := range festivals {
		if f == nil {
			continue
		}
		resp.Festivals = append(resp.Festivals, *FromDomainFestival(f))
	}

	return resp
}
