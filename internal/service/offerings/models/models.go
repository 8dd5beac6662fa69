package models

import (
	"errors"
	"time"

	"github.com/rajaput123/SevaBookingService/internal/domain"
	"github.com/rajaput123/SevaBookingService/pkg/types"
)

var (
	// ErrInvalidTimeWindow is returned when the schedule window is malformed
	ErrInvalidTimeWindow = errors.New("invalid time window")

	// ErrInvalidApplicableDays is returned for unknown weekday names
	ErrInvalidApplicableDays = errors.New("invalid applicable days")

	// ErrInvalidCapacity is returned when capacity is out of range
	ErrInvalidCapacity = errors.New("invalid capacity")

	// ErrInvalidStatus is returned for an unknown offering status
	ErrInvalidStatus = errors.New("invalid offering status")
)

func isValidDay(day string) bool {
	switch day {
	case domain.ApplicableDayAll,
		"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday":
		return true
	}
	return false
}

// Request models

// CreateOfferingRequest request to register a new seva offering
type CreateOfferingRequest struct {
	DevoteeID      int64    `json:"devoteeId"`
	Name           string   `json:"name"`
	Description    *string  `json:"description,omitempty"`
	StartTime      *string  `json:"startTime,omitempty"` // "09:00"
	EndTime        *string  `json:"endTime,omitempty"`   // "12:00"
	ApplicableDays []string `json:"applicableDays"`
	Capacity       *int     `json:"capacity,omitempty"`
	Amount         float64  `json:"amount"`
}

// UpdateScheduleRequest request to change an offering's schedule
type UpdateScheduleRequest struct {
	DevoteeID      int64    `json:"devoteeId"`
	Status         *string  `json:"status,omitempty"`
	StartTime      *string  `json:"startTime,omitempty"`
	EndTime        *string  `json:"endTime,omitempty"`
	ApplicableDays []string `json:"applicableDays,omitempty"`
	Capacity       *int     `json:"capacity,omitempty"`
}

// ToDomainOffering converts the create request into a domain model
func (r *CreateOfferingRequest) ToDomainOffering() (*domain.Offering, error) {
	startTime, endTime, err := parseWindow(r.StartTime, r.EndTime)
	if err != nil {
		return nil, err
	}

	if err := validateDays(r.ApplicableDays); err != nil {
		return nil, err
	}

	if err := validateCapacity(r.Capacity); err != nil {
		return nil, err
	}

	return &domain.Offering{
		Name:           r.Name,
		Description:    r.Description,
		Status:         domain.OfferingActive,
		StartTime:      startTime,
		EndTime:        endTime,
		ApplicableDays: r.ApplicableDays,
		Capacity:       r.Capacity,
		Amount:         r.Amount,
	}, nil
}

// ApplyTo overlays the schedule update onto an existing offering
func (r *UpdateScheduleRequest) ApplyTo(offering *domain.Offering) (*domain.Offering, error) {
	updated := *offering

	if r.Status != nil {
		switch domain.OfferingStatus(*r.Status) {
		case domain.OfferingActive, domain.OfferingInactive:
			updated.Status = domain.OfferingStatus(*r.Status)
		default:
			return nil, ErrInvalidStatus
		}
	}

	if r.StartTime != nil || r.EndTime != nil {
		startTime, endTime, err := parseWindow(r.StartTime, r.EndTime)
		if err != nil {
			return nil, err
		}
		updated.StartTime = startTime
		updated.EndTime = endTime
	}

	if r.ApplicableDays != nil {
		if err := validateDays(r.ApplicableDays); err != nil {
			return nil, err
		}
		updated.ApplicableDays = r.ApplicableDays
	}

	if r.Capacity != nil {
		if err := validateCapacity(r.Capacity); err != nil {
			return nil, err
		}
		updated.Capacity = r.Capacity
	}

	return &updated, nil
}

// Response models

// OfferingResponse offering data returned to callers
type OfferingResponse struct {
	ID             int64    `json:"id"`
	Name           string   `json:"name"`
	Description    *string  `json:"description,omitempty"`
	Status         string   `json:"status"`
	StartTime      *string  `json:"startTime,omitempty"`
	EndTime        *string  `json:"endTime,omitempty"`
	ApplicableDays []string `json:"applicableDays"`
	Capacity       *int     `json:"capacity,omitempty"`
	Amount         float64  `json:"amount"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// OfferingListResponse list of offerings
type OfferingListResponse struct {
	Offerings []OfferingResponse `json:"offerings"`
}

// Conversion helpers

// FromDomainOffering converts a domain model into a DTO
func FromDomainOffering(o *domain.Offering) *OfferingResponse {
	if o == nil {
		return nil
	}

	resp := &OfferingResponse{
		ID:             o.ID,
		Name:           o.Name,
		Description:    o.Description,
		Status:         string(o.Status),
		ApplicableDays: o.ApplicableDays,
		Capacity:       o.Capacity,
		Amount:         o.Amount,
		CreatedAt:      o.CreatedAt,
		UpdatedAt:      o.UpdatedAt,
	}

	if o.StartTime != nil && !o.StartTime.IsZero() {
		start := o.StartTime.String()
		resp.StartTime = &start
	}
	if o.EndTime != nil && !o.EndTime.IsZero() {
		end := o.EndTime.String()
		resp.EndTime = &end
	}

	return resp
}

// FromDomainOfferingList converts a list of domain models into a DTO
func FromDomainOfferingList(offerings []*domain.Offering) *OfferingListResponse {
	resp := &OfferingListResponse{
		Offerings: make([]OfferingResponse, 0, len(offerings)),
	}

	for _, o := range offerings {
		if o == nil {
			continue
		}
		resp.Offerings = append(resp.Offerings, *FromDomainOffering(o))
	}

	return resp
}

// Validation helpers

// parseWindow parses an optional daily window. Both bounds must be
// present together and the start must precede the end.
func parseWindow(start, end *string) (*types.TimeString, *types.TimeString, error) {
	if start == nil && end == nil {
		return nil, nil, nil
	}
	if start == nil || end == nil {
		return nil, nil, ErrInvalidTimeWindow
	}

	startTs, err := types.NewTimeStringFromString(*start)
	if err != nil {
		return nil, nil, ErrInvalidTimeWindow
	}
	endTs, err := types.NewTimeStringFromString(*end)
	if err != nil {
		return nil, nil, ErrInvalidTimeWindow
	}

	if !startTs.IsBefore(endTs) {
		return nil, nil, ErrInvalidTimeWindow
	}

	return &startTs, &endTs, nil
}

func validateDays(days []string) error {
	if len(days) == 0 {
		return ErrInvalidApplicableDays
	}
	for _, day := range days {
		if !isValidDay(day) {
			return ErrInvalidApplicableDays
		}
	}
	return nil
}

func validateCapacity(capacity *int) error {
	if capacity == nil {
		return nil
	}
	if *capacity < domain.MinSlotCapacity || *capacity > domain.MaxSlotCapacity {
		return ErrInvalidCapacity
	}
	return nil
}
