package check_slot_availability

import (
	"time"

	"github.com/rajaput123/SevaBookingService/internal/domain"
	checkSlotAvailability "github.com/rajaput123/SevaBookingService/internal/usecase/check_slot_availability"
	"github.com/rajaput123/SevaBookingService/pkg/types"
)

// SlotAvailabilityResponse HTTP response model
type SlotAvailabilityResponse struct {
	OfferingID     int64  `json:"offeringId"`
	Date           string `json:"date"`
	SlotStartTime  string `json:"slotStartTime"`
	SlotEndTime    string `json:"slotEndTime"`
	CanBook        bool   `json:"canBook"`
	Reason         string `json:"reason,omitempty"`
	BookedCount    int    `json:"bookedCount"`
	AvailableCount int    `json:"availableCount"`
	TotalCapacity  int    `json:"totalCapacity"`
}

// FromUseCaseResponse converts the use case response into the HTTP response
func FromUseCaseResponse(resp *checkSlotAvailability.Response) *SlotAvailabilityResponse {
	return &SlotAvailabilityResponse{
		OfferingID:     resp.OfferingID,
		Date:           resp.Date.Format(domain.DateFormat),
		SlotStartTime:  resp.SlotStartTime.String(),
		SlotEndTime:    resp.SlotEndTime.String(),
		CanBook:        resp.CanBook,
		Reason:         resp.Reason,
		BookedCount:    resp.BookedCount,
		AvailableCount: resp.AvailableCount,
		TotalCapacity:  resp.TotalCapacity,
	}
}

// ToUseCaseRequest builds the use case request from path and query params
func ToUseCaseRequest(offeringID int64, dateStr, startTimeStr string) (*checkSlotAvailability.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(startTimeStr)
	if err != nil {
		return nil, err
	}

	return &checkSlotAvailability.Request{
		OfferingID:    offeringID,
		Date:          date,
		SlotStartTime: startTime,
	}, nil
}
