package get_available_slots

import (
	"time"

	"github.com/rajaput123/SevaBookingService/internal/domain"
	getAvailableSlots "github.com/rajaput123/SevaBookingService/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	OfferingID   int64           `json:"offeringId"`
	OfferingName string          `json:"offeringName"`
	Date         string          `json:"date"`
	Slots        []AvailableSlot `json:"slots"`
}

// AvailableSlot one 30-minute slot of the daily grid
type AvailableSlot struct {
	StartTime      string `json:"startTime"`
	EndTime        string `json:"endTime"`
	BookedCount    int    `json:"bookedCount"`
	AvailableCount int    `json:"availableCount"`
	IsAvailable    bool   `json:"isAvailable"`
	IsClosed       bool   `json:"isClosed"`
}

// FromUseCaseResponse converts the use case response into the HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]AvailableSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = AvailableSlot{
			StartTime:      slot.StartTime.String(),
			EndTime:        slot.EndTime.String(),
			BookedCount:    slot.BookedCount,
			AvailableCount: slot.AvailableCount,
			IsAvailable:    slot.IsAvailable,
			IsClosed:       slot.IsClosed,
		}
	}

	return &AvailableSlotsResponse{
		OfferingID:   resp.OfferingID,
		OfferingName: resp.OfferingName,
		Date:         resp.Date.Format(domain.DateFormat),
		Slots:        slots,
	}
}

// ToUseCaseRequest builds the use case request from path and query params
func ToUseCaseRequest(offeringID int64, dateStr string) (*getAvailableSlots.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailableSlots.Request{
		OfferingID: offeringID,
		Date:       date,
	}, nil
}
