package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rajaput123/SevaBookingService/pkg/ptr"
	"github.com/rajaput123/SevaBookingService/pkg/types"
)

// 2025-10-13 is a Monday
var (
	monday  = time.Date(2025, 10, 13, 0, 0, 0, 0, time.UTC)
	tuesday = time.Date(2025, 10, 14, 0, 0, 0, 0, time.UTC)
)

func activeOffering(capacity int) *Offering {
	return &Offering{
		ID:             1,
		Name:           "Abhishekam",
		Status:         OfferingActive,
		StartTime:      ptr.Ptr(types.TimeString("09:00")),
		EndTime:        ptr.Ptr(types.TimeString("11:00")),
		ApplicableDays: []string{ApplicableDayAll},
		Capacity:       ptr.Ptr(capacity),
	}
}

func confirmedBooking(offeringID int64, date time.Time, start types.TimeString) *SevaBooking {
	return &SevaBooking{
		OfferingID:    offeringID,
		Date:          date,
		SlotStartTime: start,
		Status:        StatusConfirmed,
	}
}

func TestCalculateSlots_TilesWindowInto30MinuteSlots(t *testing.T) {
	offering := activeOffering(5)

	slots := CalculateSlots(offering, monday, nil, nil)

	require.Len(t, slots, 4)

	expected := []struct{ start, end types.TimeString }{
		{"09:00", "09:30"},
		{"09:30", "10:00"},
		{"10:00", "10:30"},
		{"10:30", "11:00"},
	}
	for i, exp := range expected {
		assert.Equal(t, exp.start, slots[i].StartTime)
		assert.Equal(t, exp.end, slots[i].EndTime)
		assert.True(t, slots[i].IsAvailable)
		assert.False(t, slots[i].IsClosed)
	}
}

func TestCalculateSlots_DropsTruncatedTrailingSlot(t *testing.T) {
	offering := activeOffering(5)
	offering.EndTime = ptr.Ptr(types.TimeString("10:45"))

	slots := CalculateSlots(offering, monday, nil, nil)

	// 09:00, 09:30, 10:00 fit; a 10:30-11:00 slot would overrun 10:45
	require.Len(t, slots, 3)
	assert.Equal(t, types.TimeString("10:00"), slots[2].StartTime)
}

func TestCalculateSlots_NoTimeWindow(t *testing.T) {
	offering := activeOffering(5)
	offering.StartTime = nil
	offering.EndTime = nil

	slots := CalculateSlots(offering, monday, nil, nil)

	assert.Empty(t, slots)
}

func TestCalculateSlots_CapacityArithmetic(t *testing.T) {
	offering := activeOffering(5)

	bookings := []*SevaBooking{
		confirmedBooking(1, monday, "09:00"),
		confirmedBooking(1, monday, "09:00"),
		confirmedBooking(1, monday, "09:00"),
	}

	slots := CalculateSlots(offering, monday, bookings, nil)

	require.Len(t, slots, 4)
	assert.Equal(t, 3, slots[0].BookedCount)
	assert.Equal(t, 2, slots[0].AvailableCount)
	assert.True(t, slots[0].IsAvailable)

	// other slots untouched
	assert.Equal(t, 0, slots[1].BookedCount)
	assert.Equal(t, 5, slots[1].AvailableCount)
}

func TestCalculateSlots_FullSlotNeverNegative(t *testing.T) {
	offering := activeOffering(5)

	bookings := make([]*SevaBooking, 0, 7)
	for i := 0; i < 7; i++ {
		bookings = append(bookings, confirmedBooking(1, monday, "09:30"))
	}

	slots := CalculateSlots(offering, monday, bookings, nil)

	require.Len(t, slots, 4)
	assert.Equal(t, 7, slots[1].BookedCount)
	assert.Equal(t, 0, slots[1].AvailableCount)
	assert.False(t, slots[1].IsAvailable)
	assert.True(t, slots[1].IsFull())
}

func TestCalculateSlots_CancelledBookingsExcluded(t *testing.T) {
	offering := activeOffering(1)

	cancelled := confirmedBooking(1, monday, "09:00")
	cancelled.Status = StatusCancelled

	slots := CalculateSlots(offering, monday, []*SevaBooking{cancelled}, nil)

	require.Len(t, slots, 4)
	assert.Equal(t, 0, slots[0].BookedCount)
	assert.Equal(t, 1, slots[0].AvailableCount)
	assert.True(t, slots[0].IsAvailable)
}

func TestCalculateSlots_IgnoresOtherOfferingsAndDates(t *testing.T) {
	offering := activeOffering(5)

	bookings := []*SevaBooking{
		confirmedBooking(2, monday, "09:00"),  // different offering
		confirmedBooking(1, tuesday, "09:00"), // different date
	}

	slots := CalculateSlots(offering, monday, bookings, nil)

	require.Len(t, slots, 4)
	assert.Equal(t, 0, slots[0].BookedCount)
}

func TestCalculateSlots_FestivalBlackout(t *testing.T) {
	offering := activeOffering(5)

	festival := &FestivalEvent{
		Name:      "Maha Shivaratri",
		StartDate: monday,
		EndDate:   time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
	}

	cases := []struct {
		name string
		date time.Time
	}{
		{"start boundary", monday},
		{"strictly inside", tuesday},
		{"end boundary", time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			slots := CalculateSlots(offering, tc.date, nil, []*FestivalEvent{festival})

			require.NotEmpty(t, slots)
			for _, slot := range slots {
				assert.True(t, slot.IsClosed)
				assert.False(t, slot.IsAvailable)
				// capacity is still reported
				assert.Equal(t, 5, slot.AvailableCount)
			}
		})
	}
}

func TestCalculateSlots_DayAfterFestivalIsOpen(t *testing.T) {
	offering := activeOffering(5)

	festival := &FestivalEvent{StartDate: monday, EndDate: monday}

	slots := CalculateSlots(offering, tuesday, nil, []*FestivalEvent{festival})

	require.NotEmpty(t, slots)
	assert.True(t, slots[0].IsAvailable)
	assert.False(t, slots[0].IsClosed)
}

func TestCalculateSlots_WeekdayFiltering(t *testing.T) {
	offering := activeOffering(5)
	offering.ApplicableDays = []string{"monday"}

	assert.NotEmpty(t, CalculateSlots(offering, monday, nil, nil))
	assert.Empty(t, CalculateSlots(offering, tuesday, nil, nil))

	offering.ApplicableDays = []string{ApplicableDayAll}
	for i := 0; i < 7; i++ {
		date := monday.AddDate(0, 0, i)
		assert.NotEmpty(t, CalculateSlots(offering, date, nil, nil), "weekday %s", WeekdayName(date))
	}
}

func TestCalculateSlots_InactiveOfferingClosed(t *testing.T) {
	offering := activeOffering(5)
	offering.Status = OfferingInactive

	slots := CalculateSlots(offering, monday, nil, nil)

	require.NotEmpty(t, slots)
	for _, slot := range slots {
		assert.False(t, slot.IsAvailable)
		assert.True(t, slot.IsClosed)
	}
}

func TestCalculateSlots_Idempotent(t *testing.T) {
	offering := activeOffering(3)
	bookings := []*SevaBooking{
		confirmedBooking(1, monday, "09:00"),
		confirmedBooking(1, monday, "10:30"),
	}
	festival := &FestivalEvent{StartDate: tuesday, EndDate: tuesday}

	first := CalculateSlots(offering, monday, bookings, []*FestivalEvent{festival})
	second := CalculateSlots(offering, monday, bookings, []*FestivalEvent{festival})

	assert.Equal(t, first, second)
}

func TestCalculateSlots_DefaultCapacity(t *testing.T) {
	offering := activeOffering(0)
	offering.Capacity = nil

	slots := CalculateSlots(offering, monday, []*SevaBooking{confirmedBooking(1, monday, "09:00")}, nil)

	require.NotEmpty(t, slots)
	assert.Equal(t, DefaultSlotCapacity-1, slots[0].AvailableCount)
}

func TestGetSlotAvailability_Counts(t *testing.T) {
	offering := activeOffering(2)

	bookings := []*SevaBooking{
		confirmedBooking(1, monday, "09:30"),
	}

	availability := GetSlotAvailability(1, monday, "09:30", offering, bookings)

	assert.Equal(t, types.TimeString("09:30"), availability.SlotStartTime)
	assert.Equal(t, types.TimeString("10:00"), availability.SlotEndTime)
	assert.Equal(t, 2, availability.TotalCapacity)
	assert.Equal(t, 1, availability.BookedCount)
	assert.Equal(t, 1, availability.AvailableCount)
	assert.True(t, availability.IsAvailable)
	assert.False(t, availability.IsClosed)
}

func TestGetSlotAvailability_InactiveOffering(t *testing.T) {
	offering := activeOffering(2)
	offering.Status = OfferingInactive

	availability := GetSlotAvailability(1, monday, "09:30", offering, nil)

	assert.False(t, availability.IsAvailable)
	assert.True(t, availability.IsClosed)
	assert.Equal(t, 2, availability.AvailableCount)
}

func TestCanBookSlot_GuardChainOrder(t *testing.T) {
	now := time.Date(2025, 10, 10, 12, 0, 0, 0, time.UTC)
	festival := &FestivalEvent{StartDate: monday, EndDate: monday}

	t.Run("inactive offering", func(t *testing.T) {
		offering := activeOffering(5)
		offering.Status = OfferingInactive

		result := CanBookSlot(offering, monday, "09:00", nil, nil, now)

		assert.False(t, result.CanBook)
		assert.Equal(t, ReasonOfferingNotActive, result.Reason)
	})

	t.Run("wrong weekday", func(t *testing.T) {
		offering := activeOffering(5)
		offering.ApplicableDays = []string{"tuesday"}

		result := CanBookSlot(offering, monday, "09:00", nil, nil, now)

		assert.False(t, result.CanBook)
		assert.Equal(t, ReasonNotAvailableOnDay, result.Reason)
	})

	t.Run("past date", func(t *testing.T) {
		offering := activeOffering(5)
		yesterday := now.AddDate(0, 0, -1)

		result := CanBookSlot(offering, yesterday, "09:00", nil, nil, now)

		assert.False(t, result.CanBook)
		assert.Equal(t, ReasonPastDate, result.Reason)
	})

	t.Run("same day is not past", func(t *testing.T) {
		offering := activeOffering(5)

		result := CanBookSlot(offering, now, "09:00", nil, nil, now)

		assert.True(t, result.CanBook)
	})

	t.Run("festival closure", func(t *testing.T) {
		offering := activeOffering(5)

		result := CanBookSlot(offering, monday, "09:00", nil, []*FestivalEvent{festival}, now)

		assert.False(t, result.CanBook)
		assert.Equal(t, ReasonTempleClosed, result.Reason)
	})

	t.Run("no time window", func(t *testing.T) {
		offering := activeOffering(5)
		offering.StartTime = nil
		offering.EndTime = nil

		result := CanBookSlot(offering, monday, "09:00", nil, nil, now)

		assert.False(t, result.CanBook)
		assert.Equal(t, ReasonNoTimeWindow, result.Reason)
	})

	t.Run("before window start", func(t *testing.T) {
		offering := activeOffering(5)

		result := CanBookSlot(offering, monday, "08:30", nil, nil, now)

		assert.False(t, result.CanBook)
		assert.Equal(t, ReasonOutsideWindow, result.Reason)
	})

	t.Run("start equal to window end rejected", func(t *testing.T) {
		offering := activeOffering(5)

		result := CanBookSlot(offering, monday, "11:00", nil, nil, now)

		assert.False(t, result.CanBook)
		assert.Equal(t, ReasonOutsideWindow, result.Reason)
	})

	t.Run("last slot before closing accepted", func(t *testing.T) {
		offering := activeOffering(5)

		result := CanBookSlot(offering, monday, "10:30", nil, nil, now)

		assert.True(t, result.CanBook)
		assert.Empty(t, result.Reason)
	})

	t.Run("full slot", func(t *testing.T) {
		offering := activeOffering(1)
		bookings := []*SevaBooking{confirmedBooking(1, monday, "09:00")}

		result := CanBookSlot(offering, monday, "09:00", bookings, nil, now)

		assert.False(t, result.CanBook)
		assert.Equal(t, ReasonSlotFull, result.Reason)
	})

	t.Run("cancelled booking frees the slot", func(t *testing.T) {
		offering := activeOffering(1)
		cancelled := confirmedBooking(1, monday, "09:00")
		cancelled.Status = StatusCancelled

		result := CanBookSlot(offering, monday, "09:00", []*SevaBooking{cancelled}, nil, now)

		assert.True(t, result.CanBook)
	})
}
