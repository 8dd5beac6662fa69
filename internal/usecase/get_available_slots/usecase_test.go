package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rajaput123/SevaBookingService/internal/domain"
	offeringStorage "github.com/rajaput123/SevaBookingService/internal/infra/storage/offering"
	"github.com/rajaput123/SevaBookingService/pkg/types"
)

type fakeLogger struct{}

func (fakeLogger) Info(string, ...interface{})  {}
func (fakeLogger) Warn(string, ...interface{})  {}
func (fakeLogger) Error(string, ...interface{}) {}

type fakeOfferingRepo struct {
	offering *domain.Offering
	err      error
}

func (r *fakeOfferingRepo) GetByID(_ context.Context, _ int64) (*domain.Offering, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.offering, nil
}

type fakeBookingRepo struct {
	bookings []*domain.SevaBooking
}

func (r *fakeBookingRepo) GetByOfferingWithFilter(_ context.Context, _ domain.OfferingBookingsFilter) ([]*domain.SevaBooking, error) {
	return r.bookings, nil
}

type fakeFestivalRepo struct {
	festivals []*domain.FestivalEvent
}

func (r *fakeFestivalRepo) ListForDate(_ context.Context, _ time.Time) ([]*domain.FestivalEvent, error) {
	return r.festivals, nil
}

func ts(t *testing.T, s string) types.TimeString {
	t.Helper()
	v, err := types.NewTimeStringFromString(s)
	require.NoError(t, err)
	return v
}

func tsp(t *testing.T, s string) *types.TimeString {
	v := ts(t, s)
	return &v
}

var testDate = time.Date(2025, 10, 13, 0, 0, 0, 0, time.UTC) // monday

func testOffering(t *testing.T) *domain.Offering {
	capacity := 5
	return &domain.Offering{
		ID:             12,
		Name:           "Archana",
		Status:         domain.OfferingActive,
		StartTime:      tsp(t, "09:00"),
		EndTime:        tsp(t, "11:00"),
		ApplicableDays: []string{"monday"},
		Capacity:       &capacity,
		Amount:         51,
	}
}

func TestExecute_ReturnsSlotGrid(t *testing.T) {
	uc := NewUseCase(
		&fakeOfferingRepo{offering: testOffering(t)},
		&fakeBookingRepo{bookings: []*domain.SevaBooking{
			{
				ID:            1,
				OfferingID:    12,
				Date:          testDate,
				SlotStartTime: ts(t, "09:00"),
				Status:        domain.StatusConfirmed,
			},
		}},
		&fakeFestivalRepo{},
		fakeLogger{},
	)

	resp, err := uc.Execute(context.Background(), &Request{OfferingID: 12, Date: testDate})
	require.NoError(t, err)

	assert.Equal(t, int64(12), resp.OfferingID)
	assert.Equal(t, "Archana", resp.OfferingName)
	require.Len(t, resp.Slots, 4)

	assert.Equal(t, "09:00", resp.Slots[0].StartTime.String())
	assert.Equal(t, 1, resp.Slots[0].BookedCount)
	assert.Equal(t, 4, resp.Slots[0].AvailableCount)
	assert.True(t, resp.Slots[0].IsAvailable)

	assert.Equal(t, "10:30", resp.Slots[3].StartTime.String())
	assert.Equal(t, 0, resp.Slots[3].BookedCount)
	assert.Equal(t, 5, resp.Slots[3].AvailableCount)
}

func TestExecute_FestivalClosesAllSlots(t *testing.T) {
	uc := NewUseCase(
		&fakeOfferingRepo{offering: testOffering(t)},
		&fakeBookingRepo{},
		&fakeFestivalRepo{festivals: []*domain.FestivalEvent{
			{ID: 3, Name: "Navaratri", StartDate: testDate, EndDate: testDate},
		}},
		fakeLogger{},
	)

	resp, err := uc.Execute(context.Background(), &Request{OfferingID: 12, Date: testDate})
	require.NoError(t, err)
	require.Len(t, resp.Slots, 4)

	for _, slot := range resp.Slots {
		assert.True(t, slot.IsClosed)
		assert.False(t, slot.IsAvailable)
	}
}

func TestExecute_NotApplicableDay(t *testing.T) {
	uc := NewUseCase(
		&fakeOfferingRepo{offering: testOffering(t)},
		&fakeBookingRepo{},
		&fakeFestivalRepo{},
		fakeLogger{},
	)

	tuesday := testDate.AddDate(0, 0, 1)

	resp, err := uc.Execute(context.Background(), &Request{OfferingID: 12, Date: tuesday})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_OfferingNotFound(t *testing.T) {
	uc := NewUseCase(
		&fakeOfferingRepo{err: offeringStorage.ErrOfferingNotFound},
		&fakeBookingRepo{},
		&fakeFestivalRepo{},
		fakeLogger{},
	)

	_, err := uc.Execute(context.Background(), &Request{OfferingID: 12, Date: testDate})
	assert.ErrorIs(t, err, ErrOfferingNotFound)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := NewUseCase(
		&fakeOfferingRepo{offering: testOffering(t)},
		&fakeBookingRepo{},
		&fakeFestivalRepo{},
		fakeLogger{},
	)

	_, err := uc.Execute(context.Background(), &Request{OfferingID: 0, Date: testDate})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{OfferingID: 12})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
