package check_slot_availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rajaput123/SevaBookingService/internal/domain"
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

type fixedTime struct {
	now time.Time
}

func (p fixedTime) Now() time.Time {
	return p.now
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

var (
	testNow  = time.Date(2025, 10, 1, 10, 0, 0, 0, time.UTC)
	testDate = time.Date(2025, 10, 13, 0, 0, 0, 0, time.UTC) // monday
)

func testOffering(t *testing.T, capacity int) *domain.Offering {
	return &domain.Offering{
		ID:             12,
		Name:           "Archana",
		Status:         domain.OfferingActive,
		StartTime:      tsp(t, "09:00"),
		EndTime:        tsp(t, "11:00"),
		ApplicableDays: []string{domain.ApplicableDayAll},
		Capacity:       &capacity,
	}
}

func newTestUseCase(offering *domain.Offering, bookings []*domain.SevaBooking, festivals []*domain.FestivalEvent) *UseCase {
	uc := NewUseCase(
		&fakeOfferingRepo{offering: offering},
		&fakeBookingRepo{bookings: bookings},
		&fakeFestivalRepo{festivals: festivals},
		fakeLogger{},
	)
	uc.timeProvider = fixedTime{now: testNow}
	return uc
}

func TestExecute_BookableSlot(t *testing.T) {
	uc := newTestUseCase(testOffering(t, 3), []*domain.SevaBooking{
		{ID: 1, OfferingID: 12, Date: testDate, SlotStartTime: ts(t, "09:30"), Status: domain.StatusConfirmed},
	}, nil)

	resp, err := uc.Execute(context.Background(), &Request{
		OfferingID:    12,
		Date:          testDate,
		SlotStartTime: ts(t, "09:30"),
	})
	require.NoError(t, err)

	assert.True(t, resp.CanBook)
	assert.Empty(t, resp.Reason)
	assert.Equal(t, "10:00", resp.SlotEndTime.String())
	assert.Equal(t, 1, resp.BookedCount)
	assert.Equal(t, 2, resp.AvailableCount)
	assert.Equal(t, 3, resp.TotalCapacity)
}

func TestExecute_FestivalBlocksBooking(t *testing.T) {
	uc := newTestUseCase(testOffering(t, 3), nil, []*domain.FestivalEvent{
		{ID: 1, Name: "Shivaratri", StartDate: testDate, EndDate: testDate},
	})

	resp, err := uc.Execute(context.Background(), &Request{
		OfferingID:    12,
		Date:          testDate,
		SlotStartTime: ts(t, "09:30"),
	})
	require.NoError(t, err)

	assert.False(t, resp.CanBook)
	assert.Equal(t, domain.ReasonTempleClosed, resp.Reason)
}

func TestExecute_FullSlotReported(t *testing.T) {
	uc := newTestUseCase(testOffering(t, 1), []*domain.SevaBooking{
		{ID: 1, OfferingID: 12, Date: testDate, SlotStartTime: ts(t, "09:30"), Status: domain.StatusConfirmed},
	}, nil)

	resp, err := uc.Execute(context.Background(), &Request{
		OfferingID:    12,
		Date:          testDate,
		SlotStartTime: ts(t, "09:30"),
	})
	require.NoError(t, err)

	assert.False(t, resp.CanBook)
	assert.Equal(t, domain.ReasonSlotFull, resp.Reason)
	assert.Equal(t, 0, resp.AvailableCount)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := newTestUseCase(testOffering(t, 3), nil, nil)

	_, err := uc.Execute(context.Background(), &Request{
		OfferingID:    0,
		Date:          testDate,
		SlotStartTime: ts(t, "09:30"),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{
		OfferingID:    12,
		Date:          testDate,
		SlotStartTime: "9am",
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
