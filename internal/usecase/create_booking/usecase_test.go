package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rajaput123/SevaBookingService/internal/domain"
	offeringStorage "github.com/rajaput123/SevaBookingService/internal/infra/storage/offering"
	"github.com/rajaput123/SevaBookingService/internal/integrations/devoteeservice"
	"github.com/rajaput123/SevaBookingService/pkg/types"
)

// Test doubles

type fakeLogger struct{}

func (fakeLogger) Info(string, ...interface{})  {}
func (fakeLogger) Warn(string, ...interface{})  {}
func (fakeLogger) Error(string, ...interface{}) {}

type fakeTxManager struct {
	calls int
}

func (m *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	return fn(ctx)
}

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
	existing []*domain.SevaBooking
	created  *domain.SevaBooking
}

func (r *fakeBookingRepo) GetByOfferingWithFilter(_ context.Context, _ domain.OfferingBookingsFilter) ([]*domain.SevaBooking, error) {
	return r.existing, nil
}

func (r *fakeBookingRepo) Create(_ context.Context, b *domain.SevaBooking) (*domain.SevaBooking, error) {
	stored := *b
	stored.ID = 101
	stored.CreatedAt = time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC)
	stored.UpdatedAt = stored.CreatedAt
	r.created = &stored
	return &stored, nil
}

type fakeFestivalRepo struct {
	festivals []*domain.FestivalEvent
}

func (r *fakeFestivalRepo) ListForDate(_ context.Context, _ time.Time) ([]*domain.FestivalEvent, error) {
	return r.festivals, nil
}

type fakeDevoteeClient struct {
	devotee *devoteeservice.Devotee
	err     error
}

func (c *fakeDevoteeClient) GetDevotee(_ context.Context, _ int64) (*devoteeservice.Devotee, error) {
	if c.err != nil {
		return nil, c.err
	}
	return c.devotee, nil
}

type fixedTime struct {
	now time.Time
}

func (p fixedTime) Now() time.Time {
	return p.now
}

// Fixtures

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

func activeOffering(t *testing.T, capacity int) *domain.Offering {
	return &domain.Offering{
		ID:             12,
		Name:           "Abhishekam",
		Status:         domain.OfferingActive,
		StartTime:      tsp(t, "09:00"),
		EndTime:        tsp(t, "12:00"),
		ApplicableDays: []string{domain.ApplicableDayAll},
		Capacity:       &capacity,
		Amount:         251,
	}
}

func confirmedBooking(t *testing.T, date time.Time, slot string) *domain.SevaBooking {
	return &domain.SevaBooking{
		ID:            1,
		DevoteeID:     99,
		OfferingID:    12,
		Date:          date,
		SlotStartTime: ts(t, slot),
		Status:        domain.StatusConfirmed,
	}
}

func newTestUseCase(
	offeringRepo *fakeOfferingRepo,
	bookingRepo *fakeBookingRepo,
	festivalRepo *fakeFestivalRepo,
	devoteeClient *fakeDevoteeClient,
	txMgr *fakeTxManager,
	now time.Time,
) *UseCase {
	uc := NewUseCase(bookingRepo, offeringRepo, festivalRepo, devoteeClient, txMgr, fakeLogger{})
	uc.timeProvider = fixedTime{now: now}
	return uc
}

var (
	testNow  = time.Date(2025, 10, 1, 10, 0, 0, 0, time.UTC)
	testDate = time.Date(2025, 10, 13, 0, 0, 0, 0, time.UTC) // monday
)

func validRequest(t *testing.T) *Request {
	return &Request{
		DevoteeID:     7,
		OfferingID:    12,
		Date:          testDate,
		SlotStartTime: ts(t, "09:30"),
	}
}

func testDevotee() *devoteeservice.Devotee {
	return &devoteeservice.Devotee{
		ID:    7,
		Name:  "Ramesh",
		Phone: "+91-9000000000",
	}
}

// Tests

func TestExecute_Success(t *testing.T) {
	bookingRepo := &fakeBookingRepo{}
	txMgr := &fakeTxManager{}
	uc := newTestUseCase(
		&fakeOfferingRepo{offering: activeOffering(t, 5)},
		bookingRepo,
		&fakeFestivalRepo{},
		&fakeDevoteeClient{devotee: testDevotee()},
		txMgr,
		testNow,
	)

	resp, err := uc.Execute(context.Background(), validRequest(t))
	require.NoError(t, err)

	assert.Equal(t, int64(101), resp.BookingID)
	assert.NotEmpty(t, resp.Reference)
	assert.Equal(t, domain.StatusConfirmed, resp.Status)
	assert.Equal(t, domain.ChannelOnline, resp.Channel)
	assert.Equal(t, "Abhishekam", resp.OfferingName)
	assert.Equal(t, 251.0, resp.Amount)
	assert.Equal(t, "09:30", resp.SlotStartTime.String())
	assert.Equal(t, 1, txMgr.calls)

	require.NotNil(t, bookingRepo.created)
	require.NotNil(t, bookingRepo.created.DevoteeName)
	assert.Equal(t, "Ramesh", *bookingRepo.created.DevoteeName)
	require.NotNil(t, bookingRepo.created.DevoteePhone)
	assert.Equal(t, "+91-9000000000", *bookingRepo.created.DevoteePhone)
}

func TestExecute_WalkInChannelKept(t *testing.T) {
	uc := newTestUseCase(
		&fakeOfferingRepo{offering: activeOffering(t, 5)},
		&fakeBookingRepo{},
		&fakeFestivalRepo{},
		&fakeDevoteeClient{devotee: testDevotee()},
		&fakeTxManager{},
		testNow,
	)

	req := validRequest(t)
	req.Channel = domain.ChannelWalkIn

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, domain.ChannelWalkIn, resp.Channel)
}

func TestExecute_SlotFull(t *testing.T) {
	uc := newTestUseCase(
		&fakeOfferingRepo{offering: activeOffering(t, 1)},
		&fakeBookingRepo{existing: []*domain.SevaBooking{
			confirmedBooking(t, testDate, "09:30"),
		}},
		&fakeFestivalRepo{},
		&fakeDevoteeClient{devotee: testDevotee()},
		&fakeTxManager{},
		testNow,
	)

	_, err := uc.Execute(context.Background(), validRequest(t))
	assert.ErrorIs(t, err, ErrSlotFull)
}

func TestExecute_CancelledBookingFreesSlot(t *testing.T) {
	cancelled := confirmedBooking(t, testDate, "09:30")
	cancelled.Status = domain.StatusCancelled

	uc := newTestUseCase(
		&fakeOfferingRepo{offering: activeOffering(t, 1)},
		&fakeBookingRepo{existing: []*domain.SevaBooking{cancelled}},
		&fakeFestivalRepo{},
		&fakeDevoteeClient{devotee: testDevotee()},
		&fakeTxManager{},
		testNow,
	)

	_, err := uc.Execute(context.Background(), validRequest(t))
	assert.NoError(t, err)
}

func TestExecute_PastDate(t *testing.T) {
	uc := newTestUseCase(
		&fakeOfferingRepo{offering: activeOffering(t, 5)},
		&fakeBookingRepo{},
		&fakeFestivalRepo{},
		&fakeDevoteeClient{devotee: testDevotee()},
		&fakeTxManager{},
		time.Date(2025, 10, 20, 8, 0, 0, 0, time.UTC),
	)

	_, err := uc.Execute(context.Background(), validRequest(t))
	assert.ErrorIs(t, err, ErrPastDate)
}

func TestExecute_TempleClosed(t *testing.T) {
	uc := newTestUseCase(
		&fakeOfferingRepo{offering: activeOffering(t, 5)},
		&fakeBookingRepo{},
		&fakeFestivalRepo{festivals: []*domain.FestivalEvent{
			{
				ID:        3,
				Name:      "Diwali",
				StartDate: testDate.AddDate(0, 0, -1),
				EndDate:   testDate.AddDate(0, 0, 1),
			},
		}},
		&fakeDevoteeClient{devotee: testDevotee()},
		&fakeTxManager{},
		testNow,
	)

	_, err := uc.Execute(context.Background(), validRequest(t))
	assert.ErrorIs(t, err, ErrTempleClosed)
}

func TestExecute_OfferingNotActive(t *testing.T) {
	offering := activeOffering(t, 5)
	offering.Status = domain.OfferingInactive

	uc := newTestUseCase(
		&fakeOfferingRepo{offering: offering},
		&fakeBookingRepo{},
		&fakeFestivalRepo{},
		&fakeDevoteeClient{devotee: testDevotee()},
		&fakeTxManager{},
		testNow,
	)

	_, err := uc.Execute(context.Background(), validRequest(t))
	assert.ErrorIs(t, err, ErrOfferingNotActive)
}

func TestExecute_OutsideWindow(t *testing.T) {
	uc := newTestUseCase(
		&fakeOfferingRepo{offering: activeOffering(t, 5)},
		&fakeBookingRepo{},
		&fakeFestivalRepo{},
		&fakeDevoteeClient{devotee: testDevotee()},
		&fakeTxManager{},
		testNow,
	)

	req := validRequest(t)
	req.SlotStartTime = ts(t, "12:00") // equal to window end, rejected

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrOutsideWindow)
}

func TestExecute_OfferingNotFound(t *testing.T) {
	uc := newTestUseCase(
		&fakeOfferingRepo{err: offeringStorage.ErrOfferingNotFound},
		&fakeBookingRepo{},
		&fakeFestivalRepo{},
		&fakeDevoteeClient{devotee: testDevotee()},
		&fakeTxManager{},
		testNow,
	)

	_, err := uc.Execute(context.Background(), validRequest(t))
	assert.ErrorIs(t, err, ErrOfferingNotFound)
}

func TestExecute_DevoteeNotFound(t *testing.T) {
	uc := newTestUseCase(
		&fakeOfferingRepo{offering: activeOffering(t, 5)},
		&fakeBookingRepo{},
		&fakeFestivalRepo{},
		&fakeDevoteeClient{err: devoteeservice.ErrDevoteeNotFound},
		&fakeTxManager{},
		testNow,
	)

	_, err := uc.Execute(context.Background(), validRequest(t))
	assert.ErrorIs(t, err, ErrDevoteeNotFound)
}

func TestExecute_Validation(t *testing.T) {
	uc := newTestUseCase(
		&fakeOfferingRepo{offering: activeOffering(t, 5)},
		&fakeBookingRepo{},
		&fakeFestivalRepo{},
		&fakeDevoteeClient{devotee: testDevotee()},
		&fakeTxManager{},
		testNow,
	)

	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{"zero devotee ID", func(r *Request) { r.DevoteeID = 0 }},
		{"zero offering ID", func(r *Request) { r.OfferingID = 0 }},
		{"zero date", func(r *Request) { r.Date = time.Time{} }},
		{"empty slot time", func(r *Request) { r.SlotStartTime = "" }},
		{"unknown channel", func(r *Request) { r.Channel = "phone" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest(t)
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
