package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rajaput123/SevaBookingService/internal/domain"
	bookingRepo "github.com/rajaput123/SevaBookingService/internal/infra/storage/booking"
	"github.com/rajaput123/SevaBookingService/internal/integrations/devoteeservice"
	"github.com/rajaput123/SevaBookingService/internal/service/bookings/models"
)

type fakeLogger struct{}

func (fakeLogger) Info(string, ...interface{})  {}
func (fakeLogger) Warn(string, ...interface{})  {}
func (fakeLogger) Error(string, ...interface{}) {}

type fakeBookingRepo struct {
	booking      *domain.SevaBooking
	getErr       error
	cancelled    bool
	cancelReason string
}

func (r *fakeBookingRepo) GetByID(_ context.Context, _ int64) (*domain.SevaBooking, error) {
	if r.getErr != nil {
		return nil, r.getErr
	}
	return r.booking, nil
}

func (r *fakeBookingRepo) GetByDevoteeID(_ context.Context, _ int64, _ *domain.BookingStatus) ([]*domain.SevaBooking, error) {
	if r.booking == nil {
		return nil, nil
	}
	return []*domain.SevaBooking{r.booking}, nil
}

func (r *fakeBookingRepo) GetByOfferingWithFilter(_ context.Context, _ domain.OfferingBookingsFilter) ([]*domain.SevaBooking, error) {
	if r.booking == nil {
		return nil, nil
	}
	return []*domain.SevaBooking{r.booking}, nil
}

func (r *fakeBookingRepo) UpdateStatus(_ context.Context, _ int64, _ domain.BookingStatus) error {
	return nil
}

func (r *fakeBookingRepo) Cancel(_ context.Context, _ int64, reason string) error {
	r.cancelled = true
	r.cancelReason = reason
	return nil
}

type fakeDevoteeClient struct {
	devotees map[int64]*devoteeservice.Devotee
}

func (c *fakeDevoteeClient) GetDevotee(_ context.Context, id int64) (*devoteeservice.Devotee, error) {
	d, ok := c.devotees[id]
	if !ok {
		return nil, devoteeservice.ErrDevoteeNotFound
	}
	return d, nil
}

const (
	ownerID   = int64(7)
	adminID   = int64(1)
	otherID   = int64(8)
	bookingID = int64(42)
)

func testBooking(status domain.BookingStatus) *domain.SevaBooking {
	return &domain.SevaBooking{
		ID:            bookingID,
		Reference:     "ref-42",
		DevoteeID:     ownerID,
		OfferingID:    12,
		Date:          time.Date(2025, 10, 13, 0, 0, 0, 0, time.UTC),
		SlotStartTime: "09:30",
		Status:        status,
	}
}

func newTestService(repo *fakeBookingRepo) *Service {
	client := &fakeDevoteeClient{devotees: map[int64]*devoteeservice.Devotee{
		ownerID: {ID: ownerID, Name: "Ramesh"},
		adminID: {ID: adminID, Name: "Priest", IsTempleAdmin: true},
		otherID: {ID: otherID, Name: "Suresh"},
	}}
	return NewService(repo, client, fakeLogger{})
}

func TestGetByID_OwnerHasAccess(t *testing.T) {
	svc := newTestService(&fakeBookingRepo{booking: testBooking(domain.StatusConfirmed)})

	resp, err := svc.GetByID(context.Background(), bookingID, ownerID)
	require.NoError(t, err)
	assert.Equal(t, bookingID, resp.ID)
	assert.Equal(t, "ref-42", resp.Reference)
}

func TestGetByID_AdminHasAccess(t *testing.T) {
	svc := newTestService(&fakeBookingRepo{booking: testBooking(domain.StatusConfirmed)})

	_, err := svc.GetByID(context.Background(), bookingID, adminID)
	assert.NoError(t, err)
}

func TestGetByID_OtherDevoteeDenied(t *testing.T) {
	svc := newTestService(&fakeBookingRepo{booking: testBooking(domain.StatusConfirmed)})

	_, err := svc.GetByID(context.Background(), bookingID, otherID)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetByID_NotFound(t *testing.T) {
	svc := newTestService(&fakeBookingRepo{getErr: bookingRepo.ErrBookingNotFound})

	_, err := svc.GetByID(context.Background(), bookingID, ownerID)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestCancel_OwnerCancelsConfirmed(t *testing.T) {
	repo := &fakeBookingRepo{booking: testBooking(domain.StatusConfirmed)}
	svc := newTestService(repo)

	err := svc.Cancel(context.Background(), bookingID, &models.CancelBookingRequest{
		DevoteeID:          ownerID,
		CancellationReason: "travel plans changed",
	})
	require.NoError(t, err)
	assert.True(t, repo.cancelled)
	assert.Equal(t, "travel plans changed", repo.cancelReason)
}

func TestCancel_CompletedNotCancellable(t *testing.T) {
	svc := newTestService(&fakeBookingRepo{booking: testBooking(domain.StatusCompleted)})

	err := svc.Cancel(context.Background(), bookingID, &models.CancelBookingRequest{DevoteeID: ownerID})
	assert.ErrorIs(t, err, ErrCannotCancel)
}

func TestCancel_OtherDevoteeDenied(t *testing.T) {
	repo := &fakeBookingRepo{booking: testBooking(domain.StatusConfirmed)}
	svc := newTestService(repo)

	err := svc.Cancel(context.Background(), bookingID, &models.CancelBookingRequest{DevoteeID: otherID})
	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.False(t, repo.cancelled)
}

func TestGetDevoteeBookings_SelfAndAdmin(t *testing.T) {
	svc := newTestService(&fakeBookingRepo{booking: testBooking(domain.StatusConfirmed)})

	resp, err := svc.GetDevoteeBookings(context.Background(),
		&models.GetDevoteeBookingsRequest{DevoteeID: ownerID}, ownerID)
	require.NoError(t, err)
	assert.Len(t, resp.Bookings, 1)

	_, err = svc.GetDevoteeBookings(context.Background(),
		&models.GetDevoteeBookingsRequest{DevoteeID: ownerID}, adminID)
	assert.NoError(t, err)

	_, err = svc.GetDevoteeBookings(context.Background(),
		&models.GetDevoteeBookingsRequest{DevoteeID: ownerID}, otherID)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetOfferingBookings_AdminOnly(t *testing.T) {
	svc := newTestService(&fakeBookingRepo{booking: testBooking(domain.StatusConfirmed)})

	resp, err := svc.GetOfferingBookings(context.Background(), &models.GetOfferingBookingsRequest{
		DevoteeID:  adminID,
		OfferingID: 12,
	})
	require.NoError(t, err)
	assert.Len(t, resp.Bookings, 1)

	_, err = svc.GetOfferingBookings(context.Background(), &models.GetOfferingBookingsRequest{
		DevoteeID:  ownerID,
		OfferingID: 12,
	})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetOfferingBookings_InvalidStatus(t *testing.T) {
	svc := newTestService(&fakeBookingRepo{booking: testBooking(domain.StatusConfirmed)})

	bad := "pending"
	_, err := svc.GetOfferingBookings(context.Background(), &models.GetOfferingBookingsRequest{
		DevoteeID:  adminID,
		OfferingID: 12,
		Status:     &bad,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
