package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/TurfBookingService/internal/domain"
	reservationRepo "github.com/m04kA/TurfBookingService/internal/infra/storage/reservation"
	"github.com/m04kA/TurfBookingService/internal/service/bookings/models"
	"github.com/m04kA/TurfBookingService/pkg/ptr"
)

type fakeReservations struct {
	rows       map[int64]*domain.Reservation
	lastFilter domain.ReservationFilter
}

func (f *fakeReservations) GetByID(_ context.Context, id int64) (*domain.Reservation, error) {
	if r, ok := f.rows[id]; ok {
		copied := *r
		return &copied, nil
	}
	return nil, reservationRepo.ErrReservationNotFound
}

func (f *fakeReservations) GetByUserID(_ context.Context, userID int64) ([]*domain.Reservation, error) {
	result := make([]*domain.Reservation, 0)
	for _, r := range f.rows {
		if r.UserID != nil && *r.UserID == userID {
			result = append(result, r)
		}
	}
	return result, nil
}

func (f *fakeReservations) List(_ context.Context, filter domain.ReservationFilter) ([]*domain.ReservationWithOwner, error) {
	f.lastFilter = filter
	result := make([]*domain.ReservationWithOwner, 0)
	for _, r := range f.rows {
		if filter.Status != nil && r.Status != *filter.Status {
			continue
		}
		if filter.FromDate != nil && r.Date.Before(*filter.FromDate) {
			continue
		}
		if filter.ToDate != nil && r.Date.After(*filter.ToDate) {
			continue
		}
		result = append(result, &domain.ReservationWithOwner{Reservation: *r, OwnerName: ptr.Ptr("Asha")})
	}
	return result, nil
}

func (f *fakeReservations) Cancel(_ context.Context, id int64) error {
	f.rows[id].Status = domain.StatusCancelled
	return nil
}

func (f *fakeReservations) MarkArrived(_ context.Context, id int64) error {
	f.rows[id].IsArrived = true
	return nil
}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var testDate = time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

func newService() (*Service, *fakeReservations) {
	repo := &fakeReservations{rows: map[int64]*domain.Reservation{
		1: {ID: 1, Date: testDate, StartTime: "18:00", EndTime: "19:00", Status: domain.StatusConfirmed, UserID: ptr.Ptr(int64(7))},
		2: {ID: 2, Date: testDate, StartTime: "15:00", EndTime: "16:00", Status: domain.StatusConfirmed, UserID: ptr.Ptr(int64(7))},
		3: {ID: 3, Date: testDate, StartTime: "10:00", EndTime: "11:00", Status: domain.StatusConfirmed, UserID: ptr.Ptr(int64(7))},
		4: {ID: 4, Date: testDate, StartTime: "20:00", EndTime: "21:00", Status: domain.StatusConfirmed, UserID: ptr.Ptr(int64(8))},
		5: {ID: 5, Date: testDate, StartTime: "21:00", EndTime: "22:00", Status: domain.StatusCancelled, UserID: ptr.Ptr(int64(7))},
		6: {ID: 6, Date: testDate.AddDate(0, 0, 1), StartTime: "06:00", EndTime: "07:00", Status: domain.StatusConfirmed},
	}}
	svc := NewService(repo, nopLogger{})
	// 12:00 IST 10.03.2025
	svc.timeProvider = fixedTime{now: time.Date(2025, 3, 10, 6, 30, 0, 0, time.UTC)}
	return svc, repo
}

func TestCancelByUser(t *testing.T) {
	tests := []struct {
		name      string
		bookingID int64
		userID    int64
		wantErr   error
	}{
		{name: "six hours ahead", bookingID: 1, userID: 7},
		{name: "three hours ahead", bookingID: 2, userID: 7, wantErr: ErrTooLateToCancel},
		{name: "already started", bookingID: 3, userID: 7, wantErr: ErrPastBooking},
		{name: "foreign booking", bookingID: 4, userID: 7, wantErr: ErrAccessDenied},
		{name: "already cancelled", bookingID: 5, userID: 7, wantErr: ErrCannotCancel},
		{name: "guest booking", bookingID: 6, userID: 7, wantErr: ErrAccessDenied},
		{name: "missing", bookingID: 99, userID: 7, wantErr: ErrBookingNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newService()

			resp, err := svc.CancelByUser(context.Background(), tt.bookingID, tt.userID)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "CANCELLED", resp.Status)
			assert.Equal(t, domain.StatusCancelled, repo.rows[tt.bookingID].Status)
		})
	}
}

func TestGetTodayConfirmed(t *testing.T) {
	svc, repo := newService()

	list, err := svc.GetTodayConfirmed(context.Background())
	require.NoError(t, err)

	assert.Len(t, list, 4)
	assert.Equal(t, testDate, *repo.lastFilter.FromDate)
	assert.Equal(t, testDate, *repo.lastFilter.ToDate)
	for _, b := range list {
		assert.Equal(t, "CONFIRMED", b.Status)
		require.NotNil(t, b.User)
		assert.Equal(t, "Asha", *b.User.Name)
	}
}

func TestMarkArrived(t *testing.T) {
	svc, repo := newService()

	resp, err := svc.MarkArrived(context.Background(), 1)
	require.NoError(t, err)
	assert.True(t, resp.IsArrived)
	assert.True(t, repo.rows[1].IsArrived)

	_, err = svc.MarkArrived(context.Background(), 5)
	assert.ErrorIs(t, err, ErrNotActive)

	_, err = svc.MarkArrived(context.Background(), 99)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestList_RejectsReversedRange(t *testing.T) {
	svc, _ := newService()
	from := testDate
	to := testDate.AddDate(0, 0, -1)

	_, err := svc.List(context.Background(), &models.ListRequest{FromDate: &from, ToDate: &to})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetUserBookings(t *testing.T) {
	svc, _ := newService()

	list, err := svc.GetUserBookings(context.Background(), 7)
	require.NoError(t, err)
	assert.Len(t, list, 4)
}
