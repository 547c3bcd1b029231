package manual_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/TurfBookingService/internal/domain"
	"github.com/m04kA/TurfBookingService/pkg/ptr"
	"github.com/m04kA/TurfBookingService/pkg/types"
)

type fakeReservations struct {
	rows   []*domain.Reservation
	nextID int64
}

func (f *fakeReservations) GetActiveByDate(_ context.Context, date time.Time) ([]*domain.Reservation, error) {
	result := make([]*domain.Reservation, 0)
	for _, r := range f.rows {
		if r.Date.Equal(date) && r.IsActive() {
			result = append(result, r)
		}
	}
	return result, nil
}

func (f *fakeReservations) Create(_ context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	f.nextID++
	saved := *res
	saved.ID = f.nextID
	f.rows = append(f.rows, &saved)
	return &saved, nil
}

type countingSweeper struct{ calls int }

func (s *countingSweeper) SweepStale(context.Context) int64 {
	s.calls++
	return 0
}

type passThroughTx struct{}

func (passThroughTx) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var testDate = time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

func TestExecute_CreatesConfirmedCashBooking(t *testing.T) {
	repo := &fakeReservations{nextID: 10}
	sweeper := &countingSweeper{}
	uc := NewUseCase(repo, sweeper, passThroughTx{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		Date: testDate, StartTime: "18:00", EndTime: "20:00",
		Sport: "Cricket", Amount: 3000, GuestName: ptr.Ptr("Walk-in"), GuestPhone: ptr.Ptr("9000000000"),
	})
	require.NoError(t, err)

	assert.Equal(t, 1, sweeper.calls)
	assert.Equal(t, int64(11), resp.Reservation.ID)
	assert.Equal(t, domain.StatusConfirmed, resp.Reservation.Status)
	assert.Equal(t, domain.PaymentCash, resp.Reservation.PaymentMode)
	assert.Nil(t, resp.Reservation.UserID)
}

func TestExecute_RejectsOverlap(t *testing.T) {
	tests := []struct {
		name     string
		start    string
		end      string
		conflict bool
	}{
		{name: "same slot", start: "18:00", end: "19:00", conflict: true},
		{name: "contains existing", start: "17:00", end: "20:00", conflict: true},
		{name: "partial", start: "18:30", end: "19:30", conflict: true},
		{name: "touches end", start: "19:00", end: "20:00", conflict: false},
		{name: "touches start", start: "17:00", end: "18:00", conflict: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeReservations{rows: []*domain.Reservation{
				{ID: 1, Date: testDate, StartTime: "18:00", EndTime: "19:00", Status: domain.StatusPending},
			}}
			uc := NewUseCase(repo, &countingSweeper{}, passThroughTx{}, nopLogger{})

			_, err := uc.Execute(context.Background(), &Request{
				Date: testDate, StartTime: types.TimeString(tt.start), EndTime: types.TimeString(tt.end), Sport: "Football", Amount: 1500,
			})
			if tt.conflict {
				assert.ErrorIs(t, err, ErrSlotUnavailable)
				assert.ErrorIs(t, err, domain.ErrConflict)
				assert.Len(t, repo.rows, 1)
				return
			}
			require.NoError(t, err)
			assert.Len(t, repo.rows, 2)
		})
	}
}

func TestExecute_Validation(t *testing.T) {
	uc := NewUseCase(&fakeReservations{}, &countingSweeper{}, passThroughTx{}, nopLogger{})

	tests := []struct {
		name string
		req  *Request
	}{
		{name: "no date", req: &Request{StartTime: "18:00", EndTime: "19:00", Sport: "Football", Amount: 1}},
		{name: "no sport", req: &Request{Date: testDate, StartTime: "18:00", EndTime: "19:00", Amount: 1}},
		{name: "zero amount", req: &Request{Date: testDate, StartTime: "18:00", EndTime: "19:00", Sport: "Football"}},
		{name: "reversed interval", req: &Request{Date: testDate, StartTime: "19:00", EndTime: "18:00", Sport: "Football", Amount: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
