package venue

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/TurfBookingService/internal/domain"
	"github.com/m04kA/TurfBookingService/internal/service/venue/models"
)

type fakePricing struct {
	overrides []domain.PricingOverride
	merged    map[string][]domain.PricingOverride
	rangeFrom time.Time
	rangeTo   time.Time
}

func (f *fakePricing) GetByDate(_ context.Context, date time.Time) ([]domain.PricingOverride, error) {
	result := make([]domain.PricingOverride, 0)
	for _, o := range f.overrides {
		if o.Date.Equal(date) {
			result = append(result, o)
		}
	}
	return result, nil
}

func (f *fakePricing) GetByDateRange(_ context.Context, from, to time.Time) ([]domain.PricingOverride, error) {
	f.rangeFrom, f.rangeTo = from, to
	return f.overrides, nil
}

func (f *fakePricing) Merge(_ context.Context, date time.Time, entries []domain.PricingOverride) error {
	if f.merged == nil {
		f.merged = map[string][]domain.PricingOverride{}
	}
	f.merged[domain.FormatDate(date)] = entries
	return nil
}

type fakeReservations struct{ active []*domain.Reservation }

func (f *fakeReservations) GetActiveByDate(context.Context, time.Time) ([]*domain.Reservation, error) {
	return f.active, nil
}

type fakeSettings struct {
	values   map[string]string
	upserted []domain.Setting
	deleted  []string
	err      error
}

func (f *fakeSettings) GetAll(context.Context) (map[string]string, error) {
	return f.values, f.err
}

func (f *fakeSettings) GetByPrefix(_ context.Context, prefix string) (map[string]string, error) {
	result := map[string]string{}
	for k, v := range f.values {
		if len(k) >= len(prefix) && k[:len(prefix)] == prefix {
			result[k] = v
		}
	}
	return result, f.err
}

func (f *fakeSettings) Upsert(_ context.Context, settings []domain.Setting) error {
	f.upserted = append(f.upserted, settings...)
	return f.err
}

func (f *fakeSettings) Delete(_ context.Context, key string) error {
	f.deleted = append(f.deleted, key)
	delete(f.values, key)
	return nil
}

type fakeBlockLogs struct{ limit int }

func (f *fakeBlockLogs) List(_ context.Context, limit int) ([]*domain.BlockLogEntry, error) {
	f.limit = limit
	return []*domain.BlockLogEntry{{
		ID:         1,
		CreatedAt:  time.Date(2025, 3, 9, 10, 0, 0, 0, time.UTC),
		TargetDate: time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		Slot:       "18:00-19:00",
		Action:     domain.ActionBlocked,
		AdminName:  "Admin",
	}}, nil
}

type countingSweeper struct{ calls int }

func (s *countingSweeper) SweepStale(context.Context) int64 {
	s.calls++
	return 0
}

type passThroughTx struct{}

func (passThroughTx) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixture struct {
	svc          *Service
	pricing      *fakePricing
	reservations *fakeReservations
	settings     *fakeSettings
	logs         *fakeBlockLogs
	sweeper      *countingSweeper
}

func newFixture() *fixture {
	f := &fixture{
		pricing:      &fakePricing{},
		reservations: &fakeReservations{},
		settings:     &fakeSettings{values: map[string]string{}},
		logs:         &fakeBlockLogs{},
		sweeper:      &countingSweeper{},
	}
	f.svc = NewService(f.pricing, f.reservations, f.settings, f.logs, f.sweeper, passThroughTx{}, 1500, nopLogger{})
	// 2025-03-10 14:10 IST
	f.svc.timeProvider = fixedTime{now: time.Date(2025, 3, 10, 8, 40, 0, 0, time.UTC)}
	return f
}

func TestGetTurfInfo_MinPriceSkipsBlockedSlots(t *testing.T) {
	f := newFixture()
	day := time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC)
	f.pricing.overrides = []domain.PricingOverride{
		{Date: day, Slot: "07:00-08:00", Price: 800},
		{Date: day, Slot: "08:00-09:00", Price: 500, IsBlocked: true},
	}
	f.settings.values[models.KeyContactNumber] = "+91 9000000000"

	resp, err := f.svc.GetTurfInfo(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 800.0, resp.MinPrice)
	assert.Equal(t, "6:00 AM", resp.OpenTime)
	assert.Equal(t, "12:00 AM", resp.CloseTime)
	assert.Equal(t, "+91 9000000000", resp.Contacts[models.KeyContactNumber])
	assert.Equal(t, models.DefaultContactSettings[models.KeyAddress], resp.Contacts[models.KeyAddress])

	assert.Equal(t, "2025-03-10", domain.FormatDate(f.pricing.rangeFrom))
	assert.Equal(t, "2025-03-23", domain.FormatDate(f.pricing.rangeTo))
}

func TestGetTurfInfo_DefaultPriceWithoutOverrides(t *testing.T) {
	f := newFixture()

	resp, err := f.svc.GetTurfInfo(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1500.0, resp.MinPrice)
}

func TestGetPublicSettings(t *testing.T) {
	t.Run("defaults for empty table", func(t *testing.T) {
		f := newFixture()

		got, err := f.svc.GetPublicSettings(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "1000", got["hourlyRate"])
		assert.Equal(t, "1500", got["peakHourRate"])
	})

	t.Run("legacy pricing keys are hidden", func(t *testing.T) {
		f := newFixture()
		f.settings.values = map[string]string{
			"address":                   "Somewhere",
			"CUSTOM_PRICING_2025-03-10": "{}",
		}

		got, err := f.svc.GetPublicSettings(context.Background())
		require.NoError(t, err)
		assert.Equal(t, map[string]string{"address": "Somewhere"}, got)
	})

	t.Run("storage error", func(t *testing.T) {
		f := newFixture()
		f.settings.err = errors.New("boom")

		_, err := f.svc.GetPublicSettings(context.Background())
		assert.ErrorIs(t, err, ErrInternal)
	})
}

func TestUpdateSettings(t *testing.T) {
	f := newFixture()

	err := f.svc.UpdateSettings(context.Background(), map[string]string{"instagramUrl": "https://ig", "address": "New"})
	require.NoError(t, err)
	assert.Equal(t, []domain.Setting{{Key: "address", Value: "New"}, {Key: "instagramUrl", Value: "https://ig"}}, f.settings.upserted)

	err = f.svc.UpdateSettings(context.Background(), map[string]string{"CUSTOM_PRICING_2025-03-10": "{}"})
	assert.ErrorIs(t, err, ErrReservedKey)
	assert.ErrorIs(t, err, domain.ErrValidation)

	err = f.svc.UpdateSettings(context.Background(), nil)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetPricingView(t *testing.T) {
	f := newFixture()
	day := time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC)
	f.pricing.overrides = []domain.PricingOverride{{Date: day, Slot: "18:00-19:00", Price: 2000, IsBlocked: true}}
	f.reservations.active = []*domain.Reservation{
		{ID: 7, Date: day, StartTime: "09:00", EndTime: "10:00", Status: domain.StatusConfirmed, Amount: 1500},
	}

	resp, err := f.svc.GetPricingView(context.Background(), day)
	require.NoError(t, err)

	assert.Equal(t, 1, f.sweeper.calls)
	assert.Equal(t, "2025-03-11", resp.Date)
	require.Len(t, resp.Overrides, 1)
	require.Len(t, resp.Bookings, 1)
	assert.Equal(t, int64(7), resp.Bookings[0].ID)
	require.Len(t, resp.Slots, domain.DefaultSlotCount)

	for _, s := range resp.Slots {
		switch s.StartTime {
		case "09:00":
			assert.True(t, s.IsHardBooked)
		case "18:00":
			assert.True(t, s.IsAdminBlocked)
			assert.Equal(t, 2000.0, s.Price)
		}
	}
}

func TestGetBlockLogs(t *testing.T) {
	f := newFixture()

	logs, err := f.svc.GetBlockLogs(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.BlockLogCap, f.logs.limit)
	require.Len(t, logs, 1)
	assert.Equal(t, "2025-03-10", logs[0].TargetDate)
	assert.Equal(t, "BLOCKED", logs[0].Action)
}

func TestImportLegacyPricing(t *testing.T) {
	f := newFixture()
	f.settings.values = map[string]string{
		"CUSTOM_PRICING_2025-03-10": `[{"slot":"18:00-19:00","price":2000,"isBlocked":false},{"slot":"05:00-06:00","price":900,"isBlocked":true}]`,
		"CUSTOM_PRICING_not-a-date": `[]`,
		"address":                   "Somewhere",
	}

	resp, err := f.svc.ImportLegacyPricing(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, resp.Dates)
	assert.Equal(t, 2, resp.Overrides)
	assert.Equal(t, 1, resp.Skipped)
	assert.Len(t, f.pricing.merged["2025-03-10"], 2)
	assert.Equal(t, []string{"CUSTOM_PRICING_2025-03-10"}, f.settings.deleted)
	assert.Contains(t, f.settings.values, "address")
}
