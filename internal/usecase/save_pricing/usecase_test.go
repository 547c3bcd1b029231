package save_pricing

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/TurfBookingService/internal/domain"
)

// memoryPricing хранит переопределения так же, как таблица с ключом (date, slot)
type memoryPricing struct {
	byDate map[string][]domain.PricingOverride
	failOn string
}

func newMemoryPricing() *memoryPricing {
	return &memoryPricing{byDate: make(map[string][]domain.PricingOverride)}
}

func (m *memoryPricing) Merge(_ context.Context, date time.Time, entries []domain.PricingOverride) error {
	key := domain.FormatDate(date)
	if key == m.failOn {
		return errors.New("connection reset")
	}
	m.byDate[key] = domain.MergeOverrides(m.byDate[key], entries)
	return nil
}

func (m *memoryPricing) ClearDate(_ context.Context, date time.Time) error {
	delete(m.byDate, domain.FormatDate(date))
	return nil
}

type passThroughTx struct{}

func (passThroughTx) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestExecute_MergeKeepsOtherSlots(t *testing.T) {
	repo := newMemoryPricing()
	repo.byDate["2025-03-10"] = []domain.PricingOverride{
		{Slot: "06:00-07:00", Price: 1000},
		{Slot: "18:00-19:00", Price: 1800},
	}
	uc := NewUseCase(repo, passThroughTx{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		Date: time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		Entries: []Entry{
			{Slot: "18:00-19:00", Price: 2200},
			{Slot: "05:00-06:00", Price: 900, IsBlocked: true},
		},
	})
	require.NoError(t, err)
	assert.Len(t, resp.Dates, 1)
	assert.Equal(t, "Pricing saved for today only", resp.Message)

	got := domain.OverridesBySlot(repo.byDate["2025-03-10"])
	require.Len(t, got, 3)
	assert.Equal(t, 1000.0, got["06:00-07:00"].Price)
	assert.Equal(t, 2200.0, got["18:00-19:00"].Price)
	assert.True(t, got["05:00-06:00"].IsBlocked)
}

func TestExecute_ApplyForward(t *testing.T) {
	repo := newMemoryPricing()
	uc := NewUseCase(repo, passThroughTx{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		Date:         time.Date(2025, 2, 20, 0, 0, 0, 0, time.UTC),
		Entries:      []Entry{{Slot: "07:00-08:00", Price: 1200}},
		ApplyForward: true,
	})
	require.NoError(t, err)

	assert.Len(t, resp.Dates, 1+domain.ForwardCopyDays)
	assert.Len(t, repo.byDate, 1+domain.ForwardCopyDays)
	assert.Contains(t, repo.byDate, "2025-03-22")
	assert.NotContains(t, repo.byDate, "2025-03-23")
	assert.Equal(t, "Pricing applied for today and next 30 days", resp.Message)
}

func TestExecute_ReplaceClearsDate(t *testing.T) {
	repo := newMemoryPricing()
	repo.byDate["2025-03-10"] = []domain.PricingOverride{
		{Slot: "06:00-07:00", Price: 1000},
		{Slot: "18:00-19:00", Price: 1800, IsBlocked: true},
	}
	repo.byDate["2025-03-11"] = []domain.PricingOverride{{Slot: "06:00-07:00", Price: 1000}}
	uc := NewUseCase(repo, passThroughTx{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		Date:    time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		Replace: true,
	})
	require.NoError(t, err)

	assert.NotContains(t, repo.byDate, "2025-03-10")
	assert.Len(t, repo.byDate["2025-03-11"], 1)
}

func TestExecute_ReplaceDropsOmittedSlots(t *testing.T) {
	repo := newMemoryPricing()
	repo.byDate["2025-03-10"] = []domain.PricingOverride{
		{Slot: "06:00-07:00", Price: 1000},
		{Slot: "18:00-19:00", Price: 1800},
	}
	uc := NewUseCase(repo, passThroughTx{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		Date:    time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		Entries: []Entry{{Slot: "18:00-19:00", Price: 2200}},
		Replace: true,
	})
	require.NoError(t, err)

	got := domain.OverridesBySlot(repo.byDate["2025-03-10"])
	require.Len(t, got, 1)
	assert.Equal(t, 2200.0, got["18:00-19:00"].Price)
}

func TestExecute_Validation(t *testing.T) {
	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		req  *Request
	}{
		{name: "no date", req: &Request{Entries: []Entry{{Slot: "07:00-08:00", Price: 1}}}},
		{name: "no entries", req: &Request{Date: date}},
		{name: "bad slot", req: &Request{Date: date, Entries: []Entry{{Slot: "7-8", Price: 1}}}},
		{name: "two hour slot", req: &Request{Date: date, Entries: []Entry{{Slot: "07:00-09:00", Price: 1}}}},
		{name: "negative price", req: &Request{Date: date, Entries: []Entry{{Slot: "07:00-08:00", Price: -1}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newMemoryPricing()
			_, err := NewUseCase(repo, passThroughTx{}, nopLogger{}).Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.ErrorIs(t, err, domain.ErrValidation)
			assert.Empty(t, repo.byDate)
		})
	}
}

func TestExecute_StorageError(t *testing.T) {
	repo := newMemoryPricing()
	repo.failOn = "2025-03-12"
	uc := NewUseCase(repo, passThroughTx{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		Date:         time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		Entries:      []Entry{{Slot: "07:00-08:00", Price: 1200}},
		ApplyForward: true,
	})
	assert.ErrorIs(t, err, ErrInternal)
}
