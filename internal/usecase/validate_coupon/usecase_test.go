package validate_coupon

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/TurfBookingService/internal/domain"
	couponRepo "github.com/m04kA/TurfBookingService/internal/infra/storage/coupon"
	"github.com/m04kA/TurfBookingService/internal/service/pricing"
	"github.com/m04kA/TurfBookingService/pkg/ptr"
)

type fakeCoupons struct{ coupons map[string]*domain.Coupon }

func (f *fakeCoupons) GetByCode(_ context.Context, code string) (*domain.Coupon, error) {
	if c, ok := f.coupons[code]; ok {
		return c, nil
	}
	return nil, couponRepo.ErrCouponNotFound
}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newUseCase(now time.Time) *UseCase {
	repo := &fakeCoupons{coupons: map[string]*domain.Coupon{
		"FLAT300": {ID: 1, Code: "FLAT300", Type: domain.CouponFlat, Value: 300, ExpiryDate: now.Add(time.Hour), IsActive: true},
		"EVENING": {ID: 2, Code: "EVENING", Type: domain.CouponPercentage, Value: 20, ExpiryDate: now.Add(time.Hour), IsActive: true,
			ValidSlots: []string{"18:00", "19:00"}},
		"USEDUP": {ID: 3, Code: "USEDUP", Type: domain.CouponFlat, Value: 100, ExpiryDate: now.Add(time.Hour), IsActive: true,
			MaxUsage: ptr.Ptr(2), TotalUsage: 2},
	}}
	uc := NewUseCase(repo, nopLogger{})
	uc.timeProvider = fixedTime{now: now}
	return uc
}

func TestExecute(t *testing.T) {
	now := time.Date(2025, 3, 10, 6, 0, 0, 0, time.UTC)
	user := ptr.Ptr(int64(9))

	tests := []struct {
		name      string
		req       *Request
		wantErr   error
		wantFinal float64
		wantMsg   string
	}{
		{name: "flat", req: &Request{UserID: user, Code: "FLAT300", Amount: 1500}, wantFinal: 1200},
		{name: "flat never negative", req: &Request{UserID: user, Code: "FLAT300", Amount: 200}, wantFinal: 0},
		{name: "slot restriction skipped without slots", req: &Request{UserID: user, Code: "EVENING", Amount: 1500}, wantFinal: 1200},
		{name: "slot restriction applied", req: &Request{UserID: user, Code: "EVENING", Amount: 1500, Slots: []string{"07:00-08:00"}},
			wantErr: pricing.ErrCouponWrongSlot, wantMsg: "This coupon is only valid for specific slots: 18:00, 19:00"},
		{name: "unknown", req: &Request{UserID: user, Code: "NOPE", Amount: 1500},
			wantErr: pricing.ErrCouponNotFound, wantMsg: "Invalid coupon code."},
		{name: "usage limit", req: &Request{UserID: user, Code: "USEDUP", Amount: 1500},
			wantErr: pricing.ErrCouponUsageLimit, wantMsg: "Coupon usage limit reached."},
		{name: "anonymous", req: &Request{Code: "FLAT300", Amount: 1500}, wantErr: ErrLoginRequired},
		{name: "empty code", req: &Request{UserID: user, Code: "  ", Amount: 1500}, wantErr: ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := newUseCase(now).Execute(context.Background(), tt.req)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				if tt.wantMsg != "" {
					assert.Equal(t, tt.wantMsg, pricing.UserMessage(err))
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantFinal, resp.FinalAmount)
		})
	}
}
