package pricing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/TurfBookingService/internal/domain"
	"github.com/m04kA/TurfBookingService/pkg/ptr"
	"github.com/m04kA/TurfBookingService/pkg/types"
)

var now = time.Date(2025, 3, 9, 10, 0, 0, 0, time.UTC)

func activeCoupon() *domain.Coupon {
	return &domain.Coupon{
		ID:         1,
		Code:       "SAVE200",
		Type:       domain.CouponFlat,
		Value:      200,
		ExpiryDate: now.Add(24 * time.Hour),
		IsActive:   true,
	}
}

func TestEvaluateCoupon_Flat(t *testing.T) {
	res, err := EvaluateCoupon(activeCoupon(), 1500, Check{}, now)

	require.NoError(t, err)
	assert.Equal(t, 200.0, res.Discount)
	assert.Equal(t, 1300.0, res.FinalAmount)
}

func TestEvaluateCoupon_FlatNeverNegative(t *testing.T) {
	res, err := EvaluateCoupon(activeCoupon(), 150, Check{}, now)

	require.NoError(t, err)
	assert.Equal(t, 0.0, res.FinalAmount)
}

func TestEvaluateCoupon_PercentageCapped(t *testing.T) {
	c := activeCoupon()
	c.Type = domain.CouponPercentage
	c.Value = 10
	c.MaxDiscount = ptr.Ptr(100.0)

	res, err := EvaluateCoupon(c, 2000, Check{}, now)

	require.NoError(t, err)
	assert.Equal(t, 100.0, res.Discount)
	assert.Equal(t, 1900.0, res.FinalAmount)

	c.MaxDiscount = nil
	res, err = EvaluateCoupon(c, 2000, Check{}, now)
	require.NoError(t, err)
	assert.Equal(t, 200.0, res.Discount)
	assert.Equal(t, 1800.0, res.FinalAmount)
}

func TestEvaluateCoupon_ValidationOrder(t *testing.T) {
	bookingDate := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	otherDate := time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		coupon  func() *domain.Coupon
		check   Check
		wantErr error
		kind    error
	}{
		{
			name:    "missing",
			coupon:  func() *domain.Coupon { return nil },
			wantErr: ErrCouponNotFound,
			kind:    domain.ErrNotFound,
		},
		{
			name: "inactive wins over usage limit",
			coupon: func() *domain.Coupon {
				c := activeCoupon()
				c.IsActive = false
				c.MaxUsage = ptr.Ptr(1)
				c.TotalUsage = 5
				return c
			},
			wantErr: ErrCouponInactive,
			kind:    domain.ErrValidation,
		},
		{
			name: "expired",
			coupon: func() *domain.Coupon {
				c := activeCoupon()
				c.ExpiryDate = now.Add(-time.Minute)
				return c
			},
			wantErr: ErrCouponInactive,
			kind:    domain.ErrValidation,
		},
		{
			name: "usage limit wins over date",
			coupon: func() *domain.Coupon {
				c := activeCoupon()
				c.MaxUsage = ptr.Ptr(3)
				c.TotalUsage = 3
				c.ValidDate = &otherDate
				return c
			},
			check:   Check{BookingDate: &bookingDate},
			wantErr: ErrCouponUsageLimit,
			kind:    domain.ErrConflict,
		},
		{
			name: "date wins over slots",
			coupon: func() *domain.Coupon {
				c := activeCoupon()
				c.ValidDate = &otherDate
				c.ValidSlots = []string{"06:00"}
				return c
			},
			check:   Check{BookingDate: &bookingDate, RequestedStarts: []types.TimeString{"18:00"}},
			wantErr: ErrCouponWrongDate,
			kind:    domain.ErrValidation,
		},
		{
			name: "slot restriction",
			coupon: func() *domain.Coupon {
				c := activeCoupon()
				c.ValidSlots = []string{"06:00", "07:00"}
				return c
			},
			check:   Check{BookingDate: &bookingDate, RequestedStarts: []types.TimeString{"06:00", "18:00"}},
			wantErr: ErrCouponWrongSlot,
			kind:    domain.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := EvaluateCoupon(tt.coupon(), 1500, tt.check, now)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, tt.kind)
		})
	}
}

func TestEvaluateCoupon_ValidOnlyChecksSkipRestrictions(t *testing.T) {
	otherDate := time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC)
	c := activeCoupon()
	c.ValidDate = &otherDate
	c.ValidSlots = []string{"06:00"}

	_, err := EvaluateCoupon(c, 1500, Check{}, now)
	assert.NoError(t, err)
}

func TestEvaluateCoupon_DoesNotTouchUsage(t *testing.T) {
	c := activeCoupon()
	c.MaxUsage = ptr.Ptr(2)
	c.TotalUsage = 1

	for i := 0; i < 3; i++ {
		_, err := EvaluateCoupon(c, 1500, Check{}, now)
		require.NoError(t, err)
	}
	assert.Equal(t, 1, c.TotalUsage)
}

func TestSplitAmount_Conservation(t *testing.T) {
	tests := []struct {
		total float64
		n     int
	}{
		{1000, 3},
		{1300, 2},
		{1999.99, 7},
		{0.01, 3},
		{4500, 3},
	}

	for _, tt := range tests {
		parts := SplitAmount(tt.total, tt.n)
		require.Len(t, parts, tt.n)
		assert.Equal(t, ToPaise(tt.total), ToPaise(Sum(parts)), "total=%v n=%d", tt.total, tt.n)
	}
}

func TestSplitAmount_LastAbsorbsRemainder(t *testing.T) {
	parts := SplitAmount(1000, 3)

	assert.Equal(t, []float64{333.33, 333.33, 333.34}, parts)
	assert.Nil(t, SplitAmount(1000, 0))
}

func TestUserMessage(t *testing.T) {
	otherDate := time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC)
	bookingDate := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	c := activeCoupon()
	c.ValidDate = &otherDate

	_, err := EvaluateCoupon(c, 1500, Check{BookingDate: &bookingDate}, now)

	assert.Equal(t, "This coupon is only valid for 2025-03-11.", UserMessage(err))
	assert.Equal(t, "Invalid coupon code.", UserMessage(ErrCouponNotFound))
	assert.Equal(t, "", UserMessage(assert.AnError))
}
