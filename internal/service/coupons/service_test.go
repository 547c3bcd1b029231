package coupons

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/TurfBookingService/internal/domain"
	couponRepo "github.com/m04kA/TurfBookingService/internal/infra/storage/coupon"
	"github.com/m04kA/TurfBookingService/internal/service/coupons/models"
	"github.com/m04kA/TurfBookingService/pkg/ptr"
)

type fakeRepo struct {
	byCode  map[string]*domain.Coupon
	nextID  int64
	listErr error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{byCode: map[string]*domain.Coupon{}}
}

func (f *fakeRepo) Create(_ context.Context, c *domain.Coupon) (*domain.Coupon, error) {
	if _, ok := f.byCode[c.Code]; ok {
		return nil, couponRepo.ErrDuplicateCode
	}
	f.nextID++
	c.ID = f.nextID
	f.byCode[c.Code] = c
	return c, nil
}

func (f *fakeRepo) List(context.Context) ([]*domain.Coupon, error) {
	result := make([]*domain.Coupon, 0, len(f.byCode))
	for _, c := range f.byCode {
		result = append(result, c)
	}
	return result, f.listErr
}

func (f *fakeRepo) Delete(_ context.Context, id int64) error {
	for code, c := range f.byCode {
		if c.ID == id {
			delete(f.byCode, code)
			return nil
		}
	}
	return couponRepo.ErrCouponNotFound
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func validRequest() *models.CreateCouponRequest {
	return &models.CreateCouponRequest{
		Code:       " summer10 ",
		Type:       "PERCENTAGE",
		Value:      10,
		ExpiryDate: "2025-12-31",
		MaxUsage:   ptr.Ptr(0),
		ValidDate:  ptr.Ptr("2025-06-01T00:00:00.000Z"),
		ValidSlots: []string{"18:00", "19:00"},
	}
}

func TestCreate(t *testing.T) {
	svc := NewService(newFakeRepo(), nopLogger{})

	resp, err := svc.Create(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, "SUMMER10", resp.Code)
	assert.True(t, resp.IsActive)
	assert.Nil(t, resp.MaxUsage, "zero usage limit means unlimited")
	require.NotNil(t, resp.ValidDate)
	assert.Equal(t, "2025-06-01", *resp.ValidDate)
	assert.Equal(t, []string{"18:00", "19:00"}, resp.ValidSlots)

	// 2025-12-31 23:59:59 IST
	assert.True(t, resp.ExpiryDate.Equal(time.Date(2025, 12, 31, 18, 29, 59, 999999999, time.UTC)))
}

func TestCreate_DuplicateCode(t *testing.T) {
	svc := NewService(newFakeRepo(), nopLogger{})

	_, err := svc.Create(context.Background(), validRequest())
	require.NoError(t, err)

	req := validRequest()
	req.Code = "Summer10"
	_, err = svc.Create(context.Background(), req)
	assert.ErrorIs(t, err, ErrDuplicateCode)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestCreate_Validation(t *testing.T) {
	tests := []struct {
		name   string
		modify func(r *models.CreateCouponRequest)
	}{
		{name: "blank code", modify: func(r *models.CreateCouponRequest) { r.Code = "  " }},
		{name: "unknown type", modify: func(r *models.CreateCouponRequest) { r.Type = "BOGO" }},
		{name: "zero value", modify: func(r *models.CreateCouponRequest) { r.Value = 0 }},
		{name: "percentage above 100", modify: func(r *models.CreateCouponRequest) { r.Value = 120 }},
		{name: "missing expiry", modify: func(r *models.CreateCouponRequest) { r.ExpiryDate = "" }},
		{name: "bad valid date", modify: func(r *models.CreateCouponRequest) { r.ValidDate = ptr.Ptr("June 1") }},
		{name: "bad slot", modify: func(r *models.CreateCouponRequest) { r.ValidSlots = []string{"6pm"} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(newFakeRepo(), nopLogger{})
			req := validRequest()
			tt.modify(req)

			_, err := svc.Create(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestDelete(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, nopLogger{})

	created, err := svc.Create(context.Background(), validRequest())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), created.ID))
	assert.ErrorIs(t, svc.Delete(context.Background(), created.ID), ErrCouponNotFound)
}

func TestList_StorageError(t *testing.T) {
	repo := newFakeRepo()
	repo.listErr = errors.New("boom")
	svc := NewService(repo, nopLogger{})

	_, err := svc.List(context.Background())
	assert.ErrorIs(t, err, ErrInternal)
}
