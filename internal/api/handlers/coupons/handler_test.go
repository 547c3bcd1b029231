package coupons

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	couponService "github.com/m04kA/TurfBookingService/internal/service/coupons"
	"github.com/m04kA/TurfBookingService/internal/service/coupons/models"
)

type fakeService struct {
	CouponService
	created   *models.CreateCouponRequest
	createErr error
	deleteErr error
}

func (f *fakeService) Create(_ context.Context, req *models.CreateCouponRequest) (*models.CouponResponse, error) {
	f.created = req
	if f.createErr != nil {
		return nil, f.createErr
	}
	return &models.CouponResponse{ID: 1, Code: "WELCOME100", Type: req.Type, Value: req.Value, IsActive: true}, nil
}

func (f *fakeService) Delete(context.Context, int64) error {
	return f.deleteErr
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

const validCoupon = `{"code":"welcome100","type":"FLAT","value":100,"expiryDate":"2025-12-31","validSlots":["18:00"]}`

func createRequest(body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/coupons", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestCreate(t *testing.T) {
	svc := &fakeService{}
	rec := httptest.NewRecorder()
	NewHandler(svc, nopLogger{}).Create(rec, createRequest(validCoupon))

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	require.NotNil(t, svc.created)
	assert.Equal(t, "welcome100", svc.created.Code)
	assert.Equal(t, []string{"18:00"}, svc.created.ValidSlots)
}

func TestCreate_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		err        error
		wantStatus int
	}{
		{name: "broken json", body: `{"code":`, wantStatus: http.StatusBadRequest},
		{name: "unknown type", body: `{"code":"X","type":"BOGO","value":1,"expiryDate":"2025-12-31"}`, wantStatus: http.StatusBadRequest},
		{name: "bad slot", body: `{"code":"X","type":"FLAT","value":1,"expiryDate":"2025-12-31","validSlots":["6pm"]}`, wantStatus: http.StatusBadRequest},
		{name: "duplicate", body: validCoupon, err: couponService.ErrDuplicateCode, wantStatus: http.StatusConflict},
		{name: "service validation", body: validCoupon, err: couponService.ErrInvalidInput, wantStatus: http.StatusBadRequest},
		{name: "internal", body: validCoupon, err: couponService.ErrInternal, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			NewHandler(&fakeService{createErr: tt.err}, nopLogger{}).Create(rec, createRequest(tt.body))
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestDelete(t *testing.T) {
	req := mux.SetURLVars(httptest.NewRequest(http.MethodDelete, "/api/v1/admin/coupons/3", nil), map[string]string{"id": "3"})

	rec := httptest.NewRecorder()
	NewHandler(&fakeService{}, nopLogger{}).Delete(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), msgCouponDeleted)

	rec = httptest.NewRecorder()
	NewHandler(&fakeService{deleteErr: couponService.ErrCouponNotFound}, nopLogger{}).Delete(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
