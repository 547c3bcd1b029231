package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/TurfBookingService/internal/domain"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", fmt.Errorf("%w: bad", domain.ErrValidation), http.StatusBadRequest},
		{"conflict", fmt.Errorf("%w: taken", domain.ErrConflict), http.StatusConflict},
		{"external", fmt.Errorf("%w: down", domain.ErrExternalService), http.StatusBadGateway},
		{"not found", fmt.Errorf("%w: missing", domain.ErrNotFound), http.StatusNotFound},
		{"authorization", fmt.Errorf("%w: denied", domain.ErrAuthorization), http.StatusForbidden},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusFromError(tt.err))
		})
	}
}

func TestRespondDomainError_HidesInternalDetails(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondDomainError(rec, errors.New("pq: connection refused"), "should not leak")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"code":500,"message":"Server Error"}`, rec.Body.String())
}

func TestDecodeJSON(t *testing.T) {
	var dst struct {
		Name string `json:"name"`
	}

	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"Arena","extra":1}`))
	require.NoError(t, DecodeJSON(r, &dst))
	assert.Equal(t, "Arena", dst.Name)

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":`))
	assert.Error(t, DecodeJSON(r, &dst))
}

func TestPathInt64(t *testing.T) {
	r := mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/", nil), map[string]string{"id": "42"})
	id, err := PathInt64(r, "id")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	r = mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/", nil), map[string]string{"id": "-1"})
	_, err = PathInt64(r, "id")
	assert.Error(t, err)

	_, err = PathInt64(httptest.NewRequest(http.MethodGet, "/", nil), "id")
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	type request struct {
		Date  string   `json:"date" validate:"required,date"`
		Slots []string `json:"slots" validate:"omitempty,dive,slot"`
		Start string   `json:"startTime" validate:"omitempty,hhmm"`
		Role  string   `json:"role" validate:"omitempty,oneof=ADMIN USER"`
	}

	tests := []struct {
		name    string
		req     request
		wantErr string
	}{
		{name: "valid", req: request{Date: "2025-03-10", Slots: []string{"18:00-19:00"}, Start: "06:30"}},
		{name: "missing date", req: request{}, wantErr: "date is required"},
		{name: "bad date", req: request{Date: "10/03/2025"}, wantErr: "date must be a date in YYYY-MM-DD format"},
		{name: "bad slot", req: request{Date: "2025-03-10", Slots: []string{"19:00-18:00"}}, wantErr: "slots[0] must be a slot in HH:MM-HH:MM format"},
		{name: "bad time", req: request{Date: "2025-03-10", Start: "25:00"}, wantErr: "startTime must be a time in HH:MM format"},
		{name: "bad role", req: request{Date: "2025-03-10", Role: "ROOT"}, wantErr: "role must be one of: ADMIN USER"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(&tt.req)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.wantErr, err.Error())
		})
	}
}
