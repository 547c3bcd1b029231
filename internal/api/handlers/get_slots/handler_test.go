package get_slots

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/TurfBookingService/internal/domain"
	getSlots "github.com/m04kA/TurfBookingService/internal/usecase/get_slots"
)

type fakeUseCase struct {
	got  *getSlots.Request
	resp *getSlots.Response
	err  error
}

func (f *fakeUseCase) Execute(_ context.Context, req *getSlots.Request) (*getSlots.Response, error) {
	f.got = req
	return f.resp, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func serve(h *Handler, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_Slots(t *testing.T) {
	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	uc := &fakeUseCase{resp: &getSlots.Response{
		Date: date,
		Slots: []domain.DisplaySlot{
			{StartTime: "17:00", EndTime: "18:00", Price: 1500, IsBooked: true, IsPastSlot: true},
			{StartTime: "18:00", EndTime: "19:00", Price: 2000, IsBooked: true, IsHardBooked: true},
			{StartTime: "19:00", EndTime: "20:00", Price: 1500},
		},
	}}
	h := NewHandler(uc, nopLogger{})

	rec := serve(h, "/api/v1/bookings/slots?date=2025-03-10")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	require.NotNil(t, uc.got)
	assert.True(t, uc.got.Date.Equal(date))

	// клиенты читают именно эти ключи
	var raw struct {
		Date  string                   `json:"date"`
		Slots []map[string]interface{} `json:"slots"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &raw))
	assert.Equal(t, "2025-03-10", raw.Date)
	require.Len(t, raw.Slots, 3)

	assert.Equal(t, "18:00", raw.Slots[1]["startTime"])
	assert.Equal(t, "19:00", raw.Slots[1]["endTime"])
	assert.Equal(t, 2000.0, raw.Slots[1]["price"])
	assert.Equal(t, true, raw.Slots[1]["isBooked"])
	assert.Equal(t, true, raw.Slots[1]["isHardBooked"])

	assert.Equal(t, true, raw.Slots[0]["isPastSlot"])
	assert.Equal(t, false, raw.Slots[2]["isBooked"])
	assert.Equal(t, false, raw.Slots[2]["isAdminBlocked"])
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{name: "missing date", target: "/api/v1/bookings/slots", wantStatus: http.StatusBadRequest, wantMsg: msgMissingDate},
		{name: "bad date", target: "/api/v1/bookings/slots?date=10-03-2025", wantStatus: http.StatusBadRequest, wantMsg: msgInvalidDate},
		{name: "internal", target: "/api/v1/bookings/slots?date=2025-03-10", err: errors.New("db down"),
			wantStatus: http.StatusInternalServerError, wantMsg: "Server Error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &fakeUseCase{err: tt.err}
			rec := serve(NewHandler(uc, nopLogger{}), tt.target)

			assert.Equal(t, tt.wantStatus, rec.Code)

			var body struct {
				Message string `json:"message"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantMsg, body.Message)
		})
	}
}
