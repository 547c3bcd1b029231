package admin_booking_action

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/TurfBookingService/internal/domain"
	userRepo "github.com/m04kA/TurfBookingService/internal/infra/storage/user"
	"github.com/m04kA/TurfBookingService/internal/integrations/mailer"
	"github.com/m04kA/TurfBookingService/internal/integrations/razorpay"
	"github.com/m04kA/TurfBookingService/pkg/password"
	"github.com/m04kA/TurfBookingService/pkg/ptr"
)

type fakeUsers struct{ users map[int64]*domain.User }

func (f *fakeUsers) GetByID(_ context.Context, id int64) (*domain.User, error) {
	if u, ok := f.users[id]; ok {
		return u, nil
	}
	return nil, userRepo.ErrUserNotFound
}

type fakeReservations struct {
	rows map[int64]*domain.ReservationWithOwner
}

func (f *fakeReservations) GetWithOwnerByIDs(_ context.Context, ids []int64) ([]*domain.ReservationWithOwner, error) {
	result := make([]*domain.ReservationWithOwner, 0)
	for _, id := range ids {
		if r, ok := f.rows[id]; ok {
			copied := *r
			result = append(result, &copied)
		}
	}
	return result, nil
}

func (f *fakeReservations) Cancel(_ context.Context, id int64) error {
	f.rows[id].Status = domain.StatusCancelled
	return nil
}

func (f *fakeReservations) MarkRefunded(_ context.Context, id int64) error {
	f.rows[id].Status = domain.StatusCancelled
	f.rows[id].IsRefunded = true
	return nil
}

type fakeGateway struct {
	refunds map[string]int64
	err     error
}

func (g *fakeGateway) RefundPayment(paymentID string, amountPaise int64) (*razorpay.Refund, error) {
	if g.err != nil {
		return nil, g.err
	}
	g.refunds[paymentID] = amountPaise
	return &razorpay.Refund{ID: "rfnd_1", PaymentID: paymentID, Amount: amountPaise}, nil
}

type recordingMailer struct {
	to       []string
	receipts []mailer.Receipt
}

func (m *recordingMailer) SendRefundReceipt(to string, receipt mailer.Receipt) error {
	m.to = append(m.to, to)
	m.receipts = append(m.receipts, receipt)
	return nil
}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixture struct {
	uc           *UseCase
	reservations *fakeReservations
	gateway      *fakeGateway
	mailer       *recordingMailer
}

const adminPassword = "s3cret-admin"

func newFixture(t *testing.T) *fixture {
	t.Helper()

	hash, err := password.Hash(adminPassword)
	require.NoError(t, err)

	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	f := &fixture{
		reservations: &fakeReservations{rows: map[int64]*domain.ReservationWithOwner{
			1: {Reservation: domain.Reservation{ID: 1, Date: date, StartTime: "18:00", EndTime: "19:00",
				Status: domain.StatusConfirmed, Amount: 1433.33, PaymentMode: domain.PaymentOnline,
				PaymentID: ptr.Ptr("pay_1"), UserID: ptr.Ptr(int64(7))},
				OwnerName: ptr.Ptr("Asha"), OwnerEmail: ptr.Ptr("asha@example.com")},
			2: {Reservation: domain.Reservation{ID: 2, Date: date, StartTime: "20:00", EndTime: "21:00",
				Status: domain.StatusConfirmed, Amount: 1500, PaymentMode: domain.PaymentCash,
				GuestName: ptr.Ptr("Walk-in")}},
			3: {Reservation: domain.Reservation{ID: 3, Date: date, StartTime: "07:00", EndTime: "08:00",
				Status: domain.StatusConfirmed, Amount: 1500, PaymentMode: domain.PaymentOnline, PaymentID: ptr.Ptr("pay_3")}},
		}},
		gateway: &fakeGateway{refunds: map[string]int64{}},
		mailer:  &recordingMailer{},
	}

	users := &fakeUsers{users: map[int64]*domain.User{
		1: {ID: 1, Name: "Admin", Role: domain.RoleAdmin, PasswordHash: hash},
		2: {ID: 2, Name: "No password", Role: domain.RoleAdmin},
	}}

	f.uc = NewUseCase(users, f.reservations, f.gateway, f.mailer, "Dhaval Mart Turf", nopLogger{})
	// 12:00 IST 10.03.2025
	f.uc.timeProvider = fixedTime{now: time.Date(2025, 3, 10, 6, 30, 0, 0, time.UTC)}
	return f
}

func TestExecute_RefundOnlinePayment(t *testing.T) {
	f := newFixture(t)

	resp, err := f.uc.Execute(context.Background(), &Request{AdminID: 1, BookingID: 1, Password: adminPassword, Action: ActionRefund})
	require.NoError(t, err)

	assert.Equal(t, "Booking refunded & money dispatched via Razorpay", resp.Message)
	assert.True(t, resp.Booking.IsRefunded)
	assert.Equal(t, domain.StatusCancelled, resp.Booking.Status)
	assert.Equal(t, int64(143333), f.gateway.refunds["pay_1"])
	assert.True(t, f.reservations.rows[1].IsRefunded)

	require.Len(t, f.mailer.receipts, 1)
	assert.Equal(t, "asha@example.com", f.mailer.to[0])
	assert.Equal(t, "Asha", f.mailer.receipts[0].CustomerName)
	assert.Equal(t, "18:00 - 19:00", f.mailer.receipts[0].TimeSlot)
	assert.Equal(t, "1", f.mailer.receipts[0].BookingID)
}

func TestExecute_RefundCashBookingSkipsGateway(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.Execute(context.Background(), &Request{AdminID: 1, BookingID: 2, Password: adminPassword, Action: ActionRefund})
	require.NoError(t, err)

	assert.Empty(t, f.gateway.refunds)
	assert.True(t, f.reservations.rows[2].IsRefunded)
	assert.Empty(t, f.mailer.receipts, "guest without email gets no receipt")
}

func TestExecute_RefundGatewayFailureKeepsBooking(t *testing.T) {
	f := newFixture(t)
	f.gateway.err = errors.New("BAD_REQUEST_ERROR: The refund amount is greater than the refundable amount")

	_, err := f.uc.Execute(context.Background(), &Request{AdminID: 1, BookingID: 1, Password: adminPassword, Action: ActionRefund})
	assert.ErrorIs(t, err, ErrRefundFailed)
	assert.ErrorIs(t, err, domain.ErrExternalService)
	assert.Contains(t, err.Error(), "refundable amount")
	assert.False(t, f.reservations.rows[1].IsRefunded)
	assert.Equal(t, domain.StatusConfirmed, f.reservations.rows[1].Status)
}

func TestExecute_RefundTwice(t *testing.T) {
	f := newFixture(t)
	req := &Request{AdminID: 1, BookingID: 2, Password: adminPassword, Action: ActionRefund}

	_, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)

	_, err = f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrAlreadyRefunded)
}

func TestExecute_Cancel(t *testing.T) {
	f := newFixture(t)

	resp, err := f.uc.Execute(context.Background(), &Request{AdminID: 1, BookingID: 1, Password: adminPassword, Action: ActionCancel})
	require.NoError(t, err)

	assert.Equal(t, "Booking cancelled", resp.Message)
	assert.Equal(t, domain.StatusCancelled, f.reservations.rows[1].Status)
	assert.False(t, f.reservations.rows[1].IsRefunded)
	assert.Empty(t, f.gateway.refunds)
}

func TestExecute_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		req     *Request
		wantErr error
	}{
		{name: "no password", req: &Request{AdminID: 1, BookingID: 1, Action: ActionCancel}, wantErr: ErrPasswordRequired},
		{name: "wrong password", req: &Request{AdminID: 1, BookingID: 1, Password: "guess", Action: ActionCancel}, wantErr: ErrInvalidPassword},
		{name: "admin without password", req: &Request{AdminID: 2, BookingID: 1, Password: "x", Action: ActionCancel}, wantErr: ErrUnauthorized},
		{name: "unknown admin", req: &Request{AdminID: 99, BookingID: 1, Password: "x", Action: ActionCancel}, wantErr: ErrUnauthorized},
		{name: "unknown booking", req: &Request{AdminID: 1, BookingID: 404, Password: adminPassword, Action: ActionCancel}, wantErr: ErrBookingNotFound},
		{name: "started booking", req: &Request{AdminID: 1, BookingID: 3, Password: adminPassword, Action: ActionRefund}, wantErr: ErrPastBooking},
		{name: "unknown action", req: &Request{AdminID: 1, BookingID: 1, Password: adminPassword, Action: "DELETE"}, wantErr: ErrInvalidAction},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			_, err := f.uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, f.gateway.refunds)
		})
	}
}
