package razorpay

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/TurfBookingService/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeOrders struct {
	got  map[string]interface{}
	resp map[string]interface{}
	err  error
}

func (f *fakeOrders) Create(data map[string]interface{}, _ map[string]string) (map[string]interface{}, error) {
	f.got = data
	return f.resp, f.err
}

type fakePayments struct {
	paymentID string
	amount    int
	err       error
}

func (f *fakePayments) Refund(paymentID string, amount int, _ map[string]interface{}, _ map[string]string) (map[string]interface{}, error) {
	f.paymentID = paymentID
	f.amount = amount
	if f.err != nil {
		return nil, f.err
	}
	return map[string]interface{}{"id": "rfnd_1", "status": "processed"}, nil
}

func TestClient_CreateOrder(t *testing.T) {
	orders := &fakeOrders{resp: map[string]interface{}{"id": "order_1"}}
	client := newClient("key", "secret", "INR", orders, &fakePayments{}, nopLogger{})

	order, err := client.CreateOrder(150000, "rcpt_1")
	require.NoError(t, err)

	assert.Equal(t, "order_1", order.ID)
	assert.Equal(t, int64(150000), orders.got["amount"])
	assert.Equal(t, "INR", orders.got["currency"])
	assert.Equal(t, "rcpt_1", orders.got["receipt"])
}

func TestClient_CreateOrder_Errors(t *testing.T) {
	client := newClient("key", "secret", "INR", &fakeOrders{err: errors.New("boom")}, &fakePayments{}, nopLogger{})
	_, err := client.CreateOrder(100, "r")
	assert.ErrorIs(t, err, ErrCreateOrder)
	assert.ErrorIs(t, err, domain.ErrExternalService)

	client = newClient("key", "secret", "INR", &fakeOrders{resp: map[string]interface{}{}}, &fakePayments{}, nopLogger{})
	_, err = client.CreateOrder(100, "r")
	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestClient_RefundPayment(t *testing.T) {
	payments := &fakePayments{}
	client := newClient("key", "secret", "INR", &fakeOrders{}, payments, nopLogger{})

	refund, err := client.RefundPayment("pay_1", 150000)
	require.NoError(t, err)

	assert.Equal(t, "rfnd_1", refund.ID)
	assert.Equal(t, "pay_1", payments.paymentID)
	assert.Equal(t, 150000, payments.amount)

	payments.err = errors.New("declined")
	_, err = client.RefundPayment("pay_1", 100)
	assert.ErrorIs(t, err, ErrRefund)
}

func TestClient_VerifySignature(t *testing.T) {
	client := newClient("key", "secret", "INR", &fakeOrders{}, &fakePayments{}, nopLogger{})
	signature := client.Sign("order_1", "pay_1")

	assert.True(t, client.VerifySignature("order_1", "pay_1", signature))
	assert.False(t, client.VerifySignature("order_1", "pay_2", signature))
	assert.False(t, client.VerifySignature("order_1", "pay_1", "not-hex"))
	assert.False(t, client.VerifySignature("order_1", "pay_1", ""))
}
