package razorpay

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	rzp "github.com/razorpay/razorpay-go"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}

type orderAPI interface {
	Create(data map[string]interface{}, extraHeaders map[string]string) (map[string]interface{}, error)
}

type paymentAPI interface {
	Refund(paymentID string, amount int, data map[string]interface{}, extraHeaders map[string]string) (map[string]interface{}, error)
}

// Client клиент платежного шлюза Razorpay
type Client struct {
	keyID     string
	keySecret string
	currency  string
	orders    orderAPI
	payments  paymentAPI
	log       Logger
}

// NewClient создает новый экземпляр клиента Razorpay
func NewClient(keyID, keySecret, currency string, log Logger) *Client {
	api := rzp.NewClient(keyID, keySecret)
	return newClient(keyID, keySecret, currency, api.Order, api.Payment, log)
}

func newClient(keyID, keySecret, currency string, orders orderAPI, payments paymentAPI, log Logger) *Client {
	return &Client{
		keyID:     keyID,
		keySecret: keySecret,
		currency:  currency,
		orders:    orders,
		payments:  payments,
		log:       log,
	}
}

// KeyID публичный ключ, который нужен клиентскому checkout
func (c *Client) KeyID() string {
	return c.keyID
}

// CreateOrder создает заказ на сумму amountPaise
func (c *Client) CreateOrder(amountPaise int64, receipt string) (*Order, error) {
	data := map[string]interface{}{
		"amount":          amountPaise,
		"currency":        c.currency,
		"receipt":         receipt,
		"payment_capture": 1,
	}

	resp, err := c.orders.Create(data, nil)
	if err != nil {
		c.log.Error("Razorpay order create failed: receipt=%s, error=%v", receipt, err)
		return nil, fmt.Errorf("%w: %v", ErrCreateOrder, err)
	}

	id, ok := resp["id"].(string)
	if !ok || id == "" {
		return nil, fmt.Errorf("%w: order id missing", ErrInvalidResponse)
	}

	c.log.Info("Razorpay order created: id=%s, amount=%d, receipt=%s", id, amountPaise, receipt)
	return &Order{
		ID:       id,
		Amount:   amountPaise,
		Currency: c.currency,
		Receipt:  receipt,
	}, nil
}

// RefundPayment возвращает amountPaise по платежу
func (c *Client) RefundPayment(paymentID string, amountPaise int64) (*Refund, error) {
	resp, err := c.payments.Refund(paymentID, int(amountPaise), map[string]interface{}{"speed": "normal"}, nil)
	if err != nil {
		c.log.Error("Razorpay refund failed: payment_id=%s, error=%v", paymentID, err)
		return nil, fmt.Errorf("%w: %v", ErrRefund, err)
	}

	refund := &Refund{PaymentID: paymentID, Amount: amountPaise}
	refund.ID, _ = resp["id"].(string)
	refund.Status, _ = resp["status"].(string)

	c.log.Info("Razorpay refund created: payment_id=%s, refund_id=%s, amount=%d", paymentID, refund.ID, amountPaise)
	return refund, nil
}

// Sign вычисляет подпись HMAC-SHA256("orderID|paymentID") в hex
func (c *Client) Sign(orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(c.keySecret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

// VerifySignature сравнивает подпись за постоянное время
func (c *Client) VerifySignature(orderID, paymentID, signature string) bool {
	got, err := hex.DecodeString(signature)
	if err != nil {
		return false
	}
	expected, _ := hex.DecodeString(c.Sign(orderID, paymentID))
	return hmac.Equal(got, expected)
}
