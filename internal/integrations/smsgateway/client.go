package smsgateway

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент SMS/WhatsApp шлюза (Twilio Messages REST API)
type Client struct {
	baseURL    string
	accountSID string
	authToken  string
	from       string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента шлюза
func NewClient(baseURL, accountSID, authToken, from string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		accountSID: accountSID,
		authToken:  authToken,
		from:       from,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// NormalizePhone добавляет код страны +91 к десятизначному номеру
func NormalizePhone(phone string) string {
	phone = strings.TrimSpace(phone)
	if len(phone) == 10 {
		return "+91" + phone
	}
	return phone
}

// SendSMS отправляет SMS
func (c *Client) SendSMS(ctx context.Context, to, body string) error {
	if strings.TrimSpace(to) == "" {
		return ErrEmptyRecipient
	}
	return c.send(ctx, NormalizePhone(to), c.from, body)
}

// SendWhatsApp отправляет сообщение в WhatsApp
func (c *Client) SendWhatsApp(ctx context.Context, to, body string) error {
	if strings.TrimSpace(to) == "" {
		return ErrEmptyRecipient
	}
	return c.send(ctx, "whatsapp:"+NormalizePhone(to), "whatsapp:"+c.from, body)
}

func (c *Client) send(ctx context.Context, to, from, body string) error {
	endpoint := fmt.Sprintf("%s/2010-04-01/Accounts/%s/Messages.json", c.baseURL, c.accountSID)

	form := url.Values{}
	form.Set("To", to)
	form.Set("From", from)
	form.Set("Body", body)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.SetBasicAuth(c.accountSID, c.authToken)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK || resp.StatusCode == http.StatusCreated:
		// Продолжаем обработку
	case resp.StatusCode == http.StatusBadRequest:
		var errResp ErrorResponse
		if err := json.NewDecoder(resp.Body).Decode(&errResp); err != nil {
			return fmt.Errorf("%w: status 400", ErrRejected)
		}
		return fmt.Errorf("%w: code=%d: %s", ErrRejected, errResp.Code, errResp.Message)
	default:
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(respBody))
	}

	var msg MessageResponse
	if err := json.NewDecoder(resp.Body).Decode(&msg); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	c.log.Info("Message queued: sid=%s, status=%s", msg.SID, msg.Status)
	return nil
}
