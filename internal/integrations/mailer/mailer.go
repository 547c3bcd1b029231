package mailer

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"strings"
	"time"

	"gopkg.in/gomail.v2"

	"github.com/m04kA/TurfBookingService/internal/domain"
)

var (
	// ErrSend возвращается, когда SMTP сервер не принял письмо
	ErrSend = fmt.Errorf("%w: mailer: failed to send email", domain.ErrExternalService)

	// ErrRender возвращается при ошибке сборки письма
	ErrRender = errors.New("mailer: failed to render email")

	// ErrEmptyRecipient возвращается, если адрес получателя пустой
	ErrEmptyRecipient = errors.New("mailer: empty recipient")
)

// Sender отправка собранных сообщений (*gomail.Dialer)
type Sender interface {
	DialAndSend(m ...*gomail.Message) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
}

// Mailer отправка писем клиентам площадки
type Mailer struct {
	sender   Sender
	from     string
	turfName string
	otpTTL   time.Duration
	log      Logger
}

// NewDialer создает SMTP dialer
func NewDialer(host string, port int, username, password string) *gomail.Dialer {
	return gomail.NewDialer(host, port, username, password)
}

// New создает новый экземпляр Mailer
func New(sender Sender, from, turfName string, otpTTL time.Duration, log Logger) *Mailer {
	return &Mailer{
		sender:   sender,
		from:     from,
		turfName: turfName,
		otpTTL:   otpTTL,
		log:      log,
	}
}

// SendBookingReceipt письмо о подтвержденном бронировании
func (m *Mailer) SendBookingReceipt(to string, receipt Receipt) error {
	receipt.TurfName = m.turfNameOr(receipt.TurfName)
	subject := fmt.Sprintf("Booking Confirmed! - %s", receipt.TurfName)
	return m.send(to, subject, receiptTemplate, receipt)
}

// SendRefundReceipt письмо о возврате
func (m *Mailer) SendRefundReceipt(to string, receipt Receipt) error {
	receipt.TurfName = m.turfNameOr(receipt.TurfName)
	subject := fmt.Sprintf("Refund Processed - %s", receipt.TurfName)
	return m.send(to, subject, refundTemplate, receipt)
}

// SendOTP письмо с одноразовым кодом
func (m *Mailer) SendOTP(to, name, code string, purpose OTPPurpose) error {
	subject := fmt.Sprintf("Your %s Code - %s", purpose, m.turfName)
	data := struct {
		Name       string
		Code       string
		Purpose    string
		TTLMinutes int
	}{
		Name:       name,
		Code:       code,
		Purpose:    strings.ToLower(string(purpose)),
		TTLMinutes: int(m.otpTTL.Minutes()),
	}
	return m.send(to, subject, otpTemplate, data)
}

func (m *Mailer) send(to, subject string, tmpl *template.Template, data interface{}) error {
	to = strings.TrimSpace(to)
	if to == "" {
		return ErrEmptyRecipient
	}

	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrRender, tmpl.Name(), err)
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", body.String())

	if err := m.sender.DialAndSend(msg); err != nil {
		m.log.Warn("Email %q to %s failed: %v", subject, to, err)
		return fmt.Errorf("%w: %v", ErrSend, err)
	}

	m.log.Info("Email %q sent to %s", subject, to)
	return nil
}

func (m *Mailer) turfNameOr(name string) string {
	if name != "" {
		return name
	}
	return m.turfName
}
