package eventbus

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/m04kA/TurfBookingService/internal/domain"
)

var (
	// ErrPublish возвращается, если брокер не принял сообщение
	ErrPublish = fmt.Errorf("%w: eventbus: publish failed", domain.ErrExternalService)

	// ErrClosed возвращается при публикации после Close
	ErrClosed = errors.New("eventbus: publisher closed")
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
}

// Channel подмножество *amqp.Channel, которое нужно издателю
type Channel interface {
	ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp.Table) error
	QueueDeclare(name string, durable, autoDelete, exclusive, noWait bool, args amqp.Table) (amqp.Queue, error)
	QueueBind(name, key, exchange string, noWait bool, args amqp.Table) error
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// Publisher публикует доменные события в topic exchange
type Publisher struct {
	mu       sync.Mutex
	conn     *amqp.Connection
	ch       Channel
	exchange string
	closed   bool
	log      Logger
}

// Dial подключается к брокеру и объявляет exchange и очередь booking.confirmed
func Dial(url, exchange string, log Logger) (*Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("%w: dial: %v", ErrPublish, err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("%w: open channel: %v", ErrPublish, err)
	}

	p, err := NewPublisher(ch, exchange, log)
	if err != nil {
		_ = conn.Close()
		return nil, err
	}
	p.conn = conn
	return p, nil
}

// NewPublisher создает издателя поверх открытого канала
func NewPublisher(ch Channel, exchange string, log Logger) (*Publisher, error) {
	if err := ch.ExchangeDeclare(exchange, amqp.ExchangeTopic, true, false, false, false, nil); err != nil {
		return nil, fmt.Errorf("%w: declare exchange %s: %v", ErrPublish, exchange, err)
	}
	if _, err := ch.QueueDeclare(RoutingKeyBookingConfirmed, true, false, false, false, nil); err != nil {
		return nil, fmt.Errorf("%w: declare queue: %v", ErrPublish, err)
	}
	if err := ch.QueueBind(RoutingKeyBookingConfirmed, RoutingKeyBookingConfirmed, exchange, false, nil); err != nil {
		return nil, fmt.Errorf("%w: bind queue: %v", ErrPublish, err)
	}

	return &Publisher{ch: ch, exchange: exchange, log: log}, nil
}

// PublishBookingConfirmed публикует persistent JSON событие booking.confirmed
func (p *Publisher) PublishBookingConfirmed(ctx context.Context, event BookingConfirmedEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("%w: marshal event: %v", ErrPublish, err)
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return ErrClosed
	}

	if err := p.ch.PublishWithContext(ctx, p.exchange, RoutingKeyBookingConfirmed, false, false, msg); err != nil {
		p.log.Warn("Publish %s failed: booking_ids=%v, error=%v", RoutingKeyBookingConfirmed, event.BookingIDs, err)
		return fmt.Errorf("%w: %v", ErrPublish, err)
	}

	p.log.Info("Published %s: booking_ids=%v", RoutingKeyBookingConfirmed, event.BookingIDs)
	return nil
}

// Close закрывает канал и соединение
func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil
	}
	p.closed = true

	err := p.ch.Close()
	if p.conn != nil {
		err = errors.Join(err, p.conn.Close())
	}
	return err
}
