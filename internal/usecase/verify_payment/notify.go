package verify_payment

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/m04kA/TurfBookingService/internal/domain"
	"github.com/m04kA/TurfBookingService/internal/integrations/eventbus"
	"github.com/m04kA/TurfBookingService/internal/integrations/mailer"
	"github.com/m04kA/TurfBookingService/internal/service/pricing"
)

const whatsAppTemplate = "🏆 Game On! Your turf at %s is secured.\n\n" +
	"🎟 ID: #%s\n" +
	"📅 Date: %s\n" +
	"⏱ Slots: %s\n\n" +
	"Bring your 'A' game! See you on the pitch."

type notifier struct {
	mailer    ReceiptMailer
	messenger Messenger
	events    EventPublisher
	turfName  string
	logger    Logger
}

func newNotifier(n Notifications, logger Logger) *notifier {
	return &notifier{
		mailer:    n.Mailer,
		messenger: n.Messenger,
		events:    n.Events,
		turfName:  n.TurfName,
		logger:    logger,
	}
}

// notify рассылает квитанцию, сообщение в WhatsApp и событие параллельно.
// Ни одна ошибка не возвращается: оплата уже подтверждена
func (n *notifier) notify(ctx context.Context, bookings []*domain.ReservationWithOwner, paymentID string, now time.Time) {
	if len(bookings) == 0 {
		return
	}

	first := bookings[0]
	ids := bookingIDs(bookings)
	slotList := slotKeys(bookings, " - ")
	amount := totalAmount(bookings)
	date := domain.FormatDate(first.Date)

	var g errgroup.Group

	if email := first.ContactEmail(); n.mailer != nil && email != "" {
		g.Go(func() error {
			err := n.mailer.SendBookingReceipt(email, mailer.Receipt{
				CustomerName: first.ContactName(),
				TurfName:     n.turfName,
				BookingDate:  date,
				TimeSlot:     strings.Join(slotList, ", "),
				AmountPaid:   amount,
				BookingID:    joinIDs(ids),
			})
			if err != nil {
				n.logger.Warn("VerifyPayment: receipt email for bookings %v failed: %v", ids, err)
			}
			return nil
		})
	}

	if phone := first.ContactPhone(); n.messenger != nil && phone != "" {
		g.Go(func() error {
			body := fmt.Sprintf(whatsAppTemplate, n.turfName, joinIDs(ids), date, strings.Join(slotList, ", "))
			if err := n.messenger.SendWhatsApp(ctx, phone, body); err != nil {
				n.logger.Warn("VerifyPayment: whatsapp for bookings %v failed: %v", ids, err)
			}
			return nil
		})
	}

	if n.events != nil {
		g.Go(func() error {
			err := n.events.PublishBookingConfirmed(ctx, eventbus.BookingConfirmedEvent{
				BookingIDs:  ids,
				Date:        date,
				Slots:       slotKeys(bookings, "-"),
				Amount:      amount,
				PaymentID:   paymentID,
				UserID:      first.UserID,
				CouponID:    first.CouponID,
				ConfirmedAt: now,
			})
			if err != nil {
				n.logger.Warn("VerifyPayment: event for bookings %v failed: %v", ids, err)
			}
			return nil
		})
	}

	_ = g.Wait()
}

func bookingIDs(bookings []*domain.ReservationWithOwner) []int64 {
	ids := make([]int64, 0, len(bookings))
	for _, b := range bookings {
		ids = append(ids, b.ID)
	}
	return ids
}

func joinIDs(ids []int64) string {
	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		parts = append(parts, strconv.FormatInt(id, 10))
	}
	return strings.Join(parts, ", ")
}

func slotKeys(bookings []*domain.ReservationWithOwner, sep string) []string {
	keys := make([]string, 0, len(bookings))
	for _, b := range bookings {
		keys = append(keys, b.StartTime.String()+sep+b.EndTime.String())
	}
	return keys
}

func totalAmount(bookings []*domain.ReservationWithOwner) float64 {
	amounts := make([]float64, 0, len(bookings))
	for _, b := range bookings {
		amounts = append(amounts, b.Amount)
	}
	return pricing.Sum(amounts)
}
