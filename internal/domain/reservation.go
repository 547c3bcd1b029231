package domain

import (
	"time"

	"github.com/m04kA/TurfBookingService/pkg/types"
)

// ReservationStatus статус брони
type ReservationStatus string

const (
	StatusPending   ReservationStatus = "PENDING"
	StatusConfirmed ReservationStatus = "CONFIRMED"
	StatusCancelled ReservationStatus = "CANCELLED"
)

// PaymentMode способ оплаты
type PaymentMode string

const (
	PaymentOnline PaymentMode = "ONLINE"
	PaymentCash   PaymentMode = "CASH"
)

// ActiveStatuses статусы, занимающие слот
var ActiveStatuses = []ReservationStatus{StatusPending, StatusConfirmed}

// Reservation бронь одного часового слота
// Чекаут на несколько слотов создает несколько строк
type Reservation struct {
	ID        int64
	Date      time.Time // полночь UTC, время суток не хранится
	StartTime types.TimeString
	EndTime   types.TimeString
	Status    ReservationStatus
	Sport     string
	Amount    float64

	CouponID *int64

	// Владелец: либо зарегистрированный пользователь, либо гость
	UserID     *int64
	GuestName  *string
	GuestPhone *string
	GuestEmail *string

	// При создании - id заказа платежного шлюза, после подтверждения - id платежа
	PaymentID   *string
	PaymentMode PaymentMode

	IsRefunded bool
	IsArrived  bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Interval возвращает [StartTime, EndTime)
func (r *Reservation) Interval() Interval {
	return Interval{Start: r.StartTime, End: r.EndTime}
}

// IsActive возвращает true, если бронь занимает слот
func (r *Reservation) IsActive() bool {
	return r.Status == StatusPending || r.Status == StatusConfirmed
}

// CanBeCancelled возвращает true, если бронь можно отменить
func (r *Reservation) CanBeCancelled() bool {
	return r.IsActive()
}

// IsGuest возвращает true для брони без аккаунта
func (r *Reservation) IsGuest() bool {
	return r.UserID == nil
}

// StartsAt момент начала брони по времени площадки
func (r *Reservation) StartsAt() time.Time {
	return EventTime(r.Date, r.StartTime.Minutes())
}

// IsStalePending возвращает true для PENDING, созданного раньше cutoff
func (r *Reservation) IsStalePending(cutoff time.Time) bool {
	return r.Status == StatusPending && r.CreatedAt.Before(cutoff)
}

// ReservationFilter фильтр для административного списка броней
type ReservationFilter struct {
	FromDate   *time.Time
	ToDate     *time.Time
	SearchName *string            // поиск по имени гостя или пользователя (без учета регистра)
	Status     *ReservationStatus // опционально
}

// ReservationWithOwner бронь с данными владельца для списков и уведомлений
type ReservationWithOwner struct {
	Reservation
	OwnerName  *string
	OwnerPhone *string
	OwnerEmail *string
}

// ContactName имя для уведомлений: гость или пользователь
func (r *ReservationWithOwner) ContactName() string {
	if r.GuestName != nil && *r.GuestName != "" {
		return *r.GuestName
	}
	if r.OwnerName != nil && *r.OwnerName != "" {
		return *r.OwnerName
	}
	return "Customer"
}

// ContactEmail email для уведомлений
func (r *ReservationWithOwner) ContactEmail() string {
	if r.GuestEmail != nil && *r.GuestEmail != "" {
		return *r.GuestEmail
	}
	if r.OwnerEmail != nil {
		return *r.OwnerEmail
	}
	return ""
}

// ContactPhone телефон для уведомлений
func (r *ReservationWithOwner) ContactPhone() string {
	if r.GuestPhone != nil && *r.GuestPhone != "" {
		return *r.GuestPhone
	}
	if r.OwnerPhone != nil {
		return *r.OwnerPhone
	}
	return ""
}
