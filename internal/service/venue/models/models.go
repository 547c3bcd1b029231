package models

import (
	"time"

	"github.com/m04kA/TurfBookingService/internal/domain"
)

// Ключи настроек площадки
const (
	KeyContactNumber  = "contactNumber"
	KeyAddress        = "address"
	KeyFacebookURL    = "facebookUrl"
	KeyInstagramURL   = "instagramUrl"
	KeyGoogleMapsLink = "googleMapsLink"
)

// DefaultContactSettings значения контактов, если они не заданы
var DefaultContactSettings = map[string]string{
	KeyContactNumber:  "+91 9876543210",
	KeyAddress:        "Dhawal Plaza, Khend, Chiplun, Maharashtra 415605",
	KeyFacebookURL:    "",
	KeyInstagramURL:   "",
	KeyGoogleMapsLink: "https://maps.app.goo.gl/PSMyCpVYCbqWYmTQ7",
}

// DefaultPublicSettings ответ публичных настроек для пустой таблицы
var DefaultPublicSettings = map[string]string{
	"hourlyRate":      "1000",
	"peakHourRate":    "1500",
	KeyContactNumber:  "+91 9876543210",
	KeyAddress:        "Dhawal Plaza, Khend, Chiplun, Maharashtra 415605",
	KeyGoogleMapsLink: "https://maps.app.goo.gl/PSMyCpVYCbqWYmTQ7",
}

// Response модели

// TurfInfoResponse сводка для главной страницы
type TurfInfoResponse struct {
	MinPrice  float64           `json:"minPrice"`
	OpenTime  string            `json:"openTime"`
	CloseTime string            `json:"closeTime"`
	Contacts  map[string]string `json:"contacts"`
}

// OverrideResponse переопределение слота
type OverrideResponse struct {
	Slot      string  `json:"slot"`
	Price     float64 `json:"price"`
	IsBlocked bool    `json:"isBlocked"`
}

// SlotResponse слот с вычисленными флагами
type SlotResponse struct {
	StartTime      string  `json:"startTime"`
	EndTime        string  `json:"endTime"`
	Price          float64 `json:"price"`
	IsBooked       bool    `json:"isBooked"`
	IsHardBooked   bool    `json:"isHardBooked"`
	IsAdminBlocked bool    `json:"isAdminBlocked"`
	IsPastSlot     bool    `json:"isPastSlot"`
}

// ActiveBookingResponse активная бронь в административном виде цен
type ActiveBookingResponse struct {
	ID        int64   `json:"id"`
	StartTime string  `json:"startTime"`
	EndTime   string  `json:"endTime"`
	Status    string  `json:"status"`
	Amount    float64 `json:"amount"`
}

// PricingViewResponse переопределения, активные брони и итоговые слоты на дату
type PricingViewResponse struct {
	Date      string                  `json:"date"`
	Overrides []OverrideResponse      `json:"overrides"`
	Bookings  []ActiveBookingResponse `json:"bookings"`
	Slots     []SlotResponse          `json:"slots"`
}

// BlockLogResponse запись журнала блокировок
type BlockLogResponse struct {
	Date       time.Time `json:"date"`
	TargetDate string    `json:"targetDate"`
	Slot       string    `json:"slot"`
	Action     string    `json:"action"`
	Admin      string    `json:"admin"`
}

// ImportResponse результат переноса старых переопределений
type ImportResponse struct {
	Dates     int `json:"dates"`
	Overrides int `json:"overrides"`
	Skipped   int `json:"skipped"`
}

// Методы конвертации

// FromDomainSlots конвертирует слоты резолвера
func FromDomainSlots(slots []domain.DisplaySlot) []SlotResponse {
	result := make([]SlotResponse, 0, len(slots))
	for _, s := range slots {
		result = append(result, SlotResponse{
			StartTime:      s.StartTime.String(),
			EndTime:        s.EndTime.String(),
			Price:          s.Price,
			IsBooked:       s.IsBooked,
			IsHardBooked:   s.IsHardBooked,
			IsAdminBlocked: s.IsAdminBlocked,
			IsPastSlot:     s.IsPastSlot,
		})
	}
	return result
}

// FromDomainOverrides конвертирует переопределения
func FromDomainOverrides(overrides []domain.PricingOverride) []OverrideResponse {
	result := make([]OverrideResponse, 0, len(overrides))
	for _, o := range overrides {
		result = append(result, OverrideResponse{Slot: o.Slot, Price: o.Price, IsBlocked: o.IsBlocked})
	}
	return result
}

// FromDomainActive конвертирует активные брони
func FromDomainActive(list []*domain.Reservation) []ActiveBookingResponse {
	result := make([]ActiveBookingResponse, 0, len(list))
	for _, r := range list {
		result = append(result, ActiveBookingResponse{
			ID:        r.ID,
			StartTime: r.StartTime.String(),
			EndTime:   r.EndTime.String(),
			Status:    string(r.Status),
			Amount:    r.Amount,
		})
	}
	return result
}

// FromDomainBlockLogs конвертирует журнал блокировок
func FromDomainBlockLogs(entries []*domain.BlockLogEntry) []BlockLogResponse {
	result := make([]BlockLogResponse, 0, len(entries))
	for _, e := range entries {
		result = append(result, BlockLogResponse{
			Date:       e.CreatedAt,
			TargetDate: domain.FormatDate(e.TargetDate),
			Slot:       e.Slot,
			Action:     string(e.Action),
			Admin:      e.AdminName,
		})
	}
	return result
}
