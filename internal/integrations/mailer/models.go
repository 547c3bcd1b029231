package mailer

// Receipt данные письма о бронировании или возврате
type Receipt struct {
	CustomerName string
	TurfName     string
	BookingDate  string
	TimeSlot     string
	AmountPaid   float64
	BookingID    string
}

// OTPPurpose назначение одноразового кода
type OTPPurpose string

const (
	PurposeVerification  OTPPurpose = "Verification"
	PurposePasswordReset OTPPurpose = "Password Reset"
)
