package razorpay

// Order заказ в платежном шлюзе
type Order struct {
	ID       string
	Amount   int64 // в пайсах
	Currency string
	Receipt  string
}

// Refund результат возврата
type Refund struct {
	ID        string
	PaymentID string
	Amount    int64 // в пайсах
	Status    string
}
