package smsgateway

// MessageResponse ответ шлюза на отправку сообщения
type MessageResponse struct {
	SID    string `json:"sid"`
	Status string `json:"status"`
}

// ErrorResponse модель ошибки шлюза
type ErrorResponse struct {
	Code     int    `json:"code"`
	Message  string `json:"message"`
	MoreInfo string `json:"more_info"`
	Status   int    `json:"status"`
}
