package save_pricing

import "time"

// Entry переопределение одного слота
type Entry struct {
	Slot      string
	Price     float64
	IsBlocked bool
}

// Request запрос на сохранение переопределений
type Request struct {
	Date         time.Time
	Entries      []Entry
	ApplyForward bool // повторить для следующих ForwardCopyDays дней
	Replace      bool // заменить переопределения даты целиком; пустой Entries очищает дату
}

// Response результат сохранения
type Response struct {
	Dates   []time.Time
	Message string
}
