package billing

import "errors"

var (
	// ErrGuestWithoutRoom возвращается, когда гость из расчета
	// не привязан ни к одной из переданных комнат
	ErrGuestWithoutRoom = errors.New("billing: guest is not assigned to a billed room")

	// ErrBadTaxValue возвращается, когда хранимая налоговая ставка
	// не парсится или выходит за [0,100]
	ErrBadTaxValue = errors.New("billing: stored tax value is invalid")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("billing: internal error")
)
