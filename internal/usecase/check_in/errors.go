package check_in

import (
	"errors"
	"strings"
)

var (
	// ErrReservationNotFound возвращается, когда бронь не найдена
	ErrReservationNotFound = errors.New("check_in: reservation not found")

	// ErrNotUpcoming возвращается, когда бронь не в статусе UPCOMING
	ErrNotUpcoming = errors.New("check_in: reservation is not upcoming")

	// ErrWrongPartySize возвращается, когда гостей подано не столько, сколько people в брони
	ErrWrongPartySize = errors.New("check_in: guest count does not match reservation party size")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("check_in: internal error")
)

// ValidationError ошибка валидации карточек гостей с полным списком нарушений
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return "check_in: validation failed: " + strings.Join(e.Violations, ", ")
}
