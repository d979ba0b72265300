package settings

import (
	"errors"
)

var (
	// ErrTaxOutOfRange процент налога вне диапазона [0, 100]
	ErrTaxOutOfRange = errors.New("tax percent out of range")

	// ErrInternal внутренняя ошибка сервиса
	ErrInternal = errors.New("internal service error")
)
