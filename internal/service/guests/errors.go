package guests

import (
	"errors"
	"strings"
)

var (
	// ErrGuestNotFound возвращается, когда гость не найден
	ErrGuestNotFound = errors.New("guest not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("guests: internal error")
)

// Идентификаторы нарушенных правил валидации полей гостя
const (
	RuleNameRequired   = "name_required"
	RuleIDCardRequired = "id_card_required"
	RuleBadGeneration  = "generation_invalid"
	RuleInfoTooLong    = "info_too_long"
)

// ValidationError накапливает полный список нарушенных правил
type ValidationError struct {
	Violations []string
}

// Error возвращает список правил через запятую
func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Violations, ", ")
}
