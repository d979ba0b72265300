package reservations

import (
	"errors"
	"strings"
)

var (
	// ErrReservationNotFound возвращается, когда бронирование не найдено
	ErrReservationNotFound = errors.New("reservation not found")

	// ErrNoCapacity возвращается, когда заявка не помещается в общую
	// вместимость отеля на пересекающиеся даты
	ErrNoCapacity = errors.New("hotel is full for the requested dates")

	// ErrNotUpcoming возвращается при попытке отменить или заселить
	// бронирование не в состоянии UPCOMING
	ErrNotUpcoming = errors.New("reservation is not upcoming")

	// ErrNotEditable возвращается при попытке изменить завершенное
	// или отмененное бронирование
	ErrNotEditable = errors.New("reservation can no longer be edited")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("reservations: internal error")
)

// Идентификаторы нарушенных правил валидации полей
const (
	RuleNameRequired      = "name_required"
	RulePhoneRequired     = "phone_required"
	RulePhoneInvalid      = "phone_invalid"
	RuleEmailInvalid      = "email_invalid"
	RuleDateFromRequired  = "date_from_required"
	RuleDateToRequired    = "date_to_required"
	RuleDateFromPast      = "date_from_past"
	RuleDateToPast        = "date_to_past"
	RuleDateToNotAfter    = "date_to_not_after_from"
	RulePeopleInvalid     = "people_invalid"
	RuleInfoTooLong       = "info_too_long"
)

// ValidationError накапливает ПОЛНЫЙ список нарушенных правил,
// чтобы вызывающая сторона показала все проблемы разом
type ValidationError struct {
	Violations []string
}

// Error возвращает список правил через запятую
func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Violations, ", ")
}
