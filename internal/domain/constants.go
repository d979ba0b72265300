package domain

import "math"

// Business validation constants
const (
	MinPeople     = 1
	MaxInfoLength = 1000

	MinBedsPerRoom = 1
	MaxBedsPerRoom = 7

	MinTaxPercent = 0
	MaxTaxPercent = 100
)

// DefaultTaxPercent стартовое значение налога, сидируется в settings
const DefaultTaxPercent = 2

// TaxSettingKey ключ налоговой ставки в таблице settings
const TaxSettingKey = "TAX"

// DaysNotScheduled sentinel returned by DaysToPerform for terminal states.
// Large so that CANCELED/ENDED reservations sort after time-sensitive ones.
const DaysNotScheduled = math.MaxInt32

// DateFormat формат дат в API и логах
const DateFormat = "2006-01-02"

// ActiveStates состояния, в которых бронирование удерживает места
// (участвует в проверке доступности)
var ActiveStates = []ReservationState{
	StateUpcoming,
	StateDoing,
}

// ValidReservationStates все допустимые состояния бронирования
var ValidReservationStates = []ReservationState{
	StateUpcoming,
	StateDoing,
	StateCanceled,
	StateEnded,
}
