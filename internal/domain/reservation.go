package domain

import (
	"time"
)

// ReservationState represents the lifecycle state of a reservation
type ReservationState string

const (
	StateUpcoming ReservationState = "UPCOMING"
	StateDoing    ReservationState = "DOING"
	StateCanceled ReservationState = "CANCELED"
	StateEnded    ReservationState = "ENDED"
)

// Reservation represents a booking for a date range and party size,
// independent of specific rooms until check-in.
// The date range is half-open: [DateFrom, DateTo).
type Reservation struct {
	ID        int64
	Name      string
	DateFrom  time.Time
	DateTo    time.Time
	Telephone string
	Email     *string
	People    int
	Info      string
	State     ReservationState

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true while the reservation still holds capacity
// (counts against the hotel's total beds)
func (r *Reservation) IsActive() bool {
	return r.State == StateUpcoming || r.State == StateDoing
}

// CanBeCancelled returns true if the reservation may be cancelled
func (r *Reservation) CanBeCancelled() bool {
	return r.State == StateUpcoming
}

// CanCheckIn returns true if the reservation may be checked in
func (r *Reservation) CanCheckIn() bool {
	return r.State == StateUpcoming
}

// CanBeEdited returns true if the reservation fields may still change
func (r *Reservation) CanBeEdited() bool {
	return r.State != StateCanceled && r.State != StateEnded
}

// StayDays returns the planned stay span in whole days.
// Billing always uses this span, not the actual elapsed nights:
// an early checkout is still charged for the full reservation.
func (r *Reservation) StayDays() int {
	return int(r.DateTo.Sub(truncateToDay(r.DateFrom)).Hours() / 24)
}

// DaysToPerform is the "days remaining" metric shown next to a reservation:
// for UPCOMING the days until arrival, for DOING the days until departure.
// Terminal states report DaysNotScheduled so they sort last.
// Derived on every read, never stored.
func (r *Reservation) DaysToPerform(now time.Time) int {
	switch r.State {
	case StateUpcoming:
		return daysBetween(now, r.DateFrom)
	case StateDoing:
		return daysBetween(now, r.DateTo)
	default:
		return DaysNotScheduled
	}
}

// OverlapsWith reports whether two reservations share at least one night.
// Half-open semantics: ranges that only touch do not overlap.
func (r *Reservation) OverlapsWith(other *Reservation) bool {
	return r.DateFrom.Before(other.DateTo) && other.DateFrom.Before(r.DateTo)
}

func daysBetween(from, to time.Time) int {
	return int(truncateToDay(to).Sub(truncateToDay(from)).Hours() / 24)
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// ReservationsFilter фильтр выборки бронирований
type ReservationsFilter struct {
	States        []ReservationState // пустой срез = все состояния
	OverlapsFrom  *time.Time         // начало проверяемого диапазона
	OverlapsTo    *time.Time         // конец проверяемого диапазона (полуоткрытый)
	ExcludeID     *int64             // исключить бронирование (при редактировании)
}
