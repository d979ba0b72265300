package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func reservation(from, to time.Time, state ReservationState) *Reservation {
	return &Reservation{DateFrom: from, DateTo: to, State: state}
}

func TestOverlapsWith_Symmetry(t *testing.T) {
	a := reservation(date(2026, 6, 1), date(2026, 6, 10), StateUpcoming)
	b := reservation(date(2026, 6, 5), date(2026, 6, 15), StateUpcoming)

	assert.True(t, a.OverlapsWith(b))
	assert.True(t, b.OverlapsWith(a))
}

func TestOverlapsWith_TouchingRangesDoNotOverlap(t *testing.T) {
	// Полуоткрытые интервалы: выезд одного в день заезда другого
	a := reservation(date(2026, 6, 1), date(2026, 6, 10), StateUpcoming)
	b := reservation(date(2026, 6, 10), date(2026, 6, 15), StateUpcoming)

	assert.False(t, a.OverlapsWith(b))
	assert.False(t, b.OverlapsWith(a))
}

func TestOverlapsWith_Containment(t *testing.T) {
	outer := reservation(date(2026, 6, 1), date(2026, 6, 30), StateUpcoming)
	inner := reservation(date(2026, 6, 10), date(2026, 6, 12), StateUpcoming)

	assert.True(t, outer.OverlapsWith(inner))
	assert.True(t, inner.OverlapsWith(outer))
}

func TestStayDays(t *testing.T) {
	r := reservation(date(2026, 6, 1), date(2026, 6, 4), StateUpcoming)
	assert.Equal(t, 3, r.StayDays())
}

func TestDaysToPerform(t *testing.T) {
	now := date(2026, 6, 1)

	tests := []struct {
		name string
		res  *Reservation
		want int
	}{
		{
			name: "upcoming counts days until arrival",
			res:  reservation(date(2026, 6, 5), date(2026, 6, 10), StateUpcoming),
			want: 4,
		},
		{
			name: "doing counts days until departure",
			res:  reservation(date(2026, 5, 28), date(2026, 6, 3), StateDoing),
			want: 2,
		},
		{
			name: "canceled reports sentinel",
			res:  reservation(date(2026, 6, 5), date(2026, 6, 10), StateCanceled),
			want: DaysNotScheduled,
		},
		{
			name: "ended reports sentinel",
			res:  reservation(date(2026, 5, 1), date(2026, 5, 10), StateEnded),
			want: DaysNotScheduled,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.res.DaysToPerform(now))
		})
	}
}

func TestReservationStatePredicates(t *testing.T) {
	upcoming := reservation(date(2026, 6, 1), date(2026, 6, 4), StateUpcoming)
	doing := reservation(date(2026, 6, 1), date(2026, 6, 4), StateDoing)
	canceled := reservation(date(2026, 6, 1), date(2026, 6, 4), StateCanceled)
	ended := reservation(date(2026, 6, 1), date(2026, 6, 4), StateEnded)

	assert.True(t, upcoming.IsActive())
	assert.True(t, doing.IsActive())
	assert.False(t, canceled.IsActive())
	assert.False(t, ended.IsActive())

	assert.True(t, upcoming.CanBeCancelled())
	assert.False(t, doing.CanBeCancelled())

	assert.True(t, upcoming.CanCheckIn())
	assert.False(t, doing.CanCheckIn())

	assert.True(t, upcoming.CanBeEdited())
	assert.True(t, doing.CanBeEdited())
	assert.False(t, canceled.CanBeEdited())
	assert.False(t, ended.CanBeEdited())
}

func TestRoomFitsMore(t *testing.T) {
	room := &Room{Key: "101A", Beds: 3}

	assert.True(t, room.FitsMore(1, 2))
	assert.False(t, room.FitsMore(1, 3))
	assert.True(t, room.FitsMore(0, 3))
}

func TestGuestRequiresIDCard(t *testing.T) {
	adult := &Guest{Generation: GenerationAdult}
	child := &Guest{Generation: GenerationChild}

	assert.True(t, adult.RequiresIDCard())
	assert.False(t, child.RequiresIDCard())
}
