package reservations

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/kratvil/HES-HotelService/internal/domain"
	"github.com/kratvil/HES-HotelService/pkg/ptr"
)

var testNow = time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

func validUpcoming() *domain.Reservation {
	return &domain.Reservation{
		Name:      "Jana Novakova",
		DateFrom:  time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC),
		DateTo:    time.Date(2026, 6, 13, 0, 0, 0, 0, time.UTC),
		Telephone: "+420 608 123 456",
		People:    2,
		State:     domain.StateUpcoming,
	}
}

func TestValidateReservation_Valid(t *testing.T) {
	assert.Empty(t, validateReservation(validUpcoming(), testNow))
}

func TestValidateReservation_CollectsAllViolations(t *testing.T) {
	res := &domain.Reservation{
		Name:      "  ",
		Telephone: "",
		Email:     ptr.Ptr("not-an-email"),
		People:    0,
		Info:      strings.Repeat("x", domain.MaxInfoLength+1),
		State:     domain.StateUpcoming,
	}

	violations := validateReservation(res, testNow)

	assert.ElementsMatch(t, []string{
		RuleNameRequired,
		RulePhoneRequired,
		RuleEmailInvalid,
		RuleDateFromRequired,
		RuleDateToRequired,
		RulePeopleInvalid,
		RuleInfoTooLong,
	}, violations)
}

func TestValidateReservation_Phone(t *testing.T) {
	tests := []struct {
		phone string
		valid bool
	}{
		{"+420608123456", true},
		{"+420 608-123-456", true},
		{"608123456", true},
		{"+0420608123456", false}, // код страны не может начинаться с нуля
		{"+4201234567890123", false},
		{"phone", false},
	}

	for _, tt := range tests {
		t.Run(tt.phone, func(t *testing.T) {
			res := validUpcoming()
			res.Telephone = tt.phone
			violations := validateReservation(res, testNow)
			if tt.valid {
				assert.NotContains(t, violations, RulePhoneInvalid)
			} else {
				assert.Contains(t, violations, RulePhoneInvalid)
			}
		})
	}
}

func TestValidateReservation_DatesInPast(t *testing.T) {
	res := validUpcoming()
	res.DateFrom = time.Date(2026, 5, 20, 0, 0, 0, 0, time.UTC)
	res.DateTo = time.Date(2026, 5, 25, 0, 0, 0, 0, time.UTC)

	violations := validateReservation(res, testNow)
	assert.Contains(t, violations, RuleDateFromPast)
	assert.Contains(t, violations, RuleDateToPast)
}

func TestValidateReservation_DateFromPastAllowedWhileDoing(t *testing.T) {
	// У заселенной брони дата заезда уже в прошлом, это не нарушение
	res := validUpcoming()
	res.State = domain.StateDoing
	res.DateFrom = time.Date(2026, 5, 30, 0, 0, 0, 0, time.UTC)
	res.DateTo = time.Date(2026, 6, 5, 0, 0, 0, 0, time.UTC)

	violations := validateReservation(res, testNow)
	assert.NotContains(t, violations, RuleDateFromPast)
}

func TestValidateReservation_DateToNotAfterFrom(t *testing.T) {
	res := validUpcoming()
	res.DateTo = res.DateFrom

	violations := validateReservation(res, testNow)
	assert.Contains(t, violations, RuleDateToNotAfter)
}

func TestCanAccept(t *testing.T) {
	candidate := validUpcoming()
	candidate.People = 3

	overlapping := func(people int, state domain.ReservationState) *domain.Reservation {
		return &domain.Reservation{
			DateFrom: time.Date(2026, 6, 8, 0, 0, 0, 0, time.UTC),
			DateTo:   time.Date(2026, 6, 12, 0, 0, 0, 0, time.UTC),
			People:   people,
			State:    state,
		}
	}

	t.Run("fits exactly", func(t *testing.T) {
		existing := []*domain.Reservation{overlapping(4, domain.StateUpcoming)}
		assert.True(t, canAccept(candidate, existing, 7))
	})

	t.Run("one over capacity", func(t *testing.T) {
		existing := []*domain.Reservation{overlapping(5, domain.StateUpcoming)}
		assert.False(t, canAccept(candidate, existing, 7))
	})

	t.Run("terminal states do not hold capacity", func(t *testing.T) {
		existing := []*domain.Reservation{
			overlapping(5, domain.StateCanceled),
			overlapping(5, domain.StateEnded),
		}
		assert.True(t, canAccept(candidate, existing, 3))
	})

	t.Run("touching range does not hold capacity", func(t *testing.T) {
		adjacent := &domain.Reservation{
			DateFrom: candidate.DateTo,
			DateTo:   candidate.DateTo.AddDate(0, 0, 5),
			People:   7,
			State:    domain.StateUpcoming,
		}
		assert.True(t, canAccept(candidate, []*domain.Reservation{adjacent}, 7))
	})
}
