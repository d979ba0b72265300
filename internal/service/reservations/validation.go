package reservations

import (
	"regexp"
	"strings"
	"time"

	"github.com/kratvil/HES-HotelService/internal/domain"
)

var (
	// После отбрасывания пробелов и дефисов: необязательный код страны
	// +1..+999, затем 1-12 цифр
	phonePattern = regexp.MustCompile(`^(\+[1-9][0-9]{0,2})?[0-9]{1,12}$`)

	// Простая форма local@domain.tld
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// normalizePhone отбрасывает пробелы и дефисы перед проверкой формата
func normalizePhone(phone string) string {
	return strings.NewReplacer(" ", "", "-", "").Replace(phone)
}

// validateReservation проверяет все полевые правила и возвращает ПОЛНЫЙ
// список нарушений — без раннего выхода.
// Правила дат зависят от состояния: dateFrom не в прошлом только для
// UPCOMING, dateTo не в прошлом кроме ENDED.
func validateReservation(res *domain.Reservation, now time.Time) []string {
	var violations []string

	if strings.TrimSpace(res.Name) == "" {
		violations = append(violations, RuleNameRequired)
	}

	if strings.TrimSpace(res.Telephone) == "" {
		violations = append(violations, RulePhoneRequired)
	} else if !phonePattern.MatchString(normalizePhone(res.Telephone)) {
		violations = append(violations, RulePhoneInvalid)
	}

	if res.Email != nil && *res.Email != "" && !emailPattern.MatchString(*res.Email) {
		violations = append(violations, RuleEmailInvalid)
	}

	from := !res.DateFrom.IsZero()
	to := !res.DateTo.IsZero()
	if from && to {
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		if res.State == domain.StateUpcoming && res.DateFrom.Before(today) {
			violations = append(violations, RuleDateFromPast)
		}
		if res.State != domain.StateEnded && res.DateTo.Before(today) {
			violations = append(violations, RuleDateToPast)
		}
		if !res.DateTo.After(res.DateFrom) {
			violations = append(violations, RuleDateToNotAfter)
		}
	} else {
		if !from {
			violations = append(violations, RuleDateFromRequired)
		}
		if !to {
			violations = append(violations, RuleDateToRequired)
		}
	}

	if res.People < domain.MinPeople {
		violations = append(violations, RulePeopleInvalid)
	}

	if len(res.Info) > domain.MaxInfoLength {
		violations = append(violations, RuleInfoTooLong)
	}

	return violations
}

// canAccept проверяет, помещается ли заявка в общую вместимость отеля.
// Полуоткрытые интервалы: соседние брони, у которых конец одной равен
// началу другой, не пересекаются. Считаются только UPCOMING/DOING брони,
// сам кандидат (при редактировании) исключен из выборки репозиторием.
func canAccept(candidate *domain.Reservation, existing []*domain.Reservation, totalBeds int) bool {
	people := 0
	for _, res := range existing {
		if res.IsActive() && res.OverlapsWith(candidate) {
			people += res.People
		}
	}
	return people+candidate.People <= totalBeds
}
