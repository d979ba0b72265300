package check_in

import (
	"fmt"

	"github.com/kratvil/HES-HotelService/internal/service/guests"
)

// validateGuests собирает нарушения по всем карточкам разом, без раннего выхода.
// Каждое нарушение получает префикс с индексом карточки.
func validateGuests(entries []GuestEntry) []string {
	var violations []string

	for i, entry := range entries {
		for _, rule := range guests.ValidateGuestFields(entry.Name, entry.IDCard, entry.Generation, entry.Info) {
			violations = append(violations, fmt.Sprintf("guests[%d].%s", i, rule))
		}
	}

	return violations
}
