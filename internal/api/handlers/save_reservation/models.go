package save_reservation

import (
	"fmt"
	"time"

	"github.com/kratvil/HES-HotelService/internal/domain"
	"github.com/kratvil/HES-HotelService/internal/service/reservations/models"
)

// SaveReservationRequest HTTP request model.
// ID присутствует только при редактировании существующей брони.
type SaveReservationRequest struct {
	ID        *int64  `json:"id,omitempty"`
	Name      string  `json:"name"`
	DateFrom  string  `json:"dateFrom"` // YYYY-MM-DD
	DateTo    string  `json:"dateTo"`
	Telephone string  `json:"telephone"`
	Email     *string `json:"email,omitempty"`
	People    int     `json:"people"`
	Info      string  `json:"info,omitempty"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса (с парсингом дат)
func (r *SaveReservationRequest) ToServiceRequest() (*models.SaveReservationRequest, error) {
	// Пустые даты пропускаются нулевым временем: сервис сам вернет
	// нарушения date_from_required / date_to_required в общем списке
	var dateFrom, dateTo time.Time
	var err error

	if r.DateFrom != "" {
		dateFrom, err = time.Parse(domain.DateFormat, r.DateFrom)
		if err != nil {
			return nil, fmt.Errorf("invalid dateFrom: %w", err)
		}
	}

	if r.DateTo != "" {
		dateTo, err = time.Parse(domain.DateFormat, r.DateTo)
		if err != nil {
			return nil, fmt.Errorf("invalid dateTo: %w", err)
		}
	}

	return &models.SaveReservationRequest{
		ID:        r.ID,
		Name:      r.Name,
		DateFrom:  dateFrom,
		DateTo:    dateTo,
		Telephone: r.Telephone,
		Email:     r.Email,
		People:    r.People,
		Info:      r.Info,
	}, nil
}
