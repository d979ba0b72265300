package check_in

import (
	checkInUC "github.com/kratvil/HES-HotelService/internal/usecase/check_in"
)

// GuestEntry HTTP модель одной карточки гостя
type GuestEntry struct {
	Name       string `json:"name"`
	IDCard     string `json:"idCard,omitempty"`
	Generation string `json:"generation"`
	Info       string `json:"info,omitempty"`
}

// CheckInRequest HTTP request model
type CheckInRequest struct {
	Guests []GuestEntry `json:"guests"`
}

// ToUseCaseRequest конвертирует HTTP request в модель use case
func (r *CheckInRequest) ToUseCaseRequest(reservationID int64) *checkInUC.Request {
	guests := make([]checkInUC.GuestEntry, 0, len(r.Guests))
	for _, g := range r.Guests {
		guests = append(guests, checkInUC.GuestEntry{
			Name:       g.Name,
			IDCard:     g.IDCard,
			Generation: g.Generation,
			Info:       g.Info,
		})
	}

	return &checkInUC.Request{
		ReservationID: reservationID,
		Guests:        guests,
	}
}
