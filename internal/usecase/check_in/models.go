package check_in

// GuestEntry карточка одного заселяемого гостя
type GuestEntry struct {
	Name       string
	IDCard     string
	Generation string
	Info       string
}

// Request модель запроса на заселение брони
type Request struct {
	ReservationID int64
	Guests        []GuestEntry
}

// CreatedGuest созданный при заселении гость
type CreatedGuest struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Generation string `json:"generation"`
}

// Response модель ответа на заселение
type Response struct {
	ReservationID int64          `json:"reservationId"`
	State         string         `json:"state"`
	Guests        []CreatedGuest `json:"guests"`
}
