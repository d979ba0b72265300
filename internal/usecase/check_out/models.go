package check_out

// Request модель запроса на выселение набора комнат
type Request struct {
	RoomKeys []string
}

// Response модель ответа с итоговым счетом
type Response struct {
	ReservationID    int64    `json:"reservationId"`
	ReservationEnded bool     `json:"reservationEnded"`
	Rooms            []string `json:"rooms"`
	People           int      `json:"people"`
	StayDays         int      `json:"stayDays"`
	Subtotal         float64  `json:"subtotal"`
	TaxPercent       int      `json:"taxPercent"`
	TaxAmount        float64  `json:"taxAmount"`
	Total            float64  `json:"total"`
}
