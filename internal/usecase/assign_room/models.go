package assign_room

// AssignRequest модель запроса на распределение группы гостей в комнату
type AssignRequest struct {
	RoomKey  string
	GuestIDs []int64
}

// AssignResponse модель ответа на распределение
type AssignResponse struct {
	RoomKey       string   `json:"roomKey"`
	GuestIDs      []int64  `json:"guestIds"`
	ReservationID int64    `json:"reservationId"`
	VacatedRooms  []string `json:"vacatedRooms,omitempty"`
}

// AvailableRoom одна подходящая группе комната
type AvailableRoom struct {
	Key      string  `json:"key"`
	Type     string  `json:"type"`
	Beds     int     `json:"beds"`
	FreeBeds int     `json:"freeBeds"`
	Price    float64 `json:"price"`
}

// AvailableRoomsResponse список комнат, куда поместится группа
type AvailableRoomsResponse struct {
	Rooms []AvailableRoom `json:"rooms"`
}
