package check_out

import "errors"

var (
	// ErrEmptyRoomSet возвращается, когда на выселение не подано ни одной комнаты
	ErrEmptyRoomSet = errors.New("check_out: room set is empty")

	// ErrRoomNotFound возвращается, когда комната не найдена
	ErrRoomNotFound = errors.New("check_out: room not found")

	// ErrRoomNotOccupied возвращается, когда комната из набора пуста
	ErrRoomNotOccupied = errors.New("check_out: room is not occupied")

	// ErrMixedReservations возвращается, когда жильцы набора комнат из разных броней
	ErrMixedReservations = errors.New("check_out: occupants belong to different reservations")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("check_out: internal error")
)
