package assign_room

import "errors"

var (
	// ErrReservationNotFound возвращается, когда бронь не найдена
	ErrReservationNotFound = errors.New("assign_room: reservation not found")

	// ErrGuestNotFound возвращается, когда гость из группы не найден
	ErrGuestNotFound = errors.New("assign_room: guest not found")

	// ErrRoomNotFound возвращается, когда комната не найдена
	ErrRoomNotFound = errors.New("assign_room: room not found")

	// ErrEmptyGroup возвращается, когда группа для заселения пуста
	ErrEmptyGroup = errors.New("assign_room: guest group is empty")

	// ErrMixedReservations возвращается, когда гости группы из разных броней
	ErrMixedReservations = errors.New("assign_room: guests belong to different reservations")

	// ErrRoomNotAvailable возвращается, когда комната занята другой бронью
	// или в ней не хватает кроватей на группу
	ErrRoomNotAvailable = errors.New("assign_room: room is not available for this group")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("assign_room: internal error")
)
