package rooms

import "errors"

var (
	// ErrRoomNotFound возвращается, когда комната не найдена
	ErrRoomNotFound = errors.New("room not found")

	// ErrRoomAlreadyExists возвращается при создании комнаты с занятым ключом
	ErrRoomAlreadyExists = errors.New("room key already exists")

	// ErrWouldOverflowCapacity возвращается при попытке убрать кровати
	// ниже текущего числа жильцов
	ErrWouldOverflowCapacity = errors.New("new bed count would overflow capacity")

	// ErrBedsOutOfRange возвращается, когда число кроватей вне [1,7]
	ErrBedsOutOfRange = errors.New("bed count out of allowed range")

	// ErrInvalidRoom возвращается при некорректных данных комнаты
	ErrInvalidRoom = errors.New("invalid room data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("rooms: internal error")
)
