package get_available_rooms

import (
	"context"

	assignRoomUC "github.com/kratvil/HES-HotelService/internal/usecase/assign_room"
)

type AssignRoomUseCase interface {
	AvailableRooms(ctx context.Context, reservationID int64, groupSize int) (*assignRoomUC.AvailableRoomsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
