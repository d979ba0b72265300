package assign_room

import (
	"context"

	assignRoomUC "github.com/kratvil/HES-HotelService/internal/usecase/assign_room"
)

type AssignRoomUseCase interface {
	Execute(ctx context.Context, req *assignRoomUC.AssignRequest) (*assignRoomUC.AssignResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
