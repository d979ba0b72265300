package get_room_info

import (
	"context"

	"github.com/kratvil/HES-HotelService/internal/service/rooms/models"
)

type RoomService interface {
	Info(ctx context.Context, key string) (*models.RoomInfoResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
