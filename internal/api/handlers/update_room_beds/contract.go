package update_room_beds

import (
	"context"

	"github.com/kratvil/HES-HotelService/internal/service/rooms/models"
)

type RoomService interface {
	UpdateBeds(ctx context.Context, key string, beds int) (*models.RoomResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
