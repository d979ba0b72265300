package get_occupancy

import (
	"context"

	"github.com/kratvil/HES-HotelService/internal/service/rooms/models"
)

type RoomService interface {
	Occupancy(ctx context.Context) (*models.OccupancySummaryResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
