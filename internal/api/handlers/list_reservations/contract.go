package list_reservations

import (
	"context"

	"github.com/kratvil/HES-HotelService/internal/service/reservations/models"
)

type ReservationService interface {
	List(ctx context.Context) (*models.ReservationListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
