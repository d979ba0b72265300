package save_reservation

import (
	"context"

	"github.com/kratvil/HES-HotelService/internal/service/reservations/models"
)

type ReservationService interface {
	Save(ctx context.Context, req *models.SaveReservationRequest) (*models.ReservationResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
