package list_guests

import (
	"context"

	"github.com/kratvil/HES-HotelService/internal/service/guests/models"
)

type GuestService interface {
	List(ctx context.Context, filter models.ListFilter) (*models.GuestListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
