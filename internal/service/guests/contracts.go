package guests

import (
	"context"

	"github.com/kratvil/HES-HotelService/internal/domain"
)

// GuestRepository интерфейс репозитория гостей
type GuestRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Guest, error)
	Update(ctx context.Context, g *domain.Guest) error
	ListAll(ctx context.Context) ([]*domain.Guest, error)
	ListByRoom(ctx context.Context, roomKey string) ([]*domain.Guest, error)
	ListByReservation(ctx context.Context, reservationID int64) ([]*domain.Guest, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
