package check_in

import (
	"context"

	"github.com/kratvil/HES-HotelService/internal/domain"
)

// ReservationRepository интерфейс репозитория броней
type ReservationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	UpdateState(ctx context.Context, id int64, state domain.ReservationState) error
}

// GuestRepository интерфейс репозитория гостей
type GuestRepository interface {
	Create(ctx context.Context, guest *domain.Guest) (*domain.Guest, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
