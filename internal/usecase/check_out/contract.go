package check_out

import (
	"context"

	"github.com/kratvil/HES-HotelService/internal/domain"
	"github.com/kratvil/HES-HotelService/internal/service/billing"
)

// ReservationRepository интерфейс репозитория броней
type ReservationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	UpdateState(ctx context.Context, id int64, state domain.ReservationState) error
}

// GuestRepository интерфейс репозитория гостей
type GuestRepository interface {
	ListByRoom(ctx context.Context, roomKey string) ([]*domain.Guest, error)
	CountByReservation(ctx context.Context, reservationID int64) (int, error)
	Delete(ctx context.Context, id int64) error
}

// RoomRepository интерфейс репозитория комнат
type RoomRepository interface {
	GetByKey(ctx context.Context, key string) (*domain.Room, error)
	UpdateStatus(ctx context.Context, key string, status domain.RoomStatus) error
}

// PriceCalculator интерфейс калькулятора стоимости проживания
type PriceCalculator interface {
	CheckoutPrice(ctx context.Context, rooms []*domain.Room, guests []*domain.Guest, stayDays int) (*billing.Breakdown, error)
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
