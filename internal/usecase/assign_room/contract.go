package assign_room

import (
	"context"

	"github.com/kratvil/HES-HotelService/internal/domain"
)

// ReservationRepository интерфейс репозитория броней
type ReservationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
}

// GuestRepository интерфейс репозитория гостей
type GuestRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Guest, error)
	ListAll(ctx context.Context) ([]*domain.Guest, error)
	ListByRoom(ctx context.Context, roomKey string) ([]*domain.Guest, error)
	SetRoom(ctx context.Context, guestID int64, roomKey string) error
}

// RoomRepository интерфейс репозитория комнат
type RoomRepository interface {
	GetByKey(ctx context.Context, key string) (*domain.Room, error)
	ListAll(ctx context.Context) ([]*domain.Room, error)
	UpdateStatus(ctx context.Context, key string, status domain.RoomStatus) error
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
