package rooms

import (
	"context"

	"github.com/kratvil/HES-HotelService/internal/domain"
	"github.com/kratvil/HES-HotelService/internal/service/billing"
)

// RoomRepository интерфейс репозитория комнат
type RoomRepository interface {
	Create(ctx context.Context, rm *domain.Room) error
	GetByKey(ctx context.Context, key string) (*domain.Room, error)
	ListAll(ctx context.Context) ([]*domain.Room, error)
	UpdateBeds(ctx context.Context, key string, beds int) error
	CountAll(ctx context.Context) (int, error)
	CountByStatus(ctx context.Context, status domain.RoomStatus) (int, error)
}

// GuestRepository интерфейс репозитория гостей (живой снимок занятости)
type GuestRepository interface {
	ListByRoom(ctx context.Context, roomKey string) ([]*domain.Guest, error)
	CountWithRoom(ctx context.Context) (int, error)
}

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
}

// PriceCalculator интерфейс расчета стоимости
type PriceCalculator interface {
	RoomQuote(ctx context.Context, room *domain.Room, stayDays int) (*billing.Breakdown, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
