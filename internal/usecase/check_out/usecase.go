package check_out

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/kratvil/HES-HotelService/internal/domain"
	reservationRepo "github.com/kratvil/HES-HotelService/internal/infra/storage/reservation"
	roomRepo "github.com/kratvil/HES-HotelService/internal/infra/storage/room"
	"github.com/kratvil/HES-HotelService/internal/service/billing"
)

// UseCase use case для выселения набора комнат
type UseCase struct {
	reservationRepo ReservationRepository
	guestRepo       GuestRepository
	roomRepo        RoomRepository
	calculator      PriceCalculator
	txManager       TransactionManager
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	guestRepo GuestRepository,
	roomRepo RoomRepository,
	calculator PriceCalculator,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		guestRepo:       guestRepo,
		roomRepo:        roomRepo,
		calculator:      calculator,
		txManager:       txManager,
		logger:          logger,
	}
}

// Execute выполняет выселение. Все проверки проходят до первой записи:
// при любом нарушении ни один гость и ни одна комната не трогаются.
// Счет, удаление гостей, освобождение комнат и возможный перевод брони
// в ENDED идут в одной сериализуемой транзакции.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckOut: rooms=%v", req.RoomKeys)

	// Набор комнат: повторы одного ключа схлопываются, чтобы жильцы
	// не попали в счет дважды
	roomKeys := dedupeKeys(req.RoomKeys)
	if len(roomKeys) == 0 {
		return nil, ErrEmptyRoomSet
	}

	var result *Response

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 1. Загружаем комнаты и их жильцов, попутно проверяя занятость
		rooms := make([]*domain.Room, 0, len(roomKeys))
		guests := make([]*domain.Guest, 0, len(roomKeys))
		for _, key := range roomKeys {
			room, err := uc.roomRepo.GetByKey(txCtx, key)
			if err != nil {
				if errors.Is(err, roomRepo.ErrRoomNotFound) {
					uc.logger.Warn("CheckOut: room key=%s not found", key)
					return ErrRoomNotFound
				}
				uc.logger.Error("CheckOut: failed to get room key=%s: %v", key, err)
				return fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
			}

			occupants, err := uc.guestRepo.ListByRoom(txCtx, key)
			if err != nil {
				uc.logger.Error("CheckOut: failed to list occupants of room key=%s: %v", key, err)
				return fmt.Errorf("%w: failed to list room occupants: %v", ErrInternal, err)
			}
			if len(occupants) == 0 {
				uc.logger.Warn("CheckOut: room key=%s has no occupants", key)
				return ErrRoomNotOccupied
			}

			rooms = append(rooms, room)
			guests = append(guests, occupants...)
		}

		// 2. Все жильцы набора должны быть из одной брони
		reservationID := guests[0].ReservationID
		for _, guest := range guests {
			if guest.ReservationID != reservationID {
				uc.logger.Warn("CheckOut: occupants from reservations %d and %d mixed in one room set",
					reservationID, guest.ReservationID)
				return ErrMixedReservations
			}
		}

		reservation, err := uc.reservationRepo.GetByID(txCtx, reservationID)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				uc.logger.Error("CheckOut: occupants reference missing reservation id=%d", reservationID)
				return fmt.Errorf("%w: occupants reference missing reservation id=%d", ErrInternal, reservationID)
			}
			uc.logger.Error("CheckOut: failed to get reservation id=%d: %v", reservationID, err)
			return fmt.Errorf("%w: failed to get reservation: %v", ErrInternal, err)
		}

		// 3. Считаем счет по плановому сроку брони
		breakdown, err := uc.calculator.CheckoutPrice(txCtx, rooms, guests, reservation.StayDays())
		if err != nil {
			uc.logger.Error("CheckOut: failed to compute checkout price for reservation id=%d: %v", reservationID, err)
			return fmt.Errorf("%w: failed to compute checkout price: %v", ErrInternal, err)
		}

		// 4. Удаляем выселяемых гостей
		for _, guest := range guests {
			if err := uc.guestRepo.Delete(txCtx, guest.ID); err != nil {
				uc.logger.Error("CheckOut: failed to delete guest id=%d: %v", guest.ID, err)
				return fmt.Errorf("%w: failed to delete guest: %v", ErrInternal, err)
			}
		}

		// 5. Освобождаем комнаты
		keys := make([]string, 0, len(rooms))
		for _, room := range rooms {
			if err := uc.roomRepo.UpdateStatus(txCtx, room.Key, domain.StatusNotOccupied); err != nil {
				uc.logger.Error("CheckOut: failed to release room key=%s: %v", room.Key, err)
				return fmt.Errorf("%w: failed to release room: %v", ErrInternal, err)
			}
			keys = append(keys, room.Key)
		}
		sort.Strings(keys)

		// 6. Если гостей у брони не осталось нигде, бронь завершена
		left, err := uc.guestRepo.CountByReservation(txCtx, reservationID)
		if err != nil {
			uc.logger.Error("CheckOut: failed to count remaining guests of reservation id=%d: %v", reservationID, err)
			return fmt.Errorf("%w: failed to count remaining guests: %v", ErrInternal, err)
		}

		ended := false
		if left == 0 && reservation.State == domain.StateDoing {
			if err := uc.reservationRepo.UpdateState(txCtx, reservationID, domain.StateEnded); err != nil {
				uc.logger.Error("CheckOut: failed to end reservation id=%d: %v", reservationID, err)
				return fmt.Errorf("%w: failed to end reservation: %v", ErrInternal, err)
			}
			ended = true
		}

		result = &Response{
			ReservationID:    reservationID,
			ReservationEnded: ended,
			Rooms:            keys,
			People:           breakdown.People,
			StayDays:         breakdown.StayDays,
			Subtotal:         billing.Round2(breakdown.Subtotal),
			TaxPercent:       breakdown.TaxPercent,
			TaxAmount:        billing.Round2(breakdown.TaxAmount),
			Total:            billing.Round2(breakdown.Total),
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CheckOut: reservation id=%d, rooms=%v, people=%d, total=%.2f, ended=%t",
		result.ReservationID, result.Rooms, result.People, result.Total, result.ReservationEnded)
	return result, nil
}

func dedupeKeys(keys []string) []string {
	seen := make(map[string]struct{}, len(keys))
	out := make([]string, 0, len(keys))
	for _, key := range keys {
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, key)
	}
	return out
}
