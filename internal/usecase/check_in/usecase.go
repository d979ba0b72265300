package check_in

import (
	"context"
	"errors"
	"fmt"

	"github.com/kratvil/HES-HotelService/internal/domain"
	reservationRepo "github.com/kratvil/HES-HotelService/internal/infra/storage/reservation"
)

// UseCase use case для заселения брони
type UseCase struct {
	reservationRepo ReservationRepository
	guestRepo       GuestRepository
	txManager       TransactionManager
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	guestRepo GuestRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		guestRepo:       guestRepo,
		txManager:       txManager,
		logger:          logger,
	}
}

// Execute выполняет use case заселения брони.
// Создание гостей и смена статуса идут в одной сериализуемой транзакции.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckIn: reservation=%d, guests=%d", req.ReservationID, len(req.Guests))

	// 1. Валидация карточек гостей
	if violations := validateGuests(req.Guests); len(violations) > 0 {
		uc.logger.Warn("CheckIn: validation failed for reservation id=%d: %v", req.ReservationID, violations)
		return nil, &ValidationError{Violations: violations}
	}

	var result *Response

	// 2. Выполняем операции с БД в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Получаем бронь
		reservation, err := uc.reservationRepo.GetByID(txCtx, req.ReservationID)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				uc.logger.Warn("CheckIn: reservation id=%d not found", req.ReservationID)
				return ErrReservationNotFound
			}
			uc.logger.Error("CheckIn: failed to get reservation id=%d: %v", req.ReservationID, err)
			return fmt.Errorf("%w: failed to get reservation: %v", ErrInternal, err)
		}

		// 2.2. Заселять можно только предстоящую бронь
		if !reservation.CanCheckIn() {
			uc.logger.Warn("CheckIn: reservation id=%d is in state %s", reservation.ID, reservation.State)
			return ErrNotUpcoming
		}

		// 2.3. Карточек должно быть ровно столько, на сколько человек бронь
		if len(req.Guests) != reservation.People {
			uc.logger.Warn("CheckIn: reservation id=%d expects %d guests, got %d",
				reservation.ID, reservation.People, len(req.Guests))
			return ErrWrongPartySize
		}

		// 2.4. Создаем гостей, пока без комнаты
		created := make([]CreatedGuest, 0, len(req.Guests))
		for _, entry := range req.Guests {
			guest := &domain.Guest{
				Name:          entry.Name,
				Room:          "",
				IDCard:        entry.IDCard,
				Generation:    domain.GuestGeneration(entry.Generation),
				Info:          entry.Info,
				ReservationID: reservation.ID,
			}

			saved, err := uc.guestRepo.Create(txCtx, guest)
			if err != nil {
				uc.logger.Error("CheckIn: failed to create guest for reservation id=%d: %v", reservation.ID, err)
				return fmt.Errorf("%w: failed to create guest: %v", ErrInternal, err)
			}

			created = append(created, CreatedGuest{
				ID:         saved.ID,
				Name:       saved.Name,
				Generation: string(saved.Generation),
			})
		}

		// 2.5. Переводим бронь в DOING
		if err := uc.reservationRepo.UpdateState(txCtx, reservation.ID, domain.StateDoing); err != nil {
			uc.logger.Error("CheckIn: failed to update state for reservation id=%d: %v", reservation.ID, err)
			return fmt.Errorf("%w: failed to update reservation state: %v", ErrInternal, err)
		}

		result = &Response{
			ReservationID: reservation.ID,
			State:         string(domain.StateDoing),
			Guests:        created,
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CheckIn: reservation id=%d checked in, %d guests created", req.ReservationID, len(result.Guests))
	return result, nil
}
