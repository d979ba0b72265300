package reservations

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/kratvil/HES-HotelService/internal/domain"
	reservationRepo "github.com/kratvil/HES-HotelService/internal/infra/storage/reservation"
	"github.com/kratvil/HES-HotelService/internal/service/reservations/models"
)

// Service сервис для работы с бронированиями:
// полевая валидация, проверка доступности, отмена, выборки
type Service struct {
	reservationRepo ReservationRepository
	roomRepo        RoomRepository
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	reservationRepo ReservationRepository,
	roomRepo RoomRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		roomRepo:        roomRepo,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Save создает новое бронирование или изменяет существующее.
// Сначала полевая валидация (полный список нарушений), затем проверка
// доступности и запись в одной SERIALIZABLE транзакции.
func (s *Service) Save(ctx context.Context, req *models.SaveReservationRequest) (*models.ReservationResponse, error) {
	now := s.timeProvider.Now()
	candidate := req.ToDomain()

	// 1. При редактировании состояние берется из хранимой записи
	if req.ID != nil {
		current, err := s.reservationRepo.GetByID(ctx, *req.ID)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				s.logger.Warn("Save: reservation id=%d not found", *req.ID)
				return nil, ErrReservationNotFound
			}
			s.logger.Error("Save: repository error for reservation id=%d: %v", *req.ID, err)
			return nil, fmt.Errorf("%w: Save - repository error: %v", ErrInternal, err)
		}
		if !current.CanBeEdited() {
			s.logger.Warn("Save: reservation id=%d in state=%s cannot be edited", current.ID, current.State)
			return nil, ErrNotEditable
		}
		candidate.State = current.State
	}

	// 2. Полевая валидация, полный список нарушений
	if violations := validateReservation(candidate, now); len(violations) > 0 {
		s.logger.Warn("Save: validation failed for reservation %q: %v", candidate.Name, violations)
		return nil, &ValidationError{Violations: violations}
	}

	// 3. Проверка доступности и запись атомарно
	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		totalBeds, err := s.roomRepo.TotalBeds(txCtx)
		if err != nil {
			return fmt.Errorf("%w: Save - total beds: %v", ErrInternal, err)
		}

		filter := domain.ReservationsFilter{
			States:       domain.ActiveStates,
			OverlapsFrom: &candidate.DateFrom,
			OverlapsTo:   &candidate.DateTo,
		}
		if req.ID != nil {
			filter.ExcludeID = req.ID
		}

		existing, err := s.reservationRepo.List(txCtx, filter)
		if err != nil {
			return fmt.Errorf("%w: Save - list overlapping: %v", ErrInternal, err)
		}

		if !canAccept(candidate, existing, totalBeds) {
			return ErrNoCapacity
		}

		if req.ID != nil {
			return s.reservationRepo.Update(txCtx, candidate)
		}

		created, err := s.reservationRepo.Create(txCtx, candidate)
		if err != nil {
			return err
		}
		candidate = created
		return nil
	})

	if err != nil {
		if errors.Is(err, ErrNoCapacity) {
			s.logger.Warn("Save: no capacity for reservation %q, people=%d, %s..%s",
				candidate.Name, candidate.People,
				candidate.DateFrom.Format(domain.DateFormat), candidate.DateTo.Format(domain.DateFormat))
			return nil, ErrNoCapacity
		}
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			return nil, ErrReservationNotFound
		}
		s.logger.Error("Save: transaction failed for reservation %q: %v", candidate.Name, err)
		return nil, fmt.Errorf("%w: Save - transaction: %v", ErrInternal, err)
	}

	s.logger.Info("Save: reservation id=%d %q saved, state=%s", candidate.ID, candidate.Name, candidate.State)
	return models.FromDomainReservation(candidate, now), nil
}

// Cancel отменяет бронирование. Разрешено только из UPCOMING;
// состояние CANCELED терминально, комнаты и гости не затрагиваются
// (по инварианту их еще нет).
func (s *Service) Cancel(ctx context.Context, id int64) error {
	res, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("Cancel: reservation id=%d not found", id)
			return ErrReservationNotFound
		}
		s.logger.Error("Cancel: repository error for reservation id=%d: %v", id, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if !res.CanBeCancelled() {
		s.logger.Warn("Cancel: reservation id=%d in state=%s is not upcoming", id, res.State)
		return ErrNotUpcoming
	}

	if err := s.reservationRepo.UpdateState(ctx, id, domain.StateCanceled); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			return ErrReservationNotFound
		}
		s.logger.Error("Cancel: repository error for reservation id=%d: %v", id, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: reservation id=%d cancelled", id)
	return nil
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.ReservationResponse, error) {
	res, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("GetByID: reservation id=%d not found", id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("GetByID: repository error for reservation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainReservation(res, s.timeProvider.Now()), nil
}

// List возвращает все бронирования, отсортированные по срочности:
// сперва по дням до события, затем по состоянию.
// Терминальные состояния с сентинельным daysToPerform уходят в конец.
func (s *Service) List(ctx context.Context) (*models.ReservationListResponse, error) {
	reservations, err := s.reservationRepo.List(ctx, domain.ReservationsFilter{})
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	now := s.timeProvider.Now()
	sort.SliceStable(reservations, func(i, j int) bool {
		di, dj := reservations[i].DaysToPerform(now), reservations[j].DaysToPerform(now)
		if di != dj {
			return di < dj
		}
		return reservations[i].State < reservations[j].State
	})

	s.logger.Info("List: fetched %d reservations", len(reservations))
	return models.FromDomainReservationList(reservations, now), nil
}
