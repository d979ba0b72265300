package rooms

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/kratvil/HES-HotelService/internal/domain"
	roomRepo "github.com/kratvil/HES-HotelService/internal/infra/storage/room"
	"github.com/kratvil/HES-HotelService/internal/service/rooms/models"
)

// Service сервис для работы с комнатами: создание, правка кроватей
// с защитой от переполнения, информация о комнате, сводка занятости
type Service struct {
	roomRepo        RoomRepository
	guestRepo       GuestRepository
	reservationRepo ReservationRepository
	calculator      PriceCalculator
	logger          Logger
}

// NewService создает новый экземпляр сервиса комнат
func NewService(
	roomRepo RoomRepository,
	guestRepo GuestRepository,
	reservationRepo ReservationRepository,
	calculator PriceCalculator,
	logger Logger,
) *Service {
	return &Service{
		roomRepo:        roomRepo,
		guestRepo:       guestRepo,
		reservationRepo: reservationRepo,
		calculator:      calculator,
		logger:          logger,
	}
}

// Create создает комнату. Новая комната всегда NOT_OCCUPIED.
func (s *Service) Create(ctx context.Context, req *models.CreateRoomRequest) (*models.RoomResponse, error) {
	rm := &domain.Room{
		Key:    strings.TrimSpace(req.Key),
		Type:   domain.RoomType(req.Type),
		Beds:   req.Beds,
		Status: domain.StatusNotOccupied,
		Price:  req.Price,
	}

	if err := validateRoom(rm); err != nil {
		s.logger.Warn("Create: invalid room %q: %v", req.Key, err)
		return nil, err
	}

	if err := s.roomRepo.Create(ctx, rm); err != nil {
		if errors.Is(err, roomRepo.ErrRoomAlreadyExists) {
			s.logger.Warn("Create: room key=%q already exists", rm.Key)
			return nil, ErrRoomAlreadyExists
		}
		s.logger.Error("Create: repository error for room key=%q: %v", rm.Key, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: room key=%q created, type=%s, beds=%d, price=%.2f", rm.Key, rm.Type, rm.Beds, rm.Price)
	return models.FromDomainRoom(rm), nil
}

// List возвращает все комнаты
func (s *Service) List(ctx context.Context) (*models.RoomListResponse, error) {
	rooms, err := s.roomRepo.ListAll(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainRoomList(rooms), nil
}

// UpdateBeds изменяет вместимость комнаты.
// Отклоняется без записи, если новое число вне [1,7] или меньше
// числа текущих жильцов ("would overflow capacity").
func (s *Service) UpdateBeds(ctx context.Context, key string, beds int) (*models.RoomResponse, error) {
	if beds < domain.MinBedsPerRoom || beds > domain.MaxBedsPerRoom {
		s.logger.Warn("UpdateBeds: room key=%q, beds=%d out of range", key, beds)
		return nil, ErrBedsOutOfRange
	}

	rm, err := s.roomRepo.GetByKey(ctx, key)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			s.logger.Warn("UpdateBeds: room key=%q not found", key)
			return nil, ErrRoomNotFound
		}
		s.logger.Error("UpdateBeds: repository error for room key=%q: %v", key, err)
		return nil, fmt.Errorf("%w: UpdateBeds - repository error: %v", ErrInternal, err)
	}

	if beds < rm.Beds {
		occupants, err := s.guestRepo.ListByRoom(ctx, key)
		if err != nil {
			s.logger.Error("UpdateBeds: failed to list occupants of room key=%q: %v", key, err)
			return nil, fmt.Errorf("%w: UpdateBeds - list occupants: %v", ErrInternal, err)
		}
		if beds < len(occupants) {
			s.logger.Warn("UpdateBeds: room key=%q has %d occupants, cannot shrink to %d beds",
				key, len(occupants), beds)
			return nil, ErrWouldOverflowCapacity
		}
	}

	if err := s.roomRepo.UpdateBeds(ctx, key, beds); err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			return nil, ErrRoomNotFound
		}
		s.logger.Error("UpdateBeds: repository error for room key=%q: %v", key, err)
		return nil, fmt.Errorf("%w: UpdateBeds - repository error: %v", ErrInternal, err)
	}

	rm.Beds = beds
	s.logger.Info("UpdateBeds: room key=%q now has %d beds", key, beds)
	return models.FromDomainRoom(rm), nil
}

// Info возвращает комнату с жильцами и предварительным расчетом стоимости
// за плановый срок брони жильцов. Пустая комната — без расчета.
func (s *Service) Info(ctx context.Context, key string) (*models.RoomInfoResponse, error) {
	rm, err := s.roomRepo.GetByKey(ctx, key)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			s.logger.Warn("Info: room key=%q not found", key)
			return nil, ErrRoomNotFound
		}
		s.logger.Error("Info: repository error for room key=%q: %v", key, err)
		return nil, fmt.Errorf("%w: Info - repository error: %v", ErrInternal, err)
	}

	guests, err := s.guestRepo.ListByRoom(ctx, key)
	if err != nil {
		s.logger.Error("Info: failed to list occupants of room key=%q: %v", key, err)
		return nil, fmt.Errorf("%w: Info - list occupants: %v", ErrInternal, err)
	}

	resp := &models.RoomInfoResponse{
		Room:   *models.FromDomainRoom(rm),
		Guests: make([]models.RoomGuestResponse, 0, len(guests)),
	}
	for _, g := range guests {
		resp.Guests = append(resp.Guests, models.RoomGuestResponse{
			ID:         g.ID,
			Name:       g.Name,
			IDCard:     g.IDCard,
			Generation: string(g.Generation),
			Info:       g.Info,
		})
	}

	if len(guests) > 0 {
		reservation, err := s.reservationRepo.GetByID(ctx, guests[0].ReservationID)
		if err != nil {
			s.logger.Error("Info: failed to load reservation id=%d: %v", guests[0].ReservationID, err)
			return nil, fmt.Errorf("%w: Info - load reservation: %v", ErrInternal, err)
		}

		breakdown, err := s.calculator.RoomQuote(ctx, rm, reservation.StayDays())
		if err != nil {
			s.logger.Error("Info: quote failed for room key=%q: %v", key, err)
			return nil, fmt.Errorf("%w: Info - quote: %v", ErrInternal, err)
		}
		resp.Quote = models.FromBreakdown(breakdown)
	}

	return resp, nil
}

// Occupancy возвращает сводку занятости: заселенные гости,
// занятые комнаты, всего комнат
func (s *Service) Occupancy(ctx context.Context) (*models.OccupancySummaryResponse, error) {
	guestsWithRoom, err := s.guestRepo.CountWithRoom(ctx)
	if err != nil {
		s.logger.Error("Occupancy: count guests failed: %v", err)
		return nil, fmt.Errorf("%w: Occupancy - count guests: %v", ErrInternal, err)
	}

	occupied, err := s.roomRepo.CountByStatus(ctx, domain.StatusOccupied)
	if err != nil {
		s.logger.Error("Occupancy: count occupied rooms failed: %v", err)
		return nil, fmt.Errorf("%w: Occupancy - count occupied: %v", ErrInternal, err)
	}

	total, err := s.roomRepo.CountAll(ctx)
	if err != nil {
		s.logger.Error("Occupancy: count rooms failed: %v", err)
		return nil, fmt.Errorf("%w: Occupancy - count rooms: %v", ErrInternal, err)
	}

	return &models.OccupancySummaryResponse{
		GuestsWithRoom: guestsWithRoom,
		OccupiedRooms:  occupied,
		TotalRooms:     total,
	}, nil
}

func validateRoom(rm *domain.Room) error {
	if rm.Key == "" {
		return fmt.Errorf("%w: key is required", ErrInvalidRoom)
	}
	switch rm.Type {
	case domain.RoomSingle, domain.RoomDouble, domain.RoomFamily:
	default:
		return fmt.Errorf("%w: unknown type %q", ErrInvalidRoom, rm.Type)
	}
	if rm.Beds < domain.MinBedsPerRoom || rm.Beds > domain.MaxBedsPerRoom {
		return ErrBedsOutOfRange
	}
	if rm.Price <= 0 {
		return fmt.Errorf("%w: price must be positive", ErrInvalidRoom)
	}
	return nil
}
