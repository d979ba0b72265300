package assign_room

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/kratvil/HES-HotelService/internal/domain"
	guestRepo "github.com/kratvil/HES-HotelService/internal/infra/storage/guest"
	reservationRepo "github.com/kratvil/HES-HotelService/internal/infra/storage/reservation"
	roomRepo "github.com/kratvil/HES-HotelService/internal/infra/storage/room"
)

// UseCase use case для распределения гостей по комнатам
type UseCase struct {
	reservationRepo ReservationRepository
	guestRepo       GuestRepository
	roomRepo        RoomRepository
	txManager       TransactionManager
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	guestRepo GuestRepository,
	roomRepo RoomRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		guestRepo:       guestRepo,
		roomRepo:        roomRepo,
		txManager:       txManager,
		logger:          logger,
	}
}

// AvailableRooms возвращает комнаты, куда поместится группа из groupSize гостей
// указанной брони. Комната подходит, если она свободна или уже заселена гостями
// этой же брони, и кроватей хватает на текущих жильцов плюс группу.
// Статус считается по живым записям гостей, а не по колонке rooms.status.
func (uc *UseCase) AvailableRooms(ctx context.Context, reservationID int64, groupSize int) (*AvailableRoomsResponse, error) {
	uc.logger.Info("AvailableRooms: reservation=%d, group=%d", reservationID, groupSize)

	// 1. Бронь должна существовать
	if _, err := uc.reservationRepo.GetByID(ctx, reservationID); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			uc.logger.Warn("AvailableRooms: reservation id=%d not found", reservationID)
			return nil, ErrReservationNotFound
		}
		uc.logger.Error("AvailableRooms: failed to get reservation id=%d: %v", reservationID, err)
		return nil, fmt.Errorf("%w: failed to get reservation: %v", ErrInternal, err)
	}

	if groupSize < 1 {
		return nil, ErrEmptyGroup
	}

	// 2. Снимок комнат и гостей
	rooms, err := uc.roomRepo.ListAll(ctx)
	if err != nil {
		uc.logger.Error("AvailableRooms: failed to list rooms: %v", err)
		return nil, fmt.Errorf("%w: failed to list rooms: %v", ErrInternal, err)
	}

	guests, err := uc.guestRepo.ListAll(ctx)
	if err != nil {
		uc.logger.Error("AvailableRooms: failed to list guests: %v", err)
		return nil, fmt.Errorf("%w: failed to list guests: %v", ErrInternal, err)
	}

	occupants := groupGuestsByRoom(guests)

	// 3. Отбираем подходящие комнаты
	resp := &AvailableRoomsResponse{Rooms: make([]AvailableRoom, 0, len(rooms))}
	for _, room := range rooms {
		if fits(room, occupants[room.Key], reservationID, groupSize) {
			resp.Rooms = append(resp.Rooms, AvailableRoom{
				Key:      room.Key,
				Type:     string(room.Type),
				Beds:     room.Beds,
				FreeBeds: room.Beds - len(occupants[room.Key]),
				Price:    room.Price,
			})
		}
	}

	sort.Slice(resp.Rooms, func(i, j int) bool {
		return resp.Rooms[i].Key < resp.Rooms[j].Key
	})

	uc.logger.Info("AvailableRooms: reservation id=%d, %d of %d rooms fit", reservationID, len(resp.Rooms), len(rooms))
	return resp, nil
}

// Execute выполняет распределение группы в комнату. Назначение комнаты гостям,
// отметка занятости и пересчет освобожденных комнат идут в одной
// сериализуемой транзакции.
func (uc *UseCase) Execute(ctx context.Context, req *AssignRequest) (*AssignResponse, error) {
	uc.logger.Info("AssignRoom: room=%s, guests=%v", req.RoomKey, req.GuestIDs)

	if len(req.GuestIDs) == 0 {
		return nil, ErrEmptyGroup
	}

	var result *AssignResponse

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 1. Загружаем группу и проверяем, что все из одной брони
		group := make([]*domain.Guest, 0, len(req.GuestIDs))
		for _, id := range req.GuestIDs {
			guest, err := uc.guestRepo.GetByID(txCtx, id)
			if err != nil {
				if errors.Is(err, guestRepo.ErrGuestNotFound) {
					uc.logger.Warn("AssignRoom: guest id=%d not found", id)
					return ErrGuestNotFound
				}
				uc.logger.Error("AssignRoom: failed to get guest id=%d: %v", id, err)
				return fmt.Errorf("%w: failed to get guest: %v", ErrInternal, err)
			}
			group = append(group, guest)
		}

		reservationID := group[0].ReservationID
		for _, guest := range group {
			if guest.ReservationID != reservationID {
				uc.logger.Warn("AssignRoom: guests from reservations %d and %d mixed in one group",
					reservationID, guest.ReservationID)
				return ErrMixedReservations
			}
		}

		// 2. Загружаем целевую комнату
		room, err := uc.roomRepo.GetByKey(txCtx, req.RoomKey)
		if err != nil {
			if errors.Is(err, roomRepo.ErrRoomNotFound) {
				uc.logger.Warn("AssignRoom: room key=%s not found", req.RoomKey)
				return ErrRoomNotFound
			}
			uc.logger.Error("AssignRoom: failed to get room key=%s: %v", req.RoomKey, err)
			return fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
		}

		// 3. Проверяем пригодность комнаты по живым жильцам,
		//    не считая гостей группы, уже живущих в ней
		occupants, err := uc.guestRepo.ListByRoom(txCtx, room.Key)
		if err != nil {
			uc.logger.Error("AssignRoom: failed to list occupants of room key=%s: %v", room.Key, err)
			return fmt.Errorf("%w: failed to list room occupants: %v", ErrInternal, err)
		}

		moving := make(map[int64]struct{}, len(group))
		for _, guest := range group {
			moving[guest.ID] = struct{}{}
		}

		staying := occupants[:0:0]
		for _, occupant := range occupants {
			if _, ok := moving[occupant.ID]; !ok {
				staying = append(staying, occupant)
			}
		}

		if !fits(room, staying, reservationID, len(group)) {
			uc.logger.Warn("AssignRoom: room key=%s does not fit group of %d from reservation id=%d",
				room.Key, len(group), reservationID)
			return ErrRoomNotAvailable
		}

		// 4. Назначаем комнату гостям, запоминая освобождаемые комнаты
		vacatedSet := make(map[string]struct{})
		for _, guest := range group {
			if guest.HasRoom() && guest.Room != room.Key {
				vacatedSet[guest.Room] = struct{}{}
			}
			if err := uc.guestRepo.SetRoom(txCtx, guest.ID, room.Key); err != nil {
				uc.logger.Error("AssignRoom: failed to set room for guest id=%d: %v", guest.ID, err)
				return fmt.Errorf("%w: failed to set guest room: %v", ErrInternal, err)
			}
		}

		// 5. Целевая комната занята
		if err := uc.roomRepo.UpdateStatus(txCtx, room.Key, domain.StatusOccupied); err != nil {
			uc.logger.Error("AssignRoom: failed to mark room key=%s occupied: %v", room.Key, err)
			return fmt.Errorf("%w: failed to update room status: %v", ErrInternal, err)
		}

		// 6. Пересчитываем занятость освобожденных комнат
		vacated := make([]string, 0, len(vacatedSet))
		for key := range vacatedSet {
			left, err := uc.guestRepo.ListByRoom(txCtx, key)
			if err != nil {
				uc.logger.Error("AssignRoom: failed to list occupants of vacated room key=%s: %v", key, err)
				return fmt.Errorf("%w: failed to list vacated room occupants: %v", ErrInternal, err)
			}
			if len(left) == 0 {
				if err := uc.roomRepo.UpdateStatus(txCtx, key, domain.StatusNotOccupied); err != nil {
					uc.logger.Error("AssignRoom: failed to release room key=%s: %v", key, err)
					return fmt.Errorf("%w: failed to release vacated room: %v", ErrInternal, err)
				}
				vacated = append(vacated, key)
			}
		}
		sort.Strings(vacated)

		result = &AssignResponse{
			RoomKey:       room.Key,
			GuestIDs:      req.GuestIDs,
			ReservationID: reservationID,
			VacatedRooms:  vacated,
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("AssignRoom: room key=%s assigned to %d guests of reservation id=%d",
		result.RoomKey, len(result.GuestIDs), result.ReservationID)
	return result, nil
}

// fits проверяет пригодность комнаты для группы брони reservationID:
// комната свободна или уже заселена гостем той же брони,
// и кроватей хватает на жильцов плюс группу
func fits(room *domain.Room, occupants []*domain.Guest, reservationID int64, groupSize int) bool {
	if len(occupants) > 0 {
		sameReservation := false
		for _, occupant := range occupants {
			if occupant.ReservationID == reservationID {
				sameReservation = true
				break
			}
		}
		if !sameReservation {
			return false
		}
	}

	return len(occupants)+groupSize <= room.Beds
}

func groupGuestsByRoom(guests []*domain.Guest) map[string][]*domain.Guest {
	byRoom := make(map[string][]*domain.Guest)
	for _, guest := range guests {
		if guest.HasRoom() {
			byRoom[guest.Room] = append(byRoom[guest.Room], guest)
		}
	}
	return byRoom
}
