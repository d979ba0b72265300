package assign_room

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kratvil/HES-HotelService/internal/domain"
	guestRepo "github.com/kratvil/HES-HotelService/internal/infra/storage/guest"
	reservationRepo "github.com/kratvil/HES-HotelService/internal/infra/storage/reservation"
	roomRepo "github.com/kratvil/HES-HotelService/internal/infra/storage/room"
)

type fakeReservationRepo struct {
	reservations map[int64]*domain.Reservation
}

func (f *fakeReservationRepo) GetByID(_ context.Context, id int64) (*domain.Reservation, error) {
	res, ok := f.reservations[id]
	if !ok {
		return nil, reservationRepo.ErrReservationNotFound
	}
	copied := *res
	return &copied, nil
}

type fakeGuestRepo struct {
	guests map[int64]*domain.Guest
}

func newFakeGuestRepo(seed ...*domain.Guest) *fakeGuestRepo {
	repo := &fakeGuestRepo{guests: make(map[int64]*domain.Guest)}
	for _, g := range seed {
		copied := *g
		repo.guests[g.ID] = &copied
	}
	return repo
}

func (f *fakeGuestRepo) GetByID(_ context.Context, id int64) (*domain.Guest, error) {
	g, ok := f.guests[id]
	if !ok {
		return nil, guestRepo.ErrGuestNotFound
	}
	copied := *g
	return &copied, nil
}

func (f *fakeGuestRepo) ListAll(_ context.Context) ([]*domain.Guest, error) {
	out := make([]*domain.Guest, 0, len(f.guests))
	for _, g := range f.guests {
		copied := *g
		out = append(out, &copied)
	}
	return out, nil
}

func (f *fakeGuestRepo) ListByRoom(_ context.Context, roomKey string) ([]*domain.Guest, error) {
	var out []*domain.Guest
	for _, g := range f.guests {
		if g.Room == roomKey {
			copied := *g
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (f *fakeGuestRepo) SetRoom(_ context.Context, guestID int64, roomKey string) error {
	g, ok := f.guests[guestID]
	if !ok {
		return guestRepo.ErrGuestNotFound
	}
	g.Room = roomKey
	return nil
}

type fakeRoomRepo struct {
	rooms map[string]*domain.Room
}

func newFakeRoomRepo(seed ...*domain.Room) *fakeRoomRepo {
	repo := &fakeRoomRepo{rooms: make(map[string]*domain.Room)}
	for _, rm := range seed {
		copied := *rm
		repo.rooms[rm.Key] = &copied
	}
	return repo
}

func (f *fakeRoomRepo) GetByKey(_ context.Context, key string) (*domain.Room, error) {
	rm, ok := f.rooms[key]
	if !ok {
		return nil, roomRepo.ErrRoomNotFound
	}
	copied := *rm
	return &copied, nil
}

func (f *fakeRoomRepo) ListAll(_ context.Context) ([]*domain.Room, error) {
	out := make([]*domain.Room, 0, len(f.rooms))
	for _, rm := range f.rooms {
		copied := *rm
		out = append(out, &copied)
	}
	return out, nil
}

func (f *fakeRoomRepo) UpdateStatus(_ context.Context, key string, status domain.RoomStatus) error {
	rm, ok := f.rooms[key]
	if !ok {
		return roomRepo.ErrRoomNotFound
	}
	rm.Status = status
	return nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func adult(id int64, reservationID int64, room string) *domain.Guest {
	return &domain.Guest{
		ID:            id,
		Name:          "Guest",
		IDCard:        "ID",
		Generation:    domain.GenerationAdult,
		Room:          room,
		ReservationID: reservationID,
	}
}

func room(key string, beds int, status domain.RoomStatus) *domain.Room {
	return &domain.Room{Key: key, Type: domain.RoomDouble, Beds: beds, Price: 100, Status: status}
}

func newUseCase(resRepo *fakeReservationRepo, guests *fakeGuestRepo, rooms *fakeRoomRepo) *UseCase {
	if resRepo == nil {
		resRepo = &fakeReservationRepo{reservations: map[int64]*domain.Reservation{
			1: {ID: 1, State: domain.StateDoing},
			2: {ID: 2, State: domain.StateDoing},
		}}
	}
	return NewUseCase(resRepo, guests, rooms, fakeTxManager{}, nopLogger{})
}

func TestAvailableRooms(t *testing.T) {
	guests := newFakeGuestRepo(
		adult(1, 1, "101A"), // своя бронь уже живет в 101A
		adult(2, 2, "103C"), // чужая бронь занимает 103C
	)
	rooms := newFakeRoomRepo(
		room("101A", 3, domain.StatusOccupied),    // 1 жилец своей брони, 2 свободных кровати
		room("102B", 2, domain.StatusNotOccupied), // пустая
		room("103C", 4, domain.StatusOccupied),    // занята чужой бронью
		room("104D", 1, domain.StatusNotOccupied), // пустая, но мала для двоих
	)
	uc := newUseCase(nil, guests, rooms)

	resp, err := uc.AvailableRooms(context.Background(), 1, 2)
	require.NoError(t, err)

	keys := make([]string, 0, len(resp.Rooms))
	for _, rm := range resp.Rooms {
		keys = append(keys, rm.Key)
	}
	assert.Equal(t, []string{"101A", "102B"}, keys)

	assert.Equal(t, 2, resp.Rooms[0].FreeBeds)
	assert.Equal(t, 2, resp.Rooms[1].FreeBeds)
}

func TestAvailableRooms_EmptyGroup(t *testing.T) {
	uc := newUseCase(nil, newFakeGuestRepo(), newFakeRoomRepo())

	_, err := uc.AvailableRooms(context.Background(), 1, 0)
	assert.ErrorIs(t, err, ErrEmptyGroup)
}

func TestAvailableRooms_ReservationNotFound(t *testing.T) {
	uc := newUseCase(nil, newFakeGuestRepo(), newFakeRoomRepo())

	_, err := uc.AvailableRooms(context.Background(), 42, 1)
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestExecute(t *testing.T) {
	guests := newFakeGuestRepo(adult(1, 1, ""), adult(2, 1, ""))
	rooms := newFakeRoomRepo(room("101A", 2, domain.StatusNotOccupied))
	uc := newUseCase(nil, guests, rooms)

	resp, err := uc.Execute(context.Background(), &AssignRequest{
		RoomKey:  "101A",
		GuestIDs: []int64{1, 2},
	})

	require.NoError(t, err)
	assert.Equal(t, "101A", resp.RoomKey)
	assert.Equal(t, int64(1), resp.ReservationID)
	assert.Empty(t, resp.VacatedRooms)

	assert.Equal(t, "101A", guests.guests[1].Room)
	assert.Equal(t, "101A", guests.guests[2].Room)
	assert.Equal(t, domain.StatusOccupied, rooms.rooms["101A"].Status)
}

func TestExecute_MoveVacatesOldRoom(t *testing.T) {
	guests := newFakeGuestRepo(adult(1, 1, "101A"))
	rooms := newFakeRoomRepo(
		room("101A", 1, domain.StatusOccupied),
		room("102B", 2, domain.StatusNotOccupied),
	)
	uc := newUseCase(nil, guests, rooms)

	resp, err := uc.Execute(context.Background(), &AssignRequest{
		RoomKey:  "102B",
		GuestIDs: []int64{1},
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"101A"}, resp.VacatedRooms)
	assert.Equal(t, domain.StatusNotOccupied, rooms.rooms["101A"].Status)
	assert.Equal(t, domain.StatusOccupied, rooms.rooms["102B"].Status)
	assert.Equal(t, "102B", guests.guests[1].Room)
}

func TestExecute_OldRoomStaysOccupiedWhenNotEmptied(t *testing.T) {
	guests := newFakeGuestRepo(
		adult(1, 1, "101A"),
		adult(2, 1, "101A"), // остается в старой комнате
	)
	rooms := newFakeRoomRepo(
		room("101A", 2, domain.StatusOccupied),
		room("102B", 1, domain.StatusNotOccupied),
	)
	uc := newUseCase(nil, guests, rooms)

	resp, err := uc.Execute(context.Background(), &AssignRequest{
		RoomKey:  "102B",
		GuestIDs: []int64{1},
	})

	require.NoError(t, err)
	assert.Empty(t, resp.VacatedRooms)
	assert.Equal(t, domain.StatusOccupied, rooms.rooms["101A"].Status)
}

func TestExecute_ReassignWithinSameRoom(t *testing.T) {
	// Гость уже живет в комнате: при повторном назначении он не должен
	// учитываться как посторонний жилец
	guests := newFakeGuestRepo(adult(1, 1, "101A"))
	rooms := newFakeRoomRepo(room("101A", 1, domain.StatusOccupied))
	uc := newUseCase(nil, guests, rooms)

	resp, err := uc.Execute(context.Background(), &AssignRequest{
		RoomKey:  "101A",
		GuestIDs: []int64{1},
	})

	require.NoError(t, err)
	assert.Empty(t, resp.VacatedRooms)
	assert.Equal(t, "101A", guests.guests[1].Room)
}

func TestExecute_RoomOccupiedByOtherReservation(t *testing.T) {
	guests := newFakeGuestRepo(
		adult(1, 1, ""),
		adult(2, 2, "101A"), // чужая бронь
	)
	rooms := newFakeRoomRepo(room("101A", 4, domain.StatusOccupied))
	uc := newUseCase(nil, guests, rooms)

	_, err := uc.Execute(context.Background(), &AssignRequest{
		RoomKey:  "101A",
		GuestIDs: []int64{1},
	})

	assert.ErrorIs(t, err, ErrRoomNotAvailable)
	assert.Empty(t, guests.guests[1].Room)
}

func TestExecute_NotEnoughBeds(t *testing.T) {
	guests := newFakeGuestRepo(adult(1, 1, ""), adult(2, 1, ""), adult(3, 1, ""))
	rooms := newFakeRoomRepo(room("101A", 2, domain.StatusNotOccupied))
	uc := newUseCase(nil, guests, rooms)

	_, err := uc.Execute(context.Background(), &AssignRequest{
		RoomKey:  "101A",
		GuestIDs: []int64{1, 2, 3},
	})

	assert.ErrorIs(t, err, ErrRoomNotAvailable)
}

func TestExecute_MixedReservations(t *testing.T) {
	guests := newFakeGuestRepo(adult(1, 1, ""), adult(2, 2, ""))
	rooms := newFakeRoomRepo(room("101A", 4, domain.StatusNotOccupied))
	uc := newUseCase(nil, guests, rooms)

	_, err := uc.Execute(context.Background(), &AssignRequest{
		RoomKey:  "101A",
		GuestIDs: []int64{1, 2},
	})

	assert.ErrorIs(t, err, ErrMixedReservations)
}

func TestExecute_EmptyGroup(t *testing.T) {
	uc := newUseCase(nil, newFakeGuestRepo(), newFakeRoomRepo())

	_, err := uc.Execute(context.Background(), &AssignRequest{RoomKey: "101A"})
	assert.ErrorIs(t, err, ErrEmptyGroup)
}

func TestExecute_GuestNotFound(t *testing.T) {
	uc := newUseCase(nil, newFakeGuestRepo(), newFakeRoomRepo())

	_, err := uc.Execute(context.Background(), &AssignRequest{
		RoomKey:  "101A",
		GuestIDs: []int64{42},
	})
	assert.ErrorIs(t, err, ErrGuestNotFound)
}

func TestExecute_RoomNotFound(t *testing.T) {
	guests := newFakeGuestRepo(adult(1, 1, ""))
	uc := newUseCase(nil, guests, newFakeRoomRepo())

	_, err := uc.Execute(context.Background(), &AssignRequest{
		RoomKey:  "missing",
		GuestIDs: []int64{1},
	})
	assert.ErrorIs(t, err, ErrRoomNotFound)
}
