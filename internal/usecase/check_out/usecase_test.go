package check_out

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kratvil/HES-HotelService/internal/domain"
	reservationRepo "github.com/kratvil/HES-HotelService/internal/infra/storage/reservation"
	roomRepo "github.com/kratvil/HES-HotelService/internal/infra/storage/room"
	"github.com/kratvil/HES-HotelService/internal/service/billing"
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

func (f *fakeReservationRepo) UpdateState(_ context.Context, id int64, state domain.ReservationState) error {
	res, ok := f.reservations[id]
	if !ok {
		return reservationRepo.ErrReservationNotFound
	}
	res.State = state
	return nil
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

func (f *fakeGuestRepo) CountByReservation(_ context.Context, reservationID int64) (int, error) {
	count := 0
	for _, g := range f.guests {
		if g.ReservationID == reservationID {
			count++
		}
	}
	return count, nil
}

func (f *fakeGuestRepo) Delete(_ context.Context, id int64) error {
	delete(f.guests, id)
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

func (f *fakeRoomRepo) UpdateStatus(_ context.Context, key string, status domain.RoomStatus) error {
	rm, ok := f.rooms[key]
	if !ok {
		return roomRepo.ErrRoomNotFound
	}
	rm.Status = status
	return nil
}

// fakeCalculator считает по правилу сервиса: цена комнаты за каждого жильца
// за каждый плановый день, налог 10%
type fakeCalculator struct{}

func (fakeCalculator) CheckoutPrice(_ context.Context, rooms []*domain.Room, guests []*domain.Guest, stayDays int) (*billing.Breakdown, error) {
	prices := make(map[string]float64, len(rooms))
	for _, rm := range rooms {
		prices[rm.Key] = rm.Price
	}
	subtotal := 0.0
	for _, g := range guests {
		subtotal += prices[g.Room] * float64(stayDays)
	}
	taxAmount := subtotal * 0.10
	return &billing.Breakdown{
		People:     len(guests),
		StayDays:   stayDays,
		Subtotal:   subtotal,
		TaxPercent: 10,
		TaxAmount:  taxAmount,
		Total:      subtotal + taxAmount,
	}, nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func doingReservation(id int64, nights int) *domain.Reservation {
	from := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	return &domain.Reservation{
		ID:       id,
		DateFrom: from,
		DateTo:   from.AddDate(0, 0, nights),
		People:   2,
		State:    domain.StateDoing,
	}
}

func occupant(id int64, reservationID int64, room string) *domain.Guest {
	return &domain.Guest{
		ID:            id,
		Name:          "Guest",
		IDCard:        "ID",
		Generation:    domain.GenerationAdult,
		Room:          room,
		ReservationID: reservationID,
	}
}

func newUseCase(resRepo *fakeReservationRepo, guests *fakeGuestRepo, rooms *fakeRoomRepo) *UseCase {
	return NewUseCase(resRepo, guests, rooms, fakeCalculator{}, fakeTxManager{}, nopLogger{})
}

func TestExecute_LastRoomEndsReservation(t *testing.T) {
	resRepo := &fakeReservationRepo{reservations: map[int64]*domain.Reservation{
		1: doingReservation(1, 3),
	}}
	guests := newFakeGuestRepo(occupant(1, 1, "101A"), occupant(2, 1, "101A"))
	rooms := newFakeRoomRepo(&domain.Room{
		Key: "101A", Type: domain.RoomDouble, Beds: 2, Price: 100, Status: domain.StatusOccupied,
	})
	uc := newUseCase(resRepo, guests, rooms)

	resp, err := uc.Execute(context.Background(), &Request{RoomKeys: []string{"101A"}})

	require.NoError(t, err)
	assert.True(t, resp.ReservationEnded)
	assert.Equal(t, []string{"101A"}, resp.Rooms)
	assert.Equal(t, 2, resp.People)
	assert.Equal(t, 3, resp.StayDays)
	assert.InDelta(t, 600.0, resp.Subtotal, 0.001)
	assert.InDelta(t, 660.0, resp.Total, 0.001)

	assert.Empty(t, guests.guests)
	assert.Equal(t, domain.StatusNotOccupied, rooms.rooms["101A"].Status)
	assert.Equal(t, domain.StateEnded, resRepo.reservations[1].State)
}

func TestExecute_PartialCheckoutLeavesReservationDoing(t *testing.T) {
	resRepo := &fakeReservationRepo{reservations: map[int64]*domain.Reservation{
		1: doingReservation(1, 2),
	}}
	guests := newFakeGuestRepo(
		occupant(1, 1, "101A"),
		occupant(2, 1, "102B"), // остается жить
	)
	rooms := newFakeRoomRepo(
		&domain.Room{Key: "101A", Type: domain.RoomSingle, Beds: 1, Price: 100, Status: domain.StatusOccupied},
		&domain.Room{Key: "102B", Type: domain.RoomSingle, Beds: 1, Price: 80, Status: domain.StatusOccupied},
	)
	uc := newUseCase(resRepo, guests, rooms)

	resp, err := uc.Execute(context.Background(), &Request{RoomKeys: []string{"101A"}})

	require.NoError(t, err)
	assert.False(t, resp.ReservationEnded)
	assert.Equal(t, 1, resp.People)

	assert.Equal(t, domain.StateDoing, resRepo.reservations[1].State)
	assert.Equal(t, domain.StatusOccupied, rooms.rooms["102B"].Status)
	assert.Contains(t, guests.guests, int64(2))
}

func TestExecute_EarlyCheckoutBilledForPlannedStay(t *testing.T) {
	// Плановый срок 5 ночей: счет за все пять, даже если выселение раньше
	resRepo := &fakeReservationRepo{reservations: map[int64]*domain.Reservation{
		1: doingReservation(1, 5),
	}}
	guests := newFakeGuestRepo(occupant(1, 1, "101A"))
	rooms := newFakeRoomRepo(&domain.Room{
		Key: "101A", Type: domain.RoomSingle, Beds: 1, Price: 100, Status: domain.StatusOccupied,
	})
	uc := newUseCase(resRepo, guests, rooms)

	resp, err := uc.Execute(context.Background(), &Request{RoomKeys: []string{"101A"}})

	require.NoError(t, err)
	assert.Equal(t, 5, resp.StayDays)
	assert.InDelta(t, 500.0, resp.Subtotal, 0.001)
}

func TestExecute_MultipleRooms(t *testing.T) {
	resRepo := &fakeReservationRepo{reservations: map[int64]*domain.Reservation{
		1: doingReservation(1, 2),
	}}
	guests := newFakeGuestRepo(
		occupant(1, 1, "101A"),
		occupant(2, 1, "102B"),
		occupant(3, 1, "102B"),
	)
	rooms := newFakeRoomRepo(
		&domain.Room{Key: "101A", Type: domain.RoomSingle, Beds: 1, Price: 100, Status: domain.StatusOccupied},
		&domain.Room{Key: "102B", Type: domain.RoomDouble, Beds: 2, Price: 80, Status: domain.StatusOccupied},
	)
	uc := newUseCase(resRepo, guests, rooms)

	resp, err := uc.Execute(context.Background(), &Request{RoomKeys: []string{"102B", "101A"}})

	require.NoError(t, err)
	assert.True(t, resp.ReservationEnded)
	assert.Equal(t, []string{"101A", "102B"}, resp.Rooms)
	assert.Equal(t, 3, resp.People)
	// 1 гость по 100 + 2 гостя по 80, 2 ночи
	assert.InDelta(t, 520.0, resp.Subtotal, 0.001)
}

func TestExecute_DuplicateRoomKeysBilledOnce(t *testing.T) {
	resRepo := &fakeReservationRepo{reservations: map[int64]*domain.Reservation{
		1: doingReservation(1, 3),
	}}
	guests := newFakeGuestRepo(occupant(1, 1, "101A"), occupant(2, 1, "101A"))
	rooms := newFakeRoomRepo(&domain.Room{
		Key: "101A", Type: domain.RoomDouble, Beds: 2, Price: 100, Status: domain.StatusOccupied,
	})
	uc := newUseCase(resRepo, guests, rooms)

	resp, err := uc.Execute(context.Background(), &Request{
		RoomKeys: []string{"101A", "101A", "101A"},
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"101A"}, resp.Rooms)
	assert.Equal(t, 2, resp.People)
	assert.InDelta(t, 600.0, resp.Subtotal, 0.001)
	assert.True(t, resp.ReservationEnded)
	assert.Empty(t, guests.guests)
}

func TestExecute_EmptyRoomSet(t *testing.T) {
	uc := newUseCase(
		&fakeReservationRepo{reservations: map[int64]*domain.Reservation{}},
		newFakeGuestRepo(),
		newFakeRoomRepo(),
	)

	_, err := uc.Execute(context.Background(), &Request{})
	assert.ErrorIs(t, err, ErrEmptyRoomSet)
}

func TestExecute_RoomNotOccupied(t *testing.T) {
	resRepo := &fakeReservationRepo{reservations: map[int64]*domain.Reservation{
		1: doingReservation(1, 2),
	}}
	guests := newFakeGuestRepo(occupant(1, 1, "101A"))
	rooms := newFakeRoomRepo(
		&domain.Room{Key: "101A", Type: domain.RoomSingle, Beds: 1, Price: 100, Status: domain.StatusOccupied},
		&domain.Room{Key: "102B", Type: domain.RoomSingle, Beds: 1, Price: 80, Status: domain.StatusNotOccupied},
	)
	uc := newUseCase(resRepo, guests, rooms)

	_, err := uc.Execute(context.Background(), &Request{RoomKeys: []string{"101A", "102B"}})

	assert.ErrorIs(t, err, ErrRoomNotOccupied)
	// Никаких частичных записей: гость на месте, комната занята, бронь идет
	assert.Contains(t, guests.guests, int64(1))
	assert.Equal(t, domain.StatusOccupied, rooms.rooms["101A"].Status)
	assert.Equal(t, domain.StateDoing, resRepo.reservations[1].State)
}

func TestExecute_MixedReservations(t *testing.T) {
	resRepo := &fakeReservationRepo{reservations: map[int64]*domain.Reservation{
		1: doingReservation(1, 2),
		2: doingReservation(2, 2),
	}}
	guests := newFakeGuestRepo(
		occupant(1, 1, "101A"),
		occupant(2, 2, "102B"),
	)
	rooms := newFakeRoomRepo(
		&domain.Room{Key: "101A", Type: domain.RoomSingle, Beds: 1, Price: 100, Status: domain.StatusOccupied},
		&domain.Room{Key: "102B", Type: domain.RoomSingle, Beds: 1, Price: 80, Status: domain.StatusOccupied},
	)
	uc := newUseCase(resRepo, guests, rooms)

	_, err := uc.Execute(context.Background(), &Request{RoomKeys: []string{"101A", "102B"}})

	assert.ErrorIs(t, err, ErrMixedReservations)
	assert.Len(t, guests.guests, 2)
}

func TestExecute_RoomNotFound(t *testing.T) {
	uc := newUseCase(
		&fakeReservationRepo{reservations: map[int64]*domain.Reservation{}},
		newFakeGuestRepo(),
		newFakeRoomRepo(),
	)

	_, err := uc.Execute(context.Background(), &Request{RoomKeys: []string{"missing"}})
	assert.ErrorIs(t, err, ErrRoomNotFound)
}
