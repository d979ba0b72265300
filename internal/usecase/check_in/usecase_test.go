package check_in

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kratvil/HES-HotelService/internal/domain"
	reservationRepo "github.com/kratvil/HES-HotelService/internal/infra/storage/reservation"
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
	nextID int64
	guests []*domain.Guest
}

func (f *fakeGuestRepo) Create(_ context.Context, guest *domain.Guest) (*domain.Guest, error) {
	f.nextID++
	copied := *guest
	copied.ID = f.nextID
	f.guests = append(f.guests, &copied)
	return &copied, nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func upcomingReservation(id int64, people int) *domain.Reservation {
	return &domain.Reservation{
		ID:        id,
		Name:      "Jana Horak",
		Telephone: "+420123456789",
		People:    people,
		State:     domain.StateUpcoming,
	}
}

func entries(n int) []GuestEntry {
	out := make([]GuestEntry, 0, n)
	names := []string{"Jana Horak", "Petr Horak", "Mira Horak", "Eva Horak"}
	for i := 0; i < n; i++ {
		out = append(out, GuestEntry{
			Name:       names[i%len(names)],
			IDCard:     "ID-10" + string(rune('0'+i)),
			Generation: "ADULT",
		})
	}
	return out
}

func TestExecute(t *testing.T) {
	resRepo := &fakeReservationRepo{reservations: map[int64]*domain.Reservation{
		1: upcomingReservation(1, 2),
	}}
	guestRepo := &fakeGuestRepo{}
	uc := NewUseCase(resRepo, guestRepo, fakeTxManager{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		ReservationID: 1,
		Guests:        entries(2),
	})

	require.NoError(t, err)
	assert.Equal(t, string(domain.StateDoing), resp.State)
	require.Len(t, resp.Guests, 2)
	assert.Equal(t, int64(1), resp.Guests[0].ID)
	assert.Equal(t, int64(2), resp.Guests[1].ID)

	// Гости созданы без комнаты, бронь перешла в DOING
	for _, g := range guestRepo.guests {
		assert.Empty(t, g.Room)
		assert.Equal(t, int64(1), g.ReservationID)
	}
	assert.Equal(t, domain.StateDoing, resRepo.reservations[1].State)
}

func TestExecute_SecondCheckInRejected(t *testing.T) {
	resRepo := &fakeReservationRepo{reservations: map[int64]*domain.Reservation{
		1: upcomingReservation(1, 1),
	}}
	guestRepo := &fakeGuestRepo{}
	uc := NewUseCase(resRepo, guestRepo, fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{ReservationID: 1, Guests: entries(1)})
	require.NoError(t, err)

	_, err = uc.Execute(context.Background(), &Request{ReservationID: 1, Guests: entries(1)})
	assert.ErrorIs(t, err, ErrNotUpcoming)
	assert.Len(t, guestRepo.guests, 1)
}

func TestExecute_WrongPartySize(t *testing.T) {
	resRepo := &fakeReservationRepo{reservations: map[int64]*domain.Reservation{
		1: upcomingReservation(1, 3),
	}}
	guestRepo := &fakeGuestRepo{}
	uc := NewUseCase(resRepo, guestRepo, fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{ReservationID: 1, Guests: entries(2)})

	assert.ErrorIs(t, err, ErrWrongPartySize)
	assert.Empty(t, guestRepo.guests)
	assert.Equal(t, domain.StateUpcoming, resRepo.reservations[1].State)
}

func TestExecute_ReservationNotFound(t *testing.T) {
	resRepo := &fakeReservationRepo{reservations: map[int64]*domain.Reservation{}}
	uc := NewUseCase(resRepo, &fakeGuestRepo{}, fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{ReservationID: 42, Guests: entries(1)})
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestExecute_NotUpcoming(t *testing.T) {
	tests := []struct {
		name  string
		state domain.ReservationState
	}{
		{"canceled", domain.StateCanceled},
		{"ended", domain.StateEnded},
		{"already doing", domain.StateDoing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := upcomingReservation(1, 1)
			res.State = tt.state
			resRepo := &fakeReservationRepo{reservations: map[int64]*domain.Reservation{1: res}}
			uc := NewUseCase(resRepo, &fakeGuestRepo{}, fakeTxManager{}, nopLogger{})

			_, err := uc.Execute(context.Background(), &Request{ReservationID: 1, Guests: entries(1)})
			assert.ErrorIs(t, err, ErrNotUpcoming)
		})
	}
}

func TestExecute_ValidationPrefixesEntryIndex(t *testing.T) {
	uc := NewUseCase(
		&fakeReservationRepo{reservations: map[int64]*domain.Reservation{}},
		&fakeGuestRepo{},
		fakeTxManager{},
		nopLogger{},
	)

	_, err := uc.Execute(context.Background(), &Request{
		ReservationID: 1,
		Guests: []GuestEntry{
			{Name: "Jana", IDCard: "ID-100", Generation: "ADULT"},
			{Name: "", IDCard: "", Generation: "ADULT"},
			{Name: "Mira", IDCard: "", Generation: "TEEN"},
		},
	})

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.ElementsMatch(t, []string{
		"guests[1].name_required",
		"guests[1].id_card_required",
		"guests[2].generation_invalid",
		"guests[2].id_card_required",
	}, vErr.Violations)
}
