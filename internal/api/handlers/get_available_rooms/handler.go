package get_available_rooms

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/kratvil/HES-HotelService/internal/api/handlers"
	assignRoomUC "github.com/kratvil/HES-HotelService/internal/usecase/assign_room"
)

const (
	msgInvalidReservationID = "некорректный ID бронирования"
	msgInvalidGuestsParam   = "некорректный параметр guests, ожидается целое число больше нуля"
	msgNotFound             = "бронирование не найдено"
)

type Handler struct {
	useCase AssignRoomUseCase
	logger  Logger
}

func NewHandler(useCase AssignRoomUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/reservations/{reservationId}/available-rooms?guests=N
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	reservationID, err := strconv.ParseInt(vars["reservationId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /reservations/{id}/available-rooms - Invalid reservation ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	groupSize, err := strconv.Atoi(r.URL.Query().Get("guests"))
	if err != nil || groupSize < 1 {
		h.logger.Warn("GET /reservations/{id}/available-rooms - Invalid guests param: %q",
			r.URL.Query().Get("guests"))
		handlers.RespondBadRequest(w, msgInvalidGuestsParam)
		return
	}

	result, err := h.useCase.AvailableRooms(r.Context(), reservationID, groupSize)
	if err != nil {
		switch {
		case errors.Is(err, assignRoomUC.ErrReservationNotFound):
			h.logger.Warn("GET /reservations/{id}/available-rooms - Reservation not found: reservation_id=%d",
				reservationID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /reservations/{id}/available-rooms - Failed: reservation_id=%d, error=%v",
				reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
