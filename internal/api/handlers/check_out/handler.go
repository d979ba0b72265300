package check_out

import (
	"errors"
	"net/http"

	"github.com/kratvil/HES-HotelService/internal/api/handlers"
	checkOutUC "github.com/kratvil/HES-HotelService/internal/usecase/check_out"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgEmptyRoomSet       = "не выбрано ни одной комнаты"
	msgRoomNotFound       = "комната не найдена"
	msgRoomNotOccupied    = "выселить можно только занятую комнату"
	msgMixedReservations  = "выселять за раз можно только комнаты одного бронирования"
)

// CheckOutRequest HTTP request model
type CheckOutRequest struct {
	RoomKeys []string `json:"roomKeys"`
}

type Handler struct {
	useCase CheckOutUseCase
	logger  Logger
}

func NewHandler(useCase CheckOutUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/rooms/check-out
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CheckOutRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /rooms/check-out - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &checkOutUC.Request{RoomKeys: req.RoomKeys})
	if err != nil {
		switch {
		case errors.Is(err, checkOutUC.ErrEmptyRoomSet):
			h.logger.Warn("POST /rooms/check-out - Empty room set")
			handlers.RespondBadRequest(w, msgEmptyRoomSet)

		case errors.Is(err, checkOutUC.ErrRoomNotFound):
			h.logger.Warn("POST /rooms/check-out - Room not found: rooms=%v", req.RoomKeys)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, checkOutUC.ErrRoomNotOccupied):
			h.logger.Warn("POST /rooms/check-out - Room not occupied: rooms=%v", req.RoomKeys)
			handlers.RespondConflict(w, msgRoomNotOccupied)

		case errors.Is(err, checkOutUC.ErrMixedReservations):
			h.logger.Warn("POST /rooms/check-out - Mixed reservations: rooms=%v", req.RoomKeys)
			handlers.RespondConflict(w, msgMixedReservations)

		default:
			h.logger.Error("POST /rooms/check-out - Failed to check out: rooms=%v, error=%v", req.RoomKeys, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /rooms/check-out - Checked out: reservation_id=%d, rooms=%v, total=%.2f, ended=%t",
		result.ReservationID, result.Rooms, result.Total, result.ReservationEnded)
	handlers.RespondJSON(w, http.StatusOK, result)
}
