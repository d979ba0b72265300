package assign_room

import (
	"errors"
	"net/http"

	"github.com/kratvil/HES-HotelService/internal/api/handlers"
	assignRoomUC "github.com/kratvil/HES-HotelService/internal/usecase/assign_room"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgEmptyGroup         = "не выбрано ни одного гостя"
	msgGuestNotFound      = "гость не найден"
	msgRoomNotFound       = "комната не найдена"
	msgMixedReservations  = "в одну комнату можно заселять только гостей одного бронирования"
	msgRoomNotAvailable   = "комната занята или в ней не хватает кроватей"
)

// AssignRequest HTTP request model
type AssignRequest struct {
	RoomKey  string  `json:"roomKey"`
	GuestIDs []int64 `json:"guestIds"`
}

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

// Handle POST /api/v1/rooms/assign
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req AssignRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /rooms/assign - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &assignRoomUC.AssignRequest{
		RoomKey:  req.RoomKey,
		GuestIDs: req.GuestIDs,
	})
	if err != nil {
		switch {
		case errors.Is(err, assignRoomUC.ErrEmptyGroup):
			h.logger.Warn("POST /rooms/assign - Empty guest group: room=%s", req.RoomKey)
			handlers.RespondBadRequest(w, msgEmptyGroup)

		case errors.Is(err, assignRoomUC.ErrGuestNotFound):
			h.logger.Warn("POST /rooms/assign - Guest not found: room=%s, guests=%v", req.RoomKey, req.GuestIDs)
			handlers.RespondNotFound(w, msgGuestNotFound)

		case errors.Is(err, assignRoomUC.ErrRoomNotFound):
			h.logger.Warn("POST /rooms/assign - Room not found: room=%s", req.RoomKey)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, assignRoomUC.ErrMixedReservations):
			h.logger.Warn("POST /rooms/assign - Mixed reservations: room=%s, guests=%v", req.RoomKey, req.GuestIDs)
			handlers.RespondConflict(w, msgMixedReservations)

		case errors.Is(err, assignRoomUC.ErrRoomNotAvailable):
			h.logger.Warn("POST /rooms/assign - Room not available: room=%s, guests=%v", req.RoomKey, req.GuestIDs)
			handlers.RespondConflict(w, msgRoomNotAvailable)

		default:
			h.logger.Error("POST /rooms/assign - Failed to assign room: room=%s, error=%v", req.RoomKey, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /rooms/assign - Room assigned: room=%s, reservation_id=%d, guests=%d",
		result.RoomKey, result.ReservationID, len(result.GuestIDs))
	handlers.RespondJSON(w, http.StatusOK, result)
}
