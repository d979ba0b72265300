package update_room_beds

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/kratvil/HES-HotelService/internal/api/handlers"
	"github.com/kratvil/HES-HotelService/internal/service/rooms"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgNotFound           = "комната не найдена"
	msgBedsOutOfRange     = "число кроватей должно быть от 1 до 7"
	msgWouldOverflow      = "нельзя убрать кровати, пока в комнате столько жильцов"
)

// UpdateBedsRequest HTTP request model
type UpdateBedsRequest struct {
	Beds int `json:"beds"`
}

type Handler struct {
	service RoomService
	logger  Logger
}

func NewHandler(service RoomService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/rooms/{roomKey}/beds
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	roomKey := vars["roomKey"]

	var req UpdateBedsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /rooms/{key}/beds - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdateBeds(r.Context(), roomKey, req.Beds)
	if err != nil {
		switch {
		case errors.Is(err, rooms.ErrRoomNotFound):
			h.logger.Warn("PATCH /rooms/{key}/beds - Room not found: key=%s", roomKey)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, rooms.ErrBedsOutOfRange):
			h.logger.Warn("PATCH /rooms/{key}/beds - Beds out of range: key=%s, beds=%d", roomKey, req.Beds)
			handlers.RespondValidation(w, msgBedsOutOfRange, nil)

		case errors.Is(err, rooms.ErrWouldOverflowCapacity):
			h.logger.Warn("PATCH /rooms/{key}/beds - Would overflow capacity: key=%s, beds=%d", roomKey, req.Beds)
			handlers.RespondConflict(w, msgWouldOverflow)

		default:
			h.logger.Error("PATCH /rooms/{key}/beds - Failed to update beds: key=%s, error=%v", roomKey, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /rooms/{key}/beds - Beds updated: key=%s, beds=%d", result.Key, result.Beds)
	handlers.RespondJSON(w, http.StatusOK, result)
}
