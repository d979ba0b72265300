package get_room_info

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/kratvil/HES-HotelService/internal/api/handlers"
	"github.com/kratvil/HES-HotelService/internal/service/rooms"
)

const msgNotFound = "комната не найдена"

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

// Handle GET /api/v1/rooms/{roomKey}
// Информация о комнате: жильцы и предварительный расчет стоимости.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	roomKey := vars["roomKey"]

	result, err := h.service.Info(r.Context(), roomKey)
	if err != nil {
		switch {
		case errors.Is(err, rooms.ErrRoomNotFound):
			h.logger.Warn("GET /rooms/{key} - Room not found: key=%s", roomKey)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /rooms/{key} - Failed to get room info: key=%s, error=%v", roomKey, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
