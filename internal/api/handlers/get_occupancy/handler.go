package get_occupancy

import (
	"net/http"

	"github.com/kratvil/HES-HotelService/internal/api/handlers"
)

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

// Handle GET /api/v1/occupancy
// Сводка для подвала интерфейса: сколько гостей расселено,
// сколько комнат занято из общего числа.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.Occupancy(r.Context())
	if err != nil {
		h.logger.Error("GET /occupancy - Failed to get occupancy summary: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
