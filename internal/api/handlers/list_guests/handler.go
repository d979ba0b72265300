package list_guests

import (
	"net/http"
	"strconv"

	"github.com/kratvil/HES-HotelService/internal/api/handlers"
	"github.com/kratvil/HES-HotelService/internal/service/guests/models"
)

const msgInvalidReservationID = "некорректный параметр reservationId"

type Handler struct {
	service GuestService
	logger  Logger
}

func NewHandler(service GuestService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/guests?reservationId=N или ?room=KEY
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var filter models.ListFilter

	if raw := r.URL.Query().Get("reservationId"); raw != "" {
		reservationID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			h.logger.Warn("GET /guests - Invalid reservationId param: %q", raw)
			handlers.RespondBadRequest(w, msgInvalidReservationID)
			return
		}
		filter.ReservationID = &reservationID
	} else if room := r.URL.Query().Get("room"); room != "" {
		filter.RoomKey = &room
	}

	result, err := h.service.List(r.Context(), filter)
	if err != nil {
		h.logger.Error("GET /guests - Failed to list guests: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
