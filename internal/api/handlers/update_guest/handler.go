package update_guest

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/kratvil/HES-HotelService/internal/api/handlers"
	"github.com/kratvil/HES-HotelService/internal/service/guests"
	"github.com/kratvil/HES-HotelService/internal/service/guests/models"
)

const (
	msgInvalidGuestID     = "некорректный ID гостя"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgValidationFailed   = "карточка гостя не прошла валидацию"
	msgNotFound           = "гость не найден"
)

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

// Handle PUT /api/v1/guests/{guestId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	guestID, err := strconv.ParseInt(vars["guestId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /guests/{id} - Invalid guest ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidGuestID)
		return
	}

	var req models.UpdateGuestRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /guests/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), guestID, &req)
	if err != nil {
		var validationErr *guests.ValidationError
		switch {
		case errors.As(err, &validationErr):
			h.logger.Warn("PUT /guests/{id} - Validation failed: guest_id=%d, violations=%v",
				guestID, validationErr.Violations)
			handlers.RespondValidation(w, msgValidationFailed, validationErr.Violations)

		case errors.Is(err, guests.ErrGuestNotFound):
			h.logger.Warn("PUT /guests/{id} - Guest not found: guest_id=%d", guestID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("PUT /guests/{id} - Failed to update guest: guest_id=%d, error=%v", guestID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /guests/{id} - Guest updated: guest_id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
