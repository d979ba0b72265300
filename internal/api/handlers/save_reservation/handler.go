package save_reservation

import (
	"errors"
	"net/http"

	"github.com/kratvil/HES-HotelService/internal/api/handlers"
	"github.com/kratvil/HES-HotelService/internal/service/reservations"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgValidationFailed   = "бронирование не прошло валидацию"
	msgNoCapacity         = "в отеле нет мест на выбранные даты"
	msgNotFound           = "бронирование не найдено"
	msgNotEditable        = "завершенное или отмененное бронирование нельзя менять"
)

type Handler struct {
	service ReservationService
	logger  Logger
}

func NewHandler(service ReservationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations
// Создание новой брони либо правка существующей, если в теле передан id.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req SaveReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToServiceRequest()
	if err != nil {
		h.logger.Warn("POST /reservations - Failed to parse dates: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.Save(r.Context(), serviceReq)
	if err != nil {
		var validationErr *reservations.ValidationError
		switch {
		case errors.As(err, &validationErr):
			h.logger.Warn("POST /reservations - Validation failed: %v", validationErr.Violations)
			handlers.RespondValidation(w, msgValidationFailed, validationErr.Violations)

		case errors.Is(err, reservations.ErrNoCapacity):
			h.logger.Warn("POST /reservations - No capacity: people=%d, from=%s, to=%s",
				req.People, req.DateFrom, req.DateTo)
			handlers.RespondConflict(w, msgNoCapacity)

		case errors.Is(err, reservations.ErrReservationNotFound):
			h.logger.Warn("POST /reservations - Reservation not found for edit")
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, reservations.ErrNotEditable):
			h.logger.Warn("POST /reservations - Reservation is not editable")
			handlers.RespondConflict(w, msgNotEditable)

		default:
			h.logger.Error("POST /reservations - Failed to save reservation: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	status := http.StatusCreated
	if req.ID != nil {
		status = http.StatusOK
	}

	h.logger.Info("POST /reservations - Reservation saved: reservation_id=%d, state=%s", result.ID, result.State)
	handlers.RespondJSON(w, status, result)
}
