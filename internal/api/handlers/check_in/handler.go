package check_in

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/kratvil/HES-HotelService/internal/api/handlers"
	checkInUC "github.com/kratvil/HES-HotelService/internal/usecase/check_in"
)

const (
	msgInvalidReservationID = "некорректный ID бронирования"
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgValidationFailed     = "карточки гостей не прошли валидацию"
	msgNotFound             = "бронирование не найдено"
	msgNotUpcoming          = "заселить можно только предстоящее бронирование"
	msgWrongPartySize       = "число гостей не совпадает с числом мест в бронировании"
)

type Handler struct {
	useCase CheckInUseCase
	logger  Logger
}

func NewHandler(useCase CheckInUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations/{reservationId}/check-in
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	reservationID, err := strconv.ParseInt(vars["reservationId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /reservations/{id}/check-in - Invalid reservation ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	var req CheckInRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations/{id}/check-in - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(reservationID))
	if err != nil {
		var validationErr *checkInUC.ValidationError
		switch {
		case errors.As(err, &validationErr):
			h.logger.Warn("POST /reservations/{id}/check-in - Validation failed: reservation_id=%d, violations=%v",
				reservationID, validationErr.Violations)
			handlers.RespondValidation(w, msgValidationFailed, validationErr.Violations)

		case errors.Is(err, checkInUC.ErrReservationNotFound):
			h.logger.Warn("POST /reservations/{id}/check-in - Reservation not found: reservation_id=%d", reservationID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, checkInUC.ErrNotUpcoming):
			h.logger.Warn("POST /reservations/{id}/check-in - Not upcoming: reservation_id=%d", reservationID)
			handlers.RespondConflict(w, msgNotUpcoming)

		case errors.Is(err, checkInUC.ErrWrongPartySize):
			h.logger.Warn("POST /reservations/{id}/check-in - Wrong party size: reservation_id=%d, guests=%d",
				reservationID, len(req.Guests))
			handlers.RespondConflict(w, msgWrongPartySize)

		default:
			h.logger.Error("POST /reservations/{id}/check-in - Failed to check in: reservation_id=%d, error=%v",
				reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations/{id}/check-in - Checked in: reservation_id=%d, guests=%d",
		reservationID, len(result.Guests))
	handlers.RespondJSON(w, http.StatusOK, result)
}
