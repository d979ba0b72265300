package update_tax

import (
	"errors"
	"net/http"

	"github.com/kratvil/HES-HotelService/internal/api/handlers"
	"github.com/kratvil/HES-HotelService/internal/service/settings"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgTaxOutOfRange      = "процент налога должен быть от 0 до 100"
)

type Handler struct {
	service SettingsService
	logger  Logger
}

func NewHandler(service SettingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/settings/tax
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req settings.SetTaxRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /settings/tax - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.SetTax(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, settings.ErrTaxOutOfRange):
			h.logger.Warn("PUT /settings/tax - Tax out of range: %d", req.TaxPercent)
			handlers.RespondValidation(w, msgTaxOutOfRange, nil)

		default:
			h.logger.Error("PUT /settings/tax - Failed to set tax: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /settings/tax - Tax updated: %d%%", result.TaxPercent)
	handlers.RespondJSON(w, http.StatusOK, result)
}
