package get_tax

import (
	"net/http"

	"github.com/kratvil/HES-HotelService/internal/api/handlers"
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

// Handle GET /api/v1/settings/tax
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.GetTax(r.Context())
	if err != nil {
		h.logger.Error("GET /settings/tax - Failed to get tax: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
