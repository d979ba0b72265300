package create_room

import (
	"errors"
	"net/http"

	"github.com/kratvil/HES-HotelService/internal/api/handlers"
	"github.com/kratvil/HES-HotelService/internal/service/rooms"
	"github.com/kratvil/HES-HotelService/internal/service/rooms/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidRoom        = "некорректные данные комнаты"
	msgBedsOutOfRange     = "число кроватей должно быть от 1 до 7"
	msgAlreadyExists      = "комната с таким номером уже существует"
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

// Handle POST /api/v1/rooms
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateRoomRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /rooms - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, rooms.ErrBedsOutOfRange):
			h.logger.Warn("POST /rooms - Beds out of range: key=%s, beds=%d", req.Key, req.Beds)
			handlers.RespondValidation(w, msgBedsOutOfRange, nil)

		case errors.Is(err, rooms.ErrInvalidRoom):
			h.logger.Warn("POST /rooms - Invalid room: key=%s", req.Key)
			handlers.RespondValidation(w, msgInvalidRoom, nil)

		case errors.Is(err, rooms.ErrRoomAlreadyExists):
			h.logger.Warn("POST /rooms - Room already exists: key=%s", req.Key)
			handlers.RespondConflict(w, msgAlreadyExists)

		default:
			h.logger.Error("POST /rooms - Failed to create room: key=%s, error=%v", req.Key, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /rooms - Room created: key=%s, beds=%d", result.Key, result.Beds)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
