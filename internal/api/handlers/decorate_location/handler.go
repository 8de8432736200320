package decorate_location

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-VideoLinkService/internal/api/handlers"
	"github.com/m04kA/SMC-VideoLinkService/internal/service/locations"
	"github.com/m04kA/SMC-VideoLinkService/internal/service/locations/models"
)

const (
	msgInvalidLocationID  = "некорректный ID комнаты"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUser        = "не указан пользователь"
	msgInvalidData        = "некорректные данные комнаты"
	msgLocationNotFound   = "комната видеосвязи не найдена"
	msgAlreadyDecorated   = "комната уже декорирована"
)

type Handler struct {
	service LocationService
	logger  Logger
}

func NewHandler(service LocationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/locations/{locationId}/usage
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	locationID, err := uuid.Parse(mux.Vars(r)["locationId"])
	if err != nil {
		h.logger.Warn("POST /locations/{id}/usage - Invalid location ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidLocationID)
		return
	}

	user, ok := handlers.UserFromRequest(r)
	if !ok {
		h.logger.Warn("POST /locations/{id}/usage - Missing %s header", handlers.UserHeader)
		handlers.RespondBadRequest(w, msgMissingUser)
		return
	}

	var req models.DecorateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /locations/{id}/usage - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	req.LocationID = locationID
	req.User = user

	result, err := h.service.Decorate(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, locations.ErrInvalidInput):
			h.logger.Warn("POST /locations/{id}/usage - Invalid data: location=%s, error=%v", locationID, err)
			handlers.RespondBadRequest(w, msgInvalidData)

		case errors.Is(err, locations.ErrLocationNotFound):
			h.logger.Warn("POST /locations/{id}/usage - Location not found: location=%s, prison=%s", locationID, req.PrisonCode)
			handlers.RespondNotFound(w, msgLocationNotFound)

		case errors.Is(err, locations.ErrAlreadyDecorated):
			h.logger.Warn("POST /locations/{id}/usage - Already decorated: location=%s", locationID)
			handlers.RespondConflict(w, msgAlreadyDecorated)

		default:
			h.logger.Error("POST /locations/{id}/usage - Failed to decorate: location=%s, error=%v", locationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /locations/{id}/usage - Location decorated: location=%s, usage_id=%d", locationID, result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
