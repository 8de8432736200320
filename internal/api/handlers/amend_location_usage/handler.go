package amend_location_usage

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
	msgNotFound           = "комната не декорирована"
	msgInvalidData        = "некорректные данные комнаты"
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

// Handle PUT /api/v1/locations/{locationId}/usage
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	locationID, err := uuid.Parse(mux.Vars(r)["locationId"])
	if err != nil {
		h.logger.Warn("PUT /locations/{id}/usage - Invalid location ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidLocationID)
		return
	}

	user, ok := handlers.UserFromRequest(r)
	if !ok {
		h.logger.Warn("PUT /locations/{id}/usage - Missing %s header", handlers.UserHeader)
		handlers.RespondBadRequest(w, msgMissingUser)
		return
	}

	var req models.AmendRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /locations/{id}/usage - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	req.LocationID = locationID
	req.User = user

	result, err := h.service.Amend(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, locations.ErrLocationUsageNotFound):
			h.logger.Warn("PUT /locations/{id}/usage - Usage not found: location=%s", locationID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, locations.ErrInvalidInput):
			h.logger.Warn("PUT /locations/{id}/usage - Invalid data: location=%s, error=%v", locationID, err)
			handlers.RespondBadRequest(w, msgInvalidData)

		default:
			h.logger.Error("PUT /locations/{id}/usage - Failed to amend: location=%s, error=%v", locationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /locations/{id}/usage - Usage amended: location=%s, usage=%s", locationID, result.Usage)
	handlers.RespondJSON(w, http.StatusOK, result)
}
