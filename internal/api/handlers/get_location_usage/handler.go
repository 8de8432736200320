package get_location_usage

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-VideoLinkService/internal/api/handlers"
	"github.com/m04kA/SMC-VideoLinkService/internal/service/locations"
)

const (
	msgInvalidLocationID = "некорректный ID комнаты"
	msgNotFound          = "комната не декорирована"
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

// Handle GET /api/v1/locations/{locationId}/usage
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	locationID, err := uuid.Parse(mux.Vars(r)["locationId"])
	if err != nil {
		h.logger.Warn("GET /locations/{id}/usage - Invalid location ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidLocationID)
		return
	}

	result, err := h.service.Get(r.Context(), locationID)
	if err != nil {
		if errors.Is(err, locations.ErrLocationUsageNotFound) {
			h.logger.Warn("GET /locations/{id}/usage - Usage not found: location=%s", locationID)
			handlers.RespondNotFound(w, msgNotFound)
			return
		}

		h.logger.Error("GET /locations/{id}/usage - Failed to get usage: location=%s, error=%v", locationID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /locations/{id}/usage - Usage retrieved: location=%s, usage=%s", locationID, result.Usage)
	handlers.RespondJSON(w, http.StatusOK, result)
}
