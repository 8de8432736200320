package add_schedule_row

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
	msgNotScheduleMode    = "комната не в режиме расписания"
	msgDuplicateRow       = "такая строка расписания уже есть"
	msgInvalidData        = "некорректная строка расписания"
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

// Handle POST /api/v1/locations/{locationId}/usage/schedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	locationID, err := uuid.Parse(mux.Vars(r)["locationId"])
	if err != nil {
		h.logger.Warn("POST /locations/{id}/usage/schedule - Invalid location ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidLocationID)
		return
	}

	user, ok := handlers.UserFromRequest(r)
	if !ok {
		h.logger.Warn("POST /locations/{id}/usage/schedule - Missing %s header", handlers.UserHeader)
		handlers.RespondBadRequest(w, msgMissingUser)
		return
	}

	var req models.AddScheduleRowRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /locations/{id}/usage/schedule - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	req.LocationID = locationID
	req.User = user

	result, err := h.service.AddScheduleRow(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, locations.ErrLocationUsageNotFound):
			h.logger.Warn("POST /locations/{id}/usage/schedule - Usage not found: location=%s", locationID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, locations.ErrNotScheduleMode):
			h.logger.Warn("POST /locations/{id}/usage/schedule - Not in schedule mode: location=%s", locationID)
			handlers.RespondUnprocessable(w, msgNotScheduleMode)

		case errors.Is(err, locations.ErrDuplicateScheduleRow):
			h.logger.Warn("POST /locations/{id}/usage/schedule - Duplicate row: location=%s", locationID)
			handlers.RespondConflict(w, msgDuplicateRow)

		case errors.Is(err, locations.ErrInvalidInput):
			h.logger.Warn("POST /locations/{id}/usage/schedule - Invalid row: location=%s, error=%v", locationID, err)
			handlers.RespondBadRequest(w, msgInvalidData)

		default:
			h.logger.Error("POST /locations/{id}/usage/schedule - Failed to add row: location=%s, error=%v", locationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /locations/{id}/usage/schedule - Row added: location=%s, rows=%d", locationID, len(result.Schedule))
	handlers.RespondJSON(w, http.StatusCreated, result)
}
