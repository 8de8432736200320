package find_available_rooms

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-VideoLinkService/internal/api/handlers"
	findAvailableRooms "github.com/m04kA/SMC-VideoLinkService/internal/usecase/find_available_rooms"
)

const (
	msgMissingPrisonCode = "код тюрьмы обязателен"
	msgMissingDate       = "дата обязательна"
	msgInvalidQuery      = "некорректные параметры запроса"
	msgInvalidInput      = "некорректные данные запроса"
	msgPrisonNotFound    = "тюрьма не найдена"
	msgMixedAvailability = "комнаты настроены одновременно для суда и пробации"
)

type Handler struct {
	useCase FindAvailableRoomsUseCase
	logger  Logger
}

func NewHandler(useCase FindAvailableRoomsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/prisons/{prisonCode}/available-rooms
// Query params: date (required, YYYY-MM-DD), partyType, partyCode, duration,
// timeSlots, excludeBookingId, startTime, endTime
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	prisonCode := mux.Vars(r)["prisonCode"]
	if prisonCode == "" {
		h.logger.Warn("GET /prisons/{code}/available-rooms - Missing prison code")
		handlers.RespondBadRequest(w, msgMissingPrisonCode)
		return
	}

	query := r.URL.Query()
	if query.Get("date") == "" {
		h.logger.Warn("GET /prisons/{code}/available-rooms - Missing date: prison=%s", prisonCode)
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	useCaseReq, err := ToUseCaseRequest(prisonCode, query)
	if err != nil {
		h.logger.Warn("GET /prisons/{code}/available-rooms - Invalid query: prison=%s, error=%v", prisonCode, err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, findAvailableRooms.ErrInvalidInput):
			h.logger.Warn("GET /prisons/{code}/available-rooms - Invalid input: prison=%s, error=%v", prisonCode, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, findAvailableRooms.ErrPrisonNotFound):
			h.logger.Warn("GET /prisons/{code}/available-rooms - Prison not found: prison=%s", prisonCode)
			handlers.RespondNotFound(w, msgPrisonNotFound)

		case errors.Is(err, findAvailableRooms.ErrMixedPartyAvailability):
			h.logger.Error("GET /prisons/{code}/available-rooms - Misconfigured rooms: prison=%s, error=%v", prisonCode, err)
			handlers.RespondConflict(w, msgMixedAvailability)

		default:
			h.logger.Error("GET /prisons/{code}/available-rooms - Failed to find rooms: prison=%s, error=%v", prisonCode, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /prisons/{code}/available-rooms - Rooms found: prison=%s, date=%s, slots_count=%d",
		prisonCode, query.Get("date"), len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
