package check_booking_availability

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-VideoLinkService/internal/api/handlers"
	checkAvailability "github.com/m04kA/SMC-VideoLinkService/internal/usecase/check_booking_availability"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные запроса"
	msgBookingNotFound    = "бронирование не найдено"
	msgLocationNotFound   = "комната не найдена"
)

type Handler struct {
	useCase CheckAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase CheckAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/availability/check
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req AvailabilityRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /availability/check - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /availability/check - Invalid request: prison=%s, error=%v", req.PrisonCode, err)
		handlers.RespondBadRequest(w, msgInvalidInput)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, checkAvailability.ErrInvalidInput):
			h.logger.Warn("POST /availability/check - Invalid input: prison=%s, error=%v", req.PrisonCode, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, checkAvailability.ErrBookingNotFound):
			h.logger.Warn("POST /availability/check - Booking not found: booking_id=%v", req.ExcludeBookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, checkAvailability.ErrLocationNotFound):
			h.logger.Warn("POST /availability/check - Location not found: prison=%s, error=%v", req.PrisonCode, err)
			handlers.RespondNotFound(w, msgLocationNotFound)

		default:
			h.logger.Error("POST /availability/check - Failed to check availability: prison=%s, error=%v", req.PrisonCode, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /availability/check - Checked: prison=%s, available=%t, alternatives=%d",
		req.PrisonCode, result.Available, len(result.Alternatives))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
