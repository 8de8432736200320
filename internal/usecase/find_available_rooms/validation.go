package find_available_rooms

import (
	"fmt"

	"github.com/m04kA/SMC-VideoLinkService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.PrisonCode == "" {
		return fmt.Errorf("%w: prisonCode is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if !req.PartyType.IsValid() {
		return fmt.Errorf("%w: unknown party type %q", ErrInvalidInput, req.PartyType)
	}

	if req.PartyCode == "" {
		return fmt.Errorf("%w: party code is required", ErrInvalidInput)
	}

	for _, slot := range req.TimeSlots {
		if !slot.IsValid() {
			return fmt.Errorf("%w: unknown time slot %q", ErrInvalidInput, slot)
		}
	}

	// Точное окно заменяет длительность
	if req.HasExactWindow() {
		if req.StartTime == nil || req.EndTime == nil {
			return fmt.Errorf("%w: both startTime and endTime are required", ErrInvalidInput)
		}
		if _, err := domain.NewInterval(*req.StartTime, *req.EndTime); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		return nil
	}

	if req.DurationMinutes < domain.MinMeetingDuration || req.DurationMinutes > domain.MaxMeetingDuration {
		return fmt.Errorf("%w: duration must be between %d and %d minutes",
			ErrInvalidInput, domain.MinMeetingDuration, domain.MaxMeetingDuration)
	}

	return nil
}
