package check_booking_availability

import (
	"fmt"
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

	if err := req.Option.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if req.ExcludeBookingID != nil && *req.ExcludeBookingID <= 0 {
		return fmt.Errorf("%w: bookingId must be positive", ErrInvalidInput)
	}

	return nil
}
