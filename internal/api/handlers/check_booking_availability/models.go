package check_booking_availability

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-VideoLinkService/internal/domain"
	checkAvailability "github.com/m04kA/SMC-VideoLinkService/internal/usecase/check_booking_availability"
	"github.com/m04kA/SMC-VideoLinkService/pkg/types"
)

var errMissingMain = errors.New("mainAppointment is required")

// AvailabilityRequest HTTP request model
type AvailabilityRequest struct {
	PrisonCode       string       `json:"prisonCode"`
	Date             string       `json:"date"`        // "2025-04-07"
	BookingType      string       `json:"bookingType"` // COURT, PROBATION
	PartyCode        string       `json:"courtOrProbationCode"`
	ExcludeBookingID *int64       `json:"vlbIdToExclude,omitempty"`
	Pre              *Appointment `json:"preAppointment,omitempty"`
	Main             *Appointment `json:"mainAppointment"`
	Post             *Appointment `json:"postAppointment,omitempty"`
}

// Appointment комната и интервал одной части бронирования
type Appointment struct {
	LocationKey string `json:"prisonLocKey"`
	StartTime   string `json:"startTime"` // "10:00"
	EndTime     string `json:"endTime"`   // "11:00"
}

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	AvailabilityOk bool     `json:"availabilityOk"`
	Alternatives   []Option `json:"alternatives"`
}

// Option вариант бронирования
type Option struct {
	Pre  *Appointment `json:"pre,omitempty"`
	Main Appointment  `json:"main"`
	Post *Appointment `json:"post,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *AvailabilityRequest) ToUseCaseRequest() (*checkAvailability.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, fmt.Errorf("date: %w", err)
	}

	if r.Main == nil {
		return nil, errMissingMain
	}

	main, err := r.Main.toDomain()
	if err != nil {
		return nil, fmt.Errorf("mainAppointment: %w", err)
	}

	option := domain.BookingOption{Main: *main}

	if r.Pre != nil {
		if option.Pre, err = r.Pre.toDomain(); err != nil {
			return nil, fmt.Errorf("preAppointment: %w", err)
		}
	}

	if r.Post != nil {
		if option.Post, err = r.Post.toDomain(); err != nil {
			return nil, fmt.Errorf("postAppointment: %w", err)
		}
	}

	return &checkAvailability.Request{
		PrisonCode:       r.PrisonCode,
		Date:             date,
		Option:           option,
		PartyType:        domain.BookingType(strings.ToUpper(r.BookingType)),
		PartyCode:        r.PartyCode,
		ExcludeBookingID: r.ExcludeBookingID,
	}, nil
}

func (a *Appointment) toDomain() (*domain.LocationAndInterval, error) {
	start, err := types.NewTimeStringFromString(a.StartTime)
	if err != nil {
		return nil, err
	}
	end, err := types.NewTimeStringFromString(a.EndTime)
	if err != nil {
		return nil, err
	}

	return &domain.LocationAndInterval{
		LocationKey: a.LocationKey,
		Interval:    domain.Interval{Start: start, End: end},
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *checkAvailability.Response) *AvailabilityResponse {
	alternatives := make([]Option, len(resp.Alternatives))
	for i, alt := range resp.Alternatives {
		alternatives[i] = Option{
			Pre:  fromDomainPart(alt.Pre),
			Main: *fromDomainPart(&alt.Main),
			Post: fromDomainPart(alt.Post),
		}
	}

	return &AvailabilityResponse{
		AvailabilityOk: resp.Available,
		Alternatives:   alternatives,
	}
}

func fromDomainPart(part *domain.LocationAndInterval) *Appointment {
	if part == nil {
		return nil
	}
	return &Appointment{
		LocationKey: part.LocationKey,
		StartTime:   part.Interval.Start.String(),
		EndTime:     part.Interval.End.String(),
	}
}
