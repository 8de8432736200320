package find_available_rooms

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-VideoLinkService/internal/domain"
	findAvailableRooms "github.com/m04kA/SMC-VideoLinkService/internal/usecase/find_available_rooms"
	"github.com/m04kA/SMC-VideoLinkService/pkg/types"
)

// AvailableRoomsResponse HTTP response model
type AvailableRoomsResponse struct {
	PrisonCode string          `json:"prisonCode"`
	Date       string          `json:"date"`
	Slots      []AvailableSlot `json:"availableSlots"`
}

// AvailableSlot свободная комната на интервал
type AvailableSlot struct {
	LocationID   uuid.UUID `json:"dpsLocationId"`
	LocationKey  string    `json:"dpsLocationKey"`
	LocationName string    `json:"name"`
	StartTime    string    `json:"startTime"`
	EndTime      string    `json:"endTime"`
	Availability string    `json:"availabilityStatus"`
	TimeSlot     string    `json:"timeSlot"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *findAvailableRooms.Response) *AvailableRoomsResponse {
	slots := make([]AvailableSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = AvailableSlot{
			LocationID:   slot.LocationID,
			LocationKey:  slot.LocationKey,
			LocationName: slot.LocationName,
			StartTime:    slot.Interval.Start.String(),
			EndTime:      slot.Interval.End.String(),
			Availability: string(slot.Availability),
			TimeSlot:     string(slot.TimeSlot),
		}
	}

	return &AvailableRoomsResponse{
		PrisonCode: resp.PrisonCode,
		Date:       resp.Date.Format(domain.DateFormat),
		Slots:      slots,
	}
}

// ToUseCaseRequest создает запрос use case из query параметров
// Поддерживаемые параметры: date, duration, partyType, partyCode,
// timeSlots (через запятую или повтором), excludeBookingId, startTime, endTime
func ToUseCaseRequest(prisonCode string, query url.Values) (*findAvailableRooms.Request, error) {
	date, err := time.Parse(domain.DateFormat, query.Get("date"))
	if err != nil {
		return nil, fmt.Errorf("date: %w", err)
	}

	req := &findAvailableRooms.Request{
		PrisonCode: prisonCode,
		Date:       date,
		PartyType:  domain.BookingType(strings.ToUpper(query.Get("partyType"))),
		PartyCode:  query.Get("partyCode"),
	}

	if v := query.Get("duration"); v != "" {
		duration, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("duration: %w", err)
		}
		req.DurationMinutes = duration
	}

	for _, raw := range query["timeSlots"] {
		for _, part := range strings.Split(raw, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			req.TimeSlots = append(req.TimeSlots, domain.TimeSlot(strings.ToUpper(part)))
		}
	}

	if v := query.Get("excludeBookingId"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("excludeBookingId: %w", err)
		}
		req.ExcludeBookingID = &id
	}

	if v := query.Get("startTime"); v != "" {
		start, err := types.NewTimeStringFromString(v)
		if err != nil {
			return nil, fmt.Errorf("startTime: %w", err)
		}
		req.StartTime = &start
	}

	if v := query.Get("endTime"); v != "" {
		end, err := types.NewTimeStringFromString(v)
		if err != nil {
			return nil, fmt.Errorf("endTime: %w", err)
		}
		req.EndTime = &end
	}

	return req, nil
}
