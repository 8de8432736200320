package activities

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-VideoLinkService/internal/domain"
	"github.com/m04kA/SMC-VideoLinkService/pkg/types"
)

// SlotSource адаптирует клиент к источнику внешних занятых слотов
type SlotSource struct {
	client *Client
	log    Logger
}

// NewSlotSource создает адаптер над клиентом
func NewSlotSource(client *Client, log Logger) *SlotSource {
	return &SlotSource{client: client, log: log}
}

// AppointmentsAt возвращает внешние занятые слоты комнаты на дату
func (s *SlotSource) AppointmentsAt(ctx context.Context, prisonCode string, date time.Time, locationKey string) ([]domain.ExternalSlot, error) {
	appointments, err := s.client.GetAppointments(ctx, prisonCode, date, locationKey)
	if err != nil {
		return nil, fmt.Errorf("AppointmentsAt: %w", err)
	}
	return ToExternalSlots(appointments, date, locationKey, s.log), nil
}

// ToExternalSlots переводит встречи внешней системы в занятые слоты
// Отбрасываются отмененные встречи, встречи категорий видеосвязи (они уже есть как внутренние)
// и встречи без времени окончания
// Слоты относятся к запрошенной комнате locationKey, ключ из ответа не используется
func ToExternalSlots(appointments []Appointment, date time.Time, locationKey string, log Logger) []domain.ExternalSlot {
	slots := make([]domain.ExternalSlot, 0, len(appointments))

	for _, a := range appointments {
		if a.IsCancelled || domain.IsVideoLinkCategory(a.CategoryCode) || a.EndTime == nil {
			continue
		}

		start, err := types.NewTimeStringFromString(a.StartTime)
		if err != nil {
			log.Warn("Skipping appointment id=%d: invalid start time %q: %v", a.AppointmentID, a.StartTime, err)
			continue
		}
		end, err := types.NewTimeStringFromString(*a.EndTime)
		if err != nil {
			log.Warn("Skipping appointment id=%d: invalid end time %q: %v", a.AppointmentID, *a.EndTime, err)
			continue
		}

		if a.InternalLocKey != "" && a.InternalLocKey != locationKey {
			log.Warn("Appointment id=%d reported at location %q, expected %q", a.AppointmentID, a.InternalLocKey, locationKey)
		}

		slotDate := date
		if a.StartDate != "" {
			if d, err := time.Parse(domain.DateFormat, a.StartDate); err == nil {
				slotDate = d
			}
		}

		slots = append(slots, domain.ExternalSlot{
			SlotDetails: domain.SlotDetails{
				LocationKey:    locationKey,
				PrisonerNumber: a.PrisonerNumber,
				Date:           slotDate,
				StartTime:      start,
				EndTime:        end,
			},
			AppointmentID: a.AppointmentID,
			CategoryCode:  a.CategoryCode,
		})
	}

	return slots
}
