package occupancy

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-VideoLinkService/internal/domain"
)

// Service собирает занятость комнат из внутренних бронирований и внешней системы расписаний
type Service struct {
	bookingRepo    BookingRepository
	externalSource ExternalSlotSource
	logger         Logger
}

// NewService создает новый экземпляр сервиса занятости
func NewService(bookingRepo BookingRepository, externalSource ExternalSlotSource, logger Logger) *Service {
	return &Service{
		bookingRepo:    bookingRepo,
		externalSource: externalSource,
		logger:         logger,
	}
}

// Occupied строит индекс занятости комнат тюрьмы на дату
// Встречи бронирования excludeBookingID не учитываются (изменение существующего бронирования)
func (s *Service) Occupied(
	ctx context.Context,
	prisonCode string,
	date time.Time,
	locationKeys []string,
	excludeBookingID *int64,
) (*Index, error) {
	keys := distinct(locationKeys)
	if len(keys) == 0 {
		return NewIndex(nil, nil), nil
	}

	// 1. Внутренние слоты активных бронирований
	appointments, err := s.bookingRepo.GetActiveAppointments(ctx, prisonCode, date, keys)
	if err != nil {
		s.logger.Error("Occupied: failed to get appointments for prison=%s, date=%s: %v",
			prisonCode, date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: Occupied - get internal appointments: %v", ErrInternal, err)
	}

	internal := make([]domain.InternalSlot, 0, len(appointments))
	for _, a := range appointments {
		if excludeBookingID != nil && a.VideoBookingID == *excludeBookingID {
			continue
		}
		internal = append(internal, a.ToInternalSlot())
	}

	// 2. Внешние слоты, по одному запросу на комнату
	external := make([]domain.ExternalSlot, 0)
	for _, key := range keys {
		slots, err := s.externalSource.AppointmentsAt(ctx, prisonCode, date, key)
		if err != nil {
			s.logger.Error("Occupied: failed to get external appointments for location=%s: %v", key, err)
			return nil, fmt.Errorf("%w: Occupied - get external appointments for %s: %v", ErrInternal, key, err)
		}
		external = append(external, slots...)
	}

	// 3. Объединяем с исключением дублей
	idx := NewIndex(internal, external)

	s.logger.Info("Occupied: prison=%s, date=%s, locations=%d, internal=%d, external=%d, total=%d",
		prisonCode, date.Format(domain.DateFormat), len(keys), len(internal), len(external), len(idx.Slots()))

	return idx, nil
}

func distinct(keys []string) []string {
	result := make([]string, 0, len(keys))
	seen := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		result = append(result, k)
	}
	return result
}
