package occupancy

import (
	"context"
	"time"

	"github.com/m04kA/SMC-VideoLinkService/internal/domain"
)

// BookingRepository интерфейс хранилища внутренних бронирований
type BookingRepository interface {
	GetActiveAppointments(ctx context.Context, prisonCode string, date time.Time, locationKeys []string) ([]domain.PrisonAppointment, error)
}

// ExternalSlotSource интерфейс источника встреч из внешней системы расписаний
// Ожидается, что источник уже отбросил категории видеосвязи и встречи без времени окончания
type ExternalSlotSource interface {
	AppointmentsAt(ctx context.Context, prisonCode string, date time.Time, locationKey string) ([]domain.ExternalSlot, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
