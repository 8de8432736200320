package check_booking_availability

import (
	"context"
	"time"

	"github.com/m04kA/SMC-VideoLinkService/internal/domain"
	"github.com/m04kA/SMC-VideoLinkService/internal/service/occupancy"
)

// BookingRepository интерфейс хранилища бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.VideoBooking, error)
}

// OccupancyService интерфейс сервиса занятости комнат
type OccupancyService interface {
	Occupied(ctx context.Context, prisonCode string, date time.Time, locationKeys []string, excludeBookingID *int64) (*occupancy.Index, error)
}

// SlotGenerator интерфейс генератора кандидатов времени
type SlotGenerator interface {
	Regime(ctx context.Context, prisonCode string) (domain.PrisonRegime, error)
	Generate(ctx context.Context, prisonCode string, date time.Time, durationMinutes int, buckets []domain.TimeSlot) ([]domain.Interval, error)
}

// LocationsClient интерфейс клиента справочника локаций
type LocationsClient interface {
	GetVideoLinkRooms(ctx context.Context, prisonCode string, enabledOnly bool) ([]domain.Room, error)
}

// PolicyLoader интерфейс загрузки политик владения комнатами
type PolicyLoader interface {
	PoliciesFor(ctx context.Context, rooms []domain.Room) ([]domain.LocationPolicy, error)
}

// MetricsRecorder интерфейс учета исходов проверки
type MetricsRecorder interface {
	RecordAvailabilityCheck(outcome string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
