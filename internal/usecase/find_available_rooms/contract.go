package find_available_rooms

import (
	"context"
	"time"

	"github.com/m04kA/SMC-VideoLinkService/internal/domain"
	"github.com/m04kA/SMC-VideoLinkService/internal/service/occupancy"
)

// LocationsClient интерфейс клиента справочника локаций
type LocationsClient interface {
	GetVideoLinkRooms(ctx context.Context, prisonCode string, enabledOnly bool) ([]domain.Room, error)
}

// PolicyLoader интерфейс загрузки политик владения комнатами
type PolicyLoader interface {
	PoliciesFor(ctx context.Context, rooms []domain.Room) ([]domain.LocationPolicy, error)
}

// SlotGenerator интерфейс генератора кандидатов времени
type SlotGenerator interface {
	Generate(ctx context.Context, prisonCode string, date time.Time, durationMinutes int, buckets []domain.TimeSlot) ([]domain.Interval, error)
}

// OccupancyService интерфейс сервиса занятости комнат
type OccupancyService interface {
	Occupied(ctx context.Context, prisonCode string, date time.Time, locationKeys []string, excludeBookingID *int64) (*occupancy.Index, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
