package locations

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-VideoLinkService/internal/domain"
)

// LocationUsageRepository интерфейс репозитория записей об использовании комнат
type LocationUsageRepository interface {
	GetByLocationID(ctx context.Context, locationID uuid.UUID) (*domain.LocationUsageRecord, error)
	Create(ctx context.Context, record *domain.LocationUsageRecord) (*domain.LocationUsageRecord, error)
	Update(ctx context.Context, record *domain.LocationUsageRecord) (*domain.LocationUsageRecord, error)
	ReactivateExpiredBlocks(ctx context.Context, today time.Time) (int64, error)
	GetScheduleRows(ctx context.Context, locationUsageID int64) ([]domain.ScheduleRow, error)
	CreateScheduleRow(ctx context.Context, row *domain.ScheduleRow) (*domain.ScheduleRow, error)
	DeleteScheduleRows(ctx context.Context, locationUsageID int64) error
}

// LocationsClient интерфейс клиента справочника локаций
type LocationsClient interface {
	GetVideoLinkRooms(ctx context.Context, prisonCode string, enabledOnly bool) ([]domain.Room, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
