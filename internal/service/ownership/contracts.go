package ownership

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-VideoLinkService/internal/domain"
)

// LocationUsageRepository интерфейс хранилища записей об использовании комнат
type LocationUsageRepository interface {
	GetByLocationID(ctx context.Context, locationID uuid.UUID) (*domain.LocationUsageRecord, error)
	GetScheduleRows(ctx context.Context, locationUsageID int64) ([]domain.ScheduleRow, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
