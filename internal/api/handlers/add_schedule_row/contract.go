package add_schedule_row

import (
	"context"

	"github.com/m04kA/SMC-VideoLinkService/internal/service/locations/models"
)

type LocationService interface {
	AddScheduleRow(ctx context.Context, req *models.AddScheduleRowRequest) (*models.LocationUsageResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
