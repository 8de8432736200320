package get_location_usage

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-VideoLinkService/internal/service/locations/models"
)

type LocationService interface {
	Get(ctx context.Context, locationID uuid.UUID) (*models.LocationUsageResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
