package decorate_location

import (
	"context"

	"github.com/m04kA/SMC-VideoLinkService/internal/service/locations/models"
)

type LocationService interface {
	Decorate(ctx context.Context, req *models.DecorateRequest) (*models.LocationUsageResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
