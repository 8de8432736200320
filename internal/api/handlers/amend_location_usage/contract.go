package amend_location_usage

import (
	"context"

	"github.com/m04kA/SMC-VideoLinkService/internal/service/locations/models"
)

type LocationService interface {
	Amend(ctx context.Context, req *models.AmendRequest) (*models.LocationUsageResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
