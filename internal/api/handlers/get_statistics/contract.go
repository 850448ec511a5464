package get_statistics

import (
	"context"

	"github.com/m04kA/SMC-AdvisingService/internal/service/statistics/models"
)

type StatisticsService interface {
	Stats(ctx context.Context) (*models.StatsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
