package get_calculations

import (
	"context"

	"github.com/m04kA/SMC-DeadlineService/internal/service/calculations/models"
)

type CalculationService interface {
	List(ctx context.Context) (*models.CalculationListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
