package get_calculation

import (
	"context"

	"github.com/m04kA/SMC-DeadlineService/internal/service/calculations/models"
)

type CalculationService interface {
	GetByID(ctx context.Context, id int64) (*models.CalculationResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
