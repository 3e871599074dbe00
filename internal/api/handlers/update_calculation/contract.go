package update_calculation

import (
	"context"

	"github.com/m04kA/SMC-DeadlineService/internal/service/calculations/models"
	createCalculation "github.com/m04kA/SMC-DeadlineService/internal/usecase/create_calculation"
)

type CalculationService interface {
	Update(ctx context.Context, id int64, data *models.UpdateCalculationData) (*models.CalculationResponse, error)
}

// CreateCalculationUseCase нужен для запросов без ID, они обрабатываются как создание
type CreateCalculationUseCase interface {
	Execute(ctx context.Context, req *createCalculation.Request) (*createCalculation.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
