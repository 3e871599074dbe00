package create_calculation

import (
	"context"

	createCalculation "github.com/m04kA/SMC-DeadlineService/internal/usecase/create_calculation"
)

type CreateCalculationUseCase interface {
	Execute(ctx context.Context, req *createCalculation.Request) (*createCalculation.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
