package calculations

import (
	"context"

	"github.com/m04kA/SMC-DeadlineService/internal/domain"
)

// CalculationRepository - интерфейс репозитория записей расчетов
type CalculationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Calculation, error)
	List(ctx context.Context) ([]domain.Calculation, error)
	Update(ctx context.Context, calc *domain.Calculation) (*domain.Calculation, error)
	Delete(ctx context.Context, id int64) error
}

// AuditRepository - интерфейс журнала событий по записям
type AuditRepository interface {
	Record(ctx context.Context, event *domain.CalculationEvent) error
}

// DeadlineService - интерфейс движка расчета рабочих часов
type DeadlineService interface {
	FormatBusinessHours(raw string) string
}

// RecordCache - интерфейс кеша записей расчетов
type RecordCache interface {
	Enabled() bool
	GetCalculation(ctx context.Context, id int64) (*domain.Calculation, bool)
	SetCalculation(ctx context.Context, calc *domain.Calculation)
	GetCalculations(ctx context.Context) ([]domain.Calculation, bool)
	SetCalculations(ctx context.Context, calcs []domain.Calculation)
	Invalidate(ctx context.Context, id int64)
}

// Logger - интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
