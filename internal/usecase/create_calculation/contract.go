package create_calculation

import (
	"context"

	"github.com/m04kA/SMC-DeadlineService/internal/domain"
)

// CalculationRepository интерфейс репозитория записей расчетов
type CalculationRepository interface {
	Create(ctx context.Context, calc *domain.Calculation) (*domain.Calculation, error)
}

// AuditRepository интерфейс журнала событий по записям
type AuditRepository interface {
	Record(ctx context.Context, event *domain.CalculationEvent) error
}

// DeadlineEngine интерфейс движка расчета сроков по рабочим часам
type DeadlineEngine interface {
	CalculateDeadline(timeInterval int64, startingDateTime string) (string, error)
	BusinessHoursData() string
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// RecordCache интерфейс кеша записей расчетов
type RecordCache interface {
	Enabled() bool
	Invalidate(ctx context.Context, id int64)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
