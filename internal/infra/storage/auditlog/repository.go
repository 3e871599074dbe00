package auditlog

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-DeadlineService/internal/domain"
	"github.com/m04kA/SMC-DeadlineService/pkg/dbmetrics"
	"github.com/m04kA/SMC-DeadlineService/pkg/psqlbuilder"
)

// Переиспользуем интерфейс executor из dbmetrics
type DBExecutor = dbmetrics.DBExecutor

// Repository пишет события аудита по записям расчетов.
// Журнал только для записи, чтение - напрямую из базы при разборах.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория аудита
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Record сохраняет событие аудита.
// Если в контексте передана активная транзакция, использует её.
func (r *Repository) Record(ctx context.Context, event *domain.CalculationEvent) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("calculation_events").
		Columns(
			"calculation_id",
			"action",
			"details",
		).
		Values(
			event.CalculationID,
			event.Action,
			event.Details,
		).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Record - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Record - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}
