package calculation

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-DeadlineService/internal/domain"
	"github.com/m04kA/SMC-DeadlineService/pkg/dbmetrics"
	"github.com/m04kA/SMC-DeadlineService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с записями расчетов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория расчетов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет новую запись расчета.
// Если в контексте передана активная транзакция, использует её.
func (r *Repository) Create(ctx context.Context, calc *domain.Calculation) (*domain.Calculation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("business_hours_calculations").
		Columns(
			"starting_date_time",
			"time_interval",
			"expected_pickup_time",
			"actual_business_hours",
		).
		Values(
			calc.StartingDateTime,
			calc.TimeInterval,
			calc.ExpectedPickupTime,
			calc.ActualBusinessHours,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&calc.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	calc.CreatedAt = createdAt.Time
	calc.UpdatedAt = updatedAt.Time

	return calc, nil
}

// GetByID получает запись расчета по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Calculation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"starting_date_time",
		"time_interval",
		"expected_pickup_time",
		"actual_business_hours",
		"created_at",
		"updated_at",
	).
		From("business_hours_calculations").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var calc domain.Calculation
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&calc.ID,
		&calc.StartingDateTime,
		&calc.TimeInterval,
		&calc.ExpectedPickupTime,
		&calc.ActualBusinessHours,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrCalculationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan calculation: %v", ErrScanRow, err)
	}

	calc.CreatedAt = createdAt.Time
	calc.UpdatedAt = updatedAt.Time

	return &calc, nil
}

// List получает все записи расчетов в порядке создания
func (r *Repository) List(ctx context.Context) ([]domain.Calculation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"starting_date_time",
		"time_interval",
		"expected_pickup_time",
		"actual_business_hours",
		"created_at",
		"updated_at",
	).
		From("business_hours_calculations").
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanCalculations(rows)
}

// Update перезаписывает клиентские и вычисленные поля записи.
// Запись сохраняется ровно в том виде, в котором передана.
func (r *Repository) Update(ctx context.Context, calc *domain.Calculation) (*domain.Calculation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("business_hours_calculations").
		Set("starting_date_time", calc.StartingDateTime).
		Set("time_interval", calc.TimeInterval).
		Set("expected_pickup_time", calc.ExpectedPickupTime).
		Set("actual_business_hours", calc.ActualBusinessHours).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": calc.ID}).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)

	if err == sql.ErrNoRows {
		return nil, ErrCalculationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	calc.CreatedAt = createdAt.Time
	calc.UpdatedAt = updatedAt.Time

	return calc, nil
}

// Delete удаляет запись расчета
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("business_hours_calculations").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrCalculationNotFound
	}

	return nil
}

// scanCalculations сканирует результаты запроса в слайс записей
func (r *Repository) scanCalculations(rows *sql.Rows) ([]domain.Calculation, error) {
	calculations := make([]domain.Calculation, 0)

	for rows.Next() {
		var calc domain.Calculation
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&calc.ID,
			&calc.StartingDateTime,
			&calc.TimeInterval,
			&calc.ExpectedPickupTime,
			&calc.ActualBusinessHours,
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanCalculations - scan row: %v", ErrScanRow, err)
		}

		calc.CreatedAt = createdAt.Time
		calc.UpdatedAt = updatedAt.Time

		calculations = append(calculations, calc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanCalculations - rows error: %v", ErrScanRow, err)
	}

	return calculations, nil
}
