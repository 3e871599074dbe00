package create_calculation

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-DeadlineService/internal/domain"
)

// UseCase use case для создания записи расчета
type UseCase struct {
	calcRepo  CalculationRepository
	auditRepo AuditRepository
	deadline  DeadlineEngine
	txManager TransactionManager
	cache     RecordCache
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	calcRepo CalculationRepository,
	auditRepo AuditRepository,
	deadline DeadlineEngine,
	txManager TransactionManager,
	cache RecordCache,
	logger Logger,
) *UseCase {
	return &UseCase{
		calcRepo:  calcRepo,
		auditRepo: auditRepo,
		deadline:  deadline,
		txManager: txManager,
		cache:     cache,
		logger:    logger,
	}
}

// Execute выполняет use case создания записи расчета.
// Вычисляемые поля заполняются сервером, значения клиента игнорируются.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateCalculation: start=%s, interval=%d", req.StartingDateTime, req.TimeInterval)

	// 1. Проверяем, что ID не задан клиентом
	if err := validateID(req); err != nil {
		uc.logger.Warn("CreateCalculation: validation failed: %v", err)
		return nil, err
	}

	// 2. Валидация формата startingDateTime до обращения к движку и хранилищу
	if _, err := domain.ParseDateTime(req.StartingDateTime); err != nil {
		uc.logger.Warn("CreateCalculation: datetime validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidStartingDateTime, err)
	}

	// 3. Валидация интервала
	if err := validateTimeInterval(req.TimeInterval); err != nil {
		uc.logger.Warn("CreateCalculation: interval validation failed: %v", err)
		return nil, err
	}

	// 4. Рассчитываем ожидаемое время выдачи по рабочим часам
	pickupTime, err := uc.deadline.CalculateDeadline(req.TimeInterval, req.StartingDateTime)
	if err != nil {
		uc.logger.Error("CreateCalculation: failed to calculate deadline: %v", err)
		return nil, fmt.Errorf("%w: failed to calculate deadline: %v", ErrInternal, err)
	}

	// 5. Фиксируем рабочие часы, по которым шел расчет
	businessHours := uc.deadline.BusinessHoursData()

	// Переменная для хранения результата
	var result *domain.Calculation

	// 6. Сохраняем запись и событие журнала в одной транзакции
	err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
		calc := &domain.Calculation{
			StartingDateTime:    req.StartingDateTime,
			TimeInterval:        req.TimeInterval,
			ExpectedPickupTime:  pickupTime,
			ActualBusinessHours: businessHours,
		}

		created, err := uc.calcRepo.Create(txCtx, calc)
		if err != nil {
			uc.logger.Error("CreateCalculation: failed to create calculation: %v", err)
			return fmt.Errorf("%w: failed to create calculation: %v", ErrInternal, err)
		}

		event := &domain.CalculationEvent{
			CalculationID: created.ID,
			Action:        domain.EventActionCreated,
			Details:       fmt.Sprintf("expectedPickupTime=%s", created.ExpectedPickupTime),
		}

		if err := uc.auditRepo.Record(txCtx, event); err != nil {
			uc.logger.Error("CreateCalculation: failed to record event: %v", err)
			return fmt.Errorf("%w: failed to record event: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	// 7. Сбрасываем кеш списка записей
	if uc.cache.Enabled() {
		uc.cache.Invalidate(ctx, result.ID)
	}

	uc.logger.Info("CreateCalculation: successfully created calculation id=%d", result.ID)

	return &Response{
		ID:                  result.ID,
		StartingDateTime:    result.StartingDateTime,
		TimeInterval:        result.TimeInterval,
		ExpectedPickupTime:  result.ExpectedPickupTime,
		ActualBusinessHours: result.ActualBusinessHours,
		CreatedAt:           result.CreatedAt,
		UpdatedAt:           result.UpdatedAt,
	}, nil
}
