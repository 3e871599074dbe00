package calculations

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-DeadlineService/internal/domain"
	"github.com/m04kA/SMC-DeadlineService/internal/infra/storage/calculation"
	"github.com/m04kA/SMC-DeadlineService/internal/service/calculations/models"
)

// Service - сервис управления записями расчетов
type Service struct {
	calcRepo  CalculationRepository
	auditRepo AuditRepository
	deadline  DeadlineService
	cache     RecordCache
	logger    Logger
}

func NewService(calcRepo CalculationRepository, auditRepo AuditRepository, deadline DeadlineService, cache RecordCache, logger Logger) *Service {
	return &Service{
		calcRepo:  calcRepo,
		auditRepo: auditRepo,
		deadline:  deadline,
		cache:     cache,
		logger:    logger,
	}
}

// GetByID возвращает запись расчета по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.CalculationResponse, error) {
	s.logger.Info("GetByID: fetching calculation %d", id)

	if s.cache.Enabled() {
		if calc, ok := s.cache.GetCalculation(ctx, id); ok {
			return models.FromDomainCalculation(calc), nil
		}
	}

	calc, err := s.calcRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, calculation.ErrCalculationNotFound) {
			return nil, fmt.Errorf("%w: id %d", ErrCalculationNotFound, id)
		}
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if s.cache.Enabled() {
		s.cache.SetCalculation(ctx, calc)
	}

	return models.FromDomainCalculation(calc), nil
}

// List возвращает все записи расчетов. Поле actualBusinessHours в ответе
// разворачивается в отображаемый вид, в хранилище остается сырое значение.
func (s *Service) List(ctx context.Context) (*models.CalculationListResponse, error) {
	s.logger.Info("List: fetching all calculations")

	calcs, err := s.listRecords(ctx)
	if err != nil {
		return nil, err
	}

	resp := models.FromDomainCalculationList(calcs)
	for i := range resp.Calculations {
		resp.Calculations[i].ActualBusinessHours = s.deadline.FormatBusinessHours(resp.Calculations[i].ActualBusinessHours)
	}

	return resp, nil
}

// Update обновляет запись расчета. Вычисляемые поля сохраняются как пришли,
// пересчет на обновлении не выполняется.
func (s *Service) Update(ctx context.Context, id int64, data *models.UpdateCalculationData) (*models.CalculationResponse, error) {
	s.logger.Info("Update: updating calculation %d", id)

	calc := &domain.Calculation{
		ID:                  id,
		StartingDateTime:    data.StartingDateTime,
		TimeInterval:        data.TimeInterval,
		ExpectedPickupTime:  data.ExpectedPickupTime,
		ActualBusinessHours: data.ActualBusinessHours,
	}

	updated, err := s.calcRepo.Update(ctx, calc)
	if err != nil {
		if errors.Is(err, calculation.ErrCalculationNotFound) {
			return nil, fmt.Errorf("%w: id %d", ErrCalculationNotFound, id)
		}
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	if s.cache.Enabled() {
		s.cache.Invalidate(ctx, id)
	}

	s.recordEvent(ctx, id, domain.EventActionUpdated, fmt.Sprintf("timeInterval=%d", updated.TimeInterval))

	return models.FromDomainCalculation(updated), nil
}

// Delete удаляет запись расчета. Отсутствие записи не считается ошибкой.
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting calculation %d", id)

	err := s.calcRepo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, calculation.ErrCalculationNotFound) {
			s.logger.Info("Delete: calculation %d already absent", id)
			return nil
		}
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	if s.cache.Enabled() {
		s.cache.Invalidate(ctx, id)
	}

	s.recordEvent(ctx, id, domain.EventActionDeleted, "")

	return nil
}

// listRecords возвращает сырые записи из кеша или репозитория
func (s *Service) listRecords(ctx context.Context) ([]domain.Calculation, error) {
	if s.cache.Enabled() {
		if calcs, ok := s.cache.GetCalculations(ctx); ok {
			return calcs, nil
		}
	}

	calcs, err := s.calcRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	if s.cache.Enabled() {
		s.cache.SetCalculations(ctx, calcs)
	}

	return calcs, nil
}

// recordEvent пишет событие в журнал, ошибки журнала не прерывают операцию
func (s *Service) recordEvent(ctx context.Context, calcID int64, action domain.EventAction, details string) {
	event := &domain.CalculationEvent{
		CalculationID: calcID,
		Action:        action,
		Details:       details,
	}

	if err := s.auditRepo.Record(ctx, event); err != nil {
		s.logger.Warn("recordEvent: failed to record %s event for calculation %d: %v", action, calcID, err)
	}
}
