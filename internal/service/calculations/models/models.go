package models

import (
	"time"

	"github.com/m04kA/SMC-DeadlineService/internal/domain"
)

// CalculationResponse - данные записи расчета для ответа
type CalculationResponse struct {
	ID                  int64     `json:"id"`
	StartingDateTime    string    `json:"startingDateTime"`
	TimeInterval        int64     `json:"timeInterval"`
	ExpectedPickupTime  string    `json:"expectedPickupTime"`
	ActualBusinessHours string    `json:"actualBusinessHours"`
	CreatedAt           time.Time `json:"createdAt"`
	UpdatedAt           time.Time `json:"updatedAt"`
}

// CalculationListResponse - список записей расчетов
type CalculationListResponse struct {
	Calculations []CalculationResponse `json:"calculations"`
}

// UpdateCalculationData - данные для обновления записи
type UpdateCalculationData struct {
	StartingDateTime    string
	TimeInterval        int64
	ExpectedPickupTime  string
	ActualBusinessHours string
}

// FromDomainCalculation конвертирует доменную модель в модель ответа
func FromDomainCalculation(calc *domain.Calculation) *CalculationResponse {
	if calc == nil {
		return nil
	}

	return &CalculationResponse{
		ID:                  calc.ID,
		StartingDateTime:    calc.StartingDateTime,
		TimeInterval:        calc.TimeInterval,
		ExpectedPickupTime:  calc.ExpectedPickupTime,
		ActualBusinessHours: calc.ActualBusinessHours,
		CreatedAt:           calc.CreatedAt,
		UpdatedAt:           calc.UpdatedAt,
	}
}

// FromDomainCalculationList конвертирует список доменных моделей в модель ответа
func FromDomainCalculationList(calcs []domain.Calculation) *CalculationListResponse {
	items := make([]CalculationResponse, 0, len(calcs))
	for i := range calcs {
		items = append(items, *FromDomainCalculation(&calcs[i]))
	}

	return &CalculationListResponse{Calculations: items}
}
