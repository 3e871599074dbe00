package create_calculation

import (
	"time"

	createCalculation "github.com/m04kA/SMC-DeadlineService/internal/usecase/create_calculation"
)

// CreateCalculationRequest HTTP request model
type CreateCalculationRequest struct {
	ID               *int64 `json:"id,omitempty"`
	StartingDateTime string `json:"startingDateTime"` // "2024-03-01 9:30"
	TimeInterval     int64  `json:"timeInterval"`     // рабочие минуты
}

// CalculationResponse HTTP response model
type CalculationResponse struct {
	ID                  int64  `json:"id"`
	StartingDateTime    string `json:"startingDateTime"`
	TimeInterval        int64  `json:"timeInterval"`
	ExpectedPickupTime  string `json:"expectedPickupTime"`
	ActualBusinessHours string `json:"actualBusinessHours"`
	CreatedAt           string `json:"createdAt"`
	UpdatedAt           string `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateCalculationRequest) ToUseCaseRequest() *createCalculation.Request {
	return &createCalculation.Request{
		ID:               r.ID,
		StartingDateTime: r.StartingDateTime,
		TimeInterval:     r.TimeInterval,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createCalculation.Response) *CalculationResponse {
	return &CalculationResponse{
		ID:                  resp.ID,
		StartingDateTime:    resp.StartingDateTime,
		TimeInterval:        resp.TimeInterval,
		ExpectedPickupTime:  resp.ExpectedPickupTime,
		ActualBusinessHours: resp.ActualBusinessHours,
		CreatedAt:           resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:           resp.UpdatedAt.Format(time.RFC3339),
	}
}
