package update_calculation

import (
	"time"

	"github.com/m04kA/SMC-DeadlineService/internal/service/calculations/models"
	createCalculation "github.com/m04kA/SMC-DeadlineService/internal/usecase/create_calculation"
)

// UpdateCalculationRequest HTTP request model. ID опционален, без него
// запрос обрабатывается как создание новой записи.
type UpdateCalculationRequest struct {
	ID                  *int64 `json:"id,omitempty"`
	StartingDateTime    string `json:"startingDateTime"`
	TimeInterval        int64  `json:"timeInterval"`
	ExpectedPickupTime  string `json:"expectedPickupTime"`
	ActualBusinessHours string `json:"actualBusinessHours"`
}

// CalculationResponse HTTP response model для ветки создания
type CalculationResponse struct {
	ID                  int64  `json:"id"`
	StartingDateTime    string `json:"startingDateTime"`
	TimeInterval        int64  `json:"timeInterval"`
	ExpectedPickupTime  string `json:"expectedPickupTime"`
	ActualBusinessHours string `json:"actualBusinessHours"`
	CreatedAt           string `json:"createdAt"`
	UpdatedAt           string `json:"updatedAt"`
}

// ToUpdateData конвертирует HTTP запрос в данные обновления
func (r *UpdateCalculationRequest) ToUpdateData() *models.UpdateCalculationData {
	return &models.UpdateCalculationData{
		StartingDateTime:    r.StartingDateTime,
		TimeInterval:        r.TimeInterval,
		ExpectedPickupTime:  r.ExpectedPickupTime,
		ActualBusinessHours: r.ActualBusinessHours,
	}
}

// ToCreateRequest конвертирует HTTP запрос в модель use case создания
func (r *UpdateCalculationRequest) ToCreateRequest() *createCalculation.Request {
	return &createCalculation.Request{
		StartingDateTime: r.StartingDateTime,
		TimeInterval:     r.TimeInterval,
	}
}

// FromUseCaseResponse конвертирует ответ use case создания в HTTP response
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
