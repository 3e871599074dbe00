package get_calculation

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-DeadlineService/internal/service/calculations"
	"github.com/m04kA/SMC-DeadlineService/internal/service/calculations/models"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) GetByID(ctx context.Context, id int64) (*models.CalculationResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CalculationResponse), args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func getCalculation(handler *Handler, id string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/business-hours-calculators/"+id, nil)
	req = mux.SetURLVars(req, map[string]string{"id": id})
	rec := httptest.NewRecorder()
	handler.Handle(rec, req)
	return rec
}

func TestHandle(t *testing.T) {
	service := new(mockService)
	service.On("GetByID", mock.Anything, int64(7)).Return(&models.CalculationResponse{
		ID:                  7,
		StartingDateTime:    "2024-03-01 9:30",
		TimeInterval:        60,
		ExpectedPickupTime:  "2024-03-01 10:30",
		ActualBusinessHours: "Mon-Fri 9-17",
	}, nil)

	handler := NewHandler(service, nopLogger{})

	rec := getCalculation(handler, "7")

	assert.Equal(t, http.StatusOK, rec.Code)
	// ответ содержит сырое значение рабочих часов
	assert.Contains(t, rec.Body.String(), `"actualBusinessHours":"Mon-Fri 9-17"`)
}

func TestHandle_InvalidID(t *testing.T) {
	service := new(mockService)
	handler := NewHandler(service, nopLogger{})

	rec := getCalculation(handler, "abc")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	service.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestHandle_NotFound(t *testing.T) {
	service := new(mockService)
	service.On("GetByID", mock.Anything, int64(99)).Return(nil, calculations.ErrCalculationNotFound)

	handler := NewHandler(service, nopLogger{})

	rec := getCalculation(handler, "99")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
