package delete_calculation

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func deleteCalculation(handler *Handler, id string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/business-hours-calculators/"+id, nil)
	req = mux.SetURLVars(req, map[string]string{"id": id})
	rec := httptest.NewRecorder()
	handler.Handle(rec, req)
	return rec
}

func TestHandle(t *testing.T) {
	service := new(mockService)
	service.On("Delete", mock.Anything, int64(7)).Return(nil)

	handler := NewHandler(service, nopLogger{})

	rec := deleteCalculation(handler, "7")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "calculatorApp.businessHoursCalculator.deleted", rec.Header().Get("X-CalculatorApp-alert"))
}

func TestHandle_MissingRecordStillOK(t *testing.T) {
	// сервис гасит отсутствие записи, хендлер отвечает 200
	service := new(mockService)
	service.On("Delete", mock.Anything, int64(404)).Return(nil)

	handler := NewHandler(service, nopLogger{})

	rec := deleteCalculation(handler, "404")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandle_InvalidID(t *testing.T) {
	service := new(mockService)
	handler := NewHandler(service, nopLogger{})

	rec := deleteCalculation(handler, "abc")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	service.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestHandle_ServiceError(t *testing.T) {
	service := new(mockService)
	service.On("Delete", mock.Anything, int64(7)).Return(assert.AnError)

	handler := NewHandler(service, nopLogger{})

	rec := deleteCalculation(handler, "7")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
