package handlers

import (
	"fmt"
	"net/http"
)

// Заголовки уведомлений для фронтенда калькулятора
const (
	alertHeader  = "X-CalculatorApp-alert"
	paramsHeader = "X-CalculatorApp-params"
	errorHeader  = "X-CalculatorApp-error"

	entityName = "businessHoursCalculator"
)

// SetCreatedAlert выставляет заголовки уведомления о создании записи
func SetCreatedAlert(w http.ResponseWriter, id int64) {
	w.Header().Set(alertHeader, fmt.Sprintf("calculatorApp.%s.created", entityName))
	w.Header().Set(paramsHeader, fmt.Sprintf("%d", id))
}

// SetUpdatedAlert выставляет заголовки уведомления об обновлении записи
func SetUpdatedAlert(w http.ResponseWriter, id int64) {
	w.Header().Set(alertHeader, fmt.Sprintf("calculatorApp.%s.updated", entityName))
	w.Header().Set(paramsHeader, fmt.Sprintf("%d", id))
}

// SetDeletedAlert выставляет заголовки уведомления об удалении записи
func SetDeletedAlert(w http.ResponseWriter, id int64) {
	w.Header().Set(alertHeader, fmt.Sprintf("calculatorApp.%s.deleted", entityName))
	w.Header().Set(paramsHeader, fmt.Sprintf("%d", id))
}

// SetErrorAlert выставляет заголовки уведомления об ошибке обработки
func SetErrorAlert(w http.ResponseWriter, errorKey string) {
	w.Header().Set(errorHeader, fmt.Sprintf("error.%s", errorKey))
	w.Header().Set(paramsHeader, entityName)
}
