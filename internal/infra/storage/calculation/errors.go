package calculation

import "errors"

var (
	// ErrCalculationNotFound возвращается, когда запись расчета не найдена
	ErrCalculationNotFound = errors.New("calculation.repository: calculation not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("calculation.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("calculation.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("calculation.repository: failed to scan row")
)
