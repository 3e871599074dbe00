package calculations

import "errors"

var (
	// ErrCalculationNotFound возвращается, когда запись расчета не найдена
	ErrCalculationNotFound = errors.New("calculation not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
