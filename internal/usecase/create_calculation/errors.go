package create_calculation

import "errors"

var (
	// ErrIDAlreadySet возвращается, когда клиент передал ID для новой записи
	ErrIDAlreadySet = errors.New("create_calculation: a new calculation cannot already have an id")

	// ErrInvalidStartingDateTime возвращается при некорректном формате startingDateTime
	ErrInvalidStartingDateTime = errors.New("create_calculation: invalid startingDateTime")

	// ErrInvalidTimeInterval возвращается при некорректном интервале
	ErrInvalidTimeInterval = errors.New("create_calculation: invalid time interval")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_calculation: internal error")
)
