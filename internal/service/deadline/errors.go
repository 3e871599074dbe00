package deadline

import "errors"

var (
	// ErrNegativeInterval возвращается при отрицательном интервале
	ErrNegativeInterval = errors.New("time interval must not be negative")

	// ErrNoBusinessHours возвращается, когда в расписании не удалось найти
	// рабочее окно за разумный горизонт
	ErrNoBusinessHours = errors.New("no business hours found in schedule")
)
