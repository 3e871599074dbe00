package create_calculation

import (
	"fmt"

	"github.com/m04kA/SMC-DeadlineService/internal/domain"
)

// validateID проверяет, что клиент не передал ID для новой записи
func validateID(req *Request) error {
	if req.ID != nil {
		return fmt.Errorf("%w: got id %d", ErrIDAlreadySet, *req.ID)
	}
	return nil
}

// validateTimeInterval проверяет, что интервал в допустимых границах
func validateTimeInterval(timeInterval int64) error {
	if timeInterval < domain.MinTimeIntervalMinutes {
		return fmt.Errorf("%w: timeInterval must not be negative, got %d", ErrInvalidTimeInterval, timeInterval)
	}

	if timeInterval > domain.MaxTimeIntervalMinutes {
		return fmt.Errorf("%w: timeInterval must not exceed %d minutes, got %d",
			ErrInvalidTimeInterval, domain.MaxTimeIntervalMinutes, timeInterval)
	}

	return nil
}
