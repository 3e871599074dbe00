package domain

import "time"

// Calculation represents a stored pickup-deadline calculation.
// StartingDateTime and TimeInterval come from the client; ExpectedPickupTime
// and ActualBusinessHours are computed by the service on create.
type Calculation struct {
	ID                  int64
	StartingDateTime    string // "2024-03-01 9:30" (DateTimeFormat)
	TimeInterval        int64  // запрошенный интервал в рабочих минутах
	ExpectedPickupTime  string // дедлайн в том же формате
	ActualBusinessHours string // сегменты расписания через "_"
	CreatedAt           time.Time
	UpdatedAt           time.Time
}
