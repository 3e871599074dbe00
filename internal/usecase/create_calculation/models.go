package create_calculation

import "time"

// Request модель запроса на создание записи расчета
type Request struct {
	ID               *int64 // ID не должен приходить от клиента, заполняется сервером
	StartingDateTime string // Момент начала отсчета в формате "2024-03-01 9:30"
	TimeInterval     int64  // Интервал в рабочих минутах
}

// Response модель ответа с созданной записью расчета
type Response struct {
	ID                  int64  // ID созданной записи
	StartingDateTime    string // Момент начала отсчета
	TimeInterval        int64  // Интервал в рабочих минутах
	ExpectedPickupTime  string // Рассчитанное время выдачи
	ActualBusinessHours string // Рабочие часы, по которым шел расчет

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
