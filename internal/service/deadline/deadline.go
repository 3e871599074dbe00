package deadline

import (
	"time"
)

// Больше недели подряд без рабочего окна означает пустое расписание
const maxClosedDaysInARow = 7

// advance проходит по календарю от start, расходуя remaining рабочих минут
// внутри окон расписания, и возвращает момент, когда минуты закончились.
func (s *Service) advance(start time.Time, intervalMinutes int64) (time.Time, error) {
	day := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())
	position := int64(start.Hour()*60 + start.Minute())
	remaining := intervalMinutes

	closedDays := 0
	for {
		window, open := s.schedule.Window(day.Weekday())
		if !open {
			closedDays++
			if closedDays > maxClosedDaysInARow {
				return time.Time{}, ErrNoBusinessHours
			}
			day = day.AddDate(0, 0, 1)
			position = 0
			continue
		}
		closedDays = 0

		openMinute, err := window.Open.MinutesSinceMidnight()
		if err != nil {
			return time.Time{}, ErrNoBusinessHours
		}
		closeMinute, err := window.Close.MinutesSinceMidnight()
		if err != nil {
			return time.Time{}, ErrNoBusinessHours
		}

		// До открытия - переносимся к открытию
		if position < int64(openMinute) {
			position = int64(openMinute)
		}

		// Внутри окна: либо интервал помещается в остаток дня, либо
		// забираем остаток и переходим к следующему дню
		if position < int64(closeMinute) {
			available := int64(closeMinute) - position
			if remaining <= available {
				return day.Add(time.Duration(position+remaining) * time.Minute), nil
			}
			remaining -= available
		}

		day = day.AddDate(0, 0, 1)
		position = 0
	}
}
