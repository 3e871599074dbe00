package deadline

import (
	"strings"

	"github.com/m04kA/SMC-DeadlineService/internal/domain"
)

const (
	// Разделитель сегментов в сериализованном виде расписания
	segmentSeparator = "_"
	// Отбивка сегмента при отображении
	segmentDisplayGap = "\n\n"
)

// Service вычисляет дедлайн выдачи по рабочим часам. Расписание передается
// при создании и дальше не меняется, поэтому все операции чистые:
// одинаковые входы всегда дают одинаковый результат.
type Service struct {
	schedule *domain.BusinessSchedule
}

// NewService создает сервис расчета дедлайнов поверх расписания
func NewService(schedule *domain.BusinessSchedule) *Service {
	return &Service{schedule: schedule}
}

// CalculateDeadline продвигает startingDateTime на timeInterval рабочих
// минут и возвращает дедлайн в том же формате даты и времени.
//
// Старт вне рабочего окна (раньше открытия, после закрытия, выходной)
// сначала переносится на ближайшее открытие. Минуты расходуются только
// внутри окон [open, close); остаток переносится на следующий рабочий
// день. Интервал, ровно исчерпывающий день, дает дедлайн в момент
// закрытия.
func (s *Service) CalculateDeadline(timeInterval int64, startingDateTime string) (string, error) {
	start, err := domain.ParseDateTime(startingDateTime)
	if err != nil {
		return "", err
	}

	if timeInterval < 0 {
		return "", ErrNegativeInterval
	}

	pickup, err := s.advance(start, timeInterval)
	if err != nil {
		return "", err
	}

	return domain.FormatDateTime(pickup), nil
}

// BusinessHoursData кодирует расписание в строку сегментов через "_",
// например "Mon-Fri 9-17_Sat 9-12". В этом виде расписание хранится
// в записи расчета.
func (s *Service) BusinessHoursData() string {
	return strings.Join(s.schedule.Segments(), segmentSeparator)
}

// FormatBusinessHours разворачивает сериализованное расписание для
// отображения: каждый сегмент завершается пустой строкой. Пустой вход
// дает пустой результат.
func (s *Service) FormatBusinessHours(raw string) string {
	if raw == "" {
		return ""
	}

	var b strings.Builder
	for _, segment := range strings.Split(raw, segmentSeparator) {
		b.WriteString(segment)
		b.WriteString(segmentDisplayGap)
	}
	return b.String()
}
