package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-DeadlineService/pkg/types"
)

var (
	// ErrEmptySchedule расписание без единого рабочего дня
	ErrEmptySchedule = errors.New("business schedule has no open days")
	// ErrInvalidWindow окно рабочего дня задано некорректно
	ErrInvalidWindow = errors.New("invalid business hours window")
)

// DayWindow is a single day's opening window. Working time runs from Open
// inclusive to Close exclusive.
type DayWindow struct {
	Open  types.TimeString
	Close types.TimeString
}

// BusinessSchedule holds the weekly business-hours windows keyed by weekday.
// Days without a window are closed. The schedule is built once at startup
// and never mutated afterwards.
type BusinessSchedule struct {
	windows map[time.Weekday]DayWindow
}

// NewBusinessSchedule parses per-weekday windows given as "9:00-17:00"
// strings. An empty string means the day is closed. At least one day must
// be open and every window must open strictly before it closes.
func NewBusinessSchedule(byDay map[time.Weekday]string) (*BusinessSchedule, error) {
	windows := make(map[time.Weekday]DayWindow)

	for day, raw := range byDay {
		if strings.TrimSpace(raw) == "" {
			continue
		}
		window, err := parseDayWindow(raw)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", strings.ToLower(day.String()), err)
		}
		windows[day] = window
	}

	if len(windows) == 0 {
		return nil, ErrEmptySchedule
	}

	return &BusinessSchedule{windows: windows}, nil
}

func parseDayWindow(raw string) (DayWindow, error) {
	parts := strings.Split(strings.TrimSpace(raw), "-")
	if len(parts) != 2 {
		return DayWindow{}, fmt.Errorf("%w: %q", ErrInvalidWindow, raw)
	}

	open, err := types.NewTimeStringFromString(strings.TrimSpace(parts[0]))
	if err != nil {
		return DayWindow{}, fmt.Errorf("%w: %q: %v", ErrInvalidWindow, raw, err)
	}

	closeAt, err := types.NewTimeStringFromString(strings.TrimSpace(parts[1]))
	if err != nil {
		return DayWindow{}, fmt.Errorf("%w: %q: %v", ErrInvalidWindow, raw, err)
	}

	if !open.IsBefore(closeAt) {
		return DayWindow{}, fmt.Errorf("%w: %q: open time must be before close time", ErrInvalidWindow, raw)
	}

	return DayWindow{Open: open, Close: closeAt}, nil
}

// Window returns the opening window for day, if the business works that day.
func (s *BusinessSchedule) Window(day time.Weekday) (DayWindow, bool) {
	window, ok := s.windows[day]
	return window, ok
}

// weekOrder задаёт порядок обхода дней для отображения расписания
var weekOrder = [...]time.Weekday{
	time.Monday,
	time.Tuesday,
	time.Wednesday,
	time.Thursday,
	time.Friday,
	time.Saturday,
	time.Sunday,
}

// Segments renders the schedule as display segments, grouping consecutive
// weekdays that share the same window: {"Mon-Fri 9-17", "Sat 9-12"}.
// A closed day in between breaks a group.
func (s *BusinessSchedule) Segments() []string {
	segments := make([]string, 0, len(s.windows))

	runStart := -1
	runEnd := -1
	var runWindow DayWindow

	flush := func() {
		if runStart < 0 {
			return
		}
		segments = append(segments, formatSegment(weekOrder[runStart], weekOrder[runEnd], runWindow))
	}

	for i, day := range weekOrder {
		window, ok := s.windows[day]
		if !ok {
			flush()
			runStart = -1
			continue
		}
		if runStart >= 0 && window == runWindow {
			runEnd = i
			continue
		}
		flush()
		runStart, runEnd, runWindow = i, i, window
	}
	flush()

	return segments
}

func formatSegment(first, last time.Weekday, window DayWindow) string {
	days := shortDayName(first)
	if first != last {
		days += "-" + shortDayName(last)
	}
	return days + " " + formatClock(window.Open) + "-" + formatClock(window.Close)
}

func shortDayName(day time.Weekday) string {
	return day.String()[:3]
}

// formatClock renders "9:00" as "9" and "9:30" as "9:30".
func formatClock(t types.TimeString) string {
	minutes, err := t.MinutesSinceMidnight()
	if err != nil {
		return t.String()
	}
	if minutes%60 == 0 {
		return fmt.Sprintf("%d", minutes/60)
	}
	return fmt.Sprintf("%d:%02d", minutes/60, minutes%60)
}
