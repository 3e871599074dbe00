package domain

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidDateTime значение не соответствует формату DateTimeFormat
var ErrInvalidDateTime = errors.New("invalid datetime format")

// ParseDateTime parses a record datetime ("2024-03-01 9:30"). The hour may
// be a single digit, the rest of the value is strict.
func ParseDateTime(value string) (time.Time, error) {
	parsed, err := time.Parse(DateTimeFormat, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDateTime, value)
	}
	return parsed, nil
}

// FormatDateTime renders t in the record datetime format. The hour is not
// zero-padded, matching the format the calculator has always produced.
func FormatDateTime(t time.Time) string {
	return fmt.Sprintf("%04d-%02d-%02d %d:%02d", t.Year(), int(t.Month()), t.Day(), t.Hour(), t.Minute())
}
