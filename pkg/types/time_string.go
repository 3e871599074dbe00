package types

import (
	"errors"
	"fmt"
	"time"
)

const timeStringFormat = "15:04"

// ErrInvalidTimeString - ошибка формата времени
var ErrInvalidTimeString = errors.New("invalid time string format")

// TimeString represents a wall-clock time of day as "HH:MM" (e.g. "09:30").
// The zero value is the empty string and is not a valid time.
type TimeString string

// NewTimeString builds a TimeString from the clock part of t.
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeStringFormat))
}

// NewTimeStringFromString validates s and wraps it into a TimeString.
func NewTimeStringFromString(s string) (TimeString, error) {
	ts := TimeString(s)
	if err := ts.Validate(); err != nil {
		return "", err
	}
	return ts, nil
}

func (t TimeString) String() string {
	return string(t)
}

// Validate проверяет, что строка парсится как "HH:MM"
func (t TimeString) Validate() error {
	if t.IsZero() {
		return fmt.Errorf("%w: empty value", ErrInvalidTimeString)
	}
	if _, err := time.Parse(timeStringFormat, string(t)); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return nil
}

func (t TimeString) IsZero() bool {
	return string(t) == ""
}

// MinutesSinceMidnight converts the time to minutes from 00:00.
func (t TimeString) MinutesSinceMidnight() (int, error) {
	parsed, err := time.Parse(timeStringFormat, string(t))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return parsed.Hour()*60 + parsed.Minute(), nil
}

// AddMinutes returns the time shifted by minutes, wrapping past midnight.
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	parsed, err := time.Parse(timeStringFormat, string(t))
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return TimeString(parsed.Add(time.Duration(minutes) * time.Minute).Format(timeStringFormat)), nil
}

// IsBefore reports whether t is strictly earlier than other.
// Invalid values compare as false.
func (t TimeString) IsBefore(other TimeString) bool {
	a, err := t.MinutesSinceMidnight()
	if err != nil {
		return false
	}
	b, err := other.MinutesSinceMidnight()
	if err != nil {
		return false
	}
	return a < b
}

// IsAfter reports whether t is strictly later than other.
// Invalid values compare as false.
func (t TimeString) IsAfter(other TimeString) bool {
	a, err := t.MinutesSinceMidnight()
	if err != nil {
		return false
	}
	b, err := other.MinutesSinceMidnight()
	if err != nil {
		return false
	}
	return a > b
}
