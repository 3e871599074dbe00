package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func workWeek(openClose string) map[time.Weekday]string {
	return map[time.Weekday]string{
		time.Monday:    openClose,
		time.Tuesday:   openClose,
		time.Wednesday: openClose,
		time.Thursday:  openClose,
		time.Friday:    openClose,
	}
}

func TestNewBusinessSchedule(t *testing.T) {
	t.Run("standard week", func(t *testing.T) {
		schedule, err := NewBusinessSchedule(workWeek("9:00-17:00"))
		require.NoError(t, err)

		window, ok := schedule.Window(time.Wednesday)
		require.True(t, ok)
		assert.Equal(t, "9:00", window.Open.String())
		assert.Equal(t, "17:00", window.Close.String())

		_, ok = schedule.Window(time.Sunday)
		assert.False(t, ok)
	})

	t.Run("empty strings mean closed", func(t *testing.T) {
		byDay := workWeek("9:00-17:00")
		byDay[time.Saturday] = ""
		byDay[time.Sunday] = "  "

		schedule, err := NewBusinessSchedule(byDay)
		require.NoError(t, err)

		_, ok := schedule.Window(time.Saturday)
		assert.False(t, ok)
	})

	t.Run("no open days", func(t *testing.T) {
		_, err := NewBusinessSchedule(map[time.Weekday]string{})
		assert.ErrorIs(t, err, ErrEmptySchedule)
	})

	tests := []struct {
		name   string
		window string
	}{
		{name: "missing close", window: "9:00"},
		{name: "open after close", window: "17:00-9:00"},
		{name: "open equals close", window: "9:00-9:00"},
		{name: "garbage", window: "nine to five"},
		{name: "bad open time", window: "25:00-17:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewBusinessSchedule(map[time.Weekday]string{time.Monday: tt.window})
			assert.ErrorIs(t, err, ErrInvalidWindow)
		})
	}
}

func TestBusinessSchedule_Segments(t *testing.T) {
	tests := []struct {
		name  string
		byDay map[time.Weekday]string
		want  []string
	}{
		{
			name:  "uniform work week",
			byDay: workWeek("9:00-17:00"),
			want:  []string{"Mon-Fri 9-17"},
		},
		{
			name: "work week plus short saturday",
			byDay: func() map[time.Weekday]string {
				byDay := workWeek("9:00-17:00")
				byDay[time.Saturday] = "9:00-12:00"
				return byDay
			}(),
			want: []string{"Mon-Fri 9-17", "Sat 9-12"},
		},
		{
			name: "closed day splits a group",
			byDay: map[time.Weekday]string{
				time.Monday:   "9:00-17:00",
				time.Tuesday:  "9:00-17:00",
				time.Thursday: "9:00-17:00",
				time.Friday:   "9:00-17:00",
			},
			want: []string{"Mon-Tue 9-17", "Thu-Fri 9-17"},
		},
		{
			name: "different hours split a group",
			byDay: map[time.Weekday]string{
				time.Monday:  "9:00-17:00",
				time.Tuesday: "10:00-17:00",
			},
			want: []string{"Mon 9-17", "Tue 10-17"},
		},
		{
			name: "half hours are kept in the segment",
			byDay: map[time.Weekday]string{
				time.Monday: "9:30-17:45",
			},
			want: []string{"Mon 9:30-17:45"},
		},
		{
			name: "single open day",
			byDay: map[time.Weekday]string{
				time.Sunday: "11:00-15:00",
			},
			want: []string{"Sun 11-15"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			schedule, err := NewBusinessSchedule(tt.byDay)
			require.NoError(t, err)
			assert.Equal(t, tt.want, schedule.Segments())
		})
	}
}
