package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "valid padded", input: "09:30"},
		{name: "valid unpadded hour", input: "9:30"},
		{name: "midnight", input: "00:00"},
		{name: "end of day", input: "23:59"},
		{name: "empty", input: "", wantErr: true},
		{name: "garbage", input: "abc", wantErr: true},
		{name: "out of range hour", input: "24:00", wantErr: true},
		{name: "missing minutes", input: "09", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidTimeString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.input, ts.String())
		})
	}
}

func TestNewTimeString(t *testing.T) {
	ts := NewTimeString(time.Date(2024, 3, 1, 9, 5, 0, 0, time.UTC))
	assert.Equal(t, "09:05", ts.String())
}

func TestTimeString_MinutesSinceMidnight(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"00:00", 0},
		{"9:30", 570},
		{"17:00", 1020},
		{"23:59", 1439},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := TimeString(tt.input).MinutesSinceMidnight()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeString_AddMinutes(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		minutes int
		want    string
	}{
		{name: "within hour", input: "09:00", minutes: 30, want: "09:30"},
		{name: "across hour", input: "09:45", minutes: 30, want: "10:15"},
		{name: "wraps past midnight", input: "23:30", minutes: 60, want: "00:30"},
		{name: "zero", input: "12:00", minutes: 0, want: "12:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := TimeString(tt.input).AddMinutes(tt.minutes)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestTimeString_Comparisons(t *testing.T) {
	opening := TimeString("09:00")
	closing := TimeString("17:00")

	assert.True(t, opening.IsBefore(closing))
	assert.False(t, closing.IsBefore(opening))
	assert.True(t, closing.IsAfter(opening))
	assert.False(t, opening.IsAfter(opening))

	// unpadded and padded values compare by clock position
	assert.True(t, TimeString("9:30").IsBefore(TimeString("10:00")))

	// invalid values never compare as true
	assert.False(t, TimeString("bad").IsBefore(closing))
	assert.False(t, closing.IsAfter(TimeString("bad")))
}
