package roster

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShiftDuration_SameDay(t *testing.T) {
	tests := []struct {
		name    string
		start   string
		end     string
		minutes int
	}{
		{"standard day shift", "07:00", "19:00", 720},
		{"short shift", "08:00", "12:30", 270},
		{"one minute", "10:00", "10:01", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := ShiftDuration(tt.start, tt.end)
			require.NoError(t, err)
			assert.Equal(t, time.Duration(tt.minutes)*time.Minute, d)
		})
	}
}

func TestShiftDuration_Overnight(t *testing.T) {
	// 22:00 -> 06:00 crosses midnight and is 8 hours
	d, err := ShiftDuration("22:00", "06:00")
	require.NoError(t, err)
	assert.Equal(t, 480*time.Minute, d)

	// End one minute before start is just short of a full day
	d, err = ShiftDuration("08:00", "07:59")
	require.NoError(t, err)
	assert.Equal(t, (24*60-1)*time.Minute, d)
	assert.Positive(t, d)
}

func TestShiftDuration_EndEqualsStartIsFullDay(t *testing.T) {
	// Equal end and start is a 24h shift under the wraparound rule,
	// never a zero-length shift
	d, err := ShiftDuration("08:00", "08:00")
	require.NoError(t, err)
	assert.Equal(t, 24*time.Hour, d)
}

func TestShiftDuration_InvalidTimes(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
	}{
		{"empty start", "", "06:00"},
		{"missing colon", "2200", "06:00"},
		{"non-numeric hour", "aa:00", "06:00"},
		{"non-numeric minute", "22:bb", "06:00"},
		{"hour out of range", "24:00", "06:00"},
		{"minute out of range", "22:60", "06:00"},
		{"invalid end", "22:00", "26:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ShiftDuration(tt.start, tt.end)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidShiftTime)
		})
	}
}

func TestShiftDuration_ToleratesSecondsComponent(t *testing.T) {
	d, err := ShiftDuration("22:00:00", "06:00:00")
	require.NoError(t, err)
	assert.Equal(t, 480*time.Minute, d)
}
