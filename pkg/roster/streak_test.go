package roster

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestLongestStreak(t *testing.T) {
	tests := []struct {
		name     string
		dates    []time.Time
		expected int
	}{
		{
			name:     "empty input",
			dates:    nil,
			expected: 0,
		},
		{
			name:     "single date",
			dates:    []time.Time{day(2024, 1, 1)},
			expected: 1,
		},
		{
			name: "run of three then run of two",
			dates: []time.Time{
				day(2024, 1, 1), day(2024, 1, 2), day(2024, 1, 3),
				day(2024, 1, 6), day(2024, 1, 7),
			},
			expected: 3,
		},
		{
			name: "unordered input",
			dates: []time.Time{
				day(2024, 1, 7), day(2024, 1, 1), day(2024, 1, 6),
				day(2024, 1, 3), day(2024, 1, 2),
			},
			expected: 3,
		},
		{
			name: "no consecutive days",
			dates: []time.Time{
				day(2024, 1, 1), day(2024, 1, 5), day(2024, 1, 10),
			},
			expected: 1,
		},
		{
			name: "month boundary",
			dates: []time.Time{
				day(2024, 1, 30), day(2024, 1, 31), day(2024, 2, 1),
			},
			expected: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, LongestStreak(tt.dates))
		})
	}
}

func TestLongestStreak_ToleratesSubDayNoise(t *testing.T) {
	// A few hours of drift from parsing must still count as one day
	dates := []time.Time{
		time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 3, 10, 1, 0, 0, 0, time.UTC),
		time.Date(2024, 3, 11, 2, 0, 0, 0, time.UTC),
	}
	assert.Equal(t, 3, LongestStreak(dates))
}

func TestLongestStreak_DoesNotMutateInput(t *testing.T) {
	dates := []time.Time{day(2024, 1, 3), day(2024, 1, 1), day(2024, 1, 2)}
	LongestStreak(dates)
	assert.Equal(t, day(2024, 1, 3), dates[0])
}
