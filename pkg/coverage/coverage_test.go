package coverage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ofarias/shift-roster/pkg/roster"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestGaps_WeeklyRule(t *testing.T) {
	// Mondays in January 2024: 1, 8, 15, 22, 29
	rule := Rule{
		Name:     "ER night cover",
		RRule:    "FREQ=WEEKLY;BYDAY=MO",
		Location: "ER",
		Type:     roster.ShiftNight,
	}

	shifts := []roster.ShiftRecord{
		{ID: "s1", Date: day(2024, 1, 1), StartTime: "19:00", EndTime: "07:00", Type: roster.ShiftNight, Location: "ER", ProfessionalID: "p1"},
		{ID: "s2", Date: day(2024, 1, 15), StartTime: "19:00", EndTime: "07:00", Type: roster.ShiftNight, Location: "ER", ProfessionalID: "p2"},
		// Vacant shift on the 8th does not count as cover
		{ID: "s3", Date: day(2024, 1, 8), StartTime: "19:00", EndTime: "07:00", Type: roster.ShiftNight, Location: "ER"},
		// Day shift on the 22nd is the wrong type
		{ID: "s4", Date: day(2024, 1, 22), StartTime: "07:00", EndTime: "19:00", Type: roster.ShiftDay, Location: "ER", ProfessionalID: "p1"},
	}

	gaps, err := Gaps([]Rule{rule}, shifts, day(2024, 1, 1), day(2024, 1, 31))
	require.NoError(t, err)

	require.Len(t, gaps, 3)
	assert.Equal(t, day(2024, 1, 8), gaps[0].Date)
	assert.Equal(t, day(2024, 1, 22), gaps[1].Date)
	assert.Equal(t, day(2024, 1, 29), gaps[2].Date)
	assert.Equal(t, "ER night cover", gaps[0].Rule.Name)
}

func TestGaps_FullyCovered(t *testing.T) {
	rule := Rule{Name: "ICU daily", RRule: "FREQ=DAILY", Location: "ICU", Type: roster.ShiftDay}

	var shifts []roster.ShiftRecord
	for d := 1; d <= 7; d++ {
		shifts = append(shifts, roster.ShiftRecord{
			ID: "s", Date: day(2024, 1, d), StartTime: "07:00", EndTime: "19:00",
			Type: roster.ShiftDay, Location: "ICU", ProfessionalID: "p1",
		})
	}

	gaps, err := Gaps([]Rule{rule}, shifts, day(2024, 1, 1), day(2024, 1, 7))
	require.NoError(t, err)
	assert.Empty(t, gaps)
}

func TestGaps_InvalidRRule(t *testing.T) {
	rule := Rule{Name: "broken", RRule: "NOT_A_RULE"}

	_, err := Gaps([]Rule{rule}, nil, day(2024, 1, 1), day(2024, 1, 7))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken")
}

func TestGaps_LocationMismatch(t *testing.T) {
	rule := Rule{Name: "ER daily", RRule: "FREQ=DAILY", Location: "ER", Type: roster.ShiftDay}

	shifts := []roster.ShiftRecord{
		{ID: "s1", Date: day(2024, 1, 1), StartTime: "07:00", EndTime: "19:00", Type: roster.ShiftDay, Location: "ICU", ProfessionalID: "p1"},
	}

	gaps, err := Gaps([]Rule{rule}, shifts, day(2024, 1, 1), day(2024, 1, 1))
	require.NoError(t, err)
	require.Len(t, gaps, 1)
	assert.Equal(t, day(2024, 1, 1), gaps[0].Date)
}
