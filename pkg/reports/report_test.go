package reports

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

func floatPtr(f float64) *float64 { return &f }

func periodProfessionals() map[string]roster.Professional {
	return map[string]roster.Professional{
		"p1": {ID: "p1", Name: "Ana Souza", CRM: "CRM-1234", MonthlyHourCapMax: floatPtr(180)},
		"p2": {ID: "p2", Name: "Bruno Lima", CRM: "CRM-5678", MonthlyHourCapMin: floatPtr(60)},
	}
}

func periodShifts() []roster.ShiftRecord {
	return []roster.ShiftRecord{
		{ID: "s1", Date: day(2024, 1, 1), StartTime: "07:00", EndTime: "19:00", Type: roster.ShiftDay, ProfessionalID: "p1"},
		{ID: "s2", Date: day(2024, 1, 2), StartTime: "19:00", EndTime: "07:00", Type: roster.ShiftNight, ProfessionalID: "p1"},
		{ID: "s3", Date: day(2024, 1, 2), StartTime: "19:00", EndTime: "07:00", Type: roster.ShiftNight, ProfessionalID: "p2"},
		{ID: "s4", Date: day(2024, 1, 3), StartTime: "07:00", EndTime: "19:00", Type: roster.ShiftDay},
	}
}

func TestProfessionalPeriod_AllShifts(t *testing.T) {
	rows, bad := ProfessionalPeriod(periodShifts(), periodProfessionals(), FilterAll)
	require.Empty(t, bad)
	require.Len(t, rows, 2)

	assert.Equal(t, "Ana Souza", rows[0].Name)
	assert.Equal(t, "CRM-1234", rows[0].CRM)
	assert.Equal(t, 2, rows[0].TotalShifts)
	assert.Equal(t, 1, rows[0].NightShifts)
	assert.Equal(t, 24.0, rows[0].TotalHours)
	assert.Equal(t, 180.0, *rows[0].MonthlyHourCapMax)

	assert.Equal(t, "Bruno Lima", rows[1].Name)
	assert.Equal(t, 1, rows[1].TotalShifts)
}

func TestProfessionalPeriod_NightFilter(t *testing.T) {
	rows, bad := ProfessionalPeriod(periodShifts(), periodProfessionals(), FilterNight)
	require.Empty(t, bad)
	require.Len(t, rows, 2)

	assert.Equal(t, 1, rows[0].TotalShifts)
	assert.Equal(t, 1, rows[0].NightShifts)
	assert.Equal(t, 12.0, rows[0].TotalHours)
}

func TestProfessionalPeriod_BadTimeReported(t *testing.T) {
	shifts := []roster.ShiftRecord{
		{ID: "bad", Date: day(2024, 1, 1), StartTime: "nope", EndTime: "19:00", Type: roster.ShiftDay, ProfessionalID: "p1"},
	}

	rows, bad := ProfessionalPeriod(shifts, periodProfessionals(), FilterAll)
	assert.Empty(t, rows)
	require.Len(t, bad, 1)
	assert.ErrorIs(t, bad[0], roster.ErrInvalidShiftTime)
}

func TestParseShiftTypeFilter(t *testing.T) {
	tests := []struct {
		input    string
		expected ShiftTypeFilter
		ok       bool
	}{
		{"", FilterAll, true},
		{"all", FilterAll, true},
		{"DAY", FilterDay, true},
		{"night", FilterNight, true},
		{"weekend", "", false},
	}

	for _, tt := range tests {
		filter, ok := ParseShiftTypeFilter(tt.input)
		assert.Equal(t, tt.ok, ok, tt.input)
		assert.Equal(t, tt.expected, filter, tt.input)
	}
}

func TestCheckCap(t *testing.T) {
	overloaded := roster.ProfessionalSummary{Projected30DayHours: 200}
	assert.Equal(t, CapOver, CheckCap(overloaded, periodProfessionals()["p1"]))

	underloaded := roster.ProfessionalSummary{Projected30DayHours: 40}
	assert.Equal(t, CapUnder, CheckCap(underloaded, periodProfessionals()["p2"]))

	fine := roster.ProfessionalSummary{Projected30DayHours: 100}
	assert.Equal(t, CapOK, CheckCap(fine, periodProfessionals()["p1"]))

	// No caps configured never flags
	assert.Equal(t, CapOK, CheckCap(overloaded, roster.Professional{ID: "p9"}))
}
