// Package reports builds the dashboard's period reports: per-
// professional workload totals over an arbitrary date range, shift
// swap indicators, and their CSV exports.
package reports

import (
	"sort"
	"strings"

	"github.com/ofarias/shift-roster/pkg/roster"
)

// ShiftTypeFilter restricts a report to one shift type
type ShiftTypeFilter string

const (
	FilterAll   ShiftTypeFilter = "ALL"
	FilterDay   ShiftTypeFilter = "DAY"
	FilterNight ShiftTypeFilter = "NIGHT"
)

// Matches reports whether a shift of the given type passes the filter.
// An empty filter behaves like ALL.
func (f ShiftTypeFilter) Matches(t roster.ShiftType) bool {
	if f == "" || strings.EqualFold(string(f), string(FilterAll)) {
		return true
	}
	return strings.EqualFold(string(f), string(t))
}

// ParseShiftTypeFilter normalizes a user-supplied filter string
func ParseShiftTypeFilter(value string) (ShiftTypeFilter, bool) {
	switch strings.ToUpper(value) {
	case "", "ALL":
		return FilterAll, true
	case "DAY":
		return FilterDay, true
	case "NIGHT":
		return FilterNight, true
	}
	return "", false
}

// ProfessionalPeriodRow is one professional's totals for a reporting
// period, with the monthly hour caps carried for highlighting
type ProfessionalPeriodRow struct {
	ProfessionalID    string
	Name              string
	CRM               string
	TotalShifts       int
	NightShifts       int
	TotalHours        float64
	MonthlyHourCapMin *float64
	MonthlyHourCapMax *float64
}

// ProfessionalPeriod computes per-professional totals over the given
// shifts, honoring the shift-type filter. Vacant shifts are skipped;
// unresolved professional IDs fall back to the raw identifier. Bad
// records are reported, never folded in as zero durations.
func ProfessionalPeriod(shifts []roster.ShiftRecord, professionals map[string]roster.Professional, filter ShiftTypeFilter) ([]ProfessionalPeriodRow, []roster.RecordError) {
	type accumulator struct {
		totalShifts  int
		nightShifts  int
		totalMinutes int
	}

	accumulated := make(map[string]*accumulator)
	var bad []roster.RecordError

	for _, shift := range shifts {
		if shift.IsVacant() || !filter.Matches(shift.Type) {
			continue
		}

		duration, err := roster.ShiftDuration(shift.StartTime, shift.EndTime)
		if err != nil {
			bad = append(bad, roster.RecordError{ShiftID: shift.ID, Err: err})
			continue
		}

		acc := accumulated[shift.ProfessionalID]
		if acc == nil {
			acc = &accumulator{}
			accumulated[shift.ProfessionalID] = acc
		}
		acc.totalShifts++
		if shift.Type == roster.ShiftNight {
			acc.nightShifts++
		}
		acc.totalMinutes += int(duration.Minutes())
	}

	rows := make([]ProfessionalPeriodRow, 0, len(accumulated))
	for professionalID, acc := range accumulated {
		row := ProfessionalPeriodRow{
			ProfessionalID: professionalID,
			Name:           professionalID,
			TotalShifts:    acc.totalShifts,
			NightShifts:    acc.nightShifts,
			TotalHours:     float64(acc.totalMinutes) / 60,
		}
		if professional, ok := professionals[professionalID]; ok {
			row.Name = professional.Name
			row.CRM = professional.CRM
			row.MonthlyHourCapMin = professional.MonthlyHourCapMin
			row.MonthlyHourCapMax = professional.MonthlyHourCapMax
		}
		rows = append(rows, row)
	}

	sort.Slice(rows, func(i, j int) bool {
		return rows[i].ProfessionalID < rows[j].ProfessionalID
	})

	return rows, bad
}

// CapStatus classifies a projected monthly workload against a
// professional's configured hour caps
type CapStatus string

const (
	CapOK    CapStatus = "OK"
	CapOver  CapStatus = "OVER"
	CapUnder CapStatus = "UNDER"
)

// CheckCap compares a summary's 30-day projection with the
// professional's monthly caps. Missing caps never flag.
func CheckCap(summary roster.ProfessionalSummary, professional roster.Professional) CapStatus {
	if professional.MonthlyHourCapMax != nil && summary.Projected30DayHours > *professional.MonthlyHourCapMax {
		return CapOver
	}
	if professional.MonthlyHourCapMin != nil && summary.Projected30DayHours < *professional.MonthlyHourCapMin {
		return CapUnder
	}
	return CapOK
}
