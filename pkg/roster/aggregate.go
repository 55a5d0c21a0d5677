package roster

import (
	"math"
	"sort"
	"time"
)

// Aggregate folds a roster snapshot into one workload summary per
// assigned professional. Vacant shifts are ignored. Records with a
// missing date or an unparseable time of day are excluded from every
// summary and returned as RecordErrors for the caller to act on.
//
// The fold is pure: the same snapshot always produces the same
// summaries, and no state is carried between calls.
func Aggregate(shifts []ShiftRecord, professionals map[string]Professional, periodStart, periodEnd time.Time) ([]ProfessionalSummary, []RecordError) {
	type accumulator struct {
		totalShifts  int
		nightShifts  int
		totalMinutes int
		dates        map[string]time.Time
	}

	accumulated := make(map[string]*accumulator)
	var bad []RecordError

	for _, shift := range shifts {
		if shift.IsVacant() {
			continue
		}
		if shift.Date.IsZero() {
			bad = append(bad, RecordError{ShiftID: shift.ID, Err: ErrMissingShiftDate})
			continue
		}

		duration, err := ShiftDuration(shift.StartTime, shift.EndTime)
		if err != nil {
			bad = append(bad, RecordError{ShiftID: shift.ID, Err: err})
			continue
		}

		acc := accumulated[shift.ProfessionalID]
		if acc == nil {
			acc = &accumulator{dates: make(map[string]time.Time)}
			accumulated[shift.ProfessionalID] = acc
		}

		acc.totalShifts++
		if shift.Type == ShiftNight {
			acc.nightShifts++
		}
		// A duplicated record contributes its date only once
		dateKey := shift.Date.Format("2006-01-02")
		if _, seen := acc.dates[dateKey]; !seen {
			acc.dates[dateKey] = startOfDay(shift.Date)
		}
		acc.totalMinutes += int(duration.Minutes())
	}

	periodDays := inclusiveDays(periodStart, periodEnd)

	summaries := make([]ProfessionalSummary, 0, len(accumulated))
	for professionalID, acc := range accumulated {
		dates := make([]time.Time, 0, len(acc.dates))
		for _, d := range acc.dates {
			dates = append(dates, d)
		}
		sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

		periodHours, projected := ProjectHours(acc.totalMinutes, periodDays)

		name := professionalID
		if professional, ok := professionals[professionalID]; ok {
			name = professional.Name
		}

		summaries = append(summaries, ProfessionalSummary{
			ProfessionalID:      professionalID,
			Name:                name,
			TotalShifts:         acc.totalShifts,
			NightShifts:         acc.nightShifts,
			Dates:               dates,
			TotalMinutes:        acc.totalMinutes,
			MaxConsecutiveDays:  LongestStreak(dates),
			PeriodHours:         periodHours,
			Projected30DayHours: projected,
		})
	}

	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].ProfessionalID < summaries[j].ProfessionalID
	})

	return summaries, bad
}

// inclusiveDays returns the day count of [start, end] including both
// endpoints; 0 or negative when the period is inverted
func inclusiveDays(start, end time.Time) int {
	days := int(math.Round(startOfDay(end).Sub(startOfDay(start)).Hours()/24)) + 1
	if days < 0 {
		return 0
	}
	return days
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
