package roster

import "math"

// ProjectHours converts a minute total observed over periodDays into
// hours worked in the period and a normalized 30-day projection, both
// rounded to one decimal. The fixed 30-day baseline lets periods of
// different lengths be compared against a monthly hour cap without the
// caller knowing the cap period's exact length.
func ProjectHours(totalMinutes, periodDays int) (periodHours, projected30DayHours float64) {
	periodHours = roundTenth(float64(totalMinutes) / 60)

	if periodDays > 0 {
		hoursPerDay := float64(totalMinutes) / 60 / float64(periodDays)
		projected30DayHours = roundTenth(hoursPerDay * 30)
	}

	return periodHours, projected30DayHours
}

func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}
