package roster

import (
	"math"
	"sort"
	"time"
)

// LongestStreak returns the length of the longest run of calendar-
// consecutive dates. The input is expected to already be deduplicated;
// it may be in any order. Empty input yields 0.
//
// The streak is recomputed from scratch on every aggregation pass
// rather than maintained incrementally, so out-of-order edits to the
// roster can never leave a stale streak behind.
func LongestStreak(dates []time.Time) int {
	if len(dates) == 0 {
		return 0
	}

	sorted := make([]time.Time, len(dates))
	copy(sorted, dates)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Before(sorted[j])
	})

	maxStreak := 1
	currentStreak := 1
	for i := 1; i < len(sorted); i++ {
		// Rounded to tolerate sub-day noise from parsing
		diffDays := int(math.Round(sorted[i].Sub(sorted[i-1]).Hours() / 24))
		switch {
		case diffDays == 1:
			currentStreak++
		case diffDays > 1:
			currentStreak = 1
		}
		if currentStreak > maxStreak {
			maxStreak = currentStreak
		}
	}

	return maxStreak
}
