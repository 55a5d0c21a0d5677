// Package coverage derives a coverage-gap report from the roster
// snapshot: configured recurrence rules describe when a location is
// expected to be staffed, and dates with no matching shift are
// reported as gaps. It only reads the existing snapshot; filling the
// gaps stays with the external scheduling service.
package coverage

import (
	"fmt"
	"sort"
	"time"

	"github.com/teambition/rrule-go"

	"github.com/ofarias/shift-roster/pkg/roster"
)

// Rule declares one recurring coverage expectation
type Rule struct {
	Name     string
	RRule    string
	Location string
	Type     roster.ShiftType
}

// Gap is one expected occurrence with no shift covering it
type Gap struct {
	Date time.Time
	Rule Rule
}

// Gaps expands every rule over [periodStart, periodEnd] and reports
// the occurrences not covered by any shift on the same date at the
// rule's location and shift type. Vacant shifts do not count as cover.
func Gaps(rules []Rule, shifts []roster.ShiftRecord, periodStart, periodEnd time.Time) ([]Gap, error) {
	covered := make(map[string]bool)
	for _, shift := range shifts {
		if shift.IsVacant() || shift.Date.IsZero() {
			continue
		}
		covered[coverageKey(shift.Date, shift.Location, shift.Type)] = true
	}

	var gaps []Gap
	for _, rule := range rules {
		recurrence, err := rrule.StrToRRule(rule.RRule)
		if err != nil {
			return nil, fmt.Errorf("invalid rrule for coverage rule %q: %w", rule.Name, err)
		}
		recurrence.DTStart(startOfDay(periodStart))

		for _, occurrence := range recurrence.Between(startOfDay(periodStart), endOfDay(periodEnd), true) {
			if !covered[coverageKey(occurrence, rule.Location, rule.Type)] {
				gaps = append(gaps, Gap{Date: startOfDay(occurrence), Rule: rule})
			}
		}
	}

	sort.Slice(gaps, func(i, j int) bool {
		if !gaps[i].Date.Equal(gaps[j].Date) {
			return gaps[i].Date.Before(gaps[j].Date)
		}
		return gaps[i].Rule.Name < gaps[j].Rule.Name
	})

	return gaps, nil
}

func coverageKey(date time.Time, location string, shiftType roster.ShiftType) string {
	return fmt.Sprintf("%s|%s|%s", date.Format("2006-01-02"), location, shiftType)
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 0, time.UTC)
}
