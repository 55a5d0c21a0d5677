package roster

import (
	"fmt"
	"time"
)

// ToCalendarEvents converts a roster snapshot into displayable
// calendar events for one viewer and view granularity. Records with a
// missing date or unparseable time of day are excluded and reported as
// RecordErrors; a professional ID with no matching lookup entry is a
// display-only condition and falls back to the raw identifier.
//
// Start and end instants are built from explicit year/month/day and
// hour/minute components. Building them by parsing a combined
// date-time string would reinterpret the shift's calendar date in the
// parser's zone and shift it by a day; the component construction is a
// contract, not an optimization.
func ToCalendarEvents(shifts []ShiftRecord, professionals map[string]Professional, viewerID string, granularity Granularity) ([]CalendarEvent, []RecordError) {
	events := make([]CalendarEvent, 0, len(shifts))
	var bad []RecordError

	for _, shift := range shifts {
		if shift.Date.IsZero() {
			bad = append(bad, RecordError{ShiftID: shift.ID, Err: ErrMissingShiftDate})
			continue
		}

		startHour, startMin, err := parseClock(shift.StartTime)
		if err != nil {
			bad = append(bad, RecordError{ShiftID: shift.ID, Err: err})
			continue
		}
		endHour, endMin, err := parseClock(shift.EndTime)
		if err != nil {
			bad = append(bad, RecordError{ShiftID: shift.ID, Err: err})
			continue
		}

		year, month, day := shift.Date.Date()
		loc := shift.Date.Location()

		start := time.Date(year, month, day, startHour, startMin, 0, 0, loc)
		end := time.Date(year, month, day, endHour, endMin, 0, 0, loc)

		// End at or before start means the shift runs into the next day
		if endHour*60+endMin <= startHour*60+startMin {
			end = end.AddDate(0, 0, 1)
		}

		// In the month grid an event occupies day cells, so an
		// overnight tail is clamped to the start date. Week and day
		// views render true elapsed time and keep the real end.
		if granularity == GranularityMonth && !sameDate(start, end) {
			end = time.Date(year, month, day, 23, 59, 59, 0, loc)
		}

		var professional *Professional
		if !shift.IsVacant() {
			if p, ok := professionals[shift.ProfessionalID]; ok {
				professional = &p
			}
		}

		isMyShift := !shift.IsVacant() && shift.ProfessionalID == viewerID

		events = append(events, CalendarEvent{
			ID:        shift.ID,
			Title:     eventTitle(shift, professional, viewerID),
			Start:     start,
			End:       end,
			IsMyShift: isMyShift,
			IsVacant:  shift.IsVacant(),
			Shift:     shift,
		})
	}

	return events, bad
}

// eventTitle builds the display title: professional name (or "Vacant",
// or the raw identifier when the lookup has no entry), the contact
// when the professional discloses it, and the location
func eventTitle(shift ShiftRecord, professional *Professional, viewerID string) string {
	name := "Vacant"
	contact := ""
	if !shift.IsVacant() {
		name = shift.ProfessionalID
		if professional != nil {
			name = professional.Name
			if CanSeeContact(*professional, viewerID) && professional.Phone != "" {
				contact = fmt.Sprintf(" (%s)", professional.Phone)
			}
		}
	}
	return fmt.Sprintf("%s%s - %s", name, contact, shift.Location)
}

// FilterByProfessional keeps only the shifts assigned to the given
// professional. An empty filter keeps everything.
func FilterByProfessional(shifts []ShiftRecord, professionalID string) []ShiftRecord {
	if professionalID == "" {
		return shifts
	}
	filtered := make([]ShiftRecord, 0, len(shifts))
	for _, shift := range shifts {
		if shift.ProfessionalID == professionalID {
			filtered = append(filtered, shift)
		}
	}
	return filtered
}

func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
