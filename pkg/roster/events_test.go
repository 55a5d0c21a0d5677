package roster

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boolPtr(b bool) *bool { return &b }

func eventProfessionals() map[string]Professional {
	return map[string]Professional{
		"p1": {ID: "p1", Name: "Ana Souza", Phone: "+55 11 99999-0001"},
		"p2": {ID: "p2", Name: "Bruno Lima", Phone: "+55 11 99999-0002", DiscloseContact: boolPtr(false)},
	}
}

func TestToCalendarEvents_SameDayShift(t *testing.T) {
	shifts := []ShiftRecord{
		{ID: "s1", Date: day(2024, 3, 10), StartTime: "07:00", EndTime: "19:00", Type: ShiftDay, Location: "ER", ProfessionalID: "p1"},
	}

	events, bad := ToCalendarEvents(shifts, eventProfessionals(), "viewer", GranularityMonth)
	require.Empty(t, bad)
	require.Len(t, events, 1)

	ev := events[0]
	assert.Equal(t, time.Date(2024, 3, 10, 7, 0, 0, 0, time.UTC), ev.Start)
	assert.Equal(t, time.Date(2024, 3, 10, 19, 0, 0, 0, time.UTC), ev.End)
	assert.False(t, ev.IsMyShift)
	assert.False(t, ev.IsVacant)
	assert.Equal(t, "Ana Souza (+55 11 99999-0001) - ER", ev.Title)
}

func TestToCalendarEvents_OvernightClampedInMonthView(t *testing.T) {
	shifts := []ShiftRecord{
		{ID: "s1", Date: day(2024, 3, 10), StartTime: "22:00", EndTime: "06:00", Type: ShiftNight, Location: "ICU", ProfessionalID: "p1"},
	}

	// Month grid: the overnight tail is clamped to the start date
	events, _ := ToCalendarEvents(shifts, eventProfessionals(), "viewer", GranularityMonth)
	require.Len(t, events, 1)
	assert.Equal(t, time.Date(2024, 3, 10, 22, 0, 0, 0, time.UTC), events[0].Start)
	assert.Equal(t, time.Date(2024, 3, 10, 23, 59, 59, 0, time.UTC), events[0].End)

	// Week view keeps the true overnight end
	events, _ = ToCalendarEvents(shifts, eventProfessionals(), "viewer", GranularityWeek)
	require.Len(t, events, 1)
	assert.Equal(t, time.Date(2024, 3, 10, 22, 0, 0, 0, time.UTC), events[0].Start)
	assert.Equal(t, time.Date(2024, 3, 11, 6, 0, 0, 0, time.UTC), events[0].End)
}

func TestToCalendarEvents_ClampNeverAltersStart(t *testing.T) {
	shifts := []ShiftRecord{
		{ID: "s1", Date: day(2024, 3, 10), StartTime: "22:00", EndTime: "06:00", Type: ShiftNight, ProfessionalID: "p1"},
	}

	monthEvents, _ := ToCalendarEvents(shifts, eventProfessionals(), "viewer", GranularityMonth)
	weekEvents, _ := ToCalendarEvents(shifts, eventProfessionals(), "viewer", GranularityWeek)
	require.Len(t, monthEvents, 1)
	require.Len(t, weekEvents, 1)
	assert.Equal(t, weekEvents[0].Start, monthEvents[0].Start)
}

func TestToCalendarEvents_PreservesCalendarDateAcrossZones(t *testing.T) {
	// The shift's calendar date must survive event construction even
	// in a zone west of UTC, where parsing a combined ISO string would
	// land the event on the previous day
	saoPaulo := time.FixedZone("America/Sao_Paulo", -3*60*60)
	shifts := []ShiftRecord{
		{ID: "s1", Date: time.Date(2024, 3, 10, 0, 0, 0, 0, saoPaulo), StartTime: "07:00", EndTime: "19:00", Type: ShiftDay, ProfessionalID: "p1"},
	}

	events, _ := ToCalendarEvents(shifts, eventProfessionals(), "viewer", GranularityMonth)
	require.Len(t, events, 1)
	y, m, d := events[0].Start.Date()
	assert.Equal(t, 2024, y)
	assert.Equal(t, time.March, m)
	assert.Equal(t, 10, d)
	assert.Equal(t, saoPaulo, events[0].Start.Location())
}

func TestToCalendarEvents_MyShiftFlag(t *testing.T) {
	shifts := []ShiftRecord{
		{ID: "s1", Date: day(2024, 3, 10), StartTime: "07:00", EndTime: "19:00", Type: ShiftDay, ProfessionalID: "p1"},
		{ID: "s2", Date: day(2024, 3, 10), StartTime: "19:00", EndTime: "07:00", Type: ShiftNight, ProfessionalID: "p2"},
		{ID: "s3", Date: day(2024, 3, 11), StartTime: "07:00", EndTime: "19:00", Type: ShiftDay},
	}

	events, _ := ToCalendarEvents(shifts, eventProfessionals(), "p1", GranularityMonth)
	require.Len(t, events, 3)
	assert.True(t, events[0].IsMyShift)
	assert.False(t, events[1].IsMyShift)

	// Vacant can never be the viewer's own shift
	assert.True(t, events[2].IsVacant)
	assert.False(t, events[2].IsMyShift)
}

func TestToCalendarEvents_ContactDisclosure(t *testing.T) {
	shifts := []ShiftRecord{
		{ID: "s1", Date: day(2024, 3, 10), StartTime: "07:00", EndTime: "19:00", Type: ShiftDay, Location: "ER", ProfessionalID: "p2"},
	}

	// p2 opted out of disclosure: no phone in the title for others
	events, _ := ToCalendarEvents(shifts, eventProfessionals(), "p1", GranularityMonth)
	require.Len(t, events, 1)
	assert.Equal(t, "Bruno Lima - ER", events[0].Title)

	// The professional still sees their own contact
	events, _ = ToCalendarEvents(shifts, eventProfessionals(), "p2", GranularityMonth)
	require.Len(t, events, 1)
	assert.Equal(t, "Bruno Lima (+55 11 99999-0002) - ER", events[0].Title)
}

func TestToCalendarEvents_UnresolvedProfessionalFallsBack(t *testing.T) {
	shifts := []ShiftRecord{
		{ID: "s1", Date: day(2024, 3, 10), StartTime: "07:00", EndTime: "19:00", Type: ShiftDay, Location: "ER", ProfessionalID: "ghost"},
	}

	// A dangling professional ID is a display-only condition, not an error
	events, bad := ToCalendarEvents(shifts, eventProfessionals(), "viewer", GranularityMonth)
	require.Empty(t, bad)
	require.Len(t, events, 1)
	assert.Equal(t, "ghost - ER", events[0].Title)
}

func TestToCalendarEvents_VacantTitle(t *testing.T) {
	shifts := []ShiftRecord{
		{ID: "s1", Date: day(2024, 3, 10), StartTime: "07:00", EndTime: "19:00", Type: ShiftDay, Location: "ER"},
	}

	events, _ := ToCalendarEvents(shifts, eventProfessionals(), "viewer", GranularityMonth)
	require.Len(t, events, 1)
	assert.Equal(t, "Vacant - ER", events[0].Title)
}

func TestToCalendarEvents_ReportsBadRecords(t *testing.T) {
	shifts := []ShiftRecord{
		{ID: "no-date", StartTime: "07:00", EndTime: "19:00", Type: ShiftDay, ProfessionalID: "p1"},
		{ID: "bad-time", Date: day(2024, 3, 10), StartTime: "x", EndTime: "19:00", Type: ShiftDay, ProfessionalID: "p1"},
	}

	events, bad := ToCalendarEvents(shifts, eventProfessionals(), "viewer", GranularityMonth)
	assert.Empty(t, events)
	require.Len(t, bad, 2)
	assert.ErrorIs(t, bad[0], ErrMissingShiftDate)
	assert.ErrorIs(t, bad[1], ErrInvalidShiftTime)
}

func TestToCalendarEvents_Idempotent(t *testing.T) {
	shifts := []ShiftRecord{
		{ID: "s1", Date: day(2024, 3, 10), StartTime: "22:00", EndTime: "06:00", Type: ShiftNight, ProfessionalID: "p1"},
	}

	first, _ := ToCalendarEvents(shifts, eventProfessionals(), "p1", GranularityWeek)
	second, _ := ToCalendarEvents(shifts, eventProfessionals(), "p1", GranularityWeek)
	assert.Equal(t, first, second)
}

func TestFilterByProfessional(t *testing.T) {
	shifts := []ShiftRecord{
		{ID: "s1", ProfessionalID: "p1"},
		{ID: "s2", ProfessionalID: "p2"},
		{ID: "s3"},
	}

	assert.Len(t, FilterByProfessional(shifts, ""), 3)

	filtered := FilterByProfessional(shifts, "p1")
	require.Len(t, filtered, 1)
	assert.Equal(t, "s1", filtered[0].ID)
}
