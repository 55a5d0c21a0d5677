package roster

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveStyle_Priority(t *testing.T) {
	tests := []struct {
		name     string
		event    CalendarEvent
		expected Style
	}{
		{
			name:     "vacant day shift",
			event:    CalendarEvent{IsVacant: true, Shift: ShiftRecord{Type: ShiftDay}},
			expected: StyleVacant,
		},
		{
			name:     "vacant night shift",
			event:    CalendarEvent{IsVacant: true, Shift: ShiftRecord{Type: ShiftNight}},
			expected: StyleVacant,
		},
		{
			name:     "own day shift",
			event:    CalendarEvent{IsMyShift: true, Shift: ShiftRecord{Type: ShiftDay}},
			expected: StyleMine,
		},
		{
			name:     "own night shift",
			event:    CalendarEvent{IsMyShift: true, Shift: ShiftRecord{Type: ShiftNight}},
			expected: StyleMine,
		},
		{
			name:     "someone else's day shift",
			event:    CalendarEvent{Shift: ShiftRecord{Type: ShiftDay, ProfessionalID: "p9"}},
			expected: StyleDay,
		},
		{
			name:     "someone else's night shift",
			event:    CalendarEvent{Shift: ShiftRecord{Type: ShiftNight, ProfessionalID: "p9"}},
			expected: StyleNight,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ResolveStyle(tt.event))
		})
	}
}

func TestResolveStyle_VacantAndMineNeverTyped(t *testing.T) {
	for _, shiftType := range []ShiftType{ShiftDay, ShiftNight} {
		vacant := ResolveStyle(CalendarEvent{IsVacant: true, Shift: ShiftRecord{Type: shiftType}})
		assert.NotEqual(t, StyleDay, vacant)
		assert.NotEqual(t, StyleNight, vacant)

		mine := ResolveStyle(CalendarEvent{IsMyShift: true, Shift: ShiftRecord{Type: shiftType}})
		assert.NotEqual(t, StyleDay, mine)
		assert.NotEqual(t, StyleNight, mine)
	}
}

func TestCanSeeContact(t *testing.T) {
	undisclosed := Professional{ID: "p1", DiscloseContact: boolPtr(false)}
	disclosed := Professional{ID: "p2", DiscloseContact: boolPtr(true)}
	unset := Professional{ID: "p3"}

	// Unset defaults to visible
	assert.True(t, CanSeeContact(unset, "viewer"))
	assert.True(t, CanSeeContact(disclosed, "viewer"))
	assert.False(t, CanSeeContact(undisclosed, "viewer"))

	// Own contact is always visible
	assert.True(t, CanSeeContact(undisclosed, "p1"))
}
