package roster

// Style is the semantic visual category of a calendar event
type Style string

const (
	StyleVacant Style = "VACANT"
	StyleMine   Style = "MINE"
	StyleDay    Style = "DAY"
	StyleNight  Style = "NIGHT"
)

// ResolveStyle assigns the visual category for one event. An unfilled
// shift is the most urgent operational signal, so VACANT outranks the
// viewer's own-shift highlight, which outranks the day/night coloring.
func ResolveStyle(event CalendarEvent) Style {
	switch {
	case event.IsVacant:
		return StyleVacant
	case event.IsMyShift:
		return StyleMine
	case event.Shift.Type == ShiftDay:
		return StyleDay
	default:
		return StyleNight
	}
}

// CanSeeContact reports whether a professional's contact details may
// be shown to the viewer. The professional's own disclosure flag is
// the single source of the rule: unset means visible. Professionals
// always see their own contact details.
func CanSeeContact(professional Professional, viewerID string) bool {
	if professional.ID == viewerID {
		return true
	}
	return professional.DiscloseContact == nil || *professional.DiscloseContact
}
