package roster

import (
	"errors"
	"fmt"
	"time"
)

// ShiftType distinguishes day and night shifts
type ShiftType string

const (
	ShiftDay   ShiftType = "DAY"
	ShiftNight ShiftType = "NIGHT"
)

// Granularity is the active calendar view scale, which controls how
// overnight events are truncated for display
type Granularity string

const (
	GranularityMonth Granularity = "MONTH"
	GranularityWeek  Granularity = "WEEK"
	GranularityDay   Granularity = "DAY"
)

func (g Granularity) IsValid() bool {
	return g == GranularityMonth || g == GranularityWeek || g == GranularityDay
}

// Sentinel errors for bad roster records. These are data errors: the
// affected record is excluded from aggregation/mapping and reported,
// never silently coerced to a zero duration.
var (
	ErrInvalidShiftTime       = errors.New("invalid shift time")
	ErrMissingShiftDate       = errors.New("missing shift date")
	ErrUnresolvedProfessional = errors.New("unresolved professional")
)

// ShiftRecord is one scheduled work period in the roster snapshot.
// Times of day are "HH:MM" on a 24h clock. An empty ProfessionalID
// means the shift is vacant.
type ShiftRecord struct {
	ID             string
	Date           time.Time // calendar date; time-of-day lives in StartTime/EndTime
	StartTime      string
	EndTime        string
	Type           ShiftType
	Location       string
	ProfessionalID string
}

// IsVacant reports whether the shift has no assigned professional
func (s ShiftRecord) IsVacant() bool {
	return s.ProfessionalID == ""
}

// Professional is a roster member as returned by the professional
// listing. DiscloseContact nil means the professional never set a
// preference and defaults to visible.
type Professional struct {
	ID                string
	Name              string
	CRM               string
	Email             string
	Phone             string
	DiscloseContact   *bool
	MonthlyHourCapMin *float64
	MonthlyHourCapMax *float64
	Active            bool
}

// ProfessionalSummary is the per-professional workload summary for a
// viewed period. It is a pure function of the input record set and is
// rebuilt from scratch on every aggregation pass.
type ProfessionalSummary struct {
	ProfessionalID      string
	Name                string
	TotalShifts         int
	NightShifts         int
	Dates               []time.Time // distinct worked dates, ascending
	TotalMinutes        int
	MaxConsecutiveDays  int
	PeriodHours         float64
	Projected30DayHours float64
}

// CalendarEvent is a displayable, derived view of one ShiftRecord
type CalendarEvent struct {
	ID        string
	Title     string
	Start     time.Time
	End       time.Time
	IsMyShift bool
	IsVacant  bool
	Shift     ShiftRecord
}

// RecordError ties a data error to the shift record that caused it,
// so the caller can decide whether to skip the record or surface it
type RecordError struct {
	ShiftID string
	Err     error
}

func (e RecordError) Error() string {
	return fmt.Sprintf("shift %s: %v", e.ShiftID, e.Err)
}

func (e RecordError) Unwrap() error {
	return e.Err
}
