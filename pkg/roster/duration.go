package roster

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const minutesPerDay = 24 * 60

// parseClock parses an "HH:MM" time of day into hour and minute
// components. A trailing seconds component is tolerated and ignored.
func parseClock(value string) (hour, minute int, err error) {
	parts := strings.Split(value, ":")
	if len(parts) < 2 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidShiftTime, value)
	}

	hour, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidShiftTime, value)
	}

	minute, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidShiftTime, value)
	}

	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidShiftTime, value)
	}

	return hour, minute, nil
}

// ShiftDuration computes the elapsed time of one shift from its start
// and end times of day. An end at or before the start means the shift
// crosses midnight, so the result is always strictly positive.
//
// End exactly equal to start is treated as a full 24-hour shift, not a
// zero-length one. That matches the wraparound rule the rest of the
// system relies on; do not change it to zero without checking every
// roster that schedules round-the-clock cover as a single record.
func ShiftDuration(start, end string) (time.Duration, error) {
	startHour, startMin, err := parseClock(start)
	if err != nil {
		return 0, err
	}

	endHour, endMin, err := parseClock(end)
	if err != nil {
		return 0, err
	}

	startMinutes := startHour*60 + startMin
	endMinutes := endHour*60 + endMin
	if endMinutes <= startMinutes {
		endMinutes += minutesPerDay
	}

	return time.Duration(endMinutes-startMinutes) * time.Minute, nil
}
