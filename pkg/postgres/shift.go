package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/ofarias/shift-roster/pkg/roster"
)

// GetShifts retrieves the shift records for a hospital within the
// inclusive date range
func (d *DB) GetShifts(ctx context.Context, hospitalID string, from, to time.Time) ([]roster.ShiftRecord, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, shift_date, start_time, end_time, shift_type, location, professional_id
		FROM shift
		WHERE hospital_id = $1 AND shift_date BETWEEN $2 AND $3
		ORDER BY shift_date, start_time, id
	`, hospitalID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query shifts: %w", err)
	}
	defer rows.Close()

	var shifts []roster.ShiftRecord
	for rows.Next() {
		var s roster.ShiftRecord
		var shiftType string
		var professionalID *string
		if err := rows.Scan(&s.ID, &s.Date, &s.StartTime, &s.EndTime, &shiftType, &s.Location, &professionalID); err != nil {
			return nil, fmt.Errorf("failed to scan shift: %w", err)
		}
		s.Type = roster.ShiftType(shiftType)
		if professionalID != nil {
			s.ProfessionalID = *professionalID
		}
		shifts = append(shifts, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating shifts: %w", err)
	}

	return shifts, nil
}
