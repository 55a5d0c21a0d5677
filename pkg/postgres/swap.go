package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/ofarias/shift-roster/pkg/reports"
)

// GetSwaps retrieves the shift swap requests made within the period
func (d *DB) GetSwaps(ctx context.Context, hospitalID string, from, to time.Time) ([]reports.SwapRecord, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, shift_id, from_professional_id, to_professional_id,
		       status, requested_at, responded_at, reason
		FROM shift_swap
		WHERE hospital_id = $1 AND requested_at BETWEEN $2 AND $3
		ORDER BY requested_at, id
	`, hospitalID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query shift swaps: %w", err)
	}
	defer rows.Close()

	var swaps []reports.SwapRecord
	for rows.Next() {
		var s reports.SwapRecord
		var fromID, toID, reason *string
		var status string
		if err := rows.Scan(&s.ID, &s.ShiftID, &fromID, &toID, &status, &s.RequestedAt, &s.RespondedAt, &reason); err != nil {
			return nil, fmt.Errorf("failed to scan shift swap: %w", err)
		}
		s.Status = reports.SwapStatus(status)
		if fromID != nil {
			s.FromProfessionalID = *fromID
		}
		if toID != nil {
			s.ToProfessionalID = *toID
		}
		if reason != nil {
			s.Reason = *reason
		}
		swaps = append(swaps, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating shift swaps: %w", err)
	}

	return swaps, nil
}
