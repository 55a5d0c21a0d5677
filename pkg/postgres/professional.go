package postgres

import (
	"context"
	"fmt"

	"github.com/ofarias/shift-roster/pkg/roster"
)

// GetProfessionals retrieves the professional listing for a hospital
func (d *DB) GetProfessionals(ctx context.Context, hospitalID string) ([]roster.Professional, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, name, crm, email, phone, disclose_contact,
		       monthly_hour_cap_min, monthly_hour_cap_max, active
		FROM professional
		WHERE hospital_id = $1
		ORDER BY name, id
	`, hospitalID)
	if err != nil {
		return nil, fmt.Errorf("failed to query professionals: %w", err)
	}
	defer rows.Close()

	var professionals []roster.Professional
	for rows.Next() {
		var p roster.Professional
		var crm, email, phone *string
		if err := rows.Scan(&p.ID, &p.Name, &crm, &email, &phone, &p.DiscloseContact,
			&p.MonthlyHourCapMin, &p.MonthlyHourCapMax, &p.Active); err != nil {
			return nil, fmt.Errorf("failed to scan professional: %w", err)
		}
		if crm != nil {
			p.CRM = *crm
		}
		if email != nil {
			p.Email = *email
		}
		if phone != nil {
			p.Phone = *phone
		}
		professionals = append(professionals, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating professionals: %w", err)
	}

	return professionals, nil
}
