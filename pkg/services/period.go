package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/ofarias/shift-roster/pkg/db"
	"github.com/ofarias/shift-roster/pkg/reports"
	"github.com/ofarias/shift-roster/pkg/roster"
)

// PeriodResult holds the period report rows plus the records excluded
// as unusable
type PeriodResult struct {
	Rows    []reports.ProfessionalPeriodRow
	Skipped []roster.RecordError
}

// PeriodReport loads the roster snapshot for the period and computes
// per-professional totals, optionally restricted to one shift type
func PeriodReport(ctx context.Context, database db.Database, logger *zap.Logger, hospitalID string, from, to time.Time, filter reports.ShiftTypeFilter) (*PeriodResult, error) {
	logger.Info("Building period report",
		zap.String("hospital_id", hospitalID),
		zap.Time("from", from),
		zap.Time("to", to),
		zap.String("filter", string(filter)))

	shifts, err := database.GetShifts(ctx, hospitalID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch shifts: %w", err)
	}

	professionals, err := database.GetProfessionals(ctx, hospitalID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch professionals: %w", err)
	}

	rows, skipped := reports.ProfessionalPeriod(shifts, db.ProfessionalsByID(professionals), filter)

	for _, rec := range skipped {
		logger.Warn("Skipped unusable shift record",
			zap.String("shift_id", rec.ShiftID),
			zap.Error(rec.Err))
	}

	logger.Info("Period report built",
		zap.Int("rows", len(rows)),
		zap.Int("skipped_records", len(skipped)))

	return &PeriodResult{Rows: rows, Skipped: skipped}, nil
}
