// Package services orchestrates the dashboard's use cases: it loads a
// consistent snapshot through the store interfaces, hands it to the
// pure core functions, and reports what was computed and what was
// skipped. All derived data is recomputed per call; nothing is cached.
package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/ofarias/shift-roster/pkg/db"
	"github.com/ofarias/shift-roster/pkg/roster"
)

// WorkloadResult holds the workload summaries for a period plus the
// records that were excluded as unusable
type WorkloadResult struct {
	Summaries []roster.ProfessionalSummary
	Skipped   []roster.RecordError
}

// WorkloadReport loads the roster snapshot for the period and computes
// one workload summary per assigned professional
func WorkloadReport(ctx context.Context, database db.Database, logger *zap.Logger, hospitalID string, from, to time.Time) (*WorkloadResult, error) {
	logger.Info("Building workload report",
		zap.String("hospital_id", hospitalID),
		zap.Time("from", from),
		zap.Time("to", to))

	shifts, err := database.GetShifts(ctx, hospitalID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch shifts: %w", err)
	}
	logger.Debug("Shifts fetched", zap.Int("count", len(shifts)))

	professionals, err := database.GetProfessionals(ctx, hospitalID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch professionals: %w", err)
	}
	logger.Debug("Professionals fetched", zap.Int("count", len(professionals)))

	summaries, skipped := roster.Aggregate(shifts, db.ProfessionalsByID(professionals), from, to)

	for _, rec := range skipped {
		logger.Warn("Skipped unusable shift record",
			zap.String("shift_id", rec.ShiftID),
			zap.Error(rec.Err))
	}

	logger.Info("Workload report built",
		zap.Int("professionals", len(summaries)),
		zap.Int("skipped_records", len(skipped)))

	return &WorkloadResult{Summaries: summaries, Skipped: skipped}, nil
}
