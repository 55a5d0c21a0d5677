package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/ofarias/shift-roster/pkg/coverage"
	"github.com/ofarias/shift-roster/pkg/db"
)

// CoverageReport expands the configured coverage rules over the period
// and reports the dates the roster leaves uncovered
func CoverageReport(ctx context.Context, database db.ShiftStore, logger *zap.Logger, rules []coverage.Rule, hospitalID string, from, to time.Time) ([]coverage.Gap, error) {
	logger.Info("Building coverage report",
		zap.String("hospital_id", hospitalID),
		zap.Int("rules", len(rules)),
		zap.Time("from", from),
		zap.Time("to", to))

	shifts, err := database.GetShifts(ctx, hospitalID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch shifts: %w", err)
	}

	gaps, err := coverage.Gaps(rules, shifts, from, to)
	if err != nil {
		return nil, err
	}

	logger.Info("Coverage report built", zap.Int("gaps", len(gaps)))

	return gaps, nil
}
