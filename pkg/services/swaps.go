package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/ofarias/shift-roster/pkg/db"
	"github.com/ofarias/shift-roster/pkg/reports"
)

// SwapReport loads the swap requests made within the period and
// computes the swap indicators, optionally restricted to one shift
// type. The shifts are loaded alongside so filtered swaps can be
// matched to their underlying shift.
func SwapReport(ctx context.Context, database db.Database, logger *zap.Logger, hospitalID string, from, to time.Time, filter reports.ShiftTypeFilter) (*reports.SwapIndicators, error) {
	logger.Info("Building swap report",
		zap.String("hospital_id", hospitalID),
		zap.Time("from", from),
		zap.Time("to", to),
		zap.String("filter", string(filter)))

	swaps, err := database.GetSwaps(ctx, hospitalID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch shift swaps: %w", err)
	}
	logger.Debug("Swaps fetched", zap.Int("count", len(swaps)))

	shifts, err := database.GetShifts(ctx, hospitalID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch shifts: %w", err)
	}

	professionals, err := database.GetProfessionals(ctx, hospitalID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch professionals: %w", err)
	}

	indicators := reports.Swaps(swaps, db.ShiftsByID(shifts), db.ProfessionalsByID(professionals), filter)

	logger.Info("Swap report built",
		zap.Int("total", indicators.Total),
		zap.Int("requested", indicators.Requested),
		zap.Int("approved", indicators.Approved),
		zap.Int("rejected", indicators.Rejected))

	return &indicators, nil
}
