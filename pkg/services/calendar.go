package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/ofarias/shift-roster/pkg/db"
	"github.com/ofarias/shift-roster/pkg/roster"
)

// CalendarResult holds the renderable events for a view plus the
// records that could not be mapped
type CalendarResult struct {
	Events  []roster.CalendarEvent
	Skipped []roster.RecordError
}

// CalendarView loads the roster snapshot for the period and maps it to
// calendar events for the given viewer and view granularity. When
// filterProfessionalID is set, only that professional's shifts are
// mapped (the coordinator-side filter; it does not affect the viewer's
// own-shift highlighting).
func CalendarView(ctx context.Context, database db.Database, logger *zap.Logger, hospitalID, viewerID string, granularity roster.Granularity, from, to time.Time, filterProfessionalID string) (*CalendarResult, error) {
	if !granularity.IsValid() {
		return nil, fmt.Errorf("invalid view granularity %q", granularity)
	}

	logger.Info("Building calendar view",
		zap.String("hospital_id", hospitalID),
		zap.String("viewer_id", viewerID),
		zap.String("granularity", string(granularity)),
		zap.Time("from", from),
		zap.Time("to", to))

	shifts, err := database.GetShifts(ctx, hospitalID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch shifts: %w", err)
	}

	professionals, err := database.GetProfessionals(ctx, hospitalID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch professionals: %w", err)
	}

	shifts = roster.FilterByProfessional(shifts, filterProfessionalID)

	events, skipped := roster.ToCalendarEvents(shifts, db.ProfessionalsByID(professionals), viewerID, granularity)

	for _, rec := range skipped {
		logger.Warn("Skipped unmappable shift record",
			zap.String("shift_id", rec.ShiftID),
			zap.Error(rec.Err))
	}

	logger.Info("Calendar view built",
		zap.Int("events", len(events)),
		zap.Int("skipped_records", len(skipped)))

	return &CalendarResult{Events: events, Skipped: skipped}, nil
}
