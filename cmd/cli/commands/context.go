package commands

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/ofarias/shift-roster/internal/config"
	"github.com/ofarias/shift-roster/pkg/db"
	"github.com/ofarias/shift-roster/pkg/postgres"
)

// AppContext holds the application dependencies shared across all commands
type AppContext struct {
	Cfg      *config.Config
	Database db.Database
	DB       *postgres.DB
	Logger   *zap.Logger
	Ctx      context.Context
	Env      string
}

// parseDate parses a YYYY-MM-DD argument in the configured timezone
func parseDate(app *AppContext, value string) (time.Time, error) {
	loc, err := app.Cfg.Location()
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to resolve timezone: %w", err)
	}

	date, err := time.ParseInLocation("2006-01-02", value, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("date must be YYYY-MM-DD: %w", err)
	}
	return date, nil
}

// parsePeriod parses the <start> <end> argument pair
func parsePeriod(app *AppContext, startArg, endArg string) (time.Time, time.Time, error) {
	from, err := parseDate(app, startArg)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	to, err := parseDate(app, endArg)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if to.Before(from) {
		return time.Time{}, time.Time{}, fmt.Errorf("end date %s is before start date %s", endArg, startArg)
	}
	return from, to, nil
}
