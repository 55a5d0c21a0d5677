// Package db defines the store interfaces the dashboard reads its
// roster snapshot through. The core never writes: the roster is owned
// by the external scheduling service, and everything the dashboard
// shows is recomputed from what these interfaces return.
package db

import (
	"context"
	"time"

	"github.com/ofarias/shift-roster/pkg/reports"
	"github.com/ofarias/shift-roster/pkg/roster"
)

// ShiftStore loads shift records for a hospital and period
type ShiftStore interface {
	GetShifts(ctx context.Context, hospitalID string, from, to time.Time) ([]roster.ShiftRecord, error)
}

// ProfessionalStore loads the professional listing for a hospital
type ProfessionalStore interface {
	GetProfessionals(ctx context.Context, hospitalID string) ([]roster.Professional, error)
}

// SwapStore loads shift swap requests made within a period
type SwapStore interface {
	GetSwaps(ctx context.Context, hospitalID string, from, to time.Time) ([]reports.SwapRecord, error)
}

// Database is the full read surface. postgres.DB implements it.
type Database interface {
	ShiftStore
	ProfessionalStore
	SwapStore
}

// ProfessionalsByID indexes a professional listing by identifier for
// the lookup maps the core functions take
func ProfessionalsByID(professionals []roster.Professional) map[string]roster.Professional {
	byID := make(map[string]roster.Professional, len(professionals))
	for _, p := range professionals {
		byID[p.ID] = p
	}
	return byID
}

// ShiftsByID indexes shift records by identifier
func ShiftsByID(shifts []roster.ShiftRecord) map[string]roster.ShiftRecord {
	byID := make(map[string]roster.ShiftRecord, len(shifts))
	for _, s := range shifts {
		byID[s.ID] = s
	}
	return byID
}
