package reports

import (
	"sort"
	"strings"
	"time"

	"github.com/ofarias/shift-roster/pkg/roster"
)

// SwapStatus is the lifecycle state of a shift swap request
type SwapStatus string

const (
	SwapRequested SwapStatus = "REQUESTED"
	SwapApproved  SwapStatus = "APPROVED"
	SwapRejected  SwapStatus = "REJECTED"
)

// SwapRecord is one shift swap between two professionals
type SwapRecord struct {
	ID                 string
	ShiftID            string
	FromProfessionalID string
	ToProfessionalID   string
	Status             SwapStatus
	RequestedAt        time.Time
	RespondedAt        *time.Time
	Reason             string
}

// ProfessionalSwapRow tallies how often a professional appears in
// swaps as the requesting side and as the receiving side
type ProfessionalSwapRow struct {
	ProfessionalID string
	Name           string
	CRM            string
	AsOrigin       int
	AsDestination  int
}

// SwapIndicators summarizes swap activity for a period
type SwapIndicators struct {
	Total           int
	Requested       int
	Approved        int
	Rejected        int
	PerProfessional []ProfessionalSwapRow
}

// Swaps computes swap indicators over the given swap records. When a
// shift-type filter is set, swaps are matched against their underlying
// shift via shiftsByID and swaps whose shift is missing or of another
// type are excluded.
func Swaps(swaps []SwapRecord, shiftsByID map[string]roster.ShiftRecord, professionals map[string]roster.Professional, filter ShiftTypeFilter) SwapIndicators {
	indicators := SwapIndicators{}
	perProfessional := make(map[string]*ProfessionalSwapRow)

	filtered := filter != "" && !strings.EqualFold(string(filter), string(FilterAll))

	for _, swap := range swaps {
		if filtered {
			shift, ok := shiftsByID[swap.ShiftID]
			if !ok || !filter.Matches(shift.Type) {
				continue
			}
		}

		indicators.Total++
		switch {
		case strings.EqualFold(string(swap.Status), string(SwapRequested)):
			indicators.Requested++
		case strings.EqualFold(string(swap.Status), string(SwapApproved)):
			indicators.Approved++
		case strings.EqualFold(string(swap.Status), string(SwapRejected)):
			indicators.Rejected++
		}

		if swap.FromProfessionalID != "" {
			row := swapRow(perProfessional, swap.FromProfessionalID)
			row.AsOrigin++
		}
		if swap.ToProfessionalID != "" {
			row := swapRow(perProfessional, swap.ToProfessionalID)
			row.AsDestination++
		}
	}

	for professionalID, row := range perProfessional {
		if professional, ok := professionals[professionalID]; ok {
			row.Name = professional.Name
			row.CRM = professional.CRM
		} else {
			row.Name = professionalID
		}
		indicators.PerProfessional = append(indicators.PerProfessional, *row)
	}

	sort.Slice(indicators.PerProfessional, func(i, j int) bool {
		return indicators.PerProfessional[i].ProfessionalID < indicators.PerProfessional[j].ProfessionalID
	})

	return indicators
}

func swapRow(rows map[string]*ProfessionalSwapRow, professionalID string) *ProfessionalSwapRow {
	row := rows[professionalID]
	if row == nil {
		row = &ProfessionalSwapRow{ProfessionalID: professionalID}
		rows[professionalID] = row
	}
	return row
}
