package reports

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/ofarias/shift-roster/pkg/roster"
)

// CSV exports use a semicolon separator, matching what the reporting
// screens have always produced for spreadsheet imports.
const csvSeparator = ';'

// WriteProfessionalPeriodCSV writes the period report rows as CSV
func WriteProfessionalPeriodCSV(w io.Writer, rows []ProfessionalPeriodRow) error {
	cw := csv.NewWriter(w)
	cw.Comma = csvSeparator

	header := []string{"Professional", "CRM", "TotalShifts", "NightShifts", "TotalHours", "MonthlyCapMin", "MonthlyCapMax"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, row := range rows {
		record := []string{
			row.Name,
			row.CRM,
			strconv.Itoa(row.TotalShifts),
			strconv.Itoa(row.NightShifts),
			formatHours(row.TotalHours),
			formatCap(row.MonthlyHourCapMin),
			formatCap(row.MonthlyHourCapMax),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteSwapIndicatorsCSV writes the swap totals followed by the
// per-professional breakdown, separated by a blank line
func WriteSwapIndicatorsCSV(w io.Writer, indicators SwapIndicators) error {
	cw := csv.NewWriter(w)
	cw.Comma = csvSeparator

	if err := cw.Write([]string{"TotalSwaps", "TotalRequested", "TotalApproved", "TotalRejected"}); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}
	totals := []string{
		strconv.Itoa(indicators.Total),
		strconv.Itoa(indicators.Requested),
		strconv.Itoa(indicators.Approved),
		strconv.Itoa(indicators.Rejected),
	}
	if err := cw.Write(totals); err != nil {
		return fmt.Errorf("failed to write csv row: %w", err)
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return err
	}

	if len(indicators.PerProfessional) == 0 {
		return nil
	}

	if _, err := io.WriteString(w, "\n"); err != nil {
		return fmt.Errorf("failed to write csv separator: %w", err)
	}

	if err := cw.Write([]string{"Professional", "CRM", "AsOrigin", "AsDestination"}); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, row := range indicators.PerProfessional {
		record := []string{
			row.Name,
			row.CRM,
			strconv.Itoa(row.AsOrigin),
			strconv.Itoa(row.AsDestination),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteWorkloadCSV writes workload summaries as CSV
func WriteWorkloadCSV(w io.Writer, summaries []roster.ProfessionalSummary) error {
	cw := csv.NewWriter(w)
	cw.Comma = csvSeparator

	header := []string{"Professional", "TotalShifts", "NightShifts", "MaxConsecutiveDays", "PeriodHours", "Projected30DayHours"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, summary := range summaries {
		record := []string{
			summary.Name,
			strconv.Itoa(summary.TotalShifts),
			strconv.Itoa(summary.NightShifts),
			strconv.Itoa(summary.MaxConsecutiveDays),
			formatHours(summary.PeriodHours),
			formatHours(summary.Projected30DayHours),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// formatHours rounds to one decimal like the on-screen report
func formatHours(hours float64) string {
	return strconv.FormatFloat(math.Round(hours*10)/10, 'f', -1, 64)
}

func formatCap(cap *float64) string {
	if cap == nil {
		return ""
	}
	return strconv.FormatFloat(*cap, 'f', -1, 64)
}
