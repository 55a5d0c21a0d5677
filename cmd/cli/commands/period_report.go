package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ofarias/shift-roster/pkg/reports"
	"github.com/ofarias/shift-roster/pkg/services"
)

// PeriodReportCmd creates the periodReport command
func PeriodReportCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "periodReport <start> <end>",
		Short: "Show per-professional shift totals for a period",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, to, err := parsePeriod(app, args[0], args[1])
			if err != nil {
				return err
			}

			filterValue, _ := cmd.Flags().GetString("type")
			filter, ok := reports.ParseShiftTypeFilter(filterValue)
			if !ok {
				return fmt.Errorf("invalid shift type filter %q (use ALL, DAY or NIGHT)", filterValue)
			}

			result, err := services.PeriodReport(app.Ctx, app.Database, app.Logger, app.Cfg.HospitalID, from, to, filter)
			if err != nil {
				return err
			}

			csvPath, _ := cmd.Flags().GetString("csv")
			if csvPath != "" {
				file, err := os.Create(csvPath)
				if err != nil {
					return fmt.Errorf("failed to create csv file: %w", err)
				}
				defer file.Close()

				if err := reports.WriteProfessionalPeriodCSV(file, result.Rows); err != nil {
					return err
				}
				fmt.Printf("\nPeriod report written to %s\n", csvPath)
				return nil
			}

			fmt.Printf("\nPeriod report %s to %s, filter %s (%d professionals):\n\n", args[0], args[1], filter, len(result.Rows))
			for _, row := range result.Rows {
				crm := row.CRM
				if crm == "" {
					crm = "-"
				}
				fmt.Printf("- %s (CRM %s): %d shifts (%d night), %.1fh\n",
					row.Name, crm, row.TotalShifts, row.NightShifts, row.TotalHours)
			}

			if len(result.Skipped) > 0 {
				fmt.Printf("\n%d records were excluded:\n", len(result.Skipped))
				for _, rec := range result.Skipped {
					fmt.Printf("  - %v\n", rec)
				}
			}
			fmt.Println()

			return nil
		},
	}

	cmd.Flags().String("type", "ALL", "Shift type filter: ALL, DAY or NIGHT")
	cmd.Flags().String("csv", "", "Write the report to a CSV file instead of stdout")

	return cmd
}
