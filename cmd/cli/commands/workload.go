package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ofarias/shift-roster/pkg/reports"
	"github.com/ofarias/shift-roster/pkg/services"
)

// WorkloadCmd creates the workload command
func WorkloadCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "workload <start> <end>",
		Short: "Show per-professional workload summaries for a period",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, to, err := parsePeriod(app, args[0], args[1])
			if err != nil {
				return err
			}

			result, err := services.WorkloadReport(app.Ctx, app.Database, app.Logger, app.Cfg.HospitalID, from, to)
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

				if err := reports.WriteWorkloadCSV(file, result.Summaries); err != nil {
					return err
				}
				fmt.Printf("\nWorkload report written to %s\n", csvPath)
				return nil
			}

			fmt.Printf("\nWorkload %s to %s (%d professionals):\n\n", args[0], args[1], len(result.Summaries))
			for _, s := range result.Summaries {
				fmt.Printf("- %s: %d shifts (%d night), %.1fh in period, %.1fh/30d projected, longest run %d days\n",
					s.Name,
					s.TotalShifts,
					s.NightShifts,
					s.PeriodHours,
					s.Projected30DayHours,
					s.MaxConsecutiveDays,
				)
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

	cmd.Flags().String("csv", "", "Write the report to a CSV file instead of stdout")

	return cmd
}
