package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ofarias/shift-roster/pkg/reports"
	"github.com/ofarias/shift-roster/pkg/services"
)

// SwapsCmd creates the swaps command
func SwapsCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "swaps <start> <end>",
		Short: "Show shift swap indicators for a period",
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

			indicators, err := services.SwapReport(app.Ctx, app.Database, app.Logger,
				app.Cfg.HospitalID, from, to, filter)
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

				if err := reports.WriteSwapIndicatorsCSV(file, *indicators); err != nil {
					return err
				}
				fmt.Printf("\nSwap report written to %s\n", csvPath)
				return nil
			}

			fmt.Printf("\nSwaps %s to %s, filter %s:\n\n", args[0], args[1], filter)
			fmt.Printf("Total:     %d\n", indicators.Total)
			fmt.Printf("Requested: %d\n", indicators.Requested)
			fmt.Printf("Approved:  %d\n", indicators.Approved)
			fmt.Printf("Rejected:  %d\n", indicators.Rejected)

			if len(indicators.PerProfessional) > 0 {
				fmt.Println("\nPer professional:")
				for _, row := range indicators.PerProfessional {
					fmt.Printf("- %s: requested %d, received %d\n", row.Name, row.AsOrigin, row.AsDestination)
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
