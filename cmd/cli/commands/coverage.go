package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ofarias/shift-roster/pkg/coverage"
	"github.com/ofarias/shift-roster/pkg/roster"
	"github.com/ofarias/shift-roster/pkg/services"
)

// CoverageCmd creates the coverage command
func CoverageCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "coverage <start> <end>",
		Short: "Report dates where configured coverage rules are not met",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, to, err := parsePeriod(app, args[0], args[1])
			if err != nil {
				return err
			}

			if len(app.Cfg.CoverageRules) == 0 {
				fmt.Println("\nNo coverage rules configured - nothing to check.")
				return nil
			}

			rules := make([]coverage.Rule, 0, len(app.Cfg.CoverageRules))
			for _, rule := range app.Cfg.CoverageRules {
				rules = append(rules, coverage.Rule{
					Name:     rule.Name,
					RRule:    rule.RRule,
					Location: rule.Location,
					Type:     roster.ShiftType(rule.Type),
				})
			}

			gaps, err := services.CoverageReport(app.Ctx, app.Database, app.Logger,
				rules, app.Cfg.HospitalID, from, to)
			if err != nil {
				return err
			}

			if len(gaps) == 0 {
				fmt.Printf("\nAll %d coverage rules are met between %s and %s.\n\n", len(rules), args[0], args[1])
				return nil
			}

			fmt.Printf("\n%d coverage gaps between %s and %s:\n\n", len(gaps), args[0], args[1])
			for _, gap := range gaps {
				fmt.Printf("- %s  [%s/%s] %s\n",
					gap.Date.Format("2006-01-02 (Monday)"),
					gap.Rule.Location,
					gap.Rule.Type,
					gap.Rule.Name,
				)
			}
			fmt.Println()

			return nil
		},
	}
}
