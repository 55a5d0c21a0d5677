package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ofarias/shift-roster/pkg/roster"
	"github.com/ofarias/shift-roster/pkg/services"
)

// CalendarCmd creates the calendar command
func CalendarCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calendar <start> <end>",
		Short: "Show the shift calendar for a period",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, to, err := parsePeriod(app, args[0], args[1])
			if err != nil {
				return err
			}

			view, _ := cmd.Flags().GetString("view")
			viewerID, _ := cmd.Flags().GetString("viewer")
			professionalID, _ := cmd.Flags().GetString("professional")

			granularity := roster.Granularity(strings.ToUpper(view))

			result, err := services.CalendarView(app.Ctx, app.Database, app.Logger,
				app.Cfg.HospitalID, viewerID, granularity, from, to, professionalID)
			if err != nil {
				return err
			}

			fmt.Printf("\nCalendar %s to %s, %s view (%d events):\n\n", args[0], args[1], granularity, len(result.Events))
			for _, event := range result.Events {
				style := roster.ResolveStyle(event)
				marker := " "
				if event.IsMyShift {
					marker = "*"
				}
				fmt.Printf("%s %s  %s - %s  [%s] %s (%s)\n",
					marker,
					event.Start.Format("2006-01-02"),
					event.Start.Format("15:04"),
					event.End.Format("2006-01-02 15:04"),
					event.Shift.Location,
					event.Title,
					style,
				)
			}

			if len(result.Skipped) > 0 {
				fmt.Printf("\n%d records could not be displayed:\n", len(result.Skipped))
				for _, rec := range result.Skipped {
					fmt.Printf("  - %v\n", rec)
				}
			}
			fmt.Println()

			return nil
		},
	}

	cmd.Flags().String("view", "MONTH", "Calendar view: MONTH, WEEK or DAY")
	cmd.Flags().String("viewer", "", "Professional ID of the viewer (highlights their shifts)")
	cmd.Flags().String("professional", "", "Only show shifts assigned to this professional ID")

	return cmd
}
