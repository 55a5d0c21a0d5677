package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ofarias/shift-roster/pkg/roster"
)

// ListProfessionalsCmd creates the listProfessionals command
func ListProfessionalsCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "listProfessionals",
		Short: "List the professionals registered for the hospital",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			viewerID, _ := cmd.Flags().GetString("viewer")

			professionals, err := app.Database.GetProfessionals(app.Ctx, app.Cfg.HospitalID)
			if err != nil {
				return fmt.Errorf("failed to list professionals: %w", err)
			}

			fmt.Printf("\nFound %d professionals:\n\n", len(professionals))
			for _, p := range professionals {
				status := "active"
				if !p.Active {
					status = "inactive"
				}

				contact := "contact hidden"
				if roster.CanSeeContact(p, viewerID) {
					contact = p.Email
					if p.Phone != "" {
						contact += " / " + p.Phone
					}
				}

				capInfo := ""
				if p.MonthlyHourCapMax != nil {
					capInfo = fmt.Sprintf(" [cap %.0fh/month]", *p.MonthlyHourCapMax)
				}

				fmt.Printf("- %s (CRM %s) - %s - %s%s\n", p.Name, p.CRM, status, contact, capInfo)
			}
			fmt.Println()

			return nil
		},
	}

	cmd.Flags().String("viewer", "", "Professional ID of the viewer (controls contact visibility)")

	return cmd
}
