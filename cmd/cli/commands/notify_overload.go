package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ofarias/shift-roster/internal/config"
	"github.com/ofarias/shift-roster/pkg/clients/gmailclient"
	"github.com/ofarias/shift-roster/pkg/services"
	"github.com/ofarias/shift-roster/pkg/utils"
)

// NotifyOverloadCmd creates the notifyOverload command
func NotifyOverloadCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notifyOverload <start> <end>",
		Short: "Email professionals whose projected hours exceed their monthly cap",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, to, err := parsePeriod(app, args[0], args[1])
			if err != nil {
				return err
			}

			dryRun, _ := cmd.Flags().GetBool("dry-run")

			// The gmail client is built on demand: it triggers an OAuth
			// flow on first use and most commands never need it
			var mailer services.Mailer
			if !dryRun {
				mailer, err = buildGmailClient(app)
				if err != nil {
					return err
				}
			}

			alerts, err := services.NotifyOverload(app.Ctx, app.Database, mailer, app.Logger,
				app.Cfg.HospitalID, from, to, dryRun)
			if err != nil {
				return err
			}

			if len(alerts) == 0 {
				fmt.Println("\nNo professional is projected over their monthly cap.")
				return nil
			}

			if dryRun {
				fmt.Printf("\nDry run: %d professionals would be notified:\n\n", len(alerts))
			} else {
				fmt.Printf("\n%d overload alerts processed:\n\n", len(alerts))
			}

			for _, alert := range alerts {
				status := "would send"
				if !dryRun {
					status = "sent"
					if !alert.Sent {
						status = "FAILED: " + alert.SendError
					}
				}
				fmt.Printf("- %s: %.1fh projected vs %.1fh cap [%s] (ref %s)\n",
					alert.Name, alert.ProjectedHours, alert.MonthlyHourCap, status, alert.Ref)
			}
			fmt.Println()

			return nil
		},
	}

	cmd.Flags().Bool("dry-run", false, "Compute the alerts without sending any email")

	return cmd
}

func buildGmailClient(app *AppContext) (*gmailclient.Client, error) {
	app.Logger.Info("Loading OAuth client configuration")
	oauthCfg, err := config.LoadOAuthClientWithEnv(app.Env)
	if err != nil {
		return nil, fmt.Errorf("failed to load OAuth client config: %w", err)
	}

	oauthConfig, err := utils.GetOAuthConfig(oauthCfg)
	if err != nil {
		return nil, err
	}

	token, err := utils.GetTokenWithFlow(app.Ctx, oauthConfig, app.Env)
	if err != nil {
		return nil, fmt.Errorf("failed to obtain OAuth token: %w", err)
	}

	app.Logger.Info("Initializing gmail client")
	client, err := gmailclient.NewClient(app.Ctx, oauthCfg, token, app.Cfg.GmailSender)
	if err != nil {
		return nil, fmt.Errorf("failed to create gmail client: %w", err)
	}

	return client, nil
}
