package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ofarias/shift-roster/cmd/cli/commands"
	"github.com/ofarias/shift-roster/internal/config"
	"github.com/ofarias/shift-roster/pkg/postgres"
	"github.com/ofarias/shift-roster/pkg/utils/logging"
)

var (
	env string
	app *commands.AppContext
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "rosterctl",
		Short: "Shift roster dashboard - workload, calendar and coverage reports",
		Long:  `A CLI for the hospital shift roster dashboard: per-professional workload summaries, shift calendars, swap indicators, coverage gaps and overload notifications.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app != nil {
				if app.Logger != nil {
					app.Logger.Sync()
				}
				if app.DB != nil {
					app.DB.Close()
				}
			}
		},
	}

	// Add persistent environment flag
	rootCmd.PersistentFlags().StringVarP(&env, "env", "e", "", "Environment (required: test, prod, etc.)")
	rootCmd.MarkPersistentFlagRequired("env")

	// Add all commands
	rootCmd.AddCommand(commands.WorkloadCmd(appRef()))
	rootCmd.AddCommand(commands.PeriodReportCmd(appRef()))
	rootCmd.AddCommand(commands.CalendarCmd(appRef()))
	rootCmd.AddCommand(commands.SwapsCmd(appRef()))
	rootCmd.AddCommand(commands.CoverageCmd(appRef()))
	rootCmd.AddCommand(commands.ListProfessionalsCmd(appRef()))
	rootCmd.AddCommand(commands.NotifyOverloadCmd(appRef()))
	rootCmd.AddCommand(commands.MigrateCmd(appRef()))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// appRef returns the shared AppContext, creating the empty shell if
// needed. The fields are populated by initApp before any RunE runs.
func appRef() *commands.AppContext {
	if app == nil {
		app = &commands.AppContext{}
	}
	return app
}

// initApp sets up logger, config and database
func initApp() error {
	var err error
	appCtx := appRef()
	appCtx.Ctx = context.Background()
	appCtx.Env = env

	// Initialize logger
	appCtx.Logger, err = logging.InitLogger(env)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	appCtx.Logger.Info("Starting application", zap.String("environment", env))

	// Load configuration
	appCtx.Logger.Info("Loading configuration")
	appCtx.Cfg, err = config.LoadWithEnv(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	appCtx.Logger.Debug("Configuration loaded successfully")

	// Connect to the database
	appCtx.Logger.Info("Connecting to database")
	appCtx.DB, err = postgres.NewDB(appCtx.Ctx, appCtx.Cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	appCtx.Database = appCtx.DB
	appCtx.Logger.Info("Database initialized successfully")

	return nil
}
