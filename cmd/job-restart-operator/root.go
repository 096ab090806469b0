package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/skillcoder/job-restart-operator/internal/app"
	"github.com/skillcoder/job-restart-operator/internal/config"
	"github.com/skillcoder/job-restart-operator/internal/infra/appstate"
	"github.com/skillcoder/job-restart-operator/internal/infra/logging"
)

func newRootCmd(signals <-chan os.Signal, appStart time.Time) *cobra.Command {
	runE := func(cmd *cobra.Command, _ []string) error {
		return runOperator(cmd.Context(), signals, appStart)
	}

	rootCmd := &cobra.Command{
		Use:   "job-restart-operator",
		Short: "Recreate failed Kubernetes Jobs after a cooldown",
		Long: `job-restart-operator polls a fixed list of Jobs in one namespace.

A Job that reached the Failed condition is deleted and recreated from its own
definition once RESTART_DELAY has elapsed, or right away when SKIP_DELAY_ON_OOM
is set and one of its pods was OOM killed. Configuration is read from the environment.`,
		Version:       app.Version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runE,
	}

	rootCmd.AddCommand(&cobra.Command{
		Use:   "run",
		Short: "Run the reconcile loop until SIGTERM or SIGINT (default)",
		Args:  cobra.NoArgs,
		RunE:  runE,
	})
	rootCmd.AddCommand(manifestCmd())
	rootCmd.AddCommand(versionCmd())

	return rootCmd
}

func runOperator(ctx context.Context, signals <-chan os.Signal, appStart time.Time) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := logging.New(cfg.LogFormat, cfg.LogLevel)
	appState := appstate.New(logger, appStart, signals)

	application, err := app.New(logger, cfg, appState)
	if err != nil {
		return fmt.Errorf("new application: %w", err)
	}

	err = application.Run(ctx)
	if err != nil {
		return fmt.Errorf("run application: %w", err)
	}

	logger.InfoContext(ctx, "bye")

	return nil
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Println(app.Version)
		},
	}
}
