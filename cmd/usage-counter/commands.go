package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"usage-counter/internal/app"
	"usage-counter/internal/database"
	"usage-counter/internal/shared/configs"

	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

func newRootCmd() *cobra.Command {
	var configPath string

	rootCmd := &cobra.Command{
		Use:           "usage-counter",
		Short:         "COUNTER usage statistics from access logs",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "./configs/configs.yml", "path of the YAML configuration")

	loadConfig := func() (*configs.Config, error) {
		cfg, err := configs.LoadConfig(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		return cfg, nil
	}

	rootCmd.AddCommand(
		newRunCmd(loadConfig),
		newServeCmd(loadConfig),
		newMigrateCmd(loadConfig),
	)
	return rootCmd
}

func newRunCmd(loadConfig func() (*configs.Config, error)) *cobra.Command {
	var logs, period string

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Count a log file, a directory of log files or a period of the log store",
		Example: `  usage-counter run --logs ./logs/2021-03-14.tsv.gz
  usage-counter run --period 2021-03-01,2021-03-31`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			application, err := app.New(ctx, cfg)
			if err != nil {
				return fmt.Errorf("failed to initialize app: %w", err)
			}
			if logs != "" {
				return application.RunLogFiles(ctx, logs)
			}
			return application.RunPeriod(ctx, period)
		},
	}
	runCmd.Flags().StringVar(&logs, "logs", "", "log file or directory of log files")
	runCmd.Flags().StringVar(&period, "period", "", "YYYY-MM-DD or YYYY-MM-DD,YYYY-MM-DD read from the log store")
	runCmd.MarkFlagsMutuallyExclusive("logs", "period")
	runCmd.MarkFlagsOneRequired("logs", "period")
	return runCmd
}

func newServeCmd(loadConfig func() (*configs.Config, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Accept batch uploads over HTTP and count them in the background",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			application, err := app.New(cmd.Context(), cfg)
			if err != nil {
				return fmt.Errorf("failed to initialize app: %w", err)
			}

			// Start server in goroutine
			serveErr := make(chan error, 1)
			go func() {
				if err := application.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					serveErr <- err
				}
				close(serveErr)
			}()

			// Wait for interrupt signal or a failed start
			quit := make(chan os.Signal, 1)
			signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
			select {
			case <-quit:
			case err := <-serveErr:
				if err != nil {
					return fmt.Errorf("server failed: %w", err)
				}
			}

			// Graceful shutdown
			ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := application.Shutdown(ctx); err != nil {
				return fmt.Errorf("server forced to shutdown: %w", err)
			}
			return nil
		},
	}
}

func newMigrateCmd(loadConfig func() (*configs.Config, error)) *cobra.Command {
	var down bool

	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply (or roll back with --down) the counter schema migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			direction := database.Up
			if down {
				direction = database.Down
			}
			return app.MigrateDatabase(cmd.Context(), cfg, direction)
		},
	}
	migrateCmd.Flags().BoolVarP(&down, "down", "d", false, "roll back every migration")
	return migrateCmd
}
