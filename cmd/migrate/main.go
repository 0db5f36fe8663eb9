package main

import (
	"fmt"
	"os"

	"go-hrms/internal/app"
	"go-hrms/internal/config"
	"go-hrms/internal/shared/connection"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var rootCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Manage the HRMS database schema",
}

var upCmd = &cobra.Command{
	Use:   "up",
	Short: "Create or update every table",
	Long: `Create or update every table used by the API, worker and consumer.
With --seed the request type catalog and the timesheet tasks are loaded as well;
seeding is safe to repeat.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, _ := cmd.Flags().GetString("config")
		seed, _ := cmd.Flags().GetBool("seed")

		cfg, err := config.Load(configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		logger, err := app.NewLogger(cfg)
		if err != nil {
			return err
		}
		defer logger.Sync()

		db, err := connection.ConnectGORMWithRetry(cfg.Database, logger)
		if err != nil {
			return fmt.Errorf("failed to connect database: %w", err)
		}
		defer func() {
			if sqlDB, err := db.DB(); err == nil {
				_ = sqlDB.Close()
			}
		}()

		logger.Info("running database migrations",
			zap.String("host", cfg.Database.Host),
			zap.String("database", cfg.Database.Name),
		)
		if err := app.Migrate(db); err != nil {
			return fmt.Errorf("failed to run migrations: %w", err)
		}

		if seed {
			if err := app.Seed(cmd.Context(), db, logger); err != nil {
				return fmt.Errorf("failed to seed: %w", err)
			}
		}

		logger.Info("database migrations completed")
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "config file path (default: ./config.yaml or ./config/config.yaml)")
	upCmd.Flags().Bool("seed", false, "load request types and timesheet tasks")
	rootCmd.AddCommand(upCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
