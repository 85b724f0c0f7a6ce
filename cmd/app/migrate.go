package main

import (
	"logistics/internal/adapters/out/postgres"
	"logistics/internal/pkg/logger"

	"github.com/spf13/cobra"
)

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(c *cobra.Command, _ []string) error {
			config, err := loadConfig()
			if err != nil {
				return err
			}

			log := logger.New(logger.Config{Env: config.AppEnv, Level: config.LogLevel})

			db, err := openDB(config, logger.WithComponent(log, "gorm"))
			if err != nil {
				return err
			}

			if err = postgres.Migrate(c.Context(), db); err != nil {
				return err
			}

			log.Info().Msg("schema is up to date")
			return nil
		},
	}
}
