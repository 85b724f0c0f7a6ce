package main

import (
	"fmt"
	"os"

	"logistics/cmd"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const envFile = ".env"

func main() {
	rootCmd := &cobra.Command{
		Use:           "logistics",
		Short:         "Logistics operations core",
		Long:          "Operation lifecycle and movement ledger of a multi-tenant logistics platform.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(historyCmd())
	rootCmd.AddCommand(seedCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadConfig() (cmd.Config, error) {
	config, err := cmd.LoadConfig(envFile)
	if err != nil {
		return cmd.Config{}, err
	}
	if err = config.Validate(); err != nil {
		return cmd.Config{}, err
	}
	return config, nil
}

func openDB(config cmd.Config, log zerolog.Logger) (*gorm.DB, error) {
	level := gormlogger.Warn
	if log.GetLevel() > zerolog.WarnLevel {
		level = gormlogger.Silent
	}

	db, err := gorm.Open(postgres.Open(config.DSN()), &gorm.Config{
		Logger: gormlogger.New(&log, gormlogger.Config{
			LogLevel:                  level,
			IgnoreRecordNotFoundError: true,
		}),
	})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	return db, nil
}
