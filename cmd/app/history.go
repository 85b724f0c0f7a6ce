package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/movement"
	"logistics/internal/pkg/logger"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func historyCmd() *cobra.Command {
	var tenant string

	command := &cobra.Command{
		Use:   "history ENTITY_TYPE ENTITY_ID",
		Short: "Print the movement ledger of an entity",
		Long:  "Print the movements recorded for an entity, oldest first. ENTITY_TYPE is one of OPERATION, PRODUCT, USER, COMPANY.",
		Args:  cobra.ExactArgs(2),
		RunE: func(c *cobra.Command, args []string) error {
			tenantID, err := kernel.UUIDFromString(tenant)
			if err != nil {
				return fmt.Errorf("--tenant: %w", err)
			}

			entityType, err := movement.ParseEntityType(strings.ToUpper(args[0]))
			if err != nil {
				return err
			}

			entityID, err := kernel.UUIDFromString(args[1])
			if err != nil {
				return fmt.Errorf("entity id: %w", err)
			}

			query, err := queries.NewListEntityMovementsQuery(tenantID, entityType, entityID)
			if err != nil {
				return err
			}

			config, err := loadConfig()
			if err != nil {
				return err
			}

			log := logger.New(logger.Config{Env: config.AppEnv, Level: config.LogLevel})

			db, err := openDB(config, logger.WithComponent(log, "gorm"))
			if err != nil {
				return err
			}

			movements, err := queries.NewListEntityMovementsQueryHandler(db).Handle(c.Context(), query)
			if err != nil {
				return err
			}

			printHistory(os.Stdout, movements)
			return nil
		},
	}

	command.Flags().StringVar(&tenant, "tenant", "", "company id owning the entity")
	_ = command.MarkFlagRequired("tenant")

	return command
}

func printHistory(w io.Writer, movements []queries.MovementResponse) {
	if len(movements) == 0 {
		fmt.Fprintln(w, "no movements recorded")
		return
	}

	for _, m := range movements {
		fmt.Fprintln(w, formatMovement(m))
	}
}

func formatMovement(m queries.MovementResponse) string {
	author := "system"
	if m.CreatedBy != nil {
		author = m.CreatedBy.String()
	}

	line := fmt.Sprintf("%s  %-18s %s",
		m.CreatedAt.Format("2006-01-02 15:04:05"),
		severityColor(m.Type.Severity()).Sprint(m.Type.String()),
		m.Description)

	if m.PreviousStatus != nil && m.NewStatus != nil {
		line += fmt.Sprintf(" [%s -> %s]", m.PreviousStatus, m.NewStatus)
	}

	return line + "  by " + author
}

func severityColor(s movement.Severity) *color.Color {
	switch s {
	case movement.SeverityWarning:
		return color.New(color.FgRed, color.Bold)
	case movement.SeverityNotice:
		return color.New(color.FgYellow)
	case movement.SeverityInfo:
		return color.New(color.FgGreen)
	default:
		return color.New(color.Reset)
	}
}
