package main

import (
	"fmt"
	"time"

	httpin "logistics/internal/adapters/in/http"
	"logistics/internal/adapters/out/postgres/directoryrepo"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/logger"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

func seedCmd() *cobra.Command {
	var (
		company string
		email   string
		role    string
		ttl     time.Duration
	)

	command := &cobra.Command{
		Use:   "seed",
		Short: "Create a demo company, user and product and print a bearer token",
		RunE: func(c *cobra.Command, _ []string) error {
			parsedRole, err := kernel.ParseRole(role)
			if err != nil {
				return err
			}

			config, err := loadConfig()
			if err != nil {
				return err
			}
			if config.JWTSecret == "" {
				return fmt.Errorf("JWT_SECRET is required to sign the token")
			}

			log := logger.New(logger.Config{Env: config.AppEnv, Level: config.LogLevel})

			db, err := openDB(config, logger.WithComponent(log, "gorm"))
			if err != nil {
				return err
			}

			actor, err := kernel.NewActor(kernel.NewUUID(), parsedRole, kernel.NewUUID())
			if err != nil {
				return err
			}
			productID := kernel.NewUUID()
			now := time.Now().UTC()

			err = db.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
				directory := directoryrepo.NewGormEntityDirectory(tx)
				if txErr := directory.AddCompany(c.Context(), directoryrepo.CompanyDTO{
					ID: actor.TenantID().Bytes(), Name: company, CreatedAt: now,
				}); txErr != nil {
					return txErr
				}
				if txErr := directory.AddUser(c.Context(), directoryrepo.UserDTO{
					ID: actor.UserID().Bytes(), CompanyID: actor.TenantID().Bytes(),
					Email: email, Role: parsedRole.String(), CreatedAt: now,
				}); txErr != nil {
					return txErr
				}
				return directory.AddProduct(c.Context(), directoryrepo.ProductDTO{
					ID: productID.Bytes(), CompanyID: actor.TenantID().Bytes(),
					Name: company + " pallet", SKU: "DEMO-001", CreatedAt: now,
				})
			})
			if err != nil {
				return fmt.Errorf("seed directory: %w", err)
			}

			token, err := httpin.IssueToken([]byte(config.JWTSecret), actor, ttl)
			if err != nil {
				return err
			}

			out := c.OutOrStdout()
			fmt.Fprintf(out, "company: %s\n", actor.TenantID())
			fmt.Fprintf(out, "user:    %s (%s)\n", actor.UserID(), parsedRole)
			fmt.Fprintf(out, "product: %s\n", productID)
			fmt.Fprintf(out, "token:   %s\n", token)
			return nil
		},
	}

	command.Flags().StringVar(&company, "company", "Demo Logistics", "company name")
	command.Flags().StringVar(&email, "email", "operator@demo.local", "user email, unique across companies")
	command.Flags().StringVar(&role, "role", "MANAGER", "user role: ADMIN, MANAGER, USER or SYSTEM_ADMIN")
	command.Flags().DurationVar(&ttl, "ttl", 24*time.Hour, "token lifetime")

	return command
}
