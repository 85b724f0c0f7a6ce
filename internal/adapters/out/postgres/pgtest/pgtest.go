// Package pgtest starts a throwaway PostgreSQL for integration suites and
// seeds tenants into it.
package pgtest

import (
	"context"
	"fmt"
	"time"

	postgres_adapter "logistics/internal/adapters/out/postgres"
	"logistics/internal/adapters/out/postgres/directoryrepo"
	"logistics/internal/core/domain/model/kernel"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Tenant is a seeded company with one user and one product.
type Tenant struct {
	CompanyID kernel.UUID
	UserID    kernel.UUID
	ProductID kernel.UUID
}

// Actor returns a RoleUser actor for the seeded user.
func (t Tenant) Actor() (kernel.Actor, error) {
	return kernel.NewActor(t.UserID, kernel.RoleUser, t.CompanyID)
}

// Start runs postgres:15-alpine, connects GORM to it and migrates the schema.
// The caller terminates the container.
func Start(ctx context.Context) (*postgres.PostgresContainer, *gorm.DB, error) {
	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		return nil, nil, err
	}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, nil, err
	}

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, nil, err
	}

	if err = postgres_adapter.Migrate(ctx, db); err != nil {
		_ = container.Terminate(ctx)
		return nil, nil, err
	}

	return container, db, nil
}

// Truncate empties every table.
func Truncate(db *gorm.DB) error {
	return db.Exec("TRUNCATE TABLE movements, operations, products, users, companies CASCADE").Error
}

// SeedTenant inserts a company named name with one user and one product.
func SeedTenant(ctx context.Context, db *gorm.DB, name string) (Tenant, error) {
	tenant := Tenant{
		CompanyID: kernel.NewUUID(),
		UserID:    kernel.NewUUID(),
		ProductID: kernel.NewUUID(),
	}
	now := time.Now().UTC()
	directory := directoryrepo.NewGormEntityDirectory(db)

	if err := directory.AddCompany(ctx, directoryrepo.CompanyDTO{
		ID:        tenant.CompanyID.Bytes(),
		Name:      name,
		CreatedAt: now,
	}); err != nil {
		return Tenant{}, err
	}

	if err := directory.AddUser(ctx, directoryrepo.UserDTO{
		ID:        tenant.UserID.Bytes(),
		CompanyID: tenant.CompanyID.Bytes(),
		Email:     fmt.Sprintf("operator-%s@example.com", tenant.UserID),
		Role:      kernel.RoleUser.String(),
		CreatedAt: now,
	}); err != nil {
		return Tenant{}, err
	}

	if err := directory.AddProduct(ctx, directoryrepo.ProductDTO{
		ID:        tenant.ProductID.Bytes(),
		CompanyID: tenant.CompanyID.Bytes(),
		Name:      name + " pallet",
		SKU:       "PAL-001",
		CreatedAt: now,
	}); err != nil {
		return Tenant{}, err
	}

	return tenant, nil
}
