package ports

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
)

// EntityDirectory answers tenant-scoped existence checks for entities the
// core references but does not own.
type EntityDirectory interface {
	ProductExists(ctx context.Context, tenantID, productID kernel.UUID) (bool, error)
	UserExists(ctx context.Context, tenantID, userID kernel.UUID) (bool, error)
	// CompanyExists is true only for the tenant itself.
	CompanyExists(ctx context.Context, tenantID, companyID kernel.UUID) (bool, error)
}
