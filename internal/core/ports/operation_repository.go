// Package ports defines the persistence contracts of the logistics core.
// Every method that reads tenant data takes the tenant id explicitly; a row
// owned by another tenant is reported exactly like a missing row.
package ports

import (
	"context"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/operation"
)

// OperationRepository defines the persistence contract for operation aggregates.
type OperationRepository interface {
	// Add persists a new operation.
	Add(ctx context.Context, aggregate *operation.Operation) error

	// Get loads an operation without locking it. Returns errs.ObjectNotFoundError
	// when the operation is absent or owned by another tenant.
	Get(ctx context.Context, tenantID, id kernel.UUID) (*operation.Operation, error)

	// GetForUpdate loads an operation and locks its row until the surrounding
	// transaction ends. Concurrent status changes on the same operation are
	// serialized by this lock.
	GetForUpdate(ctx context.Context, tenantID, id kernel.UUID) (*operation.Operation, error)

	// Update writes the aggregate back, conditioned on the row still holding
	// aggregate.LoadedVersion(). A lost race returns errs.PersistenceConflictError.
	Update(ctx context.Context, aggregate *operation.Operation) error

	// ListOverdue returns up to limit non-terminal operations, across tenants,
	// whose expected delivery time is before now and that have no
	// DELAY_REPORTED movement yet.
	ListOverdue(ctx context.Context, now time.Time, limit int) ([]*operation.Operation, error)
}
