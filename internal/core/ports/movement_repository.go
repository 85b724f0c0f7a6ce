package ports

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/movement"
)

// MovementRepository is the append-only ledger store. It has no update or
// delete methods.
type MovementRepository interface {
	// Add appends m and returns the stored record, carrying the creation
	// timestamp and sequence number assigned by the database.
	Add(ctx context.Context, m *movement.Movement) (*movement.Movement, error)

	// ListForEntity returns the tenant's movements for one entity ordered by
	// creation time, oldest first.
	ListForEntity(ctx context.Context, tenantID kernel.UUID, entityType movement.EntityType, entityID kernel.UUID) ([]*movement.Movement, error)

	// ExistsForEntity reports whether the entity already has a movement of movementType.
	ExistsForEntity(ctx context.Context, tenantID kernel.UUID, entityType movement.EntityType, entityID kernel.UUID, movementType movement.Type) (bool, error)
}
