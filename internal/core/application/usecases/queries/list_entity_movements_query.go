package queries

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/movement"
	"logistics/internal/core/domain/model/operation"
	"logistics/internal/pkg/guard"
)

var ErrListEntityMovementsQueryIsNotConstructed = errors.New(
	"ListEntityMovementsQuery must be created via NewListEntityMovementsQuery constructor",
)

// ListEntityMovementsQuery reads the ledger of one entity in chronological
// order.
//
// Example:
//
//	query, err := NewListEntityMovementsQuery(actor.TenantID(), movement.EntityOperation, opID)
//	history, err := handler.Handle(ctx, query)
//	for _, m := range history {
//	    fmt.Printf("%s %s %s\n", m.CreatedAt.Format(time.RFC3339), m.Type, m.Description)
//	}
type ListEntityMovementsQuery struct {
	tenantID   kernel.UUID
	entityType movement.EntityType
	entityID   kernel.UUID

	guard guard.ConstructorGuard
}

func NewListEntityMovementsQuery(
	tenantID kernel.UUID,
	entityType movement.EntityType,
	entityID kernel.UUID,
) (ListEntityMovementsQuery, error) {
	if err := errors.Join(tenantID.Validate(), entityType.Validate(), entityID.Validate()); err != nil {
		return ListEntityMovementsQuery{}, err
	}

	return ListEntityMovementsQuery{
		tenantID:   tenantID,
		entityType: entityType,
		entityID:   entityID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (q ListEntityMovementsQuery) Validate() error {
	return q.guard.Validate(ErrListEntityMovementsQueryIsNotConstructed)
}

func (q ListEntityMovementsQuery) TenantID() kernel.UUID {
	return q.tenantID
}

func (q ListEntityMovementsQuery) EntityType() movement.EntityType {
	return q.entityType
}

func (q ListEntityMovementsQuery) EntityID() kernel.UUID {
	return q.entityID
}

// MovementResponse is the read model of one ledger entry. PreviousStatus and
// NewStatus are only set for operation lifecycle entries; CreatedBy is nil for
// system entries.
type MovementResponse struct {
	ID             kernel.UUID
	EntityType     movement.EntityType
	EntityID       kernel.UUID
	Type           movement.Type
	PreviousStatus *operation.Status
	NewStatus      *operation.Status
	Description    string
	CreatedBy      *kernel.UUID
	CreatedAt      time.Time
}
