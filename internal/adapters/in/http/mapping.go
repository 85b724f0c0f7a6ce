package http

import (
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/movement"
	"logistics/internal/core/domain/model/operation"
	"logistics/internal/generated/servers"
)

func operationFromDomain(op *operation.Operation) servers.Operation {
	return servers.Operation{
		Id:                 op.ID().Bytes(),
		ProductId:          op.ProductID().Bytes(),
		Status:             servers.OperationStatus(op.Status().String()),
		Origin:             op.Origin(),
		Destination:        op.Destination(),
		ExpectedDeliveryAt: op.ExpectedDeliveryAt(),
		CreatedAt:          op.CreatedAt(),
		UpdatedAt:          op.UpdatedAt(),
		UpdatedBy:          kernel.OptionalBytes(op.UpdatedBy()),
		Version:            op.Version(),
	}
}

func operationFromResponse(op queries.OperationResponse) servers.Operation {
	return servers.Operation{
		Id:                 op.ID.Bytes(),
		ProductId:          op.ProductID.Bytes(),
		Status:             servers.OperationStatus(op.Status.String()),
		Origin:             op.Origin,
		Destination:        op.Destination,
		ExpectedDeliveryAt: op.ExpectedDeliveryAt,
		CreatedAt:          op.CreatedAt,
		UpdatedAt:          op.UpdatedAt,
		UpdatedBy:          kernel.OptionalBytes(op.UpdatedBy),
		Version:            op.Version,
	}
}

func movementFromDomain(m *movement.Movement) servers.Movement {
	return servers.Movement{
		Id:             m.ID().Bytes(),
		EntityType:     servers.EntityType(m.EntityType().String()),
		EntityId:       m.EntityID().Bytes(),
		Type:           servers.MovementType(m.Type().String()),
		Category:       m.Type().Category().String(),
		PreviousStatus: wireStatus(m.PreviousStatus()),
		NewStatus:      wireStatus(m.NewStatus()),
		Description:    m.Description(),
		CreatedBy:      kernel.OptionalBytes(m.CreatedBy()),
		CreatedAt:      m.CreatedAt(),
	}
}

func movementFromResponse(m queries.MovementResponse) servers.Movement {
	return servers.Movement{
		Id:             m.ID.Bytes(),
		EntityType:     servers.EntityType(m.EntityType.String()),
		EntityId:       m.EntityID.Bytes(),
		Type:           servers.MovementType(m.Type.String()),
		Category:       m.Type.Category().String(),
		PreviousStatus: wireStatus(m.PreviousStatus),
		NewStatus:      wireStatus(m.NewStatus),
		Description:    m.Description,
		CreatedBy:      kernel.OptionalBytes(m.CreatedBy),
		CreatedAt:      m.CreatedAt,
	}
}

func wireStatus(s *operation.Status) *servers.OperationStatus {
	if s == nil {
		return nil
	}
	status := servers.OperationStatus(s.String())
	return &status
}
