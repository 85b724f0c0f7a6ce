package commands

import (
	"context"
	"fmt"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/movement"
	"logistics/internal/pkg/errs"
)

// AppendMovementCommandHandler appends a manual movement after checking that
// the target entity exists within the actor's tenant.
type AppendMovementCommandHandler struct {
	uowFactory UoWFactory
}

func NewAppendMovementCommandHandler(uowFactory UoWFactory) AppendMovementCommandHandler {
	return AppendMovementCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns the stored movement with its database timestamp. A target
// that is missing or owned by another tenant yields errs.ObjectNotFoundError.
func (h AppendMovementCommandHandler) Handle(ctx context.Context, cmd AppendMovementCommand) (*movement.Movement, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	actor := cmd.Actor()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := h.ensureTargetExists(ctx, uow, actor.TenantID(), cmd.EntityType(), cmd.EntityID()); err != nil {
		return nil, err
	}

	m, err := movement.NewMovement(
		actor.TenantID(),
		cmd.EntityType(),
		cmd.EntityID(),
		cmd.MovementType(),
		cmd.Description(),
		actor.UserID(),
	)
	if err != nil {
		return nil, err
	}

	stored, err := uow.MovementRepository().Add(ctx, m)
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return stored, nil
}

func (h AppendMovementCommandHandler) ensureTargetExists(
	ctx context.Context,
	uow UoW,
	tenantID kernel.UUID,
	entityType movement.EntityType,
	entityID kernel.UUID,
) error {
	var (
		exists bool
		err    error
	)

	switch entityType {
	case movement.EntityOperation:
		// row lock orders the append after any in-flight transition
		_, err = uow.OperationRepository().GetForUpdate(ctx, tenantID, entityID)
		return err
	case movement.EntityProduct:
		exists, err = uow.EntityDirectory().ProductExists(ctx, tenantID, entityID)
	case movement.EntityUser:
		exists, err = uow.EntityDirectory().UserExists(ctx, tenantID, entityID)
	case movement.EntityCompany:
		exists, err = uow.EntityDirectory().CompanyExists(ctx, tenantID, entityID)
	case movement.EntityUnknown:
		return entityType.Validate()
	default:
		return entityType.Validate()
	}

	if err != nil {
		return err
	}
	if !exists {
		return errs.NewObjectNotFoundError(fmt.Sprintf("%s entityId", entityType), entityID.String())
	}

	return nil
}
