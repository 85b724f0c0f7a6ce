package commands

import (
	"context"
	"time"

	"logistics/internal/core/domain/model/movement"
	"logistics/internal/core/domain/model/operation"
	"logistics/internal/pkg/errs"
)

// CreateOperationCommandHandler stores a new operation in CREATED together
// with its OPERATION_CREATED movement.
//
// Example:
//
//	handler := NewCreateOperationCommandHandler(uowFactory)
//	cmd, _ := NewCreateOperationCommand(actor, kernel.NewUUID(), productID, "Warehouse A", "Store 12", nil)
//	op, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // product is unknown to the tenant
//	}
type CreateOperationCommandHandler struct {
	uowFactory UoWFactory
	now        func() time.Time
}

func NewCreateOperationCommandHandler(uowFactory UoWFactory) CreateOperationCommandHandler {
	return CreateOperationCommandHandler{
		uowFactory: uowFactory,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// Handle fails with errs.ObjectNotFoundError when the product does not belong
// to the actor's tenant. Nothing is written in that case.
func (h CreateOperationCommandHandler) Handle(ctx context.Context, cmd CreateOperationCommand) (*operation.Operation, error) {
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

	exists, err := uow.EntityDirectory().ProductExists(ctx, actor.TenantID(), cmd.ProductID())
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, errs.NewObjectNotFoundError("productId", cmd.ProductID().String())
	}

	op, err := operation.NewOperation(
		cmd.OperationID(),
		actor,
		cmd.ProductID(),
		cmd.Origin(),
		cmd.Destination(),
		cmd.ExpectedDeliveryAt(),
		h.now(),
	)
	if err != nil {
		return nil, err
	}

	if err = uow.OperationRepository().Add(ctx, op); err != nil {
		return nil, err
	}

	created, err := movement.NewOperationCreated(op, actor.UserID())
	if err != nil {
		return nil, err
	}

	if _, err = uow.MovementRepository().Add(ctx, created); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return op, nil
}
