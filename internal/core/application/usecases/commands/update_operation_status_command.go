package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/operation"
	"logistics/internal/pkg/guard"
)

var ErrUpdateOperationStatusCommandIsNotConstructed = errors.New(
	"UpdateOperationStatusCommand must be created via NewUpdateOperationStatusCommand constructor",
)

// UpdateOperationStatusCommand requests moving an operation to status.
type UpdateOperationStatusCommand struct { //nolint:recvcheck //using for validation
	actor       kernel.Actor
	operationID kernel.UUID
	status      operation.Status

	guard guard.ConstructorGuard
}

func NewUpdateOperationStatusCommand(
	actor kernel.Actor,
	operationID kernel.UUID,
	status operation.Status,
) (UpdateOperationStatusCommand, error) {
	cmd := UpdateOperationStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setOperationID(operationID),
		cmd.setStatus(status),
	); err != nil {
		return UpdateOperationStatusCommand{}, err
	}

	return cmd, nil
}

func (c UpdateOperationStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOperationStatusCommandIsNotConstructed)
}

func (c UpdateOperationStatusCommand) Actor() kernel.Actor {
	return c.actor
}

func (c UpdateOperationStatusCommand) OperationID() kernel.UUID {
	return c.operationID
}

func (c UpdateOperationStatusCommand) Status() operation.Status {
	return c.status
}

func (c *UpdateOperationStatusCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}

func (c *UpdateOperationStatusCommand) setOperationID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.operationID = id
	return nil
}

func (c *UpdateOperationStatusCommand) setStatus(status operation.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	c.status = status
	return nil
}
