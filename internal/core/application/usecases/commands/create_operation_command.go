package commands

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrCreateOperationCommandIsNotConstructed = errors.New(
	"CreateOperationCommand must be created via NewCreateOperationCommand constructor",
)

// CreateOperationCommand requests a new operation for the actor's tenant.
// Place and deadline validation belongs to the aggregate.
type CreateOperationCommand struct { //nolint:recvcheck //using for validation
	actor              kernel.Actor
	operationID        kernel.UUID
	productID          kernel.UUID
	origin             string
	destination        string
	expectedDeliveryAt *time.Time

	guard guard.ConstructorGuard
}

func NewCreateOperationCommand(
	actor kernel.Actor,
	operationID, productID kernel.UUID,
	origin, destination string,
	expectedDeliveryAt *time.Time,
) (CreateOperationCommand, error) {
	cmd := CreateOperationCommand{
		origin:             origin,
		destination:        destination,
		expectedDeliveryAt: expectedDeliveryAt,
		guard:              guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setOperationID(operationID),
		cmd.setProductID(productID),
	); err != nil {
		return CreateOperationCommand{}, err
	}

	return cmd, nil
}

func (c CreateOperationCommand) Validate() error {
	return c.guard.Validate(ErrCreateOperationCommandIsNotConstructed)
}

func (c CreateOperationCommand) Actor() kernel.Actor {
	return c.actor
}

func (c CreateOperationCommand) OperationID() kernel.UUID {
	return c.operationID
}

func (c CreateOperationCommand) ProductID() kernel.UUID {
	return c.productID
}

func (c CreateOperationCommand) Origin() string {
	return c.origin
}

func (c CreateOperationCommand) Destination() string {
	return c.destination
}

func (c CreateOperationCommand) ExpectedDeliveryAt() *time.Time {
	return c.expectedDeliveryAt
}

func (c *CreateOperationCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}

func (c *CreateOperationCommand) setOperationID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.operationID = id
	return nil
}

func (c *CreateOperationCommand) setProductID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.productID = id
	return nil
}
