package commands

import (
	"errors"
	"fmt"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/movement"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var (
	ErrAppendMovementCommandIsNotConstructed = errors.New(
		"AppendMovementCommand must be created via NewAppendMovementCommand constructor",
	)
	// ErrMovementTypeIsSystemOnly rejects manual attempts to forge lifecycle history.
	ErrMovementTypeIsSystemOnly = errors.New("movement type is written by the system only")
)

// AppendMovementCommand records a manual annotation on any tenant entity.
type AppendMovementCommand struct { //nolint:recvcheck //using for validation
	actor        kernel.Actor
	entityType   movement.EntityType
	entityID     kernel.UUID
	movementType movement.Type
	description  string

	guard guard.ConstructorGuard
}

func NewAppendMovementCommand(
	actor kernel.Actor,
	entityType movement.EntityType,
	entityID kernel.UUID,
	movementType movement.Type,
	description string,
) (AppendMovementCommand, error) {
	cmd := AppendMovementCommand{
		description: description,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setTarget(entityType, entityID),
		cmd.setMovementType(movementType),
	); err != nil {
		return AppendMovementCommand{}, err
	}

	return cmd, nil
}

func (c AppendMovementCommand) Validate() error {
	return c.guard.Validate(ErrAppendMovementCommandIsNotConstructed)
}

func (c AppendMovementCommand) Actor() kernel.Actor {
	return c.actor
}

func (c AppendMovementCommand) EntityType() movement.EntityType {
	return c.entityType
}

func (c AppendMovementCommand) EntityID() kernel.UUID {
	return c.entityID
}

func (c AppendMovementCommand) MovementType() movement.Type {
	return c.movementType
}

func (c AppendMovementCommand) Description() string {
	return c.description
}

func (c *AppendMovementCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}

func (c *AppendMovementCommand) setTarget(entityType movement.EntityType, entityID kernel.UUID) error {
	if err := errors.Join(entityType.Validate(), entityID.Validate()); err != nil {
		return err
	}
	c.entityType = entityType
	c.entityID = entityID
	return nil
}

func (c *AppendMovementCommand) setMovementType(t movement.Type) error {
	if err := t.Validate(); err != nil {
		return err
	}
	if t.IsSystemOnly() {
		return errors.Join(
			errs.NewValueIsInvalidErrorWithCause("movementType", fmt.Errorf("%s is system only", t)),
			ErrMovementTypeIsSystemOnly,
		)
	}
	c.movementType = t
	return nil
}
