package services

import (
	"errors"

	"logistics/internal/core/domain/model/operation"
)

// TransitionValidator is the lifecycle state machine. It answers whether an
// operation may move from one status to another according to the table it
// was built with.
//
// It is a pure function over the table and keeps no other state, so a single
// instance is shared by every request.
//
// Requests where current equals requested are not special-cased here; the
// operation treats them as no-ops before consulting the validator.
//
// Example usage:
//
//	validator := services.NewTransitionValidator(operation.DefaultTransitionTable())
//	err := validator.Validate(operation.AtOrigin, operation.Completed)
//	var invalid *operation.InvalidTransitionError
//	if errors.As(err, &invalid) {
//	    // invalid.From == AtOrigin, invalid.To == Completed
//	}
type TransitionValidator struct {
	table operation.TransitionTable
}

// NewTransitionValidator creates a validator over table.
func NewTransitionValidator(table operation.TransitionTable) TransitionValidator {
	return TransitionValidator{table: table}
}

// Validate returns nil when requested is an allowed target of current and an
// *operation.InvalidTransitionError otherwise. Both arguments must be valid
// statuses.
func (v TransitionValidator) Validate(current, requested operation.Status) error {
	if err := errors.Join(current.Validate(), requested.Validate()); err != nil {
		return err
	}

	if !v.table.Allows(current, requested) {
		return operation.NewInvalidTransitionError(current, requested)
	}

	return nil
}

// AllowedTargets lists the statuses reachable from current in one step.
func (v TransitionValidator) AllowedTargets(current operation.Status) []operation.Status {
	return v.table.Allowed(current)
}
