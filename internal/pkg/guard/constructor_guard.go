// Package guard detects value objects and commands that were created as zero
// values instead of through their constructor.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is given.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded into types that must only be built by their
// constructor. Its zero value fails validation.
//
// Example:
//
//	type UpdateOperationStatusCommand struct {
//	    operationID kernel.UUID
//	    guard       guard.ConstructorGuard
//	}
//
//	func (c UpdateOperationStatusCommand) Validate() error {
//	    return c.guard.Validate(ErrUpdateOperationStatusCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard marks the enclosing object as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the guard is a zero value.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
