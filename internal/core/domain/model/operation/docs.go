// Package operation provides the Operation aggregate and its lifecycle state
// machine.
//
// The package includes:
//   - Operation: a tenant-owned shipment whose status only changes through ChangeStatus
//   - Status: the eight lifecycle states, two of them terminal
//   - TransitionTable: the immutable edge set consulted by the transition validator
//   - InvalidTransitionError: the rejected (from, to) pair
//
// Key business rules:
//   - Operations start in CREATED and end in COMPLETED or CANCELED
//   - CANCELED is reachable from every non-terminal state
//   - IN_TRANSIT and AT_HUB may alternate any number of times
//   - Requesting the current status is a no-op, not an error
package operation
