// Package services provides domain services that do not belong to a single
// aggregate.
//
// The package includes:
//   - TransitionValidator: the operation lifecycle state machine over an injected TransitionTable
package services
