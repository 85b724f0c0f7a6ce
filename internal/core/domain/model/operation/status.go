package operation

import (
	"fmt"

	"logistics/internal/pkg/errs"
)

// Status is the physical lifecycle state of an operation.
//
//	Created -> AtOrigin -> Loaded -> InTransit <-> AtHub
//	                                   |           |
//	                                   +-> Unloaded <+
//	                                         |
//	                                         +-> Completed
//
// Every non-terminal state may also move to Canceled. Completed and Canceled
// are terminal. The authoritative edge set is DefaultTransitionTable.
type Status int

const (
	// Unknown catches uninitialized Status values.
	Unknown Status = iota
	Created
	AtOrigin
	Loaded
	InTransit
	AtHub
	Unloaded
	Completed
	Canceled
)

// AllStatuses lists every valid status in lifecycle order.
func AllStatuses() []Status {
	return []Status{Created, AtOrigin, Loaded, InTransit, AtHub, Unloaded, Completed, Canceled}
}

// String returns the persisted and wire name of the status.
func (s Status) String() string {
	switch s {
	case Created:
		return "CREATED"
	case AtOrigin:
		return "AT_ORIGIN"
	case Loaded:
		return "LOADED"
	case InTransit:
		return "IN_TRANSIT"
	case AtHub:
		return "AT_HUB"
	case Unloaded:
		return "UNLOADED"
	case Completed:
		return "COMPLETED"
	case Canceled:
		return "CANCELED"
	case Unknown:
		return "UNKNOWN"
	default:
		return "UNKNOWN"
	}
}

// Validate rejects Unknown and out-of-range values.
func (s Status) Validate() error {
	if s < Created || s > Canceled {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// IsTerminal reports whether no transition leaves s.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Canceled
}

// ParseStatus maps a persisted or wire name to its Status.
func ParseStatus(name string) (Status, error) {
	for _, s := range AllStatuses() {
		if s.String() == name {
			return s, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid status", name))
}
