package movement

import (
	"fmt"

	"logistics/internal/pkg/errs"
)

// Type tags the domain event a movement records.
type Type int

const (
	TypeUnknown Type = iota

	// lifecycle
	Creation
	Updated
	Deleted
	CanceledEvent
	CompletedEvent
	StatusChanged
	OperationCreated

	// operational
	Input
	Output
	LoadedEvent
	UnloadedEvent
	InTransitEvent
	ArrivedAtHub
	Activated
	Deactivated
	DelayReported
	IncidentReported

	// account
	Login
	Logout
	PasswordChange
	RoleChange
)

// Category groups movement types for display and metrics.
type Category int

const (
	CategoryUnknown Category = iota
	CategoryLifecycle
	CategoryOperational
	CategoryAccount
)

func (c Category) String() string {
	switch c {
	case CategoryLifecycle:
		return "lifecycle"
	case CategoryOperational:
		return "operational"
	case CategoryAccount:
		return "account"
	case CategoryUnknown:
		return "unknown"
	default:
		return "unknown"
	}
}

// Severity orders categories for highlighting: account events first, then
// lifecycle, then routine operational events.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityNotice
	SeverityWarning
)

func AllTypes() []Type {
	return []Type{
		Creation, Updated, Deleted, CanceledEvent, CompletedEvent, StatusChanged, OperationCreated,
		Input, Output, LoadedEvent, UnloadedEvent, InTransitEvent, ArrivedAtHub,
		Activated, Deactivated, DelayReported, IncidentReported,
		Login, Logout, PasswordChange, RoleChange,
	}
}

func (t Type) String() string {
	switch t {
	case Creation:
		return "CREATION"
	case Updated:
		return "UPDATED"
	case Deleted:
		return "DELETED"
	case CanceledEvent:
		return "CANCELED"
	case CompletedEvent:
		return "COMPLETED"
	case StatusChanged:
		return "STATUS_CHANGED"
	case OperationCreated:
		return "OPERATION_CREATED"
	case Input:
		return "INPUT"
	case Output:
		return "OUTPUT"
	case LoadedEvent:
		return "LOADED"
	case UnloadedEvent:
		return "UNLOADED"
	case InTransitEvent:
		return "IN_TRANSIT"
	case ArrivedAtHub:
		return "ARRIVED_AT_HUB"
	case Activated:
		return "ACTIVATED"
	case Deactivated:
		return "DEACTIVATED"
	case DelayReported:
		return "DELAY_REPORTED"
	case IncidentReported:
		return "INCIDENT_REPORTED"
	case Login:
		return "LOGIN"
	case Logout:
		return "LOGOUT"
	case PasswordChange:
		return "PASSWORD_CHANGE"
	case RoleChange:
		return "ROLE_CHANGE"
	case TypeUnknown:
		return "UNKNOWN"
	default:
		return "UNKNOWN"
	}
}

// Category is an exhaustive switch; a new Type must be placed here or it
// reports CategoryUnknown and fails Validate.
func (t Type) Category() Category {
	switch t {
	case Creation, Updated, Deleted, CanceledEvent, CompletedEvent, StatusChanged, OperationCreated:
		return CategoryLifecycle
	case Input, Output, LoadedEvent, UnloadedEvent, InTransitEvent, ArrivedAtHub,
		Activated, Deactivated, DelayReported, IncidentReported:
		return CategoryOperational
	case Login, Logout, PasswordChange, RoleChange:
		return CategoryAccount
	case TypeUnknown:
		return CategoryUnknown
	default:
		return CategoryUnknown
	}
}

// Severity raises incidents, delays, cancellations and account changes above
// routine events.
func (t Type) Severity() Severity {
	switch t {
	case IncidentReported, DelayReported, CanceledEvent, Deleted, PasswordChange, RoleChange:
		return SeverityWarning
	case StatusChanged, OperationCreated, CompletedEvent, Creation:
		return SeverityNotice
	case Updated, Input, Output, LoadedEvent, UnloadedEvent, InTransitEvent, ArrivedAtHub,
		Activated, Deactivated, Login, Logout, TypeUnknown:
		return SeverityInfo
	default:
		return SeverityInfo
	}
}

// IsSystemOnly reports whether the type may only be written by the operation
// service as a side effect of creation or a status change.
func (t Type) IsSystemOnly() bool {
	return t == StatusChanged || t == OperationCreated
}

func (t Type) Validate() error {
	if t.Category() == CategoryUnknown {
		return errs.NewValueIsInvalidErrorWithCause("movementType", fmt.Errorf("%d is not a valid movement type", t))
	}
	return nil
}

func ParseType(name string) (Type, error) {
	for _, t := range AllTypes() {
		if t.String() == name {
			return t, nil
		}
	}
	return TypeUnknown, errs.NewValueIsInvalidErrorWithCause("movementType", fmt.Errorf("%q is not a valid movement type", name))
}
