package kernel

import (
	"fmt"

	"logistics/internal/pkg/errs"
)

// Role is the caller's authorization role as asserted by the identity provider.
type Role int

const (
	RoleUnknown Role = iota
	RoleAdmin
	RoleManager
	RoleUser
	RoleSystemAdmin
)

func (r Role) String() string {
	switch r {
	case RoleAdmin:
		return "ADMIN"
	case RoleManager:
		return "MANAGER"
	case RoleUser:
		return "USER"
	case RoleSystemAdmin:
		return "SYSTEM_ADMIN"
	case RoleUnknown:
		return "UNKNOWN"
	default:
		return "UNKNOWN"
	}
}

// Validate rejects RoleUnknown and out-of-range values.
func (r Role) Validate() error {
	if r <= RoleUnknown || r > RoleSystemAdmin {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// ParseRole maps the wire name of a role to its value.
func ParseRole(s string) (Role, error) {
	for _, r := range []Role{RoleAdmin, RoleManager, RoleUser, RoleSystemAdmin} {
		if r.String() == s {
			return r, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a valid role", s))
}
