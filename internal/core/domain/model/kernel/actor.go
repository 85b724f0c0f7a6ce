package kernel

import (
	"errors"

	"logistics/internal/pkg/guard"
)

var ErrActorIsNotConstructed = errors.New("Actor must be created via NewActor or SystemActor")

// Actor is the already-authenticated caller on whose behalf the core acts.
// Every read and write is scoped by TenantID. A system actor has no user id;
// records it produces carry no author.
type Actor struct {
	userID   *UUID
	role     Role
	tenantID UUID

	guard guard.ConstructorGuard
}

// NewActor builds the actor for an authenticated user.
func NewActor(userID UUID, role Role, tenantID UUID) (Actor, error) {
	if err := errors.Join(
		userID.Validate(),
		role.Validate(),
		tenantID.Validate(),
	); err != nil {
		return Actor{}, err
	}

	return Actor{
		userID:   &userID,
		role:     role,
		tenantID: tenantID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// SystemActor builds the actor used by background jobs acting inside one tenant.
func SystemActor(tenantID UUID) (Actor, error) {
	if err := tenantID.Validate(); err != nil {
		return Actor{}, err
	}

	return Actor{
		role:     RoleSystemAdmin,
		tenantID: tenantID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (a Actor) Validate() error {
	return a.guard.Validate(ErrActorIsNotConstructed)
}

// UserID returns nil for system actors.
func (a Actor) UserID() *UUID {
	if a.userID == nil {
		return nil
	}
	id := *a.userID
	return &id
}

func (a Actor) Role() Role {
	return a.role
}

func (a Actor) TenantID() UUID {
	return a.tenantID
}

func (a Actor) IsSystem() bool {
	return a.userID == nil
}
