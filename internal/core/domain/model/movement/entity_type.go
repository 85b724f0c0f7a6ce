package movement

import (
	"fmt"

	"logistics/internal/pkg/errs"
)

// EntityType tags the kind of entity a movement points at. The target id is
// polymorphic, so no foreign key exists for it.
type EntityType int

const (
	EntityUnknown EntityType = iota
	EntityOperation
	EntityProduct
	EntityUser
	EntityCompany
)

func AllEntityTypes() []EntityType {
	return []EntityType{EntityOperation, EntityProduct, EntityUser, EntityCompany}
}

func (e EntityType) String() string {
	switch e {
	case EntityOperation:
		return "OPERATION"
	case EntityProduct:
		return "PRODUCT"
	case EntityUser:
		return "USER"
	case EntityCompany:
		return "COMPANY"
	case EntityUnknown:
		return "UNKNOWN"
	default:
		return "UNKNOWN"
	}
}

func (e EntityType) Validate() error {
	if e < EntityOperation || e > EntityCompany {
		return errs.NewValueIsInvalidErrorWithCause("entityType", fmt.Errorf("%d is not a valid entity type", e))
	}
	return nil
}

func ParseEntityType(name string) (EntityType, error) {
	for _, e := range AllEntityTypes() {
		if e.String() == name {
			return e, nil
		}
	}
	return EntityUnknown, errs.NewValueIsInvalidErrorWithCause("entityType", fmt.Errorf("%q is not a valid entity type", name))
}
