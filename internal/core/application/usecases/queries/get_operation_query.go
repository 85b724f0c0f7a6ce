// Package queries contains read operations. Handlers read straight from the
// database into response structs; they never load aggregates or take locks.
package queries

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/operation"
	"logistics/internal/pkg/guard"
)

var ErrGetOperationQueryIsNotConstructed = errors.New(
	"GetOperationQuery must be created via NewGetOperationQuery constructor",
)

// GetOperationQuery reads one operation of the caller's tenant.
type GetOperationQuery struct {
	tenantID    kernel.UUID
	operationID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetOperationQuery(tenantID, operationID kernel.UUID) (GetOperationQuery, error) {
	if err := errors.Join(tenantID.Validate(), operationID.Validate()); err != nil {
		return GetOperationQuery{}, err
	}

	return GetOperationQuery{
		tenantID:    tenantID,
		operationID: operationID,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (q GetOperationQuery) Validate() error {
	return q.guard.Validate(ErrGetOperationQueryIsNotConstructed)
}

func (q GetOperationQuery) TenantID() kernel.UUID {
	return q.tenantID
}

func (q GetOperationQuery) OperationID() kernel.UUID {
	return q.operationID
}

// OperationResponse is the read model of an operation.
type OperationResponse struct {
	ID                 kernel.UUID
	CompanyID          kernel.UUID
	ProductID          kernel.UUID
	Status             operation.Status
	Origin             string
	Destination        string
	ExpectedDeliveryAt *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
	UpdatedBy          *kernel.UUID
	Version            int64
}
