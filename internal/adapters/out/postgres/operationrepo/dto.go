// Package operationrepo maps the operation aggregate to the operations table.
package operationrepo

import (
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/operation"

	"github.com/google/uuid"
)

// OperationDTO is the operations row. Version is the optimistic concurrency
// token checked by Update.
type OperationDTO struct {
	ID                   uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CompanyID            uuid.UUID  `gorm:"type:uuid;not null;index:idx_operations_company_created,priority:1"`
	ProductID            uuid.UUID  `gorm:"type:uuid;not null;index"`
	Status               string     `gorm:"type:varchar(32);not null;index"`
	Origin               string     `gorm:"type:varchar(255);not null;default:''"`
	Destination          string     `gorm:"type:varchar(255);not null;default:''"`
	ExpectedDeliveryDate *time.Time `gorm:"type:timestamptz;index"`
	CreatedAt            time.Time  `gorm:"type:timestamptz;not null;autoCreateTime:false;index:idx_operations_company_created,priority:2,sort:desc"`
	UpdatedAt            time.Time  `gorm:"type:timestamptz;not null;autoUpdateTime:false"`
	UpdatedBy            *uuid.UUID `gorm:"type:uuid"`
	Version              int64      `gorm:"not null;default:1"`
}

func (OperationDTO) TableName() string {
	return "operations"
}

func fromDomain(op *operation.Operation) OperationDTO {
	return OperationDTO{
		ID:                   op.ID().Bytes(),
		CompanyID:            op.CompanyID().Bytes(),
		ProductID:            op.ProductID().Bytes(),
		Status:               op.Status().String(),
		Origin:               op.Origin(),
		Destination:          op.Destination(),
		ExpectedDeliveryDate: op.ExpectedDeliveryAt(),
		CreatedAt:            op.CreatedAt(),
		UpdatedAt:            op.UpdatedAt(),
		UpdatedBy:            kernel.OptionalBytes(op.UpdatedBy()),
		Version:              op.Version(),
	}
}

func toDomain(dto OperationDTO) (*operation.Operation, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	companyID, err := kernel.UUIDFromBytes(dto.CompanyID[:])
	if err != nil {
		return nil, err
	}

	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return nil, err
	}

	updatedBy, err := kernel.OptionalUUIDFromBytes(dto.UpdatedBy)
	if err != nil {
		return nil, err
	}

	status, err := operation.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	return operation.RestoreOperation(
		id,
		companyID,
		productID,
		status,
		dto.Origin,
		dto.Destination,
		dto.ExpectedDeliveryDate,
		dto.CreatedAt,
		dto.UpdatedAt,
		updatedBy,
		dto.Version,
	)
}
