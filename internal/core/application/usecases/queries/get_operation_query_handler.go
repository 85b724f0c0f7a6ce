package queries

import (
	"context"
	"database/sql"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/operation"
	"logistics/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const operationColumns = `
	id,
	company_id,
	product_id,
	status,
	origin,
	destination,
	expected_delivery_date,
	created_at,
	updated_at,
	updated_by,
	version`

type GetOperationQueryHandler struct {
	db *gorm.DB
}

func NewGetOperationQueryHandler(db *gorm.DB) GetOperationQueryHandler {
	return GetOperationQueryHandler{db: db}
}

// Handle returns errs.ObjectNotFoundError when the operation does not exist
// or belongs to another tenant.
func (h GetOperationQueryHandler) Handle(ctx context.Context, query GetOperationQuery) (OperationResponse, error) {
	if err := query.Validate(); err != nil {
		return OperationResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT`+operationColumns+`
		FROM operations
		WHERE id = ? AND company_id = ?
	`, query.OperationID().Bytes(), query.TenantID().Bytes()).Rows()
	if err != nil {
		return OperationResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return OperationResponse{}, err
		}
		return OperationResponse{}, errs.NewObjectNotFoundError("operationId", query.OperationID().String())
	}

	return scanOperation(rows)
}

func scanOperation(rows *sql.Rows) (OperationResponse, error) {
	var (
		response                 OperationResponse
		id, companyID, productID uuid.UUID
		status                   string
		origin, destination      sql.NullString
		expected                 sql.NullTime
		updatedBy                *uuid.UUID
	)

	err := rows.Scan(
		&id,
		&companyID,
		&productID,
		&status,
		&origin,
		&destination,
		&expected,
		&response.CreatedAt,
		&response.UpdatedAt,
		&updatedBy,
		&response.Version,
	)
	if err != nil {
		return OperationResponse{}, err
	}

	if response.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return OperationResponse{}, err
	}
	if response.CompanyID, err = kernel.UUIDFromBytes(companyID[:]); err != nil {
		return OperationResponse{}, err
	}
	if response.ProductID, err = kernel.UUIDFromBytes(productID[:]); err != nil {
		return OperationResponse{}, err
	}
	if response.Status, err = operation.ParseStatus(status); err != nil {
		return OperationResponse{}, err
	}
	if response.UpdatedBy, err = kernel.OptionalUUIDFromBytes(updatedBy); err != nil {
		return OperationResponse{}, err
	}

	response.Origin = origin.String
	response.Destination = destination.String
	if expected.Valid {
		at := expected.Time.UTC()
		response.ExpectedDeliveryAt = &at
	}
	response.CreatedAt = response.CreatedAt.UTC()
	response.UpdatedAt = response.UpdatedAt.UTC()

	return response, nil
}

