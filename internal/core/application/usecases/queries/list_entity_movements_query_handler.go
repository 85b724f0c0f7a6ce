package queries

import (
	"context"
	"database/sql"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/movement"
	"logistics/internal/core/domain/model/operation"
	"logistics/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ListEntityMovementsQueryHandler struct {
	db *gorm.DB
}

func NewListEntityMovementsQueryHandler(db *gorm.DB) ListEntityMovementsQueryHandler {
	return ListEntityMovementsQueryHandler{db: db}
}

// Handle returns the entity's movements oldest first. For operations the
// target must exist within the tenant, otherwise errs.ObjectNotFoundError is
// returned; for other entity types an unknown id simply has no history.
func (h ListEntityMovementsQueryHandler) Handle(
	ctx context.Context,
	query ListEntityMovementsQuery,
) ([]MovementResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	db := h.db.WithContext(ctx)

	if query.EntityType() == movement.EntityOperation {
		var visible bool
		err := db.Raw(
			`SELECT EXISTS (SELECT 1 FROM operations WHERE id = ? AND company_id = ?)`,
			query.EntityID().Bytes(), query.TenantID().Bytes(),
		).Scan(&visible).Error
		if err != nil {
			return nil, err
		}
		if !visible {
			return nil, errs.NewObjectNotFoundError("operationId", query.EntityID().String())
		}
	}

	rows, err := db.Raw(`
		SELECT
			id,
			entity_type,
			entity_id,
			type,
			previous_status,
			new_status,
			description,
			created_by,
			created_at
		FROM movements
		WHERE company_id = ? AND entity_type = ? AND entity_id = ?
		ORDER BY created_at ASC, seq ASC
	`, query.TenantID().Bytes(), query.EntityType().String(), query.EntityID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	movements := make([]MovementResponse, 0)
	for rows.Next() {
		m, scanErr := scanMovement(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		movements = append(movements, m)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return movements, nil
}

func scanMovement(rows *sql.Rows) (MovementResponse, error) {
	var (
		response                MovementResponse
		id, entityID            uuid.UUID
		entityType, kind        string
		previousStatus, current sql.NullString
		createdBy               *uuid.UUID
	)

	err := rows.Scan(
		&id,
		&entityType,
		&entityID,
		&kind,
		&previousStatus,
		&current,
		&response.Description,
		&createdBy,
		&response.CreatedAt,
	)
	if err != nil {
		return MovementResponse{}, err
	}

	if response.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return MovementResponse{}, err
	}
	if response.EntityID, err = kernel.UUIDFromBytes(entityID[:]); err != nil {
		return MovementResponse{}, err
	}
	if response.EntityType, err = movement.ParseEntityType(entityType); err != nil {
		return MovementResponse{}, err
	}
	if response.Type, err = movement.ParseType(kind); err != nil {
		return MovementResponse{}, err
	}
	if response.PreviousStatus, err = nullableStatus(previousStatus); err != nil {
		return MovementResponse{}, err
	}
	if response.NewStatus, err = nullableStatus(current); err != nil {
		return MovementResponse{}, err
	}
	if response.CreatedBy, err = kernel.OptionalUUIDFromBytes(createdBy); err != nil {
		return MovementResponse{}, err
	}
	response.CreatedAt = response.CreatedAt.UTC()

	return response, nil
}

func nullableStatus(name sql.NullString) (*operation.Status, error) {
	if !name.Valid {
		return nil, nil
	}
	status, err := operation.ParseStatus(name.String)
	if err != nil {
		return nil, err
	}
	return &status, nil
}
