package queries

import (
	"context"

	"gorm.io/gorm"
)

type ListOperationsQueryHandler struct {
	db *gorm.DB
}

func NewListOperationsQueryHandler(db *gorm.DB) ListOperationsQueryHandler {
	return ListOperationsQueryHandler{db: db}
}

// Handle returns an empty, non-nil slice when nothing matches.
func (h ListOperationsQueryHandler) Handle(ctx context.Context, query ListOperationsQuery) ([]OperationResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `SELECT` + operationColumns + `
		FROM operations
		WHERE company_id = ?`
	args := []any{query.TenantID().Bytes()}

	if status := query.Status(); status != nil {
		sql += ` AND status = ?`
		args = append(args, status.String())
	}

	sql += `
		ORDER BY created_at DESC, id
		LIMIT ? OFFSET ?`
	args = append(args, query.Limit(), query.Offset())

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	operations := make([]OperationResponse, 0)
	for rows.Next() {
		op, scanErr := scanOperation(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		operations = append(operations, op)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return operations, nil
}
