package operationrepo

import (
	"context"
	"errors"
	"time"

	"logistics/internal/adapters/out/postgres/pgerrors"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/movement"
	"logistics/internal/core/domain/model/operation"
	"logistics/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOperationRepository implements ports.OperationRepository using GORM.
type GormOperationRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormOperationRepository(db *gorm.DB, tracker aggregateTracker) *GormOperationRepository {
	return &GormOperationRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormOperationRepository) Add(ctx context.Context, aggregate *operation.Operation) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerrors.Classify(err, "operationId", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormOperationRepository) Get(ctx context.Context, tenantID, id kernel.UUID) (*operation.Operation, error) {
	return r.get(r.db.WithContext(ctx), tenantID, id)
}

// GetForUpdate issues SELECT ... FOR UPDATE; it must run inside a transaction
// for the lock to outlive the statement.
func (r *GormOperationRepository) GetForUpdate(ctx context.Context, tenantID, id kernel.UUID) (*operation.Operation, error) {
	return r.get(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), tenantID, id)
}

func (r *GormOperationRepository) get(db *gorm.DB, tenantID, id kernel.UUID) (*operation.Operation, error) {
	if err := errors.Join(tenantID.Validate(), id.Validate()); err != nil {
		return nil, err
	}

	var dto OperationDTO
	err := db.Where("id = ? AND company_id = ?", id.Bytes(), tenantID.Bytes()).Take(&dto).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.NewObjectNotFoundError("operationId", id.String())
	}
	if err != nil {
		return nil, pgerrors.Classify(err, "operationId", id.String())
	}

	return toDomain(dto)
}

// Update writes status and audit columns only when the row still carries the
// version the aggregate was loaded with.
func (r *GormOperationRepository) Update(ctx context.Context, aggregate *operation.Operation) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&OperationDTO{}).
		Where("id = ? AND company_id = ? AND version = ?", dto.ID, dto.CompanyID, aggregate.LoadedVersion()).
		Updates(map[string]any{
			"status":     dto.Status,
			"updated_at": dto.UpdatedAt,
			"updated_by": dto.UpdatedBy,
			"version":    dto.Version,
		})
	if result.Error != nil {
		return pgerrors.Classify(result.Error, "operationId", aggregate.ID().String())
	}

	if result.RowsAffected == 0 {
		return pgerrors.Conflict("operationId", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// ListOverdue scans across tenants; callers re-check each candidate under lock.
func (r *GormOperationRepository) ListOverdue(ctx context.Context, now time.Time, limit int) ([]*operation.Operation, error) {
	var dtos []OperationDTO
	err := r.db.WithContext(ctx).
		Where("expected_delivery_date IS NOT NULL AND expected_delivery_date < ?", now).
		Where("status NOT IN ?", []string{operation.Completed.String(), operation.Canceled.String()}).
		Where(`NOT EXISTS (
			SELECT 1 FROM movements m
			WHERE m.entity_type = ? AND m.entity_id = operations.id AND m.type = ?
		)`, movement.EntityOperation.String(), movement.DelayReported.String()).
		Order("expected_delivery_date ASC").
		Limit(limit).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	operations := make([]*operation.Operation, 0, len(dtos))
	for _, dto := range dtos {
		op, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		operations = append(operations, op)
	}

	return operations, nil
}
