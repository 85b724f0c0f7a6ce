package movementrepo

import (
	"context"
	"errors"

	"logistics/internal/adapters/out/postgres/pgerrors"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/movement"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormMovementRepository implements ports.MovementRepository. It only ever
// inserts and selects.
type GormMovementRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormMovementRepository(db *gorm.DB, tracker aggregateTracker) *GormMovementRepository {
	return &GormMovementRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts m and reads back the columns PostgreSQL filled in.
func (r *GormMovementRepository) Add(ctx context.Context, m *movement.Movement) (*movement.Movement, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}

	dto := fromDomain(m)
	err := r.db.WithContext(ctx).
		Clauses(clause.Returning{Columns: []clause.Column{{Name: "seq"}, {Name: "created_at"}}}).
		Create(&dto).Error
	if err != nil {
		return nil, pgerrors.Classify(err, "movementId", m.ID().String())
	}

	stored, err := toDomain(dto)
	if err != nil {
		return nil, err
	}

	r.tracker.TrackAggregate(stored.ID(), stored)
	return stored, nil
}

func (r *GormMovementRepository) ListForEntity(
	ctx context.Context,
	tenantID kernel.UUID,
	entityType movement.EntityType,
	entityID kernel.UUID,
) ([]*movement.Movement, error) {
	if err := errors.Join(tenantID.Validate(), entityType.Validate(), entityID.Validate()); err != nil {
		return nil, err
	}

	var dtos []MovementDTO
	err := r.db.WithContext(ctx).
		Where("company_id = ? AND entity_type = ? AND entity_id = ?", tenantID.Bytes(), entityType.String(), entityID.Bytes()).
		Order("created_at ASC").
		Order("seq ASC").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	movements := make([]*movement.Movement, 0, len(dtos))
	for _, dto := range dtos {
		m, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		movements = append(movements, m)
	}

	return movements, nil
}

func (r *GormMovementRepository) ExistsForEntity(
	ctx context.Context,
	tenantID kernel.UUID,
	entityType movement.EntityType,
	entityID kernel.UUID,
	movementType movement.Type,
) (bool, error) {
	var exists bool
	err := r.db.WithContext(ctx).Raw(`
		SELECT EXISTS (
			SELECT 1 FROM movements
			WHERE company_id = ? AND entity_type = ? AND entity_id = ? AND type = ?
		)`,
		tenantID.Bytes(), entityType.String(), entityID.Bytes(), movementType.String(),
	).Scan(&exists).Error

	return exists, err
}
