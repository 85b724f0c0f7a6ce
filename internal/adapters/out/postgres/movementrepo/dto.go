// Package movementrepo maps movements to the append-only movements table.
package movementrepo

import (
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/movement"
	"logistics/internal/core/domain/model/operation"

	"github.com/google/uuid"
)

// MovementDTO is the movements row. EntityID has no foreign key because it
// points into one of several tables. CreatedAt and Seq are assigned by
// PostgreSQL on insert; Seq orders movements stored within one clock tick.
type MovementDTO struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Seq            int64      `gorm:"type:bigserial;not null;uniqueIndex;<-:false"`
	CompanyID      uuid.UUID  `gorm:"type:uuid;not null;index:idx_movements_entity,priority:1"`
	EntityType     string     `gorm:"type:varchar(32);not null;index:idx_movements_entity,priority:2"`
	EntityID       uuid.UUID  `gorm:"type:uuid;not null;index:idx_movements_entity,priority:3"`
	Type           string     `gorm:"column:type;type:varchar(32);not null"`
	PreviousStatus *string    `gorm:"type:varchar(32)"`
	NewStatus      *string    `gorm:"type:varchar(32)"`
	Description    string     `gorm:"type:varchar(500);not null;default:''"`
	CreatedBy      *uuid.UUID `gorm:"type:uuid"`
	CreatedAt      time.Time  `gorm:"type:timestamptz;not null;default:clock_timestamp();autoCreateTime:false;<-:false;index:idx_movements_entity,priority:4"`
}

func (MovementDTO) TableName() string {
	return "movements"
}

func fromDomain(m *movement.Movement) MovementDTO {
	return MovementDTO{
		ID:             m.ID().Bytes(),
		CompanyID:      m.CompanyID().Bytes(),
		EntityType:     m.EntityType().String(),
		EntityID:       m.EntityID().Bytes(),
		Type:           m.Type().String(),
		PreviousStatus: statusName(m.PreviousStatus()),
		NewStatus:      statusName(m.NewStatus()),
		Description:    m.Description(),
		CreatedBy:      kernel.OptionalBytes(m.CreatedBy()),
	}
}

func toDomain(dto MovementDTO) (*movement.Movement, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	companyID, err := kernel.UUIDFromBytes(dto.CompanyID[:])
	if err != nil {
		return nil, err
	}

	entityID, err := kernel.UUIDFromBytes(dto.EntityID[:])
	if err != nil {
		return nil, err
	}

	entityType, err := movement.ParseEntityType(dto.EntityType)
	if err != nil {
		return nil, err
	}

	movementType, err := movement.ParseType(dto.Type)
	if err != nil {
		return nil, err
	}

	previous, err := parseStatus(dto.PreviousStatus)
	if err != nil {
		return nil, err
	}

	next, err := parseStatus(dto.NewStatus)
	if err != nil {
		return nil, err
	}

	createdBy, err := kernel.OptionalUUIDFromBytes(dto.CreatedBy)
	if err != nil {
		return nil, err
	}

	return movement.RestoreMovement(
		id,
		companyID,
		entityType,
		entityID,
		movementType,
		previous,
		next,
		dto.Description,
		createdBy,
		dto.CreatedAt,
		dto.Seq,
	)
}

func statusName(s *operation.Status) *string {
	if s == nil {
		return nil
	}
	name := s.String()
	return &name
}

func parseStatus(name *string) (*operation.Status, error) {
	if name == nil {
		return nil, nil
	}
	s, err := operation.ParseStatus(*name)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
