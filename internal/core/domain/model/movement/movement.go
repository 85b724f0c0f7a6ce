package movement

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/operation"
	"logistics/internal/pkg/errs"
)

const MaxDescriptionLength = 500

var ErrMovementIsNotConstructed = errors.New("Movement must be created via a movement constructor")

// Movement is one immutable entry of the audit ledger. It has no setters;
// the persistence layer assigns CreatedAt and Sequence when the row is stored.
type Movement struct {
	id             kernel.UUID
	companyID      kernel.UUID
	entityType     EntityType
	entityID       kernel.UUID
	movementType   Type
	previousStatus *operation.Status
	newStatus      *operation.Status
	description    string
	createdBy      *kernel.UUID
	createdAt      time.Time
	sequence       int64

	isConstructed bool
}

// NewMovement builds a movement without a status pair, used for manual
// annotations and system reports. createdBy is nil for system-initiated records.
func NewMovement(
	companyID kernel.UUID,
	entityType EntityType,
	entityID kernel.UUID,
	movementType Type,
	description string,
	createdBy *kernel.UUID,
) (*Movement, error) {
	m := &Movement{
		id:            kernel.NewUUID(),
		createdBy:     createdBy,
		isConstructed: true,
	}

	if err := errors.Join(
		m.setCompanyID(companyID),
		m.setTarget(entityType, entityID),
		m.setType(movementType),
		m.setDescription(description),
	); err != nil {
		return nil, err
	}

	return m, nil
}

// NewOperationCreated records the birth of an operation.
func NewOperationCreated(op *operation.Operation, createdBy *kernel.UUID) (*Movement, error) {
	if err := op.Validate(); err != nil {
		return nil, err
	}

	m, err := NewMovement(op.CompanyID(), EntityOperation, op.ID(), OperationCreated, "Operation created", createdBy)
	if err != nil {
		return nil, err
	}

	created := operation.Created
	m.newStatus = &created
	return m, nil
}

// NewStatusChange records previous -> next on an operation.
func NewStatusChange(
	op *operation.Operation,
	previous, next operation.Status,
	createdBy *kernel.UUID,
) (*Movement, error) {
	if err := errors.Join(op.Validate(), previous.Validate(), next.Validate()); err != nil {
		return nil, err
	}
	if previous == next {
		return nil, errs.NewValueIsInvalidErrorWithCause("status change",
			fmt.Errorf("previous and new status are both %s", next))
	}

	description := fmt.Sprintf("Status changed from %s to %s", previous, next)
	m, err := NewMovement(op.CompanyID(), EntityOperation, op.ID(), StatusChanged, description, createdBy)
	if err != nil {
		return nil, err
	}

	m.previousStatus = &previous
	m.newStatus = &next
	return m, nil
}

// RestoreMovement rehydrates a stored movement.
func RestoreMovement(
	id, companyID kernel.UUID,
	entityType EntityType,
	entityID kernel.UUID,
	movementType Type,
	previousStatus, newStatus *operation.Status,
	description string,
	createdBy *kernel.UUID,
	createdAt time.Time,
	sequence int64,
) (*Movement, error) {
	m := &Movement{
		createdBy:     createdBy,
		createdAt:     createdAt,
		sequence:      sequence,
		isConstructed: true,
	}

	if err := errors.Join(
		m.setID(id),
		m.setCompanyID(companyID),
		m.setTarget(entityType, entityID),
		m.setType(movementType),
		m.setStatuses(previousStatus, newStatus),
		m.setDescription(description),
	); err != nil {
		return nil, err
	}

	return m, nil
}

func (m *Movement) Validate() error {
	if m == nil || !m.isConstructed {
		return ErrMovementIsNotConstructed
	}
	return nil
}

func (m *Movement) ID() kernel.UUID {
	return m.id
}

func (m *Movement) CompanyID() kernel.UUID {
	return m.companyID
}

func (m *Movement) EntityType() EntityType {
	return m.entityType
}

func (m *Movement) EntityID() kernel.UUID {
	return m.entityID
}

func (m *Movement) Type() Type {
	return m.movementType
}

// PreviousStatus is only set on STATUS_CHANGED movements.
func (m *Movement) PreviousStatus() *operation.Status {
	return copyStatus(m.previousStatus)
}

// NewStatus is set on STATUS_CHANGED and OPERATION_CREATED movements.
func (m *Movement) NewStatus() *operation.Status {
	return copyStatus(m.newStatus)
}

func (m *Movement) Description() string {
	return m.description
}

// CreatedBy returns nil for system-initiated movements.
func (m *Movement) CreatedBy() *kernel.UUID {
	if m.createdBy == nil {
		return nil
	}
	id := *m.createdBy
	return &id
}

// CreatedAt is zero until the movement has been stored.
func (m *Movement) CreatedAt() time.Time {
	return m.createdAt
}

// Sequence breaks ties between movements stored within the same clock tick.
func (m *Movement) Sequence() int64 {
	return m.sequence
}

func (m *Movement) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	m.id = id
	return nil
}

func (m *Movement) setCompanyID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("companyId", err)
	}
	m.companyID = id
	return nil
}

func (m *Movement) setTarget(entityType EntityType, entityID kernel.UUID) error {
	if err := errors.Join(entityType.Validate(), entityID.Validate()); err != nil {
		return err
	}
	m.entityType = entityType
	m.entityID = entityID
	return nil
}

func (m *Movement) setType(t Type) error {
	if err := t.Validate(); err != nil {
		return err
	}
	m.movementType = t
	return nil
}

func (m *Movement) setStatuses(previous, next *operation.Status) error {
	for _, s := range []*operation.Status{previous, next} {
		if s == nil {
			continue
		}
		if err := s.Validate(); err != nil {
			return err
		}
	}
	m.previousStatus = copyStatus(previous)
	m.newStatus = copyStatus(next)
	return nil
}

func (m *Movement) setDescription(description string) error {
	description = strings.TrimSpace(description)
	if n := utf8.RuneCountInString(description); n > MaxDescriptionLength {
		return errs.NewValueIsOutOfRangeError("description", n, 0, MaxDescriptionLength)
	}
	m.description = description
	return nil
}

func copyStatus(s *operation.Status) *operation.Status {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
