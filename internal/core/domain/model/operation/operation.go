package operation

import (
	"errors"
	"strings"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

const maxPlaceLength = 255

var (
	// ErrOperationIsNotConstructed is returned when an Operation was not built
	// through NewOperation or RestoreOperation.
	ErrOperationIsNotConstructed = errors.New("Operation must be created via NewOperation constructor")
)

// TransitionPolicy decides whether current -> requested is legal.
// It is implemented by services.TransitionValidator.
type TransitionPolicy interface {
	Validate(current, requested Status) error
}

// Operation is a tenant-owned unit of logistics work (a shipment). It is the
// aggregate root for its lifecycle status.
//
// Invariants:
//   - id, tenant and product are valid identifiers
//   - status is always a valid Status and starts at Created
//   - status only changes through ChangeStatus, which consults a TransitionPolicy
//   - version increases by one per applied status change
type Operation struct {
	id        kernel.UUID
	companyID kernel.UUID
	productID kernel.UUID
	status    Status

	origin             string
	destination        string
	expectedDeliveryAt *time.Time

	createdAt time.Time
	updatedAt time.Time
	updatedBy *kernel.UUID

	// version is the optimistic concurrency token; loadedVersion is what the
	// row held when the aggregate was built.
	version       int64
	loadedVersion int64

	isConstructed bool
}

// NewOperation creates an operation in Created status. Origin and destination
// are optional free text. actor becomes the last updater.
//
// Example:
//
//	op, err := operation.NewOperation(kernel.NewUUID(), actor, productID,
//	    "Warehouse A", "Store 12", nil, time.Now())
func NewOperation(
	id kernel.UUID,
	actor kernel.Actor,
	productID kernel.UUID,
	origin, destination string,
	expectedDeliveryAt *time.Time,
	now time.Time,
) (*Operation, error) {
	if err := actor.Validate(); err != nil {
		return nil, err
	}

	op := &Operation{
		status:        Created,
		companyID:     actor.TenantID(),
		createdAt:     now,
		updatedAt:     now,
		updatedBy:     actor.UserID(),
		version:       1,
		isConstructed: true,
	}

	if err := errors.Join(
		op.setID(id),
		op.setProductID(productID),
		op.setPlaces(origin, destination),
		op.setExpectedDeliveryAt(expectedDeliveryAt),
	); err != nil {
		return nil, err
	}

	return op, nil
}

// RestoreOperation rehydrates an operation from storage.
func RestoreOperation(
	id, companyID, productID kernel.UUID,
	status Status,
	origin, destination string,
	expectedDeliveryAt *time.Time,
	createdAt, updatedAt time.Time,
	updatedBy *kernel.UUID,
	version int64,
) (*Operation, error) {
	op := &Operation{
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		updatedBy:     updatedBy,
		version:       version,
		loadedVersion: version,
		isConstructed: true,
	}

	if err := errors.Join(
		op.setID(id),
		op.setCompanyID(companyID),
		op.setProductID(productID),
		op.setStatus(status),
		op.setPlaces(origin, destination),
		op.setExpectedDeliveryAt(expectedDeliveryAt),
		op.setVersion(version),
	); err != nil {
		return nil, err
	}

	return op, nil
}

// Validate ensures the Operation was built through a constructor.
func (o *Operation) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOperationIsNotConstructed
	}
	return nil
}

// ChangeStatus moves the operation to requested on behalf of actor.
//
// A request for the current status is a no-op: changed is false and nothing
// is touched. Otherwise the policy is consulted and, on success, status,
// updatedAt, updatedBy and version are updated. The previous status is
// returned for the audit record.
func (o *Operation) ChangeStatus(
	policy TransitionPolicy,
	requested Status,
	actor kernel.Actor,
	now time.Time,
) (previous Status, changed bool, err error) {
	if err = errors.Join(o.Validate(), actor.Validate(), requested.Validate()); err != nil {
		return Unknown, false, err
	}
	if !actor.TenantID().IsEqual(o.companyID) {
		return Unknown, false, errs.NewObjectNotFoundError("operationId", o.id.String())
	}

	previous = o.status
	if requested == previous {
		return previous, false, nil
	}

	if err = policy.Validate(previous, requested); err != nil {
		return previous, false, err
	}

	o.status = requested
	o.updatedAt = now
	o.updatedBy = actor.UserID()
	o.version++

	return previous, true, nil
}

// IsOverdue reports whether the expected delivery has passed while the
// operation is still in flight.
func (o *Operation) IsOverdue(now time.Time) bool {
	return o.expectedDeliveryAt != nil && !o.status.IsTerminal() && now.After(*o.expectedDeliveryAt)
}

func (o *Operation) IsEqual(other *Operation) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Operation) ID() kernel.UUID {
	return o.id
}

func (o *Operation) CompanyID() kernel.UUID {
	return o.companyID
}

func (o *Operation) ProductID() kernel.UUID {
	return o.productID
}

func (o *Operation) Status() Status {
	return o.status
}

func (o *Operation) Origin() string {
	return o.origin
}

func (o *Operation) Destination() string {
	return o.destination
}

// ExpectedDeliveryAt returns nil when no delivery date was promised.
func (o *Operation) ExpectedDeliveryAt() *time.Time {
	if o.expectedDeliveryAt == nil {
		return nil
	}
	t := *o.expectedDeliveryAt
	return &t
}

func (o *Operation) CreatedAt() time.Time {
	return o.createdAt
}

func (o *Operation) UpdatedAt() time.Time {
	return o.updatedAt
}

// UpdatedBy returns nil when the last change was system-initiated.
func (o *Operation) UpdatedBy() *kernel.UUID {
	return o.updatedBy
}

func (o *Operation) Version() int64 {
	return o.version
}

// LoadedVersion is the version the stored row had when this aggregate was read.
// Zero for aggregates that were never persisted.
func (o *Operation) LoadedVersion() int64 {
	return o.loadedVersion
}

func (o *Operation) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Operation) setCompanyID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.companyID = id
	return nil
}

func (o *Operation) setProductID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("productId", err)
	}
	o.productID = id
	return nil
}

func (o *Operation) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Operation) setPlaces(origin, destination string) error {
	origin = strings.TrimSpace(origin)
	destination = strings.TrimSpace(destination)

	var errList []error
	if n := len(origin); n > maxPlaceLength {
		errList = append(errList, errs.NewValueIsOutOfRangeError("origin", n, 0, maxPlaceLength))
	}
	if n := len(destination); n > maxPlaceLength {
		errList = append(errList, errs.NewValueIsOutOfRangeError("destination", n, 0, maxPlaceLength))
	}
	if err := errors.Join(errList...); err != nil {
		return err
	}

	o.origin = origin
	o.destination = destination
	return nil
}

func (o *Operation) setExpectedDeliveryAt(at *time.Time) error {
	if at == nil {
		o.expectedDeliveryAt = nil
		return nil
	}
	if at.IsZero() {
		return errs.NewValueIsInvalidErrorWithCause("expectedDeliveryAt", errors.New("zero time"))
	}
	t := *at
	o.expectedDeliveryAt = &t
	return nil
}

func (o *Operation) setVersion(version int64) error {
	if version < 1 {
		return errs.NewValueIsOutOfRangeError("version", version, 1, "unbounded")
	}
	o.version = version
	return nil
}
