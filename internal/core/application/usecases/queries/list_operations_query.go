package queries

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/operation"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

const (
	DefaultPageSize = 50
	MaxPageSize     = 200
)

var ErrListOperationsQueryIsNotConstructed = errors.New(
	"ListOperationsQuery must be created via NewListOperationsQuery constructor",
)

// ListOperationsQuery pages through a tenant's operations, newest first,
// optionally restricted to one status. A zero limit selects DefaultPageSize.
type ListOperationsQuery struct {
	tenantID kernel.UUID
	status   *operation.Status
	limit    int
	offset   int

	guard guard.ConstructorGuard
}

func NewListOperationsQuery(tenantID kernel.UUID, status *operation.Status, limit, offset int) (ListOperationsQuery, error) {
	q := ListOperationsQuery{
		tenantID: tenantID,
		limit:    limit,
		offset:   offset,
		guard:    guard.NewConstructorGuard(),
	}
	if q.limit == 0 {
		q.limit = DefaultPageSize
	}

	var statusErr error
	if status != nil {
		statusErr = status.Validate()
		s := *status
		q.status = &s
	}

	if err := errors.Join(
		tenantID.Validate(),
		statusErr,
		validateRange("limit", q.limit, 1, MaxPageSize),
		validateRange("offset", q.offset, 0, nil),
	); err != nil {
		return ListOperationsQuery{}, err
	}

	return q, nil
}

func (q ListOperationsQuery) Validate() error {
	return q.guard.Validate(ErrListOperationsQueryIsNotConstructed)
}

func (q ListOperationsQuery) TenantID() kernel.UUID {
	return q.tenantID
}

// Status is nil when every status is listed.
func (q ListOperationsQuery) Status() *operation.Status {
	if q.status == nil {
		return nil
	}
	s := *q.status
	return &s
}

func (q ListOperationsQuery) Limit() int {
	return q.limit
}

func (q ListOperationsQuery) Offset() int {
	return q.offset
}

func validateRange(paramName string, value, minValue int, maxValue any) error {
	if value < minValue {
		return errs.NewValueIsOutOfRangeError(paramName, value, minValue, maxValue)
	}
	if maxValue, ok := maxValue.(int); ok && value > maxValue {
		return errs.NewValueIsOutOfRangeError(paramName, value, minValue, maxValue)
	}
	return nil
}
