package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/movement"
	"logistics/internal/core/domain/model/operation"

	"github.com/rs/zerolog"
)

// ReportDelaysCommandHandler appends one DELAY_REPORTED movement, authored by
// the system, to every operation that missed its expected delivery time.
//
// Each operation is handled in its own transaction under a row lock, and the
// overdue condition is checked again after locking, so a status change that
// lands between the scan and the report is respected. An operation is
// reported at most once.
type ReportDelaysCommandHandler struct {
	uowFactory OperationUoWFactory
	logger     zerolog.Logger
	now        func() time.Time
}

func NewReportDelaysCommandHandler(uowFactory OperationUoWFactory, logger zerolog.Logger) ReportDelaysCommandHandler {
	return ReportDelaysCommandHandler{
		uowFactory: uowFactory,
		logger:     logger,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// Handle returns how many delays were reported. Failures on single
// operations do not stop the run; they are joined into the returned error.
func (h ReportDelaysCommandHandler) Handle(ctx context.Context, cmd ReportDelaysCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	now := h.now()

	candidates, err := h.findOverdue(ctx, now, cmd.BatchSize())
	if err != nil {
		return 0, err
	}

	var (
		reported int
		errList  []error
	)
	for _, candidate := range candidates {
		ok, reportErr := h.report(ctx, candidate.CompanyID(), candidate.ID(), now)
		if reportErr != nil {
			h.logger.Warn().Err(reportErr).
				Str("operation_id", candidate.ID().String()).
				Msg("delay report failed")
			errList = append(errList, reportErr)
			continue
		}
		if ok {
			reported++
		}
	}

	return reported, errors.Join(errList...)
}

func (h ReportDelaysCommandHandler) findOverdue(ctx context.Context, now time.Time, limit int) ([]*operation.Operation, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	return uow.OperationRepository().ListOverdue(ctx, now, limit)
}

func (h ReportDelaysCommandHandler) report(ctx context.Context, tenantID, operationID kernel.UUID, now time.Time) (bool, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return false, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	op, err := uow.OperationRepository().GetForUpdate(ctx, tenantID, operationID)
	if err != nil {
		return false, err
	}
	if !op.IsOverdue(now) {
		return false, nil
	}

	movementRepo := uow.MovementRepository()

	exists, err := movementRepo.ExistsForEntity(ctx, tenantID, movement.EntityOperation, operationID, movement.DelayReported)
	if err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}

	description := fmt.Sprintf("Expected delivery at %s missed while %s",
		op.ExpectedDeliveryAt().UTC().Format(time.RFC3339), op.Status())

	delay, err := movement.NewMovement(tenantID, movement.EntityOperation, operationID, movement.DelayReported, description, nil)
	if err != nil {
		return false, err
	}

	if _, err = movementRepo.Add(ctx, delay); err != nil {
		return false, err
	}

	if err = uow.Commit(ctx); err != nil {
		return false, err
	}

	return true, nil
}
