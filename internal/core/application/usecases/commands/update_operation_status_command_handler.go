package commands

import (
	"context"
	"errors"
	"time"

	"logistics/internal/core/domain/model/movement"
	"logistics/internal/core/domain/model/operation"
	"logistics/internal/pkg/errs"

	"github.com/rs/zerolog"
)

// UpdateOperationStatusCommandHandler applies a status transition and appends
// the matching STATUS_CHANGED movement in a single transaction.
//
// The operation row is locked for the duration of the transaction and the
// update is additionally conditioned on the version that was read, so of two
// racing requests only one is applied. The loser either observes the new
// status after the lock is released or fails with errs.PersistenceConflictError.
//
// Example:
//
//	handler := NewUpdateOperationStatusCommandHandler(uowFactory, validator, log)
//	cmd, _ := NewUpdateOperationStatusCommand(actor, opID, operation.AtOrigin)
//	op, err := handler.Handle(ctx, cmd)
//	var invalid *operation.InvalidTransitionError
//	switch {
//	case errors.As(err, &invalid):
//	    // 400 with invalid.From and invalid.To
//	case errors.Is(err, errs.ErrObjectNotFound):
//	    // 404
//	case errors.Is(err, errs.ErrPersistenceConflict):
//	    // 409, retry the request
//	}
type UpdateOperationStatusCommandHandler struct {
	uowFactory OperationUoWFactory
	policy     operation.TransitionPolicy
	logger     zerolog.Logger
	now        func() time.Time
}

func NewUpdateOperationStatusCommandHandler(
	uowFactory OperationUoWFactory,
	policy operation.TransitionPolicy,
	logger zerolog.Logger,
) UpdateOperationStatusCommandHandler {
	return UpdateOperationStatusCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
		logger:     logger,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// Handle returns the operation as it is after the request. Requesting the
// current status writes nothing and returns the operation unchanged.
func (h UpdateOperationStatusCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateOperationStatusCommand,
) (*operation.Operation, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	actor := cmd.Actor()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	operationRepo := uow.OperationRepository()

	op, err := operationRepo.GetForUpdate(ctx, actor.TenantID(), cmd.OperationID())
	if err != nil {
		return nil, err
	}

	previous, changed, err := op.ChangeStatus(h.policy, cmd.Status(), actor, h.now())
	if err != nil {
		var invalid *operation.InvalidTransitionError
		if errors.As(err, &invalid) {
			h.logger.Debug().
				Str("operation_id", op.ID().String()).
				Stringer("from", invalid.From).
				Stringer("to", invalid.To).
				Msg("status transition rejected")
		}
		return nil, err
	}

	if !changed {
		return op, nil
	}

	if err = operationRepo.Update(ctx, op); err != nil {
		if errors.Is(err, errs.ErrPersistenceConflict) {
			h.logger.Warn().Err(err).
				Str("operation_id", op.ID().String()).
				Int64("loaded_version", op.LoadedVersion()).
				Msg("concurrent status change lost")
		}
		return nil, err
	}

	statusChanged, err := movement.NewStatusChange(op, previous, op.Status(), actor.UserID())
	if err != nil {
		return nil, err
	}

	if _, err = uow.MovementRepository().Add(ctx, statusChanged); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.logger.Info().
		Str("operation_id", op.ID().String()).
		Stringer("from", previous).
		Stringer("to", op.Status()).
		Int64("version", op.Version()).
		Msg("status changed")

	return op, nil
}
