// Package commands contains business operations that modify system state.
// Every handler follows the same shape: validate the command, open a unit of
// work, load under lock, apply domain rules, persist, commit.
package commands

import (
	"context"

	"logistics/internal/core/ports"
)

type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OperationRepoFactory provides access to the operation repository within a transaction.
	OperationRepoFactory interface {
		OperationRepository() ports.OperationRepository
	}

	// MovementRepoFactory provides access to the movement ledger within a transaction.
	MovementRepoFactory interface {
		MovementRepository() ports.MovementRepository
	}

	// DirectoryFactory provides existence checks within a transaction.
	DirectoryFactory interface {
		EntityDirectory() ports.EntityDirectory
	}

	// OperationUoW covers the status write and its movement in one transaction.
	OperationUoW interface {
		TxManager
		OperationRepoFactory
		MovementRepoFactory
	}

	// OperationUoWFactory creates new operation unit of work instances.
	OperationUoWFactory interface {
		Create() OperationUoW
	}

	// UoW additionally resolves entities the core references but does not own.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   exists, err := uow.EntityDirectory().ProductExists(ctx, tenantID, productID)
	//   err = uow.OperationRepository().Add(ctx, op)
	//   _, err = uow.MovementRepository().Add(ctx, created)
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		OperationRepoFactory
		MovementRepoFactory
		DirectoryFactory
	}

	// UoWFactory creates new unit of work instances.
	UoWFactory interface {
		Create() UoW
	}
)
