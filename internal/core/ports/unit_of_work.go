package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary. Repositories it
// returns are bound to the transaction opened by Begin.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	// Commit returns an error if no transaction is active or the commit fails.
	Commit(ctx context.Context) error
	// Rollback is a no-op after a successful Commit.
	Rollback(ctx context.Context) error

	OperationRepository() OperationRepository
	MovementRepository() MovementRepository
	EntityDirectory() EntityDirectory
}
