// Package postgres provides the GORM-based Unit of Work and schema migration
// of the logistics core.
//
// A unit of work wraps one database transaction. Repositories obtained from it
// after Begin share that transaction, so an operation's status write and the
// movement describing it commit or roll back together:
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer uow.Rollback(ctx)
//
//	if err := uow.OperationRepository().Update(ctx, op); err != nil {
//	    return err
//	}
//	if _, err := uow.MovementRepository().Add(ctx, statusChanged); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Each goroutine must use its own UnitOfWork.
package postgres

import (
	"context"

	"logistics/internal/adapters/out/postgres/directoryrepo"
	"logistics/internal/adapters/out/postgres/movementrepo"
	"logistics/internal/adapters/out/postgres/operationrepo"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/movement"
	"logistics/internal/core/ports"
	"logistics/internal/metrics"

	"gorm.io/gorm"
)

// trackedAggregate is an aggregate written during the unit of work.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate any
}

// GormUnitOfWorkFactory creates UnitOfWork instances over one connection pool.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return f.CreateGorm()
}

// CreateGorm returns the concrete type, which satisfies the narrower unit of
// work interfaces declared by the command handlers.
func (f *GormUnitOfWorkFactory) CreateGorm() *GormUnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates one database transaction and records the
// aggregates written in it. Ledger metrics are emitted from the tracked
// movements once the transaction has committed, so rolled back work is never
// counted.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin is a no-op if a transaction is already open.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	tx := uow.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}

	uow.tx = tx
	uow.trackedAggregates = uow.trackedAggregates[:0]
	return nil
}

func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	if err != nil {
		return err
	}

	uow.publishMetrics()
	return nil
}

// Rollback returns gorm.ErrInvalidTransaction when no transaction is open,
// which is the case after a successful Commit.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	uow.trackedAggregates = uow.trackedAggregates[:0]
	return err
}

func (uow *GormUnitOfWork) OperationRepository() ports.OperationRepository {
	return operationrepo.NewGormOperationRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) MovementRepository() ports.MovementRepository {
	return movementrepo.NewGormMovementRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) EntityDirectory() ports.EntityDirectory {
	return directoryrepo.NewGormEntityDirectory(uow.conn())
}

// TrackAggregate is called by repositories after a successful write.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

// TrackedAggregates returns the aggregates written in the current or last
// committed transaction.
func (uow *GormUnitOfWork) TrackedAggregates() []any {
	aggregates := make([]any, 0, len(uow.trackedAggregates))
	for _, tracked := range uow.trackedAggregates {
		aggregates = append(aggregates, tracked.Aggregate)
	}
	return aggregates
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

func (uow *GormUnitOfWork) publishMetrics() {
	for _, tracked := range uow.trackedAggregates {
		m, ok := tracked.Aggregate.(*movement.Movement)
		if !ok {
			continue
		}

		metrics.MovementsAppended.WithLabelValues(m.Type().String(), m.Type().Category().String()).Inc()

		if previous, next := m.PreviousStatus(), m.NewStatus(); previous != nil && next != nil {
			metrics.StatusTransitions.WithLabelValues(previous.String(), next.String()).Inc()
		}
	}
}
