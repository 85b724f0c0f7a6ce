package commands_test

import (
	"context"
	"testing"
	"time"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/movement"
	"logistics/internal/core/domain/model/operation"
	"logistics/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOperationRepository struct{ mock.Mock }

func (m *MockOperationRepository) Add(ctx context.Context, op *operation.Operation) error {
	args := m.Called(ctx, op)
	return args.Error(0)
}

func (m *MockOperationRepository) Get(ctx context.Context, tenantID, id kernel.UUID) (*operation.Operation, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*operation.Operation), args.Error(1)
}

func (m *MockOperationRepository) GetForUpdate(ctx context.Context, tenantID, id kernel.UUID) (*operation.Operation, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*operation.Operation), args.Error(1)
}

func (m *MockOperationRepository) Update(ctx context.Context, op *operation.Operation) error {
	args := m.Called(ctx, op)
	return args.Error(0)
}

func (m *MockOperationRepository) ListOverdue(ctx context.Context, now time.Time, limit int) ([]*operation.Operation, error) {
	args := m.Called(ctx, now, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*operation.Operation), args.Error(1)
}

type MockMovementRepository struct{ mock.Mock }

func (m *MockMovementRepository) Add(ctx context.Context, mv *movement.Movement) (*movement.Movement, error) {
	args := m.Called(ctx, mv)
	if fn, ok := args.Get(0).(func(context.Context, *movement.Movement) *movement.Movement); ok {
		return fn(ctx, mv), args.Error(1)
	}
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*movement.Movement), args.Error(1)
}

func (m *MockMovementRepository) ListForEntity(
	ctx context.Context, tenantID kernel.UUID, entityType movement.EntityType, entityID kernel.UUID,
) ([]*movement.Movement, error) {
	args := m.Called(ctx, tenantID, entityType, entityID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*movement.Movement), args.Error(1)
}

func (m *MockMovementRepository) ExistsForEntity(
	ctx context.Context, tenantID kernel.UUID, entityType movement.EntityType, entityID kernel.UUID, movementType movement.Type,
) (bool, error) {
	args := m.Called(ctx, tenantID, entityType, entityID, movementType)
	return args.Bool(0), args.Error(1)
}

type MockEntityDirectory struct{ mock.Mock }

func (m *MockEntityDirectory) ProductExists(ctx context.Context, tenantID, productID kernel.UUID) (bool, error) {
	args := m.Called(ctx, tenantID, productID)
	return args.Bool(0), args.Error(1)
}

func (m *MockEntityDirectory) UserExists(ctx context.Context, tenantID, userID kernel.UUID) (bool, error) {
	args := m.Called(ctx, tenantID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockEntityDirectory) CompanyExists(ctx context.Context, tenantID, companyID kernel.UUID) (bool, error) {
	args := m.Called(ctx, tenantID, companyID)
	return args.Bool(0), args.Error(1)
}

// MockUnitOfWork satisfies both commands.UoW and commands.OperationUoW.
type MockUnitOfWork struct{ mock.Mock }

func (m *MockUnitOfWork) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUnitOfWork) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUnitOfWork) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUnitOfWork) OperationRepository() ports.OperationRepository {
	args := m.Called()
	return args.Get(0).(ports.OperationRepository)
}

func (m *MockUnitOfWork) MovementRepository() ports.MovementRepository {
	args := m.Called()
	return args.Get(0).(ports.MovementRepository)
}

func (m *MockUnitOfWork) EntityDirectory() ports.EntityDirectory {
	args := m.Called()
	return args.Get(0).(ports.EntityDirectory)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockOperationUoWFactory struct{ mock.Mock }

func (m *MockOperationUoWFactory) Create() commands.OperationUoW {
	args := m.Called()
	return args.Get(0).(commands.OperationUoW)
}

// stubMovementAdd makes the repository echo back appended movements matching match.
func stubMovementAdd(repo *MockMovementRepository, match any) *mock.Call {
	return repo.On("Add", mock.Anything, match).
		Return(func(_ context.Context, mv *movement.Movement) *movement.Movement { return mv }, nil)
}

func newUserActor(t *testing.T, tenantID kernel.UUID) kernel.Actor {
	t.Helper()
	actor, err := kernel.NewActor(kernel.NewUUID(), kernel.RoleUser, tenantID)
	require.NoError(t, err)
	return actor
}

func newStoredOperation(t *testing.T, tenantID kernel.UUID, status operation.Status, expected *time.Time) *operation.Operation {
	t.Helper()
	created := time.Date(2026, 10, 1, 8, 0, 0, 0, time.UTC)
	op, err := operation.RestoreOperation(kernel.NewUUID(), tenantID, kernel.NewUUID(), status,
		"Warehouse A", "Store 12", expected, created, created, nil, 3)
	require.NoError(t, err)
	return op
}
