package http_test

import (
	"context"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/movement"
	"logistics/internal/core/domain/model/operation"

	"github.com/stretchr/testify/mock"
)

type MockCreateOperationHandler struct{ mock.Mock }

func (m *MockCreateOperationHandler) Handle(ctx context.Context, cmd commands.CreateOperationCommand) (*operation.Operation, error) {
	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*operation.Operation), args.Error(1)
}

type MockUpdateOperationStatusHandler struct{ mock.Mock }

func (m *MockUpdateOperationStatusHandler) Handle(ctx context.Context, cmd commands.UpdateOperationStatusCommand) (*operation.Operation, error) {
	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*operation.Operation), args.Error(1)
}

type MockAppendMovementHandler struct{ mock.Mock }

func (m *MockAppendMovementHandler) Handle(ctx context.Context, cmd commands.AppendMovementCommand) (*movement.Movement, error) {
	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*movement.Movement), args.Error(1)
}

type MockGetOperationHandler struct{ mock.Mock }

func (m *MockGetOperationHandler) Handle(ctx context.Context, query queries.GetOperationQuery) (queries.OperationResponse, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.OperationResponse), args.Error(1)
}

type MockListOperationsHandler struct{ mock.Mock }

func (m *MockListOperationsHandler) Handle(ctx context.Context, query queries.ListOperationsQuery) ([]queries.OperationResponse, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]queries.OperationResponse), args.Error(1)
}

type MockListEntityMovementsHandler struct{ mock.Mock }

func (m *MockListEntityMovementsHandler) Handle(ctx context.Context, query queries.ListEntityMovementsQuery) ([]queries.MovementResponse, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]queries.MovementResponse), args.Error(1)
}
