// Package http is the REST adapter of the logistics core. It authenticates
// the caller, validates requests against the OpenAPI document and translates
// between the wire types in package servers and the use cases.
package http

import (
	"context"
	"net/http"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/movement"
	"logistics/internal/core/domain/model/operation"
	"logistics/internal/generated/servers"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

type (
	CreateOperationHandler interface {
		Handle(ctx context.Context, cmd commands.CreateOperationCommand) (*operation.Operation, error)
	}

	UpdateOperationStatusHandler interface {
		Handle(ctx context.Context, cmd commands.UpdateOperationStatusCommand) (*operation.Operation, error)
	}

	AppendMovementHandler interface {
		Handle(ctx context.Context, cmd commands.AppendMovementCommand) (*movement.Movement, error)
	}

	GetOperationHandler interface {
		Handle(ctx context.Context, query queries.GetOperationQuery) (queries.OperationResponse, error)
	}

	ListOperationsHandler interface {
		Handle(ctx context.Context, query queries.ListOperationsQuery) ([]queries.OperationResponse, error)
	}

	ListEntityMovementsHandler interface {
		Handle(ctx context.Context, query queries.ListEntityMovementsQuery) ([]queries.MovementResponse, error)
	}
)

var _ servers.ServerInterface = (*Server)(nil)

// Server implements servers.ServerInterface on top of the command and query
// handlers.
type Server struct {
	// Command handlers
	createOperationHandler       CreateOperationHandler
	updateOperationStatusHandler UpdateOperationStatusHandler
	appendMovementHandler        AppendMovementHandler

	// Query handlers
	getOperationHandler        GetOperationHandler
	listOperationsHandler      ListOperationsHandler
	listEntityMovementsHandler ListEntityMovementsHandler
}

func NewServer(
	createOperationHandler CreateOperationHandler,
	updateOperationStatusHandler UpdateOperationStatusHandler,
	appendMovementHandler AppendMovementHandler,
	getOperationHandler GetOperationHandler,
	listOperationsHandler ListOperationsHandler,
	listEntityMovementsHandler ListEntityMovementsHandler,
) *Server {
	return &Server{
		createOperationHandler:       createOperationHandler,
		updateOperationStatusHandler: updateOperationStatusHandler,
		appendMovementHandler:        appendMovementHandler,
		getOperationHandler:          getOperationHandler,
		listOperationsHandler:        listOperationsHandler,
		listEntityMovementsHandler:   listEntityMovementsHandler,
	}
}

// ListOperations handles GET /api/v1/operations.
func (s *Server) ListOperations(ctx echo.Context, params servers.ListOperationsParams) error {
	actor, err := ActorFrom(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var status *operation.Status
	if params.Status != nil {
		parsed, parseErr := operation.ParseStatus(string(*params.Status))
		if parseErr != nil {
			return writeError(ctx, parseErr)
		}
		status = &parsed
	}

	query, err := queries.NewListOperationsQuery(actor.TenantID(), status, deref(params.Limit), deref(params.Offset))
	if err != nil {
		return writeError(ctx, err)
	}

	operations, err := s.listOperationsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]servers.Operation, len(operations))
	for i, op := range operations {
		response[i] = operationFromResponse(op)
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateOperation handles POST /api/v1/operations.
func (s *Server) CreateOperation(ctx echo.Context) error {
	actor, err := ActorFrom(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var body servers.CreateOperationJSONRequestBody
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	productID, err := kernel.UUIDFromBytes(body.ProductId[:])
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewCreateOperationCommand(actor, kernel.NewUUID(), productID,
		deref(body.Origin), deref(body.Destination), body.ExpectedDeliveryAt)
	if err != nil {
		return writeError(ctx, err)
	}

	op, err := s.createOperationHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, operationFromDomain(op))
}

// GetOperation handles GET /api/v1/operations/{operationId}.
func (s *Server) GetOperation(ctx echo.Context, operationId servers.OperationId) error {
	actor, err := ActorFrom(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	id, err := kernel.UUIDFromBytes(operationId[:])
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetOperationQuery(actor.TenantID(), id)
	if err != nil {
		return writeError(ctx, err)
	}

	op, err := s.getOperationHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, operationFromResponse(op))
}

// UpdateOperationStatus handles PATCH /api/v1/operations/{operationId}/status.
func (s *Server) UpdateOperationStatus(ctx echo.Context, operationId servers.OperationId) error {
	actor, err := ActorFrom(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var body servers.UpdateOperationStatusJSONRequestBody
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	id, err := kernel.UUIDFromBytes(operationId[:])
	if err != nil {
		return writeError(ctx, err)
	}

	status, err := operation.ParseStatus(string(body.Status))
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewUpdateOperationStatusCommand(actor, id, status)
	if err != nil {
		return writeError(ctx, err)
	}

	op, err := s.updateOperationStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, operationFromDomain(op))
}

// ListOperationMovements handles GET /api/v1/operations/{operationId}/movements.
func (s *Server) ListOperationMovements(ctx echo.Context, operationId servers.OperationId) error {
	return s.listMovements(ctx, movement.EntityOperation, operationId)
}

// ListEntityMovements handles GET /api/v1/movements/{entityType}/{entityId}.
func (s *Server) ListEntityMovements(ctx echo.Context, entityType servers.EntityType, entityId openapi_types.UUID) error {
	parsed, err := movement.ParseEntityType(string(entityType))
	if err != nil {
		return writeError(ctx, err)
	}

	return s.listMovements(ctx, parsed, entityId)
}

// AppendOperationMovement handles POST /api/v1/operations/{operationId}/movements.
func (s *Server) AppendOperationMovement(ctx echo.Context, operationId servers.OperationId) error {
	var body servers.AppendOperationMovementJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	return s.appendMovement(ctx, movement.EntityOperation.String(), operationId, body.Type, body.Description)
}

// AppendMovement handles POST /api/v1/movements.
func (s *Server) AppendMovement(ctx echo.Context) error {
	var body servers.AppendMovementJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	return s.appendMovement(ctx, string(body.EntityType), body.EntityId, body.Type, body.Description)
}

func (s *Server) listMovements(ctx echo.Context, entityType movement.EntityType, entityID openapi_types.UUID) error {
	actor, err := ActorFrom(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	id, err := kernel.UUIDFromBytes(entityID[:])
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewListEntityMovementsQuery(actor.TenantID(), entityType, id)
	if err != nil {
		return writeError(ctx, err)
	}

	movements, err := s.listEntityMovementsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]servers.Movement, len(movements))
	for i, m := range movements {
		response[i] = movementFromResponse(m)
	}

	return ctx.JSON(http.StatusOK, response)
}

func (s *Server) appendMovement(
	ctx echo.Context,
	entityType string,
	entityID openapi_types.UUID,
	movementType servers.MovementType,
	description *string,
) error {
	actor, err := ActorFrom(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	parsedEntityType, err := movement.ParseEntityType(entityType)
	if err != nil {
		return writeError(ctx, err)
	}

	parsedType, err := movement.ParseType(string(movementType))
	if err != nil {
		return writeError(ctx, err)
	}

	id, err := kernel.UUIDFromBytes(entityID[:])
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewAppendMovementCommand(actor, parsedEntityType, id, parsedType, deref(description))
	if err != nil {
		return writeError(ctx, err)
	}

	stored, err := s.appendMovementHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, movementFromDomain(stored))
}

func deref[T any](v *T) T {
	var zero T
	if v == nil {
		return zero
	}
	return *v
}
