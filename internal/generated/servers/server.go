package servers

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// Record a movement on any entity of the caller's tenant
	// (POST /api/v1/movements)
	AppendMovement(ctx echo.Context) error
	// List the movements of an entity
	// (GET /api/v1/movements/{entityType}/{entityId})
	ListEntityMovements(ctx echo.Context, entityType EntityType, entityId openapi_types.UUID) error
	// List the caller's operations, newest first
	// (GET /api/v1/operations)
	ListOperations(ctx echo.Context, params ListOperationsParams) error
	// Create an operation in CREATED status
	// (POST /api/v1/operations)
	CreateOperation(ctx echo.Context) error
	// Read one operation
	// (GET /api/v1/operations/{operationId})
	GetOperation(ctx echo.Context, operationId OperationId) error
	// List the movements of an operation
	// (GET /api/v1/operations/{operationId}/movements)
	ListOperationMovements(ctx echo.Context, operationId OperationId) error
	// Record a movement on an operation
	// (POST /api/v1/operations/{operationId}/movements)
	AppendOperationMovement(ctx echo.Context, operationId OperationId) error
	// Move an operation to another lifecycle status
	// (PATCH /api/v1/operations/{operationId}/status)
	UpdateOperationStatus(ctx echo.Context, operationId OperationId) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

// AppendMovement converts echo context to params.
func (w *ServerInterfaceWrapper) AppendMovement(ctx echo.Context) error {
	ctx.Set(BearerAuthScopes, []string{})

	return w.Handler.AppendMovement(ctx)
}

// ListEntityMovements converts echo context to params.
func (w *ServerInterfaceWrapper) ListEntityMovements(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "entityType" -------------
	var entityType EntityType

	err = runtime.BindStyledParameterWithOptions("simple", "entityType", ctx.Param("entityType"), &entityType,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter entityType: %s", err))
	}

	// ------------- Path parameter "entityId" -------------
	var entityId openapi_types.UUID

	err = runtime.BindStyledParameterWithOptions("simple", "entityId", ctx.Param("entityId"), &entityId,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter entityId: %s", err))
	}

	ctx.Set(BearerAuthScopes, []string{})

	return w.Handler.ListEntityMovements(ctx, entityType, entityId)
}

// ListOperations converts echo context to params.
func (w *ServerInterfaceWrapper) ListOperations(ctx echo.Context) error {
	var err error

	ctx.Set(BearerAuthScopes, []string{})

	var params ListOperationsParams
	// ------------- Optional query parameter "status" -------------

	err = runtime.BindQueryParameter("form", true, false, "status", ctx.QueryParams(), &params.Status)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter status: %s", err))
	}

	// ------------- Optional query parameter "limit" -------------

	err = runtime.BindQueryParameter("form", true, false, "limit", ctx.QueryParams(), &params.Limit)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter limit: %s", err))
	}

	// ------------- Optional query parameter "offset" -------------

	err = runtime.BindQueryParameter("form", true, false, "offset", ctx.QueryParams(), &params.Offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter offset: %s", err))
	}

	return w.Handler.ListOperations(ctx, params)
}

// CreateOperation converts echo context to params.
func (w *ServerInterfaceWrapper) CreateOperation(ctx echo.Context) error {
	ctx.Set(BearerAuthScopes, []string{})

	return w.Handler.CreateOperation(ctx)
}

// GetOperation converts echo context to params.
func (w *ServerInterfaceWrapper) GetOperation(ctx echo.Context) error {
	operationId, err := bindOperationID(ctx)
	if err != nil {
		return err
	}

	ctx.Set(BearerAuthScopes, []string{})

	return w.Handler.GetOperation(ctx, operationId)
}

// ListOperationMovements converts echo context to params.
func (w *ServerInterfaceWrapper) ListOperationMovements(ctx echo.Context) error {
	operationId, err := bindOperationID(ctx)
	if err != nil {
		return err
	}

	ctx.Set(BearerAuthScopes, []string{})

	return w.Handler.ListOperationMovements(ctx, operationId)
}

// AppendOperationMovement converts echo context to params.
func (w *ServerInterfaceWrapper) AppendOperationMovement(ctx echo.Context) error {
	operationId, err := bindOperationID(ctx)
	if err != nil {
		return err
	}

	ctx.Set(BearerAuthScopes, []string{})

	return w.Handler.AppendOperationMovement(ctx, operationId)
}

// UpdateOperationStatus converts echo context to params.
func (w *ServerInterfaceWrapper) UpdateOperationStatus(ctx echo.Context) error {
	operationId, err := bindOperationID(ctx)
	if err != nil {
		return err
	}

	ctx.Set(BearerAuthScopes, []string{})

	return w.Handler.UpdateOperationStatus(ctx, operationId)
}

func bindOperationID(ctx echo.Context) (OperationId, error) {
	var operationId OperationId

	err := runtime.BindStyledParameterWithOptions("simple", "operationId", ctx.Param("operationId"), &operationId,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return operationId, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter operationId: %s", err))
	}

	return operationId, nil
}

// EchoRouter is the subset of *echo.Echo and *echo.Group used for registration.
type EchoRouter interface {
	CONNECT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	HEAD(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	OPTIONS(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PATCH(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	TRACE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// RegisterHandlersWithBaseURL registers handlers, and prepends BaseURL to the
// paths, so that the paths can be served under a prefix.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.POST(baseURL+"/api/v1/movements", wrapper.AppendMovement)
	router.GET(baseURL+"/api/v1/movements/:entityType/:entityId", wrapper.ListEntityMovements)
	router.GET(baseURL+"/api/v1/operations", wrapper.ListOperations)
	router.POST(baseURL+"/api/v1/operations", wrapper.CreateOperation)
	router.GET(baseURL+"/api/v1/operations/:operationId", wrapper.GetOperation)
	router.GET(baseURL+"/api/v1/operations/:operationId/movements", wrapper.ListOperationMovements)
	router.POST(baseURL+"/api/v1/operations/:operationId/movements", wrapper.AppendOperationMovement)
	router.PATCH(baseURL+"/api/v1/operations/:operationId/status", wrapper.UpdateOperationStatus)
}
