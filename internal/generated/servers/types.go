// Package servers holds the HTTP contract of the logistics API: the OpenAPI
// document, its request and response types and the echo bindings that decode
// path and query parameters before calling a ServerInterface.
package servers

import (
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

const (
	BearerAuthScopes = "bearerAuth.Scopes"
)

// EntityType defines model for EntityType.
type EntityType string

// MovementType defines model for MovementType.
type MovementType string

// OperationStatus defines model for OperationStatus.
type OperationStatus string

// Error defines model for Error.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Movement defines model for Movement.
type Movement struct {
	Category       string              `json:"category"`
	CreatedAt      time.Time           `json:"createdAt"`
	CreatedBy      *openapi_types.UUID `json:"createdBy,omitempty"`
	Description    string              `json:"description"`
	EntityId       openapi_types.UUID  `json:"entityId"`
	EntityType     EntityType          `json:"entityType"`
	Id             openapi_types.UUID  `json:"id"`
	NewStatus      *OperationStatus    `json:"newStatus,omitempty"`
	PreviousStatus *OperationStatus    `json:"previousStatus,omitempty"`
	Type           MovementType        `json:"type"`
}

// NewMovement defines model for NewMovement.
type NewMovement struct {
	Description *string            `json:"description,omitempty"`
	EntityId    openapi_types.UUID `json:"entityId"`
	EntityType  EntityType         `json:"entityType"`
	Type        MovementType       `json:"type"`
}

// NewOperation defines model for NewOperation.
type NewOperation struct {
	Destination        *string            `json:"destination,omitempty"`
	ExpectedDeliveryAt *time.Time         `json:"expectedDeliveryAt,omitempty"`
	Origin             *string            `json:"origin,omitempty"`
	ProductId          openapi_types.UUID `json:"productId"`
}

// NewOperationMovement defines model for NewOperationMovement.
type NewOperationMovement struct {
	Description *string      `json:"description,omitempty"`
	Type        MovementType `json:"type"`
}

// Operation defines model for Operation.
type Operation struct {
	CreatedAt          time.Time           `json:"createdAt"`
	Destination        string              `json:"destination"`
	ExpectedDeliveryAt *time.Time          `json:"expectedDeliveryAt,omitempty"`
	Id                 openapi_types.UUID  `json:"id"`
	Origin             string              `json:"origin"`
	ProductId          openapi_types.UUID  `json:"productId"`
	Status             OperationStatus     `json:"status"`
	UpdatedAt          time.Time           `json:"updatedAt"`
	UpdatedBy          *openapi_types.UUID `json:"updatedBy,omitempty"`
	Version            int64               `json:"version"`
}

// StatusUpdate defines model for StatusUpdate.
type StatusUpdate struct {
	Status OperationStatus `json:"status"`
}

// TransitionError defines model for TransitionError.
type TransitionError struct {
	Code    int              `json:"code"`
	From    *OperationStatus `json:"from,omitempty"`
	Message string           `json:"message"`
	To      *OperationStatus `json:"to,omitempty"`
}

// OperationId defines model for OperationId.
type OperationId = openapi_types.UUID

// ListOperationsParams defines parameters for ListOperations.
type ListOperationsParams struct {
	Status *OperationStatus `form:"status,omitempty" json:"status,omitempty"`
	Limit  *int             `form:"limit,omitempty" json:"limit,omitempty"`
	Offset *int             `form:"offset,omitempty" json:"offset,omitempty"`
}

// AppendMovementJSONRequestBody defines body for AppendMovement for application/json ContentType.
type AppendMovementJSONRequestBody = NewMovement

// CreateOperationJSONRequestBody defines body for CreateOperation for application/json ContentType.
type CreateOperationJSONRequestBody = NewOperation

// AppendOperationMovementJSONRequestBody defines body for AppendOperationMovement for application/json ContentType.
type AppendOperationMovementJSONRequestBody = NewOperationMovement

// UpdateOperationStatusJSONRequestBody defines body for UpdateOperationStatus for application/json ContentType.
type UpdateOperationStatusJSONRequestBody = StatusUpdate
