// Package movement provides the append-only audit ledger record.
//
// The package includes:
//   - Movement: an immutable record of something that happened to a tenant's entity
//   - EntityType: the kind of entity a movement points at
//   - Type: the event kind, grouped into lifecycle, operational and account categories
//
// Key business rules:
//   - Movements are never updated or deleted
//   - STATUS_CHANGED and OPERATION_CREATED are written only by the operation service
//   - Descriptions are at most 500 characters
package movement
