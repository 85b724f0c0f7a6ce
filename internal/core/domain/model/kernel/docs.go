// Package kernel provides the primitives shared by every aggregate of the
// logistics domain.
//
// The package includes:
//   - UUID: identifier value object with validation and comparison
//   - Role: the caller's authorization role
//   - Actor: the authenticated caller (user id, role, tenant id) or a system actor
//
// These primitives are immutable and safe for concurrent use.
package kernel
