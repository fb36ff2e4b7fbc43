// Package services provides domain services that implement business rules
// spanning multiple aggregates.
//
// The package includes:
//   - Principal: the authenticated actor (identifier plus role) a request acts as
//   - AccessPolicy: the role/action permission table evaluated uniformly by
//     every command and query handler
//
// Ownership decisions (may this specific user edit that specific restaurant)
// are not made here; they live on the aggregates themselves.
package services
