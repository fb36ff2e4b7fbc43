// Package ports defines repository interfaces for the marketplace domain.
// These interfaces establish contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
//
// Orders are append-and-transition only: there is no delete operation, since
// cancellation is a terminal status rather than a removal.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	Add(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns *errs.ObjectNotFoundError if no such order exists.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// UpdateStatus applies a status transition as a single conditional update:
	// the new status is written only if the stored status still equals
	// expectedCurrent, so two concurrent transitions cannot both succeed from
	// the same stale read.
	//
	// When driverID is non-nil it is recorded as the delivery driver in the
	// same statement.
	//
	// Returns *errs.InvalidStatusTransitionError if the order exists but its
	// status no longer matches expectedCurrent, and *errs.ObjectNotFoundError
	// if the order does not exist.
	UpdateStatus(
		ctx context.Context,
		id kernel.UUID,
		expectedCurrent order.Status,
		next order.Status,
		driverID *kernel.UUID,
	) error
}
