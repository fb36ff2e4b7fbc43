package ports

import (
	"context"

	"marketplace/internal/core/domain/model/review"
)

// ReviewRepository defines the persistence contract for review entities.
// Reviews are immutable: the contract is append-only by design.
type ReviewRepository interface {
	// Add persists a new review.
	Add(ctx context.Context, entity *review.Review) error
}
