package ports

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/user"
)

// UserRepository defines the persistence contract for user aggregates.
//
// Favorites are persisted as a relational set, and membership changes are
// expressed as atomic set operations at the store level rather than
// read-modify-write of the whole favorites collection.
type UserRepository interface {
	// Get retrieves a user aggregate by its unique identifier, favorites included.
	// Returns *errs.ObjectNotFoundError if no such user exists.
	Get(ctx context.Context, id kernel.UUID) (*user.User, error)

	// Update persists profile changes (name, phone, address) to an existing user.
	Update(ctx context.Context, aggregate *user.User) error

	// AddFavorite inserts the menu item into the user's favorites set.
	// Idempotent: inserting an existing member is a no-op at the store level
	// (conflict-ignoring insert), so concurrent adds cannot duplicate entries.
	AddFavorite(ctx context.Context, userID kernel.UUID, menuItemID kernel.UUID) error

	// RemoveFavorite deletes the menu item from the user's favorites set.
	// Idempotent: removing an absent member is a no-op.
	RemoveFavorite(ctx context.Context, userID kernel.UUID, menuItemID kernel.UUID) error
}
