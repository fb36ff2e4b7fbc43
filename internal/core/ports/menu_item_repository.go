package ports

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/menu"
)

// MenuItemRepository defines the persistence contract for menu item aggregates.
type MenuItemRepository interface {
	// Add persists a new menu item aggregate to storage.
	Add(ctx context.Context, aggregate *menu.MenuItem) error

	// Update persists attribute changes (name, price, category, description,
	// availability) to an existing menu item. Rating fields are never written
	// through Update; they are owned by ApplyRating so staff edits and review
	// aggregation cannot race destructively on the same columns.
	Update(ctx context.Context, aggregate *menu.MenuItem) error

	// Get retrieves a menu item aggregate by its unique identifier.
	// Returns *errs.ObjectNotFoundError if no such item exists.
	Get(ctx context.Context, id kernel.UUID) (*menu.MenuItem, error)

	// Delete removes a menu item.
	// Returns *errs.ObjectNotFoundError if no such item exists.
	Delete(ctx context.Context, id kernel.UUID) error

	// ApplyRating folds one rating into the item's aggregate as a single
	// atomic arithmetic update executed by the store:
	//
	//	avg' = (avg*n + rating) / (n+1), n' = n+1
	//
	// Concurrent callers therefore cannot lose updates. Returns
	// *errs.ObjectNotFoundError if no such item exists.
	ApplyRating(ctx context.Context, id kernel.UUID, rating int) error
}
