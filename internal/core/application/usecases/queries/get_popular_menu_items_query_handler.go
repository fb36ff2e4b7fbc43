package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetPopularMenuItemsQueryHandler retrieves the top-rated menu items through
// a cache-first read: the ranking is served from cache when present and
// recomputed from the database otherwise. Cache failures degrade to database
// reads, never to request failures.
type GetPopularMenuItemsQueryHandler struct {
	db    *gorm.DB
	cache PopularMenuItemsCache
}

// NewGetPopularMenuItemsQueryHandler creates a handler for the popular ranking.
// Requires a GORM database connection and a ranking cache.
func NewGetPopularMenuItemsQueryHandler(
	db *gorm.DB,
	cache PopularMenuItemsCache,
) GetPopularMenuItemsQueryHandler {
	return GetPopularMenuItemsQueryHandler{db: db, cache: cache}
}

// Handle executes the query. Ties in average rating break toward the item
// with more ratings. Only available items are ranked.
func (h GetPopularMenuItemsQueryHandler) Handle(
	ctx context.Context,
	query GetPopularMenuItemsQuery,
) ([]MenuItemResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if items, found, err := h.cache.Get(ctx); err == nil && found {
		return items, nil
	}

	items, err := queryMenuItems(ctx, h.db, `
		SELECT `+menuItemColumns+`
		FROM menu_items
		WHERE is_available
		ORDER BY average_rating DESC, number_of_ratings DESC
		LIMIT ?
	`, PopularMenuItemsLimit)
	if err != nil {
		return nil, err
	}

	_ = h.cache.Set(ctx, items)

	return items, nil
}
