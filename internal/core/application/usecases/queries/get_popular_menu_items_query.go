package queries

import (
	"context"
	"errors"

	"marketplace/internal/pkg/guard"
)

// PopularMenuItemsLimit is the size of the popular-items ranking.
const PopularMenuItemsLimit = 10

var ErrGetPopularMenuItemsQueryIsNotConstructed = errors.New(
	"GetPopularMenuItemsQuery must be created via NewGetPopularMenuItemsQuery constructor",
)

// PopularMenuItemsCache caches the popular-items ranking.
// Get reports a miss with found=false and no error; errors are reserved for
// transport failures, which callers treat as misses too.
type PopularMenuItemsCache interface {
	Get(ctx context.Context) (items []MenuItemResponse, found bool, err error)
	Set(ctx context.Context, items []MenuItemResponse) error
}

// GetPopularMenuItemsQuery retrieves the ten menu items with the highest
// average rating.
type GetPopularMenuItemsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetPopularMenuItemsQuery creates a query for the popular-items ranking.
func NewGetPopularMenuItemsQuery() GetPopularMenuItemsQuery {
	return GetPopularMenuItemsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetPopularMenuItemsQueryIsNotConstructed if validation fails.
func (q GetPopularMenuItemsQuery) Validate() error {
	return q.guard.Validate(ErrGetPopularMenuItemsQueryIsNotConstructed)
}
