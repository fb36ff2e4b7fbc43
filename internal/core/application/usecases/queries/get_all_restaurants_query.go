package queries

import (
	"errors"

	"marketplace/internal/pkg/guard"
)

var ErrGetAllRestaurantsQueryIsNotConstructed = errors.New(
	"GetAllRestaurantsQuery must be created via NewGetAllRestaurantsQuery constructor",
)

// GetAllRestaurantsQuery retrieves every registered restaurant.
type GetAllRestaurantsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllRestaurantsQuery creates a query for the full restaurant list.
func NewGetAllRestaurantsQuery() GetAllRestaurantsQuery {
	return GetAllRestaurantsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAllRestaurantsQueryIsNotConstructed if validation fails.
func (q GetAllRestaurantsQuery) Validate() error {
	return q.guard.Validate(ErrGetAllRestaurantsQueryIsNotConstructed)
}
