package queries

import (
	"context"

	"marketplace/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetRestaurantQueryHandler retrieves one restaurant.
type GetRestaurantQueryHandler struct {
	db *gorm.DB
}

// NewGetRestaurantQueryHandler creates a handler for single-restaurant reads.
// Requires a GORM database connection for query execution.
func NewGetRestaurantQueryHandler(db *gorm.DB) GetRestaurantQueryHandler {
	return GetRestaurantQueryHandler{db: db}
}

// Handle executes the query.
// Returns *errs.ObjectNotFoundError if the restaurant does not exist.
func (h GetRestaurantQueryHandler) Handle(
	ctx context.Context,
	query GetRestaurantQuery,
) (RestaurantResponse, error) {
	if err := query.Validate(); err != nil {
		return RestaurantResponse{}, err
	}

	restaurants, err := queryRestaurants(ctx, h.db, `
		SELECT `+restaurantColumns+`
		FROM restaurants
		WHERE id = ?
	`, query.RestaurantID().Bytes())
	if err != nil {
		return RestaurantResponse{}, err
	}
	if len(restaurants) == 0 {
		return RestaurantResponse{}, errs.NewObjectNotFoundError("restaurantID", query.RestaurantID())
	}

	return restaurants[0], nil
}
