package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetAllRestaurantsQueryHandler retrieves all restaurants sorted by name.
type GetAllRestaurantsQueryHandler struct {
	db *gorm.DB
}

// NewGetAllRestaurantsQueryHandler creates a handler for restaurant listings.
// Requires a GORM database connection for query execution.
func NewGetAllRestaurantsQueryHandler(db *gorm.DB) GetAllRestaurantsQueryHandler {
	return GetAllRestaurantsQueryHandler{db: db}
}

// Handle executes the query and returns all restaurant read models.
func (h GetAllRestaurantsQueryHandler) Handle(
	ctx context.Context,
	query GetAllRestaurantsQuery,
) ([]RestaurantResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return queryRestaurants(ctx, h.db, `
		SELECT `+restaurantColumns+`
		FROM restaurants
		ORDER BY name
	`)
}
