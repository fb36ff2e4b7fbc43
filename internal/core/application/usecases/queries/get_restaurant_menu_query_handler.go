package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetRestaurantMenuQueryHandler retrieves a restaurant's menu items sorted by
// category then name.
type GetRestaurantMenuQueryHandler struct {
	db *gorm.DB
}

// NewGetRestaurantMenuQueryHandler creates a handler for menu listings.
// Requires a GORM database connection for query execution.
func NewGetRestaurantMenuQueryHandler(db *gorm.DB) GetRestaurantMenuQueryHandler {
	return GetRestaurantMenuQueryHandler{db: db}
}

// Handle executes the query and returns menu item read models.
func (h GetRestaurantMenuQueryHandler) Handle(
	ctx context.Context,
	query GetRestaurantMenuQuery,
) ([]MenuItemResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return queryMenuItems(ctx, h.db, `
		SELECT `+menuItemColumns+`
		FROM menu_items
		WHERE restaurant_id = ?
		ORDER BY category, name
	`, query.RestaurantID().Bytes())
}
