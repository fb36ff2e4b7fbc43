package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetRestaurantOrdersQueryHandler retrieves orders targeting restaurants the
// acting user owns or manages, newest first.
type GetRestaurantOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetRestaurantOrdersQueryHandler creates a handler for restaurant order listings.
// Requires a GORM database connection for query execution.
func NewGetRestaurantOrdersQueryHandler(db *gorm.DB) GetRestaurantOrdersQueryHandler {
	return GetRestaurantOrdersQueryHandler{db: db}
}

// Handle executes the query. An order is included when its restaurant is
// owned by the actor or lists the actor as a manager.
func (h GetRestaurantOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetRestaurantOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	actor := query.ActorID().Bytes()
	return queryOrders(ctx, h.db, `
		SELECT `+orderColumns+`
		FROM orders
		WHERE restaurant_id IN (
			SELECT id FROM restaurants WHERE owner_id = ?
			UNION
			SELECT restaurant_id FROM restaurant_managers WHERE manager_id = ?
		)
		ORDER BY created_at DESC
	`, actor, actor)
}
