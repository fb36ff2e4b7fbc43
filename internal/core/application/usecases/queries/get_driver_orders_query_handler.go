package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetDriverOrdersQueryHandler retrieves orders assigned to a delivery driver,
// newest first.
type GetDriverOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetDriverOrdersQueryHandler creates a handler for driver order listings.
// Requires a GORM database connection for query execution.
func NewGetDriverOrdersQueryHandler(db *gorm.DB) GetDriverOrdersQueryHandler {
	return GetDriverOrdersQueryHandler{db: db}
}

// Handle executes the query and returns order read models for the driver.
func (h GetDriverOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetDriverOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return queryOrders(ctx, h.db, `
		SELECT `+orderColumns+`
		FROM orders
		WHERE driver_id = ?
		ORDER BY created_at DESC
	`, query.DriverID().Bytes())
}
