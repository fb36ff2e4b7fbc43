// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"context"
	"database/sql"

	"marketplace/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrderResponse represents an order in the read model. Listings omit line
// items; GetOrderQuery returns them.
type OrderResponse struct {
	ID              kernel.UUID
	CustomerID      kernel.UUID
	RestaurantID    kernel.UUID
	TotalAmount     float64
	Status          string
	PaymentStatus   string
	DriverID        *kernel.UUID
	DeliveryAddress string
}

// OrderItemResponse is a single order line in the read model.
type OrderItemResponse struct {
	MenuItemID kernel.UUID
	Quantity   int
	UnitPrice  float64
}

const orderColumns = `
	id,
	customer_id,
	restaurant_id,
	total_amount,
	status,
	payment_status,
	driver_id,
	delivery_address
`

func scanOrderRows(rows *sql.Rows) ([]OrderResponse, error) {
	orders := make([]OrderResponse, 0)

	for rows.Next() {
		var response OrderResponse
		var id, customerID, restaurantID uuid.UUID
		var driverID uuid.NullUUID

		if err := rows.Scan(
			&id,
			&customerID,
			&restaurantID,
			&response.TotalAmount,
			&response.Status,
			&response.PaymentStatus,
			&driverID,
			&response.DeliveryAddress,
		); err != nil {
			return nil, err
		}

		var err error
		if response.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if response.CustomerID, err = kernel.UUIDFromBytes(customerID[:]); err != nil {
			return nil, err
		}
		if response.RestaurantID, err = kernel.UUIDFromBytes(restaurantID[:]); err != nil {
			return nil, err
		}
		if driverID.Valid {
			converted, convErr := kernel.UUIDFromBytes(driverID.UUID[:])
			if convErr != nil {
				return nil, convErr
			}
			response.DriverID = &converted
		}

		orders = append(orders, response)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

func queryOrders(ctx context.Context, db *gorm.DB, query string, args ...any) ([]OrderResponse, error) {
	rows, err := db.WithContext(ctx).Raw(query, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanOrderRows(rows)
}
