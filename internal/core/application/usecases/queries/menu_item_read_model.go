package queries

import (
	"context"
	"database/sql"

	"marketplace/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MenuItemResponse represents a menu item in the read model.
type MenuItemResponse struct {
	ID              kernel.UUID
	RestaurantID    kernel.UUID
	Name            string
	Description     string
	Price           float64
	Category        string
	IsAvailable     bool
	AverageRating   float64
	NumberOfRatings int
}

const menuItemColumns = `
	id,
	restaurant_id,
	name,
	description,
	price,
	category,
	is_available,
	average_rating,
	number_of_ratings
`

func scanMenuItemRows(rows *sql.Rows) ([]MenuItemResponse, error) {
	items := make([]MenuItemResponse, 0)

	for rows.Next() {
		var response MenuItemResponse
		var id, restaurantID uuid.UUID

		if err := rows.Scan(
			&id,
			&restaurantID,
			&response.Name,
			&response.Description,
			&response.Price,
			&response.Category,
			&response.IsAvailable,
			&response.AverageRating,
			&response.NumberOfRatings,
		); err != nil {
			return nil, err
		}

		var err error
		if response.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if response.RestaurantID, err = kernel.UUIDFromBytes(restaurantID[:]); err != nil {
			return nil, err
		}

		items = append(items, response)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

func queryMenuItems(
	ctx context.Context,
	db *gorm.DB,
	query string,
	args ...any,
) ([]MenuItemResponse, error) {
	rows, err := db.WithContext(ctx).Raw(query, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanMenuItemRows(rows)
}
