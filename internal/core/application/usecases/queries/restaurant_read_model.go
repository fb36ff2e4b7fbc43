package queries

import (
	"context"
	"database/sql"

	"marketplace/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// RestaurantResponse represents a restaurant in the read model.
type RestaurantResponse struct {
	ID           kernel.UUID
	OwnerID      kernel.UUID
	Name         string
	Address      string
	Phone        string
	Cuisine      []string
	OpeningHours string
	Rating       float64
	Longitude    float64
	Latitude     float64
}

const restaurantColumns = `
	id,
	owner_id,
	name,
	address,
	phone,
	cuisine,
	opening_hours,
	rating,
	longitude,
	latitude
`

func scanRestaurantRows(rows *sql.Rows) ([]RestaurantResponse, error) {
	restaurants := make([]RestaurantResponse, 0)

	for rows.Next() {
		var response RestaurantResponse
		var id, ownerID uuid.UUID
		var cuisine pq.StringArray

		if err := rows.Scan(
			&id,
			&ownerID,
			&response.Name,
			&response.Address,
			&response.Phone,
			&cuisine,
			&response.OpeningHours,
			&response.Rating,
			&response.Longitude,
			&response.Latitude,
		); err != nil {
			return nil, err
		}

		var err error
		if response.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if response.OwnerID, err = kernel.UUIDFromBytes(ownerID[:]); err != nil {
			return nil, err
		}
		response.Cuisine = []string(cuisine)

		restaurants = append(restaurants, response)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return restaurants, nil
}

func queryRestaurants(
	ctx context.Context,
	db *gorm.DB,
	query string,
	args ...any,
) ([]RestaurantResponse, error) {
	rows, err := db.WithContext(ctx).Raw(query, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanRestaurantRows(rows)
}
