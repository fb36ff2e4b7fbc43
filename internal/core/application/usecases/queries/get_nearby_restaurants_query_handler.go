package queries

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// GetNearbyRestaurantsQueryHandler finds restaurants near a point using the
// haversine great-circle distance computed in SQL over stored coordinates.
type GetNearbyRestaurantsQueryHandler struct {
	db *gorm.DB
}

// NewGetNearbyRestaurantsQueryHandler creates a handler for proximity search.
// Requires a GORM database connection for query execution.
func NewGetNearbyRestaurantsQueryHandler(db *gorm.DB) GetNearbyRestaurantsQueryHandler {
	return GetNearbyRestaurantsQueryHandler{db: db}
}

// Handle executes the query. Results are bounded by the query's radius and
// ordered by ascending distance.
func (h GetNearbyRestaurantsQueryHandler) Handle(
	ctx context.Context,
	query GetNearbyRestaurantsQuery,
) ([]NearbyRestaurantResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	// 6371000 is the mean Earth radius in meters.
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+restaurantColumns+`,
			6371000 * 2 * asin(sqrt(
				pow(sin(radians(latitude - ?) / 2), 2) +
				cos(radians(?)) * cos(radians(latitude)) *
				pow(sin(radians(longitude - ?) / 2), 2)
			)) AS distance_meters
		FROM restaurants
		WHERE 6371000 * 2 * asin(sqrt(
				pow(sin(radians(latitude - ?) / 2), 2) +
				cos(radians(?)) * cos(radians(latitude)) *
				pow(sin(radians(longitude - ?) / 2), 2)
			)) <= ?
		ORDER BY distance_meters
	`,
		query.Location().Latitude(), query.Location().Latitude(), query.Location().Longitude(),
		query.Location().Latitude(), query.Location().Latitude(), query.Location().Longitude(),
		query.MaxDistanceMeters(),
	).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	restaurants := make([]NearbyRestaurantResponse, 0)
	for rows.Next() {
		var response NearbyRestaurantResponse
		var id, ownerID uuid.UUID
		var cuisine pq.StringArray

		if err = rows.Scan(
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
			&response.DistanceMeters,
		); err != nil {
			return nil, err
		}

		if response.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if response.OwnerID, err = kernel.UUIDFromBytes(ownerID[:]); err != nil {
			return nil, err
		}
		response.Cuisine = []string(cuisine)

		restaurants = append(restaurants, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return restaurants, nil
}
