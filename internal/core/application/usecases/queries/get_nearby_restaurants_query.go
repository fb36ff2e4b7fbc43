package queries

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

// DefaultMaxDistanceMeters is used when the caller omits the search radius or
// supplies a non-positive value.
const DefaultMaxDistanceMeters = 5000.0

var ErrGetNearbyRestaurantsQueryIsNotConstructed = errors.New(
	"GetNearbyRestaurantsQuery must be created via NewGetNearbyRestaurantsQuery constructor",
)

// GetNearbyRestaurantsQuery retrieves restaurants within a radius of a point,
// ordered by ascending distance.
type GetNearbyRestaurantsQuery struct {
	location          kernel.GeoPoint
	maxDistanceMeters float64

	guard guard.ConstructorGuard
}

// NewGetNearbyRestaurantsQuery creates a nearby-restaurants query.
// The search radius falls back to DefaultMaxDistanceMeters when
// maxDistanceMeters is zero or negative.
func NewGetNearbyRestaurantsQuery(
	longitude float64,
	latitude float64,
	maxDistanceMeters float64,
) (GetNearbyRestaurantsQuery, error) {
	location, err := kernel.NewGeoPoint(longitude, latitude)
	if err != nil {
		return GetNearbyRestaurantsQuery{}, errs.NewValueIsInvalidErrorWithCause("location", err)
	}

	if maxDistanceMeters <= 0 {
		maxDistanceMeters = DefaultMaxDistanceMeters
	}

	return GetNearbyRestaurantsQuery{
		location:          location,
		maxDistanceMeters: maxDistanceMeters,
		guard:             guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetNearbyRestaurantsQueryIsNotConstructed if validation fails.
func (q GetNearbyRestaurantsQuery) Validate() error {
	return q.guard.Validate(ErrGetNearbyRestaurantsQueryIsNotConstructed)
}

// Location returns the search origin.
func (q GetNearbyRestaurantsQuery) Location() kernel.GeoPoint {
	return q.location
}

// MaxDistanceMeters returns the effective search radius.
func (q GetNearbyRestaurantsQuery) MaxDistanceMeters() float64 {
	return q.maxDistanceMeters
}

// NearbyRestaurantResponse is a restaurant read model with its distance from
// the search origin.
type NearbyRestaurantResponse struct {
	RestaurantResponse
	DistanceMeters float64
}
