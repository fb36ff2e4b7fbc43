// Package restaurantrepo provides data transfer objects and mapping functions
// for restaurant persistence, including the manager set.
package restaurantrepo

import (
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/restaurant"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// RestaurantDTO represents the database structure for persisting restaurants.
// Coordinates are stored as plain lon/lat columns; the nearby query computes
// haversine distance over them in SQL.
type RestaurantDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerID      uuid.UUID `gorm:"type:uuid;index"`
	Managers     []RestaurantManagerDTO `gorm:"foreignKey:RestaurantID;constraint:OnDelete:CASCADE"`
	Name         string
	Address      string
	Phone        string
	Cuisine      pq.StringArray `gorm:"type:text[]"`
	OpeningHours string
	Rating       float64
	Longitude    float64
	Latitude     float64
}

// TableName specifies the database table name for restaurant entities.
func (RestaurantDTO) TableName() string {
	return "restaurants"
}

// RestaurantManagerDTO represents one manager assignment.
type RestaurantManagerDTO struct {
	RestaurantID uuid.UUID `gorm:"type:uuid;primaryKey"`
	ManagerID    uuid.UUID `gorm:"type:uuid;primaryKey;index"`
}

// TableName specifies the database table name for manager assignments.
func (RestaurantManagerDTO) TableName() string {
	return "restaurant_managers"
}

// fromDomain converts a restaurant aggregate to its database representation.
func fromDomain(aggregate *restaurant.Restaurant) RestaurantDTO {
	managers := make([]RestaurantManagerDTO, 0, len(aggregate.ManagerIDs()))
	for _, managerID := range aggregate.ManagerIDs() {
		managers = append(managers, RestaurantManagerDTO{
			RestaurantID: aggregate.ID().Bytes(),
			ManagerID:    managerID.Bytes(),
		})
	}

	return RestaurantDTO{
		ID:           aggregate.ID().Bytes(),
		OwnerID:      aggregate.OwnerID().Bytes(),
		Managers:     managers,
		Name:         aggregate.Name(),
		Address:      aggregate.Address(),
		Phone:        aggregate.Phone(),
		Cuisine:      pq.StringArray(aggregate.Cuisine()),
		OpeningHours: aggregate.OpeningHours(),
		Rating:       aggregate.Rating(),
		Longitude:    aggregate.Location().Longitude(),
		Latitude:     aggregate.Location().Latitude(),
	}
}

// toDomain converts a database DTO to a restaurant aggregate using RestoreRestaurant.
func toDomain(dto RestaurantDTO) (*restaurant.Restaurant, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	ownerID, err := kernel.UUIDFromBytes(dto.OwnerID[:])
	if err != nil {
		return nil, err
	}

	managerIDs := make([]kernel.UUID, 0, len(dto.Managers))
	for _, managerDTO := range dto.Managers {
		managerID, managerErr := kernel.UUIDFromBytes(managerDTO.ManagerID[:])
		if managerErr != nil {
			return nil, managerErr
		}
		managerIDs = append(managerIDs, managerID)
	}

	location, err := kernel.NewGeoPoint(dto.Longitude, dto.Latitude)
	if err != nil {
		return nil, err
	}

	return restaurant.RestoreRestaurant(
		id,
		ownerID,
		managerIDs,
		dto.Name,
		dto.Address,
		dto.Phone,
		[]string(dto.Cuisine),
		dto.OpeningHours,
		dto.Rating,
		location,
	)
}
