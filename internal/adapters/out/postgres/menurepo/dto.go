// Package menurepo provides data transfer objects and mapping functions for
// menu item persistence.
package menurepo

import (
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/menu"

	"github.com/google/uuid"
)

// MenuItemDTO represents the database structure for persisting menu items.
// The rating columns are written only by the atomic ApplyRating update;
// attribute writes leave them untouched.
type MenuItemDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	RestaurantID    uuid.UUID `gorm:"type:uuid;index"`
	Name            string
	Description     string
	Price           float64
	Category        string
	IsAvailable     bool
	AverageRating   float64
	NumberOfRatings int
}

// TableName specifies the database table name for menu item entities.
func (MenuItemDTO) TableName() string {
	return "menu_items"
}

// fromDomain converts a menu item aggregate to its database representation.
func fromDomain(item *menu.MenuItem) MenuItemDTO {
	return MenuItemDTO{
		ID:              item.ID().Bytes(),
		RestaurantID:    item.RestaurantID().Bytes(),
		Name:            item.Name(),
		Description:     item.Description(),
		Price:           item.Price(),
		Category:        item.Category(),
		IsAvailable:     item.IsAvailable(),
		AverageRating:   item.AverageRating(),
		NumberOfRatings: item.NumberOfRatings(),
	}
}

// toDomain converts a database DTO to a menu item aggregate using RestoreMenuItem.
func toDomain(dto MenuItemDTO) (*menu.MenuItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return nil, err
	}

	return menu.RestoreMenuItem(
		id,
		restaurantID,
		dto.Name,
		dto.Price,
		dto.Category,
		dto.Description,
		dto.IsAvailable,
		dto.AverageRating,
		dto.NumberOfRatings,
	)
}
