// Package reviewrepo provides data transfer objects and mapping functions for
// review persistence. Reviews are append-only.
package reviewrepo

import (
	"time"

	"marketplace/internal/core/domain/model/review"

	"github.com/google/uuid"
)

// ReviewDTO represents the database structure for persisting reviews.
// Indexed by menu item to serve the review listing query.
type ReviewDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID     uuid.UUID `gorm:"type:uuid;index"`
	MenuItemID uuid.UUID `gorm:"type:uuid;index"`
	OrderID    uuid.UUID `gorm:"type:uuid"`
	Rating     int
	Comment    string
	CreatedAt  time.Time
}

// TableName specifies the database table name for review entities.
func (ReviewDTO) TableName() string {
	return "reviews"
}

// fromDomain converts a review entity to its database representation.
func fromDomain(entity *review.Review) ReviewDTO {
	return ReviewDTO{
		ID:         entity.ID().Bytes(),
		UserID:     entity.UserID().Bytes(),
		MenuItemID: entity.MenuItemID().Bytes(),
		OrderID:    entity.OrderID().Bytes(),
		Rating:     entity.Rating(),
		Comment:    entity.Comment(),
		CreatedAt:  entity.CreatedAt(),
	}
}
