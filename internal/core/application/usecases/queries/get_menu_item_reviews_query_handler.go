package queries

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetMenuItemReviewsQueryHandler retrieves a menu item's reviews, newest first.
type GetMenuItemReviewsQueryHandler struct {
	db *gorm.DB
}

// NewGetMenuItemReviewsQueryHandler creates a handler for review listings.
// Requires a GORM database connection for query execution.
func NewGetMenuItemReviewsQueryHandler(db *gorm.DB) GetMenuItemReviewsQueryHandler {
	return GetMenuItemReviewsQueryHandler{db: db}
}

// Handle executes the query and returns review read models.
func (h GetMenuItemReviewsQueryHandler) Handle(
	ctx context.Context,
	query GetMenuItemReviewsQuery,
) ([]ReviewResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			user_id,
			menu_item_id,
			order_id,
			rating,
			comment,
			created_at
		FROM reviews
		WHERE menu_item_id = ?
		ORDER BY created_at DESC
	`, query.MenuItemID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reviews := make([]ReviewResponse, 0)
	for rows.Next() {
		var response ReviewResponse
		var id, userID, menuItemID, orderID uuid.UUID

		if err = rows.Scan(
			&id,
			&userID,
			&menuItemID,
			&orderID,
			&response.Rating,
			&response.Comment,
			&response.CreatedAt,
		); err != nil {
			return nil, err
		}

		if response.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if response.UserID, err = kernel.UUIDFromBytes(userID[:]); err != nil {
			return nil, err
		}
		if response.MenuItemID, err = kernel.UUIDFromBytes(menuItemID[:]); err != nil {
			return nil, err
		}
		if response.OrderID, err = kernel.UUIDFromBytes(orderID[:]); err != nil {
			return nil, err
		}

		reviews = append(reviews, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return reviews, nil
}
