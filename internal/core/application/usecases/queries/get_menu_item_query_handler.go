package queries

import (
	"context"

	"marketplace/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetMenuItemQueryHandler retrieves one menu item.
type GetMenuItemQueryHandler struct {
	db *gorm.DB
}

// NewGetMenuItemQueryHandler creates a handler for single-item reads.
// Requires a GORM database connection for query execution.
func NewGetMenuItemQueryHandler(db *gorm.DB) GetMenuItemQueryHandler {
	return GetMenuItemQueryHandler{db: db}
}

// Handle executes the query.
// Returns *errs.ObjectNotFoundError if the menu item does not exist.
func (h GetMenuItemQueryHandler) Handle(
	ctx context.Context,
	query GetMenuItemQuery,
) (MenuItemResponse, error) {
	if err := query.Validate(); err != nil {
		return MenuItemResponse{}, err
	}

	items, err := queryMenuItems(ctx, h.db, `
		SELECT `+menuItemColumns+`
		FROM menu_items
		WHERE id = ?
	`, query.MenuItemID().Bytes())
	if err != nil {
		return MenuItemResponse{}, err
	}
	if len(items) == 0 {
		return MenuItemResponse{}, errs.NewObjectNotFoundError("menuItemID", query.MenuItemID())
	}

	return items[0], nil
}
