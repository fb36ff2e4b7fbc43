package queries

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrGetMenuItemQueryIsNotConstructed = errors.New(
	"GetMenuItemQuery must be created via NewGetMenuItemQuery constructor",
)

// GetMenuItemQuery retrieves a single menu item by identifier.
type GetMenuItemQuery struct {
	menuItemID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetMenuItemQuery creates a query for one menu item.
func NewGetMenuItemQuery(menuItemID kernel.UUID) (GetMenuItemQuery, error) {
	if err := menuItemID.Validate(); err != nil {
		return GetMenuItemQuery{}, err
	}

	return GetMenuItemQuery{
		menuItemID: menuItemID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetMenuItemQueryIsNotConstructed if validation fails.
func (q GetMenuItemQuery) Validate() error {
	return q.guard.Validate(ErrGetMenuItemQueryIsNotConstructed)
}

// MenuItemID returns the requested menu item identifier.
func (q GetMenuItemQuery) MenuItemID() kernel.UUID {
	return q.menuItemID
}
