package queries

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrGetMenuItemReviewsQueryIsNotConstructed = errors.New(
	"GetMenuItemReviewsQuery must be created via NewGetMenuItemReviewsQuery constructor",
)

// GetMenuItemReviewsQuery retrieves the reviews of one menu item,
// newest first.
type GetMenuItemReviewsQuery struct {
	menuItemID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetMenuItemReviewsQuery creates a query for a menu item's reviews.
func NewGetMenuItemReviewsQuery(menuItemID kernel.UUID) (GetMenuItemReviewsQuery, error) {
	if err := menuItemID.Validate(); err != nil {
		return GetMenuItemReviewsQuery{}, err
	}

	return GetMenuItemReviewsQuery{
		menuItemID: menuItemID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetMenuItemReviewsQueryIsNotConstructed if validation fails.
func (q GetMenuItemReviewsQuery) Validate() error {
	return q.guard.Validate(ErrGetMenuItemReviewsQueryIsNotConstructed)
}

// MenuItemID returns the scoping menu item identifier.
func (q GetMenuItemReviewsQuery) MenuItemID() kernel.UUID {
	return q.menuItemID
}

// ReviewResponse represents a review in the read model.
type ReviewResponse struct {
	ID         kernel.UUID
	UserID     kernel.UUID
	MenuItemID kernel.UUID
	OrderID    kernel.UUID
	Rating     int
	Comment    string
	CreatedAt  time.Time
}
