package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrAddFavoriteCommandIsNotConstructed = errors.New(
	"AddFavoriteCommand must be created via NewAddFavoriteCommand constructor",
)

// AddFavoriteCommand represents a customer's request to add a menu item to
// their favorites set. Adding an item that is already a favorite is a no-op.
type AddFavoriteCommand struct { //nolint:recvcheck //using for validation
	userID     kernel.UUID
	menuItemID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAddFavoriteCommand creates a command to add a favorite.
// Validates both identifiers.
func NewAddFavoriteCommand(userID kernel.UUID, menuItemID kernel.UUID) (AddFavoriteCommand, error) {
	cmd := AddFavoriteCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUserID(userID),
		cmd.setMenuItemID(menuItemID),
	); err != nil {
		return AddFavoriteCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAddFavoriteCommandIsNotConstructed if validation fails.
func (c AddFavoriteCommand) Validate() error {
	return c.guard.Validate(ErrAddFavoriteCommandIsNotConstructed)
}

// UserID returns the identifier of the acting user.
func (c AddFavoriteCommand) UserID() kernel.UUID {
	return c.userID
}

// MenuItemID returns the identifier of the menu item being favorited.
func (c AddFavoriteCommand) MenuItemID() kernel.UUID {
	return c.menuItemID
}

func (c *AddFavoriteCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}

func (c *AddFavoriteCommand) setMenuItemID(menuItemID kernel.UUID) error {
	if err := menuItemID.Validate(); err != nil {
		return err
	}

	c.menuItemID = menuItemID
	return nil
}
