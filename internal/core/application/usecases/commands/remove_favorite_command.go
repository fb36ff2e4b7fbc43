package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrRemoveFavoriteCommandIsNotConstructed = errors.New(
	"RemoveFavoriteCommand must be created via NewRemoveFavoriteCommand constructor",
)

// RemoveFavoriteCommand represents a customer's request to remove a menu item
// from their favorites set. Removing an absent item is a no-op.
type RemoveFavoriteCommand struct { //nolint:recvcheck //using for validation
	userID     kernel.UUID
	menuItemID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRemoveFavoriteCommand creates a command to remove a favorite.
// Validates both identifiers.
func NewRemoveFavoriteCommand(userID kernel.UUID, menuItemID kernel.UUID) (RemoveFavoriteCommand, error) {
	cmd := RemoveFavoriteCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUserID(userID),
		cmd.setMenuItemID(menuItemID),
	); err != nil {
		return RemoveFavoriteCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRemoveFavoriteCommandIsNotConstructed if validation fails.
func (c RemoveFavoriteCommand) Validate() error {
	return c.guard.Validate(ErrRemoveFavoriteCommandIsNotConstructed)
}

// UserID returns the identifier of the acting user.
func (c RemoveFavoriteCommand) UserID() kernel.UUID {
	return c.userID
}

// MenuItemID returns the identifier of the menu item being removed.
func (c RemoveFavoriteCommand) MenuItemID() kernel.UUID {
	return c.menuItemID
}

func (c *RemoveFavoriteCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}

func (c *RemoveFavoriteCommand) setMenuItemID(menuItemID kernel.UUID) error {
	if err := menuItemID.Validate(); err != nil {
		return err
	}

	c.menuItemID = menuItemID
	return nil
}
