package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/user"
	"marketplace/internal/pkg/guard"
)

var ErrDeleteMenuItemCommandIsNotConstructed = errors.New(
	"DeleteMenuItemCommand must be created via NewDeleteMenuItemCommand constructor",
)

// DeleteMenuItemCommand represents a request to remove a menu item.
// The acting user must be able to edit the owning restaurant.
type DeleteMenuItemCommand struct { //nolint:recvcheck //using for validation
	menuItemID kernel.UUID
	actorID    kernel.UUID
	actorRole  user.Role

	guard guard.ConstructorGuard
}

// NewDeleteMenuItemCommand creates a command to delete a menu item.
// Validates the item ID and acting principal.
func NewDeleteMenuItemCommand(
	menuItemID kernel.UUID,
	actorID kernel.UUID,
	actorRole user.Role,
) (DeleteMenuItemCommand, error) {
	cmd := DeleteMenuItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setMenuItemID(menuItemID),
		cmd.setActor(actorID, actorRole),
	); err != nil {
		return DeleteMenuItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrDeleteMenuItemCommandIsNotConstructed if validation fails.
func (c DeleteMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrDeleteMenuItemCommandIsNotConstructed)
}

// MenuItemID returns the identifier of the menu item being deleted.
func (c DeleteMenuItemCommand) MenuItemID() kernel.UUID {
	return c.menuItemID
}

// ActorID returns the identifier of the acting user.
func (c DeleteMenuItemCommand) ActorID() kernel.UUID {
	return c.actorID
}

// ActorRole returns the role of the acting user.
func (c DeleteMenuItemCommand) ActorRole() user.Role {
	return c.actorRole
}

func (c *DeleteMenuItemCommand) setMenuItemID(menuItemID kernel.UUID) error {
	if err := menuItemID.Validate(); err != nil {
		return err
	}

	c.menuItemID = menuItemID
	return nil
}

func (c *DeleteMenuItemCommand) setActor(actorID kernel.UUID, actorRole user.Role) error {
	if err := errors.Join(actorID.Validate(), actorRole.Validate()); err != nil {
		return err
	}

	c.actorID = actorID
	c.actorRole = actorRole
	return nil
}
