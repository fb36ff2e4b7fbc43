package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/user"
	"marketplace/internal/pkg/guard"
)

var ErrUpdateMenuItemCommandIsNotConstructed = errors.New(
	"UpdateMenuItemCommand must be created via NewUpdateMenuItemCommand constructor",
)

// UpdateMenuItemCommand represents a request to change a menu item's
// attributes. Empty/nil fields keep the current values. Rating fields cannot
// be changed through this command; they belong to the rating aggregator.
type UpdateMenuItemCommand struct { //nolint:recvcheck //using for validation
	menuItemID  kernel.UUID
	actorID     kernel.UUID
	actorRole   user.Role
	name        string
	price       *float64
	category    string
	description string
	isAvailable *bool

	guard guard.ConstructorGuard
}

// NewUpdateMenuItemCommand creates a command to update a menu item.
// Validates the item ID and the acting principal.
func NewUpdateMenuItemCommand(
	menuItemID kernel.UUID,
	actorID kernel.UUID,
	actorRole user.Role,
	name string,
	price *float64,
	category string,
	description string,
	isAvailable *bool,
) (UpdateMenuItemCommand, error) {
	cmd := UpdateMenuItemCommand{
		name:        name,
		price:       price,
		category:    category,
		description: description,
		isAvailable: isAvailable,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setMenuItemID(menuItemID),
		cmd.setActor(actorID, actorRole),
	); err != nil {
		return UpdateMenuItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateMenuItemCommandIsNotConstructed if validation fails.
func (c UpdateMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrUpdateMenuItemCommandIsNotConstructed)
}

// MenuItemID returns the identifier of the menu item being updated.
func (c UpdateMenuItemCommand) MenuItemID() kernel.UUID {
	return c.menuItemID
}

// ActorID returns the identifier of the acting user.
func (c UpdateMenuItemCommand) ActorID() kernel.UUID {
	return c.actorID
}

// ActorRole returns the role of the acting user.
func (c UpdateMenuItemCommand) ActorRole() user.Role {
	return c.actorRole
}

// Name returns the new name, or empty to keep the current one.
func (c UpdateMenuItemCommand) Name() string {
	return c.name
}

// Price returns the new price, or nil to keep the current one.
func (c UpdateMenuItemCommand) Price() *float64 {
	return c.price
}

// Category returns the new category, or empty to keep the current one.
func (c UpdateMenuItemCommand) Category() string {
	return c.category
}

// Description returns the new description, or empty to keep the current one.
func (c UpdateMenuItemCommand) Description() string {
	return c.description
}

// IsAvailable returns the new availability flag, or nil to keep the current one.
func (c UpdateMenuItemCommand) IsAvailable() *bool {
	return c.isAvailable
}

func (c *UpdateMenuItemCommand) setMenuItemID(menuItemID kernel.UUID) error {
	if err := menuItemID.Validate(); err != nil {
		return err
	}

	c.menuItemID = menuItemID
	return nil
}

func (c *UpdateMenuItemCommand) setActor(actorID kernel.UUID, actorRole user.Role) error {
	if err := errors.Join(actorID.Validate(), actorRole.Validate()); err != nil {
		return err
	}

	c.actorID = actorID
	c.actorRole = actorRole
	return nil
}
